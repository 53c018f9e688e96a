package models

import (
	"time"
)

// User is a registered account.
type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string     `gorm:"size:255;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	LastActiveAt *time.Time `json:"last_active_at"`

	Tasks []Task `gorm:"foreignKey:UserID" json:"tasks,omitempty"`
}

// TableName keeps the table name of the original database file.
func (User) TableName() string {
	return "lietotaji"
}
