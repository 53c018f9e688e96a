package models

// Task priorities. The closed set is enforced by the storage layer, not
// by application code: an unknown value fails at insert time.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a single to-do item owned by a user.
type Task struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	UserID      uint   `gorm:"index" json:"user_id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"size:1024;not null" json:"description"`
	Priority    string `gorm:"size:10;check:priority IN ('low','medium','high')" json:"priority"`
	DueDate     string `gorm:"size:50;not null" json:"due_date"`
	Done        bool   `gorm:"not null;default:false" json:"done"`
}

// TableName keeps the table name of the original database file.
func (Task) TableName() string {
	return "uzdevumi"
}
