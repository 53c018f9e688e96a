package models

import (
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the shared database handle.
var DB *gorm.DB

// InitDB opens the sqlite database and ensures both tables exist.
func InitDB(cfg *config.Config) error {
	var err error

	// The task->user relation stays declared but unenforced, matching the
	// original schema: deleting a user leaves its tasks behind.
	DB, err = gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return err
	}

	return Migrate(DB)
}

// Migrate creates the tables if they are absent. No versioned migrations.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Task{},
	)
}

// GetDB returns the shared database handle.
func GetDB() *gorm.DB {
	return DB
}
