package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/models"

	"gorm.io/gorm"
)

// UserRepository is the data access layer for users.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. A username collision maps to
// ErrDuplicateEntry and writes no row.
func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("create user %q: %w", user.Username, err)
	}
	return nil
}

// GetByUsername returns the user with the given username.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by username %q: %w", username, err)
	}
	return &user, nil
}

// GetByID returns the user with the given id.
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id %d: %w", id, err)
	}
	return &user, nil
}

// List returns every user in primary key order.
func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Delete removes the user row only. Tasks owned by the user are left in
// place with a dangling owner id.
func (r *UserRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

// TouchActivity stamps the user's last-activity time.
func (r *UserRepository) TouchActivity(username string, t time.Time) error {
	return r.db.Model(&models.User{}).
		Where("username = ?", username).
		Update("last_active_at", t).Error
}
