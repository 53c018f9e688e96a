package service

import (
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/config"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/models"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/repository"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/utils"
)

// AdminService implements the administrator panel. The admin credential
// lives in configuration, outside the user table, and is verified against
// a bcrypt hash.
type AdminService struct {
	userRepo *repository.UserRepository
	cfg      *config.AdminConfig
}

// NewAdminService creates an admin service.
func NewAdminService(userRepo *repository.UserRepository, cfg *config.AdminConfig) *AdminService {
	return &AdminService{userRepo: userRepo, cfg: cfg}
}

// Authenticate checks the supplied pair against the configured admin
// credentials.
func (s *AdminService) Authenticate(username, password string) error {
	if username == "" || password == "" {
		return ErrFieldsRequired
	}

	if username != s.cfg.Username {
		return ErrBadCredentials
	}

	if err := utils.CheckPassword(password, s.cfg.PasswordHash); err != nil {
		return ErrBadCredentials
	}

	return nil
}

// ListUsers returns every registered user.
func (s *AdminService) ListUsers() ([]models.User, error) {
	return s.userRepo.List()
}

// DeleteUser removes the user row. The user's tasks are not touched and
// keep referencing the deleted id.
func (s *AdminService) DeleteUser(id uint) error {
	return s.userRepo.Delete(id)
}
