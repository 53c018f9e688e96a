package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/models"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/repository"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/utils"
)

// AuthService implements registration and login.
type AuthService struct {
	userRepo *repository.UserRepository
}

// NewAuthService creates an auth service.
func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new account. The password is stored only as a bcrypt
// hash.
func (s *AuthService) Register(username, email, password, confirmPassword string) (*models.User, error) {
	if username == "" || email == "" || password == "" || confirmPassword == "" {
		return nil, ErrFieldsRequired
	}

	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and stamps the user's last activity.
// Unknown usernames and wrong passwords report the same error.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrFieldsRequired
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, ErrBadCredentials
	}

	if err := utils.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, ErrBadCredentials
	}

	if err := s.userRepo.TouchActivity(username, time.Now()); err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	return user, nil
}
