package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/models"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/repository"
)

// TaskService implements the per-user task list.
type TaskService struct {
	taskRepo *repository.TaskRepository
	userRepo *repository.UserRepository
}

// NewTaskService creates a task service.
func NewTaskService(taskRepo *repository.TaskRepository, userRepo *repository.UserRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, userRepo: userRepo}
}

// ListFor resolves the session username and returns that user's tasks in
// insertion order. ErrUserGone reports a session whose user was deleted.
func (s *TaskService) ListFor(username string) (*models.User, []models.Task, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserGone
		}
		return nil, nil, fmt.Errorf("resolve session user: %w", err)
	}

	tasks, err := s.taskRepo.ListByUserID(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, tasks, nil
}

// Add creates a task for the session user and stamps their activity.
// Priority is not validated here; the storage constraint is the gate.
func (s *TaskService) Add(username, title, description, priority, dueDate string) (*models.Task, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserGone
		}
		return nil, fmt.Errorf("resolve session user: %w", err)
	}

	task := &models.Task{
		UserID:      user.ID,
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		Done:        false,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}

	if err := s.userRepo.TouchActivity(username, time.Now()); err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	return task, nil
}

// Complete marks the task with the given id as done. Any authenticated
// session may complete any task id; an absent id is a silent no-op.
func (s *TaskService) Complete(id uint) error {
	return s.taskRepo.MarkDone(id)
}

// Delete removes the task with the given id. Any authenticated session
// may delete any task id; an absent id is a silent no-op.
func (s *TaskService) Delete(id uint) error {
	return s.taskRepo.Delete(id)
}
