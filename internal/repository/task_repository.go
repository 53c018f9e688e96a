package repository

import (
	"fmt"

	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/models"

	"gorm.io/gorm"
)

// TaskRepository is the data access layer for tasks.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a task repository.
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a task. Priority is passed through as given; the CHECK
// constraint on the table rejects values outside the closed set.
func (r *TaskRepository) Create(task *models.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("create task %q: %w", task.Title, err)
	}
	return nil
}

// ListByUserID returns the user's tasks in insertion order.
func (r *TaskRepository) ListByUserID(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks for user %d: %w", userID, err)
	}
	return tasks, nil
}

// MarkDone flags the task with the given id as completed. Updating an
// absent id affects zero rows and is not an error.
func (r *TaskRepository) MarkDone(id uint) error {
	return r.db.Model(&models.Task{}).Where("id = ?", id).Update("done", true).Error
}

// Delete removes the task with the given id. Deleting an absent id is a
// no-op.
func (r *TaskRepository) Delete(id uint) error {
	return r.db.Delete(&models.Task{}, id).Error
}
