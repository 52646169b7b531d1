package services

import (
	"context"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uint, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, taskID uint) (*models.Task, error)
	// GetTaskWithOwner returns a nil owner when the user row is gone.
	GetTaskWithOwner(ctx context.Context, taskID uint) (*models.Task, *models.User, error)
	AllTasks(ctx context.Context) ([]*models.Task, error)
	ListTasks(ctx context.Context, offset, limit int) ([]*models.Task, int64, error)
	DeleteTask(ctx context.Context, taskID uint) error
}
