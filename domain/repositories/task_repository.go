package repositories

import (
	"context"

	"taskboard/domain/models"
)

// Finders return (nil, nil) when no row matches.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	All(ctx context.Context) ([]*models.Task, error)
	List(ctx context.Context, offset, limit int) ([]*models.Task, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}
