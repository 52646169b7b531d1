package serviceimpl

import (
	"context"
	"fmt"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uint, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := dto.CreateTaskRequestToTask(req)
	task.UserID = userID

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, fmt.Errorf("create task: %w", err)
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", taskID, err)
	}
	if task == nil {
		return nil, services.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) GetTaskWithOwner(ctx context.Context, taskID uint) (*models.Task, *models.User, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}

	owner, err := s.userRepo.GetByID(ctx, task.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("get task owner %d: %w", task.UserID, err)
	}
	if owner == nil {
		logger.WarnContext(ctx, "Task owner not found", "task_id", taskID, "user_id", task.UserID)
	}

	return task, owner, nil
}

func (s *TaskServiceImpl) AllTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.taskRepo.All(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load tasks", "error", err)
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, offset, limit int) ([]*models.Task, int64, error) {
	tasks, err := s.taskRepo.List(ctx, offset, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "offset", offset, "limit", limit, "error", err)
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}

	count, err := s.taskRepo.Count(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count tasks", "error", err)
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	return tasks, count, nil
}

// DeleteTask ลบได้ทุก task ไม่ตรวจ owner
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID uint) error {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		logger.WarnContext(ctx, "Task not found for deletion", "task_id", taskID)
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)
	return nil
}
