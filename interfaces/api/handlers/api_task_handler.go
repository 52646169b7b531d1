package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskboard/domain/dto"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

// TaskAPIHandler serves /api/v1/tasks
type TaskAPIHandler struct {
	taskService services.TaskService
}

func NewTaskAPIHandler(taskService services.TaskService) *TaskAPIHandler {
	return &TaskAPIHandler{
		taskService: taskService,
	}
}

func (h *TaskAPIHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var q dto.PaginationQuery
	if err := c.QueryParser(&q); err != nil {
		logger.WarnContext(ctx, "Invalid query", "error", err)
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	if err := utils.ValidateStruct(&q); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}
	q.Normalize()

	tasks, total, err := h.taskService.ListTasks(ctx, q.Offset(), q.Limit)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.PaginatedSuccessResponse(c, dto.TasksToTaskResponses(tasks), total, q.Page, q.Limit)
}

func (h *TaskAPIHandler) GetTask(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, owner, err := h.taskService.GetTaskWithOwner(c.UserContext(), id)
	if errors.Is(err, services.ErrTaskNotFound) {
		return utils.NotFoundResponse(c, "Task not found")
	}
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task, owner))
}

func (h *TaskAPIHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task, nil))
}

// DeleteTask ไม่ตรวจว่าเป็นเจ้าของ task
func (h *TaskAPIHandler) DeleteTask(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	err := h.taskService.DeleteTask(c.UserContext(), id)
	if errors.Is(err, services.ErrTaskNotFound) {
		return utils.NotFoundResponse(c, "Task not found")
	}
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}
