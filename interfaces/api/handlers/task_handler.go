package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"taskboard/domain/dto"
	"taskboard/domain/ports"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
)

// taskNotFoundMessage is sent with status 200, matching the pages users already know.
const taskNotFoundMessage = "Sorry, cannot find the selected found"

// TaskHandler serves the HTML task resource
type TaskHandler struct {
	taskService services.TaskService
	auth        ports.SessionAuthPort
}

func NewTaskHandler(taskService services.TaskService, auth ports.SessionAuthPort) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		auth:        auth,
	}
}

func (h *TaskHandler) Index(c *fiber.Ctx) error {
	tasks, err := h.taskService.AllTasks(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, h.auth, "tasks/index", "Tasks", fiber.Map{"Tasks": tasks})
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	// guest: redirect แล้วหยุดทันที ไม่ทำงานต่อหลัง redirect
	if !h.auth.Check(c) {
		return c.Redirect("/login")
	}
	return render(c, h.auth, "tasks/create", "New Task", nil)
}

func (h *TaskHandler) Store(c *fiber.Ctx) error {
	ctx := c.UserContext()

	// guest: redirect แล้วหยุดทันที จึงไม่มี task ที่ user_id ว่าง
	userID, ok := h.auth.CurrentUserID(c)
	if !ok {
		return c.Redirect("/login")
	}

	var form dto.TaskForm
	if err := c.BodyParser(&form); err != nil {
		logger.WarnContext(ctx, "Invalid task form", "error", err)
		return fiber.NewError(fiber.StatusBadRequest, "Invalid task form")
	}

	if _, err := h.taskService.CreateTask(ctx, userID, &dto.CreateTaskRequest{
		Title:       form.Title,
		Description: form.Description,
	}); err != nil {
		return err
	}

	return c.Redirect("/tasks")
}

func (h *TaskHandler) Show(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return taskNotFound(c)
	}

	task, owner, err := h.taskService.GetTaskWithOwner(c.UserContext(), id)
	if errors.Is(err, services.ErrTaskNotFound) {
		return taskNotFound(c)
	}
	if err != nil {
		return err
	}

	return render(c, h.auth, "tasks/show", task.Title, fiber.Map{
		"Task":  task,
		"Owner": owner,
	})
}

// Edit renders the form only; nothing is loaded and no session is required.
func (h *TaskHandler) Edit(c *fiber.Ctx) error {
	return render(c, h.auth, "tasks/edit", "Edit Task", fiber.Map{"TaskID": c.Params("id")})
}

// Update does not change the task.
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	// guest: redirect แล้วหยุดทันที ไม่ทำงานต่อหลัง redirect
	if !h.auth.Check(c) {
		return c.Redirect("/login")
	}
	return c.Redirect("/tasks/" + c.Params("id"))
}

func (h *TaskHandler) Destroy(c *fiber.Ctx) error {
	// guest: redirect แล้วหยุดทันที ไม่ทำงานต่อหลัง redirect
	if !h.auth.Check(c) {
		return c.Redirect("/login")
	}

	id, ok := taskID(c)
	if !ok {
		return taskNotFound(c)
	}

	err := h.taskService.DeleteTask(c.UserContext(), id)
	if errors.Is(err, services.ErrTaskNotFound) {
		return taskNotFound(c)
	}
	if err != nil {
		return err
	}

	return c.Redirect("/tasks")
}

func taskID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func taskNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString(taskNotFoundMessage)
}
