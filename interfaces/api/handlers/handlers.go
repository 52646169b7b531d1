package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/domain/ports"
	"taskboard/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService services.UserService
	TaskService services.TaskService
	SessionAuth ports.SessionAuthPort
}

// Handlers contains all HTTP handlers
type Handlers struct {
	HomeHandler    *HomeHandler
	AuthHandler    *AuthHandler    // HTML login/register/logout
	TaskHandler    *TaskHandler    // HTML task resource
	UserHandler    *UserHandler    // JSON auth
	TaskAPIHandler *TaskAPIHandler // JSON tasks
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		HomeHandler:    NewHomeHandler(services.SessionAuth),
		AuthHandler:    NewAuthHandler(services.UserService, services.SessionAuth),
		TaskHandler:    NewTaskHandler(services.TaskService, services.SessionAuth),
		UserHandler:    NewUserHandler(services.UserService),
		TaskAPIHandler: NewTaskAPIHandler(services.TaskService),
	}
}

// render fills the fields the layout reads, then renders name inside it
func render(c *fiber.Ctx, auth ports.SessionAuthPort, name, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["LoggedIn"] = auth.Check(c)
	return c.Render(name, data)
}
