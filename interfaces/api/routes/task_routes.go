package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
)

func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers) {
	Resource(app, "tasks", h.TaskHandler)
}

func SetupAPITaskRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	tasks := api.Group("/tasks")
	tasks.Get("/", h.TaskAPIHandler.ListTasks)
	tasks.Get("/:id", h.TaskAPIHandler.GetTask)
	tasks.Post("/", middleware.Protected(jwtSecret), h.TaskAPIHandler.CreateTask)
	tasks.Delete("/:id", middleware.Protected(jwtSecret), h.TaskAPIHandler.DeleteTask)
}
