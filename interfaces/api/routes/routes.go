package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	// Health and landing page
	SetupHealthRoutes(app, h)

	// HTML pages (session auth)
	SetupAuthRoutes(app, h)
	SetupTaskRoutes(app, h)

	// JSON API (bearer auth)
	api := app.Group("/api/v1")
	SetupAPIAuthRoutes(api, h, jwtSecret)
	SetupAPITaskRoutes(api, h, jwtSecret)
}
