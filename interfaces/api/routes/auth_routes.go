package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
)

func SetupAuthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/login", h.AuthHandler.ShowLogin)
	app.Post("/login", h.AuthHandler.Login)
	app.Get("/register", h.AuthHandler.ShowRegister)
	app.Post("/register", h.AuthHandler.Register)
	app.Get("/logout", h.AuthHandler.Logout)
}

func SetupAPIAuthRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	auth := api.Group("/auth")
	auth.Post("/register", h.UserHandler.Register)
	auth.Post("/login", h.UserHandler.Login)
	auth.Get("/me", middleware.Protected(jwtSecret), h.UserHandler.Me)
}
