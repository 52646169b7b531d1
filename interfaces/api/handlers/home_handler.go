package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/domain/ports"
)

type HomeHandler struct {
	auth ports.SessionAuthPort
}

func NewHomeHandler(auth ports.SessionAuthPort) *HomeHandler {
	return &HomeHandler{auth: auth}
}

func (h *HomeHandler) Welcome(c *fiber.Ctx) error {
	return render(c, h.auth, "welcome", "", nil)
}

func (h *HomeHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Server is running",
		"service": "taskboard",
	})
}
