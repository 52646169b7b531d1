package ports

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/domain/models"
)

// SessionAuthPort tracks the logged-in user across requests.
type SessionAuthPort interface {
	// Login verifies password against user and starts a session.
	// A nil user or a wrong password returns false without error.
	Login(c *fiber.Ctx, user *models.User, password string) (bool, error)
	Logout(c *fiber.Ctx) error
	Check(c *fiber.Ctx) bool
	CurrentUserID(c *fiber.Ctx) (uint, bool)
}
