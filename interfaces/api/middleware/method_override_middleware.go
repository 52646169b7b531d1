package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const MethodOverrideField = "_method"

// MethodOverride lets HTML forms reach PUT/PATCH/DELETE routes by posting a
// _method field or query parameter
func MethodOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost {
			return c.Next()
		}

		override := c.Query(MethodOverrideField)
		if override == "" {
			override = c.FormValue(MethodOverrideField)
		}

		switch method := strings.ToUpper(override); method {
		case fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
			c.Method(method)
		}

		return c.Next()
	}
}
