package auth

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
)

// OnlyTeacher menolak request yang token-nya tidak membawa teacher_id.
func OnlyTeacher(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if v, ok := c.Locals("teacher_id").(string); !ok || v == "" {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher(feature))
		}
		return c.Next()
	}
}

// OnlyStudent menolak request yang token-nya tidak membawa student_id.
func OnlyStudent(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if v, ok := c.Locals("student_id").(string); !ok || v == "" {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStudent(feature))
		}
		return c.Next()
	}
}
