package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// --- util kecil biar gak duplikasi parsing ---
func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" tidak valid di token")
	}
	return id, nil
}

// GetTeacherIDFromToken — satu-satunya sumber identitas teacher untuk handler.
// teacher_id dari query/body TIDAK pernah dipakai sebagai identitas.
func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "teacher_id")
}

func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "student_id")
}

func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "school_id")
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "user_id")
}
