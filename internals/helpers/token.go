package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromLocals reads the user id that the auth middleware stored on
// the request context. Returns an error suitable for direct return from a
// controller.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals("user_id").(string)
	if !ok || v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing user id")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: invalid user id")
	}
	return id, nil
}

func GetRoleFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_role").(string); ok {
		return v
	}
	return ""
}

func GetDepartmentFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_department").(string); ok {
		return v
	}
	return ""
}

func GetUserNameFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_name").(string); ok {
		return v
	}
	return ""
}
