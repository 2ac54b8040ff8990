package auth

import (
	"github.com/gofiber/fiber/v2"

	"manrelbdg_backend/internals/constants"
	helper "manrelbdg_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError validasi role + custom error message.
// Harus dipasang setelah AuthMiddleware.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	forbidden := customForbiddenMessage
	if forbidden == "" {
		forbidden = constants.MsgInsufficientPermissions
	}
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocRole).(string)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		if constants.HasRole(role, allowedRoles) {
			return c.Next()
		}

		return helper.JsonError(c, fiber.StatusForbidden, forbidden)
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

func CanViewData() fiber.Handler    { return RoleMiddlewareWithCustomError(constants.ViewRoles, "") }
func CanEditData() fiber.Handler    { return RoleMiddlewareWithCustomError(constants.EditRoles, "") }
func CanManageUsers() fiber.Handler { return RoleMiddlewareWithCustomError(constants.AdminOnly, "") }
