package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	userController "manrelbdg_backend/internals/features/users/user/controller"
)

// UserAdminRoutes → /api/users (router sudah melewati AuthMiddleware + CanManageUsers)
func UserAdminRoutes(admin fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctrl := userController.NewUserController(db, log)

	users := admin.Group("/users")
	users.Get("/", ctrl.GetUsers)
	users.Patch("/:id/status", ctrl.UpdateStatus)
}
