package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/constants"
	"manrelbdg_backend/internals/features/settings/controller"
	authMw "manrelbdg_backend/internals/middlewares/auth"
)

// SettingRoutes → /api/settings (router sudah melewati AuthMiddleware)
func SettingRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctrl := controller.NewSettingController(db, log)

	g := r.Group("/settings")
	g.Get("/", authMw.CanViewData(), ctrl.List)
	g.Get("/:key", authMw.CanViewData(), ctrl.Get)
	g.Put("/:key", authMw.OnlyRoles("", constants.RoleAdmin), ctrl.Upsert)
}
