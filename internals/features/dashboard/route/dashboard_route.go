package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/features/dashboard/controller"
	authMw "manrelbdg_backend/internals/middlewares/auth"
)

// DashboardRoutes → /api/dashboard (router sudah melewati AuthMiddleware)
func DashboardRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctrl := controller.NewDashboardController(db, log)

	g := r.Group("/dashboard")
	g.Get("/", authMw.CanViewData(), ctrl.Get)
	g.Get("/history", authMw.CanViewData(), ctrl.History)
	g.Post("/snapshot", authMw.CanEditData(), ctrl.Snapshot)
}
