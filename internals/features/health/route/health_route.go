package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/features/health/controller"
)

// HealthRoutes: publik, dipasang di root app (/health) dan grup /api (/api/health).
func HealthRoutes(routers []fiber.Router, db *gorm.DB, log *zap.Logger, started time.Time) {
	ctrl := controller.NewHealthController(db, log, started)
	for _, r := range routers {
		r.Get("/health", ctrl.Health)
	}
}
