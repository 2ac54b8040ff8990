package details

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/configs"
	healthRoute "manrelbdg_backend/internals/features/health/route"
	authRoute "manrelbdg_backend/internals/features/users/auth/route"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	authRoute.AuthRoutes(api, db, cfg, log)
}

// HealthRoutes: /health (root) dan /api/health.
func HealthRoutes(app *fiber.App, api fiber.Router, db *gorm.DB, log *zap.Logger, started time.Time) {
	healthRoute.HealthRoutes([]fiber.Router{app, api}, db, log, started)
}
