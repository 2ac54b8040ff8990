package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/features/health/dto"
	"manrelbdg_backend/internals/features/health/service"
)

type HealthController struct {
	Service *service.HealthService
}

func NewHealthController(db *gorm.DB, log *zap.Logger, started time.Time) *HealthController {
	return &HealthController{Service: service.NewHealthService(db, log, started)}
}

// GET /api/health, /health → 200 healthy | 503 unhealthy
func (hc *HealthController) Health(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "no-store")
	out := hc.Service.Check(c.UserContext())
	if out.Status != dto.StatusHealthy {
		return c.Status(fiber.StatusServiceUnavailable).JSON(out)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
