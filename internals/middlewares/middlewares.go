package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"manrelbdg_backend/internals/configs"
	"manrelbdg_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global sesuai urutan eksekusi.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, log *zap.Logger) {
	app.Use(RecoveryMiddleware(log))
	app.Use(RequestContext(5 * time.Second))
	app.Use(logger.LoggerMiddleware(log))
	app.Use(MetricsMiddleware())
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	if cfg.RateLimitEnabled {
		app.Use(GlobalRateLimiter())
	}
}
