package middlewares

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// RecoveryMiddleware menangkap panic; error handler aplikasi yang menulis 500.
func RecoveryMiddleware(log *zap.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error("panic recovered",
				zap.String("panic", fmt.Sprint(e)),
				zap.String("path", c.Path()),
				zap.Any("reqid", c.Locals("reqid")),
				zap.Stack("stack"),
			)
		},
	})
}
