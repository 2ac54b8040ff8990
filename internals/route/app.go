package routes

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"manrelbdg_backend/internals/constants"
	helper "manrelbdg_backend/internals/helpers"
)

// NewApp membuat fiber.App dengan codec sonic dan error handler yang menulis envelope.
func NewApp(log *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		BodyLimit:             8 * 1024 * 1024, // CSV 5MB + overhead multipart
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          ErrorHandler(log),
	})
}

// ErrorHandler: *fiber.Error (404 route, body terlalu besar, panic) → envelope yang sama.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			msg := fe.Message
			if fe.Code == fiber.StatusNotFound {
				msg = constants.MsgNotFound
			}
			return helper.JsonError(c, fe.Code, msg)
		}
		return helper.FromError(c, log, err, constants.MsgInternalError)
	}
}
