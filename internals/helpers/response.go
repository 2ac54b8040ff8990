package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AppError membawa status HTTP + pesan yang aman ditampilkan ke client.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string { return fmt.Sprintf("%d: %s", e.Status, e.Message) }

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func BadRequest(msg string) *AppError   { return NewAppError(fiber.StatusBadRequest, msg) }
func Unauthorized(msg string) *AppError { return NewAppError(fiber.StatusUnauthorized, msg) }
func Forbidden(msg string) *AppError    { return NewAppError(fiber.StatusForbidden, msg) }
func NotFound(msg string) *AppError     { return NewAppError(fiber.StatusNotFound, msg) }
func Conflict(msg string) *AppError     { return NewAppError(fiber.StatusConflict, msg) }

// FromError menulis error ke envelope.
// *AppError & *fiber.Error diteruskan apa adanya; selain itu dicatat lalu jadi 500
// dengan pesan generic (detail tidak pernah bocor ke client).
func FromError(c *fiber.Ctx, log *zap.Logger, err error, fallback string) error {
	var ae *AppError
	if errors.As(err, &ae) {
		return JsonError(c, ae.Status, ae.Message)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	if log != nil {
		log.Error(fallback,
			zap.Error(err),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Any("reqid", c.Locals("reqid")),
		)
	}
	if fallback == "" {
		fallback = defaultErrorMessages[fiber.StatusInternalServerError]
	}
	return JsonError(c, fiber.StatusInternalServerError, fallback)
}
