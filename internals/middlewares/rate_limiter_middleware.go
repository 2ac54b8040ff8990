package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "manrelbdg_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(300, 1*time.Minute, "Terlalu banyak permintaan. Silakan coba lagi nanti.")
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, 1*time.Minute, "Terlalu banyak percobaan login. Coba beberapa saat lagi.")
}

// Rate limiter untuk import CSV (berat)
func ImportRateLimiter() fiber.Handler {
	return newLimiter(5, 5*time.Minute, "Terlalu banyak proses import. Tunggu beberapa menit ya.")
}

// Passthrough dipakai saat rate limit dimatikan (test / dev).
func Passthrough(c *fiber.Ctx) error { return c.Next() }
