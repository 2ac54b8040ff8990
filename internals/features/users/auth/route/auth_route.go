package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/configs"
	controller "manrelbdg_backend/internals/features/users/auth/controller"
	rateLimiter "manrelbdg_backend/internals/middlewares"
	authMw "manrelbdg_backend/internals/middlewares/auth"
)

// AuthRoutes → /api/auth
func AuthRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	authController := controller.NewAuthController(db, cfg, log)
	authRequired := authMw.AuthMiddleware(db, cfg, log)

	loginLimiter := rateLimiter.Passthrough
	if cfg.RateLimitEnabled {
		loginLimiter = rateLimiter.LoginRateLimiter()
	}

	baseAuth := api.Group("/auth")

	// 🔓 Public
	baseAuth.Post("/login", loginLimiter, authController.Login)
	baseAuth.Post("/logout", authController.Logout)

	// 🔐 Protected
	baseAuth.Get("/me", authRequired, authController.Me)
	baseAuth.Put("/profile", authRequired, authController.UpdateProfile)
	baseAuth.Put("/change-password", authRequired, authController.ChangePassword)
	baseAuth.Post("/register", authRequired, authMw.CanManageUsers(), authController.Register)
}
