package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/configs"
	"manrelbdg_backend/internals/constants"
	"manrelbdg_backend/internals/features/users/auth/dto"
	"manrelbdg_backend/internals/features/users/auth/service"
	helper "manrelbdg_backend/internals/helpers"
	authMw "manrelbdg_backend/internals/middlewares/auth"
)

type AuthController struct {
	Cfg     *configs.Config
	Log     *zap.Logger
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB, cfg *configs.Config, log *zap.Logger) *AuthController {
	return &AuthController{Cfg: cfg, Log: log, Service: service.NewAuthService(db, cfg)}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, ac.Log, err, "")
	}

	user, token, exp, err := ac.Service.Login(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, ac.Log, err, "Login failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     ac.Cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		MaxAge:   int(ac.Cfg.TokenTTL.Seconds()),
		HTTPOnly: true,
		Secure:   ac.Cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	ac.Log.Info("login", zap.String("user_id", user.ID.String()), zap.String("role", user.Role))
	return helper.JsonOK(c, "Login successful", dto.LoginResponse{User: user, Token: token})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     ac.Cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   ac.Cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return helper.JsonOK(c, "Logged out successfully", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	user := authMw.CurrentUser(c)
	if user == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, constants.MsgNoToken)
	}
	return helper.JsonOK(c, "User authenticated", fiber.Map{"user": user})
}

// POST /api/auth/register (ADMIN)
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, ac.Log, err, "")
	}

	user, err := ac.Service.Register(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, ac.Log, err, "Failed to create user")
	}
	return helper.JsonCreated(c, "User created successfully", fiber.Map{"user": user})
}

// PUT /api/auth/profile
func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, ac.Log, err, "")
	}

	user, err := ac.Service.UpdateProfile(c.UserContext(), authMw.CurrentUser(c), req)
	if err != nil {
		return helper.FromError(c, ac.Log, err, "Failed to update profile")
	}
	return helper.JsonUpdated(c, "Profile updated successfully", user)
}

// PUT /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgInvalidBody)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, ac.Log, err, "")
	}

	if err := ac.Service.ChangePassword(c.UserContext(), authMw.CurrentUser(c), req); err != nil {
		return helper.FromError(c, ac.Log, err, "Failed to change password")
	}
	return helper.JsonOK(c, "Password changed successfully", nil)
}
