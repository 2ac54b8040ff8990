// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/configs"
	"manrelbdg_backend/internals/constants"
	userModel "manrelbdg_backend/internals/features/users/user/model"
	helper "manrelbdg_backend/internals/helpers"
	helpersAuth "manrelbdg_backend/internals/helpers/auth"
)

// Key Locals yang diisi setelah autentikasi berhasil.
const (
	LocUser   = "user"
	LocUserID = "user_id"
	LocRole   = "userRole"
)

// Result adalah hasil satu kali verifikasi kredensial.
type Result struct {
	Authenticated bool
	User          *userModel.UserModel
	Error         string
}

// Authenticate: token dari header/cookie → verifikasi → user harus ada & aktif.
// Tidak mengubah state dan tidak retry. Error non-nil hanya untuk kegagalan database.
func Authenticate(c *fiber.Ctx, db *gorm.DB, cfg *configs.Config) (Result, error) {
	raw := helper.GetRawAccessToken(c, cfg.CookieName)
	if raw == "" {
		return Result{Error: constants.MsgNoToken}, nil
	}

	_, userID, err := helpersAuth.ParseToken(cfg.JWTSecret, raw)
	if err != nil {
		return Result{Error: constants.MsgInvalidToken}, nil
	}

	var user userModel.UserModel
	if err := db.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{Error: constants.MsgInvalidToken}, nil
		}
		return Result{}, err
	}
	if !user.IsActive {
		return Result{Error: constants.MsgUserInactive}, nil
	}
	return Result{Authenticated: true, User: &user}, nil
}

func AuthMiddleware(db *gorm.DB, cfg *configs.Config, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := Authenticate(c, db, cfg)
		if err != nil {
			return helper.FromError(c, log, err, "Authentication failed")
		}
		if !res.Authenticated {
			return helper.JsonError(c, fiber.StatusUnauthorized, res.Error)
		}

		c.Locals(LocUser, res.User)
		c.Locals(LocUserID, res.User.ID.String())
		c.Locals(LocRole, res.User.Role)
		return c.Next()
	}
}

// CurrentUser mengambil user yang sudah diverifikasi AuthMiddleware.
func CurrentUser(c *fiber.Ctx) *userModel.UserModel {
	u, _ := c.Locals(LocUser).(*userModel.UserModel)
	return u
}

func CurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	if u := CurrentUser(c); u != nil {
		return u.ID, true
	}
	return uuid.Nil, false
}
