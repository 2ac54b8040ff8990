package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	settingRoute "manrelbdg_backend/internals/features/settings/route"
	userRoute "manrelbdg_backend/internals/features/users/user/route"
)

// UserRoutes → /api/users (ADMIN)
func UserRoutes(api fiber.Router, db *gorm.DB, log *zap.Logger) {
	userRoute.UserAdminRoutes(api, db, log)
}

// SettingRoutes → /api/settings
func SettingRoutes(api fiber.Router, db *gorm.DB, log *zap.Logger) {
	settingRoute.SettingRoutes(api, db, log)
}
