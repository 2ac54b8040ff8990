package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/configs"
	dapilRoute "manrelbdg_backend/internals/features/dapil/route"
	dashboardRoute "manrelbdg_backend/internals/features/dashboard/route"
	koordinatorRoute "manrelbdg_backend/internals/features/koordinator/route"
	relawanRoute "manrelbdg_backend/internals/features/relawan/route"
	helperOSS "manrelbdg_backend/internals/helpers/oss"
)

// ProtectedPrefixes: prefix di bawah /api yang wajib login.
func ProtectedPrefixes(cfg *configs.Config) []string {
	out := []string{"/dapil", "/koordinator", "/relawan", "/settings"}
	if cfg.Client.Features.Dashboard {
		out = append(out, "/dashboard")
	}
	return out
}

// DataRoutes → /api/dapil, /api/koordinator, /api/relawan
func DataRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config, log *zap.Logger, store helperOSS.Storage) {
	dapilRoute.DapilRoutes(api, db, log)
	koordinatorRoute.KoordinatorRoutes(api, db, cfg, log, store)
	relawanRoute.RelawanRoutes(api, db, cfg, log, store)
}

// DashboardRoutes → /api/dashboard, hanya bila fitur dashboard aktif untuk tenant.
func DashboardRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	if !cfg.Client.Features.Dashboard {
		return
	}
	dashboardRoute.DashboardRoutes(api, db, log)
}
