package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/configs"
	helperOSS "manrelbdg_backend/internals/helpers/oss"
	"manrelbdg_backend/internals/middlewares"
	authMw "manrelbdg_backend/internals/middlewares/auth"
	routeDetails "manrelbdg_backend/internals/route/details"
)

// Deps dibangun sekali di main (atau di test) lalu diteruskan ke semua route.
type Deps struct {
	DB      *gorm.DB
	Cfg     *configs.Config
	Log     *zap.Logger
	Store   helperOSS.Storage // nil → upload foto tidak dipasang
	Started time.Time
}

// SetupRoutes memasang middleware global, route publik, lalu route terproteksi per prefix.
// Auth dipasang per prefix (bukan di seluruh /api) supaya route tak dikenal tetap 404.
func SetupRoutes(app *fiber.App, d Deps) {
	if d.Started.IsZero() {
		d.Started = time.Now()
	}
	log := d.Log

	middlewares.SetupMiddlewares(app, d.Cfg, log)
	BaseRoutes(app, d.Cfg)

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Info("[ROUTE] public: auth, health")
	routeDetails.AuthRoutes(api, d.DB, d.Cfg, log)
	routeDetails.HealthRoutes(app, api, d.DB, log, d.Started)

	// ===================== PROTECTED =====================
	authRequired := authMw.AuthMiddleware(d.DB, d.Cfg, log)
	for _, prefix := range routeDetails.ProtectedPrefixes(d.Cfg) {
		api.Use(prefix, authRequired)
	}
	api.Use("/users", authRequired, authMw.CanManageUsers())

	log.Info("[ROUTE] protected: dapil, koordinator, relawan, dashboard, settings, users")
	routeDetails.DataRoutes(api, d.DB, d.Cfg, log, d.Store)
	routeDetails.DashboardRoutes(api, d.DB, d.Cfg, log)
	routeDetails.SettingRoutes(api, d.DB, log)
	routeDetails.UserRoutes(api, d.DB, log)

	app.Use(func(c *fiber.Ctx) error { return fiber.ErrNotFound })
}
