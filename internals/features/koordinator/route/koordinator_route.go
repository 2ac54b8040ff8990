package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/configs"
	"manrelbdg_backend/internals/features/koordinator/controller"
	helperOSS "manrelbdg_backend/internals/helpers/oss"
	rateLimiter "manrelbdg_backend/internals/middlewares"
	authMw "manrelbdg_backend/internals/middlewares/auth"
)

// KoordinatorRoutes → /api/koordinator (router sudah melewati AuthMiddleware)
func KoordinatorRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config, log *zap.Logger, store helperOSS.Storage) {
	ctrl := controller.NewKoordinatorController(db, cfg, log, store)
	features := cfg.Client.Features

	importLimiter := rateLimiter.Passthrough
	if cfg.RateLimitEnabled {
		importLimiter = rateLimiter.ImportRateLimiter()
	}

	g := r.Group("/koordinator")

	// path statis sebelum /:id
	if features.Export {
		g.Get("/export", authMw.CanViewData(), ctrl.Export)
	}
	if features.Import {
		g.Post("/import", authMw.CanEditData(), importLimiter, ctrl.Import)
	}

	g.Get("/", authMw.CanViewData(), ctrl.List)
	g.Get("/:id", authMw.CanViewData(), ctrl.Get)
	g.Post("/", authMw.CanEditData(), ctrl.Create)
	g.Put("/:id", authMw.CanEditData(), ctrl.Update)
	g.Delete("/:id", authMw.CanEditData(), ctrl.Delete)

	if features.PhotoUpload && store != nil {
		g.Post("/:id/foto", authMw.CanEditData(), ctrl.UploadFoto)
	}
}
