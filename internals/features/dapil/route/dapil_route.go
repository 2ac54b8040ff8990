package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/features/dapil/controller"
	authMw "manrelbdg_backend/internals/middlewares/auth"
)

// DapilRoutes → /api/dapil (router sudah melewati AuthMiddleware)
func DapilRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctrl := controller.NewDapilController(db, log)

	g := r.Group("/dapil")
	g.Get("/", authMw.CanViewData(), ctrl.List)
	g.Get("/:id", authMw.CanViewData(), ctrl.Get)
	g.Post("/", authMw.CanEditData(), ctrl.Create)
	g.Put("/:id", authMw.CanEditData(), ctrl.Update)
	g.Delete("/:id", authMw.CanEditData(), ctrl.Delete)
}
