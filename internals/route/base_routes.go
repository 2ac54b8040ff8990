package routes

import (
	"github.com/gofiber/fiber/v2"

	"manrelbdg_backend/internals/configs"
	helper "manrelbdg_backend/internals/helpers"
	"manrelbdg_backend/internals/middlewares"
)

func BaseRoutes(app *fiber.App, cfg *configs.Config) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(cfg.Client.Branding.AppName + " API 🚀")
	})

	app.Get("/metrics", middlewares.MetricsHandler())

	// konfigurasi tenant read-only untuk frontend (publik)
	app.Get("/api/client-config", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "public, max-age=300")
		return helper.JsonOK(c, "", cfg.Client)
	})

	if cfg.Storage.Driver != "minio" {
		app.Static(cfg.Storage.PublicBaseURL, cfg.Storage.LocalDir, fiber.Static{ByteRange: true})
	}
}
