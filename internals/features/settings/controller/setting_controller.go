package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/constants"
	"manrelbdg_backend/internals/features/settings/dto"
	"manrelbdg_backend/internals/features/settings/service"
	helper "manrelbdg_backend/internals/helpers"
)

type SettingController struct {
	Log     *zap.Logger
	Service *service.SettingService
}

func NewSettingController(db *gorm.DB, log *zap.Logger) *SettingController {
	return &SettingController{Log: log, Service: service.NewSettingService(db)}
}

// GET /api/settings?category=
func (sc *SettingController) List(c *fiber.Ctx) error {
	rows, err := sc.Service.List(c.UserContext(), c.Query("category"))
	if err != nil {
		return helper.FromError(c, sc.Log, err, "Gagal mengambil data setting")
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/settings/:key
func (sc *SettingController) Get(c *fiber.Ctx) error {
	row, err := sc.Service.Get(c.UserContext(), c.Params("key"))
	if err != nil {
		return helper.FromError(c, sc.Log, err, "Gagal mengambil data setting")
	}
	return helper.JsonOK(c, "", row)
}

// PUT /api/settings/:key
func (sc *SettingController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, sc.Log, err, "")
	}

	row, created, err := sc.Service.Upsert(c.UserContext(), c.Params("key"), req)
	if err != nil {
		return helper.FromError(c, sc.Log, err, "Gagal menyimpan setting")
	}
	if created {
		return helper.JsonCreated(c, "Setting berhasil ditambahkan", row)
	}
	return helper.JsonUpdated(c, "Setting berhasil diperbarui", row)
}
