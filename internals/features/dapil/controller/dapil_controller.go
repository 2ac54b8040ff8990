package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/constants"
	"manrelbdg_backend/internals/features/dapil/dto"
	"manrelbdg_backend/internals/features/dapil/service"
	helper "manrelbdg_backend/internals/helpers"
)

type DapilController struct {
	Log     *zap.Logger
	Service *service.DapilService
}

func NewDapilController(db *gorm.DB, log *zap.Logger) *DapilController {
	return &DapilController{Log: log, Service: service.NewDapilService(db)}
}

// GET /api/dapil
func (dc *DapilController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)
	rows, total, err := dc.Service.List(c.UserContext(), p, service.ListFilter{Provinsi: c.Query("provinsi")})
	if err != nil {
		return helper.FromError(c, dc.Log, err, "Gagal mengambil data dapil")
	}
	return helper.JsonList(c, rows, helper.BuildPagination(total, p.Page, p.Limit))
}

// GET /api/dapil/:id
func (dc *DapilController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgDapilNotFound)
	}
	row, err := dc.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, dc.Log, err, "Gagal mengambil data dapil")
	}
	return helper.JsonOK(c, "", row)
}

// POST /api/dapil
func (dc *DapilController) Create(c *fiber.Ctx) error {
	var req dto.CreateDapilRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, dc.Log, err, "")
	}

	row, err := dc.Service.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, dc.Log, err, "Gagal menambahkan dapil")
	}
	return helper.JsonCreated(c, "Dapil berhasil ditambahkan", row)
}

// PUT /api/dapil/:id
func (dc *DapilController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgDapilNotFound)
	}
	var req dto.UpdateDapilRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, dc.Log, err, "")
	}

	row, err := dc.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromError(c, dc.Log, err, "Gagal memperbarui dapil")
	}
	return helper.JsonUpdated(c, "Dapil berhasil diperbarui", row)
}

// DELETE /api/dapil/:id
func (dc *DapilController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgDapilNotFound)
	}
	if err := dc.Service.Delete(c.UserContext(), id); err != nil {
		return helper.FromError(c, dc.Log, err, "Gagal menghapus dapil")
	}
	return helper.JsonDeleted(c, "Dapil berhasil dihapus")
}
