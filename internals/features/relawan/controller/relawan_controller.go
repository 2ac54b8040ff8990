package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/configs"
	"manrelbdg_backend/internals/constants"
	"manrelbdg_backend/internals/features/relawan/dto"
	"manrelbdg_backend/internals/features/relawan/service"
	helper "manrelbdg_backend/internals/helpers"
	"manrelbdg_backend/internals/helpers/csvutil"
	helperOSS "manrelbdg_backend/internals/helpers/oss"
	authMw "manrelbdg_backend/internals/middlewares/auth"
)

type RelawanController struct {
	Cfg     *configs.Config
	Log     *zap.Logger
	Store   helperOSS.Storage
	Service *service.RelawanService
}

func NewRelawanController(db *gorm.DB, cfg *configs.Config, log *zap.Logger, store helperOSS.Storage) *RelawanController {
	svc := service.NewRelawanService(db)
	svc.Log = log
	return &RelawanController{Cfg: cfg, Log: log, Store: store, Service: svc}
}

func parseFilter(c *fiber.Ctx) (service.ListFilter, error) {
	dapilID, err := helper.ParseUUIDQuery(c, "dapilId")
	if err != nil {
		return service.ListFilter{}, err
	}
	koordinatorID, err := helper.ParseUUIDQuery(c, "koordinatorId")
	if err != nil {
		return service.ListFilter{}, err
	}
	return service.ListFilter{DapilID: dapilID, KoordinatorID: koordinatorID, Status: c.Query("status")}, nil
}

// GET /api/relawan
func (rc *RelawanController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)
	f, err := parseFilter(c)
	if err != nil {
		return helper.FromError(c, rc.Log, err, "")
	}
	rows, total, err := rc.Service.List(c.UserContext(), p, f)
	if err != nil {
		return helper.FromError(c, rc.Log, err, "Failed to fetch relawan")
	}
	return helper.JsonList(c, rows, helper.BuildPagination(total, p.Page, p.Limit))
}

// GET /api/relawan/:id
func (rc *RelawanController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgRelawanNotFound)
	}
	row, err := rc.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, rc.Log, err, "Failed to fetch relawan")
	}
	return helper.JsonOK(c, "", row)
}

// POST /api/relawan
func (rc *RelawanController) Create(c *fiber.Ctx) error {
	var req dto.CreateRelawanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, rc.Log, err, "")
	}

	actorID, _ := authMw.CurrentUserID(c)
	row, err := rc.Service.Create(c.UserContext(), req, &actorID)
	if err != nil {
		return helper.FromError(c, rc.Log, err, "Failed to create relawan")
	}
	return helper.JsonCreated(c, "Relawan berhasil ditambahkan", row)
}

// PUT /api/relawan/:id
func (rc *RelawanController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgRelawanNotFound)
	}
	var req dto.UpdateRelawanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, rc.Log, err, "")
	}

	row, err := rc.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromError(c, rc.Log, err, "Failed to update relawan")
	}
	return helper.JsonUpdated(c, "Relawan berhasil diperbarui", row)
}

// DELETE /api/relawan/:id
func (rc *RelawanController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgRelawanNotFound)
	}
	deleted, err := rc.Service.Delete(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, rc.Log, err, "Failed to delete relawan")
	}
	rc.removePhoto(c, deleted.Foto)
	return helper.JsonDeleted(c, "Relawan berhasil dihapus")
}

// GET /api/relawan/export
func (rc *RelawanController) Export(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.ExportOptions(rc.Cfg.ExportMaxRows))
	f, err := parseFilter(c)
	if err != nil {
		return helper.FromError(c, rc.Log, err, "")
	}
	rows, err := rc.Service.ExportRows(c.UserContext(), p, f)
	if err != nil {
		return helper.FromError(c, rc.Log, err, "Failed to export relawan")
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, service.ExportRecord(r))
	}
	return csvutil.SendCSV(c, "relawan", service.ExportColumns, records)
}

// POST /api/relawan/import (multipart: file, skipDuplicates, updateExisting)
func (rc *RelawanController) Import(c *fiber.Ctx) error {
	rows, err := csvutil.ReadUpload(c, service.RequiredImportColumns, rc.Cfg.ImportMaxRows)
	if err != nil {
		return helper.FromError(c, rc.Log, err, "")
	}
	opt := csvutil.ImportOptions{
		SkipDuplicates: helper.FormBool(c, "skipDuplicates", true),
		UpdateExisting: helper.FormBool(c, "updateExisting", false),
	}

	actorID, _ := authMw.CurrentUserID(c)
	res, err := rc.Service.Import(c.UserContext(), rows, opt, &actorID)
	if err != nil {
		return helper.FromError(c, rc.Log, err, "Import relawan gagal")
	}
	rc.Log.Info("relawan import",
		zap.Int("total", res.Total), zap.Int("created", res.Created),
		zap.Int("updated", res.Updated), zap.Int("skipped", res.Skipped), zap.Int("failed", res.Failed))
	return helper.JsonOK(c, "Import relawan selesai", res)
}

// POST /api/relawan/:id/foto
func (rc *RelawanController) UploadFoto(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgRelawanNotFound)
	}
	current, err := rc.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, rc.Log, err, "Failed to fetch relawan")
	}
	fh, err := helperOSS.GetImageFile(c, "foto")
	if err != nil {
		return helper.FromError(c, rc.Log, err, "")
	}

	url, err := helperOSS.UploadPhotoAsWebP(c.UserContext(), rc.Store, fh, "relawan", current.Kode, helperOSS.WebPOptionsFromConfig(rc.Cfg.WebP))
	if err != nil {
		return helper.FromError(c, rc.Log, err, "Gagal mengunggah foto")
	}
	old, err := rc.Service.SetFoto(c.UserContext(), id, url)
	if err != nil {
		return helper.FromError(c, rc.Log, err, "Gagal menyimpan foto")
	}
	rc.removePhoto(c, old)

	row, err := rc.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, rc.Log, err, "Failed to fetch relawan")
	}
	return helper.JsonUpdated(c, "Foto relawan berhasil diperbarui", row)
}

// removePhoto: best-effort, kegagalan hanya dicatat.
func (rc *RelawanController) removePhoto(c *fiber.Ctx, url *string) {
	if url == nil || *url == "" || rc.Store == nil {
		return
	}
	if err := rc.Store.DeleteByPublicURL(c.UserContext(), *url); err != nil {
		rc.Log.Warn("hapus foto lama gagal", zap.String("url", *url), zap.Error(err))
	}
}
