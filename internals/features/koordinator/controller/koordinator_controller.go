package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/configs"
	"manrelbdg_backend/internals/constants"
	"manrelbdg_backend/internals/features/koordinator/dto"
	"manrelbdg_backend/internals/features/koordinator/service"
	helper "manrelbdg_backend/internals/helpers"
	"manrelbdg_backend/internals/helpers/csvutil"
	helperOSS "manrelbdg_backend/internals/helpers/oss"
	authMw "manrelbdg_backend/internals/middlewares/auth"
)

type KoordinatorController struct {
	Cfg     *configs.Config
	Log     *zap.Logger
	Store   helperOSS.Storage
	Service *service.KoordinatorService
}

func NewKoordinatorController(db *gorm.DB, cfg *configs.Config, log *zap.Logger, store helperOSS.Storage) *KoordinatorController {
	svc := service.NewKoordinatorService(db)
	svc.Log = log
	return &KoordinatorController{Cfg: cfg, Log: log, Store: store, Service: svc}
}

func parseFilter(c *fiber.Ctx) (service.ListFilter, error) {
	dapilID, err := helper.ParseUUIDQuery(c, "dapilId")
	if err != nil {
		return service.ListFilter{}, err
	}
	return service.ListFilter{DapilID: dapilID, Status: c.Query("status")}, nil
}

// GET /api/koordinator
func (kc *KoordinatorController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)
	f, err := parseFilter(c)
	if err != nil {
		return helper.FromError(c, kc.Log, err, "")
	}
	rows, total, err := kc.Service.List(c.UserContext(), p, f)
	if err != nil {
		return helper.FromError(c, kc.Log, err, "Gagal mengambil data koordinator")
	}
	return helper.JsonList(c, rows, helper.BuildPagination(total, p.Page, p.Limit))
}

// GET /api/koordinator/:id
func (kc *KoordinatorController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgKoordinatorNotFound)
	}
	row, err := kc.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, kc.Log, err, "Gagal mengambil data koordinator")
	}
	return helper.JsonOK(c, "", row)
}

// POST /api/koordinator
func (kc *KoordinatorController) Create(c *fiber.Ctx) error {
	var req dto.CreateKoordinatorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, kc.Log, err, "")
	}

	actorID, _ := authMw.CurrentUserID(c)
	row, err := kc.Service.Create(c.UserContext(), req, &actorID)
	if err != nil {
		return helper.FromError(c, kc.Log, err, "Gagal menambahkan koordinator")
	}
	return helper.JsonCreated(c, "Koordinator berhasil ditambahkan", row)
}

// PUT /api/koordinator/:id
func (kc *KoordinatorController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgKoordinatorNotFound)
	}
	var req dto.UpdateKoordinatorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, kc.Log, err, "")
	}

	row, err := kc.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromError(c, kc.Log, err, "Gagal memperbarui koordinator")
	}
	return helper.JsonUpdated(c, "Koordinator berhasil diperbarui", row)
}

// DELETE /api/koordinator/:id
func (kc *KoordinatorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgKoordinatorNotFound)
	}
	deleted, err := kc.Service.Delete(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, kc.Log, err, "Gagal menghapus koordinator")
	}
	kc.removePhoto(c, deleted.Foto)
	return helper.JsonDeleted(c, "Koordinator berhasil dihapus")
}

// GET /api/koordinator/export
func (kc *KoordinatorController) Export(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.ExportOptions(kc.Cfg.ExportMaxRows))
	f, err := parseFilter(c)
	if err != nil {
		return helper.FromError(c, kc.Log, err, "")
	}
	rows, err := kc.Service.ExportRows(c.UserContext(), p, f)
	if err != nil {
		return helper.FromError(c, kc.Log, err, "Gagal export koordinator")
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, service.ExportRecord(r))
	}
	return csvutil.SendCSV(c, "koordinator", service.ExportColumns, records)
}

// POST /api/koordinator/import (multipart: file, skipDuplicates, updateExisting)
func (kc *KoordinatorController) Import(c *fiber.Ctx) error {
	rows, err := csvutil.ReadUpload(c, service.RequiredImportColumns, kc.Cfg.ImportMaxRows)
	if err != nil {
		return helper.FromError(c, kc.Log, err, "")
	}
	opt := csvutil.ImportOptions{
		SkipDuplicates: helper.FormBool(c, "skipDuplicates", true),
		UpdateExisting: helper.FormBool(c, "updateExisting", false),
	}

	actorID, _ := authMw.CurrentUserID(c)
	res, err := kc.Service.Import(c.UserContext(), rows, opt, &actorID)
	if err != nil {
		return helper.FromError(c, kc.Log, err, "Import koordinator gagal")
	}
	kc.Log.Info("koordinator import",
		zap.Int("total", res.Total), zap.Int("created", res.Created),
		zap.Int("updated", res.Updated), zap.Int("failed", res.Failed))
	return helper.JsonOK(c, "Import koordinator selesai", res)
}

// POST /api/koordinator/:id/foto
func (kc *KoordinatorController) UploadFoto(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgKoordinatorNotFound)
	}
	current, err := kc.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, kc.Log, err, "Gagal mengambil data koordinator")
	}
	fh, err := helperOSS.GetImageFile(c, "foto")
	if err != nil {
		return helper.FromError(c, kc.Log, err, "")
	}

	url, err := helperOSS.UploadPhotoAsWebP(c.UserContext(), kc.Store, fh, "koordinator", current.Kode, helperOSS.WebPOptionsFromConfig(kc.Cfg.WebP))
	if err != nil {
		return helper.FromError(c, kc.Log, err, "Gagal mengunggah foto")
	}
	old, err := kc.Service.SetFoto(c.UserContext(), id, url)
	if err != nil {
		return helper.FromError(c, kc.Log, err, "Gagal menyimpan foto")
	}
	kc.removePhoto(c, old)

	row, err := kc.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, kc.Log, err, "Gagal mengambil data koordinator")
	}
	return helper.JsonUpdated(c, "Foto koordinator berhasil diperbarui", row)
}

// removePhoto: best-effort, kegagalan hanya dicatat.
func (kc *KoordinatorController) removePhoto(c *fiber.Ctx, url *string) {
	if url == nil || *url == "" || kc.Store == nil {
		return
	}
	if err := kc.Store.DeleteByPublicURL(c.UserContext(), *url); err != nil {
		kc.Log.Warn("hapus foto lama gagal", zap.String("url", *url), zap.Error(err))
	}
}
