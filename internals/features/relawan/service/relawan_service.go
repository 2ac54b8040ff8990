package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/constants"
	dapilService "manrelbdg_backend/internals/features/dapil/service"
	koordinatorService "manrelbdg_backend/internals/features/koordinator/service"
	"manrelbdg_backend/internals/features/relawan/dto"
	"manrelbdg_backend/internals/features/relawan/model"
	helper "manrelbdg_backend/internals/helpers"
)

const (
	MsgRelawanNotFound = "Relawan tidak ditemukan"
	MsgNIKTaken        = "NIK sudah terdaftar"
	MsgImportRowFailed = "Gagal menyimpan data"

	relawanTable        = "relawans"
	defaultRelawanOrder = "created_at DESC"
)

var relawanSortColumns = map[string]string{
	"kode":         "kode",
	"nama":         "nama",
	"nik":          "nik",
	"status":       "status",
	"kelurahan":    "kelurahan",
	"kecamatan":    "kecamatan",
	"tanggalLahir": "tanggal_lahir",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
}

type ListFilter struct {
	DapilID       *uuid.UUID
	KoordinatorID *uuid.UUID
	Status        string
}

type RelawanService struct {
	DB          *gorm.DB
	Dapil       *dapilService.DapilService
	Koordinator *koordinatorService.KoordinatorService
	Log         *zap.Logger
}

func NewRelawanService(db *gorm.DB) *RelawanService {
	return &RelawanService{
		DB:          db,
		Dapil:       dapilService.NewDapilService(db),
		Koordinator: koordinatorService.NewKoordinatorService(db),
		Log:         zap.NewNop(),
	}
}

func withRefs(db *gorm.DB) *gorm.DB {
	return db.Preload("Dapil").Preload("Koordinator").Preload("CreatedBy")
}

func (s *RelawanService) filtered(p helper.Params, f ListFilter) func() *gorm.DB {
	return func() *gorm.DB {
		q := s.DB.Model(&model.RelawanModel{})
		if f.DapilID != nil {
			q = q.Where("dapil_id = ?", *f.DapilID)
		}
		if f.KoordinatorID != nil {
			q = q.Where("koordinator_id = ?", *f.KoordinatorID)
		}
		if constants.IsValidStatus(f.Status) {
			q = q.Where("status = ?", f.Status)
		}
		return helper.ApplySearch(q, p.Search, "nama", "nik", "no_hp", "alamat")
	}
}

// ========================== READ ==========================

func (s *RelawanService) List(ctx context.Context, p helper.Params, f ListFilter) ([]dto.RelawanResponse, int64, error) {
	rows, total, err := helper.FetchPage[model.RelawanModel](ctx, s.filtered(p, f), p,
		p.OrderClause(relawanSortColumns, defaultRelawanOrder), withRefs)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.RelawanResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewRelawanResponse(r))
	}
	return out, total, nil
}

// ExportRows: hasil filter sesuai p; batas baris sudah diterapkan lewat helper.ExportOptions.
func (s *RelawanService) ExportRows(ctx context.Context, p helper.Params, f ListFilter) ([]model.RelawanModel, error) {
	var rows []model.RelawanModel
	err := s.filtered(p, f)().WithContext(ctx).
		Preload("Dapil").
		Preload("Koordinator").
		Order(p.OrderClause(relawanSortColumns, defaultRelawanOrder)).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&rows).Error
	return rows, err
}

func (s *RelawanService) GetByID(ctx context.Context, id uuid.UUID) (*dto.RelawanResponse, error) {
	var m model.RelawanModel
	err := withRefs(s.DB.WithContext(ctx)).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound(MsgRelawanNotFound)
	}
	if err != nil {
		return nil, err
	}
	out := dto.NewRelawanResponse(m)
	return &out, nil
}

func (s *RelawanService) FindByNIK(ctx context.Context, nik string) (*model.RelawanModel, error) {
	return s.findBy(ctx, "nik = ?", nik)
}

// ========================== WRITE ==========================

// Create: cek NIK → cek dapil → cek koordinator (bila ada) → generate kode + insert.
// Semua penolakan terjadi sebelum ada baris yang ditulis.
func (s *RelawanService) Create(ctx context.Context, req dto.CreateRelawanRequest, actorID *uuid.UUID) (*dto.RelawanResponse, error) {
	existing, err := s.FindByNIK(ctx, req.NIK)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, helper.Conflict(MsgNIKTaken)
	}
	if err := s.requireDapil(ctx, req.DapilID); err != nil {
		return nil, err
	}
	if req.KoordinatorID != "" {
		if err := s.requireKoordinator(ctx, req.KoordinatorID); err != nil {
			return nil, err
		}
	}

	m, err := s.insert(ctx, req.ToModel(actorID))
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, m.ID)
}

func (s *RelawanService) insert(ctx context.Context, m *model.RelawanModel) (*model.RelawanModel, error) {
	db := s.DB.WithContext(ctx)
	_, err := helper.CreateWithKode(db, relawanTable, constants.KodePrefixRelawan, func(kode string) error {
		m.Kode = kode
		return db.Create(m).Error
	})
	if err != nil {
		if helper.IsUniqueViolationOn(err, "nik") {
			return nil, helper.Conflict(MsgNIKTaken)
		}
		return nil, err
	}
	return m, nil
}

func (s *RelawanService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRelawanRequest) (*dto.RelawanResponse, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyUpdate(ctx, m, req); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// applyUpdate: NIK dicek ulang hanya bila berubah; referensi dicek hanya bila dikirim.
func (s *RelawanService) applyUpdate(ctx context.Context, m *model.RelawanModel, req dto.UpdateRelawanRequest) error {
	if req.NIK != nil && *req.NIK != m.NIK {
		other, err := s.FindByNIK(ctx, *req.NIK)
		if err != nil {
			return err
		}
		if other != nil {
			return helper.Conflict(MsgNIKTaken)
		}
	}
	if req.DapilID != nil {
		if err := s.requireDapil(ctx, *req.DapilID); err != nil {
			return err
		}
	}
	if req.KoordinatorID != nil && *req.KoordinatorID != "" {
		if err := s.requireKoordinator(ctx, *req.KoordinatorID); err != nil {
			return err
		}
	}

	up := req.ToUpdates()
	if len(up) == 0 {
		return nil
	}
	if err := s.DB.WithContext(ctx).Model(m).Updates(up).Error; err != nil {
		if helper.IsUniqueViolationOn(err, "nik") {
			return helper.Conflict(MsgNIKTaken)
		}
		return err
	}
	return nil
}

// Delete mengembalikan baris yang dihapus (untuk membersihkan foto).
func (s *RelawanService) Delete(ctx context.Context, id uuid.UUID) (*model.RelawanModel, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Delete(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// SetFoto menyimpan URL foto baru dan mengembalikan URL lama.
func (s *RelawanService) SetFoto(ctx context.Context, id uuid.UUID, url string) (*string, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	// jangan Model(m): gorm menulis balik ke m.Foto, pointer yang sama dengan old
	old := m.Foto
	if err := s.DB.WithContext(ctx).Model(&model.RelawanModel{}).Where("id = ?", m.ID).Update("foto", url).Error; err != nil {
		return nil, err
	}
	return old, nil
}

// ========================== INTERNAL ==========================

func (s *RelawanService) find(ctx context.Context, id uuid.UUID) (*model.RelawanModel, error) {
	m, err := s.findBy(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, helper.NotFound(MsgRelawanNotFound)
	}
	return m, nil
}

func (s *RelawanService) findBy(ctx context.Context, cond string, arg any) (*model.RelawanModel, error) {
	var m model.RelawanModel
	err := s.DB.WithContext(ctx).Where(cond, arg).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *RelawanService) requireDapil(ctx context.Context, raw string) error {
	id, err := uuid.Parse(raw)
	if err != nil {
		return helper.NotFound(dapilService.MsgDapilNotFound)
	}
	ok, err := s.Dapil.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return helper.NotFound(dapilService.MsgDapilNotFound)
	}
	return nil
}

func (s *RelawanService) requireKoordinator(ctx context.Context, raw string) error {
	id, err := uuid.Parse(raw)
	if err != nil {
		return helper.NotFound(koordinatorService.MsgKoordinatorNotFound)
	}
	ok, err := s.Koordinator.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return helper.NotFound(koordinatorService.MsgKoordinatorNotFound)
	}
	return nil
}
