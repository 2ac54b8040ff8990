package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/constants"
	dapilService "manrelbdg_backend/internals/features/dapil/service"
	"manrelbdg_backend/internals/features/koordinator/dto"
	"manrelbdg_backend/internals/features/koordinator/model"
	relawanModel "manrelbdg_backend/internals/features/relawan/model"
	helper "manrelbdg_backend/internals/helpers"
)

const (
	MsgKoordinatorNotFound = "Koordinator tidak ditemukan"
	MsgNIKTaken            = "NIK sudah terdaftar"
	MsgKoordinatorInUse    = "Koordinator masih membina relawan"
	MsgImportRowFailed     = "Gagal menyimpan data"

	koordinatorTable        = "koordinators"
	defaultKoordinatorOrder = "created_at DESC"
)

var koordinatorSortColumns = map[string]string{
	"kode":      "kode",
	"nama":      "nama",
	"nik":       "nik",
	"status":    "status",
	"kelurahan": "kelurahan",
	"kecamatan": "kecamatan",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type ListFilter struct {
	DapilID *uuid.UUID
	Status  string
}

type KoordinatorService struct {
	DB    *gorm.DB
	Dapil *dapilService.DapilService
	Log   *zap.Logger
}

func NewKoordinatorService(db *gorm.DB) *KoordinatorService {
	return &KoordinatorService{DB: db, Dapil: dapilService.NewDapilService(db), Log: zap.NewNop()}
}

func withRefs(db *gorm.DB) *gorm.DB {
	return db.Preload("Dapil").Preload("CreatedBy")
}

func (s *KoordinatorService) filtered(p helper.Params, f ListFilter) func() *gorm.DB {
	return func() *gorm.DB {
		q := s.DB.Model(&model.KoordinatorModel{})
		if f.DapilID != nil {
			q = q.Where("dapil_id = ?", *f.DapilID)
		}
		if constants.IsValidStatus(f.Status) {
			q = q.Where("status = ?", f.Status)
		}
		return helper.ApplySearch(q, p.Search, "nama", "nik", "no_hp", "alamat", "kode")
	}
}

// ========================== READ ==========================

func (s *KoordinatorService) List(ctx context.Context, p helper.Params, f ListFilter) ([]dto.KoordinatorResponse, int64, error) {
	rows, total, err := helper.FetchPage[model.KoordinatorModel](ctx, s.filtered(p, f), p,
		p.OrderClause(koordinatorSortColumns, defaultKoordinatorOrder), withRefs)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	counts, err := s.relawanCounts(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.KoordinatorResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewKoordinatorResponse(r, counts[r.ID]))
	}
	return out, total, nil
}

// ExportRows: hasil filter sesuai p; batas baris sudah diterapkan lewat helper.ExportOptions.
func (s *KoordinatorService) ExportRows(ctx context.Context, p helper.Params, f ListFilter) ([]model.KoordinatorModel, error) {
	var rows []model.KoordinatorModel
	err := s.filtered(p, f)().WithContext(ctx).
		Preload("Dapil").
		Order(p.OrderClause(koordinatorSortColumns, defaultKoordinatorOrder)).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&rows).Error
	return rows, err
}

func (s *KoordinatorService) GetByID(ctx context.Context, id uuid.UUID) (*dto.KoordinatorResponse, error) {
	var m model.KoordinatorModel
	err := withRefs(s.DB.WithContext(ctx)).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound(MsgKoordinatorNotFound)
	}
	if err != nil {
		return nil, err
	}
	counts, err := s.relawanCounts(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	out := dto.NewKoordinatorResponse(m, counts[id])
	return &out, nil
}

func (s *KoordinatorService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.KoordinatorModel{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// FindByKode → nil tanpa error bila tidak ada.
func (s *KoordinatorService) FindByKode(ctx context.Context, kode string) (*model.KoordinatorModel, error) {
	return s.findBy(ctx, "kode = ?", kode)
}

func (s *KoordinatorService) FindByNIK(ctx context.Context, nik string) (*model.KoordinatorModel, error) {
	return s.findBy(ctx, "nik = ?", nik)
}

// ========================== WRITE ==========================

// Create: cek NIK → cek dapil → generate kode + insert.
func (s *KoordinatorService) Create(ctx context.Context, req dto.CreateKoordinatorRequest, actorID *uuid.UUID) (*dto.KoordinatorResponse, error) {
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

	m, err := s.insert(ctx, req.ToModel(actorID))
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, m.ID)
}

func (s *KoordinatorService) insert(ctx context.Context, m *model.KoordinatorModel) (*model.KoordinatorModel, error) {
	db := s.DB.WithContext(ctx)
	_, err := helper.CreateWithKode(db, koordinatorTable, constants.KodePrefixKoordinator, func(kode string) error {
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

func (s *KoordinatorService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateKoordinatorRequest) (*dto.KoordinatorResponse, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyUpdate(ctx, m, req); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *KoordinatorService) applyUpdate(ctx context.Context, m *model.KoordinatorModel, req dto.UpdateKoordinatorRequest) error {
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
func (s *KoordinatorService) Delete(ctx context.Context, id uuid.UUID) (*model.KoordinatorModel, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	db := s.DB.WithContext(ctx)
	var n int64
	if err := db.Model(&relawanModel.RelawanModel{}).Where("koordinator_id = ?", id).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, helper.Conflict(MsgKoordinatorInUse)
	}
	if err := db.Delete(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// SetFoto menyimpan URL foto baru dan mengembalikan URL lama.
func (s *KoordinatorService) SetFoto(ctx context.Context, id uuid.UUID, url string) (*string, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	// jangan Model(m): gorm menulis balik ke m.Foto, pointer yang sama dengan old
	old := m.Foto
	if err := s.DB.WithContext(ctx).Model(&model.KoordinatorModel{}).Where("id = ?", m.ID).Update("foto", url).Error; err != nil {
		return nil, err
	}
	return old, nil
}

// ========================== INTERNAL ==========================

func (s *KoordinatorService) find(ctx context.Context, id uuid.UUID) (*model.KoordinatorModel, error) {
	m, err := s.findBy(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, helper.NotFound(MsgKoordinatorNotFound)
	}
	return m, nil
}

func (s *KoordinatorService) findBy(ctx context.Context, cond string, arg any) (*model.KoordinatorModel, error) {
	var m model.KoordinatorModel
	err := s.DB.WithContext(ctx).Where(cond, arg).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *KoordinatorService) requireDapil(ctx context.Context, raw string) error {
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

type koordinatorCount struct {
	KoordinatorID uuid.UUID
	Total         int64
}

func (s *KoordinatorService) relawanCounts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := map[uuid.UUID]int64{}
	if len(ids) == 0 {
		return out, nil
	}
	var counts []koordinatorCount
	err := s.DB.WithContext(ctx).Model(&relawanModel.RelawanModel{}).
		Select("koordinator_id, COUNT(*) AS total").
		Where("koordinator_id IN ?", ids).
		Group("koordinator_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	for _, c := range counts {
		out[c.KoordinatorID] = c.Total
	}
	return out, nil
}
