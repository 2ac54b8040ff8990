package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/features/dapil/dto"
	"manrelbdg_backend/internals/features/dapil/model"
	koordinatorModel "manrelbdg_backend/internals/features/koordinator/model"
	relawanModel "manrelbdg_backend/internals/features/relawan/model"
	helper "manrelbdg_backend/internals/helpers"
)

const (
	MsgDapilNotFound  = "Dapil tidak ditemukan"
	MsgKodeTaken      = "Kode dapil sudah ada"
	MsgDapilInUse     = "Dapil masih memiliki relawan atau koordinator"
	defaultDapilOrder = "nama ASC"
)

var dapilSortColumns = map[string]string{
	"kode":      "kode",
	"nama":      "nama",
	"provinsi":  "provinsi",
	"kabupaten": "kabupaten",
	"target":    "target",
	"createdAt": "created_at",
}

type ListFilter struct {
	Provinsi string
}

type DapilService struct {
	DB *gorm.DB
}

func NewDapilService(db *gorm.DB) *DapilService { return &DapilService{DB: db} }

// ========================== READ ==========================

func (s *DapilService) List(ctx context.Context, p helper.Params, f ListFilter) ([]dto.DapilResponse, int64, error) {
	query := func() *gorm.DB {
		q := s.DB.Model(&model.DapilModel{}).Where("is_active = ?", true)
		if f.Provinsi != "" {
			q = q.Where(`LOWER(provinsi) LIKE ? ESCAPE '\'`, helper.ContainsPattern(f.Provinsi))
		}
		return helper.ApplySearch(q, p.Search, "nama", "kode", "provinsi", "kabupaten")
	}

	rows, total, err := helper.FetchPage[model.DapilModel](ctx, query, p, p.OrderClause(dapilSortColumns, defaultDapilOrder))
	if err != nil {
		return nil, 0, err
	}
	out, err := s.attachCounts(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *DapilService) GetByID(ctx context.Context, id uuid.UUID) (*dto.DapilResponse, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := s.attachCounts(ctx, []model.DapilModel{*m})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// AllWithCounts: semua dapil urut nama (dipakai dashboard).
func (s *DapilService) AllWithCounts(ctx context.Context) ([]dto.DapilResponse, error) {
	var rows []model.DapilModel
	if err := s.DB.WithContext(ctx).Order(defaultDapilOrder).Find(&rows).Error; err != nil {
		return nil, err
	}
	return s.attachCounts(ctx, rows)
}

// Exists dipakai fitur lain untuk cek referensi dapilId.
func (s *DapilService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.DapilModel{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// FindByKode → nil tanpa error bila tidak ada.
func (s *DapilService) FindByKode(ctx context.Context, kode string) (*model.DapilModel, error) {
	var m model.DapilModel
	err := s.DB.WithContext(ctx).Where("kode = ?", kode).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ========================== WRITE ==========================

func (s *DapilService) Create(ctx context.Context, req dto.CreateDapilRequest) (*dto.DapilResponse, error) {
	existing, err := s.FindByKode(ctx, req.Kode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, helper.Conflict(MsgKodeTaken)
	}

	m := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, helper.Conflict(MsgKodeTaken)
		}
		return nil, err
	}
	out := dto.NewDapilResponse(*m, 0, 0)
	return &out, nil
}

func (s *DapilService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateDapilRequest) (*dto.DapilResponse, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if up := req.ToUpdates(); len(up) > 0 {
		if err := s.DB.WithContext(ctx).Model(m).Updates(up).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

// Delete menolak bila masih ada relawan/koordinator yang menunjuk dapil ini.
func (s *DapilService) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	db := s.DB.WithContext(ctx)
	var relawan, koordinator int64
	if err := db.Model(&relawanModel.RelawanModel{}).Where("dapil_id = ?", id).Count(&relawan).Error; err != nil {
		return err
	}
	if err := db.Model(&koordinatorModel.KoordinatorModel{}).Where("dapil_id = ?", id).Count(&koordinator).Error; err != nil {
		return err
	}
	if relawan+koordinator > 0 {
		return helper.Conflict(MsgDapilInUse)
	}
	return db.Delete(m).Error
}

// ========================== INTERNAL ==========================

func (s *DapilService) find(ctx context.Context, id uuid.UUID) (*model.DapilModel, error) {
	var m model.DapilModel
	err := s.DB.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound(MsgDapilNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

type dapilCount struct {
	DapilID uuid.UUID
	Total   int64
}

func (s *DapilService) attachCounts(ctx context.Context, rows []model.DapilModel) ([]dto.DapilResponse, error) {
	out := make([]dto.DapilResponse, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	relawan, err := CountByDapil(ctx, s.DB, &relawanModel.RelawanModel{}, ids)
	if err != nil {
		return nil, err
	}
	koordinator, err := CountByDapil(ctx, s.DB, &koordinatorModel.KoordinatorModel{}, ids)
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		out = append(out, dto.NewDapilResponse(r, relawan[r.ID], koordinator[r.ID]))
	}
	return out, nil
}

// CountByDapil: jumlah baris per dapil_id untuk tabel milik modelPtr.
func CountByDapil(ctx context.Context, db *gorm.DB, modelPtr any, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	var counts []dapilCount
	q := db.WithContext(ctx).Model(modelPtr).Select("dapil_id, COUNT(*) AS total")
	if ids != nil {
		q = q.Where("dapil_id IN ?", ids)
	}
	if err := q.Group("dapil_id").Scan(&counts).Error; err != nil {
		return nil, err
	}
	m := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		m[c.DapilID] = c.Total
	}
	return m, nil
}
