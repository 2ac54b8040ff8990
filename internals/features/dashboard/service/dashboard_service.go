package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	dapilDto "manrelbdg_backend/internals/features/dapil/dto"
	dapilModel "manrelbdg_backend/internals/features/dapil/model"
	dapilService "manrelbdg_backend/internals/features/dapil/service"
	"manrelbdg_backend/internals/features/dashboard/dto"
	"manrelbdg_backend/internals/features/dashboard/model"
	koordinatorModel "manrelbdg_backend/internals/features/koordinator/model"
	relawanModel "manrelbdg_backend/internals/features/relawan/model"
	helper "manrelbdg_backend/internals/helpers"
)

const recentLimit = 5

type DashboardService struct {
	DB    *gorm.DB
	Dapil *dapilService.DapilService
	Now   func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db, Dapil: dapilService.NewDapilService(db), Now: time.Now}
}

// Aggregate menjalankan semua query independen secara paralel lalu merakit payload.
// Query tidak berbagi snapshot; angka bisa sedikit berbeda saat ada tulis bersamaan.
func (s *DashboardService) Aggregate(ctx context.Context) (*dto.DashboardResponse, error) {
	var (
		totals         counts
		relawanStatus  []dto.StatusCount
		korStatus      []dto.StatusCount
		relawanByDapil []dto.DapilCount
		recentRelawan  []dto.RecentItem
		recentKor      []dto.RecentItem
		dapilData      []dapilDto.DapilResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { totals.Relawan, err = s.count(gctx, &relawanModel.RelawanModel{}); return })
	g.Go(func() (err error) { totals.Koordinator, err = s.count(gctx, &koordinatorModel.KoordinatorModel{}); return })
	g.Go(func() (err error) { totals.Dapil, err = s.count(gctx, &dapilModel.DapilModel{}); return })
	g.Go(func() (err error) { relawanStatus, err = s.statusBreakdown(gctx, &relawanModel.RelawanModel{}); return })
	g.Go(func() (err error) { korStatus, err = s.statusBreakdown(gctx, &koordinatorModel.KoordinatorModel{}); return })
	g.Go(func() (err error) { relawanByDapil, err = s.topDapil(gctx, 10); return })
	g.Go(func() (err error) { recentRelawan, err = s.recentRelawan(gctx); return })
	g.Go(func() (err error) { recentKor, err = s.recentKoordinator(gctx); return })
	g.Go(func() (err error) { dapilData, err = s.Dapil.AllWithCounts(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var totalTarget int64
	for _, d := range dapilData {
		totalTarget += int64(d.Target)
	}

	return &dto.DashboardResponse{
		Summary: dto.Summary{
			TotalRelawan:      totals.Relawan,
			TotalKoordinator:  totals.Koordinator,
			TotalDapil:        totals.Dapil,
			TargetAchievement: achievement(totals.Relawan, totalTarget),
		},
		StatusBreakdown: dto.StatusBreakdown{Relawan: relawanStatus, Koordinator: korStatus},
		RelawanByDapil:  relawanByDapil,
		DapilData:       dapilData,
		GrowthData:      dto.BuildGrowthData(s.Now(), totals.Relawan, totals.Koordinator, totalTarget),
		RecentActivity:  dto.RecentActivity{Relawan: recentRelawan, Koordinator: recentKor},
	}, nil
}

// ========================== SNAPSHOT ==========================

// RecordSnapshot menghitung total saat ini dan menambah satu baris DashboardSummary.
func (s *DashboardService) RecordSnapshot(ctx context.Context) (*model.DashboardSummaryModel, error) {
	var (
		totals      counts
		totalTarget int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { totals.Relawan, err = s.count(gctx, &relawanModel.RelawanModel{}); return })
	g.Go(func() (err error) { totals.Koordinator, err = s.count(gctx, &koordinatorModel.KoordinatorModel{}); return })
	g.Go(func() (err error) { totals.Dapil, err = s.count(gctx, &dapilModel.DapilModel{}); return })
	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&dapilModel.DapilModel{}).
			Select("COALESCE(SUM(target), 0)").Scan(&totalTarget).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	row := &model.DashboardSummaryModel{
		TotalRelawan:      totals.Relawan,
		TotalKoordinator:  totals.Koordinator,
		TotalDapil:        totals.Dapil,
		TotalTarget:       totalTarget,
		TargetAchievement: achievement(totals.Relawan, totalTarget),
	}
	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// History: snapshot terbaru lebih dulu.
func (s *DashboardService) History(ctx context.Context, p helper.Params) ([]model.DashboardSummaryModel, int64, error) {
	query := func() *gorm.DB { return s.DB.Model(&model.DashboardSummaryModel{}) }
	return helper.FetchPage[model.DashboardSummaryModel](ctx, query, p, "created_at DESC")
}

// ========================== INTERNAL ==========================

type counts struct {
	Relawan, Koordinator, Dapil int64
}

func achievement(relawan, target int64) int {
	return helper.Achievement(relawan, int(target))
}

func (s *DashboardService) count(ctx context.Context, m any) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(m).Count(&n).Error
	return n, err
}

func (s *DashboardService) statusBreakdown(ctx context.Context, m any) ([]dto.StatusCount, error) {
	out := []dto.StatusCount{}
	err := s.DB.WithContext(ctx).Model(m).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status").
		Scan(&out).Error
	return out, err
}

func (s *DashboardService) topDapil(ctx context.Context, limit int) ([]dto.DapilCount, error) {
	out := []dto.DapilCount{}
	err := s.DB.WithContext(ctx).Table("relawans AS r").
		Select("r.dapil_id AS dapil_id, d.nama AS nama, d.kode AS kode, COUNT(*) AS count").
		Joins("JOIN dapils d ON d.id = r.dapil_id").
		Group("r.dapil_id, d.nama, d.kode").
		Order("count DESC").
		Order("d.nama ASC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (s *DashboardService) recentRelawan(ctx context.Context) ([]dto.RecentItem, error) {
	var rows []relawanModel.RelawanModel
	err := s.DB.WithContext(ctx).
		Select("id", "nama", "kode", "status", "created_at", "dapil_id").
		Preload("Dapil", func(db *gorm.DB) *gorm.DB { return db.Select("id", "nama") }).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecentItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, recentItem(r.ID, r.Nama, r.Kode, r.Status, r.CreatedAt, r.Dapil))
	}
	return out, nil
}

func (s *DashboardService) recentKoordinator(ctx context.Context) ([]dto.RecentItem, error) {
	var rows []koordinatorModel.KoordinatorModel
	err := s.DB.WithContext(ctx).
		Select("id", "nama", "kode", "status", "created_at", "dapil_id").
		Preload("Dapil", func(db *gorm.DB) *gorm.DB { return db.Select("id", "nama") }).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecentItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, recentItem(r.ID, r.Nama, r.Kode, r.Status, r.CreatedAt, r.Dapil))
	}
	return out, nil
}

func recentItem(id uuid.UUID, nama, kode, status string, createdAt time.Time, d *dapilModel.DapilModel) dto.RecentItem {
	item := dto.RecentItem{ID: id, Nama: nama, Kode: kode, Status: status, CreatedAt: createdAt}
	if d != nil {
		item.Dapil = &dto.DapilName{Nama: d.Nama}
	}
	return item
}
