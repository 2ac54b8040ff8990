package seeds

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	dashboardModel "manrelbdg_backend/internals/features/dashboard/model"
	dashboardService "manrelbdg_backend/internals/features/dashboard/service"
	"manrelbdg_backend/internals/seeds/dapil"
	"manrelbdg_backend/internals/seeds/members"
	"manrelbdg_backend/internals/seeds/settings"
	"manrelbdg_backend/internals/seeds/users"
)

// RunAllSeeds mengisi data pengembangan. Aman dijalankan berulang: natural key yang sudah ada dilewati.
func RunAllSeeds(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	log.Info("🌱 Mulai seeding database...")

	//* User
	if err := users.SeedUsers(ctx, db, log); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	admin, err := users.FindAdmin(ctx, db)
	if err != nil {
		return fmt.Errorf("seed admin lookup: %w", err)
	}

	//* Wilayah & anggota
	if err := dapil.SeedDapil(ctx, db, log); err != nil {
		return fmt.Errorf("seed dapil: %w", err)
	}
	if err := members.SeedKoordinator(ctx, db, log, &admin.ID); err != nil {
		return fmt.Errorf("seed koordinator: %w", err)
	}
	if err := members.SeedRelawan(ctx, db, log, &admin.ID); err != nil {
		return fmt.Errorf("seed relawan: %w", err)
	}

	//* Dashboard: satu snapshot awal saja
	var n int64
	if err := db.WithContext(ctx).Model(&dashboardModel.DashboardSummaryModel{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		if _, err := dashboardService.NewDashboardService(db).RecordSnapshot(ctx); err != nil {
			return fmt.Errorf("seed dashboard summary: %w", err)
		}
		log.Info("📊 dashboard summary dibuat")
	}

	//* Setting
	if err := settings.SeedSettings(ctx, db, log); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	log.Info("✅ Seeding selesai")
	return nil
}
