package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/features/dashboard/service"
	"manrelbdg_backend/internals/middlewares"
)

// StartSnapshotScheduler mencatat DashboardSummary tiap interval sampai ctx dibatalkan.
// interval <= 0 berarti scheduler tidak dijalankan. Channel yang dikembalikan ditutup saat goroutine selesai.
func StartSnapshotScheduler(ctx context.Context, db *gorm.DB, interval time.Duration, log *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	if interval <= 0 {
		log.Info("[SNAPSHOT] scheduler nonaktif")
		close(done)
		return done
	}

	svc := service.NewDashboardService(db)
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// jalankan sekali saat start agar gauge langsung terisi
		RunSnapshot(ctx, svc, log)
		for {
			select {
			case <-ctx.Done():
				log.Info("[SNAPSHOT] scheduler berhenti")
				return
			case <-ticker.C:
				RunSnapshot(ctx, svc, log)
			}
		}
	}()
	return done
}

// RunSnapshot: satu putaran snapshot + update gauge prometheus.
func RunSnapshot(ctx context.Context, svc *service.DashboardService, log *zap.Logger) {
	row, err := svc.RecordSnapshot(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Error("[SNAPSHOT] gagal mencatat snapshot", zap.Error(err))
		}
		return
	}
	middlewares.SetDomainTotals(row.TotalRelawan, row.TotalKoordinator, row.TotalDapil)
	log.Info("[SNAPSHOT] tercatat",
		zap.Int64("relawan", row.TotalRelawan),
		zap.Int64("koordinator", row.TotalKoordinator),
		zap.Int64("dapil", row.TotalDapil),
		zap.Int("achievement", row.TargetAchievement),
	)
}
