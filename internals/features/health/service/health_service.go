package service

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	database "manrelbdg_backend/internals/databases"
	"manrelbdg_backend/internals/features/health/dto"
)

const pingTimeout = 2 * time.Second

type HealthService struct {
	DB      *gorm.DB
	Log     *zap.Logger
	Started time.Time
	Now     func() time.Time
}

func NewHealthService(db *gorm.DB, log *zap.Logger, started time.Time) *HealthService {
	return &HealthService{DB: db, Log: log, Started: started, Now: time.Now}
}

// Check: status healthy hanya bila ping database berhasil.
func (s *HealthService) Check(ctx context.Context) dto.HealthResponse {
	now := s.Now()
	db := s.database(ctx)

	status := dto.StatusHealthy
	if db.Status != dto.StatusHealthy {
		status = dto.StatusUnhealthy
	}
	return dto.HealthResponse{
		Status:    status,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Services: dto.Services{
			Database: db,
			Memory:   memory(),
			Uptime:   int64(math.Round(now.Sub(s.Started).Seconds())),
		},
	}
}

func (s *HealthService) database(ctx context.Context) dto.DatabaseHealth {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	rt, err := database.Ping(ctx, s.DB)
	if err != nil {
		if s.Log != nil {
			s.Log.Warn("[HEALTH] ping database gagal", zap.Error(err))
		}
		return dto.DatabaseHealth{Status: dto.StatusUnhealthy, Error: "database unreachable"}
	}
	return dto.DatabaseHealth{Status: dto.StatusHealthy, ResponseTime: fmt.Sprintf("%dms", rt.Milliseconds())}
}

func memory() dto.MemoryHealth {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	const mb = 1024 * 1024
	out := dto.MemoryHealth{
		Used:  uint64(math.Round(float64(ms.HeapAlloc) / mb)),
		Total: uint64(math.Round(float64(ms.HeapSys) / mb)),
	}
	if ms.HeapSys > 0 {
		out.Percentage = int(math.Round(float64(ms.HeapAlloc) / float64(ms.HeapSys) * 100))
	}
	return out
}
