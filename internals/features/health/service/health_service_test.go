package service_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"manrelbdg_backend/internals/features/health/dto"
	"manrelbdg_backend/internals/features/health/service"
	"manrelbdg_backend/internals/testutil"
)

func TestCheckHealthy(t *testing.T) {
	db := testutil.NewDB(t)
	started := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc := service.NewHealthService(db, zap.NewNop(), started)
	svc.Now = func() time.Time { return started.Add(90*time.Second + 400*time.Millisecond) }

	out := svc.Check(context.Background())
	if out.Status != dto.StatusHealthy || out.Services.Database.Status != dto.StatusHealthy {
		t.Fatalf("status = %+v", out)
	}
	if out.Services.Uptime != 90 {
		t.Fatalf("uptime = %d", out.Services.Uptime)
	}
	if out.Timestamp != "2024-06-01T10:01:30.4Z" {
		t.Fatalf("timestamp = %q", out.Timestamp)
	}
	if out.Services.Memory.Percentage < 0 || out.Services.Memory.Percentage > 100 {
		t.Fatalf("memory = %+v", out.Services.Memory)
	}
}

func TestCheckUnhealthyHidesDriverError(t *testing.T) {
	db := testutil.NewDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	_ = sqlDB.Close()

	out := service.NewHealthService(db, zap.NewNop(), time.Now()).Check(context.Background())
	if out.Status != dto.StatusUnhealthy {
		t.Fatalf("status = %q", out.Status)
	}
	if out.Services.Database.Error != "database unreachable" || out.Services.Database.ResponseTime != "" {
		t.Fatalf("database = %+v", out.Services.Database)
	}
}
