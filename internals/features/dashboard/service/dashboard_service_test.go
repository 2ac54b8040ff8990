package service_test

import (
	"context"
	"testing"
	"time"

	"manrelbdg_backend/internals/features/dashboard/service"
	helper "manrelbdg_backend/internals/helpers"
	"manrelbdg_backend/internals/testutil"
)

func TestAggregate(t *testing.T) {
	db := testutil.NewDB(t)
	d1 := testutil.CreateDapil(t, db, "DAPIL01", 10)
	d2 := testutil.CreateDapil(t, db, "DAPIL02", 0)
	k := testutil.CreateKoordinator(t, db, "KOR0001", testutil.NIK(100), d1.ID, "AKTIF")
	testutil.CreateRelawan(t, db, "REL0001", testutil.NIK(1), d1.ID, &k.ID, "AKTIF")
	testutil.CreateRelawan(t, db, "REL0002", testutil.NIK(2), d1.ID, nil, "PENDING")
	testutil.CreateRelawan(t, db, "REL0003", testutil.NIK(3), d2.ID, nil, "AKTIF")

	svc := service.NewDashboardService(db)
	svc.Now = func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }

	res, err := svc.Aggregate(context.Background())
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	s := res.Summary
	if s.TotalRelawan != 3 || s.TotalKoordinator != 1 || s.TotalDapil != 2 {
		t.Fatalf("summary = %+v", s)
	}
	// total target 10, relawan 3 → 30%
	if s.TargetAchievement != 30 {
		t.Fatalf("achievement = %d, want 30", s.TargetAchievement)
	}

	if len(res.StatusBreakdown.Relawan) != 2 ||
		res.StatusBreakdown.Relawan[0].Status != "AKTIF" || res.StatusBreakdown.Relawan[0].Count != 2 {
		t.Fatalf("relawan breakdown = %+v", res.StatusBreakdown.Relawan)
	}
	if len(res.RelawanByDapil) != 2 || res.RelawanByDapil[0].Kode != "DAPIL01" || res.RelawanByDapil[0].Count != 2 {
		t.Fatalf("relawan by dapil = %+v", res.RelawanByDapil)
	}

	for _, d := range res.DapilData {
		switch d.Kode {
		case "DAPIL01":
			if d.RelawanCount != 2 || d.KoordinatorCount != 1 || d.Achievement != 20 || d.PotensiSuara != 10 {
				t.Errorf("DAPIL01 = %+v", d)
			}
		case "DAPIL02":
			if d.Achievement != 0 {
				t.Errorf("target 0 should give achievement 0, got %d", d.Achievement)
			}
		}
	}

	if len(res.GrowthData) != 6 || res.GrowthData[5].Month != "Jun" {
		t.Fatalf("growth = %+v", res.GrowthData)
	}
	if len(res.RecentActivity.Relawan) != 3 || len(res.RecentActivity.Koordinator) != 1 {
		t.Fatalf("recent = %+v", res.RecentActivity)
	}
	if res.RecentActivity.Koordinator[0].Dapil == nil || res.RecentActivity.Koordinator[0].Dapil.Nama != "Dapil DAPIL01" {
		t.Fatalf("recent koordinator dapil = %+v", res.RecentActivity.Koordinator[0].Dapil)
	}
}

func TestAggregateEmpty(t *testing.T) {
	db := testutil.NewDB(t)
	res, err := service.NewDashboardService(db).Aggregate(context.Background())
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if res.Summary.TargetAchievement != 0 || res.DapilData == nil || res.RelawanByDapil == nil {
		t.Fatalf("unexpected empty result: %+v", res)
	}
}

func TestRecordSnapshotAndHistory(t *testing.T) {
	db := testutil.NewDB(t)
	d := testutil.CreateDapil(t, db, "DAPIL01", 4)
	testutil.CreateRelawan(t, db, "REL0001", testutil.NIK(1), d.ID, nil, "AKTIF")

	svc := service.NewDashboardService(db)
	ctx := context.Background()
	row, err := svc.RecordSnapshot(ctx)
	if err != nil {
		t.Fatalf("RecordSnapshot: %v", err)
	}
	if row.TotalRelawan != 1 || row.TotalDapil != 1 || row.TotalTarget != 4 || row.TargetAchievement != 25 {
		t.Fatalf("snapshot = %+v", row)
	}
	if _, err := svc.RecordSnapshot(ctx); err != nil {
		t.Fatalf("second snapshot: %v", err)
	}

	p := helper.ParsePagination("1", "1", "", "", "", helper.DefaultOpts)
	rows, total, err := svc.History(ctx, p)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if total != 2 || len(rows) != 1 {
		t.Fatalf("total=%d rows=%d", total, len(rows))
	}
}
