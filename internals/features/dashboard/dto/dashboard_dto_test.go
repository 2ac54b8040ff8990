package dto

import (
	"testing"
	"time"
)

func TestBuildGrowthData(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	pts := BuildGrowthData(now, 100, 10, 1000)
	if len(pts) != 6 {
		t.Fatalf("got %d points, want 6", len(pts))
	}

	months := []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	for i, p := range pts {
		if p.Month != months[i] {
			t.Errorf("point %d month = %s, want %s", i, p.Month, months[i])
		}
	}
	if pts[0].Relawan != 60 || pts[0].Koordinator != 6 || pts[0].Target != 800 {
		t.Errorf("first point = %+v", pts[0])
	}
	if pts[5].Relawan != 100 || pts[5].Koordinator != 10 || pts[5].Target != 1000 {
		t.Errorf("last point = %+v", pts[5])
	}
}

func TestBuildGrowthDataEmpty(t *testing.T) {
	for _, p := range BuildGrowthData(time.Now(), 0, 0, 0) {
		if p.Relawan != 0 || p.Koordinator != 0 || p.Target != 0 {
			t.Fatalf("expected zeros, got %+v", p)
		}
	}
}
