package dto

import (
	"math"
	"time"

	"github.com/google/uuid"

	dapilDto "manrelbdg_backend/internals/features/dapil/dto"
)

type Summary struct {
	TotalRelawan      int64 `json:"totalRelawan"`
	TotalKoordinator  int64 `json:"totalKoordinator"`
	TotalDapil        int64 `json:"totalDapil"`
	TargetAchievement int   `json:"targetAchievement"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type StatusBreakdown struct {
	Relawan     []StatusCount `json:"relawan"`
	Koordinator []StatusCount `json:"koordinator"`
}

type DapilCount struct {
	DapilID uuid.UUID `json:"dapilId"`
	Nama    string    `json:"nama"`
	Kode    string    `json:"kode"`
	Count   int64     `json:"count"`
}

type DapilName struct {
	Nama string `json:"nama"`
}

type RecentItem struct {
	ID        uuid.UUID  `json:"id"`
	Nama      string     `json:"nama"`
	Kode      string     `json:"kode"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	Dapil     *DapilName `json:"dapil"`
}

type RecentActivity struct {
	Relawan     []RecentItem `json:"relawan"`
	Koordinator []RecentItem `json:"koordinator"`
}

type GrowthPoint struct {
	Month       string `json:"month"`
	Relawan     int64  `json:"relawan"`
	Koordinator int64  `json:"koordinator"`
	Target      int64  `json:"target"`
}

type DashboardResponse struct {
	Summary         Summary                  `json:"summary"`
	StatusBreakdown StatusBreakdown          `json:"statusBreakdown"`
	RelawanByDapil  []DapilCount             `json:"relawanByDapil"`
	DapilData       []dapilDto.DapilResponse `json:"dapilData"`
	GrowthData      []GrowthPoint            `json:"growthData"`
	RecentActivity  RecentActivity           `json:"recentActivity"`
}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// BuildGrowthData: 6 titik ke belakang dari bulan berjalan.
// Nilainya skala dari total saat ini (placeholder tampilan), bukan histori terukur.
func BuildGrowthData(now time.Time, totalRelawan, totalKoordinator, totalTarget int64) []GrowthPoint {
	current := int(now.Month()) - 1
	out := make([]GrowthPoint, 0, 6)
	for i := 0; i < 6; i++ {
		growth := 0.6 + float64(i)*0.08
		out = append(out, GrowthPoint{
			Month:       monthNames[(current-5+i+12)%12],
			Relawan:     int64(math.Floor(float64(totalRelawan) * growth)),
			Koordinator: int64(math.Floor(float64(totalKoordinator) * growth)),
			Target:      int64(math.Floor(float64(totalTarget) * (0.8 + float64(i)*0.04))),
		})
	}
	return out
}
