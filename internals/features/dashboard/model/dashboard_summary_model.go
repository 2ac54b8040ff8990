package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DashboardSummaryModel: snapshot titik-waktu (append-only), bukan view live.
type DashboardSummaryModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TotalRelawan      int64     `gorm:"not null" json:"totalRelawan"`
	TotalKoordinator  int64     `gorm:"not null" json:"totalKoordinator"`
	TotalDapil        int64     `gorm:"not null" json:"totalDapil"`
	TotalTarget       int64     `gorm:"not null" json:"totalTarget"`
	TargetAchievement int       `gorm:"not null" json:"targetAchievement"`
	CreatedAt         time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (DashboardSummaryModel) TableName() string { return "dashboard_summaries" }

func (d *DashboardSummaryModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
