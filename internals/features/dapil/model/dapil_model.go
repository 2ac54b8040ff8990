package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DapilModel: daerah pemilihan, akar agregasi target & wilayah.
type DapilModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Kode        string                      `gorm:"size:50;uniqueIndex:uq_dapils_kode;not null" json:"kode"`
	Nama        string                      `gorm:"size:150;not null" json:"nama"`
	Provinsi    string                      `gorm:"size:100;not null" json:"provinsi"`
	Kabupaten   string                      `gorm:"size:100;not null" json:"kabupaten"`
	Kecamatan   datatypes.JSONSlice[string] `json:"kecamatan"`
	Kelurahan   datatypes.JSONSlice[string] `json:"kelurahan"`
	Target      int                         `gorm:"not null" json:"target"`
	Description *string                     `gorm:"type:text" json:"description"`
	IsActive    bool                        `gorm:"not null;index" json:"isActive"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (DapilModel) TableName() string { return "dapils" }

func (d *DapilModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
