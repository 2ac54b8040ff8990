package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dapilModel "manrelbdg_backend/internals/features/dapil/model"
	userModel "manrelbdg_backend/internals/features/users/user/model"
)

// KoordinatorModel: pembina sekelompok relawan di satu dapil.
type KoordinatorModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Kode        string     `gorm:"size:20;uniqueIndex:uq_koordinators_kode;not null" json:"kode"`
	Nama        string     `gorm:"size:150;not null" json:"nama"`
	NIK         string     `gorm:"column:nik;size:16;uniqueIndex:uq_koordinators_nik;not null" json:"nik"`
	NoHP        string     `gorm:"column:no_hp;size:20;not null" json:"noHp"`
	Email       *string    `gorm:"size:255" json:"email"`
	Alamat      string     `gorm:"type:text;not null" json:"alamat"`
	RT          *string    `gorm:"column:rt;size:5" json:"rt"`
	RW          *string    `gorm:"column:rw;size:5" json:"rw"`
	Kelurahan   string     `gorm:"size:100;not null" json:"kelurahan"`
	Kecamatan   string     `gorm:"size:100;not null" json:"kecamatan"`
	Kabupaten   string     `gorm:"size:100;not null" json:"kabupaten"`
	Provinsi    string     `gorm:"size:100;not null" json:"provinsi"`
	Koordinat   *string    `gorm:"size:64" json:"koordinat"`
	Foto        *string    `gorm:"type:text" json:"foto"`
	Status      string     `gorm:"type:varchar(20);not null;index" json:"status"`
	Catatan     *string    `gorm:"type:text" json:"catatan"`
	DapilID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"dapilId"`
	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"createdById"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	Dapil     *dapilModel.DapilModel `gorm:"foreignKey:DapilID" json:"-"`
	CreatedBy *userModel.UserModel   `gorm:"foreignKey:CreatedByID" json:"-"`
}

func (KoordinatorModel) TableName() string { return "koordinators" }

func (k *KoordinatorModel) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}
