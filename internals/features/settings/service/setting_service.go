package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/features/settings/dto"
	"manrelbdg_backend/internals/features/settings/model"
	helper "manrelbdg_backend/internals/helpers"
)

const MsgSettingNotFound = "Setting tidak ditemukan"

type SettingService struct {
	DB *gorm.DB
}

func NewSettingService(db *gorm.DB) *SettingService { return &SettingService{DB: db} }

// List: semua setting urut category, key. category kosong = tanpa filter.
func (s *SettingService) List(ctx context.Context, category string) ([]model.SettingModel, error) {
	q := s.DB.WithContext(ctx).Model(&model.SettingModel{})
	if category = strings.TrimSpace(category); category != "" {
		q = q.Where("category = ?", category)
	}
	rows := make([]model.SettingModel, 0)
	if err := q.Order("category ASC, key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SettingService) Get(ctx context.Context, key string) (*model.SettingModel, error) {
	var m model.SettingModel
	err := s.DB.WithContext(ctx).Where("key = ?", key).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound(MsgSettingNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert membuat atau memperbarui setting; created=true bila baris baru.
func (s *SettingService) Upsert(ctx context.Context, key string, req dto.UpsertSettingRequest) (*model.SettingModel, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" || len(key) > 100 {
		return nil, false, helper.BadRequest("Key setting tidak valid")
	}

	current, err := s.Get(ctx, key)
	created := false
	if err != nil {
		var ae *helper.AppError
		if !errors.As(err, &ae) {
			return nil, false, err
		}
		def := dto.DefaultSetting(key)
		current, created = &def, true
	}

	typ := req.TypeOr(current.Type)
	if err := CheckValue(typ, *req.Value); err != nil {
		return nil, false, err
	}
	current.Type = typ
	current.Value = *req.Value
	current.Category = req.CategoryOr(current.Category)

	if created {
		err = s.DB.WithContext(ctx).Create(current).Error
		if helper.IsUniqueViolation(err) {
			// dibuat request lain di sela-sela; ulangi sebagai update
			return s.Upsert(ctx, key, req)
		}
	} else {
		err = s.DB.WithContext(ctx).Model(current).Updates(map[string]any{
			"value":    current.Value,
			"category": current.Category,
			"type":     current.Type,
		}).Error
	}
	if err != nil {
		return nil, false, err
	}
	return current, created, nil
}

// CheckValue memastikan value bisa dibaca sesuai tipenya.
func CheckValue(typ, value string) error {
	v := strings.TrimSpace(value)
	switch typ {
	case model.SettingTypeNumber:
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return helper.BadRequest("Value harus berupa angka")
		}
	case model.SettingTypeBoolean:
		if _, err := strconv.ParseBool(v); err != nil {
			return helper.BadRequest("Value harus berupa boolean")
		}
	case model.SettingTypeJSON:
		var out any
		if err := sonic.UnmarshalString(v, &out); err != nil {
			return helper.BadRequest("Value harus berupa JSON yang valid")
		}
	case model.SettingTypeString:
	default:
		return helper.BadRequest("Tipe harus string, number, boolean, atau json")
	}
	return nil
}
