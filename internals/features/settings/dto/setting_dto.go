package dto

import (
	"strings"

	"manrelbdg_backend/internals/features/settings/model"
)

type UpsertSettingRequest struct {
	Value    *string `json:"value" validate:"required"`
	Category *string `json:"category" validate:"omitempty,min=1,max=50"`
	Type     *string `json:"type" validate:"omitempty,oneof=string number boolean json"`
}

func (r *UpsertSettingRequest) Normalize() {
	if r.Category != nil {
		v := strings.TrimSpace(*r.Category)
		r.Category = &v
	}
	if r.Type != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Type))
		r.Type = &v
	}
}

func (UpsertSettingRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"value":    "Value wajib diisi",
		"category": "Kategori maksimal 50 karakter",
		"type":     "Tipe harus string, number, boolean, atau json",
	}
}

// TypeOr: tipe dari request, atau fallback bila tidak dikirim.
func (r *UpsertSettingRequest) TypeOr(fallback string) string {
	if r.Type == nil || *r.Type == "" {
		return fallback
	}
	return *r.Type
}

func (r *UpsertSettingRequest) CategoryOr(fallback string) string {
	if r.Category == nil || *r.Category == "" {
		return fallback
	}
	return *r.Category
}

// DefaultSetting dipakai saat key belum ada.
func DefaultSetting(key string) model.SettingModel {
	return model.SettingModel{Key: key, Category: model.SettingCategoryGeneral, Type: model.SettingTypeString}
}
