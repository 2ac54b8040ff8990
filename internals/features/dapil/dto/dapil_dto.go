package dto

import (
	"gorm.io/datatypes"

	"manrelbdg_backend/internals/features/dapil/model"
	helper "manrelbdg_backend/internals/helpers"
)

/* ==========================
   REQUEST
========================== */

type CreateDapilRequest struct {
	Kode        string   `json:"kode" validate:"required,min=2,max=50"`
	Nama        string   `json:"nama" validate:"required,min=2,max=150"`
	Provinsi    string   `json:"provinsi" validate:"required,min=2,max=100"`
	Kabupaten   string   `json:"kabupaten" validate:"required,min=2,max=100"`
	Kecamatan   []string `json:"kecamatan" validate:"required,min=1,dive,required"`
	Kelurahan   []string `json:"kelurahan" validate:"required,min=1,dive,required"`
	Target      *int     `json:"target" validate:"omitempty,min=0"`
	Description *string  `json:"description" validate:"omitempty"`
}

func (r *CreateDapilRequest) Normalize() {
	r.Kode = helper.CleanText(r.Kode)
	r.Nama = helper.CleanText(r.Nama)
	r.Provinsi = helper.CleanText(r.Provinsi)
	r.Kabupaten = helper.CleanText(r.Kabupaten)
	r.Kecamatan = cleanList(r.Kecamatan)
	r.Kelurahan = cleanList(r.Kelurahan)
	r.Description = helper.CleanTextPtr(r.Description)
}

func (CreateDapilRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"kode":      "Kode dapil minimal 2 karakter",
		"nama":      "Nama dapil minimal 2 karakter",
		"provinsi":  "Provinsi minimal 2 karakter",
		"kabupaten": "Kabupaten minimal 2 karakter",
		"kecamatan": "Minimal 1 kecamatan",
		"kelurahan": "Minimal 1 kelurahan",
		"target":    "Target tidak boleh negatif",
	}
}

func (r *CreateDapilRequest) ToModel() *model.DapilModel {
	target := 0
	if r.Target != nil {
		target = *r.Target
	}
	return &model.DapilModel{
		Kode:        r.Kode,
		Nama:        r.Nama,
		Provinsi:    r.Provinsi,
		Kabupaten:   r.Kabupaten,
		Kecamatan:   datatypes.JSONSlice[string](r.Kecamatan),
		Kelurahan:   datatypes.JSONSlice[string](r.Kelurahan),
		Target:      target,
		Description: emptyToNil(r.Description),
		IsActive:    true,
	}
}

// UpdateDapilRequest: semua field opsional; kode tidak bisa diubah.
type UpdateDapilRequest struct {
	Nama        *string   `json:"nama" validate:"omitempty,min=2,max=150"`
	Provinsi    *string   `json:"provinsi" validate:"omitempty,min=2,max=100"`
	Kabupaten   *string   `json:"kabupaten" validate:"omitempty,min=2,max=100"`
	Kecamatan   *[]string `json:"kecamatan" validate:"omitempty,min=1,dive,required"`
	Kelurahan   *[]string `json:"kelurahan" validate:"omitempty,min=1,dive,required"`
	Target      *int      `json:"target" validate:"omitempty,min=0"`
	Description *string   `json:"description"`
	IsActive    *bool     `json:"isActive"`
}

func (r *UpdateDapilRequest) Normalize() {
	r.Nama = helper.CleanTextPtr(r.Nama)
	r.Provinsi = helper.CleanTextPtr(r.Provinsi)
	r.Kabupaten = helper.CleanTextPtr(r.Kabupaten)
	r.Description = helper.CleanTextPtr(r.Description)
	if r.Kecamatan != nil {
		v := cleanList(*r.Kecamatan)
		r.Kecamatan = &v
	}
	if r.Kelurahan != nil {
		v := cleanList(*r.Kelurahan)
		r.Kelurahan = &v
	}
}

func (UpdateDapilRequest) ValidationMessages() map[string]string {
	return CreateDapilRequest{}.ValidationMessages()
}

// ToUpdates → map kolom untuk gorm Updates (hanya field yang dikirim).
func (r *UpdateDapilRequest) ToUpdates() map[string]any {
	up := map[string]any{}
	if r.Nama != nil {
		up["nama"] = *r.Nama
	}
	if r.Provinsi != nil {
		up["provinsi"] = *r.Provinsi
	}
	if r.Kabupaten != nil {
		up["kabupaten"] = *r.Kabupaten
	}
	if r.Kecamatan != nil {
		up["kecamatan"] = datatypes.JSONSlice[string](*r.Kecamatan)
	}
	if r.Kelurahan != nil {
		up["kelurahan"] = datatypes.JSONSlice[string](*r.Kelurahan)
	}
	if r.Target != nil {
		up["target"] = *r.Target
	}
	if r.Description != nil {
		up["description"] = emptyToNil(r.Description)
	}
	if r.IsActive != nil {
		up["is_active"] = *r.IsActive
	}
	return up
}

/* ==========================
   RESPONSE
========================== */

type DapilResponse struct {
	model.DapilModel
	RelawanCount     int64 `json:"relawanCount"`
	KoordinatorCount int64 `json:"koordinatorCount"`
	Achievement      int   `json:"achievement"`
	PotensiSuara     int64 `json:"potensiSuara"`
}

func NewDapilResponse(m model.DapilModel, relawan, koordinator int64) DapilResponse {
	return DapilResponse{
		DapilModel:       m,
		RelawanCount:     relawan,
		KoordinatorCount: koordinator,
		Achievement:      helper.Achievement(relawan, m.Target),
		PotensiSuara:     helper.PotensiSuara(relawan),
	}
}

func cleanList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, helper.CleanText(v))
	}
	return out
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
