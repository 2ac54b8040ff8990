package dto

import (
	"strings"

	"github.com/google/uuid"

	"manrelbdg_backend/internals/constants"
	"manrelbdg_backend/internals/features/koordinator/model"
	helper "manrelbdg_backend/internals/helpers"
)

/* ==========================
   CREATE
========================== */

type CreateKoordinatorRequest struct {
	Nama      string `json:"nama" validate:"required,min=2,max=150"`
	NIK       string `json:"nik" validate:"required,nik"`
	NoHP      string `json:"noHp" validate:"required,min=10,max=20,phoneid"`
	Email     string `json:"email" validate:"email_or_empty"`
	Alamat    string `json:"alamat" validate:"required,min=5"`
	RT        string `json:"rt" validate:"omitempty,max=5"`
	RW        string `json:"rw" validate:"omitempty,max=5"`
	Kelurahan string `json:"kelurahan" validate:"required,min=2,max=100"`
	Kecamatan string `json:"kecamatan" validate:"required,min=2,max=100"`
	Kabupaten string `json:"kabupaten" validate:"required,min=2,max=100"`
	Provinsi  string `json:"provinsi" validate:"required,min=2,max=100"`
	Koordinat string `json:"koordinat" validate:"koordinat"`
	Status    string `json:"status" validate:"omitempty,oneof=AKTIF TIDAK_AKTIF PENDING"`
	Catatan   string `json:"catatan"`
	DapilID   string `json:"dapilId" validate:"required,uuid"`
}

func (r *CreateKoordinatorRequest) Normalize() {
	r.Nama = helper.CleanText(r.Nama)
	r.NIK = strings.TrimSpace(r.NIK)
	r.NoHP = helper.NormalizePhone(r.NoHP)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Alamat = helper.CleanText(r.Alamat)
	r.RT = strings.TrimSpace(r.RT)
	r.RW = strings.TrimSpace(r.RW)
	r.Kelurahan = helper.CleanText(r.Kelurahan)
	r.Kecamatan = helper.CleanText(r.Kecamatan)
	r.Kabupaten = helper.CleanText(r.Kabupaten)
	r.Provinsi = helper.CleanText(r.Provinsi)
	r.Koordinat = strings.TrimSpace(r.Koordinat)
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = constants.StatusAktif
	}
	r.Catatan = helper.CleanText(r.Catatan)
	r.DapilID = strings.TrimSpace(r.DapilID)
}

var validationMessages = map[string]string{
	"nama":             "Nama minimal 2 karakter",
	"nik":              "NIK harus 16 digit",
	"noHp":             "Nomor HP minimal 10 digit",
	"noHp.phoneid":     "Format nomor HP tidak valid",
	"email":            "Format email tidak valid",
	"alamat":           "Alamat minimal 5 karakter",
	"rt":               "RT maksimal 5 karakter",
	"rw":               "RW maksimal 5 karakter",
	"kelurahan":        "Kelurahan harus diisi",
	"kecamatan":        "Kecamatan harus diisi",
	"kabupaten":        "Kabupaten harus diisi",
	"provinsi":         "Provinsi harus diisi",
	"koordinat":        "Format koordinat tidak valid (lat,lng)",
	"status":           "Status harus AKTIF, TIDAK_AKTIF, atau PENDING",
	"dapilId.required": "Dapil harus dipilih",
	"dapilId":          "Dapil ID tidak valid",
}

func (CreateKoordinatorRequest) ValidationMessages() map[string]string { return validationMessages }

func (r *CreateKoordinatorRequest) ToModel(createdBy *uuid.UUID) *model.KoordinatorModel {
	dapilID, _ := uuid.Parse(r.DapilID)
	return &model.KoordinatorModel{
		Nama:        r.Nama,
		NIK:         r.NIK,
		NoHP:        r.NoHP,
		Email:       helper.NilIfEmpty(r.Email),
		Alamat:      r.Alamat,
		RT:          helper.NilIfEmpty(r.RT),
		RW:          helper.NilIfEmpty(r.RW),
		Kelurahan:   r.Kelurahan,
		Kecamatan:   r.Kecamatan,
		Kabupaten:   r.Kabupaten,
		Provinsi:    r.Provinsi,
		Koordinat:   helper.NilIfEmpty(r.Koordinat),
		Status:      r.Status,
		Catatan:     helper.NilIfEmpty(r.Catatan),
		DapilID:     dapilID,
		CreatedByID: createdBy,
	}
}

/* ==========================
   UPDATE (partial)
========================== */

type UpdateKoordinatorRequest struct {
	Nama      *string `json:"nama" validate:"omitempty,min=2,max=150"`
	NIK       *string `json:"nik" validate:"omitempty,nik"`
	NoHP      *string `json:"noHp" validate:"omitempty,min=10,max=20,phoneid"`
	Email     *string `json:"email" validate:"omitempty,email_or_empty"`
	Alamat    *string `json:"alamat" validate:"omitempty,min=5"`
	RT        *string `json:"rt" validate:"omitempty,max=5"`
	RW        *string `json:"rw" validate:"omitempty,max=5"`
	Kelurahan *string `json:"kelurahan" validate:"omitempty,min=2,max=100"`
	Kecamatan *string `json:"kecamatan" validate:"omitempty,min=2,max=100"`
	Kabupaten *string `json:"kabupaten" validate:"omitempty,min=2,max=100"`
	Provinsi  *string `json:"provinsi" validate:"omitempty,min=2,max=100"`
	Koordinat *string `json:"koordinat" validate:"omitempty,koordinat"`
	Status    *string `json:"status" validate:"omitempty,oneof=AKTIF TIDAK_AKTIF PENDING"`
	Catatan   *string `json:"catatan"`
	DapilID   *string `json:"dapilId" validate:"omitempty,uuid"`
}

func (r *UpdateKoordinatorRequest) Normalize() {
	r.Nama = helper.CleanTextPtr(r.Nama)
	r.NIK = trimPtr(r.NIK)
	if r.NoHP != nil {
		v := helper.NormalizePhone(*r.NoHP)
		r.NoHP = &v
	}
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
	r.Alamat = helper.CleanTextPtr(r.Alamat)
	r.RT = trimPtr(r.RT)
	r.RW = trimPtr(r.RW)
	r.Kelurahan = helper.CleanTextPtr(r.Kelurahan)
	r.Kecamatan = helper.CleanTextPtr(r.Kecamatan)
	r.Kabupaten = helper.CleanTextPtr(r.Kabupaten)
	r.Provinsi = helper.CleanTextPtr(r.Provinsi)
	r.Koordinat = trimPtr(r.Koordinat)
	if r.Status != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.Status))
		r.Status = &v
	}
	r.Catatan = helper.CleanTextPtr(r.Catatan)
	r.DapilID = trimPtr(r.DapilID)
}

func (UpdateKoordinatorRequest) ValidationMessages() map[string]string { return validationMessages }

// ToUpdates: hanya field yang dikirim; string kosong pada kolom opsional → NULL.
func (r *UpdateKoordinatorRequest) ToUpdates() map[string]any {
	up := map[string]any{}
	setStr(up, "nama", r.Nama)
	setStr(up, "nik", r.NIK)
	setStr(up, "no_hp", r.NoHP)
	setNullable(up, "email", r.Email)
	setStr(up, "alamat", r.Alamat)
	setNullable(up, "rt", r.RT)
	setNullable(up, "rw", r.RW)
	setStr(up, "kelurahan", r.Kelurahan)
	setStr(up, "kecamatan", r.Kecamatan)
	setStr(up, "kabupaten", r.Kabupaten)
	setStr(up, "provinsi", r.Provinsi)
	setNullable(up, "koordinat", r.Koordinat)
	setStr(up, "status", r.Status)
	setNullable(up, "catatan", r.Catatan)
	if r.DapilID != nil {
		if id, err := uuid.Parse(*r.DapilID); err == nil {
			up["dapil_id"] = id
		}
	}
	return up
}

// FromCreate dipakai import (updateExisting) untuk menimpa baris lama dengan isi CSV.
func FromCreate(c CreateKoordinatorRequest) UpdateKoordinatorRequest {
	return UpdateKoordinatorRequest{
		Nama: &c.Nama, NoHP: &c.NoHP, Email: &c.Email, Alamat: &c.Alamat,
		RT: &c.RT, RW: &c.RW, Kelurahan: &c.Kelurahan, Kecamatan: &c.Kecamatan,
		Kabupaten: &c.Kabupaten, Provinsi: &c.Provinsi, Koordinat: &c.Koordinat,
		Status: &c.Status, Catatan: &c.Catatan, DapilID: &c.DapilID,
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func setStr(up map[string]any, col string, v *string) {
	if v != nil {
		up[col] = *v
	}
}

func setNullable(up map[string]any, col string, v *string) {
	if v != nil {
		up[col] = helper.NilIfEmpty(*v)
	}
}

/* ==========================
   RESPONSE
========================== */

type DapilRef struct {
	ID   uuid.UUID `json:"id"`
	Nama string    `json:"nama"`
	Kode string    `json:"kode"`
}

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type KoordinatorResponse struct {
	model.KoordinatorModel
	Dapil        *DapilRef `json:"dapil"`
	CreatedBy    *UserRef  `json:"createdBy"`
	RelawanCount int64     `json:"relawanCount"`
}

func NewKoordinatorResponse(m model.KoordinatorModel, relawanCount int64) KoordinatorResponse {
	out := KoordinatorResponse{KoordinatorModel: m, RelawanCount: relawanCount}
	if m.Dapil != nil {
		out.Dapil = &DapilRef{ID: m.Dapil.ID, Nama: m.Dapil.Nama, Kode: m.Dapil.Kode}
	}
	if m.CreatedBy != nil {
		out.CreatedBy = &UserRef{ID: m.CreatedBy.ID, Name: m.CreatedBy.Name}
	}
	return out
}
