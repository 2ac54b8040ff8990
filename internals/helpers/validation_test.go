package helper

import (
	"errors"
	"testing"
)

type sampleRequest struct {
	Nama    string   `json:"nama" validate:"required,min=2"`
	NIK     string   `json:"nik" validate:"required,nik"`
	NoHP    string   `json:"noHp" validate:"required,phoneid"`
	Email   string   `json:"email" validate:"email_or_empty"`
	Lokasi  string   `json:"koordinat" validate:"koordinat"`
	Lahir   string   `json:"tanggalLahir" validate:"datestr"`
	Ref     string   `json:"koordinatorId" validate:"uuid_or_empty"`
	Wilayah []string `json:"kecamatan" validate:"required,min=1,dive,required"`
}

func (sampleRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"nama.required": "Nama wajib diisi",
		"nama":          "Nama minimal 2 karakter",
	}
}

func validSample() sampleRequest {
	return sampleRequest{
		Nama:    "Budi",
		NIK:     "3273010101850001",
		NoHP:    "0812-3456-7890",
		Wilayah: []string{"Coblong"},
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*sampleRequest)
		wantField string
		wantMsg   string
	}{
		{"valid", func(*sampleRequest) {}, "", ""},
		{"custom required message", func(r *sampleRequest) { r.Nama = "" }, "nama", "Nama wajib diisi"},
		{"custom field message", func(r *sampleRequest) { r.Nama = "B" }, "nama", "Nama minimal 2 karakter"},
		{"nik length", func(r *sampleRequest) { r.NIK = "123" }, "nik", "NIK harus 16 digit"},
		{"nik digits", func(r *sampleRequest) { r.NIK = "32730101018500AB" }, "nik", "NIK harus 16 digit"},
		{"phone", func(r *sampleRequest) { r.NoHP = "12345" }, "noHp", "Format nomor HP tidak valid"},
		{"email empty ok", func(r *sampleRequest) { r.Email = "" }, "", ""},
		{"email invalid", func(r *sampleRequest) { r.Email = "nope" }, "email", "Format email tidak valid"},
		{"koordinat", func(r *sampleRequest) { r.Lokasi = "-91,107" }, "koordinat", "Format koordinat tidak valid (lat,lng)"},
		{"date", func(r *sampleRequest) { r.Lahir = "15-05-1992" }, "tanggalLahir", "tanggalLahir harus berformat YYYY-MM-DD"},
		{"uuid", func(r *sampleRequest) { r.Ref = "abc" }, "koordinatorId", "koordinatorId tidak valid"},
		{"empty list", func(r *sampleRequest) { r.Wilayah = []string{} }, "kecamatan", "kecamatan minimal 1 item"},
		{"blank list item", func(r *sampleRequest) { r.Wilayah = []string{""} }, "kecamatan", "kecamatan[0] wajib diisi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSample()
			tt.mutate(&req)
			field, err := ValidateStructField(&req)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ae *AppError
			if !errors.As(err, &ae) {
				t.Fatalf("expected *AppError, got %v", err)
			}
			if ae.Status != 400 || ae.Message != tt.wantMsg || field != tt.wantField {
				t.Fatalf("got (%s, %d %q), want (%s, 400 %q)", field, ae.Status, ae.Message, tt.wantField, tt.wantMsg)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"08123456789", "+628123456789", "628123456789", "0812 3456 7890"}
	invalid := []string{"", "12345678901", "0812", "+1 555 123 4567", "08abc456789"}
	for _, p := range valid {
		if !IsValidPhone(p) {
			t.Errorf("%q should be valid", p)
		}
	}
	for _, p := range invalid {
		if IsValidPhone(p) {
			t.Errorf("%q should be invalid", p)
		}
	}
}

func TestIsValidKoordinat(t *testing.T) {
	tests := map[string]bool{
		"-6.8951,107.6098":  true,
		"-6.8951, 107.6098": true,
		"90,180":            true,
		"91,0":              false,
		"0,181":             false,
		"abc,def":           false,
		"-6.8951":           false,
	}
	for in, want := range tests {
		if got := IsValidKoordinat(in); got != want {
			t.Errorf("IsValidKoordinat(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1992-05-15")
	if err != nil || d.Year() != 1992 || d.Month() != 5 || d.Day() != 15 {
		t.Fatalf("ParseDate date-only: %v %v", d, err)
	}
	if _, err := ParseDate("1992-05-15T10:00:00Z"); err != nil {
		t.Fatalf("ParseDate RFC3339: %v", err)
	}
	if _, err := ParseDate("15/05/1992"); err == nil {
		t.Fatal("expected error for dd/mm/yyyy")
	}
}
