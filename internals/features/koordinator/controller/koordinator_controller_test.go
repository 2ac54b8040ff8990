package controller_test

import (
	"bytes"
	"encoding/csv"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"manrelbdg_backend/internals/constants"
	dapilService "manrelbdg_backend/internals/features/dapil/service"
	"manrelbdg_backend/internals/features/koordinator/dto"
	"manrelbdg_backend/internals/features/koordinator/service"
	"manrelbdg_backend/internals/helpers/csvutil"
	"manrelbdg_backend/internals/testutil"
)

func koordinatorPayload(nik string, dapilID uuid.UUID) map[string]any {
	return map[string]any{
		"nama":      "Asep Sunandar",
		"nik":       nik,
		"noHp":      "0812-3456-7890",
		"email":     "",
		"alamat":    "Jl. Ir. H. Juanda No. 10",
		"kelurahan": "Dago",
		"kecamatan": "Coblong",
		"kabupaten": "Kota Bandung",
		"provinsi":  "Jawa Barat",
		"dapilId":   dapilID.String(),
	}
}

func TestKoordinatorCreate(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Login("user@manrel.id", constants.RoleUser)
	d := testutil.CreateDapil(t, env.DB, "DAPIL01", 10)

	resp, body := env.Do(http.MethodPost, "/api/koordinator", koordinatorPayload(testutil.NIK(1), d.ID), token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status=%d body=%+v", resp.StatusCode, body)
	}
	var got dto.KoordinatorResponse
	testutil.Decode(t, body, &got)
	if got.Kode != "KOR0001" || got.Status != constants.StatusAktif || got.NoHP != "081234567890" {
		t.Fatalf("got = %+v", got)
	}
	if got.Email != nil {
		t.Fatalf("email kosong harus null, got %q", *got.Email)
	}
	if got.Dapil == nil || got.Dapil.Kode != "DAPIL01" || got.CreatedBy == nil {
		t.Fatalf("refs = %+v / %+v", got.Dapil, got.CreatedBy)
	}

	var nullEmail int64
	env.DB.Table("koordinators").Where("email IS NULL").Count(&nullEmail)
	if nullEmail != 1 {
		t.Fatalf("email NULL rows = %d", nullEmail)
	}

	resp, body = env.Do(http.MethodPost, "/api/koordinator", koordinatorPayload(testutil.NIK(2), d.ID), token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create 2: status=%d body=%+v", resp.StatusCode, body)
	}
	testutil.Decode(t, body, &got)
	if got.Kode != "KOR0002" {
		t.Fatalf("kode kedua = %s", got.Kode)
	}
}

func TestKoordinatorCreateRejects(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Login("user@manrel.id", constants.RoleUser)
	d := testutil.CreateDapil(t, env.DB, "DAPIL01", 10)
	testutil.CreateKoordinator(t, env.DB, "KOR0001", testutil.NIK(1), d.ID, constants.StatusAktif)

	resp, body := env.Do(http.MethodPost, "/api/koordinator", koordinatorPayload(testutil.NIK(1), d.ID), token)
	if resp.StatusCode != http.StatusConflict || body.Error != service.MsgNIKTaken {
		t.Fatalf("dup nik: status=%d body=%+v", resp.StatusCode, body)
	}

	resp, body = env.Do(http.MethodPost, "/api/koordinator", koordinatorPayload(testutil.NIK(2), uuid.New()), token)
	if resp.StatusCode != http.StatusNotFound || body.Error != dapilService.MsgDapilNotFound {
		t.Fatalf("unknown dapil: status=%d body=%+v", resp.StatusCode, body)
	}

	bad := koordinatorPayload("123", d.ID)
	resp, body = env.Do(http.MethodPost, "/api/koordinator", bad, token)
	if resp.StatusCode != http.StatusBadRequest || body.Error != "NIK harus 16 digit" {
		t.Fatalf("bad nik: status=%d body=%+v", resp.StatusCode, body)
	}

	var n int64
	env.DB.Table("koordinators").Count(&n)
	if n != 1 {
		t.Fatalf("koordinator count = %d, want 1", n)
	}
}

func TestKoordinatorListFilter(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Login("viewer@manrel.id", constants.RoleViewer)
	d1 := testutil.CreateDapil(t, env.DB, "DAPIL01", 10)
	d2 := testutil.CreateDapil(t, env.DB, "DAPIL02", 10)
	k := testutil.CreateKoordinator(t, env.DB, "KOR0001", testutil.NIK(1), d1.ID, constants.StatusAktif)
	testutil.CreateKoordinator(t, env.DB, "KOR0002", testutil.NIK(2), d1.ID, constants.StatusPending)
	testutil.CreateKoordinator(t, env.DB, "KOR0003", testutil.NIK(3), d2.ID, constants.StatusAktif)
	testutil.CreateRelawan(t, env.DB, "REL0001", testutil.NIK(10), d1.ID, &k.ID, constants.StatusAktif)

	_, body := env.Do(http.MethodGet, "/api/koordinator?dapilId="+d1.ID.String()+"&status=AKTIF", nil, token)
	var rows []dto.KoordinatorResponse
	testutil.Decode(t, body, &rows)
	if len(rows) != 1 || rows[0].Kode != "KOR0001" || rows[0].RelawanCount != 1 {
		t.Fatalf("rows = %+v", rows)
	}

	resp, body := env.Do(http.MethodGet, "/api/koordinator?dapilId=bukan-uuid", nil, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad dapilId: status=%d body=%+v", resp.StatusCode, body)
	}

	_, body = env.Do(http.MethodGet, "/api/koordinator?search=kor0003", nil, token)
	if body.Pagination == nil || body.Pagination.Total != 1 {
		t.Fatalf("search = %+v", body.Pagination)
	}
}

func TestKoordinatorUpdateAndDelete(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Login("user@manrel.id", constants.RoleUser)
	d := testutil.CreateDapil(t, env.DB, "DAPIL01", 10)
	k1 := testutil.CreateKoordinator(t, env.DB, "KOR0001", testutil.NIK(1), d.ID, constants.StatusAktif)
	k2 := testutil.CreateKoordinator(t, env.DB, "KOR0002", testutil.NIK(2), d.ID, constants.StatusAktif)
	testutil.CreateRelawan(t, env.DB, "REL0001", testutil.NIK(10), d.ID, &k1.ID, constants.StatusAktif)

	resp, body := env.Do(http.MethodPut, "/api/koordinator/"+k2.ID.String(), map[string]any{"nik": testutil.NIK(1)}, token)
	if resp.StatusCode != http.StatusConflict || body.Error != service.MsgNIKTaken {
		t.Fatalf("nik bentrok: status=%d body=%+v", resp.StatusCode, body)
	}

	resp, body = env.Do(http.MethodPut, "/api/koordinator/"+k2.ID.String(), map[string]any{
		"status": "tidak_aktif", "email": "kor2@manrel.id",
	}, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: status=%d body=%+v", resp.StatusCode, body)
	}
	var got dto.KoordinatorResponse
	testutil.Decode(t, body, &got)
	if got.Status != constants.StatusTidakAktif || got.Email == nil || *got.Email != "kor2@manrel.id" || got.NIK != testutil.NIK(2) {
		t.Fatalf("updated = %+v", got)
	}

	resp, body = env.Do(http.MethodDelete, "/api/koordinator/"+k1.ID.String(), nil, token)
	if resp.StatusCode != http.StatusConflict || body.Error != service.MsgKoordinatorInUse {
		t.Fatalf("delete in use: status=%d body=%+v", resp.StatusCode, body)
	}
	resp, _ = env.Do(http.MethodDelete, "/api/koordinator/"+k2.ID.String(), nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: status=%d", resp.StatusCode)
	}
	resp, body = env.Do(http.MethodDelete, "/api/koordinator/"+k2.ID.String(), nil, token)
	if resp.StatusCode != http.StatusNotFound || body.Error != service.MsgKoordinatorNotFound {
		t.Fatalf("delete again: status=%d body=%+v", resp.StatusCode, body)
	}
}

func TestKoordinatorImportExport(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Login("user@manrel.id", constants.RoleUser)
	testutil.CreateDapil(t, env.DB, "DAPIL01", 10)
	d := testutil.CreateDapil(t, env.DB, "DAPIL02", 10)
	testutil.CreateKoordinator(t, env.DB, "KOR0001", testutil.NIK(1), d.ID, constants.StatusAktif)

	csvBody := strings.Join([]string{
		"nama,nik,noHp,email,alamat,kelurahan,kecamatan,kabupaten,provinsi,dapilKode",
		"Budi,"+testutil.NIK(2)+",081234567891,,Jl. Dago 1,Dago,Coblong,Kota Bandung,Jawa Barat,DAPIL01",
		"Duplikat,"+testutil.NIK(1)+",081234567892,,Jl. Dago 2,Dago,Coblong,Kota Bandung,Jawa Barat,DAPIL01",
		"Tanpa Dapil,"+testutil.NIK(3)+",081234567893,,Jl. Dago 3,Dago,Coblong,Kota Bandung,Jawa Barat,DAPIL99",
		"NIK Salah,123,081234567894,,Jl. Dago 4,Dago,Coblong,Kota Bandung,Jawa Barat,DAPIL01",
	}, "\n")

	resp, body := env.Upload("/api/koordinator/import", "file", "koordinator.csv", []byte(csvBody), nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("import: status=%d body=%+v", resp.StatusCode, body)
	}
	var res csvutil.ImportResult
	testutil.Decode(t, body, &res)
	if res.Total != 4 || res.Created != 1 || res.Skipped != 1 || res.Failed != 2 {
		t.Fatalf("result = %+v", res)
	}
	if res.Errors[0].Row != 4 || res.Errors[0].Field != "dapilKode" || res.Errors[1].Row != 5 || res.Errors[1].Field != "nik" {
		t.Fatalf("errors = %+v", res.Errors)
	}

	resp, body = env.Upload("/api/koordinator/import", "file", "koordinator.csv", []byte("nama,nik\nA,1\n"), nil, token)
	if resp.StatusCode != http.StatusBadRequest || !strings.Contains(body.Error, "noHp") {
		t.Fatalf("missing columns: status=%d body=%+v", resp.StatusCode, body)
	}
	resp, _ = env.Upload("/api/koordinator/import", "file", "koordinator.txt", []byte(csvBody), nil, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bukan csv: status=%d", resp.StatusCode)
	}

	resp, _ = env.Do(http.MethodGet, "/api/koordinator/export?sortBy=kode&sortOrder=asc", nil, token)
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv") {
		t.Fatalf("export: status=%d type=%s", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	if !strings.Contains(resp.Header.Get("Content-Disposition"), "koordinator_export_") {
		t.Fatalf("disposition = %s", resp.Header.Get("Content-Disposition"))
	}
	records, err := csv.NewReader(resp.Body).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 || strings.Join(records[0], ",") != strings.Join(service.ExportColumns, ",") {
		t.Fatalf("records = %v", records)
	}
	if records[1][0] != "KOR0001" || records[2][0] != "KOR0002" || records[2][1] != "Budi" {
		t.Fatalf("rows = %v", records[1:])
	}
}

func TestKoordinatorUploadFoto(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Login("user@manrel.id", constants.RoleUser)
	d := testutil.CreateDapil(t, env.DB, "DAPIL01", 10)
	k := testutil.CreateKoordinator(t, env.DB, "KOR0001", testutil.NIK(1), d.ID, constants.StatusAktif)

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(x * 4), B: uint8(y * 4), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png: %v", err)
	}

	path := "/api/koordinator/" + k.ID.String() + "/foto"
	resp, body := env.Upload(path, "foto", "wajah.png", buf.Bytes(), nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload: status=%d body=%+v", resp.StatusCode, body)
	}
	var got dto.KoordinatorResponse
	testutil.Decode(t, body, &got)
	if got.Foto == nil || !strings.HasPrefix(*got.Foto, "/uploads/koordinator/") || !strings.HasSuffix(*got.Foto, ".webp") {
		t.Fatalf("foto = %v", got.Foto)
	}
	first := filepath.Join(env.Cfg.Storage.LocalDir, strings.TrimPrefix(*got.Foto, "/uploads/"))
	if _, err := os.Stat(first); err != nil {
		t.Fatalf("file tidak tersimpan: %v", err)
	}

	// upload ulang menghapus file lama
	resp, body = env.Upload(path, "foto", "wajah.png", buf.Bytes(), nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("re-upload: status=%d", resp.StatusCode)
	}
	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Fatalf("file lama masih ada: %v", err)
	}
	var again dto.KoordinatorResponse
	testutil.Decode(t, body, &again)
	if again.Foto == nil || *again.Foto == *got.Foto {
		t.Fatalf("foto baru = %v", again.Foto)
	}
	second := filepath.Join(env.Cfg.Storage.LocalDir, strings.TrimPrefix(*again.Foto, "/uploads/"))
	if _, err := os.Stat(second); err != nil {
		t.Fatalf("file baru ikut terhapus: %v", err)
	}
	var stored []string
	if err := env.DB.Table("koordinators").Where("id = ?", k.ID).Pluck("foto", &stored).Error; err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 || stored[0] != *again.Foto {
		t.Fatalf("kolom foto = %v, want %q", stored, *again.Foto)
	}

	resp, _ = env.Upload(path, "foto", "catatan.txt", []byte("bukan gambar"), nil, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bukan gambar: status=%d", resp.StatusCode)
	}
	resp, _ = env.Upload("/api/koordinator/"+uuid.NewString()+"/foto", "foto", "wajah.png", buf.Bytes(), nil, token)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown id: status=%d", resp.StatusCode)
	}
}
