package controller_test

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"testing"

	"manrelbdg_backend/internals/configs"
	"manrelbdg_backend/internals/constants"
	"manrelbdg_backend/internals/features/relawan/dto"
	"manrelbdg_backend/internals/helpers/csvutil"
	"manrelbdg_backend/internals/testutil"
)

func TestRelawanExportImportRoundTrip(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Login("user@manrel.id", constants.RoleUser)
	d := testutil.CreateDapil(t, env.DB, "DAPIL01", 10)

	payload := relawanPayload(testutil.NIK(1), d.ID, "")
	payload["catatan"] = "Aktif di RW 07"
	resp, body := env.Do(http.MethodPost, "/api/relawan", payload, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status=%d body=%+v", resp.StatusCode, body)
	}
	var created dto.RelawanResponse
	testutil.Decode(t, body, &created)

	resp, _ = env.Do(http.MethodGet, "/api/relawan/export", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export: status=%d", resp.StatusCode)
	}
	exported, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	resp, _ = env.Do(http.MethodDelete, "/api/relawan/"+created.ID.String(), nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: status=%d", resp.StatusCode)
	}

	resp, body = env.Upload("/api/relawan/import", "file", "relawan_export.csv", exported, nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("import: status=%d body=%+v", resp.StatusCode, body)
	}
	var res csvutil.ImportResult
	testutil.Decode(t, body, &res)
	if res.Created != 1 || res.Failed != 0 {
		t.Fatalf("result = %+v", res)
	}

	var back struct {
		Koordinat string
		Catatan   string
		Pekerjaan string
	}
	if err := env.DB.Table("relawans").Select("koordinat, catatan, pekerjaan").
		Where("nik = ?", testutil.NIK(1)).Scan(&back).Error; err != nil {
		t.Fatal(err)
	}
	if back.Koordinat != "-6.8837,107.6132" || back.Catatan != "Aktif di RW 07" || back.Pekerjaan != "Guru" {
		t.Fatalf("after round trip = %+v", back)
	}
}

func TestRelawanExportRowCap(t *testing.T) {
	env := testutil.NewEnv(t, func(c *configs.Config) { c.ExportMaxRows = 2 })
	token := env.Login("user@manrel.id", constants.RoleUser)
	d := testutil.CreateDapil(t, env.DB, "DAPIL01", 10)
	for i := 1; i <= 3; i++ {
		testutil.CreateRelawan(t, env.DB, fmt.Sprintf("REL%04d", i), testutil.NIK(i), d.ID, nil, constants.StatusAktif)
	}

	tests := []struct {
		name     string
		query    string
		wantRows int
	}{
		{"default capped", "", 2},
		{"all capped", "?limit=all", 2},
		{"explicit page", "?page=2&limit=2&sortBy=kode&sortOrder=asc", 1},
		{"limit above cap falls back", "?limit=50", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := env.Do(http.MethodGet, "/api/relawan/export"+tt.query, nil, token)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status=%d", resp.StatusCode)
			}
			records, err := csv.NewReader(resp.Body).ReadAll()
			if err != nil {
				t.Fatalf("read csv: %v", err)
			}
			if len(records)-1 != tt.wantRows {
				t.Fatalf("rows = %d, want %d", len(records)-1, tt.wantRows)
			}
		})
	}
}
