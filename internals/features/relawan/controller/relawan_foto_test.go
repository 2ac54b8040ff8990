package controller_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"manrelbdg_backend/internals/constants"
	"manrelbdg_backend/internals/features/relawan/dto"
	"manrelbdg_backend/internals/testutil"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: 120, B: uint8(y), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png: %v", err)
	}
	return buf.Bytes()
}

func TestRelawanReuploadFotoReplacesOldFile(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Login("user@manrel.id", constants.RoleUser)
	d := testutil.CreateDapil(t, env.DB, "DAPIL01", 10)
	r := testutil.CreateRelawan(t, env.DB, "REL0001", testutil.NIK(1), d.ID, nil, constants.StatusAktif)

	onDisk := func(url string) string {
		return filepath.Join(env.Cfg.Storage.LocalDir, strings.TrimPrefix(url, "/uploads/"))
	}
	upload := func() string {
		t.Helper()
		resp, body := env.Upload("/api/relawan/"+r.ID.String()+"/foto", "foto", "wajah.png", pngBytes(t, 48, 48), nil, token)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("upload: status=%d body=%+v", resp.StatusCode, body)
		}
		var got dto.RelawanResponse
		testutil.Decode(t, body, &got)
		if got.Foto == nil || !strings.HasPrefix(*got.Foto, "/uploads/relawan/") {
			t.Fatalf("foto = %v", got.Foto)
		}
		return *got.Foto
	}

	first := upload()
	if _, err := os.Stat(onDisk(first)); err != nil {
		t.Fatalf("file pertama tidak tersimpan: %v", err)
	}

	second := upload()
	if second == first {
		t.Fatalf("url tidak berubah: %s", second)
	}
	if _, err := os.Stat(onDisk(first)); !os.IsNotExist(err) {
		t.Fatalf("file lama masih ada: %v", err)
	}
	if _, err := os.Stat(onDisk(second)); err != nil {
		t.Fatalf("file baru ikut terhapus: %v", err)
	}

	resp, body := env.Do(http.MethodGet, "/api/relawan/"+r.ID.String(), nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: status=%d", resp.StatusCode)
	}
	var got dto.RelawanResponse
	testutil.Decode(t, body, &got)
	if got.Foto == nil || *got.Foto != second {
		t.Fatalf("foto tersimpan = %v, want %s", got.Foto, second)
	}
}
