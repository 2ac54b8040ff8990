// Package testutil menyiapkan database sqlite in-memory, config, fixture, dan helper request
// untuk test HTTP. Dipakai dari package test eksternal (xxx_test) agar tidak terjadi import cycle.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"manrelbdg_backend/internals/configs"
	database "manrelbdg_backend/internals/databases"
	dapilModel "manrelbdg_backend/internals/features/dapil/model"
	koordinatorModel "manrelbdg_backend/internals/features/koordinator/model"
	relawanModel "manrelbdg_backend/internals/features/relawan/model"
	userModel "manrelbdg_backend/internals/features/users/user/model"
	helpersAuth "manrelbdg_backend/internals/helpers/auth"
)

const (
	TestSecret   = "test-secret"
	TestPassword = "password123"
)

// NewDB: satu database per test, dimigrasi dengan model produksi.
// Satu koneksi saja supaya query paralel (errgroup) tetap melihat database yang sama.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig(zap.NewNop(), gormLogger.Silent))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// NewConfig: config test tanpa rate limit, storage lokal di temp dir.
func NewConfig(t testing.TB) *configs.Config {
	t.Helper()
	return &configs.Config{
		AppEnv:           "test",
		Port:             "0",
		JWTSecret:        TestSecret,
		TokenTTL:         7 * 24 * time.Hour,
		CookieName:       "auth-token",
		RateLimitEnabled: false,
		CORSOrigins:      []string{"http://localhost:3000"},
		Storage: configs.StorageConfig{
			Driver:        "local",
			LocalDir:      t.TempDir(),
			PublicBaseURL: "/uploads",
		},
		WebP:          configs.WebPConfig{MaxW: 256, MaxH: 256, Quality: 75},
		ImportMaxRows: 5000,
		ExportMaxRows: 10000,
		Client:        configs.ResolveClientConfig("DEFAULT"),
	}
}

// CreateUser menyimpan user dengan password TestPassword.
func CreateUser(t testing.TB, db *gorm.DB, email, role string, active bool) *userModel.UserModel {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &userModel.UserModel{
		Email:    email,
		Password: string(hash),
		Name:     "User " + role,
		Role:     role,
		IsActive: active,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// Token mencetak JWT valid untuk user.
func Token(t testing.TB, cfg *configs.Config, u *userModel.UserModel) string {
	t.Helper()
	tok, _, err := helpersAuth.IssueToken(cfg.JWTSecret, cfg.TokenTTL, u.ID, u.Email, u.Role, time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

// CreateDapil menyimpan dapil aktif dengan satu kecamatan/kelurahan.
func CreateDapil(t testing.TB, db *gorm.DB, kode string, target int) *dapilModel.DapilModel {
	t.Helper()
	d := &dapilModel.DapilModel{
		Kode:      kode,
		Nama:      "Dapil " + kode,
		Provinsi:  "Jawa Barat",
		Kabupaten: "Kota Bandung",
		Kecamatan: datatypes.JSONSlice[string]{"Coblong"},
		Kelurahan: datatypes.JSONSlice[string]{"Dago"},
		Target:    target,
		IsActive:  true,
	}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("create dapil: %v", err)
	}
	return d
}

// NIK → NIK 16 digit unik berdasarkan nomor urut.
func NIK(seq int) string {
	return fmt.Sprintf("3273%012d", seq)
}

// CreateKoordinator menyimpan koordinator langsung lewat model (tanpa service).
func CreateKoordinator(t testing.TB, db *gorm.DB, kode, nik string, dapilID uuid.UUID, status string) *koordinatorModel.KoordinatorModel {
	t.Helper()
	k := &koordinatorModel.KoordinatorModel{
		Kode:      kode,
		Nama:      "Koordinator " + kode,
		NIK:       nik,
		NoHP:      "081234567890",
		Alamat:    "Jl. Dago No. 1",
		Kelurahan: "Dago",
		Kecamatan: "Coblong",
		Kabupaten: "Kota Bandung",
		Provinsi:  "Jawa Barat",
		Status:    status,
		DapilID:   dapilID,
	}
	if err := db.Create(k).Error; err != nil {
		t.Fatalf("create koordinator: %v", err)
	}
	return k
}

// CreateRelawan menyimpan relawan langsung lewat model; koordinatorID boleh nil.
func CreateRelawan(t testing.TB, db *gorm.DB, kode, nik string, dapilID uuid.UUID, koordinatorID *uuid.UUID, status string) *relawanModel.RelawanModel {
	t.Helper()
	r := &relawanModel.RelawanModel{
		Kode:          kode,
		Nama:          "Relawan " + kode,
		NIK:           nik,
		NoHP:          "081234567890",
		Alamat:        "Jl. Dago No. 2",
		Kelurahan:     "Dago",
		Kecamatan:     "Coblong",
		Kabupaten:     "Kota Bandung",
		Provinsi:      "Jawa Barat",
		Status:        status,
		DapilID:       dapilID,
		KoordinatorID: koordinatorID,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("create relawan: %v", err)
	}
	return r
}
