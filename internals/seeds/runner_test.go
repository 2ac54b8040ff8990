package seeds_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dapilModel "manrelbdg_backend/internals/features/dapil/model"
	dashboardModel "manrelbdg_backend/internals/features/dashboard/model"
	koordinatorModel "manrelbdg_backend/internals/features/koordinator/model"
	relawanModel "manrelbdg_backend/internals/features/relawan/model"
	settingModel "manrelbdg_backend/internals/features/settings/model"
	authService "manrelbdg_backend/internals/features/users/auth/service"
	userModel "manrelbdg_backend/internals/features/users/user/model"
	"manrelbdg_backend/internals/seeds"
	"manrelbdg_backend/internals/testutil"
)

type counts struct {
	users, dapil, koordinator, relawan, summary, settings int64
}

func countAll(t *testing.T, db *gorm.DB) counts {
	t.Helper()
	var c counts
	for _, x := range []struct {
		model any
		dst   *int64
	}{
		{&userModel.UserModel{}, &c.users},
		{&dapilModel.DapilModel{}, &c.dapil},
		{&koordinatorModel.KoordinatorModel{}, &c.koordinator},
		{&relawanModel.RelawanModel{}, &c.relawan},
		{&dashboardModel.DashboardSummaryModel{}, &c.summary},
		{&settingModel.SettingModel{}, &c.settings},
	} {
		if err := db.Model(x.model).Count(x.dst).Error; err != nil {
			t.Fatalf("count: %v", err)
		}
	}
	return c
}

func TestRunAllSeedsIsIdempotent(t *testing.T) {
	authService.BcryptCost = bcrypt.MinCost
	db := testutil.NewDB(t)
	ctx := context.Background()

	if err := seeds.RunAllSeeds(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := countAll(t, db)
	want := counts{users: 1, dapil: 3, koordinator: 2, relawan: 3, summary: 1, settings: 5}
	if first != want {
		t.Fatalf("after first run = %+v, want %+v", first, want)
	}

	if err := seeds.RunAllSeeds(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if again := countAll(t, db); again != first {
		t.Fatalf("after second run = %+v, want %+v", again, first)
	}

	var kor []koordinatorModel.KoordinatorModel
	if err := db.Order("kode ASC").Find(&kor).Error; err != nil {
		t.Fatal(err)
	}
	if kor[0].Kode != "KOR0001" || kor[1].Kode != "KOR0002" {
		t.Fatalf("kode koordinator = %s, %s", kor[0].Kode, kor[1].Kode)
	}
}
