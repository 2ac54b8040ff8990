package database

import (
	"gorm.io/gorm"

	dapilModel "manrelbdg_backend/internals/features/dapil/model"
	dashboardModel "manrelbdg_backend/internals/features/dashboard/model"
	koordinatorModel "manrelbdg_backend/internals/features/koordinator/model"
	relawanModel "manrelbdg_backend/internals/features/relawan/model"
	settingModel "manrelbdg_backend/internals/features/settings/model"
	userModel "manrelbdg_backend/internals/features/users/user/model"
)

// Models: urutan sesuai dependensi (parent dulu).
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&dapilModel.DapilModel{},
		&koordinatorModel.KoordinatorModel{},
		&relawanModel.RelawanModel{},
		&dashboardModel.DashboardSummaryModel{},
		&settingModel.SettingModel{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
