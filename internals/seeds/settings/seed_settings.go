package settings

import (
	"context"
	_ "embed"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/features/settings/model"
	"manrelbdg_backend/internals/features/settings/service"
)

//go:embed data_settings.json
var dataSettings []byte

// SeedSettings: key yang sudah ada tidak ditimpa.
func SeedSettings(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	var inputs []model.SettingModel
	if err := sonic.Unmarshal(dataSettings, &inputs); err != nil {
		return err
	}

	for _, s := range inputs {
		if err := service.CheckValue(s.Type, s.Value); err != nil {
			return err
		}
		var n int64
		if err := db.WithContext(ctx).Model(&model.SettingModel{}).Where("key = ?", s.Key).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			log.Info("ℹ️ setting sudah ada, dilewati", zap.String("key", s.Key))
			continue
		}
		if err := db.WithContext(ctx).Create(&s).Error; err != nil {
			return err
		}
		log.Info("⚙️ setting dibuat", zap.String("key", s.Key))
	}
	return nil
}
