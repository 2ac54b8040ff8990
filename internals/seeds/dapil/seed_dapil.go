package dapil

import (
	"context"
	_ "embed"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/features/dapil/dto"
	"manrelbdg_backend/internals/features/dapil/service"
)

//go:embed data_dapil.json
var dataDapil []byte

// SeedDapil memakai request create yang sama dengan API; kode yang sudah ada dilewati.
func SeedDapil(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	var inputs []dto.CreateDapilRequest
	if err := sonic.Unmarshal(dataDapil, &inputs); err != nil {
		return err
	}

	svc := service.NewDapilService(db)
	for _, req := range inputs {
		existing, err := svc.FindByKode(ctx, req.Kode)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Info("ℹ️ dapil sudah ada, dilewati", zap.String("kode", req.Kode))
			continue
		}
		req.Normalize()
		if _, err := svc.Create(ctx, req); err != nil {
			return err
		}
		log.Info("🗺️ dapil dibuat", zap.String("kode", req.Kode), zap.String("nama", req.Nama))
	}
	return nil
}
