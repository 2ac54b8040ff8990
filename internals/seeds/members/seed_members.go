package members

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dapilService "manrelbdg_backend/internals/features/dapil/service"
	koordinatorDto "manrelbdg_backend/internals/features/koordinator/dto"
	koordinatorService "manrelbdg_backend/internals/features/koordinator/service"
	relawanDto "manrelbdg_backend/internals/features/relawan/dto"
	relawanService "manrelbdg_backend/internals/features/relawan/service"
)

var (
	//go:embed data_koordinator.json
	dataKoordinator []byte

	//go:embed data_relawan.json
	dataRelawan []byte
)

type koordinatorSeed struct {
	koordinatorDto.CreateKoordinatorRequest
	DapilKode string `json:"dapilKode"`
}

type relawanSeed struct {
	relawanDto.CreateRelawanRequest
	DapilKode      string `json:"dapilKode"`
	KoordinatorNIK string `json:"koordinatorNik"`
}

// SeedKoordinator: NIK yang sudah ada dilewati; kode dibuat lewat service (KOR0001, ...).
func SeedKoordinator(ctx context.Context, db *gorm.DB, log *zap.Logger, actorID *uuid.UUID) error {
	var inputs []koordinatorSeed
	if err := sonic.Unmarshal(dataKoordinator, &inputs); err != nil {
		return err
	}

	dapils := dapilService.NewDapilService(db)
	svc := koordinatorService.NewKoordinatorService(db)
	for _, in := range inputs {
		existing, err := svc.FindByNIK(ctx, in.NIK)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Info("ℹ️ koordinator sudah ada, dilewati", zap.String("nik", in.NIK))
			continue
		}
		d, err := dapils.FindByKode(ctx, in.DapilKode)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("seed koordinator %s: dapil %s tidak ada", in.Nama, in.DapilKode)
		}

		req := in.CreateKoordinatorRequest
		req.DapilID = d.ID.String()
		req.Normalize()
		out, err := svc.Create(ctx, req, actorID)
		if err != nil {
			return err
		}
		log.Info("👥 koordinator dibuat", zap.String("kode", out.Kode), zap.String("nama", out.Nama))
	}
	return nil
}

func SeedRelawan(ctx context.Context, db *gorm.DB, log *zap.Logger, actorID *uuid.UUID) error {
	var inputs []relawanSeed
	if err := sonic.Unmarshal(dataRelawan, &inputs); err != nil {
		return err
	}

	dapils := dapilService.NewDapilService(db)
	koordinators := koordinatorService.NewKoordinatorService(db)
	svc := relawanService.NewRelawanService(db)
	for _, in := range inputs {
		existing, err := svc.FindByNIK(ctx, in.NIK)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Info("ℹ️ relawan sudah ada, dilewati", zap.String("nik", in.NIK))
			continue
		}
		d, err := dapils.FindByKode(ctx, in.DapilKode)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("seed relawan %s: dapil %s tidak ada", in.Nama, in.DapilKode)
		}

		req := in.CreateRelawanRequest
		req.DapilID = d.ID.String()
		if in.KoordinatorNIK != "" {
			k, err := koordinators.FindByNIK(ctx, in.KoordinatorNIK)
			if err != nil {
				return err
			}
			if k != nil {
				req.KoordinatorID = k.ID.String()
			}
		}
		req.Normalize()
		out, err := svc.Create(ctx, req, actorID)
		if err != nil {
			return err
		}
		log.Info("🙋 relawan dibuat", zap.String("kode", out.Kode), zap.String("nama", out.Nama))
	}
	return nil
}
