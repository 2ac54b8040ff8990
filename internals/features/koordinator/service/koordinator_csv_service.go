package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"manrelbdg_backend/internals/features/koordinator/dto"
	"manrelbdg_backend/internals/features/koordinator/model"
	helper "manrelbdg_backend/internals/helpers"
	"manrelbdg_backend/internals/helpers/csvutil"
)

// Kolom CSV; export = kode + kolom import + dapilNama, createdAt, sehingga bisa diimport ulang.
var (
	ImportColumns = []string{
		"nama", "nik", "noHp", "email", "alamat", "rt", "rw",
		"kelurahan", "kecamatan", "kabupaten", "provinsi", "koordinat", "status", "catatan", "dapilKode",
	}
	RequiredImportColumns = []string{
		"nama", "nik", "noHp", "alamat", "kelurahan", "kecamatan", "kabupaten", "provinsi", "dapilKode",
	}
	ExportColumns = append(append([]string{"kode"}, ImportColumns...), "dapilNama", "createdAt")
)

func ExportRecord(m model.KoordinatorModel) []string {
	var dapilKode, dapilNama string
	if m.Dapil != nil {
		dapilKode, dapilNama = m.Dapil.Kode, m.Dapil.Nama
	}
	return []string{
		m.Kode, m.Nama, m.NIK, m.NoHP, helper.StrValue(m.Email), m.Alamat,
		helper.StrValue(m.RT), helper.StrValue(m.RW),
		m.Kelurahan, m.Kecamatan, m.Kabupaten, m.Provinsi, helper.StrValue(m.Koordinat),
		m.Status, helper.StrValue(m.Catatan), dapilKode, dapilNama, m.CreatedAt.Format(time.RFC3339),
	}
}

// Import memproses baris CSV satu per satu; kegagalan baris dicatat, bukan menghentikan proses.
// Error non-nil hanya untuk kegagalan yang membuat seluruh import tidak bisa dilanjutkan.
func (s *KoordinatorService) Import(ctx context.Context, rows []csvutil.Row, opt csvutil.ImportOptions, actorID *uuid.UUID) (*csvutil.ImportResult, error) {
	res := csvutil.NewImportResult(len(rows))
	dapilIDs := map[string]uuid.UUID{}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		kode := row.Get("dapilKode")
		if kode == "" {
			res.Fail(row.Line, "dapilKode", "Kode dapil wajib diisi")
			continue
		}
		dapilID, ok := dapilIDs[kode]
		if !ok {
			d, err := s.Dapil.FindByKode(ctx, kode)
			if err != nil {
				return res, err
			}
			if d == nil {
				res.Fail(row.Line, "dapilKode", "Dapil tidak ditemukan")
				continue
			}
			dapilID = d.ID
			dapilIDs[kode] = dapilID
		}

		req := dto.CreateKoordinatorRequest{
			Nama:      row.Get("nama"),
			NIK:       row.Get("nik"),
			NoHP:      row.Get("noHp"),
			Email:     row.Get("email"),
			Alamat:    row.Get("alamat"),
			RT:        row.Get("rt"),
			RW:        row.Get("rw"),
			Kelurahan: row.Get("kelurahan"),
			Kecamatan: row.Get("kecamatan"),
			Kabupaten: row.Get("kabupaten"),
			Provinsi:  row.Get("provinsi"),
			Koordinat: row.Get("koordinat"),
			Status:    row.Get("status"),
			Catatan:   row.Get("catatan"),
			DapilID:   dapilID.String(),
		}
		req.Normalize()
		if field, err := helper.ValidateStructField(&req); err != nil {
			res.Fail(row.Line, field, s.rowMessage(row.Line, err))
			continue
		}

		existing, err := s.FindByNIK(ctx, req.NIK)
		if err != nil {
			return res, err
		}
		if existing != nil {
			switch {
			case opt.UpdateExisting:
				if err := s.applyUpdate(ctx, existing, dto.FromCreate(req)); err != nil {
					res.Fail(row.Line, "", s.rowMessage(row.Line, err))
					continue
				}
				res.Updated++
			case opt.SkipDuplicates:
				res.Skipped++
			default:
				res.Fail(row.Line, "nik", MsgNIKTaken)
			}
			continue
		}

		if _, err := s.insert(ctx, req.ToModel(actorID)); err != nil {
			res.Fail(row.Line, "", s.rowMessage(row.Line, err))
			continue
		}
		res.Created++
	}
	return res, nil
}

// rowMessage: pesan AppError diteruskan; error lain dicatat dan diganti pesan generic.
func (s *KoordinatorService) rowMessage(line int, err error) string {
	var ae *helper.AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	s.Log.Warn("[IMPORT] koordinator: baris gagal disimpan", zap.Int("row", line), zap.Error(err))
	return MsgImportRowFailed
}
