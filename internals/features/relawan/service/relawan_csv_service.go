package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"manrelbdg_backend/internals/features/relawan/dto"
	"manrelbdg_backend/internals/features/relawan/model"
	helper "manrelbdg_backend/internals/helpers"
	"manrelbdg_backend/internals/helpers/csvutil"
)

// Kolom import; export menambahkan kode di depan dan createdAt di belakang
// sehingga file export bisa diimport ulang.
var (
	ImportColumns = []string{
		"nama", "nik", "noHp", "email", "alamat", "rt", "rw",
		"kelurahan", "kecamatan", "kabupaten", "provinsi", "koordinat",
		"jenisKelamin", "tanggalLahir", "pekerjaan", "status", "catatan", "dapilKode", "koordinatorKode",
	}
	RequiredImportColumns = []string{
		"nama", "nik", "noHp", "alamat", "kelurahan", "kecamatan", "kabupaten", "provinsi", "dapilKode",
	}
	ExportColumns = append(append([]string{"kode"}, ImportColumns...), "createdAt")
)

func ExportRecord(m model.RelawanModel) []string {
	var dapilKode, koordinatorKode, tanggalLahir string
	if m.Dapil != nil {
		dapilKode = m.Dapil.Kode
	}
	if m.Koordinator != nil {
		koordinatorKode = m.Koordinator.Kode
	}
	if m.TanggalLahir != nil {
		tanggalLahir = m.TanggalLahir.Format("2006-01-02")
	}
	return []string{
		m.Kode, m.Nama, m.NIK, m.NoHP, helper.StrValue(m.Email), m.Alamat,
		helper.StrValue(m.RT), helper.StrValue(m.RW),
		m.Kelurahan, m.Kecamatan, m.Kabupaten, m.Provinsi, helper.StrValue(m.Koordinat),
		helper.StrValue(m.JenisKelamin), tanggalLahir, helper.StrValue(m.Pekerjaan), m.Status,
		helper.StrValue(m.Catatan), dapilKode, koordinatorKode, m.CreatedAt.Format(time.RFC3339),
	}
}

// Import memproses baris CSV satu per satu dengan aturan yang sama seperti Create.
// Kegagalan baris dicatat di hasil; error non-nil hanya untuk kegagalan database/konteks.
func (s *RelawanService) Import(ctx context.Context, rows []csvutil.Row, opt csvutil.ImportOptions, actorID *uuid.UUID) (*csvutil.ImportResult, error) {
	res := csvutil.NewImportResult(len(rows))
	dapilIDs := map[string]uuid.UUID{}
	koordinatorIDs := map[string]uuid.UUID{}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		dapilKode := row.Get("dapilKode")
		if dapilKode == "" {
			res.Fail(row.Line, "dapilKode", "Kode dapil wajib diisi")
			continue
		}
		dapilID, ok := dapilIDs[dapilKode]
		if !ok {
			d, err := s.Dapil.FindByKode(ctx, dapilKode)
			if err != nil {
				return res, err
			}
			if d == nil {
				res.Fail(row.Line, "dapilKode", "Dapil tidak ditemukan")
				continue
			}
			dapilID = d.ID
			dapilIDs[dapilKode] = dapilID
		}

		var koordinatorID string
		if korKode := row.Get("koordinatorKode"); korKode != "" {
			id, ok := koordinatorIDs[korKode]
			if !ok {
				k, err := s.Koordinator.FindByKode(ctx, korKode)
				if err != nil {
					return res, err
				}
				if k == nil {
					res.Fail(row.Line, "koordinatorKode", "Koordinator tidak ditemukan")
					continue
				}
				id = k.ID
				koordinatorIDs[korKode] = id
			}
			koordinatorID = id.String()
		}

		req := dto.CreateRelawanRequest{
			Nama:          row.Get("nama"),
			NIK:           row.Get("nik"),
			NoHP:          row.Get("noHp"),
			Email:         row.Get("email"),
			Alamat:        row.Get("alamat"),
			RT:            row.Get("rt"),
			RW:            row.Get("rw"),
			Kelurahan:     row.Get("kelurahan"),
			Kecamatan:     row.Get("kecamatan"),
			Kabupaten:     row.Get("kabupaten"),
			Provinsi:      row.Get("provinsi"),
			Koordinat:     row.Get("koordinat"),
			JenisKelamin:  row.Get("jenisKelamin"),
			TanggalLahir:  row.Get("tanggalLahir"),
			Pekerjaan:     row.Get("pekerjaan"),
			Status:        row.Get("status"),
			Catatan:       row.Get("catatan"),
			DapilID:       dapilID.String(),
			KoordinatorID: koordinatorID,
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
func (s *RelawanService) rowMessage(line int, err error) string {
	var ae *helper.AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	s.Log.Warn("[IMPORT] relawan: baris gagal disimpan", zap.Int("row", line), zap.Error(err))
	return MsgImportRowFailed
}
