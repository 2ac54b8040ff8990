package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/features/relawan/model"
	"manrelbdg_backend/internals/features/relawan/service"
	"manrelbdg_backend/internals/helpers/csvutil"
	"manrelbdg_backend/internals/testutil"
)

func TestImportLogsUnexpectedRowErrors(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateDapil(t, db, "DAPIL01", 10)

	// insert relawan gagal dengan error database biasa (bukan AppError)
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_relawan", func(tx *gorm.DB) {
		if tx.Statement.Table == "relawans" {
			_ = tx.AddError(errors.New("disk penuh"))
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	core, logs := observer.New(zapcore.WarnLevel)
	svc := service.NewRelawanService(db)
	svc.Log = zap.New(core)

	csvBody := "nama,nik,noHp,alamat,kelurahan,kecamatan,kabupaten,provinsi,dapilKode\n" +
		"Ujang," + testutil.NIK(1) + ",081234567891,Jl. Dago 1,Dago,Coblong,Kota Bandung,Jawa Barat,DAPIL01\n"
	rows, err := csvutil.ParseWithHeader(strings.NewReader(csvBody), service.RequiredImportColumns, 0)
	if err != nil {
		t.Fatal(err)
	}

	res, err := svc.Import(context.Background(), rows, csvutil.ImportOptions{SkipDuplicates: true}, nil)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Failed != 1 || res.Errors[0].Row != 2 || res.Errors[0].Message != service.MsgImportRowFailed {
		t.Fatalf("result = %+v", res)
	}
	if strings.Contains(res.Errors[0].Message, "disk penuh") {
		t.Fatalf("detail bocor ke hasil import: %+v", res.Errors[0])
	}

	entries := logs.All()
	if len(entries) != 1 || entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("log entries = %+v", entries)
	}
	fields := entries[0].ContextMap()
	if fields["row"] != int64(2) || !strings.Contains(fields["error"].(string), "disk penuh") {
		t.Fatalf("log fields = %+v", fields)
	}
}

func TestExportRecordMatchesColumns(t *testing.T) {
	koordinat, catatan := "-6.8951,107.6098", "Aktif di RW 07"
	rec := service.ExportRecord(model.RelawanModel{Kode: "REL0001", Koordinat: &koordinat, Catatan: &catatan})
	if len(rec) != len(service.ExportColumns) {
		t.Fatalf("record len = %d, columns = %d", len(rec), len(service.ExportColumns))
	}
	for i, col := range service.ExportColumns {
		switch col {
		case "kode":
			if rec[i] != "REL0001" {
				t.Fatalf("kode = %q", rec[i])
			}
		case "koordinat":
			if rec[i] != koordinat {
				t.Fatalf("koordinat = %q", rec[i])
			}
		case "catatan":
			if rec[i] != catatan {
				t.Fatalf("catatan = %q", rec[i])
			}
		}
	}
}
