package service_test

import (
	"testing"

	"manrelbdg_backend/internals/features/koordinator/model"
	"manrelbdg_backend/internals/features/koordinator/service"
)

func TestExportRecordMatchesColumns(t *testing.T) {
	koordinat := "-6.9175,107.6504"
	rec := service.ExportRecord(model.KoordinatorModel{Kode: "KOR0001", Nama: "Siti", Koordinat: &koordinat})
	if len(rec) != len(service.ExportColumns) {
		t.Fatalf("record len = %d, columns = %d", len(rec), len(service.ExportColumns))
	}
	got := map[string]string{}
	for i, col := range service.ExportColumns {
		got[col] = rec[i]
	}
	if got["kode"] != "KOR0001" || got["nama"] != "Siti" || got["koordinat"] != koordinat {
		t.Fatalf("record = %v", got)
	}
	for _, col := range service.ImportColumns {
		if _, ok := got[col]; !ok {
			t.Fatalf("kolom import %q tidak ada di export", col)
		}
	}
}
