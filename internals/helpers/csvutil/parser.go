package csvutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmptyFile   = errors.New("file CSV kosong")
	ErrTooManyRows = errors.New("jumlah baris CSV melebihi batas")
)

// MissingColumnsError dikembalikan bila header tidak memuat kolom wajib.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "kolom wajib tidak ada: " + strings.Join(e.Columns, ", ")
}

// Row adalah satu baris data; Line = nomor baris di file (header = 1).
type Row struct {
	Line   int
	Values map[string]string
}

// Get tidak peka huruf besar/kecil pada nama kolom.
func (r Row) Get(col string) string { return strings.TrimSpace(r.Values[strings.ToLower(col)]) }

// RowError: kesalahan per baris untuk laporan import.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ParseWithHeader membaca CSV dengan baris header.
// Nama kolom dinormalkan (trim, lower-case) dan baris kosong dilewati.
// maxRows <= 0 berarti memakai MaxRows.
func ParseWithHeader(r io.Reader, required []string, maxRows int) ([]Row, error) {
	if maxRows <= 0 {
		maxRows = MaxRows
	}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("baca header: %w", err)
	}
	cols := make([]string, len(header))
	present := map[string]bool{}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		cols[i] = h
		present[h] = true
	}
	var missing []string
	for _, req := range required {
		if !present[strings.ToLower(req)] {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var rows []Row
	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("baris %d: %w", line, err)
		}
		if isBlank(rec) {
			continue
		}
		if len(rows) >= maxRows {
			return nil, ErrTooManyRows
		}
		values := make(map[string]string, len(cols))
		for i, col := range cols {
			if i < len(rec) {
				values[col] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, Row{Line: line, Values: values})
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
