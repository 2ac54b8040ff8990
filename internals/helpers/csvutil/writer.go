package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// Write menulis header + baris ke w.
func Write(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename → "<type>_export_<YYYY-MM-DD>.<format>"
func ExportFilename(kind, format string, now time.Time) string {
	return fmt.Sprintf("%s_export_%s.%s", kind, now.Format("2006-01-02"), format)
}
