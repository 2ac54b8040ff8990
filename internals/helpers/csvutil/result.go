package csvutil

// ImportResult: ringkasan proses import.
type ImportResult struct {
	Total   int        `json:"total"`
	Created int        `json:"created"`
	Updated int        `json:"updated"`
	Skipped int        `json:"skipped"`
	Failed  int        `json:"failed"`
	Errors  []RowError `json:"errors"`
}

func NewImportResult(total int) *ImportResult {
	return &ImportResult{Total: total, Errors: []RowError{}}
}

// Fail mencatat satu baris gagal.
func (r *ImportResult) Fail(row int, field, message string) {
	r.Failed++
	r.Errors = append(r.Errors, RowError{Row: row, Field: field, Message: message})
}

// ImportOptions dibaca dari form multipart.
type ImportOptions struct {
	SkipDuplicates bool
	UpdateExisting bool
}
