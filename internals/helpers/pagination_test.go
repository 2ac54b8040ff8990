package helper

import "testing"

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name                string
		page, limit, order  string
		wantPage, wantLimit int
		wantOrder           string
	}{
		{"defaults", "", "", "", 1, 10, "desc"},
		{"valid", "3", "25", "asc", 3, 25, "asc"},
		{"limit above max falls back", "1", "101", "", 1, 10, "desc"},
		{"limit at max", "1", "100", "", 1, 100, "desc"},
		{"limit zero falls back", "1", "0", "", 1, 10, "desc"},
		{"negative page", "-2", "5", "", 1, 5, "desc"},
		{"non numeric", "abc", "xyz", "sideways", 1, 10, "desc"},
		{"order case-insensitive", "2", "10", "ASC", 2, 10, "asc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePagination(tt.page, tt.limit, " q ", "", tt.order, DefaultOpts)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit || p.SortOrder != tt.wantOrder {
				t.Fatalf("got page=%d limit=%d order=%s, want %d %d %s",
					p.Page, p.Limit, p.SortOrder, tt.wantPage, tt.wantLimit, tt.wantOrder)
			}
			if p.Search != "q" {
				t.Fatalf("search not trimmed: %q", p.Search)
			}
		})
	}
}

func TestParsePaginationAll(t *testing.T) {
	opts := ExportOptions(500)
	p := ParsePagination("4", "all", "", "", "", opts)
	if !p.All || p.Page != 1 || p.Limit != 500 {
		t.Fatalf("unexpected all params: %+v", p)
	}

	p = ParsePagination("1", "all", "", "", "", DefaultOpts)
	if p.All || p.Limit != DefaultLimit {
		t.Fatalf("limit=all must be ignored without AllowAll: %+v", p)
	}
}

func TestExportOptions(t *testing.T) {
	tests := []struct {
		name      string
		max       int
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"no limit exports up to cap", 500, "", "", 1, 500},
		{"explicit limit pages", 500, "2", "100", 2, 100},
		{"limit above cap falls back", 500, "1", "9999", 1, 500},
		{"unset cap uses default", 0, "", "", 1, defaultExportCap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePagination(tt.page, tt.limit, "", "", "", ExportOptions(tt.max))
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit {
				t.Fatalf("got page=%d limit=%d, want %d %d", p.Page, p.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := Params{Page: 3, Limit: 20}
	if got := p.Offset(); got != 40 {
		t.Fatalf("Offset() = %d, want 40", got)
	}
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{"nama": "nama", "createdAt": "created_at"}

	tests := []struct {
		sortBy, order, want string
	}{
		{"", "desc", "nama ASC"},
		{"createdAt", "asc", `"created_at" ASC`},
		{"createdAt", "desc", `"created_at" DESC`},
		{"password", "asc", "nama ASC"},
	}
	for _, tt := range tests {
		p := Params{SortBy: tt.sortBy, SortOrder: tt.order}
		if got := p.OrderClause(allowed, "nama ASC"); got != tt.want {
			t.Errorf("OrderClause(%q,%q) = %q, want %q", tt.sortBy, tt.order, got, tt.want)
		}
	}
}

func TestContainsPattern(t *testing.T) {
	if got := ContainsPattern("Ab%_c"); got != `%ab\%\_c%` {
		t.Fatalf("ContainsPattern = %q", got)
	}
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		total     int64
		limit     int
		wantPages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{250, 100, 3},
	}
	for _, tt := range tests {
		got := BuildPagination(tt.total, 1, tt.limit)
		if got.TotalPages != tt.wantPages {
			t.Errorf("total=%d limit=%d: totalPages=%d, want %d", tt.total, tt.limit, got.TotalPages, tt.wantPages)
		}
	}
}
