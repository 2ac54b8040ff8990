package helper

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Options struct {
	DefaultLimit int
	MaxLimit     int
	AllowAll     bool // izinkan limit=all
	AllHardCap   int  // batas saat all
}

// ===== Preset =====
var DefaultOpts = Options{DefaultLimit: DefaultLimit, MaxLimit: MaxLimit}

const defaultExportCap = 10_000

// ExportOptions: tanpa limit → seluruh hasil s/d maxRows; limit=all juga dibatasi maxRows.
func ExportOptions(maxRows int) Options {
	if maxRows <= 0 {
		maxRows = defaultExportCap
	}
	return Options{DefaultLimit: maxRows, MaxLimit: maxRows, AllowAll: true, AllHardCap: maxRows}
}

type Params struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string // asc|desc
	All       bool   // true jika limit=all dipakai
}

// ParsePagination menormalkan query mentah.
// Nilai page/limit yang tidak valid atau di luar batas kembali ke default, bukan error.
func ParsePagination(page, limit, search, sortBy, sortOrder string, opt Options) Params {
	if opt.DefaultLimit <= 0 {
		opt.DefaultLimit = DefaultLimit
	}
	if opt.MaxLimit <= 0 {
		opt.MaxLimit = MaxLimit
	}

	p := Params{
		Page:      atoiDefault(page, DefaultPage),
		Limit:     opt.DefaultLimit,
		Search:    strings.TrimSpace(search),
		SortBy:    strings.TrimSpace(sortBy),
		SortOrder: "desc",
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	limitRaw := strings.TrimSpace(limit)
	if opt.AllowAll && strings.EqualFold(limitRaw, "all") {
		p.All = true
		p.Page = 1
		p.Limit = opt.AllHardCap
		if p.Limit <= 0 {
			p.Limit = opt.MaxLimit
		}
	} else if n := atoiDefault(limitRaw, opt.DefaultLimit); n >= 1 && n <= opt.MaxLimit {
		p.Limit = n
	}

	if o := strings.ToLower(strings.TrimSpace(sortOrder)); o == "asc" || o == "desc" {
		p.SortOrder = o
	}
	return p
}

// ParseFiber: parse page/limit/search/sortBy/sortOrder langsung dari Fiber ctx.
func ParseFiber(c *fiber.Ctx, opt Options) Params {
	return ParsePagination(
		c.Query("page"),
		c.Query("limit"),
		c.Query("search"),
		c.Query("sortBy"),
		c.Query("sortOrder"),
		opt,
	)
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// Limit & Offset
func (p Params) Offset() int { return (p.Page - 1) * p.Limit }

// OrderClause memilih kolom dari whitelist (key = nama field JSON).
// sortBy kosong/tidak dikenal → fallback milik endpoint.
func (p Params) OrderClause(allowed map[string]string, fallback string) string {
	col, ok := allowed[p.SortBy]
	if !ok {
		return fallback
	}
	dir := "DESC"
	if p.SortOrder == "asc" {
		dir = "ASC"
	}
	return pq.QuoteIdentifier(col) + " " + dir
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern → pola LIKE case-insensitive "%term%".
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// ApplySearch menambahkan OR-predicate LOWER(col) LIKE %term% untuk kolom yang diberikan.
func ApplySearch(q *gorm.DB, term string, cols ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(cols) == 0 {
		return q
	}
	pattern := ContainsPattern(term)
	parts := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for _, col := range cols {
		parts = append(parts, fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, col))
		args = append(args, pattern)
	}
	return q.Where("("+strings.Join(parts, " OR ")+")", args...)
}

// FetchPage menjalankan COUNT dan SELECT halaman secara paralel.
// query harus mengembalikan *gorm.DB baru tiap dipanggil (tanpa Order/Limit).
// rowScopes (mis. Preload) hanya dipasang pada SELECT, bukan COUNT.
// total & rows bisa berasal dari titik waktu berbeda saat ada tulis bersamaan.
func FetchPage[T any](ctx context.Context, query func() *gorm.DB, p Params, order string, rowScopes ...func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	var (
		rows  = make([]T, 0, p.Limit)
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return query().WithContext(gctx).Count(&total).Error
	})
	g.Go(func() error {
		q := query().WithContext(gctx).Scopes(rowScopes...)
		if order != "" {
			q = q.Order(order)
		}
		return q.Limit(p.Limit).Offset(p.Offset()).Find(&rows).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
