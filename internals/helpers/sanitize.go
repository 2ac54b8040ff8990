package helper

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// CleanText membuang semua markup HTML dan spasi di tepi.
// Entity hasil escape dikembalikan ke karakter aslinya karena nilai disimpan sebagai teks biasa.
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

func CleanTextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := CleanText(*s)
	return &v
}

// NilIfEmpty → nil untuk string kosong (mis. email "" disimpan NULL).
func NilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// StrValue: nil → "".
func StrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
