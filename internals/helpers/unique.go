package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation mengenali bentrok unique dari Postgres (23505), gorm, atau driver lain (sqlite).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "sqlstate 23505")
}

// IsUniqueViolationOn: bentrok unique yang melibatkan kolom tertentu
// (dicocokkan lewat nama constraint Postgres atau pesan sqlite "tabel.kolom").
func IsUniqueViolationOn(err error, column string) bool {
	if !IsUniqueViolation(err) {
		return false
	}
	column = strings.ToLower(column)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.Contains(strings.ToLower(pgErr.ConstraintName), column) ||
			strings.Contains(strings.ToLower(pgErr.Detail), "("+column+")")
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "."+column) || strings.Contains(msg, "_"+column)
}
