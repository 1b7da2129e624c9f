package store

import (
	"database/sql"
	"errors"
	"unicode/utf8"
)

// affected reports whether res affected at least one row. Adapted from
// the teacher's sql.isAffected/getAffected (RomanQed-gqs/sql/util.go).
func affected(res sql.Result) bool {
	rows, err := res.RowsAffected()
	if err != nil {
		return true
	}
	return rows != 0
}

func rowsAffected(res sql.Result) int64 {
	n, err := res.RowsAffected()
	if err != nil {
		return -1
	}
	return n
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// clampText truncates s to at most maxRunes runes, cutting on a rune
// boundary so a multi-byte character is never split — a detail the
// Python original (where str slicing is already rune-aware) does not
// need to handle explicitly.
func clampText(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxRunes])
}
