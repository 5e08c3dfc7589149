package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row. Callers test with
// errors.Is.
var ErrNotFound = errors.New("not found")

// parseTimestamp parses an RFC3339 column value.
func parseTimestamp(s, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

// parseDayColumn parses a YYYY-MM-DD column value into a Day.
func parseDayColumn(s, column string) (domain.Day, error) {
	d, err := domain.ParseDay(s)
	if err != nil {
		return domain.Day{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return d, nil
}

// nullableStr converts an optional string to a value suitable for SQLite
// storage: nil (SQL NULL) for "", the string otherwise.
func nullableStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
