// Package dateutil handles the ledger's YYYY-MM-DD date keys in the business
// timezone. Date keys partition the ledger; all "today" decisions are made
// against the business clock, never the server's local clock.
package dateutil

import (
	"fmt"
	"time"

	"github.com/Sdjishan552/fin/internal/apperrors"
)

// KeyLayout is the canonical date-key format.
const KeyLayout = "2006-01-02"

// Today returns the current date key in the given business timezone.
func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(KeyLayout)
}

// Key formats t as a date key in its own location.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// Parse validates a date key and returns its midnight in loc.
func Parse(dateKey string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, dateKey, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed date key %q", apperrors.ErrValidation, dateKey)
	}
	// Reject keys that normalize to a different date (e.g. 2024-02-31).
	if t.Format(KeyLayout) != dateKey {
		return time.Time{}, fmt.Errorf("%w: invalid calendar date %q", apperrors.ErrValidation, dateKey)
	}
	return t, nil
}

// IsValid reports whether dateKey is a well-formed calendar date.
func IsValid(dateKey string) bool {
	_, err := Parse(dateKey, time.UTC)
	return err == nil
}

// PrevDay returns the date key of the day before dateKey.
func PrevDay(dateKey string, loc *time.Location) (string, error) {
	t, err := Parse(dateKey, loc)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -1).Format(KeyLayout), nil
}

// RangeInclusive enumerates the consecutive date keys from 'from' through
// 'to'. It returns an empty slice when 'from' is after 'to'.
func RangeInclusive(from, to string, loc *time.Location) ([]string, error) {
	start, err := Parse(from, loc)
	if err != nil {
		return nil, err
	}
	end, err := Parse(to, loc)
	if err != nil {
		return nil, err
	}
	var keys []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(KeyLayout))
	}
	return keys, nil
}
