package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// MonthLayout is the layout of a reporting month key, e.g. "2024-05".
	MonthLayout = "2006-01"
	// DateLayout is the layout of ledger and match dates, e.g. "2024-05-03".
	DateLayout = "2006-01-02"
)

// ParseMonth validates a YYYY-MM month key.
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	return t, nil
}

// ParseDate validates a YYYY-MM-DD date string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return t, nil
}

// InMonth reports whether a date string falls in the month key.
// Matching is done on the string prefix, the same way stored dates were always compared.
func InMonth(date, month string) bool {
	return month != "" && strings.HasPrefix(date, month)
}

// MonthOf returns the month key for t.
func MonthOf(t time.Time) string {
	return t.Format(MonthLayout)
}
