// Package timefmt defines the canonical textual form of timestamps in the store.
package timefmt

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the canonical timestamp layout: millisecond precision, no timezone.
const Layout = "2006-01-02 15:04:05.000"

// Format renders t as UTC wall-clock text.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// FormatPtr is Format for nullable timestamps. A nil input yields nil.
func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Format(*t)
	return &s
}

// Parse reads a canonical timestamp. Blank input yields nil without error.
func Parse(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return &t, nil
}

// ParsePtr is Parse for nullable text.
func ParsePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	return Parse(*s)
}

// Truncate drops everything below millisecond precision.
func Truncate(t time.Time) time.Time {
	return t.Truncate(time.Millisecond)
}

// DayBounds returns the first and last representable instants of the UTC calendar day of t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
