// utils/dates.go
package utils

import "time"

// DayFormat is the wire format for calendar dates. Dates travel through the
// API as plain YYYY-MM-DD strings so they can be compared and grouped
// lexically without timezone conversion.
const DayFormat = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string anchored at local noon. The noon
// anchor keeps day-by-day stepping safe across daylight-saving transitions:
// a midnight-anchored date can land on the previous or next calendar day
// after an offset change.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local), nil
}

// FormatDay renders a time as its YYYY-MM-DD calendar day.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// NextDay steps one calendar day forward, re-anchored at noon.
func NextDay(t time.Time) time.Time {
	n := t.AddDate(0, 0, 1)
	return time.Date(n.Year(), n.Month(), n.Day(), 12, 0, 0, 0, n.Location())
}

// ValidDay reports whether s is a well-formed YYYY-MM-DD date.
func ValidDay(s string) bool {
	_, err := time.Parse(DayFormat, s)
	return err == nil && len(s) == 10
}

// ValidMonth reports whether s is a well-formed YYYY-MM month.
func ValidMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil && len(s) == 7
}
