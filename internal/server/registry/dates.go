package registry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses the wire date format "YYYY/MM/DD" into a calendar day.
// Nonexistent dates (2021/02/30) are rejected, not normalized.
func ParseDate(s string) (time.Time, error) {
	parts, err := splitUnits(s, 3)
	if err != nil {
		return time.Time{}, err
	}

	t := time.Date(parts[0], time.Month(parts[1]), parts[2], 0, 0, 0, 0, time.Local)
	if t.Year() != parts[0] || t.Month() != time.Month(parts[1]) || t.Day() != parts[2] {
		return time.Time{}, fmt.Errorf("nonexistent date %q: %w", s, ErrBadEntryValue)
	}
	return t, nil
}

// ParseAcquisition parses the wire timestamp format "YYYY/MM/DD/HH/MM".
func ParseAcquisition(s string) (time.Time, error) {
	parts, err := splitUnits(s, 5)
	if err != nil {
		return time.Time{}, err
	}

	t := time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], 0, 0, time.Local)
	if t.Year() != parts[0] || t.Month() != time.Month(parts[1]) || t.Day() != parts[2] ||
		t.Hour() != parts[3] || t.Minute() != parts[4] {
		return time.Time{}, fmt.Errorf("nonexistent timestamp %q: %w", s, ErrBadEntryValue)
	}
	return t, nil
}

func splitUnits(s string, n int) ([]int, error) {
	fields := strings.Split(s, "/")
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d date units in %q: %w", n, s, ErrBadEntryValue)
	}

	units := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad date unit %q: %w", f, ErrBadEntryValue)
		}
		units[i] = v
	}
	return units, nil
}
