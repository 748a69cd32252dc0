package cli

import (
	"strconv"
	"strings"
	"unicode"
)

// isPositiveIntSeq reports whether s consists of exactly n slash-separated
// positive integers, matching the wire date and timestamp formats.
func isPositiveIntSeq(s string, n int) bool {
	parts := strings.Split(s, "/")
	if len(parts) != n {
		return false
	}
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v <= 0 {
			return false
		}
	}
	return true
}

// isAlpha reports whether s is non-empty and contains letters only.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isPositiveNumber reports whether s parses as a positive floating point
// number.
func isPositiveNumber(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v > 0
}

// capitalize upper-cases the first rune of s and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
