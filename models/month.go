package models

import (
	"strconv"
	"strings"
	"time"
)

// ParseMonth accepts an English month name in any case ("march", "MARCH") or
// a number 1-12 and returns the canonical name and its ordinal.
func ParseMonth(s string) (string, int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", 0, false
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return "", 0, false
		}
		return time.Month(n).String(), n, true
	}

	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), s) {
			return m.String(), int(m), true
		}
	}
	return "", 0, false
}

// MonthNumber returns the ordinal of a month name, 0 if unknown.
func MonthNumber(name string) int {
	_, n, ok := ParseMonth(name)
	if !ok {
		return 0
	}
	return n
}
