package compliance

import (
	"strconv"
	"strings"
)

// ParseAmount extracts the numeric value from a currency cell. It tolerates
// currency symbols, thousands separators, parenthesized negatives, and
// M/K magnitude suffixes ("$1.5M" -> 1500000). Dashes and N/A render as
// zero, matching how financial tables print empty amounts. The second
// return value reports whether the cell was parseable at all; callers drop
// unparseable cells instead of defaulting them.
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	switch s {
	case "-", "—", "–", "N/A", "n/a":
		return 0, true
	}

	negative := strings.Contains(s, "(") && strings.Contains(s, ")")
	multiplier := magnitudeSuffix(s)

	var cleaned strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			cleaned.WriteRune(r)
		}
	}
	if cleaned.Len() == 0 {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned.String(), 64)
	if err != nil {
		return 0, false
	}

	value *= multiplier
	if negative {
		value = -value
	}
	return value, true
}

// magnitudeSuffix returns the multiplier implied by a trailing M or K.
// Only a suffix directly after the number counts, so a stray "Management"
// column never inflates a value.
func magnitudeSuffix(s string) float64 {
	trimmed := strings.TrimRight(strings.TrimSpace(s), ") ")
	trimmed = strings.ToUpper(trimmed)

	switch {
	case strings.HasSuffix(trimmed, "M"):
		if endsInDigit(strings.TrimSuffix(trimmed, "M")) {
			return 1e6
		}
	case strings.HasSuffix(trimmed, "K"):
		if endsInDigit(strings.TrimSuffix(trimmed, "K")) {
			return 1e3
		}
	}
	return 1
}

func endsInDigit(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last >= '0' && last <= '9'
}

// NormalizeLabel lower-cases a cell label and collapses internal
// whitespace so rule lookups are insensitive to layout artifacts.
func NormalizeLabel(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
