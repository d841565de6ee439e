// Package numfmt implements the numeric parsing and formatting rules
// shared by the selector evaluator (min/max), the data operators
// (sum/avg), and the temp-variable store (inc).
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Parse reports the float64 value of s and whether s is numeric: after
// surrounding whitespace is trimmed, a string is numeric iff parsing it
// as a float consumes the entire remaining string.
func Parse(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Format renders v the way every numeric-writing operator in this
// package does: integers without a decimal point, everything else in
// the shortest general ('g') representation.
func Format(v float64) string {
	if !math.IsInf(v, 0) && !math.IsNaN(v) && v == math.Trunc(v) && math.Abs(v) < 1e18 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// TrimOneQuotePair strips one matching pair of surrounding ' or "
// quotes from s, if present, before numeric parsing (used by min/max).
func TrimOneQuotePair(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
		return s[1 : len(s)-1]
	}
	return s
}
