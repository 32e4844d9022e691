package infer

import (
	"math"
	"strconv"
	"strings"
)

// Truthy and falsy vocabularies recognized by the boolean rule.
var (
	truthyValues = map[string]struct{}{
		"true": {}, "yes": {}, "1": {}, "t": {}, "y": {}, "on": {},
	}
	falsyValues = map[string]struct{}{
		"false": {}, "no": {}, "0": {}, "f": {}, "n": {}, "off": {},
	}
)

// IsTruthy reports whether a normalized value belongs to the truthy vocabulary.
func IsTruthy(normalized string) bool {
	_, ok := truthyValues[normalized]
	return ok
}

// IsBooleanWord reports whether a normalized value belongs to either vocabulary.
func IsBooleanWord(normalized string) bool {
	if _, ok := truthyValues[normalized]; ok {
		return true
	}
	_, ok := falsyValues[normalized]
	return ok
}

// CleanNumeric trims surrounding whitespace and removes thousands-separator
// commas ("1,000" -> "1000").
func CleanNumeric(value string) string {
	return strings.ReplaceAll(strings.TrimSpace(value), ",", "")
}

// ParseInteger parses a raw value as a 64-bit integer after comma stripping.
// Values with a zero fractional remainder ("5.0") count as integers.
func ParseInteger(value string) (int64, bool) {
	cleaned := CleanNumeric(value)
	if cleaned == "" {
		return 0, false
	}
	if i, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// ParseFloat parses a raw value as a float after comma stripping.
// Exponent notation is accepted; out-of-range magnitudes are rejected.
func ParseFloat(value string) (float64, bool) {
	cleaned := CleanNumeric(value)
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// FormatFloat renders a float in its shortest round-trippable form.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// categoryMaxUnique and friends bound the streaming categorical heuristic:
// few distinct values, low distinct ratio, and enough non-null samples to
// make the ratio meaningful.
const (
	categoryMaxUnique  = 10
	categoryMaxRatio   = 0.2
	categoryMinNonNull = 30
)

func isCategorical(uniqueCount, nonNullCount int) bool {
	return nonNullCount >= categoryMinNonNull &&
		uniqueCount <= categoryMaxUnique &&
		float64(uniqueCount) < categoryMaxRatio*float64(nonNullCount)
}
