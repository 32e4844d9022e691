// Package infer classifies batches of raw column values into the semantic
// type vocabulary and re-renders them as canonical strings.
//
// Classification is per chunk: each batch is evaluated independently against
// a fixed priority order, and the resulting type overwrites whatever earlier
// chunks decided. The column's final type therefore depends only on the last
// chunk processed (last-chunk-wins).
package infer

import (
	"strconv"
	"strings"

	"github.com/data-alchemy/backend/constants"
)

// Chunk classifies one batch of raw values for a column and returns the
// batch re-rendered as canonical strings under the winning type.
//
// Rules run in fixed priority order: Datetime, Boolean, Integer, Float,
// Category, Text. The first rule whose batch parse succeeds wins. A rule
// failing is never an error; the next rule is tried, and Text cannot fail.
// When the incoming type is already a rewritten native type and the batch
// still parses under it, the incoming type is kept without reclassifying.
func Chunk(values []string, incoming constants.DataType) ([]string, constants.DataType) {
	nonNull := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			nonNull = append(nonNull, trimmed)
		}
	}

	// An entirely null batch carries no type signal.
	if len(nonNull) == 0 {
		return renderIdentity(values), constants.TypeText
	}

	if incoming != constants.TypeText && incoming != constants.TypeCategory {
		if out, ok := renderAs(values, nonNull, incoming); ok {
			return out, incoming
		}
	}

	if out, ok := renderDatetime(values, nonNull); ok {
		return out, constants.TypeDatetime
	}
	if out, ok := renderBoolean(values, nonNull); ok {
		return out, constants.TypeBoolean
	}
	if out, ok := renderInteger(values, nonNull); ok {
		return out, constants.TypeInteger
	}
	if out, ok := renderFloat(values, nonNull, true); ok {
		return out, constants.TypeFloat
	}
	if isCategorical(uniqueCount(nonNull), len(nonNull)) {
		// Classification only: categorical values pass through untouched.
		return renderIdentity(values), constants.TypeCategory
	}
	return renderIdentity(values), constants.TypeText
}

// renderAs re-renders the batch under a previously settled type, reporting
// whether the batch still parses natively under it. A purely integral batch
// still counts as native under Float.
func renderAs(values, nonNull []string, t constants.DataType) ([]string, bool) {
	switch t {
	case constants.TypeInteger:
		return renderInteger(values, nonNull)
	case constants.TypeFloat:
		return renderFloat(values, nonNull, false)
	case constants.TypeDatetime:
		return renderDatetime(values, nonNull)
	case constants.TypeBoolean:
		return renderBoolean(values, nonNull)
	default:
		return nil, false
	}
}

func renderInteger(values, nonNull []string) ([]string, bool) {
	for _, v := range nonNull {
		if _, ok := ParseInteger(v); !ok {
			return nil, false
		}
	}
	out := make([]string, len(values))
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		n, _ := ParseInteger(v)
		out[i] = strconv.FormatInt(n, 10)
	}
	return out, true
}

func renderFloat(values, nonNull []string, requireFractional bool) ([]string, bool) {
	fractional := false
	for _, v := range nonNull {
		if _, ok := ParseFloat(v); !ok {
			return nil, false
		}
		if _, isInt := ParseInteger(v); !isInt {
			fractional = true
		}
	}
	// Float supersedes Integer only when at least one value is genuinely
	// fractional; a purely integral batch belongs to the Integer rule.
	if requireFractional && !fractional {
		return nil, false
	}
	out := make([]string, len(values))
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		f, _ := ParseFloat(v)
		out[i] = FormatFloat(f)
	}
	return out, true
}

func renderDatetime(values, nonNull []string) ([]string, bool) {
	for _, v := range nonNull {
		if _, ok := ParseDatetime(v); !ok {
			return nil, false
		}
	}
	out := make([]string, len(values))
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		t, _ := ParseDatetime(v)
		out[i] = t.Format(DatetimeCanonical)
	}
	return out, true
}

func renderBoolean(values, nonNull []string) ([]string, bool) {
	distinct := map[string]struct{}{}
	for _, v := range nonNull {
		normalized := strings.ToLower(v)
		if !IsBooleanWord(normalized) {
			return nil, false
		}
		distinct[normalized] = struct{}{}
	}
	if len(distinct) > 2 {
		return nil, false
	}
	out := make([]string, len(values))
	for i, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if IsTruthy(strings.ToLower(trimmed)) {
			out[i] = "true"
		} else {
			out[i] = "false"
		}
	}
	return out, true
}

// renderIdentity keeps values as-is, mapping nulls to the empty marker.
func renderIdentity(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out[i] = v
	}
	return out
}

func uniqueCount(nonNull []string) int {
	distinct := map[string]struct{}{}
	for _, v := range nonNull {
		distinct[strings.ToLower(v)] = struct{}{}
	}
	return len(distinct)
}
