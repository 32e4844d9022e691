// Package convert decides feasibility of column retypes and performs the
// batched rewrite once a retype has been validated.
package convert

import (
	"fmt"
	"strings"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/core/infer"
)

const (
	// maxOffendingValues bounds how many distinct offenders a reason names.
	maxOffendingValues = 5
	// maxCategories is the ceiling on distinct values for a Category column.
	maxCategories = 100
	// minCategoryShare is the minimum occurrence frequency of any single
	// category, as a fraction of the non-null row count.
	minCategoryShare = 0.01
	datetimeMinYear  = 1000
	datetimeMaxYear  = 9999
)

// Validate decides whether every stored value of a column can be converted
// to the target type. It inspects, never mutates, and never returns an
// error: every failure path is reported as (false, reason).
func Validate(values []string, target constants.DataType) (bool, string) {
	nonNull := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			nonNull = append(nonNull, trimmed)
		}
	}
	// An empty or all-null column converts to anything.
	if len(nonNull) == 0 {
		return true, ""
	}

	switch target {
	case constants.TypeText:
		return true, ""
	case constants.TypeInteger:
		return validateAll(nonNull, target, func(v string) bool {
			_, ok := infer.ParseInteger(v)
			return ok
		})
	case constants.TypeFloat:
		return validateAll(nonNull, target, func(v string) bool {
			_, ok := infer.ParseFloat(v)
			return ok
		})
	case constants.TypeBoolean:
		return validateAll(nonNull, target, func(v string) bool {
			return infer.IsBooleanWord(strings.ToLower(v))
		})
	case constants.TypeDatetime:
		return validateDatetime(nonNull)
	case constants.TypeCategory:
		return validateCategory(nonNull)
	default:
		return false, fmt.Sprintf("unsupported target type %q", string(target))
	}
}

func validateAll(nonNull []string, target constants.DataType, ok func(string) bool) (bool, string) {
	offending := collectOffending(nonNull, ok)
	if len(offending) == 0 {
		return true, ""
	}
	return false, fmt.Sprintf("values not convertible to %s: %s",
		string(target), strings.Join(offending, ", "))
}

func validateDatetime(nonNull []string) (bool, string) {
	var offending []string
	seen := map[string]struct{}{}
	for _, v := range nonNull {
		t, ok := infer.ParseDatetime(v)
		if ok && t.Year() >= datetimeMinYear && t.Year() <= datetimeMaxYear {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if !ok {
			offending = append(offending, fmt.Sprintf("%q", v))
		} else {
			offending = append(offending,
				fmt.Sprintf("%q (year %d outside %d-%d)", v, t.Year(), datetimeMinYear, datetimeMaxYear))
		}
		if len(offending) == maxOffendingValues {
			break
		}
	}
	if len(offending) == 0 {
		return true, ""
	}
	return false, "values not convertible to DATETIME: " + strings.Join(offending, ", ")
}

func validateCategory(nonNull []string) (bool, string) {
	counts := map[string]int{}
	for _, v := range nonNull {
		counts[v]++
	}
	if len(counts) > maxCategories {
		return false, fmt.Sprintf("column has %d distinct values; categorical columns are limited to %d",
			len(counts), maxCategories)
	}

	// Walk in input order so the reason is deterministic.
	threshold := minCategoryShare * float64(len(nonNull))
	var rare []string
	seen := map[string]struct{}{}
	for _, v := range nonNull {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if float64(counts[v]) < threshold {
			rare = append(rare, fmt.Sprintf("%q", v))
			if len(rare) == maxOffendingValues {
				break
			}
		}
	}
	if len(rare) > 0 {
		return false, fmt.Sprintf("categories rarer than %.0f%% of rows: %s",
			minCategoryShare*100, strings.Join(rare, ", "))
	}
	return true, ""
}

func collectOffending(nonNull []string, ok func(string) bool) []string {
	var offending []string
	seen := map[string]struct{}{}
	for _, v := range nonNull {
		if ok(v) {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		offending = append(offending, fmt.Sprintf("%q", v))
		if len(offending) == maxOffendingValues {
			break
		}
	}
	return offending
}
