package reader

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/data-alchemy/backend/internal/common"
)

const maxColumnNameLength = 100

// validateHeader applies the structural sanity rules for a header row:
// at least one column, no empty names, no overlong names, no duplicates.
func validateHeader(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w: file must contain at least one column", common.ErrMalformedSource)
	}

	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return fmt.Errorf("%w: column %d has no name", common.ErrMalformedSource, i+1)
		}
		if utf8.RuneCountInString(trimmed) > maxColumnNameLength {
			return fmt.Errorf("%w: column name %q exceeds %d characters",
				common.ErrMalformedSource, truncate(trimmed, 20), maxColumnNameLength)
		}
		if _, dup := seen[trimmed]; dup {
			return fmt.Errorf("%w: duplicate column name %q", common.ErrMalformedSource, trimmed)
		}
		seen[trimmed] = struct{}{}
	}
	return nil
}

// trimHeader returns the header with surrounding whitespace removed from
// every name.
func trimHeader(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = strings.TrimSpace(name)
	}
	return out
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "…"
}
