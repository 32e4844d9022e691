package convert

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"log/slog"

	"github.com/google/uuid"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/common"
	"github.com/data-alchemy/backend/internal/core/infer"
)

// BatchSize is the number of cells rewritten per bulk update.
const BatchSize = 1000

// Cell is one stored value of the column undergoing conversion, carrying
// the original row index for error reporting.
type Cell struct {
	ID       uuid.UUID
	RowIndex int64
	Value    string
}

// ValueUpdate is one rewritten cell in a batch commit.
type ValueUpdate struct {
	ID    uuid.UUID
	Value string
}

// ValueWriter commits one batch of rewritten cells as a unit.
type ValueWriter interface {
	UpdateValues(ctx context.Context, updates []ValueUpdate) error
}

// ProgressFunc receives the percent of cells committed so far.
type ProgressFunc func(percent float64)

// Converter rewrites a column's stored values to a validated target type.
type Converter struct {
	store     ValueWriter
	logger    *slog.Logger
	batchSize int
}

func NewConverter(store ValueWriter, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{store: store, logger: logger, batchSize: BatchSize}
}

// Run converts cells in fixed-size batches, committing each batch as a
// single bulk update and reporting progress after every batch.
//
// The caller must have validated feasibility beforehand. If a value still
// fails to convert, Run stops immediately and returns an error naming the
// row index and raw value; batches committed before the failure are left in
// place.
func (c *Converter) Run(ctx context.Context, columnID uuid.UUID, target constants.DataType, cells []Cell, report ProgressFunc) error {
	total := len(cells)
	if total == 0 {
		if report != nil {
			report(100)
		}
		return nil
	}

	done := 0
	for start := 0; start < total; start += c.batchSize {
		end := start + c.batchSize
		if end > total {
			end = total
		}

		updates := make([]ValueUpdate, 0, end-start)
		for _, cell := range cells[start:end] {
			converted, err := Value(cell.Value, target)
			if err != nil {
				c.logger.Error("conversion aborted",
					"column_id", columnID, "row_index", cell.RowIndex, "error", err)
				return fmt.Errorf("%w at row %d: converting %q to %s: %v",
					common.ErrConversionValue, cell.RowIndex, cell.Value, string(target), err)
			}
			updates = append(updates, ValueUpdate{ID: cell.ID, Value: converted})
		}

		if err := c.store.UpdateValues(ctx, updates); err != nil {
			return fmt.Errorf("%w: committing batch at row %d: %v",
				common.ErrPersistence, cells[start].RowIndex, err)
		}

		done = end
		if report != nil {
			report(float64(done) / float64(total) * 100)
		}
	}
	c.logger.Info("column converted", "column_id", columnID, "target_type", string(target), "cells", total)
	return nil
}

// Value converts a single stored value to the target type's canonical
// rendering. Null and empty inputs pass through as the empty marker.
func Value(raw string, target constants.DataType) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}

	switch target {
	case constants.TypeText:
		return raw, nil
	case constants.TypeCategory:
		return trimmed, nil
	case constants.TypeInteger:
		n, ok := infer.ParseInteger(trimmed)
		if !ok {
			return "", fmt.Errorf("not an integer")
		}
		return strconv.FormatInt(n, 10), nil
	case constants.TypeFloat:
		f, ok := infer.ParseFloat(trimmed)
		if !ok {
			return "", fmt.Errorf("not a number")
		}
		return infer.FormatFloat(f), nil
	case constants.TypeDatetime:
		t, ok := infer.ParseDatetime(trimmed)
		if !ok {
			return "", fmt.Errorf("not a datetime")
		}
		return t.Format(infer.DatetimeCanonical), nil
	case constants.TypeBoolean:
		normalized := strings.ToLower(trimmed)
		if !infer.IsBooleanWord(normalized) {
			return "", fmt.Errorf("not a boolean")
		}
		if infer.IsTruthy(normalized) {
			return "true", nil
		}
		return "false", nil
	default:
		return "", fmt.Errorf("unsupported target type %q", string(target))
	}
}
