package convert

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/common"
)

type fakeValueWriter struct {
	batches [][]ValueUpdate
	failOn  int // 1-based batch number to fail, 0 for never
}

func (w *fakeValueWriter) UpdateValues(_ context.Context, updates []ValueUpdate) error {
	if w.failOn > 0 && len(w.batches)+1 == w.failOn {
		return errors.New("store unavailable")
	}
	batch := make([]ValueUpdate, len(updates))
	copy(batch, updates)
	w.batches = append(w.batches, batch)
	return nil
}

func (w *fakeValueWriter) committed() map[uuid.UUID]string {
	out := map[uuid.UUID]string{}
	for _, batch := range w.batches {
		for _, u := range batch {
			out[u.ID] = u.Value
		}
	}
	return out
}

func makeCells(values []string) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = Cell{ID: uuid.New(), RowIndex: int64(i), Value: v}
	}
	return cells
}

func TestConverterRun(t *testing.T) {
	t.Parallel()

	values := make([]string, 2500)
	for i := range values {
		values[i] = fmt.Sprintf("%d,000", i+1)
	}
	cells := makeCells(values)

	store := &fakeValueWriter{}
	var percents []float64
	conv := NewConverter(store, nil)

	err := conv.Run(context.Background(), uuid.New(), constants.TypeInteger, cells, func(p float64) {
		percents = append(percents, p)
	})
	require.NoError(t, err)

	require.Len(t, store.batches, 3)
	assert.Len(t, store.batches[0], 1000)
	assert.Len(t, store.batches[2], 500)
	assert.Equal(t, []float64{40, 80, 100}, percents)

	committed := store.committed()
	assert.Equal(t, "1000", committed[cells[0].ID])
	assert.Equal(t, "2500000", committed[cells[2499].ID])
}

func TestConverterRunAbortsOnBadValue(t *testing.T) {
	t.Parallel()

	values := make([]string, 1500)
	for i := range values {
		values[i] = fmt.Sprintf("%d", i)
	}
	values[1200] = "not-a-number"
	cells := makeCells(values)

	store := &fakeValueWriter{}
	conv := NewConverter(store, nil)

	err := conv.Run(context.Background(), uuid.New(), constants.TypeInteger, cells, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConversionValue)
	assert.Contains(t, err.Error(), "row 1200")
	assert.Contains(t, err.Error(), "not-a-number")

	// The first batch stays committed; the failing batch never lands.
	require.Len(t, store.batches, 1)
	assert.Len(t, store.batches[0], 1000)
}

func TestConverterRunStoreFailure(t *testing.T) {
	t.Parallel()

	cells := makeCells([]string{"1", "2", "3"})
	store := &fakeValueWriter{failOn: 1}
	conv := NewConverter(store, nil)

	err := conv.Run(context.Background(), uuid.New(), constants.TypeInteger, cells, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPersistence)
	assert.Contains(t, err.Error(), "committing batch")
	assert.Empty(t, store.batches)
}

func TestConverterRunEmptyColumn(t *testing.T) {
	t.Parallel()

	store := &fakeValueWriter{}
	conv := NewConverter(store, nil)

	var percents []float64
	err := conv.Run(context.Background(), uuid.New(), constants.TypeText, nil, func(p float64) {
		percents = append(percents, p)
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{100}, percents)
}

func TestValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		target  constants.DataType
		want    string
		wantErr bool
	}{
		{"1,000", constants.TypeInteger, "1000", false},
		{"5.0", constants.TypeInteger, "5", false},
		{"2.5", constants.TypeFloat, "2.5", false},
		{"2e3", constants.TypeFloat, "2000", false},
		{"YES", constants.TypeBoolean, "true", false},
		{"off", constants.TypeBoolean, "false", false},
		{"2023-01-15", constants.TypeDatetime, "2023-01-15 00:00:00", false},
		{"  spaced  ", constants.TypeCategory, "spaced", false},
		{"anything", constants.TypeText, "anything", false},
		{"", constants.TypeInteger, "", false},
		{"   ", constants.TypeDatetime, "", false},
		{"nope", constants.TypeInteger, "", true},
		{"maybe", constants.TypeBoolean, "", true},
		{"x", constants.DataType("BLOB"), "", true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%q", tt.target, tt.raw), func(t *testing.T) {
			t.Parallel()
			got, err := Value(tt.raw, tt.target)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
