package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/progress"
	"github.com/data-alchemy/backend/internal/reader"
)

type fakeStore struct {
	statuses     []constants.DatasetStatus
	finalRows    int64
	finalColumns int
	finalized    int

	columns []entity.Column
	rows    []entity.Row
	values  []entity.RowValue

	failCreateValues bool
}

func (s *fakeStore) SetStatus(_ context.Context, _ uuid.UUID, status constants.DatasetStatus) error {
	s.statuses = append(s.statuses, status)
	return nil
}

func (s *fakeStore) Finalize(_ context.Context, _ uuid.UUID, rowsCount int64, columnsCount int) error {
	s.finalized++
	s.finalRows = rowsCount
	s.finalColumns = columnsCount
	return nil
}

func (s *fakeStore) CreateColumns(_ context.Context, datasetID uuid.UUID, names []string) ([]entity.Column, error) {
	for i, name := range names {
		s.columns = append(s.columns, entity.Column{
			ID:           uuid.New(),
			DatasetID:    datasetID,
			Name:         name,
			OriginalName: name,
			Position:     i,
			InferredType: constants.TypeText,
			CurrentType:  constants.TypeText,
		})
	}
	out := make([]entity.Column, len(s.columns))
	copy(out, s.columns)
	return out, nil
}

func (s *fakeStore) SetTypes(_ context.Context, columnID uuid.UUID, inferred, current constants.DataType) error {
	for i := range s.columns {
		if s.columns[i].ID == columnID {
			s.columns[i].InferredType = inferred
			s.columns[i].CurrentType = current
		}
	}
	return nil
}

func (s *fakeStore) CreateRows(_ context.Context, datasetID uuid.UUID, startIndex int64, count int) ([]entity.Row, error) {
	created := make([]entity.Row, count)
	for i := 0; i < count; i++ {
		created[i] = entity.Row{ID: uuid.New(), DatasetID: datasetID, RowIndex: startIndex + int64(i)}
	}
	s.rows = append(s.rows, created...)
	return created, nil
}

func (s *fakeStore) CreateValues(_ context.Context, values []entity.RowValue) error {
	if s.failCreateValues {
		return fmt.Errorf("store unavailable")
	}
	s.values = append(s.values, values...)
	return nil
}

func openTestCSV(t *testing.T, content string) reader.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	table, err := reader.Open(path, constants.FileTypeCSV)
	require.NoError(t, err)
	t.Cleanup(func() { _ = table.Close() })
	return table
}

func columnByName(store *fakeStore, name string) entity.Column {
	for _, c := range store.columns {
		if c.Name == name {
			return c
		}
	}
	return entity.Column{}
}

func TestProcessorRun(t *testing.T) {
	t.Parallel()

	// 3 columns, 25000 rows: Integer, Datetime, Text.
	var sb strings.Builder
	sb.WriteString("amount,when,notes\n")
	for i := 0; i < 25000; i++ {
		fmt.Fprintf(&sb, "%d,2023-01-15,note %d\n", i, i)
	}
	table := openTestCSV(t, sb.String())

	store := &fakeStore{}
	proc := NewProcessor(nil, store, store, store, store)

	var updates []progress.Update
	result, err := proc.Run(context.Background(), &entity.Dataset{ID: uuid.New()}, table, func(u progress.Update) {
		updates = append(updates, u)
	})
	require.NoError(t, err)

	assert.Equal(t, int64(25000), result.TotalRows)
	assert.Equal(t, 3, result.TotalColumns)
	assert.Equal(t, 1, store.finalized)
	assert.Equal(t, int64(25000), store.finalRows)
	assert.Equal(t, 3, store.finalColumns)

	require.Len(t, store.columns, 3)
	assert.Len(t, store.rows, 25000)
	assert.Len(t, store.values, 75000)

	assert.Equal(t, constants.TypeInteger, columnByName(store, "amount").InferredType)
	assert.Equal(t, constants.TypeDatetime, columnByName(store, "when").InferredType)
	assert.Equal(t, constants.TypeText, columnByName(store, "notes").InferredType)

	// 3 chunks x (3 column events + 1 chunk-complete event).
	require.Len(t, updates, 12)

	var chunkComplete []progress.Update
	prev := -1.0
	for _, u := range updates {
		assert.GreaterOrEqual(t, u.Percent, prev, "progress must be non-decreasing")
		prev = u.Percent
		assert.Equal(t, int64(25000), u.TotalRows)
		if u.Stage == StageChunkComplete {
			chunkComplete = append(chunkComplete, u)
		}
	}

	require.Len(t, chunkComplete, 3)
	assert.Equal(t, []float64{40, 80, 100}, []float64{
		chunkComplete[0].Percent, chunkComplete[1].Percent, chunkComplete[2].Percent,
	})
	assert.Less(t, chunkComplete[0].Percent, chunkComplete[1].Percent)
	assert.Equal(t, float64(100), updates[len(updates)-1].Percent)
	assert.Equal(t, int64(25000), updates[len(updates)-1].ProcessedRows)
}

func TestProcessorRunCanonicalValues(t *testing.T) {
	t.Parallel()

	table := openTestCSV(t, "n,flag\n1,yes\n2,no\n,\n")
	store := &fakeStore{}
	proc := NewProcessor(nil, store, store, store, store)

	_, err := proc.Run(context.Background(), &entity.Dataset{ID: uuid.New()}, table, nil)
	require.NoError(t, err)

	flagCol := columnByName(store, "flag")
	var flagValues []string
	for _, v := range store.values {
		if v.ColumnID == flagCol.ID {
			flagValues = append(flagValues, v.Value)
		}
	}
	// Nulls persist as explicit empty markers, not absent values.
	assert.Equal(t, []string{"true", "false", ""}, flagValues)
	assert.Equal(t, constants.TypeBoolean, flagCol.InferredType)
}

func TestProcessorRunLastChunkWins(t *testing.T) {
	t.Parallel()

	// First chunk numeric, final chunk text: the column must end as Text.
	var sb strings.Builder
	sb.WriteString("v\n")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&sb, "%d\n", i)
	}
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&sb, "word-%d\n", i)
	}
	table := openTestCSV(t, sb.String())

	store := &fakeStore{}
	proc := NewProcessor(nil, store, store, store, store).WithChunkSize(10)

	_, err := proc.Run(context.Background(), &entity.Dataset{ID: uuid.New()}, table, nil)
	require.NoError(t, err)

	assert.Equal(t, constants.TypeText, store.columns[0].InferredType)
	assert.Equal(t, constants.TypeText, store.columns[0].CurrentType)
}

func TestProcessorRunAbortsOnStoreFailure(t *testing.T) {
	t.Parallel()

	table := openTestCSV(t, "a\n1\n2\n")
	store := &fakeStore{failCreateValues: true}
	proc := NewProcessor(nil, store, store, store, store)

	_, err := proc.Run(context.Background(), &entity.Dataset{ID: uuid.New()}, table, nil)
	require.Error(t, err)
	// Columns and rows created before the failure stay in place.
	assert.Len(t, store.columns, 1)
	assert.Len(t, store.rows, 2)
	assert.Zero(t, store.finalized)
}

func TestProcessorRunEmptyDataset(t *testing.T) {
	t.Parallel()

	table := openTestCSV(t, "a,b\n")
	store := &fakeStore{}
	proc := NewProcessor(nil, store, store, store, store)

	var updates []progress.Update
	result, err := proc.Run(context.Background(), &entity.Dataset{ID: uuid.New()}, table, func(u progress.Update) {
		updates = append(updates, u)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.TotalRows)
	assert.Equal(t, 2, result.TotalColumns)
	require.Len(t, updates, 1)
	assert.Equal(t, float64(100), updates[0].Percent)
}
