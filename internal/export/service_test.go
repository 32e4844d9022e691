package export

import (
	"context"
	"encoding/csv"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/repository"
)

type fakeColumnRepo struct {
	columns []*entity.Column
}

func (f *fakeColumnRepo) CreateColumns(context.Context, uuid.UUID, []string) ([]entity.Column, error) {
	return nil, nil
}
func (f *fakeColumnRepo) GetByID(context.Context, uuid.UUID) (*entity.Column, error) {
	return nil, nil
}
func (f *fakeColumnRepo) ListByDataset(context.Context, uuid.UUID) ([]*entity.Column, error) {
	return f.columns, nil
}
func (f *fakeColumnRepo) SetTypes(context.Context, uuid.UUID, constants.DataType, constants.DataType) error {
	return nil
}
func (f *fakeColumnRepo) SetCurrentType(context.Context, uuid.UUID, constants.DataType) error {
	return nil
}
func (f *fakeColumnRepo) Rename(context.Context, uuid.UUID, string) (*entity.Column, error) {
	return nil, nil
}

type fakeRowRepo struct {
	rows   []*entity.Row
	values map[uuid.UUID]map[uuid.UUID]string
}

func (f *fakeRowRepo) CreateRows(context.Context, uuid.UUID, int64, int) ([]entity.Row, error) {
	return nil, nil
}

func (f *fakeRowRepo) Page(_ context.Context, _ uuid.UUID, offset, limit int) (*repository.RowPage, error) {
	page := &repository.RowPage{Values: f.values, Total: len(f.rows)}
	if offset >= len(f.rows) {
		return page, nil
	}
	end := offset + limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	page.Rows = f.rows[offset:end]
	return page, nil
}

func newFixture(t *testing.T) (*Service, *entity.Dataset) {
	t.Helper()

	datasetID := uuid.New()
	cols := []*entity.Column{
		{ID: uuid.New(), DatasetID: datasetID, Name: "amount", Position: 0, CurrentType: constants.TypeInteger},
		{ID: uuid.New(), DatasetID: datasetID, Name: "note", Position: 1, CurrentType: constants.TypeText},
	}

	rowRepo := &fakeRowRepo{values: make(map[uuid.UUID]map[uuid.UUID]string)}
	cells := [][2]string{{"10", "first"}, {"20", ""}, {"30", "third"}}
	for i, c := range cells {
		row := &entity.Row{ID: uuid.New(), DatasetID: datasetID, RowIndex: int64(i)}
		rowRepo.rows = append(rowRepo.rows, row)
		rowRepo.values[row.ID] = map[uuid.UUID]string{
			cols[0].ID: c[0],
			cols[1].ID: c[1],
		}
	}

	svc := NewService(&fakeColumnRepo{columns: cols}, rowRepo, t.TempDir(), nil)
	return svc, &entity.Dataset{ID: datasetID, Name: "orders"}
}

func TestExportCSV(t *testing.T) {
	t.Parallel()

	svc, dataset := newFixture(t)
	path, err := svc.Export(context.Background(), dataset, constants.FileTypeCSV)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"amount", "note"}, records[0])
	assert.Equal(t, []string{"10", "first"}, records[1])
	assert.Equal(t, []string{"20", ""}, records[2])
	assert.Equal(t, []string{"30", "third"}, records[3])
}

func TestExportXLSX(t *testing.T) {
	t.Parallel()

	svc, dataset := newFixture(t)
	path, err := svc.Export(context.Background(), dataset, constants.FileTypeExcel)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"amount", "note"}, rows[0])
	assert.Equal(t, "30", rows[3][0])
}

func TestExportNoColumns(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeColumnRepo{}, &fakeRowRepo{}, t.TempDir(), nil)
	_, err := svc.Export(context.Background(), &entity.Dataset{ID: uuid.New(), Name: "empty"}, constants.FileTypeCSV)
	require.Error(t, err)
}
