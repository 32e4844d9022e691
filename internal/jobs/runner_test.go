package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/async"
	"github.com/data-alchemy/backend/internal/common"
	"github.com/data-alchemy/backend/internal/core"
	"github.com/data-alchemy/backend/internal/core/convert"
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/progress"
)

// fakeBackend implements every store interface the runner and processor
// touch, keeping all state in memory.
type fakeBackend struct {
	dataset *entity.Dataset
	column  *entity.Column
	cells   []convert.Cell

	running   []uuid.UUID
	completed map[uuid.UUID]json.RawMessage
	failed    map[uuid.UUID]string

	datasetStatus constants.DatasetStatus
	currentType   constants.DataType
	updated       []convert.ValueUpdate

	columns []entity.Column
	rows    int
	values  int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		completed: make(map[uuid.UUID]json.RawMessage),
		failed:    make(map[uuid.UUID]string),
	}
}

func (f *fakeBackend) MarkRunning(_ context.Context, id uuid.UUID) error {
	f.running = append(f.running, id)
	return nil
}

func (f *fakeBackend) MarkCompleted(_ context.Context, id uuid.UUID, result []byte) error {
	f.completed[id] = append(json.RawMessage(nil), result...)
	return nil
}

func (f *fakeBackend) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	f.failed[id] = message
	return nil
}

func (f *fakeBackend) GetByID(_ context.Context, id uuid.UUID) (*entity.Dataset, error) {
	if f.dataset == nil || f.dataset.ID != id {
		return nil, fmt.Errorf("dataset %s not found", id)
	}
	return f.dataset, nil
}

func (f *fakeBackend) SetStatus(_ context.Context, _ uuid.UUID, status constants.DatasetStatus) error {
	f.datasetStatus = status
	return nil
}

func (f *fakeBackend) Finalize(_ context.Context, _ uuid.UUID, rowsCount int64, columnsCount int) error {
	f.datasetStatus = constants.DatasetStatusCompleted
	return nil
}

func (f *fakeBackend) CreateColumns(_ context.Context, datasetID uuid.UUID, names []string) ([]entity.Column, error) {
	for i, name := range names {
		f.columns = append(f.columns, entity.Column{
			ID: uuid.New(), DatasetID: datasetID, Name: name, Position: i,
			InferredType: constants.TypeText, CurrentType: constants.TypeText,
		})
	}
	out := make([]entity.Column, len(f.columns))
	copy(out, f.columns)
	return out, nil
}

func (f *fakeBackend) SetTypes(_ context.Context, columnID uuid.UUID, inferred, current constants.DataType) error {
	for i := range f.columns {
		if f.columns[i].ID == columnID {
			f.columns[i].InferredType = inferred
			f.columns[i].CurrentType = current
		}
	}
	return nil
}

func (f *fakeBackend) CreateRows(_ context.Context, datasetID uuid.UUID, startIndex int64, count int) ([]entity.Row, error) {
	created := make([]entity.Row, count)
	for i := range created {
		created[i] = entity.Row{ID: uuid.New(), DatasetID: datasetID, RowIndex: startIndex + int64(i)}
	}
	f.rows += count
	return created, nil
}

func (f *fakeBackend) CreateValues(_ context.Context, values []entity.RowValue) error {
	f.values += len(values)
	return nil
}

func (f *fakeBackend) GetColumnByID(ctx context.Context, id uuid.UUID) (*entity.Column, error) {
	if f.column == nil || f.column.ID != id {
		return nil, fmt.Errorf("column %s not found", id)
	}
	return f.column, nil
}

func (f *fakeBackend) SetCurrentType(_ context.Context, _ uuid.UUID, current constants.DataType) error {
	f.currentType = current
	return nil
}

func (f *fakeBackend) CellsForColumn(_ context.Context, _ uuid.UUID) ([]convert.Cell, error) {
	return f.cells, nil
}

func (f *fakeBackend) UpdateValues(_ context.Context, updates []convert.ValueUpdate) error {
	f.updated = append(f.updated, updates...)
	return nil
}

// columnStoreAdapter renames GetColumnByID to the ColumnStore method set,
// since fakeBackend.GetByID is taken by datasets.
type columnStoreAdapter struct{ *fakeBackend }

func (a columnStoreAdapter) GetByID(ctx context.Context, id uuid.UUID) (*entity.Column, error) {
	return a.GetColumnByID(ctx, id)
}

// recordingSink keeps the full update history so tests can assert on
// events that Forget would otherwise clear.
type recordingSink struct {
	updates   []progress.Update
	forgotten []uuid.UUID
}

func (s *recordingSink) Report(_ context.Context, _ uuid.UUID, update progress.Update) {
	s.updates = append(s.updates, update)
}

func (s *recordingSink) Get(_ context.Context, _ uuid.UUID) (progress.Update, bool) {
	if len(s.updates) == 0 {
		return progress.Update{}, false
	}
	return s.updates[len(s.updates)-1], true
}

func (s *recordingSink) Forget(_ context.Context, jobID uuid.UUID) {
	s.forgotten = append(s.forgotten, jobID)
}

type fakeExporter struct {
	path   string
	err    error
	called int
	format constants.FileType
}

func (e *fakeExporter) Export(_ context.Context, _ *entity.Dataset, format constants.FileType) (string, error) {
	e.called++
	e.format = format
	return e.path, e.err
}

func newTestRunner(backend *fakeBackend, exporter Exporter, sink progress.Sink) *Runner {
	proc := core.NewProcessor(nil, backend, backend, backend, backend)
	conv := convert.NewConverter(backend, nil)
	return NewRunner(nil, backend, backend, columnStoreAdapter{backend}, backend, proc, conv, exporter, sink)
}

func TestRunnerInferenceJob(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,when\n1,2023-01-15\n2,2023-02-20\n"), 0o644))

	backend := newFakeBackend()
	backend.dataset = &entity.Dataset{ID: uuid.New(), FilePath: path, FileType: constants.FileTypeCSV}

	sink := &recordingSink{}
	runner := newTestRunner(backend, &fakeExporter{}, sink)

	job := async.Job{ID: uuid.New(), Type: constants.JobTypeInference, DatasetID: backend.dataset.ID}
	require.NoError(t, runner.Execute(context.Background(), job))

	require.Contains(t, backend.completed, job.ID)
	var result core.Result
	require.NoError(t, json.Unmarshal(backend.completed[job.ID], &result))
	assert.Equal(t, int64(2), result.TotalRows)
	assert.Equal(t, 2, result.TotalColumns)
	assert.Equal(t, constants.DatasetStatusCompleted, backend.datasetStatus)
	assert.Equal(t, 2, backend.rows)
	assert.Equal(t, 4, backend.values)

	require.NotEmpty(t, sink.updates)
	assert.Equal(t, float64(100), sink.updates[len(sink.updates)-1].Percent)
	// Terminal jobs release their progress entry.
	assert.Contains(t, sink.forgotten, job.ID)
}

func TestRunnerInferenceFailureMarksDatasetFailed(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.dataset = &entity.Dataset{
		ID:       uuid.New(),
		FilePath: filepath.Join(t.TempDir(), "missing.csv"),
		FileType: constants.FileTypeCSV,
	}
	runner := newTestRunner(backend, &fakeExporter{}, progress.NewMemorySink())

	job := async.Job{ID: uuid.New(), Type: constants.JobTypeInference, DatasetID: backend.dataset.ID}
	require.Error(t, runner.Execute(context.Background(), job))

	assert.Contains(t, backend.failed, job.ID)
	assert.Equal(t, constants.DatasetStatusFailed, backend.datasetStatus)
	assert.NotContains(t, backend.completed, job.ID)
}

func TestRunnerConversionJob(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	columnID := uuid.New()
	backend.column = &entity.Column{ID: columnID, CurrentType: constants.TypeText}
	for i := 0; i < 5; i++ {
		backend.cells = append(backend.cells, convert.Cell{
			ID: uuid.New(), RowIndex: int64(i), Value: fmt.Sprintf("%d,500", i),
		})
	}

	sink := &recordingSink{}
	runner := newTestRunner(backend, &fakeExporter{}, sink)

	target := constants.TypeInteger
	job := async.Job{
		ID:         uuid.New(),
		Type:       constants.JobTypeConversion,
		ColumnID:   &columnID,
		TargetType: &target,
	}
	require.NoError(t, runner.Execute(context.Background(), job))

	assert.Equal(t, constants.TypeInteger, backend.currentType)
	require.Len(t, backend.updated, 5)
	assert.Equal(t, "1500", backend.updated[1].Value)

	var result conversionResult
	require.NoError(t, json.Unmarshal(backend.completed[job.ID], &result))
	assert.Equal(t, columnID, result.ColumnID)
	assert.Equal(t, constants.TypeInteger, result.TargetType)
	assert.Equal(t, 5, result.ConvertedRows)

	require.NotEmpty(t, sink.updates)
	last := sink.updates[len(sink.updates)-1]
	assert.Equal(t, StageConverting, last.Stage)
	assert.Equal(t, float64(100), last.Percent)
	assert.Equal(t, int64(5), last.ProcessedRows)
	assert.Contains(t, sink.forgotten, job.ID)
}

func TestRunnerConversionFailureLeavesTypeUntouched(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	columnID := uuid.New()
	backend.column = &entity.Column{ID: columnID, CurrentType: constants.TypeText}
	backend.cells = []convert.Cell{
		{ID: uuid.New(), RowIndex: 0, Value: "10"},
		{ID: uuid.New(), RowIndex: 1, Value: "not a number"},
	}
	runner := newTestRunner(backend, &fakeExporter{}, progress.NewMemorySink())

	target := constants.TypeInteger
	job := async.Job{ID: uuid.New(), Type: constants.JobTypeConversion, ColumnID: &columnID, TargetType: &target}
	err := runner.Execute(context.Background(), job)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConversionValue)
	assert.Contains(t, err.Error(), "row 1")

	assert.Contains(t, backend.failed, job.ID)
	assert.Empty(t, backend.currentType)
	assert.Empty(t, backend.datasetStatus, "conversion failures must not touch dataset status")
}

func TestRunnerClassifiesTimeout(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.dataset = &entity.Dataset{ID: uuid.New(), Name: "sales"}
	exporter := &fakeExporter{err: context.DeadlineExceeded}
	runner := newTestRunner(backend, exporter, progress.NewMemorySink())

	job := async.Job{ID: uuid.New(), Type: constants.JobTypeExport, DatasetID: backend.dataset.ID}
	err := runner.Execute(context.Background(), job)
	require.ErrorIs(t, err, common.ErrTimeout)
	assert.Contains(t, backend.failed[job.ID], "processing timed out")
}

func TestRunnerConversionJobMissingTarget(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	runner := newTestRunner(backend, &fakeExporter{}, progress.NewMemorySink())

	job := async.Job{ID: uuid.New(), Type: constants.JobTypeConversion}
	require.Error(t, runner.Execute(context.Background(), job))
	assert.Contains(t, backend.failed, job.ID)
}

func TestRunnerExportJob(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.dataset = &entity.Dataset{ID: uuid.New(), Name: "sales"}
	exporter := &fakeExporter{path: "/tmp/exports/sales.xlsx"}
	runner := newTestRunner(backend, exporter, progress.NewMemorySink())

	format := constants.FileTypeExcel
	job := async.Job{ID: uuid.New(), Type: constants.JobTypeExport, DatasetID: backend.dataset.ID, Format: &format}
	require.NoError(t, runner.Execute(context.Background(), job))

	assert.Equal(t, 1, exporter.called)
	assert.Equal(t, constants.FileTypeExcel, exporter.format)

	var result exportResult
	require.NoError(t, json.Unmarshal(backend.completed[job.ID], &result))
	assert.Equal(t, "/tmp/exports/sales.xlsx", result.FilePath)
	assert.Equal(t, "EXCEL", result.Format)
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	t.Parallel()

	schema := resultSchemas[constants.JobTypeInference]
	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"total_rows":10,"total_columns":3}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"total_rows":"ten"}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"total_rows":10,"total_columns":3,"extra":true}`)))
}
