package columns

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/async"
	"github.com/data-alchemy/backend/internal/common"
	"github.com/data-alchemy/backend/internal/core/convert"
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/repository"
)

type fakeColumnRepo struct {
	column  *entity.Column
	renamed string
}

func (f *fakeColumnRepo) CreateColumns(context.Context, uuid.UUID, []string) ([]entity.Column, error) {
	return nil, nil
}

func (f *fakeColumnRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Column, error) {
	if f.column == nil || f.column.ID != id {
		return nil, fmt.Errorf("column %s: %w", id, errNotFound)
	}
	return f.column, nil
}

func (f *fakeColumnRepo) ListByDataset(context.Context, uuid.UUID) ([]*entity.Column, error) {
	return nil, nil
}

func (f *fakeColumnRepo) SetTypes(context.Context, uuid.UUID, constants.DataType, constants.DataType) error {
	return nil
}

func (f *fakeColumnRepo) SetCurrentType(context.Context, uuid.UUID, constants.DataType) error {
	return nil
}

func (f *fakeColumnRepo) Rename(_ context.Context, _ uuid.UUID, name string) (*entity.Column, error) {
	f.renamed = name
	f.column.Name = name
	return f.column, nil
}

type fakeValueRepo struct {
	cells []convert.Cell
}

func (f *fakeValueRepo) CreateValues(context.Context, []entity.RowValue) error { return nil }

func (f *fakeValueRepo) CellsForColumn(context.Context, uuid.UUID) ([]convert.Cell, error) {
	return f.cells, nil
}

func (f *fakeValueRepo) UpdateValues(context.Context, []convert.ValueUpdate) error { return nil }

type fakeJobRepo struct {
	active  bool
	created []*repository.CreateJobRequest
}

func (f *fakeJobRepo) Create(_ context.Context, req *repository.CreateJobRequest) (*entity.ProcessingJob, error) {
	f.created = append(f.created, req)
	return &entity.ProcessingJob{
		ID:        uuid.New(),
		DatasetID: req.DatasetID,
		JobType:   req.JobType,
		Status:    constants.JobStatusQueued,
	}, nil
}

func (f *fakeJobRepo) GetByID(context.Context, uuid.UUID) (*entity.ProcessingJob, error) {
	return nil, errNotFound
}

func (f *fakeJobRepo) LatestForDataset(context.Context, uuid.UUID) (*entity.ProcessingJob, error) {
	return nil, errNotFound
}

func (f *fakeJobRepo) HasActiveJob(context.Context, uuid.UUID) (bool, error) { return f.active, nil }
func (f *fakeJobRepo) MarkRunning(context.Context, uuid.UUID) error         { return nil }
func (f *fakeJobRepo) MarkCompleted(context.Context, uuid.UUID, []byte) error {
	return nil
}
func (f *fakeJobRepo) MarkFailed(context.Context, uuid.UUID, string) error { return nil }

var errNotFound = fmt.Errorf("not found")

type fakeQueue struct {
	mu   sync.Mutex
	jobs []async.Job
}

func (q *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) Shutdown(context.Context) {}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFixture(values []string) (*Service, *fakeColumnRepo, *fakeJobRepo, *fakeQueue) {
	column := &entity.Column{
		ID:          uuid.New(),
		DatasetID:   uuid.New(),
		Name:        "amount",
		CurrentType: constants.TypeText,
	}
	cells := make([]convert.Cell, len(values))
	for i, v := range values {
		cells[i] = convert.Cell{ID: uuid.New(), RowIndex: int64(i), Value: v}
	}

	cols := &fakeColumnRepo{column: column}
	jobs := &fakeJobRepo{}
	queue := &fakeQueue{}
	svc := NewService(cols, &fakeValueRepo{cells: cells}, jobs, queue, testLogger())
	return svc, cols, jobs, queue
}

func TestValidateConversion(t *testing.T) {
	t.Parallel()

	svc, cols, _, _ := newFixture([]string{"1", "2", "3"})

	result, err := svc.ValidateConversion(context.Background(), cols.column.ID.String(), "integer")
	require.NoError(t, err)
	assert.True(t, result.Feasible)
	assert.Empty(t, result.Reason)

	result, err = svc.ValidateConversion(context.Background(), cols.column.ID.String(), "DATETIME")
	require.NoError(t, err)
	assert.False(t, result.Feasible)
	assert.Contains(t, result.Reason, "1")
}

func TestValidateConversionUnknownTarget(t *testing.T) {
	t.Parallel()

	svc, cols, _, _ := newFixture([]string{"1"})
	_, err := svc.ValidateConversion(context.Background(), cols.column.ID.String(), "DECIMAL")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, err.Error(), "target_type")
}

func TestValidateConversionRejectsBadColumnID(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newFixture([]string{"1"})
	_, err := svc.ValidateConversion(context.Background(), "not-a-uuid", "INTEGER")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, err.Error(), "column_id")
}

func TestStartConversionQueuesJob(t *testing.T) {
	t.Parallel()

	svc, cols, jobs, queue := newFixture([]string{"1", "2", "3"})

	job, err := svc.StartConversion(context.Background(), cols.column.ID.String(), "INTEGER")
	require.NoError(t, err)
	assert.Equal(t, constants.JobTypeConversion, job.JobType)
	assert.Equal(t, constants.JobStatusQueued, job.Status)

	require.Len(t, jobs.created, 1)
	require.NotNil(t, jobs.created[0].TargetType)
	assert.Equal(t, constants.TypeInteger, *jobs.created[0].TargetType)

	require.Len(t, queue.jobs, 1)
	assert.Equal(t, constants.JobTypeConversion, queue.jobs[0].Type)
	assert.Equal(t, cols.column.ID, *queue.jobs[0].ColumnID)
}

func TestStartConversionRefusesInfeasible(t *testing.T) {
	t.Parallel()

	svc, cols, jobs, queue := newFixture([]string{"1", "two", "3"})

	_, err := svc.StartConversion(context.Background(), cols.column.ID.String(), "INTEGER")
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Contains(t, err.Error(), common.ErrInfeasibleConversion.Error())
	assert.Contains(t, err.Error(), "two")
	assert.Empty(t, jobs.created, "infeasible conversions must not create job records")
	assert.Empty(t, queue.jobs)
}

func TestStartConversionRefusesWhileJobActive(t *testing.T) {
	t.Parallel()

	svc, cols, jobs, queue := newFixture([]string{"1", "2"})
	jobs.active = true

	_, err := svc.StartConversion(context.Background(), cols.column.ID.String(), "INTEGER")
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Contains(t, err.Error(), common.ErrJobActive.Error())
	assert.Empty(t, queue.jobs)
}

func TestRenameColumn(t *testing.T) {
	t.Parallel()

	svc, cols, _, _ := newFixture(nil)

	column, err := svc.RenameColumn(context.Background(), cols.column.ID.String(), "  total  ")
	require.NoError(t, err)
	assert.Equal(t, "total", column.Name)
	assert.Equal(t, "total", cols.renamed)
}

func TestRenameColumnRejectsBadNames(t *testing.T) {
	t.Parallel()

	svc, cols, _, _ := newFixture(nil)

	_, err := svc.RenameColumn(context.Background(), cols.column.ID.String(), "   ")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	_, err = svc.RenameColumn(context.Background(), cols.column.ID.String(), string(long))
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestRenameColumnRejectsBadColumnID(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newFixture(nil)

	_, err := svc.RenameColumn(context.Background(), "not-a-uuid", "total")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, err.Error(), "column_id")
}
