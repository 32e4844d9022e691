package datasets

import (
	"context"
	"io"
	"os"
	"path/filepath"
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
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/progress"
	"github.com/data-alchemy/backend/internal/repository"
)

type fakeDatasetRepo struct {
	byID    map[uuid.UUID]*entity.Dataset
	deleted []uuid.UUID
}

func newFakeDatasetRepo() *fakeDatasetRepo {
	return &fakeDatasetRepo{byID: make(map[uuid.UUID]*entity.Dataset)}
}

func (f *fakeDatasetRepo) Create(_ context.Context, req *repository.CreateDatasetRequest) (*entity.Dataset, error) {
	ds := &entity.Dataset{
		ID:       uuid.New(),
		Name:     req.Name,
		FilePath: req.FilePath,
		FileType: req.FileType,
		Status:   constants.DatasetStatusPending,
	}
	f.byID[ds.ID] = ds
	return ds, nil
}

func (f *fakeDatasetRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Dataset, error) {
	ds, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return ds, nil
}

func (f *fakeDatasetRepo) List(context.Context, int, int) ([]*entity.Dataset, int, error) {
	out := make([]*entity.Dataset, 0, len(f.byID))
	for _, ds := range f.byID {
		out = append(out, ds)
	}
	return out, len(out), nil
}

func (f *fakeDatasetRepo) SetStatus(context.Context, uuid.UUID, constants.DatasetStatus) error {
	return nil
}

func (f *fakeDatasetRepo) Finalize(context.Context, uuid.UUID, int64, int) error { return nil }

func (f *fakeDatasetRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeColumnRepo struct{}

func (fakeColumnRepo) CreateColumns(context.Context, uuid.UUID, []string) ([]entity.Column, error) {
	return nil, nil
}
func (fakeColumnRepo) GetByID(context.Context, uuid.UUID) (*entity.Column, error) {
	return nil, common.ErrNotFound
}
func (fakeColumnRepo) ListByDataset(context.Context, uuid.UUID) ([]*entity.Column, error) {
	return []*entity.Column{}, nil
}
func (fakeColumnRepo) SetTypes(context.Context, uuid.UUID, constants.DataType, constants.DataType) error {
	return nil
}
func (fakeColumnRepo) SetCurrentType(context.Context, uuid.UUID, constants.DataType) error {
	return nil
}
func (fakeColumnRepo) Rename(context.Context, uuid.UUID, string) (*entity.Column, error) {
	return nil, common.ErrNotFound
}

type fakeRowRepo struct{}

func (fakeRowRepo) CreateRows(context.Context, uuid.UUID, int64, int) ([]entity.Row, error) {
	return nil, nil
}
func (fakeRowRepo) Page(context.Context, uuid.UUID, int, int) (*repository.RowPage, error) {
	return &repository.RowPage{Values: map[uuid.UUID]map[uuid.UUID]string{}}, nil
}

type fakeJobRepo struct {
	byID    map[uuid.UUID]*entity.ProcessingJob
	active  bool
	created []*repository.CreateJobRequest
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[uuid.UUID]*entity.ProcessingJob)}
}

func (f *fakeJobRepo) Create(_ context.Context, req *repository.CreateJobRequest) (*entity.ProcessingJob, error) {
	f.created = append(f.created, req)
	job := &entity.ProcessingJob{
		ID:        uuid.New(),
		DatasetID: req.DatasetID,
		JobType:   req.JobType,
		Status:    constants.JobStatusQueued,
	}
	f.byID[job.ID] = job
	return job, nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ProcessingJob, error) {
	job, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return job, nil
}

func (f *fakeJobRepo) LatestForDataset(context.Context, uuid.UUID) (*entity.ProcessingJob, error) {
	return nil, common.ErrNotFound
}

func (f *fakeJobRepo) HasActiveJob(context.Context, uuid.UUID) (bool, error) { return f.active, nil }
func (f *fakeJobRepo) MarkRunning(context.Context, uuid.UUID) error          { return nil }
func (f *fakeJobRepo) MarkCompleted(context.Context, uuid.UUID, []byte) error {
	return nil
}
func (f *fakeJobRepo) MarkFailed(context.Context, uuid.UUID, string) error { return nil }

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

type fixture struct {
	svc      *Service
	datasets *fakeDatasetRepo
	jobs     *fakeJobRepo
	queue    *fakeQueue
	sink     *progress.MemorySink
	cfg      common.ProcessingConfig
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		datasets: newFakeDatasetRepo(),
		jobs:     newFakeJobRepo(),
		queue:    &fakeQueue{},
		sink:     progress.NewMemorySink(),
		cfg: common.ProcessingConfig{
			UploadDir:   filepath.Join(t.TempDir(), "uploads"),
			MaxFileSize: 1 << 20,
		},
	}
	f.svc = NewService(f.datasets, fakeColumnRepo{}, fakeRowRepo{}, f.jobs, f.queue, f.sink, f.cfg, testLogger())
	return f
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCreateDataset(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	path := writeSource(t, "sales.csv", "a,b\n1,2\n")

	result, err := f.svc.CreateDataset(context.Background(), CreateDatasetRequest{Path: path})
	require.NoError(t, err)

	assert.Equal(t, "sales", result.Dataset.Name, "name defaults to the file base name")
	assert.Equal(t, constants.FileTypeCSV, result.Dataset.FileType)
	assert.Equal(t, constants.DatasetStatusPending, result.Dataset.Status)

	// Source is copied into managed storage.
	assert.NotEqual(t, path, result.Dataset.FilePath)
	copied, err := os.ReadFile(result.Dataset.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(copied))

	require.Len(t, f.queue.jobs, 1)
	assert.Equal(t, constants.JobTypeInference, f.queue.jobs[0].Type)
	assert.Equal(t, result.Dataset.ID, f.queue.jobs[0].DatasetID)
	assert.Equal(t, result.Job.ID, f.queue.jobs[0].ID)
}

func TestCreateDatasetRejectsUnsupportedExtension(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	path := writeSource(t, "notes.txt", "hello")

	_, err := f.svc.CreateDataset(context.Background(), CreateDatasetRequest{Path: path})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Empty(t, f.queue.jobs)
}

func TestCreateDatasetRejectsOversizedFile(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.cfg.MaxFileSize = 4
	f.svc = NewService(f.datasets, fakeColumnRepo{}, fakeRowRepo{}, f.jobs, f.queue, f.sink, f.cfg, testLogger())
	path := writeSource(t, "big.csv", "a,b\n1,2\n")

	_, err := f.svc.CreateDataset(context.Background(), CreateDatasetRequest{Path: path})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetJobStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	job, err := f.jobs.Create(context.Background(), &repository.CreateJobRequest{
		DatasetID: uuid.New(),
		JobType:   constants.JobTypeInference,
	})
	require.NoError(t, err)

	f.sink.Report(context.Background(), job.ID, progress.Update{
		Stage: "Processing column data", ProcessedRows: 500, TotalRows: 1000, Percent: 50,
	})

	result, err := f.svc.GetJobStatus(context.Background(), job.ID.String())
	require.NoError(t, err)
	assert.Equal(t, job.ID, result.Job.ID)
	require.NotNil(t, result.Progress)
	assert.Equal(t, float64(50), result.Progress.Percent)
	assert.Equal(t, int64(500), result.Progress.ProcessedRows)
}

func TestGetJobStatusNotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.svc.GetJobStatus(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestDeleteDataset(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	stored := writeSource(t, "stored.csv", "a\n1\n")
	ds, err := f.datasets.Create(context.Background(), &repository.CreateDatasetRequest{
		Name: "stored", FilePath: stored, FileType: constants.FileTypeCSV,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteDataset(context.Background(), ds.ID.String()))
	assert.Contains(t, f.datasets.deleted, ds.ID)
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err), "stored file must be removed")
}

func TestDeleteDatasetRefusedWhileJobActive(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ds, err := f.datasets.Create(context.Background(), &repository.CreateDatasetRequest{
		Name: "busy", FilePath: "/tmp/busy.csv", FileType: constants.FileTypeCSV,
	})
	require.NoError(t, err)
	f.jobs.active = true

	err = f.svc.DeleteDataset(context.Background(), ds.ID.String())
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Contains(t, err.Error(), common.ErrJobActive.Error())
	assert.Empty(t, f.datasets.deleted)
}

func TestExportDataset(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ds, err := f.datasets.Create(context.Background(), &repository.CreateDatasetRequest{
		Name: "done", FilePath: "/tmp/done.csv", FileType: constants.FileTypeCSV,
	})
	require.NoError(t, err)
	ds.Status = constants.DatasetStatusCompleted

	job, err := f.svc.ExportDataset(context.Background(), ds.ID.String(), "xlsx")
	require.NoError(t, err)
	assert.Equal(t, constants.JobTypeExport, job.JobType)

	require.Len(t, f.queue.jobs, 1)
	require.NotNil(t, f.queue.jobs[0].Format)
	assert.Equal(t, constants.FileTypeExcel, *f.queue.jobs[0].Format)
}

func TestExportDatasetRequiresCompleted(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ds, err := f.datasets.Create(context.Background(), &repository.CreateDatasetRequest{
		Name: "pending", FilePath: "/tmp/pending.csv", FileType: constants.FileTypeCSV,
	})
	require.NoError(t, err)

	_, err = f.svc.ExportDataset(context.Background(), ds.ID.String(), "csv")
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Empty(t, f.queue.jobs)
}
