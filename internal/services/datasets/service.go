// Package datasets handles dataset lifecycle business logic: registering
// uploads, kicking off ingestion, paginated reads, status polling, export,
// and deletion.
package datasets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/async"
	"github.com/data-alchemy/backend/internal/common"
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/progress"
	"github.com/data-alchemy/backend/internal/repository"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// Service handles dataset business logic.
type Service struct {
	datasets repository.DatasetRepository
	columns  repository.ColumnRepository
	rows     repository.RowRepository
	jobs     repository.JobRepository
	queue    async.Queue
	sink     progress.Sink
	cfg      common.ProcessingConfig
	logger   *slog.Logger
}

func NewService(
	datasets repository.DatasetRepository,
	columns repository.ColumnRepository,
	rows repository.RowRepository,
	jobs repository.JobRepository,
	queue async.Queue,
	sink progress.Sink,
	cfg common.ProcessingConfig,
	logger *slog.Logger,
) *Service {
	return &Service{
		datasets: datasets,
		columns:  columns,
		rows:     rows,
		jobs:     jobs,
		queue:    queue,
		sink:     sink,
		cfg:      cfg,
		logger:   logger,
	}
}

// CreateDatasetRequest represents dataset upload parameters.
type CreateDatasetRequest struct {
	Name string
	Path string
}

// CreateDatasetResult couples the new dataset with its ingestion job.
type CreateDatasetResult struct {
	Dataset *entity.Dataset
	Job     *entity.ProcessingJob
}

// CreateDataset registers an uploaded file, copies it into managed
// storage, and queues the ingestion job.
func (s *Service) CreateDataset(ctx context.Context, req CreateDatasetRequest) (*CreateDatasetResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	fileType, ok := constants.FileTypeForPath(path)
	if !ok {
		s.logger.Error("rejected upload with unsupported extension", "path", path)
		return nil, status.Errorf(codes.InvalidArgument, "unsupported file type %q", filepath.Ext(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "source file: %v", err)
	}
	if s.cfg.MaxFileSize > 0 && info.Size() > s.cfg.MaxFileSize {
		return nil, status.Errorf(codes.InvalidArgument,
			"file size %d exceeds limit %d", info.Size(), s.cfg.MaxFileSize)
	}

	stored, err := s.storeUpload(path)
	if err != nil {
		s.logger.Error("storing upload failed", "path", path, "error", err)
		return nil, status.Errorf(codes.Internal, "storing upload: %v", err)
	}

	dataset, err := s.datasets.Create(ctx, &repository.CreateDatasetRequest{
		Name:     name,
		FilePath: stored,
		FileType: fileType,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "creating dataset: %v", err)
	}

	job, err := s.jobs.Create(ctx, &repository.CreateJobRequest{
		DatasetID: dataset.ID,
		JobType:   constants.JobTypeInference,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "creating job: %v", err)
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		ID:          job.ID,
		Type:        constants.JobTypeInference,
		DatasetID:   dataset.ID,
		SubmittedAt: time.Now(),
	}); err != nil {
		return nil, status.Errorf(codes.Internal, "enqueuing job: %v", err)
	}

	s.logger.Info("dataset upload accepted",
		"dataset_id", dataset.ID, "job_id", job.ID, "file_type", fileType, "size", info.Size())
	return &CreateDatasetResult{Dataset: dataset, Job: job}, nil
}

// storeUpload copies the source into the managed upload directory under a
// collision-free name.
func (s *Service) storeUpload(path string) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(s.cfg.UploadDir, uuid.NewString()+filepath.Ext(path))

	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", err
	}
	return dst, nil
}

// GetDatasetRequest represents a paginated dataset read.
type GetDatasetRequest struct {
	DatasetID string
	Page      int
	PageSize  int
}

// DatasetPage is one page of a dataset with its column metadata.
type DatasetPage struct {
	Dataset   *entity.Dataset
	Columns   []*entity.Column
	Rows      []*entity.Row
	Values    map[uuid.UUID]map[uuid.UUID]string
	TotalRows int
}

// GetDataset returns dataset metadata, ordered columns, and one page of
// rows with their cell values.
func (s *Service) GetDataset(ctx context.Context, req GetDatasetRequest) (*DatasetPage, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.DatasetID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "dataset_id must be a UUID")
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	page := req.Page
	if page < 1 {
		page = 1
	}

	dataset, err := s.datasets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "dataset not found")
		}
		return nil, status.Errorf(codes.Internal, "loading dataset: %v", err)
	}

	columns, err := s.columns.ListByDataset(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "loading columns: %v", err)
	}

	rowPage, err := s.rows.Page(ctx, id, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "loading rows: %v", err)
	}

	return &DatasetPage{
		Dataset:   dataset,
		Columns:   columns,
		Rows:      rowPage.Rows,
		Values:    rowPage.Values,
		TotalRows: rowPage.Total,
	}, nil
}

// ListDatasets returns one page of datasets ordered by creation time.
func (s *Service) ListDatasets(ctx context.Context, page, pageSize int) ([]*entity.Dataset, int, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	list, total, err := s.datasets.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, status.Errorf(codes.Internal, "listing datasets: %v", err)
	}
	return list, total, nil
}

// JobStatus combines the stored job record with live progress.
type JobStatus struct {
	Job      *entity.ProcessingJob
	Progress *progress.Update
}

// GetJobStatus returns the job record plus the latest progress update
// while the job is still running.
func (s *Service) GetJobStatus(ctx context.Context, jobID string) (*JobStatus, error) {
	id, err := uuid.Parse(strings.TrimSpace(jobID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		return nil, status.Errorf(codes.Internal, "loading job: %v", err)
	}

	result := &JobStatus{Job: job}
	if update, ok := s.sink.Get(ctx, id); ok {
		result.Progress = &update
	}
	return result, nil
}

// DeleteDataset removes the dataset record, everything hanging off it,
// and the stored source file.
func (s *Service) DeleteDataset(ctx context.Context, datasetID string) error {
	id, err := uuid.Parse(strings.TrimSpace(datasetID))
	if err != nil {
		return status.Error(codes.InvalidArgument, "dataset_id must be a UUID")
	}

	dataset, err := s.datasets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return status.Error(codes.NotFound, "dataset not found")
		}
		return status.Errorf(codes.Internal, "loading dataset: %v", err)
	}

	active, err := s.jobs.HasActiveJob(ctx, id)
	if err != nil {
		return status.Errorf(codes.Internal, "checking jobs: %v", err)
	}
	if active {
		return common.GRPCError(fmt.Errorf("dataset %s: %w", id, common.ErrJobActive))
	}

	if err := s.datasets.Delete(ctx, id); err != nil {
		return status.Errorf(codes.Internal, "deleting dataset: %v", err)
	}
	if err := os.Remove(dataset.FilePath); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("removing stored file failed", "dataset_id", id, "path", dataset.FilePath, "error", err)
	}

	s.logger.Info("dataset deleted", "dataset_id", id)
	return nil
}

// ExportDataset queues an export job writing the dataset's current values
// to the requested format.
func (s *Service) ExportDataset(ctx context.Context, datasetID, format string) (*entity.ProcessingJob, error) {
	id, err := uuid.Parse(strings.TrimSpace(datasetID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "dataset_id must be a UUID")
	}

	var fileType constants.FileType
	switch strings.ToUpper(strings.TrimSpace(format)) {
	case "", "CSV":
		fileType = constants.FileTypeCSV
	case "EXCEL", "XLSX":
		fileType = constants.FileTypeExcel
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unsupported export format %q", format)
	}

	dataset, err := s.datasets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "dataset not found")
		}
		return nil, status.Errorf(codes.Internal, "loading dataset: %v", err)
	}
	if dataset.Status != constants.DatasetStatusCompleted {
		return nil, common.FailedPreconditionError(
			fmt.Sprintf("dataset is %s, export needs %s", dataset.Status, constants.DatasetStatusCompleted))
	}

	if err := s.ensureNoActiveJob(ctx, id); err != nil {
		return nil, err
	}

	job, err := s.jobs.Create(ctx, &repository.CreateJobRequest{
		DatasetID: id,
		JobType:   constants.JobTypeExport,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "creating job: %v", err)
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		ID:          job.ID,
		Type:        constants.JobTypeExport,
		DatasetID:   id,
		Format:      &fileType,
		SubmittedAt: time.Now(),
	}); err != nil {
		return nil, status.Errorf(codes.Internal, "enqueuing job: %v", err)
	}

	s.logger.Info("export queued", "dataset_id", id, "job_id", job.ID, "format", fileType)
	return job, nil
}

func (s *Service) ensureNoActiveJob(ctx context.Context, datasetID uuid.UUID) error {
	active, err := s.jobs.HasActiveJob(ctx, datasetID)
	if err != nil {
		return status.Errorf(codes.Internal, "checking jobs: %v", err)
	}
	if active {
		return common.GRPCError(fmt.Errorf("dataset %s: %w", datasetID, common.ErrJobActive))
	}
	return nil
}
