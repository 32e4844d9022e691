package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/gen/ent"
	"github.com/data-alchemy/backend/gen/ent/processingjob"
	"github.com/data-alchemy/backend/internal/common"
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/utils"
)

// CreateJobRequest wraps parameters for enqueuing a processing job.
type CreateJobRequest struct {
	DatasetID  uuid.UUID
	JobType    constants.JobType
	ColumnID   *uuid.UUID
	TargetType *constants.DataType
}

type JobRepository interface {
	Create(ctx context.Context, request *CreateJobRequest) (*entity.ProcessingJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ProcessingJob, error)
	LatestForDataset(ctx context.Context, datasetID uuid.UUID) (*entity.ProcessingJob, error)
	HasActiveJob(ctx context.Context, datasetID uuid.UUID) (bool, error)
	MarkRunning(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, result []byte) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, request *CreateJobRequest) (*entity.ProcessingJob, error) {
	builder := r.ent.ProcessingJob.
		Create().
		SetDatasetID(request.DatasetID).
		SetJobType(string(request.JobType)).
		SetStatus(string(constants.JobStatusQueued)).
		SetNillableColumnID(request.ColumnID)
	if request.TargetType != nil {
		builder = builder.SetTargetType(string(*request.TargetType))
	}

	job, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("job create failed", "dataset_id", request.DatasetID, "job_type", request.JobType, "err", err)
		return nil, fmt.Errorf("%w: creating job: %v", common.ErrPersistence, err)
	}
	r.log.Info("job created", "job_id", job.ID, "dataset_id", request.DatasetID, "job_type", request.JobType)
	return utils.ToProcessingJob(job), nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProcessingJob, error) {
	job, err := r.ent.ProcessingJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.log.Error("job lookup failed", "job_id", id, "err", err)
		return nil, err
	}
	return utils.ToProcessingJob(job), nil
}

func (r *jobRepo) LatestForDataset(ctx context.Context, datasetID uuid.UUID) (*entity.ProcessingJob, error) {
	job, err := r.ent.ProcessingJob.
		Query().
		Where(processingjob.DatasetID(datasetID)).
		Order(processingjob.ByCreatedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.log.Error("latest job lookup failed", "dataset_id", datasetID, "err", err)
		return nil, err
	}
	return utils.ToProcessingJob(job), nil
}

// HasActiveJob reports whether the dataset has a queued or running job.
// One job per dataset at a time keeps conversions from racing ingestion.
func (r *jobRepo) HasActiveJob(ctx context.Context, datasetID uuid.UUID) (bool, error) {
	return r.ent.ProcessingJob.
		Query().
		Where(
			processingjob.DatasetID(datasetID),
			processingjob.StatusIn(
				string(constants.JobStatusQueued),
				string(constants.JobStatusRunning),
			),
		).
		Exist(ctx)
}

func (r *jobRepo) MarkRunning(ctx context.Context, id uuid.UUID) error {
	err := r.ent.ProcessingJob.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusRunning)).
		SetStartedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.log.Error("job mark running failed", "job_id", id, "err", err)
		return fmt.Errorf("%w: marking job running: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *jobRepo) MarkCompleted(ctx context.Context, id uuid.UUID, result []byte) error {
	err := r.ent.ProcessingJob.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusCompleted)).
		SetResult(json.RawMessage(result)).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.log.Error("job mark completed failed", "job_id", id, "err", err)
		return fmt.Errorf("%w: marking job completed: %v", common.ErrPersistence, err)
	}
	r.log.Info("job completed", "job_id", id)
	return nil
}

func (r *jobRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	err := r.ent.ProcessingJob.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.log.Error("job mark failed failed", "job_id", id, "err", err)
		return fmt.Errorf("%w: marking job failed: %v", common.ErrPersistence, err)
	}
	r.log.Warn("job failed", "job_id", id, "error", message)
	return nil
}
