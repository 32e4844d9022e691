package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/gen/ent"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/data-alchemy/backend/internal/common"
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/utils"
)

// CreateDatasetRequest wraps parameters for registering an uploaded file.
type CreateDatasetRequest struct {
	Name     string
	FilePath string
	FileType constants.FileType
}

type DatasetRepository interface {
	Create(ctx context.Context, request *CreateDatasetRequest) (*entity.Dataset, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Dataset, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Dataset, int, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.DatasetStatus) error
	Finalize(ctx context.Context, id uuid.UUID, rowsCount int64, columnsCount int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type datasetRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDatasetRepository(entc *ent.Client, log *slog.Logger) DatasetRepository {
	return &datasetRepo{ent: entc, log: log}
}

func (r *datasetRepo) Create(ctx context.Context, request *CreateDatasetRequest) (*entity.Dataset, error) {
	ds, err := r.ent.Dataset.
		Create().
		SetName(request.Name).
		SetFilePath(request.FilePath).
		SetFileType(string(request.FileType)).
		SetStatus(string(constants.DatasetStatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("dataset create failed", "name", request.Name, "err", err)
		return nil, fmt.Errorf("%w: creating dataset: %v", common.ErrPersistence, err)
	}
	r.log.Info("dataset created", "dataset_id", ds.ID, "name", ds.Name, "file_type", ds.FileType)
	return utils.ToDataset(ds), nil
}

func (r *datasetRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Dataset, error) {
	ds, err := r.ent.Dataset.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.log.Error("dataset lookup failed", "dataset_id", id, "err", err)
		return nil, err
	}
	return utils.ToDataset(ds), nil
}

func (r *datasetRepo) List(ctx context.Context, offset, limit int) ([]*entity.Dataset, int, error) {
	q := r.ent.Dataset.Query()
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	recs, err := q.
		Order(dataset.ByCreatedAt(), dataset.ByID()).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.log.Error("dataset list failed", "err", err)
		return nil, 0, err
	}

	result := make([]*entity.Dataset, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToDataset(rec)
	}
	return result, total, nil
}

func (r *datasetRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.DatasetStatus) error {
	err := r.ent.Dataset.
		UpdateOneID(id).
		SetStatus(string(status)).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.log.Error("dataset status update failed", "dataset_id", id, "status", status, "err", err)
		return fmt.Errorf("%w: updating dataset status: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *datasetRepo) Finalize(ctx context.Context, id uuid.UUID, rowsCount int64, columnsCount int) error {
	err := r.ent.Dataset.
		UpdateOneID(id).
		SetRowsCount(rowsCount).
		SetColumnsCount(columnsCount).
		SetStatus(string(constants.DatasetStatusCompleted)).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.log.Error("dataset finalize failed", "dataset_id", id, "err", err)
		return fmt.Errorf("%w: finalizing dataset: %v", common.ErrPersistence, err)
	}
	r.log.Info("dataset finalized", "dataset_id", id, "rows_count", rowsCount, "columns_count", columnsCount)
	return nil
}

func (r *datasetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Columns, rows, values, and jobs go with it via cascade.
	err := r.ent.Dataset.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.log.Error("dataset delete failed", "dataset_id", id, "err", err)
		return fmt.Errorf("%w: deleting dataset: %v", common.ErrPersistence, err)
	}
	r.log.Info("dataset deleted", "dataset_id", id)
	return nil
}
