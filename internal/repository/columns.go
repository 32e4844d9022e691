package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/gen/ent"
	"github.com/data-alchemy/backend/gen/ent/datasetcolumn"
	"github.com/data-alchemy/backend/internal/common"
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/utils"
)

type ColumnRepository interface {
	CreateColumns(ctx context.Context, datasetID uuid.UUID, names []string) ([]entity.Column, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Column, error)
	ListByDataset(ctx context.Context, datasetID uuid.UUID) ([]*entity.Column, error)
	SetTypes(ctx context.Context, columnID uuid.UUID, inferred, current constants.DataType) error
	SetCurrentType(ctx context.Context, columnID uuid.UUID, current constants.DataType) error
	Rename(ctx context.Context, columnID uuid.UUID, name string) (*entity.Column, error)
}

type columnRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewColumnRepository(entc *ent.Client, log *slog.Logger) ColumnRepository {
	return &columnRepo{ent: entc, log: log}
}

func (r *columnRepo) CreateColumns(ctx context.Context, datasetID uuid.UUID, names []string) ([]entity.Column, error) {
	builders := make([]*ent.DatasetColumnCreate, len(names))
	for i, name := range names {
		builders[i] = r.ent.DatasetColumn.
			Create().
			SetDatasetID(datasetID).
			SetName(name).
			SetOriginalName(name).
			SetPosition(i).
			SetInferredType(string(constants.TypeText)).
			SetCurrentType(string(constants.TypeText))
	}
	recs, err := r.ent.DatasetColumn.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.log.Error("column create failed", "dataset_id", datasetID, "err", err)
		return nil, fmt.Errorf("%w: creating columns: %v", common.ErrPersistence, err)
	}

	result := make([]entity.Column, len(recs))
	for i, rec := range recs {
		result[i] = *utils.ToColumn(rec)
	}
	r.log.Info("columns created", "dataset_id", datasetID, "count", len(result))
	return result, nil
}

func (r *columnRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Column, error) {
	rec, err := r.ent.DatasetColumn.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.log.Error("column lookup failed", "column_id", id, "err", err)
		return nil, err
	}
	return utils.ToColumn(rec), nil
}

func (r *columnRepo) ListByDataset(ctx context.Context, datasetID uuid.UUID) ([]*entity.Column, error) {
	recs, err := r.ent.DatasetColumn.
		Query().
		Where(datasetcolumn.DatasetID(datasetID)).
		Order(datasetcolumn.ByPosition()).
		All(ctx)
	if err != nil {
		r.log.Error("column list failed", "dataset_id", datasetID, "err", err)
		return nil, err
	}

	result := make([]*entity.Column, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToColumn(rec)
	}
	return result, nil
}

func (r *columnRepo) SetTypes(ctx context.Context, columnID uuid.UUID, inferred, current constants.DataType) error {
	err := r.ent.DatasetColumn.
		UpdateOneID(columnID).
		SetInferredType(string(inferred)).
		SetCurrentType(string(current)).
		Exec(ctx)
	if err != nil {
		r.log.Error("column type update failed", "column_id", columnID, "err", err)
		return fmt.Errorf("%w: updating column types: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *columnRepo) SetCurrentType(ctx context.Context, columnID uuid.UUID, current constants.DataType) error {
	err := r.ent.DatasetColumn.
		UpdateOneID(columnID).
		SetCurrentType(string(current)).
		Exec(ctx)
	if err != nil {
		r.log.Error("column type update failed", "column_id", columnID, "err", err)
		return fmt.Errorf("%w: updating column type: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *columnRepo) Rename(ctx context.Context, columnID uuid.UUID, name string) (*entity.Column, error) {
	col, err := r.GetByID(ctx, columnID)
	if err != nil {
		return nil, err
	}

	// Names stay unique within the dataset; original_name is untouched.
	taken, err := r.ent.DatasetColumn.
		Query().
		Where(
			datasetcolumn.DatasetID(col.DatasetID),
			datasetcolumn.Name(name),
			datasetcolumn.IDNEQ(columnID),
		).
		Exist(ctx)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: column name %q already in use", common.ErrInvalidInput, name)
	}

	rec, err := r.ent.DatasetColumn.
		UpdateOneID(columnID).
		SetName(name).
		Save(ctx)
	if err != nil {
		r.log.Error("column rename failed", "column_id", columnID, "err", err)
		return nil, fmt.Errorf("%w: renaming column: %v", common.ErrPersistence, err)
	}
	r.log.Info("column renamed", "column_id", columnID, "name", name)
	return utils.ToColumn(rec), nil
}
