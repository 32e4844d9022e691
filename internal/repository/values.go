package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/data-alchemy/backend/gen/ent"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
	"github.com/data-alchemy/backend/internal/common"
	"github.com/data-alchemy/backend/internal/core/convert"
	"github.com/data-alchemy/backend/internal/entity"
)

type ValueRepository interface {
	CreateValues(ctx context.Context, values []entity.RowValue) error
	CellsForColumn(ctx context.Context, columnID uuid.UUID) ([]convert.Cell, error)
	UpdateValues(ctx context.Context, updates []convert.ValueUpdate) error
}

type valueRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewValueRepository(entc *ent.Client, log *slog.Logger) ValueRepository {
	return &valueRepo{ent: entc, log: log}
}

func (r *valueRepo) CreateValues(ctx context.Context, values []entity.RowValue) error {
	for start := 0; start < len(values); start += createBatchSize {
		end := start + createBatchSize
		if end > len(values) {
			end = len(values)
		}

		builders := make([]*ent.RowValueCreate, end-start)
		for i, v := range values[start:end] {
			builders[i] = r.ent.RowValue.
				Create().
				SetRowID(v.RowID).
				SetColumnID(v.ColumnID).
				SetValue(v.Value)
		}
		if err := r.ent.RowValue.CreateBulk(builders...).Exec(ctx); err != nil {
			r.log.Error("value create failed", "count", end-start, "err", err)
			return fmt.Errorf("%w: creating values: %v", common.ErrPersistence, err)
		}
	}
	return nil
}

func (r *valueRepo) CellsForColumn(ctx context.Context, columnID uuid.UUID) ([]convert.Cell, error) {
	recs, err := r.ent.RowValue.
		Query().
		Where(rowvalue.ColumnID(columnID)).
		WithRow().
		All(ctx)
	if err != nil {
		r.log.Error("cell load failed", "column_id", columnID, "err", err)
		return nil, err
	}

	cells := make([]convert.Cell, len(recs))
	for i, rec := range recs {
		cells[i] = convert.Cell{ID: rec.ID, Value: rec.Value}
		if rec.Edges.Row != nil {
			cells[i].RowIndex = rec.Edges.Row.RowIndex
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].RowIndex < cells[j].RowIndex })
	return cells, nil
}

// UpdateValues commits one batch of rewritten cells in a single
// transaction, so a failed batch leaves no partial writes.
func (r *valueRepo) UpdateValues(ctx context.Context, updates []convert.ValueUpdate) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return fmt.Errorf("%w: starting transaction: %v", common.ErrPersistence, err)
	}
	for _, u := range updates {
		if err := tx.RowValue.UpdateOneID(u.ID).SetValue(u.Value).Exec(ctx); err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				r.log.Error("rollback failed", "err", rerr)
			}
			r.log.Error("value update failed", "value_id", u.ID, "err", err)
			return fmt.Errorf("%w: updating value %s: %v", common.ErrPersistence, u.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing value updates: %v", common.ErrPersistence, err)
	}
	return nil
}
