package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/data-alchemy/backend/gen/ent"
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/data-alchemy/backend/internal/common"
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/utils"
)

// createBatchSize caps how many records go into one INSERT.
const createBatchSize = 1000

// RowPage is one page of rows with their cell values keyed by row then
// column ID.
type RowPage struct {
	Rows   []*entity.Row
	Values map[uuid.UUID]map[uuid.UUID]string
	Total  int
}

type RowRepository interface {
	CreateRows(ctx context.Context, datasetID uuid.UUID, startIndex int64, count int) ([]entity.Row, error)
	Page(ctx context.Context, datasetID uuid.UUID, offset, limit int) (*RowPage, error)
}

type rowRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewRowRepository(entc *ent.Client, log *slog.Logger) RowRepository {
	return &rowRepo{ent: entc, log: log}
}

func (r *rowRepo) CreateRows(ctx context.Context, datasetID uuid.UUID, startIndex int64, count int) ([]entity.Row, error) {
	result := make([]entity.Row, 0, count)
	for start := 0; start < count; start += createBatchSize {
		end := start + createBatchSize
		if end > count {
			end = count
		}

		builders := make([]*ent.DatasetRowCreate, end-start)
		for i := range builders {
			builders[i] = r.ent.DatasetRow.
				Create().
				SetDatasetID(datasetID).
				SetRowIndex(startIndex + int64(start+i))
		}
		recs, err := r.ent.DatasetRow.CreateBulk(builders...).Save(ctx)
		if err != nil {
			r.log.Error("row create failed", "dataset_id", datasetID, "start_index", startIndex, "err", err)
			return nil, fmt.Errorf("%w: creating rows: %v", common.ErrPersistence, err)
		}
		for _, rec := range recs {
			result = append(result, *utils.ToRow(rec))
		}
	}
	return result, nil
}

func (r *rowRepo) Page(ctx context.Context, datasetID uuid.UUID, offset, limit int) (*RowPage, error) {
	q := r.ent.DatasetRow.Query().Where(datasetrow.DatasetID(datasetID))
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := q.
		Order(datasetrow.ByRowIndex()).
		Offset(offset).
		Limit(limit).
		WithValues().
		All(ctx)
	if err != nil {
		r.log.Error("row page failed", "dataset_id", datasetID, "offset", offset, "err", err)
		return nil, err
	}

	page := &RowPage{
		Rows:   make([]*entity.Row, len(recs)),
		Values: make(map[uuid.UUID]map[uuid.UUID]string, len(recs)),
		Total:  total,
	}
	for i, rec := range recs {
		page.Rows[i] = utils.ToRow(rec)
		cells := make(map[uuid.UUID]string, len(rec.Edges.Values))
		for _, v := range rec.Edges.Values {
			cells[v.ColumnID] = v.Value
		}
		page.Values[rec.ID] = cells
	}
	return page, nil
}
