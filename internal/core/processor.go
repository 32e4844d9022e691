// Package core drives the end-to-end walk over an uploaded dataset:
// column creation, chunked type inference, value persistence, and progress
// reporting.
package core

import (
	"context"
	"fmt"
	"math"

	"log/slog"

	"github.com/google/uuid"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/core/infer"
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/progress"
	"github.com/data-alchemy/backend/internal/reader"
)

// ChunkSize is the number of source rows ingested per chunk.
const ChunkSize = 10000

// Progress stage labels surfaced to status polling.
const (
	StageColumnData    = "Processing column data"
	StageChunkComplete = "Column processing complete"
)

// DatasetStore is the slice of dataset persistence the processor needs.
type DatasetStore interface {
	SetStatus(ctx context.Context, id uuid.UUID, status constants.DatasetStatus) error
	// Finalize writes the row/column counts exactly once, at the end of a
	// successful run, and marks the dataset completed.
	Finalize(ctx context.Context, id uuid.UUID, rowsCount int64, columnsCount int) error
}

// ColumnStore creates and retypes column metadata.
type ColumnStore interface {
	// CreateColumns creates one column per header name, in header order,
	// with position = header index and both types TEXT.
	CreateColumns(ctx context.Context, datasetID uuid.UUID, names []string) ([]entity.Column, error)
	SetTypes(ctx context.Context, columnID uuid.UUID, inferred, current constants.DataType) error
}

// RowStore bulk-creates row records for one chunk.
type RowStore interface {
	CreateRows(ctx context.Context, datasetID uuid.UUID, startIndex int64, count int) ([]entity.Row, error)
}

// ValueStore bulk-creates cell values for one (chunk, column) unit.
type ValueStore interface {
	CreateValues(ctx context.Context, values []entity.RowValue) error
}

// Result summarizes a completed ingestion run.
type Result struct {
	TotalRows    int64 `json:"total_rows"`
	TotalColumns int   `json:"total_columns"`
}

// ReportFunc receives progress events. Emission is one-way; the processor
// never waits on the sink.
type ReportFunc func(update progress.Update)

// Processor owns the chunked ingestion pass for one dataset at a time.
type Processor struct {
	logger    *slog.Logger
	datasets  DatasetStore
	columns   ColumnStore
	rows      RowStore
	values    ValueStore
	chunkSize int
}

func NewProcessor(
	logger *slog.Logger,
	datasets DatasetStore,
	columns ColumnStore,
	rows RowStore,
	values ValueStore,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		datasets:  datasets,
		columns:   columns,
		rows:      rows,
		values:    values,
		chunkSize: ChunkSize,
	}
}

// WithChunkSize overrides the chunk size. Intended for tests.
func (p *Processor) WithChunkSize(n int) *Processor {
	if n > 0 {
		p.chunkSize = n
	}
	return p
}

// Run ingests the dataset from the open table. Any error aborts the whole
// run; chunks committed before the failure are left in place, and the
// caller is responsible for marking the enclosing job failed.
func (p *Processor) Run(ctx context.Context, dataset *entity.Dataset, table reader.Table, report ReportFunc) (*Result, error) {
	if err := p.datasets.SetStatus(ctx, dataset.ID, constants.DatasetStatusProcessing); err != nil {
		return nil, fmt.Errorf("marking dataset processing: %w", err)
	}

	header := table.Header()
	columns, err := p.columns.CreateColumns(ctx, dataset.ID, header)
	if err != nil {
		return nil, fmt.Errorf("creating columns: %w", err)
	}
	totalRows := table.TotalRows()
	totalColumns := len(columns)
	p.logger.Info("processing started",
		"dataset_id", dataset.ID, "columns", totalColumns, "total_rows", totalRows)

	var start int64
	for {
		chunk, err := table.Next(p.chunkSize)
		if err != nil {
			return nil, fmt.Errorf("reading chunk at row %d: %w", start, err)
		}
		if len(chunk) == 0 {
			break
		}
		end := start + int64(len(chunk))

		created, err := p.rows.CreateRows(ctx, dataset.ID, start, len(chunk))
		if err != nil {
			return nil, fmt.Errorf("creating rows [%d,%d): %w", start, end, err)
		}

		for j, col := range columns {
			raw := columnSlice(chunk, j)
			canonical, resolved := infer.Chunk(raw, col.InferredType)

			if resolved != col.InferredType {
				// Last-chunk-wins: the latest chunk's classification
				// overwrites whatever earlier chunks decided.
				if err := p.columns.SetTypes(ctx, col.ID, resolved, resolved); err != nil {
					return nil, fmt.Errorf("updating column %q type: %w", col.Name, err)
				}
				p.logger.Debug("column reclassified",
					"dataset_id", dataset.ID, "column", col.Name,
					"from", string(col.InferredType), "to", string(resolved))
				columns[j].InferredType = resolved
				columns[j].CurrentType = resolved
			}

			values := make([]entity.RowValue, len(created))
			for i := range created {
				values[i] = entity.RowValue{
					RowID:    created[i].ID,
					ColumnID: col.ID,
					Value:    canonical[i],
				}
			}
			if err := p.values.CreateValues(ctx, values); err != nil {
				return nil, fmt.Errorf("storing values for column %q: %w", col.Name, err)
			}

			if report != nil {
				report(progress.Update{
					Stage:         StageColumnData,
					ProcessedRows: end,
					TotalRows:     totalRows,
					Percent:       chunkPercent(start, end, j, totalColumns, totalRows),
				})
			}
		}

		if report != nil {
			report(progress.Update{
				Stage:         StageChunkComplete,
				ProcessedRows: end,
				TotalRows:     totalRows,
				Percent:       round2(float64(end) / float64(totalRows) * 100),
			})
		}
		start = end
	}

	if err := p.datasets.Finalize(ctx, dataset.ID, start, totalColumns); err != nil {
		return nil, fmt.Errorf("finalizing dataset: %w", err)
	}
	p.logger.Info("processing completed", "dataset_id", dataset.ID, "rows", start, "columns", totalColumns)

	if start == 0 && report != nil {
		report(progress.Update{Stage: StageChunkComplete, TotalRows: 0, Percent: 100})
	}
	return &Result{TotalRows: start, TotalColumns: totalColumns}, nil
}

// columnSlice extracts one column's values from a chunk of rows.
func columnSlice(chunk [][]string, col int) []string {
	out := make([]string, len(chunk))
	for i, row := range chunk {
		out[i] = row[col]
	}
	return out
}

// chunkPercent computes overall progress after one (chunk, column) unit.
// Progress is accounted in row-units across columns so it is monotonically
// non-decreasing and reaches exactly 100 only after the last column of the
// last chunk.
func chunkPercent(start, end int64, col, totalColumns int, totalRows int64) float64 {
	if totalRows == 0 || totalColumns == 0 {
		return 100
	}
	units := float64(start)*float64(totalColumns) + float64(col+1)*float64(end-start)
	total := float64(totalRows) * float64(totalColumns)
	return round2(units / total * 100)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
