// Package jobs executes queued processing jobs: ingestion with type
// inference, column conversion, and dataset export. The runner owns the
// job lifecycle, moving each job from RUNNING to COMPLETED or FAILED and
// publishing progress along the way.
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"log/slog"

	"github.com/google/uuid"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/async"
	"github.com/data-alchemy/backend/internal/common"
	"github.com/data-alchemy/backend/internal/core"
	"github.com/data-alchemy/backend/internal/core/convert"
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/progress"
	"github.com/data-alchemy/backend/internal/reader"
)

// Progress stage labels for conversion and export jobs. Ingestion stages
// come from the processor.
const (
	StageConverting = "Converting column values"
	StageExporting  = "Exporting dataset"
)

// DatasetStore is the slice of dataset persistence the runner needs.
type DatasetStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Dataset, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.DatasetStatus) error
}

// ColumnStore resolves conversion targets and commits the type change.
type ColumnStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Column, error)
	SetCurrentType(ctx context.Context, id uuid.UUID, current constants.DataType) error
}

// CellStore loads a column's stored cells in row order.
type CellStore interface {
	CellsForColumn(ctx context.Context, columnID uuid.UUID) ([]convert.Cell, error)
}

// JobStore records job lifecycle transitions.
type JobStore interface {
	MarkRunning(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, result []byte) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
}

// Exporter writes a dataset snapshot to a file and returns its path.
type Exporter interface {
	Export(ctx context.Context, dataset *entity.Dataset, format constants.FileType) (string, error)
}

// Runner executes jobs pulled off the queue.
type Runner struct {
	logger    *slog.Logger
	jobs      JobStore
	datasets  DatasetStore
	columns   ColumnStore
	cells     CellStore
	processor *core.Processor
	converter *convert.Converter
	exporter  Exporter
	sink      progress.Sink
}

func NewRunner(
	logger *slog.Logger,
	jobStore JobStore,
	datasets DatasetStore,
	columns ColumnStore,
	cells CellStore,
	processor *core.Processor,
	converter *convert.Converter,
	exporter Exporter,
	sink progress.Sink,
) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		logger:    logger,
		jobs:      jobStore,
		datasets:  datasets,
		columns:   columns,
		cells:     cells,
		processor: processor,
		converter: converter,
		exporter:  exporter,
		sink:      sink,
	}
}

// Execute runs one job end to end. The returned error mirrors what is
// recorded on the job record; callers only log it.
func (r *Runner) Execute(ctx context.Context, job async.Job) error {
	ctx = common.WithJobID(ctx, job.ID.String())
	if err := r.jobs.MarkRunning(ctx, job.ID); err != nil {
		return fmt.Errorf("marking job running: %w", err)
	}

	var result any
	var err error
	switch job.Type {
	case constants.JobTypeInference:
		result, err = r.runInference(ctx, job)
	case constants.JobTypeConversion:
		result, err = r.runConversion(ctx, job)
	case constants.JobTypeExport:
		result, err = r.runExport(ctx, job)
	default:
		err = fmt.Errorf("%w: unknown job type %q", common.ErrInvalidInput, job.Type)
	}

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", common.ErrTimeout, err)
		}
		r.fail(ctx, job, err)
		return err
	}
	return r.complete(ctx, job, result)
}

func (r *Runner) runInference(ctx context.Context, job async.Job) (any, error) {
	dataset, err := r.datasets.GetByID(ctx, job.DatasetID)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	table, err := reader.Open(dataset.FilePath, dataset.FileType)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := table.Close(); cerr != nil {
			r.logger.Warn("closing source file", "dataset_id", dataset.ID, "error", cerr)
		}
	}()

	return r.processor.Run(ctx, dataset, table, func(u progress.Update) {
		r.sink.Report(ctx, job.ID, u)
	})
}

func (r *Runner) runConversion(ctx context.Context, job async.Job) (any, error) {
	if job.ColumnID == nil || job.TargetType == nil {
		return nil, fmt.Errorf("%w: conversion job missing column or target type", common.ErrInvalidInput)
	}
	column, err := r.columns.GetByID(ctx, *job.ColumnID)
	if err != nil {
		return nil, fmt.Errorf("loading column: %w", err)
	}

	cells, err := r.cells.CellsForColumn(ctx, column.ID)
	if err != nil {
		return nil, fmt.Errorf("loading column cells: %w", err)
	}
	total := int64(len(cells))

	err = r.converter.Run(ctx, column.ID, *job.TargetType, cells, func(percent float64) {
		r.sink.Report(ctx, job.ID, progress.Update{
			Stage:         StageConverting,
			ProcessedRows: int64(math.Round(percent / 100 * float64(total))),
			TotalRows:     total,
			Percent:       percent,
		})
	})
	if err != nil {
		return nil, err
	}

	if err := r.columns.SetCurrentType(ctx, column.ID, *job.TargetType); err != nil {
		return nil, fmt.Errorf("committing column type: %w", err)
	}

	return &conversionResult{
		ColumnID:      column.ID,
		TargetType:    *job.TargetType,
		ConvertedRows: len(cells),
	}, nil
}

func (r *Runner) runExport(ctx context.Context, job async.Job) (any, error) {
	dataset, err := r.datasets.GetByID(ctx, job.DatasetID)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	format := constants.FileTypeCSV
	if job.Format != nil {
		format = *job.Format
	}
	r.sink.Report(ctx, job.ID, progress.Update{Stage: StageExporting})

	path, err := r.exporter.Export(ctx, dataset, format)
	if err != nil {
		return nil, err
	}
	r.sink.Report(ctx, job.ID, progress.Update{Stage: StageExporting, Percent: 100})

	return &exportResult{FilePath: path, Format: string(format)}, nil
}

func (r *Runner) fail(ctx context.Context, job async.Job, cause error) {
	// Bookkeeping must land even when the job context is already dead.
	ctx = context.WithoutCancel(ctx)
	r.logger.Error("job execution failed", "job_id", job.ID, "job_type", job.Type, "error", cause)
	if err := r.jobs.MarkFailed(ctx, job.ID, cause.Error()); err != nil {
		r.logger.Error("marking job failed", "job_id", job.ID, "error", err)
	}
	// A failed ingestion leaves the dataset unusable.
	if job.Type == constants.JobTypeInference {
		if err := r.datasets.SetStatus(ctx, job.DatasetID, constants.DatasetStatusFailed); err != nil {
			r.logger.Error("marking dataset failed", "dataset_id", job.DatasetID, "error", err)
		}
	}
	r.sink.Forget(ctx, job.ID)
}

func (r *Runner) complete(ctx context.Context, job async.Job, result any) error {
	payload, err := json.Marshal(result)
	if err != nil {
		r.fail(ctx, job, fmt.Errorf("encoding result: %w", err))
		return err
	}
	if schema, ok := resultSchemas[job.Type]; ok {
		if err := ValidateJSONAgainstSchema(schema, payload); err != nil {
			r.fail(ctx, job, fmt.Errorf("result validation: %w", err))
			return err
		}
	}
	if err := r.jobs.MarkCompleted(ctx, job.ID, payload); err != nil {
		return fmt.Errorf("marking job completed: %w", err)
	}
	r.sink.Forget(ctx, job.ID)
	return nil
}

type conversionResult struct {
	ColumnID      uuid.UUID          `json:"column_id"`
	TargetType    constants.DataType `json:"target_type"`
	ConvertedRows int                `json:"converted_rows"`
}

type exportResult struct {
	FilePath string `json:"file_path"`
	Format   string `json:"format"`
}
