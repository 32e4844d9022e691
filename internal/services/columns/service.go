// Package columns handles column-level business logic: conversion
// feasibility checks, queued type conversions, and renames.
package columns

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/async"
	"github.com/data-alchemy/backend/internal/common"
	"github.com/data-alchemy/backend/internal/core/convert"
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/repository"
)

const maxColumnNameLength = 100

// Service handles column business logic.
type Service struct {
	columns repository.ColumnRepository
	values  repository.ValueRepository
	jobs    repository.JobRepository
	queue   async.Queue
	logger  *slog.Logger
}

func NewService(
	columns repository.ColumnRepository,
	values repository.ValueRepository,
	jobs repository.JobRepository,
	queue async.Queue,
	logger *slog.Logger,
) *Service {
	return &Service{
		columns: columns,
		values:  values,
		jobs:    jobs,
		queue:   queue,
		logger:  logger,
	}
}

// ValidationResult reports whether a conversion can run, and if not, why.
type ValidationResult struct {
	Feasible bool
	Reason   string
}

// ValidateConversion checks whether every stored value of the column can
// be converted to the target type. Read-only; nothing is modified.
func (s *Service) ValidateConversion(ctx context.Context, columnID, targetType string) (*ValidationResult, error) {
	column, target, err := s.resolve(ctx, columnID, targetType)
	if err != nil {
		return nil, err
	}

	feasible, reason, err := s.check(ctx, column, target)
	if err != nil {
		return nil, err
	}
	return &ValidationResult{Feasible: feasible, Reason: reason}, nil
}

// StartConversion validates feasibility and, if the column qualifies,
// queues the conversion job. Infeasible requests are refused outright so
// no job record is created for them.
func (s *Service) StartConversion(ctx context.Context, columnID, targetType string) (*entity.ProcessingJob, error) {
	column, target, err := s.resolve(ctx, columnID, targetType)
	if err != nil {
		return nil, err
	}

	feasible, reason, err := s.check(ctx, column, target)
	if err != nil {
		return nil, err
	}
	if !feasible {
		s.logger.Info("conversion refused",
			"column_id", column.ID, "target_type", target, "reason", reason)
		return nil, common.GRPCError(fmt.Errorf("%w: %s", common.ErrInfeasibleConversion, reason))
	}

	active, err := s.jobs.HasActiveJob(ctx, column.DatasetID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "checking jobs: %v", err)
	}
	if active {
		return nil, common.GRPCError(fmt.Errorf("dataset %s: %w", column.DatasetID, common.ErrJobActive))
	}

	job, err := s.jobs.Create(ctx, &repository.CreateJobRequest{
		DatasetID:  column.DatasetID,
		JobType:    constants.JobTypeConversion,
		ColumnID:   &column.ID,
		TargetType: &target,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "creating job: %v", err)
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		ID:          job.ID,
		Type:        constants.JobTypeConversion,
		DatasetID:   column.DatasetID,
		ColumnID:    &column.ID,
		TargetType:  &target,
		SubmittedAt: time.Now(),
	}); err != nil {
		return nil, status.Errorf(codes.Internal, "enqueuing job: %v", err)
	}

	s.logger.Info("conversion queued",
		"column_id", column.ID, "job_id", job.ID, "from", column.CurrentType, "to", target)
	return job, nil
}

// RenameColumn changes the display name. The original header name stays
// on record.
func (s *Service) RenameColumn(ctx context.Context, columnID, name string) (*entity.Column, error) {
	columnID = strings.TrimSpace(columnID)
	name = strings.TrimSpace(name)
	validator := common.NewValidator().
		Field("column_id", columnID, common.Required, common.UUID).
		Field("name", name, common.Required, func(f string, v interface{}) *common.ValidationError {
			return common.MaxLength(f, v, maxColumnNameLength)
		})
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	id, _ := uuid.Parse(columnID)

	column, err := s.columns.Rename(ctx, id, name)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "column not found")
		}
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "renaming column: %v", err)
	}
	return column, nil
}

// resolve validates, parses, and loads the column plus the canonical
// target type.
func (s *Service) resolve(ctx context.Context, columnID, targetType string) (*entity.Column, constants.DataType, error) {
	columnID = strings.TrimSpace(columnID)
	validator := common.NewValidator().
		Field("column_id", columnID, common.Required, common.UUID).
		Field("target_type", targetType, common.Required, common.DataTypeName)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, "", err
	}

	// Both parses are guaranteed by the rules above.
	id, _ := uuid.Parse(columnID)
	target, _ := constants.ParseDataType(targetType)

	column, err := s.columns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", status.Error(codes.NotFound, "column not found")
		}
		return nil, "", status.Errorf(codes.Internal, "loading column: %v", err)
	}
	return column, target, nil
}

func (s *Service) check(ctx context.Context, column *entity.Column, target constants.DataType) (bool, string, error) {
	cells, err := s.values.CellsForColumn(ctx, column.ID)
	if err != nil {
		return false, "", status.Errorf(codes.Internal, "loading column cells: %v", err)
	}
	values := make([]string, len(cells))
	for i, cell := range cells {
		values[i] = cell.Value
	}
	feasible, reason := convert.Validate(values, target)
	return feasible, reason, nil
}
