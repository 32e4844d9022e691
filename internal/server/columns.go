package server

import (
	"context"
	"log/slog"

	datasetspb "github.com/data-alchemy/backend/gen/proto/datasets/v1"
	"github.com/data-alchemy/backend/internal/services/columns"
	"github.com/data-alchemy/backend/internal/utils"
)

type ColumnServer struct {
	datasetspb.UnimplementedColumnsServiceServer
	svc    *columns.Service
	logger *slog.Logger
}

func NewColumnServer(svc *columns.Service, logger *slog.Logger) *ColumnServer {
	return &ColumnServer{
		svc:    svc,
		logger: logger,
	}
}

// ValidateConversion checks feasibility without modifying anything.
func (s *ColumnServer) ValidateConversion(ctx context.Context, req *datasetspb.ValidateConversionRequest) (*datasetspb.ValidateConversionResponse, error) {
	result, err := s.svc.ValidateConversion(ctx, req.GetColumnId(), req.GetTargetType())
	if err != nil {
		return nil, err
	}
	return &datasetspb.ValidateConversionResponse{
		Feasible: result.Feasible,
		Reason:   result.Reason,
	}, nil
}

// ConvertColumnType validates and queues the conversion job.
func (s *ColumnServer) ConvertColumnType(ctx context.Context, req *datasetspb.ConvertColumnTypeRequest) (*datasetspb.ConvertColumnTypeResponse, error) {
	job, err := s.svc.StartConversion(ctx, req.GetColumnId(), req.GetTargetType())
	if err != nil {
		return nil, err
	}
	return &datasetspb.ConvertColumnTypeResponse{Job: utils.ToPBJobFromEntity(job)}, nil
}

func (s *ColumnServer) RenameColumn(ctx context.Context, req *datasetspb.RenameColumnRequest) (*datasetspb.RenameColumnResponse, error) {
	column, err := s.svc.RenameColumn(ctx, req.GetColumnId(), req.GetName())
	if err != nil {
		return nil, err
	}
	return &datasetspb.RenameColumnResponse{Column: utils.ToPBColumnFromEntity(column)}, nil
}
