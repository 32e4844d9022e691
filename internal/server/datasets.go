package server

import (
	"context"
	"log/slog"

	datasetspb "github.com/data-alchemy/backend/gen/proto/datasets/v1"
	"github.com/data-alchemy/backend/internal/services/datasets"
	"github.com/data-alchemy/backend/internal/utils"
)

type DatasetServer struct {
	datasetspb.UnimplementedDatasetsServiceServer
	svc    *datasets.Service
	logger *slog.Logger
}

func NewDatasetServer(svc *datasets.Service, logger *slog.Logger) *DatasetServer {
	return &DatasetServer{
		svc:    svc,
		logger: logger,
	}
}

// UploadDataset registers a source file and queues the ingestion job.
func (s *DatasetServer) UploadDataset(ctx context.Context, req *datasetspb.UploadDatasetRequest) (*datasetspb.UploadDatasetResponse, error) {
	result, err := s.svc.CreateDataset(ctx, datasets.CreateDatasetRequest{
		Name: req.GetName(),
		Path: req.GetPath(),
	})
	if err != nil {
		return nil, err
	}

	return &datasetspb.UploadDatasetResponse{
		Dataset: utils.ToPBDatasetFromEntity(result.Dataset),
		Job:     utils.ToPBJobFromEntity(result.Job),
	}, nil
}

// GetDataset returns dataset metadata, columns, and one page of rows.
func (s *DatasetServer) GetDataset(ctx context.Context, req *datasetspb.GetDatasetRequest) (*datasetspb.GetDatasetResponse, error) {
	page, err := s.svc.GetDataset(ctx, datasets.GetDatasetRequest{
		DatasetID: req.GetDatasetId(),
		Page:      int(req.GetPage()),
		PageSize:  int(req.GetPageSize()),
	})
	if err != nil {
		return nil, err
	}

	columns := make([]*datasetspb.Column, 0, len(page.Columns))
	for _, c := range page.Columns {
		columns = append(columns, utils.ToPBColumnFromEntity(c))
	}

	rows := make([]*datasetspb.Row, 0, len(page.Rows))
	for _, r := range page.Rows {
		values := make(map[string]string, len(page.Columns))
		for columnID, v := range page.Values[r.ID] {
			values[columnID.String()] = v
		}
		rows = append(rows, &datasetspb.Row{
			RowIndex: r.RowIndex,
			Values:   values,
		})
	}

	return &datasetspb.GetDatasetResponse{
		Dataset:   utils.ToPBDatasetFromEntity(page.Dataset),
		Columns:   columns,
		Rows:      rows,
		TotalRows: int64(page.TotalRows),
	}, nil
}

func (s *DatasetServer) ListDatasets(ctx context.Context, req *datasetspb.ListDatasetsRequest) (*datasetspb.ListDatasetsResponse, error) {
	list, total, err := s.svc.ListDatasets(ctx, int(req.GetPage()), int(req.GetPageSize()))
	if err != nil {
		return nil, err
	}

	out := make([]*datasetspb.Dataset, 0, len(list))
	for _, d := range list {
		out = append(out, utils.ToPBDatasetFromEntity(d))
	}
	return &datasetspb.ListDatasetsResponse{Datasets: out, Total: int64(total)}, nil
}

// GetJobStatus returns the job record plus live progress while running.
func (s *DatasetServer) GetJobStatus(ctx context.Context, req *datasetspb.GetJobStatusRequest) (*datasetspb.GetJobStatusResponse, error) {
	status, err := s.svc.GetJobStatus(ctx, req.GetJobId())
	if err != nil {
		return nil, err
	}

	resp := &datasetspb.GetJobStatusResponse{
		Job: utils.ToPBJobFromEntity(status.Job),
	}
	if status.Progress != nil {
		resp.Progress = &datasetspb.JobProgress{
			Stage:         status.Progress.Stage,
			ProcessedRows: status.Progress.ProcessedRows,
			TotalRows:     status.Progress.TotalRows,
			Percent:       status.Progress.Percent,
		}
	}
	return resp, nil
}

func (s *DatasetServer) DeleteDataset(ctx context.Context, req *datasetspb.DeleteDatasetRequest) (*datasetspb.DeleteDatasetResponse, error) {
	if err := s.svc.DeleteDataset(ctx, req.GetDatasetId()); err != nil {
		return nil, err
	}
	return &datasetspb.DeleteDatasetResponse{}, nil
}

// ExportDataset queues an export of the dataset's current values.
func (s *DatasetServer) ExportDataset(ctx context.Context, req *datasetspb.ExportDatasetRequest) (*datasetspb.ExportDatasetResponse, error) {
	job, err := s.svc.ExportDataset(ctx, req.GetDatasetId(), req.GetFormat())
	if err != nil {
		return nil, err
	}
	return &datasetspb.ExportDatasetResponse{Job: utils.ToPBJobFromEntity(job)}, nil
}
