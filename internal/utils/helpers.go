package utils

import (
	"time"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/gen/ent"
	datasetspb "github.com/data-alchemy/backend/gen/proto/datasets/v1"
	"github.com/data-alchemy/backend/internal/entity"
)

func ToDataset(e *ent.Dataset) *entity.Dataset {
	return &entity.Dataset{
		ID:           e.ID,
		Name:         e.Name,
		FilePath:     e.FilePath,
		FileType:     constants.FileType(e.FileType),
		Status:       constants.DatasetStatus(e.Status),
		RowsCount:    e.RowsCount,
		ColumnsCount: e.ColumnsCount,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToColumn(e *ent.DatasetColumn) *entity.Column {
	return &entity.Column{
		ID:           e.ID,
		DatasetID:    e.DatasetID,
		Name:         e.Name,
		OriginalName: e.OriginalName,
		Position:     e.Position,
		InferredType: constants.DataType(e.InferredType),
		CurrentType:  constants.DataType(e.CurrentType),
	}
}

func ToRow(e *ent.DatasetRow) *entity.Row {
	return &entity.Row{
		ID:        e.ID,
		DatasetID: e.DatasetID,
		RowIndex:  e.RowIndex,
		CreatedAt: e.CreatedAt,
	}
}

func ToProcessingJob(e *ent.ProcessingJob) *entity.ProcessingJob {
	return &entity.ProcessingJob{
		ID:           e.ID,
		DatasetID:    e.DatasetID,
		ColumnID:     e.ColumnID,
		JobType:      constants.JobType(e.JobType),
		Status:       constants.JobStatus(e.Status),
		TargetType:   e.TargetType,
		ErrorMessage: e.ErrorMessage,
		Result:       e.Result,
		CreatedAt:    e.CreatedAt,
		StartedAt:    e.StartedAt,
		CompletedAt:  e.CompletedAt,
	}
}

// FormatTime renders timestamps for API responses; nil-safe for optional
// fields.
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToPBDatasetFromEntity(d *entity.Dataset) *datasetspb.Dataset {
	pb := &datasetspb.Dataset{
		Id:        d.ID.String(),
		Name:      d.Name,
		FileType:  string(d.FileType),
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if d.RowsCount != nil {
		pb.RowsCount = *d.RowsCount
	}
	if d.ColumnsCount != nil {
		pb.ColumnsCount = int32(*d.ColumnsCount)
	}
	return pb
}

func ToPBColumnFromEntity(c *entity.Column) *datasetspb.Column {
	return &datasetspb.Column{
		Id:           c.ID.String(),
		DatasetId:    c.DatasetID.String(),
		Name:         c.Name,
		OriginalName: c.OriginalName,
		Position:     int32(c.Position),
		InferredType: string(c.InferredType),
		CurrentType:  string(c.CurrentType),
	}
}

func ToPBJobFromEntity(j *entity.ProcessingJob) *datasetspb.ProcessingJob {
	pb := &datasetspb.ProcessingJob{
		Id:        j.ID.String(),
		DatasetId: j.DatasetID.String(),
		JobType:   string(j.JobType),
		Status:    string(j.Status),
		CreatedAt: j.CreatedAt.UTC().Format(time.RFC3339),
	}
	if j.ColumnID != nil {
		pb.ColumnId = j.ColumnID.String()
	}
	if j.TargetType != nil {
		pb.TargetType = *j.TargetType
	}
	if j.ErrorMessage != nil {
		pb.ErrorMessage = *j.ErrorMessage
	}
	if len(j.Result) > 0 {
		pb.ResultJson = string(j.Result)
	}
	pb.StartedAt = FormatTime(j.StartedAt)
	pb.CompletedAt = FormatTime(j.CompletedAt)
	return pb
}
