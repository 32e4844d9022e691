package async

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/data-alchemy/backend/constants"
)

// Job is one queued unit of work against a dataset. ColumnID and
// TargetType are set only for conversion jobs, Format only for exports.
type Job struct {
	ID          uuid.UUID
	Type        constants.JobType
	DatasetID   uuid.UUID
	ColumnID    *uuid.UUID
	TargetType  *constants.DataType
	Format      *constants.FileType
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
