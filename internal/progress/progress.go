// Package progress tracks fine-grained progress of processing jobs, keyed
// by job ID. Reporting is one-way and non-blocking: the worker emits events
// and never waits on the sink.
package progress

import (
	"context"

	"github.com/google/uuid"
)

// Update is one progress event for a running job.
type Update struct {
	Stage         string  `json:"stage"`
	ProcessedRows int64   `json:"processed_rows"`
	TotalRows     int64   `json:"total_rows"`
	Percent       float64 `json:"progress"`
}

// Sink stores the most recent progress update per job, retrievable later
// by the same ID. Forget releases a job's entry once its terminal status
// has been persisted, so the job record becomes the source of truth.
type Sink interface {
	Report(ctx context.Context, jobID uuid.UUID, update Update)
	Get(ctx context.Context, jobID uuid.UUID) (Update, bool)
	Forget(ctx context.Context, jobID uuid.UUID)
}
