package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/data-alchemy/backend/constants"
)

// ProcessingJob represents an asynchronous unit of work for data transfer
// between layers. A dataset accumulates one job per upload and one per
// conversion attempt; the latest job is the most-recently-created.
type ProcessingJob struct {
	ID           uuid.UUID           `json:"id"`
	DatasetID    uuid.UUID           `json:"dataset_id"`
	ColumnID     *uuid.UUID          `json:"column_id,omitempty"`
	JobType      constants.JobType   `json:"job_type"`
	Status       constants.JobStatus `json:"status"`
	TargetType   *string             `json:"target_type,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	Result       json.RawMessage     `json:"result,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	StartedAt    *time.Time          `json:"started_at,omitempty"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
}
