package entity

import (
	"github.com/google/uuid"

	"github.com/data-alchemy/backend/constants"
)

// Column represents a dataset column for data transfer between layers.
// Position is the 0-based header order from the source file and never
// changes; InferredType always reflects the streaming-pass classification
// while CurrentType tracks the user-facing type after conversions.
type Column struct {
	ID           uuid.UUID          `json:"id"`
	DatasetID    uuid.UUID          `json:"dataset_id"`
	Name         string             `json:"name"`
	OriginalName string             `json:"original_name"`
	Position     int                `json:"position"`
	InferredType constants.DataType `json:"inferred_type"`
	CurrentType  constants.DataType `json:"current_type"`
}
