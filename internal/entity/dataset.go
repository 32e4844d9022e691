package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/data-alchemy/backend/constants"
)

// Dataset represents an uploaded dataset for data transfer between layers.
type Dataset struct {
	ID           uuid.UUID               `json:"id"`
	Name         string                  `json:"name"`
	FilePath     string                  `json:"file_path"`
	FileType     constants.FileType      `json:"file_type"`
	Status       constants.DatasetStatus `json:"status"`
	RowsCount    *int64                  `json:"rows_count,omitempty"`
	ColumnsCount *int                    `json:"columns_count,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}
