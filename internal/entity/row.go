package entity

import (
	"time"

	"github.com/google/uuid"
)

// Row represents a dataset row for data transfer between layers.
type Row struct {
	ID        uuid.UUID `json:"id"`
	DatasetID uuid.UUID `json:"dataset_id"`
	RowIndex  int64     `json:"row_index"`
	CreatedAt time.Time `json:"created_at"`
}

// RowValue represents one cell. Value is the canonical string rendering
// under the owning column's type; empty string means null.
type RowValue struct {
	ID       uuid.UUID `json:"id"`
	RowID    uuid.UUID `json:"row_id"`
	ColumnID uuid.UUID `json:"column_id"`
	Value    string    `json:"value"`
}
