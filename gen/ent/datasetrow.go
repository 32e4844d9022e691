// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/google/uuid"
)

// DatasetRow is the model entity for the DatasetRow schema.
type DatasetRow struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DatasetID holds the value of the "dataset_id" field.
	DatasetID uuid.UUID `json:"dataset_id,omitempty"`
	// RowIndex holds the value of the "row_index" field.
	RowIndex int64 `json:"row_index,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DatasetRowQuery when eager-loading is set.
	Edges        DatasetRowEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DatasetRowEdges holds the relations/edges for other nodes in the graph.
type DatasetRowEdges struct {
	// Dataset holds the value of the dataset edge.
	Dataset *Dataset `json:"dataset,omitempty"`
	// Values holds the value of the values edge.
	Values []*RowValue `json:"values,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DatasetOrErr returns the Dataset value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DatasetRowEdges) DatasetOrErr() (*Dataset, error) {
	if e.Dataset != nil {
		return e.Dataset, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: dataset.Label}
	}
	return nil, &NotLoadedError{edge: "dataset"}
}

// ValuesOrErr returns the Values value or an error if the edge
// was not loaded in eager-loading.
func (e DatasetRowEdges) ValuesOrErr() ([]*RowValue, error) {
	if e.loadedTypes[1] {
		return e.Values, nil
	}
	return nil, &NotLoadedError{edge: "values"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DatasetRow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case datasetrow.FieldRowIndex:
			values[i] = new(sql.NullInt64)
		case datasetrow.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case datasetrow.FieldID, datasetrow.FieldDatasetID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DatasetRow fields.
func (_m *DatasetRow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case datasetrow.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case datasetrow.FieldDatasetID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_id", values[i])
			} else if value != nil {
				_m.DatasetID = *value
			}
		case datasetrow.FieldRowIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_index", values[i])
			} else if value.Valid {
				_m.RowIndex = value.Int64
			}
		case datasetrow.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DatasetRow.
// This includes values selected through modifiers, order, etc.
func (_m *DatasetRow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDataset queries the "dataset" edge of the DatasetRow entity.
func (_m *DatasetRow) QueryDataset() *DatasetQuery {
	return NewDatasetRowClient(_m.config).QueryDataset(_m)
}

// QueryValues queries the "values" edge of the DatasetRow entity.
func (_m *DatasetRow) QueryValues() *RowValueQuery {
	return NewDatasetRowClient(_m.config).QueryValues(_m)
}

// Update returns a builder for updating this DatasetRow.
// Note that you need to call DatasetRow.Unwrap() before calling this method if this DatasetRow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DatasetRow) Update() *DatasetRowUpdateOne {
	return NewDatasetRowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DatasetRow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DatasetRow) Unwrap() *DatasetRow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DatasetRow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DatasetRow) String() string {
	var builder strings.Builder
	builder.WriteString("DatasetRow(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("dataset_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DatasetID))
	builder.WriteString(", ")
	builder.WriteString("row_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowIndex))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DatasetRows is a parsable slice of DatasetRow.
type DatasetRows []*DatasetRow
