// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/data-alchemy/backend/gen/ent/datasetcolumn"
	"github.com/google/uuid"
)

// DatasetColumn is the model entity for the DatasetColumn schema.
type DatasetColumn struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DatasetID holds the value of the "dataset_id" field.
	DatasetID uuid.UUID `json:"dataset_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// OriginalName holds the value of the "original_name" field.
	OriginalName string `json:"original_name,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// InferredType holds the value of the "inferred_type" field.
	InferredType string `json:"inferred_type,omitempty"`
	// CurrentType holds the value of the "current_type" field.
	CurrentType string `json:"current_type,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DatasetColumnQuery when eager-loading is set.
	Edges        DatasetColumnEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DatasetColumnEdges holds the relations/edges for other nodes in the graph.
type DatasetColumnEdges struct {
	// Dataset holds the value of the dataset edge.
	Dataset *Dataset `json:"dataset,omitempty"`
	// RowValues holds the value of the row_values edge.
	RowValues []*RowValue `json:"row_values,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DatasetOrErr returns the Dataset value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DatasetColumnEdges) DatasetOrErr() (*Dataset, error) {
	if e.Dataset != nil {
		return e.Dataset, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: dataset.Label}
	}
	return nil, &NotLoadedError{edge: "dataset"}
}

// RowValuesOrErr returns the RowValues value or an error if the edge
// was not loaded in eager-loading.
func (e DatasetColumnEdges) RowValuesOrErr() ([]*RowValue, error) {
	if e.loadedTypes[1] {
		return e.RowValues, nil
	}
	return nil, &NotLoadedError{edge: "row_values"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DatasetColumn) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case datasetcolumn.FieldPosition:
			values[i] = new(sql.NullInt64)
		case datasetcolumn.FieldName, datasetcolumn.FieldOriginalName, datasetcolumn.FieldInferredType, datasetcolumn.FieldCurrentType:
			values[i] = new(sql.NullString)
		case datasetcolumn.FieldID, datasetcolumn.FieldDatasetID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DatasetColumn fields.
func (_m *DatasetColumn) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case datasetcolumn.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case datasetcolumn.FieldDatasetID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_id", values[i])
			} else if value != nil {
				_m.DatasetID = *value
			}
		case datasetcolumn.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case datasetcolumn.FieldOriginalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_name", values[i])
			} else if value.Valid {
				_m.OriginalName = value.String
			}
		case datasetcolumn.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case datasetcolumn.FieldInferredType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field inferred_type", values[i])
			} else if value.Valid {
				_m.InferredType = value.String
			}
		case datasetcolumn.FieldCurrentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_type", values[i])
			} else if value.Valid {
				_m.CurrentType = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DatasetColumn.
// This includes values selected through modifiers, order, etc.
func (_m *DatasetColumn) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDataset queries the "dataset" edge of the DatasetColumn entity.
func (_m *DatasetColumn) QueryDataset() *DatasetQuery {
	return NewDatasetColumnClient(_m.config).QueryDataset(_m)
}

// QueryRowValues queries the "row_values" edge of the DatasetColumn entity.
func (_m *DatasetColumn) QueryRowValues() *RowValueQuery {
	return NewDatasetColumnClient(_m.config).QueryRowValues(_m)
}

// Update returns a builder for updating this DatasetColumn.
// Note that you need to call DatasetColumn.Unwrap() before calling this method if this DatasetColumn
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DatasetColumn) Update() *DatasetColumnUpdateOne {
	return NewDatasetColumnClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DatasetColumn entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DatasetColumn) Unwrap() *DatasetColumn {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DatasetColumn is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DatasetColumn) String() string {
	var builder strings.Builder
	builder.WriteString("DatasetColumn(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("dataset_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DatasetID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("original_name=")
	builder.WriteString(_m.OriginalName)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("inferred_type=")
	builder.WriteString(_m.InferredType)
	builder.WriteString(", ")
	builder.WriteString("current_type=")
	builder.WriteString(_m.CurrentType)
	builder.WriteByte(')')
	return builder.String()
}

// DatasetColumns is a parsable slice of DatasetColumn.
type DatasetColumns []*DatasetColumn
