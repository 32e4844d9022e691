// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/data-alchemy/backend/gen/ent/datasetcolumn"
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
	"github.com/google/uuid"
)

// RowValue is the model entity for the RowValue schema.
type RowValue struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RowID holds the value of the "row_id" field.
	RowID uuid.UUID `json:"row_id,omitempty"`
	// ColumnID holds the value of the "column_id" field.
	ColumnID uuid.UUID `json:"column_id,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"value,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RowValueQuery when eager-loading is set.
	Edges        RowValueEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RowValueEdges holds the relations/edges for other nodes in the graph.
type RowValueEdges struct {
	// Row holds the value of the row edge.
	Row *DatasetRow `json:"row,omitempty"`
	// Column holds the value of the column edge.
	Column *DatasetColumn `json:"column,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RowOrErr returns the Row value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RowValueEdges) RowOrErr() (*DatasetRow, error) {
	if e.Row != nil {
		return e.Row, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: datasetrow.Label}
	}
	return nil, &NotLoadedError{edge: "row"}
}

// ColumnOrErr returns the Column value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RowValueEdges) ColumnOrErr() (*DatasetColumn, error) {
	if e.Column != nil {
		return e.Column, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: datasetcolumn.Label}
	}
	return nil, &NotLoadedError{edge: "column"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RowValue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rowvalue.FieldValue:
			values[i] = new(sql.NullString)
		case rowvalue.FieldID, rowvalue.FieldRowID, rowvalue.FieldColumnID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RowValue fields.
func (_m *RowValue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rowvalue.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case rowvalue.FieldRowID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field row_id", values[i])
			} else if value != nil {
				_m.RowID = *value
			}
		case rowvalue.FieldColumnID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field column_id", values[i])
			} else if value != nil {
				_m.ColumnID = *value
			}
		case rowvalue.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the RowValue.
// This includes values selected through modifiers, order, etc.
func (_m *RowValue) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRow queries the "row" edge of the RowValue entity.
func (_m *RowValue) QueryRow() *DatasetRowQuery {
	return NewRowValueClient(_m.config).QueryRow(_m)
}

// QueryColumn queries the "column" edge of the RowValue entity.
func (_m *RowValue) QueryColumn() *DatasetColumnQuery {
	return NewRowValueClient(_m.config).QueryColumn(_m)
}

// Update returns a builder for updating this RowValue.
// Note that you need to call RowValue.Unwrap() before calling this method if this RowValue
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RowValue) Update() *RowValueUpdateOne {
	return NewRowValueClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RowValue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RowValue) Unwrap() *RowValue {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RowValue is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RowValue) String() string {
	var builder strings.Builder
	builder.WriteString("RowValue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("row_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowID))
	builder.WriteString(", ")
	builder.WriteString("column_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ColumnID))
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteByte(')')
	return builder.String()
}

// RowValues is a parsable slice of RowValue.
type RowValues []*RowValue
