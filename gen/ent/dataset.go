// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/google/uuid"
)

// Dataset is the model entity for the Dataset schema.
type Dataset struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// FileType holds the value of the "file_type" field.
	FileType string `json:"file_type,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// RowsCount holds the value of the "rows_count" field.
	RowsCount *int64 `json:"rows_count,omitempty"`
	// ColumnsCount holds the value of the "columns_count" field.
	ColumnsCount *int `json:"columns_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DatasetQuery when eager-loading is set.
	Edges        DatasetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DatasetEdges holds the relations/edges for other nodes in the graph.
type DatasetEdges struct {
	// Columns holds the value of the columns edge.
	Columns []*DatasetColumn `json:"columns,omitempty"`
	// Rows holds the value of the rows edge.
	Rows []*DatasetRow `json:"rows,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ProcessingJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ColumnsOrErr returns the Columns value or an error if the edge
// was not loaded in eager-loading.
func (e DatasetEdges) ColumnsOrErr() ([]*DatasetColumn, error) {
	if e.loadedTypes[0] {
		return e.Columns, nil
	}
	return nil, &NotLoadedError{edge: "columns"}
}

// RowsOrErr returns the Rows value or an error if the edge
// was not loaded in eager-loading.
func (e DatasetEdges) RowsOrErr() ([]*DatasetRow, error) {
	if e.loadedTypes[1] {
		return e.Rows, nil
	}
	return nil, &NotLoadedError{edge: "rows"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e DatasetEdges) JobsOrErr() ([]*ProcessingJob, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Dataset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dataset.FieldRowsCount, dataset.FieldColumnsCount:
			values[i] = new(sql.NullInt64)
		case dataset.FieldName, dataset.FieldFilePath, dataset.FieldFileType, dataset.FieldStatus:
			values[i] = new(sql.NullString)
		case dataset.FieldCreatedAt, dataset.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case dataset.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Dataset fields.
func (_m *Dataset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dataset.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dataset.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case dataset.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case dataset.FieldFileType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_type", values[i])
			} else if value.Valid {
				_m.FileType = value.String
			}
		case dataset.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case dataset.FieldRowsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_count", values[i])
			} else if value.Valid {
				_m.RowsCount = new(int64)
				*_m.RowsCount = value.Int64
			}
		case dataset.FieldColumnsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field columns_count", values[i])
			} else if value.Valid {
				_m.ColumnsCount = new(int)
				*_m.ColumnsCount = int(value.Int64)
			}
		case dataset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dataset.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Dataset.
// This includes values selected through modifiers, order, etc.
func (_m *Dataset) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryColumns queries the "columns" edge of the Dataset entity.
func (_m *Dataset) QueryColumns() *DatasetColumnQuery {
	return NewDatasetClient(_m.config).QueryColumns(_m)
}

// QueryRows queries the "rows" edge of the Dataset entity.
func (_m *Dataset) QueryRows() *DatasetRowQuery {
	return NewDatasetClient(_m.config).QueryRows(_m)
}

// QueryJobs queries the "jobs" edge of the Dataset entity.
func (_m *Dataset) QueryJobs() *ProcessingJobQuery {
	return NewDatasetClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Dataset.
// Note that you need to call Dataset.Unwrap() before calling this method if this Dataset
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Dataset) Update() *DatasetUpdateOne {
	return NewDatasetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Dataset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Dataset) Unwrap() *Dataset {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Dataset is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Dataset) String() string {
	var builder strings.Builder
	builder.WriteString("Dataset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("file_type=")
	builder.WriteString(_m.FileType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.RowsCount; v != nil {
		builder.WriteString("rows_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ColumnsCount; v != nil {
		builder.WriteString("columns_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Datasets is a parsable slice of Dataset.
type Datasets []*Dataset
