// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/data-alchemy/backend/gen/ent/processingjob"
	"github.com/google/uuid"
)

// ProcessingJob is the model entity for the ProcessingJob schema.
type ProcessingJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DatasetID holds the value of the "dataset_id" field.
	DatasetID uuid.UUID `json:"dataset_id,omitempty"`
	// ColumnID holds the value of the "column_id" field.
	ColumnID *uuid.UUID `json:"column_id,omitempty"`
	// JobType holds the value of the "job_type" field.
	JobType string `json:"job_type,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// TargetType holds the value of the "target_type" field.
	TargetType *string `json:"target_type,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Result holds the value of the "result" field.
	Result json.RawMessage `json:"result,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProcessingJobQuery when eager-loading is set.
	Edges        ProcessingJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProcessingJobEdges holds the relations/edges for other nodes in the graph.
type ProcessingJobEdges struct {
	// Dataset holds the value of the dataset edge.
	Dataset *Dataset `json:"dataset,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DatasetOrErr returns the Dataset value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProcessingJobEdges) DatasetOrErr() (*Dataset, error) {
	if e.Dataset != nil {
		return e.Dataset, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: dataset.Label}
	}
	return nil, &NotLoadedError{edge: "dataset"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessingJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processingjob.FieldColumnID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case processingjob.FieldResult:
			values[i] = new([]byte)
		case processingjob.FieldJobType, processingjob.FieldStatus, processingjob.FieldTargetType, processingjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case processingjob.FieldCreatedAt, processingjob.FieldStartedAt, processingjob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case processingjob.FieldID, processingjob.FieldDatasetID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessingJob fields.
func (_m *ProcessingJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processingjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case processingjob.FieldDatasetID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_id", values[i])
			} else if value != nil {
				_m.DatasetID = *value
			}
		case processingjob.FieldColumnID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field column_id", values[i])
			} else if value.Valid {
				_m.ColumnID = new(uuid.UUID)
				*_m.ColumnID = *value.S.(*uuid.UUID)
			}
		case processingjob.FieldJobType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_type", values[i])
			} else if value.Valid {
				_m.JobType = value.String
			}
		case processingjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case processingjob.FieldTargetType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_type", values[i])
			} else if value.Valid {
				_m.TargetType = new(string)
				*_m.TargetType = value.String
			}
		case processingjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case processingjob.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case processingjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case processingjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case processingjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessingJob.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessingJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDataset queries the "dataset" edge of the ProcessingJob entity.
func (_m *ProcessingJob) QueryDataset() *DatasetQuery {
	return NewProcessingJobClient(_m.config).QueryDataset(_m)
}

// Update returns a builder for updating this ProcessingJob.
// Note that you need to call ProcessingJob.Unwrap() before calling this method if this ProcessingJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessingJob) Update() *ProcessingJobUpdateOne {
	return NewProcessingJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessingJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessingJob) Unwrap() *ProcessingJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessingJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessingJob) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessingJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("dataset_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DatasetID))
	builder.WriteString(", ")
	if v := _m.ColumnID; v != nil {
		builder.WriteString("column_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("job_type=")
	builder.WriteString(_m.JobType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.TargetType; v != nil {
		builder.WriteString("target_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ProcessingJobs is a parsable slice of ProcessingJob.
type ProcessingJobs []*ProcessingJob
