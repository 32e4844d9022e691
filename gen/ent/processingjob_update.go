// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/data-alchemy/backend/gen/ent/predicate"
	"github.com/data-alchemy/backend/gen/ent/processingjob"
	"github.com/google/uuid"
)

// ProcessingJobUpdate is the builder for updating ProcessingJob entities.
type ProcessingJobUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdate) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *ProcessingJobUpdate) SetDatasetID(v uuid.UUID) *ProcessingJobUpdate {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableDatasetID(v *uuid.UUID) *ProcessingJobUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetColumnID sets the "column_id" field.
func (_u *ProcessingJobUpdate) SetColumnID(v uuid.UUID) *ProcessingJobUpdate {
	_u.mutation.SetColumnID(v)
	return _u
}

// SetNillableColumnID sets the "column_id" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableColumnID(v *uuid.UUID) *ProcessingJobUpdate {
	if v != nil {
		_u.SetColumnID(*v)
	}
	return _u
}

// ClearColumnID clears the value of the "column_id" field.
func (_u *ProcessingJobUpdate) ClearColumnID() *ProcessingJobUpdate {
	_u.mutation.ClearColumnID()
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *ProcessingJobUpdate) SetJobType(v string) *ProcessingJobUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableJobType(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingJobUpdate) SetStatus(v string) *ProcessingJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableStatus(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTargetType sets the "target_type" field.
func (_u *ProcessingJobUpdate) SetTargetType(v string) *ProcessingJobUpdate {
	_u.mutation.SetTargetType(v)
	return _u
}

// SetNillableTargetType sets the "target_type" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableTargetType(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetTargetType(*v)
	}
	return _u
}

// ClearTargetType clears the value of the "target_type" field.
func (_u *ProcessingJobUpdate) ClearTargetType() *ProcessingJobUpdate {
	_u.mutation.ClearTargetType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingJobUpdate) SetErrorMessage(v string) *ProcessingJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableErrorMessage(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingJobUpdate) ClearErrorMessage() *ProcessingJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResult sets the "result" field.
func (_u *ProcessingJobUpdate) SetResult(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ProcessingJobUpdate) AppendResult(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ProcessingJobUpdate) ClearResult() *ProcessingJobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessingJobUpdate) SetStartedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableStartedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProcessingJobUpdate) ClearStartedAt() *ProcessingJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingJobUpdate) SetCompletedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableCompletedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingJobUpdate) ClearCompletedAt() *ProcessingJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDataset sets the "dataset" edge to the Dataset entity.
func (_u *ProcessingJobUpdate) SetDataset(v *Dataset) *ProcessingJobUpdate {
	return _u.SetDatasetID(v.ID)
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdate) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// ClearDataset clears the "dataset" edge to the Dataset entity.
func (_u *ProcessingJobUpdate) ClearDataset() *ProcessingJobUpdate {
	_u.mutation.ClearDataset()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdate) check() error {
	if v, ok := _u.mutation.JobType(); ok {
		if err := processingjob.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.status": %w`, err)}
		}
	}
	if _u.mutation.DatasetCleared() && len(_u.mutation.DatasetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingJob.dataset"`)
	}
	return nil
}

func (_u *ProcessingJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ColumnID(); ok {
		_spec.SetField(processingjob.FieldColumnID, field.TypeUUID, value)
	}
	if _u.mutation.ColumnIDCleared() {
		_spec.ClearField(processingjob.FieldColumnID, field.TypeUUID)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(processingjob.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetType(); ok {
		_spec.SetField(processingjob.FieldTargetType, field.TypeString, value)
	}
	if _u.mutation.TargetTypeCleared() {
		_spec.ClearField(processingjob.FieldTargetType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processingjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(processingjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(processingjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(processingjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processingjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processingjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.DatasetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.DatasetTable,
			Columns: []string{processingjob.DatasetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DatasetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.DatasetTable,
			Columns: []string{processingjob.DatasetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingJobUpdateOne is the builder for updating a single ProcessingJob entity.
type ProcessingJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// SetDatasetID sets the "dataset_id" field.
func (_u *ProcessingJobUpdateOne) SetDatasetID(v uuid.UUID) *ProcessingJobUpdateOne {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableDatasetID(v *uuid.UUID) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetColumnID sets the "column_id" field.
func (_u *ProcessingJobUpdateOne) SetColumnID(v uuid.UUID) *ProcessingJobUpdateOne {
	_u.mutation.SetColumnID(v)
	return _u
}

// SetNillableColumnID sets the "column_id" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableColumnID(v *uuid.UUID) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetColumnID(*v)
	}
	return _u
}

// ClearColumnID clears the value of the "column_id" field.
func (_u *ProcessingJobUpdateOne) ClearColumnID() *ProcessingJobUpdateOne {
	_u.mutation.ClearColumnID()
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *ProcessingJobUpdateOne) SetJobType(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableJobType(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingJobUpdateOne) SetStatus(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableStatus(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTargetType sets the "target_type" field.
func (_u *ProcessingJobUpdateOne) SetTargetType(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetTargetType(v)
	return _u
}

// SetNillableTargetType sets the "target_type" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableTargetType(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetTargetType(*v)
	}
	return _u
}

// ClearTargetType clears the value of the "target_type" field.
func (_u *ProcessingJobUpdateOne) ClearTargetType() *ProcessingJobUpdateOne {
	_u.mutation.ClearTargetType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingJobUpdateOne) SetErrorMessage(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableErrorMessage(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingJobUpdateOne) ClearErrorMessage() *ProcessingJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResult sets the "result" field.
func (_u *ProcessingJobUpdateOne) SetResult(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ProcessingJobUpdateOne) AppendResult(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ProcessingJobUpdateOne) ClearResult() *ProcessingJobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessingJobUpdateOne) SetStartedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableStartedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProcessingJobUpdateOne) ClearStartedAt() *ProcessingJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingJobUpdateOne) SetCompletedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingJobUpdateOne) ClearCompletedAt() *ProcessingJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDataset sets the "dataset" edge to the Dataset entity.
func (_u *ProcessingJobUpdateOne) SetDataset(v *Dataset) *ProcessingJobUpdateOne {
	return _u.SetDatasetID(v.ID)
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdateOne) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// ClearDataset clears the "dataset" edge to the Dataset entity.
func (_u *ProcessingJobUpdateOne) ClearDataset() *ProcessingJobUpdateOne {
	_u.mutation.ClearDataset()
	return _u
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdateOne) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingJobUpdateOne) Select(field string, fields ...string) *ProcessingJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingJob entity.
func (_u *ProcessingJobUpdateOne) Save(ctx context.Context) (*ProcessingJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) SaveX(ctx context.Context) *ProcessingJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdateOne) check() error {
	if v, ok := _u.mutation.JobType(); ok {
		if err := processingjob.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.status": %w`, err)}
		}
	}
	if _u.mutation.DatasetCleared() && len(_u.mutation.DatasetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingJob.dataset"`)
	}
	return nil
}

func (_u *ProcessingJobUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingjob.FieldID)
		for _, f := range fields {
			if !processingjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ColumnID(); ok {
		_spec.SetField(processingjob.FieldColumnID, field.TypeUUID, value)
	}
	if _u.mutation.ColumnIDCleared() {
		_spec.ClearField(processingjob.FieldColumnID, field.TypeUUID)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(processingjob.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetType(); ok {
		_spec.SetField(processingjob.FieldTargetType, field.TypeString, value)
	}
	if _u.mutation.TargetTypeCleared() {
		_spec.ClearField(processingjob.FieldTargetType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processingjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(processingjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(processingjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(processingjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processingjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processingjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.DatasetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.DatasetTable,
			Columns: []string{processingjob.DatasetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DatasetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.DatasetTable,
			Columns: []string{processingjob.DatasetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessingJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
