// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/data-alchemy/backend/gen/ent/processingjob"
	"github.com/google/uuid"
)

// ProcessingJobCreate is the builder for creating a ProcessingJob entity.
type ProcessingJobCreate struct {
	config
	mutation *ProcessingJobMutation
	hooks    []Hook
}

// SetDatasetID sets the "dataset_id" field.
func (_c *ProcessingJobCreate) SetDatasetID(v uuid.UUID) *ProcessingJobCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetColumnID sets the "column_id" field.
func (_c *ProcessingJobCreate) SetColumnID(v uuid.UUID) *ProcessingJobCreate {
	_c.mutation.SetColumnID(v)
	return _c
}

// SetNillableColumnID sets the "column_id" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableColumnID(v *uuid.UUID) *ProcessingJobCreate {
	if v != nil {
		_c.SetColumnID(*v)
	}
	return _c
}

// SetJobType sets the "job_type" field.
func (_c *ProcessingJobCreate) SetJobType(v string) *ProcessingJobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessingJobCreate) SetStatus(v string) *ProcessingJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableStatus(v *string) *ProcessingJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTargetType sets the "target_type" field.
func (_c *ProcessingJobCreate) SetTargetType(v string) *ProcessingJobCreate {
	_c.mutation.SetTargetType(v)
	return _c
}

// SetNillableTargetType sets the "target_type" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableTargetType(v *string) *ProcessingJobCreate {
	if v != nil {
		_c.SetTargetType(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProcessingJobCreate) SetErrorMessage(v string) *ProcessingJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableErrorMessage(v *string) *ProcessingJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *ProcessingJobCreate) SetResult(v json.RawMessage) *ProcessingJobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessingJobCreate) SetCreatedAt(v time.Time) *ProcessingJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableCreatedAt(v *time.Time) *ProcessingJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ProcessingJobCreate) SetStartedAt(v time.Time) *ProcessingJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableStartedAt(v *time.Time) *ProcessingJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ProcessingJobCreate) SetCompletedAt(v time.Time) *ProcessingJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableCompletedAt(v *time.Time) *ProcessingJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessingJobCreate) SetID(v uuid.UUID) *ProcessingJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableID(v *uuid.UUID) *ProcessingJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDataset sets the "dataset" edge to the Dataset entity.
func (_c *ProcessingJobCreate) SetDataset(v *Dataset) *ProcessingJobCreate {
	return _c.SetDatasetID(v.ID)
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_c *ProcessingJobCreate) Mutation() *ProcessingJobMutation {
	return _c.mutation
}

// Save creates the ProcessingJob in the database.
func (_c *ProcessingJobCreate) Save(ctx context.Context) (*ProcessingJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingJobCreate) SaveX(ctx context.Context) *ProcessingJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := processingjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processingjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processingjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingJobCreate) check() error {
	if _, ok := _c.mutation.DatasetID(); !ok {
		return &ValidationError{Name: "dataset_id", err: errors.New(`ent: missing required field "ProcessingJob.dataset_id"`)}
	}
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "ProcessingJob.job_type"`)}
	}
	if v, ok := _c.mutation.JobType(); ok {
		if err := processingjob.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.job_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessingJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcessingJob.created_at"`)}
	}
	if len(_c.mutation.DatasetIDs()) == 0 {
		return &ValidationError{Name: "dataset", err: errors.New(`ent: missing required edge "ProcessingJob.dataset"`)}
	}
	return nil
}

func (_c *ProcessingJobCreate) sqlSave(ctx context.Context) (*ProcessingJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessingJobCreate) createSpec() (*ProcessingJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processingjob.Table, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ColumnID(); ok {
		_spec.SetField(processingjob.FieldColumnID, field.TypeUUID, value)
		_node.ColumnID = &value
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(processingjob.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processingjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TargetType(); ok {
		_spec.SetField(processingjob.FieldTargetType, field.TypeString, value)
		_node.TargetType = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(processingjob.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processingjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(processingjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.DatasetIDs(); len(nodes) > 0 {
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
		_node.DatasetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcessingJobCreateBulk is the builder for creating many ProcessingJob entities in bulk.
type ProcessingJobCreateBulk struct {
	config
	err      error
	builders []*ProcessingJobCreate
}

// Save creates the ProcessingJob entities in the database.
func (_c *ProcessingJobCreateBulk) Save(ctx context.Context) ([]*ProcessingJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProcessingJobCreateBulk) SaveX(ctx context.Context) []*ProcessingJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
