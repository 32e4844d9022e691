// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/data-alchemy/backend/gen/ent/datasetcolumn"
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/data-alchemy/backend/gen/ent/processingjob"
	"github.com/google/uuid"
)

// DatasetCreate is the builder for creating a Dataset entity.
type DatasetCreate struct {
	config
	mutation *DatasetMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *DatasetCreate) SetName(v string) *DatasetCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *DatasetCreate) SetFilePath(v string) *DatasetCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *DatasetCreate) SetFileType(v string) *DatasetCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DatasetCreate) SetStatus(v string) *DatasetCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableStatus(v *string) *DatasetCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRowsCount sets the "rows_count" field.
func (_c *DatasetCreate) SetRowsCount(v int64) *DatasetCreate {
	_c.mutation.SetRowsCount(v)
	return _c
}

// SetNillableRowsCount sets the "rows_count" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableRowsCount(v *int64) *DatasetCreate {
	if v != nil {
		_c.SetRowsCount(*v)
	}
	return _c
}

// SetColumnsCount sets the "columns_count" field.
func (_c *DatasetCreate) SetColumnsCount(v int) *DatasetCreate {
	_c.mutation.SetColumnsCount(v)
	return _c
}

// SetNillableColumnsCount sets the "columns_count" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableColumnsCount(v *int) *DatasetCreate {
	if v != nil {
		_c.SetColumnsCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DatasetCreate) SetCreatedAt(v time.Time) *DatasetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableCreatedAt(v *time.Time) *DatasetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DatasetCreate) SetUpdatedAt(v time.Time) *DatasetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableUpdatedAt(v *time.Time) *DatasetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DatasetCreate) SetID(v uuid.UUID) *DatasetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableID(v *uuid.UUID) *DatasetCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddColumnIDs adds the "columns" edge to the DatasetColumn entity by IDs.
func (_c *DatasetCreate) AddColumnIDs(ids ...uuid.UUID) *DatasetCreate {
	_c.mutation.AddColumnIDs(ids...)
	return _c
}

// AddColumns adds the "columns" edges to the DatasetColumn entity.
func (_c *DatasetCreate) AddColumns(v ...*DatasetColumn) *DatasetCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddColumnIDs(ids...)
}

// AddRowIDs adds the "rows" edge to the DatasetRow entity by IDs.
func (_c *DatasetCreate) AddRowIDs(ids ...uuid.UUID) *DatasetCreate {
	_c.mutation.AddRowIDs(ids...)
	return _c
}

// AddRows adds the "rows" edges to the DatasetRow entity.
func (_c *DatasetCreate) AddRows(v ...*DatasetRow) *DatasetCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRowIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_c *DatasetCreate) AddJobIDs(ids ...uuid.UUID) *DatasetCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_c *DatasetCreate) AddJobs(v ...*ProcessingJob) *DatasetCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the DatasetMutation object of the builder.
func (_c *DatasetCreate) Mutation() *DatasetMutation {
	return _c.mutation
}

// Save creates the Dataset in the database.
func (_c *DatasetCreate) Save(ctx context.Context) (*Dataset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DatasetCreate) SaveX(ctx context.Context) *Dataset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DatasetCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := dataset.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dataset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dataset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dataset.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DatasetCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Dataset.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := dataset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Dataset.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "Dataset.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := dataset.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Dataset.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`ent: missing required field "Dataset.file_type"`)}
	}
	if v, ok := _c.mutation.FileType(); ok {
		if err := dataset.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Dataset.file_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Dataset.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := dataset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Dataset.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Dataset.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Dataset.updated_at"`)}
	}
	return nil
}

func (_c *DatasetCreate) sqlSave(ctx context.Context) (*Dataset, error) {
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

func (_c *DatasetCreate) createSpec() (*Dataset, *sqlgraph.CreateSpec) {
	var (
		_node = &Dataset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dataset.Table, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(dataset.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(dataset.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(dataset.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(dataset.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RowsCount(); ok {
		_spec.SetField(dataset.FieldRowsCount, field.TypeInt64, value)
		_node.RowsCount = &value
	}
	if value, ok := _c.mutation.ColumnsCount(); ok {
		_spec.SetField(dataset.FieldColumnsCount, field.TypeInt, value)
		_node.ColumnsCount = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dataset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dataset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ColumnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.ColumnsTable,
			Columns: []string{dataset.ColumnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datasetcolumn.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RowsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.RowsTable,
			Columns: []string{dataset.RowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datasetrow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.JobsTable,
			Columns: []string{dataset.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DatasetCreateBulk is the builder for creating many Dataset entities in bulk.
type DatasetCreateBulk struct {
	config
	err      error
	builders []*DatasetCreate
}

// Save creates the Dataset entities in the database.
func (_c *DatasetCreateBulk) Save(ctx context.Context) ([]*Dataset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Dataset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DatasetMutation)
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
func (_c *DatasetCreateBulk) SaveX(ctx context.Context) []*Dataset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
