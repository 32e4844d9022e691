// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/data-alchemy/backend/gen/ent/datasetcolumn"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
	"github.com/google/uuid"
)

// DatasetColumnCreate is the builder for creating a DatasetColumn entity.
type DatasetColumnCreate struct {
	config
	mutation *DatasetColumnMutation
	hooks    []Hook
}

// SetDatasetID sets the "dataset_id" field.
func (_c *DatasetColumnCreate) SetDatasetID(v uuid.UUID) *DatasetColumnCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DatasetColumnCreate) SetName(v string) *DatasetColumnCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetOriginalName sets the "original_name" field.
func (_c *DatasetColumnCreate) SetOriginalName(v string) *DatasetColumnCreate {
	_c.mutation.SetOriginalName(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *DatasetColumnCreate) SetPosition(v int) *DatasetColumnCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetInferredType sets the "inferred_type" field.
func (_c *DatasetColumnCreate) SetInferredType(v string) *DatasetColumnCreate {
	_c.mutation.SetInferredType(v)
	return _c
}

// SetNillableInferredType sets the "inferred_type" field if the given value is not nil.
func (_c *DatasetColumnCreate) SetNillableInferredType(v *string) *DatasetColumnCreate {
	if v != nil {
		_c.SetInferredType(*v)
	}
	return _c
}

// SetCurrentType sets the "current_type" field.
func (_c *DatasetColumnCreate) SetCurrentType(v string) *DatasetColumnCreate {
	_c.mutation.SetCurrentType(v)
	return _c
}

// SetNillableCurrentType sets the "current_type" field if the given value is not nil.
func (_c *DatasetColumnCreate) SetNillableCurrentType(v *string) *DatasetColumnCreate {
	if v != nil {
		_c.SetCurrentType(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DatasetColumnCreate) SetID(v uuid.UUID) *DatasetColumnCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DatasetColumnCreate) SetNillableID(v *uuid.UUID) *DatasetColumnCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDataset sets the "dataset" edge to the Dataset entity.
func (_c *DatasetColumnCreate) SetDataset(v *Dataset) *DatasetColumnCreate {
	return _c.SetDatasetID(v.ID)
}

// AddRowValueIDs adds the "row_values" edge to the RowValue entity by IDs.
func (_c *DatasetColumnCreate) AddRowValueIDs(ids ...uuid.UUID) *DatasetColumnCreate {
	_c.mutation.AddRowValueIDs(ids...)
	return _c
}

// AddRowValues adds the "row_values" edges to the RowValue entity.
func (_c *DatasetColumnCreate) AddRowValues(v ...*RowValue) *DatasetColumnCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRowValueIDs(ids...)
}

// Mutation returns the DatasetColumnMutation object of the builder.
func (_c *DatasetColumnCreate) Mutation() *DatasetColumnMutation {
	return _c.mutation
}

// Save creates the DatasetColumn in the database.
func (_c *DatasetColumnCreate) Save(ctx context.Context) (*DatasetColumn, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DatasetColumnCreate) SaveX(ctx context.Context) *DatasetColumn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetColumnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetColumnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DatasetColumnCreate) defaults() {
	if _, ok := _c.mutation.InferredType(); !ok {
		v := datasetcolumn.DefaultInferredType
		_c.mutation.SetInferredType(v)
	}
	if _, ok := _c.mutation.CurrentType(); !ok {
		v := datasetcolumn.DefaultCurrentType
		_c.mutation.SetCurrentType(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := datasetcolumn.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DatasetColumnCreate) check() error {
	if _, ok := _c.mutation.DatasetID(); !ok {
		return &ValidationError{Name: "dataset_id", err: errors.New(`ent: missing required field "DatasetColumn.dataset_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DatasetColumn.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := datasetcolumn.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DatasetColumn.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalName(); !ok {
		return &ValidationError{Name: "original_name", err: errors.New(`ent: missing required field "DatasetColumn.original_name"`)}
	}
	if v, ok := _c.mutation.OriginalName(); ok {
		if err := datasetcolumn.OriginalNameValidator(v); err != nil {
			return &ValidationError{Name: "original_name", err: fmt.Errorf(`ent: validator failed for field "DatasetColumn.original_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "DatasetColumn.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := datasetcolumn.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "DatasetColumn.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InferredType(); !ok {
		return &ValidationError{Name: "inferred_type", err: errors.New(`ent: missing required field "DatasetColumn.inferred_type"`)}
	}
	if v, ok := _c.mutation.InferredType(); ok {
		if err := datasetcolumn.InferredTypeValidator(v); err != nil {
			return &ValidationError{Name: "inferred_type", err: fmt.Errorf(`ent: validator failed for field "DatasetColumn.inferred_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentType(); !ok {
		return &ValidationError{Name: "current_type", err: errors.New(`ent: missing required field "DatasetColumn.current_type"`)}
	}
	if v, ok := _c.mutation.CurrentType(); ok {
		if err := datasetcolumn.CurrentTypeValidator(v); err != nil {
			return &ValidationError{Name: "current_type", err: fmt.Errorf(`ent: validator failed for field "DatasetColumn.current_type": %w`, err)}
		}
	}
	if len(_c.mutation.DatasetIDs()) == 0 {
		return &ValidationError{Name: "dataset", err: errors.New(`ent: missing required edge "DatasetColumn.dataset"`)}
	}
	return nil
}

func (_c *DatasetColumnCreate) sqlSave(ctx context.Context) (*DatasetColumn, error) {
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

func (_c *DatasetColumnCreate) createSpec() (*DatasetColumn, *sqlgraph.CreateSpec) {
	var (
		_node = &DatasetColumn{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(datasetcolumn.Table, sqlgraph.NewFieldSpec(datasetcolumn.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(datasetcolumn.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.OriginalName(); ok {
		_spec.SetField(datasetcolumn.FieldOriginalName, field.TypeString, value)
		_node.OriginalName = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(datasetcolumn.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.InferredType(); ok {
		_spec.SetField(datasetcolumn.FieldInferredType, field.TypeString, value)
		_node.InferredType = value
	}
	if value, ok := _c.mutation.CurrentType(); ok {
		_spec.SetField(datasetcolumn.FieldCurrentType, field.TypeString, value)
		_node.CurrentType = value
	}
	if nodes := _c.mutation.DatasetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datasetcolumn.DatasetTable,
			Columns: []string{datasetcolumn.DatasetColumn},
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
	if nodes := _c.mutation.RowValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   datasetcolumn.RowValuesTable,
			Columns: []string{datasetcolumn.RowValuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rowvalue.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DatasetColumnCreateBulk is the builder for creating many DatasetColumn entities in bulk.
type DatasetColumnCreateBulk struct {
	config
	err      error
	builders []*DatasetColumnCreate
}

// Save creates the DatasetColumn entities in the database.
func (_c *DatasetColumnCreateBulk) Save(ctx context.Context) ([]*DatasetColumn, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DatasetColumn, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DatasetColumnMutation)
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
func (_c *DatasetColumnCreateBulk) SaveX(ctx context.Context) []*DatasetColumn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetColumnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetColumnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
