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
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
	"github.com/google/uuid"
)

// DatasetRowCreate is the builder for creating a DatasetRow entity.
type DatasetRowCreate struct {
	config
	mutation *DatasetRowMutation
	hooks    []Hook
}

// SetDatasetID sets the "dataset_id" field.
func (_c *DatasetRowCreate) SetDatasetID(v uuid.UUID) *DatasetRowCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *DatasetRowCreate) SetRowIndex(v int64) *DatasetRowCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DatasetRowCreate) SetCreatedAt(v time.Time) *DatasetRowCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DatasetRowCreate) SetNillableCreatedAt(v *time.Time) *DatasetRowCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DatasetRowCreate) SetID(v uuid.UUID) *DatasetRowCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DatasetRowCreate) SetNillableID(v *uuid.UUID) *DatasetRowCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDataset sets the "dataset" edge to the Dataset entity.
func (_c *DatasetRowCreate) SetDataset(v *Dataset) *DatasetRowCreate {
	return _c.SetDatasetID(v.ID)
}

// AddValueIDs adds the "values" edge to the RowValue entity by IDs.
func (_c *DatasetRowCreate) AddValueIDs(ids ...uuid.UUID) *DatasetRowCreate {
	_c.mutation.AddValueIDs(ids...)
	return _c
}

// AddValues adds the "values" edges to the RowValue entity.
func (_c *DatasetRowCreate) AddValues(v ...*RowValue) *DatasetRowCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddValueIDs(ids...)
}

// Mutation returns the DatasetRowMutation object of the builder.
func (_c *DatasetRowCreate) Mutation() *DatasetRowMutation {
	return _c.mutation
}

// Save creates the DatasetRow in the database.
func (_c *DatasetRowCreate) Save(ctx context.Context) (*DatasetRow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DatasetRowCreate) SaveX(ctx context.Context) *DatasetRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetRowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetRowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DatasetRowCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := datasetrow.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := datasetrow.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DatasetRowCreate) check() error {
	if _, ok := _c.mutation.DatasetID(); !ok {
		return &ValidationError{Name: "dataset_id", err: errors.New(`ent: missing required field "DatasetRow.dataset_id"`)}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "DatasetRow.row_index"`)}
	}
	if v, ok := _c.mutation.RowIndex(); ok {
		if err := datasetrow.RowIndexValidator(v); err != nil {
			return &ValidationError{Name: "row_index", err: fmt.Errorf(`ent: validator failed for field "DatasetRow.row_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DatasetRow.created_at"`)}
	}
	if len(_c.mutation.DatasetIDs()) == 0 {
		return &ValidationError{Name: "dataset", err: errors.New(`ent: missing required edge "DatasetRow.dataset"`)}
	}
	return nil
}

func (_c *DatasetRowCreate) sqlSave(ctx context.Context) (*DatasetRow, error) {
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

func (_c *DatasetRowCreate) createSpec() (*DatasetRow, *sqlgraph.CreateSpec) {
	var (
		_node = &DatasetRow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(datasetrow.Table, sqlgraph.NewFieldSpec(datasetrow.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(datasetrow.FieldRowIndex, field.TypeInt64, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(datasetrow.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DatasetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datasetrow.DatasetTable,
			Columns: []string{datasetrow.DatasetColumn},
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
	if nodes := _c.mutation.ValuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   datasetrow.ValuesTable,
			Columns: []string{datasetrow.ValuesColumn},
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

// DatasetRowCreateBulk is the builder for creating many DatasetRow entities in bulk.
type DatasetRowCreateBulk struct {
	config
	err      error
	builders []*DatasetRowCreate
}

// Save creates the DatasetRow entities in the database.
func (_c *DatasetRowCreateBulk) Save(ctx context.Context) ([]*DatasetRow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DatasetRow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DatasetRowMutation)
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
func (_c *DatasetRowCreateBulk) SaveX(ctx context.Context) []*DatasetRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetRowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetRowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
