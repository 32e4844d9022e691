// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/data-alchemy/backend/gen/ent/datasetcolumn"
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
	"github.com/google/uuid"
)

// RowValueCreate is the builder for creating a RowValue entity.
type RowValueCreate struct {
	config
	mutation *RowValueMutation
	hooks    []Hook
}

// SetRowID sets the "row_id" field.
func (_c *RowValueCreate) SetRowID(v uuid.UUID) *RowValueCreate {
	_c.mutation.SetRowID(v)
	return _c
}

// SetColumnID sets the "column_id" field.
func (_c *RowValueCreate) SetColumnID(v uuid.UUID) *RowValueCreate {
	_c.mutation.SetColumnID(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *RowValueCreate) SetValue(v string) *RowValueCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RowValueCreate) SetID(v uuid.UUID) *RowValueCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RowValueCreate) SetNillableID(v *uuid.UUID) *RowValueCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRow sets the "row" edge to the DatasetRow entity.
func (_c *RowValueCreate) SetRow(v *DatasetRow) *RowValueCreate {
	return _c.SetRowID(v.ID)
}

// SetColumn sets the "column" edge to the DatasetColumn entity.
func (_c *RowValueCreate) SetColumn(v *DatasetColumn) *RowValueCreate {
	return _c.SetColumnID(v.ID)
}

// Mutation returns the RowValueMutation object of the builder.
func (_c *RowValueCreate) Mutation() *RowValueMutation {
	return _c.mutation
}

// Save creates the RowValue in the database.
func (_c *RowValueCreate) Save(ctx context.Context) (*RowValue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RowValueCreate) SaveX(ctx context.Context) *RowValue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RowValueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RowValueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RowValueCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := rowvalue.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RowValueCreate) check() error {
	if _, ok := _c.mutation.RowID(); !ok {
		return &ValidationError{Name: "row_id", err: errors.New(`ent: missing required field "RowValue.row_id"`)}
	}
	if _, ok := _c.mutation.ColumnID(); !ok {
		return &ValidationError{Name: "column_id", err: errors.New(`ent: missing required field "RowValue.column_id"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "RowValue.value"`)}
	}
	if len(_c.mutation.RowIDs()) == 0 {
		return &ValidationError{Name: "row", err: errors.New(`ent: missing required edge "RowValue.row"`)}
	}
	if len(_c.mutation.ColumnIDs()) == 0 {
		return &ValidationError{Name: "column", err: errors.New(`ent: missing required edge "RowValue.column"`)}
	}
	return nil
}

func (_c *RowValueCreate) sqlSave(ctx context.Context) (*RowValue, error) {
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

func (_c *RowValueCreate) createSpec() (*RowValue, *sqlgraph.CreateSpec) {
	var (
		_node = &RowValue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rowvalue.Table, sqlgraph.NewFieldSpec(rowvalue.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(rowvalue.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if nodes := _c.mutation.RowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   rowvalue.RowTable,
			Columns: []string{rowvalue.RowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datasetrow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ColumnIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   rowvalue.ColumnTable,
			Columns: []string{rowvalue.ColumnColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datasetcolumn.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ColumnID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RowValueCreateBulk is the builder for creating many RowValue entities in bulk.
type RowValueCreateBulk struct {
	config
	err      error
	builders []*RowValueCreate
}

// Save creates the RowValue entities in the database.
func (_c *RowValueCreateBulk) Save(ctx context.Context) ([]*RowValue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RowValue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RowValueMutation)
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
func (_c *RowValueCreateBulk) SaveX(ctx context.Context) []*RowValue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RowValueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RowValueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
