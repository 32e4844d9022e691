// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/data-alchemy/backend/gen/ent/datasetcolumn"
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/data-alchemy/backend/gen/ent/predicate"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
	"github.com/google/uuid"
)

// RowValueUpdate is the builder for updating RowValue entities.
type RowValueUpdate struct {
	config
	hooks    []Hook
	mutation *RowValueMutation
}

// Where appends a list predicates to the RowValueUpdate builder.
func (_u *RowValueUpdate) Where(ps ...predicate.RowValue) *RowValueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRowID sets the "row_id" field.
func (_u *RowValueUpdate) SetRowID(v uuid.UUID) *RowValueUpdate {
	_u.mutation.SetRowID(v)
	return _u
}

// SetNillableRowID sets the "row_id" field if the given value is not nil.
func (_u *RowValueUpdate) SetNillableRowID(v *uuid.UUID) *RowValueUpdate {
	if v != nil {
		_u.SetRowID(*v)
	}
	return _u
}

// SetColumnID sets the "column_id" field.
func (_u *RowValueUpdate) SetColumnID(v uuid.UUID) *RowValueUpdate {
	_u.mutation.SetColumnID(v)
	return _u
}

// SetNillableColumnID sets the "column_id" field if the given value is not nil.
func (_u *RowValueUpdate) SetNillableColumnID(v *uuid.UUID) *RowValueUpdate {
	if v != nil {
		_u.SetColumnID(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *RowValueUpdate) SetValue(v string) *RowValueUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *RowValueUpdate) SetNillableValue(v *string) *RowValueUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetRow sets the "row" edge to the DatasetRow entity.
func (_u *RowValueUpdate) SetRow(v *DatasetRow) *RowValueUpdate {
	return _u.SetRowID(v.ID)
}

// SetColumn sets the "column" edge to the DatasetColumn entity.
func (_u *RowValueUpdate) SetColumn(v *DatasetColumn) *RowValueUpdate {
	return _u.SetColumnID(v.ID)
}

// Mutation returns the RowValueMutation object of the builder.
func (_u *RowValueUpdate) Mutation() *RowValueMutation {
	return _u.mutation
}

// ClearRow clears the "row" edge to the DatasetRow entity.
func (_u *RowValueUpdate) ClearRow() *RowValueUpdate {
	_u.mutation.ClearRow()
	return _u
}

// ClearColumn clears the "column" edge to the DatasetColumn entity.
func (_u *RowValueUpdate) ClearColumn() *RowValueUpdate {
	_u.mutation.ClearColumn()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RowValueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RowValueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RowValueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RowValueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RowValueUpdate) check() error {
	if _u.mutation.RowCleared() && len(_u.mutation.RowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RowValue.row"`)
	}
	if _u.mutation.ColumnCleared() && len(_u.mutation.ColumnIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RowValue.column"`)
	}
	return nil
}

func (_u *RowValueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rowvalue.Table, rowvalue.Columns, sqlgraph.NewFieldSpec(rowvalue.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(rowvalue.FieldValue, field.TypeString, value)
	}
	if _u.mutation.RowCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RowIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ColumnCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ColumnIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rowvalue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RowValueUpdateOne is the builder for updating a single RowValue entity.
type RowValueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RowValueMutation
}

// SetRowID sets the "row_id" field.
func (_u *RowValueUpdateOne) SetRowID(v uuid.UUID) *RowValueUpdateOne {
	_u.mutation.SetRowID(v)
	return _u
}

// SetNillableRowID sets the "row_id" field if the given value is not nil.
func (_u *RowValueUpdateOne) SetNillableRowID(v *uuid.UUID) *RowValueUpdateOne {
	if v != nil {
		_u.SetRowID(*v)
	}
	return _u
}

// SetColumnID sets the "column_id" field.
func (_u *RowValueUpdateOne) SetColumnID(v uuid.UUID) *RowValueUpdateOne {
	_u.mutation.SetColumnID(v)
	return _u
}

// SetNillableColumnID sets the "column_id" field if the given value is not nil.
func (_u *RowValueUpdateOne) SetNillableColumnID(v *uuid.UUID) *RowValueUpdateOne {
	if v != nil {
		_u.SetColumnID(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *RowValueUpdateOne) SetValue(v string) *RowValueUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *RowValueUpdateOne) SetNillableValue(v *string) *RowValueUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetRow sets the "row" edge to the DatasetRow entity.
func (_u *RowValueUpdateOne) SetRow(v *DatasetRow) *RowValueUpdateOne {
	return _u.SetRowID(v.ID)
}

// SetColumn sets the "column" edge to the DatasetColumn entity.
func (_u *RowValueUpdateOne) SetColumn(v *DatasetColumn) *RowValueUpdateOne {
	return _u.SetColumnID(v.ID)
}

// Mutation returns the RowValueMutation object of the builder.
func (_u *RowValueUpdateOne) Mutation() *RowValueMutation {
	return _u.mutation
}

// ClearRow clears the "row" edge to the DatasetRow entity.
func (_u *RowValueUpdateOne) ClearRow() *RowValueUpdateOne {
	_u.mutation.ClearRow()
	return _u
}

// ClearColumn clears the "column" edge to the DatasetColumn entity.
func (_u *RowValueUpdateOne) ClearColumn() *RowValueUpdateOne {
	_u.mutation.ClearColumn()
	return _u
}

// Where appends a list predicates to the RowValueUpdate builder.
func (_u *RowValueUpdateOne) Where(ps ...predicate.RowValue) *RowValueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RowValueUpdateOne) Select(field string, fields ...string) *RowValueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RowValue entity.
func (_u *RowValueUpdateOne) Save(ctx context.Context) (*RowValue, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RowValueUpdateOne) SaveX(ctx context.Context) *RowValue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RowValueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RowValueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RowValueUpdateOne) check() error {
	if _u.mutation.RowCleared() && len(_u.mutation.RowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RowValue.row"`)
	}
	if _u.mutation.ColumnCleared() && len(_u.mutation.ColumnIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RowValue.column"`)
	}
	return nil
}

func (_u *RowValueUpdateOne) sqlSave(ctx context.Context) (_node *RowValue, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rowvalue.Table, rowvalue.Columns, sqlgraph.NewFieldSpec(rowvalue.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RowValue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rowvalue.FieldID)
		for _, f := range fields {
			if !rowvalue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rowvalue.FieldID {
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
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(rowvalue.FieldValue, field.TypeString, value)
	}
	if _u.mutation.RowCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RowIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ColumnCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ColumnIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RowValue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rowvalue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
