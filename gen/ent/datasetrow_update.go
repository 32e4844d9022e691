// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/data-alchemy/backend/gen/ent/predicate"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
	"github.com/google/uuid"
)

// DatasetRowUpdate is the builder for updating DatasetRow entities.
type DatasetRowUpdate struct {
	config
	hooks    []Hook
	mutation *DatasetRowMutation
}

// Where appends a list predicates to the DatasetRowUpdate builder.
func (_u *DatasetRowUpdate) Where(ps ...predicate.DatasetRow) *DatasetRowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *DatasetRowUpdate) SetDatasetID(v uuid.UUID) *DatasetRowUpdate {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *DatasetRowUpdate) SetNillableDatasetID(v *uuid.UUID) *DatasetRowUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetDataset sets the "dataset" edge to the Dataset entity.
func (_u *DatasetRowUpdate) SetDataset(v *Dataset) *DatasetRowUpdate {
	return _u.SetDatasetID(v.ID)
}

// AddValueIDs adds the "values" edge to the RowValue entity by IDs.
func (_u *DatasetRowUpdate) AddValueIDs(ids ...uuid.UUID) *DatasetRowUpdate {
	_u.mutation.AddValueIDs(ids...)
	return _u
}

// AddValues adds the "values" edges to the RowValue entity.
func (_u *DatasetRowUpdate) AddValues(v ...*RowValue) *DatasetRowUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValueIDs(ids...)
}

// Mutation returns the DatasetRowMutation object of the builder.
func (_u *DatasetRowUpdate) Mutation() *DatasetRowMutation {
	return _u.mutation
}

// ClearDataset clears the "dataset" edge to the Dataset entity.
func (_u *DatasetRowUpdate) ClearDataset() *DatasetRowUpdate {
	_u.mutation.ClearDataset()
	return _u
}

// ClearValues clears all "values" edges to the RowValue entity.
func (_u *DatasetRowUpdate) ClearValues() *DatasetRowUpdate {
	_u.mutation.ClearValues()
	return _u
}

// RemoveValueIDs removes the "values" edge to RowValue entities by IDs.
func (_u *DatasetRowUpdate) RemoveValueIDs(ids ...uuid.UUID) *DatasetRowUpdate {
	_u.mutation.RemoveValueIDs(ids...)
	return _u
}

// RemoveValues removes "values" edges to RowValue entities.
func (_u *DatasetRowUpdate) RemoveValues(v ...*RowValue) *DatasetRowUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValueIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DatasetRowUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetRowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DatasetRowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetRowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetRowUpdate) check() error {
	if _u.mutation.DatasetCleared() && len(_u.mutation.DatasetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DatasetRow.dataset"`)
	}
	return nil
}

func (_u *DatasetRowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datasetrow.Table, datasetrow.Columns, sqlgraph.NewFieldSpec(datasetrow.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DatasetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DatasetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValuesIDs(); len(nodes) > 0 && !_u.mutation.ValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValuesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datasetrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DatasetRowUpdateOne is the builder for updating a single DatasetRow entity.
type DatasetRowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DatasetRowMutation
}

// SetDatasetID sets the "dataset_id" field.
func (_u *DatasetRowUpdateOne) SetDatasetID(v uuid.UUID) *DatasetRowUpdateOne {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *DatasetRowUpdateOne) SetNillableDatasetID(v *uuid.UUID) *DatasetRowUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetDataset sets the "dataset" edge to the Dataset entity.
func (_u *DatasetRowUpdateOne) SetDataset(v *Dataset) *DatasetRowUpdateOne {
	return _u.SetDatasetID(v.ID)
}

// AddValueIDs adds the "values" edge to the RowValue entity by IDs.
func (_u *DatasetRowUpdateOne) AddValueIDs(ids ...uuid.UUID) *DatasetRowUpdateOne {
	_u.mutation.AddValueIDs(ids...)
	return _u
}

// AddValues adds the "values" edges to the RowValue entity.
func (_u *DatasetRowUpdateOne) AddValues(v ...*RowValue) *DatasetRowUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValueIDs(ids...)
}

// Mutation returns the DatasetRowMutation object of the builder.
func (_u *DatasetRowUpdateOne) Mutation() *DatasetRowMutation {
	return _u.mutation
}

// ClearDataset clears the "dataset" edge to the Dataset entity.
func (_u *DatasetRowUpdateOne) ClearDataset() *DatasetRowUpdateOne {
	_u.mutation.ClearDataset()
	return _u
}

// ClearValues clears all "values" edges to the RowValue entity.
func (_u *DatasetRowUpdateOne) ClearValues() *DatasetRowUpdateOne {
	_u.mutation.ClearValues()
	return _u
}

// RemoveValueIDs removes the "values" edge to RowValue entities by IDs.
func (_u *DatasetRowUpdateOne) RemoveValueIDs(ids ...uuid.UUID) *DatasetRowUpdateOne {
	_u.mutation.RemoveValueIDs(ids...)
	return _u
}

// RemoveValues removes "values" edges to RowValue entities.
func (_u *DatasetRowUpdateOne) RemoveValues(v ...*RowValue) *DatasetRowUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValueIDs(ids...)
}

// Where appends a list predicates to the DatasetRowUpdate builder.
func (_u *DatasetRowUpdateOne) Where(ps ...predicate.DatasetRow) *DatasetRowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DatasetRowUpdateOne) Select(field string, fields ...string) *DatasetRowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DatasetRow entity.
func (_u *DatasetRowUpdateOne) Save(ctx context.Context) (*DatasetRow, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetRowUpdateOne) SaveX(ctx context.Context) *DatasetRow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DatasetRowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetRowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetRowUpdateOne) check() error {
	if _u.mutation.DatasetCleared() && len(_u.mutation.DatasetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DatasetRow.dataset"`)
	}
	return nil
}

func (_u *DatasetRowUpdateOne) sqlSave(ctx context.Context) (_node *DatasetRow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datasetrow.Table, datasetrow.Columns, sqlgraph.NewFieldSpec(datasetrow.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DatasetRow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datasetrow.FieldID)
		for _, f := range fields {
			if !datasetrow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != datasetrow.FieldID {
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
	if _u.mutation.DatasetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DatasetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValuesIDs(); len(nodes) > 0 && !_u.mutation.ValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValuesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DatasetRow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datasetrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
