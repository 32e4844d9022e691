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
	"github.com/data-alchemy/backend/gen/ent/datasetcolumn"
	"github.com/data-alchemy/backend/gen/ent/predicate"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
	"github.com/google/uuid"
)

// DatasetColumnUpdate is the builder for updating DatasetColumn entities.
type DatasetColumnUpdate struct {
	config
	hooks    []Hook
	mutation *DatasetColumnMutation
}

// Where appends a list predicates to the DatasetColumnUpdate builder.
func (_u *DatasetColumnUpdate) Where(ps ...predicate.DatasetColumn) *DatasetColumnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *DatasetColumnUpdate) SetDatasetID(v uuid.UUID) *DatasetColumnUpdate {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *DatasetColumnUpdate) SetNillableDatasetID(v *uuid.UUID) *DatasetColumnUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DatasetColumnUpdate) SetName(v string) *DatasetColumnUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DatasetColumnUpdate) SetNillableName(v *string) *DatasetColumnUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetInferredType sets the "inferred_type" field.
func (_u *DatasetColumnUpdate) SetInferredType(v string) *DatasetColumnUpdate {
	_u.mutation.SetInferredType(v)
	return _u
}

// SetNillableInferredType sets the "inferred_type" field if the given value is not nil.
func (_u *DatasetColumnUpdate) SetNillableInferredType(v *string) *DatasetColumnUpdate {
	if v != nil {
		_u.SetInferredType(*v)
	}
	return _u
}

// SetCurrentType sets the "current_type" field.
func (_u *DatasetColumnUpdate) SetCurrentType(v string) *DatasetColumnUpdate {
	_u.mutation.SetCurrentType(v)
	return _u
}

// SetNillableCurrentType sets the "current_type" field if the given value is not nil.
func (_u *DatasetColumnUpdate) SetNillableCurrentType(v *string) *DatasetColumnUpdate {
	if v != nil {
		_u.SetCurrentType(*v)
	}
	return _u
}

// SetDataset sets the "dataset" edge to the Dataset entity.
func (_u *DatasetColumnUpdate) SetDataset(v *Dataset) *DatasetColumnUpdate {
	return _u.SetDatasetID(v.ID)
}

// AddRowValueIDs adds the "row_values" edge to the RowValue entity by IDs.
func (_u *DatasetColumnUpdate) AddRowValueIDs(ids ...uuid.UUID) *DatasetColumnUpdate {
	_u.mutation.AddRowValueIDs(ids...)
	return _u
}

// AddRowValues adds the "row_values" edges to the RowValue entity.
func (_u *DatasetColumnUpdate) AddRowValues(v ...*RowValue) *DatasetColumnUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRowValueIDs(ids...)
}

// Mutation returns the DatasetColumnMutation object of the builder.
func (_u *DatasetColumnUpdate) Mutation() *DatasetColumnMutation {
	return _u.mutation
}

// ClearDataset clears the "dataset" edge to the Dataset entity.
func (_u *DatasetColumnUpdate) ClearDataset() *DatasetColumnUpdate {
	_u.mutation.ClearDataset()
	return _u
}

// ClearRowValues clears all "row_values" edges to the RowValue entity.
func (_u *DatasetColumnUpdate) ClearRowValues() *DatasetColumnUpdate {
	_u.mutation.ClearRowValues()
	return _u
}

// RemoveRowValueIDs removes the "row_values" edge to RowValue entities by IDs.
func (_u *DatasetColumnUpdate) RemoveRowValueIDs(ids ...uuid.UUID) *DatasetColumnUpdate {
	_u.mutation.RemoveRowValueIDs(ids...)
	return _u
}

// RemoveRowValues removes "row_values" edges to RowValue entities.
func (_u *DatasetColumnUpdate) RemoveRowValues(v ...*RowValue) *DatasetColumnUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRowValueIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DatasetColumnUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetColumnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DatasetColumnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetColumnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetColumnUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := datasetcolumn.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DatasetColumn.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InferredType(); ok {
		if err := datasetcolumn.InferredTypeValidator(v); err != nil {
			return &ValidationError{Name: "inferred_type", err: fmt.Errorf(`ent: validator failed for field "DatasetColumn.inferred_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentType(); ok {
		if err := datasetcolumn.CurrentTypeValidator(v); err != nil {
			return &ValidationError{Name: "current_type", err: fmt.Errorf(`ent: validator failed for field "DatasetColumn.current_type": %w`, err)}
		}
	}
	if _u.mutation.DatasetCleared() && len(_u.mutation.DatasetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DatasetColumn.dataset"`)
	}
	return nil
}

func (_u *DatasetColumnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datasetcolumn.Table, datasetcolumn.Columns, sqlgraph.NewFieldSpec(datasetcolumn.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(datasetcolumn.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InferredType(); ok {
		_spec.SetField(datasetcolumn.FieldInferredType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentType(); ok {
		_spec.SetField(datasetcolumn.FieldCurrentType, field.TypeString, value)
	}
	if _u.mutation.DatasetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DatasetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RowValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRowValuesIDs(); len(nodes) > 0 && !_u.mutation.RowValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RowValuesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datasetcolumn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DatasetColumnUpdateOne is the builder for updating a single DatasetColumn entity.
type DatasetColumnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DatasetColumnMutation
}

// SetDatasetID sets the "dataset_id" field.
func (_u *DatasetColumnUpdateOne) SetDatasetID(v uuid.UUID) *DatasetColumnUpdateOne {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *DatasetColumnUpdateOne) SetNillableDatasetID(v *uuid.UUID) *DatasetColumnUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DatasetColumnUpdateOne) SetName(v string) *DatasetColumnUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DatasetColumnUpdateOne) SetNillableName(v *string) *DatasetColumnUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetInferredType sets the "inferred_type" field.
func (_u *DatasetColumnUpdateOne) SetInferredType(v string) *DatasetColumnUpdateOne {
	_u.mutation.SetInferredType(v)
	return _u
}

// SetNillableInferredType sets the "inferred_type" field if the given value is not nil.
func (_u *DatasetColumnUpdateOne) SetNillableInferredType(v *string) *DatasetColumnUpdateOne {
	if v != nil {
		_u.SetInferredType(*v)
	}
	return _u
}

// SetCurrentType sets the "current_type" field.
func (_u *DatasetColumnUpdateOne) SetCurrentType(v string) *DatasetColumnUpdateOne {
	_u.mutation.SetCurrentType(v)
	return _u
}

// SetNillableCurrentType sets the "current_type" field if the given value is not nil.
func (_u *DatasetColumnUpdateOne) SetNillableCurrentType(v *string) *DatasetColumnUpdateOne {
	if v != nil {
		_u.SetCurrentType(*v)
	}
	return _u
}

// SetDataset sets the "dataset" edge to the Dataset entity.
func (_u *DatasetColumnUpdateOne) SetDataset(v *Dataset) *DatasetColumnUpdateOne {
	return _u.SetDatasetID(v.ID)
}

// AddRowValueIDs adds the "row_values" edge to the RowValue entity by IDs.
func (_u *DatasetColumnUpdateOne) AddRowValueIDs(ids ...uuid.UUID) *DatasetColumnUpdateOne {
	_u.mutation.AddRowValueIDs(ids...)
	return _u
}

// AddRowValues adds the "row_values" edges to the RowValue entity.
func (_u *DatasetColumnUpdateOne) AddRowValues(v ...*RowValue) *DatasetColumnUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRowValueIDs(ids...)
}

// Mutation returns the DatasetColumnMutation object of the builder.
func (_u *DatasetColumnUpdateOne) Mutation() *DatasetColumnMutation {
	return _u.mutation
}

// ClearDataset clears the "dataset" edge to the Dataset entity.
func (_u *DatasetColumnUpdateOne) ClearDataset() *DatasetColumnUpdateOne {
	_u.mutation.ClearDataset()
	return _u
}

// ClearRowValues clears all "row_values" edges to the RowValue entity.
func (_u *DatasetColumnUpdateOne) ClearRowValues() *DatasetColumnUpdateOne {
	_u.mutation.ClearRowValues()
	return _u
}

// RemoveRowValueIDs removes the "row_values" edge to RowValue entities by IDs.
func (_u *DatasetColumnUpdateOne) RemoveRowValueIDs(ids ...uuid.UUID) *DatasetColumnUpdateOne {
	_u.mutation.RemoveRowValueIDs(ids...)
	return _u
}

// RemoveRowValues removes "row_values" edges to RowValue entities.
func (_u *DatasetColumnUpdateOne) RemoveRowValues(v ...*RowValue) *DatasetColumnUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRowValueIDs(ids...)
}

// Where appends a list predicates to the DatasetColumnUpdate builder.
func (_u *DatasetColumnUpdateOne) Where(ps ...predicate.DatasetColumn) *DatasetColumnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DatasetColumnUpdateOne) Select(field string, fields ...string) *DatasetColumnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DatasetColumn entity.
func (_u *DatasetColumnUpdateOne) Save(ctx context.Context) (*DatasetColumn, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetColumnUpdateOne) SaveX(ctx context.Context) *DatasetColumn {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DatasetColumnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetColumnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetColumnUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := datasetcolumn.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DatasetColumn.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InferredType(); ok {
		if err := datasetcolumn.InferredTypeValidator(v); err != nil {
			return &ValidationError{Name: "inferred_type", err: fmt.Errorf(`ent: validator failed for field "DatasetColumn.inferred_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentType(); ok {
		if err := datasetcolumn.CurrentTypeValidator(v); err != nil {
			return &ValidationError{Name: "current_type", err: fmt.Errorf(`ent: validator failed for field "DatasetColumn.current_type": %w`, err)}
		}
	}
	if _u.mutation.DatasetCleared() && len(_u.mutation.DatasetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DatasetColumn.dataset"`)
	}
	return nil
}

func (_u *DatasetColumnUpdateOne) sqlSave(ctx context.Context) (_node *DatasetColumn, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datasetcolumn.Table, datasetcolumn.Columns, sqlgraph.NewFieldSpec(datasetcolumn.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DatasetColumn.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datasetcolumn.FieldID)
		for _, f := range fields {
			if !datasetcolumn.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != datasetcolumn.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(datasetcolumn.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InferredType(); ok {
		_spec.SetField(datasetcolumn.FieldInferredType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentType(); ok {
		_spec.SetField(datasetcolumn.FieldCurrentType, field.TypeString, value)
	}
	if _u.mutation.DatasetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DatasetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RowValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRowValuesIDs(); len(nodes) > 0 && !_u.mutation.RowValuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RowValuesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DatasetColumn{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datasetcolumn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
