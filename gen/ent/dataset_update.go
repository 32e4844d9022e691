// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/data-alchemy/backend/gen/ent/datasetcolumn"
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/data-alchemy/backend/gen/ent/predicate"
	"github.com/data-alchemy/backend/gen/ent/processingjob"
	"github.com/google/uuid"
)

// DatasetUpdate is the builder for updating Dataset entities.
type DatasetUpdate struct {
	config
	hooks    []Hook
	mutation *DatasetMutation
}

// Where appends a list predicates to the DatasetUpdate builder.
func (_u *DatasetUpdate) Where(ps ...predicate.Dataset) *DatasetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *DatasetUpdate) SetName(v string) *DatasetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableName(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DatasetUpdate) SetFilePath(v string) *DatasetUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableFilePath(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *DatasetUpdate) SetFileType(v string) *DatasetUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableFileType(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DatasetUpdate) SetStatus(v string) *DatasetUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableStatus(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRowsCount sets the "rows_count" field.
func (_u *DatasetUpdate) SetRowsCount(v int64) *DatasetUpdate {
	_u.mutation.ResetRowsCount()
	_u.mutation.SetRowsCount(v)
	return _u
}

// SetNillableRowsCount sets the "rows_count" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableRowsCount(v *int64) *DatasetUpdate {
	if v != nil {
		_u.SetRowsCount(*v)
	}
	return _u
}

// AddRowsCount adds value to the "rows_count" field.
func (_u *DatasetUpdate) AddRowsCount(v int64) *DatasetUpdate {
	_u.mutation.AddRowsCount(v)
	return _u
}

// ClearRowsCount clears the value of the "rows_count" field.
func (_u *DatasetUpdate) ClearRowsCount() *DatasetUpdate {
	_u.mutation.ClearRowsCount()
	return _u
}

// SetColumnsCount sets the "columns_count" field.
func (_u *DatasetUpdate) SetColumnsCount(v int) *DatasetUpdate {
	_u.mutation.ResetColumnsCount()
	_u.mutation.SetColumnsCount(v)
	return _u
}

// SetNillableColumnsCount sets the "columns_count" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableColumnsCount(v *int) *DatasetUpdate {
	if v != nil {
		_u.SetColumnsCount(*v)
	}
	return _u
}

// AddColumnsCount adds value to the "columns_count" field.
func (_u *DatasetUpdate) AddColumnsCount(v int) *DatasetUpdate {
	_u.mutation.AddColumnsCount(v)
	return _u
}

// ClearColumnsCount clears the value of the "columns_count" field.
func (_u *DatasetUpdate) ClearColumnsCount() *DatasetUpdate {
	_u.mutation.ClearColumnsCount()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DatasetUpdate) SetUpdatedAt(v time.Time) *DatasetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddColumnIDs adds the "columns" edge to the DatasetColumn entity by IDs.
func (_u *DatasetUpdate) AddColumnIDs(ids ...uuid.UUID) *DatasetUpdate {
	_u.mutation.AddColumnIDs(ids...)
	return _u
}

// AddColumns adds the "columns" edges to the DatasetColumn entity.
func (_u *DatasetUpdate) AddColumns(v ...*DatasetColumn) *DatasetUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddColumnIDs(ids...)
}

// AddRowIDs adds the "rows" edge to the DatasetRow entity by IDs.
func (_u *DatasetUpdate) AddRowIDs(ids ...uuid.UUID) *DatasetUpdate {
	_u.mutation.AddRowIDs(ids...)
	return _u
}

// AddRows adds the "rows" edges to the DatasetRow entity.
func (_u *DatasetUpdate) AddRows(v ...*DatasetRow) *DatasetUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRowIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_u *DatasetUpdate) AddJobIDs(ids ...uuid.UUID) *DatasetUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_u *DatasetUpdate) AddJobs(v ...*ProcessingJob) *DatasetUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DatasetMutation object of the builder.
func (_u *DatasetUpdate) Mutation() *DatasetMutation {
	return _u.mutation
}

// ClearColumns clears all "columns" edges to the DatasetColumn entity.
func (_u *DatasetUpdate) ClearColumns() *DatasetUpdate {
	_u.mutation.ClearColumns()
	return _u
}

// RemoveColumnIDs removes the "columns" edge to DatasetColumn entities by IDs.
func (_u *DatasetUpdate) RemoveColumnIDs(ids ...uuid.UUID) *DatasetUpdate {
	_u.mutation.RemoveColumnIDs(ids...)
	return _u
}

// RemoveColumns removes "columns" edges to DatasetColumn entities.
func (_u *DatasetUpdate) RemoveColumns(v ...*DatasetColumn) *DatasetUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveColumnIDs(ids...)
}

// ClearRows clears all "rows" edges to the DatasetRow entity.
func (_u *DatasetUpdate) ClearRows() *DatasetUpdate {
	_u.mutation.ClearRows()
	return _u
}

// RemoveRowIDs removes the "rows" edge to DatasetRow entities by IDs.
func (_u *DatasetUpdate) RemoveRowIDs(ids ...uuid.UUID) *DatasetUpdate {
	_u.mutation.RemoveRowIDs(ids...)
	return _u
}

// RemoveRows removes "rows" edges to DatasetRow entities.
func (_u *DatasetUpdate) RemoveRows(v ...*DatasetRow) *DatasetUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRowIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ProcessingJob entity.
func (_u *DatasetUpdate) ClearJobs() *DatasetUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessingJob entities by IDs.
func (_u *DatasetUpdate) RemoveJobIDs(ids ...uuid.UUID) *DatasetUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessingJob entities.
func (_u *DatasetUpdate) RemoveJobs(v ...*ProcessingJob) *DatasetUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DatasetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DatasetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DatasetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dataset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dataset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Dataset.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := dataset.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Dataset.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := dataset.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Dataset.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := dataset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Dataset.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DatasetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataset.Table, dataset.Columns, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dataset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(dataset.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(dataset.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dataset.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowsCount(); ok {
		_spec.SetField(dataset.FieldRowsCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRowsCount(); ok {
		_spec.AddField(dataset.FieldRowsCount, field.TypeInt64, value)
	}
	if _u.mutation.RowsCountCleared() {
		_spec.ClearField(dataset.FieldRowsCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.ColumnsCount(); ok {
		_spec.SetField(dataset.FieldColumnsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedColumnsCount(); ok {
		_spec.AddField(dataset.FieldColumnsCount, field.TypeInt, value)
	}
	if _u.mutation.ColumnsCountCleared() {
		_spec.ClearField(dataset.FieldColumnsCount, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dataset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ColumnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedColumnsIDs(); len(nodes) > 0 && !_u.mutation.ColumnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ColumnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRowsIDs(); len(nodes) > 0 && !_u.mutation.RowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RowsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DatasetUpdateOne is the builder for updating a single Dataset entity.
type DatasetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DatasetMutation
}

// SetName sets the "name" field.
func (_u *DatasetUpdateOne) SetName(v string) *DatasetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableName(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DatasetUpdateOne) SetFilePath(v string) *DatasetUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableFilePath(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *DatasetUpdateOne) SetFileType(v string) *DatasetUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableFileType(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DatasetUpdateOne) SetStatus(v string) *DatasetUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableStatus(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRowsCount sets the "rows_count" field.
func (_u *DatasetUpdateOne) SetRowsCount(v int64) *DatasetUpdateOne {
	_u.mutation.ResetRowsCount()
	_u.mutation.SetRowsCount(v)
	return _u
}

// SetNillableRowsCount sets the "rows_count" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableRowsCount(v *int64) *DatasetUpdateOne {
	if v != nil {
		_u.SetRowsCount(*v)
	}
	return _u
}

// AddRowsCount adds value to the "rows_count" field.
func (_u *DatasetUpdateOne) AddRowsCount(v int64) *DatasetUpdateOne {
	_u.mutation.AddRowsCount(v)
	return _u
}

// ClearRowsCount clears the value of the "rows_count" field.
func (_u *DatasetUpdateOne) ClearRowsCount() *DatasetUpdateOne {
	_u.mutation.ClearRowsCount()
	return _u
}

// SetColumnsCount sets the "columns_count" field.
func (_u *DatasetUpdateOne) SetColumnsCount(v int) *DatasetUpdateOne {
	_u.mutation.ResetColumnsCount()
	_u.mutation.SetColumnsCount(v)
	return _u
}

// SetNillableColumnsCount sets the "columns_count" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableColumnsCount(v *int) *DatasetUpdateOne {
	if v != nil {
		_u.SetColumnsCount(*v)
	}
	return _u
}

// AddColumnsCount adds value to the "columns_count" field.
func (_u *DatasetUpdateOne) AddColumnsCount(v int) *DatasetUpdateOne {
	_u.mutation.AddColumnsCount(v)
	return _u
}

// ClearColumnsCount clears the value of the "columns_count" field.
func (_u *DatasetUpdateOne) ClearColumnsCount() *DatasetUpdateOne {
	_u.mutation.ClearColumnsCount()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DatasetUpdateOne) SetUpdatedAt(v time.Time) *DatasetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddColumnIDs adds the "columns" edge to the DatasetColumn entity by IDs.
func (_u *DatasetUpdateOne) AddColumnIDs(ids ...uuid.UUID) *DatasetUpdateOne {
	_u.mutation.AddColumnIDs(ids...)
	return _u
}

// AddColumns adds the "columns" edges to the DatasetColumn entity.
func (_u *DatasetUpdateOne) AddColumns(v ...*DatasetColumn) *DatasetUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddColumnIDs(ids...)
}

// AddRowIDs adds the "rows" edge to the DatasetRow entity by IDs.
func (_u *DatasetUpdateOne) AddRowIDs(ids ...uuid.UUID) *DatasetUpdateOne {
	_u.mutation.AddRowIDs(ids...)
	return _u
}

// AddRows adds the "rows" edges to the DatasetRow entity.
func (_u *DatasetUpdateOne) AddRows(v ...*DatasetRow) *DatasetUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRowIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_u *DatasetUpdateOne) AddJobIDs(ids ...uuid.UUID) *DatasetUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_u *DatasetUpdateOne) AddJobs(v ...*ProcessingJob) *DatasetUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DatasetMutation object of the builder.
func (_u *DatasetUpdateOne) Mutation() *DatasetMutation {
	return _u.mutation
}

// ClearColumns clears all "columns" edges to the DatasetColumn entity.
func (_u *DatasetUpdateOne) ClearColumns() *DatasetUpdateOne {
	_u.mutation.ClearColumns()
	return _u
}

// RemoveColumnIDs removes the "columns" edge to DatasetColumn entities by IDs.
func (_u *DatasetUpdateOne) RemoveColumnIDs(ids ...uuid.UUID) *DatasetUpdateOne {
	_u.mutation.RemoveColumnIDs(ids...)
	return _u
}

// RemoveColumns removes "columns" edges to DatasetColumn entities.
func (_u *DatasetUpdateOne) RemoveColumns(v ...*DatasetColumn) *DatasetUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveColumnIDs(ids...)
}

// ClearRows clears all "rows" edges to the DatasetRow entity.
func (_u *DatasetUpdateOne) ClearRows() *DatasetUpdateOne {
	_u.mutation.ClearRows()
	return _u
}

// RemoveRowIDs removes the "rows" edge to DatasetRow entities by IDs.
func (_u *DatasetUpdateOne) RemoveRowIDs(ids ...uuid.UUID) *DatasetUpdateOne {
	_u.mutation.RemoveRowIDs(ids...)
	return _u
}

// RemoveRows removes "rows" edges to DatasetRow entities.
func (_u *DatasetUpdateOne) RemoveRows(v ...*DatasetRow) *DatasetUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRowIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ProcessingJob entity.
func (_u *DatasetUpdateOne) ClearJobs() *DatasetUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessingJob entities by IDs.
func (_u *DatasetUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *DatasetUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessingJob entities.
func (_u *DatasetUpdateOne) RemoveJobs(v ...*ProcessingJob) *DatasetUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the DatasetUpdate builder.
func (_u *DatasetUpdateOne) Where(ps ...predicate.Dataset) *DatasetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DatasetUpdateOne) Select(field string, fields ...string) *DatasetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Dataset entity.
func (_u *DatasetUpdateOne) Save(ctx context.Context) (*Dataset, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetUpdateOne) SaveX(ctx context.Context) *Dataset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DatasetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DatasetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dataset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dataset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Dataset.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := dataset.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Dataset.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := dataset.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Dataset.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := dataset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Dataset.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DatasetUpdateOne) sqlSave(ctx context.Context) (_node *Dataset, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataset.Table, dataset.Columns, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Dataset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataset.FieldID)
		for _, f := range fields {
			if !dataset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dataset.FieldID {
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
		_spec.SetField(dataset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(dataset.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(dataset.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dataset.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowsCount(); ok {
		_spec.SetField(dataset.FieldRowsCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRowsCount(); ok {
		_spec.AddField(dataset.FieldRowsCount, field.TypeInt64, value)
	}
	if _u.mutation.RowsCountCleared() {
		_spec.ClearField(dataset.FieldRowsCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.ColumnsCount(); ok {
		_spec.SetField(dataset.FieldColumnsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedColumnsCount(); ok {
		_spec.AddField(dataset.FieldColumnsCount, field.TypeInt, value)
	}
	if _u.mutation.ColumnsCountCleared() {
		_spec.ClearField(dataset.FieldColumnsCount, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dataset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ColumnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedColumnsIDs(); len(nodes) > 0 && !_u.mutation.ColumnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ColumnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRowsIDs(); len(nodes) > 0 && !_u.mutation.RowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RowsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Dataset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
