// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/data-alchemy/backend/gen/ent/datasetcolumn"
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/data-alchemy/backend/gen/ent/predicate"
	"github.com/data-alchemy/backend/gen/ent/processingjob"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDataset       = "Dataset"
	TypeDatasetColumn = "DatasetColumn"
	TypeDatasetRow    = "DatasetRow"
	TypeProcessingJob = "ProcessingJob"
	TypeRowValue      = "RowValue"
)

// DatasetMutation represents an operation that mutates the Dataset nodes in the graph.
type DatasetMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	file_path        *string
	file_type        *string
	status           *string
	rows_count       *int64
	addrows_count    *int64
	columns_count    *int
	addcolumns_count *int
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	columns          map[uuid.UUID]struct{}
	removedcolumns   map[uuid.UUID]struct{}
	clearedcolumns   bool
	rows             map[uuid.UUID]struct{}
	removedrows      map[uuid.UUID]struct{}
	clearedrows      bool
	jobs             map[uuid.UUID]struct{}
	removedjobs      map[uuid.UUID]struct{}
	clearedjobs      bool
	done             bool
	oldValue         func(context.Context) (*Dataset, error)
	predicates       []predicate.Dataset
}

var _ ent.Mutation = (*DatasetMutation)(nil)

// datasetOption allows management of the mutation configuration using functional options.
type datasetOption func(*DatasetMutation)

// newDatasetMutation creates new mutation for the Dataset entity.
func newDatasetMutation(c config, op Op, opts ...datasetOption) *DatasetMutation {
	m := &DatasetMutation{
		config:        c,
		op:            op,
		typ:           TypeDataset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDatasetID sets the ID field of the mutation.
func withDatasetID(id uuid.UUID) datasetOption {
	return func(m *DatasetMutation) {
		var (
			err   error
			once  sync.Once
			value *Dataset
		)
		m.oldValue = func(ctx context.Context) (*Dataset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Dataset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataset sets the old Dataset of the mutation.
func withDataset(node *Dataset) datasetOption {
	return func(m *DatasetMutation) {
		m.oldValue = func(context.Context) (*Dataset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DatasetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DatasetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Dataset entities.
func (m *DatasetMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DatasetMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DatasetMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Dataset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *DatasetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DatasetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DatasetMutation) ResetName() {
	m.name = nil
}

// SetFilePath sets the "file_path" field.
func (m *DatasetMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *DatasetMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *DatasetMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFileType sets the "file_type" field.
func (m *DatasetMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *DatasetMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *DatasetMutation) ResetFileType() {
	m.file_type = nil
}

// SetStatus sets the "status" field.
func (m *DatasetMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DatasetMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DatasetMutation) ResetStatus() {
	m.status = nil
}

// SetRowsCount sets the "rows_count" field.
func (m *DatasetMutation) SetRowsCount(i int64) {
	m.rows_count = &i
	m.addrows_count = nil
}

// RowsCount returns the value of the "rows_count" field in the mutation.
func (m *DatasetMutation) RowsCount() (r int64, exists bool) {
	v := m.rows_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRowsCount returns the old "rows_count" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldRowsCount(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowsCount: %w", err)
	}
	return oldValue.RowsCount, nil
}

// AddRowsCount adds i to the "rows_count" field.
func (m *DatasetMutation) AddRowsCount(i int64) {
	if m.addrows_count != nil {
		*m.addrows_count += i
	} else {
		m.addrows_count = &i
	}
}

// AddedRowsCount returns the value that was added to the "rows_count" field in this mutation.
func (m *DatasetMutation) AddedRowsCount() (r int64, exists bool) {
	v := m.addrows_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearRowsCount clears the value of the "rows_count" field.
func (m *DatasetMutation) ClearRowsCount() {
	m.rows_count = nil
	m.addrows_count = nil
	m.clearedFields[dataset.FieldRowsCount] = struct{}{}
}

// RowsCountCleared returns if the "rows_count" field was cleared in this mutation.
func (m *DatasetMutation) RowsCountCleared() bool {
	_, ok := m.clearedFields[dataset.FieldRowsCount]
	return ok
}

// ResetRowsCount resets all changes to the "rows_count" field.
func (m *DatasetMutation) ResetRowsCount() {
	m.rows_count = nil
	m.addrows_count = nil
	delete(m.clearedFields, dataset.FieldRowsCount)
}

// SetColumnsCount sets the "columns_count" field.
func (m *DatasetMutation) SetColumnsCount(i int) {
	m.columns_count = &i
	m.addcolumns_count = nil
}

// ColumnsCount returns the value of the "columns_count" field in the mutation.
func (m *DatasetMutation) ColumnsCount() (r int, exists bool) {
	v := m.columns_count
	if v == nil {
		return
	}
	return *v, true
}

// OldColumnsCount returns the old "columns_count" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldColumnsCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumnsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumnsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumnsCount: %w", err)
	}
	return oldValue.ColumnsCount, nil
}

// AddColumnsCount adds i to the "columns_count" field.
func (m *DatasetMutation) AddColumnsCount(i int) {
	if m.addcolumns_count != nil {
		*m.addcolumns_count += i
	} else {
		m.addcolumns_count = &i
	}
}

// AddedColumnsCount returns the value that was added to the "columns_count" field in this mutation.
func (m *DatasetMutation) AddedColumnsCount() (r int, exists bool) {
	v := m.addcolumns_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearColumnsCount clears the value of the "columns_count" field.
func (m *DatasetMutation) ClearColumnsCount() {
	m.columns_count = nil
	m.addcolumns_count = nil
	m.clearedFields[dataset.FieldColumnsCount] = struct{}{}
}

// ColumnsCountCleared returns if the "columns_count" field was cleared in this mutation.
func (m *DatasetMutation) ColumnsCountCleared() bool {
	_, ok := m.clearedFields[dataset.FieldColumnsCount]
	return ok
}

// ResetColumnsCount resets all changes to the "columns_count" field.
func (m *DatasetMutation) ResetColumnsCount() {
	m.columns_count = nil
	m.addcolumns_count = nil
	delete(m.clearedFields, dataset.FieldColumnsCount)
}

// SetCreatedAt sets the "created_at" field.
func (m *DatasetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DatasetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DatasetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DatasetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DatasetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DatasetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddColumnIDs adds the "columns" edge to the DatasetColumn entity by ids.
func (m *DatasetMutation) AddColumnIDs(ids ...uuid.UUID) {
	if m.columns == nil {
		m.columns = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.columns[ids[i]] = struct{}{}
	}
}

// ClearColumns clears the "columns" edge to the DatasetColumn entity.
func (m *DatasetMutation) ClearColumns() {
	m.clearedcolumns = true
}

// ColumnsCleared reports if the "columns" edge to the DatasetColumn entity was cleared.
func (m *DatasetMutation) ColumnsCleared() bool {
	return m.clearedcolumns
}

// RemoveColumnIDs removes the "columns" edge to the DatasetColumn entity by IDs.
func (m *DatasetMutation) RemoveColumnIDs(ids ...uuid.UUID) {
	if m.removedcolumns == nil {
		m.removedcolumns = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.columns, ids[i])
		m.removedcolumns[ids[i]] = struct{}{}
	}
}

// RemovedColumns returns the removed IDs of the "columns" edge to the DatasetColumn entity.
func (m *DatasetMutation) RemovedColumnsIDs() (ids []uuid.UUID) {
	for id := range m.removedcolumns {
		ids = append(ids, id)
	}
	return
}

// ColumnsIDs returns the "columns" edge IDs in the mutation.
func (m *DatasetMutation) ColumnsIDs() (ids []uuid.UUID) {
	for id := range m.columns {
		ids = append(ids, id)
	}
	return
}

// ResetColumns resets all changes to the "columns" edge.
func (m *DatasetMutation) ResetColumns() {
	m.columns = nil
	m.clearedcolumns = false
	m.removedcolumns = nil
}

// AddRowIDs adds the "rows" edge to the DatasetRow entity by ids.
func (m *DatasetMutation) AddRowIDs(ids ...uuid.UUID) {
	if m.rows == nil {
		m.rows = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.rows[ids[i]] = struct{}{}
	}
}

// ClearRows clears the "rows" edge to the DatasetRow entity.
func (m *DatasetMutation) ClearRows() {
	m.clearedrows = true
}

// RowsCleared reports if the "rows" edge to the DatasetRow entity was cleared.
func (m *DatasetMutation) RowsCleared() bool {
	return m.clearedrows
}

// RemoveRowIDs removes the "rows" edge to the DatasetRow entity by IDs.
func (m *DatasetMutation) RemoveRowIDs(ids ...uuid.UUID) {
	if m.removedrows == nil {
		m.removedrows = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.rows, ids[i])
		m.removedrows[ids[i]] = struct{}{}
	}
}

// RemovedRows returns the removed IDs of the "rows" edge to the DatasetRow entity.
func (m *DatasetMutation) RemovedRowsIDs() (ids []uuid.UUID) {
	for id := range m.removedrows {
		ids = append(ids, id)
	}
	return
}

// RowsIDs returns the "rows" edge IDs in the mutation.
func (m *DatasetMutation) RowsIDs() (ids []uuid.UUID) {
	for id := range m.rows {
		ids = append(ids, id)
	}
	return
}

// ResetRows resets all changes to the "rows" edge.
func (m *DatasetMutation) ResetRows() {
	m.rows = nil
	m.clearedrows = false
	m.removedrows = nil
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by ids.
func (m *DatasetMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ProcessingJob entity.
func (m *DatasetMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ProcessingJob entity was cleared.
func (m *DatasetMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ProcessingJob entity by IDs.
func (m *DatasetMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ProcessingJob entity.
func (m *DatasetMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DatasetMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DatasetMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the DatasetMutation builder.
func (m *DatasetMutation) Where(ps ...predicate.Dataset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DatasetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DatasetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Dataset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DatasetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DatasetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Dataset).
func (m *DatasetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DatasetMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, dataset.FieldName)
	}
	if m.file_path != nil {
		fields = append(fields, dataset.FieldFilePath)
	}
	if m.file_type != nil {
		fields = append(fields, dataset.FieldFileType)
	}
	if m.status != nil {
		fields = append(fields, dataset.FieldStatus)
	}
	if m.rows_count != nil {
		fields = append(fields, dataset.FieldRowsCount)
	}
	if m.columns_count != nil {
		fields = append(fields, dataset.FieldColumnsCount)
	}
	if m.created_at != nil {
		fields = append(fields, dataset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dataset.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DatasetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dataset.FieldName:
		return m.Name()
	case dataset.FieldFilePath:
		return m.FilePath()
	case dataset.FieldFileType:
		return m.FileType()
	case dataset.FieldStatus:
		return m.Status()
	case dataset.FieldRowsCount:
		return m.RowsCount()
	case dataset.FieldColumnsCount:
		return m.ColumnsCount()
	case dataset.FieldCreatedAt:
		return m.CreatedAt()
	case dataset.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DatasetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dataset.FieldName:
		return m.OldName(ctx)
	case dataset.FieldFilePath:
		return m.OldFilePath(ctx)
	case dataset.FieldFileType:
		return m.OldFileType(ctx)
	case dataset.FieldStatus:
		return m.OldStatus(ctx)
	case dataset.FieldRowsCount:
		return m.OldRowsCount(ctx)
	case dataset.FieldColumnsCount:
		return m.OldColumnsCount(ctx)
	case dataset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dataset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Dataset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dataset.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case dataset.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case dataset.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case dataset.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case dataset.FieldRowsCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowsCount(v)
		return nil
	case dataset.FieldColumnsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumnsCount(v)
		return nil
	case dataset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dataset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Dataset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DatasetMutation) AddedFields() []string {
	var fields []string
	if m.addrows_count != nil {
		fields = append(fields, dataset.FieldRowsCount)
	}
	if m.addcolumns_count != nil {
		fields = append(fields, dataset.FieldColumnsCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DatasetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dataset.FieldRowsCount:
		return m.AddedRowsCount()
	case dataset.FieldColumnsCount:
		return m.AddedColumnsCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dataset.FieldRowsCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowsCount(v)
		return nil
	case dataset.FieldColumnsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddColumnsCount(v)
		return nil
	}
	return fmt.Errorf("unknown Dataset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DatasetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dataset.FieldRowsCount) {
		fields = append(fields, dataset.FieldRowsCount)
	}
	if m.FieldCleared(dataset.FieldColumnsCount) {
		fields = append(fields, dataset.FieldColumnsCount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DatasetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DatasetMutation) ClearField(name string) error {
	switch name {
	case dataset.FieldRowsCount:
		m.ClearRowsCount()
		return nil
	case dataset.FieldColumnsCount:
		m.ClearColumnsCount()
		return nil
	}
	return fmt.Errorf("unknown Dataset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DatasetMutation) ResetField(name string) error {
	switch name {
	case dataset.FieldName:
		m.ResetName()
		return nil
	case dataset.FieldFilePath:
		m.ResetFilePath()
		return nil
	case dataset.FieldFileType:
		m.ResetFileType()
		return nil
	case dataset.FieldStatus:
		m.ResetStatus()
		return nil
	case dataset.FieldRowsCount:
		m.ResetRowsCount()
		return nil
	case dataset.FieldColumnsCount:
		m.ResetColumnsCount()
		return nil
	case dataset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dataset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Dataset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DatasetMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.columns != nil {
		edges = append(edges, dataset.EdgeColumns)
	}
	if m.rows != nil {
		edges = append(edges, dataset.EdgeRows)
	}
	if m.jobs != nil {
		edges = append(edges, dataset.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DatasetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dataset.EdgeColumns:
		ids := make([]ent.Value, 0, len(m.columns))
		for id := range m.columns {
			ids = append(ids, id)
		}
		return ids
	case dataset.EdgeRows:
		ids := make([]ent.Value, 0, len(m.rows))
		for id := range m.rows {
			ids = append(ids, id)
		}
		return ids
	case dataset.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DatasetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedcolumns != nil {
		edges = append(edges, dataset.EdgeColumns)
	}
	if m.removedrows != nil {
		edges = append(edges, dataset.EdgeRows)
	}
	if m.removedjobs != nil {
		edges = append(edges, dataset.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DatasetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case dataset.EdgeColumns:
		ids := make([]ent.Value, 0, len(m.removedcolumns))
		for id := range m.removedcolumns {
			ids = append(ids, id)
		}
		return ids
	case dataset.EdgeRows:
		ids := make([]ent.Value, 0, len(m.removedrows))
		for id := range m.removedrows {
			ids = append(ids, id)
		}
		return ids
	case dataset.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DatasetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcolumns {
		edges = append(edges, dataset.EdgeColumns)
	}
	if m.clearedrows {
		edges = append(edges, dataset.EdgeRows)
	}
	if m.clearedjobs {
		edges = append(edges, dataset.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DatasetMutation) EdgeCleared(name string) bool {
	switch name {
	case dataset.EdgeColumns:
		return m.clearedcolumns
	case dataset.EdgeRows:
		return m.clearedrows
	case dataset.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DatasetMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Dataset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DatasetMutation) ResetEdge(name string) error {
	switch name {
	case dataset.EdgeColumns:
		m.ResetColumns()
		return nil
	case dataset.EdgeRows:
		m.ResetRows()
		return nil
	case dataset.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Dataset edge %s", name)
}

// DatasetColumnMutation represents an operation that mutates the DatasetColumn nodes in the graph.
type DatasetColumnMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	original_name     *string
	position          *int
	addposition       *int
	inferred_type     *string
	current_type      *string
	clearedFields     map[string]struct{}
	dataset           *uuid.UUID
	cleareddataset    bool
	row_values        map[uuid.UUID]struct{}
	removedrow_values map[uuid.UUID]struct{}
	clearedrow_values bool
	done              bool
	oldValue          func(context.Context) (*DatasetColumn, error)
	predicates        []predicate.DatasetColumn
}

var _ ent.Mutation = (*DatasetColumnMutation)(nil)

// datasetcolumnOption allows management of the mutation configuration using functional options.
type datasetcolumnOption func(*DatasetColumnMutation)

// newDatasetColumnMutation creates new mutation for the DatasetColumn entity.
func newDatasetColumnMutation(c config, op Op, opts ...datasetcolumnOption) *DatasetColumnMutation {
	m := &DatasetColumnMutation{
		config:        c,
		op:            op,
		typ:           TypeDatasetColumn,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDatasetColumnID sets the ID field of the mutation.
func withDatasetColumnID(id uuid.UUID) datasetcolumnOption {
	return func(m *DatasetColumnMutation) {
		var (
			err   error
			once  sync.Once
			value *DatasetColumn
		)
		m.oldValue = func(ctx context.Context) (*DatasetColumn, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DatasetColumn.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDatasetColumn sets the old DatasetColumn of the mutation.
func withDatasetColumn(node *DatasetColumn) datasetcolumnOption {
	return func(m *DatasetColumnMutation) {
		m.oldValue = func(context.Context) (*DatasetColumn, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DatasetColumnMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DatasetColumnMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DatasetColumn entities.
func (m *DatasetColumnMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DatasetColumnMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DatasetColumnMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DatasetColumn.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDatasetID sets the "dataset_id" field.
func (m *DatasetColumnMutation) SetDatasetID(u uuid.UUID) {
	m.dataset = &u
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *DatasetColumnMutation) DatasetID() (r uuid.UUID, exists bool) {
	v := m.dataset
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the DatasetColumn entity.
// If the DatasetColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetColumnMutation) OldDatasetID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *DatasetColumnMutation) ResetDatasetID() {
	m.dataset = nil
}

// SetName sets the "name" field.
func (m *DatasetColumnMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DatasetColumnMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DatasetColumn entity.
// If the DatasetColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetColumnMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DatasetColumnMutation) ResetName() {
	m.name = nil
}

// SetOriginalName sets the "original_name" field.
func (m *DatasetColumnMutation) SetOriginalName(s string) {
	m.original_name = &s
}

// OriginalName returns the value of the "original_name" field in the mutation.
func (m *DatasetColumnMutation) OriginalName() (r string, exists bool) {
	v := m.original_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalName returns the old "original_name" field's value of the DatasetColumn entity.
// If the DatasetColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetColumnMutation) OldOriginalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalName: %w", err)
	}
	return oldValue.OriginalName, nil
}

// ResetOriginalName resets all changes to the "original_name" field.
func (m *DatasetColumnMutation) ResetOriginalName() {
	m.original_name = nil
}

// SetPosition sets the "position" field.
func (m *DatasetColumnMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *DatasetColumnMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the DatasetColumn entity.
// If the DatasetColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetColumnMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *DatasetColumnMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *DatasetColumnMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *DatasetColumnMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetInferredType sets the "inferred_type" field.
func (m *DatasetColumnMutation) SetInferredType(s string) {
	m.inferred_type = &s
}

// InferredType returns the value of the "inferred_type" field in the mutation.
func (m *DatasetColumnMutation) InferredType() (r string, exists bool) {
	v := m.inferred_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInferredType returns the old "inferred_type" field's value of the DatasetColumn entity.
// If the DatasetColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetColumnMutation) OldInferredType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInferredType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInferredType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInferredType: %w", err)
	}
	return oldValue.InferredType, nil
}

// ResetInferredType resets all changes to the "inferred_type" field.
func (m *DatasetColumnMutation) ResetInferredType() {
	m.inferred_type = nil
}

// SetCurrentType sets the "current_type" field.
func (m *DatasetColumnMutation) SetCurrentType(s string) {
	m.current_type = &s
}

// CurrentType returns the value of the "current_type" field in the mutation.
func (m *DatasetColumnMutation) CurrentType() (r string, exists bool) {
	v := m.current_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentType returns the old "current_type" field's value of the DatasetColumn entity.
// If the DatasetColumn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetColumnMutation) OldCurrentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentType: %w", err)
	}
	return oldValue.CurrentType, nil
}

// ResetCurrentType resets all changes to the "current_type" field.
func (m *DatasetColumnMutation) ResetCurrentType() {
	m.current_type = nil
}

// ClearDataset clears the "dataset" edge to the Dataset entity.
func (m *DatasetColumnMutation) ClearDataset() {
	m.cleareddataset = true
	m.clearedFields[datasetcolumn.FieldDatasetID] = struct{}{}
}

// DatasetCleared reports if the "dataset" edge to the Dataset entity was cleared.
func (m *DatasetColumnMutation) DatasetCleared() bool {
	return m.cleareddataset
}

// DatasetIDs returns the "dataset" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DatasetID instead. It exists only for internal usage by the builders.
func (m *DatasetColumnMutation) DatasetIDs() (ids []uuid.UUID) {
	if id := m.dataset; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDataset resets all changes to the "dataset" edge.
func (m *DatasetColumnMutation) ResetDataset() {
	m.dataset = nil
	m.cleareddataset = false
}

// AddRowValueIDs adds the "row_values" edge to the RowValue entity by ids.
func (m *DatasetColumnMutation) AddRowValueIDs(ids ...uuid.UUID) {
	if m.row_values == nil {
		m.row_values = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.row_values[ids[i]] = struct{}{}
	}
}

// ClearRowValues clears the "row_values" edge to the RowValue entity.
func (m *DatasetColumnMutation) ClearRowValues() {
	m.clearedrow_values = true
}

// RowValuesCleared reports if the "row_values" edge to the RowValue entity was cleared.
func (m *DatasetColumnMutation) RowValuesCleared() bool {
	return m.clearedrow_values
}

// RemoveRowValueIDs removes the "row_values" edge to the RowValue entity by IDs.
func (m *DatasetColumnMutation) RemoveRowValueIDs(ids ...uuid.UUID) {
	if m.removedrow_values == nil {
		m.removedrow_values = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.row_values, ids[i])
		m.removedrow_values[ids[i]] = struct{}{}
	}
}

// RemovedRowValues returns the removed IDs of the "row_values" edge to the RowValue entity.
func (m *DatasetColumnMutation) RemovedRowValuesIDs() (ids []uuid.UUID) {
	for id := range m.removedrow_values {
		ids = append(ids, id)
	}
	return
}

// RowValuesIDs returns the "row_values" edge IDs in the mutation.
func (m *DatasetColumnMutation) RowValuesIDs() (ids []uuid.UUID) {
	for id := range m.row_values {
		ids = append(ids, id)
	}
	return
}

// ResetRowValues resets all changes to the "row_values" edge.
func (m *DatasetColumnMutation) ResetRowValues() {
	m.row_values = nil
	m.clearedrow_values = false
	m.removedrow_values = nil
}

// Where appends a list predicates to the DatasetColumnMutation builder.
func (m *DatasetColumnMutation) Where(ps ...predicate.DatasetColumn) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DatasetColumnMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DatasetColumnMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DatasetColumn, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DatasetColumnMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DatasetColumnMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DatasetColumn).
func (m *DatasetColumnMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DatasetColumnMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.dataset != nil {
		fields = append(fields, datasetcolumn.FieldDatasetID)
	}
	if m.name != nil {
		fields = append(fields, datasetcolumn.FieldName)
	}
	if m.original_name != nil {
		fields = append(fields, datasetcolumn.FieldOriginalName)
	}
	if m.position != nil {
		fields = append(fields, datasetcolumn.FieldPosition)
	}
	if m.inferred_type != nil {
		fields = append(fields, datasetcolumn.FieldInferredType)
	}
	if m.current_type != nil {
		fields = append(fields, datasetcolumn.FieldCurrentType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DatasetColumnMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case datasetcolumn.FieldDatasetID:
		return m.DatasetID()
	case datasetcolumn.FieldName:
		return m.Name()
	case datasetcolumn.FieldOriginalName:
		return m.OriginalName()
	case datasetcolumn.FieldPosition:
		return m.Position()
	case datasetcolumn.FieldInferredType:
		return m.InferredType()
	case datasetcolumn.FieldCurrentType:
		return m.CurrentType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DatasetColumnMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case datasetcolumn.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case datasetcolumn.FieldName:
		return m.OldName(ctx)
	case datasetcolumn.FieldOriginalName:
		return m.OldOriginalName(ctx)
	case datasetcolumn.FieldPosition:
		return m.OldPosition(ctx)
	case datasetcolumn.FieldInferredType:
		return m.OldInferredType(ctx)
	case datasetcolumn.FieldCurrentType:
		return m.OldCurrentType(ctx)
	}
	return nil, fmt.Errorf("unknown DatasetColumn field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasetColumnMutation) SetField(name string, value ent.Value) error {
	switch name {
	case datasetcolumn.FieldDatasetID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case datasetcolumn.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case datasetcolumn.FieldOriginalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalName(v)
		return nil
	case datasetcolumn.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case datasetcolumn.FieldInferredType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInferredType(v)
		return nil
	case datasetcolumn.FieldCurrentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentType(v)
		return nil
	}
	return fmt.Errorf("unknown DatasetColumn field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DatasetColumnMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, datasetcolumn.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DatasetColumnMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case datasetcolumn.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasetColumnMutation) AddField(name string, value ent.Value) error {
	switch name {
	case datasetcolumn.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown DatasetColumn numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DatasetColumnMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DatasetColumnMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DatasetColumnMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DatasetColumn nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DatasetColumnMutation) ResetField(name string) error {
	switch name {
	case datasetcolumn.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case datasetcolumn.FieldName:
		m.ResetName()
		return nil
	case datasetcolumn.FieldOriginalName:
		m.ResetOriginalName()
		return nil
	case datasetcolumn.FieldPosition:
		m.ResetPosition()
		return nil
	case datasetcolumn.FieldInferredType:
		m.ResetInferredType()
		return nil
	case datasetcolumn.FieldCurrentType:
		m.ResetCurrentType()
		return nil
	}
	return fmt.Errorf("unknown DatasetColumn field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DatasetColumnMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.dataset != nil {
		edges = append(edges, datasetcolumn.EdgeDataset)
	}
	if m.row_values != nil {
		edges = append(edges, datasetcolumn.EdgeRowValues)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DatasetColumnMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case datasetcolumn.EdgeDataset:
		if id := m.dataset; id != nil {
			return []ent.Value{*id}
		}
	case datasetcolumn.EdgeRowValues:
		ids := make([]ent.Value, 0, len(m.row_values))
		for id := range m.row_values {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DatasetColumnMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrow_values != nil {
		edges = append(edges, datasetcolumn.EdgeRowValues)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DatasetColumnMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case datasetcolumn.EdgeRowValues:
		ids := make([]ent.Value, 0, len(m.removedrow_values))
		for id := range m.removedrow_values {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DatasetColumnMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddataset {
		edges = append(edges, datasetcolumn.EdgeDataset)
	}
	if m.clearedrow_values {
		edges = append(edges, datasetcolumn.EdgeRowValues)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DatasetColumnMutation) EdgeCleared(name string) bool {
	switch name {
	case datasetcolumn.EdgeDataset:
		return m.cleareddataset
	case datasetcolumn.EdgeRowValues:
		return m.clearedrow_values
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DatasetColumnMutation) ClearEdge(name string) error {
	switch name {
	case datasetcolumn.EdgeDataset:
		m.ClearDataset()
		return nil
	}
	return fmt.Errorf("unknown DatasetColumn unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DatasetColumnMutation) ResetEdge(name string) error {
	switch name {
	case datasetcolumn.EdgeDataset:
		m.ResetDataset()
		return nil
	case datasetcolumn.EdgeRowValues:
		m.ResetRowValues()
		return nil
	}
	return fmt.Errorf("unknown DatasetColumn edge %s", name)
}

// DatasetRowMutation represents an operation that mutates the DatasetRow nodes in the graph.
type DatasetRowMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	row_index      *int64
	addrow_index   *int64
	created_at     *time.Time
	clearedFields  map[string]struct{}
	dataset        *uuid.UUID
	cleareddataset bool
	values         map[uuid.UUID]struct{}
	removedvalues  map[uuid.UUID]struct{}
	clearedvalues  bool
	done           bool
	oldValue       func(context.Context) (*DatasetRow, error)
	predicates     []predicate.DatasetRow
}

var _ ent.Mutation = (*DatasetRowMutation)(nil)

// datasetrowOption allows management of the mutation configuration using functional options.
type datasetrowOption func(*DatasetRowMutation)

// newDatasetRowMutation creates new mutation for the DatasetRow entity.
func newDatasetRowMutation(c config, op Op, opts ...datasetrowOption) *DatasetRowMutation {
	m := &DatasetRowMutation{
		config:        c,
		op:            op,
		typ:           TypeDatasetRow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDatasetRowID sets the ID field of the mutation.
func withDatasetRowID(id uuid.UUID) datasetrowOption {
	return func(m *DatasetRowMutation) {
		var (
			err   error
			once  sync.Once
			value *DatasetRow
		)
		m.oldValue = func(ctx context.Context) (*DatasetRow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DatasetRow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDatasetRow sets the old DatasetRow of the mutation.
func withDatasetRow(node *DatasetRow) datasetrowOption {
	return func(m *DatasetRowMutation) {
		m.oldValue = func(context.Context) (*DatasetRow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DatasetRowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DatasetRowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DatasetRow entities.
func (m *DatasetRowMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DatasetRowMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DatasetRowMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DatasetRow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDatasetID sets the "dataset_id" field.
func (m *DatasetRowMutation) SetDatasetID(u uuid.UUID) {
	m.dataset = &u
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *DatasetRowMutation) DatasetID() (r uuid.UUID, exists bool) {
	v := m.dataset
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the DatasetRow entity.
// If the DatasetRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetRowMutation) OldDatasetID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *DatasetRowMutation) ResetDatasetID() {
	m.dataset = nil
}

// SetRowIndex sets the "row_index" field.
func (m *DatasetRowMutation) SetRowIndex(i int64) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *DatasetRowMutation) RowIndex() (r int64, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the DatasetRow entity.
// If the DatasetRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetRowMutation) OldRowIndex(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *DatasetRowMutation) AddRowIndex(i int64) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *DatasetRowMutation) AddedRowIndex() (r int64, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *DatasetRowMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DatasetRowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DatasetRowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DatasetRow entity.
// If the DatasetRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetRowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DatasetRowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDataset clears the "dataset" edge to the Dataset entity.
func (m *DatasetRowMutation) ClearDataset() {
	m.cleareddataset = true
	m.clearedFields[datasetrow.FieldDatasetID] = struct{}{}
}

// DatasetCleared reports if the "dataset" edge to the Dataset entity was cleared.
func (m *DatasetRowMutation) DatasetCleared() bool {
	return m.cleareddataset
}

// DatasetIDs returns the "dataset" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DatasetID instead. It exists only for internal usage by the builders.
func (m *DatasetRowMutation) DatasetIDs() (ids []uuid.UUID) {
	if id := m.dataset; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDataset resets all changes to the "dataset" edge.
func (m *DatasetRowMutation) ResetDataset() {
	m.dataset = nil
	m.cleareddataset = false
}

// AddValueIDs adds the "values" edge to the RowValue entity by ids.
func (m *DatasetRowMutation) AddValueIDs(ids ...uuid.UUID) {
	if m.values == nil {
		m.values = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.values[ids[i]] = struct{}{}
	}
}

// ClearValues clears the "values" edge to the RowValue entity.
func (m *DatasetRowMutation) ClearValues() {
	m.clearedvalues = true
}

// ValuesCleared reports if the "values" edge to the RowValue entity was cleared.
func (m *DatasetRowMutation) ValuesCleared() bool {
	return m.clearedvalues
}

// RemoveValueIDs removes the "values" edge to the RowValue entity by IDs.
func (m *DatasetRowMutation) RemoveValueIDs(ids ...uuid.UUID) {
	if m.removedvalues == nil {
		m.removedvalues = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.values, ids[i])
		m.removedvalues[ids[i]] = struct{}{}
	}
}

// RemovedValues returns the removed IDs of the "values" edge to the RowValue entity.
func (m *DatasetRowMutation) RemovedValuesIDs() (ids []uuid.UUID) {
	for id := range m.removedvalues {
		ids = append(ids, id)
	}
	return
}

// ValuesIDs returns the "values" edge IDs in the mutation.
func (m *DatasetRowMutation) ValuesIDs() (ids []uuid.UUID) {
	for id := range m.values {
		ids = append(ids, id)
	}
	return
}

// ResetValues resets all changes to the "values" edge.
func (m *DatasetRowMutation) ResetValues() {
	m.values = nil
	m.clearedvalues = false
	m.removedvalues = nil
}

// Where appends a list predicates to the DatasetRowMutation builder.
func (m *DatasetRowMutation) Where(ps ...predicate.DatasetRow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DatasetRowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DatasetRowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DatasetRow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DatasetRowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DatasetRowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DatasetRow).
func (m *DatasetRowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DatasetRowMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.dataset != nil {
		fields = append(fields, datasetrow.FieldDatasetID)
	}
	if m.row_index != nil {
		fields = append(fields, datasetrow.FieldRowIndex)
	}
	if m.created_at != nil {
		fields = append(fields, datasetrow.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DatasetRowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case datasetrow.FieldDatasetID:
		return m.DatasetID()
	case datasetrow.FieldRowIndex:
		return m.RowIndex()
	case datasetrow.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DatasetRowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case datasetrow.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case datasetrow.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case datasetrow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DatasetRow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasetRowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case datasetrow.FieldDatasetID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case datasetrow.FieldRowIndex:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case datasetrow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DatasetRow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DatasetRowMutation) AddedFields() []string {
	var fields []string
	if m.addrow_index != nil {
		fields = append(fields, datasetrow.FieldRowIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DatasetRowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case datasetrow.FieldRowIndex:
		return m.AddedRowIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasetRowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case datasetrow.FieldRowIndex:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	}
	return fmt.Errorf("unknown DatasetRow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DatasetRowMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DatasetRowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DatasetRowMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DatasetRow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DatasetRowMutation) ResetField(name string) error {
	switch name {
	case datasetrow.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case datasetrow.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case datasetrow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DatasetRow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DatasetRowMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.dataset != nil {
		edges = append(edges, datasetrow.EdgeDataset)
	}
	if m.values != nil {
		edges = append(edges, datasetrow.EdgeValues)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DatasetRowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case datasetrow.EdgeDataset:
		if id := m.dataset; id != nil {
			return []ent.Value{*id}
		}
	case datasetrow.EdgeValues:
		ids := make([]ent.Value, 0, len(m.values))
		for id := range m.values {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DatasetRowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedvalues != nil {
		edges = append(edges, datasetrow.EdgeValues)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DatasetRowMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case datasetrow.EdgeValues:
		ids := make([]ent.Value, 0, len(m.removedvalues))
		for id := range m.removedvalues {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DatasetRowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddataset {
		edges = append(edges, datasetrow.EdgeDataset)
	}
	if m.clearedvalues {
		edges = append(edges, datasetrow.EdgeValues)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DatasetRowMutation) EdgeCleared(name string) bool {
	switch name {
	case datasetrow.EdgeDataset:
		return m.cleareddataset
	case datasetrow.EdgeValues:
		return m.clearedvalues
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DatasetRowMutation) ClearEdge(name string) error {
	switch name {
	case datasetrow.EdgeDataset:
		m.ClearDataset()
		return nil
	}
	return fmt.Errorf("unknown DatasetRow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DatasetRowMutation) ResetEdge(name string) error {
	switch name {
	case datasetrow.EdgeDataset:
		m.ResetDataset()
		return nil
	case datasetrow.EdgeValues:
		m.ResetValues()
		return nil
	}
	return fmt.Errorf("unknown DatasetRow edge %s", name)
}

// ProcessingJobMutation represents an operation that mutates the ProcessingJob nodes in the graph.
type ProcessingJobMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	column_id      *uuid.UUID
	job_type       *string
	status         *string
	target_type    *string
	error_message  *string
	result         *json.RawMessage
	appendresult   json.RawMessage
	created_at     *time.Time
	started_at     *time.Time
	completed_at   *time.Time
	clearedFields  map[string]struct{}
	dataset        *uuid.UUID
	cleareddataset bool
	done           bool
	oldValue       func(context.Context) (*ProcessingJob, error)
	predicates     []predicate.ProcessingJob
}

var _ ent.Mutation = (*ProcessingJobMutation)(nil)

// processingjobOption allows management of the mutation configuration using functional options.
type processingjobOption func(*ProcessingJobMutation)

// newProcessingJobMutation creates new mutation for the ProcessingJob entity.
func newProcessingJobMutation(c config, op Op, opts ...processingjobOption) *ProcessingJobMutation {
	m := &ProcessingJobMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingJobID sets the ID field of the mutation.
func withProcessingJobID(id uuid.UUID) processingjobOption {
	return func(m *ProcessingJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingJob
		)
		m.oldValue = func(ctx context.Context) (*ProcessingJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingJob sets the old ProcessingJob of the mutation.
func withProcessingJob(node *ProcessingJob) processingjobOption {
	return func(m *ProcessingJobMutation) {
		m.oldValue = func(context.Context) (*ProcessingJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessingJob entities.
func (m *ProcessingJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDatasetID sets the "dataset_id" field.
func (m *ProcessingJobMutation) SetDatasetID(u uuid.UUID) {
	m.dataset = &u
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *ProcessingJobMutation) DatasetID() (r uuid.UUID, exists bool) {
	v := m.dataset
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldDatasetID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *ProcessingJobMutation) ResetDatasetID() {
	m.dataset = nil
}

// SetColumnID sets the "column_id" field.
func (m *ProcessingJobMutation) SetColumnID(u uuid.UUID) {
	m.column_id = &u
}

// ColumnID returns the value of the "column_id" field in the mutation.
func (m *ProcessingJobMutation) ColumnID() (r uuid.UUID, exists bool) {
	v := m.column_id
	if v == nil {
		return
	}
	return *v, true
}

// OldColumnID returns the old "column_id" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldColumnID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumnID: %w", err)
	}
	return oldValue.ColumnID, nil
}

// ClearColumnID clears the value of the "column_id" field.
func (m *ProcessingJobMutation) ClearColumnID() {
	m.column_id = nil
	m.clearedFields[processingjob.FieldColumnID] = struct{}{}
}

// ColumnIDCleared returns if the "column_id" field was cleared in this mutation.
func (m *ProcessingJobMutation) ColumnIDCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldColumnID]
	return ok
}

// ResetColumnID resets all changes to the "column_id" field.
func (m *ProcessingJobMutation) ResetColumnID() {
	m.column_id = nil
	delete(m.clearedFields, processingjob.FieldColumnID)
}

// SetJobType sets the "job_type" field.
func (m *ProcessingJobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *ProcessingJobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *ProcessingJobMutation) ResetJobType() {
	m.job_type = nil
}

// SetStatus sets the "status" field.
func (m *ProcessingJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessingJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessingJobMutation) ResetStatus() {
	m.status = nil
}

// SetTargetType sets the "target_type" field.
func (m *ProcessingJobMutation) SetTargetType(s string) {
	m.target_type = &s
}

// TargetType returns the value of the "target_type" field in the mutation.
func (m *ProcessingJobMutation) TargetType() (r string, exists bool) {
	v := m.target_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetType returns the old "target_type" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldTargetType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetType: %w", err)
	}
	return oldValue.TargetType, nil
}

// ClearTargetType clears the value of the "target_type" field.
func (m *ProcessingJobMutation) ClearTargetType() {
	m.target_type = nil
	m.clearedFields[processingjob.FieldTargetType] = struct{}{}
}

// TargetTypeCleared returns if the "target_type" field was cleared in this mutation.
func (m *ProcessingJobMutation) TargetTypeCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldTargetType]
	return ok
}

// ResetTargetType resets all changes to the "target_type" field.
func (m *ProcessingJobMutation) ResetTargetType() {
	m.target_type = nil
	delete(m.clearedFields, processingjob.FieldTargetType)
}

// SetErrorMessage sets the "error_message" field.
func (m *ProcessingJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ProcessingJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ProcessingJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[processingjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ProcessingJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ProcessingJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, processingjob.FieldErrorMessage)
}

// SetResult sets the "result" field.
func (m *ProcessingJobMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *ProcessingJobMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *ProcessingJobMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *ProcessingJobMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *ProcessingJobMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[processingjob.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ProcessingJobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ProcessingJobMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, processingjob.FieldResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessingJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessingJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessingJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ProcessingJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ProcessingJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ProcessingJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[processingjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ProcessingJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ProcessingJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, processingjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProcessingJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProcessingJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProcessingJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[processingjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProcessingJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProcessingJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, processingjob.FieldCompletedAt)
}

// ClearDataset clears the "dataset" edge to the Dataset entity.
func (m *ProcessingJobMutation) ClearDataset() {
	m.cleareddataset = true
	m.clearedFields[processingjob.FieldDatasetID] = struct{}{}
}

// DatasetCleared reports if the "dataset" edge to the Dataset entity was cleared.
func (m *ProcessingJobMutation) DatasetCleared() bool {
	return m.cleareddataset
}

// DatasetIDs returns the "dataset" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DatasetID instead. It exists only for internal usage by the builders.
func (m *ProcessingJobMutation) DatasetIDs() (ids []uuid.UUID) {
	if id := m.dataset; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDataset resets all changes to the "dataset" edge.
func (m *ProcessingJobMutation) ResetDataset() {
	m.dataset = nil
	m.cleareddataset = false
}

// Where appends a list predicates to the ProcessingJobMutation builder.
func (m *ProcessingJobMutation) Where(ps ...predicate.ProcessingJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingJob).
func (m *ProcessingJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.dataset != nil {
		fields = append(fields, processingjob.FieldDatasetID)
	}
	if m.column_id != nil {
		fields = append(fields, processingjob.FieldColumnID)
	}
	if m.job_type != nil {
		fields = append(fields, processingjob.FieldJobType)
	}
	if m.status != nil {
		fields = append(fields, processingjob.FieldStatus)
	}
	if m.target_type != nil {
		fields = append(fields, processingjob.FieldTargetType)
	}
	if m.error_message != nil {
		fields = append(fields, processingjob.FieldErrorMessage)
	}
	if m.result != nil {
		fields = append(fields, processingjob.FieldResult)
	}
	if m.created_at != nil {
		fields = append(fields, processingjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, processingjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, processingjob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processingjob.FieldDatasetID:
		return m.DatasetID()
	case processingjob.FieldColumnID:
		return m.ColumnID()
	case processingjob.FieldJobType:
		return m.JobType()
	case processingjob.FieldStatus:
		return m.Status()
	case processingjob.FieldTargetType:
		return m.TargetType()
	case processingjob.FieldErrorMessage:
		return m.ErrorMessage()
	case processingjob.FieldResult:
		return m.Result()
	case processingjob.FieldCreatedAt:
		return m.CreatedAt()
	case processingjob.FieldStartedAt:
		return m.StartedAt()
	case processingjob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processingjob.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case processingjob.FieldColumnID:
		return m.OldColumnID(ctx)
	case processingjob.FieldJobType:
		return m.OldJobType(ctx)
	case processingjob.FieldStatus:
		return m.OldStatus(ctx)
	case processingjob.FieldTargetType:
		return m.OldTargetType(ctx)
	case processingjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case processingjob.FieldResult:
		return m.OldResult(ctx)
	case processingjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case processingjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case processingjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processingjob.FieldDatasetID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case processingjob.FieldColumnID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumnID(v)
		return nil
	case processingjob.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case processingjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processingjob.FieldTargetType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetType(v)
		return nil
	case processingjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case processingjob.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case processingjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case processingjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case processingjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProcessingJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processingjob.FieldColumnID) {
		fields = append(fields, processingjob.FieldColumnID)
	}
	if m.FieldCleared(processingjob.FieldTargetType) {
		fields = append(fields, processingjob.FieldTargetType)
	}
	if m.FieldCleared(processingjob.FieldErrorMessage) {
		fields = append(fields, processingjob.FieldErrorMessage)
	}
	if m.FieldCleared(processingjob.FieldResult) {
		fields = append(fields, processingjob.FieldResult)
	}
	if m.FieldCleared(processingjob.FieldStartedAt) {
		fields = append(fields, processingjob.FieldStartedAt)
	}
	if m.FieldCleared(processingjob.FieldCompletedAt) {
		fields = append(fields, processingjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingJobMutation) ClearField(name string) error {
	switch name {
	case processingjob.FieldColumnID:
		m.ClearColumnID()
		return nil
	case processingjob.FieldTargetType:
		m.ClearTargetType()
		return nil
	case processingjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case processingjob.FieldResult:
		m.ClearResult()
		return nil
	case processingjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case processingjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingJobMutation) ResetField(name string) error {
	switch name {
	case processingjob.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case processingjob.FieldColumnID:
		m.ResetColumnID()
		return nil
	case processingjob.FieldJobType:
		m.ResetJobType()
		return nil
	case processingjob.FieldStatus:
		m.ResetStatus()
		return nil
	case processingjob.FieldTargetType:
		m.ResetTargetType()
		return nil
	case processingjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case processingjob.FieldResult:
		m.ResetResult()
		return nil
	case processingjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case processingjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case processingjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.dataset != nil {
		edges = append(edges, processingjob.EdgeDataset)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processingjob.EdgeDataset:
		if id := m.dataset; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddataset {
		edges = append(edges, processingjob.EdgeDataset)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingJobMutation) EdgeCleared(name string) bool {
	switch name {
	case processingjob.EdgeDataset:
		return m.cleareddataset
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingJobMutation) ClearEdge(name string) error {
	switch name {
	case processingjob.EdgeDataset:
		m.ClearDataset()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingJobMutation) ResetEdge(name string) error {
	switch name {
	case processingjob.EdgeDataset:
		m.ResetDataset()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob edge %s", name)
}

// RowValueMutation represents an operation that mutates the RowValue nodes in the graph.
type RowValueMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	value         *string
	clearedFields map[string]struct{}
	row           *uuid.UUID
	clearedrow    bool
	column        *uuid.UUID
	clearedcolumn bool
	done          bool
	oldValue      func(context.Context) (*RowValue, error)
	predicates    []predicate.RowValue
}

var _ ent.Mutation = (*RowValueMutation)(nil)

// rowvalueOption allows management of the mutation configuration using functional options.
type rowvalueOption func(*RowValueMutation)

// newRowValueMutation creates new mutation for the RowValue entity.
func newRowValueMutation(c config, op Op, opts ...rowvalueOption) *RowValueMutation {
	m := &RowValueMutation{
		config:        c,
		op:            op,
		typ:           TypeRowValue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRowValueID sets the ID field of the mutation.
func withRowValueID(id uuid.UUID) rowvalueOption {
	return func(m *RowValueMutation) {
		var (
			err   error
			once  sync.Once
			value *RowValue
		)
		m.oldValue = func(ctx context.Context) (*RowValue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RowValue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRowValue sets the old RowValue of the mutation.
func withRowValue(node *RowValue) rowvalueOption {
	return func(m *RowValueMutation) {
		m.oldValue = func(context.Context) (*RowValue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RowValueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RowValueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RowValue entities.
func (m *RowValueMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RowValueMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RowValueMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RowValue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRowID sets the "row_id" field.
func (m *RowValueMutation) SetRowID(u uuid.UUID) {
	m.row = &u
}

// RowID returns the value of the "row_id" field in the mutation.
func (m *RowValueMutation) RowID() (r uuid.UUID, exists bool) {
	v := m.row
	if v == nil {
		return
	}
	return *v, true
}

// OldRowID returns the old "row_id" field's value of the RowValue entity.
// If the RowValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RowValueMutation) OldRowID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowID: %w", err)
	}
	return oldValue.RowID, nil
}

// ResetRowID resets all changes to the "row_id" field.
func (m *RowValueMutation) ResetRowID() {
	m.row = nil
}

// SetColumnID sets the "column_id" field.
func (m *RowValueMutation) SetColumnID(u uuid.UUID) {
	m.column = &u
}

// ColumnID returns the value of the "column_id" field in the mutation.
func (m *RowValueMutation) ColumnID() (r uuid.UUID, exists bool) {
	v := m.column
	if v == nil {
		return
	}
	return *v, true
}

// OldColumnID returns the old "column_id" field's value of the RowValue entity.
// If the RowValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RowValueMutation) OldColumnID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumnID: %w", err)
	}
	return oldValue.ColumnID, nil
}

// ResetColumnID resets all changes to the "column_id" field.
func (m *RowValueMutation) ResetColumnID() {
	m.column = nil
}

// SetValue sets the "value" field.
func (m *RowValueMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *RowValueMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the RowValue entity.
// If the RowValue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RowValueMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *RowValueMutation) ResetValue() {
	m.value = nil
}

// ClearRow clears the "row" edge to the DatasetRow entity.
func (m *RowValueMutation) ClearRow() {
	m.clearedrow = true
	m.clearedFields[rowvalue.FieldRowID] = struct{}{}
}

// RowCleared reports if the "row" edge to the DatasetRow entity was cleared.
func (m *RowValueMutation) RowCleared() bool {
	return m.clearedrow
}

// RowIDs returns the "row" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RowID instead. It exists only for internal usage by the builders.
func (m *RowValueMutation) RowIDs() (ids []uuid.UUID) {
	if id := m.row; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRow resets all changes to the "row" edge.
func (m *RowValueMutation) ResetRow() {
	m.row = nil
	m.clearedrow = false
}

// ClearColumn clears the "column" edge to the DatasetColumn entity.
func (m *RowValueMutation) ClearColumn() {
	m.clearedcolumn = true
	m.clearedFields[rowvalue.FieldColumnID] = struct{}{}
}

// ColumnCleared reports if the "column" edge to the DatasetColumn entity was cleared.
func (m *RowValueMutation) ColumnCleared() bool {
	return m.clearedcolumn
}

// ColumnIDs returns the "column" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ColumnID instead. It exists only for internal usage by the builders.
func (m *RowValueMutation) ColumnIDs() (ids []uuid.UUID) {
	if id := m.column; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetColumn resets all changes to the "column" edge.
func (m *RowValueMutation) ResetColumn() {
	m.column = nil
	m.clearedcolumn = false
}

// Where appends a list predicates to the RowValueMutation builder.
func (m *RowValueMutation) Where(ps ...predicate.RowValue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RowValueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RowValueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RowValue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RowValueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RowValueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RowValue).
func (m *RowValueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RowValueMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.row != nil {
		fields = append(fields, rowvalue.FieldRowID)
	}
	if m.column != nil {
		fields = append(fields, rowvalue.FieldColumnID)
	}
	if m.value != nil {
		fields = append(fields, rowvalue.FieldValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RowValueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rowvalue.FieldRowID:
		return m.RowID()
	case rowvalue.FieldColumnID:
		return m.ColumnID()
	case rowvalue.FieldValue:
		return m.Value()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RowValueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rowvalue.FieldRowID:
		return m.OldRowID(ctx)
	case rowvalue.FieldColumnID:
		return m.OldColumnID(ctx)
	case rowvalue.FieldValue:
		return m.OldValue(ctx)
	}
	return nil, fmt.Errorf("unknown RowValue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RowValueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rowvalue.FieldRowID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowID(v)
		return nil
	case rowvalue.FieldColumnID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumnID(v)
		return nil
	case rowvalue.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	}
	return fmt.Errorf("unknown RowValue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RowValueMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RowValueMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RowValueMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RowValue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RowValueMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RowValueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RowValueMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RowValue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RowValueMutation) ResetField(name string) error {
	switch name {
	case rowvalue.FieldRowID:
		m.ResetRowID()
		return nil
	case rowvalue.FieldColumnID:
		m.ResetColumnID()
		return nil
	case rowvalue.FieldValue:
		m.ResetValue()
		return nil
	}
	return fmt.Errorf("unknown RowValue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RowValueMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.row != nil {
		edges = append(edges, rowvalue.EdgeRow)
	}
	if m.column != nil {
		edges = append(edges, rowvalue.EdgeColumn)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RowValueMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rowvalue.EdgeRow:
		if id := m.row; id != nil {
			return []ent.Value{*id}
		}
	case rowvalue.EdgeColumn:
		if id := m.column; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RowValueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RowValueMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RowValueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrow {
		edges = append(edges, rowvalue.EdgeRow)
	}
	if m.clearedcolumn {
		edges = append(edges, rowvalue.EdgeColumn)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RowValueMutation) EdgeCleared(name string) bool {
	switch name {
	case rowvalue.EdgeRow:
		return m.clearedrow
	case rowvalue.EdgeColumn:
		return m.clearedcolumn
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RowValueMutation) ClearEdge(name string) error {
	switch name {
	case rowvalue.EdgeRow:
		m.ClearRow()
		return nil
	case rowvalue.EdgeColumn:
		m.ClearColumn()
		return nil
	}
	return fmt.Errorf("unknown RowValue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RowValueMutation) ResetEdge(name string) error {
	switch name {
	case rowvalue.EdgeRow:
		m.ResetRow()
		return nil
	case rowvalue.EdgeColumn:
		m.ResetColumn()
		return nil
	}
	return fmt.Errorf("unknown RowValue edge %s", name)
}
