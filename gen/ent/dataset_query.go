// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
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

// DatasetQuery is the builder for querying Dataset entities.
type DatasetQuery struct {
	config
	ctx         *QueryContext
	order       []dataset.OrderOption
	inters      []Interceptor
	predicates  []predicate.Dataset
	withColumns *DatasetColumnQuery
	withRows    *DatasetRowQuery
	withJobs    *ProcessingJobQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DatasetQuery builder.
func (_q *DatasetQuery) Where(ps ...predicate.Dataset) *DatasetQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DatasetQuery) Limit(limit int) *DatasetQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DatasetQuery) Offset(offset int) *DatasetQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DatasetQuery) Unique(unique bool) *DatasetQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DatasetQuery) Order(o ...dataset.OrderOption) *DatasetQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryColumns chains the current query on the "columns" edge.
func (_q *DatasetQuery) QueryColumns() *DatasetColumnQuery {
	query := (&DatasetColumnClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dataset.Table, dataset.FieldID, selector),
			sqlgraph.To(datasetcolumn.Table, datasetcolumn.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dataset.ColumnsTable, dataset.ColumnsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRows chains the current query on the "rows" edge.
func (_q *DatasetQuery) QueryRows() *DatasetRowQuery {
	query := (&DatasetRowClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dataset.Table, dataset.FieldID, selector),
			sqlgraph.To(datasetrow.Table, datasetrow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dataset.RowsTable, dataset.RowsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryJobs chains the current query on the "jobs" edge.
func (_q *DatasetQuery) QueryJobs() *ProcessingJobQuery {
	query := (&ProcessingJobClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dataset.Table, dataset.FieldID, selector),
			sqlgraph.To(processingjob.Table, processingjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dataset.JobsTable, dataset.JobsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Dataset entity from the query.
// Returns a *NotFoundError when no Dataset was found.
func (_q *DatasetQuery) First(ctx context.Context) (*Dataset, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{dataset.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DatasetQuery) FirstX(ctx context.Context) *Dataset {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Dataset ID from the query.
// Returns a *NotFoundError when no Dataset ID was found.
func (_q *DatasetQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{dataset.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DatasetQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Dataset entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Dataset entity is found.
// Returns a *NotFoundError when no Dataset entities are found.
func (_q *DatasetQuery) Only(ctx context.Context) (*Dataset, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{dataset.Label}
	default:
		return nil, &NotSingularError{dataset.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DatasetQuery) OnlyX(ctx context.Context) *Dataset {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Dataset ID in the query.
// Returns a *NotSingularError when more than one Dataset ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DatasetQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{dataset.Label}
	default:
		err = &NotSingularError{dataset.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DatasetQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Datasets.
func (_q *DatasetQuery) All(ctx context.Context) ([]*Dataset, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Dataset, *DatasetQuery]()
	return withInterceptors[[]*Dataset](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DatasetQuery) AllX(ctx context.Context) []*Dataset {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Dataset IDs.
func (_q *DatasetQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(dataset.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DatasetQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DatasetQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DatasetQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DatasetQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DatasetQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DatasetQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DatasetQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DatasetQuery) Clone() *DatasetQuery {
	if _q == nil {
		return nil
	}
	return &DatasetQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]dataset.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.Dataset{}, _q.predicates...),
		withColumns: _q.withColumns.Clone(),
		withRows:    _q.withRows.Clone(),
		withJobs:    _q.withJobs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithColumns tells the query-builder to eager-load the nodes that are connected to
// the "columns" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DatasetQuery) WithColumns(opts ...func(*DatasetColumnQuery)) *DatasetQuery {
	query := (&DatasetColumnClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withColumns = query
	return _q
}

// WithRows tells the query-builder to eager-load the nodes that are connected to
// the "rows" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DatasetQuery) WithRows(opts ...func(*DatasetRowQuery)) *DatasetQuery {
	query := (&DatasetRowClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRows = query
	return _q
}

// WithJobs tells the query-builder to eager-load the nodes that are connected to
// the "jobs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DatasetQuery) WithJobs(opts ...func(*ProcessingJobQuery)) *DatasetQuery {
	query := (&ProcessingJobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withJobs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Dataset.Query().
//		GroupBy(dataset.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DatasetQuery) GroupBy(field string, fields ...string) *DatasetGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DatasetGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = dataset.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Dataset.Query().
//		Select(dataset.FieldName).
//		Scan(ctx, &v)
func (_q *DatasetQuery) Select(fields ...string) *DatasetSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DatasetSelect{DatasetQuery: _q}
	sbuild.label = dataset.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DatasetSelect configured with the given aggregations.
func (_q *DatasetQuery) Aggregate(fns ...AggregateFunc) *DatasetSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DatasetQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !dataset.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DatasetQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Dataset, error) {
	var (
		nodes       = []*Dataset{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withColumns != nil,
			_q.withRows != nil,
			_q.withJobs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Dataset).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Dataset{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withColumns; query != nil {
		if err := _q.loadColumns(ctx, query, nodes,
			func(n *Dataset) { n.Edges.Columns = []*DatasetColumn{} },
			func(n *Dataset, e *DatasetColumn) { n.Edges.Columns = append(n.Edges.Columns, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRows; query != nil {
		if err := _q.loadRows(ctx, query, nodes,
			func(n *Dataset) { n.Edges.Rows = []*DatasetRow{} },
			func(n *Dataset, e *DatasetRow) { n.Edges.Rows = append(n.Edges.Rows, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withJobs; query != nil {
		if err := _q.loadJobs(ctx, query, nodes,
			func(n *Dataset) { n.Edges.Jobs = []*ProcessingJob{} },
			func(n *Dataset, e *ProcessingJob) { n.Edges.Jobs = append(n.Edges.Jobs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DatasetQuery) loadColumns(ctx context.Context, query *DatasetColumnQuery, nodes []*Dataset, init func(*Dataset), assign func(*Dataset, *DatasetColumn)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Dataset)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(datasetcolumn.FieldDatasetID)
	}
	query.Where(predicate.DatasetColumn(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(dataset.ColumnsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DatasetID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "dataset_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DatasetQuery) loadRows(ctx context.Context, query *DatasetRowQuery, nodes []*Dataset, init func(*Dataset), assign func(*Dataset, *DatasetRow)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Dataset)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(datasetrow.FieldDatasetID)
	}
	query.Where(predicate.DatasetRow(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(dataset.RowsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DatasetID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "dataset_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DatasetQuery) loadJobs(ctx context.Context, query *ProcessingJobQuery, nodes []*Dataset, init func(*Dataset), assign func(*Dataset, *ProcessingJob)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Dataset)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(processingjob.FieldDatasetID)
	}
	query.Where(predicate.ProcessingJob(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(dataset.JobsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DatasetID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "dataset_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DatasetQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DatasetQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(dataset.Table, dataset.Columns, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataset.FieldID)
		for i := range fields {
			if fields[i] != dataset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DatasetQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(dataset.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = dataset.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DatasetGroupBy is the group-by builder for Dataset entities.
type DatasetGroupBy struct {
	selector
	build *DatasetQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DatasetGroupBy) Aggregate(fns ...AggregateFunc) *DatasetGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DatasetGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DatasetQuery, *DatasetGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DatasetGroupBy) sqlScan(ctx context.Context, root *DatasetQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DatasetSelect is the builder for selecting fields of Dataset entities.
type DatasetSelect struct {
	*DatasetQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DatasetSelect) Aggregate(fns ...AggregateFunc) *DatasetSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DatasetSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DatasetQuery, *DatasetSelect](ctx, _s.DatasetQuery, _s, _s.inters, v)
}

func (_s *DatasetSelect) sqlScan(ctx context.Context, root *DatasetQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
