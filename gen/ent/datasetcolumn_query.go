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
	"github.com/data-alchemy/backend/gen/ent/predicate"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
	"github.com/google/uuid"
)

// DatasetColumnQuery is the builder for querying DatasetColumn entities.
type DatasetColumnQuery struct {
	config
	ctx           *QueryContext
	order         []datasetcolumn.OrderOption
	inters        []Interceptor
	predicates    []predicate.DatasetColumn
	withDataset   *DatasetQuery
	withRowValues *RowValueQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DatasetColumnQuery builder.
func (_q *DatasetColumnQuery) Where(ps ...predicate.DatasetColumn) *DatasetColumnQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DatasetColumnQuery) Limit(limit int) *DatasetColumnQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DatasetColumnQuery) Offset(offset int) *DatasetColumnQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DatasetColumnQuery) Unique(unique bool) *DatasetColumnQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DatasetColumnQuery) Order(o ...datasetcolumn.OrderOption) *DatasetColumnQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDataset chains the current query on the "dataset" edge.
func (_q *DatasetColumnQuery) QueryDataset() *DatasetQuery {
	query := (&DatasetClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(datasetcolumn.Table, datasetcolumn.FieldID, selector),
			sqlgraph.To(dataset.Table, dataset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datasetcolumn.DatasetTable, datasetcolumn.DatasetColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRowValues chains the current query on the "row_values" edge.
func (_q *DatasetColumnQuery) QueryRowValues() *RowValueQuery {
	query := (&RowValueClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(datasetcolumn.Table, datasetcolumn.FieldID, selector),
			sqlgraph.To(rowvalue.Table, rowvalue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, datasetcolumn.RowValuesTable, datasetcolumn.RowValuesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DatasetColumn entity from the query.
// Returns a *NotFoundError when no DatasetColumn was found.
func (_q *DatasetColumnQuery) First(ctx context.Context) (*DatasetColumn, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{datasetcolumn.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DatasetColumnQuery) FirstX(ctx context.Context) *DatasetColumn {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DatasetColumn ID from the query.
// Returns a *NotFoundError when no DatasetColumn ID was found.
func (_q *DatasetColumnQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{datasetcolumn.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DatasetColumnQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DatasetColumn entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DatasetColumn entity is found.
// Returns a *NotFoundError when no DatasetColumn entities are found.
func (_q *DatasetColumnQuery) Only(ctx context.Context) (*DatasetColumn, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{datasetcolumn.Label}
	default:
		return nil, &NotSingularError{datasetcolumn.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DatasetColumnQuery) OnlyX(ctx context.Context) *DatasetColumn {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DatasetColumn ID in the query.
// Returns a *NotSingularError when more than one DatasetColumn ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DatasetColumnQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{datasetcolumn.Label}
	default:
		err = &NotSingularError{datasetcolumn.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DatasetColumnQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DatasetColumns.
func (_q *DatasetColumnQuery) All(ctx context.Context) ([]*DatasetColumn, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DatasetColumn, *DatasetColumnQuery]()
	return withInterceptors[[]*DatasetColumn](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DatasetColumnQuery) AllX(ctx context.Context) []*DatasetColumn {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DatasetColumn IDs.
func (_q *DatasetColumnQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(datasetcolumn.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DatasetColumnQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DatasetColumnQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DatasetColumnQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DatasetColumnQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DatasetColumnQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *DatasetColumnQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DatasetColumnQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DatasetColumnQuery) Clone() *DatasetColumnQuery {
	if _q == nil {
		return nil
	}
	return &DatasetColumnQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]datasetcolumn.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.DatasetColumn{}, _q.predicates...),
		withDataset:   _q.withDataset.Clone(),
		withRowValues: _q.withRowValues.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDataset tells the query-builder to eager-load the nodes that are connected to
// the "dataset" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DatasetColumnQuery) WithDataset(opts ...func(*DatasetQuery)) *DatasetColumnQuery {
	query := (&DatasetClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDataset = query
	return _q
}

// WithRowValues tells the query-builder to eager-load the nodes that are connected to
// the "row_values" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DatasetColumnQuery) WithRowValues(opts ...func(*RowValueQuery)) *DatasetColumnQuery {
	query := (&RowValueClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRowValues = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DatasetID uuid.UUID `json:"dataset_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DatasetColumn.Query().
//		GroupBy(datasetcolumn.FieldDatasetID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DatasetColumnQuery) GroupBy(field string, fields ...string) *DatasetColumnGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DatasetColumnGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = datasetcolumn.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DatasetID uuid.UUID `json:"dataset_id,omitempty"`
//	}
//
//	client.DatasetColumn.Query().
//		Select(datasetcolumn.FieldDatasetID).
//		Scan(ctx, &v)
func (_q *DatasetColumnQuery) Select(fields ...string) *DatasetColumnSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DatasetColumnSelect{DatasetColumnQuery: _q}
	sbuild.label = datasetcolumn.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DatasetColumnSelect configured with the given aggregations.
func (_q *DatasetColumnQuery) Aggregate(fns ...AggregateFunc) *DatasetColumnSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DatasetColumnQuery) prepareQuery(ctx context.Context) error {
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
		if !datasetcolumn.ValidColumn(f) {
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

func (_q *DatasetColumnQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DatasetColumn, error) {
	var (
		nodes       = []*DatasetColumn{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withDataset != nil,
			_q.withRowValues != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DatasetColumn).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DatasetColumn{config: _q.config}
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
	if query := _q.withDataset; query != nil {
		if err := _q.loadDataset(ctx, query, nodes, nil,
			func(n *DatasetColumn, e *Dataset) { n.Edges.Dataset = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRowValues; query != nil {
		if err := _q.loadRowValues(ctx, query, nodes,
			func(n *DatasetColumn) { n.Edges.RowValues = []*RowValue{} },
			func(n *DatasetColumn, e *RowValue) { n.Edges.RowValues = append(n.Edges.RowValues, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DatasetColumnQuery) loadDataset(ctx context.Context, query *DatasetQuery, nodes []*DatasetColumn, init func(*DatasetColumn), assign func(*DatasetColumn, *Dataset)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*DatasetColumn)
	for i := range nodes {
		fk := nodes[i].DatasetID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(dataset.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "dataset_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DatasetColumnQuery) loadRowValues(ctx context.Context, query *RowValueQuery, nodes []*DatasetColumn, init func(*DatasetColumn), assign func(*DatasetColumn, *RowValue)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DatasetColumn)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(rowvalue.FieldColumnID)
	}
	query.Where(predicate.RowValue(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(datasetcolumn.RowValuesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ColumnID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "column_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DatasetColumnQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DatasetColumnQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(datasetcolumn.Table, datasetcolumn.Columns, sqlgraph.NewFieldSpec(datasetcolumn.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datasetcolumn.FieldID)
		for i := range fields {
			if fields[i] != datasetcolumn.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDataset != nil {
			_spec.Node.AddColumnOnce(datasetcolumn.FieldDatasetID)
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

func (_q *DatasetColumnQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(datasetcolumn.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = datasetcolumn.Columns
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

// DatasetColumnGroupBy is the group-by builder for DatasetColumn entities.
type DatasetColumnGroupBy struct {
	selector
	build *DatasetColumnQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DatasetColumnGroupBy) Aggregate(fns ...AggregateFunc) *DatasetColumnGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DatasetColumnGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DatasetColumnQuery, *DatasetColumnGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DatasetColumnGroupBy) sqlScan(ctx context.Context, root *DatasetColumnQuery, v any) error {
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

// DatasetColumnSelect is the builder for selecting fields of DatasetColumn entities.
type DatasetColumnSelect struct {
	*DatasetColumnQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DatasetColumnSelect) Aggregate(fns ...AggregateFunc) *DatasetColumnSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DatasetColumnSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DatasetColumnQuery, *DatasetColumnSelect](ctx, _s.DatasetColumnQuery, _s, _s.inters, v)
}

func (_s *DatasetColumnSelect) sqlScan(ctx context.Context, root *DatasetColumnQuery, v any) error {
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
