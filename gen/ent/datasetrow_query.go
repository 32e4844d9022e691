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
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/data-alchemy/backend/gen/ent/predicate"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
	"github.com/google/uuid"
)

// DatasetRowQuery is the builder for querying DatasetRow entities.
type DatasetRowQuery struct {
	config
	ctx         *QueryContext
	order       []datasetrow.OrderOption
	inters      []Interceptor
	predicates  []predicate.DatasetRow
	withDataset *DatasetQuery
	withValues  *RowValueQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DatasetRowQuery builder.
func (_q *DatasetRowQuery) Where(ps ...predicate.DatasetRow) *DatasetRowQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DatasetRowQuery) Limit(limit int) *DatasetRowQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DatasetRowQuery) Offset(offset int) *DatasetRowQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DatasetRowQuery) Unique(unique bool) *DatasetRowQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DatasetRowQuery) Order(o ...datasetrow.OrderOption) *DatasetRowQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDataset chains the current query on the "dataset" edge.
func (_q *DatasetRowQuery) QueryDataset() *DatasetQuery {
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
			sqlgraph.From(datasetrow.Table, datasetrow.FieldID, selector),
			sqlgraph.To(dataset.Table, dataset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datasetrow.DatasetTable, datasetrow.DatasetColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryValues chains the current query on the "values" edge.
func (_q *DatasetRowQuery) QueryValues() *RowValueQuery {
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
			sqlgraph.From(datasetrow.Table, datasetrow.FieldID, selector),
			sqlgraph.To(rowvalue.Table, rowvalue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, datasetrow.ValuesTable, datasetrow.ValuesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DatasetRow entity from the query.
// Returns a *NotFoundError when no DatasetRow was found.
func (_q *DatasetRowQuery) First(ctx context.Context) (*DatasetRow, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{datasetrow.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DatasetRowQuery) FirstX(ctx context.Context) *DatasetRow {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DatasetRow ID from the query.
// Returns a *NotFoundError when no DatasetRow ID was found.
func (_q *DatasetRowQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{datasetrow.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DatasetRowQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DatasetRow entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DatasetRow entity is found.
// Returns a *NotFoundError when no DatasetRow entities are found.
func (_q *DatasetRowQuery) Only(ctx context.Context) (*DatasetRow, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{datasetrow.Label}
	default:
		return nil, &NotSingularError{datasetrow.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DatasetRowQuery) OnlyX(ctx context.Context) *DatasetRow {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DatasetRow ID in the query.
// Returns a *NotSingularError when more than one DatasetRow ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DatasetRowQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{datasetrow.Label}
	default:
		err = &NotSingularError{datasetrow.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DatasetRowQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DatasetRows.
func (_q *DatasetRowQuery) All(ctx context.Context) ([]*DatasetRow, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DatasetRow, *DatasetRowQuery]()
	return withInterceptors[[]*DatasetRow](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DatasetRowQuery) AllX(ctx context.Context) []*DatasetRow {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DatasetRow IDs.
func (_q *DatasetRowQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(datasetrow.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DatasetRowQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DatasetRowQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DatasetRowQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DatasetRowQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DatasetRowQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *DatasetRowQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DatasetRowQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DatasetRowQuery) Clone() *DatasetRowQuery {
	if _q == nil {
		return nil
	}
	return &DatasetRowQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]datasetrow.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.DatasetRow{}, _q.predicates...),
		withDataset: _q.withDataset.Clone(),
		withValues:  _q.withValues.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDataset tells the query-builder to eager-load the nodes that are connected to
// the "dataset" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DatasetRowQuery) WithDataset(opts ...func(*DatasetQuery)) *DatasetRowQuery {
	query := (&DatasetClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDataset = query
	return _q
}

// WithValues tells the query-builder to eager-load the nodes that are connected to
// the "values" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DatasetRowQuery) WithValues(opts ...func(*RowValueQuery)) *DatasetRowQuery {
	query := (&RowValueClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withValues = query
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
//	client.DatasetRow.Query().
//		GroupBy(datasetrow.FieldDatasetID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DatasetRowQuery) GroupBy(field string, fields ...string) *DatasetRowGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DatasetRowGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = datasetrow.Label
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
//	client.DatasetRow.Query().
//		Select(datasetrow.FieldDatasetID).
//		Scan(ctx, &v)
func (_q *DatasetRowQuery) Select(fields ...string) *DatasetRowSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DatasetRowSelect{DatasetRowQuery: _q}
	sbuild.label = datasetrow.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DatasetRowSelect configured with the given aggregations.
func (_q *DatasetRowQuery) Aggregate(fns ...AggregateFunc) *DatasetRowSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DatasetRowQuery) prepareQuery(ctx context.Context) error {
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
		if !datasetrow.ValidColumn(f) {
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

func (_q *DatasetRowQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DatasetRow, error) {
	var (
		nodes       = []*DatasetRow{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withDataset != nil,
			_q.withValues != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DatasetRow).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DatasetRow{config: _q.config}
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
			func(n *DatasetRow, e *Dataset) { n.Edges.Dataset = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withValues; query != nil {
		if err := _q.loadValues(ctx, query, nodes,
			func(n *DatasetRow) { n.Edges.Values = []*RowValue{} },
			func(n *DatasetRow, e *RowValue) { n.Edges.Values = append(n.Edges.Values, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DatasetRowQuery) loadDataset(ctx context.Context, query *DatasetQuery, nodes []*DatasetRow, init func(*DatasetRow), assign func(*DatasetRow, *Dataset)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*DatasetRow)
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
func (_q *DatasetRowQuery) loadValues(ctx context.Context, query *RowValueQuery, nodes []*DatasetRow, init func(*DatasetRow), assign func(*DatasetRow, *RowValue)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DatasetRow)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(rowvalue.FieldRowID)
	}
	query.Where(predicate.RowValue(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(datasetrow.ValuesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RowID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "row_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DatasetRowQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DatasetRowQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(datasetrow.Table, datasetrow.Columns, sqlgraph.NewFieldSpec(datasetrow.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datasetrow.FieldID)
		for i := range fields {
			if fields[i] != datasetrow.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDataset != nil {
			_spec.Node.AddColumnOnce(datasetrow.FieldDatasetID)
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

func (_q *DatasetRowQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(datasetrow.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = datasetrow.Columns
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

// DatasetRowGroupBy is the group-by builder for DatasetRow entities.
type DatasetRowGroupBy struct {
	selector
	build *DatasetRowQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DatasetRowGroupBy) Aggregate(fns ...AggregateFunc) *DatasetRowGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DatasetRowGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DatasetRowQuery, *DatasetRowGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DatasetRowGroupBy) sqlScan(ctx context.Context, root *DatasetRowQuery, v any) error {
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

// DatasetRowSelect is the builder for selecting fields of DatasetRow entities.
type DatasetRowSelect struct {
	*DatasetRowQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DatasetRowSelect) Aggregate(fns ...AggregateFunc) *DatasetRowSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DatasetRowSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DatasetRowQuery, *DatasetRowSelect](ctx, _s.DatasetRowQuery, _s, _s.inters, v)
}

func (_s *DatasetRowSelect) sqlScan(ctx context.Context, root *DatasetRowQuery, v any) error {
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
