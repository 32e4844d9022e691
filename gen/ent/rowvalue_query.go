// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/data-alchemy/backend/gen/ent/datasetcolumn"
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/data-alchemy/backend/gen/ent/predicate"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
	"github.com/google/uuid"
)

// RowValueQuery is the builder for querying RowValue entities.
type RowValueQuery struct {
	config
	ctx        *QueryContext
	order      []rowvalue.OrderOption
	inters     []Interceptor
	predicates []predicate.RowValue
	withRow    *DatasetRowQuery
	withColumn *DatasetColumnQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RowValueQuery builder.
func (_q *RowValueQuery) Where(ps ...predicate.RowValue) *RowValueQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RowValueQuery) Limit(limit int) *RowValueQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RowValueQuery) Offset(offset int) *RowValueQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RowValueQuery) Unique(unique bool) *RowValueQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RowValueQuery) Order(o ...rowvalue.OrderOption) *RowValueQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRow chains the current query on the "row" edge.
func (_q *RowValueQuery) QueryRow() *DatasetRowQuery {
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
			sqlgraph.From(rowvalue.Table, rowvalue.FieldID, selector),
			sqlgraph.To(datasetrow.Table, datasetrow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rowvalue.RowTable, rowvalue.RowColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryColumn chains the current query on the "column" edge.
func (_q *RowValueQuery) QueryColumn() *DatasetColumnQuery {
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
			sqlgraph.From(rowvalue.Table, rowvalue.FieldID, selector),
			sqlgraph.To(datasetcolumn.Table, datasetcolumn.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rowvalue.ColumnTable, rowvalue.ColumnColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RowValue entity from the query.
// Returns a *NotFoundError when no RowValue was found.
func (_q *RowValueQuery) First(ctx context.Context) (*RowValue, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{rowvalue.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RowValueQuery) FirstX(ctx context.Context) *RowValue {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RowValue ID from the query.
// Returns a *NotFoundError when no RowValue ID was found.
func (_q *RowValueQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{rowvalue.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RowValueQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RowValue entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RowValue entity is found.
// Returns a *NotFoundError when no RowValue entities are found.
func (_q *RowValueQuery) Only(ctx context.Context) (*RowValue, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{rowvalue.Label}
	default:
		return nil, &NotSingularError{rowvalue.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RowValueQuery) OnlyX(ctx context.Context) *RowValue {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RowValue ID in the query.
// Returns a *NotSingularError when more than one RowValue ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RowValueQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{rowvalue.Label}
	default:
		err = &NotSingularError{rowvalue.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RowValueQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RowValues.
func (_q *RowValueQuery) All(ctx context.Context) ([]*RowValue, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RowValue, *RowValueQuery]()
	return withInterceptors[[]*RowValue](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RowValueQuery) AllX(ctx context.Context) []*RowValue {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RowValue IDs.
func (_q *RowValueQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(rowvalue.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RowValueQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RowValueQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RowValueQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RowValueQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RowValueQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *RowValueQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RowValueQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RowValueQuery) Clone() *RowValueQuery {
	if _q == nil {
		return nil
	}
	return &RowValueQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]rowvalue.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.RowValue{}, _q.predicates...),
		withRow:    _q.withRow.Clone(),
		withColumn: _q.withColumn.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRow tells the query-builder to eager-load the nodes that are connected to
// the "row" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RowValueQuery) WithRow(opts ...func(*DatasetRowQuery)) *RowValueQuery {
	query := (&DatasetRowClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRow = query
	return _q
}

// WithColumn tells the query-builder to eager-load the nodes that are connected to
// the "column" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RowValueQuery) WithColumn(opts ...func(*DatasetColumnQuery)) *RowValueQuery {
	query := (&DatasetColumnClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withColumn = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RowID uuid.UUID `json:"row_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RowValue.Query().
//		GroupBy(rowvalue.FieldRowID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RowValueQuery) GroupBy(field string, fields ...string) *RowValueGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RowValueGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = rowvalue.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RowID uuid.UUID `json:"row_id,omitempty"`
//	}
//
//	client.RowValue.Query().
//		Select(rowvalue.FieldRowID).
//		Scan(ctx, &v)
func (_q *RowValueQuery) Select(fields ...string) *RowValueSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RowValueSelect{RowValueQuery: _q}
	sbuild.label = rowvalue.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RowValueSelect configured with the given aggregations.
func (_q *RowValueQuery) Aggregate(fns ...AggregateFunc) *RowValueSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RowValueQuery) prepareQuery(ctx context.Context) error {
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
		if !rowvalue.ValidColumn(f) {
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

func (_q *RowValueQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RowValue, error) {
	var (
		nodes       = []*RowValue{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withRow != nil,
			_q.withColumn != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RowValue).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RowValue{config: _q.config}
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
	if query := _q.withRow; query != nil {
		if err := _q.loadRow(ctx, query, nodes, nil,
			func(n *RowValue, e *DatasetRow) { n.Edges.Row = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withColumn; query != nil {
		if err := _q.loadColumn(ctx, query, nodes, nil,
			func(n *RowValue, e *DatasetColumn) { n.Edges.Column = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RowValueQuery) loadRow(ctx context.Context, query *DatasetRowQuery, nodes []*RowValue, init func(*RowValue), assign func(*RowValue, *DatasetRow)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*RowValue)
	for i := range nodes {
		fk := nodes[i].RowID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(datasetrow.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "row_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RowValueQuery) loadColumn(ctx context.Context, query *DatasetColumnQuery, nodes []*RowValue, init func(*RowValue), assign func(*RowValue, *DatasetColumn)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*RowValue)
	for i := range nodes {
		fk := nodes[i].ColumnID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(datasetcolumn.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "column_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *RowValueQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RowValueQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(rowvalue.Table, rowvalue.Columns, sqlgraph.NewFieldSpec(rowvalue.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rowvalue.FieldID)
		for i := range fields {
			if fields[i] != rowvalue.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRow != nil {
			_spec.Node.AddColumnOnce(rowvalue.FieldRowID)
		}
		if _q.withColumn != nil {
			_spec.Node.AddColumnOnce(rowvalue.FieldColumnID)
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

func (_q *RowValueQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(rowvalue.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = rowvalue.Columns
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

// RowValueGroupBy is the group-by builder for RowValue entities.
type RowValueGroupBy struct {
	selector
	build *RowValueQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RowValueGroupBy) Aggregate(fns ...AggregateFunc) *RowValueGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RowValueGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RowValueQuery, *RowValueGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RowValueGroupBy) sqlScan(ctx context.Context, root *RowValueQuery, v any) error {
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

// RowValueSelect is the builder for selecting fields of RowValue entities.
type RowValueSelect struct {
	*RowValueQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RowValueSelect) Aggregate(fns ...AggregateFunc) *RowValueSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RowValueSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RowValueQuery, *RowValueSelect](ctx, _s.RowValueQuery, _s, _s.inters, v)
}

func (_s *RowValueSelect) sqlScan(ctx context.Context, root *RowValueQuery, v any) error {
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
