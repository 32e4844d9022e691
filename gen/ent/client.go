// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/data-alchemy/backend/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/data-alchemy/backend/gen/ent/datasetcolumn"
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/data-alchemy/backend/gen/ent/processingjob"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Dataset is the client for interacting with the Dataset builders.
	Dataset *DatasetClient
	// DatasetColumn is the client for interacting with the DatasetColumn builders.
	DatasetColumn *DatasetColumnClient
	// DatasetRow is the client for interacting with the DatasetRow builders.
	DatasetRow *DatasetRowClient
	// ProcessingJob is the client for interacting with the ProcessingJob builders.
	ProcessingJob *ProcessingJobClient
	// RowValue is the client for interacting with the RowValue builders.
	RowValue *RowValueClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Dataset = NewDatasetClient(c.config)
	c.DatasetColumn = NewDatasetColumnClient(c.config)
	c.DatasetRow = NewDatasetRowClient(c.config)
	c.ProcessingJob = NewProcessingJobClient(c.config)
	c.RowValue = NewRowValueClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		Dataset:       NewDatasetClient(cfg),
		DatasetColumn: NewDatasetColumnClient(cfg),
		DatasetRow:    NewDatasetRowClient(cfg),
		ProcessingJob: NewProcessingJobClient(cfg),
		RowValue:      NewRowValueClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		Dataset:       NewDatasetClient(cfg),
		DatasetColumn: NewDatasetColumnClient(cfg),
		DatasetRow:    NewDatasetRowClient(cfg),
		ProcessingJob: NewProcessingJobClient(cfg),
		RowValue:      NewRowValueClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Dataset.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Dataset.Use(hooks...)
	c.DatasetColumn.Use(hooks...)
	c.DatasetRow.Use(hooks...)
	c.ProcessingJob.Use(hooks...)
	c.RowValue.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Dataset.Intercept(interceptors...)
	c.DatasetColumn.Intercept(interceptors...)
	c.DatasetRow.Intercept(interceptors...)
	c.ProcessingJob.Intercept(interceptors...)
	c.RowValue.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DatasetMutation:
		return c.Dataset.mutate(ctx, m)
	case *DatasetColumnMutation:
		return c.DatasetColumn.mutate(ctx, m)
	case *DatasetRowMutation:
		return c.DatasetRow.mutate(ctx, m)
	case *ProcessingJobMutation:
		return c.ProcessingJob.mutate(ctx, m)
	case *RowValueMutation:
		return c.RowValue.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DatasetClient is a client for the Dataset schema.
type DatasetClient struct {
	config
}

// NewDatasetClient returns a client for the Dataset from the given config.
func NewDatasetClient(c config) *DatasetClient {
	return &DatasetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dataset.Hooks(f(g(h())))`.
func (c *DatasetClient) Use(hooks ...Hook) {
	c.hooks.Dataset = append(c.hooks.Dataset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dataset.Intercept(f(g(h())))`.
func (c *DatasetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Dataset = append(c.inters.Dataset, interceptors...)
}

// Create returns a builder for creating a Dataset entity.
func (c *DatasetClient) Create() *DatasetCreate {
	mutation := newDatasetMutation(c.config, OpCreate)
	return &DatasetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Dataset entities.
func (c *DatasetClient) CreateBulk(builders ...*DatasetCreate) *DatasetCreateBulk {
	return &DatasetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DatasetClient) MapCreateBulk(slice any, setFunc func(*DatasetCreate, int)) *DatasetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DatasetCreateBulk{err: fmt.Errorf("calling to DatasetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DatasetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DatasetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Dataset.
func (c *DatasetClient) Update() *DatasetUpdate {
	mutation := newDatasetMutation(c.config, OpUpdate)
	return &DatasetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DatasetClient) UpdateOne(_m *Dataset) *DatasetUpdateOne {
	mutation := newDatasetMutation(c.config, OpUpdateOne, withDataset(_m))
	return &DatasetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DatasetClient) UpdateOneID(id uuid.UUID) *DatasetUpdateOne {
	mutation := newDatasetMutation(c.config, OpUpdateOne, withDatasetID(id))
	return &DatasetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Dataset.
func (c *DatasetClient) Delete() *DatasetDelete {
	mutation := newDatasetMutation(c.config, OpDelete)
	return &DatasetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DatasetClient) DeleteOne(_m *Dataset) *DatasetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DatasetClient) DeleteOneID(id uuid.UUID) *DatasetDeleteOne {
	builder := c.Delete().Where(dataset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DatasetDeleteOne{builder}
}

// Query returns a query builder for Dataset.
func (c *DatasetClient) Query() *DatasetQuery {
	return &DatasetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDataset},
		inters: c.Interceptors(),
	}
}

// Get returns a Dataset entity by its id.
func (c *DatasetClient) Get(ctx context.Context, id uuid.UUID) (*Dataset, error) {
	return c.Query().Where(dataset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DatasetClient) GetX(ctx context.Context, id uuid.UUID) *Dataset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryColumns queries the columns edge of a Dataset.
func (c *DatasetClient) QueryColumns(_m *Dataset) *DatasetColumnQuery {
	query := (&DatasetColumnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dataset.Table, dataset.FieldID, id),
			sqlgraph.To(datasetcolumn.Table, datasetcolumn.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dataset.ColumnsTable, dataset.ColumnsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRows queries the rows edge of a Dataset.
func (c *DatasetClient) QueryRows(_m *Dataset) *DatasetRowQuery {
	query := (&DatasetRowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dataset.Table, dataset.FieldID, id),
			sqlgraph.To(datasetrow.Table, datasetrow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dataset.RowsTable, dataset.RowsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Dataset.
func (c *DatasetClient) QueryJobs(_m *Dataset) *ProcessingJobQuery {
	query := (&ProcessingJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dataset.Table, dataset.FieldID, id),
			sqlgraph.To(processingjob.Table, processingjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dataset.JobsTable, dataset.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DatasetClient) Hooks() []Hook {
	return c.hooks.Dataset
}

// Interceptors returns the client interceptors.
func (c *DatasetClient) Interceptors() []Interceptor {
	return c.inters.Dataset
}

func (c *DatasetClient) mutate(ctx context.Context, m *DatasetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DatasetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DatasetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DatasetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DatasetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Dataset mutation op: %q", m.Op())
	}
}

// DatasetColumnClient is a client for the DatasetColumn schema.
type DatasetColumnClient struct {
	config
}

// NewDatasetColumnClient returns a client for the DatasetColumn from the given config.
func NewDatasetColumnClient(c config) *DatasetColumnClient {
	return &DatasetColumnClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `datasetcolumn.Hooks(f(g(h())))`.
func (c *DatasetColumnClient) Use(hooks ...Hook) {
	c.hooks.DatasetColumn = append(c.hooks.DatasetColumn, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `datasetcolumn.Intercept(f(g(h())))`.
func (c *DatasetColumnClient) Intercept(interceptors ...Interceptor) {
	c.inters.DatasetColumn = append(c.inters.DatasetColumn, interceptors...)
}

// Create returns a builder for creating a DatasetColumn entity.
func (c *DatasetColumnClient) Create() *DatasetColumnCreate {
	mutation := newDatasetColumnMutation(c.config, OpCreate)
	return &DatasetColumnCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DatasetColumn entities.
func (c *DatasetColumnClient) CreateBulk(builders ...*DatasetColumnCreate) *DatasetColumnCreateBulk {
	return &DatasetColumnCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DatasetColumnClient) MapCreateBulk(slice any, setFunc func(*DatasetColumnCreate, int)) *DatasetColumnCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DatasetColumnCreateBulk{err: fmt.Errorf("calling to DatasetColumnClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DatasetColumnCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DatasetColumnCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DatasetColumn.
func (c *DatasetColumnClient) Update() *DatasetColumnUpdate {
	mutation := newDatasetColumnMutation(c.config, OpUpdate)
	return &DatasetColumnUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DatasetColumnClient) UpdateOne(_m *DatasetColumn) *DatasetColumnUpdateOne {
	mutation := newDatasetColumnMutation(c.config, OpUpdateOne, withDatasetColumn(_m))
	return &DatasetColumnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DatasetColumnClient) UpdateOneID(id uuid.UUID) *DatasetColumnUpdateOne {
	mutation := newDatasetColumnMutation(c.config, OpUpdateOne, withDatasetColumnID(id))
	return &DatasetColumnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DatasetColumn.
func (c *DatasetColumnClient) Delete() *DatasetColumnDelete {
	mutation := newDatasetColumnMutation(c.config, OpDelete)
	return &DatasetColumnDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DatasetColumnClient) DeleteOne(_m *DatasetColumn) *DatasetColumnDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DatasetColumnClient) DeleteOneID(id uuid.UUID) *DatasetColumnDeleteOne {
	builder := c.Delete().Where(datasetcolumn.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DatasetColumnDeleteOne{builder}
}

// Query returns a query builder for DatasetColumn.
func (c *DatasetColumnClient) Query() *DatasetColumnQuery {
	return &DatasetColumnQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDatasetColumn},
		inters: c.Interceptors(),
	}
}

// Get returns a DatasetColumn entity by its id.
func (c *DatasetColumnClient) Get(ctx context.Context, id uuid.UUID) (*DatasetColumn, error) {
	return c.Query().Where(datasetcolumn.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DatasetColumnClient) GetX(ctx context.Context, id uuid.UUID) *DatasetColumn {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDataset queries the dataset edge of a DatasetColumn.
func (c *DatasetColumnClient) QueryDataset(_m *DatasetColumn) *DatasetQuery {
	query := (&DatasetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(datasetcolumn.Table, datasetcolumn.FieldID, id),
			sqlgraph.To(dataset.Table, dataset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datasetcolumn.DatasetTable, datasetcolumn.DatasetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRowValues queries the row_values edge of a DatasetColumn.
func (c *DatasetColumnClient) QueryRowValues(_m *DatasetColumn) *RowValueQuery {
	query := (&RowValueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(datasetcolumn.Table, datasetcolumn.FieldID, id),
			sqlgraph.To(rowvalue.Table, rowvalue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, datasetcolumn.RowValuesTable, datasetcolumn.RowValuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DatasetColumnClient) Hooks() []Hook {
	return c.hooks.DatasetColumn
}

// Interceptors returns the client interceptors.
func (c *DatasetColumnClient) Interceptors() []Interceptor {
	return c.inters.DatasetColumn
}

func (c *DatasetColumnClient) mutate(ctx context.Context, m *DatasetColumnMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DatasetColumnCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DatasetColumnUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DatasetColumnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DatasetColumnDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DatasetColumn mutation op: %q", m.Op())
	}
}

// DatasetRowClient is a client for the DatasetRow schema.
type DatasetRowClient struct {
	config
}

// NewDatasetRowClient returns a client for the DatasetRow from the given config.
func NewDatasetRowClient(c config) *DatasetRowClient {
	return &DatasetRowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `datasetrow.Hooks(f(g(h())))`.
func (c *DatasetRowClient) Use(hooks ...Hook) {
	c.hooks.DatasetRow = append(c.hooks.DatasetRow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `datasetrow.Intercept(f(g(h())))`.
func (c *DatasetRowClient) Intercept(interceptors ...Interceptor) {
	c.inters.DatasetRow = append(c.inters.DatasetRow, interceptors...)
}

// Create returns a builder for creating a DatasetRow entity.
func (c *DatasetRowClient) Create() *DatasetRowCreate {
	mutation := newDatasetRowMutation(c.config, OpCreate)
	return &DatasetRowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DatasetRow entities.
func (c *DatasetRowClient) CreateBulk(builders ...*DatasetRowCreate) *DatasetRowCreateBulk {
	return &DatasetRowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DatasetRowClient) MapCreateBulk(slice any, setFunc func(*DatasetRowCreate, int)) *DatasetRowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DatasetRowCreateBulk{err: fmt.Errorf("calling to DatasetRowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DatasetRowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DatasetRowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DatasetRow.
func (c *DatasetRowClient) Update() *DatasetRowUpdate {
	mutation := newDatasetRowMutation(c.config, OpUpdate)
	return &DatasetRowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DatasetRowClient) UpdateOne(_m *DatasetRow) *DatasetRowUpdateOne {
	mutation := newDatasetRowMutation(c.config, OpUpdateOne, withDatasetRow(_m))
	return &DatasetRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DatasetRowClient) UpdateOneID(id uuid.UUID) *DatasetRowUpdateOne {
	mutation := newDatasetRowMutation(c.config, OpUpdateOne, withDatasetRowID(id))
	return &DatasetRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DatasetRow.
func (c *DatasetRowClient) Delete() *DatasetRowDelete {
	mutation := newDatasetRowMutation(c.config, OpDelete)
	return &DatasetRowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DatasetRowClient) DeleteOne(_m *DatasetRow) *DatasetRowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DatasetRowClient) DeleteOneID(id uuid.UUID) *DatasetRowDeleteOne {
	builder := c.Delete().Where(datasetrow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DatasetRowDeleteOne{builder}
}

// Query returns a query builder for DatasetRow.
func (c *DatasetRowClient) Query() *DatasetRowQuery {
	return &DatasetRowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDatasetRow},
		inters: c.Interceptors(),
	}
}

// Get returns a DatasetRow entity by its id.
func (c *DatasetRowClient) Get(ctx context.Context, id uuid.UUID) (*DatasetRow, error) {
	return c.Query().Where(datasetrow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DatasetRowClient) GetX(ctx context.Context, id uuid.UUID) *DatasetRow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDataset queries the dataset edge of a DatasetRow.
func (c *DatasetRowClient) QueryDataset(_m *DatasetRow) *DatasetQuery {
	query := (&DatasetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(datasetrow.Table, datasetrow.FieldID, id),
			sqlgraph.To(dataset.Table, dataset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datasetrow.DatasetTable, datasetrow.DatasetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryValues queries the values edge of a DatasetRow.
func (c *DatasetRowClient) QueryValues(_m *DatasetRow) *RowValueQuery {
	query := (&RowValueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(datasetrow.Table, datasetrow.FieldID, id),
			sqlgraph.To(rowvalue.Table, rowvalue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, datasetrow.ValuesTable, datasetrow.ValuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DatasetRowClient) Hooks() []Hook {
	return c.hooks.DatasetRow
}

// Interceptors returns the client interceptors.
func (c *DatasetRowClient) Interceptors() []Interceptor {
	return c.inters.DatasetRow
}

func (c *DatasetRowClient) mutate(ctx context.Context, m *DatasetRowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DatasetRowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DatasetRowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DatasetRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DatasetRowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DatasetRow mutation op: %q", m.Op())
	}
}

// ProcessingJobClient is a client for the ProcessingJob schema.
type ProcessingJobClient struct {
	config
}

// NewProcessingJobClient returns a client for the ProcessingJob from the given config.
func NewProcessingJobClient(c config) *ProcessingJobClient {
	return &ProcessingJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processingjob.Hooks(f(g(h())))`.
func (c *ProcessingJobClient) Use(hooks ...Hook) {
	c.hooks.ProcessingJob = append(c.hooks.ProcessingJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processingjob.Intercept(f(g(h())))`.
func (c *ProcessingJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingJob = append(c.inters.ProcessingJob, interceptors...)
}

// Create returns a builder for creating a ProcessingJob entity.
func (c *ProcessingJobClient) Create() *ProcessingJobCreate {
	mutation := newProcessingJobMutation(c.config, OpCreate)
	return &ProcessingJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingJob entities.
func (c *ProcessingJobClient) CreateBulk(builders ...*ProcessingJobCreate) *ProcessingJobCreateBulk {
	return &ProcessingJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingJobClient) MapCreateBulk(slice any, setFunc func(*ProcessingJobCreate, int)) *ProcessingJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingJobCreateBulk{err: fmt.Errorf("calling to ProcessingJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingJob.
func (c *ProcessingJobClient) Update() *ProcessingJobUpdate {
	mutation := newProcessingJobMutation(c.config, OpUpdate)
	return &ProcessingJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingJobClient) UpdateOne(_m *ProcessingJob) *ProcessingJobUpdateOne {
	mutation := newProcessingJobMutation(c.config, OpUpdateOne, withProcessingJob(_m))
	return &ProcessingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingJobClient) UpdateOneID(id uuid.UUID) *ProcessingJobUpdateOne {
	mutation := newProcessingJobMutation(c.config, OpUpdateOne, withProcessingJobID(id))
	return &ProcessingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingJob.
func (c *ProcessingJobClient) Delete() *ProcessingJobDelete {
	mutation := newProcessingJobMutation(c.config, OpDelete)
	return &ProcessingJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingJobClient) DeleteOne(_m *ProcessingJob) *ProcessingJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingJobClient) DeleteOneID(id uuid.UUID) *ProcessingJobDeleteOne {
	builder := c.Delete().Where(processingjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingJobDeleteOne{builder}
}

// Query returns a query builder for ProcessingJob.
func (c *ProcessingJobClient) Query() *ProcessingJobQuery {
	return &ProcessingJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingJob entity by its id.
func (c *ProcessingJobClient) Get(ctx context.Context, id uuid.UUID) (*ProcessingJob, error) {
	return c.Query().Where(processingjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingJobClient) GetX(ctx context.Context, id uuid.UUID) *ProcessingJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDataset queries the dataset edge of a ProcessingJob.
func (c *ProcessingJobClient) QueryDataset(_m *ProcessingJob) *DatasetQuery {
	query := (&DatasetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processingjob.Table, processingjob.FieldID, id),
			sqlgraph.To(dataset.Table, dataset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processingjob.DatasetTable, processingjob.DatasetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessingJobClient) Hooks() []Hook {
	return c.hooks.ProcessingJob
}

// Interceptors returns the client interceptors.
func (c *ProcessingJobClient) Interceptors() []Interceptor {
	return c.inters.ProcessingJob
}

func (c *ProcessingJobClient) mutate(ctx context.Context, m *ProcessingJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingJob mutation op: %q", m.Op())
	}
}

// RowValueClient is a client for the RowValue schema.
type RowValueClient struct {
	config
}

// NewRowValueClient returns a client for the RowValue from the given config.
func NewRowValueClient(c config) *RowValueClient {
	return &RowValueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rowvalue.Hooks(f(g(h())))`.
func (c *RowValueClient) Use(hooks ...Hook) {
	c.hooks.RowValue = append(c.hooks.RowValue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rowvalue.Intercept(f(g(h())))`.
func (c *RowValueClient) Intercept(interceptors ...Interceptor) {
	c.inters.RowValue = append(c.inters.RowValue, interceptors...)
}

// Create returns a builder for creating a RowValue entity.
func (c *RowValueClient) Create() *RowValueCreate {
	mutation := newRowValueMutation(c.config, OpCreate)
	return &RowValueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RowValue entities.
func (c *RowValueClient) CreateBulk(builders ...*RowValueCreate) *RowValueCreateBulk {
	return &RowValueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RowValueClient) MapCreateBulk(slice any, setFunc func(*RowValueCreate, int)) *RowValueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RowValueCreateBulk{err: fmt.Errorf("calling to RowValueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RowValueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RowValueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RowValue.
func (c *RowValueClient) Update() *RowValueUpdate {
	mutation := newRowValueMutation(c.config, OpUpdate)
	return &RowValueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RowValueClient) UpdateOne(_m *RowValue) *RowValueUpdateOne {
	mutation := newRowValueMutation(c.config, OpUpdateOne, withRowValue(_m))
	return &RowValueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RowValueClient) UpdateOneID(id uuid.UUID) *RowValueUpdateOne {
	mutation := newRowValueMutation(c.config, OpUpdateOne, withRowValueID(id))
	return &RowValueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RowValue.
func (c *RowValueClient) Delete() *RowValueDelete {
	mutation := newRowValueMutation(c.config, OpDelete)
	return &RowValueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RowValueClient) DeleteOne(_m *RowValue) *RowValueDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RowValueClient) DeleteOneID(id uuid.UUID) *RowValueDeleteOne {
	builder := c.Delete().Where(rowvalue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RowValueDeleteOne{builder}
}

// Query returns a query builder for RowValue.
func (c *RowValueClient) Query() *RowValueQuery {
	return &RowValueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRowValue},
		inters: c.Interceptors(),
	}
}

// Get returns a RowValue entity by its id.
func (c *RowValueClient) Get(ctx context.Context, id uuid.UUID) (*RowValue, error) {
	return c.Query().Where(rowvalue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RowValueClient) GetX(ctx context.Context, id uuid.UUID) *RowValue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRow queries the row edge of a RowValue.
func (c *RowValueClient) QueryRow(_m *RowValue) *DatasetRowQuery {
	query := (&DatasetRowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rowvalue.Table, rowvalue.FieldID, id),
			sqlgraph.To(datasetrow.Table, datasetrow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rowvalue.RowTable, rowvalue.RowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryColumn queries the column edge of a RowValue.
func (c *RowValueClient) QueryColumn(_m *RowValue) *DatasetColumnQuery {
	query := (&DatasetColumnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rowvalue.Table, rowvalue.FieldID, id),
			sqlgraph.To(datasetcolumn.Table, datasetcolumn.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rowvalue.ColumnTable, rowvalue.ColumnColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RowValueClient) Hooks() []Hook {
	return c.hooks.RowValue
}

// Interceptors returns the client interceptors.
func (c *RowValueClient) Interceptors() []Interceptor {
	return c.inters.RowValue
}

func (c *RowValueClient) mutate(ctx context.Context, m *RowValueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RowValueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RowValueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RowValueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RowValueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RowValue mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Dataset, DatasetColumn, DatasetRow, ProcessingJob, RowValue []ent.Hook
	}
	inters struct {
		Dataset, DatasetColumn, DatasetRow, ProcessingJob, RowValue []ent.Interceptor
	}
)
