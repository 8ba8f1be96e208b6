// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/tulkka/lessonflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tulkka/lessonflow/ent/exerciseset"
	"github.com/tulkka/lessonflow/ent/transcriptartifact"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExerciseSet is the client for interacting with the ExerciseSet builders.
	ExerciseSet *ExerciseSetClient
	// TranscriptArtifact is the client for interacting with the TranscriptArtifact builders.
	TranscriptArtifact *TranscriptArtifactClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExerciseSet = NewExerciseSetClient(c.config)
	c.TranscriptArtifact = NewTranscriptArtifactClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		ExerciseSet:        NewExerciseSetClient(cfg),
		TranscriptArtifact: NewTranscriptArtifactClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		ExerciseSet:        NewExerciseSetClient(cfg),
		TranscriptArtifact: NewTranscriptArtifactClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExerciseSet.
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
	c.ExerciseSet.Use(hooks...)
	c.TranscriptArtifact.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExerciseSet.Intercept(interceptors...)
	c.TranscriptArtifact.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExerciseSetMutation:
		return c.ExerciseSet.mutate(ctx, m)
	case *TranscriptArtifactMutation:
		return c.TranscriptArtifact.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExerciseSetClient is a client for the ExerciseSet schema.
type ExerciseSetClient struct {
	config
}

// NewExerciseSetClient returns a client for the ExerciseSet from the given config.
func NewExerciseSetClient(c config) *ExerciseSetClient {
	return &ExerciseSetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exerciseset.Hooks(f(g(h())))`.
func (c *ExerciseSetClient) Use(hooks ...Hook) {
	c.hooks.ExerciseSet = append(c.hooks.ExerciseSet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exerciseset.Intercept(f(g(h())))`.
func (c *ExerciseSetClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExerciseSet = append(c.inters.ExerciseSet, interceptors...)
}

// Create returns a builder for creating a ExerciseSet entity.
func (c *ExerciseSetClient) Create() *ExerciseSetCreate {
	mutation := newExerciseSetMutation(c.config, OpCreate)
	return &ExerciseSetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExerciseSet entities.
func (c *ExerciseSetClient) CreateBulk(builders ...*ExerciseSetCreate) *ExerciseSetCreateBulk {
	return &ExerciseSetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExerciseSetClient) MapCreateBulk(slice any, setFunc func(*ExerciseSetCreate, int)) *ExerciseSetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExerciseSetCreateBulk{err: fmt.Errorf("calling to ExerciseSetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExerciseSetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExerciseSetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExerciseSet.
func (c *ExerciseSetClient) Update() *ExerciseSetUpdate {
	mutation := newExerciseSetMutation(c.config, OpUpdate)
	return &ExerciseSetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExerciseSetClient) UpdateOne(_m *ExerciseSet) *ExerciseSetUpdateOne {
	mutation := newExerciseSetMutation(c.config, OpUpdateOne, withExerciseSet(_m))
	return &ExerciseSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExerciseSetClient) UpdateOneID(id int64) *ExerciseSetUpdateOne {
	mutation := newExerciseSetMutation(c.config, OpUpdateOne, withExerciseSetID(id))
	return &ExerciseSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExerciseSet.
func (c *ExerciseSetClient) Delete() *ExerciseSetDelete {
	mutation := newExerciseSetMutation(c.config, OpDelete)
	return &ExerciseSetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExerciseSetClient) DeleteOne(_m *ExerciseSet) *ExerciseSetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExerciseSetClient) DeleteOneID(id int64) *ExerciseSetDeleteOne {
	builder := c.Delete().Where(exerciseset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExerciseSetDeleteOne{builder}
}

// Query returns a query builder for ExerciseSet.
func (c *ExerciseSetClient) Query() *ExerciseSetQuery {
	return &ExerciseSetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExerciseSet},
		inters: c.Interceptors(),
	}
}

// Get returns a ExerciseSet entity by its id.
func (c *ExerciseSetClient) Get(ctx context.Context, id int64) (*ExerciseSet, error) {
	return c.Query().Where(exerciseset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExerciseSetClient) GetX(ctx context.Context, id int64) *ExerciseSet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryArtifact queries the artifact edge of a ExerciseSet.
func (c *ExerciseSetClient) QueryArtifact(_m *ExerciseSet) *TranscriptArtifactQuery {
	query := (&TranscriptArtifactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(exerciseset.Table, exerciseset.FieldID, id),
			sqlgraph.To(transcriptartifact.Table, transcriptartifact.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, exerciseset.ArtifactTable, exerciseset.ArtifactColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExerciseSetClient) Hooks() []Hook {
	return c.hooks.ExerciseSet
}

// Interceptors returns the client interceptors.
func (c *ExerciseSetClient) Interceptors() []Interceptor {
	return c.inters.ExerciseSet
}

func (c *ExerciseSetClient) mutate(ctx context.Context, m *ExerciseSetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExerciseSetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExerciseSetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExerciseSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExerciseSetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExerciseSet mutation op: %q", m.Op())
	}
}

// TranscriptArtifactClient is a client for the TranscriptArtifact schema.
type TranscriptArtifactClient struct {
	config
}

// NewTranscriptArtifactClient returns a client for the TranscriptArtifact from the given config.
func NewTranscriptArtifactClient(c config) *TranscriptArtifactClient {
	return &TranscriptArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transcriptartifact.Hooks(f(g(h())))`.
func (c *TranscriptArtifactClient) Use(hooks ...Hook) {
	c.hooks.TranscriptArtifact = append(c.hooks.TranscriptArtifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transcriptartifact.Intercept(f(g(h())))`.
func (c *TranscriptArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.TranscriptArtifact = append(c.inters.TranscriptArtifact, interceptors...)
}

// Create returns a builder for creating a TranscriptArtifact entity.
func (c *TranscriptArtifactClient) Create() *TranscriptArtifactCreate {
	mutation := newTranscriptArtifactMutation(c.config, OpCreate)
	return &TranscriptArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TranscriptArtifact entities.
func (c *TranscriptArtifactClient) CreateBulk(builders ...*TranscriptArtifactCreate) *TranscriptArtifactCreateBulk {
	return &TranscriptArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranscriptArtifactClient) MapCreateBulk(slice any, setFunc func(*TranscriptArtifactCreate, int)) *TranscriptArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranscriptArtifactCreateBulk{err: fmt.Errorf("calling to TranscriptArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranscriptArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranscriptArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TranscriptArtifact.
func (c *TranscriptArtifactClient) Update() *TranscriptArtifactUpdate {
	mutation := newTranscriptArtifactMutation(c.config, OpUpdate)
	return &TranscriptArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranscriptArtifactClient) UpdateOne(_m *TranscriptArtifact) *TranscriptArtifactUpdateOne {
	mutation := newTranscriptArtifactMutation(c.config, OpUpdateOne, withTranscriptArtifact(_m))
	return &TranscriptArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranscriptArtifactClient) UpdateOneID(id int64) *TranscriptArtifactUpdateOne {
	mutation := newTranscriptArtifactMutation(c.config, OpUpdateOne, withTranscriptArtifactID(id))
	return &TranscriptArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TranscriptArtifact.
func (c *TranscriptArtifactClient) Delete() *TranscriptArtifactDelete {
	mutation := newTranscriptArtifactMutation(c.config, OpDelete)
	return &TranscriptArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranscriptArtifactClient) DeleteOne(_m *TranscriptArtifact) *TranscriptArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranscriptArtifactClient) DeleteOneID(id int64) *TranscriptArtifactDeleteOne {
	builder := c.Delete().Where(transcriptartifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranscriptArtifactDeleteOne{builder}
}

// Query returns a query builder for TranscriptArtifact.
func (c *TranscriptArtifactClient) Query() *TranscriptArtifactQuery {
	return &TranscriptArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranscriptArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a TranscriptArtifact entity by its id.
func (c *TranscriptArtifactClient) Get(ctx context.Context, id int64) (*TranscriptArtifact, error) {
	return c.Query().Where(transcriptartifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranscriptArtifactClient) GetX(ctx context.Context, id int64) *TranscriptArtifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExerciseSets queries the exercise_sets edge of a TranscriptArtifact.
func (c *TranscriptArtifactClient) QueryExerciseSets(_m *TranscriptArtifact) *ExerciseSetQuery {
	query := (&ExerciseSetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcriptartifact.Table, transcriptartifact.FieldID, id),
			sqlgraph.To(exerciseset.Table, exerciseset.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transcriptartifact.ExerciseSetsTable, transcriptartifact.ExerciseSetsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TranscriptArtifactClient) Hooks() []Hook {
	return c.hooks.TranscriptArtifact
}

// Interceptors returns the client interceptors.
func (c *TranscriptArtifactClient) Interceptors() []Interceptor {
	return c.inters.TranscriptArtifact
}

func (c *TranscriptArtifactClient) mutate(ctx context.Context, m *TranscriptArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranscriptArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranscriptArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranscriptArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranscriptArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TranscriptArtifact mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExerciseSet, TranscriptArtifact []ent.Hook
	}
	inters struct {
		ExerciseSet, TranscriptArtifact []ent.Interceptor
	}
)
