// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/stresswatch/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/stresswatch/ent/assessmentevent"
	"github.com/abhisek/stresswatch/ent/ingestevent"
	"github.com/abhisek/stresswatch/ent/predictionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssessmentEvent is the client for interacting with the AssessmentEvent builders.
	AssessmentEvent *AssessmentEventClient
	// IngestEvent is the client for interacting with the IngestEvent builders.
	IngestEvent *IngestEventClient
	// PredictionEvent is the client for interacting with the PredictionEvent builders.
	PredictionEvent *PredictionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssessmentEvent = NewAssessmentEventClient(c.config)
	c.IngestEvent = NewIngestEventClient(c.config)
	c.PredictionEvent = NewPredictionEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		AssessmentEvent: NewAssessmentEventClient(cfg),
		IngestEvent:     NewIngestEventClient(cfg),
		PredictionEvent: NewPredictionEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		AssessmentEvent: NewAssessmentEventClient(cfg),
		IngestEvent:     NewIngestEventClient(cfg),
		PredictionEvent: NewPredictionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssessmentEvent.
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
	c.AssessmentEvent.Use(hooks...)
	c.IngestEvent.Use(hooks...)
	c.PredictionEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AssessmentEvent.Intercept(interceptors...)
	c.IngestEvent.Intercept(interceptors...)
	c.PredictionEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssessmentEventMutation:
		return c.AssessmentEvent.mutate(ctx, m)
	case *IngestEventMutation:
		return c.IngestEvent.mutate(ctx, m)
	case *PredictionEventMutation:
		return c.PredictionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssessmentEventClient is a client for the AssessmentEvent schema.
type AssessmentEventClient struct {
	config
}

// NewAssessmentEventClient returns a client for the AssessmentEvent from the given config.
func NewAssessmentEventClient(c config) *AssessmentEventClient {
	return &AssessmentEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentevent.Hooks(f(g(h())))`.
func (c *AssessmentEventClient) Use(hooks ...Hook) {
	c.hooks.AssessmentEvent = append(c.hooks.AssessmentEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentevent.Intercept(f(g(h())))`.
func (c *AssessmentEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentEvent = append(c.inters.AssessmentEvent, interceptors...)
}

// Create returns a builder for creating a AssessmentEvent entity.
func (c *AssessmentEventClient) Create() *AssessmentEventCreate {
	mutation := newAssessmentEventMutation(c.config, OpCreate)
	return &AssessmentEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentEvent entities.
func (c *AssessmentEventClient) CreateBulk(builders ...*AssessmentEventCreate) *AssessmentEventCreateBulk {
	return &AssessmentEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentEventClient) MapCreateBulk(slice any, setFunc func(*AssessmentEventCreate, int)) *AssessmentEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentEventCreateBulk{err: fmt.Errorf("calling to AssessmentEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentEvent.
func (c *AssessmentEventClient) Update() *AssessmentEventUpdate {
	mutation := newAssessmentEventMutation(c.config, OpUpdate)
	return &AssessmentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentEventClient) UpdateOne(_m *AssessmentEvent) *AssessmentEventUpdateOne {
	mutation := newAssessmentEventMutation(c.config, OpUpdateOne, withAssessmentEvent(_m))
	return &AssessmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentEventClient) UpdateOneID(id int) *AssessmentEventUpdateOne {
	mutation := newAssessmentEventMutation(c.config, OpUpdateOne, withAssessmentEventID(id))
	return &AssessmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentEvent.
func (c *AssessmentEventClient) Delete() *AssessmentEventDelete {
	mutation := newAssessmentEventMutation(c.config, OpDelete)
	return &AssessmentEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentEventClient) DeleteOne(_m *AssessmentEvent) *AssessmentEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentEventClient) DeleteOneID(id int) *AssessmentEventDeleteOne {
	builder := c.Delete().Where(assessmentevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentEventDeleteOne{builder}
}

// Query returns a query builder for AssessmentEvent.
func (c *AssessmentEventClient) Query() *AssessmentEventQuery {
	return &AssessmentEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentEvent entity by its id.
func (c *AssessmentEventClient) Get(ctx context.Context, id int) (*AssessmentEvent, error) {
	return c.Query().Where(assessmentevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentEventClient) GetX(ctx context.Context, id int) *AssessmentEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssessmentEventClient) Hooks() []Hook {
	return c.hooks.AssessmentEvent
}

// Interceptors returns the client interceptors.
func (c *AssessmentEventClient) Interceptors() []Interceptor {
	return c.inters.AssessmentEvent
}

func (c *AssessmentEventClient) mutate(ctx context.Context, m *AssessmentEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentEvent mutation op: %q", m.Op())
	}
}

// IngestEventClient is a client for the IngestEvent schema.
type IngestEventClient struct {
	config
}

// NewIngestEventClient returns a client for the IngestEvent from the given config.
func NewIngestEventClient(c config) *IngestEventClient {
	return &IngestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ingestevent.Hooks(f(g(h())))`.
func (c *IngestEventClient) Use(hooks ...Hook) {
	c.hooks.IngestEvent = append(c.hooks.IngestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ingestevent.Intercept(f(g(h())))`.
func (c *IngestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.IngestEvent = append(c.inters.IngestEvent, interceptors...)
}

// Create returns a builder for creating a IngestEvent entity.
func (c *IngestEventClient) Create() *IngestEventCreate {
	mutation := newIngestEventMutation(c.config, OpCreate)
	return &IngestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IngestEvent entities.
func (c *IngestEventClient) CreateBulk(builders ...*IngestEventCreate) *IngestEventCreateBulk {
	return &IngestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IngestEventClient) MapCreateBulk(slice any, setFunc func(*IngestEventCreate, int)) *IngestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IngestEventCreateBulk{err: fmt.Errorf("calling to IngestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IngestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IngestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IngestEvent.
func (c *IngestEventClient) Update() *IngestEventUpdate {
	mutation := newIngestEventMutation(c.config, OpUpdate)
	return &IngestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IngestEventClient) UpdateOne(_m *IngestEvent) *IngestEventUpdateOne {
	mutation := newIngestEventMutation(c.config, OpUpdateOne, withIngestEvent(_m))
	return &IngestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IngestEventClient) UpdateOneID(id int) *IngestEventUpdateOne {
	mutation := newIngestEventMutation(c.config, OpUpdateOne, withIngestEventID(id))
	return &IngestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IngestEvent.
func (c *IngestEventClient) Delete() *IngestEventDelete {
	mutation := newIngestEventMutation(c.config, OpDelete)
	return &IngestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IngestEventClient) DeleteOne(_m *IngestEvent) *IngestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IngestEventClient) DeleteOneID(id int) *IngestEventDeleteOne {
	builder := c.Delete().Where(ingestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IngestEventDeleteOne{builder}
}

// Query returns a query builder for IngestEvent.
func (c *IngestEventClient) Query() *IngestEventQuery {
	return &IngestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIngestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a IngestEvent entity by its id.
func (c *IngestEventClient) Get(ctx context.Context, id int) (*IngestEvent, error) {
	return c.Query().Where(ingestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IngestEventClient) GetX(ctx context.Context, id int) *IngestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IngestEventClient) Hooks() []Hook {
	return c.hooks.IngestEvent
}

// Interceptors returns the client interceptors.
func (c *IngestEventClient) Interceptors() []Interceptor {
	return c.inters.IngestEvent
}

func (c *IngestEventClient) mutate(ctx context.Context, m *IngestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IngestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IngestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IngestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IngestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IngestEvent mutation op: %q", m.Op())
	}
}

// PredictionEventClient is a client for the PredictionEvent schema.
type PredictionEventClient struct {
	config
}

// NewPredictionEventClient returns a client for the PredictionEvent from the given config.
func NewPredictionEventClient(c config) *PredictionEventClient {
	return &PredictionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `predictionevent.Hooks(f(g(h())))`.
func (c *PredictionEventClient) Use(hooks ...Hook) {
	c.hooks.PredictionEvent = append(c.hooks.PredictionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `predictionevent.Intercept(f(g(h())))`.
func (c *PredictionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PredictionEvent = append(c.inters.PredictionEvent, interceptors...)
}

// Create returns a builder for creating a PredictionEvent entity.
func (c *PredictionEventClient) Create() *PredictionEventCreate {
	mutation := newPredictionEventMutation(c.config, OpCreate)
	return &PredictionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PredictionEvent entities.
func (c *PredictionEventClient) CreateBulk(builders ...*PredictionEventCreate) *PredictionEventCreateBulk {
	return &PredictionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PredictionEventClient) MapCreateBulk(slice any, setFunc func(*PredictionEventCreate, int)) *PredictionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PredictionEventCreateBulk{err: fmt.Errorf("calling to PredictionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PredictionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PredictionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PredictionEvent.
func (c *PredictionEventClient) Update() *PredictionEventUpdate {
	mutation := newPredictionEventMutation(c.config, OpUpdate)
	return &PredictionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PredictionEventClient) UpdateOne(_m *PredictionEvent) *PredictionEventUpdateOne {
	mutation := newPredictionEventMutation(c.config, OpUpdateOne, withPredictionEvent(_m))
	return &PredictionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PredictionEventClient) UpdateOneID(id int) *PredictionEventUpdateOne {
	mutation := newPredictionEventMutation(c.config, OpUpdateOne, withPredictionEventID(id))
	return &PredictionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PredictionEvent.
func (c *PredictionEventClient) Delete() *PredictionEventDelete {
	mutation := newPredictionEventMutation(c.config, OpDelete)
	return &PredictionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PredictionEventClient) DeleteOne(_m *PredictionEvent) *PredictionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PredictionEventClient) DeleteOneID(id int) *PredictionEventDeleteOne {
	builder := c.Delete().Where(predictionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PredictionEventDeleteOne{builder}
}

// Query returns a query builder for PredictionEvent.
func (c *PredictionEventClient) Query() *PredictionEventQuery {
	return &PredictionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePredictionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PredictionEvent entity by its id.
func (c *PredictionEventClient) Get(ctx context.Context, id int) (*PredictionEvent, error) {
	return c.Query().Where(predictionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PredictionEventClient) GetX(ctx context.Context, id int) *PredictionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PredictionEventClient) Hooks() []Hook {
	return c.hooks.PredictionEvent
}

// Interceptors returns the client interceptors.
func (c *PredictionEventClient) Interceptors() []Interceptor {
	return c.inters.PredictionEvent
}

func (c *PredictionEventClient) mutate(ctx context.Context, m *PredictionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PredictionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PredictionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PredictionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PredictionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PredictionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssessmentEvent, IngestEvent, PredictionEvent []ent.Hook
	}
	inters struct {
		AssessmentEvent, IngestEvent, PredictionEvent []ent.Interceptor
	}
)
