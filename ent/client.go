// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"forum-fingerprint-api/ent/migrate"

	"forum-fingerprint-api/ent/fingerprint"
	"forum-fingerprint-api/ent/flaggedfingerprint"
	"forum-fingerprint-api/ent/user"
	"forum-fingerprint-api/ent/userignore"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Fingerprint is the client for interacting with the Fingerprint builders.
	Fingerprint *FingerprintClient
	// FlaggedFingerprint is the client for interacting with the FlaggedFingerprint builders.
	FlaggedFingerprint *FlaggedFingerprintClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserIgnore is the client for interacting with the UserIgnore builders.
	UserIgnore *UserIgnoreClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Fingerprint = NewFingerprintClient(c.config)
	c.FlaggedFingerprint = NewFlaggedFingerprintClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserIgnore = NewUserIgnoreClient(c.config)
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
		Fingerprint:        NewFingerprintClient(cfg),
		FlaggedFingerprint: NewFlaggedFingerprintClient(cfg),
		User:               NewUserClient(cfg),
		UserIgnore:         NewUserIgnoreClient(cfg),
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
		Fingerprint:        NewFingerprintClient(cfg),
		FlaggedFingerprint: NewFlaggedFingerprintClient(cfg),
		User:               NewUserClient(cfg),
		UserIgnore:         NewUserIgnoreClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Fingerprint.
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
	c.Fingerprint.Use(hooks...)
	c.FlaggedFingerprint.Use(hooks...)
	c.User.Use(hooks...)
	c.UserIgnore.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Fingerprint.Intercept(interceptors...)
	c.FlaggedFingerprint.Intercept(interceptors...)
	c.User.Intercept(interceptors...)
	c.UserIgnore.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FingerprintMutation:
		return c.Fingerprint.mutate(ctx, m)
	case *FlaggedFingerprintMutation:
		return c.FlaggedFingerprint.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserIgnoreMutation:
		return c.UserIgnore.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FingerprintClient is a client for the Fingerprint schema.
type FingerprintClient struct {
	config
}

// NewFingerprintClient returns a client for the Fingerprint from the given config.
func NewFingerprintClient(c config) *FingerprintClient {
	return &FingerprintClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fingerprint.Hooks(f(g(h())))`.
func (c *FingerprintClient) Use(hooks ...Hook) {
	c.hooks.Fingerprint = append(c.hooks.Fingerprint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fingerprint.Intercept(f(g(h())))`.
func (c *FingerprintClient) Intercept(interceptors ...Interceptor) {
	c.inters.Fingerprint = append(c.inters.Fingerprint, interceptors...)
}

// Create returns a builder for creating a Fingerprint entity.
func (c *FingerprintClient) Create() *FingerprintCreate {
	mutation := newFingerprintMutation(c.config, OpCreate)
	return &FingerprintCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Fingerprint entities.
func (c *FingerprintClient) CreateBulk(builders ...*FingerprintCreate) *FingerprintCreateBulk {
	return &FingerprintCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FingerprintClient) MapCreateBulk(slice any, setFunc func(*FingerprintCreate, int)) *FingerprintCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FingerprintCreateBulk{err: fmt.Errorf("calling to FingerprintClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FingerprintCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FingerprintCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Fingerprint.
func (c *FingerprintClient) Update() *FingerprintUpdate {
	mutation := newFingerprintMutation(c.config, OpUpdate)
	return &FingerprintUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FingerprintClient) UpdateOne(_m *Fingerprint) *FingerprintUpdateOne {
	mutation := newFingerprintMutation(c.config, OpUpdateOne, withFingerprint(_m))
	return &FingerprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FingerprintClient) UpdateOneID(id int) *FingerprintUpdateOne {
	mutation := newFingerprintMutation(c.config, OpUpdateOne, withFingerprintID(id))
	return &FingerprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Fingerprint.
func (c *FingerprintClient) Delete() *FingerprintDelete {
	mutation := newFingerprintMutation(c.config, OpDelete)
	return &FingerprintDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FingerprintClient) DeleteOne(_m *Fingerprint) *FingerprintDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FingerprintClient) DeleteOneID(id int) *FingerprintDeleteOne {
	builder := c.Delete().Where(fingerprint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FingerprintDeleteOne{builder}
}

// Query returns a query builder for Fingerprint.
func (c *FingerprintClient) Query() *FingerprintQuery {
	return &FingerprintQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFingerprint},
		inters: c.Interceptors(),
	}
}

// Get returns a Fingerprint entity by its id.
func (c *FingerprintClient) Get(ctx context.Context, id int) (*Fingerprint, error) {
	return c.Query().Where(fingerprint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FingerprintClient) GetX(ctx context.Context, id int) *Fingerprint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FingerprintClient) Hooks() []Hook {
	return c.hooks.Fingerprint
}

// Interceptors returns the client interceptors.
func (c *FingerprintClient) Interceptors() []Interceptor {
	return c.inters.Fingerprint
}

func (c *FingerprintClient) mutate(ctx context.Context, m *FingerprintMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FingerprintCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FingerprintUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FingerprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FingerprintDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Fingerprint mutation op: %q", m.Op())
	}
}

// FlaggedFingerprintClient is a client for the FlaggedFingerprint schema.
type FlaggedFingerprintClient struct {
	config
}

// NewFlaggedFingerprintClient returns a client for the FlaggedFingerprint from the given config.
func NewFlaggedFingerprintClient(c config) *FlaggedFingerprintClient {
	return &FlaggedFingerprintClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flaggedfingerprint.Hooks(f(g(h())))`.
func (c *FlaggedFingerprintClient) Use(hooks ...Hook) {
	c.hooks.FlaggedFingerprint = append(c.hooks.FlaggedFingerprint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flaggedfingerprint.Intercept(f(g(h())))`.
func (c *FlaggedFingerprintClient) Intercept(interceptors ...Interceptor) {
	c.inters.FlaggedFingerprint = append(c.inters.FlaggedFingerprint, interceptors...)
}

// Create returns a builder for creating a FlaggedFingerprint entity.
func (c *FlaggedFingerprintClient) Create() *FlaggedFingerprintCreate {
	mutation := newFlaggedFingerprintMutation(c.config, OpCreate)
	return &FlaggedFingerprintCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FlaggedFingerprint entities.
func (c *FlaggedFingerprintClient) CreateBulk(builders ...*FlaggedFingerprintCreate) *FlaggedFingerprintCreateBulk {
	return &FlaggedFingerprintCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlaggedFingerprintClient) MapCreateBulk(slice any, setFunc func(*FlaggedFingerprintCreate, int)) *FlaggedFingerprintCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlaggedFingerprintCreateBulk{err: fmt.Errorf("calling to FlaggedFingerprintClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlaggedFingerprintCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlaggedFingerprintCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FlaggedFingerprint.
func (c *FlaggedFingerprintClient) Update() *FlaggedFingerprintUpdate {
	mutation := newFlaggedFingerprintMutation(c.config, OpUpdate)
	return &FlaggedFingerprintUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlaggedFingerprintClient) UpdateOne(_m *FlaggedFingerprint) *FlaggedFingerprintUpdateOne {
	mutation := newFlaggedFingerprintMutation(c.config, OpUpdateOne, withFlaggedFingerprint(_m))
	return &FlaggedFingerprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlaggedFingerprintClient) UpdateOneID(id int) *FlaggedFingerprintUpdateOne {
	mutation := newFlaggedFingerprintMutation(c.config, OpUpdateOne, withFlaggedFingerprintID(id))
	return &FlaggedFingerprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FlaggedFingerprint.
func (c *FlaggedFingerprintClient) Delete() *FlaggedFingerprintDelete {
	mutation := newFlaggedFingerprintMutation(c.config, OpDelete)
	return &FlaggedFingerprintDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlaggedFingerprintClient) DeleteOne(_m *FlaggedFingerprint) *FlaggedFingerprintDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlaggedFingerprintClient) DeleteOneID(id int) *FlaggedFingerprintDeleteOne {
	builder := c.Delete().Where(flaggedfingerprint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlaggedFingerprintDeleteOne{builder}
}

// Query returns a query builder for FlaggedFingerprint.
func (c *FlaggedFingerprintClient) Query() *FlaggedFingerprintQuery {
	return &FlaggedFingerprintQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlaggedFingerprint},
		inters: c.Interceptors(),
	}
}

// Get returns a FlaggedFingerprint entity by its id.
func (c *FlaggedFingerprintClient) Get(ctx context.Context, id int) (*FlaggedFingerprint, error) {
	return c.Query().Where(flaggedfingerprint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlaggedFingerprintClient) GetX(ctx context.Context, id int) *FlaggedFingerprint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FlaggedFingerprintClient) Hooks() []Hook {
	return c.hooks.FlaggedFingerprint
}

// Interceptors returns the client interceptors.
func (c *FlaggedFingerprintClient) Interceptors() []Interceptor {
	return c.inters.FlaggedFingerprint
}

func (c *FlaggedFingerprintClient) mutate(ctx context.Context, m *FlaggedFingerprintMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlaggedFingerprintCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlaggedFingerprintUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlaggedFingerprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlaggedFingerprintDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FlaggedFingerprint mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// UserIgnoreClient is a client for the UserIgnore schema.
type UserIgnoreClient struct {
	config
}

// NewUserIgnoreClient returns a client for the UserIgnore from the given config.
func NewUserIgnoreClient(c config) *UserIgnoreClient {
	return &UserIgnoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userignore.Hooks(f(g(h())))`.
func (c *UserIgnoreClient) Use(hooks ...Hook) {
	c.hooks.UserIgnore = append(c.hooks.UserIgnore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userignore.Intercept(f(g(h())))`.
func (c *UserIgnoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserIgnore = append(c.inters.UserIgnore, interceptors...)
}

// Create returns a builder for creating a UserIgnore entity.
func (c *UserIgnoreClient) Create() *UserIgnoreCreate {
	mutation := newUserIgnoreMutation(c.config, OpCreate)
	return &UserIgnoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserIgnore entities.
func (c *UserIgnoreClient) CreateBulk(builders ...*UserIgnoreCreate) *UserIgnoreCreateBulk {
	return &UserIgnoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserIgnoreClient) MapCreateBulk(slice any, setFunc func(*UserIgnoreCreate, int)) *UserIgnoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserIgnoreCreateBulk{err: fmt.Errorf("calling to UserIgnoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserIgnoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserIgnoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserIgnore.
func (c *UserIgnoreClient) Update() *UserIgnoreUpdate {
	mutation := newUserIgnoreMutation(c.config, OpUpdate)
	return &UserIgnoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserIgnoreClient) UpdateOne(_m *UserIgnore) *UserIgnoreUpdateOne {
	mutation := newUserIgnoreMutation(c.config, OpUpdateOne, withUserIgnore(_m))
	return &UserIgnoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserIgnoreClient) UpdateOneID(id int) *UserIgnoreUpdateOne {
	mutation := newUserIgnoreMutation(c.config, OpUpdateOne, withUserIgnoreID(id))
	return &UserIgnoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserIgnore.
func (c *UserIgnoreClient) Delete() *UserIgnoreDelete {
	mutation := newUserIgnoreMutation(c.config, OpDelete)
	return &UserIgnoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserIgnoreClient) DeleteOne(_m *UserIgnore) *UserIgnoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserIgnoreClient) DeleteOneID(id int) *UserIgnoreDeleteOne {
	builder := c.Delete().Where(userignore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserIgnoreDeleteOne{builder}
}

// Query returns a query builder for UserIgnore.
func (c *UserIgnoreClient) Query() *UserIgnoreQuery {
	return &UserIgnoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserIgnore},
		inters: c.Interceptors(),
	}
}

// Get returns a UserIgnore entity by its id.
func (c *UserIgnoreClient) Get(ctx context.Context, id int) (*UserIgnore, error) {
	return c.Query().Where(userignore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserIgnoreClient) GetX(ctx context.Context, id int) *UserIgnore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserIgnoreClient) Hooks() []Hook {
	return c.hooks.UserIgnore
}

// Interceptors returns the client interceptors.
func (c *UserIgnoreClient) Interceptors() []Interceptor {
	return c.inters.UserIgnore
}

func (c *UserIgnoreClient) mutate(ctx context.Context, m *UserIgnoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserIgnoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserIgnoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserIgnoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserIgnoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserIgnore mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Fingerprint, FlaggedFingerprint, User, UserIgnore []ent.Hook
	}
	inters struct {
		Fingerprint, FlaggedFingerprint, User, UserIgnore []ent.Interceptor
	}
)
