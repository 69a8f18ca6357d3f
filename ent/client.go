// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/stridehq/cadenza/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/inappnotification"
	"github.com/stridehq/cadenza/ent/notificationinteraction"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/ent/oauthconnection"
	"github.com/stridehq/cadenza/ent/orgmember"
	"github.com/stridehq/cadenza/ent/recording"
	"github.com/stridehq/cadenza/ent/recordingrule"
	"github.com/stridehq/cadenza/ent/retryjob"
	"github.com/stridehq/cadenza/ent/routingrule"
	"github.com/stridehq/cadenza/ent/sequenceexecution"
	"github.com/stridehq/cadenza/ent/slackworkspace"
	"github.com/stridehq/cadenza/ent/usermetrics"
	"github.com/stridehq/cadenza/ent/webhookevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BotDeployment is the client for interacting with the BotDeployment builders.
	BotDeployment *BotDeploymentClient
	// InAppNotification is the client for interacting with the InAppNotification builders.
	InAppNotification *InAppNotificationClient
	// NotificationInteraction is the client for interacting with the NotificationInteraction builders.
	NotificationInteraction *NotificationInteractionClient
	// NotificationQueueItem is the client for interacting with the NotificationQueueItem builders.
	NotificationQueueItem *NotificationQueueItemClient
	// OAuthConnection is the client for interacting with the OAuthConnection builders.
	OAuthConnection *OAuthConnectionClient
	// OrgMember is the client for interacting with the OrgMember builders.
	OrgMember *OrgMemberClient
	// Recording is the client for interacting with the Recording builders.
	Recording *RecordingClient
	// RecordingRule is the client for interacting with the RecordingRule builders.
	RecordingRule *RecordingRuleClient
	// RetryJob is the client for interacting with the RetryJob builders.
	RetryJob *RetryJobClient
	// RoutingRule is the client for interacting with the RoutingRule builders.
	RoutingRule *RoutingRuleClient
	// SequenceExecution is the client for interacting with the SequenceExecution builders.
	SequenceExecution *SequenceExecutionClient
	// SlackWorkspace is the client for interacting with the SlackWorkspace builders.
	SlackWorkspace *SlackWorkspaceClient
	// UserMetrics is the client for interacting with the UserMetrics builders.
	UserMetrics *UserMetricsClient
	// WebhookEvent is the client for interacting with the WebhookEvent builders.
	WebhookEvent *WebhookEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BotDeployment = NewBotDeploymentClient(c.config)
	c.InAppNotification = NewInAppNotificationClient(c.config)
	c.NotificationInteraction = NewNotificationInteractionClient(c.config)
	c.NotificationQueueItem = NewNotificationQueueItemClient(c.config)
	c.OAuthConnection = NewOAuthConnectionClient(c.config)
	c.OrgMember = NewOrgMemberClient(c.config)
	c.Recording = NewRecordingClient(c.config)
	c.RecordingRule = NewRecordingRuleClient(c.config)
	c.RetryJob = NewRetryJobClient(c.config)
	c.RoutingRule = NewRoutingRuleClient(c.config)
	c.SequenceExecution = NewSequenceExecutionClient(c.config)
	c.SlackWorkspace = NewSlackWorkspaceClient(c.config)
	c.UserMetrics = NewUserMetricsClient(c.config)
	c.WebhookEvent = NewWebhookEventClient(c.config)
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
		ctx:                     ctx,
		config:                  cfg,
		BotDeployment:           NewBotDeploymentClient(cfg),
		InAppNotification:       NewInAppNotificationClient(cfg),
		NotificationInteraction: NewNotificationInteractionClient(cfg),
		NotificationQueueItem:   NewNotificationQueueItemClient(cfg),
		OAuthConnection:         NewOAuthConnectionClient(cfg),
		OrgMember:               NewOrgMemberClient(cfg),
		Recording:               NewRecordingClient(cfg),
		RecordingRule:           NewRecordingRuleClient(cfg),
		RetryJob:                NewRetryJobClient(cfg),
		RoutingRule:             NewRoutingRuleClient(cfg),
		SequenceExecution:       NewSequenceExecutionClient(cfg),
		SlackWorkspace:          NewSlackWorkspaceClient(cfg),
		UserMetrics:             NewUserMetricsClient(cfg),
		WebhookEvent:            NewWebhookEventClient(cfg),
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
		ctx:                     ctx,
		config:                  cfg,
		BotDeployment:           NewBotDeploymentClient(cfg),
		InAppNotification:       NewInAppNotificationClient(cfg),
		NotificationInteraction: NewNotificationInteractionClient(cfg),
		NotificationQueueItem:   NewNotificationQueueItemClient(cfg),
		OAuthConnection:         NewOAuthConnectionClient(cfg),
		OrgMember:               NewOrgMemberClient(cfg),
		Recording:               NewRecordingClient(cfg),
		RecordingRule:           NewRecordingRuleClient(cfg),
		RetryJob:                NewRetryJobClient(cfg),
		RoutingRule:             NewRoutingRuleClient(cfg),
		SequenceExecution:       NewSequenceExecutionClient(cfg),
		SlackWorkspace:          NewSlackWorkspaceClient(cfg),
		UserMetrics:             NewUserMetricsClient(cfg),
		WebhookEvent:            NewWebhookEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BotDeployment.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.BotDeployment, c.InAppNotification, c.NotificationInteraction,
		c.NotificationQueueItem, c.OAuthConnection, c.OrgMember, c.Recording,
		c.RecordingRule, c.RetryJob, c.RoutingRule, c.SequenceExecution,
		c.SlackWorkspace, c.UserMetrics, c.WebhookEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.BotDeployment, c.InAppNotification, c.NotificationInteraction,
		c.NotificationQueueItem, c.OAuthConnection, c.OrgMember, c.Recording,
		c.RecordingRule, c.RetryJob, c.RoutingRule, c.SequenceExecution,
		c.SlackWorkspace, c.UserMetrics, c.WebhookEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BotDeploymentMutation:
		return c.BotDeployment.mutate(ctx, m)
	case *InAppNotificationMutation:
		return c.InAppNotification.mutate(ctx, m)
	case *NotificationInteractionMutation:
		return c.NotificationInteraction.mutate(ctx, m)
	case *NotificationQueueItemMutation:
		return c.NotificationQueueItem.mutate(ctx, m)
	case *OAuthConnectionMutation:
		return c.OAuthConnection.mutate(ctx, m)
	case *OrgMemberMutation:
		return c.OrgMember.mutate(ctx, m)
	case *RecordingMutation:
		return c.Recording.mutate(ctx, m)
	case *RecordingRuleMutation:
		return c.RecordingRule.mutate(ctx, m)
	case *RetryJobMutation:
		return c.RetryJob.mutate(ctx, m)
	case *RoutingRuleMutation:
		return c.RoutingRule.mutate(ctx, m)
	case *SequenceExecutionMutation:
		return c.SequenceExecution.mutate(ctx, m)
	case *SlackWorkspaceMutation:
		return c.SlackWorkspace.mutate(ctx, m)
	case *UserMetricsMutation:
		return c.UserMetrics.mutate(ctx, m)
	case *WebhookEventMutation:
		return c.WebhookEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BotDeploymentClient is a client for the BotDeployment schema.
type BotDeploymentClient struct {
	config
}

// NewBotDeploymentClient returns a client for the BotDeployment from the given config.
func NewBotDeploymentClient(c config) *BotDeploymentClient {
	return &BotDeploymentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `botdeployment.Hooks(f(g(h())))`.
func (c *BotDeploymentClient) Use(hooks ...Hook) {
	c.hooks.BotDeployment = append(c.hooks.BotDeployment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `botdeployment.Intercept(f(g(h())))`.
func (c *BotDeploymentClient) Intercept(interceptors ...Interceptor) {
	c.inters.BotDeployment = append(c.inters.BotDeployment, interceptors...)
}

// Create returns a builder for creating a BotDeployment entity.
func (c *BotDeploymentClient) Create() *BotDeploymentCreate {
	mutation := newBotDeploymentMutation(c.config, OpCreate)
	return &BotDeploymentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BotDeployment entities.
func (c *BotDeploymentClient) CreateBulk(builders ...*BotDeploymentCreate) *BotDeploymentCreateBulk {
	return &BotDeploymentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BotDeploymentClient) MapCreateBulk(slice any, setFunc func(*BotDeploymentCreate, int)) *BotDeploymentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BotDeploymentCreateBulk{err: fmt.Errorf("calling to BotDeploymentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BotDeploymentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BotDeploymentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BotDeployment.
func (c *BotDeploymentClient) Update() *BotDeploymentUpdate {
	mutation := newBotDeploymentMutation(c.config, OpUpdate)
	return &BotDeploymentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BotDeploymentClient) UpdateOne(_m *BotDeployment) *BotDeploymentUpdateOne {
	mutation := newBotDeploymentMutation(c.config, OpUpdateOne, withBotDeployment(_m))
	return &BotDeploymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BotDeploymentClient) UpdateOneID(id string) *BotDeploymentUpdateOne {
	mutation := newBotDeploymentMutation(c.config, OpUpdateOne, withBotDeploymentID(id))
	return &BotDeploymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BotDeployment.
func (c *BotDeploymentClient) Delete() *BotDeploymentDelete {
	mutation := newBotDeploymentMutation(c.config, OpDelete)
	return &BotDeploymentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BotDeploymentClient) DeleteOne(_m *BotDeployment) *BotDeploymentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BotDeploymentClient) DeleteOneID(id string) *BotDeploymentDeleteOne {
	builder := c.Delete().Where(botdeployment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BotDeploymentDeleteOne{builder}
}

// Query returns a query builder for BotDeployment.
func (c *BotDeploymentClient) Query() *BotDeploymentQuery {
	return &BotDeploymentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBotDeployment},
		inters: c.Interceptors(),
	}
}

// Get returns a BotDeployment entity by its id.
func (c *BotDeploymentClient) Get(ctx context.Context, id string) (*BotDeployment, error) {
	return c.Query().Where(botdeployment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BotDeploymentClient) GetX(ctx context.Context, id string) *BotDeployment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecording queries the recording edge of a BotDeployment.
func (c *BotDeploymentClient) QueryRecording(_m *BotDeployment) *RecordingQuery {
	query := (&RecordingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(botdeployment.Table, botdeployment.FieldID, id),
			sqlgraph.To(recording.Table, recording.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, botdeployment.RecordingTable, botdeployment.RecordingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BotDeploymentClient) Hooks() []Hook {
	return c.hooks.BotDeployment
}

// Interceptors returns the client interceptors.
func (c *BotDeploymentClient) Interceptors() []Interceptor {
	return c.inters.BotDeployment
}

func (c *BotDeploymentClient) mutate(ctx context.Context, m *BotDeploymentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BotDeploymentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BotDeploymentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BotDeploymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BotDeploymentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BotDeployment mutation op: %q", m.Op())
	}
}

// InAppNotificationClient is a client for the InAppNotification schema.
type InAppNotificationClient struct {
	config
}

// NewInAppNotificationClient returns a client for the InAppNotification from the given config.
func NewInAppNotificationClient(c config) *InAppNotificationClient {
	return &InAppNotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inappnotification.Hooks(f(g(h())))`.
func (c *InAppNotificationClient) Use(hooks ...Hook) {
	c.hooks.InAppNotification = append(c.hooks.InAppNotification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inappnotification.Intercept(f(g(h())))`.
func (c *InAppNotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.InAppNotification = append(c.inters.InAppNotification, interceptors...)
}

// Create returns a builder for creating a InAppNotification entity.
func (c *InAppNotificationClient) Create() *InAppNotificationCreate {
	mutation := newInAppNotificationMutation(c.config, OpCreate)
	return &InAppNotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InAppNotification entities.
func (c *InAppNotificationClient) CreateBulk(builders ...*InAppNotificationCreate) *InAppNotificationCreateBulk {
	return &InAppNotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InAppNotificationClient) MapCreateBulk(slice any, setFunc func(*InAppNotificationCreate, int)) *InAppNotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InAppNotificationCreateBulk{err: fmt.Errorf("calling to InAppNotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InAppNotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InAppNotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InAppNotification.
func (c *InAppNotificationClient) Update() *InAppNotificationUpdate {
	mutation := newInAppNotificationMutation(c.config, OpUpdate)
	return &InAppNotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InAppNotificationClient) UpdateOne(_m *InAppNotification) *InAppNotificationUpdateOne {
	mutation := newInAppNotificationMutation(c.config, OpUpdateOne, withInAppNotification(_m))
	return &InAppNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InAppNotificationClient) UpdateOneID(id string) *InAppNotificationUpdateOne {
	mutation := newInAppNotificationMutation(c.config, OpUpdateOne, withInAppNotificationID(id))
	return &InAppNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InAppNotification.
func (c *InAppNotificationClient) Delete() *InAppNotificationDelete {
	mutation := newInAppNotificationMutation(c.config, OpDelete)
	return &InAppNotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InAppNotificationClient) DeleteOne(_m *InAppNotification) *InAppNotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InAppNotificationClient) DeleteOneID(id string) *InAppNotificationDeleteOne {
	builder := c.Delete().Where(inappnotification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InAppNotificationDeleteOne{builder}
}

// Query returns a query builder for InAppNotification.
func (c *InAppNotificationClient) Query() *InAppNotificationQuery {
	return &InAppNotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInAppNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a InAppNotification entity by its id.
func (c *InAppNotificationClient) Get(ctx context.Context, id string) (*InAppNotification, error) {
	return c.Query().Where(inappnotification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InAppNotificationClient) GetX(ctx context.Context, id string) *InAppNotification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InAppNotificationClient) Hooks() []Hook {
	return c.hooks.InAppNotification
}

// Interceptors returns the client interceptors.
func (c *InAppNotificationClient) Interceptors() []Interceptor {
	return c.inters.InAppNotification
}

func (c *InAppNotificationClient) mutate(ctx context.Context, m *InAppNotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InAppNotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InAppNotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InAppNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InAppNotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InAppNotification mutation op: %q", m.Op())
	}
}

// NotificationInteractionClient is a client for the NotificationInteraction schema.
type NotificationInteractionClient struct {
	config
}

// NewNotificationInteractionClient returns a client for the NotificationInteraction from the given config.
func NewNotificationInteractionClient(c config) *NotificationInteractionClient {
	return &NotificationInteractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notificationinteraction.Hooks(f(g(h())))`.
func (c *NotificationInteractionClient) Use(hooks ...Hook) {
	c.hooks.NotificationInteraction = append(c.hooks.NotificationInteraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notificationinteraction.Intercept(f(g(h())))`.
func (c *NotificationInteractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.NotificationInteraction = append(c.inters.NotificationInteraction, interceptors...)
}

// Create returns a builder for creating a NotificationInteraction entity.
func (c *NotificationInteractionClient) Create() *NotificationInteractionCreate {
	mutation := newNotificationInteractionMutation(c.config, OpCreate)
	return &NotificationInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NotificationInteraction entities.
func (c *NotificationInteractionClient) CreateBulk(builders ...*NotificationInteractionCreate) *NotificationInteractionCreateBulk {
	return &NotificationInteractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationInteractionClient) MapCreateBulk(slice any, setFunc func(*NotificationInteractionCreate, int)) *NotificationInteractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationInteractionCreateBulk{err: fmt.Errorf("calling to NotificationInteractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationInteractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationInteractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NotificationInteraction.
func (c *NotificationInteractionClient) Update() *NotificationInteractionUpdate {
	mutation := newNotificationInteractionMutation(c.config, OpUpdate)
	return &NotificationInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationInteractionClient) UpdateOne(_m *NotificationInteraction) *NotificationInteractionUpdateOne {
	mutation := newNotificationInteractionMutation(c.config, OpUpdateOne, withNotificationInteraction(_m))
	return &NotificationInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationInteractionClient) UpdateOneID(id string) *NotificationInteractionUpdateOne {
	mutation := newNotificationInteractionMutation(c.config, OpUpdateOne, withNotificationInteractionID(id))
	return &NotificationInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NotificationInteraction.
func (c *NotificationInteractionClient) Delete() *NotificationInteractionDelete {
	mutation := newNotificationInteractionMutation(c.config, OpDelete)
	return &NotificationInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationInteractionClient) DeleteOne(_m *NotificationInteraction) *NotificationInteractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationInteractionClient) DeleteOneID(id string) *NotificationInteractionDeleteOne {
	builder := c.Delete().Where(notificationinteraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationInteractionDeleteOne{builder}
}

// Query returns a query builder for NotificationInteraction.
func (c *NotificationInteractionClient) Query() *NotificationInteractionQuery {
	return &NotificationInteractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotificationInteraction},
		inters: c.Interceptors(),
	}
}

// Get returns a NotificationInteraction entity by its id.
func (c *NotificationInteractionClient) Get(ctx context.Context, id string) (*NotificationInteraction, error) {
	return c.Query().Where(notificationinteraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationInteractionClient) GetX(ctx context.Context, id string) *NotificationInteraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationInteractionClient) Hooks() []Hook {
	return c.hooks.NotificationInteraction
}

// Interceptors returns the client interceptors.
func (c *NotificationInteractionClient) Interceptors() []Interceptor {
	return c.inters.NotificationInteraction
}

func (c *NotificationInteractionClient) mutate(ctx context.Context, m *NotificationInteractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NotificationInteraction mutation op: %q", m.Op())
	}
}

// NotificationQueueItemClient is a client for the NotificationQueueItem schema.
type NotificationQueueItemClient struct {
	config
}

// NewNotificationQueueItemClient returns a client for the NotificationQueueItem from the given config.
func NewNotificationQueueItemClient(c config) *NotificationQueueItemClient {
	return &NotificationQueueItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notificationqueueitem.Hooks(f(g(h())))`.
func (c *NotificationQueueItemClient) Use(hooks ...Hook) {
	c.hooks.NotificationQueueItem = append(c.hooks.NotificationQueueItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notificationqueueitem.Intercept(f(g(h())))`.
func (c *NotificationQueueItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.NotificationQueueItem = append(c.inters.NotificationQueueItem, interceptors...)
}

// Create returns a builder for creating a NotificationQueueItem entity.
func (c *NotificationQueueItemClient) Create() *NotificationQueueItemCreate {
	mutation := newNotificationQueueItemMutation(c.config, OpCreate)
	return &NotificationQueueItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NotificationQueueItem entities.
func (c *NotificationQueueItemClient) CreateBulk(builders ...*NotificationQueueItemCreate) *NotificationQueueItemCreateBulk {
	return &NotificationQueueItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationQueueItemClient) MapCreateBulk(slice any, setFunc func(*NotificationQueueItemCreate, int)) *NotificationQueueItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationQueueItemCreateBulk{err: fmt.Errorf("calling to NotificationQueueItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationQueueItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationQueueItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NotificationQueueItem.
func (c *NotificationQueueItemClient) Update() *NotificationQueueItemUpdate {
	mutation := newNotificationQueueItemMutation(c.config, OpUpdate)
	return &NotificationQueueItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationQueueItemClient) UpdateOne(_m *NotificationQueueItem) *NotificationQueueItemUpdateOne {
	mutation := newNotificationQueueItemMutation(c.config, OpUpdateOne, withNotificationQueueItem(_m))
	return &NotificationQueueItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationQueueItemClient) UpdateOneID(id string) *NotificationQueueItemUpdateOne {
	mutation := newNotificationQueueItemMutation(c.config, OpUpdateOne, withNotificationQueueItemID(id))
	return &NotificationQueueItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NotificationQueueItem.
func (c *NotificationQueueItemClient) Delete() *NotificationQueueItemDelete {
	mutation := newNotificationQueueItemMutation(c.config, OpDelete)
	return &NotificationQueueItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationQueueItemClient) DeleteOne(_m *NotificationQueueItem) *NotificationQueueItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationQueueItemClient) DeleteOneID(id string) *NotificationQueueItemDeleteOne {
	builder := c.Delete().Where(notificationqueueitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationQueueItemDeleteOne{builder}
}

// Query returns a query builder for NotificationQueueItem.
func (c *NotificationQueueItemClient) Query() *NotificationQueueItemQuery {
	return &NotificationQueueItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotificationQueueItem},
		inters: c.Interceptors(),
	}
}

// Get returns a NotificationQueueItem entity by its id.
func (c *NotificationQueueItemClient) Get(ctx context.Context, id string) (*NotificationQueueItem, error) {
	return c.Query().Where(notificationqueueitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationQueueItemClient) GetX(ctx context.Context, id string) *NotificationQueueItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationQueueItemClient) Hooks() []Hook {
	return c.hooks.NotificationQueueItem
}

// Interceptors returns the client interceptors.
func (c *NotificationQueueItemClient) Interceptors() []Interceptor {
	return c.inters.NotificationQueueItem
}

func (c *NotificationQueueItemClient) mutate(ctx context.Context, m *NotificationQueueItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationQueueItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationQueueItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationQueueItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationQueueItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NotificationQueueItem mutation op: %q", m.Op())
	}
}

// OAuthConnectionClient is a client for the OAuthConnection schema.
type OAuthConnectionClient struct {
	config
}

// NewOAuthConnectionClient returns a client for the OAuthConnection from the given config.
func NewOAuthConnectionClient(c config) *OAuthConnectionClient {
	return &OAuthConnectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `oauthconnection.Hooks(f(g(h())))`.
func (c *OAuthConnectionClient) Use(hooks ...Hook) {
	c.hooks.OAuthConnection = append(c.hooks.OAuthConnection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `oauthconnection.Intercept(f(g(h())))`.
func (c *OAuthConnectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.OAuthConnection = append(c.inters.OAuthConnection, interceptors...)
}

// Create returns a builder for creating a OAuthConnection entity.
func (c *OAuthConnectionClient) Create() *OAuthConnectionCreate {
	mutation := newOAuthConnectionMutation(c.config, OpCreate)
	return &OAuthConnectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OAuthConnection entities.
func (c *OAuthConnectionClient) CreateBulk(builders ...*OAuthConnectionCreate) *OAuthConnectionCreateBulk {
	return &OAuthConnectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OAuthConnectionClient) MapCreateBulk(slice any, setFunc func(*OAuthConnectionCreate, int)) *OAuthConnectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OAuthConnectionCreateBulk{err: fmt.Errorf("calling to OAuthConnectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OAuthConnectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OAuthConnectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OAuthConnection.
func (c *OAuthConnectionClient) Update() *OAuthConnectionUpdate {
	mutation := newOAuthConnectionMutation(c.config, OpUpdate)
	return &OAuthConnectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OAuthConnectionClient) UpdateOne(_m *OAuthConnection) *OAuthConnectionUpdateOne {
	mutation := newOAuthConnectionMutation(c.config, OpUpdateOne, withOAuthConnection(_m))
	return &OAuthConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OAuthConnectionClient) UpdateOneID(id string) *OAuthConnectionUpdateOne {
	mutation := newOAuthConnectionMutation(c.config, OpUpdateOne, withOAuthConnectionID(id))
	return &OAuthConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OAuthConnection.
func (c *OAuthConnectionClient) Delete() *OAuthConnectionDelete {
	mutation := newOAuthConnectionMutation(c.config, OpDelete)
	return &OAuthConnectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OAuthConnectionClient) DeleteOne(_m *OAuthConnection) *OAuthConnectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OAuthConnectionClient) DeleteOneID(id string) *OAuthConnectionDeleteOne {
	builder := c.Delete().Where(oauthconnection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OAuthConnectionDeleteOne{builder}
}

// Query returns a query builder for OAuthConnection.
func (c *OAuthConnectionClient) Query() *OAuthConnectionQuery {
	return &OAuthConnectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOAuthConnection},
		inters: c.Interceptors(),
	}
}

// Get returns a OAuthConnection entity by its id.
func (c *OAuthConnectionClient) Get(ctx context.Context, id string) (*OAuthConnection, error) {
	return c.Query().Where(oauthconnection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OAuthConnectionClient) GetX(ctx context.Context, id string) *OAuthConnection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OAuthConnectionClient) Hooks() []Hook {
	return c.hooks.OAuthConnection
}

// Interceptors returns the client interceptors.
func (c *OAuthConnectionClient) Interceptors() []Interceptor {
	return c.inters.OAuthConnection
}

func (c *OAuthConnectionClient) mutate(ctx context.Context, m *OAuthConnectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OAuthConnectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OAuthConnectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OAuthConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OAuthConnectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OAuthConnection mutation op: %q", m.Op())
	}
}

// OrgMemberClient is a client for the OrgMember schema.
type OrgMemberClient struct {
	config
}

// NewOrgMemberClient returns a client for the OrgMember from the given config.
func NewOrgMemberClient(c config) *OrgMemberClient {
	return &OrgMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orgmember.Hooks(f(g(h())))`.
func (c *OrgMemberClient) Use(hooks ...Hook) {
	c.hooks.OrgMember = append(c.hooks.OrgMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orgmember.Intercept(f(g(h())))`.
func (c *OrgMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrgMember = append(c.inters.OrgMember, interceptors...)
}

// Create returns a builder for creating a OrgMember entity.
func (c *OrgMemberClient) Create() *OrgMemberCreate {
	mutation := newOrgMemberMutation(c.config, OpCreate)
	return &OrgMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrgMember entities.
func (c *OrgMemberClient) CreateBulk(builders ...*OrgMemberCreate) *OrgMemberCreateBulk {
	return &OrgMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrgMemberClient) MapCreateBulk(slice any, setFunc func(*OrgMemberCreate, int)) *OrgMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrgMemberCreateBulk{err: fmt.Errorf("calling to OrgMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrgMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrgMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrgMember.
func (c *OrgMemberClient) Update() *OrgMemberUpdate {
	mutation := newOrgMemberMutation(c.config, OpUpdate)
	return &OrgMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrgMemberClient) UpdateOne(_m *OrgMember) *OrgMemberUpdateOne {
	mutation := newOrgMemberMutation(c.config, OpUpdateOne, withOrgMember(_m))
	return &OrgMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrgMemberClient) UpdateOneID(id string) *OrgMemberUpdateOne {
	mutation := newOrgMemberMutation(c.config, OpUpdateOne, withOrgMemberID(id))
	return &OrgMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrgMember.
func (c *OrgMemberClient) Delete() *OrgMemberDelete {
	mutation := newOrgMemberMutation(c.config, OpDelete)
	return &OrgMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrgMemberClient) DeleteOne(_m *OrgMember) *OrgMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrgMemberClient) DeleteOneID(id string) *OrgMemberDeleteOne {
	builder := c.Delete().Where(orgmember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrgMemberDeleteOne{builder}
}

// Query returns a query builder for OrgMember.
func (c *OrgMemberClient) Query() *OrgMemberQuery {
	return &OrgMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrgMember},
		inters: c.Interceptors(),
	}
}

// Get returns a OrgMember entity by its id.
func (c *OrgMemberClient) Get(ctx context.Context, id string) (*OrgMember, error) {
	return c.Query().Where(orgmember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrgMemberClient) GetX(ctx context.Context, id string) *OrgMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrgMemberClient) Hooks() []Hook {
	return c.hooks.OrgMember
}

// Interceptors returns the client interceptors.
func (c *OrgMemberClient) Interceptors() []Interceptor {
	return c.inters.OrgMember
}

func (c *OrgMemberClient) mutate(ctx context.Context, m *OrgMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrgMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrgMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrgMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrgMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrgMember mutation op: %q", m.Op())
	}
}

// RecordingClient is a client for the Recording schema.
type RecordingClient struct {
	config
}

// NewRecordingClient returns a client for the Recording from the given config.
func NewRecordingClient(c config) *RecordingClient {
	return &RecordingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recording.Hooks(f(g(h())))`.
func (c *RecordingClient) Use(hooks ...Hook) {
	c.hooks.Recording = append(c.hooks.Recording, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recording.Intercept(f(g(h())))`.
func (c *RecordingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Recording = append(c.inters.Recording, interceptors...)
}

// Create returns a builder for creating a Recording entity.
func (c *RecordingClient) Create() *RecordingCreate {
	mutation := newRecordingMutation(c.config, OpCreate)
	return &RecordingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Recording entities.
func (c *RecordingClient) CreateBulk(builders ...*RecordingCreate) *RecordingCreateBulk {
	return &RecordingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecordingClient) MapCreateBulk(slice any, setFunc func(*RecordingCreate, int)) *RecordingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecordingCreateBulk{err: fmt.Errorf("calling to RecordingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecordingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecordingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Recording.
func (c *RecordingClient) Update() *RecordingUpdate {
	mutation := newRecordingMutation(c.config, OpUpdate)
	return &RecordingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecordingClient) UpdateOne(_m *Recording) *RecordingUpdateOne {
	mutation := newRecordingMutation(c.config, OpUpdateOne, withRecording(_m))
	return &RecordingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecordingClient) UpdateOneID(id string) *RecordingUpdateOne {
	mutation := newRecordingMutation(c.config, OpUpdateOne, withRecordingID(id))
	return &RecordingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Recording.
func (c *RecordingClient) Delete() *RecordingDelete {
	mutation := newRecordingMutation(c.config, OpDelete)
	return &RecordingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecordingClient) DeleteOne(_m *Recording) *RecordingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecordingClient) DeleteOneID(id string) *RecordingDeleteOne {
	builder := c.Delete().Where(recording.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecordingDeleteOne{builder}
}

// Query returns a query builder for Recording.
func (c *RecordingClient) Query() *RecordingQuery {
	return &RecordingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecording},
		inters: c.Interceptors(),
	}
}

// Get returns a Recording entity by its id.
func (c *RecordingClient) Get(ctx context.Context, id string) (*Recording, error) {
	return c.Query().Where(recording.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecordingClient) GetX(ctx context.Context, id string) *Recording {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBotDeployment queries the bot_deployment edge of a Recording.
func (c *RecordingClient) QueryBotDeployment(_m *Recording) *BotDeploymentQuery {
	query := (&BotDeploymentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recording.Table, recording.FieldID, id),
			sqlgraph.To(botdeployment.Table, botdeployment.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, recording.BotDeploymentTable, recording.BotDeploymentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RecordingClient) Hooks() []Hook {
	return c.hooks.Recording
}

// Interceptors returns the client interceptors.
func (c *RecordingClient) Interceptors() []Interceptor {
	return c.inters.Recording
}

func (c *RecordingClient) mutate(ctx context.Context, m *RecordingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecordingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecordingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecordingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecordingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Recording mutation op: %q", m.Op())
	}
}

// RecordingRuleClient is a client for the RecordingRule schema.
type RecordingRuleClient struct {
	config
}

// NewRecordingRuleClient returns a client for the RecordingRule from the given config.
func NewRecordingRuleClient(c config) *RecordingRuleClient {
	return &RecordingRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recordingrule.Hooks(f(g(h())))`.
func (c *RecordingRuleClient) Use(hooks ...Hook) {
	c.hooks.RecordingRule = append(c.hooks.RecordingRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recordingrule.Intercept(f(g(h())))`.
func (c *RecordingRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.RecordingRule = append(c.inters.RecordingRule, interceptors...)
}

// Create returns a builder for creating a RecordingRule entity.
func (c *RecordingRuleClient) Create() *RecordingRuleCreate {
	mutation := newRecordingRuleMutation(c.config, OpCreate)
	return &RecordingRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RecordingRule entities.
func (c *RecordingRuleClient) CreateBulk(builders ...*RecordingRuleCreate) *RecordingRuleCreateBulk {
	return &RecordingRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecordingRuleClient) MapCreateBulk(slice any, setFunc func(*RecordingRuleCreate, int)) *RecordingRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecordingRuleCreateBulk{err: fmt.Errorf("calling to RecordingRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecordingRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecordingRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RecordingRule.
func (c *RecordingRuleClient) Update() *RecordingRuleUpdate {
	mutation := newRecordingRuleMutation(c.config, OpUpdate)
	return &RecordingRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecordingRuleClient) UpdateOne(_m *RecordingRule) *RecordingRuleUpdateOne {
	mutation := newRecordingRuleMutation(c.config, OpUpdateOne, withRecordingRule(_m))
	return &RecordingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecordingRuleClient) UpdateOneID(id string) *RecordingRuleUpdateOne {
	mutation := newRecordingRuleMutation(c.config, OpUpdateOne, withRecordingRuleID(id))
	return &RecordingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RecordingRule.
func (c *RecordingRuleClient) Delete() *RecordingRuleDelete {
	mutation := newRecordingRuleMutation(c.config, OpDelete)
	return &RecordingRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecordingRuleClient) DeleteOne(_m *RecordingRule) *RecordingRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecordingRuleClient) DeleteOneID(id string) *RecordingRuleDeleteOne {
	builder := c.Delete().Where(recordingrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecordingRuleDeleteOne{builder}
}

// Query returns a query builder for RecordingRule.
func (c *RecordingRuleClient) Query() *RecordingRuleQuery {
	return &RecordingRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecordingRule},
		inters: c.Interceptors(),
	}
}

// Get returns a RecordingRule entity by its id.
func (c *RecordingRuleClient) Get(ctx context.Context, id string) (*RecordingRule, error) {
	return c.Query().Where(recordingrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecordingRuleClient) GetX(ctx context.Context, id string) *RecordingRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RecordingRuleClient) Hooks() []Hook {
	return c.hooks.RecordingRule
}

// Interceptors returns the client interceptors.
func (c *RecordingRuleClient) Interceptors() []Interceptor {
	return c.inters.RecordingRule
}

func (c *RecordingRuleClient) mutate(ctx context.Context, m *RecordingRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecordingRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecordingRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecordingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecordingRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RecordingRule mutation op: %q", m.Op())
	}
}

// RetryJobClient is a client for the RetryJob schema.
type RetryJobClient struct {
	config
}

// NewRetryJobClient returns a client for the RetryJob from the given config.
func NewRetryJobClient(c config) *RetryJobClient {
	return &RetryJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `retryjob.Hooks(f(g(h())))`.
func (c *RetryJobClient) Use(hooks ...Hook) {
	c.hooks.RetryJob = append(c.hooks.RetryJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `retryjob.Intercept(f(g(h())))`.
func (c *RetryJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.RetryJob = append(c.inters.RetryJob, interceptors...)
}

// Create returns a builder for creating a RetryJob entity.
func (c *RetryJobClient) Create() *RetryJobCreate {
	mutation := newRetryJobMutation(c.config, OpCreate)
	return &RetryJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RetryJob entities.
func (c *RetryJobClient) CreateBulk(builders ...*RetryJobCreate) *RetryJobCreateBulk {
	return &RetryJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RetryJobClient) MapCreateBulk(slice any, setFunc func(*RetryJobCreate, int)) *RetryJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RetryJobCreateBulk{err: fmt.Errorf("calling to RetryJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RetryJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RetryJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RetryJob.
func (c *RetryJobClient) Update() *RetryJobUpdate {
	mutation := newRetryJobMutation(c.config, OpUpdate)
	return &RetryJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RetryJobClient) UpdateOne(_m *RetryJob) *RetryJobUpdateOne {
	mutation := newRetryJobMutation(c.config, OpUpdateOne, withRetryJob(_m))
	return &RetryJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RetryJobClient) UpdateOneID(id string) *RetryJobUpdateOne {
	mutation := newRetryJobMutation(c.config, OpUpdateOne, withRetryJobID(id))
	return &RetryJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RetryJob.
func (c *RetryJobClient) Delete() *RetryJobDelete {
	mutation := newRetryJobMutation(c.config, OpDelete)
	return &RetryJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RetryJobClient) DeleteOne(_m *RetryJob) *RetryJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RetryJobClient) DeleteOneID(id string) *RetryJobDeleteOne {
	builder := c.Delete().Where(retryjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RetryJobDeleteOne{builder}
}

// Query returns a query builder for RetryJob.
func (c *RetryJobClient) Query() *RetryJobQuery {
	return &RetryJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRetryJob},
		inters: c.Interceptors(),
	}
}

// Get returns a RetryJob entity by its id.
func (c *RetryJobClient) Get(ctx context.Context, id string) (*RetryJob, error) {
	return c.Query().Where(retryjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RetryJobClient) GetX(ctx context.Context, id string) *RetryJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RetryJobClient) Hooks() []Hook {
	return c.hooks.RetryJob
}

// Interceptors returns the client interceptors.
func (c *RetryJobClient) Interceptors() []Interceptor {
	return c.inters.RetryJob
}

func (c *RetryJobClient) mutate(ctx context.Context, m *RetryJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RetryJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RetryJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RetryJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RetryJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RetryJob mutation op: %q", m.Op())
	}
}

// RoutingRuleClient is a client for the RoutingRule schema.
type RoutingRuleClient struct {
	config
}

// NewRoutingRuleClient returns a client for the RoutingRule from the given config.
func NewRoutingRuleClient(c config) *RoutingRuleClient {
	return &RoutingRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `routingrule.Hooks(f(g(h())))`.
func (c *RoutingRuleClient) Use(hooks ...Hook) {
	c.hooks.RoutingRule = append(c.hooks.RoutingRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `routingrule.Intercept(f(g(h())))`.
func (c *RoutingRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.RoutingRule = append(c.inters.RoutingRule, interceptors...)
}

// Create returns a builder for creating a RoutingRule entity.
func (c *RoutingRuleClient) Create() *RoutingRuleCreate {
	mutation := newRoutingRuleMutation(c.config, OpCreate)
	return &RoutingRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RoutingRule entities.
func (c *RoutingRuleClient) CreateBulk(builders ...*RoutingRuleCreate) *RoutingRuleCreateBulk {
	return &RoutingRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoutingRuleClient) MapCreateBulk(slice any, setFunc func(*RoutingRuleCreate, int)) *RoutingRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoutingRuleCreateBulk{err: fmt.Errorf("calling to RoutingRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoutingRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoutingRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RoutingRule.
func (c *RoutingRuleClient) Update() *RoutingRuleUpdate {
	mutation := newRoutingRuleMutation(c.config, OpUpdate)
	return &RoutingRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoutingRuleClient) UpdateOne(_m *RoutingRule) *RoutingRuleUpdateOne {
	mutation := newRoutingRuleMutation(c.config, OpUpdateOne, withRoutingRule(_m))
	return &RoutingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoutingRuleClient) UpdateOneID(id string) *RoutingRuleUpdateOne {
	mutation := newRoutingRuleMutation(c.config, OpUpdateOne, withRoutingRuleID(id))
	return &RoutingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RoutingRule.
func (c *RoutingRuleClient) Delete() *RoutingRuleDelete {
	mutation := newRoutingRuleMutation(c.config, OpDelete)
	return &RoutingRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoutingRuleClient) DeleteOne(_m *RoutingRule) *RoutingRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoutingRuleClient) DeleteOneID(id string) *RoutingRuleDeleteOne {
	builder := c.Delete().Where(routingrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoutingRuleDeleteOne{builder}
}

// Query returns a query builder for RoutingRule.
func (c *RoutingRuleClient) Query() *RoutingRuleQuery {
	return &RoutingRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoutingRule},
		inters: c.Interceptors(),
	}
}

// Get returns a RoutingRule entity by its id.
func (c *RoutingRuleClient) Get(ctx context.Context, id string) (*RoutingRule, error) {
	return c.Query().Where(routingrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoutingRuleClient) GetX(ctx context.Context, id string) *RoutingRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RoutingRuleClient) Hooks() []Hook {
	return c.hooks.RoutingRule
}

// Interceptors returns the client interceptors.
func (c *RoutingRuleClient) Interceptors() []Interceptor {
	return c.inters.RoutingRule
}

func (c *RoutingRuleClient) mutate(ctx context.Context, m *RoutingRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoutingRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoutingRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoutingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoutingRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RoutingRule mutation op: %q", m.Op())
	}
}

// SequenceExecutionClient is a client for the SequenceExecution schema.
type SequenceExecutionClient struct {
	config
}

// NewSequenceExecutionClient returns a client for the SequenceExecution from the given config.
func NewSequenceExecutionClient(c config) *SequenceExecutionClient {
	return &SequenceExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sequenceexecution.Hooks(f(g(h())))`.
func (c *SequenceExecutionClient) Use(hooks ...Hook) {
	c.hooks.SequenceExecution = append(c.hooks.SequenceExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sequenceexecution.Intercept(f(g(h())))`.
func (c *SequenceExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SequenceExecution = append(c.inters.SequenceExecution, interceptors...)
}

// Create returns a builder for creating a SequenceExecution entity.
func (c *SequenceExecutionClient) Create() *SequenceExecutionCreate {
	mutation := newSequenceExecutionMutation(c.config, OpCreate)
	return &SequenceExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SequenceExecution entities.
func (c *SequenceExecutionClient) CreateBulk(builders ...*SequenceExecutionCreate) *SequenceExecutionCreateBulk {
	return &SequenceExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SequenceExecutionClient) MapCreateBulk(slice any, setFunc func(*SequenceExecutionCreate, int)) *SequenceExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SequenceExecutionCreateBulk{err: fmt.Errorf("calling to SequenceExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SequenceExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SequenceExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SequenceExecution.
func (c *SequenceExecutionClient) Update() *SequenceExecutionUpdate {
	mutation := newSequenceExecutionMutation(c.config, OpUpdate)
	return &SequenceExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SequenceExecutionClient) UpdateOne(_m *SequenceExecution) *SequenceExecutionUpdateOne {
	mutation := newSequenceExecutionMutation(c.config, OpUpdateOne, withSequenceExecution(_m))
	return &SequenceExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SequenceExecutionClient) UpdateOneID(id string) *SequenceExecutionUpdateOne {
	mutation := newSequenceExecutionMutation(c.config, OpUpdateOne, withSequenceExecutionID(id))
	return &SequenceExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SequenceExecution.
func (c *SequenceExecutionClient) Delete() *SequenceExecutionDelete {
	mutation := newSequenceExecutionMutation(c.config, OpDelete)
	return &SequenceExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SequenceExecutionClient) DeleteOne(_m *SequenceExecution) *SequenceExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SequenceExecutionClient) DeleteOneID(id string) *SequenceExecutionDeleteOne {
	builder := c.Delete().Where(sequenceexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SequenceExecutionDeleteOne{builder}
}

// Query returns a query builder for SequenceExecution.
func (c *SequenceExecutionClient) Query() *SequenceExecutionQuery {
	return &SequenceExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSequenceExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a SequenceExecution entity by its id.
func (c *SequenceExecutionClient) Get(ctx context.Context, id string) (*SequenceExecution, error) {
	return c.Query().Where(sequenceexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SequenceExecutionClient) GetX(ctx context.Context, id string) *SequenceExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SequenceExecutionClient) Hooks() []Hook {
	return c.hooks.SequenceExecution
}

// Interceptors returns the client interceptors.
func (c *SequenceExecutionClient) Interceptors() []Interceptor {
	return c.inters.SequenceExecution
}

func (c *SequenceExecutionClient) mutate(ctx context.Context, m *SequenceExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SequenceExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SequenceExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SequenceExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SequenceExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SequenceExecution mutation op: %q", m.Op())
	}
}

// SlackWorkspaceClient is a client for the SlackWorkspace schema.
type SlackWorkspaceClient struct {
	config
}

// NewSlackWorkspaceClient returns a client for the SlackWorkspace from the given config.
func NewSlackWorkspaceClient(c config) *SlackWorkspaceClient {
	return &SlackWorkspaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `slackworkspace.Hooks(f(g(h())))`.
func (c *SlackWorkspaceClient) Use(hooks ...Hook) {
	c.hooks.SlackWorkspace = append(c.hooks.SlackWorkspace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `slackworkspace.Intercept(f(g(h())))`.
func (c *SlackWorkspaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.SlackWorkspace = append(c.inters.SlackWorkspace, interceptors...)
}

// Create returns a builder for creating a SlackWorkspace entity.
func (c *SlackWorkspaceClient) Create() *SlackWorkspaceCreate {
	mutation := newSlackWorkspaceMutation(c.config, OpCreate)
	return &SlackWorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SlackWorkspace entities.
func (c *SlackWorkspaceClient) CreateBulk(builders ...*SlackWorkspaceCreate) *SlackWorkspaceCreateBulk {
	return &SlackWorkspaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SlackWorkspaceClient) MapCreateBulk(slice any, setFunc func(*SlackWorkspaceCreate, int)) *SlackWorkspaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SlackWorkspaceCreateBulk{err: fmt.Errorf("calling to SlackWorkspaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SlackWorkspaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SlackWorkspaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SlackWorkspace.
func (c *SlackWorkspaceClient) Update() *SlackWorkspaceUpdate {
	mutation := newSlackWorkspaceMutation(c.config, OpUpdate)
	return &SlackWorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SlackWorkspaceClient) UpdateOne(_m *SlackWorkspace) *SlackWorkspaceUpdateOne {
	mutation := newSlackWorkspaceMutation(c.config, OpUpdateOne, withSlackWorkspace(_m))
	return &SlackWorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SlackWorkspaceClient) UpdateOneID(id string) *SlackWorkspaceUpdateOne {
	mutation := newSlackWorkspaceMutation(c.config, OpUpdateOne, withSlackWorkspaceID(id))
	return &SlackWorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SlackWorkspace.
func (c *SlackWorkspaceClient) Delete() *SlackWorkspaceDelete {
	mutation := newSlackWorkspaceMutation(c.config, OpDelete)
	return &SlackWorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SlackWorkspaceClient) DeleteOne(_m *SlackWorkspace) *SlackWorkspaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SlackWorkspaceClient) DeleteOneID(id string) *SlackWorkspaceDeleteOne {
	builder := c.Delete().Where(slackworkspace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SlackWorkspaceDeleteOne{builder}
}

// Query returns a query builder for SlackWorkspace.
func (c *SlackWorkspaceClient) Query() *SlackWorkspaceQuery {
	return &SlackWorkspaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSlackWorkspace},
		inters: c.Interceptors(),
	}
}

// Get returns a SlackWorkspace entity by its id.
func (c *SlackWorkspaceClient) Get(ctx context.Context, id string) (*SlackWorkspace, error) {
	return c.Query().Where(slackworkspace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SlackWorkspaceClient) GetX(ctx context.Context, id string) *SlackWorkspace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SlackWorkspaceClient) Hooks() []Hook {
	return c.hooks.SlackWorkspace
}

// Interceptors returns the client interceptors.
func (c *SlackWorkspaceClient) Interceptors() []Interceptor {
	return c.inters.SlackWorkspace
}

func (c *SlackWorkspaceClient) mutate(ctx context.Context, m *SlackWorkspaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SlackWorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SlackWorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SlackWorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SlackWorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SlackWorkspace mutation op: %q", m.Op())
	}
}

// UserMetricsClient is a client for the UserMetrics schema.
type UserMetricsClient struct {
	config
}

// NewUserMetricsClient returns a client for the UserMetrics from the given config.
func NewUserMetricsClient(c config) *UserMetricsClient {
	return &UserMetricsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usermetrics.Hooks(f(g(h())))`.
func (c *UserMetricsClient) Use(hooks ...Hook) {
	c.hooks.UserMetrics = append(c.hooks.UserMetrics, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usermetrics.Intercept(f(g(h())))`.
func (c *UserMetricsClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserMetrics = append(c.inters.UserMetrics, interceptors...)
}

// Create returns a builder for creating a UserMetrics entity.
func (c *UserMetricsClient) Create() *UserMetricsCreate {
	mutation := newUserMetricsMutation(c.config, OpCreate)
	return &UserMetricsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserMetrics entities.
func (c *UserMetricsClient) CreateBulk(builders ...*UserMetricsCreate) *UserMetricsCreateBulk {
	return &UserMetricsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserMetricsClient) MapCreateBulk(slice any, setFunc func(*UserMetricsCreate, int)) *UserMetricsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserMetricsCreateBulk{err: fmt.Errorf("calling to UserMetricsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserMetricsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserMetricsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserMetrics.
func (c *UserMetricsClient) Update() *UserMetricsUpdate {
	mutation := newUserMetricsMutation(c.config, OpUpdate)
	return &UserMetricsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserMetricsClient) UpdateOne(_m *UserMetrics) *UserMetricsUpdateOne {
	mutation := newUserMetricsMutation(c.config, OpUpdateOne, withUserMetrics(_m))
	return &UserMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserMetricsClient) UpdateOneID(id string) *UserMetricsUpdateOne {
	mutation := newUserMetricsMutation(c.config, OpUpdateOne, withUserMetricsID(id))
	return &UserMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserMetrics.
func (c *UserMetricsClient) Delete() *UserMetricsDelete {
	mutation := newUserMetricsMutation(c.config, OpDelete)
	return &UserMetricsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserMetricsClient) DeleteOne(_m *UserMetrics) *UserMetricsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserMetricsClient) DeleteOneID(id string) *UserMetricsDeleteOne {
	builder := c.Delete().Where(usermetrics.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserMetricsDeleteOne{builder}
}

// Query returns a query builder for UserMetrics.
func (c *UserMetricsClient) Query() *UserMetricsQuery {
	return &UserMetricsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserMetrics},
		inters: c.Interceptors(),
	}
}

// Get returns a UserMetrics entity by its id.
func (c *UserMetricsClient) Get(ctx context.Context, id string) (*UserMetrics, error) {
	return c.Query().Where(usermetrics.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserMetricsClient) GetX(ctx context.Context, id string) *UserMetrics {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserMetricsClient) Hooks() []Hook {
	return c.hooks.UserMetrics
}

// Interceptors returns the client interceptors.
func (c *UserMetricsClient) Interceptors() []Interceptor {
	return c.inters.UserMetrics
}

func (c *UserMetricsClient) mutate(ctx context.Context, m *UserMetricsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserMetricsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserMetricsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserMetricsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserMetrics mutation op: %q", m.Op())
	}
}

// WebhookEventClient is a client for the WebhookEvent schema.
type WebhookEventClient struct {
	config
}

// NewWebhookEventClient returns a client for the WebhookEvent from the given config.
func NewWebhookEventClient(c config) *WebhookEventClient {
	return &WebhookEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookevent.Hooks(f(g(h())))`.
func (c *WebhookEventClient) Use(hooks ...Hook) {
	c.hooks.WebhookEvent = append(c.hooks.WebhookEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookevent.Intercept(f(g(h())))`.
func (c *WebhookEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookEvent = append(c.inters.WebhookEvent, interceptors...)
}

// Create returns a builder for creating a WebhookEvent entity.
func (c *WebhookEventClient) Create() *WebhookEventCreate {
	mutation := newWebhookEventMutation(c.config, OpCreate)
	return &WebhookEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookEvent entities.
func (c *WebhookEventClient) CreateBulk(builders ...*WebhookEventCreate) *WebhookEventCreateBulk {
	return &WebhookEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookEventClient) MapCreateBulk(slice any, setFunc func(*WebhookEventCreate, int)) *WebhookEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookEventCreateBulk{err: fmt.Errorf("calling to WebhookEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookEvent.
func (c *WebhookEventClient) Update() *WebhookEventUpdate {
	mutation := newWebhookEventMutation(c.config, OpUpdate)
	return &WebhookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookEventClient) UpdateOne(_m *WebhookEvent) *WebhookEventUpdateOne {
	mutation := newWebhookEventMutation(c.config, OpUpdateOne, withWebhookEvent(_m))
	return &WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookEventClient) UpdateOneID(id string) *WebhookEventUpdateOne {
	mutation := newWebhookEventMutation(c.config, OpUpdateOne, withWebhookEventID(id))
	return &WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookEvent.
func (c *WebhookEventClient) Delete() *WebhookEventDelete {
	mutation := newWebhookEventMutation(c.config, OpDelete)
	return &WebhookEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookEventClient) DeleteOne(_m *WebhookEvent) *WebhookEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookEventClient) DeleteOneID(id string) *WebhookEventDeleteOne {
	builder := c.Delete().Where(webhookevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookEventDeleteOne{builder}
}

// Query returns a query builder for WebhookEvent.
func (c *WebhookEventClient) Query() *WebhookEventQuery {
	return &WebhookEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookEvent entity by its id.
func (c *WebhookEventClient) Get(ctx context.Context, id string) (*WebhookEvent, error) {
	return c.Query().Where(webhookevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookEventClient) GetX(ctx context.Context, id string) *WebhookEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WebhookEventClient) Hooks() []Hook {
	return c.hooks.WebhookEvent
}

// Interceptors returns the client interceptors.
func (c *WebhookEventClient) Interceptors() []Interceptor {
	return c.inters.WebhookEvent
}

func (c *WebhookEventClient) mutate(ctx context.Context, m *WebhookEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BotDeployment, InAppNotification, NotificationInteraction,
		NotificationQueueItem, OAuthConnection, OrgMember, Recording, RecordingRule,
		RetryJob, RoutingRule, SequenceExecution, SlackWorkspace, UserMetrics,
		WebhookEvent []ent.Hook
	}
	inters struct {
		BotDeployment, InAppNotification, NotificationInteraction,
		NotificationQueueItem, OAuthConnection, OrgMember, Recording, RecordingRule,
		RetryJob, RoutingRule, SequenceExecution, SlackWorkspace, UserMetrics,
		WebhookEvent []ent.Interceptor
	}
)
