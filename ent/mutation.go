// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/inappnotification"
	"github.com/stridehq/cadenza/ent/notificationinteraction"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/ent/oauthconnection"
	"github.com/stridehq/cadenza/ent/orgmember"
	"github.com/stridehq/cadenza/ent/predicate"
	"github.com/stridehq/cadenza/ent/recording"
	"github.com/stridehq/cadenza/ent/recordingrule"
	"github.com/stridehq/cadenza/ent/retryjob"
	"github.com/stridehq/cadenza/ent/routingrule"
	"github.com/stridehq/cadenza/ent/sequenceexecution"
	"github.com/stridehq/cadenza/ent/slackworkspace"
	"github.com/stridehq/cadenza/ent/usermetrics"
	"github.com/stridehq/cadenza/ent/webhookevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBotDeployment           = "BotDeployment"
	TypeInAppNotification       = "InAppNotification"
	TypeNotificationInteraction = "NotificationInteraction"
	TypeNotificationQueueItem   = "NotificationQueueItem"
	TypeOAuthConnection         = "OAuthConnection"
	TypeOrgMember               = "OrgMember"
	TypeRecording               = "Recording"
	TypeRecordingRule           = "RecordingRule"
	TypeRetryJob                = "RetryJob"
	TypeRoutingRule             = "RoutingRule"
	TypeSequenceExecution       = "SequenceExecution"
	TypeSlackWorkspace          = "SlackWorkspace"
	TypeUserMetrics             = "UserMetrics"
	TypeWebhookEvent            = "WebhookEvent"
)

// BotDeploymentMutation represents an operation that mutates the BotDeployment nodes in the graph.
type BotDeploymentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	org_id               *string
	bot_id               *string
	status               *botdeployment.Status
	status_history       *[]map[string]interface{}
	appendstatus_history []map[string]interface{}
	scheduled_join_time  *time.Time
	actual_join_time     *time.Time
	leave_time           *time.Time
	error_code           *string
	error_message        *string
	version              *int
	addversion           *int
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	recording            *string
	clearedrecording     bool
	done                 bool
	oldValue             func(context.Context) (*BotDeployment, error)
	predicates           []predicate.BotDeployment
}

var _ ent.Mutation = (*BotDeploymentMutation)(nil)

// botdeploymentOption allows management of the mutation configuration using functional options.
type botdeploymentOption func(*BotDeploymentMutation)

// newBotDeploymentMutation creates new mutation for the BotDeployment entity.
func newBotDeploymentMutation(c config, op Op, opts ...botdeploymentOption) *BotDeploymentMutation {
	m := &BotDeploymentMutation{
		config:        c,
		op:            op,
		typ:           TypeBotDeployment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBotDeploymentID sets the ID field of the mutation.
func withBotDeploymentID(id string) botdeploymentOption {
	return func(m *BotDeploymentMutation) {
		var (
			err   error
			once  sync.Once
			value *BotDeployment
		)
		m.oldValue = func(ctx context.Context) (*BotDeployment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BotDeployment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBotDeployment sets the old BotDeployment of the mutation.
func withBotDeployment(node *BotDeployment) botdeploymentOption {
	return func(m *BotDeploymentMutation) {
		m.oldValue = func(context.Context) (*BotDeployment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BotDeploymentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BotDeploymentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BotDeployment entities.
func (m *BotDeploymentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BotDeploymentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BotDeploymentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BotDeployment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *BotDeploymentMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *BotDeploymentMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the BotDeployment entity.
// If the BotDeployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotDeploymentMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *BotDeploymentMutation) ResetOrgID() {
	m.org_id = nil
}

// SetRecordingID sets the "recording_id" field.
func (m *BotDeploymentMutation) SetRecordingID(s string) {
	m.recording = &s
}

// RecordingID returns the value of the "recording_id" field in the mutation.
func (m *BotDeploymentMutation) RecordingID() (r string, exists bool) {
	v := m.recording
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordingID returns the old "recording_id" field's value of the BotDeployment entity.
// If the BotDeployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotDeploymentMutation) OldRecordingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordingID: %w", err)
	}
	return oldValue.RecordingID, nil
}

// ResetRecordingID resets all changes to the "recording_id" field.
func (m *BotDeploymentMutation) ResetRecordingID() {
	m.recording = nil
}

// SetBotID sets the "bot_id" field.
func (m *BotDeploymentMutation) SetBotID(s string) {
	m.bot_id = &s
}

// BotID returns the value of the "bot_id" field in the mutation.
func (m *BotDeploymentMutation) BotID() (r string, exists bool) {
	v := m.bot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBotID returns the old "bot_id" field's value of the BotDeployment entity.
// If the BotDeployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotDeploymentMutation) OldBotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotID: %w", err)
	}
	return oldValue.BotID, nil
}

// ResetBotID resets all changes to the "bot_id" field.
func (m *BotDeploymentMutation) ResetBotID() {
	m.bot_id = nil
}

// SetStatus sets the "status" field.
func (m *BotDeploymentMutation) SetStatus(b botdeployment.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BotDeploymentMutation) Status() (r botdeployment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BotDeployment entity.
// If the BotDeployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotDeploymentMutation) OldStatus(ctx context.Context) (v botdeployment.Status, err error) {
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
func (m *BotDeploymentMutation) ResetStatus() {
	m.status = nil
}

// SetStatusHistory sets the "status_history" field.
func (m *BotDeploymentMutation) SetStatusHistory(value []map[string]interface{}) {
	m.status_history = &value
	m.appendstatus_history = nil
}

// StatusHistory returns the value of the "status_history" field in the mutation.
func (m *BotDeploymentMutation) StatusHistory() (r []map[string]interface{}, exists bool) {
	v := m.status_history
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusHistory returns the old "status_history" field's value of the BotDeployment entity.
// If the BotDeployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotDeploymentMutation) OldStatusHistory(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusHistory: %w", err)
	}
	return oldValue.StatusHistory, nil
}

// AppendStatusHistory adds value to the "status_history" field.
func (m *BotDeploymentMutation) AppendStatusHistory(value []map[string]interface{}) {
	m.appendstatus_history = append(m.appendstatus_history, value...)
}

// AppendedStatusHistory returns the list of values that were appended to the "status_history" field in this mutation.
func (m *BotDeploymentMutation) AppendedStatusHistory() ([]map[string]interface{}, bool) {
	if len(m.appendstatus_history) == 0 {
		return nil, false
	}
	return m.appendstatus_history, true
}

// ClearStatusHistory clears the value of the "status_history" field.
func (m *BotDeploymentMutation) ClearStatusHistory() {
	m.status_history = nil
	m.appendstatus_history = nil
	m.clearedFields[botdeployment.FieldStatusHistory] = struct{}{}
}

// StatusHistoryCleared returns if the "status_history" field was cleared in this mutation.
func (m *BotDeploymentMutation) StatusHistoryCleared() bool {
	_, ok := m.clearedFields[botdeployment.FieldStatusHistory]
	return ok
}

// ResetStatusHistory resets all changes to the "status_history" field.
func (m *BotDeploymentMutation) ResetStatusHistory() {
	m.status_history = nil
	m.appendstatus_history = nil
	delete(m.clearedFields, botdeployment.FieldStatusHistory)
}

// SetScheduledJoinTime sets the "scheduled_join_time" field.
func (m *BotDeploymentMutation) SetScheduledJoinTime(t time.Time) {
	m.scheduled_join_time = &t
}

// ScheduledJoinTime returns the value of the "scheduled_join_time" field in the mutation.
func (m *BotDeploymentMutation) ScheduledJoinTime() (r time.Time, exists bool) {
	v := m.scheduled_join_time
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledJoinTime returns the old "scheduled_join_time" field's value of the BotDeployment entity.
// If the BotDeployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotDeploymentMutation) OldScheduledJoinTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledJoinTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledJoinTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledJoinTime: %w", err)
	}
	return oldValue.ScheduledJoinTime, nil
}

// ResetScheduledJoinTime resets all changes to the "scheduled_join_time" field.
func (m *BotDeploymentMutation) ResetScheduledJoinTime() {
	m.scheduled_join_time = nil
}

// SetActualJoinTime sets the "actual_join_time" field.
func (m *BotDeploymentMutation) SetActualJoinTime(t time.Time) {
	m.actual_join_time = &t
}

// ActualJoinTime returns the value of the "actual_join_time" field in the mutation.
func (m *BotDeploymentMutation) ActualJoinTime() (r time.Time, exists bool) {
	v := m.actual_join_time
	if v == nil {
		return
	}
	return *v, true
}

// OldActualJoinTime returns the old "actual_join_time" field's value of the BotDeployment entity.
// If the BotDeployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotDeploymentMutation) OldActualJoinTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualJoinTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualJoinTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualJoinTime: %w", err)
	}
	return oldValue.ActualJoinTime, nil
}

// ClearActualJoinTime clears the value of the "actual_join_time" field.
func (m *BotDeploymentMutation) ClearActualJoinTime() {
	m.actual_join_time = nil
	m.clearedFields[botdeployment.FieldActualJoinTime] = struct{}{}
}

// ActualJoinTimeCleared returns if the "actual_join_time" field was cleared in this mutation.
func (m *BotDeploymentMutation) ActualJoinTimeCleared() bool {
	_, ok := m.clearedFields[botdeployment.FieldActualJoinTime]
	return ok
}

// ResetActualJoinTime resets all changes to the "actual_join_time" field.
func (m *BotDeploymentMutation) ResetActualJoinTime() {
	m.actual_join_time = nil
	delete(m.clearedFields, botdeployment.FieldActualJoinTime)
}

// SetLeaveTime sets the "leave_time" field.
func (m *BotDeploymentMutation) SetLeaveTime(t time.Time) {
	m.leave_time = &t
}

// LeaveTime returns the value of the "leave_time" field in the mutation.
func (m *BotDeploymentMutation) LeaveTime() (r time.Time, exists bool) {
	v := m.leave_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaveTime returns the old "leave_time" field's value of the BotDeployment entity.
// If the BotDeployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotDeploymentMutation) OldLeaveTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaveTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaveTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaveTime: %w", err)
	}
	return oldValue.LeaveTime, nil
}

// ClearLeaveTime clears the value of the "leave_time" field.
func (m *BotDeploymentMutation) ClearLeaveTime() {
	m.leave_time = nil
	m.clearedFields[botdeployment.FieldLeaveTime] = struct{}{}
}

// LeaveTimeCleared returns if the "leave_time" field was cleared in this mutation.
func (m *BotDeploymentMutation) LeaveTimeCleared() bool {
	_, ok := m.clearedFields[botdeployment.FieldLeaveTime]
	return ok
}

// ResetLeaveTime resets all changes to the "leave_time" field.
func (m *BotDeploymentMutation) ResetLeaveTime() {
	m.leave_time = nil
	delete(m.clearedFields, botdeployment.FieldLeaveTime)
}

// SetErrorCode sets the "error_code" field.
func (m *BotDeploymentMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *BotDeploymentMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the BotDeployment entity.
// If the BotDeployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotDeploymentMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *BotDeploymentMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[botdeployment.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *BotDeploymentMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[botdeployment.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *BotDeploymentMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, botdeployment.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *BotDeploymentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *BotDeploymentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the BotDeployment entity.
// If the BotDeployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotDeploymentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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
func (m *BotDeploymentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[botdeployment.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *BotDeploymentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[botdeployment.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *BotDeploymentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, botdeployment.FieldErrorMessage)
}

// SetVersion sets the "version" field.
func (m *BotDeploymentMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *BotDeploymentMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the BotDeployment entity.
// If the BotDeployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotDeploymentMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *BotDeploymentMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *BotDeploymentMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *BotDeploymentMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BotDeploymentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BotDeploymentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BotDeployment entity.
// If the BotDeployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotDeploymentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BotDeploymentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BotDeploymentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BotDeploymentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BotDeployment entity.
// If the BotDeployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotDeploymentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BotDeploymentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRecording clears the "recording" edge to the Recording entity.
func (m *BotDeploymentMutation) ClearRecording() {
	m.clearedrecording = true
	m.clearedFields[botdeployment.FieldRecordingID] = struct{}{}
}

// RecordingCleared reports if the "recording" edge to the Recording entity was cleared.
func (m *BotDeploymentMutation) RecordingCleared() bool {
	return m.clearedrecording
}

// RecordingIDs returns the "recording" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecordingID instead. It exists only for internal usage by the builders.
func (m *BotDeploymentMutation) RecordingIDs() (ids []string) {
	if id := m.recording; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecording resets all changes to the "recording" edge.
func (m *BotDeploymentMutation) ResetRecording() {
	m.recording = nil
	m.clearedrecording = false
}

// Where appends a list predicates to the BotDeploymentMutation builder.
func (m *BotDeploymentMutation) Where(ps ...predicate.BotDeployment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BotDeploymentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BotDeploymentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BotDeployment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BotDeploymentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BotDeploymentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BotDeployment).
func (m *BotDeploymentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BotDeploymentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.org_id != nil {
		fields = append(fields, botdeployment.FieldOrgID)
	}
	if m.recording != nil {
		fields = append(fields, botdeployment.FieldRecordingID)
	}
	if m.bot_id != nil {
		fields = append(fields, botdeployment.FieldBotID)
	}
	if m.status != nil {
		fields = append(fields, botdeployment.FieldStatus)
	}
	if m.status_history != nil {
		fields = append(fields, botdeployment.FieldStatusHistory)
	}
	if m.scheduled_join_time != nil {
		fields = append(fields, botdeployment.FieldScheduledJoinTime)
	}
	if m.actual_join_time != nil {
		fields = append(fields, botdeployment.FieldActualJoinTime)
	}
	if m.leave_time != nil {
		fields = append(fields, botdeployment.FieldLeaveTime)
	}
	if m.error_code != nil {
		fields = append(fields, botdeployment.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, botdeployment.FieldErrorMessage)
	}
	if m.version != nil {
		fields = append(fields, botdeployment.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, botdeployment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, botdeployment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BotDeploymentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case botdeployment.FieldOrgID:
		return m.OrgID()
	case botdeployment.FieldRecordingID:
		return m.RecordingID()
	case botdeployment.FieldBotID:
		return m.BotID()
	case botdeployment.FieldStatus:
		return m.Status()
	case botdeployment.FieldStatusHistory:
		return m.StatusHistory()
	case botdeployment.FieldScheduledJoinTime:
		return m.ScheduledJoinTime()
	case botdeployment.FieldActualJoinTime:
		return m.ActualJoinTime()
	case botdeployment.FieldLeaveTime:
		return m.LeaveTime()
	case botdeployment.FieldErrorCode:
		return m.ErrorCode()
	case botdeployment.FieldErrorMessage:
		return m.ErrorMessage()
	case botdeployment.FieldVersion:
		return m.Version()
	case botdeployment.FieldCreatedAt:
		return m.CreatedAt()
	case botdeployment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BotDeploymentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case botdeployment.FieldOrgID:
		return m.OldOrgID(ctx)
	case botdeployment.FieldRecordingID:
		return m.OldRecordingID(ctx)
	case botdeployment.FieldBotID:
		return m.OldBotID(ctx)
	case botdeployment.FieldStatus:
		return m.OldStatus(ctx)
	case botdeployment.FieldStatusHistory:
		return m.OldStatusHistory(ctx)
	case botdeployment.FieldScheduledJoinTime:
		return m.OldScheduledJoinTime(ctx)
	case botdeployment.FieldActualJoinTime:
		return m.OldActualJoinTime(ctx)
	case botdeployment.FieldLeaveTime:
		return m.OldLeaveTime(ctx)
	case botdeployment.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case botdeployment.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case botdeployment.FieldVersion:
		return m.OldVersion(ctx)
	case botdeployment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case botdeployment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BotDeployment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotDeploymentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case botdeployment.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case botdeployment.FieldRecordingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordingID(v)
		return nil
	case botdeployment.FieldBotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotID(v)
		return nil
	case botdeployment.FieldStatus:
		v, ok := value.(botdeployment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case botdeployment.FieldStatusHistory:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusHistory(v)
		return nil
	case botdeployment.FieldScheduledJoinTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledJoinTime(v)
		return nil
	case botdeployment.FieldActualJoinTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualJoinTime(v)
		return nil
	case botdeployment.FieldLeaveTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaveTime(v)
		return nil
	case botdeployment.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case botdeployment.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case botdeployment.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case botdeployment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case botdeployment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BotDeployment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BotDeploymentMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, botdeployment.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BotDeploymentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case botdeployment.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotDeploymentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case botdeployment.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown BotDeployment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BotDeploymentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(botdeployment.FieldStatusHistory) {
		fields = append(fields, botdeployment.FieldStatusHistory)
	}
	if m.FieldCleared(botdeployment.FieldActualJoinTime) {
		fields = append(fields, botdeployment.FieldActualJoinTime)
	}
	if m.FieldCleared(botdeployment.FieldLeaveTime) {
		fields = append(fields, botdeployment.FieldLeaveTime)
	}
	if m.FieldCleared(botdeployment.FieldErrorCode) {
		fields = append(fields, botdeployment.FieldErrorCode)
	}
	if m.FieldCleared(botdeployment.FieldErrorMessage) {
		fields = append(fields, botdeployment.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BotDeploymentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BotDeploymentMutation) ClearField(name string) error {
	switch name {
	case botdeployment.FieldStatusHistory:
		m.ClearStatusHistory()
		return nil
	case botdeployment.FieldActualJoinTime:
		m.ClearActualJoinTime()
		return nil
	case botdeployment.FieldLeaveTime:
		m.ClearLeaveTime()
		return nil
	case botdeployment.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case botdeployment.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown BotDeployment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BotDeploymentMutation) ResetField(name string) error {
	switch name {
	case botdeployment.FieldOrgID:
		m.ResetOrgID()
		return nil
	case botdeployment.FieldRecordingID:
		m.ResetRecordingID()
		return nil
	case botdeployment.FieldBotID:
		m.ResetBotID()
		return nil
	case botdeployment.FieldStatus:
		m.ResetStatus()
		return nil
	case botdeployment.FieldStatusHistory:
		m.ResetStatusHistory()
		return nil
	case botdeployment.FieldScheduledJoinTime:
		m.ResetScheduledJoinTime()
		return nil
	case botdeployment.FieldActualJoinTime:
		m.ResetActualJoinTime()
		return nil
	case botdeployment.FieldLeaveTime:
		m.ResetLeaveTime()
		return nil
	case botdeployment.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case botdeployment.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case botdeployment.FieldVersion:
		m.ResetVersion()
		return nil
	case botdeployment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case botdeployment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BotDeployment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BotDeploymentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.recording != nil {
		edges = append(edges, botdeployment.EdgeRecording)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BotDeploymentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case botdeployment.EdgeRecording:
		if id := m.recording; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BotDeploymentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BotDeploymentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BotDeploymentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecording {
		edges = append(edges, botdeployment.EdgeRecording)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BotDeploymentMutation) EdgeCleared(name string) bool {
	switch name {
	case botdeployment.EdgeRecording:
		return m.clearedrecording
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BotDeploymentMutation) ClearEdge(name string) error {
	switch name {
	case botdeployment.EdgeRecording:
		m.ClearRecording()
		return nil
	}
	return fmt.Errorf("unknown BotDeployment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BotDeploymentMutation) ResetEdge(name string) error {
	switch name {
	case botdeployment.EdgeRecording:
		m.ResetRecording()
		return nil
	}
	return fmt.Errorf("unknown BotDeployment edge %s", name)
}

// InAppNotificationMutation represents an operation that mutates the InAppNotification nodes in the graph.
type InAppNotificationMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	org_id            *string
	notification_type *string
	title             *string
	body              *string
	payload           *map[string]interface{}
	read_at           *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*InAppNotification, error)
	predicates        []predicate.InAppNotification
}

var _ ent.Mutation = (*InAppNotificationMutation)(nil)

// inappnotificationOption allows management of the mutation configuration using functional options.
type inappnotificationOption func(*InAppNotificationMutation)

// newInAppNotificationMutation creates new mutation for the InAppNotification entity.
func newInAppNotificationMutation(c config, op Op, opts ...inappnotificationOption) *InAppNotificationMutation {
	m := &InAppNotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeInAppNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInAppNotificationID sets the ID field of the mutation.
func withInAppNotificationID(id string) inappnotificationOption {
	return func(m *InAppNotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *InAppNotification
		)
		m.oldValue = func(ctx context.Context) (*InAppNotification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InAppNotification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInAppNotification sets the old InAppNotification of the mutation.
func withInAppNotification(node *InAppNotification) inappnotificationOption {
	return func(m *InAppNotificationMutation) {
		m.oldValue = func(context.Context) (*InAppNotification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InAppNotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InAppNotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InAppNotification entities.
func (m *InAppNotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InAppNotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InAppNotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InAppNotification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *InAppNotificationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InAppNotificationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InAppNotificationMutation) ResetUserID() {
	m.user_id = nil
}

// SetOrgID sets the "org_id" field.
func (m *InAppNotificationMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *InAppNotificationMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *InAppNotificationMutation) ResetOrgID() {
	m.org_id = nil
}

// SetNotificationType sets the "notification_type" field.
func (m *InAppNotificationMutation) SetNotificationType(s string) {
	m.notification_type = &s
}

// NotificationType returns the value of the "notification_type" field in the mutation.
func (m *InAppNotificationMutation) NotificationType() (r string, exists bool) {
	v := m.notification_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationType returns the old "notification_type" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldNotificationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationType: %w", err)
	}
	return oldValue.NotificationType, nil
}

// ResetNotificationType resets all changes to the "notification_type" field.
func (m *InAppNotificationMutation) ResetNotificationType() {
	m.notification_type = nil
}

// SetTitle sets the "title" field.
func (m *InAppNotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *InAppNotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *InAppNotificationMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *InAppNotificationMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *InAppNotificationMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *InAppNotificationMutation) ClearBody() {
	m.body = nil
	m.clearedFields[inappnotification.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *InAppNotificationMutation) BodyCleared() bool {
	_, ok := m.clearedFields[inappnotification.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *InAppNotificationMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, inappnotification.FieldBody)
}

// SetPayload sets the "payload" field.
func (m *InAppNotificationMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *InAppNotificationMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *InAppNotificationMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[inappnotification.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *InAppNotificationMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[inappnotification.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *InAppNotificationMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, inappnotification.FieldPayload)
}

// SetReadAt sets the "read_at" field.
func (m *InAppNotificationMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *InAppNotificationMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *InAppNotificationMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[inappnotification.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *InAppNotificationMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[inappnotification.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *InAppNotificationMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, inappnotification.FieldReadAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *InAppNotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InAppNotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InAppNotification entity.
// If the InAppNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InAppNotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InAppNotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the InAppNotificationMutation builder.
func (m *InAppNotificationMutation) Where(ps ...predicate.InAppNotification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InAppNotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InAppNotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InAppNotification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InAppNotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InAppNotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InAppNotification).
func (m *InAppNotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InAppNotificationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, inappnotification.FieldUserID)
	}
	if m.org_id != nil {
		fields = append(fields, inappnotification.FieldOrgID)
	}
	if m.notification_type != nil {
		fields = append(fields, inappnotification.FieldNotificationType)
	}
	if m.title != nil {
		fields = append(fields, inappnotification.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, inappnotification.FieldBody)
	}
	if m.payload != nil {
		fields = append(fields, inappnotification.FieldPayload)
	}
	if m.read_at != nil {
		fields = append(fields, inappnotification.FieldReadAt)
	}
	if m.created_at != nil {
		fields = append(fields, inappnotification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InAppNotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inappnotification.FieldUserID:
		return m.UserID()
	case inappnotification.FieldOrgID:
		return m.OrgID()
	case inappnotification.FieldNotificationType:
		return m.NotificationType()
	case inappnotification.FieldTitle:
		return m.Title()
	case inappnotification.FieldBody:
		return m.Body()
	case inappnotification.FieldPayload:
		return m.Payload()
	case inappnotification.FieldReadAt:
		return m.ReadAt()
	case inappnotification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InAppNotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inappnotification.FieldUserID:
		return m.OldUserID(ctx)
	case inappnotification.FieldOrgID:
		return m.OldOrgID(ctx)
	case inappnotification.FieldNotificationType:
		return m.OldNotificationType(ctx)
	case inappnotification.FieldTitle:
		return m.OldTitle(ctx)
	case inappnotification.FieldBody:
		return m.OldBody(ctx)
	case inappnotification.FieldPayload:
		return m.OldPayload(ctx)
	case inappnotification.FieldReadAt:
		return m.OldReadAt(ctx)
	case inappnotification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InAppNotification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InAppNotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inappnotification.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case inappnotification.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case inappnotification.FieldNotificationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationType(v)
		return nil
	case inappnotification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case inappnotification.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case inappnotification.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case inappnotification.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	case inappnotification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InAppNotification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InAppNotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InAppNotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InAppNotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InAppNotification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InAppNotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inappnotification.FieldBody) {
		fields = append(fields, inappnotification.FieldBody)
	}
	if m.FieldCleared(inappnotification.FieldPayload) {
		fields = append(fields, inappnotification.FieldPayload)
	}
	if m.FieldCleared(inappnotification.FieldReadAt) {
		fields = append(fields, inappnotification.FieldReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InAppNotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InAppNotificationMutation) ClearField(name string) error {
	switch name {
	case inappnotification.FieldBody:
		m.ClearBody()
		return nil
	case inappnotification.FieldPayload:
		m.ClearPayload()
		return nil
	case inappnotification.FieldReadAt:
		m.ClearReadAt()
		return nil
	}
	return fmt.Errorf("unknown InAppNotification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InAppNotificationMutation) ResetField(name string) error {
	switch name {
	case inappnotification.FieldUserID:
		m.ResetUserID()
		return nil
	case inappnotification.FieldOrgID:
		m.ResetOrgID()
		return nil
	case inappnotification.FieldNotificationType:
		m.ResetNotificationType()
		return nil
	case inappnotification.FieldTitle:
		m.ResetTitle()
		return nil
	case inappnotification.FieldBody:
		m.ResetBody()
		return nil
	case inappnotification.FieldPayload:
		m.ResetPayload()
		return nil
	case inappnotification.FieldReadAt:
		m.ResetReadAt()
		return nil
	case inappnotification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InAppNotification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InAppNotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InAppNotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InAppNotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InAppNotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InAppNotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InAppNotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InAppNotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InAppNotification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InAppNotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InAppNotification edge %s", name)
}

// NotificationInteractionMutation represents an operation that mutates the NotificationInteraction nodes in the graph.
type NotificationInteractionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	org_id            *string
	notification_type *string
	priority          *string
	delivered_at      *time.Time
	delivered_via     *string
	opened_at         *time.Time
	clicked_at        *time.Time
	dismissed_at      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*NotificationInteraction, error)
	predicates        []predicate.NotificationInteraction
}

var _ ent.Mutation = (*NotificationInteractionMutation)(nil)

// notificationinteractionOption allows management of the mutation configuration using functional options.
type notificationinteractionOption func(*NotificationInteractionMutation)

// newNotificationInteractionMutation creates new mutation for the NotificationInteraction entity.
func newNotificationInteractionMutation(c config, op Op, opts ...notificationinteractionOption) *NotificationInteractionMutation {
	m := &NotificationInteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeNotificationInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationInteractionID sets the ID field of the mutation.
func withNotificationInteractionID(id string) notificationinteractionOption {
	return func(m *NotificationInteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *NotificationInteraction
		)
		m.oldValue = func(ctx context.Context) (*NotificationInteraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NotificationInteraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotificationInteraction sets the old NotificationInteraction of the mutation.
func withNotificationInteraction(node *NotificationInteraction) notificationinteractionOption {
	return func(m *NotificationInteractionMutation) {
		m.oldValue = func(context.Context) (*NotificationInteraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationInteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationInteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NotificationInteraction entities.
func (m *NotificationInteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationInteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationInteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NotificationInteraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *NotificationInteractionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationInteractionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the NotificationInteraction entity.
// If the NotificationInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationInteractionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationInteractionMutation) ResetUserID() {
	m.user_id = nil
}

// SetOrgID sets the "org_id" field.
func (m *NotificationInteractionMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *NotificationInteractionMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the NotificationInteraction entity.
// If the NotificationInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationInteractionMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *NotificationInteractionMutation) ResetOrgID() {
	m.org_id = nil
}

// SetNotificationType sets the "notification_type" field.
func (m *NotificationInteractionMutation) SetNotificationType(s string) {
	m.notification_type = &s
}

// NotificationType returns the value of the "notification_type" field in the mutation.
func (m *NotificationInteractionMutation) NotificationType() (r string, exists bool) {
	v := m.notification_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationType returns the old "notification_type" field's value of the NotificationInteraction entity.
// If the NotificationInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationInteractionMutation) OldNotificationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationType: %w", err)
	}
	return oldValue.NotificationType, nil
}

// ResetNotificationType resets all changes to the "notification_type" field.
func (m *NotificationInteractionMutation) ResetNotificationType() {
	m.notification_type = nil
}

// SetPriority sets the "priority" field.
func (m *NotificationInteractionMutation) SetPriority(s string) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *NotificationInteractionMutation) Priority() (r string, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the NotificationInteraction entity.
// If the NotificationInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationInteractionMutation) OldPriority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *NotificationInteractionMutation) ResetPriority() {
	m.priority = nil
}

// SetDeliveredAt sets the "delivered_at" field.
func (m *NotificationInteractionMutation) SetDeliveredAt(t time.Time) {
	m.delivered_at = &t
}

// DeliveredAt returns the value of the "delivered_at" field in the mutation.
func (m *NotificationInteractionMutation) DeliveredAt() (r time.Time, exists bool) {
	v := m.delivered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredAt returns the old "delivered_at" field's value of the NotificationInteraction entity.
// If the NotificationInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationInteractionMutation) OldDeliveredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredAt: %w", err)
	}
	return oldValue.DeliveredAt, nil
}

// ResetDeliveredAt resets all changes to the "delivered_at" field.
func (m *NotificationInteractionMutation) ResetDeliveredAt() {
	m.delivered_at = nil
}

// SetDeliveredVia sets the "delivered_via" field.
func (m *NotificationInteractionMutation) SetDeliveredVia(s string) {
	m.delivered_via = &s
}

// DeliveredVia returns the value of the "delivered_via" field in the mutation.
func (m *NotificationInteractionMutation) DeliveredVia() (r string, exists bool) {
	v := m.delivered_via
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredVia returns the old "delivered_via" field's value of the NotificationInteraction entity.
// If the NotificationInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationInteractionMutation) OldDeliveredVia(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredVia is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredVia requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredVia: %w", err)
	}
	return oldValue.DeliveredVia, nil
}

// ResetDeliveredVia resets all changes to the "delivered_via" field.
func (m *NotificationInteractionMutation) ResetDeliveredVia() {
	m.delivered_via = nil
}

// SetOpenedAt sets the "opened_at" field.
func (m *NotificationInteractionMutation) SetOpenedAt(t time.Time) {
	m.opened_at = &t
}

// OpenedAt returns the value of the "opened_at" field in the mutation.
func (m *NotificationInteractionMutation) OpenedAt() (r time.Time, exists bool) {
	v := m.opened_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenedAt returns the old "opened_at" field's value of the NotificationInteraction entity.
// If the NotificationInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationInteractionMutation) OldOpenedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenedAt: %w", err)
	}
	return oldValue.OpenedAt, nil
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (m *NotificationInteractionMutation) ClearOpenedAt() {
	m.opened_at = nil
	m.clearedFields[notificationinteraction.FieldOpenedAt] = struct{}{}
}

// OpenedAtCleared returns if the "opened_at" field was cleared in this mutation.
func (m *NotificationInteractionMutation) OpenedAtCleared() bool {
	_, ok := m.clearedFields[notificationinteraction.FieldOpenedAt]
	return ok
}

// ResetOpenedAt resets all changes to the "opened_at" field.
func (m *NotificationInteractionMutation) ResetOpenedAt() {
	m.opened_at = nil
	delete(m.clearedFields, notificationinteraction.FieldOpenedAt)
}

// SetClickedAt sets the "clicked_at" field.
func (m *NotificationInteractionMutation) SetClickedAt(t time.Time) {
	m.clicked_at = &t
}

// ClickedAt returns the value of the "clicked_at" field in the mutation.
func (m *NotificationInteractionMutation) ClickedAt() (r time.Time, exists bool) {
	v := m.clicked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClickedAt returns the old "clicked_at" field's value of the NotificationInteraction entity.
// If the NotificationInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationInteractionMutation) OldClickedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClickedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClickedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClickedAt: %w", err)
	}
	return oldValue.ClickedAt, nil
}

// ClearClickedAt clears the value of the "clicked_at" field.
func (m *NotificationInteractionMutation) ClearClickedAt() {
	m.clicked_at = nil
	m.clearedFields[notificationinteraction.FieldClickedAt] = struct{}{}
}

// ClickedAtCleared returns if the "clicked_at" field was cleared in this mutation.
func (m *NotificationInteractionMutation) ClickedAtCleared() bool {
	_, ok := m.clearedFields[notificationinteraction.FieldClickedAt]
	return ok
}

// ResetClickedAt resets all changes to the "clicked_at" field.
func (m *NotificationInteractionMutation) ResetClickedAt() {
	m.clicked_at = nil
	delete(m.clearedFields, notificationinteraction.FieldClickedAt)
}

// SetDismissedAt sets the "dismissed_at" field.
func (m *NotificationInteractionMutation) SetDismissedAt(t time.Time) {
	m.dismissed_at = &t
}

// DismissedAt returns the value of the "dismissed_at" field in the mutation.
func (m *NotificationInteractionMutation) DismissedAt() (r time.Time, exists bool) {
	v := m.dismissed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDismissedAt returns the old "dismissed_at" field's value of the NotificationInteraction entity.
// If the NotificationInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationInteractionMutation) OldDismissedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDismissedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDismissedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDismissedAt: %w", err)
	}
	return oldValue.DismissedAt, nil
}

// ClearDismissedAt clears the value of the "dismissed_at" field.
func (m *NotificationInteractionMutation) ClearDismissedAt() {
	m.dismissed_at = nil
	m.clearedFields[notificationinteraction.FieldDismissedAt] = struct{}{}
}

// DismissedAtCleared returns if the "dismissed_at" field was cleared in this mutation.
func (m *NotificationInteractionMutation) DismissedAtCleared() bool {
	_, ok := m.clearedFields[notificationinteraction.FieldDismissedAt]
	return ok
}

// ResetDismissedAt resets all changes to the "dismissed_at" field.
func (m *NotificationInteractionMutation) ResetDismissedAt() {
	m.dismissed_at = nil
	delete(m.clearedFields, notificationinteraction.FieldDismissedAt)
}

// Where appends a list predicates to the NotificationInteractionMutation builder.
func (m *NotificationInteractionMutation) Where(ps ...predicate.NotificationInteraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationInteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationInteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NotificationInteraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationInteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationInteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NotificationInteraction).
func (m *NotificationInteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationInteractionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, notificationinteraction.FieldUserID)
	}
	if m.org_id != nil {
		fields = append(fields, notificationinteraction.FieldOrgID)
	}
	if m.notification_type != nil {
		fields = append(fields, notificationinteraction.FieldNotificationType)
	}
	if m.priority != nil {
		fields = append(fields, notificationinteraction.FieldPriority)
	}
	if m.delivered_at != nil {
		fields = append(fields, notificationinteraction.FieldDeliveredAt)
	}
	if m.delivered_via != nil {
		fields = append(fields, notificationinteraction.FieldDeliveredVia)
	}
	if m.opened_at != nil {
		fields = append(fields, notificationinteraction.FieldOpenedAt)
	}
	if m.clicked_at != nil {
		fields = append(fields, notificationinteraction.FieldClickedAt)
	}
	if m.dismissed_at != nil {
		fields = append(fields, notificationinteraction.FieldDismissedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationInteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notificationinteraction.FieldUserID:
		return m.UserID()
	case notificationinteraction.FieldOrgID:
		return m.OrgID()
	case notificationinteraction.FieldNotificationType:
		return m.NotificationType()
	case notificationinteraction.FieldPriority:
		return m.Priority()
	case notificationinteraction.FieldDeliveredAt:
		return m.DeliveredAt()
	case notificationinteraction.FieldDeliveredVia:
		return m.DeliveredVia()
	case notificationinteraction.FieldOpenedAt:
		return m.OpenedAt()
	case notificationinteraction.FieldClickedAt:
		return m.ClickedAt()
	case notificationinteraction.FieldDismissedAt:
		return m.DismissedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationInteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notificationinteraction.FieldUserID:
		return m.OldUserID(ctx)
	case notificationinteraction.FieldOrgID:
		return m.OldOrgID(ctx)
	case notificationinteraction.FieldNotificationType:
		return m.OldNotificationType(ctx)
	case notificationinteraction.FieldPriority:
		return m.OldPriority(ctx)
	case notificationinteraction.FieldDeliveredAt:
		return m.OldDeliveredAt(ctx)
	case notificationinteraction.FieldDeliveredVia:
		return m.OldDeliveredVia(ctx)
	case notificationinteraction.FieldOpenedAt:
		return m.OldOpenedAt(ctx)
	case notificationinteraction.FieldClickedAt:
		return m.OldClickedAt(ctx)
	case notificationinteraction.FieldDismissedAt:
		return m.OldDismissedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NotificationInteraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationInteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notificationinteraction.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notificationinteraction.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case notificationinteraction.FieldNotificationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationType(v)
		return nil
	case notificationinteraction.FieldPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case notificationinteraction.FieldDeliveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredAt(v)
		return nil
	case notificationinteraction.FieldDeliveredVia:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredVia(v)
		return nil
	case notificationinteraction.FieldOpenedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenedAt(v)
		return nil
	case notificationinteraction.FieldClickedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClickedAt(v)
		return nil
	case notificationinteraction.FieldDismissedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDismissedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationInteraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationInteractionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationInteractionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationInteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NotificationInteraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationInteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notificationinteraction.FieldOpenedAt) {
		fields = append(fields, notificationinteraction.FieldOpenedAt)
	}
	if m.FieldCleared(notificationinteraction.FieldClickedAt) {
		fields = append(fields, notificationinteraction.FieldClickedAt)
	}
	if m.FieldCleared(notificationinteraction.FieldDismissedAt) {
		fields = append(fields, notificationinteraction.FieldDismissedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationInteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationInteractionMutation) ClearField(name string) error {
	switch name {
	case notificationinteraction.FieldOpenedAt:
		m.ClearOpenedAt()
		return nil
	case notificationinteraction.FieldClickedAt:
		m.ClearClickedAt()
		return nil
	case notificationinteraction.FieldDismissedAt:
		m.ClearDismissedAt()
		return nil
	}
	return fmt.Errorf("unknown NotificationInteraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationInteractionMutation) ResetField(name string) error {
	switch name {
	case notificationinteraction.FieldUserID:
		m.ResetUserID()
		return nil
	case notificationinteraction.FieldOrgID:
		m.ResetOrgID()
		return nil
	case notificationinteraction.FieldNotificationType:
		m.ResetNotificationType()
		return nil
	case notificationinteraction.FieldPriority:
		m.ResetPriority()
		return nil
	case notificationinteraction.FieldDeliveredAt:
		m.ResetDeliveredAt()
		return nil
	case notificationinteraction.FieldDeliveredVia:
		m.ResetDeliveredVia()
		return nil
	case notificationinteraction.FieldOpenedAt:
		m.ResetOpenedAt()
		return nil
	case notificationinteraction.FieldClickedAt:
		m.ResetClickedAt()
		return nil
	case notificationinteraction.FieldDismissedAt:
		m.ResetDismissedAt()
		return nil
	}
	return fmt.Errorf("unknown NotificationInteraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationInteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationInteractionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationInteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationInteractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationInteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationInteractionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationInteractionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NotificationInteraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationInteractionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NotificationInteraction edge %s", name)
}

// NotificationQueueItemMutation represents an operation that mutates the NotificationQueueItem nodes in the graph.
type NotificationQueueItemMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	org_id            *string
	notification_type *string
	channel           *notificationqueueitem.Channel
	priority          *notificationqueueitem.Priority
	payload           *map[string]interface{}
	scheduled_for     *time.Time
	optimal_send_time *time.Time
	next_allowed_at   *time.Time
	status            *notificationqueueitem.Status
	attempt_count     *int
	addattempt_count  *int
	max_attempts      *int
	addmax_attempts   *int
	locked_by         *string
	locked_at         *time.Time
	last_error        *string
	sent_at           *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*NotificationQueueItem, error)
	predicates        []predicate.NotificationQueueItem
}

var _ ent.Mutation = (*NotificationQueueItemMutation)(nil)

// notificationqueueitemOption allows management of the mutation configuration using functional options.
type notificationqueueitemOption func(*NotificationQueueItemMutation)

// newNotificationQueueItemMutation creates new mutation for the NotificationQueueItem entity.
func newNotificationQueueItemMutation(c config, op Op, opts ...notificationqueueitemOption) *NotificationQueueItemMutation {
	m := &NotificationQueueItemMutation{
		config:        c,
		op:            op,
		typ:           TypeNotificationQueueItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationQueueItemID sets the ID field of the mutation.
func withNotificationQueueItemID(id string) notificationqueueitemOption {
	return func(m *NotificationQueueItemMutation) {
		var (
			err   error
			once  sync.Once
			value *NotificationQueueItem
		)
		m.oldValue = func(ctx context.Context) (*NotificationQueueItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NotificationQueueItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotificationQueueItem sets the old NotificationQueueItem of the mutation.
func withNotificationQueueItem(node *NotificationQueueItem) notificationqueueitemOption {
	return func(m *NotificationQueueItemMutation) {
		m.oldValue = func(context.Context) (*NotificationQueueItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationQueueItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationQueueItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NotificationQueueItem entities.
func (m *NotificationQueueItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationQueueItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationQueueItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NotificationQueueItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *NotificationQueueItemMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationQueueItemMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationQueueItemMutation) ResetUserID() {
	m.user_id = nil
}

// SetOrgID sets the "org_id" field.
func (m *NotificationQueueItemMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *NotificationQueueItemMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *NotificationQueueItemMutation) ResetOrgID() {
	m.org_id = nil
}

// SetNotificationType sets the "notification_type" field.
func (m *NotificationQueueItemMutation) SetNotificationType(s string) {
	m.notification_type = &s
}

// NotificationType returns the value of the "notification_type" field in the mutation.
func (m *NotificationQueueItemMutation) NotificationType() (r string, exists bool) {
	v := m.notification_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationType returns the old "notification_type" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldNotificationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationType: %w", err)
	}
	return oldValue.NotificationType, nil
}

// ResetNotificationType resets all changes to the "notification_type" field.
func (m *NotificationQueueItemMutation) ResetNotificationType() {
	m.notification_type = nil
}

// SetChannel sets the "channel" field.
func (m *NotificationQueueItemMutation) SetChannel(n notificationqueueitem.Channel) {
	m.channel = &n
}

// Channel returns the value of the "channel" field in the mutation.
func (m *NotificationQueueItemMutation) Channel() (r notificationqueueitem.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldChannel(ctx context.Context) (v notificationqueueitem.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *NotificationQueueItemMutation) ResetChannel() {
	m.channel = nil
}

// SetPriority sets the "priority" field.
func (m *NotificationQueueItemMutation) SetPriority(n notificationqueueitem.Priority) {
	m.priority = &n
}

// Priority returns the value of the "priority" field in the mutation.
func (m *NotificationQueueItemMutation) Priority() (r notificationqueueitem.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldPriority(ctx context.Context) (v notificationqueueitem.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *NotificationQueueItemMutation) ResetPriority() {
	m.priority = nil
}

// SetPayload sets the "payload" field.
func (m *NotificationQueueItemMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *NotificationQueueItemMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *NotificationQueueItemMutation) ResetPayload() {
	m.payload = nil
}

// SetScheduledFor sets the "scheduled_for" field.
func (m *NotificationQueueItemMutation) SetScheduledFor(t time.Time) {
	m.scheduled_for = &t
}

// ScheduledFor returns the value of the "scheduled_for" field in the mutation.
func (m *NotificationQueueItemMutation) ScheduledFor() (r time.Time, exists bool) {
	v := m.scheduled_for
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledFor returns the old "scheduled_for" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldScheduledFor(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledFor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledFor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledFor: %w", err)
	}
	return oldValue.ScheduledFor, nil
}

// ResetScheduledFor resets all changes to the "scheduled_for" field.
func (m *NotificationQueueItemMutation) ResetScheduledFor() {
	m.scheduled_for = nil
}

// SetOptimalSendTime sets the "optimal_send_time" field.
func (m *NotificationQueueItemMutation) SetOptimalSendTime(t time.Time) {
	m.optimal_send_time = &t
}

// OptimalSendTime returns the value of the "optimal_send_time" field in the mutation.
func (m *NotificationQueueItemMutation) OptimalSendTime() (r time.Time, exists bool) {
	v := m.optimal_send_time
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimalSendTime returns the old "optimal_send_time" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldOptimalSendTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimalSendTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimalSendTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimalSendTime: %w", err)
	}
	return oldValue.OptimalSendTime, nil
}

// ClearOptimalSendTime clears the value of the "optimal_send_time" field.
func (m *NotificationQueueItemMutation) ClearOptimalSendTime() {
	m.optimal_send_time = nil
	m.clearedFields[notificationqueueitem.FieldOptimalSendTime] = struct{}{}
}

// OptimalSendTimeCleared returns if the "optimal_send_time" field was cleared in this mutation.
func (m *NotificationQueueItemMutation) OptimalSendTimeCleared() bool {
	_, ok := m.clearedFields[notificationqueueitem.FieldOptimalSendTime]
	return ok
}

// ResetOptimalSendTime resets all changes to the "optimal_send_time" field.
func (m *NotificationQueueItemMutation) ResetOptimalSendTime() {
	m.optimal_send_time = nil
	delete(m.clearedFields, notificationqueueitem.FieldOptimalSendTime)
}

// SetNextAllowedAt sets the "next_allowed_at" field.
func (m *NotificationQueueItemMutation) SetNextAllowedAt(t time.Time) {
	m.next_allowed_at = &t
}

// NextAllowedAt returns the value of the "next_allowed_at" field in the mutation.
func (m *NotificationQueueItemMutation) NextAllowedAt() (r time.Time, exists bool) {
	v := m.next_allowed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAllowedAt returns the old "next_allowed_at" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldNextAllowedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAllowedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAllowedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAllowedAt: %w", err)
	}
	return oldValue.NextAllowedAt, nil
}

// ClearNextAllowedAt clears the value of the "next_allowed_at" field.
func (m *NotificationQueueItemMutation) ClearNextAllowedAt() {
	m.next_allowed_at = nil
	m.clearedFields[notificationqueueitem.FieldNextAllowedAt] = struct{}{}
}

// NextAllowedAtCleared returns if the "next_allowed_at" field was cleared in this mutation.
func (m *NotificationQueueItemMutation) NextAllowedAtCleared() bool {
	_, ok := m.clearedFields[notificationqueueitem.FieldNextAllowedAt]
	return ok
}

// ResetNextAllowedAt resets all changes to the "next_allowed_at" field.
func (m *NotificationQueueItemMutation) ResetNextAllowedAt() {
	m.next_allowed_at = nil
	delete(m.clearedFields, notificationqueueitem.FieldNextAllowedAt)
}

// SetStatus sets the "status" field.
func (m *NotificationQueueItemMutation) SetStatus(n notificationqueueitem.Status) {
	m.status = &n
}

// Status returns the value of the "status" field in the mutation.
func (m *NotificationQueueItemMutation) Status() (r notificationqueueitem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldStatus(ctx context.Context) (v notificationqueueitem.Status, err error) {
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
func (m *NotificationQueueItemMutation) ResetStatus() {
	m.status = nil
}

// SetAttemptCount sets the "attempt_count" field.
func (m *NotificationQueueItemMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *NotificationQueueItemMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *NotificationQueueItemMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *NotificationQueueItemMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *NotificationQueueItemMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *NotificationQueueItemMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *NotificationQueueItemMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *NotificationQueueItemMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *NotificationQueueItemMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *NotificationQueueItemMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetLockedBy sets the "locked_by" field.
func (m *NotificationQueueItemMutation) SetLockedBy(s string) {
	m.locked_by = &s
}

// LockedBy returns the value of the "locked_by" field in the mutation.
func (m *NotificationQueueItemMutation) LockedBy() (r string, exists bool) {
	v := m.locked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedBy returns the old "locked_by" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldLockedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedBy: %w", err)
	}
	return oldValue.LockedBy, nil
}

// ClearLockedBy clears the value of the "locked_by" field.
func (m *NotificationQueueItemMutation) ClearLockedBy() {
	m.locked_by = nil
	m.clearedFields[notificationqueueitem.FieldLockedBy] = struct{}{}
}

// LockedByCleared returns if the "locked_by" field was cleared in this mutation.
func (m *NotificationQueueItemMutation) LockedByCleared() bool {
	_, ok := m.clearedFields[notificationqueueitem.FieldLockedBy]
	return ok
}

// ResetLockedBy resets all changes to the "locked_by" field.
func (m *NotificationQueueItemMutation) ResetLockedBy() {
	m.locked_by = nil
	delete(m.clearedFields, notificationqueueitem.FieldLockedBy)
}

// SetLockedAt sets the "locked_at" field.
func (m *NotificationQueueItemMutation) SetLockedAt(t time.Time) {
	m.locked_at = &t
}

// LockedAt returns the value of the "locked_at" field in the mutation.
func (m *NotificationQueueItemMutation) LockedAt() (r time.Time, exists bool) {
	v := m.locked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedAt returns the old "locked_at" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldLockedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedAt: %w", err)
	}
	return oldValue.LockedAt, nil
}

// ClearLockedAt clears the value of the "locked_at" field.
func (m *NotificationQueueItemMutation) ClearLockedAt() {
	m.locked_at = nil
	m.clearedFields[notificationqueueitem.FieldLockedAt] = struct{}{}
}

// LockedAtCleared returns if the "locked_at" field was cleared in this mutation.
func (m *NotificationQueueItemMutation) LockedAtCleared() bool {
	_, ok := m.clearedFields[notificationqueueitem.FieldLockedAt]
	return ok
}

// ResetLockedAt resets all changes to the "locked_at" field.
func (m *NotificationQueueItemMutation) ResetLockedAt() {
	m.locked_at = nil
	delete(m.clearedFields, notificationqueueitem.FieldLockedAt)
}

// SetLastError sets the "last_error" field.
func (m *NotificationQueueItemMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *NotificationQueueItemMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *NotificationQueueItemMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[notificationqueueitem.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *NotificationQueueItemMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[notificationqueueitem.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *NotificationQueueItemMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, notificationqueueitem.FieldLastError)
}

// SetSentAt sets the "sent_at" field.
func (m *NotificationQueueItemMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *NotificationQueueItemMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *NotificationQueueItemMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[notificationqueueitem.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *NotificationQueueItemMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[notificationqueueitem.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *NotificationQueueItemMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, notificationqueueitem.FieldSentAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationQueueItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationQueueItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *NotificationQueueItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NotificationQueueItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NotificationQueueItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NotificationQueueItem entity.
// If the NotificationQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationQueueItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *NotificationQueueItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the NotificationQueueItemMutation builder.
func (m *NotificationQueueItemMutation) Where(ps ...predicate.NotificationQueueItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationQueueItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationQueueItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NotificationQueueItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationQueueItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationQueueItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NotificationQueueItem).
func (m *NotificationQueueItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationQueueItemMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.user_id != nil {
		fields = append(fields, notificationqueueitem.FieldUserID)
	}
	if m.org_id != nil {
		fields = append(fields, notificationqueueitem.FieldOrgID)
	}
	if m.notification_type != nil {
		fields = append(fields, notificationqueueitem.FieldNotificationType)
	}
	if m.channel != nil {
		fields = append(fields, notificationqueueitem.FieldChannel)
	}
	if m.priority != nil {
		fields = append(fields, notificationqueueitem.FieldPriority)
	}
	if m.payload != nil {
		fields = append(fields, notificationqueueitem.FieldPayload)
	}
	if m.scheduled_for != nil {
		fields = append(fields, notificationqueueitem.FieldScheduledFor)
	}
	if m.optimal_send_time != nil {
		fields = append(fields, notificationqueueitem.FieldOptimalSendTime)
	}
	if m.next_allowed_at != nil {
		fields = append(fields, notificationqueueitem.FieldNextAllowedAt)
	}
	if m.status != nil {
		fields = append(fields, notificationqueueitem.FieldStatus)
	}
	if m.attempt_count != nil {
		fields = append(fields, notificationqueueitem.FieldAttemptCount)
	}
	if m.max_attempts != nil {
		fields = append(fields, notificationqueueitem.FieldMaxAttempts)
	}
	if m.locked_by != nil {
		fields = append(fields, notificationqueueitem.FieldLockedBy)
	}
	if m.locked_at != nil {
		fields = append(fields, notificationqueueitem.FieldLockedAt)
	}
	if m.last_error != nil {
		fields = append(fields, notificationqueueitem.FieldLastError)
	}
	if m.sent_at != nil {
		fields = append(fields, notificationqueueitem.FieldSentAt)
	}
	if m.created_at != nil {
		fields = append(fields, notificationqueueitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, notificationqueueitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationQueueItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notificationqueueitem.FieldUserID:
		return m.UserID()
	case notificationqueueitem.FieldOrgID:
		return m.OrgID()
	case notificationqueueitem.FieldNotificationType:
		return m.NotificationType()
	case notificationqueueitem.FieldChannel:
		return m.Channel()
	case notificationqueueitem.FieldPriority:
		return m.Priority()
	case notificationqueueitem.FieldPayload:
		return m.Payload()
	case notificationqueueitem.FieldScheduledFor:
		return m.ScheduledFor()
	case notificationqueueitem.FieldOptimalSendTime:
		return m.OptimalSendTime()
	case notificationqueueitem.FieldNextAllowedAt:
		return m.NextAllowedAt()
	case notificationqueueitem.FieldStatus:
		return m.Status()
	case notificationqueueitem.FieldAttemptCount:
		return m.AttemptCount()
	case notificationqueueitem.FieldMaxAttempts:
		return m.MaxAttempts()
	case notificationqueueitem.FieldLockedBy:
		return m.LockedBy()
	case notificationqueueitem.FieldLockedAt:
		return m.LockedAt()
	case notificationqueueitem.FieldLastError:
		return m.LastError()
	case notificationqueueitem.FieldSentAt:
		return m.SentAt()
	case notificationqueueitem.FieldCreatedAt:
		return m.CreatedAt()
	case notificationqueueitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationQueueItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notificationqueueitem.FieldUserID:
		return m.OldUserID(ctx)
	case notificationqueueitem.FieldOrgID:
		return m.OldOrgID(ctx)
	case notificationqueueitem.FieldNotificationType:
		return m.OldNotificationType(ctx)
	case notificationqueueitem.FieldChannel:
		return m.OldChannel(ctx)
	case notificationqueueitem.FieldPriority:
		return m.OldPriority(ctx)
	case notificationqueueitem.FieldPayload:
		return m.OldPayload(ctx)
	case notificationqueueitem.FieldScheduledFor:
		return m.OldScheduledFor(ctx)
	case notificationqueueitem.FieldOptimalSendTime:
		return m.OldOptimalSendTime(ctx)
	case notificationqueueitem.FieldNextAllowedAt:
		return m.OldNextAllowedAt(ctx)
	case notificationqueueitem.FieldStatus:
		return m.OldStatus(ctx)
	case notificationqueueitem.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case notificationqueueitem.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case notificationqueueitem.FieldLockedBy:
		return m.OldLockedBy(ctx)
	case notificationqueueitem.FieldLockedAt:
		return m.OldLockedAt(ctx)
	case notificationqueueitem.FieldLastError:
		return m.OldLastError(ctx)
	case notificationqueueitem.FieldSentAt:
		return m.OldSentAt(ctx)
	case notificationqueueitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notificationqueueitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NotificationQueueItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationQueueItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notificationqueueitem.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notificationqueueitem.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case notificationqueueitem.FieldNotificationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationType(v)
		return nil
	case notificationqueueitem.FieldChannel:
		v, ok := value.(notificationqueueitem.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case notificationqueueitem.FieldPriority:
		v, ok := value.(notificationqueueitem.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case notificationqueueitem.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case notificationqueueitem.FieldScheduledFor:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledFor(v)
		return nil
	case notificationqueueitem.FieldOptimalSendTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimalSendTime(v)
		return nil
	case notificationqueueitem.FieldNextAllowedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAllowedAt(v)
		return nil
	case notificationqueueitem.FieldStatus:
		v, ok := value.(notificationqueueitem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case notificationqueueitem.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case notificationqueueitem.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case notificationqueueitem.FieldLockedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedBy(v)
		return nil
	case notificationqueueitem.FieldLockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedAt(v)
		return nil
	case notificationqueueitem.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case notificationqueueitem.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case notificationqueueitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notificationqueueitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationQueueItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationQueueItemMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_count != nil {
		fields = append(fields, notificationqueueitem.FieldAttemptCount)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, notificationqueueitem.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationQueueItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case notificationqueueitem.FieldAttemptCount:
		return m.AddedAttemptCount()
	case notificationqueueitem.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationQueueItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case notificationqueueitem.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	case notificationqueueitem.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationQueueItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationQueueItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notificationqueueitem.FieldOptimalSendTime) {
		fields = append(fields, notificationqueueitem.FieldOptimalSendTime)
	}
	if m.FieldCleared(notificationqueueitem.FieldNextAllowedAt) {
		fields = append(fields, notificationqueueitem.FieldNextAllowedAt)
	}
	if m.FieldCleared(notificationqueueitem.FieldLockedBy) {
		fields = append(fields, notificationqueueitem.FieldLockedBy)
	}
	if m.FieldCleared(notificationqueueitem.FieldLockedAt) {
		fields = append(fields, notificationqueueitem.FieldLockedAt)
	}
	if m.FieldCleared(notificationqueueitem.FieldLastError) {
		fields = append(fields, notificationqueueitem.FieldLastError)
	}
	if m.FieldCleared(notificationqueueitem.FieldSentAt) {
		fields = append(fields, notificationqueueitem.FieldSentAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationQueueItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationQueueItemMutation) ClearField(name string) error {
	switch name {
	case notificationqueueitem.FieldOptimalSendTime:
		m.ClearOptimalSendTime()
		return nil
	case notificationqueueitem.FieldNextAllowedAt:
		m.ClearNextAllowedAt()
		return nil
	case notificationqueueitem.FieldLockedBy:
		m.ClearLockedBy()
		return nil
	case notificationqueueitem.FieldLockedAt:
		m.ClearLockedAt()
		return nil
	case notificationqueueitem.FieldLastError:
		m.ClearLastError()
		return nil
	case notificationqueueitem.FieldSentAt:
		m.ClearSentAt()
		return nil
	}
	return fmt.Errorf("unknown NotificationQueueItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationQueueItemMutation) ResetField(name string) error {
	switch name {
	case notificationqueueitem.FieldUserID:
		m.ResetUserID()
		return nil
	case notificationqueueitem.FieldOrgID:
		m.ResetOrgID()
		return nil
	case notificationqueueitem.FieldNotificationType:
		m.ResetNotificationType()
		return nil
	case notificationqueueitem.FieldChannel:
		m.ResetChannel()
		return nil
	case notificationqueueitem.FieldPriority:
		m.ResetPriority()
		return nil
	case notificationqueueitem.FieldPayload:
		m.ResetPayload()
		return nil
	case notificationqueueitem.FieldScheduledFor:
		m.ResetScheduledFor()
		return nil
	case notificationqueueitem.FieldOptimalSendTime:
		m.ResetOptimalSendTime()
		return nil
	case notificationqueueitem.FieldNextAllowedAt:
		m.ResetNextAllowedAt()
		return nil
	case notificationqueueitem.FieldStatus:
		m.ResetStatus()
		return nil
	case notificationqueueitem.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case notificationqueueitem.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case notificationqueueitem.FieldLockedBy:
		m.ResetLockedBy()
		return nil
	case notificationqueueitem.FieldLockedAt:
		m.ResetLockedAt()
		return nil
	case notificationqueueitem.FieldLastError:
		m.ResetLastError()
		return nil
	case notificationqueueitem.FieldSentAt:
		m.ResetSentAt()
		return nil
	case notificationqueueitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notificationqueueitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown NotificationQueueItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationQueueItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationQueueItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationQueueItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationQueueItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationQueueItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationQueueItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationQueueItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NotificationQueueItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationQueueItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NotificationQueueItem edge %s", name)
}

// OAuthConnectionMutation represents an operation that mutates the OAuthConnection nodes in the graph.
type OAuthConnectionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	org_id        *string
	provider      *string
	access_token  *string
	refresh_token *string
	token_type    *string
	expires_at    *time.Time
	scopes        *[]string
	appendscopes  []string
	status        *oauthconnection.Status
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OAuthConnection, error)
	predicates    []predicate.OAuthConnection
}

var _ ent.Mutation = (*OAuthConnectionMutation)(nil)

// oauthconnectionOption allows management of the mutation configuration using functional options.
type oauthconnectionOption func(*OAuthConnectionMutation)

// newOAuthConnectionMutation creates new mutation for the OAuthConnection entity.
func newOAuthConnectionMutation(c config, op Op, opts ...oauthconnectionOption) *OAuthConnectionMutation {
	m := &OAuthConnectionMutation{
		config:        c,
		op:            op,
		typ:           TypeOAuthConnection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOAuthConnectionID sets the ID field of the mutation.
func withOAuthConnectionID(id string) oauthconnectionOption {
	return func(m *OAuthConnectionMutation) {
		var (
			err   error
			once  sync.Once
			value *OAuthConnection
		)
		m.oldValue = func(ctx context.Context) (*OAuthConnection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OAuthConnection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOAuthConnection sets the old OAuthConnection of the mutation.
func withOAuthConnection(node *OAuthConnection) oauthconnectionOption {
	return func(m *OAuthConnectionMutation) {
		m.oldValue = func(context.Context) (*OAuthConnection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OAuthConnectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OAuthConnectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OAuthConnection entities.
func (m *OAuthConnectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OAuthConnectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OAuthConnectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OAuthConnection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *OAuthConnectionMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *OAuthConnectionMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the OAuthConnection entity.
// If the OAuthConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthConnectionMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *OAuthConnectionMutation) ResetOrgID() {
	m.org_id = nil
}

// SetProvider sets the "provider" field.
func (m *OAuthConnectionMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *OAuthConnectionMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the OAuthConnection entity.
// If the OAuthConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthConnectionMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *OAuthConnectionMutation) ResetProvider() {
	m.provider = nil
}

// SetAccessToken sets the "access_token" field.
func (m *OAuthConnectionMutation) SetAccessToken(s string) {
	m.access_token = &s
}

// AccessToken returns the value of the "access_token" field in the mutation.
func (m *OAuthConnectionMutation) AccessToken() (r string, exists bool) {
	v := m.access_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessToken returns the old "access_token" field's value of the OAuthConnection entity.
// If the OAuthConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthConnectionMutation) OldAccessToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessToken: %w", err)
	}
	return oldValue.AccessToken, nil
}

// ResetAccessToken resets all changes to the "access_token" field.
func (m *OAuthConnectionMutation) ResetAccessToken() {
	m.access_token = nil
}

// SetRefreshToken sets the "refresh_token" field.
func (m *OAuthConnectionMutation) SetRefreshToken(s string) {
	m.refresh_token = &s
}

// RefreshToken returns the value of the "refresh_token" field in the mutation.
func (m *OAuthConnectionMutation) RefreshToken() (r string, exists bool) {
	v := m.refresh_token
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshToken returns the old "refresh_token" field's value of the OAuthConnection entity.
// If the OAuthConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthConnectionMutation) OldRefreshToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshToken: %w", err)
	}
	return oldValue.RefreshToken, nil
}

// ResetRefreshToken resets all changes to the "refresh_token" field.
func (m *OAuthConnectionMutation) ResetRefreshToken() {
	m.refresh_token = nil
}

// SetTokenType sets the "token_type" field.
func (m *OAuthConnectionMutation) SetTokenType(s string) {
	m.token_type = &s
}

// TokenType returns the value of the "token_type" field in the mutation.
func (m *OAuthConnectionMutation) TokenType() (r string, exists bool) {
	v := m.token_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenType returns the old "token_type" field's value of the OAuthConnection entity.
// If the OAuthConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthConnectionMutation) OldTokenType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenType: %w", err)
	}
	return oldValue.TokenType, nil
}

// ResetTokenType resets all changes to the "token_type" field.
func (m *OAuthConnectionMutation) ResetTokenType() {
	m.token_type = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *OAuthConnectionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *OAuthConnectionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the OAuthConnection entity.
// If the OAuthConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthConnectionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *OAuthConnectionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetScopes sets the "scopes" field.
func (m *OAuthConnectionMutation) SetScopes(s []string) {
	m.scopes = &s
	m.appendscopes = nil
}

// Scopes returns the value of the "scopes" field in the mutation.
func (m *OAuthConnectionMutation) Scopes() (r []string, exists bool) {
	v := m.scopes
	if v == nil {
		return
	}
	return *v, true
}

// OldScopes returns the old "scopes" field's value of the OAuthConnection entity.
// If the OAuthConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthConnectionMutation) OldScopes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopes: %w", err)
	}
	return oldValue.Scopes, nil
}

// AppendScopes adds s to the "scopes" field.
func (m *OAuthConnectionMutation) AppendScopes(s []string) {
	m.appendscopes = append(m.appendscopes, s...)
}

// AppendedScopes returns the list of values that were appended to the "scopes" field in this mutation.
func (m *OAuthConnectionMutation) AppendedScopes() ([]string, bool) {
	if len(m.appendscopes) == 0 {
		return nil, false
	}
	return m.appendscopes, true
}

// ClearScopes clears the value of the "scopes" field.
func (m *OAuthConnectionMutation) ClearScopes() {
	m.scopes = nil
	m.appendscopes = nil
	m.clearedFields[oauthconnection.FieldScopes] = struct{}{}
}

// ScopesCleared returns if the "scopes" field was cleared in this mutation.
func (m *OAuthConnectionMutation) ScopesCleared() bool {
	_, ok := m.clearedFields[oauthconnection.FieldScopes]
	return ok
}

// ResetScopes resets all changes to the "scopes" field.
func (m *OAuthConnectionMutation) ResetScopes() {
	m.scopes = nil
	m.appendscopes = nil
	delete(m.clearedFields, oauthconnection.FieldScopes)
}

// SetStatus sets the "status" field.
func (m *OAuthConnectionMutation) SetStatus(o oauthconnection.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OAuthConnectionMutation) Status() (r oauthconnection.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OAuthConnection entity.
// If the OAuthConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthConnectionMutation) OldStatus(ctx context.Context) (v oauthconnection.Status, err error) {
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
func (m *OAuthConnectionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OAuthConnectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OAuthConnectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OAuthConnection entity.
// If the OAuthConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthConnectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OAuthConnectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OAuthConnectionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OAuthConnectionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the OAuthConnection entity.
// If the OAuthConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthConnectionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OAuthConnectionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the OAuthConnectionMutation builder.
func (m *OAuthConnectionMutation) Where(ps ...predicate.OAuthConnection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OAuthConnectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OAuthConnectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OAuthConnection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OAuthConnectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OAuthConnectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OAuthConnection).
func (m *OAuthConnectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OAuthConnectionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.org_id != nil {
		fields = append(fields, oauthconnection.FieldOrgID)
	}
	if m.provider != nil {
		fields = append(fields, oauthconnection.FieldProvider)
	}
	if m.access_token != nil {
		fields = append(fields, oauthconnection.FieldAccessToken)
	}
	if m.refresh_token != nil {
		fields = append(fields, oauthconnection.FieldRefreshToken)
	}
	if m.token_type != nil {
		fields = append(fields, oauthconnection.FieldTokenType)
	}
	if m.expires_at != nil {
		fields = append(fields, oauthconnection.FieldExpiresAt)
	}
	if m.scopes != nil {
		fields = append(fields, oauthconnection.FieldScopes)
	}
	if m.status != nil {
		fields = append(fields, oauthconnection.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, oauthconnection.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, oauthconnection.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OAuthConnectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case oauthconnection.FieldOrgID:
		return m.OrgID()
	case oauthconnection.FieldProvider:
		return m.Provider()
	case oauthconnection.FieldAccessToken:
		return m.AccessToken()
	case oauthconnection.FieldRefreshToken:
		return m.RefreshToken()
	case oauthconnection.FieldTokenType:
		return m.TokenType()
	case oauthconnection.FieldExpiresAt:
		return m.ExpiresAt()
	case oauthconnection.FieldScopes:
		return m.Scopes()
	case oauthconnection.FieldStatus:
		return m.Status()
	case oauthconnection.FieldCreatedAt:
		return m.CreatedAt()
	case oauthconnection.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OAuthConnectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case oauthconnection.FieldOrgID:
		return m.OldOrgID(ctx)
	case oauthconnection.FieldProvider:
		return m.OldProvider(ctx)
	case oauthconnection.FieldAccessToken:
		return m.OldAccessToken(ctx)
	case oauthconnection.FieldRefreshToken:
		return m.OldRefreshToken(ctx)
	case oauthconnection.FieldTokenType:
		return m.OldTokenType(ctx)
	case oauthconnection.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case oauthconnection.FieldScopes:
		return m.OldScopes(ctx)
	case oauthconnection.FieldStatus:
		return m.OldStatus(ctx)
	case oauthconnection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case oauthconnection.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OAuthConnection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OAuthConnectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case oauthconnection.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case oauthconnection.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case oauthconnection.FieldAccessToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessToken(v)
		return nil
	case oauthconnection.FieldRefreshToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshToken(v)
		return nil
	case oauthconnection.FieldTokenType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenType(v)
		return nil
	case oauthconnection.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case oauthconnection.FieldScopes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopes(v)
		return nil
	case oauthconnection.FieldStatus:
		v, ok := value.(oauthconnection.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case oauthconnection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case oauthconnection.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OAuthConnection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OAuthConnectionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OAuthConnectionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OAuthConnectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OAuthConnection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OAuthConnectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(oauthconnection.FieldScopes) {
		fields = append(fields, oauthconnection.FieldScopes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OAuthConnectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OAuthConnectionMutation) ClearField(name string) error {
	switch name {
	case oauthconnection.FieldScopes:
		m.ClearScopes()
		return nil
	}
	return fmt.Errorf("unknown OAuthConnection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OAuthConnectionMutation) ResetField(name string) error {
	switch name {
	case oauthconnection.FieldOrgID:
		m.ResetOrgID()
		return nil
	case oauthconnection.FieldProvider:
		m.ResetProvider()
		return nil
	case oauthconnection.FieldAccessToken:
		m.ResetAccessToken()
		return nil
	case oauthconnection.FieldRefreshToken:
		m.ResetRefreshToken()
		return nil
	case oauthconnection.FieldTokenType:
		m.ResetTokenType()
		return nil
	case oauthconnection.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case oauthconnection.FieldScopes:
		m.ResetScopes()
		return nil
	case oauthconnection.FieldStatus:
		m.ResetStatus()
		return nil
	case oauthconnection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case oauthconnection.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown OAuthConnection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OAuthConnectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OAuthConnectionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OAuthConnectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OAuthConnectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OAuthConnectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OAuthConnectionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OAuthConnectionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OAuthConnection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OAuthConnectionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OAuthConnection edge %s", name)
}

// OrgMemberMutation represents an operation that mutates the OrgMember nodes in the graph.
type OrgMemberMutation struct {
	config
	op            Op
	typ           string
	id            *string
	org_id        *string
	user_id       *string
	role          *orgmember.Role
	slack_user_id *string
	email         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OrgMember, error)
	predicates    []predicate.OrgMember
}

var _ ent.Mutation = (*OrgMemberMutation)(nil)

// orgmemberOption allows management of the mutation configuration using functional options.
type orgmemberOption func(*OrgMemberMutation)

// newOrgMemberMutation creates new mutation for the OrgMember entity.
func newOrgMemberMutation(c config, op Op, opts ...orgmemberOption) *OrgMemberMutation {
	m := &OrgMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeOrgMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrgMemberID sets the ID field of the mutation.
func withOrgMemberID(id string) orgmemberOption {
	return func(m *OrgMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *OrgMember
		)
		m.oldValue = func(ctx context.Context) (*OrgMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrgMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrgMember sets the old OrgMember of the mutation.
func withOrgMember(node *OrgMember) orgmemberOption {
	return func(m *OrgMemberMutation) {
		m.oldValue = func(context.Context) (*OrgMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrgMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrgMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrgMember entities.
func (m *OrgMemberMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrgMemberMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrgMemberMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrgMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *OrgMemberMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *OrgMemberMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the OrgMember entity.
// If the OrgMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgMemberMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *OrgMemberMutation) ResetOrgID() {
	m.org_id = nil
}

// SetUserID sets the "user_id" field.
func (m *OrgMemberMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *OrgMemberMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the OrgMember entity.
// If the OrgMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgMemberMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *OrgMemberMutation) ResetUserID() {
	m.user_id = nil
}

// SetRole sets the "role" field.
func (m *OrgMemberMutation) SetRole(o orgmember.Role) {
	m.role = &o
}

// Role returns the value of the "role" field in the mutation.
func (m *OrgMemberMutation) Role() (r orgmember.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the OrgMember entity.
// If the OrgMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgMemberMutation) OldRole(ctx context.Context) (v orgmember.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *OrgMemberMutation) ResetRole() {
	m.role = nil
}

// SetSlackUserID sets the "slack_user_id" field.
func (m *OrgMemberMutation) SetSlackUserID(s string) {
	m.slack_user_id = &s
}

// SlackUserID returns the value of the "slack_user_id" field in the mutation.
func (m *OrgMemberMutation) SlackUserID() (r string, exists bool) {
	v := m.slack_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSlackUserID returns the old "slack_user_id" field's value of the OrgMember entity.
// If the OrgMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgMemberMutation) OldSlackUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlackUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlackUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlackUserID: %w", err)
	}
	return oldValue.SlackUserID, nil
}

// ClearSlackUserID clears the value of the "slack_user_id" field.
func (m *OrgMemberMutation) ClearSlackUserID() {
	m.slack_user_id = nil
	m.clearedFields[orgmember.FieldSlackUserID] = struct{}{}
}

// SlackUserIDCleared returns if the "slack_user_id" field was cleared in this mutation.
func (m *OrgMemberMutation) SlackUserIDCleared() bool {
	_, ok := m.clearedFields[orgmember.FieldSlackUserID]
	return ok
}

// ResetSlackUserID resets all changes to the "slack_user_id" field.
func (m *OrgMemberMutation) ResetSlackUserID() {
	m.slack_user_id = nil
	delete(m.clearedFields, orgmember.FieldSlackUserID)
}

// SetEmail sets the "email" field.
func (m *OrgMemberMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *OrgMemberMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the OrgMember entity.
// If the OrgMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgMemberMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *OrgMemberMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[orgmember.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *OrgMemberMutation) EmailCleared() bool {
	_, ok := m.clearedFields[orgmember.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *OrgMemberMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, orgmember.FieldEmail)
}

// SetCreatedAt sets the "created_at" field.
func (m *OrgMemberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrgMemberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OrgMember entity.
// If the OrgMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgMemberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OrgMemberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the OrgMemberMutation builder.
func (m *OrgMemberMutation) Where(ps ...predicate.OrgMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrgMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrgMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrgMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrgMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrgMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrgMember).
func (m *OrgMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrgMemberMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.org_id != nil {
		fields = append(fields, orgmember.FieldOrgID)
	}
	if m.user_id != nil {
		fields = append(fields, orgmember.FieldUserID)
	}
	if m.role != nil {
		fields = append(fields, orgmember.FieldRole)
	}
	if m.slack_user_id != nil {
		fields = append(fields, orgmember.FieldSlackUserID)
	}
	if m.email != nil {
		fields = append(fields, orgmember.FieldEmail)
	}
	if m.created_at != nil {
		fields = append(fields, orgmember.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrgMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orgmember.FieldOrgID:
		return m.OrgID()
	case orgmember.FieldUserID:
		return m.UserID()
	case orgmember.FieldRole:
		return m.Role()
	case orgmember.FieldSlackUserID:
		return m.SlackUserID()
	case orgmember.FieldEmail:
		return m.Email()
	case orgmember.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrgMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orgmember.FieldOrgID:
		return m.OldOrgID(ctx)
	case orgmember.FieldUserID:
		return m.OldUserID(ctx)
	case orgmember.FieldRole:
		return m.OldRole(ctx)
	case orgmember.FieldSlackUserID:
		return m.OldSlackUserID(ctx)
	case orgmember.FieldEmail:
		return m.OldEmail(ctx)
	case orgmember.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrgMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrgMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orgmember.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case orgmember.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case orgmember.FieldRole:
		v, ok := value.(orgmember.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case orgmember.FieldSlackUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlackUserID(v)
		return nil
	case orgmember.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case orgmember.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrgMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrgMemberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrgMemberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrgMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OrgMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrgMemberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orgmember.FieldSlackUserID) {
		fields = append(fields, orgmember.FieldSlackUserID)
	}
	if m.FieldCleared(orgmember.FieldEmail) {
		fields = append(fields, orgmember.FieldEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrgMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrgMemberMutation) ClearField(name string) error {
	switch name {
	case orgmember.FieldSlackUserID:
		m.ClearSlackUserID()
		return nil
	case orgmember.FieldEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown OrgMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrgMemberMutation) ResetField(name string) error {
	switch name {
	case orgmember.FieldOrgID:
		m.ResetOrgID()
		return nil
	case orgmember.FieldUserID:
		m.ResetUserID()
		return nil
	case orgmember.FieldRole:
		m.ResetRole()
		return nil
	case orgmember.FieldSlackUserID:
		m.ResetSlackUserID()
		return nil
	case orgmember.FieldEmail:
		m.ResetEmail()
		return nil
	case orgmember.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OrgMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrgMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrgMemberMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrgMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrgMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrgMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrgMemberMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrgMemberMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OrgMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrgMemberMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OrgMember edge %s", name)
}

// RecordingMutation represents an operation that mutates the Recording nodes in the graph.
type RecordingMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	org_id                       *string
	user_id                      *string
	meeting_platform             *string
	meeting_url                  *string
	calendar_event_id            *string
	provider_recording_id        *string
	status                       *recording.Status
	media_storage_url            *string
	media_storage_path           *string
	media_upload_status          *recording.MediaUploadStatus
	media_upload_retry_count     *int
	addmedia_upload_retry_count  *int
	media_upload_last_retry_at   *time.Time
	media_content_type           *string
	transcript                   *map[string]interface{}
	transcript_fetch_attempts    *int
	addtranscript_fetch_attempts *int
	last_transcript_fetch_at     *time.Time
	error_message                *string
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	bot_deployment               *string
	clearedbot_deployment        bool
	done                         bool
	oldValue                     func(context.Context) (*Recording, error)
	predicates                   []predicate.Recording
}

var _ ent.Mutation = (*RecordingMutation)(nil)

// recordingOption allows management of the mutation configuration using functional options.
type recordingOption func(*RecordingMutation)

// newRecordingMutation creates new mutation for the Recording entity.
func newRecordingMutation(c config, op Op, opts ...recordingOption) *RecordingMutation {
	m := &RecordingMutation{
		config:        c,
		op:            op,
		typ:           TypeRecording,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecordingID sets the ID field of the mutation.
func withRecordingID(id string) recordingOption {
	return func(m *RecordingMutation) {
		var (
			err   error
			once  sync.Once
			value *Recording
		)
		m.oldValue = func(ctx context.Context) (*Recording, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Recording.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecording sets the old Recording of the mutation.
func withRecording(node *Recording) recordingOption {
	return func(m *RecordingMutation) {
		m.oldValue = func(context.Context) (*Recording, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecordingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecordingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Recording entities.
func (m *RecordingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecordingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecordingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Recording.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *RecordingMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *RecordingMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *RecordingMutation) ResetOrgID() {
	m.org_id = nil
}

// SetUserID sets the "user_id" field.
func (m *RecordingMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RecordingMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RecordingMutation) ResetUserID() {
	m.user_id = nil
}

// SetMeetingPlatform sets the "meeting_platform" field.
func (m *RecordingMutation) SetMeetingPlatform(s string) {
	m.meeting_platform = &s
}

// MeetingPlatform returns the value of the "meeting_platform" field in the mutation.
func (m *RecordingMutation) MeetingPlatform() (r string, exists bool) {
	v := m.meeting_platform
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingPlatform returns the old "meeting_platform" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldMeetingPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingPlatform: %w", err)
	}
	return oldValue.MeetingPlatform, nil
}

// ResetMeetingPlatform resets all changes to the "meeting_platform" field.
func (m *RecordingMutation) ResetMeetingPlatform() {
	m.meeting_platform = nil
}

// SetMeetingURL sets the "meeting_url" field.
func (m *RecordingMutation) SetMeetingURL(s string) {
	m.meeting_url = &s
}

// MeetingURL returns the value of the "meeting_url" field in the mutation.
func (m *RecordingMutation) MeetingURL() (r string, exists bool) {
	v := m.meeting_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingURL returns the old "meeting_url" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldMeetingURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingURL: %w", err)
	}
	return oldValue.MeetingURL, nil
}

// ResetMeetingURL resets all changes to the "meeting_url" field.
func (m *RecordingMutation) ResetMeetingURL() {
	m.meeting_url = nil
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (m *RecordingMutation) SetCalendarEventID(s string) {
	m.calendar_event_id = &s
}

// CalendarEventID returns the value of the "calendar_event_id" field in the mutation.
func (m *RecordingMutation) CalendarEventID() (r string, exists bool) {
	v := m.calendar_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCalendarEventID returns the old "calendar_event_id" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldCalendarEventID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalendarEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalendarEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalendarEventID: %w", err)
	}
	return oldValue.CalendarEventID, nil
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (m *RecordingMutation) ClearCalendarEventID() {
	m.calendar_event_id = nil
	m.clearedFields[recording.FieldCalendarEventID] = struct{}{}
}

// CalendarEventIDCleared returns if the "calendar_event_id" field was cleared in this mutation.
func (m *RecordingMutation) CalendarEventIDCleared() bool {
	_, ok := m.clearedFields[recording.FieldCalendarEventID]
	return ok
}

// ResetCalendarEventID resets all changes to the "calendar_event_id" field.
func (m *RecordingMutation) ResetCalendarEventID() {
	m.calendar_event_id = nil
	delete(m.clearedFields, recording.FieldCalendarEventID)
}

// SetProviderRecordingID sets the "provider_recording_id" field.
func (m *RecordingMutation) SetProviderRecordingID(s string) {
	m.provider_recording_id = &s
}

// ProviderRecordingID returns the value of the "provider_recording_id" field in the mutation.
func (m *RecordingMutation) ProviderRecordingID() (r string, exists bool) {
	v := m.provider_recording_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderRecordingID returns the old "provider_recording_id" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldProviderRecordingID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderRecordingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderRecordingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderRecordingID: %w", err)
	}
	return oldValue.ProviderRecordingID, nil
}

// ClearProviderRecordingID clears the value of the "provider_recording_id" field.
func (m *RecordingMutation) ClearProviderRecordingID() {
	m.provider_recording_id = nil
	m.clearedFields[recording.FieldProviderRecordingID] = struct{}{}
}

// ProviderRecordingIDCleared returns if the "provider_recording_id" field was cleared in this mutation.
func (m *RecordingMutation) ProviderRecordingIDCleared() bool {
	_, ok := m.clearedFields[recording.FieldProviderRecordingID]
	return ok
}

// ResetProviderRecordingID resets all changes to the "provider_recording_id" field.
func (m *RecordingMutation) ResetProviderRecordingID() {
	m.provider_recording_id = nil
	delete(m.clearedFields, recording.FieldProviderRecordingID)
}

// SetStatus sets the "status" field.
func (m *RecordingMutation) SetStatus(r recording.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RecordingMutation) Status() (r recording.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldStatus(ctx context.Context) (v recording.Status, err error) {
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
func (m *RecordingMutation) ResetStatus() {
	m.status = nil
}

// SetMediaStorageURL sets the "media_storage_url" field.
func (m *RecordingMutation) SetMediaStorageURL(s string) {
	m.media_storage_url = &s
}

// MediaStorageURL returns the value of the "media_storage_url" field in the mutation.
func (m *RecordingMutation) MediaStorageURL() (r string, exists bool) {
	v := m.media_storage_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaStorageURL returns the old "media_storage_url" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldMediaStorageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaStorageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaStorageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaStorageURL: %w", err)
	}
	return oldValue.MediaStorageURL, nil
}

// ClearMediaStorageURL clears the value of the "media_storage_url" field.
func (m *RecordingMutation) ClearMediaStorageURL() {
	m.media_storage_url = nil
	m.clearedFields[recording.FieldMediaStorageURL] = struct{}{}
}

// MediaStorageURLCleared returns if the "media_storage_url" field was cleared in this mutation.
func (m *RecordingMutation) MediaStorageURLCleared() bool {
	_, ok := m.clearedFields[recording.FieldMediaStorageURL]
	return ok
}

// ResetMediaStorageURL resets all changes to the "media_storage_url" field.
func (m *RecordingMutation) ResetMediaStorageURL() {
	m.media_storage_url = nil
	delete(m.clearedFields, recording.FieldMediaStorageURL)
}

// SetMediaStoragePath sets the "media_storage_path" field.
func (m *RecordingMutation) SetMediaStoragePath(s string) {
	m.media_storage_path = &s
}

// MediaStoragePath returns the value of the "media_storage_path" field in the mutation.
func (m *RecordingMutation) MediaStoragePath() (r string, exists bool) {
	v := m.media_storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaStoragePath returns the old "media_storage_path" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldMediaStoragePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaStoragePath: %w", err)
	}
	return oldValue.MediaStoragePath, nil
}

// ClearMediaStoragePath clears the value of the "media_storage_path" field.
func (m *RecordingMutation) ClearMediaStoragePath() {
	m.media_storage_path = nil
	m.clearedFields[recording.FieldMediaStoragePath] = struct{}{}
}

// MediaStoragePathCleared returns if the "media_storage_path" field was cleared in this mutation.
func (m *RecordingMutation) MediaStoragePathCleared() bool {
	_, ok := m.clearedFields[recording.FieldMediaStoragePath]
	return ok
}

// ResetMediaStoragePath resets all changes to the "media_storage_path" field.
func (m *RecordingMutation) ResetMediaStoragePath() {
	m.media_storage_path = nil
	delete(m.clearedFields, recording.FieldMediaStoragePath)
}

// SetMediaUploadStatus sets the "media_upload_status" field.
func (m *RecordingMutation) SetMediaUploadStatus(rus recording.MediaUploadStatus) {
	m.media_upload_status = &rus
}

// MediaUploadStatus returns the value of the "media_upload_status" field in the mutation.
func (m *RecordingMutation) MediaUploadStatus() (r recording.MediaUploadStatus, exists bool) {
	v := m.media_upload_status
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaUploadStatus returns the old "media_upload_status" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldMediaUploadStatus(ctx context.Context) (v recording.MediaUploadStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaUploadStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaUploadStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaUploadStatus: %w", err)
	}
	return oldValue.MediaUploadStatus, nil
}

// ResetMediaUploadStatus resets all changes to the "media_upload_status" field.
func (m *RecordingMutation) ResetMediaUploadStatus() {
	m.media_upload_status = nil
}

// SetMediaUploadRetryCount sets the "media_upload_retry_count" field.
func (m *RecordingMutation) SetMediaUploadRetryCount(i int) {
	m.media_upload_retry_count = &i
	m.addmedia_upload_retry_count = nil
}

// MediaUploadRetryCount returns the value of the "media_upload_retry_count" field in the mutation.
func (m *RecordingMutation) MediaUploadRetryCount() (r int, exists bool) {
	v := m.media_upload_retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaUploadRetryCount returns the old "media_upload_retry_count" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldMediaUploadRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaUploadRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaUploadRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaUploadRetryCount: %w", err)
	}
	return oldValue.MediaUploadRetryCount, nil
}

// AddMediaUploadRetryCount adds i to the "media_upload_retry_count" field.
func (m *RecordingMutation) AddMediaUploadRetryCount(i int) {
	if m.addmedia_upload_retry_count != nil {
		*m.addmedia_upload_retry_count += i
	} else {
		m.addmedia_upload_retry_count = &i
	}
}

// AddedMediaUploadRetryCount returns the value that was added to the "media_upload_retry_count" field in this mutation.
func (m *RecordingMutation) AddedMediaUploadRetryCount() (r int, exists bool) {
	v := m.addmedia_upload_retry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMediaUploadRetryCount resets all changes to the "media_upload_retry_count" field.
func (m *RecordingMutation) ResetMediaUploadRetryCount() {
	m.media_upload_retry_count = nil
	m.addmedia_upload_retry_count = nil
}

// SetMediaUploadLastRetryAt sets the "media_upload_last_retry_at" field.
func (m *RecordingMutation) SetMediaUploadLastRetryAt(t time.Time) {
	m.media_upload_last_retry_at = &t
}

// MediaUploadLastRetryAt returns the value of the "media_upload_last_retry_at" field in the mutation.
func (m *RecordingMutation) MediaUploadLastRetryAt() (r time.Time, exists bool) {
	v := m.media_upload_last_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaUploadLastRetryAt returns the old "media_upload_last_retry_at" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldMediaUploadLastRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaUploadLastRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaUploadLastRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaUploadLastRetryAt: %w", err)
	}
	return oldValue.MediaUploadLastRetryAt, nil
}

// ClearMediaUploadLastRetryAt clears the value of the "media_upload_last_retry_at" field.
func (m *RecordingMutation) ClearMediaUploadLastRetryAt() {
	m.media_upload_last_retry_at = nil
	m.clearedFields[recording.FieldMediaUploadLastRetryAt] = struct{}{}
}

// MediaUploadLastRetryAtCleared returns if the "media_upload_last_retry_at" field was cleared in this mutation.
func (m *RecordingMutation) MediaUploadLastRetryAtCleared() bool {
	_, ok := m.clearedFields[recording.FieldMediaUploadLastRetryAt]
	return ok
}

// ResetMediaUploadLastRetryAt resets all changes to the "media_upload_last_retry_at" field.
func (m *RecordingMutation) ResetMediaUploadLastRetryAt() {
	m.media_upload_last_retry_at = nil
	delete(m.clearedFields, recording.FieldMediaUploadLastRetryAt)
}

// SetMediaContentType sets the "media_content_type" field.
func (m *RecordingMutation) SetMediaContentType(s string) {
	m.media_content_type = &s
}

// MediaContentType returns the value of the "media_content_type" field in the mutation.
func (m *RecordingMutation) MediaContentType() (r string, exists bool) {
	v := m.media_content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaContentType returns the old "media_content_type" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldMediaContentType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaContentType: %w", err)
	}
	return oldValue.MediaContentType, nil
}

// ClearMediaContentType clears the value of the "media_content_type" field.
func (m *RecordingMutation) ClearMediaContentType() {
	m.media_content_type = nil
	m.clearedFields[recording.FieldMediaContentType] = struct{}{}
}

// MediaContentTypeCleared returns if the "media_content_type" field was cleared in this mutation.
func (m *RecordingMutation) MediaContentTypeCleared() bool {
	_, ok := m.clearedFields[recording.FieldMediaContentType]
	return ok
}

// ResetMediaContentType resets all changes to the "media_content_type" field.
func (m *RecordingMutation) ResetMediaContentType() {
	m.media_content_type = nil
	delete(m.clearedFields, recording.FieldMediaContentType)
}

// SetTranscript sets the "transcript" field.
func (m *RecordingMutation) SetTranscript(value map[string]interface{}) {
	m.transcript = &value
}

// Transcript returns the value of the "transcript" field in the mutation.
func (m *RecordingMutation) Transcript() (r map[string]interface{}, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscript returns the old "transcript" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldTranscript(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscript: %w", err)
	}
	return oldValue.Transcript, nil
}

// ClearTranscript clears the value of the "transcript" field.
func (m *RecordingMutation) ClearTranscript() {
	m.transcript = nil
	m.clearedFields[recording.FieldTranscript] = struct{}{}
}

// TranscriptCleared returns if the "transcript" field was cleared in this mutation.
func (m *RecordingMutation) TranscriptCleared() bool {
	_, ok := m.clearedFields[recording.FieldTranscript]
	return ok
}

// ResetTranscript resets all changes to the "transcript" field.
func (m *RecordingMutation) ResetTranscript() {
	m.transcript = nil
	delete(m.clearedFields, recording.FieldTranscript)
}

// SetTranscriptFetchAttempts sets the "transcript_fetch_attempts" field.
func (m *RecordingMutation) SetTranscriptFetchAttempts(i int) {
	m.transcript_fetch_attempts = &i
	m.addtranscript_fetch_attempts = nil
}

// TranscriptFetchAttempts returns the value of the "transcript_fetch_attempts" field in the mutation.
func (m *RecordingMutation) TranscriptFetchAttempts() (r int, exists bool) {
	v := m.transcript_fetch_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptFetchAttempts returns the old "transcript_fetch_attempts" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldTranscriptFetchAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptFetchAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptFetchAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptFetchAttempts: %w", err)
	}
	return oldValue.TranscriptFetchAttempts, nil
}

// AddTranscriptFetchAttempts adds i to the "transcript_fetch_attempts" field.
func (m *RecordingMutation) AddTranscriptFetchAttempts(i int) {
	if m.addtranscript_fetch_attempts != nil {
		*m.addtranscript_fetch_attempts += i
	} else {
		m.addtranscript_fetch_attempts = &i
	}
}

// AddedTranscriptFetchAttempts returns the value that was added to the "transcript_fetch_attempts" field in this mutation.
func (m *RecordingMutation) AddedTranscriptFetchAttempts() (r int, exists bool) {
	v := m.addtranscript_fetch_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTranscriptFetchAttempts resets all changes to the "transcript_fetch_attempts" field.
func (m *RecordingMutation) ResetTranscriptFetchAttempts() {
	m.transcript_fetch_attempts = nil
	m.addtranscript_fetch_attempts = nil
}

// SetLastTranscriptFetchAt sets the "last_transcript_fetch_at" field.
func (m *RecordingMutation) SetLastTranscriptFetchAt(t time.Time) {
	m.last_transcript_fetch_at = &t
}

// LastTranscriptFetchAt returns the value of the "last_transcript_fetch_at" field in the mutation.
func (m *RecordingMutation) LastTranscriptFetchAt() (r time.Time, exists bool) {
	v := m.last_transcript_fetch_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTranscriptFetchAt returns the old "last_transcript_fetch_at" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldLastTranscriptFetchAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTranscriptFetchAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTranscriptFetchAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTranscriptFetchAt: %w", err)
	}
	return oldValue.LastTranscriptFetchAt, nil
}

// ClearLastTranscriptFetchAt clears the value of the "last_transcript_fetch_at" field.
func (m *RecordingMutation) ClearLastTranscriptFetchAt() {
	m.last_transcript_fetch_at = nil
	m.clearedFields[recording.FieldLastTranscriptFetchAt] = struct{}{}
}

// LastTranscriptFetchAtCleared returns if the "last_transcript_fetch_at" field was cleared in this mutation.
func (m *RecordingMutation) LastTranscriptFetchAtCleared() bool {
	_, ok := m.clearedFields[recording.FieldLastTranscriptFetchAt]
	return ok
}

// ResetLastTranscriptFetchAt resets all changes to the "last_transcript_fetch_at" field.
func (m *RecordingMutation) ResetLastTranscriptFetchAt() {
	m.last_transcript_fetch_at = nil
	delete(m.clearedFields, recording.FieldLastTranscriptFetchAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *RecordingMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RecordingMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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
func (m *RecordingMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[recording.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RecordingMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[recording.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RecordingMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, recording.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *RecordingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecordingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RecordingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecordingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecordingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RecordingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetBotDeploymentID sets the "bot_deployment" edge to the BotDeployment entity by id.
func (m *RecordingMutation) SetBotDeploymentID(id string) {
	m.bot_deployment = &id
}

// ClearBotDeployment clears the "bot_deployment" edge to the BotDeployment entity.
func (m *RecordingMutation) ClearBotDeployment() {
	m.clearedbot_deployment = true
}

// BotDeploymentCleared reports if the "bot_deployment" edge to the BotDeployment entity was cleared.
func (m *RecordingMutation) BotDeploymentCleared() bool {
	return m.clearedbot_deployment
}

// BotDeploymentID returns the "bot_deployment" edge ID in the mutation.
func (m *RecordingMutation) BotDeploymentID() (id string, exists bool) {
	if m.bot_deployment != nil {
		return *m.bot_deployment, true
	}
	return
}

// BotDeploymentIDs returns the "bot_deployment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BotDeploymentID instead. It exists only for internal usage by the builders.
func (m *RecordingMutation) BotDeploymentIDs() (ids []string) {
	if id := m.bot_deployment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBotDeployment resets all changes to the "bot_deployment" edge.
func (m *RecordingMutation) ResetBotDeployment() {
	m.bot_deployment = nil
	m.clearedbot_deployment = false
}

// Where appends a list predicates to the RecordingMutation builder.
func (m *RecordingMutation) Where(ps ...predicate.Recording) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecordingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecordingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Recording, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecordingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecordingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Recording).
func (m *RecordingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecordingMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.org_id != nil {
		fields = append(fields, recording.FieldOrgID)
	}
	if m.user_id != nil {
		fields = append(fields, recording.FieldUserID)
	}
	if m.meeting_platform != nil {
		fields = append(fields, recording.FieldMeetingPlatform)
	}
	if m.meeting_url != nil {
		fields = append(fields, recording.FieldMeetingURL)
	}
	if m.calendar_event_id != nil {
		fields = append(fields, recording.FieldCalendarEventID)
	}
	if m.provider_recording_id != nil {
		fields = append(fields, recording.FieldProviderRecordingID)
	}
	if m.status != nil {
		fields = append(fields, recording.FieldStatus)
	}
	if m.media_storage_url != nil {
		fields = append(fields, recording.FieldMediaStorageURL)
	}
	if m.media_storage_path != nil {
		fields = append(fields, recording.FieldMediaStoragePath)
	}
	if m.media_upload_status != nil {
		fields = append(fields, recording.FieldMediaUploadStatus)
	}
	if m.media_upload_retry_count != nil {
		fields = append(fields, recording.FieldMediaUploadRetryCount)
	}
	if m.media_upload_last_retry_at != nil {
		fields = append(fields, recording.FieldMediaUploadLastRetryAt)
	}
	if m.media_content_type != nil {
		fields = append(fields, recording.FieldMediaContentType)
	}
	if m.transcript != nil {
		fields = append(fields, recording.FieldTranscript)
	}
	if m.transcript_fetch_attempts != nil {
		fields = append(fields, recording.FieldTranscriptFetchAttempts)
	}
	if m.last_transcript_fetch_at != nil {
		fields = append(fields, recording.FieldLastTranscriptFetchAt)
	}
	if m.error_message != nil {
		fields = append(fields, recording.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, recording.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recording.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecordingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recording.FieldOrgID:
		return m.OrgID()
	case recording.FieldUserID:
		return m.UserID()
	case recording.FieldMeetingPlatform:
		return m.MeetingPlatform()
	case recording.FieldMeetingURL:
		return m.MeetingURL()
	case recording.FieldCalendarEventID:
		return m.CalendarEventID()
	case recording.FieldProviderRecordingID:
		return m.ProviderRecordingID()
	case recording.FieldStatus:
		return m.Status()
	case recording.FieldMediaStorageURL:
		return m.MediaStorageURL()
	case recording.FieldMediaStoragePath:
		return m.MediaStoragePath()
	case recording.FieldMediaUploadStatus:
		return m.MediaUploadStatus()
	case recording.FieldMediaUploadRetryCount:
		return m.MediaUploadRetryCount()
	case recording.FieldMediaUploadLastRetryAt:
		return m.MediaUploadLastRetryAt()
	case recording.FieldMediaContentType:
		return m.MediaContentType()
	case recording.FieldTranscript:
		return m.Transcript()
	case recording.FieldTranscriptFetchAttempts:
		return m.TranscriptFetchAttempts()
	case recording.FieldLastTranscriptFetchAt:
		return m.LastTranscriptFetchAt()
	case recording.FieldErrorMessage:
		return m.ErrorMessage()
	case recording.FieldCreatedAt:
		return m.CreatedAt()
	case recording.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecordingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recording.FieldOrgID:
		return m.OldOrgID(ctx)
	case recording.FieldUserID:
		return m.OldUserID(ctx)
	case recording.FieldMeetingPlatform:
		return m.OldMeetingPlatform(ctx)
	case recording.FieldMeetingURL:
		return m.OldMeetingURL(ctx)
	case recording.FieldCalendarEventID:
		return m.OldCalendarEventID(ctx)
	case recording.FieldProviderRecordingID:
		return m.OldProviderRecordingID(ctx)
	case recording.FieldStatus:
		return m.OldStatus(ctx)
	case recording.FieldMediaStorageURL:
		return m.OldMediaStorageURL(ctx)
	case recording.FieldMediaStoragePath:
		return m.OldMediaStoragePath(ctx)
	case recording.FieldMediaUploadStatus:
		return m.OldMediaUploadStatus(ctx)
	case recording.FieldMediaUploadRetryCount:
		return m.OldMediaUploadRetryCount(ctx)
	case recording.FieldMediaUploadLastRetryAt:
		return m.OldMediaUploadLastRetryAt(ctx)
	case recording.FieldMediaContentType:
		return m.OldMediaContentType(ctx)
	case recording.FieldTranscript:
		return m.OldTranscript(ctx)
	case recording.FieldTranscriptFetchAttempts:
		return m.OldTranscriptFetchAttempts(ctx)
	case recording.FieldLastTranscriptFetchAt:
		return m.OldLastTranscriptFetchAt(ctx)
	case recording.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case recording.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recording.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Recording field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recording.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case recording.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case recording.FieldMeetingPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingPlatform(v)
		return nil
	case recording.FieldMeetingURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingURL(v)
		return nil
	case recording.FieldCalendarEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalendarEventID(v)
		return nil
	case recording.FieldProviderRecordingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderRecordingID(v)
		return nil
	case recording.FieldStatus:
		v, ok := value.(recording.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case recording.FieldMediaStorageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaStorageURL(v)
		return nil
	case recording.FieldMediaStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaStoragePath(v)
		return nil
	case recording.FieldMediaUploadStatus:
		v, ok := value.(recording.MediaUploadStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaUploadStatus(v)
		return nil
	case recording.FieldMediaUploadRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaUploadRetryCount(v)
		return nil
	case recording.FieldMediaUploadLastRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaUploadLastRetryAt(v)
		return nil
	case recording.FieldMediaContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaContentType(v)
		return nil
	case recording.FieldTranscript:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscript(v)
		return nil
	case recording.FieldTranscriptFetchAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptFetchAttempts(v)
		return nil
	case recording.FieldLastTranscriptFetchAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTranscriptFetchAt(v)
		return nil
	case recording.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case recording.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recording.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Recording field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecordingMutation) AddedFields() []string {
	var fields []string
	if m.addmedia_upload_retry_count != nil {
		fields = append(fields, recording.FieldMediaUploadRetryCount)
	}
	if m.addtranscript_fetch_attempts != nil {
		fields = append(fields, recording.FieldTranscriptFetchAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecordingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recording.FieldMediaUploadRetryCount:
		return m.AddedMediaUploadRetryCount()
	case recording.FieldTranscriptFetchAttempts:
		return m.AddedTranscriptFetchAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recording.FieldMediaUploadRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMediaUploadRetryCount(v)
		return nil
	case recording.FieldTranscriptFetchAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTranscriptFetchAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Recording numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecordingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recording.FieldCalendarEventID) {
		fields = append(fields, recording.FieldCalendarEventID)
	}
	if m.FieldCleared(recording.FieldProviderRecordingID) {
		fields = append(fields, recording.FieldProviderRecordingID)
	}
	if m.FieldCleared(recording.FieldMediaStorageURL) {
		fields = append(fields, recording.FieldMediaStorageURL)
	}
	if m.FieldCleared(recording.FieldMediaStoragePath) {
		fields = append(fields, recording.FieldMediaStoragePath)
	}
	if m.FieldCleared(recording.FieldMediaUploadLastRetryAt) {
		fields = append(fields, recording.FieldMediaUploadLastRetryAt)
	}
	if m.FieldCleared(recording.FieldMediaContentType) {
		fields = append(fields, recording.FieldMediaContentType)
	}
	if m.FieldCleared(recording.FieldTranscript) {
		fields = append(fields, recording.FieldTranscript)
	}
	if m.FieldCleared(recording.FieldLastTranscriptFetchAt) {
		fields = append(fields, recording.FieldLastTranscriptFetchAt)
	}
	if m.FieldCleared(recording.FieldErrorMessage) {
		fields = append(fields, recording.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecordingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecordingMutation) ClearField(name string) error {
	switch name {
	case recording.FieldCalendarEventID:
		m.ClearCalendarEventID()
		return nil
	case recording.FieldProviderRecordingID:
		m.ClearProviderRecordingID()
		return nil
	case recording.FieldMediaStorageURL:
		m.ClearMediaStorageURL()
		return nil
	case recording.FieldMediaStoragePath:
		m.ClearMediaStoragePath()
		return nil
	case recording.FieldMediaUploadLastRetryAt:
		m.ClearMediaUploadLastRetryAt()
		return nil
	case recording.FieldMediaContentType:
		m.ClearMediaContentType()
		return nil
	case recording.FieldTranscript:
		m.ClearTranscript()
		return nil
	case recording.FieldLastTranscriptFetchAt:
		m.ClearLastTranscriptFetchAt()
		return nil
	case recording.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Recording nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecordingMutation) ResetField(name string) error {
	switch name {
	case recording.FieldOrgID:
		m.ResetOrgID()
		return nil
	case recording.FieldUserID:
		m.ResetUserID()
		return nil
	case recording.FieldMeetingPlatform:
		m.ResetMeetingPlatform()
		return nil
	case recording.FieldMeetingURL:
		m.ResetMeetingURL()
		return nil
	case recording.FieldCalendarEventID:
		m.ResetCalendarEventID()
		return nil
	case recording.FieldProviderRecordingID:
		m.ResetProviderRecordingID()
		return nil
	case recording.FieldStatus:
		m.ResetStatus()
		return nil
	case recording.FieldMediaStorageURL:
		m.ResetMediaStorageURL()
		return nil
	case recording.FieldMediaStoragePath:
		m.ResetMediaStoragePath()
		return nil
	case recording.FieldMediaUploadStatus:
		m.ResetMediaUploadStatus()
		return nil
	case recording.FieldMediaUploadRetryCount:
		m.ResetMediaUploadRetryCount()
		return nil
	case recording.FieldMediaUploadLastRetryAt:
		m.ResetMediaUploadLastRetryAt()
		return nil
	case recording.FieldMediaContentType:
		m.ResetMediaContentType()
		return nil
	case recording.FieldTranscript:
		m.ResetTranscript()
		return nil
	case recording.FieldTranscriptFetchAttempts:
		m.ResetTranscriptFetchAttempts()
		return nil
	case recording.FieldLastTranscriptFetchAt:
		m.ResetLastTranscriptFetchAt()
		return nil
	case recording.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case recording.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recording.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Recording field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecordingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.bot_deployment != nil {
		edges = append(edges, recording.EdgeBotDeployment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecordingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recording.EdgeBotDeployment:
		if id := m.bot_deployment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecordingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecordingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecordingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbot_deployment {
		edges = append(edges, recording.EdgeBotDeployment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecordingMutation) EdgeCleared(name string) bool {
	switch name {
	case recording.EdgeBotDeployment:
		return m.clearedbot_deployment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecordingMutation) ClearEdge(name string) error {
	switch name {
	case recording.EdgeBotDeployment:
		m.ClearBotDeployment()
		return nil
	}
	return fmt.Errorf("unknown Recording unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecordingMutation) ResetEdge(name string) error {
	switch name {
	case recording.EdgeBotDeployment:
		m.ResetBotDeployment()
		return nil
	}
	return fmt.Errorf("unknown Recording edge %s", name)
}

// RecordingRuleMutation represents an operation that mutates the RecordingRule nodes in the graph.
type RecordingRuleMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	org_id                       *string
	name                         *string
	priority                     *int
	addpriority                  *int
	enabled                      *bool
	test_mode                    *bool
	title_exclude_keywords       *[]string
	appendtitle_exclude_keywords []string
	title_include_keywords       *[]string
	appendtitle_include_keywords []string
	min_attendees                *int
	addmin_attendees             *int
	max_attendees                *int
	addmax_attendees             *int
	domain_mode                  *recordingrule.DomainMode
	specific_domains             *[]string
	appendspecific_domains       []string
	target                       *map[string]interface{}
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	done                         bool
	oldValue                     func(context.Context) (*RecordingRule, error)
	predicates                   []predicate.RecordingRule
}

var _ ent.Mutation = (*RecordingRuleMutation)(nil)

// recordingruleOption allows management of the mutation configuration using functional options.
type recordingruleOption func(*RecordingRuleMutation)

// newRecordingRuleMutation creates new mutation for the RecordingRule entity.
func newRecordingRuleMutation(c config, op Op, opts ...recordingruleOption) *RecordingRuleMutation {
	m := &RecordingRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeRecordingRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecordingRuleID sets the ID field of the mutation.
func withRecordingRuleID(id string) recordingruleOption {
	return func(m *RecordingRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *RecordingRule
		)
		m.oldValue = func(ctx context.Context) (*RecordingRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecordingRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecordingRule sets the old RecordingRule of the mutation.
func withRecordingRule(node *RecordingRule) recordingruleOption {
	return func(m *RecordingRuleMutation) {
		m.oldValue = func(context.Context) (*RecordingRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecordingRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecordingRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecordingRule entities.
func (m *RecordingRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecordingRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecordingRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecordingRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *RecordingRuleMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *RecordingRuleMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *RecordingRuleMutation) ResetOrgID() {
	m.org_id = nil
}

// SetName sets the "name" field.
func (m *RecordingRuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RecordingRuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *RecordingRuleMutation) ResetName() {
	m.name = nil
}

// SetPriority sets the "priority" field.
func (m *RecordingRuleMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *RecordingRuleMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *RecordingRuleMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *RecordingRuleMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *RecordingRuleMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetEnabled sets the "enabled" field.
func (m *RecordingRuleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *RecordingRuleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *RecordingRuleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetTestMode sets the "test_mode" field.
func (m *RecordingRuleMutation) SetTestMode(b bool) {
	m.test_mode = &b
}

// TestMode returns the value of the "test_mode" field in the mutation.
func (m *RecordingRuleMutation) TestMode() (r bool, exists bool) {
	v := m.test_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldTestMode returns the old "test_mode" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldTestMode(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestMode: %w", err)
	}
	return oldValue.TestMode, nil
}

// ResetTestMode resets all changes to the "test_mode" field.
func (m *RecordingRuleMutation) ResetTestMode() {
	m.test_mode = nil
}

// SetTitleExcludeKeywords sets the "title_exclude_keywords" field.
func (m *RecordingRuleMutation) SetTitleExcludeKeywords(s []string) {
	m.title_exclude_keywords = &s
	m.appendtitle_exclude_keywords = nil
}

// TitleExcludeKeywords returns the value of the "title_exclude_keywords" field in the mutation.
func (m *RecordingRuleMutation) TitleExcludeKeywords() (r []string, exists bool) {
	v := m.title_exclude_keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldTitleExcludeKeywords returns the old "title_exclude_keywords" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldTitleExcludeKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitleExcludeKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitleExcludeKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitleExcludeKeywords: %w", err)
	}
	return oldValue.TitleExcludeKeywords, nil
}

// AppendTitleExcludeKeywords adds s to the "title_exclude_keywords" field.
func (m *RecordingRuleMutation) AppendTitleExcludeKeywords(s []string) {
	m.appendtitle_exclude_keywords = append(m.appendtitle_exclude_keywords, s...)
}

// AppendedTitleExcludeKeywords returns the list of values that were appended to the "title_exclude_keywords" field in this mutation.
func (m *RecordingRuleMutation) AppendedTitleExcludeKeywords() ([]string, bool) {
	if len(m.appendtitle_exclude_keywords) == 0 {
		return nil, false
	}
	return m.appendtitle_exclude_keywords, true
}

// ClearTitleExcludeKeywords clears the value of the "title_exclude_keywords" field.
func (m *RecordingRuleMutation) ClearTitleExcludeKeywords() {
	m.title_exclude_keywords = nil
	m.appendtitle_exclude_keywords = nil
	m.clearedFields[recordingrule.FieldTitleExcludeKeywords] = struct{}{}
}

// TitleExcludeKeywordsCleared returns if the "title_exclude_keywords" field was cleared in this mutation.
func (m *RecordingRuleMutation) TitleExcludeKeywordsCleared() bool {
	_, ok := m.clearedFields[recordingrule.FieldTitleExcludeKeywords]
	return ok
}

// ResetTitleExcludeKeywords resets all changes to the "title_exclude_keywords" field.
func (m *RecordingRuleMutation) ResetTitleExcludeKeywords() {
	m.title_exclude_keywords = nil
	m.appendtitle_exclude_keywords = nil
	delete(m.clearedFields, recordingrule.FieldTitleExcludeKeywords)
}

// SetTitleIncludeKeywords sets the "title_include_keywords" field.
func (m *RecordingRuleMutation) SetTitleIncludeKeywords(s []string) {
	m.title_include_keywords = &s
	m.appendtitle_include_keywords = nil
}

// TitleIncludeKeywords returns the value of the "title_include_keywords" field in the mutation.
func (m *RecordingRuleMutation) TitleIncludeKeywords() (r []string, exists bool) {
	v := m.title_include_keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldTitleIncludeKeywords returns the old "title_include_keywords" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldTitleIncludeKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitleIncludeKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitleIncludeKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitleIncludeKeywords: %w", err)
	}
	return oldValue.TitleIncludeKeywords, nil
}

// AppendTitleIncludeKeywords adds s to the "title_include_keywords" field.
func (m *RecordingRuleMutation) AppendTitleIncludeKeywords(s []string) {
	m.appendtitle_include_keywords = append(m.appendtitle_include_keywords, s...)
}

// AppendedTitleIncludeKeywords returns the list of values that were appended to the "title_include_keywords" field in this mutation.
func (m *RecordingRuleMutation) AppendedTitleIncludeKeywords() ([]string, bool) {
	if len(m.appendtitle_include_keywords) == 0 {
		return nil, false
	}
	return m.appendtitle_include_keywords, true
}

// ClearTitleIncludeKeywords clears the value of the "title_include_keywords" field.
func (m *RecordingRuleMutation) ClearTitleIncludeKeywords() {
	m.title_include_keywords = nil
	m.appendtitle_include_keywords = nil
	m.clearedFields[recordingrule.FieldTitleIncludeKeywords] = struct{}{}
}

// TitleIncludeKeywordsCleared returns if the "title_include_keywords" field was cleared in this mutation.
func (m *RecordingRuleMutation) TitleIncludeKeywordsCleared() bool {
	_, ok := m.clearedFields[recordingrule.FieldTitleIncludeKeywords]
	return ok
}

// ResetTitleIncludeKeywords resets all changes to the "title_include_keywords" field.
func (m *RecordingRuleMutation) ResetTitleIncludeKeywords() {
	m.title_include_keywords = nil
	m.appendtitle_include_keywords = nil
	delete(m.clearedFields, recordingrule.FieldTitleIncludeKeywords)
}

// SetMinAttendees sets the "min_attendees" field.
func (m *RecordingRuleMutation) SetMinAttendees(i int) {
	m.min_attendees = &i
	m.addmin_attendees = nil
}

// MinAttendees returns the value of the "min_attendees" field in the mutation.
func (m *RecordingRuleMutation) MinAttendees() (r int, exists bool) {
	v := m.min_attendees
	if v == nil {
		return
	}
	return *v, true
}

// OldMinAttendees returns the old "min_attendees" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldMinAttendees(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinAttendees is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinAttendees requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinAttendees: %w", err)
	}
	return oldValue.MinAttendees, nil
}

// AddMinAttendees adds i to the "min_attendees" field.
func (m *RecordingRuleMutation) AddMinAttendees(i int) {
	if m.addmin_attendees != nil {
		*m.addmin_attendees += i
	} else {
		m.addmin_attendees = &i
	}
}

// AddedMinAttendees returns the value that was added to the "min_attendees" field in this mutation.
func (m *RecordingRuleMutation) AddedMinAttendees() (r int, exists bool) {
	v := m.addmin_attendees
	if v == nil {
		return
	}
	return *v, true
}

// ClearMinAttendees clears the value of the "min_attendees" field.
func (m *RecordingRuleMutation) ClearMinAttendees() {
	m.min_attendees = nil
	m.addmin_attendees = nil
	m.clearedFields[recordingrule.FieldMinAttendees] = struct{}{}
}

// MinAttendeesCleared returns if the "min_attendees" field was cleared in this mutation.
func (m *RecordingRuleMutation) MinAttendeesCleared() bool {
	_, ok := m.clearedFields[recordingrule.FieldMinAttendees]
	return ok
}

// ResetMinAttendees resets all changes to the "min_attendees" field.
func (m *RecordingRuleMutation) ResetMinAttendees() {
	m.min_attendees = nil
	m.addmin_attendees = nil
	delete(m.clearedFields, recordingrule.FieldMinAttendees)
}

// SetMaxAttendees sets the "max_attendees" field.
func (m *RecordingRuleMutation) SetMaxAttendees(i int) {
	m.max_attendees = &i
	m.addmax_attendees = nil
}

// MaxAttendees returns the value of the "max_attendees" field in the mutation.
func (m *RecordingRuleMutation) MaxAttendees() (r int, exists bool) {
	v := m.max_attendees
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttendees returns the old "max_attendees" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldMaxAttendees(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttendees is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttendees requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttendees: %w", err)
	}
	return oldValue.MaxAttendees, nil
}

// AddMaxAttendees adds i to the "max_attendees" field.
func (m *RecordingRuleMutation) AddMaxAttendees(i int) {
	if m.addmax_attendees != nil {
		*m.addmax_attendees += i
	} else {
		m.addmax_attendees = &i
	}
}

// AddedMaxAttendees returns the value that was added to the "max_attendees" field in this mutation.
func (m *RecordingRuleMutation) AddedMaxAttendees() (r int, exists bool) {
	v := m.addmax_attendees
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxAttendees clears the value of the "max_attendees" field.
func (m *RecordingRuleMutation) ClearMaxAttendees() {
	m.max_attendees = nil
	m.addmax_attendees = nil
	m.clearedFields[recordingrule.FieldMaxAttendees] = struct{}{}
}

// MaxAttendeesCleared returns if the "max_attendees" field was cleared in this mutation.
func (m *RecordingRuleMutation) MaxAttendeesCleared() bool {
	_, ok := m.clearedFields[recordingrule.FieldMaxAttendees]
	return ok
}

// ResetMaxAttendees resets all changes to the "max_attendees" field.
func (m *RecordingRuleMutation) ResetMaxAttendees() {
	m.max_attendees = nil
	m.addmax_attendees = nil
	delete(m.clearedFields, recordingrule.FieldMaxAttendees)
}

// SetDomainMode sets the "domain_mode" field.
func (m *RecordingRuleMutation) SetDomainMode(rm recordingrule.DomainMode) {
	m.domain_mode = &rm
}

// DomainMode returns the value of the "domain_mode" field in the mutation.
func (m *RecordingRuleMutation) DomainMode() (r recordingrule.DomainMode, exists bool) {
	v := m.domain_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainMode returns the old "domain_mode" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldDomainMode(ctx context.Context) (v recordingrule.DomainMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainMode: %w", err)
	}
	return oldValue.DomainMode, nil
}

// ResetDomainMode resets all changes to the "domain_mode" field.
func (m *RecordingRuleMutation) ResetDomainMode() {
	m.domain_mode = nil
}

// SetSpecificDomains sets the "specific_domains" field.
func (m *RecordingRuleMutation) SetSpecificDomains(s []string) {
	m.specific_domains = &s
	m.appendspecific_domains = nil
}

// SpecificDomains returns the value of the "specific_domains" field in the mutation.
func (m *RecordingRuleMutation) SpecificDomains() (r []string, exists bool) {
	v := m.specific_domains
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecificDomains returns the old "specific_domains" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldSpecificDomains(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecificDomains is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecificDomains requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecificDomains: %w", err)
	}
	return oldValue.SpecificDomains, nil
}

// AppendSpecificDomains adds s to the "specific_domains" field.
func (m *RecordingRuleMutation) AppendSpecificDomains(s []string) {
	m.appendspecific_domains = append(m.appendspecific_domains, s...)
}

// AppendedSpecificDomains returns the list of values that were appended to the "specific_domains" field in this mutation.
func (m *RecordingRuleMutation) AppendedSpecificDomains() ([]string, bool) {
	if len(m.appendspecific_domains) == 0 {
		return nil, false
	}
	return m.appendspecific_domains, true
}

// ClearSpecificDomains clears the value of the "specific_domains" field.
func (m *RecordingRuleMutation) ClearSpecificDomains() {
	m.specific_domains = nil
	m.appendspecific_domains = nil
	m.clearedFields[recordingrule.FieldSpecificDomains] = struct{}{}
}

// SpecificDomainsCleared returns if the "specific_domains" field was cleared in this mutation.
func (m *RecordingRuleMutation) SpecificDomainsCleared() bool {
	_, ok := m.clearedFields[recordingrule.FieldSpecificDomains]
	return ok
}

// ResetSpecificDomains resets all changes to the "specific_domains" field.
func (m *RecordingRuleMutation) ResetSpecificDomains() {
	m.specific_domains = nil
	m.appendspecific_domains = nil
	delete(m.clearedFields, recordingrule.FieldSpecificDomains)
}

// SetTarget sets the "target" field.
func (m *RecordingRuleMutation) SetTarget(value map[string]interface{}) {
	m.target = &value
}

// Target returns the value of the "target" field in the mutation.
func (m *RecordingRuleMutation) Target() (r map[string]interface{}, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldTarget(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// ClearTarget clears the value of the "target" field.
func (m *RecordingRuleMutation) ClearTarget() {
	m.target = nil
	m.clearedFields[recordingrule.FieldTarget] = struct{}{}
}

// TargetCleared returns if the "target" field was cleared in this mutation.
func (m *RecordingRuleMutation) TargetCleared() bool {
	_, ok := m.clearedFields[recordingrule.FieldTarget]
	return ok
}

// ResetTarget resets all changes to the "target" field.
func (m *RecordingRuleMutation) ResetTarget() {
	m.target = nil
	delete(m.clearedFields, recordingrule.FieldTarget)
}

// SetCreatedAt sets the "created_at" field.
func (m *RecordingRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecordingRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RecordingRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecordingRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecordingRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RecordingRule entity.
// If the RecordingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RecordingRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RecordingRuleMutation builder.
func (m *RecordingRuleMutation) Where(ps ...predicate.RecordingRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecordingRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecordingRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecordingRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecordingRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecordingRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecordingRule).
func (m *RecordingRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecordingRuleMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.org_id != nil {
		fields = append(fields, recordingrule.FieldOrgID)
	}
	if m.name != nil {
		fields = append(fields, recordingrule.FieldName)
	}
	if m.priority != nil {
		fields = append(fields, recordingrule.FieldPriority)
	}
	if m.enabled != nil {
		fields = append(fields, recordingrule.FieldEnabled)
	}
	if m.test_mode != nil {
		fields = append(fields, recordingrule.FieldTestMode)
	}
	if m.title_exclude_keywords != nil {
		fields = append(fields, recordingrule.FieldTitleExcludeKeywords)
	}
	if m.title_include_keywords != nil {
		fields = append(fields, recordingrule.FieldTitleIncludeKeywords)
	}
	if m.min_attendees != nil {
		fields = append(fields, recordingrule.FieldMinAttendees)
	}
	if m.max_attendees != nil {
		fields = append(fields, recordingrule.FieldMaxAttendees)
	}
	if m.domain_mode != nil {
		fields = append(fields, recordingrule.FieldDomainMode)
	}
	if m.specific_domains != nil {
		fields = append(fields, recordingrule.FieldSpecificDomains)
	}
	if m.target != nil {
		fields = append(fields, recordingrule.FieldTarget)
	}
	if m.created_at != nil {
		fields = append(fields, recordingrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recordingrule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecordingRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recordingrule.FieldOrgID:
		return m.OrgID()
	case recordingrule.FieldName:
		return m.Name()
	case recordingrule.FieldPriority:
		return m.Priority()
	case recordingrule.FieldEnabled:
		return m.Enabled()
	case recordingrule.FieldTestMode:
		return m.TestMode()
	case recordingrule.FieldTitleExcludeKeywords:
		return m.TitleExcludeKeywords()
	case recordingrule.FieldTitleIncludeKeywords:
		return m.TitleIncludeKeywords()
	case recordingrule.FieldMinAttendees:
		return m.MinAttendees()
	case recordingrule.FieldMaxAttendees:
		return m.MaxAttendees()
	case recordingrule.FieldDomainMode:
		return m.DomainMode()
	case recordingrule.FieldSpecificDomains:
		return m.SpecificDomains()
	case recordingrule.FieldTarget:
		return m.Target()
	case recordingrule.FieldCreatedAt:
		return m.CreatedAt()
	case recordingrule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecordingRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recordingrule.FieldOrgID:
		return m.OldOrgID(ctx)
	case recordingrule.FieldName:
		return m.OldName(ctx)
	case recordingrule.FieldPriority:
		return m.OldPriority(ctx)
	case recordingrule.FieldEnabled:
		return m.OldEnabled(ctx)
	case recordingrule.FieldTestMode:
		return m.OldTestMode(ctx)
	case recordingrule.FieldTitleExcludeKeywords:
		return m.OldTitleExcludeKeywords(ctx)
	case recordingrule.FieldTitleIncludeKeywords:
		return m.OldTitleIncludeKeywords(ctx)
	case recordingrule.FieldMinAttendees:
		return m.OldMinAttendees(ctx)
	case recordingrule.FieldMaxAttendees:
		return m.OldMaxAttendees(ctx)
	case recordingrule.FieldDomainMode:
		return m.OldDomainMode(ctx)
	case recordingrule.FieldSpecificDomains:
		return m.OldSpecificDomains(ctx)
	case recordingrule.FieldTarget:
		return m.OldTarget(ctx)
	case recordingrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recordingrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RecordingRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordingRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recordingrule.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case recordingrule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case recordingrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case recordingrule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case recordingrule.FieldTestMode:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestMode(v)
		return nil
	case recordingrule.FieldTitleExcludeKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitleExcludeKeywords(v)
		return nil
	case recordingrule.FieldTitleIncludeKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitleIncludeKeywords(v)
		return nil
	case recordingrule.FieldMinAttendees:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinAttendees(v)
		return nil
	case recordingrule.FieldMaxAttendees:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttendees(v)
		return nil
	case recordingrule.FieldDomainMode:
		v, ok := value.(recordingrule.DomainMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainMode(v)
		return nil
	case recordingrule.FieldSpecificDomains:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecificDomains(v)
		return nil
	case recordingrule.FieldTarget:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case recordingrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recordingrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RecordingRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecordingRuleMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, recordingrule.FieldPriority)
	}
	if m.addmin_attendees != nil {
		fields = append(fields, recordingrule.FieldMinAttendees)
	}
	if m.addmax_attendees != nil {
		fields = append(fields, recordingrule.FieldMaxAttendees)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecordingRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recordingrule.FieldPriority:
		return m.AddedPriority()
	case recordingrule.FieldMinAttendees:
		return m.AddedMinAttendees()
	case recordingrule.FieldMaxAttendees:
		return m.AddedMaxAttendees()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordingRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recordingrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case recordingrule.FieldMinAttendees:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinAttendees(v)
		return nil
	case recordingrule.FieldMaxAttendees:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttendees(v)
		return nil
	}
	return fmt.Errorf("unknown RecordingRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecordingRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recordingrule.FieldTitleExcludeKeywords) {
		fields = append(fields, recordingrule.FieldTitleExcludeKeywords)
	}
	if m.FieldCleared(recordingrule.FieldTitleIncludeKeywords) {
		fields = append(fields, recordingrule.FieldTitleIncludeKeywords)
	}
	if m.FieldCleared(recordingrule.FieldMinAttendees) {
		fields = append(fields, recordingrule.FieldMinAttendees)
	}
	if m.FieldCleared(recordingrule.FieldMaxAttendees) {
		fields = append(fields, recordingrule.FieldMaxAttendees)
	}
	if m.FieldCleared(recordingrule.FieldSpecificDomains) {
		fields = append(fields, recordingrule.FieldSpecificDomains)
	}
	if m.FieldCleared(recordingrule.FieldTarget) {
		fields = append(fields, recordingrule.FieldTarget)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecordingRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecordingRuleMutation) ClearField(name string) error {
	switch name {
	case recordingrule.FieldTitleExcludeKeywords:
		m.ClearTitleExcludeKeywords()
		return nil
	case recordingrule.FieldTitleIncludeKeywords:
		m.ClearTitleIncludeKeywords()
		return nil
	case recordingrule.FieldMinAttendees:
		m.ClearMinAttendees()
		return nil
	case recordingrule.FieldMaxAttendees:
		m.ClearMaxAttendees()
		return nil
	case recordingrule.FieldSpecificDomains:
		m.ClearSpecificDomains()
		return nil
	case recordingrule.FieldTarget:
		m.ClearTarget()
		return nil
	}
	return fmt.Errorf("unknown RecordingRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecordingRuleMutation) ResetField(name string) error {
	switch name {
	case recordingrule.FieldOrgID:
		m.ResetOrgID()
		return nil
	case recordingrule.FieldName:
		m.ResetName()
		return nil
	case recordingrule.FieldPriority:
		m.ResetPriority()
		return nil
	case recordingrule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case recordingrule.FieldTestMode:
		m.ResetTestMode()
		return nil
	case recordingrule.FieldTitleExcludeKeywords:
		m.ResetTitleExcludeKeywords()
		return nil
	case recordingrule.FieldTitleIncludeKeywords:
		m.ResetTitleIncludeKeywords()
		return nil
	case recordingrule.FieldMinAttendees:
		m.ResetMinAttendees()
		return nil
	case recordingrule.FieldMaxAttendees:
		m.ResetMaxAttendees()
		return nil
	case recordingrule.FieldDomainMode:
		m.ResetDomainMode()
		return nil
	case recordingrule.FieldSpecificDomains:
		m.ResetSpecificDomains()
		return nil
	case recordingrule.FieldTarget:
		m.ResetTarget()
		return nil
	case recordingrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recordingrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RecordingRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecordingRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecordingRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecordingRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecordingRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecordingRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecordingRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecordingRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RecordingRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecordingRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RecordingRule edge %s", name)
}

// RetryJobMutation represents an operation that mutates the RetryJob nodes in the graph.
type RetryJobMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	job_type                *string
	target_entity_ref       *string
	next_attempt_at         *time.Time
	attempts                *int
	addattempts             *int
	max_attempts            *int
	addmax_attempts         *int
	backoff_base_seconds    *int
	addbackoff_base_seconds *int
	backoff_cap_seconds     *int
	addbackoff_cap_seconds  *int
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*RetryJob, error)
	predicates              []predicate.RetryJob
}

var _ ent.Mutation = (*RetryJobMutation)(nil)

// retryjobOption allows management of the mutation configuration using functional options.
type retryjobOption func(*RetryJobMutation)

// newRetryJobMutation creates new mutation for the RetryJob entity.
func newRetryJobMutation(c config, op Op, opts ...retryjobOption) *RetryJobMutation {
	m := &RetryJobMutation{
		config:        c,
		op:            op,
		typ:           TypeRetryJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRetryJobID sets the ID field of the mutation.
func withRetryJobID(id string) retryjobOption {
	return func(m *RetryJobMutation) {
		var (
			err   error
			once  sync.Once
			value *RetryJob
		)
		m.oldValue = func(ctx context.Context) (*RetryJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RetryJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRetryJob sets the old RetryJob of the mutation.
func withRetryJob(node *RetryJob) retryjobOption {
	return func(m *RetryJobMutation) {
		m.oldValue = func(context.Context) (*RetryJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RetryJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RetryJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RetryJob entities.
func (m *RetryJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RetryJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RetryJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RetryJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobType sets the "job_type" field.
func (m *RetryJobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *RetryJobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the RetryJob entity.
// If the RetryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetryJobMutation) OldJobType(ctx context.Context) (v string, err error) {
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
func (m *RetryJobMutation) ResetJobType() {
	m.job_type = nil
}

// SetTargetEntityRef sets the "target_entity_ref" field.
func (m *RetryJobMutation) SetTargetEntityRef(s string) {
	m.target_entity_ref = &s
}

// TargetEntityRef returns the value of the "target_entity_ref" field in the mutation.
func (m *RetryJobMutation) TargetEntityRef() (r string, exists bool) {
	v := m.target_entity_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetEntityRef returns the old "target_entity_ref" field's value of the RetryJob entity.
// If the RetryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetryJobMutation) OldTargetEntityRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetEntityRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetEntityRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetEntityRef: %w", err)
	}
	return oldValue.TargetEntityRef, nil
}

// ResetTargetEntityRef resets all changes to the "target_entity_ref" field.
func (m *RetryJobMutation) ResetTargetEntityRef() {
	m.target_entity_ref = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *RetryJobMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *RetryJobMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the RetryJob entity.
// If the RetryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetryJobMutation) OldNextAttemptAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *RetryJobMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
}

// SetAttempts sets the "attempts" field.
func (m *RetryJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *RetryJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the RetryJob entity.
// If the RetryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetryJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *RetryJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *RetryJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *RetryJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *RetryJobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *RetryJobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the RetryJob entity.
// If the RetryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetryJobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *RetryJobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *RetryJobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *RetryJobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetBackoffBaseSeconds sets the "backoff_base_seconds" field.
func (m *RetryJobMutation) SetBackoffBaseSeconds(i int) {
	m.backoff_base_seconds = &i
	m.addbackoff_base_seconds = nil
}

// BackoffBaseSeconds returns the value of the "backoff_base_seconds" field in the mutation.
func (m *RetryJobMutation) BackoffBaseSeconds() (r int, exists bool) {
	v := m.backoff_base_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldBackoffBaseSeconds returns the old "backoff_base_seconds" field's value of the RetryJob entity.
// If the RetryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetryJobMutation) OldBackoffBaseSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackoffBaseSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackoffBaseSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackoffBaseSeconds: %w", err)
	}
	return oldValue.BackoffBaseSeconds, nil
}

// AddBackoffBaseSeconds adds i to the "backoff_base_seconds" field.
func (m *RetryJobMutation) AddBackoffBaseSeconds(i int) {
	if m.addbackoff_base_seconds != nil {
		*m.addbackoff_base_seconds += i
	} else {
		m.addbackoff_base_seconds = &i
	}
}

// AddedBackoffBaseSeconds returns the value that was added to the "backoff_base_seconds" field in this mutation.
func (m *RetryJobMutation) AddedBackoffBaseSeconds() (r int, exists bool) {
	v := m.addbackoff_base_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetBackoffBaseSeconds resets all changes to the "backoff_base_seconds" field.
func (m *RetryJobMutation) ResetBackoffBaseSeconds() {
	m.backoff_base_seconds = nil
	m.addbackoff_base_seconds = nil
}

// SetBackoffCapSeconds sets the "backoff_cap_seconds" field.
func (m *RetryJobMutation) SetBackoffCapSeconds(i int) {
	m.backoff_cap_seconds = &i
	m.addbackoff_cap_seconds = nil
}

// BackoffCapSeconds returns the value of the "backoff_cap_seconds" field in the mutation.
func (m *RetryJobMutation) BackoffCapSeconds() (r int, exists bool) {
	v := m.backoff_cap_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldBackoffCapSeconds returns the old "backoff_cap_seconds" field's value of the RetryJob entity.
// If the RetryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetryJobMutation) OldBackoffCapSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackoffCapSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackoffCapSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackoffCapSeconds: %w", err)
	}
	return oldValue.BackoffCapSeconds, nil
}

// AddBackoffCapSeconds adds i to the "backoff_cap_seconds" field.
func (m *RetryJobMutation) AddBackoffCapSeconds(i int) {
	if m.addbackoff_cap_seconds != nil {
		*m.addbackoff_cap_seconds += i
	} else {
		m.addbackoff_cap_seconds = &i
	}
}

// AddedBackoffCapSeconds returns the value that was added to the "backoff_cap_seconds" field in this mutation.
func (m *RetryJobMutation) AddedBackoffCapSeconds() (r int, exists bool) {
	v := m.addbackoff_cap_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetBackoffCapSeconds resets all changes to the "backoff_cap_seconds" field.
func (m *RetryJobMutation) ResetBackoffCapSeconds() {
	m.backoff_cap_seconds = nil
	m.addbackoff_cap_seconds = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RetryJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RetryJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RetryJob entity.
// If the RetryJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RetryJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RetryJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RetryJobMutation builder.
func (m *RetryJobMutation) Where(ps ...predicate.RetryJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RetryJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RetryJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RetryJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RetryJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RetryJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RetryJob).
func (m *RetryJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RetryJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.job_type != nil {
		fields = append(fields, retryjob.FieldJobType)
	}
	if m.target_entity_ref != nil {
		fields = append(fields, retryjob.FieldTargetEntityRef)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, retryjob.FieldNextAttemptAt)
	}
	if m.attempts != nil {
		fields = append(fields, retryjob.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, retryjob.FieldMaxAttempts)
	}
	if m.backoff_base_seconds != nil {
		fields = append(fields, retryjob.FieldBackoffBaseSeconds)
	}
	if m.backoff_cap_seconds != nil {
		fields = append(fields, retryjob.FieldBackoffCapSeconds)
	}
	if m.created_at != nil {
		fields = append(fields, retryjob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RetryJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case retryjob.FieldJobType:
		return m.JobType()
	case retryjob.FieldTargetEntityRef:
		return m.TargetEntityRef()
	case retryjob.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case retryjob.FieldAttempts:
		return m.Attempts()
	case retryjob.FieldMaxAttempts:
		return m.MaxAttempts()
	case retryjob.FieldBackoffBaseSeconds:
		return m.BackoffBaseSeconds()
	case retryjob.FieldBackoffCapSeconds:
		return m.BackoffCapSeconds()
	case retryjob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RetryJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case retryjob.FieldJobType:
		return m.OldJobType(ctx)
	case retryjob.FieldTargetEntityRef:
		return m.OldTargetEntityRef(ctx)
	case retryjob.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case retryjob.FieldAttempts:
		return m.OldAttempts(ctx)
	case retryjob.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case retryjob.FieldBackoffBaseSeconds:
		return m.OldBackoffBaseSeconds(ctx)
	case retryjob.FieldBackoffCapSeconds:
		return m.OldBackoffCapSeconds(ctx)
	case retryjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RetryJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RetryJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case retryjob.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case retryjob.FieldTargetEntityRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetEntityRef(v)
		return nil
	case retryjob.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case retryjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case retryjob.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case retryjob.FieldBackoffBaseSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackoffBaseSeconds(v)
		return nil
	case retryjob.FieldBackoffCapSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackoffCapSeconds(v)
		return nil
	case retryjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RetryJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RetryJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, retryjob.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, retryjob.FieldMaxAttempts)
	}
	if m.addbackoff_base_seconds != nil {
		fields = append(fields, retryjob.FieldBackoffBaseSeconds)
	}
	if m.addbackoff_cap_seconds != nil {
		fields = append(fields, retryjob.FieldBackoffCapSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RetryJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case retryjob.FieldAttempts:
		return m.AddedAttempts()
	case retryjob.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case retryjob.FieldBackoffBaseSeconds:
		return m.AddedBackoffBaseSeconds()
	case retryjob.FieldBackoffCapSeconds:
		return m.AddedBackoffCapSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RetryJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case retryjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case retryjob.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case retryjob.FieldBackoffBaseSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBackoffBaseSeconds(v)
		return nil
	case retryjob.FieldBackoffCapSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBackoffCapSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown RetryJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RetryJobMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RetryJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RetryJobMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RetryJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RetryJobMutation) ResetField(name string) error {
	switch name {
	case retryjob.FieldJobType:
		m.ResetJobType()
		return nil
	case retryjob.FieldTargetEntityRef:
		m.ResetTargetEntityRef()
		return nil
	case retryjob.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case retryjob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case retryjob.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case retryjob.FieldBackoffBaseSeconds:
		m.ResetBackoffBaseSeconds()
		return nil
	case retryjob.FieldBackoffCapSeconds:
		m.ResetBackoffCapSeconds()
		return nil
	case retryjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RetryJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RetryJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RetryJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RetryJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RetryJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RetryJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RetryJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RetryJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RetryJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RetryJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RetryJob edge %s", name)
}

// RoutingRuleMutation represents an operation that mutates the RoutingRule nodes in the graph.
type RoutingRuleMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	org_id                *string
	name                  *string
	priority              *int
	addpriority           *int
	enabled               *bool
	test_mode             *bool
	match_level           *string
	match_environment     *string
	match_release_pattern *string
	match_title_pattern   *string
	target                *map[string]interface{}
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*RoutingRule, error)
	predicates            []predicate.RoutingRule
}

var _ ent.Mutation = (*RoutingRuleMutation)(nil)

// routingruleOption allows management of the mutation configuration using functional options.
type routingruleOption func(*RoutingRuleMutation)

// newRoutingRuleMutation creates new mutation for the RoutingRule entity.
func newRoutingRuleMutation(c config, op Op, opts ...routingruleOption) *RoutingRuleMutation {
	m := &RoutingRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeRoutingRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoutingRuleID sets the ID field of the mutation.
func withRoutingRuleID(id string) routingruleOption {
	return func(m *RoutingRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *RoutingRule
		)
		m.oldValue = func(ctx context.Context) (*RoutingRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoutingRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoutingRule sets the old RoutingRule of the mutation.
func withRoutingRule(node *RoutingRule) routingruleOption {
	return func(m *RoutingRuleMutation) {
		m.oldValue = func(context.Context) (*RoutingRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoutingRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoutingRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RoutingRule entities.
func (m *RoutingRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoutingRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoutingRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoutingRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *RoutingRuleMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *RoutingRuleMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the RoutingRule entity.
// If the RoutingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingRuleMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *RoutingRuleMutation) ResetOrgID() {
	m.org_id = nil
}

// SetName sets the "name" field.
func (m *RoutingRuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RoutingRuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RoutingRule entity.
// If the RoutingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingRuleMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *RoutingRuleMutation) ResetName() {
	m.name = nil
}

// SetPriority sets the "priority" field.
func (m *RoutingRuleMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *RoutingRuleMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the RoutingRule entity.
// If the RoutingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingRuleMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *RoutingRuleMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *RoutingRuleMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *RoutingRuleMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetEnabled sets the "enabled" field.
func (m *RoutingRuleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *RoutingRuleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the RoutingRule entity.
// If the RoutingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingRuleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *RoutingRuleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetTestMode sets the "test_mode" field.
func (m *RoutingRuleMutation) SetTestMode(b bool) {
	m.test_mode = &b
}

// TestMode returns the value of the "test_mode" field in the mutation.
func (m *RoutingRuleMutation) TestMode() (r bool, exists bool) {
	v := m.test_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldTestMode returns the old "test_mode" field's value of the RoutingRule entity.
// If the RoutingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingRuleMutation) OldTestMode(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestMode: %w", err)
	}
	return oldValue.TestMode, nil
}

// ResetTestMode resets all changes to the "test_mode" field.
func (m *RoutingRuleMutation) ResetTestMode() {
	m.test_mode = nil
}

// SetMatchLevel sets the "match_level" field.
func (m *RoutingRuleMutation) SetMatchLevel(s string) {
	m.match_level = &s
}

// MatchLevel returns the value of the "match_level" field in the mutation.
func (m *RoutingRuleMutation) MatchLevel() (r string, exists bool) {
	v := m.match_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchLevel returns the old "match_level" field's value of the RoutingRule entity.
// If the RoutingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingRuleMutation) OldMatchLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchLevel: %w", err)
	}
	return oldValue.MatchLevel, nil
}

// ClearMatchLevel clears the value of the "match_level" field.
func (m *RoutingRuleMutation) ClearMatchLevel() {
	m.match_level = nil
	m.clearedFields[routingrule.FieldMatchLevel] = struct{}{}
}

// MatchLevelCleared returns if the "match_level" field was cleared in this mutation.
func (m *RoutingRuleMutation) MatchLevelCleared() bool {
	_, ok := m.clearedFields[routingrule.FieldMatchLevel]
	return ok
}

// ResetMatchLevel resets all changes to the "match_level" field.
func (m *RoutingRuleMutation) ResetMatchLevel() {
	m.match_level = nil
	delete(m.clearedFields, routingrule.FieldMatchLevel)
}

// SetMatchEnvironment sets the "match_environment" field.
func (m *RoutingRuleMutation) SetMatchEnvironment(s string) {
	m.match_environment = &s
}

// MatchEnvironment returns the value of the "match_environment" field in the mutation.
func (m *RoutingRuleMutation) MatchEnvironment() (r string, exists bool) {
	v := m.match_environment
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchEnvironment returns the old "match_environment" field's value of the RoutingRule entity.
// If the RoutingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingRuleMutation) OldMatchEnvironment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchEnvironment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchEnvironment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchEnvironment: %w", err)
	}
	return oldValue.MatchEnvironment, nil
}

// ClearMatchEnvironment clears the value of the "match_environment" field.
func (m *RoutingRuleMutation) ClearMatchEnvironment() {
	m.match_environment = nil
	m.clearedFields[routingrule.FieldMatchEnvironment] = struct{}{}
}

// MatchEnvironmentCleared returns if the "match_environment" field was cleared in this mutation.
func (m *RoutingRuleMutation) MatchEnvironmentCleared() bool {
	_, ok := m.clearedFields[routingrule.FieldMatchEnvironment]
	return ok
}

// ResetMatchEnvironment resets all changes to the "match_environment" field.
func (m *RoutingRuleMutation) ResetMatchEnvironment() {
	m.match_environment = nil
	delete(m.clearedFields, routingrule.FieldMatchEnvironment)
}

// SetMatchReleasePattern sets the "match_release_pattern" field.
func (m *RoutingRuleMutation) SetMatchReleasePattern(s string) {
	m.match_release_pattern = &s
}

// MatchReleasePattern returns the value of the "match_release_pattern" field in the mutation.
func (m *RoutingRuleMutation) MatchReleasePattern() (r string, exists bool) {
	v := m.match_release_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchReleasePattern returns the old "match_release_pattern" field's value of the RoutingRule entity.
// If the RoutingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingRuleMutation) OldMatchReleasePattern(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchReleasePattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchReleasePattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchReleasePattern: %w", err)
	}
	return oldValue.MatchReleasePattern, nil
}

// ClearMatchReleasePattern clears the value of the "match_release_pattern" field.
func (m *RoutingRuleMutation) ClearMatchReleasePattern() {
	m.match_release_pattern = nil
	m.clearedFields[routingrule.FieldMatchReleasePattern] = struct{}{}
}

// MatchReleasePatternCleared returns if the "match_release_pattern" field was cleared in this mutation.
func (m *RoutingRuleMutation) MatchReleasePatternCleared() bool {
	_, ok := m.clearedFields[routingrule.FieldMatchReleasePattern]
	return ok
}

// ResetMatchReleasePattern resets all changes to the "match_release_pattern" field.
func (m *RoutingRuleMutation) ResetMatchReleasePattern() {
	m.match_release_pattern = nil
	delete(m.clearedFields, routingrule.FieldMatchReleasePattern)
}

// SetMatchTitlePattern sets the "match_title_pattern" field.
func (m *RoutingRuleMutation) SetMatchTitlePattern(s string) {
	m.match_title_pattern = &s
}

// MatchTitlePattern returns the value of the "match_title_pattern" field in the mutation.
func (m *RoutingRuleMutation) MatchTitlePattern() (r string, exists bool) {
	v := m.match_title_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchTitlePattern returns the old "match_title_pattern" field's value of the RoutingRule entity.
// If the RoutingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingRuleMutation) OldMatchTitlePattern(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchTitlePattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchTitlePattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchTitlePattern: %w", err)
	}
	return oldValue.MatchTitlePattern, nil
}

// ClearMatchTitlePattern clears the value of the "match_title_pattern" field.
func (m *RoutingRuleMutation) ClearMatchTitlePattern() {
	m.match_title_pattern = nil
	m.clearedFields[routingrule.FieldMatchTitlePattern] = struct{}{}
}

// MatchTitlePatternCleared returns if the "match_title_pattern" field was cleared in this mutation.
func (m *RoutingRuleMutation) MatchTitlePatternCleared() bool {
	_, ok := m.clearedFields[routingrule.FieldMatchTitlePattern]
	return ok
}

// ResetMatchTitlePattern resets all changes to the "match_title_pattern" field.
func (m *RoutingRuleMutation) ResetMatchTitlePattern() {
	m.match_title_pattern = nil
	delete(m.clearedFields, routingrule.FieldMatchTitlePattern)
}

// SetTarget sets the "target" field.
func (m *RoutingRuleMutation) SetTarget(value map[string]interface{}) {
	m.target = &value
}

// Target returns the value of the "target" field in the mutation.
func (m *RoutingRuleMutation) Target() (r map[string]interface{}, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the RoutingRule entity.
// If the RoutingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingRuleMutation) OldTarget(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// ClearTarget clears the value of the "target" field.
func (m *RoutingRuleMutation) ClearTarget() {
	m.target = nil
	m.clearedFields[routingrule.FieldTarget] = struct{}{}
}

// TargetCleared returns if the "target" field was cleared in this mutation.
func (m *RoutingRuleMutation) TargetCleared() bool {
	_, ok := m.clearedFields[routingrule.FieldTarget]
	return ok
}

// ResetTarget resets all changes to the "target" field.
func (m *RoutingRuleMutation) ResetTarget() {
	m.target = nil
	delete(m.clearedFields, routingrule.FieldTarget)
}

// SetCreatedAt sets the "created_at" field.
func (m *RoutingRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoutingRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RoutingRule entity.
// If the RoutingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RoutingRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RoutingRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RoutingRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RoutingRule entity.
// If the RoutingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RoutingRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RoutingRuleMutation builder.
func (m *RoutingRuleMutation) Where(ps ...predicate.RoutingRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoutingRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoutingRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoutingRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoutingRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoutingRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoutingRule).
func (m *RoutingRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoutingRuleMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.org_id != nil {
		fields = append(fields, routingrule.FieldOrgID)
	}
	if m.name != nil {
		fields = append(fields, routingrule.FieldName)
	}
	if m.priority != nil {
		fields = append(fields, routingrule.FieldPriority)
	}
	if m.enabled != nil {
		fields = append(fields, routingrule.FieldEnabled)
	}
	if m.test_mode != nil {
		fields = append(fields, routingrule.FieldTestMode)
	}
	if m.match_level != nil {
		fields = append(fields, routingrule.FieldMatchLevel)
	}
	if m.match_environment != nil {
		fields = append(fields, routingrule.FieldMatchEnvironment)
	}
	if m.match_release_pattern != nil {
		fields = append(fields, routingrule.FieldMatchReleasePattern)
	}
	if m.match_title_pattern != nil {
		fields = append(fields, routingrule.FieldMatchTitlePattern)
	}
	if m.target != nil {
		fields = append(fields, routingrule.FieldTarget)
	}
	if m.created_at != nil {
		fields = append(fields, routingrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, routingrule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoutingRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case routingrule.FieldOrgID:
		return m.OrgID()
	case routingrule.FieldName:
		return m.Name()
	case routingrule.FieldPriority:
		return m.Priority()
	case routingrule.FieldEnabled:
		return m.Enabled()
	case routingrule.FieldTestMode:
		return m.TestMode()
	case routingrule.FieldMatchLevel:
		return m.MatchLevel()
	case routingrule.FieldMatchEnvironment:
		return m.MatchEnvironment()
	case routingrule.FieldMatchReleasePattern:
		return m.MatchReleasePattern()
	case routingrule.FieldMatchTitlePattern:
		return m.MatchTitlePattern()
	case routingrule.FieldTarget:
		return m.Target()
	case routingrule.FieldCreatedAt:
		return m.CreatedAt()
	case routingrule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoutingRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case routingrule.FieldOrgID:
		return m.OldOrgID(ctx)
	case routingrule.FieldName:
		return m.OldName(ctx)
	case routingrule.FieldPriority:
		return m.OldPriority(ctx)
	case routingrule.FieldEnabled:
		return m.OldEnabled(ctx)
	case routingrule.FieldTestMode:
		return m.OldTestMode(ctx)
	case routingrule.FieldMatchLevel:
		return m.OldMatchLevel(ctx)
	case routingrule.FieldMatchEnvironment:
		return m.OldMatchEnvironment(ctx)
	case routingrule.FieldMatchReleasePattern:
		return m.OldMatchReleasePattern(ctx)
	case routingrule.FieldMatchTitlePattern:
		return m.OldMatchTitlePattern(ctx)
	case routingrule.FieldTarget:
		return m.OldTarget(ctx)
	case routingrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case routingrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RoutingRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutingRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case routingrule.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case routingrule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case routingrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case routingrule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case routingrule.FieldTestMode:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestMode(v)
		return nil
	case routingrule.FieldMatchLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchLevel(v)
		return nil
	case routingrule.FieldMatchEnvironment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchEnvironment(v)
		return nil
	case routingrule.FieldMatchReleasePattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchReleasePattern(v)
		return nil
	case routingrule.FieldMatchTitlePattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchTitlePattern(v)
		return nil
	case routingrule.FieldTarget:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case routingrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case routingrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RoutingRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoutingRuleMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, routingrule.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoutingRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case routingrule.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutingRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case routingrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown RoutingRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoutingRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(routingrule.FieldMatchLevel) {
		fields = append(fields, routingrule.FieldMatchLevel)
	}
	if m.FieldCleared(routingrule.FieldMatchEnvironment) {
		fields = append(fields, routingrule.FieldMatchEnvironment)
	}
	if m.FieldCleared(routingrule.FieldMatchReleasePattern) {
		fields = append(fields, routingrule.FieldMatchReleasePattern)
	}
	if m.FieldCleared(routingrule.FieldMatchTitlePattern) {
		fields = append(fields, routingrule.FieldMatchTitlePattern)
	}
	if m.FieldCleared(routingrule.FieldTarget) {
		fields = append(fields, routingrule.FieldTarget)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoutingRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoutingRuleMutation) ClearField(name string) error {
	switch name {
	case routingrule.FieldMatchLevel:
		m.ClearMatchLevel()
		return nil
	case routingrule.FieldMatchEnvironment:
		m.ClearMatchEnvironment()
		return nil
	case routingrule.FieldMatchReleasePattern:
		m.ClearMatchReleasePattern()
		return nil
	case routingrule.FieldMatchTitlePattern:
		m.ClearMatchTitlePattern()
		return nil
	case routingrule.FieldTarget:
		m.ClearTarget()
		return nil
	}
	return fmt.Errorf("unknown RoutingRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoutingRuleMutation) ResetField(name string) error {
	switch name {
	case routingrule.FieldOrgID:
		m.ResetOrgID()
		return nil
	case routingrule.FieldName:
		m.ResetName()
		return nil
	case routingrule.FieldPriority:
		m.ResetPriority()
		return nil
	case routingrule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case routingrule.FieldTestMode:
		m.ResetTestMode()
		return nil
	case routingrule.FieldMatchLevel:
		m.ResetMatchLevel()
		return nil
	case routingrule.FieldMatchEnvironment:
		m.ResetMatchEnvironment()
		return nil
	case routingrule.FieldMatchReleasePattern:
		m.ResetMatchReleasePattern()
		return nil
	case routingrule.FieldMatchTitlePattern:
		m.ResetMatchTitlePattern()
		return nil
	case routingrule.FieldTarget:
		m.ResetTarget()
		return nil
	case routingrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case routingrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RoutingRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoutingRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoutingRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoutingRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoutingRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoutingRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoutingRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoutingRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RoutingRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoutingRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RoutingRule edge %s", name)
}

// SequenceExecutionMutation represents an operation that mutates the SequenceExecution nodes in the graph.
type SequenceExecutionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	org_id               *string
	user_id              *string
	sequence_key         *string
	status               *sequenceexecution.Status
	input_trigger        *map[string]interface{}
	input_context        *map[string]interface{}
	step_results         *[]map[string]interface{}
	appendstep_results   []map[string]interface{}
	failed_step_index    *int
	addfailed_step_index *int
	is_simulation        *bool
	started_at           *time.Time
	finished_at          *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SequenceExecution, error)
	predicates           []predicate.SequenceExecution
}

var _ ent.Mutation = (*SequenceExecutionMutation)(nil)

// sequenceexecutionOption allows management of the mutation configuration using functional options.
type sequenceexecutionOption func(*SequenceExecutionMutation)

// newSequenceExecutionMutation creates new mutation for the SequenceExecution entity.
func newSequenceExecutionMutation(c config, op Op, opts ...sequenceexecutionOption) *SequenceExecutionMutation {
	m := &SequenceExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeSequenceExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSequenceExecutionID sets the ID field of the mutation.
func withSequenceExecutionID(id string) sequenceexecutionOption {
	return func(m *SequenceExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *SequenceExecution
		)
		m.oldValue = func(ctx context.Context) (*SequenceExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SequenceExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSequenceExecution sets the old SequenceExecution of the mutation.
func withSequenceExecution(node *SequenceExecution) sequenceexecutionOption {
	return func(m *SequenceExecutionMutation) {
		m.oldValue = func(context.Context) (*SequenceExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SequenceExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SequenceExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SequenceExecution entities.
func (m *SequenceExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SequenceExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SequenceExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SequenceExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *SequenceExecutionMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *SequenceExecutionMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the SequenceExecution entity.
// If the SequenceExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SequenceExecutionMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *SequenceExecutionMutation) ResetOrgID() {
	m.org_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SequenceExecutionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SequenceExecutionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SequenceExecution entity.
// If the SequenceExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SequenceExecutionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SequenceExecutionMutation) ResetUserID() {
	m.user_id = nil
}

// SetSequenceKey sets the "sequence_key" field.
func (m *SequenceExecutionMutation) SetSequenceKey(s string) {
	m.sequence_key = &s
}

// SequenceKey returns the value of the "sequence_key" field in the mutation.
func (m *SequenceExecutionMutation) SequenceKey() (r string, exists bool) {
	v := m.sequence_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceKey returns the old "sequence_key" field's value of the SequenceExecution entity.
// If the SequenceExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SequenceExecutionMutation) OldSequenceKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceKey: %w", err)
	}
	return oldValue.SequenceKey, nil
}

// ResetSequenceKey resets all changes to the "sequence_key" field.
func (m *SequenceExecutionMutation) ResetSequenceKey() {
	m.sequence_key = nil
}

// SetStatus sets the "status" field.
func (m *SequenceExecutionMutation) SetStatus(s sequenceexecution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SequenceExecutionMutation) Status() (r sequenceexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SequenceExecution entity.
// If the SequenceExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SequenceExecutionMutation) OldStatus(ctx context.Context) (v sequenceexecution.Status, err error) {
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
func (m *SequenceExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetInputTrigger sets the "input_trigger" field.
func (m *SequenceExecutionMutation) SetInputTrigger(value map[string]interface{}) {
	m.input_trigger = &value
}

// InputTrigger returns the value of the "input_trigger" field in the mutation.
func (m *SequenceExecutionMutation) InputTrigger() (r map[string]interface{}, exists bool) {
	v := m.input_trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTrigger returns the old "input_trigger" field's value of the SequenceExecution entity.
// If the SequenceExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SequenceExecutionMutation) OldInputTrigger(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTrigger: %w", err)
	}
	return oldValue.InputTrigger, nil
}

// ClearInputTrigger clears the value of the "input_trigger" field.
func (m *SequenceExecutionMutation) ClearInputTrigger() {
	m.input_trigger = nil
	m.clearedFields[sequenceexecution.FieldInputTrigger] = struct{}{}
}

// InputTriggerCleared returns if the "input_trigger" field was cleared in this mutation.
func (m *SequenceExecutionMutation) InputTriggerCleared() bool {
	_, ok := m.clearedFields[sequenceexecution.FieldInputTrigger]
	return ok
}

// ResetInputTrigger resets all changes to the "input_trigger" field.
func (m *SequenceExecutionMutation) ResetInputTrigger() {
	m.input_trigger = nil
	delete(m.clearedFields, sequenceexecution.FieldInputTrigger)
}

// SetInputContext sets the "input_context" field.
func (m *SequenceExecutionMutation) SetInputContext(value map[string]interface{}) {
	m.input_context = &value
}

// InputContext returns the value of the "input_context" field in the mutation.
func (m *SequenceExecutionMutation) InputContext() (r map[string]interface{}, exists bool) {
	v := m.input_context
	if v == nil {
		return
	}
	return *v, true
}

// OldInputContext returns the old "input_context" field's value of the SequenceExecution entity.
// If the SequenceExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SequenceExecutionMutation) OldInputContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputContext: %w", err)
	}
	return oldValue.InputContext, nil
}

// ClearInputContext clears the value of the "input_context" field.
func (m *SequenceExecutionMutation) ClearInputContext() {
	m.input_context = nil
	m.clearedFields[sequenceexecution.FieldInputContext] = struct{}{}
}

// InputContextCleared returns if the "input_context" field was cleared in this mutation.
func (m *SequenceExecutionMutation) InputContextCleared() bool {
	_, ok := m.clearedFields[sequenceexecution.FieldInputContext]
	return ok
}

// ResetInputContext resets all changes to the "input_context" field.
func (m *SequenceExecutionMutation) ResetInputContext() {
	m.input_context = nil
	delete(m.clearedFields, sequenceexecution.FieldInputContext)
}

// SetStepResults sets the "step_results" field.
func (m *SequenceExecutionMutation) SetStepResults(value []map[string]interface{}) {
	m.step_results = &value
	m.appendstep_results = nil
}

// StepResults returns the value of the "step_results" field in the mutation.
func (m *SequenceExecutionMutation) StepResults() (r []map[string]interface{}, exists bool) {
	v := m.step_results
	if v == nil {
		return
	}
	return *v, true
}

// OldStepResults returns the old "step_results" field's value of the SequenceExecution entity.
// If the SequenceExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SequenceExecutionMutation) OldStepResults(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepResults: %w", err)
	}
	return oldValue.StepResults, nil
}

// AppendStepResults adds value to the "step_results" field.
func (m *SequenceExecutionMutation) AppendStepResults(value []map[string]interface{}) {
	m.appendstep_results = append(m.appendstep_results, value...)
}

// AppendedStepResults returns the list of values that were appended to the "step_results" field in this mutation.
func (m *SequenceExecutionMutation) AppendedStepResults() ([]map[string]interface{}, bool) {
	if len(m.appendstep_results) == 0 {
		return nil, false
	}
	return m.appendstep_results, true
}

// ClearStepResults clears the value of the "step_results" field.
func (m *SequenceExecutionMutation) ClearStepResults() {
	m.step_results = nil
	m.appendstep_results = nil
	m.clearedFields[sequenceexecution.FieldStepResults] = struct{}{}
}

// StepResultsCleared returns if the "step_results" field was cleared in this mutation.
func (m *SequenceExecutionMutation) StepResultsCleared() bool {
	_, ok := m.clearedFields[sequenceexecution.FieldStepResults]
	return ok
}

// ResetStepResults resets all changes to the "step_results" field.
func (m *SequenceExecutionMutation) ResetStepResults() {
	m.step_results = nil
	m.appendstep_results = nil
	delete(m.clearedFields, sequenceexecution.FieldStepResults)
}

// SetFailedStepIndex sets the "failed_step_index" field.
func (m *SequenceExecutionMutation) SetFailedStepIndex(i int) {
	m.failed_step_index = &i
	m.addfailed_step_index = nil
}

// FailedStepIndex returns the value of the "failed_step_index" field in the mutation.
func (m *SequenceExecutionMutation) FailedStepIndex() (r int, exists bool) {
	v := m.failed_step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedStepIndex returns the old "failed_step_index" field's value of the SequenceExecution entity.
// If the SequenceExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SequenceExecutionMutation) OldFailedStepIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedStepIndex: %w", err)
	}
	return oldValue.FailedStepIndex, nil
}

// AddFailedStepIndex adds i to the "failed_step_index" field.
func (m *SequenceExecutionMutation) AddFailedStepIndex(i int) {
	if m.addfailed_step_index != nil {
		*m.addfailed_step_index += i
	} else {
		m.addfailed_step_index = &i
	}
}

// AddedFailedStepIndex returns the value that was added to the "failed_step_index" field in this mutation.
func (m *SequenceExecutionMutation) AddedFailedStepIndex() (r int, exists bool) {
	v := m.addfailed_step_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearFailedStepIndex clears the value of the "failed_step_index" field.
func (m *SequenceExecutionMutation) ClearFailedStepIndex() {
	m.failed_step_index = nil
	m.addfailed_step_index = nil
	m.clearedFields[sequenceexecution.FieldFailedStepIndex] = struct{}{}
}

// FailedStepIndexCleared returns if the "failed_step_index" field was cleared in this mutation.
func (m *SequenceExecutionMutation) FailedStepIndexCleared() bool {
	_, ok := m.clearedFields[sequenceexecution.FieldFailedStepIndex]
	return ok
}

// ResetFailedStepIndex resets all changes to the "failed_step_index" field.
func (m *SequenceExecutionMutation) ResetFailedStepIndex() {
	m.failed_step_index = nil
	m.addfailed_step_index = nil
	delete(m.clearedFields, sequenceexecution.FieldFailedStepIndex)
}

// SetIsSimulation sets the "is_simulation" field.
func (m *SequenceExecutionMutation) SetIsSimulation(b bool) {
	m.is_simulation = &b
}

// IsSimulation returns the value of the "is_simulation" field in the mutation.
func (m *SequenceExecutionMutation) IsSimulation() (r bool, exists bool) {
	v := m.is_simulation
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSimulation returns the old "is_simulation" field's value of the SequenceExecution entity.
// If the SequenceExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SequenceExecutionMutation) OldIsSimulation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSimulation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSimulation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSimulation: %w", err)
	}
	return oldValue.IsSimulation, nil
}

// ResetIsSimulation resets all changes to the "is_simulation" field.
func (m *SequenceExecutionMutation) ResetIsSimulation() {
	m.is_simulation = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SequenceExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SequenceExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SequenceExecution entity.
// If the SequenceExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SequenceExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
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

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SequenceExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *SequenceExecutionMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *SequenceExecutionMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the SequenceExecution entity.
// If the SequenceExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SequenceExecutionMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *SequenceExecutionMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[sequenceexecution.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *SequenceExecutionMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[sequenceexecution.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *SequenceExecutionMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, sequenceexecution.FieldFinishedAt)
}

// Where appends a list predicates to the SequenceExecutionMutation builder.
func (m *SequenceExecutionMutation) Where(ps ...predicate.SequenceExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SequenceExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SequenceExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SequenceExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SequenceExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SequenceExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SequenceExecution).
func (m *SequenceExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SequenceExecutionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.org_id != nil {
		fields = append(fields, sequenceexecution.FieldOrgID)
	}
	if m.user_id != nil {
		fields = append(fields, sequenceexecution.FieldUserID)
	}
	if m.sequence_key != nil {
		fields = append(fields, sequenceexecution.FieldSequenceKey)
	}
	if m.status != nil {
		fields = append(fields, sequenceexecution.FieldStatus)
	}
	if m.input_trigger != nil {
		fields = append(fields, sequenceexecution.FieldInputTrigger)
	}
	if m.input_context != nil {
		fields = append(fields, sequenceexecution.FieldInputContext)
	}
	if m.step_results != nil {
		fields = append(fields, sequenceexecution.FieldStepResults)
	}
	if m.failed_step_index != nil {
		fields = append(fields, sequenceexecution.FieldFailedStepIndex)
	}
	if m.is_simulation != nil {
		fields = append(fields, sequenceexecution.FieldIsSimulation)
	}
	if m.started_at != nil {
		fields = append(fields, sequenceexecution.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, sequenceexecution.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SequenceExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sequenceexecution.FieldOrgID:
		return m.OrgID()
	case sequenceexecution.FieldUserID:
		return m.UserID()
	case sequenceexecution.FieldSequenceKey:
		return m.SequenceKey()
	case sequenceexecution.FieldStatus:
		return m.Status()
	case sequenceexecution.FieldInputTrigger:
		return m.InputTrigger()
	case sequenceexecution.FieldInputContext:
		return m.InputContext()
	case sequenceexecution.FieldStepResults:
		return m.StepResults()
	case sequenceexecution.FieldFailedStepIndex:
		return m.FailedStepIndex()
	case sequenceexecution.FieldIsSimulation:
		return m.IsSimulation()
	case sequenceexecution.FieldStartedAt:
		return m.StartedAt()
	case sequenceexecution.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SequenceExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sequenceexecution.FieldOrgID:
		return m.OldOrgID(ctx)
	case sequenceexecution.FieldUserID:
		return m.OldUserID(ctx)
	case sequenceexecution.FieldSequenceKey:
		return m.OldSequenceKey(ctx)
	case sequenceexecution.FieldStatus:
		return m.OldStatus(ctx)
	case sequenceexecution.FieldInputTrigger:
		return m.OldInputTrigger(ctx)
	case sequenceexecution.FieldInputContext:
		return m.OldInputContext(ctx)
	case sequenceexecution.FieldStepResults:
		return m.OldStepResults(ctx)
	case sequenceexecution.FieldFailedStepIndex:
		return m.OldFailedStepIndex(ctx)
	case sequenceexecution.FieldIsSimulation:
		return m.OldIsSimulation(ctx)
	case sequenceexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case sequenceexecution.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SequenceExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SequenceExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sequenceexecution.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case sequenceexecution.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sequenceexecution.FieldSequenceKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceKey(v)
		return nil
	case sequenceexecution.FieldStatus:
		v, ok := value.(sequenceexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sequenceexecution.FieldInputTrigger:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTrigger(v)
		return nil
	case sequenceexecution.FieldInputContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputContext(v)
		return nil
	case sequenceexecution.FieldStepResults:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepResults(v)
		return nil
	case sequenceexecution.FieldFailedStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedStepIndex(v)
		return nil
	case sequenceexecution.FieldIsSimulation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSimulation(v)
		return nil
	case sequenceexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case sequenceexecution.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SequenceExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SequenceExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addfailed_step_index != nil {
		fields = append(fields, sequenceexecution.FieldFailedStepIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SequenceExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sequenceexecution.FieldFailedStepIndex:
		return m.AddedFailedStepIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SequenceExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sequenceexecution.FieldFailedStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedStepIndex(v)
		return nil
	}
	return fmt.Errorf("unknown SequenceExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SequenceExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sequenceexecution.FieldInputTrigger) {
		fields = append(fields, sequenceexecution.FieldInputTrigger)
	}
	if m.FieldCleared(sequenceexecution.FieldInputContext) {
		fields = append(fields, sequenceexecution.FieldInputContext)
	}
	if m.FieldCleared(sequenceexecution.FieldStepResults) {
		fields = append(fields, sequenceexecution.FieldStepResults)
	}
	if m.FieldCleared(sequenceexecution.FieldFailedStepIndex) {
		fields = append(fields, sequenceexecution.FieldFailedStepIndex)
	}
	if m.FieldCleared(sequenceexecution.FieldFinishedAt) {
		fields = append(fields, sequenceexecution.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SequenceExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SequenceExecutionMutation) ClearField(name string) error {
	switch name {
	case sequenceexecution.FieldInputTrigger:
		m.ClearInputTrigger()
		return nil
	case sequenceexecution.FieldInputContext:
		m.ClearInputContext()
		return nil
	case sequenceexecution.FieldStepResults:
		m.ClearStepResults()
		return nil
	case sequenceexecution.FieldFailedStepIndex:
		m.ClearFailedStepIndex()
		return nil
	case sequenceexecution.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown SequenceExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SequenceExecutionMutation) ResetField(name string) error {
	switch name {
	case sequenceexecution.FieldOrgID:
		m.ResetOrgID()
		return nil
	case sequenceexecution.FieldUserID:
		m.ResetUserID()
		return nil
	case sequenceexecution.FieldSequenceKey:
		m.ResetSequenceKey()
		return nil
	case sequenceexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case sequenceexecution.FieldInputTrigger:
		m.ResetInputTrigger()
		return nil
	case sequenceexecution.FieldInputContext:
		m.ResetInputContext()
		return nil
	case sequenceexecution.FieldStepResults:
		m.ResetStepResults()
		return nil
	case sequenceexecution.FieldFailedStepIndex:
		m.ResetFailedStepIndex()
		return nil
	case sequenceexecution.FieldIsSimulation:
		m.ResetIsSimulation()
		return nil
	case sequenceexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case sequenceexecution.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown SequenceExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SequenceExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SequenceExecutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SequenceExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SequenceExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SequenceExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SequenceExecutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SequenceExecutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SequenceExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SequenceExecutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SequenceExecution edge %s", name)
}

// SlackWorkspaceMutation represents an operation that mutates the SlackWorkspace nodes in the graph.
type SlackWorkspaceMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	org_id             *string
	team_id            *string
	bot_token          *string
	default_channel_id *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*SlackWorkspace, error)
	predicates         []predicate.SlackWorkspace
}

var _ ent.Mutation = (*SlackWorkspaceMutation)(nil)

// slackworkspaceOption allows management of the mutation configuration using functional options.
type slackworkspaceOption func(*SlackWorkspaceMutation)

// newSlackWorkspaceMutation creates new mutation for the SlackWorkspace entity.
func newSlackWorkspaceMutation(c config, op Op, opts ...slackworkspaceOption) *SlackWorkspaceMutation {
	m := &SlackWorkspaceMutation{
		config:        c,
		op:            op,
		typ:           TypeSlackWorkspace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSlackWorkspaceID sets the ID field of the mutation.
func withSlackWorkspaceID(id string) slackworkspaceOption {
	return func(m *SlackWorkspaceMutation) {
		var (
			err   error
			once  sync.Once
			value *SlackWorkspace
		)
		m.oldValue = func(ctx context.Context) (*SlackWorkspace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SlackWorkspace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSlackWorkspace sets the old SlackWorkspace of the mutation.
func withSlackWorkspace(node *SlackWorkspace) slackworkspaceOption {
	return func(m *SlackWorkspaceMutation) {
		m.oldValue = func(context.Context) (*SlackWorkspace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SlackWorkspaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SlackWorkspaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SlackWorkspace entities.
func (m *SlackWorkspaceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SlackWorkspaceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SlackWorkspaceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SlackWorkspace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *SlackWorkspaceMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *SlackWorkspaceMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the SlackWorkspace entity.
// If the SlackWorkspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlackWorkspaceMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *SlackWorkspaceMutation) ResetOrgID() {
	m.org_id = nil
}

// SetTeamID sets the "team_id" field.
func (m *SlackWorkspaceMutation) SetTeamID(s string) {
	m.team_id = &s
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *SlackWorkspaceMutation) TeamID() (r string, exists bool) {
	v := m.team_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the SlackWorkspace entity.
// If the SlackWorkspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlackWorkspaceMutation) OldTeamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *SlackWorkspaceMutation) ResetTeamID() {
	m.team_id = nil
}

// SetBotToken sets the "bot_token" field.
func (m *SlackWorkspaceMutation) SetBotToken(s string) {
	m.bot_token = &s
}

// BotToken returns the value of the "bot_token" field in the mutation.
func (m *SlackWorkspaceMutation) BotToken() (r string, exists bool) {
	v := m.bot_token
	if v == nil {
		return
	}
	return *v, true
}

// OldBotToken returns the old "bot_token" field's value of the SlackWorkspace entity.
// If the SlackWorkspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlackWorkspaceMutation) OldBotToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotToken: %w", err)
	}
	return oldValue.BotToken, nil
}

// ResetBotToken resets all changes to the "bot_token" field.
func (m *SlackWorkspaceMutation) ResetBotToken() {
	m.bot_token = nil
}

// SetDefaultChannelID sets the "default_channel_id" field.
func (m *SlackWorkspaceMutation) SetDefaultChannelID(s string) {
	m.default_channel_id = &s
}

// DefaultChannelID returns the value of the "default_channel_id" field in the mutation.
func (m *SlackWorkspaceMutation) DefaultChannelID() (r string, exists bool) {
	v := m.default_channel_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultChannelID returns the old "default_channel_id" field's value of the SlackWorkspace entity.
// If the SlackWorkspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlackWorkspaceMutation) OldDefaultChannelID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultChannelID: %w", err)
	}
	return oldValue.DefaultChannelID, nil
}

// ClearDefaultChannelID clears the value of the "default_channel_id" field.
func (m *SlackWorkspaceMutation) ClearDefaultChannelID() {
	m.default_channel_id = nil
	m.clearedFields[slackworkspace.FieldDefaultChannelID] = struct{}{}
}

// DefaultChannelIDCleared returns if the "default_channel_id" field was cleared in this mutation.
func (m *SlackWorkspaceMutation) DefaultChannelIDCleared() bool {
	_, ok := m.clearedFields[slackworkspace.FieldDefaultChannelID]
	return ok
}

// ResetDefaultChannelID resets all changes to the "default_channel_id" field.
func (m *SlackWorkspaceMutation) ResetDefaultChannelID() {
	m.default_channel_id = nil
	delete(m.clearedFields, slackworkspace.FieldDefaultChannelID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SlackWorkspaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SlackWorkspaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SlackWorkspace entity.
// If the SlackWorkspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlackWorkspaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SlackWorkspaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SlackWorkspaceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SlackWorkspaceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SlackWorkspace entity.
// If the SlackWorkspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlackWorkspaceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SlackWorkspaceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SlackWorkspaceMutation builder.
func (m *SlackWorkspaceMutation) Where(ps ...predicate.SlackWorkspace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SlackWorkspaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SlackWorkspaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SlackWorkspace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SlackWorkspaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SlackWorkspaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SlackWorkspace).
func (m *SlackWorkspaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SlackWorkspaceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.org_id != nil {
		fields = append(fields, slackworkspace.FieldOrgID)
	}
	if m.team_id != nil {
		fields = append(fields, slackworkspace.FieldTeamID)
	}
	if m.bot_token != nil {
		fields = append(fields, slackworkspace.FieldBotToken)
	}
	if m.default_channel_id != nil {
		fields = append(fields, slackworkspace.FieldDefaultChannelID)
	}
	if m.created_at != nil {
		fields = append(fields, slackworkspace.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, slackworkspace.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SlackWorkspaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case slackworkspace.FieldOrgID:
		return m.OrgID()
	case slackworkspace.FieldTeamID:
		return m.TeamID()
	case slackworkspace.FieldBotToken:
		return m.BotToken()
	case slackworkspace.FieldDefaultChannelID:
		return m.DefaultChannelID()
	case slackworkspace.FieldCreatedAt:
		return m.CreatedAt()
	case slackworkspace.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SlackWorkspaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case slackworkspace.FieldOrgID:
		return m.OldOrgID(ctx)
	case slackworkspace.FieldTeamID:
		return m.OldTeamID(ctx)
	case slackworkspace.FieldBotToken:
		return m.OldBotToken(ctx)
	case slackworkspace.FieldDefaultChannelID:
		return m.OldDefaultChannelID(ctx)
	case slackworkspace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case slackworkspace.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SlackWorkspace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlackWorkspaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case slackworkspace.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case slackworkspace.FieldTeamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case slackworkspace.FieldBotToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotToken(v)
		return nil
	case slackworkspace.FieldDefaultChannelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultChannelID(v)
		return nil
	case slackworkspace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case slackworkspace.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SlackWorkspace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SlackWorkspaceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SlackWorkspaceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlackWorkspaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SlackWorkspace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SlackWorkspaceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(slackworkspace.FieldDefaultChannelID) {
		fields = append(fields, slackworkspace.FieldDefaultChannelID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SlackWorkspaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SlackWorkspaceMutation) ClearField(name string) error {
	switch name {
	case slackworkspace.FieldDefaultChannelID:
		m.ClearDefaultChannelID()
		return nil
	}
	return fmt.Errorf("unknown SlackWorkspace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SlackWorkspaceMutation) ResetField(name string) error {
	switch name {
	case slackworkspace.FieldOrgID:
		m.ResetOrgID()
		return nil
	case slackworkspace.FieldTeamID:
		m.ResetTeamID()
		return nil
	case slackworkspace.FieldBotToken:
		m.ResetBotToken()
		return nil
	case slackworkspace.FieldDefaultChannelID:
		m.ResetDefaultChannelID()
		return nil
	case slackworkspace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case slackworkspace.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SlackWorkspace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SlackWorkspaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SlackWorkspaceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SlackWorkspaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SlackWorkspaceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SlackWorkspaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SlackWorkspaceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SlackWorkspaceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SlackWorkspace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SlackWorkspaceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SlackWorkspace edge %s", name)
}

// UserMetricsMutation represents an operation that mutates the UserMetrics nodes in the graph.
type UserMetricsMutation struct {
	config
	op                                   Op
	typ                                  string
	id                                   *string
	user_id                              *string
	org_id                               *string
	last_app_active_at                   *time.Time
	last_slack_active_at                 *time.Time
	preferred_notification_frequency     *usermetrics.PreferredNotificationFrequency
	notification_fatigue_level           *int
	addnotification_fatigue_level        *int
	overall_engagement_score             *int
	addoverall_engagement_score          *int
	notifications_since_last_feedback    *int
	addnotifications_since_last_feedback *int
	last_feedback_requested_at           *time.Time
	updated_at                           *time.Time
	clearedFields                        map[string]struct{}
	done                                 bool
	oldValue                             func(context.Context) (*UserMetrics, error)
	predicates                           []predicate.UserMetrics
}

var _ ent.Mutation = (*UserMetricsMutation)(nil)

// usermetricsOption allows management of the mutation configuration using functional options.
type usermetricsOption func(*UserMetricsMutation)

// newUserMetricsMutation creates new mutation for the UserMetrics entity.
func newUserMetricsMutation(c config, op Op, opts ...usermetricsOption) *UserMetricsMutation {
	m := &UserMetricsMutation{
		config:        c,
		op:            op,
		typ:           TypeUserMetrics,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserMetricsID sets the ID field of the mutation.
func withUserMetricsID(id string) usermetricsOption {
	return func(m *UserMetricsMutation) {
		var (
			err   error
			once  sync.Once
			value *UserMetrics
		)
		m.oldValue = func(ctx context.Context) (*UserMetrics, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserMetrics.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserMetrics sets the old UserMetrics of the mutation.
func withUserMetrics(node *UserMetrics) usermetricsOption {
	return func(m *UserMetricsMutation) {
		m.oldValue = func(context.Context) (*UserMetrics, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMetricsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMetricsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserMetrics entities.
func (m *UserMetricsMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMetricsMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMetricsMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserMetrics.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserMetricsMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserMetricsMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserMetrics entity.
// If the UserMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMetricsMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserMetricsMutation) ResetUserID() {
	m.user_id = nil
}

// SetOrgID sets the "org_id" field.
func (m *UserMetricsMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *UserMetricsMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the UserMetrics entity.
// If the UserMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMetricsMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *UserMetricsMutation) ResetOrgID() {
	m.org_id = nil
}

// SetLastAppActiveAt sets the "last_app_active_at" field.
func (m *UserMetricsMutation) SetLastAppActiveAt(t time.Time) {
	m.last_app_active_at = &t
}

// LastAppActiveAt returns the value of the "last_app_active_at" field in the mutation.
func (m *UserMetricsMutation) LastAppActiveAt() (r time.Time, exists bool) {
	v := m.last_app_active_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAppActiveAt returns the old "last_app_active_at" field's value of the UserMetrics entity.
// If the UserMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMetricsMutation) OldLastAppActiveAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAppActiveAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAppActiveAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAppActiveAt: %w", err)
	}
	return oldValue.LastAppActiveAt, nil
}

// ClearLastAppActiveAt clears the value of the "last_app_active_at" field.
func (m *UserMetricsMutation) ClearLastAppActiveAt() {
	m.last_app_active_at = nil
	m.clearedFields[usermetrics.FieldLastAppActiveAt] = struct{}{}
}

// LastAppActiveAtCleared returns if the "last_app_active_at" field was cleared in this mutation.
func (m *UserMetricsMutation) LastAppActiveAtCleared() bool {
	_, ok := m.clearedFields[usermetrics.FieldLastAppActiveAt]
	return ok
}

// ResetLastAppActiveAt resets all changes to the "last_app_active_at" field.
func (m *UserMetricsMutation) ResetLastAppActiveAt() {
	m.last_app_active_at = nil
	delete(m.clearedFields, usermetrics.FieldLastAppActiveAt)
}

// SetLastSlackActiveAt sets the "last_slack_active_at" field.
func (m *UserMetricsMutation) SetLastSlackActiveAt(t time.Time) {
	m.last_slack_active_at = &t
}

// LastSlackActiveAt returns the value of the "last_slack_active_at" field in the mutation.
func (m *UserMetricsMutation) LastSlackActiveAt() (r time.Time, exists bool) {
	v := m.last_slack_active_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSlackActiveAt returns the old "last_slack_active_at" field's value of the UserMetrics entity.
// If the UserMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMetricsMutation) OldLastSlackActiveAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSlackActiveAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSlackActiveAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSlackActiveAt: %w", err)
	}
	return oldValue.LastSlackActiveAt, nil
}

// ClearLastSlackActiveAt clears the value of the "last_slack_active_at" field.
func (m *UserMetricsMutation) ClearLastSlackActiveAt() {
	m.last_slack_active_at = nil
	m.clearedFields[usermetrics.FieldLastSlackActiveAt] = struct{}{}
}

// LastSlackActiveAtCleared returns if the "last_slack_active_at" field was cleared in this mutation.
func (m *UserMetricsMutation) LastSlackActiveAtCleared() bool {
	_, ok := m.clearedFields[usermetrics.FieldLastSlackActiveAt]
	return ok
}

// ResetLastSlackActiveAt resets all changes to the "last_slack_active_at" field.
func (m *UserMetricsMutation) ResetLastSlackActiveAt() {
	m.last_slack_active_at = nil
	delete(m.clearedFields, usermetrics.FieldLastSlackActiveAt)
}

// SetPreferredNotificationFrequency sets the "preferred_notification_frequency" field.
func (m *UserMetricsMutation) SetPreferredNotificationFrequency(unf usermetrics.PreferredNotificationFrequency) {
	m.preferred_notification_frequency = &unf
}

// PreferredNotificationFrequency returns the value of the "preferred_notification_frequency" field in the mutation.
func (m *UserMetricsMutation) PreferredNotificationFrequency() (r usermetrics.PreferredNotificationFrequency, exists bool) {
	v := m.preferred_notification_frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredNotificationFrequency returns the old "preferred_notification_frequency" field's value of the UserMetrics entity.
// If the UserMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMetricsMutation) OldPreferredNotificationFrequency(ctx context.Context) (v usermetrics.PreferredNotificationFrequency, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredNotificationFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredNotificationFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredNotificationFrequency: %w", err)
	}
	return oldValue.PreferredNotificationFrequency, nil
}

// ResetPreferredNotificationFrequency resets all changes to the "preferred_notification_frequency" field.
func (m *UserMetricsMutation) ResetPreferredNotificationFrequency() {
	m.preferred_notification_frequency = nil
}

// SetNotificationFatigueLevel sets the "notification_fatigue_level" field.
func (m *UserMetricsMutation) SetNotificationFatigueLevel(i int) {
	m.notification_fatigue_level = &i
	m.addnotification_fatigue_level = nil
}

// NotificationFatigueLevel returns the value of the "notification_fatigue_level" field in the mutation.
func (m *UserMetricsMutation) NotificationFatigueLevel() (r int, exists bool) {
	v := m.notification_fatigue_level
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationFatigueLevel returns the old "notification_fatigue_level" field's value of the UserMetrics entity.
// If the UserMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMetricsMutation) OldNotificationFatigueLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationFatigueLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationFatigueLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationFatigueLevel: %w", err)
	}
	return oldValue.NotificationFatigueLevel, nil
}

// AddNotificationFatigueLevel adds i to the "notification_fatigue_level" field.
func (m *UserMetricsMutation) AddNotificationFatigueLevel(i int) {
	if m.addnotification_fatigue_level != nil {
		*m.addnotification_fatigue_level += i
	} else {
		m.addnotification_fatigue_level = &i
	}
}

// AddedNotificationFatigueLevel returns the value that was added to the "notification_fatigue_level" field in this mutation.
func (m *UserMetricsMutation) AddedNotificationFatigueLevel() (r int, exists bool) {
	v := m.addnotification_fatigue_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetNotificationFatigueLevel resets all changes to the "notification_fatigue_level" field.
func (m *UserMetricsMutation) ResetNotificationFatigueLevel() {
	m.notification_fatigue_level = nil
	m.addnotification_fatigue_level = nil
}

// SetOverallEngagementScore sets the "overall_engagement_score" field.
func (m *UserMetricsMutation) SetOverallEngagementScore(i int) {
	m.overall_engagement_score = &i
	m.addoverall_engagement_score = nil
}

// OverallEngagementScore returns the value of the "overall_engagement_score" field in the mutation.
func (m *UserMetricsMutation) OverallEngagementScore() (r int, exists bool) {
	v := m.overall_engagement_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallEngagementScore returns the old "overall_engagement_score" field's value of the UserMetrics entity.
// If the UserMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMetricsMutation) OldOverallEngagementScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallEngagementScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallEngagementScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallEngagementScore: %w", err)
	}
	return oldValue.OverallEngagementScore, nil
}

// AddOverallEngagementScore adds i to the "overall_engagement_score" field.
func (m *UserMetricsMutation) AddOverallEngagementScore(i int) {
	if m.addoverall_engagement_score != nil {
		*m.addoverall_engagement_score += i
	} else {
		m.addoverall_engagement_score = &i
	}
}

// AddedOverallEngagementScore returns the value that was added to the "overall_engagement_score" field in this mutation.
func (m *UserMetricsMutation) AddedOverallEngagementScore() (r int, exists bool) {
	v := m.addoverall_engagement_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallEngagementScore resets all changes to the "overall_engagement_score" field.
func (m *UserMetricsMutation) ResetOverallEngagementScore() {
	m.overall_engagement_score = nil
	m.addoverall_engagement_score = nil
}

// SetNotificationsSinceLastFeedback sets the "notifications_since_last_feedback" field.
func (m *UserMetricsMutation) SetNotificationsSinceLastFeedback(i int) {
	m.notifications_since_last_feedback = &i
	m.addnotifications_since_last_feedback = nil
}

// NotificationsSinceLastFeedback returns the value of the "notifications_since_last_feedback" field in the mutation.
func (m *UserMetricsMutation) NotificationsSinceLastFeedback() (r int, exists bool) {
	v := m.notifications_since_last_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationsSinceLastFeedback returns the old "notifications_since_last_feedback" field's value of the UserMetrics entity.
// If the UserMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMetricsMutation) OldNotificationsSinceLastFeedback(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationsSinceLastFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationsSinceLastFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationsSinceLastFeedback: %w", err)
	}
	return oldValue.NotificationsSinceLastFeedback, nil
}

// AddNotificationsSinceLastFeedback adds i to the "notifications_since_last_feedback" field.
func (m *UserMetricsMutation) AddNotificationsSinceLastFeedback(i int) {
	if m.addnotifications_since_last_feedback != nil {
		*m.addnotifications_since_last_feedback += i
	} else {
		m.addnotifications_since_last_feedback = &i
	}
}

// AddedNotificationsSinceLastFeedback returns the value that was added to the "notifications_since_last_feedback" field in this mutation.
func (m *UserMetricsMutation) AddedNotificationsSinceLastFeedback() (r int, exists bool) {
	v := m.addnotifications_since_last_feedback
	if v == nil {
		return
	}
	return *v, true
}

// ResetNotificationsSinceLastFeedback resets all changes to the "notifications_since_last_feedback" field.
func (m *UserMetricsMutation) ResetNotificationsSinceLastFeedback() {
	m.notifications_since_last_feedback = nil
	m.addnotifications_since_last_feedback = nil
}

// SetLastFeedbackRequestedAt sets the "last_feedback_requested_at" field.
func (m *UserMetricsMutation) SetLastFeedbackRequestedAt(t time.Time) {
	m.last_feedback_requested_at = &t
}

// LastFeedbackRequestedAt returns the value of the "last_feedback_requested_at" field in the mutation.
func (m *UserMetricsMutation) LastFeedbackRequestedAt() (r time.Time, exists bool) {
	v := m.last_feedback_requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFeedbackRequestedAt returns the old "last_feedback_requested_at" field's value of the UserMetrics entity.
// If the UserMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMetricsMutation) OldLastFeedbackRequestedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFeedbackRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFeedbackRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFeedbackRequestedAt: %w", err)
	}
	return oldValue.LastFeedbackRequestedAt, nil
}

// ClearLastFeedbackRequestedAt clears the value of the "last_feedback_requested_at" field.
func (m *UserMetricsMutation) ClearLastFeedbackRequestedAt() {
	m.last_feedback_requested_at = nil
	m.clearedFields[usermetrics.FieldLastFeedbackRequestedAt] = struct{}{}
}

// LastFeedbackRequestedAtCleared returns if the "last_feedback_requested_at" field was cleared in this mutation.
func (m *UserMetricsMutation) LastFeedbackRequestedAtCleared() bool {
	_, ok := m.clearedFields[usermetrics.FieldLastFeedbackRequestedAt]
	return ok
}

// ResetLastFeedbackRequestedAt resets all changes to the "last_feedback_requested_at" field.
func (m *UserMetricsMutation) ResetLastFeedbackRequestedAt() {
	m.last_feedback_requested_at = nil
	delete(m.clearedFields, usermetrics.FieldLastFeedbackRequestedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMetricsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMetricsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserMetrics entity.
// If the UserMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMetricsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMetricsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserMetricsMutation builder.
func (m *UserMetricsMutation) Where(ps ...predicate.UserMetrics) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMetricsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMetricsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserMetrics, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMetricsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMetricsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserMetrics).
func (m *UserMetricsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMetricsMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, usermetrics.FieldUserID)
	}
	if m.org_id != nil {
		fields = append(fields, usermetrics.FieldOrgID)
	}
	if m.last_app_active_at != nil {
		fields = append(fields, usermetrics.FieldLastAppActiveAt)
	}
	if m.last_slack_active_at != nil {
		fields = append(fields, usermetrics.FieldLastSlackActiveAt)
	}
	if m.preferred_notification_frequency != nil {
		fields = append(fields, usermetrics.FieldPreferredNotificationFrequency)
	}
	if m.notification_fatigue_level != nil {
		fields = append(fields, usermetrics.FieldNotificationFatigueLevel)
	}
	if m.overall_engagement_score != nil {
		fields = append(fields, usermetrics.FieldOverallEngagementScore)
	}
	if m.notifications_since_last_feedback != nil {
		fields = append(fields, usermetrics.FieldNotificationsSinceLastFeedback)
	}
	if m.last_feedback_requested_at != nil {
		fields = append(fields, usermetrics.FieldLastFeedbackRequestedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usermetrics.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMetricsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usermetrics.FieldUserID:
		return m.UserID()
	case usermetrics.FieldOrgID:
		return m.OrgID()
	case usermetrics.FieldLastAppActiveAt:
		return m.LastAppActiveAt()
	case usermetrics.FieldLastSlackActiveAt:
		return m.LastSlackActiveAt()
	case usermetrics.FieldPreferredNotificationFrequency:
		return m.PreferredNotificationFrequency()
	case usermetrics.FieldNotificationFatigueLevel:
		return m.NotificationFatigueLevel()
	case usermetrics.FieldOverallEngagementScore:
		return m.OverallEngagementScore()
	case usermetrics.FieldNotificationsSinceLastFeedback:
		return m.NotificationsSinceLastFeedback()
	case usermetrics.FieldLastFeedbackRequestedAt:
		return m.LastFeedbackRequestedAt()
	case usermetrics.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMetricsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usermetrics.FieldUserID:
		return m.OldUserID(ctx)
	case usermetrics.FieldOrgID:
		return m.OldOrgID(ctx)
	case usermetrics.FieldLastAppActiveAt:
		return m.OldLastAppActiveAt(ctx)
	case usermetrics.FieldLastSlackActiveAt:
		return m.OldLastSlackActiveAt(ctx)
	case usermetrics.FieldPreferredNotificationFrequency:
		return m.OldPreferredNotificationFrequency(ctx)
	case usermetrics.FieldNotificationFatigueLevel:
		return m.OldNotificationFatigueLevel(ctx)
	case usermetrics.FieldOverallEngagementScore:
		return m.OldOverallEngagementScore(ctx)
	case usermetrics.FieldNotificationsSinceLastFeedback:
		return m.OldNotificationsSinceLastFeedback(ctx)
	case usermetrics.FieldLastFeedbackRequestedAt:
		return m.OldLastFeedbackRequestedAt(ctx)
	case usermetrics.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserMetrics field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMetricsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usermetrics.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usermetrics.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case usermetrics.FieldLastAppActiveAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAppActiveAt(v)
		return nil
	case usermetrics.FieldLastSlackActiveAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSlackActiveAt(v)
		return nil
	case usermetrics.FieldPreferredNotificationFrequency:
		v, ok := value.(usermetrics.PreferredNotificationFrequency)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredNotificationFrequency(v)
		return nil
	case usermetrics.FieldNotificationFatigueLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationFatigueLevel(v)
		return nil
	case usermetrics.FieldOverallEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallEngagementScore(v)
		return nil
	case usermetrics.FieldNotificationsSinceLastFeedback:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationsSinceLastFeedback(v)
		return nil
	case usermetrics.FieldLastFeedbackRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFeedbackRequestedAt(v)
		return nil
	case usermetrics.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserMetrics field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMetricsMutation) AddedFields() []string {
	var fields []string
	if m.addnotification_fatigue_level != nil {
		fields = append(fields, usermetrics.FieldNotificationFatigueLevel)
	}
	if m.addoverall_engagement_score != nil {
		fields = append(fields, usermetrics.FieldOverallEngagementScore)
	}
	if m.addnotifications_since_last_feedback != nil {
		fields = append(fields, usermetrics.FieldNotificationsSinceLastFeedback)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMetricsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usermetrics.FieldNotificationFatigueLevel:
		return m.AddedNotificationFatigueLevel()
	case usermetrics.FieldOverallEngagementScore:
		return m.AddedOverallEngagementScore()
	case usermetrics.FieldNotificationsSinceLastFeedback:
		return m.AddedNotificationsSinceLastFeedback()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMetricsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usermetrics.FieldNotificationFatigueLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNotificationFatigueLevel(v)
		return nil
	case usermetrics.FieldOverallEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallEngagementScore(v)
		return nil
	case usermetrics.FieldNotificationsSinceLastFeedback:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNotificationsSinceLastFeedback(v)
		return nil
	}
	return fmt.Errorf("unknown UserMetrics numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMetricsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usermetrics.FieldLastAppActiveAt) {
		fields = append(fields, usermetrics.FieldLastAppActiveAt)
	}
	if m.FieldCleared(usermetrics.FieldLastSlackActiveAt) {
		fields = append(fields, usermetrics.FieldLastSlackActiveAt)
	}
	if m.FieldCleared(usermetrics.FieldLastFeedbackRequestedAt) {
		fields = append(fields, usermetrics.FieldLastFeedbackRequestedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMetricsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMetricsMutation) ClearField(name string) error {
	switch name {
	case usermetrics.FieldLastAppActiveAt:
		m.ClearLastAppActiveAt()
		return nil
	case usermetrics.FieldLastSlackActiveAt:
		m.ClearLastSlackActiveAt()
		return nil
	case usermetrics.FieldLastFeedbackRequestedAt:
		m.ClearLastFeedbackRequestedAt()
		return nil
	}
	return fmt.Errorf("unknown UserMetrics nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMetricsMutation) ResetField(name string) error {
	switch name {
	case usermetrics.FieldUserID:
		m.ResetUserID()
		return nil
	case usermetrics.FieldOrgID:
		m.ResetOrgID()
		return nil
	case usermetrics.FieldLastAppActiveAt:
		m.ResetLastAppActiveAt()
		return nil
	case usermetrics.FieldLastSlackActiveAt:
		m.ResetLastSlackActiveAt()
		return nil
	case usermetrics.FieldPreferredNotificationFrequency:
		m.ResetPreferredNotificationFrequency()
		return nil
	case usermetrics.FieldNotificationFatigueLevel:
		m.ResetNotificationFatigueLevel()
		return nil
	case usermetrics.FieldOverallEngagementScore:
		m.ResetOverallEngagementScore()
		return nil
	case usermetrics.FieldNotificationsSinceLastFeedback:
		m.ResetNotificationsSinceLastFeedback()
		return nil
	case usermetrics.FieldLastFeedbackRequestedAt:
		m.ResetLastFeedbackRequestedAt()
		return nil
	case usermetrics.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserMetrics field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMetricsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMetricsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMetricsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMetricsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMetricsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMetricsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMetricsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserMetrics unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMetricsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserMetrics edge %s", name)
}

// WebhookEventMutation represents an operation that mutates the WebhookEvent nodes in the graph.
type WebhookEventMutation struct {
	config
	op                Op
	typ               string
	id                *string
	source            *string
	event_type        *string
	external_event_id *string
	org_id            *string
	payload           *map[string]interface{}
	headers           *map[string]interface{}
	status            *webhookevent.Status
	error_message     *string
	received_at       *time.Time
	processed_at      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*WebhookEvent, error)
	predicates        []predicate.WebhookEvent
}

var _ ent.Mutation = (*WebhookEventMutation)(nil)

// webhookeventOption allows management of the mutation configuration using functional options.
type webhookeventOption func(*WebhookEventMutation)

// newWebhookEventMutation creates new mutation for the WebhookEvent entity.
func newWebhookEventMutation(c config, op Op, opts ...webhookeventOption) *WebhookEventMutation {
	m := &WebhookEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookEventID sets the ID field of the mutation.
func withWebhookEventID(id string) webhookeventOption {
	return func(m *WebhookEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookEvent
		)
		m.oldValue = func(ctx context.Context) (*WebhookEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookEvent sets the old WebhookEvent of the mutation.
func withWebhookEvent(node *WebhookEvent) webhookeventOption {
	return func(m *WebhookEventMutation) {
		m.oldValue = func(context.Context) (*WebhookEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookEvent entities.
func (m *WebhookEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *WebhookEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *WebhookEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *WebhookEventMutation) ResetSource() {
	m.source = nil
}

// SetEventType sets the "event_type" field.
func (m *WebhookEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WebhookEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WebhookEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetExternalEventID sets the "external_event_id" field.
func (m *WebhookEventMutation) SetExternalEventID(s string) {
	m.external_event_id = &s
}

// ExternalEventID returns the value of the "external_event_id" field in the mutation.
func (m *WebhookEventMutation) ExternalEventID() (r string, exists bool) {
	v := m.external_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalEventID returns the old "external_event_id" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldExternalEventID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalEventID: %w", err)
	}
	return oldValue.ExternalEventID, nil
}

// ClearExternalEventID clears the value of the "external_event_id" field.
func (m *WebhookEventMutation) ClearExternalEventID() {
	m.external_event_id = nil
	m.clearedFields[webhookevent.FieldExternalEventID] = struct{}{}
}

// ExternalEventIDCleared returns if the "external_event_id" field was cleared in this mutation.
func (m *WebhookEventMutation) ExternalEventIDCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldExternalEventID]
	return ok
}

// ResetExternalEventID resets all changes to the "external_event_id" field.
func (m *WebhookEventMutation) ResetExternalEventID() {
	m.external_event_id = nil
	delete(m.clearedFields, webhookevent.FieldExternalEventID)
}

// SetOrgID sets the "org_id" field.
func (m *WebhookEventMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *WebhookEventMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldOrgID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ClearOrgID clears the value of the "org_id" field.
func (m *WebhookEventMutation) ClearOrgID() {
	m.org_id = nil
	m.clearedFields[webhookevent.FieldOrgID] = struct{}{}
}

// OrgIDCleared returns if the "org_id" field was cleared in this mutation.
func (m *WebhookEventMutation) OrgIDCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldOrgID]
	return ok
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *WebhookEventMutation) ResetOrgID() {
	m.org_id = nil
	delete(m.clearedFields, webhookevent.FieldOrgID)
}

// SetPayload sets the "payload" field.
func (m *WebhookEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WebhookEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *WebhookEventMutation) ResetPayload() {
	m.payload = nil
}

// SetHeaders sets the "headers" field.
func (m *WebhookEventMutation) SetHeaders(value map[string]interface{}) {
	m.headers = &value
}

// Headers returns the value of the "headers" field in the mutation.
func (m *WebhookEventMutation) Headers() (r map[string]interface{}, exists bool) {
	v := m.headers
	if v == nil {
		return
	}
	return *v, true
}

// OldHeaders returns the old "headers" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldHeaders(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeaders: %w", err)
	}
	return oldValue.Headers, nil
}

// ClearHeaders clears the value of the "headers" field.
func (m *WebhookEventMutation) ClearHeaders() {
	m.headers = nil
	m.clearedFields[webhookevent.FieldHeaders] = struct{}{}
}

// HeadersCleared returns if the "headers" field was cleared in this mutation.
func (m *WebhookEventMutation) HeadersCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldHeaders]
	return ok
}

// ResetHeaders resets all changes to the "headers" field.
func (m *WebhookEventMutation) ResetHeaders() {
	m.headers = nil
	delete(m.clearedFields, webhookevent.FieldHeaders)
}

// SetStatus sets the "status" field.
func (m *WebhookEventMutation) SetStatus(w webhookevent.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WebhookEventMutation) Status() (r webhookevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldStatus(ctx context.Context) (v webhookevent.Status, err error) {
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
func (m *WebhookEventMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *WebhookEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WebhookEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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
func (m *WebhookEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[webhookevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WebhookEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WebhookEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, webhookevent.FieldErrorMessage)
}

// SetReceivedAt sets the "received_at" field.
func (m *WebhookEventMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *WebhookEventMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *WebhookEventMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *WebhookEventMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *WebhookEventMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *WebhookEventMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[webhookevent.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *WebhookEventMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *WebhookEventMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, webhookevent.FieldProcessedAt)
}

// Where appends a list predicates to the WebhookEventMutation builder.
func (m *WebhookEventMutation) Where(ps ...predicate.WebhookEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookEvent).
func (m *WebhookEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.source != nil {
		fields = append(fields, webhookevent.FieldSource)
	}
	if m.event_type != nil {
		fields = append(fields, webhookevent.FieldEventType)
	}
	if m.external_event_id != nil {
		fields = append(fields, webhookevent.FieldExternalEventID)
	}
	if m.org_id != nil {
		fields = append(fields, webhookevent.FieldOrgID)
	}
	if m.payload != nil {
		fields = append(fields, webhookevent.FieldPayload)
	}
	if m.headers != nil {
		fields = append(fields, webhookevent.FieldHeaders)
	}
	if m.status != nil {
		fields = append(fields, webhookevent.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, webhookevent.FieldErrorMessage)
	}
	if m.received_at != nil {
		fields = append(fields, webhookevent.FieldReceivedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, webhookevent.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookevent.FieldSource:
		return m.Source()
	case webhookevent.FieldEventType:
		return m.EventType()
	case webhookevent.FieldExternalEventID:
		return m.ExternalEventID()
	case webhookevent.FieldOrgID:
		return m.OrgID()
	case webhookevent.FieldPayload:
		return m.Payload()
	case webhookevent.FieldHeaders:
		return m.Headers()
	case webhookevent.FieldStatus:
		return m.Status()
	case webhookevent.FieldErrorMessage:
		return m.ErrorMessage()
	case webhookevent.FieldReceivedAt:
		return m.ReceivedAt()
	case webhookevent.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookevent.FieldSource:
		return m.OldSource(ctx)
	case webhookevent.FieldEventType:
		return m.OldEventType(ctx)
	case webhookevent.FieldExternalEventID:
		return m.OldExternalEventID(ctx)
	case webhookevent.FieldOrgID:
		return m.OldOrgID(ctx)
	case webhookevent.FieldPayload:
		return m.OldPayload(ctx)
	case webhookevent.FieldHeaders:
		return m.OldHeaders(ctx)
	case webhookevent.FieldStatus:
		return m.OldStatus(ctx)
	case webhookevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case webhookevent.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case webhookevent.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case webhookevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case webhookevent.FieldExternalEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalEventID(v)
		return nil
	case webhookevent.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case webhookevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case webhookevent.FieldHeaders:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeaders(v)
		return nil
	case webhookevent.FieldStatus:
		v, ok := value.(webhookevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case webhookevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case webhookevent.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case webhookevent.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookevent.FieldExternalEventID) {
		fields = append(fields, webhookevent.FieldExternalEventID)
	}
	if m.FieldCleared(webhookevent.FieldOrgID) {
		fields = append(fields, webhookevent.FieldOrgID)
	}
	if m.FieldCleared(webhookevent.FieldHeaders) {
		fields = append(fields, webhookevent.FieldHeaders)
	}
	if m.FieldCleared(webhookevent.FieldErrorMessage) {
		fields = append(fields, webhookevent.FieldErrorMessage)
	}
	if m.FieldCleared(webhookevent.FieldProcessedAt) {
		fields = append(fields, webhookevent.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookEventMutation) ClearField(name string) error {
	switch name {
	case webhookevent.FieldExternalEventID:
		m.ClearExternalEventID()
		return nil
	case webhookevent.FieldOrgID:
		m.ClearOrgID()
		return nil
	case webhookevent.FieldHeaders:
		m.ClearHeaders()
		return nil
	case webhookevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case webhookevent.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookEventMutation) ResetField(name string) error {
	switch name {
	case webhookevent.FieldSource:
		m.ResetSource()
		return nil
	case webhookevent.FieldEventType:
		m.ResetEventType()
		return nil
	case webhookevent.FieldExternalEventID:
		m.ResetExternalEventID()
		return nil
	case webhookevent.FieldOrgID:
		m.ResetOrgID()
		return nil
	case webhookevent.FieldPayload:
		m.ResetPayload()
		return nil
	case webhookevent.FieldHeaders:
		m.ResetHeaders()
		return nil
	case webhookevent.FieldStatus:
		m.ResetStatus()
		return nil
	case webhookevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case webhookevent.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case webhookevent.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent edge %s", name)
}
