// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/recording"
)

// RecordingCreate is the builder for creating a Recording entity.
type RecordingCreate struct {
	config
	mutation *RecordingMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *RecordingCreate) SetOrgID(v string) *RecordingCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RecordingCreate) SetUserID(v string) *RecordingCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMeetingPlatform sets the "meeting_platform" field.
func (_c *RecordingCreate) SetMeetingPlatform(v string) *RecordingCreate {
	_c.mutation.SetMeetingPlatform(v)
	return _c
}

// SetMeetingURL sets the "meeting_url" field.
func (_c *RecordingCreate) SetMeetingURL(v string) *RecordingCreate {
	_c.mutation.SetMeetingURL(v)
	return _c
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_c *RecordingCreate) SetCalendarEventID(v string) *RecordingCreate {
	_c.mutation.SetCalendarEventID(v)
	return _c
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableCalendarEventID(v *string) *RecordingCreate {
	if v != nil {
		_c.SetCalendarEventID(*v)
	}
	return _c
}

// SetProviderRecordingID sets the "provider_recording_id" field.
func (_c *RecordingCreate) SetProviderRecordingID(v string) *RecordingCreate {
	_c.mutation.SetProviderRecordingID(v)
	return _c
}

// SetNillableProviderRecordingID sets the "provider_recording_id" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableProviderRecordingID(v *string) *RecordingCreate {
	if v != nil {
		_c.SetProviderRecordingID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RecordingCreate) SetStatus(v recording.Status) *RecordingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableStatus(v *recording.Status) *RecordingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMediaStorageURL sets the "media_storage_url" field.
func (_c *RecordingCreate) SetMediaStorageURL(v string) *RecordingCreate {
	_c.mutation.SetMediaStorageURL(v)
	return _c
}

// SetNillableMediaStorageURL sets the "media_storage_url" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableMediaStorageURL(v *string) *RecordingCreate {
	if v != nil {
		_c.SetMediaStorageURL(*v)
	}
	return _c
}

// SetMediaStoragePath sets the "media_storage_path" field.
func (_c *RecordingCreate) SetMediaStoragePath(v string) *RecordingCreate {
	_c.mutation.SetMediaStoragePath(v)
	return _c
}

// SetNillableMediaStoragePath sets the "media_storage_path" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableMediaStoragePath(v *string) *RecordingCreate {
	if v != nil {
		_c.SetMediaStoragePath(*v)
	}
	return _c
}

// SetMediaUploadStatus sets the "media_upload_status" field.
func (_c *RecordingCreate) SetMediaUploadStatus(v recording.MediaUploadStatus) *RecordingCreate {
	_c.mutation.SetMediaUploadStatus(v)
	return _c
}

// SetNillableMediaUploadStatus sets the "media_upload_status" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableMediaUploadStatus(v *recording.MediaUploadStatus) *RecordingCreate {
	if v != nil {
		_c.SetMediaUploadStatus(*v)
	}
	return _c
}

// SetMediaUploadRetryCount sets the "media_upload_retry_count" field.
func (_c *RecordingCreate) SetMediaUploadRetryCount(v int) *RecordingCreate {
	_c.mutation.SetMediaUploadRetryCount(v)
	return _c
}

// SetNillableMediaUploadRetryCount sets the "media_upload_retry_count" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableMediaUploadRetryCount(v *int) *RecordingCreate {
	if v != nil {
		_c.SetMediaUploadRetryCount(*v)
	}
	return _c
}

// SetMediaUploadLastRetryAt sets the "media_upload_last_retry_at" field.
func (_c *RecordingCreate) SetMediaUploadLastRetryAt(v time.Time) *RecordingCreate {
	_c.mutation.SetMediaUploadLastRetryAt(v)
	return _c
}

// SetNillableMediaUploadLastRetryAt sets the "media_upload_last_retry_at" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableMediaUploadLastRetryAt(v *time.Time) *RecordingCreate {
	if v != nil {
		_c.SetMediaUploadLastRetryAt(*v)
	}
	return _c
}

// SetMediaContentType sets the "media_content_type" field.
func (_c *RecordingCreate) SetMediaContentType(v string) *RecordingCreate {
	_c.mutation.SetMediaContentType(v)
	return _c
}

// SetNillableMediaContentType sets the "media_content_type" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableMediaContentType(v *string) *RecordingCreate {
	if v != nil {
		_c.SetMediaContentType(*v)
	}
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *RecordingCreate) SetTranscript(v map[string]interface{}) *RecordingCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetTranscriptFetchAttempts sets the "transcript_fetch_attempts" field.
func (_c *RecordingCreate) SetTranscriptFetchAttempts(v int) *RecordingCreate {
	_c.mutation.SetTranscriptFetchAttempts(v)
	return _c
}

// SetNillableTranscriptFetchAttempts sets the "transcript_fetch_attempts" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableTranscriptFetchAttempts(v *int) *RecordingCreate {
	if v != nil {
		_c.SetTranscriptFetchAttempts(*v)
	}
	return _c
}

// SetLastTranscriptFetchAt sets the "last_transcript_fetch_at" field.
func (_c *RecordingCreate) SetLastTranscriptFetchAt(v time.Time) *RecordingCreate {
	_c.mutation.SetLastTranscriptFetchAt(v)
	return _c
}

// SetNillableLastTranscriptFetchAt sets the "last_transcript_fetch_at" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableLastTranscriptFetchAt(v *time.Time) *RecordingCreate {
	if v != nil {
		_c.SetLastTranscriptFetchAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RecordingCreate) SetErrorMessage(v string) *RecordingCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableErrorMessage(v *string) *RecordingCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecordingCreate) SetCreatedAt(v time.Time) *RecordingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableCreatedAt(v *time.Time) *RecordingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecordingCreate) SetUpdatedAt(v time.Time) *RecordingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableUpdatedAt(v *time.Time) *RecordingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecordingCreate) SetID(v string) *RecordingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetBotDeploymentID sets the "bot_deployment" edge to the BotDeployment entity by ID.
func (_c *RecordingCreate) SetBotDeploymentID(id string) *RecordingCreate {
	_c.mutation.SetBotDeploymentID(id)
	return _c
}

// SetNillableBotDeploymentID sets the "bot_deployment" edge to the BotDeployment entity by ID if the given value is not nil.
func (_c *RecordingCreate) SetNillableBotDeploymentID(id *string) *RecordingCreate {
	if id != nil {
		_c = _c.SetBotDeploymentID(*id)
	}
	return _c
}

// SetBotDeployment sets the "bot_deployment" edge to the BotDeployment entity.
func (_c *RecordingCreate) SetBotDeployment(v *BotDeployment) *RecordingCreate {
	return _c.SetBotDeploymentID(v.ID)
}

// Mutation returns the RecordingMutation object of the builder.
func (_c *RecordingCreate) Mutation() *RecordingMutation {
	return _c.mutation
}

// Save creates the Recording in the database.
func (_c *RecordingCreate) Save(ctx context.Context) (*Recording, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecordingCreate) SaveX(ctx context.Context) *Recording {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecordingCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := recording.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.MediaUploadStatus(); !ok {
		v := recording.DefaultMediaUploadStatus
		_c.mutation.SetMediaUploadStatus(v)
	}
	if _, ok := _c.mutation.MediaUploadRetryCount(); !ok {
		v := recording.DefaultMediaUploadRetryCount
		_c.mutation.SetMediaUploadRetryCount(v)
	}
	if _, ok := _c.mutation.TranscriptFetchAttempts(); !ok {
		v := recording.DefaultTranscriptFetchAttempts
		_c.mutation.SetTranscriptFetchAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recording.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := recording.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecordingCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "Recording.org_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Recording.user_id"`)}
	}
	if _, ok := _c.mutation.MeetingPlatform(); !ok {
		return &ValidationError{Name: "meeting_platform", err: errors.New(`ent: missing required field "Recording.meeting_platform"`)}
	}
	if _, ok := _c.mutation.MeetingURL(); !ok {
		return &ValidationError{Name: "meeting_url", err: errors.New(`ent: missing required field "Recording.meeting_url"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Recording.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := recording.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Recording.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MediaUploadStatus(); !ok {
		return &ValidationError{Name: "media_upload_status", err: errors.New(`ent: missing required field "Recording.media_upload_status"`)}
	}
	if v, ok := _c.mutation.MediaUploadStatus(); ok {
		if err := recording.MediaUploadStatusValidator(v); err != nil {
			return &ValidationError{Name: "media_upload_status", err: fmt.Errorf(`ent: validator failed for field "Recording.media_upload_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MediaUploadRetryCount(); !ok {
		return &ValidationError{Name: "media_upload_retry_count", err: errors.New(`ent: missing required field "Recording.media_upload_retry_count"`)}
	}
	if _, ok := _c.mutation.TranscriptFetchAttempts(); !ok {
		return &ValidationError{Name: "transcript_fetch_attempts", err: errors.New(`ent: missing required field "Recording.transcript_fetch_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Recording.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Recording.updated_at"`)}
	}
	return nil
}

func (_c *RecordingCreate) sqlSave(ctx context.Context) (*Recording, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Recording.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecordingCreate) createSpec() (*Recording, *sqlgraph.CreateSpec) {
	var (
		_node = &Recording{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recording.Table, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(recording.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(recording.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.MeetingPlatform(); ok {
		_spec.SetField(recording.FieldMeetingPlatform, field.TypeString, value)
		_node.MeetingPlatform = value
	}
	if value, ok := _c.mutation.MeetingURL(); ok {
		_spec.SetField(recording.FieldMeetingURL, field.TypeString, value)
		_node.MeetingURL = value
	}
	if value, ok := _c.mutation.CalendarEventID(); ok {
		_spec.SetField(recording.FieldCalendarEventID, field.TypeString, value)
		_node.CalendarEventID = &value
	}
	if value, ok := _c.mutation.ProviderRecordingID(); ok {
		_spec.SetField(recording.FieldProviderRecordingID, field.TypeString, value)
		_node.ProviderRecordingID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(recording.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MediaStorageURL(); ok {
		_spec.SetField(recording.FieldMediaStorageURL, field.TypeString, value)
		_node.MediaStorageURL = &value
	}
	if value, ok := _c.mutation.MediaStoragePath(); ok {
		_spec.SetField(recording.FieldMediaStoragePath, field.TypeString, value)
		_node.MediaStoragePath = &value
	}
	if value, ok := _c.mutation.MediaUploadStatus(); ok {
		_spec.SetField(recording.FieldMediaUploadStatus, field.TypeEnum, value)
		_node.MediaUploadStatus = value
	}
	if value, ok := _c.mutation.MediaUploadRetryCount(); ok {
		_spec.SetField(recording.FieldMediaUploadRetryCount, field.TypeInt, value)
		_node.MediaUploadRetryCount = value
	}
	if value, ok := _c.mutation.MediaUploadLastRetryAt(); ok {
		_spec.SetField(recording.FieldMediaUploadLastRetryAt, field.TypeTime, value)
		_node.MediaUploadLastRetryAt = &value
	}
	if value, ok := _c.mutation.MediaContentType(); ok {
		_spec.SetField(recording.FieldMediaContentType, field.TypeString, value)
		_node.MediaContentType = &value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(recording.FieldTranscript, field.TypeJSON, value)
		_node.Transcript = value
	}
	if value, ok := _c.mutation.TranscriptFetchAttempts(); ok {
		_spec.SetField(recording.FieldTranscriptFetchAttempts, field.TypeInt, value)
		_node.TranscriptFetchAttempts = value
	}
	if value, ok := _c.mutation.LastTranscriptFetchAt(); ok {
		_spec.SetField(recording.FieldLastTranscriptFetchAt, field.TypeTime, value)
		_node.LastTranscriptFetchAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(recording.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recording.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recording.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BotDeploymentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   recording.BotDeploymentTable,
			Columns: []string{recording.BotDeploymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(botdeployment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecordingCreateBulk is the builder for creating many Recording entities in bulk.
type RecordingCreateBulk struct {
	config
	err      error
	builders []*RecordingCreate
}

// Save creates the Recording entities in the database.
func (_c *RecordingCreateBulk) Save(ctx context.Context) ([]*Recording, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recording, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecordingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RecordingCreateBulk) SaveX(ctx context.Context) []*Recording {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
