// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/predicate"
	"github.com/stridehq/cadenza/ent/recording"
)

// RecordingUpdate is the builder for updating Recording entities.
type RecordingUpdate struct {
	config
	hooks    []Hook
	mutation *RecordingMutation
}

// Where appends a list predicates to the RecordingUpdate builder.
func (_u *RecordingUpdate) Where(ps ...predicate.Recording) *RecordingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMeetingPlatform sets the "meeting_platform" field.
func (_u *RecordingUpdate) SetMeetingPlatform(v string) *RecordingUpdate {
	_u.mutation.SetMeetingPlatform(v)
	return _u
}

// SetNillableMeetingPlatform sets the "meeting_platform" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableMeetingPlatform(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetMeetingPlatform(*v)
	}
	return _u
}

// SetMeetingURL sets the "meeting_url" field.
func (_u *RecordingUpdate) SetMeetingURL(v string) *RecordingUpdate {
	_u.mutation.SetMeetingURL(v)
	return _u
}

// SetNillableMeetingURL sets the "meeting_url" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableMeetingURL(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetMeetingURL(*v)
	}
	return _u
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_u *RecordingUpdate) SetCalendarEventID(v string) *RecordingUpdate {
	_u.mutation.SetCalendarEventID(v)
	return _u
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableCalendarEventID(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetCalendarEventID(*v)
	}
	return _u
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (_u *RecordingUpdate) ClearCalendarEventID() *RecordingUpdate {
	_u.mutation.ClearCalendarEventID()
	return _u
}

// SetProviderRecordingID sets the "provider_recording_id" field.
func (_u *RecordingUpdate) SetProviderRecordingID(v string) *RecordingUpdate {
	_u.mutation.SetProviderRecordingID(v)
	return _u
}

// SetNillableProviderRecordingID sets the "provider_recording_id" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableProviderRecordingID(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetProviderRecordingID(*v)
	}
	return _u
}

// ClearProviderRecordingID clears the value of the "provider_recording_id" field.
func (_u *RecordingUpdate) ClearProviderRecordingID() *RecordingUpdate {
	_u.mutation.ClearProviderRecordingID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecordingUpdate) SetStatus(v recording.Status) *RecordingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableStatus(v *recording.Status) *RecordingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMediaStorageURL sets the "media_storage_url" field.
func (_u *RecordingUpdate) SetMediaStorageURL(v string) *RecordingUpdate {
	_u.mutation.SetMediaStorageURL(v)
	return _u
}

// SetNillableMediaStorageURL sets the "media_storage_url" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableMediaStorageURL(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetMediaStorageURL(*v)
	}
	return _u
}

// ClearMediaStorageURL clears the value of the "media_storage_url" field.
func (_u *RecordingUpdate) ClearMediaStorageURL() *RecordingUpdate {
	_u.mutation.ClearMediaStorageURL()
	return _u
}

// SetMediaStoragePath sets the "media_storage_path" field.
func (_u *RecordingUpdate) SetMediaStoragePath(v string) *RecordingUpdate {
	_u.mutation.SetMediaStoragePath(v)
	return _u
}

// SetNillableMediaStoragePath sets the "media_storage_path" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableMediaStoragePath(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetMediaStoragePath(*v)
	}
	return _u
}

// ClearMediaStoragePath clears the value of the "media_storage_path" field.
func (_u *RecordingUpdate) ClearMediaStoragePath() *RecordingUpdate {
	_u.mutation.ClearMediaStoragePath()
	return _u
}

// SetMediaUploadStatus sets the "media_upload_status" field.
func (_u *RecordingUpdate) SetMediaUploadStatus(v recording.MediaUploadStatus) *RecordingUpdate {
	_u.mutation.SetMediaUploadStatus(v)
	return _u
}

// SetNillableMediaUploadStatus sets the "media_upload_status" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableMediaUploadStatus(v *recording.MediaUploadStatus) *RecordingUpdate {
	if v != nil {
		_u.SetMediaUploadStatus(*v)
	}
	return _u
}

// SetMediaUploadRetryCount sets the "media_upload_retry_count" field.
func (_u *RecordingUpdate) SetMediaUploadRetryCount(v int) *RecordingUpdate {
	_u.mutation.ResetMediaUploadRetryCount()
	_u.mutation.SetMediaUploadRetryCount(v)
	return _u
}

// SetNillableMediaUploadRetryCount sets the "media_upload_retry_count" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableMediaUploadRetryCount(v *int) *RecordingUpdate {
	if v != nil {
		_u.SetMediaUploadRetryCount(*v)
	}
	return _u
}

// AddMediaUploadRetryCount adds value to the "media_upload_retry_count" field.
func (_u *RecordingUpdate) AddMediaUploadRetryCount(v int) *RecordingUpdate {
	_u.mutation.AddMediaUploadRetryCount(v)
	return _u
}

// SetMediaUploadLastRetryAt sets the "media_upload_last_retry_at" field.
func (_u *RecordingUpdate) SetMediaUploadLastRetryAt(v time.Time) *RecordingUpdate {
	_u.mutation.SetMediaUploadLastRetryAt(v)
	return _u
}

// SetNillableMediaUploadLastRetryAt sets the "media_upload_last_retry_at" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableMediaUploadLastRetryAt(v *time.Time) *RecordingUpdate {
	if v != nil {
		_u.SetMediaUploadLastRetryAt(*v)
	}
	return _u
}

// ClearMediaUploadLastRetryAt clears the value of the "media_upload_last_retry_at" field.
func (_u *RecordingUpdate) ClearMediaUploadLastRetryAt() *RecordingUpdate {
	_u.mutation.ClearMediaUploadLastRetryAt()
	return _u
}

// SetMediaContentType sets the "media_content_type" field.
func (_u *RecordingUpdate) SetMediaContentType(v string) *RecordingUpdate {
	_u.mutation.SetMediaContentType(v)
	return _u
}

// SetNillableMediaContentType sets the "media_content_type" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableMediaContentType(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetMediaContentType(*v)
	}
	return _u
}

// ClearMediaContentType clears the value of the "media_content_type" field.
func (_u *RecordingUpdate) ClearMediaContentType() *RecordingUpdate {
	_u.mutation.ClearMediaContentType()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *RecordingUpdate) SetTranscript(v map[string]interface{}) *RecordingUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *RecordingUpdate) ClearTranscript() *RecordingUpdate {
	_u.mutation.ClearTranscript()
	return _u
}

// SetTranscriptFetchAttempts sets the "transcript_fetch_attempts" field.
func (_u *RecordingUpdate) SetTranscriptFetchAttempts(v int) *RecordingUpdate {
	_u.mutation.ResetTranscriptFetchAttempts()
	_u.mutation.SetTranscriptFetchAttempts(v)
	return _u
}

// SetNillableTranscriptFetchAttempts sets the "transcript_fetch_attempts" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableTranscriptFetchAttempts(v *int) *RecordingUpdate {
	if v != nil {
		_u.SetTranscriptFetchAttempts(*v)
	}
	return _u
}

// AddTranscriptFetchAttempts adds value to the "transcript_fetch_attempts" field.
func (_u *RecordingUpdate) AddTranscriptFetchAttempts(v int) *RecordingUpdate {
	_u.mutation.AddTranscriptFetchAttempts(v)
	return _u
}

// SetLastTranscriptFetchAt sets the "last_transcript_fetch_at" field.
func (_u *RecordingUpdate) SetLastTranscriptFetchAt(v time.Time) *RecordingUpdate {
	_u.mutation.SetLastTranscriptFetchAt(v)
	return _u
}

// SetNillableLastTranscriptFetchAt sets the "last_transcript_fetch_at" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableLastTranscriptFetchAt(v *time.Time) *RecordingUpdate {
	if v != nil {
		_u.SetLastTranscriptFetchAt(*v)
	}
	return _u
}

// ClearLastTranscriptFetchAt clears the value of the "last_transcript_fetch_at" field.
func (_u *RecordingUpdate) ClearLastTranscriptFetchAt() *RecordingUpdate {
	_u.mutation.ClearLastTranscriptFetchAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RecordingUpdate) SetErrorMessage(v string) *RecordingUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableErrorMessage(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RecordingUpdate) ClearErrorMessage() *RecordingUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecordingUpdate) SetUpdatedAt(v time.Time) *RecordingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBotDeploymentID sets the "bot_deployment" edge to the BotDeployment entity by ID.
func (_u *RecordingUpdate) SetBotDeploymentID(id string) *RecordingUpdate {
	_u.mutation.SetBotDeploymentID(id)
	return _u
}

// SetNillableBotDeploymentID sets the "bot_deployment" edge to the BotDeployment entity by ID if the given value is not nil.
func (_u *RecordingUpdate) SetNillableBotDeploymentID(id *string) *RecordingUpdate {
	if id != nil {
		_u = _u.SetBotDeploymentID(*id)
	}
	return _u
}

// SetBotDeployment sets the "bot_deployment" edge to the BotDeployment entity.
func (_u *RecordingUpdate) SetBotDeployment(v *BotDeployment) *RecordingUpdate {
	return _u.SetBotDeploymentID(v.ID)
}

// Mutation returns the RecordingMutation object of the builder.
func (_u *RecordingUpdate) Mutation() *RecordingMutation {
	return _u.mutation
}

// ClearBotDeployment clears the "bot_deployment" edge to the BotDeployment entity.
func (_u *RecordingUpdate) ClearBotDeployment() *RecordingUpdate {
	_u.mutation.ClearBotDeployment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecordingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecordingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecordingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recording.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recording.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Recording.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MediaUploadStatus(); ok {
		if err := recording.MediaUploadStatusValidator(v); err != nil {
			return &ValidationError{Name: "media_upload_status", err: fmt.Errorf(`ent: validator failed for field "Recording.media_upload_status": %w`, err)}
		}
	}
	return nil
}

func (_u *RecordingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recording.Table, recording.Columns, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MeetingPlatform(); ok {
		_spec.SetField(recording.FieldMeetingPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingURL(); ok {
		_spec.SetField(recording.FieldMeetingURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CalendarEventID(); ok {
		_spec.SetField(recording.FieldCalendarEventID, field.TypeString, value)
	}
	if _u.mutation.CalendarEventIDCleared() {
		_spec.ClearField(recording.FieldCalendarEventID, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderRecordingID(); ok {
		_spec.SetField(recording.FieldProviderRecordingID, field.TypeString, value)
	}
	if _u.mutation.ProviderRecordingIDCleared() {
		_spec.ClearField(recording.FieldProviderRecordingID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recording.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MediaStorageURL(); ok {
		_spec.SetField(recording.FieldMediaStorageURL, field.TypeString, value)
	}
	if _u.mutation.MediaStorageURLCleared() {
		_spec.ClearField(recording.FieldMediaStorageURL, field.TypeString)
	}
	if value, ok := _u.mutation.MediaStoragePath(); ok {
		_spec.SetField(recording.FieldMediaStoragePath, field.TypeString, value)
	}
	if _u.mutation.MediaStoragePathCleared() {
		_spec.ClearField(recording.FieldMediaStoragePath, field.TypeString)
	}
	if value, ok := _u.mutation.MediaUploadStatus(); ok {
		_spec.SetField(recording.FieldMediaUploadStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MediaUploadRetryCount(); ok {
		_spec.SetField(recording.FieldMediaUploadRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMediaUploadRetryCount(); ok {
		_spec.AddField(recording.FieldMediaUploadRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediaUploadLastRetryAt(); ok {
		_spec.SetField(recording.FieldMediaUploadLastRetryAt, field.TypeTime, value)
	}
	if _u.mutation.MediaUploadLastRetryAtCleared() {
		_spec.ClearField(recording.FieldMediaUploadLastRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MediaContentType(); ok {
		_spec.SetField(recording.FieldMediaContentType, field.TypeString, value)
	}
	if _u.mutation.MediaContentTypeCleared() {
		_spec.ClearField(recording.FieldMediaContentType, field.TypeString)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(recording.FieldTranscript, field.TypeJSON, value)
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(recording.FieldTranscript, field.TypeJSON)
	}
	if value, ok := _u.mutation.TranscriptFetchAttempts(); ok {
		_spec.SetField(recording.FieldTranscriptFetchAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTranscriptFetchAttempts(); ok {
		_spec.AddField(recording.FieldTranscriptFetchAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastTranscriptFetchAt(); ok {
		_spec.SetField(recording.FieldLastTranscriptFetchAt, field.TypeTime, value)
	}
	if _u.mutation.LastTranscriptFetchAtCleared() {
		_spec.ClearField(recording.FieldLastTranscriptFetchAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(recording.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(recording.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recording.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BotDeploymentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BotDeploymentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recording.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecordingUpdateOne is the builder for updating a single Recording entity.
type RecordingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecordingMutation
}

// SetMeetingPlatform sets the "meeting_platform" field.
func (_u *RecordingUpdateOne) SetMeetingPlatform(v string) *RecordingUpdateOne {
	_u.mutation.SetMeetingPlatform(v)
	return _u
}

// SetNillableMeetingPlatform sets the "meeting_platform" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableMeetingPlatform(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetMeetingPlatform(*v)
	}
	return _u
}

// SetMeetingURL sets the "meeting_url" field.
func (_u *RecordingUpdateOne) SetMeetingURL(v string) *RecordingUpdateOne {
	_u.mutation.SetMeetingURL(v)
	return _u
}

// SetNillableMeetingURL sets the "meeting_url" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableMeetingURL(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetMeetingURL(*v)
	}
	return _u
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_u *RecordingUpdateOne) SetCalendarEventID(v string) *RecordingUpdateOne {
	_u.mutation.SetCalendarEventID(v)
	return _u
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableCalendarEventID(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetCalendarEventID(*v)
	}
	return _u
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (_u *RecordingUpdateOne) ClearCalendarEventID() *RecordingUpdateOne {
	_u.mutation.ClearCalendarEventID()
	return _u
}

// SetProviderRecordingID sets the "provider_recording_id" field.
func (_u *RecordingUpdateOne) SetProviderRecordingID(v string) *RecordingUpdateOne {
	_u.mutation.SetProviderRecordingID(v)
	return _u
}

// SetNillableProviderRecordingID sets the "provider_recording_id" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableProviderRecordingID(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetProviderRecordingID(*v)
	}
	return _u
}

// ClearProviderRecordingID clears the value of the "provider_recording_id" field.
func (_u *RecordingUpdateOne) ClearProviderRecordingID() *RecordingUpdateOne {
	_u.mutation.ClearProviderRecordingID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecordingUpdateOne) SetStatus(v recording.Status) *RecordingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableStatus(v *recording.Status) *RecordingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMediaStorageURL sets the "media_storage_url" field.
func (_u *RecordingUpdateOne) SetMediaStorageURL(v string) *RecordingUpdateOne {
	_u.mutation.SetMediaStorageURL(v)
	return _u
}

// SetNillableMediaStorageURL sets the "media_storage_url" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableMediaStorageURL(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetMediaStorageURL(*v)
	}
	return _u
}

// ClearMediaStorageURL clears the value of the "media_storage_url" field.
func (_u *RecordingUpdateOne) ClearMediaStorageURL() *RecordingUpdateOne {
	_u.mutation.ClearMediaStorageURL()
	return _u
}

// SetMediaStoragePath sets the "media_storage_path" field.
func (_u *RecordingUpdateOne) SetMediaStoragePath(v string) *RecordingUpdateOne {
	_u.mutation.SetMediaStoragePath(v)
	return _u
}

// SetNillableMediaStoragePath sets the "media_storage_path" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableMediaStoragePath(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetMediaStoragePath(*v)
	}
	return _u
}

// ClearMediaStoragePath clears the value of the "media_storage_path" field.
func (_u *RecordingUpdateOne) ClearMediaStoragePath() *RecordingUpdateOne {
	_u.mutation.ClearMediaStoragePath()
	return _u
}

// SetMediaUploadStatus sets the "media_upload_status" field.
func (_u *RecordingUpdateOne) SetMediaUploadStatus(v recording.MediaUploadStatus) *RecordingUpdateOne {
	_u.mutation.SetMediaUploadStatus(v)
	return _u
}

// SetNillableMediaUploadStatus sets the "media_upload_status" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableMediaUploadStatus(v *recording.MediaUploadStatus) *RecordingUpdateOne {
	if v != nil {
		_u.SetMediaUploadStatus(*v)
	}
	return _u
}

// SetMediaUploadRetryCount sets the "media_upload_retry_count" field.
func (_u *RecordingUpdateOne) SetMediaUploadRetryCount(v int) *RecordingUpdateOne {
	_u.mutation.ResetMediaUploadRetryCount()
	_u.mutation.SetMediaUploadRetryCount(v)
	return _u
}

// SetNillableMediaUploadRetryCount sets the "media_upload_retry_count" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableMediaUploadRetryCount(v *int) *RecordingUpdateOne {
	if v != nil {
		_u.SetMediaUploadRetryCount(*v)
	}
	return _u
}

// AddMediaUploadRetryCount adds value to the "media_upload_retry_count" field.
func (_u *RecordingUpdateOne) AddMediaUploadRetryCount(v int) *RecordingUpdateOne {
	_u.mutation.AddMediaUploadRetryCount(v)
	return _u
}

// SetMediaUploadLastRetryAt sets the "media_upload_last_retry_at" field.
func (_u *RecordingUpdateOne) SetMediaUploadLastRetryAt(v time.Time) *RecordingUpdateOne {
	_u.mutation.SetMediaUploadLastRetryAt(v)
	return _u
}

// SetNillableMediaUploadLastRetryAt sets the "media_upload_last_retry_at" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableMediaUploadLastRetryAt(v *time.Time) *RecordingUpdateOne {
	if v != nil {
		_u.SetMediaUploadLastRetryAt(*v)
	}
	return _u
}

// ClearMediaUploadLastRetryAt clears the value of the "media_upload_last_retry_at" field.
func (_u *RecordingUpdateOne) ClearMediaUploadLastRetryAt() *RecordingUpdateOne {
	_u.mutation.ClearMediaUploadLastRetryAt()
	return _u
}

// SetMediaContentType sets the "media_content_type" field.
func (_u *RecordingUpdateOne) SetMediaContentType(v string) *RecordingUpdateOne {
	_u.mutation.SetMediaContentType(v)
	return _u
}

// SetNillableMediaContentType sets the "media_content_type" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableMediaContentType(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetMediaContentType(*v)
	}
	return _u
}

// ClearMediaContentType clears the value of the "media_content_type" field.
func (_u *RecordingUpdateOne) ClearMediaContentType() *RecordingUpdateOne {
	_u.mutation.ClearMediaContentType()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *RecordingUpdateOne) SetTranscript(v map[string]interface{}) *RecordingUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *RecordingUpdateOne) ClearTranscript() *RecordingUpdateOne {
	_u.mutation.ClearTranscript()
	return _u
}

// SetTranscriptFetchAttempts sets the "transcript_fetch_attempts" field.
func (_u *RecordingUpdateOne) SetTranscriptFetchAttempts(v int) *RecordingUpdateOne {
	_u.mutation.ResetTranscriptFetchAttempts()
	_u.mutation.SetTranscriptFetchAttempts(v)
	return _u
}

// SetNillableTranscriptFetchAttempts sets the "transcript_fetch_attempts" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableTranscriptFetchAttempts(v *int) *RecordingUpdateOne {
	if v != nil {
		_u.SetTranscriptFetchAttempts(*v)
	}
	return _u
}

// AddTranscriptFetchAttempts adds value to the "transcript_fetch_attempts" field.
func (_u *RecordingUpdateOne) AddTranscriptFetchAttempts(v int) *RecordingUpdateOne {
	_u.mutation.AddTranscriptFetchAttempts(v)
	return _u
}

// SetLastTranscriptFetchAt sets the "last_transcript_fetch_at" field.
func (_u *RecordingUpdateOne) SetLastTranscriptFetchAt(v time.Time) *RecordingUpdateOne {
	_u.mutation.SetLastTranscriptFetchAt(v)
	return _u
}

// SetNillableLastTranscriptFetchAt sets the "last_transcript_fetch_at" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableLastTranscriptFetchAt(v *time.Time) *RecordingUpdateOne {
	if v != nil {
		_u.SetLastTranscriptFetchAt(*v)
	}
	return _u
}

// ClearLastTranscriptFetchAt clears the value of the "last_transcript_fetch_at" field.
func (_u *RecordingUpdateOne) ClearLastTranscriptFetchAt() *RecordingUpdateOne {
	_u.mutation.ClearLastTranscriptFetchAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RecordingUpdateOne) SetErrorMessage(v string) *RecordingUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableErrorMessage(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RecordingUpdateOne) ClearErrorMessage() *RecordingUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecordingUpdateOne) SetUpdatedAt(v time.Time) *RecordingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBotDeploymentID sets the "bot_deployment" edge to the BotDeployment entity by ID.
func (_u *RecordingUpdateOne) SetBotDeploymentID(id string) *RecordingUpdateOne {
	_u.mutation.SetBotDeploymentID(id)
	return _u
}

// SetNillableBotDeploymentID sets the "bot_deployment" edge to the BotDeployment entity by ID if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableBotDeploymentID(id *string) *RecordingUpdateOne {
	if id != nil {
		_u = _u.SetBotDeploymentID(*id)
	}
	return _u
}

// SetBotDeployment sets the "bot_deployment" edge to the BotDeployment entity.
func (_u *RecordingUpdateOne) SetBotDeployment(v *BotDeployment) *RecordingUpdateOne {
	return _u.SetBotDeploymentID(v.ID)
}

// Mutation returns the RecordingMutation object of the builder.
func (_u *RecordingUpdateOne) Mutation() *RecordingMutation {
	return _u.mutation
}

// ClearBotDeployment clears the "bot_deployment" edge to the BotDeployment entity.
func (_u *RecordingUpdateOne) ClearBotDeployment() *RecordingUpdateOne {
	_u.mutation.ClearBotDeployment()
	return _u
}

// Where appends a list predicates to the RecordingUpdate builder.
func (_u *RecordingUpdateOne) Where(ps ...predicate.Recording) *RecordingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecordingUpdateOne) Select(field string, fields ...string) *RecordingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recording entity.
func (_u *RecordingUpdateOne) Save(ctx context.Context) (*Recording, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingUpdateOne) SaveX(ctx context.Context) *Recording {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecordingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecordingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recording.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recording.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Recording.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MediaUploadStatus(); ok {
		if err := recording.MediaUploadStatusValidator(v); err != nil {
			return &ValidationError{Name: "media_upload_status", err: fmt.Errorf(`ent: validator failed for field "Recording.media_upload_status": %w`, err)}
		}
	}
	return nil
}

func (_u *RecordingUpdateOne) sqlSave(ctx context.Context) (_node *Recording, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recording.Table, recording.Columns, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recording.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recording.FieldID)
		for _, f := range fields {
			if !recording.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recording.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MeetingPlatform(); ok {
		_spec.SetField(recording.FieldMeetingPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingURL(); ok {
		_spec.SetField(recording.FieldMeetingURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CalendarEventID(); ok {
		_spec.SetField(recording.FieldCalendarEventID, field.TypeString, value)
	}
	if _u.mutation.CalendarEventIDCleared() {
		_spec.ClearField(recording.FieldCalendarEventID, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderRecordingID(); ok {
		_spec.SetField(recording.FieldProviderRecordingID, field.TypeString, value)
	}
	if _u.mutation.ProviderRecordingIDCleared() {
		_spec.ClearField(recording.FieldProviderRecordingID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recording.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MediaStorageURL(); ok {
		_spec.SetField(recording.FieldMediaStorageURL, field.TypeString, value)
	}
	if _u.mutation.MediaStorageURLCleared() {
		_spec.ClearField(recording.FieldMediaStorageURL, field.TypeString)
	}
	if value, ok := _u.mutation.MediaStoragePath(); ok {
		_spec.SetField(recording.FieldMediaStoragePath, field.TypeString, value)
	}
	if _u.mutation.MediaStoragePathCleared() {
		_spec.ClearField(recording.FieldMediaStoragePath, field.TypeString)
	}
	if value, ok := _u.mutation.MediaUploadStatus(); ok {
		_spec.SetField(recording.FieldMediaUploadStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MediaUploadRetryCount(); ok {
		_spec.SetField(recording.FieldMediaUploadRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMediaUploadRetryCount(); ok {
		_spec.AddField(recording.FieldMediaUploadRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediaUploadLastRetryAt(); ok {
		_spec.SetField(recording.FieldMediaUploadLastRetryAt, field.TypeTime, value)
	}
	if _u.mutation.MediaUploadLastRetryAtCleared() {
		_spec.ClearField(recording.FieldMediaUploadLastRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MediaContentType(); ok {
		_spec.SetField(recording.FieldMediaContentType, field.TypeString, value)
	}
	if _u.mutation.MediaContentTypeCleared() {
		_spec.ClearField(recording.FieldMediaContentType, field.TypeString)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(recording.FieldTranscript, field.TypeJSON, value)
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(recording.FieldTranscript, field.TypeJSON)
	}
	if value, ok := _u.mutation.TranscriptFetchAttempts(); ok {
		_spec.SetField(recording.FieldTranscriptFetchAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTranscriptFetchAttempts(); ok {
		_spec.AddField(recording.FieldTranscriptFetchAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastTranscriptFetchAt(); ok {
		_spec.SetField(recording.FieldLastTranscriptFetchAt, field.TypeTime, value)
	}
	if _u.mutation.LastTranscriptFetchAtCleared() {
		_spec.ClearField(recording.FieldLastTranscriptFetchAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(recording.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(recording.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recording.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BotDeploymentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BotDeploymentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Recording{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recording.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
