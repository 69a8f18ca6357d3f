// Code generated by ent, DO NOT EDIT.

package recording

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stridehq/cadenza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldOrgID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldUserID, v))
}

// MeetingPlatform applies equality check predicate on the "meeting_platform" field. It's identical to MeetingPlatformEQ.
func MeetingPlatform(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMeetingPlatform, v))
}

// MeetingURL applies equality check predicate on the "meeting_url" field. It's identical to MeetingURLEQ.
func MeetingURL(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMeetingURL, v))
}

// CalendarEventID applies equality check predicate on the "calendar_event_id" field. It's identical to CalendarEventIDEQ.
func CalendarEventID(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCalendarEventID, v))
}

// ProviderRecordingID applies equality check predicate on the "provider_recording_id" field. It's identical to ProviderRecordingIDEQ.
func ProviderRecordingID(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldProviderRecordingID, v))
}

// MediaStorageURL applies equality check predicate on the "media_storage_url" field. It's identical to MediaStorageURLEQ.
func MediaStorageURL(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMediaStorageURL, v))
}

// MediaStoragePath applies equality check predicate on the "media_storage_path" field. It's identical to MediaStoragePathEQ.
func MediaStoragePath(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMediaStoragePath, v))
}

// MediaUploadRetryCount applies equality check predicate on the "media_upload_retry_count" field. It's identical to MediaUploadRetryCountEQ.
func MediaUploadRetryCount(v int) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMediaUploadRetryCount, v))
}

// MediaUploadLastRetryAt applies equality check predicate on the "media_upload_last_retry_at" field. It's identical to MediaUploadLastRetryAtEQ.
func MediaUploadLastRetryAt(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMediaUploadLastRetryAt, v))
}

// MediaContentType applies equality check predicate on the "media_content_type" field. It's identical to MediaContentTypeEQ.
func MediaContentType(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMediaContentType, v))
}

// TranscriptFetchAttempts applies equality check predicate on the "transcript_fetch_attempts" field. It's identical to TranscriptFetchAttemptsEQ.
func TranscriptFetchAttempts(v int) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldTranscriptFetchAttempts, v))
}

// LastTranscriptFetchAt applies equality check predicate on the "last_transcript_fetch_at" field. It's identical to LastTranscriptFetchAtEQ.
func LastTranscriptFetchAt(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldLastTranscriptFetchAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldOrgID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldUserID, v))
}

// MeetingPlatformEQ applies the EQ predicate on the "meeting_platform" field.
func MeetingPlatformEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMeetingPlatform, v))
}

// MeetingPlatformNEQ applies the NEQ predicate on the "meeting_platform" field.
func MeetingPlatformNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldMeetingPlatform, v))
}

// MeetingPlatformIn applies the In predicate on the "meeting_platform" field.
func MeetingPlatformIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldMeetingPlatform, vs...))
}

// MeetingPlatformNotIn applies the NotIn predicate on the "meeting_platform" field.
func MeetingPlatformNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldMeetingPlatform, vs...))
}

// MeetingPlatformGT applies the GT predicate on the "meeting_platform" field.
func MeetingPlatformGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldMeetingPlatform, v))
}

// MeetingPlatformGTE applies the GTE predicate on the "meeting_platform" field.
func MeetingPlatformGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldMeetingPlatform, v))
}

// MeetingPlatformLT applies the LT predicate on the "meeting_platform" field.
func MeetingPlatformLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldMeetingPlatform, v))
}

// MeetingPlatformLTE applies the LTE predicate on the "meeting_platform" field.
func MeetingPlatformLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldMeetingPlatform, v))
}

// MeetingPlatformContains applies the Contains predicate on the "meeting_platform" field.
func MeetingPlatformContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldMeetingPlatform, v))
}

// MeetingPlatformHasPrefix applies the HasPrefix predicate on the "meeting_platform" field.
func MeetingPlatformHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldMeetingPlatform, v))
}

// MeetingPlatformHasSuffix applies the HasSuffix predicate on the "meeting_platform" field.
func MeetingPlatformHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldMeetingPlatform, v))
}

// MeetingPlatformEqualFold applies the EqualFold predicate on the "meeting_platform" field.
func MeetingPlatformEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldMeetingPlatform, v))
}

// MeetingPlatformContainsFold applies the ContainsFold predicate on the "meeting_platform" field.
func MeetingPlatformContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldMeetingPlatform, v))
}

// MeetingURLEQ applies the EQ predicate on the "meeting_url" field.
func MeetingURLEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMeetingURL, v))
}

// MeetingURLNEQ applies the NEQ predicate on the "meeting_url" field.
func MeetingURLNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldMeetingURL, v))
}

// MeetingURLIn applies the In predicate on the "meeting_url" field.
func MeetingURLIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldMeetingURL, vs...))
}

// MeetingURLNotIn applies the NotIn predicate on the "meeting_url" field.
func MeetingURLNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldMeetingURL, vs...))
}

// MeetingURLGT applies the GT predicate on the "meeting_url" field.
func MeetingURLGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldMeetingURL, v))
}

// MeetingURLGTE applies the GTE predicate on the "meeting_url" field.
func MeetingURLGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldMeetingURL, v))
}

// MeetingURLLT applies the LT predicate on the "meeting_url" field.
func MeetingURLLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldMeetingURL, v))
}

// MeetingURLLTE applies the LTE predicate on the "meeting_url" field.
func MeetingURLLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldMeetingURL, v))
}

// MeetingURLContains applies the Contains predicate on the "meeting_url" field.
func MeetingURLContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldMeetingURL, v))
}

// MeetingURLHasPrefix applies the HasPrefix predicate on the "meeting_url" field.
func MeetingURLHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldMeetingURL, v))
}

// MeetingURLHasSuffix applies the HasSuffix predicate on the "meeting_url" field.
func MeetingURLHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldMeetingURL, v))
}

// MeetingURLEqualFold applies the EqualFold predicate on the "meeting_url" field.
func MeetingURLEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldMeetingURL, v))
}

// MeetingURLContainsFold applies the ContainsFold predicate on the "meeting_url" field.
func MeetingURLContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldMeetingURL, v))
}

// CalendarEventIDEQ applies the EQ predicate on the "calendar_event_id" field.
func CalendarEventIDEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCalendarEventID, v))
}

// CalendarEventIDNEQ applies the NEQ predicate on the "calendar_event_id" field.
func CalendarEventIDNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldCalendarEventID, v))
}

// CalendarEventIDIn applies the In predicate on the "calendar_event_id" field.
func CalendarEventIDIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldCalendarEventID, vs...))
}

// CalendarEventIDNotIn applies the NotIn predicate on the "calendar_event_id" field.
func CalendarEventIDNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldCalendarEventID, vs...))
}

// CalendarEventIDGT applies the GT predicate on the "calendar_event_id" field.
func CalendarEventIDGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldCalendarEventID, v))
}

// CalendarEventIDGTE applies the GTE predicate on the "calendar_event_id" field.
func CalendarEventIDGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldCalendarEventID, v))
}

// CalendarEventIDLT applies the LT predicate on the "calendar_event_id" field.
func CalendarEventIDLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldCalendarEventID, v))
}

// CalendarEventIDLTE applies the LTE predicate on the "calendar_event_id" field.
func CalendarEventIDLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldCalendarEventID, v))
}

// CalendarEventIDContains applies the Contains predicate on the "calendar_event_id" field.
func CalendarEventIDContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldCalendarEventID, v))
}

// CalendarEventIDHasPrefix applies the HasPrefix predicate on the "calendar_event_id" field.
func CalendarEventIDHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldCalendarEventID, v))
}

// CalendarEventIDHasSuffix applies the HasSuffix predicate on the "calendar_event_id" field.
func CalendarEventIDHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldCalendarEventID, v))
}

// CalendarEventIDIsNil applies the IsNil predicate on the "calendar_event_id" field.
func CalendarEventIDIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldCalendarEventID))
}

// CalendarEventIDNotNil applies the NotNil predicate on the "calendar_event_id" field.
func CalendarEventIDNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldCalendarEventID))
}

// CalendarEventIDEqualFold applies the EqualFold predicate on the "calendar_event_id" field.
func CalendarEventIDEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldCalendarEventID, v))
}

// CalendarEventIDContainsFold applies the ContainsFold predicate on the "calendar_event_id" field.
func CalendarEventIDContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldCalendarEventID, v))
}

// ProviderRecordingIDEQ applies the EQ predicate on the "provider_recording_id" field.
func ProviderRecordingIDEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldProviderRecordingID, v))
}

// ProviderRecordingIDNEQ applies the NEQ predicate on the "provider_recording_id" field.
func ProviderRecordingIDNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldProviderRecordingID, v))
}

// ProviderRecordingIDIn applies the In predicate on the "provider_recording_id" field.
func ProviderRecordingIDIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldProviderRecordingID, vs...))
}

// ProviderRecordingIDNotIn applies the NotIn predicate on the "provider_recording_id" field.
func ProviderRecordingIDNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldProviderRecordingID, vs...))
}

// ProviderRecordingIDGT applies the GT predicate on the "provider_recording_id" field.
func ProviderRecordingIDGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldProviderRecordingID, v))
}

// ProviderRecordingIDGTE applies the GTE predicate on the "provider_recording_id" field.
func ProviderRecordingIDGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldProviderRecordingID, v))
}

// ProviderRecordingIDLT applies the LT predicate on the "provider_recording_id" field.
func ProviderRecordingIDLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldProviderRecordingID, v))
}

// ProviderRecordingIDLTE applies the LTE predicate on the "provider_recording_id" field.
func ProviderRecordingIDLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldProviderRecordingID, v))
}

// ProviderRecordingIDContains applies the Contains predicate on the "provider_recording_id" field.
func ProviderRecordingIDContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldProviderRecordingID, v))
}

// ProviderRecordingIDHasPrefix applies the HasPrefix predicate on the "provider_recording_id" field.
func ProviderRecordingIDHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldProviderRecordingID, v))
}

// ProviderRecordingIDHasSuffix applies the HasSuffix predicate on the "provider_recording_id" field.
func ProviderRecordingIDHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldProviderRecordingID, v))
}

// ProviderRecordingIDIsNil applies the IsNil predicate on the "provider_recording_id" field.
func ProviderRecordingIDIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldProviderRecordingID))
}

// ProviderRecordingIDNotNil applies the NotNil predicate on the "provider_recording_id" field.
func ProviderRecordingIDNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldProviderRecordingID))
}

// ProviderRecordingIDEqualFold applies the EqualFold predicate on the "provider_recording_id" field.
func ProviderRecordingIDEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldProviderRecordingID, v))
}

// ProviderRecordingIDContainsFold applies the ContainsFold predicate on the "provider_recording_id" field.
func ProviderRecordingIDContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldProviderRecordingID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldStatus, vs...))
}

// MediaStorageURLEQ applies the EQ predicate on the "media_storage_url" field.
func MediaStorageURLEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMediaStorageURL, v))
}

// MediaStorageURLNEQ applies the NEQ predicate on the "media_storage_url" field.
func MediaStorageURLNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldMediaStorageURL, v))
}

// MediaStorageURLIn applies the In predicate on the "media_storage_url" field.
func MediaStorageURLIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldMediaStorageURL, vs...))
}

// MediaStorageURLNotIn applies the NotIn predicate on the "media_storage_url" field.
func MediaStorageURLNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldMediaStorageURL, vs...))
}

// MediaStorageURLGT applies the GT predicate on the "media_storage_url" field.
func MediaStorageURLGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldMediaStorageURL, v))
}

// MediaStorageURLGTE applies the GTE predicate on the "media_storage_url" field.
func MediaStorageURLGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldMediaStorageURL, v))
}

// MediaStorageURLLT applies the LT predicate on the "media_storage_url" field.
func MediaStorageURLLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldMediaStorageURL, v))
}

// MediaStorageURLLTE applies the LTE predicate on the "media_storage_url" field.
func MediaStorageURLLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldMediaStorageURL, v))
}

// MediaStorageURLContains applies the Contains predicate on the "media_storage_url" field.
func MediaStorageURLContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldMediaStorageURL, v))
}

// MediaStorageURLHasPrefix applies the HasPrefix predicate on the "media_storage_url" field.
func MediaStorageURLHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldMediaStorageURL, v))
}

// MediaStorageURLHasSuffix applies the HasSuffix predicate on the "media_storage_url" field.
func MediaStorageURLHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldMediaStorageURL, v))
}

// MediaStorageURLIsNil applies the IsNil predicate on the "media_storage_url" field.
func MediaStorageURLIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldMediaStorageURL))
}

// MediaStorageURLNotNil applies the NotNil predicate on the "media_storage_url" field.
func MediaStorageURLNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldMediaStorageURL))
}

// MediaStorageURLEqualFold applies the EqualFold predicate on the "media_storage_url" field.
func MediaStorageURLEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldMediaStorageURL, v))
}

// MediaStorageURLContainsFold applies the ContainsFold predicate on the "media_storage_url" field.
func MediaStorageURLContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldMediaStorageURL, v))
}

// MediaStoragePathEQ applies the EQ predicate on the "media_storage_path" field.
func MediaStoragePathEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMediaStoragePath, v))
}

// MediaStoragePathNEQ applies the NEQ predicate on the "media_storage_path" field.
func MediaStoragePathNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldMediaStoragePath, v))
}

// MediaStoragePathIn applies the In predicate on the "media_storage_path" field.
func MediaStoragePathIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldMediaStoragePath, vs...))
}

// MediaStoragePathNotIn applies the NotIn predicate on the "media_storage_path" field.
func MediaStoragePathNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldMediaStoragePath, vs...))
}

// MediaStoragePathGT applies the GT predicate on the "media_storage_path" field.
func MediaStoragePathGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldMediaStoragePath, v))
}

// MediaStoragePathGTE applies the GTE predicate on the "media_storage_path" field.
func MediaStoragePathGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldMediaStoragePath, v))
}

// MediaStoragePathLT applies the LT predicate on the "media_storage_path" field.
func MediaStoragePathLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldMediaStoragePath, v))
}

// MediaStoragePathLTE applies the LTE predicate on the "media_storage_path" field.
func MediaStoragePathLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldMediaStoragePath, v))
}

// MediaStoragePathContains applies the Contains predicate on the "media_storage_path" field.
func MediaStoragePathContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldMediaStoragePath, v))
}

// MediaStoragePathHasPrefix applies the HasPrefix predicate on the "media_storage_path" field.
func MediaStoragePathHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldMediaStoragePath, v))
}

// MediaStoragePathHasSuffix applies the HasSuffix predicate on the "media_storage_path" field.
func MediaStoragePathHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldMediaStoragePath, v))
}

// MediaStoragePathIsNil applies the IsNil predicate on the "media_storage_path" field.
func MediaStoragePathIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldMediaStoragePath))
}

// MediaStoragePathNotNil applies the NotNil predicate on the "media_storage_path" field.
func MediaStoragePathNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldMediaStoragePath))
}

// MediaStoragePathEqualFold applies the EqualFold predicate on the "media_storage_path" field.
func MediaStoragePathEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldMediaStoragePath, v))
}

// MediaStoragePathContainsFold applies the ContainsFold predicate on the "media_storage_path" field.
func MediaStoragePathContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldMediaStoragePath, v))
}

// MediaUploadStatusEQ applies the EQ predicate on the "media_upload_status" field.
func MediaUploadStatusEQ(v MediaUploadStatus) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMediaUploadStatus, v))
}

// MediaUploadStatusNEQ applies the NEQ predicate on the "media_upload_status" field.
func MediaUploadStatusNEQ(v MediaUploadStatus) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldMediaUploadStatus, v))
}

// MediaUploadStatusIn applies the In predicate on the "media_upload_status" field.
func MediaUploadStatusIn(vs ...MediaUploadStatus) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldMediaUploadStatus, vs...))
}

// MediaUploadStatusNotIn applies the NotIn predicate on the "media_upload_status" field.
func MediaUploadStatusNotIn(vs ...MediaUploadStatus) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldMediaUploadStatus, vs...))
}

// MediaUploadRetryCountEQ applies the EQ predicate on the "media_upload_retry_count" field.
func MediaUploadRetryCountEQ(v int) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMediaUploadRetryCount, v))
}

// MediaUploadRetryCountNEQ applies the NEQ predicate on the "media_upload_retry_count" field.
func MediaUploadRetryCountNEQ(v int) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldMediaUploadRetryCount, v))
}

// MediaUploadRetryCountIn applies the In predicate on the "media_upload_retry_count" field.
func MediaUploadRetryCountIn(vs ...int) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldMediaUploadRetryCount, vs...))
}

// MediaUploadRetryCountNotIn applies the NotIn predicate on the "media_upload_retry_count" field.
func MediaUploadRetryCountNotIn(vs ...int) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldMediaUploadRetryCount, vs...))
}

// MediaUploadRetryCountGT applies the GT predicate on the "media_upload_retry_count" field.
func MediaUploadRetryCountGT(v int) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldMediaUploadRetryCount, v))
}

// MediaUploadRetryCountGTE applies the GTE predicate on the "media_upload_retry_count" field.
func MediaUploadRetryCountGTE(v int) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldMediaUploadRetryCount, v))
}

// MediaUploadRetryCountLT applies the LT predicate on the "media_upload_retry_count" field.
func MediaUploadRetryCountLT(v int) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldMediaUploadRetryCount, v))
}

// MediaUploadRetryCountLTE applies the LTE predicate on the "media_upload_retry_count" field.
func MediaUploadRetryCountLTE(v int) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldMediaUploadRetryCount, v))
}

// MediaUploadLastRetryAtEQ applies the EQ predicate on the "media_upload_last_retry_at" field.
func MediaUploadLastRetryAtEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMediaUploadLastRetryAt, v))
}

// MediaUploadLastRetryAtNEQ applies the NEQ predicate on the "media_upload_last_retry_at" field.
func MediaUploadLastRetryAtNEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldMediaUploadLastRetryAt, v))
}

// MediaUploadLastRetryAtIn applies the In predicate on the "media_upload_last_retry_at" field.
func MediaUploadLastRetryAtIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldMediaUploadLastRetryAt, vs...))
}

// MediaUploadLastRetryAtNotIn applies the NotIn predicate on the "media_upload_last_retry_at" field.
func MediaUploadLastRetryAtNotIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldMediaUploadLastRetryAt, vs...))
}

// MediaUploadLastRetryAtGT applies the GT predicate on the "media_upload_last_retry_at" field.
func MediaUploadLastRetryAtGT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldMediaUploadLastRetryAt, v))
}

// MediaUploadLastRetryAtGTE applies the GTE predicate on the "media_upload_last_retry_at" field.
func MediaUploadLastRetryAtGTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldMediaUploadLastRetryAt, v))
}

// MediaUploadLastRetryAtLT applies the LT predicate on the "media_upload_last_retry_at" field.
func MediaUploadLastRetryAtLT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldMediaUploadLastRetryAt, v))
}

// MediaUploadLastRetryAtLTE applies the LTE predicate on the "media_upload_last_retry_at" field.
func MediaUploadLastRetryAtLTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldMediaUploadLastRetryAt, v))
}

// MediaUploadLastRetryAtIsNil applies the IsNil predicate on the "media_upload_last_retry_at" field.
func MediaUploadLastRetryAtIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldMediaUploadLastRetryAt))
}

// MediaUploadLastRetryAtNotNil applies the NotNil predicate on the "media_upload_last_retry_at" field.
func MediaUploadLastRetryAtNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldMediaUploadLastRetryAt))
}

// MediaContentTypeEQ applies the EQ predicate on the "media_content_type" field.
func MediaContentTypeEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMediaContentType, v))
}

// MediaContentTypeNEQ applies the NEQ predicate on the "media_content_type" field.
func MediaContentTypeNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldMediaContentType, v))
}

// MediaContentTypeIn applies the In predicate on the "media_content_type" field.
func MediaContentTypeIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldMediaContentType, vs...))
}

// MediaContentTypeNotIn applies the NotIn predicate on the "media_content_type" field.
func MediaContentTypeNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldMediaContentType, vs...))
}

// MediaContentTypeGT applies the GT predicate on the "media_content_type" field.
func MediaContentTypeGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldMediaContentType, v))
}

// MediaContentTypeGTE applies the GTE predicate on the "media_content_type" field.
func MediaContentTypeGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldMediaContentType, v))
}

// MediaContentTypeLT applies the LT predicate on the "media_content_type" field.
func MediaContentTypeLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldMediaContentType, v))
}

// MediaContentTypeLTE applies the LTE predicate on the "media_content_type" field.
func MediaContentTypeLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldMediaContentType, v))
}

// MediaContentTypeContains applies the Contains predicate on the "media_content_type" field.
func MediaContentTypeContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldMediaContentType, v))
}

// MediaContentTypeHasPrefix applies the HasPrefix predicate on the "media_content_type" field.
func MediaContentTypeHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldMediaContentType, v))
}

// MediaContentTypeHasSuffix applies the HasSuffix predicate on the "media_content_type" field.
func MediaContentTypeHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldMediaContentType, v))
}

// MediaContentTypeIsNil applies the IsNil predicate on the "media_content_type" field.
func MediaContentTypeIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldMediaContentType))
}

// MediaContentTypeNotNil applies the NotNil predicate on the "media_content_type" field.
func MediaContentTypeNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldMediaContentType))
}

// MediaContentTypeEqualFold applies the EqualFold predicate on the "media_content_type" field.
func MediaContentTypeEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldMediaContentType, v))
}

// MediaContentTypeContainsFold applies the ContainsFold predicate on the "media_content_type" field.
func MediaContentTypeContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldMediaContentType, v))
}

// TranscriptIsNil applies the IsNil predicate on the "transcript" field.
func TranscriptIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldTranscript))
}

// TranscriptNotNil applies the NotNil predicate on the "transcript" field.
func TranscriptNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldTranscript))
}

// TranscriptFetchAttemptsEQ applies the EQ predicate on the "transcript_fetch_attempts" field.
func TranscriptFetchAttemptsEQ(v int) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldTranscriptFetchAttempts, v))
}

// TranscriptFetchAttemptsNEQ applies the NEQ predicate on the "transcript_fetch_attempts" field.
func TranscriptFetchAttemptsNEQ(v int) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldTranscriptFetchAttempts, v))
}

// TranscriptFetchAttemptsIn applies the In predicate on the "transcript_fetch_attempts" field.
func TranscriptFetchAttemptsIn(vs ...int) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldTranscriptFetchAttempts, vs...))
}

// TranscriptFetchAttemptsNotIn applies the NotIn predicate on the "transcript_fetch_attempts" field.
func TranscriptFetchAttemptsNotIn(vs ...int) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldTranscriptFetchAttempts, vs...))
}

// TranscriptFetchAttemptsGT applies the GT predicate on the "transcript_fetch_attempts" field.
func TranscriptFetchAttemptsGT(v int) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldTranscriptFetchAttempts, v))
}

// TranscriptFetchAttemptsGTE applies the GTE predicate on the "transcript_fetch_attempts" field.
func TranscriptFetchAttemptsGTE(v int) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldTranscriptFetchAttempts, v))
}

// TranscriptFetchAttemptsLT applies the LT predicate on the "transcript_fetch_attempts" field.
func TranscriptFetchAttemptsLT(v int) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldTranscriptFetchAttempts, v))
}

// TranscriptFetchAttemptsLTE applies the LTE predicate on the "transcript_fetch_attempts" field.
func TranscriptFetchAttemptsLTE(v int) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldTranscriptFetchAttempts, v))
}

// LastTranscriptFetchAtEQ applies the EQ predicate on the "last_transcript_fetch_at" field.
func LastTranscriptFetchAtEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldLastTranscriptFetchAt, v))
}

// LastTranscriptFetchAtNEQ applies the NEQ predicate on the "last_transcript_fetch_at" field.
func LastTranscriptFetchAtNEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldLastTranscriptFetchAt, v))
}

// LastTranscriptFetchAtIn applies the In predicate on the "last_transcript_fetch_at" field.
func LastTranscriptFetchAtIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldLastTranscriptFetchAt, vs...))
}

// LastTranscriptFetchAtNotIn applies the NotIn predicate on the "last_transcript_fetch_at" field.
func LastTranscriptFetchAtNotIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldLastTranscriptFetchAt, vs...))
}

// LastTranscriptFetchAtGT applies the GT predicate on the "last_transcript_fetch_at" field.
func LastTranscriptFetchAtGT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldLastTranscriptFetchAt, v))
}

// LastTranscriptFetchAtGTE applies the GTE predicate on the "last_transcript_fetch_at" field.
func LastTranscriptFetchAtGTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldLastTranscriptFetchAt, v))
}

// LastTranscriptFetchAtLT applies the LT predicate on the "last_transcript_fetch_at" field.
func LastTranscriptFetchAtLT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldLastTranscriptFetchAt, v))
}

// LastTranscriptFetchAtLTE applies the LTE predicate on the "last_transcript_fetch_at" field.
func LastTranscriptFetchAtLTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldLastTranscriptFetchAt, v))
}

// LastTranscriptFetchAtIsNil applies the IsNil predicate on the "last_transcript_fetch_at" field.
func LastTranscriptFetchAtIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldLastTranscriptFetchAt))
}

// LastTranscriptFetchAtNotNil applies the NotNil predicate on the "last_transcript_fetch_at" field.
func LastTranscriptFetchAtNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldLastTranscriptFetchAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Recording {
	return predicate.Recording(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Recording {
	return predicate.Recording(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBotDeployment applies the HasEdge predicate on the "bot_deployment" edge.
func HasBotDeployment() predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, BotDeploymentTable, BotDeploymentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBotDeploymentWith applies the HasEdge predicate on the "bot_deployment" edge with a given conditions (other predicates).
func HasBotDeploymentWith(preds ...predicate.BotDeployment) predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := newBotDeploymentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.NotPredicates(p))
}
