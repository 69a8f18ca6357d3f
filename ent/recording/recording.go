// Code generated by ent, DO NOT EDIT.

package recording

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the recording type in the database.
	Label = "recording"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "recording_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMeetingPlatform holds the string denoting the meeting_platform field in the database.
	FieldMeetingPlatform = "meeting_platform"
	// FieldMeetingURL holds the string denoting the meeting_url field in the database.
	FieldMeetingURL = "meeting_url"
	// FieldCalendarEventID holds the string denoting the calendar_event_id field in the database.
	FieldCalendarEventID = "calendar_event_id"
	// FieldProviderRecordingID holds the string denoting the provider_recording_id field in the database.
	FieldProviderRecordingID = "provider_recording_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMediaStorageURL holds the string denoting the media_storage_url field in the database.
	FieldMediaStorageURL = "media_storage_url"
	// FieldMediaStoragePath holds the string denoting the media_storage_path field in the database.
	FieldMediaStoragePath = "media_storage_path"
	// FieldMediaUploadStatus holds the string denoting the media_upload_status field in the database.
	FieldMediaUploadStatus = "media_upload_status"
	// FieldMediaUploadRetryCount holds the string denoting the media_upload_retry_count field in the database.
	FieldMediaUploadRetryCount = "media_upload_retry_count"
	// FieldMediaUploadLastRetryAt holds the string denoting the media_upload_last_retry_at field in the database.
	FieldMediaUploadLastRetryAt = "media_upload_last_retry_at"
	// FieldMediaContentType holds the string denoting the media_content_type field in the database.
	FieldMediaContentType = "media_content_type"
	// FieldTranscript holds the string denoting the transcript field in the database.
	FieldTranscript = "transcript"
	// FieldTranscriptFetchAttempts holds the string denoting the transcript_fetch_attempts field in the database.
	FieldTranscriptFetchAttempts = "transcript_fetch_attempts"
	// FieldLastTranscriptFetchAt holds the string denoting the last_transcript_fetch_at field in the database.
	FieldLastTranscriptFetchAt = "last_transcript_fetch_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBotDeployment holds the string denoting the bot_deployment edge name in mutations.
	EdgeBotDeployment = "bot_deployment"
	// BotDeploymentFieldID holds the string denoting the ID field of the BotDeployment.
	BotDeploymentFieldID = "deployment_id"
	// Table holds the table name of the recording in the database.
	Table = "recordings"
	// BotDeploymentTable is the table that holds the bot_deployment relation/edge.
	BotDeploymentTable = "bot_deployments"
	// BotDeploymentInverseTable is the table name for the BotDeployment entity.
	// It exists in this package in order to avoid circular dependency with the "botdeployment" package.
	BotDeploymentInverseTable = "bot_deployments"
	// BotDeploymentColumn is the table column denoting the bot_deployment relation/edge.
	BotDeploymentColumn = "recording_id"
)

// Columns holds all SQL columns for recording fields.
var Columns = []string{
	FieldID,
	FieldOrgID,
	FieldUserID,
	FieldMeetingPlatform,
	FieldMeetingURL,
	FieldCalendarEventID,
	FieldProviderRecordingID,
	FieldStatus,
	FieldMediaStorageURL,
	FieldMediaStoragePath,
	FieldMediaUploadStatus,
	FieldMediaUploadRetryCount,
	FieldMediaUploadLastRetryAt,
	FieldMediaContentType,
	FieldTranscript,
	FieldTranscriptFetchAttempts,
	FieldLastTranscriptFetchAt,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultMediaUploadRetryCount holds the default value on creation for the "media_upload_retry_count" field.
	DefaultMediaUploadRetryCount int
	// DefaultTranscriptFetchAttempts holds the default value on creation for the "transcript_fetch_attempts" field.
	DefaultTranscriptFetchAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusBotJoining Status = "bot_joining"
	StatusRecording  Status = "recording"
	StatusProcessing Status = "processing"
	StatusReady      Status = "ready"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusBotJoining, StatusRecording, StatusProcessing, StatusReady, StatusFailed:
		return nil
	default:
		return fmt.Errorf("recording: invalid enum value for status field: %q", s)
	}
}

// MediaUploadStatus defines the type for the "media_upload_status" enum field.
type MediaUploadStatus string

// MediaUploadStatusNotStarted is the default value of the MediaUploadStatus enum.
const DefaultMediaUploadStatus = MediaUploadStatusNotStarted

// MediaUploadStatus values.
const (
	MediaUploadStatusNotStarted MediaUploadStatus = "not_started"
	MediaUploadStatusPending    MediaUploadStatus = "pending"
	MediaUploadStatusInProgress MediaUploadStatus = "in_progress"
	MediaUploadStatusComplete   MediaUploadStatus = "complete"
	MediaUploadStatusFailed     MediaUploadStatus = "failed"
)

func (mus MediaUploadStatus) String() string {
	return string(mus)
}

// MediaUploadStatusValidator is a validator for the "media_upload_status" field enum values. It is called by the builders before save.
func MediaUploadStatusValidator(mus MediaUploadStatus) error {
	switch mus {
	case MediaUploadStatusNotStarted, MediaUploadStatusPending, MediaUploadStatusInProgress, MediaUploadStatusComplete, MediaUploadStatusFailed:
		return nil
	default:
		return fmt.Errorf("recording: invalid enum value for media_upload_status field: %q", mus)
	}
}

// OrderOption defines the ordering options for the Recording queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByMeetingPlatform orders the results by the meeting_platform field.
func ByMeetingPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingPlatform, opts...).ToFunc()
}

// ByMeetingURL orders the results by the meeting_url field.
func ByMeetingURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingURL, opts...).ToFunc()
}

// ByCalendarEventID orders the results by the calendar_event_id field.
func ByCalendarEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalendarEventID, opts...).ToFunc()
}

// ByProviderRecordingID orders the results by the provider_recording_id field.
func ByProviderRecordingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderRecordingID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMediaStorageURL orders the results by the media_storage_url field.
func ByMediaStorageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaStorageURL, opts...).ToFunc()
}

// ByMediaStoragePath orders the results by the media_storage_path field.
func ByMediaStoragePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaStoragePath, opts...).ToFunc()
}

// ByMediaUploadStatus orders the results by the media_upload_status field.
func ByMediaUploadStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaUploadStatus, opts...).ToFunc()
}

// ByMediaUploadRetryCount orders the results by the media_upload_retry_count field.
func ByMediaUploadRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaUploadRetryCount, opts...).ToFunc()
}

// ByMediaUploadLastRetryAt orders the results by the media_upload_last_retry_at field.
func ByMediaUploadLastRetryAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaUploadLastRetryAt, opts...).ToFunc()
}

// ByMediaContentType orders the results by the media_content_type field.
func ByMediaContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaContentType, opts...).ToFunc()
}

// ByTranscriptFetchAttempts orders the results by the transcript_fetch_attempts field.
func ByTranscriptFetchAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptFetchAttempts, opts...).ToFunc()
}

// ByLastTranscriptFetchAt orders the results by the last_transcript_fetch_at field.
func ByLastTranscriptFetchAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastTranscriptFetchAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBotDeploymentField orders the results by bot_deployment field.
func ByBotDeploymentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBotDeploymentStep(), sql.OrderByField(field, opts...))
	}
}
func newBotDeploymentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BotDeploymentInverseTable, BotDeploymentFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, BotDeploymentTable, BotDeploymentColumn),
	)
}
