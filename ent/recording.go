// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/recording"
)

// Recording is the model entity for the Recording schema.
type Recording struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// Owning user (meeting organizer)
	UserID string `json:"user_id,omitempty"`
	// e.g., 'zoom', 'google_meet', 'teams'
	MeetingPlatform string `json:"meeting_platform,omitempty"`
	// MeetingURL holds the value of the "meeting_url" field.
	MeetingURL string `json:"meeting_url,omitempty"`
	// Weak reference; the calendar row may be deleted independently
	CalendarEventID *string `json:"calendar_event_id,omitempty"`
	// Recorder-side id used for media and transcript fetches
	ProviderRecordingID *string `json:"provider_recording_id,omitempty"`
	// Status holds the value of the "status" field.
	Status recording.Status `json:"status,omitempty"`
	// Presigned GET URL, 7-day expiry
	MediaStorageURL *string `json:"media_storage_url,omitempty"`
	// Canonical object-store key
	MediaStoragePath *string `json:"media_storage_path,omitempty"`
	// MediaUploadStatus holds the value of the "media_upload_status" field.
	MediaUploadStatus recording.MediaUploadStatus `json:"media_upload_status,omitempty"`
	// MediaUploadRetryCount holds the value of the "media_upload_retry_count" field.
	MediaUploadRetryCount int `json:"media_upload_retry_count,omitempty"`
	// MediaUploadLastRetryAt holds the value of the "media_upload_last_retry_at" field.
	MediaUploadLastRetryAt *time.Time `json:"media_upload_last_retry_at,omitempty"`
	// MediaContentType holds the value of the "media_content_type" field.
	MediaContentType *string `json:"media_content_type,omitempty"`
	// Transcript holds the value of the "transcript" field.
	Transcript map[string]interface{} `json:"transcript,omitempty"`
	// Incremented before each fetch so crashes still count
	TranscriptFetchAttempts int `json:"transcript_fetch_attempts,omitempty"`
	// LastTranscriptFetchAt holds the value of the "last_transcript_fetch_at" field.
	LastTranscriptFetchAt *time.Time `json:"last_transcript_fetch_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecordingQuery when eager-loading is set.
	Edges        RecordingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecordingEdges holds the relations/edges for other nodes in the graph.
type RecordingEdges struct {
	// BotDeployment holds the value of the bot_deployment edge.
	BotDeployment *BotDeployment `json:"bot_deployment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BotDeploymentOrErr returns the BotDeployment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecordingEdges) BotDeploymentOrErr() (*BotDeployment, error) {
	if e.BotDeployment != nil {
		return e.BotDeployment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: botdeployment.Label}
	}
	return nil, &NotLoadedError{edge: "bot_deployment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Recording) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recording.FieldTranscript:
			values[i] = new([]byte)
		case recording.FieldMediaUploadRetryCount, recording.FieldTranscriptFetchAttempts:
			values[i] = new(sql.NullInt64)
		case recording.FieldID, recording.FieldOrgID, recording.FieldUserID, recording.FieldMeetingPlatform, recording.FieldMeetingURL, recording.FieldCalendarEventID, recording.FieldProviderRecordingID, recording.FieldStatus, recording.FieldMediaStorageURL, recording.FieldMediaStoragePath, recording.FieldMediaUploadStatus, recording.FieldMediaContentType, recording.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case recording.FieldMediaUploadLastRetryAt, recording.FieldLastTranscriptFetchAt, recording.FieldCreatedAt, recording.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Recording fields.
func (_m *Recording) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recording.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recording.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case recording.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case recording.FieldMeetingPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_platform", values[i])
			} else if value.Valid {
				_m.MeetingPlatform = value.String
			}
		case recording.FieldMeetingURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_url", values[i])
			} else if value.Valid {
				_m.MeetingURL = value.String
			}
		case recording.FieldCalendarEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_event_id", values[i])
			} else if value.Valid {
				_m.CalendarEventID = new(string)
				*_m.CalendarEventID = value.String
			}
		case recording.FieldProviderRecordingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_recording_id", values[i])
			} else if value.Valid {
				_m.ProviderRecordingID = new(string)
				*_m.ProviderRecordingID = value.String
			}
		case recording.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = recording.Status(value.String)
			}
		case recording.FieldMediaStorageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_storage_url", values[i])
			} else if value.Valid {
				_m.MediaStorageURL = new(string)
				*_m.MediaStorageURL = value.String
			}
		case recording.FieldMediaStoragePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_storage_path", values[i])
			} else if value.Valid {
				_m.MediaStoragePath = new(string)
				*_m.MediaStoragePath = value.String
			}
		case recording.FieldMediaUploadStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_upload_status", values[i])
			} else if value.Valid {
				_m.MediaUploadStatus = recording.MediaUploadStatus(value.String)
			}
		case recording.FieldMediaUploadRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field media_upload_retry_count", values[i])
			} else if value.Valid {
				_m.MediaUploadRetryCount = int(value.Int64)
			}
		case recording.FieldMediaUploadLastRetryAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field media_upload_last_retry_at", values[i])
			} else if value.Valid {
				_m.MediaUploadLastRetryAt = new(time.Time)
				*_m.MediaUploadLastRetryAt = value.Time
			}
		case recording.FieldMediaContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_content_type", values[i])
			} else if value.Valid {
				_m.MediaContentType = new(string)
				*_m.MediaContentType = value.String
			}
		case recording.FieldTranscript:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field transcript", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Transcript); err != nil {
					return fmt.Errorf("unmarshal field transcript: %w", err)
				}
			}
		case recording.FieldTranscriptFetchAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_fetch_attempts", values[i])
			} else if value.Valid {
				_m.TranscriptFetchAttempts = int(value.Int64)
			}
		case recording.FieldLastTranscriptFetchAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_transcript_fetch_at", values[i])
			} else if value.Valid {
				_m.LastTranscriptFetchAt = new(time.Time)
				*_m.LastTranscriptFetchAt = value.Time
			}
		case recording.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case recording.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recording.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Recording.
// This includes values selected through modifiers, order, etc.
func (_m *Recording) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBotDeployment queries the "bot_deployment" edge of the Recording entity.
func (_m *Recording) QueryBotDeployment() *BotDeploymentQuery {
	return NewRecordingClient(_m.config).QueryBotDeployment(_m)
}

// Update returns a builder for updating this Recording.
// Note that you need to call Recording.Unwrap() before calling this method if this Recording
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Recording) Update() *RecordingUpdateOne {
	return NewRecordingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Recording entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Recording) Unwrap() *Recording {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Recording is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Recording) String() string {
	var builder strings.Builder
	builder.WriteString("Recording(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("meeting_platform=")
	builder.WriteString(_m.MeetingPlatform)
	builder.WriteString(", ")
	builder.WriteString("meeting_url=")
	builder.WriteString(_m.MeetingURL)
	builder.WriteString(", ")
	if v := _m.CalendarEventID; v != nil {
		builder.WriteString("calendar_event_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProviderRecordingID; v != nil {
		builder.WriteString("provider_recording_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.MediaStorageURL; v != nil {
		builder.WriteString("media_storage_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MediaStoragePath; v != nil {
		builder.WriteString("media_storage_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("media_upload_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.MediaUploadStatus))
	builder.WriteString(", ")
	builder.WriteString("media_upload_retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MediaUploadRetryCount))
	builder.WriteString(", ")
	if v := _m.MediaUploadLastRetryAt; v != nil {
		builder.WriteString("media_upload_last_retry_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MediaContentType; v != nil {
		builder.WriteString("media_content_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("transcript=")
	builder.WriteString(fmt.Sprintf("%v", _m.Transcript))
	builder.WriteString(", ")
	builder.WriteString("transcript_fetch_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TranscriptFetchAttempts))
	builder.WriteString(", ")
	if v := _m.LastTranscriptFetchAt; v != nil {
		builder.WriteString("last_transcript_fetch_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Recordings is a parsable slice of Recording.
type Recordings []*Recording
