package models

import (
	"strings"
	"time"

	"github.com/stridehq/cadenza/ent"
)

// Attendee is one calendar event participant, used by rule evaluation.
type Attendee struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Domain returns the lowercase email domain, empty when unparseable.
func (a Attendee) Domain() string {
	at := strings.LastIndexByte(a.Email, '@')
	if at < 0 || at == len(a.Email)-1 {
		return ""
	}
	return strings.ToLower(a.Email[at+1:])
}

// MeetingInfo is the rule-evaluation input built from a calendar event.
type MeetingInfo struct {
	CalendarEventID string     `json:"calendar_event_id"`
	Title           string     `json:"title"`
	MeetingURL      string     `json:"meeting_url"`
	Platform        string     `json:"platform"`
	StartTime       time.Time  `json:"start_time"`
	OrganizerEmail  string     `json:"organizer_email"`
	OrgDomain       string     `json:"org_domain"` // the tenant's own domain, for internal/external checks
	Attendees       []Attendee `json:"attendees"`
}

// ExternalAttendees counts attendees outside the tenant's domain.
func (m *MeetingInfo) ExternalAttendees() int {
	external := 0
	for _, a := range m.Attendees {
		if d := a.Domain(); d != "" && d != strings.ToLower(m.OrgDomain) {
			external++
		}
	}
	return external
}

// RecordingTarget is the payload applied when a recording rule matches.
type RecordingTarget struct {
	ProjectID string `json:"project_id,omitempty"`
	Priority  string `json:"priority,omitempty"`
	OwnerID   string `json:"owner_id,omitempty"`
}

// ToMap converts the target for JSON storage, omitting empty fields
func (t *RecordingTarget) ToMap() map[string]interface{} {
	m := map[string]interface{}{}
	if t.ProjectID != "" {
		m["project_id"] = t.ProjectID
	}
	if t.Priority != "" {
		m["priority"] = t.Priority
	}
	if t.OwnerID != "" {
		m["owner_id"] = t.OwnerID
	}
	return m
}

// RecordingTargetFromMap reads a stored target back out of its JSON form
func RecordingTargetFromMap(m map[string]interface{}) *RecordingTarget {
	if m == nil {
		return nil
	}
	return &RecordingTarget{
		ProjectID: firstString(m, "project_id"),
		Priority:  firstString(m, "priority"),
		OwnerID:   firstString(m, "owner_id"),
	}
}

// TicketTarget is the payload applied when a routing rule matches an
// error event.
type TicketTarget struct {
	ProjectID string `json:"project_id"`
	Priority  string `json:"priority"`
}

// ToMap converts the target for JSON storage
func (t *TicketTarget) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"project_id": t.ProjectID,
		"priority":   t.Priority,
	}
}

// TicketTargetFromMap reads a stored target back out of its JSON form
func TicketTargetFromMap(m map[string]interface{}) *TicketTarget {
	if m == nil {
		return nil
	}
	return &TicketTarget{
		ProjectID: firstString(m, "project_id"),
		Priority:  firstString(m, "priority"),
	}
}

// CreateRecordingRequest contains fields for scheduling a recording
type CreateRecordingRequest struct {
	OrgID           string    `json:"org_id"`
	UserID          string    `json:"user_id"`
	MeetingPlatform string    `json:"meeting_platform"`
	MeetingURL      string    `json:"meeting_url"`
	CalendarEventID string    `json:"calendar_event_id,omitempty"`
	ScheduledJoinAt time.Time `json:"scheduled_join_at"`
}

// CreateBotDeploymentRequest contains fields for deploying a recorder bot
type CreateBotDeploymentRequest struct {
	OrgID             string    `json:"org_id"`
	RecordingID       string    `json:"recording_id"`
	BotID             string    `json:"bot_id"`
	ScheduledJoinTime time.Time `json:"scheduled_join_time"`
}

// BotStatusChangeRequest contains fields for appending a provider-reported
// status transition to a deployment's history
type BotStatusChangeRequest struct {
	Status     string    `json:"status"`
	Detail     string    `json:"detail,omitempty"`
	ErrorCode  string    `json:"error_code,omitempty"`
	OccurredAt time.Time `json:"occurred_at,omitempty"`
}

// RecordingFilters contains filtering options for listing recordings
type RecordingFilters struct {
	OrgID  string `json:"org_id,omitempty"`
	UserID string `json:"user_id,omitempty"`
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// RecordingResponse wraps a Recording with optional loaded edges
type RecordingResponse struct {
	*ent.Recording
	// PlaybackURL is a fresh presigned URL, set on detail reads when
	// media upload is complete.
	PlaybackURL string `json:"playback_url,omitempty"`
}

// RecordingListResponse contains a paginated recording list
type RecordingListResponse struct {
	Recordings []*ent.Recording `json:"recordings"`
	TotalCount int              `json:"total_count"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
}

// CreateRecordingRuleRequest contains fields for creating a recording rule
type CreateRecordingRuleRequest struct {
	OrgID                string           `json:"org_id"`
	Name                 string           `json:"name"`
	Priority             int              `json:"priority"`
	Enabled              *bool            `json:"enabled,omitempty"`
	TestMode             bool             `json:"test_mode,omitempty"`
	TitleExcludeKeywords []string         `json:"title_exclude_keywords,omitempty"`
	TitleIncludeKeywords []string         `json:"title_include_keywords,omitempty"`
	MinAttendees         *int             `json:"min_attendees,omitempty"`
	MaxAttendees         *int             `json:"max_attendees,omitempty"`
	DomainMode           string           `json:"domain_mode,omitempty"`
	SpecificDomains      []string         `json:"specific_domains,omitempty"`
	Target               *RecordingTarget `json:"target,omitempty"`
}

// CreateRoutingRuleRequest contains fields for creating a routing rule
type CreateRoutingRuleRequest struct {
	OrgID               string        `json:"org_id"`
	Name                string        `json:"name"`
	Priority            int           `json:"priority"`
	Enabled             *bool         `json:"enabled,omitempty"`
	TestMode            bool          `json:"test_mode,omitempty"`
	MatchLevel          string        `json:"match_level,omitempty"`
	MatchEnvironment    string        `json:"match_environment,omitempty"`
	MatchReleasePattern string        `json:"match_release_pattern,omitempty"`
	MatchTitlePattern   string        `json:"match_title_pattern,omitempty"`
	Target              *TicketTarget `json:"target,omitempty"`
}
