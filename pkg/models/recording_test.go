package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendeeDomain(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"dana@Buyer.Example", "buyer.example"},
		{"ops@stride.example", "stride.example"},
		{"no-at-sign", ""},
		{"trailing@", ""},
		{"", ""},
		{"quoted@weird@buyer.example", "buyer.example"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Attendee{Email: tt.email}.Domain(), "email %q", tt.email)
	}
}

func TestMeetingInfoExternalAttendees(t *testing.T) {
	meeting := &MeetingInfo{
		OrgDomain: "Stride.Example",
		Attendees: []Attendee{
			{Email: "ae@stride.example"},
			{Email: "dana@buyer.example"},
			{Email: "ola@buyer.example"},
			{Email: "broken-address"},
		},
	}
	assert.Equal(t, 2, meeting.ExternalAttendees())

	internal := &MeetingInfo{
		OrgDomain: "stride.example",
		Attendees: []Attendee{{Email: "a@stride.example"}, {Email: "b@stride.example"}},
	}
	assert.Equal(t, 0, internal.ExternalAttendees())
}
