package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaKey(t *testing.T) {
	key := MediaKey("org-1", "user-7", "rec-42", "video/mp4")
	assert.Equal(t, "meeting-recordings/org-1/user-7/rec-42/recording.mp4", key)
}

func TestMediaExtension(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        string
	}{
		{name: "mp4 video", contentType: "video/mp4", want: "mp4"},
		{name: "webm video", contentType: "video/webm", want: "webm"},
		{name: "mp3 audio", contentType: "audio/mpeg", want: "mp3"},
		{name: "wav alias", contentType: "audio/x-wav", want: "wav"},
		{name: "codec parameters ignored", contentType: "video/mp4; codecs=avc1.42E01E", want: "mp4"},
		{name: "case insensitive", contentType: "Video/MP4", want: "mp4"},
		{name: "unknown type falls back", contentType: "application/octet-stream", want: "bin"},
		{name: "empty falls back", contentType: "", want: "bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MediaExtension(tt.contentType))
		})
	}
}
