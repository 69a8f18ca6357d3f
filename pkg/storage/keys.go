package storage

import (
	"fmt"
	"strings"
)

// extByContentType maps the media content types the recording providers
// report to canonical file extensions. Unknown types fall back to "bin".
var extByContentType = map[string]string{
	"video/mp4":       "mp4",
	"video/webm":      "webm",
	"video/quicktime": "mov",
	"audio/mpeg":      "mp3",
	"audio/mp4":       "m4a",
	"audio/wav":       "wav",
	"audio/x-wav":     "wav",
	"audio/ogg":       "ogg",
}

// MediaKey returns the canonical object key for a recording's media file:
// meeting-recordings/{org_id}/{user_id}/{recording_id}/recording.{ext}.
func MediaKey(orgID, userID, recordingID, contentType string) string {
	return fmt.Sprintf("meeting-recordings/%s/%s/%s/recording.%s",
		orgID, userID, recordingID, MediaExtension(contentType))
}

// MediaExtension derives the file extension for a media content type.
// Parameters ("video/mp4; codecs=...") are ignored.
func MediaExtension(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ext, ok := extByContentType[ct]; ok {
		return ext
	}
	return "bin"
}
