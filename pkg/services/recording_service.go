package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/recording"
	"github.com/stridehq/cadenza/pkg/models"
)

// RecordingService manages recording lifecycle and the media/transcript
// post-processing fields
type RecordingService struct {
	client *ent.Client
}

// NewRecordingService creates a new RecordingService
func NewRecordingService(client *ent.Client) *RecordingService {
	return &RecordingService{client: client}
}

// Create schedules a new recording
func (s *RecordingService) Create(httpCtx context.Context, req models.CreateRecordingRequest) (*ent.Recording, error) {
	if req.OrgID == "" {
		return nil, NewValidationError("org_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.MeetingPlatform == "" {
		return nil, NewValidationError("meeting_platform", "required")
	}
	if req.MeetingURL == "" {
		return nil, NewValidationError("meeting_url", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Recording.Create().
		SetID(uuid.New().String()).
		SetOrgID(req.OrgID).
		SetUserID(req.UserID).
		SetMeetingPlatform(req.MeetingPlatform).
		SetMeetingURL(req.MeetingURL).
		SetStatus(recording.StatusPending)

	if req.CalendarEventID != "" {
		builder.SetCalendarEventID(req.CalendarEventID)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create recording: %w", err)
	}

	return rec, nil
}

// Get retrieves a recording by ID with optional edge loading
func (s *RecordingService) Get(ctx context.Context, recordingID string, withDeployment bool) (*ent.Recording, error) {
	query := s.client.Recording.Query().Where(recording.IDEQ(recordingID))
	if withDeployment {
		query = query.WithBotDeployment()
	}

	rec, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recording: %w", err)
	}
	return rec, nil
}

// GetByProviderRecordingID retrieves a recording by the recorder-side id
func (s *RecordingService) GetByProviderRecordingID(ctx context.Context, providerRecordingID string) (*ent.Recording, error) {
	rec, err := s.client.Recording.Query().
		Where(recording.ProviderRecordingIDEQ(providerRecordingID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recording by provider id: %w", err)
	}
	return rec, nil
}

// FindByCalendarEvent returns the live recording already scheduled for a
// calendar event, or ErrNotFound. Failed recordings are ignored so a
// meeting can be rescheduled after a failure.
func (s *RecordingService) FindByCalendarEvent(ctx context.Context, orgID, calendarEventID string) (*ent.Recording, error) {
	rec, err := s.client.Recording.Query().
		Where(
			recording.OrgIDEQ(orgID),
			recording.CalendarEventIDEQ(calendarEventID),
			recording.StatusNEQ(recording.StatusFailed),
		).
		Order(ent.Desc(recording.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recording by calendar event: %w", err)
	}
	return rec, nil
}

// List lists recordings with filtering and pagination
func (s *RecordingService) List(ctx context.Context, filters models.RecordingFilters) (*models.RecordingListResponse, error) {
	query := s.client.Recording.Query()

	if filters.OrgID != "" {
		query = query.Where(recording.OrgIDEQ(filters.OrgID))
	}
	if filters.UserID != "" {
		query = query.Where(recording.UserIDEQ(filters.UserID))
	}
	if filters.Status != "" {
		query = query.Where(recording.StatusEQ(recording.Status(filters.Status)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count recordings: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	recordings, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(recording.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recordings: %w", err)
	}

	return &models.RecordingListResponse{
		Recordings: recordings,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateStatus updates a recording's lifecycle status
func (s *RecordingService) UpdateStatus(ctx context.Context, recordingID string, status recording.Status, errMsg string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Recording.UpdateOneID(recordingID).
		SetStatus(status)
	if errMsg != "" {
		update = update.SetErrorMessage(errMsg)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update recording status: %w", err)
	}
	return nil
}

// AttachProviderRecording records the recorder-side recording id once the
// provider reports media availability, and queues the media upload.
func (s *RecordingService) AttachProviderRecording(ctx context.Context, recordingID, providerRecordingID, contentType string) error {
	if providerRecordingID == "" {
		return NewValidationError("provider_recording_id", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Recording.UpdateOneID(recordingID).
		SetProviderRecordingID(providerRecordingID).
		SetStatus(recording.StatusProcessing).
		SetMediaUploadStatus(recording.MediaUploadStatusPending)
	if contentType != "" {
		update = update.SetMediaContentType(contentType)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to attach provider recording: %w", err)
	}
	return nil
}

// QueueMediaUpload moves a finished recording into post-processing: status
// becomes processing and the media upload is queued. No-op once the upload
// has left not_started, so a duplicate provider webhook cannot reset an
// in-flight or finished upload.
func (s *RecordingService) QueueMediaUpload(ctx context.Context, recordingID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Recording.Update().
		Where(
			recording.IDEQ(recordingID),
			recording.MediaUploadStatusEQ(recording.MediaUploadStatusNotStarted),
		).
		SetStatus(recording.StatusProcessing).
		SetMediaUploadStatus(recording.MediaUploadStatusPending).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to queue media upload: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────
// Media upload worker support
// ─────────────────────────────────────────────────────────────

// NextMediaUploads returns recordings whose media is waiting to be copied
// into our object store: freshly queued uploads plus failed ones still
// under the retry limit. The caller applies the per-attempt retry gates;
// FIFO keeps old meetings from starving behind new ones.
func (s *RecordingService) NextMediaUploads(ctx context.Context, limit, maxRetries int) ([]*ent.Recording, error) {
	if limit <= 0 {
		limit = 10
	}

	recordings, err := s.client.Recording.Query().
		Where(
			recording.Or(
				recording.MediaUploadStatusEQ(recording.MediaUploadStatusPending),
				recording.And(
					recording.MediaUploadStatusEQ(recording.MediaUploadStatusFailed),
					recording.MediaUploadRetryCountLT(maxRetries),
				),
			),
		).
		Order(ent.Asc(recording.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query media upload candidates: %w", err)
	}

	return recordings, nil
}

// ClaimMediaUpload atomically moves one recording's upload to in_progress.
// Returns ErrConcurrentModification when another worker claimed it first.
func (s *RecordingService) ClaimMediaUpload(ctx context.Context, recordingID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Recording.Update().
		Where(
			recording.IDEQ(recordingID),
			recording.MediaUploadStatusIn(
				recording.MediaUploadStatusPending,
				recording.MediaUploadStatusFailed,
			),
		).
		SetMediaUploadStatus(recording.MediaUploadStatusInProgress).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to claim media upload: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// CompleteMediaUpload stores the object key and presigned URL and, when the
// recording was still post-processing, marks it ready. URL and path are
// never cleared once set.
func (s *RecordingService) CompleteMediaUpload(ctx context.Context, recordingID, storagePath, storageURL, contentType string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Recording.UpdateOneID(recordingID).
		SetMediaUploadStatus(recording.MediaUploadStatusComplete).
		SetMediaStoragePath(storagePath).
		SetMediaStorageURL(storageURL)
	if contentType != "" {
		update = update.SetMediaContentType(contentType)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete media upload: %w", err)
	}

	// Promote processing → ready; a recording already failed stays failed.
	_, err := s.client.Recording.Update().
		Where(
			recording.IDEQ(recordingID),
			recording.StatusEQ(recording.StatusProcessing),
		).
		SetStatus(recording.StatusReady).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to promote recording to ready: %w", err)
	}
	return nil
}

// FailMediaUpload counts a failed attempt. The recording stays retryable
// until the worker's retry limit; the gate timing lives with the caller.
func (s *RecordingService) FailMediaUpload(ctx context.Context, recordingID, errMsg string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Recording.UpdateOneID(recordingID).
		SetMediaUploadStatus(recording.MediaUploadStatusFailed).
		AddMediaUploadRetryCount(1).
		SetMediaUploadLastRetryAt(time.Now())
	if errMsg != "" {
		update = update.SetErrorMessage(errMsg)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record media upload failure: %w", err)
	}
	return nil
}

// AbandonMediaUpload permanently fails a media upload. The retry count is
// raised to the worker's retry limit so NextMediaUploads stops returning
// the recording. Used when the provider's download URLs have expired and
// no further attempt can succeed.
func (s *RecordingService) AbandonMediaUpload(ctx context.Context, recordingID, reason string, retryFloor int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Recording.UpdateOneID(recordingID).
		SetMediaUploadStatus(recording.MediaUploadStatusFailed).
		SetMediaUploadRetryCount(retryFloor).
		SetMediaUploadLastRetryAt(time.Now())
	if reason != "" {
		update = update.SetErrorMessage(reason)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to abandon media upload: %w", err)
	}
	return nil
}

// RefreshMediaURL replaces the stored presigned URL after re-signing
func (s *RecordingService) RefreshMediaURL(ctx context.Context, recordingID, url string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Recording.UpdateOneID(recordingID).
		SetMediaStorageURL(url).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to refresh media url: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────
// Transcript worker support
// ─────────────────────────────────────────────────────────────

// BeginTranscriptFetch charges one fetch attempt before the provider call
// so a crash mid-fetch still counts against the attempt budget. Returns
// the updated recording (the caller checks the new attempt count).
func (s *RecordingService) BeginTranscriptFetch(ctx context.Context, recordingID string) (*ent.Recording, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec, err := s.client.Recording.UpdateOneID(recordingID).
		AddTranscriptFetchAttempts(1).
		SetLastTranscriptFetchAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to begin transcript fetch: %w", err)
	}
	return rec, nil
}

// SaveTranscript stores a fetched transcript
func (s *RecordingService) SaveTranscript(ctx context.Context, recordingID string, transcript map[string]interface{}) error {
	if transcript == nil {
		return NewValidationError("transcript", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Recording.UpdateOneID(recordingID).
		SetTranscript(transcript).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save transcript: %w", err)
	}
	return nil
}
