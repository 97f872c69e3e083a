// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mety-app/session-service/internal/domain"
	"github.com/mety-app/session-service/internal/domain/models"
	"github.com/mety-app/session-service/internal/logging"
	"github.com/mety-app/session-service/pkg/idgen"
)

// RecordingService implements the two-state recording lifecycle of a
// meeting: Idle -> Recording -> Idle. Out-of-sequence transitions are
// rejected rather than treated as idempotent, so a double start and a stop
// while idle both fail loudly.
type RecordingService struct {
	MeetingRepository   domain.MeetingRepository
	RecordingRepository domain.RecordingStateRepository
	MessageBuilder      domain.MessageBuilder
	Config              ServiceConfig
}

// NewRecordingService creates a new RecordingService.
func NewRecordingService(
	meetingRepository domain.MeetingRepository,
	recordingRepository domain.RecordingStateRepository,
	messageBuilder domain.MessageBuilder,
	config ServiceConfig,
) *RecordingService {
	return &RecordingService{
		MeetingRepository:   meetingRepository,
		RecordingRepository: recordingRepository,
		MessageBuilder:      messageBuilder,
		Config:              config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *RecordingService) ServiceReady() bool {
	return s.MeetingRepository != nil &&
		s.RecordingRepository != nil &&
		s.MessageBuilder != nil
}

func (s *RecordingService) checkMeetingExists(ctx context.Context, meetingUID string) error {
	exists, err := s.MeetingRepository.Exists(ctx, meetingUID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFoundError("meeting not found")
	}
	return nil
}

// StartRecording transitions the meeting to Recording and returns the
// freshly generated handle needed to stop it.
func (s *RecordingService) StartRecording(ctx context.Context, meetingUID string) (*models.Recording, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if err := s.checkMeetingExists(ctx, meetingUID); err != nil {
		return nil, err
	}

	recording := &models.Recording{
		UID:        idgen.New(),
		MeetingUID: meetingUID,
		StartedAt:  time.Now().UTC(),
	}

	if err := s.RecordingRepository.Begin(ctx, recording); err != nil {
		slog.DebugContext(ctx, "error starting recording", logging.ErrKey, err, "meeting_uid", meetingUID)
		return nil, err
	}

	if err := s.MessageBuilder.SendRecordingStarted(ctx, *recording); err != nil {
		slog.WarnContext(ctx, "error publishing recording started event", logging.ErrKey, err, "recording_uid", recording.UID)
	}

	slog.DebugContext(ctx, "recording started", "meeting_uid", meetingUID, "recording_uid", recording.UID)

	return recording, nil
}

// StopRecording transitions the meeting back to Idle and returns the
// playback reference derived from the handle. The same handle always
// derives the same reference.
func (s *RecordingService) StopRecording(ctx context.Context, meetingUID, recordingUID string) (string, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return "", domain.NewUnavailableError("service not initialized")
	}

	if err := s.checkMeetingExists(ctx, meetingUID); err != nil {
		return "", err
	}

	recording, err := s.RecordingRepository.End(ctx, meetingUID, recordingUID)
	if err != nil {
		slog.DebugContext(ctx, "error stopping recording", logging.ErrKey, err, "meeting_uid", meetingUID, "recording_uid", recordingUID)
		return "", err
	}

	playbackRef := recording.PlaybackReference()

	if err := s.MessageBuilder.SendRecordingStopped(ctx, *recording, playbackRef); err != nil {
		slog.WarnContext(ctx, "error publishing recording stopped event", logging.ErrKey, err, "recording_uid", recording.UID)
	}

	slog.DebugContext(ctx, "recording stopped", "meeting_uid", meetingUID, "recording_uid", recording.UID)

	return playbackRef, nil
}
