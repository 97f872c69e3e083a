// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mety-app/session-service/internal/domain"
	"github.com/mety-app/session-service/internal/domain/models"
	"github.com/mety-app/session-service/internal/logging"
	"github.com/mety-app/session-service/pkg/concurrent"
)

// SessionService is the facade composing the per-entity services under one
// surface keyed by meeting UID. It performs no validation of its own beyond
// delegating to the owned services, and it is the only type the layers
// above this package depend on.
type SessionService struct {
	Meetings     *MeetingService
	Participants *ParticipantService
	Chat         *ChatService
	Files        *FileService
	Captions     *CaptionService
	Recordings   *RecordingService
	Summaries    *SummaryService
}

// NewSessionService creates the facade over already constructed services.
func NewSessionService(
	meetings *MeetingService,
	participants *ParticipantService,
	chat *ChatService,
	files *FileService,
	captions *CaptionService,
	recordings *RecordingService,
	summaries *SummaryService,
) *SessionService {
	return &SessionService{
		Meetings:     meetings,
		Participants: participants,
		Chat:         chat,
		Files:        files,
		Captions:     captions,
		Recordings:   recordings,
		Summaries:    summaries,
	}
}

// ServiceReady checks if every composed service is ready for use.
func (s *SessionService) ServiceReady() bool {
	return s.Meetings != nil && s.Meetings.ServiceReady() &&
		s.Participants != nil && s.Participants.ServiceReady() &&
		s.Chat != nil && s.Chat.ServiceReady() &&
		s.Files != nil && s.Files.ServiceReady() &&
		s.Captions != nil && s.Captions.ServiceReady() &&
		s.Recordings != nil && s.Recordings.ServiceReady() &&
		s.Summaries != nil && s.Summaries.ServiceReady()
}

// CreateMeeting delegates to the meeting registry.
func (s *SessionService) CreateMeeting(ctx context.Context, title, scheduledFor string) (*models.Meeting, error) {
	return s.Meetings.CreateMeeting(ctx, title, scheduledFor)
}

// GetMeeting delegates to the meeting registry.
func (s *SessionService) GetMeeting(ctx context.Context, meetingUID string) (*models.Meeting, error) {
	return s.Meetings.GetMeeting(ctx, meetingUID)
}

// ListMeetings delegates to the meeting registry.
func (s *SessionService) ListMeetings(ctx context.Context) ([]*models.Meeting, error) {
	return s.Meetings.ListMeetings(ctx)
}

// JoinMeeting delegates to the roster.
func (s *SessionService) JoinMeeting(ctx context.Context, meetingUID, name string, opts *models.ParticipantOptions) (*models.Participant, error) {
	return s.Participants.JoinMeeting(ctx, meetingUID, name, opts)
}

// LeaveMeeting delegates to the roster.
func (s *SessionService) LeaveMeeting(ctx context.Context, meetingUID, participantUID string) error {
	return s.Participants.LeaveMeeting(ctx, meetingUID, participantUID)
}

// ToggleMic delegates to the roster.
func (s *SessionService) ToggleMic(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
	return s.Participants.ToggleMic(ctx, meetingUID, participantUID)
}

// ToggleCam delegates to the roster.
func (s *SessionService) ToggleCam(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
	return s.Participants.ToggleCam(ctx, meetingUID, participantUID)
}

// ListParticipants delegates to the roster.
func (s *SessionService) ListParticipants(ctx context.Context, meetingUID string) ([]*models.Participant, error) {
	return s.Participants.ListParticipants(ctx, meetingUID)
}

// SendMessage delegates to the chat log.
func (s *SessionService) SendMessage(ctx context.Context, meetingUID, senderUID, senderName, content string) (*models.ChatMessage, error) {
	return s.Chat.SendMessage(ctx, meetingUID, senderUID, senderName, content)
}

// ListMessages delegates to the chat log.
func (s *SessionService) ListMessages(ctx context.Context, meetingUID string) ([]*models.ChatMessage, error) {
	return s.Chat.ListMessages(ctx, meetingUID)
}

// UploadFile delegates to the file registry.
func (s *SessionService) UploadFile(ctx context.Context, meetingUID string, descriptor models.FileDescriptor) (*models.FileItem, error) {
	return s.Files.UploadFile(ctx, meetingUID, descriptor)
}

// DownloadFile delegates to the file registry.
func (s *SessionService) DownloadFile(ctx context.Context, meetingUID, fileUID string) error {
	return s.Files.DownloadFile(ctx, meetingUID, fileUID)
}

// ListFiles delegates to the file registry.
func (s *SessionService) ListFiles(ctx context.Context, meetingUID string) ([]*models.FileItem, error) {
	return s.Files.ListFiles(ctx, meetingUID)
}

// NextCaption delegates to the caption stream.
func (s *SessionService) NextCaption(ctx context.Context, meetingUID, lang string) (*models.Caption, error) {
	return s.Captions.NextCaption(ctx, meetingUID, lang)
}

// Translate delegates to the caption stream.
func (s *SessionService) Translate(ctx context.Context, text, targetLang string) (string, error) {
	return s.Captions.Translate(ctx, text, targetLang)
}

// ListCaptions delegates to the caption stream.
func (s *SessionService) ListCaptions(ctx context.Context, meetingUID string) ([]*models.Caption, error) {
	return s.Captions.ListCaptions(ctx, meetingUID)
}

// StartRecording delegates to the recording controller.
func (s *SessionService) StartRecording(ctx context.Context, meetingUID string) (*models.Recording, error) {
	return s.Recordings.StartRecording(ctx, meetingUID)
}

// StopRecording delegates to the recording controller.
func (s *SessionService) StopRecording(ctx context.Context, meetingUID, recordingUID string) (string, error) {
	return s.Recordings.StopRecording(ctx, meetingUID, recordingUID)
}

// Summarize delegates to the summary service.
func (s *SessionService) Summarize(ctx context.Context, meetingUID string) (string, error) {
	return s.Summaries.Summarize(ctx, meetingUID)
}

// GetSessionState assembles the full read-model of one meeting, fetching
// the sub-collections concurrently. An idle recording state is not an
// error; any other failure aborts the snapshot.
func (s *SessionService) GetSessionState(ctx context.Context, meetingUID string) (*models.SessionState, error) {
	meeting, err := s.Meetings.GetMeeting(ctx, meetingUID)
	if err != nil {
		return nil, err
	}

	state := &models.SessionState{Meeting: meeting}

	pool := concurrent.NewWorkerPool(4)
	err = pool.Run(ctx,
		func() error {
			participants, err := s.Participants.ListParticipants(ctx, meetingUID)
			if err != nil {
				return err
			}
			state.Participants = participants
			return nil
		},
		func() error {
			messages, err := s.Chat.ListMessages(ctx, meetingUID)
			if err != nil {
				return err
			}
			state.Messages = messages
			return nil
		},
		func() error {
			files, err := s.Files.ListFiles(ctx, meetingUID)
			if err != nil {
				return err
			}
			state.Files = files
			return nil
		},
		func() error {
			captions, err := s.Captions.ListCaptions(ctx, meetingUID)
			if err != nil {
				return err
			}
			state.Captions = captions
			return nil
		},
		func() error {
			recording, err := s.Recordings.RecordingRepository.Active(ctx, meetingUID)
			if err != nil {
				var domainErr *domain.DomainError
				if errors.As(err, &domainErr) && domainErr.Type == domain.ErrorTypeNotFound {
					return nil
				}
				return err
			}
			state.Recording = recording
			return nil
		},
	)
	if err != nil {
		slog.ErrorContext(ctx, "error assembling session state", logging.ErrKey, err, "meeting_uid", meetingUID)
		return nil, err
	}

	return state, nil
}
