// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"

	"github.com/mety-app/session-service/internal/domain"
	"github.com/mety-app/session-service/internal/domain/models"
	"github.com/mety-app/session-service/internal/logging"
	"github.com/mety-app/session-service/pkg/idgen"
)

// ParticipantService implements the roster operations for a meeting.
// Every operation validates meeting existence first: the store never lazily
// creates a roster for an unknown meeting, since that would mask client bugs.
type ParticipantService struct {
	MeetingRepository     domain.MeetingRepository
	ParticipantRepository domain.ParticipantRepository
	MessageBuilder        domain.MessageBuilder
	Config                ServiceConfig
}

// NewParticipantService creates a new ParticipantService.
func NewParticipantService(
	meetingRepository domain.MeetingRepository,
	participantRepository domain.ParticipantRepository,
	messageBuilder domain.MessageBuilder,
	config ServiceConfig,
) *ParticipantService {
	return &ParticipantService{
		MeetingRepository:     meetingRepository,
		ParticipantRepository: participantRepository,
		MessageBuilder:        messageBuilder,
		Config:                config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *ParticipantService) ServiceReady() bool {
	return s.MeetingRepository != nil &&
		s.ParticipantRepository != nil &&
		s.MessageBuilder != nil
}

func (s *ParticipantService) checkMeetingExists(ctx context.Context, meetingUID string) error {
	exists, err := s.MeetingRepository.Exists(ctx, meetingUID)
	if err != nil {
		return err
	}
	if !exists {
		slog.DebugContext(ctx, "meeting not found", "meeting_uid", meetingUID)
		return domain.NewNotFoundError("meeting not found")
	}
	return nil
}

// JoinMeeting appends a new participant to the meeting's roster. Mic and
// camera default to on; options override the defaults field by field.
func (s *ParticipantService) JoinMeeting(ctx context.Context, meetingUID, name string, opts *models.ParticipantOptions) (*models.Participant, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if err := s.checkMeetingExists(ctx, meetingUID); err != nil {
		return nil, err
	}

	participant := &models.Participant{
		UID:        idgen.New(),
		MeetingUID: meetingUID,
		Name:       name,
		MicOn:      true,
		CamOn:      true,
	}
	participant.ApplyOptions(opts)

	if err := s.ParticipantRepository.Add(ctx, participant); err != nil {
		slog.ErrorContext(ctx, "error adding participant", logging.ErrKey, err, "meeting_uid", meetingUID)
		return nil, err
	}

	if err := s.MessageBuilder.SendParticipantJoined(ctx, *participant); err != nil {
		slog.WarnContext(ctx, "error publishing participant joined event", logging.ErrKey, err, "participant_uid", participant.UID)
	}

	slog.DebugContext(ctx, "participant joined", "meeting_uid", meetingUID, "participant_uid", participant.UID)

	return participant, nil
}

// LeaveMeeting removes the participant from the roster. Leaving twice is a
// no-op, not an error; participant identifiers are never reused.
func (s *ParticipantService) LeaveMeeting(ctx context.Context, meetingUID, participantUID string) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return domain.NewUnavailableError("service not initialized")
	}

	if err := s.checkMeetingExists(ctx, meetingUID); err != nil {
		return err
	}

	if err := s.ParticipantRepository.Remove(ctx, meetingUID, participantUID); err != nil {
		slog.ErrorContext(ctx, "error removing participant", logging.ErrKey, err, "meeting_uid", meetingUID, "participant_uid", participantUID)
		return err
	}

	if err := s.MessageBuilder.SendParticipantLeft(ctx, meetingUID, participantUID); err != nil {
		slog.WarnContext(ctx, "error publishing participant left event", logging.ErrKey, err, "participant_uid", participantUID)
	}

	return nil
}

// ToggleMic flips the participant's microphone flag and returns the updated
// record. An unknown participant is an explicit not-found error so callers
// cannot mistake it for a successful no-op.
func (s *ParticipantService) ToggleMic(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
	return s.toggle(ctx, meetingUID, participantUID, func(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
		return s.ParticipantRepository.ToggleMic(ctx, meetingUID, participantUID)
	})
}

// ToggleCam flips the participant's camera flag, symmetric to ToggleMic.
func (s *ParticipantService) ToggleCam(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
	return s.toggle(ctx, meetingUID, participantUID, func(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
		return s.ParticipantRepository.ToggleCam(ctx, meetingUID, participantUID)
	})
}

func (s *ParticipantService) toggle(
	ctx context.Context,
	meetingUID, participantUID string,
	flip func(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error),
) (*models.Participant, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if err := s.checkMeetingExists(ctx, meetingUID); err != nil {
		return nil, err
	}

	participant, err := flip(ctx, meetingUID, participantUID)
	if err != nil {
		slog.DebugContext(ctx, "error toggling participant device", logging.ErrKey, err, "meeting_uid", meetingUID, "participant_uid", participantUID)
		return nil, err
	}

	if err := s.MessageBuilder.SendParticipantUpdated(ctx, *participant); err != nil {
		slog.WarnContext(ctx, "error publishing participant updated event", logging.ErrKey, err, "participant_uid", participantUID)
	}

	return participant, nil
}

// ListParticipants returns the roster in insertion order.
func (s *ParticipantService) ListParticipants(ctx context.Context, meetingUID string) ([]*models.Participant, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if err := s.checkMeetingExists(ctx, meetingUID); err != nil {
		return nil, err
	}

	participants, err := s.ParticipantRepository.ListByMeeting(ctx, meetingUID)
	if err != nil {
		slog.ErrorContext(ctx, "error listing participants", logging.ErrKey, err, "meeting_uid", meetingUID)
		return nil, err
	}

	return participants, nil
}
