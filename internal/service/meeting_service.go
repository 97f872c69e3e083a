// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/mety-app/session-service/internal/domain"
	"github.com/mety-app/session-service/internal/domain/models"
	"github.com/mety-app/session-service/internal/logging"
	"github.com/mety-app/session-service/pkg/constants"
	"github.com/mety-app/session-service/pkg/idgen"
)

// MeetingService implements the meeting registry: it is the only component
// that creates meetings and the root every other service validates against.
type MeetingService struct {
	MeetingRepository domain.MeetingRepository
	MessageBuilder    domain.MessageBuilder
	Config            ServiceConfig
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(
	meetingRepository domain.MeetingRepository,
	messageBuilder domain.MessageBuilder,
	config ServiceConfig,
) *MeetingService {
	return &MeetingService{
		MeetingRepository: meetingRepository,
		MessageBuilder:    messageBuilder,
		Config:            config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *MeetingService) ServiceReady() bool {
	return s.MeetingRepository != nil && s.MessageBuilder != nil
}

// CreateMeeting registers a new meeting together with its empty roster and
// logs. A blank title is corrected to the default rather than rejected;
// creation never fails on input.
func (s *MeetingService) CreateMeeting(ctx context.Context, title, scheduledFor string) (*models.Meeting, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = constants.DefaultMeetingTitle
	}

	meeting := &models.Meeting{
		UID:          idgen.New(),
		Title:        title,
		ScheduledFor: scheduledFor,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.MeetingRepository.Create(ctx, meeting); err != nil {
		slog.ErrorContext(ctx, "error creating meeting", logging.ErrKey, err)
		return nil, err
	}

	if err := s.MessageBuilder.SendMeetingCreated(ctx, *meeting); err != nil {
		slog.WarnContext(ctx, "error publishing meeting created event", logging.ErrKey, err, "meeting_uid", meeting.UID)
	}

	slog.DebugContext(ctx, "created meeting", "meeting_uid", meeting.UID, "title", meeting.Title)

	return meeting, nil
}

// GetMeeting fetches one meeting by UID.
func (s *MeetingService) GetMeeting(ctx context.Context, meetingUID string) (*models.Meeting, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	meeting, err := s.MeetingRepository.Get(ctx, meetingUID)
	if err != nil {
		slog.DebugContext(ctx, "error getting meeting", logging.ErrKey, err, "meeting_uid", meetingUID)
		return nil, err
	}

	return meeting, nil
}

// ListMeetings fetches all meetings sorted by creation time, most recent
// first. The order is derived on every call, never cached.
func (s *MeetingService) ListMeetings(ctx context.Context) ([]*models.Meeting, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	meetings, err := s.MeetingRepository.ListAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "error listing meetings", logging.ErrKey, err)
		return nil, err
	}

	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].CreatedAt.After(meetings[j].CreatedAt)
	})

	return meetings, nil
}
