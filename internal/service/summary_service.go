// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mety-app/session-service/internal/domain"
	"github.com/mety-app/session-service/internal/logging"
	"github.com/mety-app/session-service/pkg/constants"
)

// SummaryService renders a short text summary of a meeting from the tail of
// its chat log. A real implementation would front an AI summarization
// collaborator; the sampling contract stays the same.
type SummaryService struct {
	MeetingRepository domain.MeetingRepository
	MessageRepository domain.MessageRepository
	Config            ServiceConfig
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(
	meetingRepository domain.MeetingRepository,
	messageRepository domain.MessageRepository,
	config ServiceConfig,
) *SummaryService {
	return &SummaryService{
		MeetingRepository: meetingRepository,
		MessageRepository: messageRepository,
		Config:            config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *SummaryService) ServiceReady() bool {
	return s.MeetingRepository != nil && s.MessageRepository != nil
}

// Summarize renders the last few chat messages of the meeting as a bullet
// list. Summaries are derived on each call and never stored.
func (s *SummaryService) Summarize(ctx context.Context, meetingUID string) (string, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return "", domain.NewUnavailableError("service not initialized")
	}

	exists, err := s.MeetingRepository.Exists(ctx, meetingUID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.NewNotFoundError("meeting not found")
	}

	messages, err := s.MessageRepository.ListByMeeting(ctx, meetingUID)
	if err != nil {
		slog.ErrorContext(ctx, "error listing chat messages for summary", logging.ErrKey, err, "meeting_uid", meetingUID)
		return "", err
	}

	sample := s.Config.SummaryMessageSample
	if sample <= 0 {
		sample = constants.SummaryMessageSample
	}
	if len(messages) > sample {
		messages = messages[len(messages)-sample:]
	}

	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("- %s: %s", m.SenderName, m.Content))
	}
	body := strings.Join(lines, "\n")
	if body == "" {
		body = "- No messages yet."
	}

	return fmt.Sprintf("Summary for meeting %s:\n%s", meetingUID, body), nil
}
