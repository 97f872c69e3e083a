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
	"github.com/mety-app/session-service/internal/utils"
	"github.com/mety-app/session-service/pkg/idgen"
)

// ChatService implements the append-only chat log of a meeting.
type ChatService struct {
	MeetingRepository domain.MeetingRepository
	MessageRepository domain.MessageRepository
	MessageBuilder    domain.MessageBuilder
	Config            ServiceConfig
}

// NewChatService creates a new ChatService.
func NewChatService(
	meetingRepository domain.MeetingRepository,
	messageRepository domain.MessageRepository,
	messageBuilder domain.MessageBuilder,
	config ServiceConfig,
) *ChatService {
	return &ChatService{
		MeetingRepository: meetingRepository,
		MessageRepository: messageRepository,
		MessageBuilder:    messageBuilder,
		Config:            config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *ChatService) ServiceReady() bool {
	return s.MeetingRepository != nil &&
		s.MessageRepository != nil &&
		s.MessageBuilder != nil
}

// SendMessage sanitizes and appends one chat message. Empty or
// whitespace-only content is the presentation layer's problem to block;
// the store accepts whatever non-rejected content reaches it.
func (s *ChatService) SendMessage(ctx context.Context, meetingUID, senderUID, senderName, content string) (*models.ChatMessage, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	exists, err := s.MeetingRepository.Exists(ctx, meetingUID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("meeting not found")
	}

	message := &models.ChatMessage{
		UID:        idgen.New(),
		MeetingUID: meetingUID,
		SenderUID:  senderUID,
		SenderName: senderName,
		Content:    utils.SanitizeText(content),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.MessageRepository.Append(ctx, message); err != nil {
		slog.ErrorContext(ctx, "error appending chat message", logging.ErrKey, err, "meeting_uid", meetingUID)
		return nil, err
	}

	if err := s.MessageBuilder.SendMessageSent(ctx, *message); err != nil {
		slog.WarnContext(ctx, "error publishing message sent event", logging.ErrKey, err, "message_uid", message.UID)
	}

	return message, nil
}

// ListMessages returns the chat log in append order, oldest first. The log
// is never re-sorted by timestamp.
func (s *ChatService) ListMessages(ctx context.Context, meetingUID string) ([]*models.ChatMessage, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	exists, err := s.MeetingRepository.Exists(ctx, meetingUID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("meeting not found")
	}

	messages, err := s.MessageRepository.ListByMeeting(ctx, meetingUID)
	if err != nil {
		slog.ErrorContext(ctx, "error listing chat messages", logging.ErrKey, err, "meeting_uid", meetingUID)
		return nil, err
	}

	return messages, nil
}
