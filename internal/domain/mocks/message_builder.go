// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mety-app/session-service/internal/domain/models"
)

// MockMessageBuilder implements domain.MessageBuilder for testing
type MockMessageBuilder struct {
	mock.Mock
}

func (m *MockMessageBuilder) SendMeetingCreated(ctx context.Context, meeting models.Meeting) error {
	args := m.Called(ctx, meeting)
	return args.Error(0)
}

func (m *MockMessageBuilder) SendParticipantJoined(ctx context.Context, participant models.Participant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *MockMessageBuilder) SendParticipantLeft(ctx context.Context, meetingUID, participantUID string) error {
	args := m.Called(ctx, meetingUID, participantUID)
	return args.Error(0)
}

func (m *MockMessageBuilder) SendParticipantUpdated(ctx context.Context, participant models.Participant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *MockMessageBuilder) SendMessageSent(ctx context.Context, message models.ChatMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageBuilder) SendFileUploaded(ctx context.Context, file models.FileItem) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockMessageBuilder) SendCaptionAppended(ctx context.Context, caption models.Caption) error {
	args := m.Called(ctx, caption)
	return args.Error(0)
}

func (m *MockMessageBuilder) SendRecordingStarted(ctx context.Context, recording models.Recording) error {
	args := m.Called(ctx, recording)
	return args.Error(0)
}

func (m *MockMessageBuilder) SendRecordingStopped(ctx context.Context, recording models.Recording, playbackRef string) error {
	args := m.Called(ctx, recording, playbackRef)
	return args.Error(0)
}
