// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mety-app/session-service/internal/domain/models"
)

// MockMeetingRepository implements domain.MeetingRepository for testing
type MockMeetingRepository struct {
	mock.Mock
}

func (m *MockMeetingRepository) Create(ctx context.Context, meeting *models.Meeting) error {
	args := m.Called(ctx, meeting)
	return args.Error(0)
}

func (m *MockMeetingRepository) Get(ctx context.Context, meetingUID string) (*models.Meeting, error) {
	args := m.Called(ctx, meetingUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) Exists(ctx context.Context, meetingUID string) (bool, error) {
	args := m.Called(ctx, meetingUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMeetingRepository) ListAll(ctx context.Context) ([]*models.Meeting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Meeting), args.Error(1)
}

// MockParticipantRepository implements domain.ParticipantRepository for testing
type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) Add(ctx context.Context, participant *models.Participant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *MockParticipantRepository) Remove(ctx context.Context, meetingUID, participantUID string) error {
	args := m.Called(ctx, meetingUID, participantUID)
	return args.Error(0)
}

func (m *MockParticipantRepository) Get(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
	args := m.Called(ctx, meetingUID, participantUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Participant), args.Error(1)
}

func (m *MockParticipantRepository) ToggleMic(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
	args := m.Called(ctx, meetingUID, participantUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Participant), args.Error(1)
}

func (m *MockParticipantRepository) ToggleCam(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
	args := m.Called(ctx, meetingUID, participantUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Participant), args.Error(1)
}

func (m *MockParticipantRepository) ListByMeeting(ctx context.Context, meetingUID string) ([]*models.Participant, error) {
	args := m.Called(ctx, meetingUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Participant), args.Error(1)
}

// MockMessageRepository implements domain.MessageRepository for testing
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Append(ctx context.Context, message *models.ChatMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) ListByMeeting(ctx context.Context, meetingUID string) ([]*models.ChatMessage, error) {
	args := m.Called(ctx, meetingUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ChatMessage), args.Error(1)
}

// MockFileRepository implements domain.FileRepository for testing
type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Append(ctx context.Context, file *models.FileItem) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileRepository) Get(ctx context.Context, meetingUID, fileUID string) (*models.FileItem, error) {
	args := m.Called(ctx, meetingUID, fileUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FileItem), args.Error(1)
}

func (m *MockFileRepository) ListByMeeting(ctx context.Context, meetingUID string) ([]*models.FileItem, error) {
	args := m.Called(ctx, meetingUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FileItem), args.Error(1)
}

// MockCaptionRepository implements domain.CaptionRepository for testing
type MockCaptionRepository struct {
	mock.Mock
}

func (m *MockCaptionRepository) Append(ctx context.Context, caption *models.Caption) error {
	args := m.Called(ctx, caption)
	return args.Error(0)
}

func (m *MockCaptionRepository) ListByMeeting(ctx context.Context, meetingUID string) ([]*models.Caption, error) {
	args := m.Called(ctx, meetingUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Caption), args.Error(1)
}

// MockRecordingStateRepository implements domain.RecordingStateRepository for testing
type MockRecordingStateRepository struct {
	mock.Mock
}

func (m *MockRecordingStateRepository) Begin(ctx context.Context, recording *models.Recording) error {
	args := m.Called(ctx, recording)
	return args.Error(0)
}

func (m *MockRecordingStateRepository) End(ctx context.Context, meetingUID, recordingUID string) (*models.Recording, error) {
	args := m.Called(ctx, meetingUID, recordingUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recording), args.Error(1)
}

func (m *MockRecordingStateRepository) Active(ctx context.Context, meetingUID string) (*models.Recording, error) {
	args := m.Called(ctx, meetingUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recording), args.Error(1)
}
