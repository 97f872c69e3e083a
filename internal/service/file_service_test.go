// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mety-app/session-service/internal/domain"
	"github.com/mety-app/session-service/internal/domain/mocks"
	"github.com/mety-app/session-service/internal/domain/models"
)

func newFileServiceForTest() (*FileService, *mocks.MockMeetingRepository, *mocks.MockFileRepository, *mocks.MockMessageBuilder) {
	meetingRepo := &mocks.MockMeetingRepository{}
	fileRepo := &mocks.MockFileRepository{}
	builder := &mocks.MockMessageBuilder{}
	service := NewFileService(meetingRepo, fileRepo, builder, ServiceConfig{})
	return service, meetingRepo, fileRepo, builder
}

func TestFileService_UploadFile(t *testing.T) {
	tests := []struct {
		name         string
		descriptor   models.FileDescriptor
		expectedName string
		expectedSize int64
	}{
		{
			name:         "records file metadata",
			descriptor:   models.FileDescriptor{Name: "slides.pdf", Size: 1024},
			expectedName: "slides.pdf",
			expectedSize: 1024,
		},
		{
			name:         "file name is sanitized",
			descriptor:   models.FileDescriptor{Name: "<notes>.txt", Size: 42},
			expectedName: "notes.txt",
			expectedSize: 42,
		},
		{
			name:         "zero-byte file is accepted",
			descriptor:   models.FileDescriptor{Name: "empty.bin", Size: 0},
			expectedName: "empty.bin",
			expectedSize: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, meetingRepo, fileRepo, builder := newFileServiceForTest()
			meetingRepo.On("Exists", mock.Anything, "meeting-1").Return(true, nil)
			fileRepo.On("Append", mock.Anything, mock.AnythingOfType("*models.FileItem")).Return(nil)
			builder.On("SendFileUploaded", mock.Anything, mock.AnythingOfType("models.FileItem")).Return(nil)

			file, err := service.UploadFile(context.Background(), "meeting-1", tt.descriptor)

			require.NoError(t, err)
			require.NotNil(t, file)
			assert.NotEmpty(t, file.UID)
			assert.Equal(t, "meeting-1", file.MeetingUID)
			assert.Equal(t, tt.expectedName, file.Name)
			assert.Equal(t, tt.expectedSize, file.Size)
			assert.Empty(t, file.URL)
			assert.WithinDuration(t, time.Now().UTC(), file.UploadedAt, time.Minute)

			fileRepo.AssertExpectations(t)
			builder.AssertExpectations(t)
		})
	}
}

func TestFileService_UploadFileUnknownMeeting(t *testing.T) {
	service, meetingRepo, _, _ := newFileServiceForTest()
	meetingRepo.On("Exists", mock.Anything, "missing").Return(false, nil)

	file, err := service.UploadFile(context.Background(), "missing", models.FileDescriptor{Name: "slides.pdf", Size: 1024})

	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	assert.Nil(t, file)
}

func TestFileService_DownloadFile(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*mocks.MockMeetingRepository, *mocks.MockFileRepository)
		wantErr     bool
		wantErrType domain.ErrorType
	}{
		{
			name: "validates and succeeds for an existing file",
			setupMocks: func(meetingRepo *mocks.MockMeetingRepository, fileRepo *mocks.MockFileRepository) {
				meetingRepo.On("Exists", mock.Anything, "meeting-1").Return(true, nil)
				fileRepo.On("Get", mock.Anything, "meeting-1", "file-1").
					Return(&models.FileItem{UID: "file-1", MeetingUID: "meeting-1", Name: "slides.pdf"}, nil)
			},
		},
		{
			name: "unknown file fails",
			setupMocks: func(meetingRepo *mocks.MockMeetingRepository, fileRepo *mocks.MockFileRepository) {
				meetingRepo.On("Exists", mock.Anything, "meeting-1").Return(true, nil)
				fileRepo.On("Get", mock.Anything, "meeting-1", "file-1").
					Return(nil, domain.NewNotFoundError("file not found"))
			},
			wantErr:     true,
			wantErrType: domain.ErrorTypeNotFound,
		},
		{
			name: "unknown meeting fails before the registry lookup",
			setupMocks: func(meetingRepo *mocks.MockMeetingRepository, fileRepo *mocks.MockFileRepository) {
				meetingRepo.On("Exists", mock.Anything, "meeting-1").Return(false, nil)
			},
			wantErr:     true,
			wantErrType: domain.ErrorTypeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, meetingRepo, fileRepo, _ := newFileServiceForTest()
			tt.setupMocks(meetingRepo, fileRepo)

			err := service.DownloadFile(context.Background(), "meeting-1", "file-1")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrType, domain.GetErrorType(err))
			} else {
				require.NoError(t, err)
			}

			meetingRepo.AssertExpectations(t)
			fileRepo.AssertExpectations(t)
		})
	}
}

func TestFileService_ListFiles(t *testing.T) {
	service, meetingRepo, fileRepo, _ := newFileServiceForTest()
	meetingRepo.On("Exists", mock.Anything, "meeting-1").Return(true, nil)
	fileRepo.On("ListByMeeting", mock.Anything, "meeting-1").Return([]*models.FileItem{
		{UID: "file-1", Name: "slides.pdf"},
		{UID: "file-2", Name: "notes.txt"},
	}, nil)

	files, err := service.ListFiles(context.Background(), "meeting-1")

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "slides.pdf", files[0].Name)
	assert.Equal(t, "notes.txt", files[1].Name)
}

func TestFileService_NotReady(t *testing.T) {
	service := &FileService{}

	_, err := service.UploadFile(context.Background(), "meeting-1", models.FileDescriptor{Name: "slides.pdf"})
	assert.Equal(t, domain.ErrorTypeUnavailable, domain.GetErrorType(err))

	err = service.DownloadFile(context.Background(), "meeting-1", "file-1")
	assert.Equal(t, domain.ErrorTypeUnavailable, domain.GetErrorType(err))

	_, err = service.ListFiles(context.Background(), "meeting-1")
	assert.Equal(t, domain.ErrorTypeUnavailable, domain.GetErrorType(err))
}
