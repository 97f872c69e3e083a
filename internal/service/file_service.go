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

// FileService implements the append-only file registry of a meeting. Only
// metadata is handled here; transferring and persisting file bytes belongs
// to the external storage collaborator.
type FileService struct {
	MeetingRepository domain.MeetingRepository
	FileRepository    domain.FileRepository
	MessageBuilder    domain.MessageBuilder
	Config            ServiceConfig
}

// NewFileService creates a new FileService.
func NewFileService(
	meetingRepository domain.MeetingRepository,
	fileRepository domain.FileRepository,
	messageBuilder domain.MessageBuilder,
	config ServiceConfig,
) *FileService {
	return &FileService{
		MeetingRepository: meetingRepository,
		FileRepository:    fileRepository,
		MessageBuilder:    messageBuilder,
		Config:            config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *FileService) ServiceReady() bool {
	return s.MeetingRepository != nil &&
		s.FileRepository != nil &&
		s.MessageBuilder != nil
}

func (s *FileService) checkMeetingExists(ctx context.Context, meetingUID string) error {
	exists, err := s.MeetingRepository.Exists(ctx, meetingUID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFoundError("meeting not found")
	}
	return nil
}

// UploadFile records the metadata of a shared file. The name is sanitized
// the same way chat content is; no URL is assigned because no storage
// backend exists at this layer.
func (s *FileService) UploadFile(ctx context.Context, meetingUID string, descriptor models.FileDescriptor) (*models.FileItem, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if err := s.checkMeetingExists(ctx, meetingUID); err != nil {
		return nil, err
	}

	file := &models.FileItem{
		UID:        idgen.New(),
		MeetingUID: meetingUID,
		Name:       utils.SanitizeText(descriptor.Name),
		Size:       descriptor.Size,
		UploadedAt: time.Now().UTC(),
	}

	if err := s.FileRepository.Append(ctx, file); err != nil {
		slog.ErrorContext(ctx, "error appending file item", logging.ErrKey, err, "meeting_uid", meetingUID)
		return nil, err
	}

	if err := s.MessageBuilder.SendFileUploaded(ctx, *file); err != nil {
		slog.WarnContext(ctx, "error publishing file uploaded event", logging.ErrKey, err, "file_uid", file.UID)
	}

	return file, nil
}

// DownloadFile validates that the file exists and then does nothing: actual
// retrieval is the storage collaborator's job. A production implementation
// replaces this with a call returning a content reference or stream.
func (s *FileService) DownloadFile(ctx context.Context, meetingUID, fileUID string) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return domain.NewUnavailableError("service not initialized")
	}

	if err := s.checkMeetingExists(ctx, meetingUID); err != nil {
		return err
	}

	if _, err := s.FileRepository.Get(ctx, meetingUID, fileUID); err != nil {
		slog.DebugContext(ctx, "error getting file", logging.ErrKey, err, "meeting_uid", meetingUID, "file_uid", fileUID)
		return err
	}

	slog.DebugContext(ctx, "download delegated to storage collaborator", "meeting_uid", meetingUID, "file_uid", fileUID)
	return nil
}

// ListFiles returns the file registry in append order.
func (s *FileService) ListFiles(ctx context.Context, meetingUID string) ([]*models.FileItem, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if err := s.checkMeetingExists(ctx, meetingUID); err != nil {
		return nil, err
	}

	files, err := s.FileRepository.ListByMeeting(ctx, meetingUID)
	if err != nil {
		slog.ErrorContext(ctx, "error listing files", logging.ErrKey, err, "meeting_uid", meetingUID)
		return nil, err
	}

	return files, nil
}
