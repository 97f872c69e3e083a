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

// CaptionService implements the caption stream of a meeting. The polling
// cadence belongs to the caller; each NextCaption call appends exactly one
// line to the per-meeting log.
type CaptionService struct {
	MeetingRepository domain.MeetingRepository
	CaptionRepository domain.CaptionRepository
	CaptionSource     domain.CaptionSource
	Translator        domain.Translator
	MessageBuilder    domain.MessageBuilder
	Config            ServiceConfig
}

// NewCaptionService creates a new CaptionService.
func NewCaptionService(
	meetingRepository domain.MeetingRepository,
	captionRepository domain.CaptionRepository,
	captionSource domain.CaptionSource,
	translator domain.Translator,
	messageBuilder domain.MessageBuilder,
	config ServiceConfig,
) *CaptionService {
	return &CaptionService{
		MeetingRepository: meetingRepository,
		CaptionRepository: captionRepository,
		CaptionSource:     captionSource,
		Translator:        translator,
		MessageBuilder:    messageBuilder,
		Config:            config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *CaptionService) ServiceReady() bool {
	return s.MeetingRepository != nil &&
		s.CaptionRepository != nil &&
		s.CaptionSource != nil &&
		s.Translator != nil &&
		s.MessageBuilder != nil
}

func (s *CaptionService) checkMeetingExists(ctx context.Context, meetingUID string) error {
	exists, err := s.MeetingRepository.Exists(ctx, meetingUID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFoundError("meeting not found")
	}
	return nil
}

// NextCaption obtains one line from the caption source, appends it to the
// meeting's caption log and returns it. The caption is tagged with the
// language the source actually served, which may be the fallback.
func (s *CaptionService) NextCaption(ctx context.Context, meetingUID, lang string) (*models.Caption, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if err := s.checkMeetingExists(ctx, meetingUID); err != nil {
		return nil, err
	}

	text, servedLang, err := s.CaptionSource.NextLine(ctx, lang)
	if err != nil {
		slog.ErrorContext(ctx, "error getting caption line", logging.ErrKey, err, "meeting_uid", meetingUID, "lang", lang)
		return nil, err
	}

	caption := &models.Caption{
		UID:        idgen.New(),
		MeetingUID: meetingUID,
		Text:       text,
		Lang:       servedLang,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.CaptionRepository.Append(ctx, caption); err != nil {
		slog.ErrorContext(ctx, "error appending caption", logging.ErrKey, err, "meeting_uid", meetingUID)
		return nil, err
	}

	if err := s.MessageBuilder.SendCaptionAppended(ctx, *caption); err != nil {
		slog.WarnContext(ctx, "error publishing caption appended event", logging.ErrKey, err, "caption_uid", caption.UID)
	}

	return caption, nil
}

// Translate renders text in the target language. The result is returned to
// the caller only; the caption log is never touched by a translation.
func (s *CaptionService) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return "", domain.NewUnavailableError("service not initialized")
	}

	translated, err := s.Translator.Translate(ctx, text, targetLang)
	if err != nil {
		slog.ErrorContext(ctx, "error translating text", logging.ErrKey, err, "target_lang", targetLang)
		return "", err
	}

	return translated, nil
}

// ListCaptions returns the caption log in append order.
func (s *CaptionService) ListCaptions(ctx context.Context, meetingUID string) ([]*models.Caption, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("service not initialized")
	}

	if err := s.checkMeetingExists(ctx, meetingUID); err != nil {
		return nil, err
	}

	captions, err := s.CaptionRepository.ListByMeeting(ctx, meetingUID)
	if err != nil {
		slog.ErrorContext(ctx, "error listing captions", logging.ErrKey, err, "meeting_uid", meetingUID)
		return nil, err
	}

	return captions, nil
}
