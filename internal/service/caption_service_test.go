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

type captionServiceMocks struct {
	meetingRepo *mocks.MockMeetingRepository
	captionRepo *mocks.MockCaptionRepository
	source      *mocks.MockCaptionSource
	translator  *mocks.MockTranslator
	builder     *mocks.MockMessageBuilder
}

func newCaptionServiceForTest() (*CaptionService, *captionServiceMocks) {
	m := &captionServiceMocks{
		meetingRepo: &mocks.MockMeetingRepository{},
		captionRepo: &mocks.MockCaptionRepository{},
		source:      &mocks.MockCaptionSource{},
		translator:  &mocks.MockTranslator{},
		builder:     &mocks.MockMessageBuilder{},
	}
	service := NewCaptionService(m.meetingRepo, m.captionRepo, m.source, m.translator, m.builder, ServiceConfig{})
	return service, m
}

func TestCaptionService_NextCaption(t *testing.T) {
	tests := []struct {
		name         string
		requestLang  string
		servedLang   string
		servedText   string
		expectedLang string
	}{
		{
			name:         "serves requested language",
			requestLang:  "es",
			servedLang:   "es",
			servedText:   "Esta es una línea simulada de subtítulos en tiempo real.",
			expectedLang: "es",
		},
		{
			name:         "caption records the fallback language actually served",
			requestLang:  "pt",
			servedLang:   "en",
			servedText:   "This is a mock real-time caption line.",
			expectedLang: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newCaptionServiceForTest()
			m.meetingRepo.On("Exists", mock.Anything, "meeting-1").Return(true, nil)
			m.source.On("NextLine", mock.Anything, tt.requestLang).Return(tt.servedText, tt.servedLang, nil)
			m.captionRepo.On("Append", mock.Anything, mock.AnythingOfType("*models.Caption")).Return(nil)
			m.builder.On("SendCaptionAppended", mock.Anything, mock.AnythingOfType("models.Caption")).Return(nil)

			caption, err := service.NextCaption(context.Background(), "meeting-1", tt.requestLang)

			require.NoError(t, err)
			require.NotNil(t, caption)
			assert.NotEmpty(t, caption.UID)
			assert.Equal(t, "meeting-1", caption.MeetingUID)
			assert.Equal(t, tt.servedText, caption.Text)
			assert.Equal(t, tt.expectedLang, caption.Lang)
			assert.WithinDuration(t, time.Now().UTC(), caption.CreatedAt, time.Minute)

			m.captionRepo.AssertExpectations(t)
			m.builder.AssertExpectations(t)
		})
	}
}

func TestCaptionService_NextCaptionUnknownMeeting(t *testing.T) {
	service, m := newCaptionServiceForTest()
	m.meetingRepo.On("Exists", mock.Anything, "missing").Return(false, nil)

	caption, err := service.NextCaption(context.Background(), "missing", "en")

	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	assert.Nil(t, caption)
	m.source.AssertNotCalled(t, "NextLine", mock.Anything, mock.Anything)
}

func TestCaptionService_Translate(t *testing.T) {
	service, m := newCaptionServiceForTest()
	m.translator.On("Translate", mock.Anything, "hello", "es").Return("[ES] hello", nil)

	translated, err := service.Translate(context.Background(), "hello", "es")

	require.NoError(t, err)
	assert.Equal(t, "[ES] hello", translated)

	// translation is stateless, nothing is appended anywhere
	m.captionRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	m.meetingRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestCaptionService_TranslateError(t *testing.T) {
	service, m := newCaptionServiceForTest()
	m.translator.On("Translate", mock.Anything, "hello", "xx").
		Return("", domain.NewInternalError("translator failure"))

	translated, err := service.Translate(context.Background(), "hello", "xx")

	require.Error(t, err)
	assert.Empty(t, translated)
}

func TestCaptionService_ListCaptions(t *testing.T) {
	service, m := newCaptionServiceForTest()
	m.meetingRepo.On("Exists", mock.Anything, "meeting-1").Return(true, nil)
	m.captionRepo.On("ListByMeeting", mock.Anything, "meeting-1").Return([]*models.Caption{
		{UID: "caption-1", Text: "first", Lang: "en"},
		{UID: "caption-2", Text: "second", Lang: "en"},
	}, nil)

	captions, err := service.ListCaptions(context.Background(), "meeting-1")

	require.NoError(t, err)
	require.Len(t, captions, 2)
	assert.Equal(t, "first", captions[0].Text)
	assert.Equal(t, "second", captions[1].Text)
}

func TestCaptionService_NotReady(t *testing.T) {
	service := &CaptionService{}

	_, err := service.NextCaption(context.Background(), "meeting-1", "en")
	assert.Equal(t, domain.ErrorTypeUnavailable, domain.GetErrorType(err))

	_, err = service.Translate(context.Background(), "hello", "es")
	assert.Equal(t, domain.ErrorTypeUnavailable, domain.GetErrorType(err))

	_, err = service.ListCaptions(context.Background(), "meeting-1")
	assert.Equal(t, domain.ErrorTypeUnavailable, domain.GetErrorType(err))
}
