// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mety-app/session-service/internal/domain/models"
	"github.com/mety-app/session-service/internal/infrastructure/captions"
	"github.com/mety-app/session-service/internal/infrastructure/messaging"
	"github.com/mety-app/session-service/internal/infrastructure/store"
	"github.com/mety-app/session-service/internal/service"
	"github.com/mety-app/session-service/pkg/constants"
	"github.com/mety-app/session-service/pkg/utils"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	repos := store.NewRepositories(store.NewMemoryStore(store.Config{}))
	messageBuilder := messaging.NewMessageBuilder(messaging.NewMockNatsConn())
	config := service.ServiceConfig{}

	sessionService := service.NewSessionService(
		service.NewMeetingService(repos.Meeting, messageBuilder, config),
		service.NewParticipantService(repos.Meeting, repos.Participant, messageBuilder, config),
		service.NewChatService(repos.Meeting, repos.Message, messageBuilder, config),
		service.NewFileService(repos.Meeting, repos.File, messageBuilder, config),
		service.NewCaptionService(repos.Meeting, repos.Caption, captions.NewStaticSource(), captions.NewAnnotatingTranslator(), messageBuilder, config),
		service.NewRecordingService(repos.Meeting, repos.Recording, messageBuilder, config),
		service.NewSummaryService(repos.Meeting, repos.Message, config),
	)

	server := httptest.NewServer(newRouter(NewSessionAPI(sessionService)))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}

	req, err := http.NewRequest(method, url, &reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestAPIHealthEndpoints(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/livez")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPIMeetingLifecycle(t *testing.T) {
	server := newTestServer(t)

	var meeting models.Meeting
	resp := doJSON(t, http.MethodPost, server.URL+"/meetings", createMeetingRequest{Title: "  Weekly Sync  "}, &meeting)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, meeting.UID)
	assert.Equal(t, "Weekly Sync", meeting.Title)
	assert.NotEmpty(t, resp.Header.Get(constants.RequestIDHeader))

	var fetched models.Meeting
	resp = doJSON(t, http.MethodGet, server.URL+"/meetings/"+meeting.UID, nil, &fetched)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, meeting.UID, fetched.UID)

	var meetings []models.Meeting
	resp = doJSON(t, http.MethodGet, server.URL+"/meetings", nil, &meetings)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, meetings, 1)
}

func TestAPIDefaultMeetingTitle(t *testing.T) {
	server := newTestServer(t)

	var meeting models.Meeting
	resp := doJSON(t, http.MethodPost, server.URL+"/meetings", createMeetingRequest{}, &meeting)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, constants.DefaultMeetingTitle, meeting.Title)
}

func TestAPIUnknownMeetingIs404(t *testing.T) {
	server := newTestServer(t)

	var errResp errorResponse
	resp := doJSON(t, http.MethodGet, server.URL+"/meetings/missing", nil, &errResp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, errResp.Message)

	resp = doJSON(t, http.MethodPost, server.URL+"/meetings/missing/participants", joinMeetingRequest{Name: "Ada"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPIParticipantFlow(t *testing.T) {
	server := newTestServer(t)

	var meeting models.Meeting
	doJSON(t, http.MethodPost, server.URL+"/meetings", createMeetingRequest{Title: "Standup"}, &meeting)

	var participant models.Participant
	resp := doJSON(t, http.MethodPost, server.URL+"/meetings/"+meeting.UID+"/participants",
		joinMeetingRequest{Name: "Ada", MicOn: utils.BoolPtr(false)}, &participant)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.False(t, participant.MicOn)
	assert.True(t, participant.CamOn)

	var toggled models.Participant
	resp = doJSON(t, http.MethodPost, server.URL+"/meetings/"+meeting.UID+"/participants/"+participant.UID+"/mic", nil, &toggled)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, toggled.MicOn)

	resp = doJSON(t, http.MethodPost, server.URL+"/meetings/"+meeting.UID+"/participants/unknown/camera", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, server.URL+"/meetings/"+meeting.UID+"/participants/"+participant.UID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var participants []models.Participant
	doJSON(t, http.MethodGet, server.URL+"/meetings/"+meeting.UID+"/participants", nil, &participants)
	assert.Empty(t, participants)
}

func TestAPIChatSanitization(t *testing.T) {
	server := newTestServer(t)

	var meeting models.Meeting
	doJSON(t, http.MethodPost, server.URL+"/meetings", createMeetingRequest{Title: "Standup"}, &meeting)

	var message models.ChatMessage
	resp := doJSON(t, http.MethodPost, server.URL+"/meetings/"+meeting.UID+"/messages",
		sendMessageRequest{SenderUID: "participant-1", SenderName: "Ada", Content: "<b>hi</b>"}, &message)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "bhi/b", message.Content)
}

func TestAPIRecordingFlow(t *testing.T) {
	server := newTestServer(t)

	var meeting models.Meeting
	doJSON(t, http.MethodPost, server.URL+"/meetings", createMeetingRequest{Title: "Standup"}, &meeting)

	var recording models.Recording
	resp := doJSON(t, http.MethodPost, server.URL+"/meetings/"+meeting.UID+"/recording/start", nil, &recording)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, server.URL+"/meetings/"+meeting.UID+"/recording/start", nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var stopped stopRecordingResponse
	resp = doJSON(t, http.MethodPost, server.URL+"/meetings/"+meeting.UID+"/recording/stop",
		stopRecordingRequest{RecordingUID: recording.UID}, &stopped)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "recording:"+recording.UID, stopped.PlaybackRef)
}

func TestAPICaptionsAndTranslate(t *testing.T) {
	server := newTestServer(t)

	var meeting models.Meeting
	doJSON(t, http.MethodPost, server.URL+"/meetings", createMeetingRequest{Title: "Standup"}, &meeting)

	var caption models.Caption
	resp := doJSON(t, http.MethodPost, server.URL+"/meetings/"+meeting.UID+"/captions?lang=de", nil, &caption)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "de", caption.Lang)

	// unsupported language falls back to the default
	resp = doJSON(t, http.MethodPost, server.URL+"/meetings/"+meeting.UID+"/captions?lang=pt", nil, &caption)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, constants.DefaultCaptionLanguage, caption.Lang)

	var translated translateResponse
	resp = doJSON(t, http.MethodPost, server.URL+"/translate",
		translateRequest{Text: "hello", TargetLang: "es"}, &translated)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[ES] hello", translated.Text)
}
