// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// startRecording handles POST /meetings/{meetingUID}/recording/start.
func (api *SessionAPI) startRecording(w http.ResponseWriter, r *http.Request) {
	recording, err := api.session.StartRecording(r.Context(), chi.URLParam(r, "meetingUID"))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, recording)
}

type stopRecordingRequest struct {
	RecordingUID string `json:"recording_uid"`
}

type stopRecordingResponse struct {
	PlaybackRef string `json:"playback_ref"`
}

// stopRecording handles POST /meetings/{meetingUID}/recording/stop. The
// request must carry the handle returned by the matching start.
func (api *SessionAPI) stopRecording(w http.ResponseWriter, r *http.Request) {
	var req stopRecordingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	playbackRef, err := api.session.StopRecording(r.Context(), chi.URLParam(r, "meetingUID"), req.RecordingUID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, stopRecordingResponse{PlaybackRef: playbackRef})
}
