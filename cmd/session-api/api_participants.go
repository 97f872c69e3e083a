// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mety-app/session-service/internal/domain/models"
)

type joinMeetingRequest struct {
	Name  string `json:"name"`
	Host  *bool  `json:"host,omitempty"`
	MicOn *bool  `json:"mic_on,omitempty"`
	CamOn *bool  `json:"cam_on,omitempty"`
}

// joinMeeting handles POST /meetings/{meetingUID}/participants.
func (api *SessionAPI) joinMeeting(w http.ResponseWriter, r *http.Request) {
	var req joinMeetingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	opts := &models.ParticipantOptions{
		Host:  req.Host,
		MicOn: req.MicOn,
		CamOn: req.CamOn,
	}

	participant, err := api.session.JoinMeeting(r.Context(), chi.URLParam(r, "meetingUID"), req.Name, opts)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, participant)
}

// leaveMeeting handles DELETE /meetings/{meetingUID}/participants/{participantUID}.
func (api *SessionAPI) leaveMeeting(w http.ResponseWriter, r *http.Request) {
	err := api.session.LeaveMeeting(r.Context(), chi.URLParam(r, "meetingUID"), chi.URLParam(r, "participantUID"))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// toggleMic handles POST /meetings/{meetingUID}/participants/{participantUID}/mic.
func (api *SessionAPI) toggleMic(w http.ResponseWriter, r *http.Request) {
	participant, err := api.session.ToggleMic(r.Context(), chi.URLParam(r, "meetingUID"), chi.URLParam(r, "participantUID"))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, participant)
}

// toggleCam handles POST /meetings/{meetingUID}/participants/{participantUID}/camera.
func (api *SessionAPI) toggleCam(w http.ResponseWriter, r *http.Request) {
	participant, err := api.session.ToggleCam(r.Context(), chi.URLParam(r, "meetingUID"), chi.URLParam(r, "participantUID"))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, participant)
}

// listParticipants handles GET /meetings/{meetingUID}/participants.
func (api *SessionAPI) listParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := api.session.ListParticipants(r.Context(), chi.URLParam(r, "meetingUID"))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, participants)
}
