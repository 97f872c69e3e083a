// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type createMeetingRequest struct {
	Title        string `json:"title"`
	ScheduledFor string `json:"scheduled_for"`
}

// createMeeting handles POST /meetings.
func (api *SessionAPI) createMeeting(w http.ResponseWriter, r *http.Request) {
	var req createMeetingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	meeting, err := api.session.CreateMeeting(r.Context(), req.Title, req.ScheduledFor)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, meeting)
}

// getMeeting handles GET /meetings/{meetingUID}.
func (api *SessionAPI) getMeeting(w http.ResponseWriter, r *http.Request) {
	meeting, err := api.session.GetMeeting(r.Context(), chi.URLParam(r, "meetingUID"))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, meeting)
}

// listMeetings handles GET /meetings.
func (api *SessionAPI) listMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := api.session.ListMeetings(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, meetings)
}

// getSessionState handles GET /meetings/{meetingUID}/state.
func (api *SessionAPI) getSessionState(w http.ResponseWriter, r *http.Request) {
	state, err := api.session.GetSessionState(r.Context(), chi.URLParam(r, "meetingUID"))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, state)
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

// getSummary handles GET /meetings/{meetingUID}/summary.
func (api *SessionAPI) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := api.session.Summarize(r.Context(), chi.URLParam(r, "meetingUID"))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, summaryResponse{Summary: summary})
}
