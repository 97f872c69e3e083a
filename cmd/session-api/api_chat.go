// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type sendMessageRequest struct {
	SenderUID  string `json:"sender_uid"`
	SenderName string `json:"sender_name"`
	Content    string `json:"content"`
}

// sendMessage handles POST /meetings/{meetingUID}/messages.
func (api *SessionAPI) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	message, err := api.session.SendMessage(r.Context(), chi.URLParam(r, "meetingUID"), req.SenderUID, req.SenderName, req.Content)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, message)
}

// listMessages handles GET /meetings/{meetingUID}/messages.
func (api *SessionAPI) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := api.session.ListMessages(r.Context(), chi.URLParam(r, "meetingUID"))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, messages)
}
