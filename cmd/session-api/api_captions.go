// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mety-app/session-service/pkg/constants"
	"github.com/mety-app/session-service/pkg/utils"
)

// nextCaption handles POST /meetings/{meetingUID}/captions. The requested
// language comes from the lang query parameter and defaults to English.
func (api *SessionAPI) nextCaption(w http.ResponseWriter, r *http.Request) {
	lang := utils.CoalesceString(r.URL.Query().Get("lang"), constants.DefaultCaptionLanguage)

	caption, err := api.session.NextCaption(r.Context(), chi.URLParam(r, "meetingUID"), lang)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, caption)
}

// listCaptions handles GET /meetings/{meetingUID}/captions.
func (api *SessionAPI) listCaptions(w http.ResponseWriter, r *http.Request) {
	captions, err := api.session.ListCaptions(r.Context(), chi.URLParam(r, "meetingUID"))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, captions)
}

type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Text string `json:"text"`
}

// translate handles POST /translate. Translation is stateless and not tied
// to any meeting.
func (api *SessionAPI) translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	translated, err := api.session.Translate(r.Context(), req.Text, req.TargetLang)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, translateResponse{Text: translated})
}
