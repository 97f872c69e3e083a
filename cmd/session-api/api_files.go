// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mety-app/session-service/internal/domain/models"
)

type uploadFileRequest struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// uploadFile handles POST /meetings/{meetingUID}/files.
func (api *SessionAPI) uploadFile(w http.ResponseWriter, r *http.Request) {
	var req uploadFileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	descriptor := models.FileDescriptor{
		Name: req.Name,
		Size: req.Size,
	}

	file, err := api.session.UploadFile(r.Context(), chi.URLParam(r, "meetingUID"), descriptor)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, file)
}

// downloadFile handles GET /meetings/{meetingUID}/files/{fileUID}. The
// registry only validates the file; content retrieval belongs to the
// storage collaborator, so a successful validation is an empty response.
func (api *SessionAPI) downloadFile(w http.ResponseWriter, r *http.Request) {
	err := api.session.DownloadFile(r.Context(), chi.URLParam(r, "meetingUID"), chi.URLParam(r, "fileUID"))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// listFiles handles GET /meetings/{meetingUID}/files.
func (api *SessionAPI) listFiles(w http.ResponseWriter, r *http.Request) {
	files, err := api.session.ListFiles(r.Context(), chi.URLParam(r, "meetingUID"))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, files)
}
