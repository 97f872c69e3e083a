// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mety-app/session-service/internal/domain"
	"github.com/mety-app/session-service/internal/logging"
	"github.com/mety-app/session-service/internal/service"
)

// SessionAPI exposes the session facade over HTTP.
type SessionAPI struct {
	session *service.SessionService
}

// NewSessionAPI creates a new SessionAPI.
func NewSessionAPI(session *service.SessionService) *SessionAPI {
	return &SessionAPI{
		session: session,
	}
}

// errorResponse is the JSON body of every error reply.
type errorResponse struct {
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(ctx, "error encoding response", logging.ErrKey, err)
	}
}

// writeError maps a domain error onto the HTTP status space and writes the
// error response.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch domain.GetErrorType(err) {
	case domain.ErrorTypeValidation:
		status = http.StatusBadRequest
	case domain.ErrorTypeNotFound:
		status = http.StatusNotFound
	case domain.ErrorTypeConflict:
		status = http.StatusConflict
	case domain.ErrorTypeUnavailable:
		status = http.StatusServiceUnavailable
	}

	message := "internal server error"
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		message = domainErr.Message
	}

	writeJSON(ctx, w, status, errorResponse{Message: message})
}

// decodeBody decodes the JSON request body into v. A failure writes the 400
// response itself and reports false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		slog.DebugContext(r.Context(), "error decoding request body", logging.ErrKey, err)
		writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return false
	}
	return true
}
