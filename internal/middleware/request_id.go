// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

// Package middleware provides HTTP middleware for the session service API.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mety-app/session-service/internal/logging"
	"github.com/mety-app/session-service/pkg/constants"
	"github.com/mety-app/session-service/pkg/idgen"
)

// RequestIDMiddleware ensures every request carries a request ID. A client
// provided X-REQUEST-ID is kept; otherwise a new one is generated. The ID is
// stored on the context, added to the log attributes, and echoed back in the
// response headers.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(constants.RequestIDHeader)
			if requestID == "" {
				requestID = idgen.New()
			}

			ctx := context.WithValue(r.Context(), constants.RequestIDContextID, requestID)
			ctx = logging.AppendCtx(ctx, slog.String("request_id", requestID))

			w.Header().Set(constants.RequestIDHeader, requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
