// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/nats-io/nats.go"

	"github.com/mety-app/session-service/internal/infrastructure/messaging"
	"github.com/mety-app/session-service/internal/logging"
	"github.com/mety-app/session-service/internal/middleware"
)

// newRouter builds the chi router with all routes and HTTP middleware.
func newRouter(api *SessionAPI) http.Handler {
	router := chi.NewRouter()

	// Note: Order matters - RequestIDMiddleware runs first so that every
	// subsequent log line carries the request ID.
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggerMiddleware())
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-REQUEST-ID"},
		MaxAge:         300,
	}))

	router.Get("/livez", api.livez)
	router.Get("/readyz", api.readyz)

	router.Post("/translate", api.translate)

	router.Route("/meetings", func(r chi.Router) {
		r.Post("/", api.createMeeting)
		r.Get("/", api.listMeetings)

		r.Route("/{meetingUID}", func(r chi.Router) {
			r.Get("/", api.getMeeting)
			r.Get("/state", api.getSessionState)
			r.Get("/summary", api.getSummary)

			r.Route("/participants", func(r chi.Router) {
				r.Post("/", api.joinMeeting)
				r.Get("/", api.listParticipants)
				r.Delete("/{participantUID}", api.leaveMeeting)
				r.Post("/{participantUID}/mic", api.toggleMic)
				r.Post("/{participantUID}/camera", api.toggleCam)
			})

			r.Route("/messages", func(r chi.Router) {
				r.Post("/", api.sendMessage)
				r.Get("/", api.listMessages)
			})

			r.Route("/files", func(r chi.Router) {
				r.Post("/", api.uploadFile)
				r.Get("/", api.listFiles)
				r.Get("/{fileUID}", api.downloadFile)
			})

			r.Route("/captions", func(r chi.Router) {
				r.Post("/", api.nextCaption)
				r.Get("/", api.listCaptions)
			})

			r.Route("/recording", func(r chi.Router) {
				r.Post("/start", api.startRecording)
				r.Post("/stop", api.stopRecording)
			})
		})
	})

	return router
}

// livez handles GET /livez.
func (api *SessionAPI) livez(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// readyz handles GET /readyz. The service is ready once every composed
// service has its dependencies wired.
func (api *SessionAPI) readyz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	if !api.session.ServiceReady() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("service not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// setupHTTPServer configures and starts the HTTP server
func setupHTTPServer(flags flags, api *SessionAPI, gracefulCloseWG *sync.WaitGroup) *http.Server {
	handler := newRouter(api)

	// Set up http listener in a goroutine using provided command line parameters.
	var addr string
	if flags.Bind == "*" {
		addr = ":" + flags.Port
	} else {
		addr = flags.Bind + ":" + flags.Port
	}
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 3 * time.Second,
	}
	gracefulCloseWG.Add(1)
	go func() {
		slog.With("addr", addr).Debug("starting http server, listening on port " + flags.Port)
		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			slog.With(logging.ErrKey, err).Error("http listener error")
			os.Exit(1)
		}
		// Because ErrServerClosed is *immediately* returned when Shutdown is
		// called, not when Shutdown completes, this must not yet decrement
		// the wait group.
	}()

	return httpServer
}

// gracefulShutdown drains the HTTP server and the NATS connection, then
// waits for both to report closed.
func gracefulShutdown(httpServer *http.Server, natsConn messaging.INatsConn, gracefulCloseWG *sync.WaitGroup, cancel context.CancelFunc) {
	slog.Info("shutting down")
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.With(logging.ErrKey, err).Error("error shutting down http server")
	}
	gracefulCloseWG.Done()

	// Drain only applies to a real NATS connection; the discard connection
	// has nothing to flush.
	if conn, ok := natsConn.(*nats.Conn); ok && !conn.IsClosed() {
		if err := conn.Drain(); err != nil {
			slog.With(logging.ErrKey, err).Error("error draining NATS connection")
		}
	}

	gracefulCloseWG.Wait()
	slog.Info("shutdown complete")
}
