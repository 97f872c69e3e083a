// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

// Package main is the session service API that provides a RESTful API for
// managing meeting sessions: meetings, rosters, chat, files, captions and
// recordings.
package main

import (
	"context"
	_ "expvar"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mety-app/session-service/internal/infrastructure/captions"
	"github.com/mety-app/session-service/internal/infrastructure/messaging"
	"github.com/mety-app/session-service/internal/infrastructure/store"
	"github.com/mety-app/session-service/internal/logging"
	"github.com/mety-app/session-service/internal/service"
)

func main() {
	env := parseEnv()
	flags := parseFlags(env.Port)

	logging.InitStructureLogConfig()

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	gracefulCloseWG := sync.WaitGroup{}

	// Setup NATS connection
	natsConn, err := setupNATS(ctx, env, &gracefulCloseWG, done)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up NATS")
		return
	}

	// The in-memory store backs every repository of the service.
	repos := store.NewRepositories(store.NewMemoryStore(store.Config{
		CaptionRetainLimit: env.CaptionRetainLimit,
	}))

	// Initialize services
	serviceConfig := service.ServiceConfig{
		SummaryMessageSample: env.SummaryMessageSample,
	}
	messageBuilder := messaging.NewMessageBuilder(natsConn)
	meetingService := service.NewMeetingService(
		repos.Meeting,
		messageBuilder,
		serviceConfig,
	)
	participantService := service.NewParticipantService(
		repos.Meeting,
		repos.Participant,
		messageBuilder,
		serviceConfig,
	)
	chatService := service.NewChatService(
		repos.Meeting,
		repos.Message,
		messageBuilder,
		serviceConfig,
	)
	fileService := service.NewFileService(
		repos.Meeting,
		repos.File,
		messageBuilder,
		serviceConfig,
	)
	captionService := service.NewCaptionService(
		repos.Meeting,
		repos.Caption,
		captions.NewStaticSource(),
		captions.NewAnnotatingTranslator(),
		messageBuilder,
		serviceConfig,
	)
	recordingService := service.NewRecordingService(
		repos.Meeting,
		repos.Recording,
		messageBuilder,
		serviceConfig,
	)
	summaryService := service.NewSummaryService(
		repos.Meeting,
		repos.Message,
		serviceConfig,
	)

	sessionService := service.NewSessionService(
		meetingService,
		participantService,
		chatService,
		fileService,
		captionService,
		recordingService,
		summaryService,
	)

	api := NewSessionAPI(sessionService)

	httpServer := setupHTTPServer(flags, api, &gracefulCloseWG)

	// This next line blocks until SIGINT or SIGTERM is received.
	<-done

	gracefulShutdown(httpServer, natsConn, &gracefulCloseWG, cancel)
}
