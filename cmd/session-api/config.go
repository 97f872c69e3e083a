// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/mety-app/session-service/internal/logging"
)

// flags are the command line flags for the session service.
type flags struct {
	Debug bool
	Port  string
	Bind  string
}

// environment are the environment variables for the session service.
type environment struct {
	Port                 string
	NatsURL              string
	CaptionRetainLimit   int
	SummaryMessageSample int
}

// parseFlags parses command line flags for the session service
func parseFlags(defaultPort string) flags {
	var debug = flag.Bool("d", false, "enable debug logging")
	var port = flag.String("p", defaultPort, "listen port")
	var bind = flag.String("bind", "*", "interface to bind on")

	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	// Based on the debug flag, set the log level environment variable used by [logging.InitStructureLogConfig]
	if *debug {
		err := os.Setenv("LOG_LEVEL", "debug")
		if err != nil {
			slog.With(logging.ErrKey, err).Error("error setting log level")
			os.Exit(1)
		}
	}

	return flags{
		Debug: *debug,
		Port:  *port,
		Bind:  *bind,
	}
}

// parseEnv parses environment variables for the session service
func parseEnv() environment {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	natsURL := os.Getenv("NATS_URL")

	captionRetainLimit := 0
	if raw := os.Getenv("CAPTION_RETAIN_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			slog.With("value", raw).Error("invalid CAPTION_RETAIN_LIMIT provided, keeping captions unbounded")
		} else {
			captionRetainLimit = limit
		}
	}

	summaryMessageSample := 0
	if raw := os.Getenv("SUMMARY_MESSAGE_SAMPLE"); raw != "" {
		sample, err := strconv.Atoi(raw)
		if err != nil || sample < 1 {
			slog.With("value", raw).Error("invalid SUMMARY_MESSAGE_SAMPLE provided, using default")
		} else {
			summaryMessageSample = sample
		}
	}

	return environment{
		Port:                 port,
		NatsURL:              natsURL,
		CaptionRetainLimit:   captionRetainLimit,
		SummaryMessageSample: summaryMessageSample,
	}
}
