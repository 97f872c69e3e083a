// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/mety-app/session-service/internal/infrastructure/messaging"
	"github.com/mety-app/session-service/internal/logging"
)

const natsDrainTimeout = 25 * time.Second

// noopNatsConn satisfies [messaging.INatsConn] when eventing is disabled.
// Publishes are silently discarded.
type noopNatsConn struct{}

func (noopNatsConn) IsConnected() bool            { return true }
func (noopNatsConn) Publish(string, []byte) error { return nil }

// setupNATS connects to the NATS server and registers the handlers that tie
// the connection lifecycle into graceful shutdown. An empty NATS URL disables
// eventing and the service runs with a discard connection.
func setupNATS(ctx context.Context, env environment, gracefulCloseWG *sync.WaitGroup, done chan os.Signal) (messaging.INatsConn, error) {
	if env.NatsURL == "" {
		slog.WarnContext(ctx, "NATS_URL not set, session events are disabled")
		return noopNatsConn{}, nil
	}

	natsConn, err := nats.Connect(
		env.NatsURL,
		nats.DrainTimeout(natsDrainTimeout),
		nats.ConnectHandler(func(_ *nats.Conn) {
			slog.InfoContext(ctx, "NATS connection established", "url", env.NatsURL)
		}),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			slog.ErrorContext(ctx, "NATS error", logging.ErrKey, err)
		}),
		nats.ClosedHandler(func(conn *nats.Conn) {
			slog.InfoContext(ctx, "NATS connection closed", logging.ErrKey, conn.LastError())
			gracefulCloseWG.Done()
			// Ensure the process shuts down if the connection closes unexpectedly.
			select {
			case done <- os.Interrupt:
			default:
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	// The closed handler decrements this when draining completes.
	gracefulCloseWG.Add(1)

	return natsConn, nil
}
