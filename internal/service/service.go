// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

// Package service implements the business logic of the session store. Each
// entity has its own service; the SessionService facade composes them into
// the single surface the presentation layer talks to.
package service

type Service interface {
	ServiceReady() bool
}

// ServiceConfig is the configuration for the services.
type ServiceConfig struct {
	// SummaryMessageSample is how many trailing chat messages the meeting
	// summary includes. Zero uses the default.
	SummaryMessageSample int
}
