// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

// Package models contains the session store's entity records.
package models

import (
	"fmt"
	"time"
)

// Meeting is the top-level aggregate scoping one video-call session. Its
// rosters and logs are keyed by the meeting UID and created together with it.
type Meeting struct {
	UID          string    `json:"uid"`
	Title        string    `json:"title"`
	ScheduledFor string    `json:"scheduled_for,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Tags generates a consistent set of tags for the meeting so that event
// consumers can filter on them.
func (m *Meeting) Tags() []string {
	if m == nil {
		return nil
	}

	tags := []string{}

	if m.UID != "" {
		// without prefix
		tags = append(tags, m.UID)
		// with prefix
		tags = append(tags, fmt.Sprintf("meeting_uid:%s", m.UID))
	}

	if m.Title != "" {
		tags = append(tags, fmt.Sprintf("title:%s", m.Title))
	}

	return tags
}
