// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"fmt"
	"time"
)

// Recording is the in-progress recording of a meeting. At most one recording
// is active per meeting; the UID doubles as the handle required to stop it.
type Recording struct {
	UID        string    `json:"uid"`
	MeetingUID string    `json:"meeting_uid"`
	StartedAt  time.Time `json:"started_at"`
}

// PlaybackReference derives the opaque reference handed back when the
// recording stops. It encodes the handle deterministically so the same handle
// always yields the same reference.
func (r *Recording) PlaybackReference() string {
	return fmt.Sprintf("recording:%s", r.UID)
}

// Tags generates a consistent set of tags for the recording.
func (r *Recording) Tags() []string {
	if r == nil {
		return nil
	}

	tags := []string{}

	if r.UID != "" {
		tags = append(tags, r.UID)
		tags = append(tags, fmt.Sprintf("recording_uid:%s", r.UID))
	}

	if r.MeetingUID != "" {
		tags = append(tags, fmt.Sprintf("meeting_uid:%s", r.MeetingUID))
	}

	return tags
}
