// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordingPlaybackReference(t *testing.T) {
	recording := &Recording{UID: "abc123", MeetingUID: "meeting-1"}

	ref := recording.PlaybackReference()

	assert.Equal(t, "recording:abc123", ref)
	assert.Equal(t, ref, recording.PlaybackReference(), "reference derivation must be deterministic")
}

func TestRecordingTags(t *testing.T) {
	recording := &Recording{UID: "abc123", MeetingUID: "meeting-1"}

	tags := recording.Tags()

	assert.Contains(t, tags, "abc123")
	assert.Contains(t, tags, "recording_uid:abc123")
	assert.Contains(t, tags, "meeting_uid:meeting-1")
}
