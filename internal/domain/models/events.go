// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package models

import "time"

// NATS subjects that the session service publishes events about.
const (
	// MeetingCreatedSubject is the subject for meeting creation events.
	// The subject is of the form: mety.session.meeting.created
	MeetingCreatedSubject = "mety.session.meeting.created"

	// ParticipantJoinedSubject is the subject for roster join events.
	ParticipantJoinedSubject = "mety.session.participant.joined"

	// ParticipantLeftSubject is the subject for roster leave events.
	ParticipantLeftSubject = "mety.session.participant.left"

	// ParticipantUpdatedSubject is the subject for mic/camera toggle events.
	ParticipantUpdatedSubject = "mety.session.participant.updated"

	// MessageSentSubject is the subject for chat message events.
	MessageSentSubject = "mety.session.message.sent"

	// FileUploadedSubject is the subject for file registry events.
	FileUploadedSubject = "mety.session.file.uploaded"

	// CaptionAppendedSubject is the subject for caption stream events.
	CaptionAppendedSubject = "mety.session.caption.appended"

	// RecordingStartedSubject is the subject for recording start events.
	RecordingStartedSubject = "mety.session.recording.started"

	// RecordingStoppedSubject is the subject for recording stop events.
	RecordingStoppedSubject = "mety.session.recording.stopped"
)

// MessageAction is the type of action of a session event.
type MessageAction string

// MessageAction constants
const (
	ActionCreated MessageAction = "created"
	ActionUpdated MessageAction = "updated"
	ActionDeleted MessageAction = "deleted"
)

// SessionEvent is the envelope published to NATS for every session mutation.
// Payloads are msgpack-encoded on the wire.
type SessionEvent struct {
	Action     MessageAction `msgpack:"action"`
	MeetingUID string        `msgpack:"meeting_uid"`
	Data       any           `msgpack:"data,omitempty"`
	Tags       []string      `msgpack:"tags,omitempty"`
	OccurredAt time.Time     `msgpack:"occurred_at"`
}
