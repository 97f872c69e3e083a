// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

// Package messaging publishes session events to NATS so that presentation
// layers can react to store mutations without polling.
package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/mety-app/session-service/internal/domain/models"
	"github.com/mety-app/session-service/internal/logging"
)

// INatsConn is the NATS connection interface needed by the [MessageBuilder].
type INatsConn interface {
	IsConnected() bool
	Publish(subj string, data []byte) error
}

// MessageBuilder builds session events and sends them to the NATS server.
type MessageBuilder struct {
	NatsConn INatsConn
}

// NewMessageBuilder creates a new MessageBuilder.
func NewMessageBuilder(natsConn INatsConn) *MessageBuilder {
	return &MessageBuilder{
		NatsConn: natsConn,
	}
}

// sendEvent encodes the event with msgpack and publishes it.
func (m *MessageBuilder) sendEvent(ctx context.Context, subject string, event models.SessionEvent) error {
	event.OccurredAt = time.Now().UTC()

	payload, err := msgpack.Marshal(event)
	if err != nil {
		slog.ErrorContext(ctx, "error encoding session event", logging.ErrKey, err, "subject", subject)
		return err
	}

	if err := m.NatsConn.Publish(subject, payload); err != nil {
		slog.ErrorContext(ctx, "error sending message to NATS", logging.ErrKey, err, "subject", subject)
		return err
	}

	slog.DebugContext(ctx, "sent session event to NATS",
		"subject", subject,
		"action", event.Action,
		"meeting_uid", event.MeetingUID,
	)
	return nil
}

// SendMeetingCreated publishes a meeting creation event.
func (m *MessageBuilder) SendMeetingCreated(ctx context.Context, meeting models.Meeting) error {
	return m.sendEvent(ctx, models.MeetingCreatedSubject, models.SessionEvent{
		Action:     models.ActionCreated,
		MeetingUID: meeting.UID,
		Data:       meeting,
		Tags:       meeting.Tags(),
	})
}

// SendParticipantJoined publishes a roster join event.
func (m *MessageBuilder) SendParticipantJoined(ctx context.Context, participant models.Participant) error {
	return m.sendEvent(ctx, models.ParticipantJoinedSubject, models.SessionEvent{
		Action:     models.ActionCreated,
		MeetingUID: participant.MeetingUID,
		Data:       participant,
		Tags:       participant.Tags(),
	})
}

// SendParticipantLeft publishes a roster leave event. Only the identifiers
// are sent because the participant record is gone from the roster.
func (m *MessageBuilder) SendParticipantLeft(ctx context.Context, meetingUID, participantUID string) error {
	return m.sendEvent(ctx, models.ParticipantLeftSubject, models.SessionEvent{
		Action:     models.ActionDeleted,
		MeetingUID: meetingUID,
		Data:       participantUID,
	})
}

// SendParticipantUpdated publishes a mic/camera toggle event.
func (m *MessageBuilder) SendParticipantUpdated(ctx context.Context, participant models.Participant) error {
	return m.sendEvent(ctx, models.ParticipantUpdatedSubject, models.SessionEvent{
		Action:     models.ActionUpdated,
		MeetingUID: participant.MeetingUID,
		Data:       participant,
		Tags:       participant.Tags(),
	})
}

// SendMessageSent publishes a chat message event.
func (m *MessageBuilder) SendMessageSent(ctx context.Context, message models.ChatMessage) error {
	return m.sendEvent(ctx, models.MessageSentSubject, models.SessionEvent{
		Action:     models.ActionCreated,
		MeetingUID: message.MeetingUID,
		Data:       message,
		Tags:       message.Tags(),
	})
}

// SendFileUploaded publishes a file registry event.
func (m *MessageBuilder) SendFileUploaded(ctx context.Context, file models.FileItem) error {
	return m.sendEvent(ctx, models.FileUploadedSubject, models.SessionEvent{
		Action:     models.ActionCreated,
		MeetingUID: file.MeetingUID,
		Data:       file,
		Tags:       file.Tags(),
	})
}

// SendCaptionAppended publishes a caption stream event.
func (m *MessageBuilder) SendCaptionAppended(ctx context.Context, caption models.Caption) error {
	return m.sendEvent(ctx, models.CaptionAppendedSubject, models.SessionEvent{
		Action:     models.ActionCreated,
		MeetingUID: caption.MeetingUID,
		Data:       caption,
		Tags:       caption.Tags(),
	})
}

// SendRecordingStarted publishes a recording start event.
func (m *MessageBuilder) SendRecordingStarted(ctx context.Context, recording models.Recording) error {
	return m.sendEvent(ctx, models.RecordingStartedSubject, models.SessionEvent{
		Action:     models.ActionCreated,
		MeetingUID: recording.MeetingUID,
		Data:       recording,
		Tags:       recording.Tags(),
	})
}

// SendRecordingStopped publishes a recording stop event carrying the derived
// playback reference.
func (m *MessageBuilder) SendRecordingStopped(ctx context.Context, recording models.Recording, playbackRef string) error {
	return m.sendEvent(ctx, models.RecordingStoppedSubject, models.SessionEvent{
		Action:     models.ActionDeleted,
		MeetingUID: recording.MeetingUID,
		Data:       playbackRef,
		Tags:       recording.Tags(),
	})
}
