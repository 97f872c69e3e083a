// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/mety-app/session-service/internal/domain/models"
)

// MessageBuilder is the interface for publishing session events so that
// presentation layers can react to mutations without polling. Publish
// failures never fail the mutation that triggered them; they are logged and
// dropped.
type MessageBuilder interface {
	SendMeetingCreated(ctx context.Context, meeting models.Meeting) error
	SendParticipantJoined(ctx context.Context, participant models.Participant) error
	SendParticipantLeft(ctx context.Context, meetingUID, participantUID string) error
	SendParticipantUpdated(ctx context.Context, participant models.Participant) error
	SendMessageSent(ctx context.Context, message models.ChatMessage) error
	SendFileUploaded(ctx context.Context, file models.FileItem) error
	SendCaptionAppended(ctx context.Context, caption models.Caption) error
	SendRecordingStarted(ctx context.Context, recording models.Recording) error
	SendRecordingStopped(ctx context.Context, recording models.Recording, playbackRef string) error
}
