// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/mety-app/session-service/internal/domain/models"
)

// MeetingRepository defines the interface for the meeting registry.
// Creating a meeting must also allocate its empty roster and logs, all under
// the same meeting UID, as one atomic step.
type MeetingRepository interface {
	Create(ctx context.Context, meeting *models.Meeting) error
	Get(ctx context.Context, meetingUID string) (*models.Meeting, error)
	Exists(ctx context.Context, meetingUID string) (bool, error)
	ListAll(ctx context.Context) ([]*models.Meeting, error)
}

// ParticipantRepository defines the interface for a meeting's roster.
// Toggle operations flip exactly one flag under the store's lock so that
// concurrent toggles never lose a flip.
type ParticipantRepository interface {
	Add(ctx context.Context, participant *models.Participant) error
	// Remove is idempotent: removing an absent participant is a no-op.
	Remove(ctx context.Context, meetingUID, participantUID string) error
	Get(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error)
	ToggleMic(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error)
	ToggleCam(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error)
	// ListByMeeting returns participants in roster insertion order.
	ListByMeeting(ctx context.Context, meetingUID string) ([]*models.Participant, error)
}

// MessageRepository defines the interface for a meeting's append-only chat log.
type MessageRepository interface {
	Append(ctx context.Context, message *models.ChatMessage) error
	// ListByMeeting returns messages in append order, oldest first.
	ListByMeeting(ctx context.Context, meetingUID string) ([]*models.ChatMessage, error)
}

// FileRepository defines the interface for a meeting's append-only file registry.
type FileRepository interface {
	Append(ctx context.Context, file *models.FileItem) error
	Get(ctx context.Context, meetingUID, fileUID string) (*models.FileItem, error)
	// ListByMeeting returns files in append order.
	ListByMeeting(ctx context.Context, meetingUID string) ([]*models.FileItem, error)
}

// CaptionRepository defines the interface for a meeting's caption log.
type CaptionRepository interface {
	Append(ctx context.Context, caption *models.Caption) error
	// ListByMeeting returns captions in append order.
	ListByMeeting(ctx context.Context, meetingUID string) ([]*models.Caption, error)
}

// RecordingStateRepository tracks the idle/recording state of each meeting.
type RecordingStateRepository interface {
	// Begin activates the recording; it returns a conflict error when the
	// meeting is already being recorded.
	Begin(ctx context.Context, recording *models.Recording) error
	// End deactivates the recording identified by recordingUID and returns
	// it; it fails when the meeting is idle or the handle does not match.
	End(ctx context.Context, meetingUID, recordingUID string) (*models.Recording, error)
	// Active returns the in-progress recording, or a not-found error when
	// the meeting is idle.
	Active(ctx context.Context, meetingUID string) (*models.Recording, error)
}
