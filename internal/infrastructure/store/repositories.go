// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"

	"github.com/mety-app/session-service/internal/domain"
	"github.com/mety-app/session-service/internal/domain/models"
)

// Repositories bundles the per-entity repositories backed by one MemoryStore.
type Repositories struct {
	Meeting     domain.MeetingRepository
	Participant domain.ParticipantRepository
	Message     domain.MessageRepository
	File        domain.FileRepository
	Caption     domain.CaptionRepository
	Recording   domain.RecordingStateRepository
}

// NewRepositories creates the per-entity repositories over a shared store.
func NewRepositories(s *MemoryStore) Repositories {
	return Repositories{
		Meeting:     &MeetingMemoryRepository{store: s},
		Participant: &ParticipantMemoryRepository{store: s},
		Message:     &MessageMemoryRepository{store: s},
		File:        &FileMemoryRepository{store: s},
		Caption:     &CaptionMemoryRepository{store: s},
		Recording:   &RecordingMemoryRepository{store: s},
	}
}

// MeetingMemoryRepository implements domain.MeetingRepository.
type MeetingMemoryRepository struct {
	store *MemoryStore
}

func (r *MeetingMemoryRepository) Create(ctx context.Context, meeting *models.Meeting) error {
	return r.store.CreateMeeting(ctx, meeting)
}

func (r *MeetingMemoryRepository) Get(ctx context.Context, meetingUID string) (*models.Meeting, error) {
	return r.store.GetMeeting(ctx, meetingUID)
}

func (r *MeetingMemoryRepository) Exists(ctx context.Context, meetingUID string) (bool, error) {
	return r.store.MeetingExists(ctx, meetingUID)
}

func (r *MeetingMemoryRepository) ListAll(ctx context.Context) ([]*models.Meeting, error) {
	return r.store.ListMeetings(ctx)
}

// ParticipantMemoryRepository implements domain.ParticipantRepository.
type ParticipantMemoryRepository struct {
	store *MemoryStore
}

func (r *ParticipantMemoryRepository) Add(ctx context.Context, participant *models.Participant) error {
	return r.store.AddParticipant(ctx, participant)
}

func (r *ParticipantMemoryRepository) Remove(ctx context.Context, meetingUID, participantUID string) error {
	return r.store.RemoveParticipant(ctx, meetingUID, participantUID)
}

func (r *ParticipantMemoryRepository) Get(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
	return r.store.GetParticipant(ctx, meetingUID, participantUID)
}

func (r *ParticipantMemoryRepository) ToggleMic(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
	return r.store.ToggleMic(ctx, meetingUID, participantUID)
}

func (r *ParticipantMemoryRepository) ToggleCam(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
	return r.store.ToggleCam(ctx, meetingUID, participantUID)
}

func (r *ParticipantMemoryRepository) ListByMeeting(ctx context.Context, meetingUID string) ([]*models.Participant, error) {
	return r.store.ListParticipants(ctx, meetingUID)
}

// MessageMemoryRepository implements domain.MessageRepository.
type MessageMemoryRepository struct {
	store *MemoryStore
}

func (r *MessageMemoryRepository) Append(ctx context.Context, message *models.ChatMessage) error {
	return r.store.AppendMessage(ctx, message)
}

func (r *MessageMemoryRepository) ListByMeeting(ctx context.Context, meetingUID string) ([]*models.ChatMessage, error) {
	return r.store.ListMessages(ctx, meetingUID)
}

// FileMemoryRepository implements domain.FileRepository.
type FileMemoryRepository struct {
	store *MemoryStore
}

func (r *FileMemoryRepository) Append(ctx context.Context, file *models.FileItem) error {
	return r.store.AppendFile(ctx, file)
}

func (r *FileMemoryRepository) Get(ctx context.Context, meetingUID, fileUID string) (*models.FileItem, error) {
	return r.store.GetFile(ctx, meetingUID, fileUID)
}

func (r *FileMemoryRepository) ListByMeeting(ctx context.Context, meetingUID string) ([]*models.FileItem, error) {
	return r.store.ListFiles(ctx, meetingUID)
}

// CaptionMemoryRepository implements domain.CaptionRepository.
type CaptionMemoryRepository struct {
	store *MemoryStore
}

func (r *CaptionMemoryRepository) Append(ctx context.Context, caption *models.Caption) error {
	return r.store.AppendCaption(ctx, caption)
}

func (r *CaptionMemoryRepository) ListByMeeting(ctx context.Context, meetingUID string) ([]*models.Caption, error) {
	return r.store.ListCaptions(ctx, meetingUID)
}

// RecordingMemoryRepository implements domain.RecordingStateRepository.
type RecordingMemoryRepository struct {
	store *MemoryStore
}

func (r *RecordingMemoryRepository) Begin(ctx context.Context, recording *models.Recording) error {
	return r.store.BeginRecording(ctx, recording)
}

func (r *RecordingMemoryRepository) End(ctx context.Context, meetingUID, recordingUID string) (*models.Recording, error) {
	return r.store.EndRecording(ctx, meetingUID, recordingUID)
}

func (r *RecordingMemoryRepository) Active(ctx context.Context, meetingUID string) (*models.Recording, error) {
	return r.store.ActiveRecording(ctx, meetingUID)
}
