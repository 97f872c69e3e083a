// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

// Package store provides the in-memory storage backend for the session
// service. One aggregate per meeting holds the roster and the append-only
// logs; a single lock over the aggregates keeps every operation on a
// meeting linearizable.
package store

import (
	"context"
	"sync"

	"github.com/mety-app/session-service/internal/domain"
	"github.com/mety-app/session-service/internal/domain/models"
)

// Config holds the tunables of the memory store.
type Config struct {
	// CaptionRetainLimit bounds the per-meeting caption log. Zero keeps
	// every caption, which matches the presentation layer's expectation
	// that caption history is caller-managed.
	CaptionRetainLimit int
}

// session is the per-meeting aggregate. All of its collections are created
// together with the meeting and die with the process.
type session struct {
	meeting      models.Meeting
	participants []models.Participant
	messages     []models.ChatMessage
	files        []models.FileItem
	captions     []models.Caption
	recording    *models.Recording
}

// MemoryStore holds every meeting aggregate. The per-entity repositories in
// this package are views over one shared MemoryStore, so a meeting and its
// sub-collections are always created and read under the same lock.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	config   Config
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(config Config) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*session),
		config:   config,
	}
}

func (s *MemoryStore) getSession(meetingUID string) (*session, error) {
	sess, ok := s.sessions[meetingUID]
	if !ok {
		return nil, domain.NewNotFoundError("meeting not found")
	}
	return sess, nil
}

// CreateMeeting registers the meeting and allocates its empty roster and
// logs in one step.
func (s *MemoryStore) CreateMeeting(ctx context.Context, meeting *models.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[meeting.UID]; ok {
		return domain.NewConflictError("meeting already exists")
	}

	s.sessions[meeting.UID] = &session{meeting: *meeting}
	return nil
}

// GetMeeting returns the meeting record.
func (s *MemoryStore) GetMeeting(ctx context.Context, meetingUID string) (*models.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(meetingUID)
	if err != nil {
		return nil, err
	}

	meeting := sess.meeting
	return &meeting, nil
}

// MeetingExists reports whether the meeting is registered.
func (s *MemoryStore) MeetingExists(ctx context.Context, meetingUID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sessions[meetingUID]
	return ok, nil
}

// ListMeetings returns every registered meeting in unspecified order;
// callers derive their own sort order.
func (s *MemoryStore) ListMeetings(ctx context.Context) ([]*models.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meetings := make([]*models.Meeting, 0, len(s.sessions))
	for _, sess := range s.sessions {
		meeting := sess.meeting
		meetings = append(meetings, &meeting)
	}
	return meetings, nil
}

// AddParticipant appends the participant to the meeting's roster.
func (s *MemoryStore) AddParticipant(ctx context.Context, participant *models.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(participant.MeetingUID)
	if err != nil {
		return err
	}

	sess.participants = append(sess.participants, *participant)
	return nil
}

// RemoveParticipant deletes the participant from the roster. Removing a
// participant that already left is a no-op.
func (s *MemoryStore) RemoveParticipant(ctx context.Context, meetingUID, participantUID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(meetingUID)
	if err != nil {
		return err
	}

	for i, p := range sess.participants {
		if p.UID == participantUID {
			sess.participants = append(sess.participants[:i], sess.participants[i+1:]...)
			break
		}
	}
	return nil
}

// GetParticipant returns one participant from the roster.
func (s *MemoryStore) GetParticipant(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(meetingUID)
	if err != nil {
		return nil, err
	}

	for _, p := range sess.participants {
		if p.UID == participantUID {
			participant := p
			return &participant, nil
		}
	}
	return nil, domain.NewNotFoundError("participant not found")
}

func (s *MemoryStore) toggleParticipant(meetingUID, participantUID string, flip func(*models.Participant)) (*models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(meetingUID)
	if err != nil {
		return nil, err
	}

	for i := range sess.participants {
		if sess.participants[i].UID == participantUID {
			flip(&sess.participants[i])
			participant := sess.participants[i]
			return &participant, nil
		}
	}
	return nil, domain.NewNotFoundError("participant not found")
}

// ToggleMic flips the participant's microphone flag and returns the updated
// record. The roster is left unchanged when the participant is absent.
func (s *MemoryStore) ToggleMic(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
	return s.toggleParticipant(meetingUID, participantUID, func(p *models.Participant) {
		p.MicOn = !p.MicOn
	})
}

// ToggleCam flips the participant's camera flag and returns the updated record.
func (s *MemoryStore) ToggleCam(ctx context.Context, meetingUID, participantUID string) (*models.Participant, error) {
	return s.toggleParticipant(meetingUID, participantUID, func(p *models.Participant) {
		p.CamOn = !p.CamOn
	})
}

// ListParticipants returns the roster in insertion order.
func (s *MemoryStore) ListParticipants(ctx context.Context, meetingUID string) ([]*models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(meetingUID)
	if err != nil {
		return nil, err
	}

	participants := make([]*models.Participant, len(sess.participants))
	for i, p := range sess.participants {
		participant := p
		participants[i] = &participant
	}
	return participants, nil
}

// AppendMessage appends to the meeting's chat log.
func (s *MemoryStore) AppendMessage(ctx context.Context, message *models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(message.MeetingUID)
	if err != nil {
		return err
	}

	sess.messages = append(sess.messages, *message)
	return nil
}

// ListMessages returns the chat log in append order, oldest first.
func (s *MemoryStore) ListMessages(ctx context.Context, meetingUID string) ([]*models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(meetingUID)
	if err != nil {
		return nil, err
	}

	messages := make([]*models.ChatMessage, len(sess.messages))
	for i, m := range sess.messages {
		message := m
		messages[i] = &message
	}
	return messages, nil
}

// AppendFile appends to the meeting's file registry.
func (s *MemoryStore) AppendFile(ctx context.Context, file *models.FileItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(file.MeetingUID)
	if err != nil {
		return err
	}

	sess.files = append(sess.files, *file)
	return nil
}

// GetFile returns one file registry entry.
func (s *MemoryStore) GetFile(ctx context.Context, meetingUID, fileUID string) (*models.FileItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(meetingUID)
	if err != nil {
		return nil, err
	}

	for _, f := range sess.files {
		if f.UID == fileUID {
			file := f
			return &file, nil
		}
	}
	return nil, domain.NewNotFoundError("file not found")
}

// ListFiles returns the file registry in append order.
func (s *MemoryStore) ListFiles(ctx context.Context, meetingUID string) ([]*models.FileItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(meetingUID)
	if err != nil {
		return nil, err
	}

	files := make([]*models.FileItem, len(sess.files))
	for i, f := range sess.files {
		file := f
		files[i] = &file
	}
	return files, nil
}

// AppendCaption appends to the meeting's caption log, pruning the oldest
// lines when a retention limit is configured.
func (s *MemoryStore) AppendCaption(ctx context.Context, caption *models.Caption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(caption.MeetingUID)
	if err != nil {
		return err
	}

	sess.captions = append(sess.captions, *caption)
	if limit := s.config.CaptionRetainLimit; limit > 0 && len(sess.captions) > limit {
		sess.captions = sess.captions[len(sess.captions)-limit:]
	}
	return nil
}

// ListCaptions returns the caption log in append order.
func (s *MemoryStore) ListCaptions(ctx context.Context, meetingUID string) ([]*models.Caption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(meetingUID)
	if err != nil {
		return nil, err
	}

	captions := make([]*models.Caption, len(sess.captions))
	for i, c := range sess.captions {
		caption := c
		captions[i] = &caption
	}
	return captions, nil
}

// BeginRecording marks the meeting as recording. Only one recording can be
// active per meeting at a time.
func (s *MemoryStore) BeginRecording(ctx context.Context, recording *models.Recording) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(recording.MeetingUID)
	if err != nil {
		return err
	}

	if sess.recording != nil {
		return domain.NewConflictError("meeting is already being recorded")
	}

	rec := *recording
	sess.recording = &rec
	return nil
}

// EndRecording transitions the meeting back to idle and returns the
// finished recording.
func (s *MemoryStore) EndRecording(ctx context.Context, meetingUID, recordingUID string) (*models.Recording, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(meetingUID)
	if err != nil {
		return nil, err
	}

	if sess.recording == nil {
		return nil, domain.NewConflictError("meeting is not being recorded")
	}
	if sess.recording.UID != recordingUID {
		return nil, domain.NewNotFoundError("recording handle does not match the active recording")
	}

	recording := *sess.recording
	sess.recording = nil
	return &recording, nil
}

// ActiveRecording returns the in-progress recording, if any.
func (s *MemoryStore) ActiveRecording(ctx context.Context, meetingUID string) (*models.Recording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(meetingUID)
	if err != nil {
		return nil, err
	}

	if sess.recording == nil {
		return nil, domain.NewNotFoundError("meeting is not being recorded")
	}

	recording := *sess.recording
	return &recording, nil
}
