package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
)

// meetingRepository implements MeetingRepository in process memory.
// Meetings are never deleted; the registry lives as long as the process.
type meetingRepository struct {
	mu       sync.RWMutex
	meetings []*entities.Meeting
	byID     map[string]*entities.Meeting
}

// NewMeetingRepository creates an empty meeting registry
func NewMeetingRepository() repositories.MeetingRepository {
	return &meetingRepository{
		byID: make(map[string]*entities.Meeting),
	}
}

// List returns copies of all meetings in registry order
func (r *meetingRepository) List(ctx context.Context) ([]entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Meeting, 0, len(r.meetings))
	for _, m := range r.meetings {
		out = append(out, *m)
	}
	return out, nil
}

// FindByID returns a copy of the meeting with the given id
func (r *meetingRepository) FindByID(ctx context.Context, id string) (*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return nil, entities.ErrMeetingNotFound
	}
	cp := *m
	return &cp, nil
}

// Prepend inserts a meeting at the front of the registry
func (r *meetingRepository) Prepend(ctx context.Context, meeting *entities.Meeting) error {
	return r.insert(meeting, true)
}

// Append inserts a meeting at the back of the registry
func (r *meetingRepository) Append(ctx context.Context, meeting *entities.Meeting) error {
	return r.insert(meeting, false)
}

func (r *meetingRepository) insert(meeting *entities.Meeting, front bool) error {
	if meeting == nil || meeting.ID == "" {
		return entities.ErrInvalidMeeting
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[meeting.ID]; exists {
		return fmt.Errorf("%w: %s", entities.ErrMeetingExists, meeting.ID)
	}

	stored := *meeting
	if stored.Status == "" {
		stored.Status = entities.MeetingStatusPending
	}

	if front {
		r.meetings = append([]*entities.Meeting{&stored}, r.meetings...)
	} else {
		r.meetings = append(r.meetings, &stored)
	}
	r.byID[stored.ID] = &stored
	return nil
}

// MarkProcessed updates the matching meeting in place; other entries are untouched
func (r *meetingRepository) MarkProcessed(ctx context.Context, id string, record *entities.AnalysisRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byID[id]
	if !ok {
		return false, entities.ErrMeetingNotFound
	}
	return m.MarkProcessed(record), nil
}
