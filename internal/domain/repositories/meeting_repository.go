package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// MeetingRepository is the session-scoped meeting registry
type MeetingRepository interface {
	// List returns the registry in display order (most recent insert first)
	List(ctx context.Context) ([]entities.Meeting, error)
	FindByID(ctx context.Context, id string) (*entities.Meeting, error)
	// Prepend inserts a meeting at the front of the registry
	Prepend(ctx context.Context, meeting *entities.Meeting) error
	// Append inserts a meeting at the back of the registry (seed order)
	Append(ctx context.Context, meeting *entities.Meeting) error
	// MarkProcessed moves the meeting to processed with the given analysis.
	// Returns false without error when the meeting was already processed, and
	// entities.ErrMeetingNotFound when no meeting has that id.
	MarkProcessed(ctx context.Context, id string, record *entities.AnalysisRecord) (bool, error)
}
