package meeting

import (
	"context"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/usecase/ai"
)

// Service defines the interface for the meeting lifecycle use case
type Service interface {
	// List returns the registry, most recently submitted first
	List(ctx context.Context) ([]entities.Meeting, error)

	// Get returns a single meeting
	Get(ctx context.Context, id string) (*entities.Meeting, error)

	// Notes returns processed meetings with their analysis
	Notes(ctx context.Context) ([]entities.Meeting, error)

	// ProcessMeeting sends a pending registry meeting to the processing coordinator
	ProcessMeeting(ctx context.Context, id string, opts ProcessOptions) (*ProcessOutput, error)

	// ProcessCustom registers an ad-hoc meeting from free text and processes it
	ProcessCustom(ctx context.Context, text string, opts ProcessOptions) (*ProcessOutput, error)

	// Process dispatches an arbitrary message; meetingID may be empty
	Process(ctx context.Context, message string, meetingID string) *ProcessOutput

	// Seed loads known meetings into the registry in the given order
	Seed(ctx context.Context, meetings []*entities.Meeting) error
}

// ProcessOptions controls how a processing request is run
type ProcessOptions struct {
	// Async returns right after the request is issued; the result is applied
	// to the state store and registry in the background.
	Async bool
}

// ProcessOutput describes one processing request
type ProcessOutput struct {
	RequestID string
	Sequence  uint64
	MeetingID string

	// Pending is set for async requests that have not completed yet
	Pending bool

	Record    *entities.AnalysisRecord
	ErrorKind ai.ErrorKind
	// Error is the user-visible failure message
	Error string
	// Superseded is set when a newer request was issued before this one completed
	Superseded bool
}

// Failed reports whether the request completed without a record
func (o *ProcessOutput) Failed() bool {
	return !o.Pending && o.ErrorKind != ai.ErrorKindNone
}
