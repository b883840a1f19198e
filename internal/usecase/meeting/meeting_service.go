package meeting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/internal/usecase/state"
	"github.com/johnquangdev/meeting-notes/pkg/jobcontext"
)

// User-visible processing failures
const (
	MsgUnrecognizedFormat = "Could not parse meeting processing results. The agent returned an unexpected format."
	MsgProcessingFailed   = "Meeting processing failed. Please try again."
	MsgNetworkError       = "Network error during processing."
)

// maxCustomIDAttempts bounds the search for a free custom-<millis> id
const maxCustomIDAttempts = 1000

var _ Service = (*MeetingService)(nil)

// MeetingService handles meeting lifecycle business logic
type MeetingService struct {
	meetingRepo repositories.MeetingRepository
	dispatcher  ai.Service
	store       *state.Store
	coordinator entities.AgentTarget
	logger      *zap.Logger
	now         func() time.Time
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	dispatcher ai.Service,
	store *state.Store,
	coordinator entities.AgentTarget,
	logger *zap.Logger,
) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
		dispatcher:  dispatcher,
		store:       store,
		coordinator: coordinator,
		logger:      logger,
		now:         time.Now,
	}
}

// List returns the registry
func (s *MeetingService) List(ctx context.Context) ([]entities.Meeting, error) {
	meetings, err := s.meetingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// Get retrieves a meeting by ID
func (s *MeetingService) Get(ctx context.Context, id string) (*entities.Meeting, error) {
	m, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return m, nil
}

// Notes returns the processed meetings
func (s *MeetingService) Notes(ctx context.Context) ([]entities.Meeting, error) {
	meetings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	notes := make([]entities.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if m.IsProcessed() {
			notes = append(notes, m)
		}
	}
	return notes, nil
}

// Seed appends known meetings to the registry
func (s *MeetingService) Seed(ctx context.Context, meetings []*entities.Meeting) error {
	for _, m := range meetings {
		if err := s.meetingRepo.Append(ctx, m); err != nil {
			if errors.Is(err, entities.ErrMeetingExists) {
				return fmt.Errorf("%w: %s", usecaseErrors.ErrDuplicateMeeting, m.ID)
			}
			return fmt.Errorf("failed to seed meeting: %w", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("🌱 Meeting registry seeded", zap.Int("count", len(meetings)))
	}
	return nil
}

// ProcessMeeting processes a pending registry meeting. Already-processed
// meetings are rejected before anything is sent.
func (s *MeetingService) ProcessMeeting(ctx context.Context, id string, opts ProcessOptions) (*ProcessOutput, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.IsProcessed() {
		return nil, usecaseErrors.ErrMeetingAlreadyProcessed
	}

	return s.run(ctx, m.ProcessMessage(), m.ID, opts), nil
}

// ProcessCustom registers a pending "Custom Meeting" at the front of the
// registry, then processes the submitted text
func (s *MeetingService) ProcessCustom(ctx context.Context, text string, opts ProcessOptions) (*ProcessOutput, error) {
	message := strings.TrimSpace(text)
	if message == "" {
		return nil, usecaseErrors.ErrEmptyMeetingInput
	}

	m, err := s.registerCustom(ctx, text)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("📝 Custom meeting registered",
			zap.String("meeting_id", m.ID),
			zap.Int("text_length", len(text)),
		)
	}

	return s.run(ctx, message, m.ID, opts), nil
}

// Process dispatches message to the processing coordinator and waits for the result
func (s *MeetingService) Process(ctx context.Context, message string, meetingID string) *ProcessOutput {
	return s.run(ctx, message, meetingID, ProcessOptions{})
}

func (s *MeetingService) registerCustom(ctx context.Context, text string) (*entities.Meeting, error) {
	now := s.now()
	for i := 0; i < maxCustomIDAttempts; i++ {
		m := entities.NewCustomMeeting(text, now)
		err := s.meetingRepo.Prepend(ctx, m)
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, entities.ErrMeetingExists) {
			return nil, fmt.Errorf("failed to register custom meeting: %w", err)
		}
		// same millisecond as an earlier submission
		now = now.Add(time.Millisecond)
	}
	return nil, usecaseErrors.ErrDuplicateMeeting
}

func (s *MeetingService) run(ctx context.Context, message, meetingID string, opts ProcessOptions) *ProcessOutput {
	dctx, seq := s.begin(ctx)

	if !opts.Async {
		return s.finish(dctx, seq, message, meetingID)
	}

	requestID, _ := jobcontext.GetRequestID(dctx)
	go s.finish(context.WithoutCancel(dctx), seq, message, meetingID)

	return &ProcessOutput{
		RequestID: requestID.String(),
		Sequence:  seq,
		MeetingID: meetingID,
		Pending:   true,
	}
}

// begin issues a sequence number and marks the request as in flight
func (s *MeetingService) begin(ctx context.Context) (context.Context, uint64) {
	seq := s.store.Next(state.StreamProcess)
	dctx := jobcontext.DispatchBegin(ctx, string(state.StreamProcess), seq, s.coordinator.ID)
	s.store.Apply(state.ProcessStarted{Seq: seq, TargetLabel: s.coordinator.Name})
	return dctx, seq
}

// finish dispatches, interprets the reply and reconciles state and registry
func (s *MeetingService) finish(ctx context.Context, seq uint64, message, meetingID string) *ProcessOutput {
	d := s.dispatcher.Dispatch(ctx, s.coordinator.ID, message)

	out := &ProcessOutput{
		RequestID: d.RequestID.String(),
		Sequence:  seq,
		MeetingID: meetingID,
	}

	record, kind, msg := interpret(d)
	out.ErrorKind = kind
	if kind != ai.ErrorKindNone {
		out.Error = msg
		out.Superseded = !s.store.Apply(state.ProcessFailed{Seq: seq, Message: msg})
		return out
	}

	out.Record = record
	out.Superseded = !s.store.Apply(state.ProcessSucceeded{Seq: seq, Record: record})

	if meetingID != "" {
		s.reconcile(ctx, meetingID, record)
	}
	return out
}

// reconcile applies a record to the matching registry entry only
func (s *MeetingService) reconcile(ctx context.Context, meetingID string, record *entities.AnalysisRecord) {
	updated, err := s.meetingRepo.MarkProcessed(ctx, meetingID, record)
	if s.logger == nil {
		return
	}

	switch {
	case errors.Is(err, entities.ErrMeetingNotFound):
		s.logger.Warn("⚠️ Processed meeting is not in the registry",
			zap.String("meeting_id", meetingID),
		)
	case err != nil:
		s.logger.Error("❌ Failed to update meeting", zap.String("meeting_id", meetingID), zap.Error(err))
	case !updated:
		s.logger.Info("Meeting was already processed, keeping first analysis",
			zap.String("meeting_id", meetingID),
		)
	default:
		s.logger.Info("✅ Meeting processed", zap.String("meeting_id", meetingID))
	}
}

// interpret turns a dispatch into a record or a user-visible failure
func interpret(d *ai.Dispatch) (*entities.AnalysisRecord, ai.ErrorKind, string) {
	switch d.Kind {
	case ai.ErrorKindTransportException:
		return nil, d.Kind, MsgNetworkError
	case ai.ErrorKindReportedFailure:
		if d.ReportedError != "" {
			return nil, d.Kind, d.ReportedError
		}
		return nil, d.Kind, MsgProcessingFailed
	case ai.ErrorKindNone:
		return entities.AnalysisRecordFromMap(d.Outcome.Payload), ai.ErrorKindNone, ""
	}

	// result slot holding a mapping with a summary still counts as a record
	if result, ok := d.Envelope["result"].(map[string]any); ok {
		if summary, ok := result["summary"]; ok && summary != nil && summary != "" && summary != false && summary != 0.0 {
			return entities.AnalysisRecordFromMap(result), ai.ErrorKindNone, ""
		}
	}
	return nil, ai.ErrorKindUnrecognizedFormat, MsgUnrecognizedFormat
}
