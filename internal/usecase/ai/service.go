package ai

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/gateways"
	"github.com/johnquangdev/meeting-notes/pkg/jobcontext"
	"github.com/johnquangdev/meeting-notes/pkg/metrics"
)

// ErrorKind classifies why a dispatch did not produce a record
type ErrorKind string

const (
	ErrorKindNone               ErrorKind = ""
	ErrorKindUnrecognizedFormat ErrorKind = "unrecognized_format"
	ErrorKindReportedFailure    ErrorKind = "reported_failure"
	ErrorKindTransportException ErrorKind = "transport_exception"
)

// Dispatch is the interpreted result of one agent call
type Dispatch struct {
	RequestID uuid.UUID
	Sequence  uint64
	TargetID  string

	Outcome Outcome
	// Envelope is the raw response object, kept for caller-specific fallbacks
	Envelope map[string]any

	Kind ErrorKind
	// ReportedError is the transport's own error text for a reported failure
	ReportedError string
	// Err is the transport exception, if any
	Err      error
	Duration time.Duration
}

// Succeeded reports whether the call returned a recognized record
func (d *Dispatch) Succeeded() bool {
	return d.Kind == ErrorKindNone
}

// Service sends one logical request to one named agent and interprets the reply
type Service interface {
	Dispatch(ctx context.Context, targetID string, message string) *Dispatch
}

type dispatchService struct {
	transport  gateways.AgentTransport
	normalizer *Normalizer
	logger     *zap.Logger
}

// NewDispatcher constructs the dispatch service around an agent transport
func NewDispatcher(transport gateways.AgentTransport, logger *zap.Logger) Service {
	return &dispatchService{
		transport:  transport,
		normalizer: NewNormalizer(),
		logger:     logger,
	}
}

// Dispatch calls the transport once. It never returns an error: every failure
// is folded into the returned Dispatch. No retry is attempted.
func (s *dispatchService) Dispatch(ctx context.Context, targetID string, message string) *Dispatch {
	meta := jobcontext.GetDispatchMetadata(ctx)
	if meta.RequestID == uuid.Nil {
		ctx = jobcontext.DispatchBegin(ctx, meta.Stream, meta.Sequence, targetID)
		meta = jobcontext.GetDispatchMetadata(ctx)
	}

	d := &Dispatch{
		RequestID: meta.RequestID,
		Sequence:  meta.Sequence,
		TargetID:  targetID,
		Outcome:   unrecognized,
	}

	if s.logger != nil {
		s.logger.Info("📤 Dispatching to agent",
			zap.String("request_id", d.RequestID.String()),
			zap.String("target_id", targetID),
			zap.String("stream", meta.Stream),
			zap.Uint64("seq", d.Sequence),
			zap.Int("message_length", len(message)),
		)
	}

	start := time.Now()
	result, err := s.transport.Send(ctx, message, targetID)
	d.Duration = time.Since(start)

	switch {
	case err != nil:
		d.Kind = ErrorKindTransportException
		d.Err = err
	case result == nil || !result.Success:
		d.Kind = ErrorKindReportedFailure
		if result != nil {
			d.ReportedError = result.Error
			d.Envelope = result.Response
		}
	default:
		d.Envelope = result.Response
		d.Outcome = s.normalizer.Normalize(result.Response)
		metrics.RecordEnvelopeShape(string(d.Outcome.Shape))
		if !d.Outcome.Recognized() {
			d.Kind = ErrorKindUnrecognizedFormat
		}
	}

	outcome := string(d.Kind)
	if d.Kind == ErrorKindNone {
		outcome = "success"
	}
	metrics.RecordDispatch(targetID, outcome, d.Duration.Seconds())

	if s.logger != nil {
		fields := []zap.Field{
			zap.String("request_id", d.RequestID.String()),
			zap.String("target_id", targetID),
			zap.Uint64("seq", d.Sequence),
			zap.String("outcome", outcome),
			zap.String("shape", string(d.Outcome.Shape)),
			zap.Duration("duration", d.Duration),
		}
		switch d.Kind {
		case ErrorKindNone:
			s.logger.Info("✅ Agent dispatch completed", fields...)
		case ErrorKindTransportException:
			s.logger.Error("❌ Agent dispatch failed", append(fields, zap.Error(err))...)
		default:
			s.logger.Warn("⚠️ Agent dispatch returned no record",
				append(fields, zap.String("reported_error", d.ReportedError))...)
		}
	}

	return d
}
