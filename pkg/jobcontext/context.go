package jobcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type KeyContext string

var (
	keyRequestID KeyContext = "request_id"
	keyTargetID  KeyContext = "target_id"
	keyStream    KeyContext = "stream"
	keySequence  KeyContext = "sequence"
	keyStartTime KeyContext = "dispatch_start_time"
)

// DispatchMetadata holds metadata for one agent dispatch
type DispatchMetadata struct {
	RequestID uuid.UUID
	TargetID  string
	Stream    string
	Sequence  uint64
	StartTime time.Time
}

// DispatchBegin attaches dispatch metadata to ctx. A request id already carried
// by ctx (for example from the HTTP layer) is reused; otherwise a new one is minted.
func DispatchBegin(parentCtx context.Context, stream string, seq uint64, targetID string) context.Context {
	requestID, ok := GetRequestID(parentCtx)
	if !ok {
		requestID = uuid.New()
	}

	ctx := context.WithValue(parentCtx, keyRequestID, requestID)
	ctx = context.WithValue(ctx, keyTargetID, targetID)
	ctx = context.WithValue(ctx, keyStream, stream)
	ctx = context.WithValue(ctx, keySequence, seq)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())
	return ctx
}

// WithRequestID stores a request id parsed from an inbound X-Request-ID header.
// Values that are not UUIDs are ignored.
func WithRequestID(ctx context.Context, raw string) context.Context {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, id)
}

// GetRequestID extracts the request id from context
func GetRequestID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyRequestID).(uuid.UUID)
	return id, ok
}

// GetTargetID extracts the dispatch target from context
func GetTargetID(ctx context.Context) string {
	target, _ := ctx.Value(keyTargetID).(string)
	return target
}

// GetSequence extracts the dispatch sequence number from context
func GetSequence(ctx context.Context) uint64 {
	seq, _ := ctx.Value(keySequence).(uint64)
	return seq
}

// GetStartTime extracts dispatch start time from context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyStartTime).(time.Time)
	return startTime, ok
}

// GetDispatchMetadata extracts all dispatch metadata from context
func GetDispatchMetadata(ctx context.Context) *DispatchMetadata {
	requestID, _ := GetRequestID(ctx)
	startTime, _ := GetStartTime(ctx)
	stream, _ := ctx.Value(keyStream).(string)

	return &DispatchMetadata{
		RequestID: requestID,
		TargetID:  GetTargetID(ctx),
		Stream:    stream,
		Sequence:  GetSequence(ctx),
		StartTime: startTime,
	}
}

// IsRetryableError checks if an error should trigger a retry
// Retryable errors include: network errors, timeouts, rate limits, 5xx
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	// Context errors (timeout, cancelled)
	if strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled") {
		return true
	}

	// Network errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "network unreachable") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// API rate limiting
	if strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "slowdown") {
		return true
	}

	// Server errors (5xx)
	if strings.Contains(errStr, "status 5") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "bad gateway") {
		return true
	}

	// Temporary failures
	if strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "try again") {
		return true
	}

	return false
}
