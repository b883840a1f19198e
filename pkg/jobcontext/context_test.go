package jobcontext

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchBegin_MintsRequestID(t *testing.T) {
	ctx := DispatchBegin(context.Background(), "process", 7, "agent-manager")

	meta := GetDispatchMetadata(ctx)
	assert.NotEqual(t, uuid.Nil, meta.RequestID)
	assert.Equal(t, "agent-manager", meta.TargetID)
	assert.Equal(t, "process", meta.Stream)
	assert.Equal(t, uint64(7), meta.Sequence)
	assert.False(t, meta.StartTime.IsZero())
}

func TestDispatchBegin_ReusesInboundRequestID(t *testing.T) {
	id := uuid.New()
	ctx := WithRequestID(context.Background(), " "+id.String()+" ")

	ctx = DispatchBegin(ctx, "search", 1, "agent-search")

	got, ok := GetRequestID(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestWithRequestID_IgnoresInvalid(t *testing.T) {
	ctx := WithRequestID(context.Background(), "not-a-uuid")

	_, ok := GetRequestID(ctx)
	assert.False(t, ok)
}

func TestGetDispatchMetadata_Empty(t *testing.T) {
	meta := GetDispatchMetadata(context.Background())
	assert.Equal(t, uuid.Nil, meta.RequestID)
	assert.Empty(t, meta.TargetID)
	assert.Zero(t, meta.Sequence)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.DeadlineExceeded, true},
		{fmt.Errorf("dial tcp: %w", errors.New("connection refused")), true},
		{errors.New("429 Too Many Requests"), true},
		{errors.New("Service Unavailable"), true},
		{errors.New("Access Denied."), false},
		{errors.New("bucket name invalid"), false},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryableError(tt.err))
		})
	}
}
