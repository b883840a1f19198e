package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/internal/usecase/state"
)

type scriptedTransport struct {
	replies []reply
	calls   []string
}

type reply struct {
	result *entities.AgentResult
	err    error
}

func (s *scriptedTransport) Send(ctx context.Context, message, targetID string) (*entities.AgentResult, error) {
	s.calls = append(s.calls, message)
	r := s.replies[0]
	if len(s.replies) > 1 {
		s.replies = s.replies[1:]
	}
	return r.result, r.err
}

const resultSetJSON = `{"query":"auth","total_results":1,"results":[{"meeting_title":"Sync","meeting_date":"2025-02-01","relevance_score":"high","matching_section":"decisions","excerpt":"use OIDC","key_participants":["Ana","Bo"]}],"suggested_refinements":["auth rollout","auth risks"]}`

func newService(t *testing.T, transport *scriptedTransport) (Service, *state.Store) {
	t.Helper()
	store := state.NewStore(cache.NewMemoryStore(0), time.Second, nil)
	t.Cleanup(store.Close)
	target := entities.AgentTarget{ID: "search-id", Name: "Meeting Search Agent"}
	return NewSearchService(ai.NewDispatcher(transport, nil), store, target, nil), store
}

func ok(response map[string]any) reply {
	return reply{result: &entities.AgentResult{Success: true, Response: response}}
}

func TestSearch_BlankQueryIsNoOp(t *testing.T) {
	transport := &scriptedTransport{replies: []reply{ok(map[string]any{"result": resultSetJSON})}}
	svc, store := newService(t, transport)

	require.False(t, svc.Search(context.Background(), "auth").Failed())
	before := store.Snapshot()

	out := svc.Search(context.Background(), "   \t")
	assert.True(t, out.Skipped)
	assert.False(t, out.Failed())
	assert.Len(t, transport.calls, 1)
	assert.Equal(t, before, store.Snapshot())
}

func TestSearch_Success(t *testing.T) {
	transport := &scriptedTransport{replies: []reply{ok(map[string]any{"result": resultSetJSON})}}
	svc, store := newService(t, transport)

	out := svc.Search(context.Background(), "  auth  ")
	require.False(t, out.Failed())
	assert.Equal(t, []string{"auth"}, transport.calls)

	require.NotNil(t, out.Results)
	assert.Equal(t, 1, out.Results.TotalResults)
	assert.Equal(t, []string{"Ana", "Bo"}, out.Results.Results[0].KeyParticipants)

	view := store.Snapshot().Search
	assert.Equal(t, out.Results, view.Results)
	assert.Equal(t, "auth", view.Query)
	assert.False(t, view.Searching)
	assert.Empty(t, view.Error)
}

func TestSearch_Failures(t *testing.T) {
	tests := []struct {
		name    string
		reply   reply
		message string
	}{
		{"network", reply{err: errors.New("i/o timeout")}, MsgNetworkError},
		{"reported with text", reply{result: &entities.AgentResult{Error: "index offline"}}, "index offline"},
		{"reported without text", reply{result: &entities.AgentResult{}}, MsgSearchFailed},
		{"plain text message", ok(map[string]any{"result": 3.0, "message": "no idea"}), MsgUnparseable},
		{"nothing usable", ok(map[string]any{"result": []any{}}), MsgNoResults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newService(t, &scriptedTransport{replies: []reply{tt.reply}})

			out := svc.Search(context.Background(), "auth")
			assert.True(t, out.Failed())
			assert.Equal(t, tt.message, out.Error)

			view := store.Snapshot().Search
			assert.Equal(t, tt.message, view.Error)
			assert.Nil(t, view.Results)
			assert.False(t, view.Searching)
		})
	}
}

func TestSearch_NewSearchClearsStaleError(t *testing.T) {
	transport := &scriptedTransport{replies: []reply{
		{err: errors.New("connection reset")},
		ok(map[string]any{"result": resultSetJSON}),
	}}
	svc, store := newService(t, transport)

	svc.Search(context.Background(), "auth")
	require.Equal(t, MsgNetworkError, store.Snapshot().Search.Error)

	svc.Search(context.Background(), "auth")
	view := store.Snapshot().Search
	assert.Empty(t, view.Error)
	assert.NotNil(t, view.Results)
}

func TestInterpret_TextFallback(t *testing.T) {
	d := &ai.Dispatch{
		Kind:     ai.ErrorKindUnrecognizedFormat,
		Envelope: map[string]any{"result": map[string]any{"text": "```json\n" + resultSetJSON + "\n```"}},
	}
	results, kind, _ := interpret(d)
	require.Equal(t, ai.ErrorKindNone, kind)
	assert.Equal(t, "auth", results.Query)

	d.Envelope = map[string]any{"result": "raw", "message": resultSetJSON}
	results, kind, _ = interpret(d)
	require.Equal(t, ai.ErrorKindNone, kind)
	assert.Len(t, results.SuggestedRefinements, 2)
}

func TestSelectRefinement(t *testing.T) {
	transport := &scriptedTransport{replies: []reply{ok(map[string]any{"result": resultSetJSON})}}
	svc, store := newService(t, transport)

	_, err := svc.SelectRefinement(context.Background(), 0)
	assert.ErrorIs(t, err, usecaseErrors.ErrNoSearchResults)

	svc.Search(context.Background(), "auth")

	refinement, err := svc.SelectRefinement(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "auth risks", refinement)
	assert.Equal(t, "auth risks", svc.Current(context.Background()).Query)
	assert.Len(t, transport.calls, 1, "selecting a refinement does not search")
	assert.NotNil(t, store.Snapshot().Search.Results)

	_, err = svc.SelectRefinement(context.Background(), 2)
	assert.ErrorIs(t, err, usecaseErrors.ErrRefinementOutOfRange)
}
