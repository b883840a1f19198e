package search

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/internal/usecase/state"
	"github.com/johnquangdev/meeting-notes/pkg/jobcontext"
)

// User-visible search failures
const (
	MsgUnparseable  = "Could not parse search results. Raw response received."
	MsgNoResults    = "No results returned from search agent."
	MsgSearchFailed = "Search failed. Please try again."
	MsgNetworkError = "Network error during search."
)

// Service defines the interface for the search coordinator
type Service interface {
	// Search runs a discovery query against the search agent
	Search(ctx context.Context, query string) *Output
	// Current returns the search view
	Current(ctx context.Context) state.SearchView
	// SelectRefinement copies a suggested refinement into the query input
	SelectRefinement(ctx context.Context, index int) (string, error)
}

// Output describes one search invocation
type Output struct {
	RequestID string
	Sequence  uint64
	Query     string
	// Skipped is set when the query was blank and nothing was sent
	Skipped bool

	Results    *entities.SearchResultSet
	ErrorKind  ai.ErrorKind
	Error      string
	Superseded bool
}

// Failed reports whether a dispatched search produced no result set
func (o *Output) Failed() bool {
	return !o.Skipped && o.ErrorKind != ai.ErrorKindNone
}

type searchService struct {
	dispatcher ai.Service
	store      *state.Store
	target     entities.AgentTarget
	logger     *zap.Logger
}

// NewSearchService creates the search coordinator
func NewSearchService(dispatcher ai.Service, store *state.Store, target entities.AgentTarget, logger *zap.Logger) Service {
	return &searchService{
		dispatcher: dispatcher,
		store:      store,
		target:     target,
		logger:     logger,
	}
}

// Search dispatches the trimmed query. A blank query is a no-op.
func (s *searchService) Search(ctx context.Context, query string) *Output {
	query = strings.TrimSpace(query)
	if query == "" {
		return &Output{Skipped: true}
	}

	seq := s.store.Next(state.StreamSearch)
	ctx = jobcontext.DispatchBegin(ctx, string(state.StreamSearch), seq, s.target.ID)
	s.store.Apply(state.SearchStarted{Seq: seq, Query: query})

	d := s.dispatcher.Dispatch(ctx, s.target.ID, query)
	out := &Output{
		RequestID: d.RequestID.String(),
		Sequence:  seq,
		Query:     query,
	}

	results, kind, msg := interpret(d)
	out.ErrorKind = kind
	if kind != ai.ErrorKindNone {
		out.Error = msg
		out.Superseded = !s.store.Apply(state.SearchFailed{Seq: seq, Message: msg})
		return out
	}

	out.Results = results
	out.Superseded = !s.store.Apply(state.SearchSucceeded{Seq: seq, Results: results})

	if s.logger != nil {
		s.logger.Info("🔎 Search completed",
			zap.String("request_id", out.RequestID),
			zap.Int("results", len(results.Results)),
		)
	}
	return out
}

// Current returns the search view of the state store
func (s *searchService) Current(ctx context.Context) state.SearchView {
	return s.store.Snapshot().Search
}

// SelectRefinement sets the query input to the indexed suggestion; no search is run
func (s *searchService) SelectRefinement(ctx context.Context, index int) (string, error) {
	results := s.store.Snapshot().Search.Results
	if results == nil {
		return "", usecaseErrors.ErrNoSearchResults
	}
	if index < 0 || index >= len(results.SuggestedRefinements) {
		return "", usecaseErrors.ErrRefinementOutOfRange
	}

	refinement := results.SuggestedRefinements[index]
	s.store.Apply(state.QueryChanged{Query: refinement})
	return refinement, nil
}

func interpret(d *ai.Dispatch) (*entities.SearchResultSet, ai.ErrorKind, string) {
	switch d.Kind {
	case ai.ErrorKindTransportException:
		return nil, d.Kind, MsgNetworkError
	case ai.ErrorKindReportedFailure:
		if d.ReportedError != "" {
			return nil, d.Kind, d.ReportedError
		}
		return nil, d.Kind, MsgSearchFailed
	case ai.ErrorKindNone:
		return entities.SearchResultSetFromMap(d.Outcome.Payload), ai.ErrorKindNone, ""
	}

	text, _ := fallbackText(d.Envelope).(string)
	if text == "" {
		return nil, ai.ErrorKindUnrecognizedFormat, MsgNoResults
	}
	obj, ok := ai.DecodeObject(text)
	if !ok {
		return nil, ai.ErrorKindUnrecognizedFormat, MsgUnparseable
	}
	return entities.SearchResultSetFromMap(obj), ai.ErrorKindNone, ""
}

// fallbackText is result.text when present, otherwise the message slot
func fallbackText(envelope map[string]any) any {
	var text any
	if result, ok := envelope["result"].(map[string]any); ok {
		text = result["text"]
	}
	if text == nil {
		text = envelope["message"]
	}
	return text
}
