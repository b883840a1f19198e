package search

import (
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// SearchResponse represents the outcome of one search
type SearchResponse struct {
	RequestID  string                    `json:"request_id,omitempty"`
	Sequence   uint64                    `json:"sequence,omitempty"`
	Query      string                    `json:"query"`
	Skipped    bool                      `json:"skipped,omitempty"`
	Superseded bool                      `json:"superseded,omitempty"`
	Results    *entities.SearchResultSet `json:"results,omitempty"`
}

// SearchViewResponse represents the current search view
type SearchViewResponse struct {
	Query     string                    `json:"query"`
	Searching bool                      `json:"searching"`
	Results   *entities.SearchResultSet `json:"results,omitempty"`
	Error     string                    `json:"error,omitempty"`
}

// RefinementResponse carries the query input after a refinement was selected
type RefinementResponse struct {
	Query string `json:"query"`
}
