package search

// SearchRequest represents a discovery query. A blank query is accepted and ignored.
type SearchRequest struct {
	Query string `json:"query" validate:"max=2000"`
}

// SelectRefinementRequest picks a suggested refinement by position
type SelectRefinementRequest struct {
	Index int `param:"index" validate:"min=0"`
}
