package entities

// SearchResultSet is the outcome of one search invocation
type SearchResultSet struct {
	Query                string         `json:"query"`
	TotalResults         int            `json:"total_results"`
	Results              []SearchResult `json:"results"`
	SuggestedRefinements []string       `json:"suggested_refinements"`
}

// SearchResult is a single matching meeting excerpt
type SearchResult struct {
	MeetingTitle    string   `json:"meeting_title"`
	MeetingDate     string   `json:"meeting_date"`
	RelevanceScore  string   `json:"relevance_score"`
	MatchingSection string   `json:"matching_section"`
	Excerpt         string   `json:"excerpt"`
	KeyParticipants []string `json:"key_participants"`
}

// SearchResultSetFromMap reads a decoded agent payload as a search result set
func SearchResultSetFromMap(m map[string]any) *SearchResultSet {
	if m == nil {
		return nil
	}

	return &SearchResultSet{
		Query:        stringField(m, "query"),
		TotalResults: intField(m, "total_results"),
		Results: collect(m, "results", func(e map[string]any) SearchResult {
			return SearchResult{
				MeetingTitle:    stringField(e, "meeting_title"),
				MeetingDate:     stringField(e, "meeting_date"),
				RelevanceScore:  stringField(e, "relevance_score"),
				MatchingSection: stringField(e, "matching_section"),
				Excerpt:         stringField(e, "excerpt"),
				KeyParticipants: stringsField(e, "key_participants"),
			}
		}),
		SuggestedRefinements: stringsField(m, "suggested_refinements"),
	}
}
