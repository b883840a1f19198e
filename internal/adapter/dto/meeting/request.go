package meeting

// ProcessMeetingRequest represents the parameters for processing a registry meeting
type ProcessMeetingRequest struct {
	ID    string `param:"id" validate:"required,max=128"`
	Async bool   `query:"async"`
}

// ProcessCustomRequest represents an ad-hoc meeting submitted as free text
type ProcessCustomRequest struct {
	Text  string `json:"text" validate:"notblank,max=200000"`
	Async bool   `json:"async,omitempty"`
}
