package meeting

import (
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// MeetingResponse represents a meeting in API responses
type MeetingResponse struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Date        string                   `json:"date"`
	Time        string                   `json:"time"`
	Attendees   int                      `json:"attendees"`
	Organizer   string                   `json:"organizer"`
	Description string                   `json:"description"`
	Status      string                   `json:"status"`
	Analysis    *entities.AnalysisRecord `json:"processed_data,omitempty"`
}

// MeetingListResponse represents the meeting registry
type MeetingListResponse struct {
	Meetings []*MeetingResponse `json:"meetings"`
	Total    int                `json:"total"`
	Pending  int                `json:"pending"`
}

// ProcessResponse represents the outcome of a processing request
type ProcessResponse struct {
	RequestID  string                   `json:"request_id"`
	Sequence   uint64                   `json:"sequence"`
	MeetingID  string                   `json:"meeting_id,omitempty"`
	Pending    bool                     `json:"pending"`
	Superseded bool                     `json:"superseded,omitempty"`
	Analysis   *entities.AnalysisRecord `json:"analysis,omitempty"`
}
