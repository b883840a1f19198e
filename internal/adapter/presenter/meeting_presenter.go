package presenter

import (
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	meetinguse "github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	return &meeting.MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		Date:        m.Date,
		Time:        m.Time,
		Attendees:   m.Attendees,
		Organizer:   m.Organizer,
		Description: m.Description,
		Status:      string(m.Status),
		Analysis:    m.Analysis,
	}
}

// ToMeetingListResponse converts the registry to MeetingListResponse
func ToMeetingListResponse(meetings []entities.Meeting) *meeting.MeetingListResponse {
	resp := &meeting.MeetingListResponse{
		Meetings: make([]*meeting.MeetingResponse, len(meetings)),
		Total:    len(meetings),
	}
	for i := range meetings {
		resp.Meetings[i] = ToMeetingResponse(&meetings[i])
		if !meetings[i].IsProcessed() {
			resp.Pending++
		}
	}
	return resp
}

// ToProcessResponse converts a processing outcome. Failures are reported by
// the handler as errors and never reach here.
func ToProcessResponse(out *meetinguse.ProcessOutput) *meeting.ProcessResponse {
	return &meeting.ProcessResponse{
		RequestID:  out.RequestID,
		Sequence:   out.Sequence,
		MeetingID:  out.MeetingID,
		Pending:    out.Pending,
		Superseded: out.Superseded,
		Analysis:   out.Record,
	}
}
