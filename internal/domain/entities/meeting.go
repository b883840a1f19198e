package entities

import (
	"fmt"
	"strconv"
	"time"
)

// MeetingStatus represents where a meeting is in its processing lifecycle
type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "pending"
	MeetingStatusProcessed MeetingStatus = "processed"
)

const (
	// CustomMeetingTitle is the title given to meetings synthesized from pasted text
	CustomMeetingTitle = "Custom Meeting"
	// CustomMeetingOrganizer is the organizer recorded for ad-hoc submissions
	CustomMeetingOrganizer = "You"
	// CustomDescriptionLimit caps the description copied from ad-hoc text
	CustomDescriptionLimit = 200
)

// Meeting is an entry of the process-lifetime meeting registry
type Meeting struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Date        string          `json:"date" yaml:"date"`
	Time        string          `json:"time" yaml:"time"`
	Attendees   int             `json:"attendees" yaml:"attendees"`
	Organizer   string          `json:"organizer" yaml:"organizer"`
	Description string          `json:"description" yaml:"description"`
	Status      MeetingStatus   `json:"status" yaml:"status"`
	Analysis    *AnalysisRecord `json:"processed_data,omitempty" yaml:"-"`
}

// NewCustomMeeting synthesizes a pending meeting from free text submitted at now
func NewCustomMeeting(text string, now time.Time) *Meeting {
	description := text
	if runes := []rune(text); len(runes) > CustomDescriptionLimit {
		description = string(runes[:CustomDescriptionLimit])
	}

	return &Meeting{
		ID:          "custom-" + strconv.FormatInt(now.UnixMilli(), 10),
		Title:       CustomMeetingTitle,
		Date:        now.Format("2006-01-02"),
		Time:        now.Format("03:04 PM"),
		Attendees:   0,
		Organizer:   CustomMeetingOrganizer,
		Status:      MeetingStatusPending,
		Description: description,
	}
}

// IsProcessed reports whether the meeting already carries an analysis
func (m *Meeting) IsProcessed() bool {
	return m.Status == MeetingStatusProcessed
}

// ProcessMessage builds the request text sent to the processing coordinator
func (m *Meeting) ProcessMessage() string {
	return fmt.Sprintf(
		"Process this meeting:\nTitle: %s\nDate: %s %s\nOrganizer: %s\nAttendees: %d\nDescription: %s",
		m.Title, m.Date, m.Time, m.Organizer, m.Attendees, m.Description,
	)
}

// MarkProcessed attaches the analysis and moves the meeting to processed.
// Returns false when the meeting was already processed.
func (m *Meeting) MarkProcessed(record *AnalysisRecord) bool {
	if m.IsProcessed() {
		return false
	}
	m.Status = MeetingStatusProcessed
	m.Analysis = record
	return true
}
