package entities

import "errors"

// Domain errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrMeetingExists   = errors.New("meeting already exists")
	ErrInvalidMeeting  = errors.New("invalid meeting")
	ErrInvalidDocument = errors.New("invalid document")
)
