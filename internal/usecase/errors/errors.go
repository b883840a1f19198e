package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Meeting errors
var (
	ErrMeetingNotFound         = errors.New("meeting not found")
	ErrMeetingAlreadyProcessed = errors.New("meeting already processed")
	ErrEmptyMeetingInput       = errors.New("meeting content is empty")
	ErrDuplicateMeeting        = errors.New("meeting id already registered")
)

// Search errors
var (
	ErrRefinementOutOfRange = errors.New("suggested refinement index out of range")
	ErrNoSearchResults      = errors.New("no search results available")
)

// Knowledge base errors
var (
	ErrNoFile        = errors.New("exactly one file is required")
	ErrEmptyFileName = errors.New("file name is required")
)
