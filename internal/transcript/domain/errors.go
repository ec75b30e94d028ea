package domain

import "errors"

var (
	// ErrTranscriptNotFound is returned when no transcript exists for an id
	ErrTranscriptNotFound = errors.New("transcript not found")
	// ErrNoSummaryAvailable is returned when an email is requested before any summary exists
	ErrNoSummaryAvailable = errors.New("no summary available to send")
)
