package attendance

import "errors"

// Attendance domain errors
var (
	// Marking errors
	ErrAlreadyMarked    = errors.New("attendance has already been marked for today")
	ErrStatusNotAllowed = errors.New("status cannot be chosen in the marking workflow")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
