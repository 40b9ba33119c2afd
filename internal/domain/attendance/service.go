package attendance

import "context"

type AttendanceService interface {
	// TodayStatus reports whether the staff member's current day is marked.
	TodayStatus(ctx context.Context, staffID string) (TodayResponse, error)

	// Mark transitions today from Unmarked to Marked. Lateness and deduction
	// are computed from the wall clock at the moment of this call. A failed
	// save leaves the day Unmarked and the request retryable.
	Mark(ctx context.Context, req MarkRequest) (RecordResponse, error)
}
