package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access against the hosted attendance
// collection. The adapter is append-only: no update or delete exists.
type AttendanceRepository interface {
	// GetByStaffAndDate retrieves the record for one staff member on one
	// calendar day, bounded to [00:00:00, 23:59:59] local time.
	// Returns ErrRecordNotFound when the day is unmarked.
	GetByStaffAndDate(ctx context.Context, staffID string, day time.Time) (Record, error)

	// ListByStaffAndRange retrieves records within [start, end] inclusive,
	// sorted by date ascending.
	ListByStaffAndRange(ctx context.Context, staffID string, start, end time.Time) ([]Record, error)

	// Create persists a new record. The write is conditional on no existing
	// record for (staffID, calendar day of record.Date); it returns
	// ErrAlreadyMarked when one exists, so callers need no prior read.
	Create(ctx context.Context, record Record) (Record, error)
}
