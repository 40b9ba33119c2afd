package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/alnoor-academy/attendance-backend-go/internal/domain/attendance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
)

const attendanceCollection = "attendance"

// attendanceDoc is the Firestore document shape for one attendance record.
// Money is stored as a plain float; the domain entity carries a decimal.
type attendanceDoc struct {
	ID           string    `firestore:"id,omitempty"`
	StaffID      string    `firestore:"staff_id"`
	Status       string    `firestore:"status"`
	Date         time.Time `firestore:"date"`
	MarkedAtTime string    `firestore:"marked_at_time"`
	IsLate       bool      `firestore:"is_late"`
	LateMinutes  int       `firestore:"late_minutes"`
	IsEarlyLeave bool      `firestore:"is_early_leave"`
	EarlyMinutes int       `firestore:"early_minutes"`
	Deduction    float64   `firestore:"deduction"`
	ReasonType   string    `firestore:"reason_type"`
	ReasonText   string    `firestore:"reason_text"`
	CreatedAt    time.Time `firestore:"created_at"`
}

func toDoc(rec attendance.Record) attendanceDoc {
	deduction, _ := rec.Deduction.Float64()
	return attendanceDoc{
		ID:           rec.ID,
		StaffID:      rec.StaffID,
		Status:       string(rec.Status),
		Date:         rec.Date,
		MarkedAtTime: rec.MarkedAtTime,
		IsLate:       rec.IsLate,
		LateMinutes:  rec.LateMinutes,
		IsEarlyLeave: rec.IsEarlyLeave,
		EarlyMinutes: rec.EarlyMinutes,
		Deduction:    deduction,
		ReasonType:   string(rec.ReasonType),
		ReasonText:   rec.ReasonText,
		CreatedAt:    rec.CreatedAt,
	}
}

func toRecord(d attendanceDoc) attendance.Record {
	return attendance.Record{
		ID:           d.ID,
		StaffID:      d.StaffID,
		Status:       attendance.Status(d.Status),
		Date:         d.Date,
		MarkedAtTime: d.MarkedAtTime,
		IsLate:       d.IsLate,
		LateMinutes:  d.LateMinutes,
		IsEarlyLeave: d.IsEarlyLeave,
		EarlyMinutes: d.EarlyMinutes,
		Deduction:    decimal.NewFromFloat(d.Deduction),
		ReasonType:   attendance.ReasonType(d.ReasonType),
		ReasonText:   d.ReasonText,
		CreatedAt:    d.CreatedAt,
	}
}

type AttendanceRepository struct {
	client *firestore.Client
}

func NewAttendanceRepository(client *firestore.Client) *AttendanceRepository {
	return &AttendanceRepository{client: client}
}

// dayBounds returns the [00:00:00, 23:59:59] window of the calendar day in
// the day's own location, the same bounds the web client queries with.
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
	return start, end
}

func (r *AttendanceRepository) dayQuery(staffID string, day time.Time) firestore.Query {
	start, end := dayBounds(day)
	return r.client.Collection(attendanceCollection).
		Where("staff_id", "==", staffID).
		Where("date", ">=", start).
		Where("date", "<=", end).
		Limit(1)
}

// GetByStaffAndDate implements attendance.AttendanceRepository.
func (r *AttendanceRepository) GetByStaffAndDate(ctx context.Context, staffID string, day time.Time) (attendance.Record, error) {
	iter := r.dayQuery(staffID, day).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to query attendance by day: %w", err)
	}

	var d attendanceDoc
	if err := snap.DataTo(&d); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to decode attendance document: %w", err)
	}
	d.ID = snap.Ref.ID
	return toRecord(d), nil
}

// ListByStaffAndRange implements attendance.AttendanceRepository.
func (r *AttendanceRepository) ListByStaffAndRange(ctx context.Context, staffID string, start, end time.Time) ([]attendance.Record, error) {
	iter := r.client.Collection(attendanceCollection).
		Where("staff_id", "==", staffID).
		Where("date", ">=", start).
		Where("date", "<=", end).
		OrderBy("date", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var records []attendance.Record
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query attendance range: %w", err)
		}

		var d attendanceDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to decode attendance document: %w", err)
		}
		d.ID = snap.Ref.ID
		records = append(records, toRecord(d))
	}
	return records, nil
}

// Create implements attendance.AttendanceRepository. The uniqueness key
// (staff_id, calendar day) is re-checked inside a transaction so two sessions
// racing the precondition cannot both write; the loser gets ErrAlreadyMarked.
func (r *AttendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	rec.ID = uuid.NewString()
	ref := r.client.Collection(attendanceCollection).Doc(rec.ID)
	doc := toDoc(rec)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		existing, err := tx.Documents(r.dayQuery(rec.StaffID, rec.Date)).GetAll()
		if err != nil {
			return fmt.Errorf("failed to check existing attendance: %w", err)
		}
		if len(existing) > 0 {
			return attendance.ErrAlreadyMarked
		}
		return tx.Create(ref, doc)
	})
	if err != nil {
		return attendance.Record{}, err
	}
	return rec, nil
}
