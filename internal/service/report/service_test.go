package report

import (
	"context"
	"testing"
	"time"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/attendance"
	"github.com/alnoor-academy/attendance-backend-go/internal/domain/report"
	"github.com/alnoor-academy/attendance-backend-go/internal/domain/staff"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/i18n"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	records []attendance.Record
	listErr error
}

func (s *stubAttendanceRepo) GetByStaffAndDate(context.Context, string, time.Time) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (s *stubAttendanceRepo) ListByStaffAndRange(_ context.Context, staffID string, start, end time.Time) ([]attendance.Record, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []attendance.Record
	for _, rec := range s.records {
		if rec.StaffID == staffID && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *stubAttendanceRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	s.records = append(s.records, rec)
	return rec, nil
}

type stubStaffRepo struct{}

func (stubStaffRepo) GetByID(_ context.Context, staffID string) (staff.Staff, error) {
	if staffID != "tch-001" {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return staff.Staff{
		ID:     "tch-001",
		Name:   "Abdul Rahman",
		NameUr: "عبدالرحمن",
		Role:   "teacher",
		Timing: staff.TimingProfile{
			StaffID:       "tch-001",
			EntryHour:     9,
			GraceMinutes:  15,
			MonthlySalary: decimal.NewFromInt(25000),
		},
	}, nil
}

func (stubStaffRepo) ListTeachers(context.Context) ([]staff.Staff, error)    { return nil, nil }
func (stubStaffRepo) ListStudents(context.Context) ([]staff.Student, error) { return nil, nil }

func TestReportService_GenerateMonthView(t *testing.T) {
	i18n.Init("en")
	ctx := context.Background()

	marked := time.Date(2024, time.March, 4, 9, 20, 0, 0, time.UTC)
	rec := attendance.Record{
		ID:          "rec-1",
		StaffID:     "tch-001",
		Status:      attendance.StatusPresent,
		Date:        marked,
		IsLate:      true,
		LateMinutes: 20,
		Deduction:   decimal.NewFromInt(31),
	}

	svc := NewReportService(&stubAttendanceRepo{records: []attendance.Record{rec}}, stubStaffRepo{}, time.UTC)
	svc.now = func() time.Time { return time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC) }

	view, err := svc.GenerateMonthView(ctx, report.MonthViewRequest{StaffID: "tch-001", Month: 3, Year: 2024, Lang: "en"})
	require.NoError(t, err)

	assert.Equal(t, "Abdul Rahman", view.StaffName)
	assert.Len(t, view.Rows, 31)
	assert.Equal(t, "present", view.Rows[3].StatusRaw)
	assert.Equal(t, 1, view.Stats.PresentDays)
	assert.Equal(t, 20, view.Stats.TotalLateMinutes)
}

func TestReportService_GenerateMonthView_UrduName(t *testing.T) {
	i18n.Init("en")
	svc := NewReportService(&stubAttendanceRepo{}, stubStaffRepo{}, time.UTC)
	svc.now = func() time.Time { return time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC) }

	view, err := svc.GenerateMonthView(context.Background(), report.MonthViewRequest{StaffID: "tch-001", Month: 3, Year: 2024, Lang: "ur"})
	require.NoError(t, err)
	assert.Equal(t, "عبدالرحمن", view.StaffName)
	assert.Equal(t, "rtl", view.Direction)
}

func TestReportService_GenerateMonthView_InvalidRequest(t *testing.T) {
	svc := NewReportService(&stubAttendanceRepo{}, stubStaffRepo{}, time.UTC)

	_, err := svc.GenerateMonthView(context.Background(), report.MonthViewRequest{StaffID: "tch-001", Month: 13, Year: 2024})
	assert.Error(t, err)

	_, err = svc.GenerateMonthView(context.Background(), report.MonthViewRequest{Month: 3, Year: 2024})
	assert.Error(t, err)
}

func TestReportService_GenerateMonthView_UnknownStaff(t *testing.T) {
	svc := NewReportService(&stubAttendanceRepo{}, stubStaffRepo{}, time.UTC)
	svc.now = func() time.Time { return time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC) }

	_, err := svc.GenerateMonthView(context.Background(), report.MonthViewRequest{StaffID: "tch-404", Month: 3, Year: 2024})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}
