package report

import (
	"context"
	"fmt"
	"time"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/attendance"
	"github.com/alnoor-academy/attendance-backend-go/internal/domain/report"
	"github.com/alnoor-academy/attendance-backend-go/internal/domain/staff"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/i18n"
)

type ReportService interface {
	// GenerateMonthView fetches the month's persisted records and derives the
	// full calendar view for one staff member.
	GenerateMonthView(ctx context.Context, req report.MonthViewRequest) (report.MonthView, error)
}

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	staffRepo      staff.StaffRepository
	location       *time.Location
	now            func() time.Time
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, staffRepo staff.StaffRepository, location *time.Location) *ReportServiceImpl {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		staffRepo:      staffRepo,
		location:       location,
		now:            time.Now,
	}
}

// GenerateMonthView implements ReportService.
func (s *ReportServiceImpl) GenerateMonthView(ctx context.Context, req report.MonthViewRequest) (report.MonthView, error) {
	if err := req.Validate(); err != nil {
		return report.MonthView{}, err
	}

	lang := req.Lang
	if lang == "" {
		lang = i18n.LocaleFromContext(ctx)
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return report.MonthView{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, s.location)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	records, err := s.attendanceRepo.ListByStaffAndRange(ctx, req.StaffID, monthStart, monthEnd)
	if err != nil {
		return report.MonthView{}, fmt.Errorf("failed to fetch attendance records: %w", err)
	}

	view := BuildMonthView(BuildParams{
		Year:    req.Year,
		Month:   req.Month,
		Profile: member.Timing,
		Records: RecordsByDate(records),
		Lang:    lang,
		Now:     s.now().In(s.location),
	})
	view.StaffName = displayName(member, lang)
	return view, nil
}

func displayName(member staff.Staff, lang string) string {
	if i18n.IsRTL(lang) && member.NameUr != "" {
		return member.NameUr
	}
	return member.Name
}
