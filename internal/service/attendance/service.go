package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/attendance"
	"github.com/alnoor-academy/attendance-backend-go/internal/domain/staff"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/payroll"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	staffRepo      staff.StaffRepository
	location       *time.Location
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, staffRepo staff.StaffRepository, location *time.Location) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		staffRepo:      staffRepo,
		location:       location,
		now:            time.Now,
	}
}

// TodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context, staffID string) (attendance.TodayResponse, error) {
	nowLocal := s.now().In(s.location)

	resp := attendance.TodayResponse{
		StaffID: staffID,
		Date:    nowLocal.Format("2006-01-02"),
	}

	rec, err := s.attendanceRepo.GetByStaffAndDate(ctx, staffID, nowLocal)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return resp, nil
		}
		return attendance.TodayResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}

	recResp := attendance.NewRecordResponse(rec)
	resp.Marked = true
	resp.Record = &recResp
	return resp, nil
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.RecordResponse, error) {
	req.Trim()
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	// Wall clock captured here, at confirmation, never earlier. A tab left
	// open across the entry-time boundary must not get page-load lateness.
	nowLocal := s.now().In(s.location)
	status := attendance.Status(req.Status)

	isLate, lateMinutes := false, 0
	if status == attendance.StatusPresent {
		isLate, lateMinutes = payroll.ComputeLateness(nowLocal, member.Timing.EntryHour, member.Timing.GraceMinutes)
	}

	deduction := payroll.ComputeDeduction(
		status,
		isLate,
		lateMinutes,
		payroll.PerDaySalary(member.Timing.MonthlySalary),
		payroll.PerHourSalary(member.Timing.MonthlySalary),
	)

	rec := attendance.Record{
		StaffID:      req.StaffID,
		Status:       status,
		Date:         nowLocal,
		MarkedAtTime: nowLocal.Format("15:04:05"),
		IsLate:       isLate,
		LateMinutes:  lateMinutes,
		Deduction:    deduction,
		ReasonType:   attendance.ReasonType(req.ReasonType),
		ReasonText:   req.ReasonText,
		CreatedAt:    nowLocal,
	}

	saved, err := s.attendanceRepo.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyMarked) {
			return attendance.RecordResponse{}, attendance.ErrAlreadyMarked
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to save attendance record: %w", err)
	}

	return attendance.NewRecordResponse(saved), nil
}
