package report

import (
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// MONTHLY ATTENDANCE VIEW
// ========================================

type MonthViewRequest struct {
	StaffID string `json:"staff_id"`
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	Lang    string `json:"lang"`
}

func (r *MonthViewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if r.Lang != "" && !validator.IsInSlice(r.Lang, []string{"en", "ur"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "lang",
			Message: "lang must be en or ur",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthRow is one calendar day's derived attendance presentation. Rows are
// recomputed on every request and never persisted.
type MonthRow struct {
	DayNumber         int             `json:"day_number"`
	DateLabel         string          `json:"date_label"`
	WeekdayLabel      string          `json:"weekday_label"`
	StatusLabel       string          `json:"status_label"`
	StatusRaw         string          `json:"status_raw"`
	LateMinutes       int             `json:"late_minutes"`
	EarlyMinutes      int             `json:"early_minutes"`
	TotalShortMinutes int             `json:"total_short_minutes"`
	Deduction         decimal.Decimal `json:"deduction"`
	Remarks           string          `json:"remarks"`
	IsSunday          bool            `json:"is_sunday"`
	IsPastOrToday     bool            `json:"is_past_or_today"`
}

// MonthStats aggregates all rows of one month.
type MonthStats struct {
	PresentDays          int             `json:"present_days"`
	AbsentDays           int             `json:"absent_days"`
	LeaveDays            int             `json:"leave_days"`
	HolidayDays          int             `json:"holiday_days"`
	TotalLateMinutes     int             `json:"total_late_minutes"`
	TotalEarlyMinutes    int             `json:"total_early_minutes"`
	TotalDeduction       decimal.Decimal `json:"total_deduction"`
	TotalDaysInMonth     int             `json:"total_days_in_month"`
	AttendancePercentage int             `json:"attendance_percentage"`
}

// MonthView is the full derived dataset handed to the UI and to both export
// sinks.
type MonthView struct {
	StaffID   string     `json:"staff_id"`
	StaffName string     `json:"staff_name"`
	Month     int        `json:"month"`
	Year      int        `json:"year"`
	Lang      string     `json:"lang"`
	Direction string     `json:"direction"`
	Rows      []MonthRow `json:"rows"`
	Stats     MonthStats `json:"stats"`
}

// StatusUnmarked is the raw status of a day with no resolution: a past or
// future day without a persisted record.
const StatusUnmarked = "unmarked"
