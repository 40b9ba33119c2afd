package payroll

import (
	"time"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Salary basis constants, fixed institution-wide.
const (
	GraceMinutes       = 15
	WorkingHoursPerDay = 9
	SalaryDivisorDays  = 30
)

var (
	divisorDays  = decimal.NewFromInt(SalaryDivisorDays)
	workingHours = decimal.NewFromInt(WorkingHoursPerDay)
	sixty        = decimal.NewFromInt(60)
)

// PerDaySalary is the monthly salary spread over a fixed 30-day month.
func PerDaySalary(monthlySalary decimal.Decimal) decimal.Decimal {
	return monthlySalary.Div(divisorDays)
}

// PerHourSalary is the per-day salary spread over the 9 working hours.
func PerHourSalary(monthlySalary decimal.Decimal) decimal.Decimal {
	return PerDaySalary(monthlySalary).Div(workingHours)
}

// ComputeLateness flags an arrival as late when it falls past the grace
// window of the scheduled entry hour.
//
// LateMinutes measures minutes past the top of the entry hour, NOT past the
// grace limit: (hour-entryHour)*60 + minute, with no grace subtraction. This
// matches the deployed behavior; changing it would silently change every
// historical deduction.
func ComputeLateness(now time.Time, entryHour, graceMinutes int) (isLate bool, lateMinutes int) {
	h, m := now.Hour(), now.Minute()
	isLate = h > entryHour || (h == entryHour && m > graceMinutes)
	if isLate {
		lateMinutes = (h-entryHour)*60 + m
		if lateMinutes < 0 {
			lateMinutes = 0
		}
	}
	return isLate, lateMinutes
}

// ComputeDeduction derives the salary deduction for one day:
// absent costs a full per-day salary, a late present day costs the late
// fraction of an hour's salary rounded to the nearest currency unit, and
// everything else costs nothing.
func ComputeDeduction(status attendance.Status, isLate bool, lateMinutes int, perDaySalary, perHourSalary decimal.Decimal) decimal.Decimal {
	switch {
	case status == attendance.StatusAbsent:
		return perDaySalary
	case status == attendance.StatusPresent && isLate:
		return decimal.NewFromInt(int64(lateMinutes)).Div(sixty).Mul(perHourSalary).Round(0)
	default:
		return decimal.Zero
	}
}
