package payroll

import (
	"testing"
	"time"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 5, hour, minute, 0, 0, time.UTC)
}

func TestComputeLateness_WithinGrace(t *testing.T) {
	isLate, lateMinutes := ComputeLateness(at(9, 10), 9, 15)
	assert.False(t, isLate)
	assert.Equal(t, 0, lateMinutes)

	// Exactly at the grace boundary is still on time
	isLate, lateMinutes = ComputeLateness(at(9, 15), 9, 15)
	assert.False(t, isLate)
	assert.Equal(t, 0, lateMinutes)
}

func TestComputeLateness_PastGrace(t *testing.T) {
	isLate, lateMinutes := ComputeLateness(at(9, 20), 9, 15)
	assert.True(t, isLate)
	assert.Equal(t, 20, lateMinutes)
}

func TestComputeLateness_LaterHour(t *testing.T) {
	// Minutes below grace but a later hour: late, and the formula counts
	// minutes from the top of the entry hour without subtracting grace.
	isLate, lateMinutes := ComputeLateness(at(11, 5), 9, 15)
	assert.True(t, isLate)
	assert.Equal(t, 125, lateMinutes)
}

func TestComputeLateness_BeforeEntryHour(t *testing.T) {
	isLate, lateMinutes := ComputeLateness(at(8, 45), 9, 15)
	assert.False(t, isLate)
	assert.Equal(t, 0, lateMinutes)
}

func TestComputeDeduction_Scenarios(t *testing.T) {
	salary := decimal.NewFromInt(25000)
	perDay := PerDaySalary(salary)
	perHour := PerHourSalary(salary)

	// Spec scenario: entry 9, grace 15, salary 25000, arrival 9:20.
	isLate, lateMinutes := ComputeLateness(at(9, 20), 9, 15)
	assert.True(t, isLate)
	ded := ComputeDeduction(attendance.StatusPresent, isLate, lateMinutes, perDay, perHour)
	assert.True(t, ded.Equal(decimal.NewFromInt(31)), "got %s", ded)

	// Absent costs a flat per-day salary
	ded = ComputeDeduction(attendance.StatusAbsent, false, 0, perDay, perHour)
	assert.True(t, ded.Equal(perDay))

	// Leave, holiday and on-time presence cost nothing
	for _, status := range []attendance.Status{attendance.StatusLeave, attendance.StatusHoliday, attendance.StatusPresent} {
		ded = ComputeDeduction(status, false, 0, perDay, perHour)
		assert.True(t, ded.IsZero(), "status %s", status)
	}
}

func TestComputeDeduction_MonotonicInLateMinutes(t *testing.T) {
	perDay := PerDaySalary(decimal.NewFromInt(27000))
	perHour := PerHourSalary(decimal.NewFromInt(27000))

	prev := decimal.Zero
	for minutes := 0; minutes <= 240; minutes += 10 {
		ded := ComputeDeduction(attendance.StatusPresent, true, minutes, perDay, perHour)
		assert.True(t, ded.GreaterThanOrEqual(prev), "deduction decreased at %d minutes", minutes)
		prev = ded
	}
}

func TestPerHourSalary_PositiveForPositiveSalary(t *testing.T) {
	perHour := PerHourSalary(decimal.NewFromInt(1))
	assert.True(t, perHour.GreaterThan(decimal.Zero))
}
