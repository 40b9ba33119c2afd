package report

import (
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

func testProfile() staff.TimingProfile {
	return staff.TimingProfile{
		StaffID:       "tch-001",
		EntryHour:     9,
		GraceMinutes:  15,
		MonthlySalary: decimal.NewFromInt(25000),
	}
}

func record(staffID string, date time.Time, status attendance.Status) attendance.Record {
	return attendance.Record{
		ID:        "rec-" + date.Format("20060102"),
		StaffID:   staffID,
		Status:    status,
		Date:      date,
		Deduction: decimal.Zero,
	}
}

func build(t *testing.T, year, month int, records []attendance.Record, now time.Time) report.MonthView {
	t.Helper()
	i18n.Init("en")
	return BuildMonthView(BuildParams{
		Year:    year,
		Month:   month,
		Profile: testProfile(),
		Records: RecordsByDate(records),
		Lang:    "en",
		Now:     now,
	})
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 31, DaysInMonth(2024, 1))
	assert.Equal(t, 30, DaysInMonth(2024, 4))
	assert.Equal(t, 31, DaysInMonth(2024, 12))
}

func TestBuildMonthView_RowCountAndOrder(t *testing.T) {
	now := time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC)
	for month := 1; month <= 12; month++ {
		view := build(t, 2024, month, nil, now)
		require.Len(t, view.Rows, DaysInMonth(2024, month), "month %d", month)
		for i, row := range view.Rows {
			assert.Equal(t, i+1, row.DayNumber, "month %d", month)
		}
	}
}

func TestBuildMonthView_SundayOverridesRecord(t *testing.T) {
	// 2024-03-03 is a Sunday; a present record exists for it anyway.
	sunday := time.Date(2024, time.March, 3, 9, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	view := build(t, 2024, 3, []attendance.Record{record("tch-001", sunday, attendance.StatusPresent)}, now)

	row := view.Rows[2]
	assert.True(t, row.IsSunday)
	assert.Equal(t, string(attendance.StatusHoliday), row.StatusRaw)
	assert.Equal(t, 0, view.Stats.PresentDays)

	// Every Sunday in the month renders holiday
	for _, r := range view.Rows {
		if r.IsSunday {
			assert.Equal(t, string(attendance.StatusHoliday), r.StatusRaw, "day %d", r.DayNumber)
		}
	}
}

func TestBuildMonthView_UnmarkedPastDayStaysBlank(t *testing.T) {
	// 2024-03-05 is a Tuesday with no record; now is later in the month.
	now := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)
	view := build(t, 2024, 3, nil, now)

	row := view.Rows[4]
	assert.Equal(t, report.StatusUnmarked, row.StatusRaw)
	assert.Equal(t, "-", row.StatusLabel)
	assert.True(t, row.IsPastOrToday)
	assert.Equal(t, 0, view.Stats.PresentDays)
	assert.Equal(t, 0, view.Stats.AbsentDays)
	assert.Equal(t, 0, view.Stats.LeaveDays)
}

func TestBuildMonthView_FutureDayBlank(t *testing.T) {
	now := time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)
	view := build(t, 2024, 3, nil, now)

	// March 11 is in the future relative to now
	row := view.Rows[10]
	assert.Equal(t, report.StatusUnmarked, row.StatusRaw)
	assert.False(t, row.IsPastOrToday)

	// March 10 itself counts as past-or-today
	assert.True(t, view.Rows[9].IsPastOrToday)
}

func TestBuildMonthView_ExplicitHolidayRecordOnWeekday(t *testing.T) {
	// 2024-03-06 is a Wednesday with a holiday record.
	wednesday := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	view := build(t, 2024, 3, []attendance.Record{record("tch-001", wednesday, attendance.StatusHoliday)}, now)

	row := view.Rows[5]
	assert.Equal(t, string(attendance.StatusHoliday), row.StatusRaw)

	// 5 Sundays in March 2024 plus the explicit holiday
	assert.Equal(t, 6, view.Stats.HolidayDays)
}

func TestBuildMonthView_RecordCarriesMinutesAndDeduction(t *testing.T) {
	day := time.Date(2024, time.March, 4, 9, 20, 0, 0, time.UTC)
	rec := record("tch-001", day, attendance.StatusPresent)
	rec.IsLate = true
	rec.LateMinutes = 20
	rec.EarlyMinutes = 10
	rec.Deduction = decimal.NewFromInt(31)
	rec.ReasonText = "traffic"

	now := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	view := build(t, 2024, 3, []attendance.Record{rec}, now)

	row := view.Rows[3]
	assert.Equal(t, 20, row.LateMinutes)
	assert.Equal(t, 10, row.EarlyMinutes)
	assert.Equal(t, 30, row.TotalShortMinutes)
	assert.True(t, row.Deduction.Equal(decimal.NewFromInt(31)))
	assert.Equal(t, "traffic", row.Remarks)

	assert.Equal(t, 20, view.Stats.TotalLateMinutes)
	assert.Equal(t, 10, view.Stats.TotalEarlyMinutes)
	assert.True(t, view.Stats.TotalDeduction.Equal(decimal.NewFromInt(31)))
}

func TestBuildMonthView_StatsBoundedByTotalDays(t *testing.T) {
	loc := time.UTC
	var records []attendance.Record
	// Mark every non-Sunday day of March 2024 present
	for day := 1; day <= 31; day++ {
		date := time.Date(2024, time.March, day, 9, 0, 0, 0, loc)
		if date.Weekday() == time.Sunday {
			continue
		}
		records = append(records, record("tch-001", date, attendance.StatusPresent))
	}

	now := time.Date(2024, time.April, 1, 10, 0, 0, 0, loc)
	view := build(t, 2024, 3, records, now)

	s := view.Stats
	sum := s.PresentDays + s.AbsentDays + s.LeaveDays + s.HolidayDays
	assert.Equal(t, s.TotalDaysInMonth, sum, "every day is accounted for when all non-Sundays are marked")
	assert.Equal(t, 100, s.AttendancePercentage)
}

func TestBuildMonthView_AttendancePercentage(t *testing.T) {
	loc := time.UTC
	// March 2024: 31 days, 5 Sundays -> 26 working days. 13 present => 50%.
	var records []attendance.Record
	count := 0
	for day := 1; day <= 31 && count < 13; day++ {
		date := time.Date(2024, time.March, day, 9, 0, 0, 0, loc)
		if date.Weekday() == time.Sunday {
			continue
		}
		records = append(records, record("tch-001", date, attendance.StatusPresent))
		count++
	}
	now := time.Date(2024, time.April, 1, 10, 0, 0, 0, loc)
	view := build(t, 2024, 3, records, now)
	assert.Equal(t, 50, view.Stats.AttendancePercentage)

	// Leave days count toward the percentage alongside present days
	leaveDay := time.Date(2024, time.March, 29, 0, 0, 0, 0, loc)
	records = append(records, record("tch-001", leaveDay, attendance.StatusLeave))
	view = build(t, 2024, 3, records, now)
	assert.Equal(t, 54, view.Stats.AttendancePercentage) // round(14/26*100)
}

func TestBuildMonthView_Idempotent(t *testing.T) {
	day := time.Date(2024, time.February, 12, 9, 30, 0, 0, time.UTC)
	rec := record("tch-001", day, attendance.StatusPresent)
	rec.IsLate = true
	rec.LateMinutes = 30
	rec.Deduction = decimal.NewFromInt(46)
	records := []attendance.Record{rec}
	now := time.Date(2024, time.February, 20, 8, 0, 0, 0, time.UTC)

	first := build(t, 2024, 2, records, now)
	second := build(t, 2024, 2, records, now)
	assert.Equal(t, first, second)
}

func TestBuildMonthView_LeapFebruary(t *testing.T) {
	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	assert.Len(t, build(t, 2024, 2, nil, now).Rows, 29)
	assert.Len(t, build(t, 2023, 2, nil, now).Rows, 28)
}

func TestBuildMonthView_UrduLabels(t *testing.T) {
	i18n.Init("en")
	monday := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	view := BuildMonthView(BuildParams{
		Year:    2024,
		Month:   3,
		Profile: testProfile(),
		Records: RecordsByDate([]attendance.Record{record("tch-001", monday, attendance.StatusPresent)}),
		Lang:    "ur",
		Now:     time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "rtl", view.Direction)
	assert.Equal(t, "حاضر", view.Rows[3].StatusLabel)
	assert.Equal(t, "اتوار", view.Rows[2].WeekdayLabel) // March 3rd is a Sunday
}

func TestRecordsByDate_FirstRecordWinsOnDuplicateDay(t *testing.T) {
	day := time.Date(2024, time.March, 7, 9, 0, 0, 0, time.UTC)
	first := record("tch-001", day, attendance.StatusPresent)
	second := record("tch-001", day.Add(2*time.Hour), attendance.StatusAbsent)
	second.ID = "rec-dup"

	byDate := RecordsByDate([]attendance.Record{first, second})
	require.Len(t, byDate, 1)
	assert.Equal(t, attendance.StatusPresent, byDate[day.Format(DateKey)].Status)
}
