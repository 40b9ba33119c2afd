package report

import (
	"time"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/attendance"
	"github.com/alnoor-academy/attendance-backend-go/internal/domain/report"
	"github.com/alnoor-academy/attendance-backend-go/internal/domain/staff"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/i18n"
	"github.com/shopspring/decimal"
)

// DateKey is the map key format for recordsByDate, matching the dd/mm/yyyy
// date label rendered in every row.
const DateKey = "02/01/2006"

// BuildParams are the full inputs of the month reconstruction. Now is
// explicit so the derivation stays a pure function of its arguments.
type BuildParams struct {
	Year    int
	Month   int
	Profile staff.TimingProfile
	Records map[string]attendance.Record
	Lang    string
	Now     time.Time
}

var weekdayKeys = [...]string{
	"weekday.sunday",
	"weekday.monday",
	"weekday.tuesday",
	"weekday.wednesday",
	"weekday.thursday",
	"weekday.friday",
	"weekday.saturday",
}

// DaysInMonth delegates the day count to the calendar: day zero of the next
// month, which handles leap Februaries for free.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildMonthView derives one row per calendar day plus the month aggregate.
//
// Resolution order per day, first match wins: Sunday is always a holiday,
// even over a persisted record; then a persisted record's status; then blank.
// An unmarked past day is deliberately NOT counted as absent, so statistics
// are not biased before a day is explicitly marked.
func BuildMonthView(p BuildParams) report.MonthView {
	loc := p.Now.Location()
	today := time.Date(p.Now.Year(), p.Now.Month(), p.Now.Day(), 0, 0, 0, 0, loc)
	days := DaysInMonth(p.Year, p.Month)

	direction := "ltr"
	if i18n.IsRTL(p.Lang) {
		direction = "rtl"
	}

	view := report.MonthView{
		StaffID:   p.Profile.StaffID,
		Month:     p.Month,
		Year:      p.Year,
		Lang:      p.Lang,
		Direction: direction,
		Rows:      make([]report.MonthRow, 0, days),
		Stats: report.MonthStats{
			TotalDeduction:   decimal.Zero,
			TotalDaysInMonth: days,
		},
	}

	for day := 1; day <= days; day++ {
		date := time.Date(p.Year, time.Month(p.Month), day, 0, 0, 0, 0, loc)
		dateLabel := date.Format(DateKey)
		isSunday := date.Weekday() == time.Sunday

		row := report.MonthRow{
			DayNumber:     day,
			DateLabel:     dateLabel,
			WeekdayLabel:  i18n.T(p.Lang, weekdayKeys[date.Weekday()]),
			Deduction:     decimal.Zero,
			IsSunday:      isSunday,
			IsPastOrToday: !date.After(today),
		}

		rec, hasRecord := p.Records[dateLabel]
		switch {
		case isSunday:
			row.StatusRaw = string(attendance.StatusHoliday)
			view.Stats.HolidayDays++
		case hasRecord:
			row.StatusRaw = string(rec.Status)
			row.LateMinutes = rec.LateMinutes
			row.EarlyMinutes = rec.EarlyMinutes
			row.TotalShortMinutes = rec.LateMinutes + rec.EarlyMinutes
			row.Deduction = rec.Deduction
			row.Remarks = remarks(p.Lang, rec)

			switch rec.Status {
			case attendance.StatusPresent:
				view.Stats.PresentDays++
			case attendance.StatusAbsent:
				view.Stats.AbsentDays++
			case attendance.StatusLeave:
				view.Stats.LeaveDays++
			case attendance.StatusHoliday:
				view.Stats.HolidayDays++
			}
			view.Stats.TotalLateMinutes += rec.LateMinutes
			view.Stats.TotalEarlyMinutes += rec.EarlyMinutes
			view.Stats.TotalDeduction = view.Stats.TotalDeduction.Add(rec.Deduction)
		default:
			row.StatusRaw = report.StatusUnmarked
		}

		row.StatusLabel = i18n.T(p.Lang, "status."+row.StatusRaw)
		view.Rows = append(view.Rows, row)
	}

	view.Stats.AttendancePercentage = attendancePercentage(view.Stats)
	return view
}

// attendancePercentage = round((present + leave) / (totalDays - holidays) * 100).
func attendancePercentage(s report.MonthStats) int {
	workingDays := s.TotalDaysInMonth - s.HolidayDays
	if workingDays <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(s.PresentDays + s.LeaveDays)).
		Div(decimal.NewFromInt(int64(workingDays))).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(pct.IntPart())
}

func remarks(lang string, rec attendance.Record) string {
	if rec.ReasonText != "" {
		return rec.ReasonText
	}
	if rec.ReasonType != attendance.ReasonNone {
		return i18n.T(lang, "reason."+string(rec.ReasonType))
	}
	return ""
}

// RecordsByDate keys a sorted record list by its dd/mm/yyyy date label. A
// duplicate day keeps the first record, matching the read path's Limit(1).
func RecordsByDate(records []attendance.Record) map[string]attendance.Record {
	byDate := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		key := rec.Date.Format(DateKey)
		if _, ok := byDate[key]; !ok {
			byDate[key] = rec
		}
	}
	return byDate
}
