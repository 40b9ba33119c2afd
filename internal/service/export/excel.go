package export

import (
	"fmt"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/report"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/i18n"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

// headerRow is where the column header sits; data starts right below it and
// the panes freeze there so the header stays visible while scrolling.
const headerRow = 6

var statusFills = map[string]string{
	"present": "#C6EFCE",
	"absent":  "#FFC7CE",
	"leave":   "#FFEB9C",
	"holiday": "#BDD7EE",
}

// ExcelMonthView renders the month view as a styled workbook. The whole
// file is assembled in memory and returned as bytes so a render error never
// produces a truncated download.
func (s *ExportServiceImpl) ExcelMonthView(view report.MonthView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}

	lang := view.Lang

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	subtitleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    boxBorder(),
	})
	rowStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    boxBorder(),
	})

	statusStyles := make(map[string]int, len(statusFills))
	for status, fill := range statusFills {
		id, serr := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    boxBorder(),
		})
		if serr != nil {
			return nil, fmt.Errorf("%w: %v", report.ErrRenderFailed, serr)
		}
		statusStyles[status] = id
	}

	f.SetCellValue(sheetName, "A1", s.orgName(lang))
	f.MergeCell(sheetName, "A1", "H1")
	f.SetCellStyle(sheetName, "A1", "H1", titleStyle)
	f.SetRowHeight(sheetName, 1, 28)

	f.SetCellValue(sheetName, "A2", i18n.T(lang, "report.title"))
	f.MergeCell(sheetName, "A2", "H2")
	f.SetCellStyle(sheetName, "A2", "H2", subtitleStyle)

	f.SetCellValue(sheetName, "A3", i18n.T(lang, "report.staff", map[string]any{"Name": view.StaffName}))
	f.SetCellValue(sheetName, "E3", i18n.T(lang, "report.period", map[string]any{"Period": periodLabel(view)}))
	f.SetCellValue(sheetName, "A4", i18n.T(lang, "report.generated_at",
		map[string]any{"Time": s.now().Format("02 January 2006 15:04:05")}))

	columns := []string{
		i18n.T(lang, "report.col.serial"),
		i18n.T(lang, "report.col.date"),
		i18n.T(lang, "report.col.day"),
		i18n.T(lang, "report.col.status"),
		i18n.T(lang, "report.col.late_in"),
		i18n.T(lang, "report.col.early_out"),
		i18n.T(lang, "report.col.deduction"),
		i18n.T(lang, "report.col.remarks"),
	}
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(sheetName, cell, col)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("H%d", headerRow), headerStyle)
	f.SetRowHeight(sheetName, headerRow, 22)

	for i, row := range view.Rows {
		r := headerRow + 1 + i
		values := []any{
			row.DayNumber,
			row.DateLabel,
			row.WeekdayLabel,
			row.StatusLabel,
			minutesCell(row.LateMinutes),
			minutesCell(row.EarlyMinutes),
			deductionCell(row),
			row.Remarks,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r)
			f.SetCellValue(sheetName, cell, v)
		}
		style := rowStyle
		if id, ok := statusStyles[row.StatusRaw]; ok {
			style = id
		}
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", r), fmt.Sprintf("H%d", r), style)
	}

	summaryRow := headerRow + len(view.Rows) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), i18n.T(lang, "stats.summary"))
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow), headerStyle)

	summary := []struct {
		label string
		value any
	}{
		{i18n.T(lang, "stats.present_days"), view.Stats.PresentDays},
		{i18n.T(lang, "stats.absent_days"), view.Stats.AbsentDays},
		{i18n.T(lang, "stats.leave_days"), view.Stats.LeaveDays},
		{i18n.T(lang, "stats.holiday_days"), view.Stats.HolidayDays},
		{i18n.T(lang, "stats.total_late_minutes"), view.Stats.TotalLateMinutes},
		{i18n.T(lang, "stats.total_early_minutes"), view.Stats.TotalEarlyMinutes},
		{i18n.T(lang, "stats.total_deduction"), view.Stats.TotalDeduction.String()},
		{i18n.T(lang, "stats.attendance_percentage"), fmt.Sprintf("%d%%", view.Stats.AttendancePercentage)},
	}
	for i, item := range summary {
		r := summaryRow + 1 + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), item.label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), item.value)
	}

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 14)
	f.SetColWidth(sheetName, "D", "D", 14)
	f.SetColWidth(sheetName, "E", "F", 15)
	f.SetColWidth(sheetName, "G", "G", 12)
	f.SetColWidth(sheetName, "H", "H", 26)

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}

	if view.Direction == "rtl" {
		rtl := true
		if err := f.SetSheetView(sheetName, -1, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			return nil, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
		}
	}

	// The logo asset ships pre-faded; as a sheet background it tiles behind
	// every cell instead of floating over them like an inserted picture.
	if len(s.logo) > 0 {
		if err := f.SetSheetBackgroundFromBytes(sheetName, ".png", s.logo); err != nil {
			return nil, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

func boxBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#D9D9D9", Style: 1},
		{Type: "right", Color: "#D9D9D9", Style: 1},
		{Type: "top", Color: "#D9D9D9", Style: 1},
		{Type: "bottom", Color: "#D9D9D9", Style: 1},
	}
}
