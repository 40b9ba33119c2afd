package export

import (
	"bytes"
	"fmt"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/report"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/i18n"
	"github.com/jung-kurt/gofpdf"
)

var pdfColumns = []struct {
	key   string
	width float64
}{
	{"report.col.serial", 15},
	{"report.col.date", 35},
	{"report.col.day", 35},
	{"report.col.status", 35},
	{"report.col.late_in", 30},
	{"report.col.deduction", 40},
}

var statusTextColors = map[string][3]int{
	"present": {0, 97, 0},
	"absent":  {156, 0, 6},
	"leave":   {156, 101, 0},
	"holiday": {31, 78, 120},
}

// PDFMonthView renders the month view as a paginated A4 document. Urdu
// output needs the Nastaliq font bytes loaded at startup; the built-in core
// fonts cannot shape Urdu script, so a missing font is a hard error rather
// than a silent mojibake report.
func (s *ExportServiceImpl) PDFMonthView(view report.MonthView) ([]byte, error) {
	lang := view.Lang
	rtl := view.Direction == "rtl"

	if rtl && len(s.urduFont) == 0 {
		return nil, fmt.Errorf("urdu export: %w", report.ErrFontUnavailable)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 25)

	fontName := "Arial"
	if rtl {
		fontName = "NotoNastaliq"
		pdf.AddUTF8FontFromBytes(fontName, "", s.urduFont)
		pdf.AddUTF8FontFromBytes(fontName, "B", s.urduFont)
	}

	if len(s.logo) > 0 {
		pdf.RegisterImageOptionsReader("org-logo",
			gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(s.logo))
	}

	pdf.SetHeaderFunc(func() {
		pdf.SetFillColor(68, 114, 196)
		pdf.Rect(0, 0, 210, 24, "F")
		if len(s.logo) > 0 {
			pdf.ImageOptions("org-logo", 12, 4, 16, 16, false,
				gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont(fontName, "B", 15)
		pdf.SetXY(10, 5)
		pdf.CellFormat(190, 8, s.orgName(lang), "", 1, "C", false, 0, "")
		pdf.SetFont(fontName, "", 11)
		pdf.CellFormat(190, 7, i18n.T(lang, "report.title"), "", 1, "C", false, 0, "")

		pdf.SetTextColor(0, 0, 0)
		pdf.SetY(28)
		pdf.SetFont(fontName, "", 10)
		pdf.CellFormat(95, 7, i18n.T(lang, "report.staff", map[string]any{"Name": view.StaffName}), "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, i18n.T(lang, "report.period", map[string]any{"Period": periodLabel(view)}), "", 1, "R", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont(fontName, "B", 10)
		pdf.SetFillColor(68, 114, 196)
		pdf.SetTextColor(255, 255, 255)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 8, i18n.T(lang, col.key), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontName, "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(95, 6, i18n.T(lang, "report.footer.brand"), "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 6, i18n.T(lang, "report.footer.page",
			map[string]any{"Page": pdf.PageNo(), "Total": "{nb}"}), "", 0, "R", false, 0, "")
	})
	pdf.AliasNbPages("")

	if rtl {
		pdf.RTL()
	}
	pdf.AddPage()

	pdf.SetFont(fontName, "", 9)
	for _, row := range view.Rows {
		cells := []string{
			fmt.Sprintf("%d", row.DayNumber),
			row.DateLabel,
			row.WeekdayLabel,
			row.StatusLabel,
			minutesCell(row.LateMinutes),
			deductionCell(row),
		}
		if color, ok := statusTextColors[row.StatusRaw]; ok {
			pdf.SetTextColor(color[0], color[1], color[2])
		} else {
			pdf.SetTextColor(0, 0, 0)
		}
		for i, cell := range cells {
			pdf.CellFormat(pdfColumns[i].width, 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.SetTextColor(0, 0, 0)

	pdf.Ln(4)
	pdf.SetFont(fontName, "B", 10)
	pdf.CellFormat(190, 8, i18n.T(lang, "stats.summary"), "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 9)
	summary := []struct {
		label string
		value string
	}{
		{i18n.T(lang, "stats.present_days"), fmt.Sprintf("%d", view.Stats.PresentDays)},
		{i18n.T(lang, "stats.absent_days"), fmt.Sprintf("%d", view.Stats.AbsentDays)},
		{i18n.T(lang, "stats.leave_days"), fmt.Sprintf("%d", view.Stats.LeaveDays)},
		{i18n.T(lang, "stats.holiday_days"), fmt.Sprintf("%d", view.Stats.HolidayDays)},
		{i18n.T(lang, "stats.total_late_minutes"), fmt.Sprintf("%d", view.Stats.TotalLateMinutes)},
		{i18n.T(lang, "stats.total_deduction"), view.Stats.TotalDeduction.String()},
		{i18n.T(lang, "stats.attendance_percentage"), fmt.Sprintf("%d%%", view.Stats.AttendancePercentage)},
	}
	for _, item := range summary {
		pdf.CellFormat(95, 7, item.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, item.value, "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}
