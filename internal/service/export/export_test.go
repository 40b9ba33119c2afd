package export

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/report"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/i18n"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testView(lang string) report.MonthView {
	direction := "ltr"
	if lang == "ur" {
		direction = "rtl"
	}
	return report.MonthView{
		StaffID:   "tch-001",
		StaffName: "Abdul Rahman",
		Month:     3,
		Year:      2024,
		Lang:      lang,
		Direction: direction,
		Rows: []report.MonthRow{
			{DayNumber: 1, DateLabel: "01/03/2024", WeekdayLabel: "Friday", StatusLabel: "Present", StatusRaw: "present", LateMinutes: 20, Deduction: decimal.NewFromInt(31)},
			{DayNumber: 2, DateLabel: "02/03/2024", WeekdayLabel: "Saturday", StatusLabel: "Absent", StatusRaw: "absent", Deduction: decimal.NewFromInt(25000).Div(decimal.NewFromInt(30))},
			{DayNumber: 3, DateLabel: "03/03/2024", WeekdayLabel: "Sunday", StatusLabel: "Holiday", StatusRaw: "holiday", IsSunday: true},
			{DayNumber: 4, DateLabel: "04/03/2024", WeekdayLabel: "Monday", StatusLabel: "-", StatusRaw: report.StatusUnmarked},
		},
		Stats: report.MonthStats{
			PresentDays:          1,
			AbsentDays:           1,
			HolidayDays:          1,
			TotalLateMinutes:     20,
			TotalDeduction:       decimal.NewFromInt(864),
			TotalDaysInMonth:     31,
			AttendancePercentage: 50,
		},
	}
}

func newTestExporter() *ExportServiceImpl {
	svc := NewExportService("Al-Noor Academy", "النور اکیڈمی", nil, nil)
	svc.now = func() time.Time { return time.Date(2024, time.March, 20, 10, 30, 0, 0, time.UTC) }
	return svc
}

func TestExcelMonthView_WorkbookContent(t *testing.T) {
	i18n.Init("en")
	svc := newTestExporter()

	raw, err := svc.ExcelMonthView(testView("en"))
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Attendance"}, f.GetSheetList())

	org, err := f.GetCellValue("Attendance", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Al-Noor Academy", org)

	status, err := f.GetCellValue("Attendance", "D6")
	require.NoError(t, err)
	assert.Equal(t, "Status", status)

	firstStatus, err := f.GetCellValue("Attendance", "D7")
	require.NoError(t, err)
	assert.Equal(t, "Present", firstStatus)

	lateIn, err := f.GetCellValue("Attendance", "E7")
	require.NoError(t, err)
	assert.Equal(t, "20", lateIn)

	unmarked, err := f.GetCellValue("Attendance", "D10")
	require.NoError(t, err)
	assert.Equal(t, "-", unmarked)
}

func TestExcelMonthView_UrduRightToLeft(t *testing.T) {
	i18n.Init("en")
	svc := newTestExporter()

	raw, err := svc.ExcelMonthView(testView("ur"))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	org, err := f.GetCellValue("Attendance", "A1")
	require.NoError(t, err)
	assert.Equal(t, "النور اکیڈمی", org)

	opts, err := f.GetSheetView("Attendance", -1)
	require.NoError(t, err)
	require.NotNil(t, opts.RightToLeft)
	assert.True(t, *opts.RightToLeft)
}

func testLogoPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestExcelMonthView_LogoWatermarkBackground(t *testing.T) {
	i18n.Init("en")
	svc := NewExportService("Al-Noor Academy", "النور اکیڈمی", testLogoPNG(t), nil)
	svc.now = func() time.Time { return time.Date(2024, time.March, 20, 10, 30, 0, 0, time.UTC) }

	raw, err := svc.ExcelMonthView(testView("en"))
	require.NoError(t, err)

	archive, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)

	var hasMedia, hasBackground bool
	for _, file := range archive.File {
		if strings.HasPrefix(file.Name, "xl/media/") {
			hasMedia = true
		}
		if strings.HasPrefix(file.Name, "xl/worksheets/") && strings.HasSuffix(file.Name, ".xml") {
			rc, err := file.Open()
			require.NoError(t, err)
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			rc.Close()
			if strings.Contains(string(content), "<picture") {
				hasBackground = true
			}
		}
	}
	assert.True(t, hasMedia, "workbook should embed the logo image")
	assert.True(t, hasBackground, "worksheet should reference a background picture")
}

func TestExcelMonthView_EmptyMonth(t *testing.T) {
	i18n.Init("en")
	svc := newTestExporter()

	view := testView("en")
	view.Rows = nil
	view.Stats = report.MonthStats{TotalDaysInMonth: 31, TotalDeduction: decimal.Zero}

	raw, err := svc.ExcelMonthView(view)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestPDFMonthView_English(t *testing.T) {
	i18n.Init("en")
	svc := newTestExporter()

	raw, err := svc.PDFMonthView(testView("en"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestPDFMonthView_UrduWithoutFont(t *testing.T) {
	i18n.Init("en")
	svc := newTestExporter()

	_, err := svc.PDFMonthView(testView("ur"))
	assert.ErrorIs(t, err, report.ErrFontUnavailable)
}

func TestFileNames(t *testing.T) {
	i18n.Init("en")
	view := testView("en")

	assert.Equal(t, "Monthly_Attendance_Report_2024-03_tch-001.xlsx", ExcelFileName(view))
	assert.Equal(t, "Monthly_Attendance_Report_2024-03.pdf", PDFFileName(view))
}
