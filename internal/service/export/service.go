package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/report"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/i18n"
)

// ExportService renders a derived month view into downloadable documents.
// Both sinks are pure over the view: they read it, never mutate it, and a
// failed render leaves no partial file behind because output is buffered
// in memory.
type ExportService interface {
	ExcelMonthView(view report.MonthView) ([]byte, error)
	PDFMonthView(view report.MonthView) ([]byte, error)
}

type ExportServiceImpl struct {
	orgNameEn string
	orgNameUr string
	logo      []byte
	urduFont  []byte
	now       func() time.Time
}

func NewExportService(orgNameEn, orgNameUr string, logo, urduFont []byte) *ExportServiceImpl {
	return &ExportServiceImpl{
		orgNameEn: orgNameEn,
		orgNameUr: orgNameUr,
		logo:      logo,
		urduFont:  urduFont,
		now:       time.Now,
	}
}

func (s *ExportServiceImpl) orgName(lang string) string {
	if lang == "ur" && s.orgNameUr != "" {
		return s.orgNameUr
	}
	return s.orgNameEn
}

func periodLabel(view report.MonthView) string {
	return fmt.Sprintf("%02d/%d", view.Month, view.Year)
}

// ExcelFileName follows the {title}_{yyyy-mm}_{staffID}.xlsx shape shown in
// the download bar, with spaces collapsed so the attachment header stays
// unquoted.
func ExcelFileName(view report.MonthView) string {
	title := strings.ReplaceAll(i18n.T(view.Lang, "report.title"), " ", "_")
	return fmt.Sprintf("%s_%04d-%02d_%s.xlsx", title, view.Year, view.Month, view.StaffID)
}

func PDFFileName(view report.MonthView) string {
	title := strings.ReplaceAll(i18n.T(view.Lang, "report.title"), " ", "_")
	return fmt.Sprintf("%s_%04d-%02d.pdf", title, view.Year, view.Month)
}

func deductionCell(row report.MonthRow) string {
	if row.Deduction.IsZero() {
		return ""
	}
	return row.Deduction.String()
}

func minutesCell(minutes int) string {
	if minutes == 0 {
		return ""
	}
	return fmt.Sprintf("%d", minutes)
}
