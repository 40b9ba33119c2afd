package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/report"
	"github.com/alnoor-academy/attendance-backend-go/internal/handler/http/response"
	exportsvc "github.com/alnoor-academy/attendance-backend-go/internal/service/export"
	reportsvc "github.com/alnoor-academy/attendance-backend-go/internal/service/report"
)

type ReportHandler interface {
	MonthView(w http.ResponseWriter, r *http.Request)
	ExportExcel(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService reportsvc.ReportService
	exportService exportsvc.ExportService
}

func NewReportHandler(reportService reportsvc.ReportService, exportService exportsvc.ExportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
		exportService: exportService,
	}
}

func monthViewRequest(r *http.Request) report.MonthViewRequest {
	q := r.URL.Query()
	month, _ := strconv.Atoi(q.Get("month"))
	year, _ := strconv.Atoi(q.Get("year"))
	return report.MonthViewRequest{
		StaffID: q.Get("staff_id"),
		Month:   month,
		Year:    year,
		Lang:    q.Get("lang"),
	}
}

// MonthView implements ReportHandler.
func (h *ReportHandlerImpl) MonthView(w http.ResponseWriter, r *http.Request) {
	req := monthViewRequest(r)

	view, err := h.reportService.GenerateMonthView(r.Context(), req)
	if err != nil {
		slog.Error("MonthView service error", "error", err, "staff_id", req.StaffID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// ExportExcel implements ReportHandler.
func (h *ReportHandlerImpl) ExportExcel(w http.ResponseWriter, r *http.Request) {
	req := monthViewRequest(r)

	view, err := h.reportService.GenerateMonthView(r.Context(), req)
	if err != nil {
		slog.Error("ExportExcel view error", "error", err, "staff_id", req.StaffID)
		response.HandleError(w, err)
		return
	}

	raw, err := h.exportService.ExcelMonthView(view)
	if err != nil {
		slog.Error("ExportExcel render error", "error", err, "staff_id", req.StaffID)
		response.HandleError(w, err)
		return
	}

	writeAttachment(w, raw, exportsvc.ExcelFileName(view),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// ExportPDF implements ReportHandler.
func (h *ReportHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	req := monthViewRequest(r)

	view, err := h.reportService.GenerateMonthView(r.Context(), req)
	if err != nil {
		slog.Error("ExportPDF view error", "error", err, "staff_id", req.StaffID)
		response.HandleError(w, err)
		return
	}

	raw, err := h.exportService.PDFMonthView(view)
	if err != nil {
		slog.Error("ExportPDF render error", "error", err, "staff_id", req.StaffID)
		response.HandleError(w, err)
		return
	}

	writeAttachment(w, raw, exportsvc.PDFFileName(view), "application/pdf")
}

// writeAttachment sends fully rendered bytes; headers go out only after a
// successful render so a failed export still returns a JSON error body.
func writeAttachment(w http.ResponseWriter, raw []byte, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(raw)))
	if _, err := w.Write(raw); err != nil {
		slog.Error("attachment write error", "error", err, "filename", filename)
	}
}
