package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/attendance"
	"github.com/alnoor-academy/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	staffID := r.URL.Query().Get("staff_id")
	if staffID == "" {
		response.BadRequest(w, "staff_id is required", nil)
		return
	}

	todayResp, err := h.attendanceService.TodayStatus(r.Context(), staffID)
	if err != nil {
		slog.Error("Today service error", "error", err, "staff_id", staffID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, todayResp)
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var markReq attendance.MarkRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Mark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// 2. Call service; the conditional write inside rejects double marking
	record, err := h.attendanceService.Mark(r.Context(), markReq)
	if err != nil {
		slog.Error("Mark service error", "error", err, "staff_id", markReq.StaffID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance marked", "staff_id", record.StaffID, "status", record.Status)
	response.Created(w, "Attendance marked", record)
}
