package http

import (
	"log/slog"
	"net/http"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/staff"
	"github.com/alnoor-academy/attendance-backend-go/internal/handler/http/response"
)

type StaffHandler interface {
	ListTeachers(w http.ResponseWriter, r *http.Request)
	ListStudents(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// ListTeachers implements StaffHandler.
func (h *StaffHandlerImpl) ListTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.staffService.ListTeachers(r.Context())
	if err != nil {
		slog.Error("ListTeachers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, teachers)
}

// ListStudents implements StaffHandler.
func (h *StaffHandlerImpl) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.staffService.ListStudents(r.Context())
	if err != nil {
		slog.Error("ListStudents service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, students)
}
