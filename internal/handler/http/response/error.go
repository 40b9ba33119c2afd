package response

import (
	"errors"
	"net/http"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/attendance"
	"github.com/alnoor-academy/attendance-backend-go/internal/domain/auth"
	"github.com/alnoor-academy/attendance-backend-go/internal/domain/report"
	"github.com/alnoor-academy/attendance-backend-go/internal/domain/staff"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "No account exists for this ID")
	case errors.Is(err, auth.ErrWrongCredential),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrTooManyAttempts):
		TooManyRequests(w, "Too many attempts, try again later")
	case errors.Is(err, auth.ErrNetwork):
		BadGateway(w, "Credential service unreachable")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for today")
	case errors.Is(err, attendance.ErrStatusNotAllowed):
		BadRequest(w, "Status cannot be marked directly", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")

	// Report domain errors
	case errors.Is(err, report.ErrFontUnavailable):
		InternalServerError(w, "Urdu report font is not installed")
	case errors.Is(err, report.ErrRenderFailed):
		InternalServerError(w, "Failed to render report")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
