package attendance

import (
	"strings"

	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type MarkRequest struct {
	StaffID    string `json:"staff_id"`
	Status     string `json:"status"`
	ReasonType string `json:"reason_type"`
	ReasonText string `json:"reason_text"`
}

func (r *MarkRequest) Trim() {
	r.StaffID = strings.TrimSpace(r.StaffID)
	r.Status = strings.TrimSpace(r.Status)
	r.ReasonType = strings.TrimSpace(r.ReasonType)
	if len(r.ReasonText) > 500 {
		r.ReasonText = r.ReasonText[:500]
	}
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	} else if !validator.IsValidStaffID(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id format is invalid",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !IsMarkableStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, leave",
		})
	}

	if !IsValidReasonType(r.ReasonType) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason_type",
			Message: "reason_type must be one of sick, personal, emergency, other",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID           string `json:"id"`
	StaffID      string `json:"staff_id"`
	Status       string `json:"status"`
	Date         string `json:"date"`
	MarkedAtTime string `json:"marked_at_time"`
	IsLate       bool   `json:"is_late"`
	LateMinutes  int    `json:"late_minutes"`
	IsEarlyLeave bool   `json:"is_early_leave"`
	EarlyMinutes int    `json:"early_minutes"`
	Deduction    string `json:"deduction"`
	ReasonType   string `json:"reason_type,omitempty"`
	ReasonText   string `json:"reason_text,omitempty"`
}

// TodayResponse reports the daily state machine position for one staff
// member: Unmarked (Record nil) or Marked (Record set, locked).
type TodayResponse struct {
	StaffID string          `json:"staff_id"`
	Date    string          `json:"date"`
	Marked  bool            `json:"marked"`
	Record  *RecordResponse `json:"record,omitempty"`
}

func NewRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:           rec.ID,
		StaffID:      rec.StaffID,
		Status:       string(rec.Status),
		Date:         rec.Date.Format("2006-01-02"),
		MarkedAtTime: rec.MarkedAtTime,
		IsLate:       rec.IsLate,
		LateMinutes:  rec.LateMinutes,
		IsEarlyLeave: rec.IsEarlyLeave,
		EarlyMinutes: rec.EarlyMinutes,
		Deduction:    rec.Deduction.String(),
		ReasonType:   string(rec.ReasonType),
		ReasonText:   rec.ReasonText,
	}
}
