package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the persisted attendance state for one staff member on one day.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
	StatusHoliday Status = "holiday"
)

// Markable statuses a user may choose in the daily workflow. Holiday records
// are written by administrative tooling, never by the marking flow.
var MarkableStatuses = []Status{StatusPresent, StatusAbsent, StatusLeave}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusLeave, StatusHoliday:
		return true
	}
	return false
}

func IsMarkableStatus(s string) bool {
	for _, v := range MarkableStatuses {
		if string(v) == s {
			return true
		}
	}
	return false
}

// ReasonType categorises a leave/absence reason.
type ReasonType string

const (
	ReasonSick      ReasonType = "sick"
	ReasonPersonal  ReasonType = "personal"
	ReasonEmergency ReasonType = "emergency"
	ReasonOther     ReasonType = "other"
	ReasonNone      ReasonType = ""
)

func IsValidReasonType(s string) bool {
	switch ReasonType(s) {
	case ReasonSick, ReasonPersonal, ReasonEmergency, ReasonOther, ReasonNone:
		return true
	}
	return false
}

// Record is one persisted attendance entity per (staff, calendar day).
// Records are immutable once saved; there is no edit or unmark flow.
type Record struct {
	ID           string
	StaffID      string
	Status       Status
	Date         time.Time
	MarkedAtTime string
	IsLate       bool
	LateMinutes  int
	IsEarlyLeave bool
	EarlyMinutes int
	Deduction    decimal.Decimal
	ReasonType   ReasonType
	ReasonText   string
	CreatedAt    time.Time
}
