package auth

import (
	"strings"

	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	ShortID  string `json:"short_id"`
	Secret   string `json:"secret"`
	Remember bool   `json:"remember"`
}

func (r *LoginRequest) Trim() {
	r.ShortID = strings.TrimSpace(strings.ToLower(r.ShortID))
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShortID) {
		errs = append(errs, validator.ValidationError{
			Field:   "short_id",
			Message: "short_id is required",
		})
	} else if !validator.IsValidStaffID(r.ShortID) {
		errs = append(errs, validator.ValidationError{
			Field:   "short_id",
			Message: "short_id format is invalid",
		})
	}

	if validator.IsEmpty(r.Secret) {
		errs = append(errs, validator.ValidationError{
			Field:   "secret",
			Message: "secret is required",
		})
	} else if len(r.Secret) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "secret",
			Message: "secret must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresAt int64  `json:"access_token_expires_at"`
	StaffID              string `json:"staff_id"`
	Name                 string `json:"name"`
	Role                 string `json:"role"`
}
