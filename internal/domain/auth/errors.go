package auth

import "errors"

// Auth domain errors, one per credential-service error subtype. Unknown
// subtypes are collapsed into ErrInvalidCredentials so nothing about the
// account leaks to the caller.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongCredential    = errors.New("wrong credential")
	ErrTooManyAttempts    = errors.New("too many sign-in attempts")
	ErrNetwork            = errors.New("credential service unreachable")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
