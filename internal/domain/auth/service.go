package auth

import "context"

type AuthService interface {
	// SignIn authenticates a short institutional ID and secret against the
	// hosted credential service and issues a session token.
	SignIn(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
