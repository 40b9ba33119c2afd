package auth

import (
	"context"
	"fmt"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/auth"
	"github.com/alnoor-academy/attendance-backend-go/internal/domain/staff"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/firebase"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	authClient       *firebase.AuthClient
	staffRepo        staff.StaffRepository
	jwtService       jwt.Service
	authDomainSuffix string
}

func NewAuthService(authClient *firebase.AuthClient, staffRepo staff.StaffRepository, jwtService jwt.Service, authDomainSuffix string) *AuthServiceImpl {
	return &AuthServiceImpl{
		authClient:       authClient,
		staffRepo:        staffRepo,
		jwtService:       jwtService,
		authDomainSuffix: authDomainSuffix,
	}
}

// SignIn maps the short institutional ID to its credential-service email by
// appending the academy domain suffix, verifies the secret remotely, then
// issues a local session token carrying the staff profile.
func (s *AuthServiceImpl) SignIn(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	req.Trim()
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	email := req.ShortID + s.authDomainSuffix

	if _, err := s.authClient.SignInWithPassword(ctx, email, req.Secret); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("sign in %s: %w", req.ShortID, err)
	}

	member, err := s.staffRepo.GetByID(ctx, req.ShortID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("load staff %s: %w", req.ShortID, err)
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(member.ID, email, member.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:          token,
		AccessTokenExpiresAt: expiresAt,
		StaffID:              member.ID,
		Name:                 member.Name,
		Role:                 member.Role,
	}, nil
}
