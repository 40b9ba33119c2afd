package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/auth"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// AuthClient signs credentials in against the Identity Toolkit REST endpoint.
// The Admin SDK cannot verify a password, so the login flow uses the same
// endpoint the web client would.
type AuthClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewAuthClient(apiKey string) *AuthClient {
	return &AuthClient{
		apiKey:     apiKey,
		baseURL:    identityToolkitURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewAuthClientWithBaseURL is used by tests to point at a stub server.
func NewAuthClientWithBaseURL(apiKey, baseURL string) *AuthClient {
	c := NewAuthClient(apiKey)
	c.baseURL = baseURL
	return c
}

type SignInResult struct {
	LocalID string
	Email   string
	IDToken string
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithPassword verifies an email/password pair. Known credential-service
// error subtypes map to auth domain sentinels; anything unrecognised collapses
// to ErrInvalidCredentials.
func (c *AuthClient) SignInWithPassword(ctx context.Context, email, password string) (SignInResult, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return SignInResult{}, fmt.Errorf("failed to encode sign-in request: %w", err)
	}

	url := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return SignInResult{}, fmt.Errorf("failed to build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SignInResult{}, auth.ErrNetwork
	}
	defer resp.Body.Close()

	var payload signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return SignInResult{}, auth.ErrNetwork
	}

	if resp.StatusCode != http.StatusOK || payload.Error != nil {
		code := ""
		if payload.Error != nil {
			code = payload.Error.Message
		}
		return SignInResult{}, mapAuthError(code)
	}

	return SignInResult{
		LocalID: payload.LocalID,
		Email:   payload.Email,
		IDToken: payload.IDToken,
	}, nil
}

func mapAuthError(code string) error {
	switch {
	case code == "EMAIL_NOT_FOUND":
		return auth.ErrUserNotFound
	case code == "INVALID_PASSWORD":
		return auth.ErrWrongCredential
	case strings.HasPrefix(code, "TOO_MANY_ATTEMPTS"):
		return auth.ErrTooManyAttempts
	default:
		return auth.ErrInvalidCredentials
	}
}
