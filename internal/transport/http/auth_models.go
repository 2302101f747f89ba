package http

import (
	"strings"
	"time"
)

// AuthUser is the sanitized user representation returned by auth endpoints.
type AuthUser struct {
	ID        string    `json:"id" example:"9fd13fd2-63c5-4f29-a210-4a1a8e285f74"`
	Email     string    `json:"email" example:"user@example.com"`
	Name      *string   `json:"name,omitempty" example:"Pat Driver"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T12:00:00Z"`
}

// AuthTokenResponse is returned by endpoints that issue JWT tokens.
type AuthTokenResponse struct {
	Token     string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt string   `json:"expires_at" example:"2024-01-02T09:30:00Z"`
	User      AuthUser `json:"user"`
}

// AuthUserResponse wraps a user object.
type AuthUserResponse struct {
	User AuthUser `json:"user"`
}

// RegisterRequest carries signup fields.
type RegisterRequest struct {
	Name     string `json:"name" example:"Pat Driver"`
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"roadtrip42"`
}

// LoginRequest carries email login fields.
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"roadtrip42"`
}

// GoogleLoginRequest carries the Google ID token for login.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" example:"eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
