package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/carhive/carhive-api/internal/domain"
	"github.com/carhive/carhive-api/internal/repository/ports"
	"github.com/carhive/carhive-api/internal/util"
)

var (
	ErrEmailAlreadyUsed   = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("authentication required")
)

type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	jwt      *util.JWTManager
	tokenTTL time.Duration
	aud      string
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, jwt *util.JWTManager, tokenTTL time.Duration, googleAud string) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		jwt:      jwt,
		tokenTTL: tokenTTL,
		aud:      googleAud,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password string, name *string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("valid email required")
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, salt, err := util.DerivePassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateEmailUser(ctx, email, name, hash, salt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return "", time.Time{}, nil, ErrInvalidCredentials
		}
		return "", time.Time{}, nil, err
	}
	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}

	return s.issueToken(ctx, user)
}

func (s *AuthService) LoginWithGoogle(ctx context.Context, idTok string) (string, time.Time, *domain.User, error) {
	payload, err := idtoken.Validate(ctx, idTok, s.aud)
	if err != nil {
		return "", time.Time{}, nil, errors.New("invalid google token")
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", time.Time{}, nil, errors.New("google token missing email")
	}
	var name *string
	if n, _ := payload.Claims["name"].(string); strings.TrimSpace(n) != "" {
		trimmed := strings.TrimSpace(n)
		name = &trimmed
	}

	user, err := s.users.UpsertGoogleUser(ctx, strings.ToLower(email), name)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	return s.issueToken(ctx, user)
}

// Authenticate resolves a bearer token to its user. The JWT signature proves
// origin; the session row makes logout effective before expiry.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessions.FindActiveSession(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	if session.UserID != claims.UserID {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeactivateSession(ctx, token)
}

func (s *AuthService) issueToken(ctx context.Context, user *domain.User) (string, time.Time, *domain.User, error) {
	token, expiresAt, err := s.jwt.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	if _, err := s.sessions.CreateSession(ctx, user.ID, token, expiresAt); err != nil {
		return "", time.Time{}, nil, err
	}
	return token, expiresAt, user, nil
}
