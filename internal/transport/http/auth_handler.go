package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carhive/carhive-api/internal/domain"
	"github.com/carhive/carhive-api/internal/service"
	"github.com/carhive/carhive-api/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	group := e.Group("/api/v1/auth")
	group.POST("/register", handler.register)
	group.POST("/login", handler.login)
	group.POST("/google", handler.loginWithGoogle)

	protected := e.Group("/api/v1/auth", RequireAuth(auth))
	protected.POST("/logout", handler.logout)
	protected.GET("/me", handler.me)
}

// register handles POST /api/v1/auth/register
func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	user, err := h.auth.Register(c.Request().Context(), req.Email, req.Password, optionalString(req.Name))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAlreadyUsed):
			return c.JSON(http.StatusConflict, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
	}

	return c.JSON(http.StatusCreated, AuthUserResponse{User: toAuthUser(user)})
}

// login handles POST /api/v1/auth/login
func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	token, expiresAt, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to log in"))
		}
	}

	return c.JSON(http.StatusOK, AuthTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		User:      toAuthUser(user),
	})
}

// loginWithGoogle handles POST /api/v1/auth/google
func (h *AuthHandler) loginWithGoogle(c echo.Context) error {
	var req GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	token, expiresAt, user, err := h.auth.LoginWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
	}

	return c.JSON(http.StatusOK, AuthTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		User:      toAuthUser(user),
	})
}

// logout handles POST /api/v1/auth/logout
func (h *AuthHandler) logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), currentToken(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to log out"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"success": true})
}

// me handles GET /api/v1/auth/me
func (h *AuthHandler) me(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	return c.JSON(http.StatusOK, AuthUserResponse{User: toAuthUser(user)})
}

func toAuthUser(user *domain.User) AuthUser {
	return AuthUser{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}
