// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"medifinder/internal/delivery/http/response"
	"medifinder/internal/domain/entity"
	"medifinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// snapshot is the session state as exposed to clients.
type snapshot struct {
	Authenticated bool            `json:"authenticated"`
	User          *entity.Session `json:"user,omitempty"`
}

// Register handles the account registration request.
func (h *SessionHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	session, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, session, "Account created")
}

// Login handles the login request.
func (h *SessionHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.uc.Login(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Login successful")
}

// Logout handles the logout request. Logging out while logged out succeeds.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Snapshot returns the current session state.
func (h *SessionHandler) Snapshot(c echo.Context) error {
	session, authenticated := h.uc.Current()

	return response.Success(c, http.StatusOK, snapshot{
		Authenticated: authenticated,
		User:          session,
	}, "")
}

// Update applies a partial profile update to the current session.
func (h *SessionHandler) Update(c echo.Context) error {
	var patch *entity.SessionPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile patch")
	}

	session, err := h.uc.UpdateUser(c.Request().Context(), patch)
	if err != nil {
		return errors.WithStack(err)
	}
	if session == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "No active session")
	}

	return response.Success(c, http.StatusOK, session, "Profile updated")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
