package handler

import (
	"log/slog"
	"net/http"

	"medifinder/internal/delivery/http/response"
	"medifinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReminderHandler holds dependencies for dose reminder handlers.
type ReminderHandler struct {
	uc     usecase.ReminderUsecase
	logger *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler, injected by Fx.
func NewReminderHandler(uc usecase.ReminderUsecase, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{
		uc:     uc,
		logger: logger,
	}
}

type snoozeRequest struct {
	Minutes int `json:"minutes" validate:"required,min=1"`
}

// List returns all dose reminders.
func (h *ReminderHandler) List(c echo.Context) error {
	doses, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, doses, "")
}

// Status returns the current classification of one dose.
func (h *ReminderHandler) Status(c echo.Context) error {
	status, err := h.uc.Status(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// Track starts periodic re-evaluation of a dose.
func (h *ReminderHandler) Track(c echo.Context) error {
	if err := h.uc.Track(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dose tracked")
}

// Untrack stops the periodic re-evaluation of a dose.
func (h *ReminderHandler) Untrack(c echo.Context) error {
	h.uc.Untrack(c.Param("id"))

	return response.Success(c, http.StatusOK, nil, "Dose untracked")
}

// MarkTaken flips the taken flag of a dose.
func (h *ReminderHandler) MarkTaken(c echo.Context) error {
	if err := h.uc.MarkTaken(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dose marked as taken")
}

// Snooze pushes the next dose forward by the given minutes.
func (h *ReminderHandler) Snooze(c echo.Context) error {
	var input snoozeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid snooze input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Snooze(c.Request().Context(), c.Param("id"), input.Minutes); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reminder snoozed")
}
