package handler

import (
	"log/slog"
	"net/http"

	"medifinder/internal/delivery/http/middleware"
	"medifinder/internal/delivery/http/response"
	"medifinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReservationHandler holds dependencies for reservation handlers.
type ReservationHandler struct {
	uc     usecase.ReservationUsecase
	logger *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create reserves a medication for pickup.
func (h *ReservationHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "No authenticated user")
	}

	var input *usecase.CreateReservationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}

	reservation, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reservation, "Reservation created")
}

// List returns the caller's reservations, newest first.
func (h *ReservationHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "No authenticated user")
	}

	reservations, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservations, "")
}

// Get returns one reservation.
func (h *ReservationHandler) Get(c echo.Context) error {
	reservation, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservation, "")
}

// PickupQR streams the pickup QR code as PNG.
func (h *ReservationHandler) PickupQR(c echo.Context) error {
	png, err := h.uc.PickupQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// MarkReady moves a pending reservation to ready.
func (h *ReservationHandler) MarkReady(c echo.Context) error {
	reservation, err := h.uc.MarkReady(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservation, "Reservation ready")
}

// MarkCollected moves a ready reservation to collected.
func (h *ReservationHandler) MarkCollected(c echo.Context) error {
	reservation, err := h.uc.MarkCollected(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservation, "Reservation collected")
}

// Cancel cancels a pending or ready reservation.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	reservation, err := h.uc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservation, "Reservation cancelled")
}
