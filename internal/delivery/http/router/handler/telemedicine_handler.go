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

// TelemedicineHandler holds dependencies for consultation chat handlers.
type TelemedicineHandler struct {
	uc     usecase.TelemedicineUsecase
	logger *slog.Logger
}

// NewTelemedicineHandler is the constructor for TelemedicineHandler, injected by Fx.
func NewTelemedicineHandler(uc usecase.TelemedicineUsecase, logger *slog.Logger) *TelemedicineHandler {
	return &TelemedicineHandler{
		uc:     uc,
		logger: logger,
	}
}

type startChatRequest struct {
	PharmacistID string `json:"pharmacistId"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// ListPharmacists returns the telehealth practitioner directory.
func (h *TelemedicineHandler) ListPharmacists(c echo.Context) error {
	pharmacists, err := h.uc.ListPharmacists(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pharmacists, "")
}

// StartChat opens a consultation with an online pharmacist.
func (h *TelemedicineHandler) StartChat(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "No authenticated user")
	}

	var input startChatRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid consultation input")
	}
	if input.PharmacistID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Pharmacist id is required")
	}

	consultation, err := h.uc.StartChat(c.Request().Context(), userID, input.PharmacistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, consultation, "Consultation started")
}

// Get returns one consultation.
func (h *TelemedicineHandler) Get(c echo.Context) error {
	consultation, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, consultation, "")
}

// Messages returns the consultation transcript in send order.
func (h *TelemedicineHandler) Messages(c echo.Context) error {
	messages, err := h.uc.Messages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// SendMessage appends a user message to an active consultation.
func (h *TelemedicineHandler) SendMessage(c echo.Context) error {
	var input sendMessageRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	message, err := h.uc.SendMessage(c.Request().Context(), c.Param("id"), input.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent")
}

// End closes an active consultation.
func (h *TelemedicineHandler) End(c echo.Context) error {
	consultation, err := h.uc.End(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, consultation, "Consultation ended")
}
