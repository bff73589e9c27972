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

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type cartView struct {
	Items           []*entity.CartItem `json:"items"`
	TotalItems      int                `json:"totalItems"`
	TotalPriceCents int64              `json:"totalPriceCents"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Get returns the cart with its totals.
func (h *CartHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, cartView{
		Items:           h.uc.Items(),
		TotalItems:      h.uc.TotalItems(),
		TotalPriceCents: h.uc.TotalPrice(),
	}, "")
}

// AddItem adds a product to the cart, or bumps its quantity.
func (h *CartHandler) AddItem(c echo.Context) error {
	var item *entity.CartItem
	if err := c.Bind(&item); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item")
	}
	if item == nil || item.ProductID == "" || item.Name == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Product id and name are required")
	}

	if err := h.uc.AddItem(c.Request().Context(), item); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, cartView{
		Items:           h.uc.Items(),
		TotalItems:      h.uc.TotalItems(),
		TotalPriceCents: h.uc.TotalPrice(),
	}, "Item added")
}

// UpdateQuantity sets the quantity of a line item. Zero removes it.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var input updateQuantityRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := h.uc.UpdateQuantity(c.Request().Context(), c.Param("productId"), input.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartView{
		Items:           h.uc.Items(),
		TotalItems:      h.uc.TotalItems(),
		TotalPriceCents: h.uc.TotalPrice(),
	}, "Quantity updated")
}

// RemoveItem removes a line item. Removing an absent product succeeds.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	if err := h.uc.RemoveItem(c.Request().Context(), c.Param("productId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartView{
		Items:           h.uc.Items(),
		TotalItems:      h.uc.TotalItems(),
		TotalPriceCents: h.uc.TotalPrice(),
	}, "Item removed")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
