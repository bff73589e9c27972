package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"medifinder/internal/delivery/http/response"
	"medifinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// SearchPharmacies matches pharmacies by name or address. An empty query
// lists all of them.
func (h *CatalogHandler) SearchPharmacies(c echo.Context) error {
	pharmacies, err := h.uc.SearchPharmacies(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pharmacies, "")
}

// NearbyPharmacies returns pharmacies ordered by distance from a point.
func (h *CatalogHandler) NearbyPharmacies(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid latitude")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid longitude")
	}
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit")
		}
	}

	nearby, err := h.uc.NearbyPharmacies(c.Request().Context(), lat, lon, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nearby, "")
}

// OnDutyPharmacies returns the pharmacies de garde.
func (h *CatalogHandler) OnDutyPharmacies(c echo.Context) error {
	pharmacies, err := h.uc.OnDutyPharmacies(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pharmacies, "")
}

// GetPharmacy returns one pharmacy.
func (h *CatalogHandler) GetPharmacy(c echo.Context) error {
	pharmacy, err := h.uc.GetPharmacy(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pharmacy, "")
}

// SearchMedications matches medications by name or category.
func (h *CatalogHandler) SearchMedications(c echo.Context) error {
	medications, err := h.uc.SearchMedications(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medications, "")
}

// GetMedication returns one medication with its per-pharmacy offers.
func (h *CatalogHandler) GetMedication(c echo.Context) error {
	medication, err := h.uc.GetMedication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medication, "")
}
