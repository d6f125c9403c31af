package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/ports"
)

// SettingsHandler handles the salon profile, price list and theme.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type themeRequest struct {
	Theme domain.Theme `json:"theme" validate:"required,oneof=light dark"`
}

type themeResponse struct {
	Theme domain.Theme `json:"theme"`
}

// Profile handles GET /v1/settings/profile.
//
// @Summary      Salon and owner names
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.Profile
// @Router       /v1/settings/profile [get]
func (h *SettingsHandler) Profile(c echo.Context) error {
	p, err := h.service.Profile(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// UpdateProfile handles PUT /v1/settings/profile.
//
// @Summary      Rename the salon or its owner
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Profile  true  "Profile"
// @Success      200   {object}  domain.Profile
// @Router       /v1/settings/profile [put]
func (h *SettingsHandler) UpdateProfile(c echo.Context) error {
	var req domain.Profile
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	p, err := h.service.UpdateProfile(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Prices handles GET /v1/settings/prices.
//
// @Summary      Service price list
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string]number
// @Router       /v1/settings/prices [get]
func (h *SettingsHandler) Prices(c echo.Context) error {
	p, err := h.service.Prices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// UpdatePrices handles PUT /v1/settings/prices. The body replaces the whole list.
//
// @Summary      Replace the service price list
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]number  true  "Service name to price"
// @Success      200   {object}  map[string]number
// @Failure      422   {object}  map[string]string
// @Router       /v1/settings/prices [put]
func (h *SettingsHandler) UpdatePrices(c echo.Context) error {
	var req map[string]decimal.Decimal
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	p, err := h.service.UpdatePrices(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Theme handles GET /v1/settings/theme.
//
// @Summary      Stored theme preference, "system" when unset
// @Tags         settings
// @Produce      json
// @Success      200  {object}  themeResponse
// @Router       /v1/settings/theme [get]
func (h *SettingsHandler) Theme(c echo.Context) error {
	t, err := h.service.Theme(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: t})
}

// SetTheme handles PUT /v1/settings/theme.
//
// @Summary      Persist the theme preference
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      themeRequest  true  "light or dark"
// @Success      200   {object}  themeResponse
// @Failure      422   {object}  map[string]string
// @Router       /v1/settings/theme [put]
func (h *SettingsHandler) SetTheme(c echo.Context) error {
	var req themeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.service.SetTheme(c.Request().Context(), req.Theme); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: req.Theme})
}
