package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manicuristapro/salon-system/internal/core/ports"
)

// ProductHandler handles HTTP requests for the salon inventory.
type ProductHandler struct {
	service ports.InventoryService
}

func NewProductHandler(service ports.InventoryService) *ProductHandler {
	return &ProductHandler{service: service}
}

type stockAdjustmentRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// List handles GET /v1/products.
//
// @Summary      List products
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// LowStock handles GET /v1/products/low-stock.
//
// @Summary      Products at or below their minimum stock
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /v1/products/low-stock [get]
func (h *ProductHandler) LowStock(c echo.Context) error {
	products, err := h.service.LowStock(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /v1/products.
//
// @Summary      Add a product
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body      ports.ProductInput  true  "Product fields"
// @Success      201   {object}  domain.Product
// @Failure      422   {object}  map[string]string
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req ports.ProductInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	p, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /v1/products/:id.
//
// @Summary      Replace a product's fields
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Product id"
// @Param        body  body      ports.ProductInput  true  "Product fields"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  map[string]string
// @Router       /v1/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req ports.ProductInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	p, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /v1/products/:id.
//
// @Summary      Remove a product
// @Tags         inventory
// @Param        id   path  int  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AdjustStock handles POST /v1/products/:id/stock.
//
// @Summary      Add to or consume from a product's stock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Product id"
// @Param        body  body      stockAdjustmentRequest  true  "Signed stock delta"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/products/{id}/stock [post]
func (h *ProductHandler) AdjustStock(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req stockAdjustmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.AdjustStock(c.Request().Context(), id, req.Delta)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}
