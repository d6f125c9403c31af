package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manicuristapro/salon-system/internal/core/ports"
)

// ClientHandler handles HTTP requests for the client directory.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /v1/clients.
//
// @Summary      List clients by name
// @Tags         clients
// @Produce      json
// @Success      200  {array}  domain.Client
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Get handles GET /v1/clients/:id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  map[string]string
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	client, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Create handles POST /v1/clients.
//
// @Summary      Add a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      ports.ClientInput  true  "Client fields"
// @Success      201   {object}  domain.Client
// @Failure      422   {object}  map[string]string
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req ports.ClientInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	client, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Update handles PUT /v1/clients/:id.
//
// @Summary      Replace a client's fields
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Client id"
// @Param        body  body      ports.ClientInput  true  "Client fields"
// @Success      200   {object}  domain.Client
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req ports.ClientInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	client, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /v1/clients/:id.
//
// @Summary      Remove a client
// @Tags         clients
// @Param        id   path  int  true  "Client id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
