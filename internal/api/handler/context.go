package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/manicuristapro/salon-system/internal/core/domain"
)

// pathID reads the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}

// queryDate reads an optional YYYY-MM-DD query parameter. A missing value
// yields the zero Date, which the services read as today.
func queryDate(c echo.Context, name string) (domain.Date, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return domain.Date{}, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return domain.Date{}, echo.NewHTTPError(http.StatusBadRequest, name+" must be a date in YYYY-MM-DD format")
	}
	return d, nil
}

// bindAndValidate binds the request body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
