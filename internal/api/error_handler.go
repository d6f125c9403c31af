package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/stats"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain errors
// to status codes and renders {"error": "<message>"}. Unexpected errors are
// logged and answered with a generic message.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, stats.ErrUnknownWindow):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrAppointmentNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrImportFormat):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNoUpcomingAppointment),
		errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict, err.Error()
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
