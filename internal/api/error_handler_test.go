package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/stats"
)

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", fmt.Errorf("create appointment: %w: clientname is required", domain.ErrValidation), http.StatusUnprocessableEntity},
		{"unknown window", fmt.Errorf("%w: %q", stats.ErrUnknownWindow, "year"), http.StatusUnprocessableEntity},
		{"appointment not found", fmt.Errorf("update appointment 9: %w", domain.ErrAppointmentNotFound), http.StatusNotFound},
		{"client not found", domain.ErrClientNotFound, http.StatusNotFound},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound},
		{"import format", fmt.Errorf("%w: empty workbook", domain.ErrImportFormat), http.StatusBadRequest},
		{"no upcoming", domain.ErrNoUpcomingAppointment, http.StatusConflict},
		{"insufficient stock", domain.ErrInsufficientStock, http.StatusConflict},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Error == "" {
				t.Errorf("expected error envelope, got %q", rec.Body.String())
			}
		})
	}
}

func TestHTTPErrorHandler_HidesUnexpectedDetails(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("redis: password leaked"), c)

	var resp errorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "internal server error" {
		t.Errorf("expected generic message, got %q", resp.Error)
	}
}
