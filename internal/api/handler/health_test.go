package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLiveness(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	if err := NewHealthHandler().Liveness(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness_NoDependencies(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	h := NewHealthDependenciesHandler(nil)
	if err := h.Readiness(e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness_Degraded(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	h := NewHealthDependenciesHandler(map[string]Pinger{
		"redis": PingFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
	})
	if err := h.Readiness(e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "degraded" || resp.Dependencies["redis"].Error != "connection refused" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
