package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/ports"
	"github.com/manicuristapro/salon-system/internal/infrastructure/scheduler"
)

type stubMarketingService struct {
	generateFn func(ctx context.Context, req ports.MessageRequest) (*ports.GeneratedText, error)
	askFn      func(ctx context.Context, history []ports.ChatMessage) (*ports.GeneratedText, error)
}

func (s *stubMarketingService) GenerateMessage(ctx context.Context, req ports.MessageRequest) (*ports.GeneratedText, error) {
	return s.generateFn(ctx, req)
}

func (s *stubMarketingService) Ask(ctx context.Context, history []ports.ChatMessage) (*ports.GeneratedText, error) {
	return s.askFn(ctx, history)
}

type stubDigests struct {
	latest *scheduler.Digest
	runs   int
}

func (s *stubDigests) Latest() *scheduler.Digest { return s.latest }

func (s *stubDigests) RunOnce(ctx context.Context) (*scheduler.Digest, error) {
	s.runs++
	s.latest = &scheduler.Digest{WeekStart: domain.NewDate(2024, 5, 5), Entries: []scheduler.DigestEntry{}}
	return s.latest, nil
}

func TestMarketingHandler_Message(t *testing.T) {
	e := newTestEcho()
	h := NewMarketingHandler(&stubMarketingService{
		generateFn: func(ctx context.Context, req ports.MessageRequest) (*ports.GeneratedText, error) {
			if req.Kind != ports.MessageReminder || req.ClientID != 4 {
				t.Fatalf("unexpected request: %+v", req)
			}
			return &ports.GeneratedText{Text: "¡Hola Ana!"}, nil
		},
	}, &stubDigests{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"kind":"reminder","clientId":4}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Message(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp ports.GeneratedText
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Text != "¡Hola Ana!" || resp.Fallback {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestMarketingHandler_Message_NoUpcoming(t *testing.T) {
	e := newTestEcho()
	h := NewMarketingHandler(&stubMarketingService{
		generateFn: func(ctx context.Context, req ports.MessageRequest) (*ports.GeneratedText, error) {
			return nil, domain.ErrNoUpcomingAppointment
		},
	}, &stubDigests{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"kind":"reminder","clientId":4}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	if err := h.Message(e.NewContext(req, httptest.NewRecorder())); !errors.Is(err, domain.ErrNoUpcomingAppointment) {
		t.Errorf("expected ErrNoUpcomingAppointment, got %v", err)
	}
}

func TestMarketingHandler_Assistant_PassesHistory(t *testing.T) {
	e := newTestEcho()
	h := NewMarketingHandler(&stubMarketingService{
		askFn: func(ctx context.Context, history []ports.ChatMessage) (*ports.GeneratedText, error) {
			if len(history) != 2 || history[1].Sender != ports.SenderUser {
				t.Fatalf("unexpected history: %+v", history)
			}
			return &ports.GeneratedText{Text: "Tienes 3 citas hoy."}, nil
		},
	}, &stubDigests{})

	body := `{"history":[{"sender":"assistant","text":"Hola"},{"sender":"user","text":"¿Cuántas citas tengo hoy?"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Assistant(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "3 citas") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestMarketingHandler_BirthdayDigest_RunsWhenEmpty(t *testing.T) {
	e := newTestEcho()
	digests := &stubDigests{}
	h := NewMarketingHandler(&stubMarketingService{}, digests)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		if err := h.BirthdayDigest(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if !strings.Contains(rec.Body.String(), `"weekStart":"2024-05-05"`) {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	}
	if digests.runs != 1 {
		t.Errorf("expected a single inline run, got %d", digests.runs)
	}
}
