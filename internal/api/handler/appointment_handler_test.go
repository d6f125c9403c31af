package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/ports"
)

type stubAppointmentService struct {
	createFn func(ctx context.Context, draft ports.AppointmentDraft) (domain.Appointment, error)
	updateFn func(ctx context.Context, id int64, patch ports.AppointmentDraft) (domain.Appointment, error)
	deleteFn func(ctx context.Context, id int64) error
	importFn func(ctx context.Context, rows []ports.ImportRow) (*ports.ImportResult, error)
	listFn   func(ctx context.Context) ([]domain.Appointment, error)
	getFn    func(ctx context.Context, id int64) (domain.Appointment, error)
}

func (s *stubAppointmentService) Create(ctx context.Context, d ports.AppointmentDraft) (domain.Appointment, error) {
	return s.createFn(ctx, d)
}

func (s *stubAppointmentService) Update(ctx context.Context, id int64, d ports.AppointmentDraft) (domain.Appointment, error) {
	return s.updateFn(ctx, id, d)
}

func (s *stubAppointmentService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubAppointmentService) BulkImport(ctx context.Context, rows []ports.ImportRow) (*ports.ImportResult, error) {
	return s.importFn(ctx, rows)
}

func (s *stubAppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.listFn(ctx)
}

func (s *stubAppointmentService) Get(ctx context.Context, id int64) (domain.Appointment, error) {
	return s.getFn(ctx, id)
}

func (s *stubAppointmentService) ServiceOptions(ctx context.Context) ([]string, error) {
	return []string{"Acrílicas", "Tradicional"}, nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func sampleAppointment(id int64) domain.Appointment {
	return domain.Appointment{
		ID:         id,
		ClientName: "Ana García",
		Services:   []string{"Tradicional"},
		Date:       domain.NewDate(2024, 5, 10),
		Time:       domain.MustClock(10, 0),
		Status:     domain.StatusPending,
	}
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

func TestAppointmentHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAppointmentService{
		createFn: func(ctx context.Context, d ports.AppointmentDraft) (domain.Appointment, error) {
			if d.ClientName != "Ana García" || len(d.Services) != 1 || d.Time != "10:00" {
				t.Fatalf("unexpected draft: %+v", d)
			}
			return sampleAppointment(7), nil
		},
	}
	h := NewAppointmentHandler(stub)

	body := `{"clientName":"Ana García","services":["Tradicional"],"date":"2024-05-10","time":"10:00","status":"Pendiente"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/appointments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["date"] != "2024-05-10" || resp["time"] != "10:00" || resp["status"] != "Pendiente" {
		t.Errorf("unexpected payload: %v", resp)
	}
}

func TestAppointmentHandler_Create_ServiceErrorIsReturned(t *testing.T) {
	e := newTestEcho()
	stub := &stubAppointmentService{
		createFn: func(ctx context.Context, d ports.AppointmentDraft) (domain.Appointment, error) {
			return domain.Appointment{}, domain.ErrValidation
		},
	}
	h := NewAppointmentHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/appointments", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	if err := h.Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestAppointmentHandler_Create_MalformedBody(t *testing.T) {
	e := newTestEcho()
	h := NewAppointmentHandler(&stubAppointmentService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/appointments", strings.NewReader(`{"clientName":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var he *echo.HTTPError
	if err := h.Create(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 HTTPError, got %v", err)
	}
}

func TestAppointmentHandler_Get_InvalidID(t *testing.T) {
	e := newTestEcho()
	h := NewAppointmentHandler(&stubAppointmentService{})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	var he *echo.HTTPError
	if err := h.Get(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 HTTPError, got %v", err)
	}
}

func TestAppointmentHandler_Update_PassesID(t *testing.T) {
	e := newTestEcho()
	stub := &stubAppointmentService{
		updateFn: func(ctx context.Context, id int64, d ports.AppointmentDraft) (domain.Appointment, error) {
			if id != 42 {
				t.Fatalf("expected id 42, got %d", id)
			}
			return sampleAppointment(id), nil
		},
	}
	h := NewAppointmentHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"clientName":"Ana"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestAppointmentHandler_Delete(t *testing.T) {
	e := newTestEcho()
	var deleted int64
	stub := &stubAppointmentService{
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	h := NewAppointmentHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != 9 || rec.Code != http.StatusOK {
		t.Errorf("expected delete of 9 with 200, got %d / %d", deleted, rec.Code)
	}
}

func TestAppointmentHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubAppointmentService{
		listFn: func(ctx context.Context) ([]domain.Appointment, error) {
			return []domain.Appointment{sampleAppointment(1), sampleAppointment(2)}, nil
		},
	}
	h := NewAppointmentHandler(stub)

	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || len(resp) != 2 {
		t.Fatalf("expected two appointments, got %s (%v)", rec.Body.String(), err)
	}
}

func TestAppointmentHandler_ServiceOptions(t *testing.T) {
	e := newTestEcho()
	h := NewAppointmentHandler(&stubAppointmentService{})

	rec := httptest.NewRecorder()
	if err := h.ServiceOptions(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Acrílicas") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

// ---------------------------------------------------------------------------
// Import
// ---------------------------------------------------------------------------

func TestAppointmentHandler_Import_JSONKeepsNumbers(t *testing.T) {
	e := newTestEcho()
	stub := &stubAppointmentService{
		importFn: func(ctx context.Context, rows []ports.ImportRow) (*ports.ImportResult, error) {
			if len(rows) != 2 {
				t.Fatalf("expected 2 rows, got %d", len(rows))
			}
			if _, ok := rows[0]["date"].(json.Number); !ok {
				t.Fatalf("expected serial date as json.Number, got %T", rows[0]["date"])
			}
			return &ports.ImportResult{BatchID: "b1", Received: 2, Accepted: 1, Dropped: 1, Rejected: []ports.RowError{}}, nil
		},
	}
	h := NewAppointmentHandler(stub)

	body := `[{"clientName":"Ana","service":"Tradicional","date":45432,"time":"10:00","status":"Completada"},
	          {"clientName":"","service":"Tradicional","date":"2024-05-10"}]`
	req := httptest.NewRequest(http.MethodPost, "/v1/appointments/import", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Import(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp ports.ImportResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Accepted != 1 || resp.Dropped != 1 {
		t.Errorf("unexpected result: %+v", resp)
	}
}

func TestAppointmentHandler_Import_JSONNotAnArray(t *testing.T) {
	e := newTestEcho()
	h := NewAppointmentHandler(&stubAppointmentService{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"clientName":"Ana"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	if err := h.Import(e.NewContext(req, httptest.NewRecorder())); !errors.Is(err, domain.ErrImportFormat) {
		t.Errorf("expected ErrImportFormat, got %v", err)
	}
}

func TestAppointmentHandler_Import_Multipart(t *testing.T) {
	e := newTestEcho()
	stub := &stubAppointmentService{
		importFn: func(ctx context.Context, rows []ports.ImportRow) (*ports.ImportResult, error) {
			return &ports.ImportResult{Received: len(rows), Accepted: len(rows), Rejected: []ports.RowError{}}, nil
		},
	}
	h := NewAppointmentHandler(stub)
	h.readRows = func(r io.Reader) ([]ports.ImportRow, error) {
		b, _ := io.ReadAll(r)
		if string(b) != "workbook-bytes" {
			t.Fatalf("unexpected file content %q", b)
		}
		return []ports.ImportRow{{"clientName": "Ana"}}, nil
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "citas.xlsx")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = fw.Write([]byte("workbook-bytes"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()

	if err := h.Import(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestAppointmentHandler_Import_MultipartWithoutFile(t *testing.T) {
	e := newTestEcho()
	h := NewAppointmentHandler(&stubAppointmentService{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("note", "no file here")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())

	if err := h.Import(e.NewContext(req, httptest.NewRecorder())); !errors.Is(err, domain.ErrImportFormat) {
		t.Errorf("expected ErrImportFormat, got %v", err)
	}
}

func TestAppointmentHandler_Import_UnsupportedMediaType(t *testing.T) {
	e := newTestEcho()
	h := NewAppointmentHandler(&stubAppointmentService{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a,b,c"))
	req.Header.Set(echo.HeaderContentType, "text/csv")

	var he *echo.HTTPError
	if err := h.Import(e.NewContext(req, httptest.NewRecorder())); !errors.As(err, &he) || he.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415 HTTPError, got %v", err)
	}
}
