package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/ports"
	"github.com/manicuristapro/salon-system/internal/infrastructure/spreadsheet"
	"github.com/manicuristapro/salon-system/internal/pkg/metrics"
)

// maxUploadBytes caps imported files and JSON bodies.
const maxUploadBytes = 10 << 20

// RowReader turns an uploaded workbook into import rows.
type RowReader func(r io.Reader) ([]ports.ImportRow, error)

// AppointmentHandler handles HTTP requests for appointment operations.
type AppointmentHandler struct {
	service  ports.AppointmentService
	readRows RowReader
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service, readRows: spreadsheet.ReadRows}
}

type deleteResponse struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// List handles GET /v1/appointments.
//
// @Summary      List appointments in chronological order
// @Tags         appointments
// @Produce      json
// @Success      200  {array}   domain.Appointment
// @Failure      500  {object}  map[string]string
// @Router       /v1/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	apps, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// Get handles GET /v1/appointments/:id.
//
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Param        id   path      int  true  "Appointment id"
// @Success      200  {object}  domain.Appointment
// @Failure      404  {object}  map[string]string
// @Router       /v1/appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	a, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Create handles POST /v1/appointments.
//
// @Summary      Create an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      ports.AppointmentDraft  true  "Appointment fields"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req ports.AppointmentDraft
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	a, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	metrics.AppointmentMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, a)
}

// Update handles PUT /v1/appointments/:id.
//
// @Summary      Replace the fields of an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Appointment id"
// @Param        body  body      ports.AppointmentDraft  true  "Appointment fields"
// @Success      200   {object}  domain.Appointment
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req ports.AppointmentDraft
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	a, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	metrics.AppointmentMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, a)
}

// Delete handles DELETE /v1/appointments/:id. Unknown ids succeed as well.
//
// @Summary      Delete an appointment
// @Tags         appointments
// @Produce      json
// @Param        id   path      int  true  "Appointment id"
// @Success      200  {object}  deleteResponse
// @Router       /v1/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.AppointmentMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, deleteResponse{ID: id, Deleted: true})
}

// Import handles POST /v1/appointments/import. The body is either a multipart
// form with an xlsx "file" field or a JSON array of row objects.
//
// @Summary      Bulk import appointments
// @Tags         appointments
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        file  formData  file  false  "Workbook (.xlsx); first sheet, header row with clientName, service, date, time, status"
// @Success      201   {object}  ports.ImportResult
// @Failure      400   {object}  map[string]string
// @Router       /v1/appointments/import [post]
func (h *AppointmentHandler) Import(c echo.Context) error {
	rows, err := h.importRows(c)
	if err != nil {
		metrics.ImportsFailedTotal.Inc()
		return err
	}

	res, err := h.service.BulkImport(c.Request().Context(), rows)
	if err != nil {
		metrics.ImportsFailedTotal.Inc()
		return err
	}

	metrics.ImportRowsTotal.WithLabelValues("accepted").Add(float64(res.Accepted))
	metrics.ImportRowsTotal.WithLabelValues("dropped").Add(float64(res.Dropped))
	metrics.ImportRowsTotal.WithLabelValues("rejected").Add(float64(len(res.Rejected)))
	return c.JSON(http.StatusCreated, res)
}

// ServiceOptions handles GET /v1/settings/services.
//
// @Summary      List the bookable services
// @Tags         settings
// @Produce      json
// @Success      200  {array}  string
// @Router       /v1/settings/services [get]
func (h *AppointmentHandler) ServiceOptions(c echo.Context) error {
	opts, err := h.service.ServiceOptions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opts)
}

func (h *AppointmentHandler) importRows(c echo.Context) ([]ports.ImportRow, error) {
	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response(), req.Body, maxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
	switch mediaType {
	case echo.MIMEMultipartForm:
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("%w: multipart field \"file\" is required", domain.ErrImportFormat)
		}
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
		}
		defer f.Close()
		return h.readRows(f)

	case echo.MIMEApplicationJSON:
		dec := json.NewDecoder(req.Body)
		dec.UseNumber()
		var rows []ports.ImportRow
		if err := dec.Decode(&rows); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "upload too large")
			}
			return nil, fmt.Errorf("%w: body must be a JSON array of row objects", domain.ErrImportFormat)
		}
		return rows, nil
	}
	return nil, echo.NewHTTPError(http.StatusUnsupportedMediaType, "use multipart/form-data with a file field or a JSON array")
}
