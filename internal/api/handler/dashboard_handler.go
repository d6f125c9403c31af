package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manicuristapro/salon-system/internal/core/calendar"
	"github.com/manicuristapro/salon-system/internal/core/ports"
	"github.com/manicuristapro/salon-system/internal/core/stats"
)

// DashboardHandler serves the read-only dashboard and calendar views.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Overview handles GET /v1/dashboard.
//
// @Summary      Revenue, status distribution, birthdays and low stock
// @Tags         dashboard
// @Produce      json
// @Param        window  query     string  false  "day, week or month (default week)"
// @Param        date    query     string  false  "Reference date YYYY-MM-DD (default today)"
// @Success      200     {object}  ports.DashboardOverview
// @Failure      400     {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	window, err := stats.ParseWindow(c.QueryParam("window"))
	if err != nil {
		return err
	}
	ref, err := queryDate(c, "date")
	if err != nil {
		return err
	}
	out, err := h.service.Overview(c.Request().Context(), window, ref)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Week handles GET /v1/calendar/week.
//
// @Summary      Appointments bucketed by day for the Sunday-start week
// @Tags         calendar
// @Produce      json
// @Param        date  query     string  false  "Any date in the week, YYYY-MM-DD (default today)"
// @Success      200   {array}   calendar.DayBucket
// @Router       /v1/calendar/week [get]
func (h *DashboardHandler) Week(c echo.Context) error {
	ref, err := queryDate(c, "date")
	if err != nil {
		return err
	}
	days, err := h.service.Week(c.Request().Context(), ref)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, days)
}

// Upcoming handles GET /v1/calendar/upcoming.
//
// @Summary      Appointments dated today or later
// @Tags         calendar
// @Produce      json
// @Param        date  query     string  false  "Override today, YYYY-MM-DD"
// @Success      200   {array}   domain.Appointment
// @Router       /v1/calendar/upcoming [get]
func (h *DashboardHandler) Upcoming(c echo.Context) error {
	today, err := queryDate(c, "date")
	if err != nil {
		return err
	}
	apps, err := h.service.Upcoming(c.Request().Context(), today)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// History handles GET /v1/calendar/history.
//
// @Summary      Appointment history filtered by status
// @Tags         calendar
// @Produce      json
// @Param        status  query     string  false  "All, Pendiente, Confirmada, Completada or Cancelada (default Completada)"
// @Success      200     {array}   domain.Appointment
// @Failure      422     {object}  map[string]string
// @Router       /v1/calendar/history [get]
func (h *DashboardHandler) History(c echo.Context) error {
	filter := calendar.StatusFilter(c.QueryParam("status"))
	if filter == "" {
		filter = calendar.DefaultHistoryFilter
	}
	apps, err := h.service.History(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}
