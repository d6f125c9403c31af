package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/manicuristapro/salon-system/docs"
	"github.com/manicuristapro/salon-system/internal/api/handler"
	"github.com/manicuristapro/salon-system/internal/core/ports"
)

// Dependencies are the services the HTTP layer is wired to.
type Dependencies struct {
	Appointments ports.AppointmentService
	Clients      ports.ClientService
	Inventory    ports.InventoryService
	Settings     ports.SettingsService
	Dashboard    ports.DashboardService
	Marketing    ports.MarketingService
	Digests      handler.BirthdayDigests
	// Ready lists the external dependencies checked by /health/ready.
	Ready map[string]handler.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddleware("salon"))

	// --- Health probes and tooling ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Ready)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Appointments ---
	appointments := handler.NewAppointmentHandler(deps.Appointments)
	v1.GET("/appointments", appointments.List)
	v1.POST("/appointments", appointments.Create)
	v1.POST("/appointments/import", appointments.Import)
	v1.GET("/appointments/:id", appointments.Get)
	v1.PUT("/appointments/:id", appointments.Update)
	v1.DELETE("/appointments/:id", appointments.Delete)

	// --- Calendar and dashboard ---
	dashboard := handler.NewDashboardHandler(deps.Dashboard)
	v1.GET("/calendar/week", dashboard.Week)
	v1.GET("/calendar/upcoming", dashboard.Upcoming)
	v1.GET("/calendar/history", dashboard.History)
	v1.GET("/dashboard", dashboard.Overview)

	// --- Clients ---
	clients := handler.NewClientHandler(deps.Clients)
	v1.GET("/clients", clients.List)
	v1.POST("/clients", clients.Create)
	v1.GET("/clients/:id", clients.Get)
	v1.PUT("/clients/:id", clients.Update)
	v1.DELETE("/clients/:id", clients.Delete)

	// --- Inventory ---
	products := handler.NewProductHandler(deps.Inventory)
	v1.GET("/products", products.List)
	v1.POST("/products", products.Create)
	v1.GET("/products/low-stock", products.LowStock)
	v1.PUT("/products/:id", products.Update)
	v1.DELETE("/products/:id", products.Delete)
	v1.POST("/products/:id/stock", products.AdjustStock)

	// --- Settings ---
	settings := handler.NewSettingsHandler(deps.Settings)
	v1.GET("/settings/profile", settings.Profile)
	v1.PUT("/settings/profile", settings.UpdateProfile)
	v1.GET("/settings/prices", settings.Prices)
	v1.PUT("/settings/prices", settings.UpdatePrices)
	v1.GET("/settings/services", appointments.ServiceOptions)
	v1.GET("/settings/theme", settings.Theme)
	v1.PUT("/settings/theme", settings.SetTheme)

	// --- Marketing ---
	marketing := handler.NewMarketingHandler(deps.Marketing, deps.Digests)
	v1.POST("/marketing/messages", marketing.Message)
	v1.POST("/marketing/assistant", marketing.Assistant)
	v1.GET("/marketing/birthday-digest", marketing.BirthdayDigest)
	v1.POST("/marketing/birthday-digest", marketing.RunBirthdayDigest)

	return e
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
