package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/manicuristapro/salon-system/internal/api"
	"github.com/manicuristapro/salon-system/internal/api/handler"
	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/ports"
	"github.com/manicuristapro/salon-system/internal/core/service"
	"github.com/manicuristapro/salon-system/internal/infrastructure/config"
	"github.com/manicuristapro/salon-system/internal/infrastructure/db/memory"
	"github.com/manicuristapro/salon-system/internal/infrastructure/db/redis"
	"github.com/manicuristapro/salon-system/internal/infrastructure/gemini"
	"github.com/manicuristapro/salon-system/internal/infrastructure/scheduler"
	"github.com/manicuristapro/salon-system/pkg/logger"
)

// @title        Manicurista Pro Salon API
// @version      1.0
// @description  Appointments, clients, inventory, dashboard and marketing for a single nail salon.
// @BasePath     /
func main() {
	// A missing .env is fine; the real environment still applies.
	envErr := godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Level: "error"})
		fatalLog := logger.Get()
		fatalLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "salon-api",
	})
	if envErr != nil {
		log.Debug().Msg("no .env file found")
	}
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting salon API server")

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid timezone")
	}
	today := func() domain.Date { return domain.DateOf(time.Now().In(loc)) }

	// --- State ---
	state := memory.NewState()
	if cfg.SeedDemo {
		err = memory.SeedDemo(ctx, state, today())
	} else {
		err = memory.SeedDefaults(ctx, state)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed state")
	}

	prefs, rdb := redis.OpenPreferences(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger.Component("redis"))

	// A nil interface, not a typed nil pointer, signals "no API key".
	var gen ports.TextGenerator
	if client, err := gemini.New(ctx, gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	}); err != nil {
		log.Warn().Err(err).Msg("text generation disabled")
	} else {
		gen = client
	}

	// --- Services ---
	ids := service.NewIDSource(time.Now)
	appointments := service.NewAppointmentService(state.Appointments, state.Settings, ids, logger.Component("appointments"))
	clients := service.NewClientService(state.Clients, ids, logger.Component("clients"))
	inventory := service.NewInventoryService(state.Products, ids, logger.Component("inventory"))
	settings := service.NewSettingsService(state.Settings, prefs, logger.Component("settings"))
	dashboard := service.NewDashboardService(state.Appointments, state.Clients, state.Products, state.Settings,
		time.Now, loc, logger.Component("dashboard"))
	marketing := service.NewMarketingService(gen, state.Appointments, state.Clients, state.Products, state.Settings,
		today, logger.Component("marketing"))

	digests := scheduler.NewBirthdayDigest(clients, marketing, today, logger.Component("birthdays"))
	if err := digests.Start(cfg.Birthday.Cron, loc); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule birthday digest")
	}

	e := api.NewRouter(api.Dependencies{
		Appointments: appointments,
		Clients:      clients,
		Inventory:    inventory,
		Settings:     settings,
		Dashboard:    dashboard,
		Marketing:    marketing,
		Digests:      digests,
		Ready:        readiness(rdb),
	}, logger.Component("http"))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	digests.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	closeRedis(rdb, log)
	log.Info().Msg("server exited")
}

func readiness(rdb *goredis.Client) map[string]handler.Pinger {
	deps := map[string]handler.Pinger{}
	if rdb != nil {
		deps["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}
	return deps
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if rdb == nil {
		return
	}
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("redis close failed")
	}
}
