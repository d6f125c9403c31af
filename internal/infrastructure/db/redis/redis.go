package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/manicuristapro/salon-system/internal/core/ports"
	"github.com/manicuristapro/salon-system/internal/infrastructure/db/memory"
)

const defaultTimeout = 3 * time.Second

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// OpenPreferences returns a Redis-backed preference store when cfg.Addr is set
// and reachable, and an in-memory one otherwise. The client is nil in the
// fallback case.
func OpenPreferences(ctx context.Context, cfg Config, log zerolog.Logger) (ports.PreferenceStore, *redis.Client) {
	if cfg.Addr == "" {
		log.Info().Msg("redis not configured, preferences kept in memory")
		return memory.NewPreferenceStore(), nil
	}
	client, err := Connect(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("redis unreachable, preferences kept in memory")
		return memory.NewPreferenceStore(), nil
	}
	log.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("redis connected")
	return NewPreferenceStore(client), client
}
