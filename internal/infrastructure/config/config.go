package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,           default=8080"`
	Env      string `env:"ENV,            default=development"`
	LogLevel string `env:"LOG_LEVEL,      default=info"`
	Timezone string `env:"TIMEZONE,       default=Local"`
	SeedDemo bool   `env:"SEED_DEMO_DATA, default=true"`

	Redis    RedisConfig
	Gemini   GeminiConfig
	Birthday BirthdayConfig
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type GeminiConfig struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL,  default=gemini-2.5-flash"`
	Timeout time.Duration `env:"GENAI_TIMEOUT, default=30s"`
}

type BirthdayConfig struct {
	Cron string `env:"BIRTHDAY_DIGEST_CRON, default=0 9 * * *"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether logs should be human-readable.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Location resolves Timezone; "Local" or an empty value means the host zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
