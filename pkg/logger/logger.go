// Package logger provides the process-wide structured logger backed by zerolog.
//
// Initialise once at startup with Init, then retrieve anywhere with Get or
// derive a tagged child with Component.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Defaults to "info" when empty or unrecognised.
	Level string
	// Pretty enables coloured console output for local development.
	Pretty bool
	// Service is attached to every entry as the "service" field when set.
	Service string
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	mu          sync.RWMutex
	instance    zerolog.Logger
	initialized bool
)

// Init builds the process logger. Only the first call has any effect until Reset.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return instance
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	lvl := ParseLevel(opts.Level)
	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	instance = ctx.Logger()
	initialized = true
	return instance
}

// Get returns the process logger. Panics if Init has not been called yet.
func Get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !initialized {
		panic("logger: Get() called before Init()")
	}
	return instance
}

// Component returns a child logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset discards the logger so that the next Init call rebuilds it. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = zerolog.Logger{}
	initialized = false
}

// ParseLevel converts a level name to a zerolog.Level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
