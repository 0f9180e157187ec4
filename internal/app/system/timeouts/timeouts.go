// Package timeouts holds the deadlines handlers put on database work.
//
// Values start at the defaults below and are replaced once at startup by
// Configure, from the timeout_* config keys. Guidelines:
//   - Ping: health checks
//   - Short: single-document reads and writes
//   - Medium: feed builds and dashboard reads (several collections)
//   - Long: deletes that also clean up related signups
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
)

var (
	mu     sync.RWMutex
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	long   = DefaultLong
)

func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}

// Config holds timeout overrides. Zero values keep the current setting.
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// Configure applies non-zero overrides. Call it before handlers are built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	set := func(dst *time.Duration, v time.Duration) {
		if v > 0 {
			*dst = v
		}
	}
	set(&ping, cfg.Ping)
	set(&short, cfg.Short)
	set(&medium, cfg.Medium)
	set(&long, cfg.Long)
}

// Reset restores the defaults. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping, short, medium, long = DefaultPing, DefaultShort, DefaultMedium, DefaultLong
}

// Current returns the active configuration, for startup logging.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Short: short, Medium: medium, Long: long}
}

// WithTimeout is context.WithTimeout with a cancel func that logs a warning
// when the deadline was what ended the operation.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "build activity feed")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
