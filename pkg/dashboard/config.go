package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/mihaimyh/goavail/pkg/availability"
)

const (
	defaultRateLimit       = 30
	defaultRateLimitWindow = time.Minute
	defaultAutoRefresh     = 2 * time.Second
)

// Console is the part of availability.Controller the dashboard drives.
type Console interface {
	Snapshot() availability.State
	Refresh(ctx context.Context) error
	Reset(ctx context.Context, record availability.UnavailableModel) error
	Lookup(key availability.Key) (availability.UnavailableModel, bool)
	IsResetting(key availability.Key) bool
}

// Config holds configuration for the dashboard handler
type Config struct {
	// Console is the availability controller (required)
	Console Console

	// Flash supplies the notifications shown on the page. It should be the
	// same notifier the controller was built with. Optional.
	Flash *FlashNotifier

	// Translator localizes page text (default: availability.DefaultCatalog)
	Translator availability.Translator

	// Display controls timestamp rendering
	Display availability.DisplayOptions

	// Logger is used for structured logging (default: NoopLogger)
	Logger availability.Logger

	// RateLimit caps action requests per client IP per RateLimitWindow
	// (defaults: 30 per minute)
	RateLimit       int
	RateLimitWindow time.Duration

	// AutoRefresh is the page reload interval while a fetch or reset is
	// pending (default: 2s)
	AutoRefresh time.Duration
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Console == nil {
		return fmt.Errorf("console is required")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}
	return nil
}
