package httpgateway

import (
	"fmt"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel/trace"

	"github.com/mihaimyh/goavail/pkg/availability"
)

// Config holds configuration for the HTTP availability gateway
type Config struct {
	// BaseURL is the API root the availability endpoints hang off (required),
	// e.g. "https://admin.example.com/api".
	BaseURL string

	// APIKey is sent as a Bearer token when set. A "Bearer " prefix is stripped.
	APIKey string

	// HTTPClient is an optional HTTP client for API calls.
	// If nil, a default client with 10s timeout will be used.
	HTTPClient *http.Client

	// Metrics records API call counts and latency (default: NoopMetrics)
	Metrics availability.Metrics

	// Logger is used for structured logging (default: NoopLogger)
	Logger availability.Logger

	// Tracer starts one client span per call (default: the global otel tracer)
	Tracer trace.Tracer
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL scheme %q", u.Scheme)
	}
	return nil
}
