package availability

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Config holds the collaborators of a Controller.
type Config struct {
	// Notifier receives every user-visible message (required).
	Notifier Notifier

	// Translator localizes notification text (default: DefaultCatalog).
	Translator Translator

	// Metrics is used for tracking refreshes and resets (default: NoopMetrics)
	Metrics Metrics

	// Logger is used for structured logging (default: NoopLogger)
	Logger Logger
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Notifier == nil {
		return ErrNotifierRequired
	}
	return nil
}

// View names which of the mutually exclusive panels a renderer should show.
type View string

const (
	ViewLoading View = "loading"
	ViewFailed  View = "failed"
	ViewEmpty   View = "empty"
	ViewTable   View = "table"
)

// State is a point-in-time copy of the controller state.
type State struct {
	Records   []UnavailableModel
	Loading   bool
	Resetting KeySet

	// Stale is true when the latest refresh failed; Records then holds the
	// last list that was fetched successfully.
	Stale       bool
	LastError   error
	RefreshedAt time.Time
}

// View classifies the state. A failed refresh with nothing to show is
// reported as ViewFailed rather than as an empty result.
func (s State) View() View {
	switch {
	case s.Loading:
		return ViewLoading
	case len(s.Records) == 0 && s.Stale:
		return ViewFailed
	case len(s.Records) == 0:
		return ViewEmpty
	default:
		return ViewTable
	}
}

// Controller holds the list of unavailable models and the set of pairs
// undergoing a reset, and reconciles both against the gateway.
//
// All state lives behind mu. The lock is held only while reading and
// writing fields, never across a gateway call.
type Controller struct {
	gateway    Gateway
	notifier   Notifier
	translator Translator
	metrics    Metrics
	logger     Logger

	mu          sync.Mutex
	records     []UnavailableModel
	loading     int
	resetting   KeySet
	lastErr     error
	refreshedAt time.Time
}

// NewController creates a controller. Call Start to perform the initial fetch.
func NewController(gateway Gateway, config Config) (*Controller, error) {
	if gateway == nil {
		return nil, ErrGatewayRequired
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	translator := config.Translator
	if translator == nil {
		translator = DefaultCatalog()
	}
	metrics := config.Metrics
	if metrics == nil {
		metrics = &NoopMetrics{}
	}
	logger := config.Logger
	if logger == nil {
		logger = &NoopLogger{}
	}

	return &Controller{
		gateway:    gateway,
		notifier:   config.Notifier,
		translator: translator,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

// Start performs the initial refresh.
func (c *Controller) Start(ctx context.Context) error {
	return c.Refresh(ctx)
}

// Refresh refetches the list and replaces the records wholesale. On failure
// the previous records are kept, an error notification is emitted, and the
// cause is returned.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.loading++
	c.mu.Unlock()

	start := time.Now()
	resp, err := c.gateway.ListUnavailable(ctx)
	c.metrics.RecordRefresh(err == nil, time.Since(start))

	c.mu.Lock()
	c.loading--
	if err != nil {
		c.lastErr = err
		c.mu.Unlock()

		c.logger.Error("Failed to fetch unavailable models", Field{"error", err})
		c.notifier.Notify(c.translator.T(MsgFetchError, nil), SeverityError)
		return err
	}
	if resp == nil {
		resp = &ListResponse{}
	}
	records := make([]UnavailableModel, len(resp.Models))
	copy(records, resp.Models)
	c.records = records
	c.lastErr = nil
	c.refreshedAt = time.Now().UTC()
	c.mu.Unlock()

	c.metrics.SetUnavailableModels(len(records))
	c.logger.Debug("Fetched unavailable models", Field{"count", len(records)})
	return nil
}

// Reset clears the unavailability of one (model, client) pair and refetches
// the list once the remote call has succeeded. The pair is marked in flight
// for the whole call and unmarked on every exit path.
//
// A reset for a pair that is already in flight returns ErrResetInFlight
// without contacting the gateway. The returned error is the gateway's; a
// failing refetch after a successful reset is reported by Refresh itself.
func (c *Controller) Reset(ctx context.Context, record UnavailableModel) error {
	key := record.Key()
	if !c.acquire(key) {
		return ErrResetInFlight
	}
	defer c.release(key)

	start := time.Now()
	_, err := c.gateway.ResetAvailability(ctx, record.ModelID, record.ClientID)
	c.metrics.RecordReset(err == nil, time.Since(start))
	if err != nil {
		c.logger.Error("Failed to reset model availability",
			Field{"model_id", record.ModelID},
			Field{"client_id", record.ClientID},
			Field{"error", err},
		)
		c.notifier.Notify(c.translator.T(MsgResetError, nil), SeverityError)
		return err
	}

	// Refresh notifies on its own failure; the reset itself succeeded.
	_ = c.Refresh(ctx)

	c.logger.Info("Model availability reset",
		Field{"model_id", record.ModelID},
		Field{"client_id", record.ClientID},
	)
	c.notifier.Notify(
		c.translator.T(MsgResetSuccess, map[string]string{"model": DisplayName(record)}),
		SeveritySuccess,
	)
	return nil
}

// acquire adds key to the in-flight set unless it is already there.
func (c *Controller) acquire(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.resetting.Has(key) {
		return false
	}
	c.resetting = c.resetting.With(key)
	c.metrics.SetInFlightResets(c.resetting.Len())
	return true
}

func (c *Controller) release(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetting = c.resetting.Without(key)
	c.metrics.SetInFlightResets(c.resetting.Len())
}

// IsResetting reports whether a reset for key has not settled yet.
func (c *Controller) IsResetting(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resetting.Has(key)
}

// Lookup returns the current record for key, if any.
func (c *Controller) Lookup(key Key) (UnavailableModel, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.records {
		if r.Key() == key {
			return r, true
		}
	}
	return UnavailableModel{}, false
}

// Records returns a copy of the current records in server order.
func (c *Controller) Records() []UnavailableModel {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]UnavailableModel, len(c.records))
	copy(out, c.records)
	return out
}

// Snapshot returns a copy of the whole state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := make([]UnavailableModel, len(c.records))
	copy(records, c.records)
	return State{
		Records:     records,
		Loading:     c.loading > 0,
		Resetting:   c.resetting,
		Stale:       c.lastErr != nil,
		LastError:   c.lastErr,
		RefreshedAt: c.refreshedAt,
	}
}

// IsTransport reports whether err came from the transport layer.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
