// Package httpgateway implements availability.Gateway over the remote
// REST API.
package httpgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mihaimyh/goavail/pkg/availability"
)

const (
	availabilityEndpoint = "/model-availability"
	resetEndpoint        = "/model-availability/{model_id}/reset"
	defaultHTTPTimeout   = 10 * time.Second
	maxErrorBody         = 4 << 10
	maxResponseBody      = 8 << 20
	tracerName           = "github.com/mihaimyh/goavail/pkg/availability/httpgateway"

	opList  = "list"
	opReset = "reset"
)

// Client talks to the availability service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    availability.Metrics
	logger     availability.Logger
	tracer     trace.Tracer
}

var _ availability.Gateway = (*Client)(nil)

// New creates a gateway client.
func New(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultHTTPTimeout,
		}
	}

	apiKey := strings.TrimSpace(config.APIKey)
	if strings.HasPrefix(strings.ToLower(apiKey), "bearer ") {
		apiKey = strings.TrimSpace(apiKey[len("bearer "):])
	}

	metrics := config.Metrics
	if metrics == nil {
		metrics = &availability.NoopMetrics{}
	}
	logger := config.Logger
	if logger == nil {
		logger = &availability.NoopLogger{}
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		metrics:    metrics,
		logger:     logger,
		tracer:     tracer,
	}, nil
}

// ListUnavailable fetches every unavailable (model, client) record.
func (c *Client) ListUnavailable(ctx context.Context) (*availability.ListResponse, error) {
	ctx, span := c.tracer.Start(ctx, "availability.list", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	body, err := c.do(ctx, opList, http.MethodGet, c.baseURL+availabilityEndpoint, availabilityEndpoint, nil)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	var out availability.ListResponse
	if err := json.Unmarshal(body, &out); err != nil {
		err = &availability.TransportError{
			Op:  opList,
			Err: fmt.Errorf("%w: %w", availability.ErrInvalidResponse, err),
		}
		recordSpanError(span, err)
		return nil, err
	}
	if out.Models == nil {
		out.Models = []availability.UnavailableModel{}
	}
	for i, m := range out.Models {
		if m.ModelID == "" {
			err := &availability.TransportError{
				Op:  opList,
				Err: fmt.Errorf("%w: record %d has no model_id", availability.ErrInvalidResponse, i),
			}
			recordSpanError(span, err)
			return nil, err
		}
	}

	span.SetAttributes(attribute.Int("availability.count", len(out.Models)))
	return &out, nil
}

// ResetAvailability asks the service to make modelID available to clientID
// again. The response is advisory; whether the pair is gone is decided by
// the next ListUnavailable.
func (c *Client) ResetAvailability(ctx context.Context, modelID, clientID string) (*availability.ResetResponse, error) {
	if modelID == "" || clientID == "" {
		return nil, availability.ErrMissingIdentifier
	}

	ctx, span := c.tracer.Start(ctx, "availability.reset",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("availability.model_id", modelID),
			attribute.String("availability.client_id", clientID),
		),
	)
	defer span.End()

	payload, err := json.Marshal(availability.ResetRequest{ClientID: clientID})
	if err != nil {
		return nil, fmt.Errorf("marshal reset request: %w", err)
	}

	endpoint := fmt.Sprintf("%s%s/%s/reset", c.baseURL, availabilityEndpoint, url.PathEscape(modelID))
	body, err := c.do(ctx, opReset, http.MethodPost, endpoint, resetEndpoint, payload)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	out := &availability.ResetResponse{}
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		// The reset went through; an unreadable advisory body does not undo it.
		c.logger.Warn("Unreadable reset response",
			availability.Field{Key: "model_id", Value: modelID},
			availability.Field{Key: "error", Value: err},
		)
		return &availability.ResetResponse{}, nil
	}
	return out, nil
}

// do executes one request and returns the body of a 2xx response. Every
// other outcome becomes a *availability.TransportError.
func (c *Client) do(ctx context.Context, op, method, rawURL, label string, payload []byte) ([]byte, error) {
	var reqBody io.Reader = http.NoBody
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, &availability.TransportError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	c.metrics.RecordAPICallDuration(label, time.Since(start))
	if err != nil {
		c.metrics.RecordAPICall(label, "error")
		c.logger.Debug("Availability request failed",
			availability.Field{Key: "op", Value: op},
			availability.Field{Key: "error", Value: err},
		)
		return nil, &availability.TransportError{Op: op, Err: err}
	}
	defer res.Body.Close()

	c.metrics.RecordAPICall(label, strconv.Itoa(res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		c.logger.Warn("Availability service returned an error",
			availability.Field{Key: "op", Value: op},
			availability.Field{Key: "status", Value: res.StatusCode},
		)
		return nil, &availability.TransportError{
			Op:         op,
			StatusCode: res.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBody))
	if err != nil {
		return nil, &availability.TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}
	return body, nil
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
