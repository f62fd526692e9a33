// Package prommetrics implements availability.Metrics with Prometheus collectors.
package prommetrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements availability.Metrics using Prometheus.
type Metrics struct {
	refreshTotal      *prometheus.CounterVec
	refreshDuration   *prometheus.HistogramVec
	resetTotal        *prometheus.CounterVec
	resetDuration     *prometheus.HistogramVec
	resetsInFlight    prometheus.Gauge
	unavailableModels prometheus.Gauge
	apiCallsTotal     *prometheus.CounterVec
	apiCallDuration   *prometheus.HistogramVec
}

// NewMetrics creates a new Prometheus metrics implementation.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		refreshTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_total",
			Help:      "Total number of unavailable-model list refreshes.",
		}, []string{"success"}),

		refreshDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "refresh_duration_seconds",
			Help:      "Latency of unavailable-model list refreshes.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"success"}),

		resetTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reset_total",
			Help:      "Total number of availability reset attempts.",
		}, []string{"success"}),

		resetDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reset_duration_seconds",
			Help:      "Latency of availability reset calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"success"}),

		resetsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "resets_in_flight",
			Help:      "Number of (model, client) pairs with a reset that has not settled.",
		}),

		unavailableModels: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unavailable_models",
			Help:      "Number of unavailable (model, client) records after the last successful refresh.",
		}),

		apiCallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_calls_total",
			Help:      "Total number of calls to the availability service.",
		}, []string{"endpoint", "status"}),

		apiCallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_call_duration_seconds",
			Help:      "Latency of calls to the availability service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) RecordRefresh(success bool, duration time.Duration) {
	label := strconv.FormatBool(success)
	m.refreshTotal.WithLabelValues(label).Inc()
	m.refreshDuration.WithLabelValues(label).Observe(duration.Seconds())
}

func (m *Metrics) RecordReset(success bool, duration time.Duration) {
	label := strconv.FormatBool(success)
	m.resetTotal.WithLabelValues(label).Inc()
	m.resetDuration.WithLabelValues(label).Observe(duration.Seconds())
}

func (m *Metrics) SetInFlightResets(n int) {
	m.resetsInFlight.Set(float64(n))
}

func (m *Metrics) SetUnavailableModels(n int) {
	m.unavailableModels.Set(float64(n))
}

func (m *Metrics) RecordAPICall(endpoint, status string) {
	m.apiCallsTotal.WithLabelValues(endpoint, status).Inc()
}

func (m *Metrics) RecordAPICallDuration(endpoint string, duration time.Duration) {
	m.apiCallDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// DefaultMetrics returns a Metrics implementation using the default Prometheus registerer.
func DefaultMetrics(namespace string) *Metrics {
	return NewMetrics(prometheus.DefaultRegisterer, namespace)
}
