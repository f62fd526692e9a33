package availability

import "time"

// Metrics defines the interface for tracking availability console operations.
type Metrics interface {
	// RecordRefresh records one list refetch and whether it succeeded.
	RecordRefresh(success bool, duration time.Duration)

	// RecordReset records one reset attempt and whether the remote call succeeded.
	RecordReset(success bool, duration time.Duration)

	// SetInFlightResets reports the current size of the in-flight set.
	SetInFlightResets(n int)

	// SetUnavailableModels reports the number of records shown after a successful refresh.
	SetUnavailableModels(n int)

	// RecordAPICall records a call to the availability service.
	// endpoint: the path template (e.g., "/model-availability/{model_id}/reset")
	// status: HTTP status code as string, or "error" when no response arrived
	RecordAPICall(endpoint, status string)

	// RecordAPICallDuration records how long an API call took.
	RecordAPICallDuration(endpoint string, duration time.Duration)
}

// NoopMetrics is a no-op implementation of the Metrics interface.
type NoopMetrics struct{}

func (n *NoopMetrics) RecordRefresh(_ bool, _ time.Duration)           {}
func (n *NoopMetrics) RecordReset(_ bool, _ time.Duration)             {}
func (n *NoopMetrics) SetInFlightResets(_ int)                         {}
func (n *NoopMetrics) SetUnavailableModels(_ int)                      {}
func (n *NoopMetrics) RecordAPICall(_, _ string)                       {}
func (n *NoopMetrics) RecordAPICallDuration(_ string, _ time.Duration) {}
