package availability

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport matches every TransportError via errors.Is
	ErrTransport = errors.New("availability transport error")

	// ErrInvalidResponse is wrapped when the service answers with a body that cannot be used
	ErrInvalidResponse = errors.New("invalid availability response")

	// ErrMissingIdentifier is returned when a reset is requested without a model or client ID
	ErrMissingIdentifier = errors.New("model_id and client_id are required")

	// ErrResetInFlight is returned when a reset for the same pair has not settled yet
	ErrResetInFlight = errors.New("reset already in flight")

	// ErrGatewayRequired is returned when a controller is built without a gateway
	ErrGatewayRequired = errors.New("gateway is required")

	// ErrNotifierRequired is returned when a controller is built without a notifier
	ErrNotifierRequired = errors.New("notifier is required")
)

// TransportError reports a network failure or a non-success response from
// one of the gateway operations. It carries no partial data.
type TransportError struct {
	// Op is the gateway operation, "list" or "reset".
	Op string

	// StatusCode is zero when no response was received.
	StatusCode int

	// Body is the (truncated) response body for non-2xx answers.
	Body string

	Err error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("availability %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("availability %s: status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("availability %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("availability %s failed", e.Op)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTransport) true for any TransportError.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
