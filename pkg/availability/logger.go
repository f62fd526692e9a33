package availability

// Field represents a structured log field.
type Field struct {
	Key   string
	Value interface{}
}

// Logger defines the interface for structured logging.
type Logger interface {
	// Debug logs request-level detail such as individual API call failures.
	Debug(msg string, fields ...Field)

	// Info logs lifecycle events and completed resets.
	Info(msg string, fields ...Field)

	// Warn logs answers from the availability service that were tolerated.
	Warn(msg string, fields ...Field)

	// Error logs refresh and reset failures with their cause.
	Error(msg string, fields ...Field)
}

// NoopLogger is a no-op implementation of the Logger interface.
type NoopLogger struct{}

func (n *NoopLogger) Debug(msg string, fields ...Field) {}
func (n *NoopLogger) Info(msg string, fields ...Field)  {}
func (n *NoopLogger) Warn(msg string, fields ...Field)  {}
func (n *NoopLogger) Error(msg string, fields ...Field) {}
