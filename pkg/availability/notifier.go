package availability

// Severity of a user-facing notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier delivers a user-visible message (toast, banner, console line).
// The controller is the only component that calls it.
type Notifier interface {
	Notify(message string, severity Severity)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string, severity Severity)

// Notify calls f(message, severity).
func (f NotifierFunc) Notify(message string, severity Severity) {
	f(message, severity)
}
