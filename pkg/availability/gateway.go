package availability

import "context"

// Gateway is typed access to the remote availability service.
//
// Implementations return a *TransportError for network failures and non-2xx
// answers. They do not retry and do not special-case missing records.
type Gateway interface {
	// ListUnavailable fetches every record the service currently reports.
	ListUnavailable(ctx context.Context) (*ListResponse, error)

	// ResetAvailability clears the unavailability of modelID for clientID.
	ResetAvailability(ctx context.Context, modelID, clientID string) (*ResetResponse, error)
}
