package availability

import "encoding/json"

// ReasonKind enumerates the causes the remote service is known to report.
type ReasonKind int

const (
	// ReasonOther covers any value this client does not recognise.
	ReasonOther ReasonKind = iota
	ReasonQuotaExceeded
	ReasonSuspended
	ReasonCooldown
)

// Wire values for the known reasons.
const (
	ReasonValueQuotaExceeded = "quota_exceeded"
	ReasonValueSuspended     = "suspended"
	ReasonValueCooldown      = "cooldown"
)

// Reason is a tagged variant over the unavailability cause. Raw always holds
// the value received from the server so unknown reasons survive a round trip.
type Reason struct {
	Kind ReasonKind
	Raw  string
}

// ParseReason classifies a wire value.
func ParseReason(s string) Reason {
	switch s {
	case ReasonValueQuotaExceeded:
		return Reason{Kind: ReasonQuotaExceeded, Raw: s}
	case ReasonValueSuspended:
		return Reason{Kind: ReasonSuspended, Raw: s}
	case ReasonValueCooldown:
		return Reason{Kind: ReasonCooldown, Raw: s}
	default:
		return Reason{Kind: ReasonOther, Raw: s}
	}
}

// String returns the wire value.
func (r Reason) String() string {
	return r.Raw
}

// MarshalJSON implements json.Marshaler.
func (r Reason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Raw)
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null decodes to an
// empty ReasonOther.
func (r *Reason) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*r = Reason{Kind: ReasonOther}
		return nil
	}
	*r = ParseReason(*s)
	return nil
}
