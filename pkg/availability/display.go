package availability

import (
	"strings"
	"time"
)

// Category is the visual class of a reason badge.
type Category string

const (
	// CategoryCooldown groups quota exhaustion and cooldown: both clear on their own.
	CategoryCooldown  Category = "cooldown"
	CategorySuspended Category = "suspended"
	CategoryDefault   Category = "default"
)

const (
	defaultSinceLayout  = "2006-01-02 15:04:05"
	providerPlaceholder = "-"
)

// Layouts accepted for the since timestamp, tried in order.
var sinceLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DisplayOptions controls how timestamps are rendered.
type DisplayOptions struct {
	// Layout is a time.Format layout. Default: "2006-01-02 15:04:05".
	Layout string

	// Location converts parsed times before formatting. Default: time.Local.
	Location *time.Location
}

// CategoryOf maps a reason to its badge category.
func CategoryOf(r Reason) Category {
	switch r.Kind {
	case ReasonQuotaExceeded, ReasonCooldown:
		return CategoryCooldown
	case ReasonSuspended:
		return CategorySuspended
	default:
		return CategoryDefault
	}
}

// ReasonLabel returns the text shown in the reason badge. Unrecognised
// reasons show reason_text when present, else the raw value.
func ReasonLabel(m UnavailableModel, t Translator) string {
	switch m.Reason.Kind {
	case ReasonQuotaExceeded:
		return t.T(MsgReasonQuota, nil)
	case ReasonCooldown:
		return t.T(MsgReasonCooldown, nil)
	case ReasonSuspended:
		return t.T(MsgReasonSuspended, nil)
	default:
		if m.ReasonText != "" {
			return m.ReasonText
		}
		return m.Reason.Raw
	}
}

// DisplayName prefers the human label and falls back to the model ID.
func DisplayName(m UnavailableModel) string {
	if m.ModelName != "" {
		return m.ModelName
	}
	return m.ModelID
}

// ProviderLabel returns the provider or a placeholder.
func ProviderLabel(m UnavailableModel) string {
	if m.Provider != "" {
		return m.Provider
	}
	return providerPlaceholder
}

// FormatSince renders the since timestamp. Input that does not parse is
// returned unchanged.
func FormatSince(raw string, opts DisplayOptions) string {
	ts, ok := parseSince(raw)
	if !ok {
		return raw
	}
	layout := opts.Layout
	if layout == "" {
		layout = defaultSinceLayout
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format(layout)
}

func parseSince(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range sinceLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
