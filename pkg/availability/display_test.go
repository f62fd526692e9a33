package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		reason string
		want   Category
	}{
		{"quota_exceeded", CategoryCooldown},
		{"cooldown", CategoryCooldown},
		{"suspended", CategorySuspended},
		{"maintenance", CategoryDefault},
		{"", CategoryDefault},
		{"Suspended", CategoryDefault},
	}
	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryOf(ParseReason(tt.reason)))
		})
	}

	assert.Equal(t, CategoryOf(ParseReason("quota_exceeded")), CategoryOf(ParseReason("cooldown")))
	assert.NotEqual(t, CategoryOf(ParseReason("suspended")), CategoryOf(ParseReason("cooldown")))
}

func TestReasonLabel(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("known reasons use localized text", func(t *testing.T) {
		m := UnavailableModel{Reason: ParseReason("suspended"), ReasonText: "ignored"}
		assert.Equal(t, "Suspended", ReasonLabel(m, catalog))

		m.Reason = ParseReason("quota_exceeded")
		assert.Equal(t, "Quota exceeded", ReasonLabel(m, catalog))

		m.Reason = ParseReason("cooldown")
		assert.Equal(t, "Cooling down", ReasonLabel(m, catalog))
	})

	t.Run("unknown reason prefers reason_text", func(t *testing.T) {
		m := UnavailableModel{Reason: ParseReason("maintenance"), ReasonText: "Upstream maintenance window"}
		assert.Equal(t, "Upstream maintenance window", ReasonLabel(m, catalog))
	})

	t.Run("unknown reason without text shows raw value", func(t *testing.T) {
		m := UnavailableModel{Reason: ParseReason("maintenance")}
		assert.Equal(t, "maintenance", ReasonLabel(m, catalog))
	})

	t.Run("chinese catalog", func(t *testing.T) {
		m := UnavailableModel{Reason: ParseReason("suspended")}
		assert.Equal(t, "已暂停", ReasonLabel(m, ChineseCatalog()))
	})
}

func TestDisplayNameAndProvider(t *testing.T) {
	m := UnavailableModel{ModelID: "gpt-4o"}
	assert.Equal(t, "gpt-4o", DisplayName(m))
	assert.Equal(t, "-", ProviderLabel(m))

	m.ModelName = "GPT-4o"
	m.Provider = "openai"
	assert.Equal(t, "GPT-4o", DisplayName(m))
	assert.Equal(t, "openai", ProviderLabel(m))
}

func TestFormatSince(t *testing.T) {
	opts := DisplayOptions{Location: time.UTC}

	t.Run("rfc3339", func(t *testing.T) {
		assert.Equal(t, "2024-01-01 00:00:00", FormatSince("2024-01-01T00:00:00Z", opts))
	})

	t.Run("rfc3339 with offset is converted", func(t *testing.T) {
		assert.Equal(t, "2024-01-01 10:30:00", FormatSince("2024-01-01T12:30:00+02:00", opts))
	})

	t.Run("fractional seconds", func(t *testing.T) {
		assert.Equal(t, "2024-03-05 06:07:08", FormatSince("2024-03-05T06:07:08.123456Z", opts))
	})

	t.Run("date only", func(t *testing.T) {
		assert.Equal(t, "2024-03-05 00:00:00", FormatSince("2024-03-05", opts))
	})

	t.Run("custom layout and location", func(t *testing.T) {
		loc := time.FixedZone("UTC+8", 8*3600)
		got := FormatSince("2024-01-01T00:00:00Z", DisplayOptions{Layout: time.Kitchen, Location: loc})
		assert.Equal(t, "8:00AM", got)
	})

	t.Run("malformed input round-trips", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "yesterday", "2024-13-45T99:99:99Z", "\x00\xff", "1704067200"} {
			assert.NotPanics(t, func() { FormatSince(raw, opts) })
			assert.Equal(t, raw, FormatSince(raw, opts))
		}
	})
}
