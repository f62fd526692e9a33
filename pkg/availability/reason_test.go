package availability

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReason(t *testing.T) {
	assert.Equal(t, ReasonQuotaExceeded, ParseReason("quota_exceeded").Kind)
	assert.Equal(t, ReasonSuspended, ParseReason("suspended").Kind)
	assert.Equal(t, ReasonCooldown, ParseReason("cooldown").Kind)

	other := ParseReason("region_blocked")
	assert.Equal(t, ReasonOther, other.Kind)
	assert.Equal(t, "region_blocked", other.String())
}

func TestUnavailableModel_DecodeUnknownReason(t *testing.T) {
	body := `{"model_id":"m1","client_id":"c1","reason":"region_blocked","reason_text":"Blocked in region","since":"not-a-date"}`

	var m UnavailableModel
	require.NoError(t, json.Unmarshal([]byte(body), &m))

	assert.Equal(t, ReasonOther, m.Reason.Kind)
	assert.Equal(t, "region_blocked", m.Reason.Raw)
	assert.Equal(t, "not-a-date", m.Since)

	// Unknown values are written back unchanged.
	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"reason":"region_blocked"`)
}

func TestReason_DecodeNullAndInvalid(t *testing.T) {
	var m UnavailableModel
	require.NoError(t, json.Unmarshal([]byte(`{"model_id":"m1","reason":null}`), &m))
	assert.Equal(t, Reason{Kind: ReasonOther}, m.Reason)

	err := json.Unmarshal([]byte(`{"model_id":"m1","reason":42}`), &m)
	assert.Error(t, err)
}
