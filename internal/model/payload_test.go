package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayloadDefaults(t *testing.T) {
	p := ParsePayload(nil)
	assert.False(t, p.RequiresLogin)
	assert.Nil(t, p.Order)
	assert.Nil(t, p.Extra)

	p = ParsePayload(map[string]any{})
	assert.False(t, p.RequiresLogin)
}

func TestParsePayloadKnownKeys(t *testing.T) {
	p := ParsePayload(map[string]any{
		"requires_login": true,
		"order": map[string]any{
			"order_number":       "ORD-1001",
			"status":             "Processing",
			"estimated_delivery": "2026-09-06",
		},
	})

	assert.True(t, p.RequiresLogin)
	require.NotNil(t, p.Order)
	assert.Equal(t, "ORD-1001", p.Order.OrderNumber)
	assert.Equal(t, "Processing", p.Order.Status)
	assert.Equal(t, "2026-09-06", p.Order.EstimatedDelivery)
}

func TestParsePayloadWrongTypesIgnored(t *testing.T) {
	p := ParsePayload(map[string]any{
		"requires_login": "yes",
		"order":          "ORD-1001",
	})
	assert.False(t, p.RequiresLogin)
	assert.Nil(t, p.Order)
}

func TestParsePayloadPassThrough(t *testing.T) {
	p := ParsePayload(map[string]any{
		"requires_login": true,
		"escalated_to":   "agent-7",
	})

	assert.True(t, p.RequiresLogin)
	assert.Equal(t, "agent-7", p.Extra["escalated_to"])
	assert.NotContains(t, p.Extra, "requires_login")
}
