package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doordash-mcp/internal/tools"
)

func TestRoutesCoverCatalog(t *testing.T) {
	assert.Len(t, routes, len(tools.Names()))
	for _, name := range tools.Names() {
		assert.Contains(t, routes, name)
	}
}

func TestDeliveryID(t *testing.T) {
	tcs := []struct {
		v   any
		exp string
	}{
		{"D-1", "D-1"},
		{1234567.0, "1234567"},
		{42, "42"},
		{int64(7), "7"},
		{true, ""},
		{nil, ""},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.exp, deliveryID(map[string]any{tools.ExternalDeliveryID: tc.v}))
	}
	assert.Equal(t, "", deliveryID(map[string]any{}))
}

func TestFormatJSON(t *testing.T) {
	assert.Equal(t, "null", formatJSON(nil))
	assert.Equal(t, "not json", formatJSON([]byte("not json")))
	assert.Equal(t, "[]", formatJSON([]byte("[]")))
}
