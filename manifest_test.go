package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManifest() *Manifest {
	return NewManifest().
		Register("charge", map[string]TypeTag{"customer": "customer", "payment_intent": "payment_intent", "source": ""}).
		Register("payment_intent", map[string]TypeTag{"customer": "customer", "latest_charge": "charge"}).
		Register("customer", map[string]TypeTag{"default_source": ""}).
		Register("dispute", map[string]TypeTag{"charge": "charge", "payment_intent": "payment_intent"})
}

func TestManifest_Validate(t *testing.T) {
	m := testManifest()
	tests := []struct {
		typ     TypeTag
		path    string
		wantErr bool
	}{
		{"charge", "customer", false},
		{"charge", "payment_intent.latest_charge.customer", false},
		{"charge", "source.anything.below", false},
		{"dispute", "charge.customer.default_source", false},
		{ListOf("dispute"), "data.charge", false},
		{ListOf("dispute"), "data.payment_intent.customer", false},
		{"charge", "amount", true},
		{"charge", "customer.email", true},
		{ListOf("dispute"), "charge", true},
		{ListOf("dispute"), "data", true},
		{"refund", "charge", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ)+"/"+tt.path, func(t *testing.T) {
			err := m.Validate(tt.typ, tt.path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var pe *ParamsError
			require.ErrorAs(t, err, &pe)
			assert.Contains(t, pe.Fields, "expand")
			assert.Equal(t, KindInvalidParams, KindOf(err))
		})
	}
}

func TestManifest_Introspection(t *testing.T) {
	m := testManifest()
	assert.Equal(t, []TypeTag{"charge", "customer", "dispute", "payment_intent"}, m.Types())
	assert.Equal(t, []string{"customer", "payment_intent", "source"}, m.Expandable("charge"))
	assert.Empty(t, m.Expandable("refund"))

	m.Register("charge", map[string]TypeTag{"invoice": ""})
	assert.Contains(t, m.Expandable("charge"), "invoice")
	assert.Contains(t, m.Expandable("charge"), "customer")
}

func TestManifest_ValidateAll(t *testing.T) {
	m := testManifest()
	assert.NoError(t, m.ValidateAll("", []string{"whatever"}))
	assert.NoError(t, m.ValidateAll("charge", []string{"customer", "payment_intent"}))
	assert.Error(t, m.ValidateAll("charge", []string{"customer", "nope"}))
}
