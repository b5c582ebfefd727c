package operator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		symbol string
		want   Operator
		tier   Tier
	}{
		{"+", Add, Low},
		{"-", Sub, Low},
		{"x", Mul, High},
		{"*", Mul, High},
		{"/", Div, High},
		{"%", Mod, High},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			op, err := Parse(tt.symbol)
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
			assert.Equal(t, tt.tier, op.Tier())
			assert.True(t, IsSymbol(tt.symbol))
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "X", "^", "++", "add", "÷", " +"} {
		_, err := Parse(s)
		assert.Error(t, err, "symbol %q", s)
		assert.False(t, IsSymbol(s))
	}
}

func TestString_Canonical(t *testing.T) {
	assert.Equal(t, "+", Add.String())
	assert.Equal(t, "-", Sub.String())
	assert.Equal(t, "x", Mul.String())
	assert.Equal(t, "/", Div.String())
	assert.Equal(t, "%", Mod.String())
	assert.Equal(t, "Operator(0)", Operator(0).String())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Mod.Validate())
	assert.Error(t, Operator(0).Validate())
	assert.Error(t, Operator(42).Validate())
}

func TestTextRoundTrip(t *testing.T) {
	data, err := json.Marshal([]Operator{Add, Mul, Mod})
	require.NoError(t, err)
	assert.JSONEq(t, `["+","x","%"]`, string(data))

	var ops []Operator
	require.NoError(t, json.Unmarshal([]byte(`["-","*","/"]`), &ops))
	assert.Equal(t, []Operator{Sub, Mul, Div}, ops)

	assert.Error(t, json.Unmarshal([]byte(`["^"]`), &ops))
}

func TestMarshalText_Invalid(t *testing.T) {
	_, err := Operator(0).MarshalText()
	assert.Error(t, err)
}
