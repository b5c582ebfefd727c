package suite

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/calc/internal/calculator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestRunner_Run(t *testing.T) {
	s := &TestSuite{
		Name: "mixed",
		Cases: []Case{
			{ID: "precedence", Tokens: []string{"2", "+", "3", "x", "4"}, Want: intPtr(14)},
			{ID: "expression", Expression: "-7 % 2", Want: intPtr(-1)},
			{ID: "div-zero", Tokens: []string{"5", "/", "0"}, Error: "division_by_zero"},
			{ID: "empty", Tokens: []string{}, Error: "empty_input"},
			{ID: "wrong-result", Tokens: []string{"1", "+", "1"}, Want: intPtr(3)},
			{ID: "wrong-kind", Tokens: []string{"5", "%", "0"}, Error: "division_by_zero"},
			{ID: "unexpected-error", Tokens: []string{"2", "+"}, Want: intPtr(2)},
		},
	}

	r := NewRunner(Config{Workers: 3}, calculator.New())
	res, err := r.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, "mixed", res.SuiteName)
	assert.Equal(t, 4, res.Passed)
	assert.Equal(t, 3, res.Failed)

	require.Len(t, res.Cases, len(s.Cases))
	for i, cr := range res.Cases {
		assert.Equal(t, s.Cases[i].ID, cr.ID, "results keep suite order")
	}

	assert.True(t, res.Cases[0].Passed)
	assert.Equal(t, "14", res.Cases[0].Got)
	assert.Equal(t, []string{"-7", "%", "2"}, res.Cases[1].Input)
	assert.Equal(t, "division_by_zero", res.Cases[2].GotError)
	assert.Equal(t, "2", res.Cases[4].Got)
	assert.False(t, res.Cases[4].Passed)
	assert.Equal(t, "modulus_by_zero", res.Cases[5].GotError)
	assert.Equal(t, "leading_or_trailing_operator", res.Cases[6].GotError)
}

func TestRunner_Run_Cancelled(t *testing.T) {
	s := &TestSuite{
		Name:  "cancelled",
		Cases: []Case{{ID: "a", Tokens: []string{"1"}, Want: intPtr(1)}},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(Config{}, calculator.New()).Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_ShippedSuitePasses(t *testing.T) {
	s, err := LoadFromFile("../../configs/suites/core.yaml")
	require.NoError(t, err)

	res, err := NewRunner(Config{}, calculator.New()).Run(context.Background(), s)
	require.NoError(t, err)
	for _, cr := range res.Cases {
		assert.True(t, cr.Passed, "case %s: want %s, got %q / %q", cr.ID, cr.Want, cr.Got, cr.GotError)
	}
}

func TestReport(t *testing.T) {
	res := &Result{
		SuiteName: "report",
		Cases: []CaseResult{
			{ID: "ok", Input: []string{"1", "+", "1"}, Want: "2", Got: "2", Passed: true},
			{ID: "bad", Input: []string{"1", "/", "0"}, Want: "1", GotError: "division_by_zero"},
		},
		Passed: 1,
		Failed: 1,
	}

	var buf bytes.Buffer
	WriteTable(res, &buf)
	out := buf.String()
	assert.Contains(t, out, "=== Suite: report ===")
	assert.Contains(t, out, "1 + 1")
	assert.Contains(t, out, "division_by_zero")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "1 passed, 1 failed")

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(res, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, res.SuiteName, decoded.SuiteName)
	assert.Equal(t, 1, decoded.Failed)
}
