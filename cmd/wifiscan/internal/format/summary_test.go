package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintTotalFailureSummary_Table(t *testing.T) {
	f, out, errOut := newPlain(ModeTable)
	base := errors.New("bad output")

	err := f.PrintTotalFailureSummary("scan", base, "INVALID_OUTPUT_MODE", "extra hint")
	require.ErrorIs(t, err, base)
	require.True(t, IsReported(err))

	require.Empty(t, out.String())
	require.Contains(t, errOut.String(), "✗ Failed to scan: bad output")
	require.Contains(t, errOut.String(), "Valid output modes: table, json")
	require.Contains(t, errOut.String(), "→ extra hint")
}

func TestPrintTotalFailureSummary_JSON(t *testing.T) {
	f, out, _ := newPlain(ModeJSON)

	err := f.PrintTotalFailureSummary("start server", errors.New("boom"), "SERVER_RUNTIME_FAILED")
	require.True(t, IsReported(err))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
	require.Equal(t, false, payload["success"])
	require.Equal(t, "start server", payload["operation"])
	require.Equal(t, "SERVER_RUNTIME_FAILED", payload["error_code"])
}

func TestPrintTotalFailureSummary_QuietStillReports(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	f := New(out, errOut, ModeTable, true, false)

	err := f.PrintTotalFailureSummary("scan", errors.New("radio off"), "SCAN_FAILED")
	require.True(t, IsReported(err))
	require.Equal(t, "Error: radio off\n", errOut.String())
	require.Empty(t, out.String())
}

func TestPrintTotalFailureSummary_NilError(t *testing.T) {
	f, _, _ := newPlain(ModeTable)
	require.NoError(t, f.PrintTotalFailureSummary("scan", nil, ""))
}

func TestIsReported(t *testing.T) {
	require.False(t, IsReported(errors.New("plain")))
	require.False(t, IsReported(nil))
}

func TestGetSuggestions(t *testing.T) {
	require.NotEmpty(t, GetSuggestions("SCAN_FAILED"))
	require.Nil(t, GetSuggestions("UNKNOWN_CODE"))

	hints := GetSuggestions("SCAN_FAILED")
	hints[0] = "mutated"
	require.NotEqual(t, "mutated", GetSuggestions("SCAN_FAILED")[0])
}
