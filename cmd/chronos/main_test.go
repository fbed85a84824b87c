package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const floatDoc = `{
	"type": "MovingFloat",
	"values": [1.5, 2.5],
	"datetimes": ["1970-01-01T00:00:00Z", "1970-01-01T00:01:00Z"],
	"interpolation": "Linear"
}`

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()

	return out.String(), err
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	hexOut, err := runCmd(t, floatDoc, "encode", "--type", "float")
	require.NoError(t, err)
	hexOut = strings.TrimSpace(hexOut)
	assert.NotEmpty(t, hexOut)

	jsonOut, err := runCmd(t, hexOut, "decode", "--type", "float")
	require.NoError(t, err)
	assert.Contains(t, jsonOut, `"type": "MovingFloat"`)
	assert.Contains(t, jsonOut, "1.5")
}

func TestParseReportsSummary(t *testing.T) {
	out, err := runCmd(t, floatDoc, "parse", "--type", "float")
	require.NoError(t, err)
	assert.Contains(t, out, "instants=2")
	assert.Contains(t, out, "interp=Linear")
}

func TestTileSplitsAcrossGrid(t *testing.T) {
	out, err := runCmd(t, floatDoc, "tile", "--type", "float", "--time-width", "30")
	require.NoError(t, err)
	assert.Contains(t, out, `"time_coord"`)
}

func TestEncodeRejectsUnknownKind(t *testing.T) {
	_, err := runCmd(t, floatDoc, "encode", "--type", "bogus")
	require.Error(t, err)
}
