package outwriter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchwatch/benchwatch/schema"
)

func sampleFixResults() []schema.FixResult {
	return []schema.FixResult{
		{
			ID:      "power_plan",
			Name:    "Power Plan",
			Success: true,
			Message: "Set power plan to high_performance",
		},
		{
			ID:      "hardware_gpu_scheduling",
			Name:    "Hardware GPU Scheduling",
			Success: false,
			Message: "access denied - admin required",
		},
	}
}

func TestWriteFixLines(t *testing.T) {
	var buf bytes.Buffer
	err := writeFixLines(sampleFixResults(), &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "✓")
	assert.Contains(t, output, "Set power plan to high_performance")
	assert.Contains(t, output, "✗")
	assert.Contains(t, output, "access denied - admin required")
	assert.Contains(t, output, "Applied 1 of 2 fix(es)")
}

func TestWriteFixLinesEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := writeFixLines(nil, &buf)
	require.NoError(t, err)

	assert.Equal(t, "Applied 0 of 0 fix(es)\n", buf.String())
}

func TestWriteCSVFixRows(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVFixRows(w, sampleFixResults())
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "power_plan")
	assert.Contains(t, lines[0], "true")
	assert.Contains(t, lines[1], "hardware_gpu_scheduling")
	assert.Contains(t, lines[1], "false")
}
