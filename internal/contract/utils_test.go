package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchwatch/benchwatch/schema"
)

func TestGetPlainResultLabel(t *testing.T) {
	tests := []struct {
		name     string
		result   schema.CheckResult
		expected string
	}{
		{
			name:     "passing check",
			result:   schema.CheckResult{ID: "power_plan", Passed: true, Current: "high_performance"},
			expected: PassValue,
		},
		{
			name:     "drifted check",
			result:   schema.CheckResult{ID: "power_plan", Passed: false, Current: "balanced", Expected: "high_performance"},
			expected: FailValue,
		},
		{
			name:     "probe failure",
			result:   schema.CheckResult{ID: "hdr", Passed: false, Current: schema.ErrorCurrent},
			expected: ErrorValue,
		},
		{
			name:     "passing check whose value happens to read ERROR",
			result:   schema.CheckResult{ID: "reg", Passed: true, Current: schema.ErrorCurrent},
			expected: PassValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainResultLabel(tt.result))
		})
	}
}

func TestGetColorResultLabel(t *testing.T) {
	tests := []struct {
		name   string
		result schema.CheckResult
		label  string
	}{
		{"pass", schema.CheckResult{Passed: true}, PassValue},
		{"fail", schema.CheckResult{Passed: false, Current: "balanced"}, FailValue},
		{"error", schema.CheckResult{Passed: false, Current: schema.ErrorCurrent}, ErrorValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorResultLabel(tt.result)
			// Should contain the plain label
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestGetColorStatusLabel(t *testing.T) {
	tests := []struct {
		name   string
		status schema.OverallStatus
		label  string
	}{
		{"all passed", schema.AllPassed, "All OK"},
		{"some failed", schema.SomeFailed, "Some Issues"},
		{"all failed", schema.AllFailed, "Action Needed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorStatusLabel(tt.status)
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestGetCapabilityLabel(t *testing.T) {
	assert.Equal(t, "auto", GetCapabilityLabel(schema.Direct()))
	assert.Equal(t, "admin", GetCapabilityLabel(schema.RequiresElevation()))
	assert.Equal(t, "manual", GetCapabilityLabel(schema.Manual("Cannot auto-start applications")))
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		// Verify file was created
		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestTruncatePath(t *testing.T) {
	longPath := `HKCU\Software\Microsoft\Windows\CurrentVersion\Explorer\Advanced`

	tests := []struct {
		name     string
		path     string
		maxWidth int
		expected string
	}{
		{
			name:     "short path unchanged",
			path:     `HKCU\Software`,
			maxWidth: 40,
			expected: `HKCU\Software`,
		},
		{
			name:     "long path truncated with ellipsis prefix",
			path:     longPath,
			maxWidth: 20,
			expected: `...Explorer\Advanced`,
		},
		{
			name:     "tiny width leaves path alone",
			path:     longPath,
			maxWidth: 3,
			expected: longPath,
		},
		{
			name:     "exact width unchanged",
			path:     "12345",
			maxWidth: 5,
			expected: "12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncatePath(tt.path, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input       string
		expected    bool
		expectError bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
