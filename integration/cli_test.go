//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runBenchwatch runs the shared binary and returns combined output and exit code.
// Exec failures other than a nonzero exit abort the test.
func runBenchwatch(t *testing.T, dir string, args ...string) (string, int) {
	t.Helper()

	cmd := exec.Command(getBenchwatchBinary(), args...)
	cmd.Dir = dir
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("failed to run benchwatch %v: %v", args, err)
	}
	return buf.String(), code
}

// TestCLIVersion verifies the version command reports build details.
func TestCLIVersion(t *testing.T) {
	out, code := runBenchwatch(t, t.TempDir(), "version")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "benchwatch CLI")
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "Runtime: go")
}

// TestCLIScenarioLifecycle drives list, show, switch, export and import
// against a temp checklist bootstrapped with the built-in scenarios.
func TestCLIScenarioLifecycle(t *testing.T) {
	dir := t.TempDir()
	checklist := filepath.Join(dir, "checklist.json")

	out, code := runBenchwatch(t, dir, "scenario", "list", "--checklist", checklist)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "gaming")
	assert.Contains(t, out, "cpu_benchmark")
	assert.Contains(t, out, "marks the default")

	out, code = runBenchwatch(t, dir, "scenario", "show", "gaming", "--checklist", checklist)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Scenario: gaming (Gaming)")
	assert.Contains(t, out, "power_scheme")

	out, code = runBenchwatch(t, dir, "scenario", "switch", "cpu_benchmark", "--checklist", checklist)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Switched default scenario to 'cpu_benchmark'")

	exportFile := filepath.Join(dir, "gaming.json")
	out, code = runBenchwatch(t, dir, "scenario", "export", "gaming", "--checklist", checklist, "--file", exportFile)
	require.Equal(t, 0, code, out)

	data, err := os.ReadFile(exportFile)
	require.NoError(t, err)
	var export map[string]any
	require.NoError(t, json.Unmarshal(data, &export))
	assert.Equal(t, float64(1), export["export_version"])

	out, code = runBenchwatch(t, dir, "scenario", "import", exportFile, "--checklist", checklist)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Imported scenario 'Gaming' as 'gaming_2'")

	out, code = runBenchwatch(t, dir, "scenario", "show", "missing", "--checklist", checklist)
	assert.NotEqual(t, 0, code)
	assert.Contains(t, out, "Scenario 'missing' not found")
}

// TestCLIConfigCommands verifies init, path and show round-trip.
func TestCLIConfigCommands(t *testing.T) {
	dir := t.TempDir()
	checklist := filepath.Join(dir, "checklist.json")

	out, code := runBenchwatch(t, dir, "config", "init", "--checklist", checklist)
	require.Equal(t, 0, code, out)
	_, err := os.Stat(checklist)
	require.NoError(t, err)

	out, code = runBenchwatch(t, dir, "config", "path", "--checklist", checklist)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, checklist)

	out, code = runBenchwatch(t, dir, "config", "show", "--checklist", checklist, "--output", "json")
	require.Equal(t, 0, code, out)
	var root map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &root))
	assert.Equal(t, float64(2), root["version"])
}

// TestCLICheckReportsResults runs a real check cycle. The exit code depends
// on the host's actual state, so only the report shape is asserted.
func TestCLICheckReportsResults(t *testing.T) {
	dir := t.TempDir()
	checklist := filepath.Join(dir, "checklist.json")

	out, code := runBenchwatch(t, dir, "check", "--checklist", checklist)
	assert.Contains(t, []int{0, 1}, code, out)
	assert.Contains(t, out, "checks passed in")
	assert.Contains(t, out, "Power Plan")

	out, _ = runBenchwatch(t, dir, "check", "--checklist", checklist, "--output", "json")
	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results), out)
	assert.Len(t, results, 6)
}

// TestCLILibraryAdd verifies catalog listing and instantiation.
func TestCLILibraryAdd(t *testing.T) {
	dir := t.TempDir()
	checklist := filepath.Join(dir, "checklist.json")

	out, code := runBenchwatch(t, dir, "library", "list", "--checklist", checklist)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "no_discord")
	assert.Contains(t, out, "library check(s) available")

	out, code = runBenchwatch(t, dir, "library", "add", "no_steam", "--checklist", checklist)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Added 'no_steam' to scenario 'gaming'")

	out, code = runBenchwatch(t, dir, "scenario", "show", "gaming", "--checklist", checklist)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "no_steam")
}
