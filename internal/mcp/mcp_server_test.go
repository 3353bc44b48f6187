package mcp_test

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchwatch/benchwatch/core"
	"github.com/benchwatch/benchwatch/internal/contract"
	mcp_internal "github.com/benchwatch/benchwatch/internal/mcp"
	"github.com/benchwatch/benchwatch/internal/notify"
	"github.com/benchwatch/benchwatch/internal/osprobe"
)

func newTestServer(t *testing.T) (*server.MCPServer, *osprobe.FakeProbeSet) {
	t.Helper()

	cfg := &contract.Config{
		ChecklistPath: filepath.Join(t.TempDir(), "checklist.json"),
	}
	fakes := osprobe.NewFakeProbeSet()
	coord, err := core.NewCoordinator(cfg, fakes.Set(), notify.NewConsoleNotifierTo(io.Discard))
	require.NoError(t, err)

	return mcp_internal.NewMCPServer(coord), fakes
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()

	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	return res.Content[0].(mcp.TextContent).Text
}

func TestMCPServerToolRegistration(t *testing.T) {
	s, _ := newTestServer(t)

	tools := []string{
		"run_checks", "get_status", "get_results", "list_scenarios",
		"switch_scenario", "toggle_check", "fix_check", "fix_all",
		"set_poll_interval", "set_notify", "save_config",
	}
	for _, name := range tools {
		assert.NotNil(t, s.GetTool(name), "Tool %s should exist", name)
	}
}

func TestMCPServerRunAndInspect(t *testing.T) {
	s, _ := newTestServer(t)

	res := callTool(t, s, "run_checks", nil)
	require.False(t, res.IsError)

	var run struct {
		Scenario string `json:"scenario"`
		Status   string `json:"status"`
		Passed   int    `json:"passed"`
		Total    int    `json:"total"`
		Results  []any  `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &run))
	assert.Equal(t, "gaming", run.Scenario)
	assert.Equal(t, "Some Issues", run.Status)
	assert.Equal(t, 2, run.Passed)
	assert.Equal(t, 6, run.Total)
	assert.Len(t, run.Results, 6)

	res = callTool(t, s, "get_status", nil)
	require.False(t, res.IsError)

	var status struct {
		Status  string `json:"status"`
		LastRun string `json:"last_run"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &status))
	assert.Equal(t, "Some Issues", status.Status)
	assert.NotEqual(t, "never", status.LastRun)

	res = callTool(t, s, "get_results", nil)
	require.False(t, res.IsError)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &results))
	assert.Len(t, results, 6)
}

func TestMCPServerEmptyState(t *testing.T) {
	s, _ := newTestServer(t)

	res := callTool(t, s, "get_status", nil)
	require.False(t, res.IsError)

	var status struct {
		Status  string `json:"status"`
		Total   int    `json:"total"`
		LastRun string `json:"last_run"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &status))
	assert.Equal(t, "All OK", status.Status)
	assert.Equal(t, 0, status.Total)
	assert.Equal(t, "never", status.LastRun)

	res = callTool(t, s, "get_results", nil)
	require.False(t, res.IsError)
	assert.Equal(t, "No checks run yet", resultText(t, res))

	res = callTool(t, s, "fix_all", nil)
	require.False(t, res.IsError)
	assert.Equal(t, "No failing checks to fix", resultText(t, res))
}

func TestMCPServerScenarioAndSettings(t *testing.T) {
	s, _ := newTestServer(t)

	res := callTool(t, s, "list_scenarios", nil)
	require.False(t, res.IsError)

	var scenarios []struct {
		ID     string `json:"id"`
		Active bool   `json:"active"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &scenarios))
	require.Len(t, scenarios, 4)
	for _, sc := range scenarios {
		assert.Equal(t, sc.ID == "gaming", sc.Active)
	}

	res = callTool(t, s, "switch_scenario", map[string]any{"scenario_id": "missing"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Scenario 'missing' not found")

	res = callTool(t, s, "switch_scenario", map[string]any{"scenario_id": "cpu_benchmark"})
	require.False(t, res.IsError)
	assert.Equal(t, "Switched to scenario 'cpu_benchmark'", resultText(t, res))

	res = callTool(t, s, "set_poll_interval", map[string]any{"seconds": 0.0})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "poll interval must be between")

	res = callTool(t, s, "set_poll_interval", map[string]any{"seconds": 30.0})
	require.False(t, res.IsError)
	assert.Equal(t, "Poll interval set to 30 seconds", resultText(t, res))

	res = callTool(t, s, "set_notify", map[string]any{"enabled": false})
	require.False(t, res.IsError)
	assert.Equal(t, "Drift notifications disabled", resultText(t, res))

	res = callTool(t, s, "save_config", nil)
	require.False(t, res.IsError)
	assert.Equal(t, "Checklist saved", resultText(t, res))
}

func TestMCPServerFixTools(t *testing.T) {
	s, fakes := newTestServer(t)

	res := callTool(t, s, "fix_check", map[string]any{"check_id": "ghost"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Check 'ghost' not found")

	res = callTool(t, s, "fix_check", map[string]any{"check_id": "power_plan"})
	require.False(t, res.IsError)

	var fix struct {
		ID      string `json:"id"`
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &fix))
	assert.Equal(t, "power_plan", fix.ID)
	assert.True(t, fix.Success)
	assert.Equal(t, "high_performance", string(fakes.Power.Scheme))

	res = callTool(t, s, "toggle_check", map[string]any{"check_id": "no_chrome"})
	require.False(t, res.IsError)
	assert.Equal(t, "Check 'no_chrome' is now disabled", resultText(t, res))

	res = callTool(t, s, "run_checks", nil)
	require.False(t, res.IsError)

	res = callTool(t, s, "fix_all", nil)
	require.False(t, res.IsError)

	var fixes []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &fixes))
	assert.NotEmpty(t, fixes)
}
