// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/benchwatch/benchwatch/core"
)

// NewMCPServer initializes and configures the BenchWatch MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(coord *core.Coordinator) *server.MCPServer {
	s := server.NewMCPServer(
		"BenchWatch Control Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{coord: coord}

	// --- 1. Tool: run_checks ---
	s.AddTool(mcp.NewTool("run_checks",
		mcp.WithDescription("Run every enabled check of the active scenario and return the results."),
	), h.handleRunChecks)

	// --- 2. Tool: get_status ---
	s.AddTool(mcp.NewTool("get_status",
		mcp.WithDescription("Return the aggregate status of the last check cycle without running anything."),
	), h.handleGetStatus)

	// --- 3. Tool: get_results ---
	s.AddTool(mcp.NewTool("get_results",
		mcp.WithDescription("Return the per-check results of the last cycle."),
	), h.handleGetResults)

	// --- 4. Tool: list_scenarios ---
	s.AddTool(mcp.NewTool("list_scenarios",
		mcp.WithDescription("List every configured scenario; the active one is marked."),
	), h.handleListScenarios)

	// --- 5. Tool: switch_scenario ---
	s.AddTool(mcp.NewTool("switch_scenario",
		mcp.WithDescription("Make another scenario active for subsequent cycles."),
		mcp.WithString("scenario_id", mcp.Description("Identifier of the scenario to activate."), mcp.Required()),
	), h.handleSwitchScenario)

	// --- 6. Tool: toggle_check ---
	s.AddTool(mcp.NewTool("toggle_check",
		mcp.WithDescription("Enable or disable a single check of the active scenario."),
		mcp.WithString("check_id", mcp.Description("Identifier of the check to toggle."), mcp.Required()),
	), h.handleToggleCheck)

	// --- 7. Tool: fix_check ---
	s.AddTool(mcp.NewTool("fix_check",
		mcp.WithDescription("Attempt to remediate a single check regardless of its last result."),
		mcp.WithString("check_id", mcp.Description("Identifier of the check to fix."), mcp.Required()),
	), h.handleFixCheck)

	// --- 8. Tool: fix_all ---
	s.AddTool(mcp.NewTool("fix_all",
		mcp.WithDescription("Attempt to remediate every check that failed in the last cycle."),
	), h.handleFixAll)

	// --- 9. Tool: set_poll_interval ---
	s.AddTool(mcp.NewTool("set_poll_interval",
		mcp.WithDescription("Change the active scenario's background polling interval."),
		mcp.WithNumber("seconds", mcp.Description("New interval in seconds (1 to 86400)."), mcp.Required()),
	), h.handleSetPollInterval)

	// --- 10. Tool: set_notify ---
	s.AddTool(mcp.NewTool("set_notify",
		mcp.WithDescription("Turn drift notifications on or off for the active scenario."),
		mcp.WithBoolean("enabled", mcp.Description("Whether drift should notify."), mcp.Required()),
	), h.handleSetNotify)

	// --- 11. Tool: save_config ---
	s.AddTool(mcp.NewTool("save_config",
		mcp.WithDescription("Persist the current configuration, making the active scenario the default."),
	), h.handleSaveConfig)

	return s
}

// StartMCPServer starts the BenchWatch MCP server on stdio.
func StartMCPServer(_ context.Context, coord *core.Coordinator) error {
	s := NewMCPServer(coord)
	return server.ServeStdio(s)
}
