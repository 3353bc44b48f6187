package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/benchwatch/benchwatch/core"
	"github.com/benchwatch/benchwatch/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	coord *core.Coordinator
}

// cycleSummary is the JSON shape shared by run_checks and get_status.
type cycleSummary struct {
	Scenario string `json:"scenario"`
	Status   string `json:"status"`
	Passed   int    `json:"passed"`
	Total    int    `json:"total"`
	LastRun  string `json:"last_run"`
}

func (h *toolHandler) summary(results []schema.CheckResult, status schema.OverallStatus) cycleSummary {
	lastRun := "never"
	if t := h.coord.LastRun(); !t.IsZero() {
		lastRun = t.Format(time.RFC3339)
	}
	return cycleSummary{
		Scenario: h.coord.ActiveID(),
		Status:   schema.StatusLabel(status),
		Passed:   schema.CountPassed(results),
		Total:    len(results),
		LastRun:  lastRun,
	}
}

func (h *toolHandler) handleRunChecks(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	results, status, err := h.coord.RunChecks()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("check run failed: %v", err)), nil
	}

	payload := struct {
		cycleSummary
		Results []schema.CheckResult `json:"results"`
	}{h.summary(results, status), results}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	results := h.coord.LastResults()
	payload := h.summary(results, h.coord.Status())

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetResults(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	results := h.coord.LastResults()
	if len(results) == 0 {
		return mcp.NewToolResultText("No checks run yet"), nil
	}

	jsonData, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListScenarios(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type scenarioEntry struct {
		Active bool `json:"active"`
		schema.ScenarioSummary
	}

	activeID := h.coord.ActiveID()
	summaries := h.coord.Scenarios()
	entries := make([]scenarioEntry, len(summaries))
	for i, s := range summaries {
		entries[i] = scenarioEntry{Active: s.ID == activeID, ScenarioSummary: s}
	}

	jsonData, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleSwitchScenario(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("scenario_id", "")
	if err := h.coord.SwitchScenario(id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("switch failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Switched to scenario '%s'", id)), nil
}

func (h *toolHandler) handleToggleCheck(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("check_id", "")
	enabled, err := h.coord.ToggleCheck(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("toggle failed: %v", err)), nil
	}
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	return mcp.NewToolResultText(fmt.Sprintf("Check '%s' is now %s", id, state)), nil
}

func (h *toolHandler) handleFixCheck(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("check_id", "")
	result, err := h.coord.FixCheck(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fix failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleFixAll(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fixes := h.coord.FixFailing()
	if len(fixes) == 0 {
		return mcp.NewToolResultText("No failing checks to fix"), nil
	}

	jsonData, _ := json.MarshalIndent(fixes, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleSetPollInterval(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seconds := request.GetInt("seconds", 0)
	if err := h.coord.SetPollInterval(seconds); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid interval: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Poll interval set to %d seconds", seconds)), nil
}

func (h *toolHandler) handleSetNotify(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	enabled := request.GetBool("enabled", true)
	h.coord.SetNotifyOnDrift(enabled)
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	return mcp.NewToolResultText(fmt.Sprintf("Drift notifications %s", state)), nil
}

func (h *toolHandler) handleSaveConfig(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.coord.Save(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("save failed: %v", err)), nil
	}
	return mcp.NewToolResultText("Checklist saved"), nil
}
