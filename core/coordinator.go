package core

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

// AppName is the display name used in tooltips and notifications.
const AppName = "BenchWatch"

// Coordinator owns the live configuration, the most recent results, the
// drift baseline and the exit latch, shared between the background poller
// and the interactive caller. One mutex guards everything; every exported
// operation is a whole-command critical section, probe calls included, so
// a scenario switch and a poll cycle can never interleave partially.
type Coordinator struct {
	mu       sync.Mutex
	root     *schema.ConfigRoot
	path     string
	activeID string
	probes   *contract.ProbeSet
	notifier contract.Notifier

	notify      bool
	drift       *DriftDetector
	lastResults []schema.CheckResult
	lastRun     time.Time

	exit atomic.Bool
}

// NewCoordinator loads the checklist (synthesizing defaults when the file is
// absent) and resolves the active scenario. A scenario override must name an
// existing scenario; poll and notify overrides rewrite the active scenario
// in memory only, until an explicit Save.
func NewCoordinator(cfg *contract.Config, probes *contract.ProbeSet, notifier contract.Notifier) (*Coordinator, error) {
	root, err := schema.LoadOrDefault(cfg.ChecklistPath)
	if err != nil {
		return nil, err
	}

	activeID := root.DefaultScenario
	if cfg.ScenarioOverride != "" {
		if _, ok := root.Scenarios[cfg.ScenarioOverride]; !ok {
			return nil, fmt.Errorf("Scenario '%s' not found", cfg.ScenarioOverride)
		}
		activeID = cfg.ScenarioOverride
	}

	active := root.Scenarios[activeID]
	if cfg.PollOverride > 0 {
		active.PollIntervalSeconds = cfg.PollOverride
	}
	if cfg.NotifyOverride != nil {
		active.NotifyOnDrift = *cfg.NotifyOverride
	}
	root.Scenarios[activeID] = active

	return &Coordinator{
		root:     root,
		path:     cfg.ChecklistPath,
		activeID: activeID,
		probes:   probes,
		notifier: notifier,
		notify:   active.NotifyOnDrift,
		drift:    NewDriftDetector(),
	}, nil
}

// RunChecks evaluates the active scenario, runs drift detection, notifies
// when armed, and stores results and timestamp, all atomically.
func (c *Coordinator) RunChecks() ([]schema.CheckResult, schema.OverallStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	active, ok := c.root.Scenarios[c.activeID]
	if !ok {
		return nil, schema.AllFailed, fmt.Errorf("Scenario '%s' not found", c.activeID)
	}

	results := EvaluateAll(c.probes, active.Checks)
	status := schema.StatusFromResults(results)

	drifted := c.drift.Observe(results)
	if c.notify && len(drifted) > 0 && c.notifier != nil {
		c.notifier.Drift(drifted)
	}

	c.lastResults = results
	c.lastRun = time.Now()

	return slices.Clone(results), status, nil
}

// LastResults returns a copy of the most recent cycle's results.
func (c *Coordinator) LastResults() []schema.CheckResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.lastResults)
}

// Status reduces the most recent results to their aggregate status.
func (c *Coordinator) Status() schema.OverallStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return schema.StatusFromResults(c.lastResults)
}

// LastRun returns when the last cycle completed, zero before the first.
func (c *Coordinator) LastRun() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastRun
}

// FailingIDs returns the ids of the most recent cycle's failing checks.
func (c *Coordinator) FailingIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return failingIDs(c.lastResults)
}

// ScenarioIDs returns all scenario identifiers, sorted.
func (c *Coordinator) ScenarioIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.ScenarioIDs()
}

// Scenarios returns a listing summary per scenario, sorted by id.
func (c *Coordinator) Scenarios() []schema.ScenarioSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.Summaries()
}

// ActiveID returns the active scenario's identifier.
func (c *Coordinator) ActiveID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeID
}

// ActiveScenario returns a copy of the active scenario.
func (c *Coordinator) ActiveScenario() schema.Scenario {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.Scenarios[c.activeID].Clone()
}

// SwitchScenario activates another scenario, resets the drift baseline and
// recaches the notify flag. Results from the prior scenario remain visible
// until the next cycle.
func (c *Coordinator) SwitchScenario(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	active, ok := c.root.Scenarios[id]
	if !ok {
		return fmt.Errorf("Scenario '%s' not found", id)
	}
	c.activeID = id
	c.drift.Reset()
	c.notify = active.NotifyOnDrift
	return nil
}

// AddScenario registers a new scenario under the given id.
func (c *Coordinator) AddScenario(id string, sc schema.Scenario) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.root.Scenarios[id]; ok {
		return fmt.Errorf("Scenario '%s' already exists", id)
	}
	if err := sc.Validate(); err != nil {
		return err
	}
	c.root.Scenarios[id] = sc.Clone()
	return nil
}

// AddCheck appends a check to the active scenario.
func (c *Coordinator) AddCheck(chk schema.CheckDefinition) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if chk.ID == "" {
		return fmt.Errorf("%w: check with empty id", schema.ErrValidation)
	}
	if _, ok := schema.ValidCheckKinds[chk.Kind]; !ok {
		return fmt.Errorf("%w: unknown check kind %q", schema.ErrValidation, chk.Kind)
	}
	active := c.root.Scenarios[c.activeID]
	if active.FindCheck(chk.ID) >= 0 {
		return fmt.Errorf("Check '%s' already exists", chk.ID)
	}
	active.Checks = append(active.Checks, chk.Clone())
	c.root.Scenarios[c.activeID] = active
	return nil
}

// RemoveCheck deletes a check from the active scenario by id.
func (c *Coordinator) RemoveCheck(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := c.root.Scenarios[c.activeID]
	i := active.FindCheck(id)
	if i < 0 {
		return fmt.Errorf("Check '%s' not found", id)
	}
	active.Checks = slices.Delete(active.Checks, i, i+1)
	c.root.Scenarios[c.activeID] = active
	return nil
}

// UpdateCheck replaces the active scenario's check with the same id.
func (c *Coordinator) UpdateCheck(chk schema.CheckDefinition) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := c.root.Scenarios[c.activeID]
	i := active.FindCheck(chk.ID)
	if i < 0 {
		return fmt.Errorf("Check '%s' not found", chk.ID)
	}
	active.Checks[i] = chk.Clone()
	c.root.Scenarios[c.activeID] = active
	return nil
}

// ToggleCheck flips a check's enabled flag and returns the new state.
func (c *Coordinator) ToggleCheck(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := c.root.Scenarios[c.activeID]
	i := active.FindCheck(id)
	if i < 0 {
		return false, fmt.Errorf("Check '%s' not found", id)
	}
	active.Checks[i].Enabled = !active.Checks[i].Enabled
	c.root.Scenarios[c.activeID] = active
	return active.Checks[i].Enabled, nil
}

// FindCheck returns a copy of the active scenario's check with the given id.
func (c *Coordinator) FindCheck(id string) (schema.CheckDefinition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := c.root.Scenarios[c.activeID]
	i := active.FindCheck(id)
	if i < 0 {
		return schema.CheckDefinition{}, fmt.Errorf("Check '%s' not found", id)
	}
	return active.Checks[i].Clone(), nil
}

// FixCheck remediates one check of the active scenario by id.
func (c *Coordinator) FixCheck(id string) (schema.FixResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := c.root.Scenarios[c.activeID]
	i := active.FindCheck(id)
	if i < 0 {
		return schema.FixResult{}, fmt.Errorf("Check '%s' not found", id)
	}
	return Fix(c.probes, active.Checks[i]), nil
}

// FixFailing remediates every enabled check that failed in the most recent
// cycle, in declared order, and returns one FixResult per attempt.
func (c *Coordinator) FixFailing() []schema.FixResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := c.root.Scenarios[c.activeID]
	return FixAll(c.probes, active.Checks, failingIDs(c.lastResults))
}

// PollInterval returns the active scenario's poll cadence in seconds.
func (c *Coordinator) PollInterval() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.Scenarios[c.activeID].PollIntervalSeconds
}

// SetPollInterval updates the active scenario's poll cadence.
func (c *Coordinator) SetPollInterval(seconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seconds < 1 || seconds > contract.MaxPollIntervalSeconds {
		return fmt.Errorf("poll interval must be between 1 and %d (received %d)", contract.MaxPollIntervalSeconds, seconds)
	}
	active := c.root.Scenarios[c.activeID]
	active.PollIntervalSeconds = seconds
	c.root.Scenarios[c.activeID] = active
	return nil
}

// NotifyOnDrift returns the cached notify flag.
func (c *Coordinator) NotifyOnDrift() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notify
}

// SetNotifyOnDrift updates both the cached flag and the active scenario.
func (c *Coordinator) SetNotifyOnDrift(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notify = enabled
	active := c.root.Scenarios[c.activeID]
	active.NotifyOnDrift = enabled
	c.root.Scenarios[c.activeID] = active
}

// Save persists the configuration, recording the active scenario as the
// default for the next start. The existing file is backed up first.
func (c *Coordinator) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.root.DefaultScenario = c.activeID
	return c.root.Save(c.path)
}

// Reload replaces the in-memory configuration from disk, re-resolves the
// active scenario from the file's default, and resets baseline and results.
func (c *Coordinator) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	root, err := schema.Load(c.path)
	if err != nil {
		return err
	}
	c.root = root
	c.activeID = root.DefaultScenario
	c.notify = root.Scenarios[c.activeID].NotifyOnDrift
	c.drift.Reset()
	c.lastResults = nil
	c.lastRun = time.Time{}
	return nil
}

// ConfigSnapshot returns a deep copy of the configuration for display or
// export, never a live reference.
func (c *Coordinator) ConfigSnapshot() *schema.ConfigRoot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.Clone()
}

// Tooltip renders the tray summary line.
func (c *Coordinator) Tooltip() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	name := "Unknown"
	if active, ok := c.root.Scenarios[c.activeID]; ok {
		name = active.Name
	}

	if len(c.lastResults) == 0 {
		return fmt.Sprintf("%s\n%s\nNo checks run yet", AppName, name)
	}

	passed := schema.CountPassed(c.lastResults)
	status := schema.StatusFromResults(c.lastResults)
	return fmt.Sprintf("%s\n%s\n%s (%d/%d)", AppName, name, schema.StatusLabel(status), passed, len(c.lastResults))
}

// SignalExit trips the one-way exit latch.
func (c *Coordinator) SignalExit() {
	c.exit.Store(true)
}

// ShouldExit reports whether the exit latch has been tripped.
func (c *Coordinator) ShouldExit() bool {
	return c.exit.Load()
}
