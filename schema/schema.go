// Package schema has configs, models and global variables for all parts of benchwatch.
package schema

import (
	"fmt"
	"slices"
)

// CurrentConfigVersion is the version written by every save.
const CurrentConfigVersion = 2

// CheckDefinition describes a single declarative assertion about one OS setting.
// Kind-specific parameters are optional and omitted from JSON when empty.
type CheckDefinition struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Kind          CheckKind `json:"check_type"`
	Enabled       bool      `json:"enabled"`
	RegistryPath  string    `json:"registry_path,omitempty"`
	RegistryKey   string    `json:"registry_key,omitempty"`
	ProcessName   string    `json:"process_name,omitempty"`
	ExpectedValue string    `json:"expected_value,omitempty"`
}

// Scenario is a named, independently schedulable bundle of checks with its
// own poll cadence and notification policy.
type Scenario struct {
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	PollIntervalSeconds int               `json:"poll_interval_seconds"`
	NotifyOnDrift       bool              `json:"notify_on_drift"`
	Checks              []CheckDefinition `json:"checks"`
}

// ConfigRoot is the current on-disk configuration shape: a mapping from
// scenario identifier to Scenario, plus the identifier activated by default.
type ConfigRoot struct {
	Version         int                 `json:"version"`
	DefaultScenario string              `json:"default_scenario"`
	Scenarios       map[string]Scenario `json:"scenarios"`
}

// legacyConfig is the flat pre-scenario shape, accepted on load only.
type legacyConfig struct {
	PollIntervalSeconds int               `json:"poll_interval_seconds"`
	NotifyOnDrift       bool              `json:"notify_on_drift"`
	Checks              []CheckDefinition `json:"checks"`
}

// Clone returns a deep copy of the check definition.
func (c CheckDefinition) Clone() CheckDefinition {
	return c // value type with no reference fields
}

// Clone returns a deep copy of the scenario.
func (s Scenario) Clone() Scenario {
	out := s
	out.Checks = slices.Clone(s.Checks)
	return out
}

// Clone returns a deep copy of the configuration root.
func (c *ConfigRoot) Clone() *ConfigRoot {
	out := &ConfigRoot{
		Version:         c.Version,
		DefaultScenario: c.DefaultScenario,
		Scenarios:       make(map[string]Scenario, len(c.Scenarios)),
	}
	for id, sc := range c.Scenarios {
		out.Scenarios[id] = sc.Clone()
	}
	return out
}

// ScenarioIDs returns all scenario identifiers in sorted order.
func (c *ConfigRoot) ScenarioIDs() []string {
	ids := make([]string, 0, len(c.Scenarios))
	for id := range c.Scenarios {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ScenarioSummary is the listing row for one scenario.
type ScenarioSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Checks      int    `json:"checks"`
}

// Summaries returns one summary per scenario, sorted by identifier.
func (c *ConfigRoot) Summaries() []ScenarioSummary {
	out := make([]ScenarioSummary, 0, len(c.Scenarios))
	for _, id := range c.ScenarioIDs() {
		sc := c.Scenarios[id]
		out = append(out, ScenarioSummary{
			ID:          id,
			Name:        sc.Name,
			Description: sc.Description,
			Checks:      len(sc.Checks),
		})
	}
	return out
}

// Validate checks structural invariants of the configuration root.
func (c *ConfigRoot) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios defined", ErrValidation)
	}
	if _, ok := c.Scenarios[c.DefaultScenario]; !ok {
		return fmt.Errorf("%w: default scenario %q not found", ErrValidation, c.DefaultScenario)
	}
	for id, sc := range c.Scenarios {
		if err := sc.Validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", id, err)
		}
	}
	return nil
}

// Validate checks structural invariants of a single scenario.
func (s Scenario) Validate() error {
	if s.PollIntervalSeconds <= 0 {
		return fmt.Errorf("%w: poll interval must be positive, got %d", ErrValidation, s.PollIntervalSeconds)
	}
	seen := make(map[string]struct{}, len(s.Checks))
	for _, chk := range s.Checks {
		if chk.ID == "" {
			return fmt.Errorf("%w: check with empty id", ErrValidation)
		}
		if _, dup := seen[chk.ID]; dup {
			return fmt.Errorf("%w: duplicate check id %q", ErrValidation, chk.ID)
		}
		seen[chk.ID] = struct{}{}
		if _, ok := ValidCheckKinds[chk.Kind]; !ok {
			return fmt.Errorf("%w: check %q has unknown kind %q", ErrValidation, chk.ID, chk.Kind)
		}
	}
	return nil
}

// FindCheck returns the index of the check with the given id, or -1.
func (s Scenario) FindCheck(id string) int {
	return slices.IndexFunc(s.Checks, func(c CheckDefinition) bool { return c.ID == id })
}
