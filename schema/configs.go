package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Default values for synthesized configuration.
const (
	DefaultPollInterval = 5
	DefaultScenarioID   = "gaming"
	MigratedScenarioID  = "default"
)

// BackupSuffix is appended to the checklist path before every overwrite.
const BackupSuffix = ".backup"

// ErrValidation marks configuration documents that parsed but are not usable.
var ErrValidation = errors.New("invalid configuration")

// DefaultChecklistPath returns the path used when no checklist flag is set.
// An existing file next to the executable wins, then an existing file under
// the working directory; with neither present the executable-relative path
// is where a fresh checklist gets created.
func DefaultChecklistPath() string {
	exePath := ""
	if exe, err := os.Executable(); err == nil {
		exePath = filepath.Join(filepath.Dir(exe), "config", "checklist.json")
		if _, err := os.Stat(exePath); err == nil {
			return exePath
		}
	}

	cwdPath := filepath.Join("config", "checklist.json")
	if _, err := os.Stat(cwdPath); err == nil {
		return cwdPath
	}

	if exePath != "" {
		return exePath
	}
	return cwdPath
}

// Load reads and parses a checklist file. Both the current scenario shape and
// the legacy flat shape are accepted; a legacy document is migrated before it
// is returned, so callers only ever see the current shape.
func Load(path string) (*ConfigRoot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("access denied reading %s (run as admin?): %w", path, err)
		}
		return nil, fmt.Errorf("read checklist: %w", err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return root, nil
}

// Parse decodes a checklist document. It tries the current shape first and
// accepts it when a scenario map is present; otherwise it retries the legacy
// shape and migrates. Shape discrimination is structural, never an explicit tag.
func Parse(data []byte) (*ConfigRoot, error) {
	var root ConfigRoot
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if len(root.Scenarios) > 0 {
		if root.DefaultScenario == "" {
			return nil, fmt.Errorf("%w: default_scenario is empty", ErrValidation)
		}
		if err := root.Validate(); err != nil {
			return nil, err
		}
		return &root, nil
	}

	var legacy legacyConfig
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if legacy.Checks == nil {
		return nil, fmt.Errorf("%w: neither scenarios nor checks present", ErrValidation)
	}
	migrated := migrateLegacy(legacy)
	if err := migrated.Validate(); err != nil {
		return nil, err
	}
	return migrated, nil
}

// migrateLegacy lifts a flat legacy document into a single-scenario current
// document. Interval, notify flag and checks carry over verbatim.
func migrateLegacy(legacy legacyConfig) *ConfigRoot {
	interval := legacy.PollIntervalSeconds
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &ConfigRoot{
		Version:         CurrentConfigVersion,
		DefaultScenario: MigratedScenarioID,
		Scenarios: map[string]Scenario{
			MigratedScenarioID: {
				Name:                "Default",
				Description:         "Migrated from a legacy checklist",
				PollIntervalSeconds: interval,
				NotifyOnDrift:       legacy.NotifyOnDrift,
				Checks:              legacy.Checks,
			},
		},
	}
}

// Save writes the configuration in the current shape. An existing file at
// path is first copied to a .backup sibling; a failed backup aborts the save.
func (c *ConfigRoot) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := backupExisting(path); err != nil {
		return err
	}

	c.Version = CurrentConfigVersion
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode checklist: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("access denied writing %s (run as admin?): %w", path, err)
		}
		return fmt.Errorf("write checklist: %w", err)
	}
	return nil
}

// backupExisting copies the file at path to path+BackupSuffix when present.
func backupExisting(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read checklist for backup: %w", err)
	}
	if err := os.WriteFile(path+BackupSuffix, data, 0o644); err != nil {
		return fmt.Errorf("write checklist backup: %w", err)
	}
	return nil
}

// LoadOrDefault loads the checklist at path, synthesizing and immediately
// persisting the built-in scenarios when the file does not exist. A file that
// exists but fails to parse is a hard error, never silently replaced.
func LoadOrDefault(path string) (*ConfigRoot, error) {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat checklist: %w", err)
		}
		root := DefaultConfig()
		if err := root.Save(path); err != nil {
			return nil, fmt.Errorf("persist default checklist: %w", err)
		}
		return root, nil
	}
	return Load(path)
}
