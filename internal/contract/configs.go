package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/benchwatch/benchwatch/schema"
)

// Bounds for runtime configuration.
const (
	// MaxPollIntervalSeconds caps the watch poll interval at one day.
	MaxPollIntervalSeconds = 86400

	// MaxWidthOverride caps the terminal width override.
	MaxWidthOverride = 1000
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the engine.
// This struct remains the "final, validated" config.
type Config struct {
	ChecklistPath    string
	ScenarioOverride string
	Output           schema.OutputMode
	OutputFile       string
	Width            int // Terminal width override (0 = auto-detect)

	PollOverride   int   // Poll interval override in seconds (0 = scenario setting)
	NotifyOverride *bool // Drift notification override (nil = scenario setting)

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Checklist  string `mapstructure:"checklist"`
	Scenario   string `mapstructure:"scenario"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	// --- Fields from watchCmd.Flags() ---
	Interval int    `mapstructure:"interval"`
	Notify   string `mapstructure:"notify"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.NotifyOverride != nil {
		v := *c.NotifyOverride
		clone.NotifyOverride = &v
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processWatchOverrides(cfg, input); err != nil {
		return err
	}
	resolveChecklistPath(cfg, input)
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.ScenarioOverride = strings.TrimSpace(input.Scenario)
	cfg.OutputFile = input.OutputFile

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	// --- 2. Width Validation ---
	if input.Width < 0 || input.Width > MaxWidthOverride {
		return fmt.Errorf("width must be between 0 and %d (received %d)", MaxWidthOverride, input.Width)
	}
	cfg.Width = input.Width

	return nil
}

// processWatchOverrides validates the watch-only flags. Both default to the
// active scenario's settings when left unset.
func processWatchOverrides(cfg *Config, input *ConfigRawInput) error {
	if input.Interval < 0 || input.Interval > MaxPollIntervalSeconds {
		return fmt.Errorf("interval must be between 0 and %d seconds (received %d)", MaxPollIntervalSeconds, input.Interval)
	}
	cfg.PollOverride = input.Interval

	cfg.NotifyOverride = nil
	if input.Notify != "" {
		notify, err := ParseBoolString(input.Notify)
		if err != nil {
			return fmt.Errorf("invalid --notify value: %w", err)
		}
		cfg.NotifyOverride = &notify
	}

	return nil
}

// resolveChecklistPath picks the checklist file location. Flag and env
// values arrive through viper as input.Checklist; without either the
// executable-relative default applies.
func resolveChecklistPath(cfg *Config, input *ConfigRawInput) {
	if path := strings.TrimSpace(input.Checklist); path != "" {
		cfg.ChecklistPath = path
		return
	}
	cfg.ChecklistPath = schema.DefaultChecklistPath()
}
