// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"errors"

	"github.com/benchwatch/benchwatch/schema"
)

// Probe error sentinels. Probe implementations wrap these with call-site
// context; the engine folds them into Error-shaped check results and never
// lets them escape as process failures.
var (
	// ErrKeyNotFound marks a registry path that does not exist.
	ErrKeyNotFound = errors.New("key not found")

	// ErrValueNotFound marks a registry value that does not exist under an existing key.
	ErrValueNotFound = errors.New("value not found")

	// ErrAccessDenied marks an OS refusal due to missing privileges.
	ErrAccessDenied = errors.New("access denied")

	// ErrUnavailable marks a platform API that is not present on this system.
	ErrUnavailable = errors.New("unavailable")
)

// PowerProbe reads and mutates the active power scheme and overlay mode.
// This allows the evaluation and fix logic to be tested without touching
// the machine's power configuration.
type PowerProbe interface {
	// ActiveScheme returns the canonical key of the active power scheme.
	ActiveScheme() (schema.PowerScheme, error)

	// SetActiveScheme activates the given power scheme.
	SetActiveScheme(scheme schema.PowerScheme) error

	// ActiveMode returns the canonical key of the active power overlay mode.
	ActiveMode() (schema.PowerMode, error)

	// SetActiveMode activates the given power overlay mode.
	SetActiveMode(mode schema.PowerMode) error
}

// RegistryProbe reads and writes single registry values. Paths use the
// full-hive form accepted by schema.SplitRegistryPath.
type RegistryProbe interface {
	ReadDword(path, key string) (uint32, error)
	ReadString(path, key string) (string, error)
	WriteDword(path, key string, value uint32) error
	WriteString(path, key, value string) error
}

// ProcessProbe enumerates and terminates processes by executable name.
// Name comparisons are case-insensitive with the .exe suffix ignored.
type ProcessProbe interface {
	// CountInstances returns how many running processes match the name.
	CountInstances(name string) (int, error)

	// TerminateAll terminates every matching process and returns how many it killed.
	TerminateAll(name string) (int, error)
}

// DisplayProbe reads the current display mode and HDR state. Display state
// is read-only; changing it is out of scope for automation.
type DisplayProbe interface {
	// CurrentMode returns the primary display's resolution and refresh rate.
	CurrentMode() (width, height, refreshHz int, err error)

	// HDREnabled reports whether HDR is enabled for the primary display.
	HDREnabled() (bool, error)
}

// ProbeSet bundles the adapters the engine dispatches over. Elevated is a
// display hint only; fixes are always attempted under current privileges.
type ProbeSet struct {
	Power    PowerProbe
	Registry RegistryProbe
	Process  ProcessProbe
	Display  DisplayProbe
	Elevated func() bool
}

// IsElevated reports the elevation hint, false when no prober is wired.
func (p *ProbeSet) IsElevated() bool {
	return p.Elevated != nil && p.Elevated()
}

// Notifier receives the subset of results that newly drifted from passing
// to failing. The engine calls it at most once per check cycle, and only
// when the active scenario's notify flag is set and the subset is non-empty.
type Notifier interface {
	Drift(results []schema.CheckResult)
}

// Autostart manages the login-run registration for the application. The
// engine never calls it on its own, only explicit commands do.
type Autostart interface {
	Enable() error
	Disable() error

	// Toggle flips the registration and returns the new state.
	Toggle() (bool, error)

	IsEnabled() (bool, error)
}
