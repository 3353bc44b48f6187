//go:build windows

package autostart

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/windows/registry"

	"github.com/benchwatch/benchwatch/internal/contract"
)

// runKeyAutostart registers the current executable under the user Run key.
type runKeyAutostart struct{}

var _ contract.Autostart = runKeyAutostart{} // Compile-time check

// New returns the Run-key backed autostart manager.
func New() contract.Autostart {
	return runKeyAutostart{}
}

// Enable implements the Autostart interface.
func (runKeyAutostart) Enable() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	k, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open Run key: %w", err)
	}
	defer k.Close()

	if err := k.SetStringValue(valueName, exe); err != nil {
		return fmt.Errorf("failed to set Run value: %w", err)
	}
	return nil
}

// Disable implements the Autostart interface. Disabling an absent
// registration is not an error.
func (runKeyAutostart) Disable() error {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open Run key: %w", err)
	}
	defer k.Close()

	if err := k.DeleteValue(valueName); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("failed to delete Run value: %w", err)
	}
	return nil
}

// Toggle implements the Autostart interface.
func (a runKeyAutostart) Toggle() (bool, error) {
	enabled, err := a.IsEnabled()
	if err != nil {
		return false, err
	}
	if enabled {
		return false, a.Disable()
	}
	return true, a.Enable()
}

// IsEnabled implements the Autostart interface.
func (runKeyAutostart) IsEnabled() (bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open Run key: %w", err)
	}
	defer k.Close()

	if _, _, err := k.GetStringValue(valueName); err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query Run value: %w", err)
	}
	return true, nil
}
