//go:build !windows

package autostart

import (
	"fmt"
	"runtime"

	"github.com/benchwatch/benchwatch/internal/contract"
)

// stubAutostart reports the platform gap on every call so the autostart
// command builds and fails cleanly away from Windows.
type stubAutostart struct{}

var _ contract.Autostart = stubAutostart{} // Compile-time check

// New returns the stub autostart manager.
func New() contract.Autostart {
	return stubAutostart{}
}

func errNotSupported() error {
	return fmt.Errorf("autostart registration %w on %s", contract.ErrUnavailable, runtime.GOOS)
}

func (stubAutostart) Enable() error {
	return errNotSupported()
}

func (stubAutostart) Disable() error {
	return errNotSupported()
}

func (stubAutostart) Toggle() (bool, error) {
	return false, errNotSupported()
}

func (stubAutostart) IsEnabled() (bool, error) {
	return false, errNotSupported()
}
