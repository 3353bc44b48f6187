//go:build !windows

package osprobe

import (
	"fmt"
	"runtime"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

// New returns a probe set whose every call reports the platform gap. It
// keeps the engine, formatters and shell buildable and testable away from
// Windows; checks evaluated against it come back as errors, not crashes.
func New() *contract.ProbeSet {
	return &contract.ProbeSet{
		Power:    stubPowerProbe{},
		Registry: stubRegistryProbe{},
		Process:  stubProcessProbe{},
		Display:  stubDisplayProbe{},
		Elevated: func() bool { return false },
	}
}

func errNotSupported(what string) error {
	return fmt.Errorf("%s %w on %s", what, contract.ErrUnavailable, runtime.GOOS)
}

type stubPowerProbe struct{}

func (stubPowerProbe) ActiveScheme() (schema.PowerScheme, error) {
	return "", errNotSupported("power scheme probe")
}

func (stubPowerProbe) SetActiveScheme(schema.PowerScheme) error {
	return errNotSupported("power scheme control")
}

func (stubPowerProbe) ActiveMode() (schema.PowerMode, error) {
	return "", errNotSupported("power mode probe")
}

func (stubPowerProbe) SetActiveMode(schema.PowerMode) error {
	return errNotSupported("power mode control")
}

type stubRegistryProbe struct{}

func (stubRegistryProbe) ReadDword(path, key string) (uint32, error) {
	return 0, errNotSupported("registry probe")
}

func (stubRegistryProbe) ReadString(path, key string) (string, error) {
	return "", errNotSupported("registry probe")
}

func (stubRegistryProbe) WriteDword(path, key string, value uint32) error {
	return errNotSupported("registry write")
}

func (stubRegistryProbe) WriteString(path, key, value string) error {
	return errNotSupported("registry write")
}

type stubProcessProbe struct{}

func (stubProcessProbe) CountInstances(name string) (int, error) {
	return 0, errNotSupported("process probe")
}

func (stubProcessProbe) TerminateAll(name string) (int, error) {
	return 0, errNotSupported("process control")
}

type stubDisplayProbe struct{}

func (stubDisplayProbe) CurrentMode() (int, int, int, error) {
	return 0, 0, 0, errNotSupported("display probe")
}

func (stubDisplayProbe) HDREnabled() (bool, error) {
	return false, errNotSupported("display probe")
}
