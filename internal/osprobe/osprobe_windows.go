//go:build windows

package osprobe

import "github.com/benchwatch/benchwatch/internal/contract"

// New returns the probe set backed by live Windows APIs.
func New() *contract.ProbeSet {
	reg := registryProbe{}
	return &contract.ProbeSet{
		Power:    powerProbe{},
		Registry: reg,
		Process:  processProbe{},
		Display:  displayProbe{reg: reg},
		Elevated: isElevated,
	}
}
