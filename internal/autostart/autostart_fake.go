package autostart

import "github.com/benchwatch/benchwatch/internal/contract"

// FakeAutostart is an in-memory Autostart for tests.
type FakeAutostart struct {
	Enabled bool
	Err     error // when set, every call fails with this error
}

var _ contract.Autostart = &FakeAutostart{} // Compile-time check

// Enable implements the Autostart interface.
func (f *FakeAutostart) Enable() error {
	if f.Err != nil {
		return f.Err
	}
	f.Enabled = true
	return nil
}

// Disable implements the Autostart interface.
func (f *FakeAutostart) Disable() error {
	if f.Err != nil {
		return f.Err
	}
	f.Enabled = false
	return nil
}

// Toggle implements the Autostart interface.
func (f *FakeAutostart) Toggle() (bool, error) {
	if f.Err != nil {
		return false, f.Err
	}
	f.Enabled = !f.Enabled
	return f.Enabled, nil
}

// IsEnabled implements the Autostart interface.
func (f *FakeAutostart) IsEnabled() (bool, error) {
	if f.Err != nil {
		return false, f.Err
	}
	return f.Enabled, nil
}
