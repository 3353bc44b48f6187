package osprobe

import (
	"fmt"
	"strings"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

// FakePowerProbe is an in-memory PowerProbe for tests and demos.
type FakePowerProbe struct {
	Scheme             schema.PowerScheme
	Mode               schema.PowerMode
	OverlayUnavailable bool  // report the overlay API as missing
	Err                error // when set, every call fails with this error
}

var _ contract.PowerProbe = &FakePowerProbe{} // Compile-time check

// ActiveScheme implements the PowerProbe interface.
func (f *FakePowerProbe) ActiveScheme() (schema.PowerScheme, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.Scheme, nil
}

// SetActiveScheme implements the PowerProbe interface.
func (f *FakePowerProbe) SetActiveScheme(scheme schema.PowerScheme) error {
	if f.Err != nil {
		return f.Err
	}
	if _, ok := schema.SchemeGUIDs[scheme]; !ok {
		return fmt.Errorf("unknown power scheme: %s", scheme)
	}
	f.Scheme = scheme
	return nil
}

// ActiveMode implements the PowerProbe interface.
func (f *FakePowerProbe) ActiveMode() (schema.PowerMode, error) {
	if f.Err != nil {
		return "", f.Err
	}
	if f.OverlayUnavailable {
		return "", fmt.Errorf("power mode API %w on this Windows version", contract.ErrUnavailable)
	}
	return f.Mode, nil
}

// SetActiveMode implements the PowerProbe interface.
func (f *FakePowerProbe) SetActiveMode(mode schema.PowerMode) error {
	if f.Err != nil {
		return f.Err
	}
	if f.OverlayUnavailable {
		return fmt.Errorf("power mode API %w on this Windows version", contract.ErrUnavailable)
	}
	if _, ok := schema.ModeGUIDs[mode]; !ok {
		return fmt.Errorf("unknown power mode: %s", mode)
	}
	f.Mode = mode
	return nil
}

// FakeRegistryProbe is an in-memory RegistryProbe. Like the real registry,
// writes never create missing keys; seed keys with AddKey or the Seed helpers.
type FakeRegistryProbe struct {
	Dwords  map[string]map[string]uint32 // normalized path -> value name -> data
	Strings map[string]map[string]string

	// DenyMachineWrites refuses HKLM writes the way an unelevated process
	// would. Seed helpers bypass it.
	DenyMachineWrites bool

	Err error
}

var _ contract.RegistryProbe = &FakeRegistryProbe{} // Compile-time check

// NewFakeRegistryProbe returns an empty registry that refuses HKLM writes.
func NewFakeRegistryProbe() *FakeRegistryProbe {
	return &FakeRegistryProbe{
		Dwords:            map[string]map[string]uint32{},
		Strings:           map[string]map[string]string{},
		DenyMachineWrites: true,
	}
}

// AddKey creates an empty key so that reads report a missing value rather
// than a missing key.
func (f *FakeRegistryProbe) AddKey(path string) {
	p := normRegPath(path)
	if f.Dwords == nil {
		f.Dwords = map[string]map[string]uint32{}
	}
	if f.Dwords[p] == nil {
		f.Dwords[p] = map[string]uint32{}
	}
}

// SeedDword creates the key if needed and sets a DWORD value.
func (f *FakeRegistryProbe) SeedDword(path, key string, value uint32) {
	f.AddKey(path)
	f.Dwords[normRegPath(path)][key] = value
}

// SeedString creates the key if needed and sets a string value.
func (f *FakeRegistryProbe) SeedString(path, key, value string) {
	f.AddKey(path)
	p := normRegPath(path)
	if f.Strings == nil {
		f.Strings = map[string]map[string]string{}
	}
	if f.Strings[p] == nil {
		f.Strings[p] = map[string]string{}
	}
	f.Strings[p][key] = value
}

// ReadDword implements the RegistryProbe interface.
func (f *FakeRegistryProbe) ReadDword(path, key string) (uint32, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	p := normRegPath(path)
	if !f.keyExists(p) {
		return 0, contract.ErrKeyNotFound
	}
	v, ok := f.Dwords[p][key]
	if !ok {
		return 0, contract.ErrValueNotFound
	}
	return v, nil
}

// ReadString implements the RegistryProbe interface.
func (f *FakeRegistryProbe) ReadString(path, key string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	p := normRegPath(path)
	if !f.keyExists(p) {
		return "", contract.ErrKeyNotFound
	}
	v, ok := f.Strings[p][key]
	if !ok {
		return "", contract.ErrValueNotFound
	}
	return v, nil
}

// WriteDword implements the RegistryProbe interface.
func (f *FakeRegistryProbe) WriteDword(path, key string, value uint32) error {
	if err := f.checkWrite(path); err != nil {
		return err
	}
	f.Dwords[normRegPath(path)][key] = value
	return nil
}

// WriteString implements the RegistryProbe interface.
func (f *FakeRegistryProbe) WriteString(path, key, value string) error {
	if err := f.checkWrite(path); err != nil {
		return err
	}
	p := normRegPath(path)
	if f.Strings == nil {
		f.Strings = map[string]map[string]string{}
	}
	if f.Strings[p] == nil {
		f.Strings[p] = map[string]string{}
	}
	f.Strings[p][key] = value
	return nil
}

func (f *FakeRegistryProbe) checkWrite(path string) error {
	if f.Err != nil {
		return f.Err
	}
	if f.DenyMachineWrites && !schema.IsUserWritableRegistryPath(path) {
		return fmt.Errorf("%w - admin required", contract.ErrAccessDenied)
	}
	p := normRegPath(path)
	if !f.keyExists(p) {
		return contract.ErrKeyNotFound
	}
	if f.Dwords[p] == nil {
		f.Dwords[p] = map[string]uint32{}
	}
	return nil
}

func (f *FakeRegistryProbe) keyExists(normPath string) bool {
	if _, ok := f.Dwords[normPath]; ok {
		return true
	}
	_, ok := f.Strings[normPath]
	return ok
}

func normRegPath(path string) string {
	return strings.ToLower(strings.TrimSpace(path))
}

// FakeProcessProbe is an in-memory ProcessProbe tracking instance counts by
// normalized executable name.
type FakeProcessProbe struct {
	Running    map[string]int
	Unkillable map[string]int // instances TerminateAll cannot remove
	Err        error
}

var _ contract.ProcessProbe = &FakeProcessProbe{} // Compile-time check

// NewFakeProcessProbe returns a probe with nothing running.
func NewFakeProcessProbe() *FakeProcessProbe {
	return &FakeProcessProbe{
		Running:    map[string]int{},
		Unkillable: map[string]int{},
	}
}

// Start adds count instances of the named process.
func (f *FakeProcessProbe) Start(name string, count int) {
	if f.Running == nil {
		f.Running = map[string]int{}
	}
	f.Running[schema.NormalizeProcessName(name)] += count
}

// CountInstances implements the ProcessProbe interface.
func (f *FakeProcessProbe) CountInstances(name string) (int, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	return f.Running[schema.NormalizeProcessName(name)], nil
}

// TerminateAll implements the ProcessProbe interface.
func (f *FakeProcessProbe) TerminateAll(name string) (int, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	n := schema.NormalizeProcessName(name)
	left := f.Unkillable[n]
	killed := f.Running[n] - left
	if killed <= 0 {
		return 0, nil
	}
	if left > 0 {
		f.Running[n] = left
	} else {
		delete(f.Running, n)
	}
	return killed, nil
}

// FakeDisplayProbe is an in-memory DisplayProbe.
type FakeDisplayProbe struct {
	Width     int
	Height    int
	RefreshHz int
	HDR       bool
	Err       error
}

var _ contract.DisplayProbe = &FakeDisplayProbe{} // Compile-time check

// CurrentMode implements the DisplayProbe interface.
func (f *FakeDisplayProbe) CurrentMode() (int, int, int, error) {
	if f.Err != nil {
		return 0, 0, 0, f.Err
	}
	return f.Width, f.Height, f.RefreshHz, nil
}

// HDREnabled implements the DisplayProbe interface.
func (f *FakeDisplayProbe) HDREnabled() (bool, error) {
	if f.Err != nil {
		return false, f.Err
	}
	return f.HDR, nil
}

// FakeProbeSet bundles the typed fakes with a wired contract.ProbeSet so
// tests can drive the engine and then inspect or mutate probe state.
type FakeProbeSet struct {
	Power    *FakePowerProbe
	Registry *FakeRegistryProbe
	Process  *FakeProcessProbe
	Display  *FakeDisplayProbe
	Admin    bool
}

// NewFakeProbeSet returns fakes resembling an untouched desktop: balanced
// power, 1920x1080 at 60Hz, HDR off, nothing running, not elevated.
func NewFakeProbeSet() *FakeProbeSet {
	return &FakeProbeSet{
		Power:    &FakePowerProbe{Scheme: schema.SchemeBalanced, Mode: schema.ModeBalanced},
		Registry: NewFakeRegistryProbe(),
		Process:  NewFakeProcessProbe(),
		Display:  &FakeDisplayProbe{Width: 1920, Height: 1080, RefreshHz: 60},
	}
}

// Set wires the fakes into a contract.ProbeSet.
func (f *FakeProbeSet) Set() *contract.ProbeSet {
	return &contract.ProbeSet{
		Power:    f.Power,
		Registry: f.Registry,
		Process:  f.Process,
		Display:  f.Display,
		Elevated: func() bool { return f.Admin },
	}
}
