//go:build windows

package osprobe

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

var (
	modpowrprof = windows.NewLazySystemDLL("powrprof.dll")

	procPowerGetActiveScheme = modpowrprof.NewProc("PowerGetActiveScheme")
	procPowerSetActiveScheme = modpowrprof.NewProc("PowerSetActiveScheme")

	// The overlay procs are absent on older Windows 10 builds.
	procPowerGetActualOverlayScheme = modpowrprof.NewProc("PowerGetActualOverlayScheme")
	procPowerSetActiveOverlayScheme = modpowrprof.NewProc("PowerSetActiveOverlayScheme")
)

// powerProbe reads and mutates the active power plan and the Windows 10/11
// power slider overlay through powrprof.dll.
type powerProbe struct{}

func (powerProbe) ActiveScheme() (schema.PowerScheme, error) {
	var guidPtr *windows.GUID
	ret, _, _ := procPowerGetActiveScheme.Call(0, uintptr(unsafe.Pointer(&guidPtr)))
	if ret != 0 {
		return "", fmt.Errorf("failed to get active power scheme (error %d)", ret)
	}
	if guidPtr == nil {
		return "", errors.New("active power scheme query returned no scheme")
	}

	guid := *guidPtr
	// PowerGetActiveScheme allocates the GUID with LocalAlloc.
	_, _ = windows.LocalFree(windows.Handle(uintptr(unsafe.Pointer(guidPtr))))

	scheme, ok := schema.SchemeFromGUID(guidString(&guid))
	if !ok {
		return schema.SchemeCustom, nil
	}
	return scheme, nil
}

func (powerProbe) SetActiveScheme(scheme schema.PowerScheme) error {
	guid, err := knownSchemeGUID(scheme)
	if err != nil {
		return err
	}
	ret, _, _ := procPowerSetActiveScheme.Call(0, uintptr(unsafe.Pointer(&guid)))
	if ret != 0 {
		return fmt.Errorf("failed to set power scheme (error %d)", ret)
	}
	return nil
}

func (powerProbe) ActiveMode() (schema.PowerMode, error) {
	if err := procPowerGetActualOverlayScheme.Find(); err != nil {
		return "", fmt.Errorf("power mode API %w on this Windows version", contract.ErrUnavailable)
	}

	var guid windows.GUID
	ret, _, _ := procPowerGetActualOverlayScheme.Call(uintptr(unsafe.Pointer(&guid)))
	if ret != 0 {
		return "", fmt.Errorf("failed to get power mode (error %d)", ret)
	}

	mode, ok := schema.ModeFromGUID(guidString(&guid))
	if !ok {
		return schema.ModeUnknown, nil
	}
	return mode, nil
}

func (powerProbe) SetActiveMode(mode schema.PowerMode) error {
	if err := procPowerSetActiveOverlayScheme.Find(); err != nil {
		return fmt.Errorf("power mode API %w on this Windows version", contract.ErrUnavailable)
	}

	guid, err := knownModeGUID(mode)
	if err != nil {
		return err
	}
	ret, _, _ := procPowerSetActiveOverlayScheme.Call(uintptr(unsafe.Pointer(&guid)))
	if ret != 0 {
		return fmt.Errorf("failed to set power mode (error %d)", ret)
	}
	return nil
}

func knownSchemeGUID(scheme schema.PowerScheme) (windows.GUID, error) {
	s, ok := schema.SchemeGUIDs[scheme]
	if !ok {
		return windows.GUID{}, fmt.Errorf("unknown power scheme: %s", scheme)
	}
	return parseGUID(s)
}

func knownModeGUID(mode schema.PowerMode) (windows.GUID, error) {
	s, ok := schema.ModeGUIDs[mode]
	if !ok {
		return windows.GUID{}, fmt.Errorf("unknown power mode: %s", mode)
	}
	return parseGUID(s)
}

// guidString renders a GUID in the lowercase unbraced form the schema tables use.
func guidString(g *windows.GUID) string {
	return fmt.Sprintf("%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1],
		g.Data4[2], g.Data4[3], g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

func parseGUID(s string) (windows.GUID, error) {
	var g windows.GUID
	parts := strings.Split(strings.Trim(strings.ToLower(s), "{}"), "-")
	if len(parts) != 5 || len(parts[0]) != 8 || len(parts[1]) != 4 ||
		len(parts[2]) != 4 || len(parts[3]) != 4 || len(parts[4]) != 12 {
		return g, fmt.Errorf("malformed GUID %q", s)
	}

	d1, err := strconv.ParseUint(parts[0], 16, 32)
	if err != nil {
		return g, fmt.Errorf("malformed GUID %q: %w", s, err)
	}
	d2, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return g, fmt.Errorf("malformed GUID %q: %w", s, err)
	}
	d3, err := strconv.ParseUint(parts[2], 16, 16)
	if err != nil {
		return g, fmt.Errorf("malformed GUID %q: %w", s, err)
	}
	tail, err := hex.DecodeString(parts[3] + parts[4])
	if err != nil {
		return g, fmt.Errorf("malformed GUID %q: %w", s, err)
	}

	g.Data1 = uint32(d1)
	g.Data2 = uint16(d2)
	g.Data3 = uint16(d3)
	copy(g.Data4[:], tail)
	return g, nil
}
