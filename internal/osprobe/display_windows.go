//go:build windows

package osprobe

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/benchwatch/benchwatch/internal/contract"
)

var (
	moduser32                = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplaySettingsW = moduser32.NewProc("EnumDisplaySettingsW")
)

const enumCurrentSettings = 0xFFFFFFFF

// videoSettingsPath is where Windows 11 keeps the global HDR switches.
const videoSettingsPath = `HKCU\Software\Microsoft\Windows\CurrentVersion\VideoSettings`

// hdrValueNames are probed in order; the first readable DWORD decides.
var hdrValueNames = []string{"GlobalHDRState", "EnableHDRForDisplay"}

// devModeW mirrors the display variant of the C DEVMODEW layout. Field
// offsets must match the Win32 struct exactly; EnumDisplaySettingsW fills
// the buffer by offset, not by name.
type devModeW struct {
	DeviceName         [32]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	PositionX          int32
	PositionY          int32
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [32]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
	ICMMethod          uint32
	ICMIntent          uint32
	MediaType          uint32
	DitherType         uint32
	Reserved1          uint32
	Reserved2          uint32
	PanningWidth       uint32
	PanningHeight      uint32
}

// displayProbe reads the primary display mode via user32 and the HDR state
// via the registry. Display state is never mutated.
type displayProbe struct {
	reg contract.RegistryProbe
}

func (displayProbe) CurrentMode() (int, int, int, error) {
	var dm devModeW
	dm.Size = uint16(unsafe.Sizeof(dm))

	ret, _, _ := procEnumDisplaySettingsW.Call(0, enumCurrentSettings, uintptr(unsafe.Pointer(&dm)))
	if ret == 0 {
		return 0, 0, 0, errors.New("failed to enumerate display settings")
	}
	return int(dm.PelsWidth), int(dm.PelsHeight), int(dm.DisplayFrequency), nil
}

func (d displayProbe) HDREnabled() (bool, error) {
	for _, name := range hdrValueNames {
		if v, err := d.reg.ReadDword(videoSettingsPath, name); err == nil {
			return v == 1, nil
		}
	}
	// No readable HDR switch means HDR is off or unsupported.
	return false, nil
}
