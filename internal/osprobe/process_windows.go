//go:build windows

package osprobe

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/windows"

	"github.com/benchwatch/benchwatch/schema"
)

// pidSlots bounds one enumeration pass. 2048 covers any realistic desktop.
const pidSlots = 2048

// processProbe enumerates and terminates processes by executable name.
type processProbe struct{}

func (processProbe) CountInstances(name string) (int, error) {
	pids, err := snapshotPIDs()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, pid := range pids {
		if base, ok := imageBaseName(pid); ok && schema.ProcessNamesEqual(base, name) {
			count++
		}
	}
	return count, nil
}

func (processProbe) TerminateAll(name string) (int, error) {
	pids, err := snapshotPIDs()
	if err != nil {
		return 0, err
	}

	terminated := 0
	for _, pid := range pids {
		base, ok := imageBaseName(pid)
		if !ok || !schema.ProcessNamesEqual(base, name) {
			continue
		}
		if terminatePID(pid) {
			terminated++
		}
	}
	return terminated, nil
}

func snapshotPIDs() ([]uint32, error) {
	pids := make([]uint32, pidSlots)
	var bytesReturned uint32
	if err := windows.EnumProcesses(pids, &bytesReturned); err != nil {
		return nil, fmt.Errorf("failed to enumerate processes: %w", err)
	}
	n := int(bytesReturned) / 4
	if n > len(pids) {
		n = len(pids)
	}
	return pids[:n], nil
}

// imageBaseName resolves a PID to its executable file name. Processes the
// caller may not open (system services, elevated processes) are skipped.
func imageBaseName(pid uint32) (string, bool) {
	if pid == 0 {
		return "", false
	}
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", false
	}
	defer windows.CloseHandle(h)

	var buf [windows.MAX_PATH]uint16
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil || size == 0 {
		return "", false
	}
	return filepath.Base(windows.UTF16ToString(buf[:size])), true
}

func terminatePID(pid uint32) bool {
	h, err := windows.OpenProcess(windows.PROCESS_TERMINATE, false, pid)
	if err != nil {
		return false
	}
	defer windows.CloseHandle(h)
	return windows.TerminateProcess(h, 0) == nil
}
