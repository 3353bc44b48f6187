package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// SchemeFromGUID resolves a power scheme GUID to its canonical key.
func SchemeFromGUID(guid string) (PowerScheme, bool) {
	guid = strings.ToLower(strings.TrimSpace(guid))
	for scheme, g := range SchemeGUIDs {
		if g == guid {
			return scheme, true
		}
	}
	return "", false
}

// ModeFromGUID resolves a power overlay GUID to its canonical key.
func ModeFromGUID(guid string) (PowerMode, bool) {
	guid = strings.ToLower(strings.TrimSpace(guid))
	for mode, g := range ModeGUIDs {
		if g == guid {
			return mode, true
		}
	}
	return "", false
}

// SchemeSatisfies reports whether the current scheme satisfies the expected
// spelling. Known aliases expand to a category of acceptable schemes;
// anything else falls back to exact canonical-key equality.
func SchemeSatisfies(expected string, current PowerScheme) bool {
	key := strings.ToLower(strings.TrimSpace(expected))
	if accepted, ok := schemeAliases[key]; ok {
		for _, s := range accepted {
			if s == current {
				return true
			}
		}
		return false
	}
	return key == string(current)
}

// ModeSatisfies reports whether the current overlay mode satisfies the
// expected spelling, with the same alias semantics as SchemeSatisfies.
func ModeSatisfies(expected string, current PowerMode) bool {
	key := strings.ToLower(strings.TrimSpace(expected))
	if accepted, ok := modeAliases[key]; ok {
		for _, m := range accepted {
			if m == current {
				return true
			}
		}
		return false
	}
	return key == string(current)
}

// SchemeFixTarget resolves an expected spelling to the scheme a fix activates.
func SchemeFixTarget(expected string) (PowerScheme, bool) {
	s, ok := schemeFixTargets[strings.ToLower(strings.TrimSpace(expected))]
	return s, ok
}

// ModeFixTarget resolves an expected spelling to the overlay mode a fix activates.
func ModeFixTarget(expected string) (PowerMode, bool) {
	m, ok := modeFixTargets[strings.ToLower(strings.TrimSpace(expected))]
	return m, ok
}

// SplitRegistryPath splits a full registry path into its canonical root and
// the subkey path below it. Long and short hive prefixes are accepted.
func SplitRegistryPath(path string) (RegistryRoot, string, error) {
	trimmed := strings.TrimSpace(path)
	head, rest, found := strings.Cut(trimmed, `\`)
	if !found || rest == "" {
		return "", "", fmt.Errorf("registry path %q has no subkey", path)
	}
	switch strings.ToUpper(head) {
	case "HKCU", "HKEY_CURRENT_USER":
		return RootCurrentUser, rest, nil
	case "HKLM", "HKEY_LOCAL_MACHINE":
		return RootLocalMachine, rest, nil
	default:
		return "", "", fmt.Errorf("unknown registry root %q", head)
	}
}

// IsUserWritableRegistryPath reports whether the path lives under a hive the
// current user can write without elevation.
func IsUserWritableRegistryPath(path string) bool {
	root, _, err := SplitRegistryPath(path)
	return err == nil && root == RootCurrentUser
}

// NormalizeProcessName lowercases a process name and strips any .exe suffix,
// the form used for all process comparisons.
func NormalizeProcessName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	return strings.TrimSuffix(n, ".exe")
}

// ProcessNamesEqual compares two process names case-insensitively with the
// .exe suffix ignored on both sides.
func ProcessNamesEqual(a, b string) bool {
	return NormalizeProcessName(a) == NormalizeProcessName(b)
}

// ParseRefreshRate parses an expected refresh-rate spelling such as "144",
// "144Hz" or "144Hz+" into its integer rate. The trailing + (at least) is
// implied by the comparison semantics and carries no extra meaning.
func ParseRefreshRate(expected string) (int, error) {
	s := strings.TrimSpace(expected)
	s = strings.TrimSuffix(s, "+")
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	lower = strings.TrimSuffix(lower, "hz")
	lower = strings.TrimSpace(lower)
	hz, err := strconv.Atoi(lower)
	if err != nil || hz <= 0 {
		return 0, fmt.Errorf("invalid refresh rate %q", expected)
	}
	return hz, nil
}

// FormatResolution renders a display mode as "WxH".
func FormatResolution(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

// FormatRefreshRate renders a refresh rate as "NHz".
func FormatRefreshRate(hz int) string {
	return fmt.Sprintf("%dHz", hz)
}
