package schema

// Custom string types for type safety.
type (
	// CheckKind represents the kind of a configuration check.
	CheckKind string

	// OverallStatus represents the aggregate state of a result set.
	OverallStatus string

	// CapabilityKind represents how a failing check can be remediated.
	CapabilityKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// PowerScheme represents a canonical power scheme key.
	PowerScheme string

	// PowerMode represents a canonical power overlay mode key.
	PowerMode string

	// RegistryRoot represents a canonical registry hive prefix.
	RegistryRoot string
)

// All registry roots supported.
const (
	RootCurrentUser  RegistryRoot = "HKCU"
	RootLocalMachine RegistryRoot = "HKLM"
)

// All check kinds supported.
const (
	KindPowerScheme        CheckKind = "power_scheme"
	KindPowerMode          CheckKind = "power_mode"
	KindRegistryDword      CheckKind = "registry_dword"
	KindRegistryString     CheckKind = "registry_string"
	KindProcessAbsent      CheckKind = "process_absent"
	KindProcessPresent     CheckKind = "process_present"
	KindDisplayResolution  CheckKind = "display_resolution"
	KindDisplayRefreshRate CheckKind = "display_refresh_rate"
	KindHDREnabled         CheckKind = "hdr_enabled"
)

// All aggregate statuses supported.
const (
	AllPassed  OverallStatus = "all_passed"
	SomeFailed OverallStatus = "some_failed"
	AllFailed  OverallStatus = "all_failed"
)

// All fix capability kinds supported.
const (
	CapabilityDirect            CapabilityKind = "direct"
	CapabilityRequiresElevation CapabilityKind = "requires_elevation"
	CapabilityManual            CapabilityKind = "manual"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All power schemes supported. SchemeCustom stands in for any active
// scheme whose GUID is not one of the well-known four.
const (
	SchemeHighPerformance     PowerScheme = "high_performance"
	SchemeBalanced            PowerScheme = "balanced"
	SchemePowerSaver          PowerScheme = "power_saver"
	SchemeUltimatePerformance PowerScheme = "ultimate_performance"
	SchemeCustom              PowerScheme = "custom"
)

// All power overlay modes supported. ModeUnknown stands in for any active
// overlay whose GUID is not one of the well-known four.
const (
	ModeBetterBattery     PowerMode = "better_battery"
	ModeBalanced          PowerMode = "balanced"
	ModeBetterPerformance PowerMode = "better_performance"
	ModeBestPerformance   PowerMode = "best_performance"
	ModeUnknown           PowerMode = "unknown"
)

// AllCheckKinds returns a list of all supported check kinds.
var AllCheckKinds = []CheckKind{
	KindPowerScheme,
	KindPowerMode,
	KindRegistryDword,
	KindRegistryString,
	KindProcessAbsent,
	KindProcessPresent,
	KindDisplayResolution,
	KindDisplayRefreshRate,
	KindHDREnabled,
}

// ValidCheckKinds lists all valid check kinds.
var ValidCheckKinds = map[CheckKind]struct{}{
	KindPowerScheme:        {},
	KindPowerMode:          {},
	KindRegistryDword:      {},
	KindRegistryString:     {},
	KindProcessAbsent:      {},
	KindProcessPresent:     {},
	KindDisplayResolution:  {},
	KindDisplayRefreshRate: {},
	KindHDREnabled:         {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// StatusLabel maps an aggregate status to its short display label.
func StatusLabel(s OverallStatus) string {
	switch s {
	case AllPassed:
		return "All OK"
	case SomeFailed:
		return "Some Issues"
	default: // AllFailed
		return "Action Needed"
	}
}
