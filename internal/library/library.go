// Package library holds the built-in check catalog browsable from the CLI.
package library

import "github.com/benchwatch/benchwatch/schema"

// Categories lists the catalog groups in display order.
var Categories = []string{"Power", "Registry", "Processes", "Display"}

// catalog holds every built-in check. Entry ids are unique; the check id a
// catalog entry instantiates may be shared between variants of the same
// setting, so a scenario takes at most one of them.
var catalog = []schema.LibraryCheck{
	{
		ID:          "power_plan_high",
		Name:        "High Performance Plan",
		Category:    "Power",
		Description: "Active power plan is High Performance or better",
		Check: schema.CheckDefinition{
			ID:            "power_plan",
			Name:          "Power Plan",
			Kind:          schema.KindPowerScheme,
			Enabled:       true,
			ExpectedValue: string(schema.SchemeHighPerformance),
		},
	},
	{
		ID:          "power_plan_ultimate",
		Name:        "Ultimate Performance Plan",
		Category:    "Power",
		Description: "Active power plan is Ultimate Performance",
		Check: schema.CheckDefinition{
			ID:            "power_plan",
			Name:          "Power Plan",
			Kind:          schema.KindPowerScheme,
			Enabled:       true,
			ExpectedValue: string(schema.SchemeUltimatePerformance),
		},
	},
	{
		ID:          "power_plan_balanced",
		Name:        "Balanced Plan",
		Category:    "Power",
		Description: "Active power plan is Balanced",
		Check: schema.CheckDefinition{
			ID:            "power_plan",
			Name:          "Power Plan",
			Kind:          schema.KindPowerScheme,
			Enabled:       true,
			ExpectedValue: string(schema.SchemeBalanced),
		},
	},
	{
		ID:          "power_mode_best",
		Name:        "Best Performance Mode",
		Category:    "Power",
		Description: "Power slider is on Best Performance",
		Check: schema.CheckDefinition{
			ID:            "power_mode",
			Name:          "Power Mode",
			Kind:          schema.KindPowerMode,
			Enabled:       true,
			ExpectedValue: string(schema.ModeBestPerformance),
		},
	},
	{
		ID:          "game_mode",
		Name:        "Game Mode",
		Category:    "Registry",
		Description: "Windows Game Mode is enabled",
		Check: schema.CheckDefinition{
			ID:            "game_mode",
			Name:          "Game Mode",
			Kind:          schema.KindRegistryDword,
			Enabled:       true,
			RegistryPath:  `HKCU\Software\Microsoft\GameBar`,
			RegistryKey:   "AutoGameModeEnabled",
			ExpectedValue: "1",
		},
	},
	{
		ID:          "hardware_gpu_scheduling",
		Name:        "Hardware GPU Scheduling",
		Category:    "Registry",
		Description: "Hardware-accelerated GPU scheduling is on",
		Check: schema.CheckDefinition{
			ID:            "hardware_gpu_scheduling",
			Name:          "Hardware GPU Scheduling",
			Kind:          schema.KindRegistryDword,
			Enabled:       true,
			RegistryPath:  `HKLM\SYSTEM\CurrentControlSet\Control\GraphicsDrivers`,
			RegistryKey:   "HwSchMode",
			ExpectedValue: "2",
		},
	},
	{
		ID:          "background_apps",
		Name:        "Background Apps Disabled",
		Category:    "Registry",
		Description: "Store apps may not run in the background",
		Check: schema.CheckDefinition{
			ID:            "background_apps",
			Name:          "Background Apps Disabled",
			Kind:          schema.KindRegistryDword,
			Enabled:       true,
			RegistryPath:  `HKCU\Software\Microsoft\Windows\CurrentVersion\BackgroundAccessApplications`,
			RegistryKey:   "GlobalUserDisabled",
			ExpectedValue: "1",
		},
	},
	{
		ID:          "visual_effects",
		Name:        "Visual Effects For Performance",
		Category:    "Registry",
		Description: "Visual effects are set to best performance",
		Check: schema.CheckDefinition{
			ID:            "visual_effects",
			Name:          "Visual Effects For Performance",
			Kind:          schema.KindRegistryDword,
			Enabled:       true,
			RegistryPath:  `HKCU\Software\Microsoft\Windows\CurrentVersion\Explorer\VisualEffects`,
			RegistryKey:   "VisualFXSetting",
			ExpectedValue: "2",
		},
	},
	{
		ID:          "no_chrome",
		Name:        "No Chrome",
		Category:    "Processes",
		Description: "Chrome is not running",
		Check: schema.CheckDefinition{
			ID:          "no_chrome",
			Name:        "No Chrome",
			Kind:        schema.KindProcessAbsent,
			Enabled:     true,
			ProcessName: "chrome.exe",
		},
	},
	{
		ID:          "no_discord",
		Name:        "No Discord",
		Category:    "Processes",
		Description: "Discord is not running",
		Check: schema.CheckDefinition{
			ID:          "no_discord",
			Name:        "No Discord",
			Kind:        schema.KindProcessAbsent,
			Enabled:     true,
			ProcessName: "Discord.exe",
		},
	},
	{
		ID:          "no_steam",
		Name:        "No Steam",
		Category:    "Processes",
		Description: "Steam is not running",
		Check: schema.CheckDefinition{
			ID:          "no_steam",
			Name:        "No Steam",
			Kind:        schema.KindProcessAbsent,
			Enabled:     true,
			ProcessName: "steam.exe",
		},
	},
	{
		ID:          "afterburner_running",
		Name:        "MSI Afterburner Running",
		Category:    "Processes",
		Description: "MSI Afterburner is monitoring the run",
		Check: schema.CheckDefinition{
			ID:          "afterburner_running",
			Name:        "MSI Afterburner Running",
			Kind:        schema.KindProcessPresent,
			Enabled:     true,
			ProcessName: "MSIAfterburner.exe",
		},
	},
	{
		ID:          "resolution_1080p",
		Name:        "1080p Resolution",
		Category:    "Display",
		Description: "Primary display is at 1920x1080",
		Check: schema.CheckDefinition{
			ID:            "resolution_1080p",
			Name:          "1080p Resolution",
			Kind:          schema.KindDisplayResolution,
			Enabled:       true,
			ExpectedValue: "1920x1080",
		},
	},
	{
		ID:          "resolution_1440p",
		Name:        "1440p Resolution",
		Category:    "Display",
		Description: "Primary display is at 2560x1440",
		Check: schema.CheckDefinition{
			ID:            "resolution_1440p",
			Name:          "1440p Resolution",
			Kind:          schema.KindDisplayResolution,
			Enabled:       true,
			ExpectedValue: "2560x1440",
		},
	},
	{
		ID:          "refresh_144",
		Name:        "144Hz Refresh Rate",
		Category:    "Display",
		Description: "Primary display refreshes at 144Hz or above",
		Check: schema.CheckDefinition{
			ID:            "refresh_144",
			Name:          "144Hz Refresh Rate",
			Kind:          schema.KindDisplayRefreshRate,
			Enabled:       true,
			ExpectedValue: "144",
		},
	},
	{
		ID:          "hdr_off",
		Name:        "HDR Disabled",
		Category:    "Display",
		Description: "HDR is off for consistent benchmark output",
		Check: schema.CheckDefinition{
			ID:            "hdr_off",
			Name:          "HDR Disabled",
			Kind:          schema.KindHDREnabled,
			Enabled:       true,
			ExpectedValue: "0",
		},
	},
	{
		ID:          "hdr_on",
		Name:        "HDR Enabled",
		Category:    "Display",
		Description: "HDR is on",
		Check: schema.CheckDefinition{
			ID:            "hdr_on",
			Name:          "HDR Enabled",
			Kind:          schema.KindHDREnabled,
			Enabled:       true,
			ExpectedValue: "1",
		},
	},
}

// All returns the catalog in display order.
func All() []schema.LibraryCheck {
	out := make([]schema.LibraryCheck, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the catalog entry with the given id.
func Find(id string) (schema.LibraryCheck, bool) {
	for _, entry := range catalog {
		if entry.ID == id {
			return entry, true
		}
	}
	return schema.LibraryCheck{}, false
}
