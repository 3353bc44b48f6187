package schema

// Built-in check definitions shared by several default scenarios.

func powerPlanCheck(expected PowerScheme) CheckDefinition {
	return CheckDefinition{
		ID:            "power_plan",
		Name:          "Power Plan",
		Kind:          KindPowerScheme,
		Enabled:       true,
		ExpectedValue: string(expected),
	}
}

func powerModeCheck(expected PowerMode) CheckDefinition {
	return CheckDefinition{
		ID:            "power_mode",
		Name:          "Power Mode",
		Kind:          KindPowerMode,
		Enabled:       true,
		ExpectedValue: string(expected),
	}
}

func gpuSchedulingCheck() CheckDefinition {
	return CheckDefinition{
		ID:            "hardware_gpu_scheduling",
		Name:          "Hardware GPU Scheduling",
		Kind:          KindRegistryDword,
		Enabled:       true,
		RegistryPath:  `HKLM\SYSTEM\CurrentControlSet\Control\GraphicsDrivers`,
		RegistryKey:   "HwSchMode",
		ExpectedValue: "2",
	}
}

func noProcessCheck(id, name, process string) CheckDefinition {
	return CheckDefinition{
		ID:          id,
		Name:        name,
		Kind:        KindProcessAbsent,
		Enabled:     true,
		ProcessName: process,
	}
}

// DefaultConfig synthesizes the built-in scenarios used when no checklist
// file exists yet: gaming, CPU benchmark, GPU benchmark and productivity.
func DefaultConfig() *ConfigRoot {
	return &ConfigRoot{
		Version:         CurrentConfigVersion,
		DefaultScenario: DefaultScenarioID,
		Scenarios: map[string]Scenario{
			"gaming": {
				Name:                "Gaming",
				Description:         "Optimal settings for gaming sessions",
				PollIntervalSeconds: 5,
				NotifyOnDrift:       true,
				Checks: []CheckDefinition{
					powerPlanCheck(SchemeHighPerformance),
					powerModeCheck(ModeBestPerformance),
					{
						ID:            "game_mode",
						Name:          "Game Mode",
						Kind:          KindRegistryDword,
						Enabled:       true,
						RegistryPath:  `HKCU\Software\Microsoft\GameBar`,
						RegistryKey:   "AutoGameModeEnabled",
						ExpectedValue: "1",
					},
					gpuSchedulingCheck(),
					noProcessCheck("no_discord", "No Discord", "Discord.exe"),
					noProcessCheck("no_chrome", "No Chrome", "chrome.exe"),
				},
			},
			"cpu_benchmark": {
				Name:                "CPU Benchmark",
				Description:         "Strict settings for CPU benchmark runs",
				PollIntervalSeconds: 10,
				NotifyOnDrift:       true,
				Checks: []CheckDefinition{
					powerPlanCheck(SchemeHighPerformance),
					powerModeCheck(ModeBestPerformance),
					{
						ID:            "background_apps",
						Name:          "Background Apps Disabled",
						Kind:          KindRegistryDword,
						Enabled:       true,
						RegistryPath:  `HKCU\Software\Microsoft\Windows\CurrentVersion\BackgroundAccessApplications`,
						RegistryKey:   "GlobalUserDisabled",
						ExpectedValue: "1",
					},
					noProcessCheck("no_chrome", "No Chrome", "chrome.exe"),
				},
			},
			"gpu_benchmark": {
				Name:                "GPU Benchmark",
				Description:         "Strict settings for GPU benchmark runs",
				PollIntervalSeconds: 5,
				NotifyOnDrift:       true,
				Checks: []CheckDefinition{
					powerPlanCheck(SchemeHighPerformance),
					powerModeCheck(ModeBestPerformance),
					gpuSchedulingCheck(),
					{
						ID:            "visual_effects",
						Name:          "Visual Effects For Performance",
						Kind:          KindRegistryDword,
						Enabled:       true,
						RegistryPath:  `HKCU\Software\Microsoft\Windows\CurrentVersion\Explorer\VisualEffects`,
						RegistryKey:   "VisualFXSetting",
						ExpectedValue: "2",
					},
				},
			},
			"productivity": {
				Name:                "Productivity",
				Description:         "Relaxed settings for everyday work",
				PollIntervalSeconds: 15,
				NotifyOnDrift:       false,
				Checks: []CheckDefinition{
					powerPlanCheck(SchemeBalanced),
				},
			},
		},
	}
}
