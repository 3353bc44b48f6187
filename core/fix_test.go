package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchwatch/benchwatch/internal/osprobe"
	"github.com/benchwatch/benchwatch/schema"
)

// TestClassify covers the full capability table.
func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		chk        schema.CheckDefinition
		wantKind   schema.CapabilityKind
		wantReason string
	}{
		{
			name:     "power scheme is direct",
			chk:      schema.CheckDefinition{Kind: schema.KindPowerScheme},
			wantKind: schema.CapabilityDirect,
		},
		{
			name:     "power mode is direct",
			chk:      schema.CheckDefinition{Kind: schema.KindPowerMode},
			wantKind: schema.CapabilityDirect,
		},
		{
			name:     "user hive registry is direct",
			chk:      schema.CheckDefinition{Kind: schema.KindRegistryDword, RegistryPath: `HKCU\Software\Microsoft\GameBar`},
			wantKind: schema.CapabilityDirect,
		},
		{
			name:     "machine hive registry needs elevation",
			chk:      schema.CheckDefinition{Kind: schema.KindRegistryDword, RegistryPath: `HKLM\SYSTEM\CurrentControlSet\Control\GraphicsDrivers`},
			wantKind: schema.CapabilityRequiresElevation,
		},
		{
			name:     "long machine hive prefix needs elevation",
			chk:      schema.CheckDefinition{Kind: schema.KindRegistryString, RegistryPath: `HKEY_LOCAL_MACHINE\SOFTWARE\BenchWatch`},
			wantKind: schema.CapabilityRequiresElevation,
		},
		{
			name:       "registry without path is manual",
			chk:        schema.CheckDefinition{Kind: schema.KindRegistryDword},
			wantKind:   schema.CapabilityManual,
			wantReason: "No registry path configured",
		},
		{
			name:     "unparseable path stays direct and fails at apply time",
			chk:      schema.CheckDefinition{Kind: schema.KindRegistryDword, RegistryPath: "NotAHive"},
			wantKind: schema.CapabilityDirect,
		},
		{
			name:     "process absent is direct",
			chk:      schema.CheckDefinition{Kind: schema.KindProcessAbsent, ProcessName: "chrome.exe"},
			wantKind: schema.CapabilityDirect,
		},
		{
			name:       "process present is manual",
			chk:        schema.CheckDefinition{Kind: schema.KindProcessPresent, ProcessName: "obs64.exe"},
			wantKind:   schema.CapabilityManual,
			wantReason: "Cannot auto-start applications",
		},
		{
			name:       "display resolution is manual",
			chk:        schema.CheckDefinition{Kind: schema.KindDisplayResolution},
			wantKind:   schema.CapabilityManual,
			wantReason: "Display settings must be changed in Windows Settings",
		},
		{
			name:       "refresh rate is manual",
			chk:        schema.CheckDefinition{Kind: schema.KindDisplayRefreshRate},
			wantKind:   schema.CapabilityManual,
			wantReason: "Display settings must be changed in Windows Settings",
		},
		{
			name:       "hdr is manual",
			chk:        schema.CheckDefinition{Kind: schema.KindHDREnabled},
			wantKind:   schema.CapabilityManual,
			wantReason: "Display settings must be changed in Windows Settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capability := Classify(tt.chk)
			assert.Equal(t, tt.wantKind, capability.Kind)
			assert.Equal(t, tt.wantReason, capability.Reason)
		})
	}
}

// TestFixPowerScheme checks the applied write and the unknown-target error.
func TestFixPowerScheme(t *testing.T) {
	t.Run("activates the expected plan", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Fix(fakes.Set(), schemeCheck("high_performance"))

		require.True(t, r.Success)
		assert.Equal(t, "Set power plan to high_performance", r.Message)
		assert.Equal(t, schema.SchemeHighPerformance, fakes.Power.Scheme)
	})

	t.Run("alias fixes to the weakest satisfying plan", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Fix(fakes.Set(), schemeCheck("high"))

		require.True(t, r.Success)
		assert.Equal(t, schema.SchemeHighPerformance, fakes.Power.Scheme)
	})

	t.Run("unknown spelling fails", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Fix(fakes.Set(), schemeCheck("warp_speed"))

		require.False(t, r.Success)
		assert.Equal(t, "Unknown power scheme: warp_speed", r.Message)
		assert.Equal(t, schema.SchemeBalanced, fakes.Power.Scheme)
	})
}

// TestFixPowerMode checks the overlay write.
func TestFixPowerMode(t *testing.T) {
	chk := schema.CheckDefinition{
		ID:            "power_mode",
		Name:          "Power Mode",
		Kind:          schema.KindPowerMode,
		Enabled:       true,
		ExpectedValue: "best_performance",
	}

	fakes := osprobe.NewFakeProbeSet()
	r := Fix(fakes.Set(), chk)

	require.True(t, r.Success)
	assert.Equal(t, "Set power mode to best_performance", r.Message)
	assert.Equal(t, schema.ModeBestPerformance, fakes.Power.Mode)
}

// TestFixRegistryDword covers the write, privilege refusal and config errors.
func TestFixRegistryDword(t *testing.T) {
	const path = `HKCU\Software\Microsoft\GameBar`
	const key = "AutoGameModeEnabled"

	t.Run("writes the expected value", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Registry.SeedDword(path, key, 0)

		r := Fix(fakes.Set(), dwordCheck(path, key, "1"))

		require.True(t, r.Success)
		assert.Equal(t, "Set AutoGameModeEnabled to 1", r.Message)

		v, err := fakes.Registry.ReadDword(path, key)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), v)
	})

	t.Run("machine hive write is refused without elevation", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		chk := dwordCheck(`HKLM\SYSTEM\CurrentControlSet\Control\GraphicsDrivers`, "HwSchMode", "2")

		r := Fix(fakes.Set(), chk)

		require.False(t, r.Success)
		assert.Equal(t, "access denied - admin required", r.Message)
	})

	t.Run("missing key is a config failure", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Fix(fakes.Set(), dwordCheck(path, "", "1"))

		require.False(t, r.Success)
		assert.Equal(t, "No registry key configured", r.Message)
	})

	t.Run("unparseable expected is a config failure", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Fix(fakes.Set(), dwordCheck(path, key, "on"))

		require.False(t, r.Success)
		assert.Equal(t, "Invalid DWORD value: on", r.Message)
	})
}

// TestFixRegistryString checks the quoted success message and the write.
func TestFixRegistryString(t *testing.T) {
	const path = `HKCU\Software\BenchWatch`
	chk := schema.CheckDefinition{
		ID:            "theme",
		Name:          "Theme",
		Kind:          schema.KindRegistryString,
		Enabled:       true,
		RegistryPath:  path,
		RegistryKey:   "Theme",
		ExpectedValue: "dark",
	}

	fakes := osprobe.NewFakeProbeSet()
	fakes.Registry.SeedString(path, "Theme", "light")

	r := Fix(fakes.Set(), chk)

	require.True(t, r.Success)
	assert.Equal(t, "Set Theme to 'dark'", r.Message)

	v, err := fakes.Registry.ReadString(path, "Theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}

// TestFixProcessAbsent checks termination and the already-stopped case.
func TestFixProcessAbsent(t *testing.T) {
	chk := schema.CheckDefinition{
		ID:          "no_chrome",
		Name:        "No Chrome",
		Kind:        schema.KindProcessAbsent,
		Enabled:     true,
		ProcessName: "chrome.exe",
	}

	t.Run("terminates every instance", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Process.Start("chrome.exe", 3)

		r := Fix(fakes.Set(), chk)

		require.True(t, r.Success)
		assert.Equal(t, "Terminated 3 instance(s) of chrome.exe", r.Message)

		count, err := fakes.Process.CountInstances("chrome.exe")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("already stopped still succeeds", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Fix(fakes.Set(), chk)

		require.True(t, r.Success)
		assert.Equal(t, "chrome.exe is not running", r.Message)
	})
}

// TestFixManual checks that manual capabilities short-circuit with a reason.
func TestFixManual(t *testing.T) {
	fakes := osprobe.NewFakeProbeSet()

	t.Run("process present", func(t *testing.T) {
		chk := schema.CheckDefinition{ID: "obs", Name: "OBS Running", Kind: schema.KindProcessPresent, Enabled: true, ProcessName: "obs64.exe"}

		r := Fix(fakes.Set(), chk)

		require.False(t, r.Success)
		assert.Equal(t, "Cannot auto-fix: Cannot auto-start applications", r.Message)
	})

	t.Run("display", func(t *testing.T) {
		chk := schema.CheckDefinition{ID: "hdr", Name: "HDR", Kind: schema.KindHDREnabled, Enabled: true}

		r := Fix(fakes.Set(), chk)

		require.False(t, r.Success)
		assert.Equal(t, "Cannot auto-fix: Display settings must be changed in Windows Settings", r.Message)
	})
}

// TestFixAll checks the enabled-and-failing intersection in declared order.
func TestFixAll(t *testing.T) {
	fakes := osprobe.NewFakeProbeSet()
	fakes.Registry.SeedDword(`HKCU\Software\Microsoft\GameBar`, "AutoGameModeEnabled", 0)

	checks := []schema.CheckDefinition{
		dwordCheck(`HKCU\Software\Microsoft\GameBar`, "AutoGameModeEnabled", "1"),
		schemeCheck("high_performance"),
		{ID: "disabled_power", Name: "Disabled", Kind: schema.KindPowerScheme, Enabled: false},
		{ID: "no_chrome", Name: "No Chrome", Kind: schema.KindProcessAbsent, Enabled: true, ProcessName: "chrome.exe"},
	}
	failing := []string{"power_plan", "game_mode", "disabled_power"}

	results := FixAll(fakes.Set(), checks, failing)

	require.Len(t, results, 2, "disabled and passing checks are skipped")
	assert.Equal(t, "game_mode", results[0].ID)
	assert.Equal(t, "power_plan", results[1].ID)
	assert.True(t, results[0].Success)
	assert.True(t, results[1].Success)
}

// TestFixCounts checks the capability bucket counts.
func TestFixCounts(t *testing.T) {
	checks := []schema.CheckDefinition{
		schemeCheck("high_performance"),
		dwordCheck(`HKLM\SYSTEM\Something`, "V", "1"),
		{ID: "hdr", Name: "HDR", Kind: schema.KindHDREnabled, Enabled: true},
		{ID: "obs", Name: "OBS", Kind: schema.KindProcessPresent, Enabled: true, ProcessName: "obs64.exe"},
		{ID: "off", Name: "Off", Kind: schema.KindPowerScheme, Enabled: false},
	}
	failing := []string{"power_plan", "game_mode", "hdr", "obs", "off"}

	direct, elevation, manual := FixCounts(checks, failing)

	assert.Equal(t, 1, direct)
	assert.Equal(t, 1, elevation)
	assert.Equal(t, 2, manual)
}
