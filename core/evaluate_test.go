package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchwatch/benchwatch/internal/osprobe"
	"github.com/benchwatch/benchwatch/schema"
)

func schemeCheck(expected string) schema.CheckDefinition {
	return schema.CheckDefinition{
		ID:            "power_plan",
		Name:          "Power Plan",
		Kind:          schema.KindPowerScheme,
		Enabled:       true,
		ExpectedValue: expected,
	}
}

func dwordCheck(path, key, expected string) schema.CheckDefinition {
	return schema.CheckDefinition{
		ID:            "game_mode",
		Name:          "Game Mode",
		Kind:          schema.KindRegistryDword,
		Enabled:       true,
		RegistryPath:  path,
		RegistryKey:   key,
		ExpectedValue: expected,
	}
}

// TestEvaluatePowerScheme covers pass, alias, fail and default verdicts.
func TestEvaluatePowerScheme(t *testing.T) {
	tests := []struct {
		name        string
		scheme      schema.PowerScheme
		expected    string
		wantPass    bool
		wantCurrent string
	}{
		{
			name:        "exact match passes",
			scheme:      schema.SchemeHighPerformance,
			expected:    "high_performance",
			wantPass:    true,
			wantCurrent: "high_performance",
		},
		{
			name:        "ultimate satisfies high performance",
			scheme:      schema.SchemeUltimatePerformance,
			expected:    "high_performance",
			wantPass:    true,
			wantCurrent: "ultimate_performance",
		},
		{
			name:        "balanced fails high performance",
			scheme:      schema.SchemeBalanced,
			expected:    "high_performance",
			wantPass:    false,
			wantCurrent: "balanced",
		},
		{
			name:        "empty expected defaults to high performance",
			scheme:      schema.SchemeHighPerformance,
			expected:    "",
			wantPass:    true,
			wantCurrent: "high_performance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakes := osprobe.NewFakeProbeSet()
			fakes.Power.Scheme = tt.scheme

			r := Evaluate(fakes.Set(), schemeCheck(tt.expected))

			assert.Equal(t, tt.wantPass, r.Passed)
			assert.Equal(t, tt.wantCurrent, r.Current)
			if tt.wantPass {
				assert.Equal(t, "Power Plan is correctly set", r.Message)
			}
		})
	}

	t.Run("failure message names both values", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		r := Evaluate(fakes.Set(), schemeCheck("high_performance"))

		require.False(t, r.Passed)
		assert.Equal(t, "Power Plan: expected 'high_performance', got 'balanced'", r.Message)
	})

	t.Run("probe error becomes error result", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Power.Err = errors.New("boom")

		r := Evaluate(fakes.Set(), schemeCheck("high_performance"))

		assert.True(t, r.Errored())
		assert.Equal(t, schema.ErrorCurrent, r.Current)
		assert.Empty(t, r.Expected)
		assert.Equal(t, "Power Plan: failed to get active power scheme: boom", r.Message)
	})
}

// TestEvaluatePowerMode covers the overlay verdicts and the missing-API path.
func TestEvaluatePowerMode(t *testing.T) {
	chk := schema.CheckDefinition{
		ID:            "power_mode",
		Name:          "Power Mode",
		Kind:          schema.KindPowerMode,
		Enabled:       true,
		ExpectedValue: "best_performance",
	}

	t.Run("pass on best performance", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Power.Mode = schema.ModeBestPerformance

		r := Evaluate(fakes.Set(), chk)

		assert.True(t, r.Passed)
		assert.Equal(t, "best_performance", r.Current)
	})

	t.Run("fail on balanced overlay", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Evaluate(fakes.Set(), chk)

		assert.False(t, r.Passed)
		assert.Equal(t, "Power Mode: expected 'best_performance', got 'balanced'", r.Message)
	})

	t.Run("overlay API missing becomes error result", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Power.OverlayUnavailable = true

		r := Evaluate(fakes.Set(), chk)

		assert.True(t, r.Errored())
		assert.Contains(t, r.Message, "failed to get power mode")
		assert.Contains(t, r.Message, "unavailable")
	})
}

// TestEvaluateRegistryDword covers config validation, probe errors and the
// numeric comparison.
func TestEvaluateRegistryDword(t *testing.T) {
	const path = `HKCU\Software\Microsoft\GameBar`
	const key = "AutoGameModeEnabled"

	tests := []struct {
		name     string
		chk      schema.CheckDefinition
		setup    func(*osprobe.FakeProbeSet)
		wantPass bool
		wantErr  bool
		wantMsg  string
	}{
		{
			name:    "missing path is a config error",
			chk:     dwordCheck("", key, "1"),
			wantErr: true,
			wantMsg: "Game Mode: Missing registry_path in config",
		},
		{
			name:    "missing key is a config error",
			chk:     dwordCheck(path, "", "1"),
			wantErr: true,
			wantMsg: "Game Mode: Missing registry_key in config",
		},
		{
			name:    "unparseable expected is a config error",
			chk:     dwordCheck(path, key, "one"),
			wantErr: true,
			wantMsg: "Game Mode: Invalid DWORD value: one",
		},
		{
			name:    "missing registry key is a probe error",
			chk:     dwordCheck(path, key, "1"),
			wantErr: true,
			wantMsg: "Game Mode: key not found",
		},
		{
			name: "missing value is a probe error",
			chk:  dwordCheck(path, key, "1"),
			setup: func(f *osprobe.FakeProbeSet) {
				f.Registry.AddKey(path)
			},
			wantErr: true,
			wantMsg: "Game Mode: value not found",
		},
		{
			name: "matching value passes",
			chk:  dwordCheck(path, key, "1"),
			setup: func(f *osprobe.FakeProbeSet) {
				f.Registry.SeedDword(path, key, 1)
			},
			wantPass: true,
		},
		{
			name: "mismatching value fails",
			chk:  dwordCheck(path, key, "1"),
			setup: func(f *osprobe.FakeProbeSet) {
				f.Registry.SeedDword(path, key, 0)
			},
			wantMsg: "Game Mode: expected '1', got '0'",
		},
		{
			name: "empty expected defaults to zero",
			chk:  dwordCheck(path, key, ""),
			setup: func(f *osprobe.FakeProbeSet) {
				f.Registry.SeedDword(path, key, 0)
			},
			wantPass: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakes := osprobe.NewFakeProbeSet()
			if tt.setup != nil {
				tt.setup(fakes)
			}

			r := Evaluate(fakes.Set(), tt.chk)

			assert.Equal(t, tt.wantPass, r.Passed)
			assert.Equal(t, tt.wantErr, r.Errored())
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, r.Message)
			}
		})
	}
}

// TestEvaluateRegistryString checks the exact string comparison.
func TestEvaluateRegistryString(t *testing.T) {
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

	t.Run("matching string passes", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Registry.SeedString(path, "Theme", "dark")

		r := Evaluate(fakes.Set(), chk)

		assert.True(t, r.Passed)
		assert.Equal(t, "dark", r.Current)
	})

	t.Run("mismatching string fails", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Registry.SeedString(path, "Theme", "light")

		r := Evaluate(fakes.Set(), chk)

		assert.False(t, r.Passed)
		assert.Equal(t, "Theme: expected 'dark', got 'light'", r.Message)
	})

	t.Run("missing value is a probe error", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Registry.AddKey(path)

		r := Evaluate(fakes.Set(), chk)

		assert.True(t, r.Errored())
		assert.Equal(t, "Theme: value not found", r.Message)
	})
}

// TestEvaluateProcessChecks covers both process kinds and name normalization.
func TestEvaluateProcessChecks(t *testing.T) {
	absent := schema.CheckDefinition{
		ID:          "no_chrome",
		Name:        "No Chrome",
		Kind:        schema.KindProcessAbsent,
		Enabled:     true,
		ProcessName: "chrome.exe",
	}
	present := schema.CheckDefinition{
		ID:          "afterburner_running",
		Name:        "MSI Afterburner Running",
		Kind:        schema.KindProcessPresent,
		Enabled:     true,
		ProcessName: "MSIAfterburner.exe",
	}

	t.Run("absent passes when nothing runs", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Evaluate(fakes.Set(), absent)

		assert.True(t, r.Passed)
		assert.Equal(t, "not running", r.Current)
		assert.Equal(t, "not running", r.Expected)
	})

	t.Run("absent fails with instance count", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Process.Start("CHROME", 2)

		r := Evaluate(fakes.Set(), absent)

		assert.False(t, r.Passed)
		assert.Equal(t, "running (2)", r.Current)
		assert.Equal(t, "No Chrome: expected 'not running', got 'running (2)'", r.Message)
	})

	t.Run("present passes when running", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Process.Start("msiafterburner.exe", 1)

		r := Evaluate(fakes.Set(), present)

		assert.True(t, r.Passed)
		assert.Equal(t, "running (1)", r.Current)
		assert.Equal(t, "running", r.Expected)
	})

	t.Run("present fails when stopped", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Evaluate(fakes.Set(), present)

		assert.False(t, r.Passed)
		assert.Equal(t, "not running", r.Current)
	})

	t.Run("missing process name is a config error", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		chk := absent
		chk.ProcessName = ""

		r := Evaluate(fakes.Set(), chk)

		assert.True(t, r.Errored())
		assert.Equal(t, "No Chrome: Missing process_name in config", r.Message)
	})
}

// TestEvaluateDisplayResolution checks the exact WxH comparison.
func TestEvaluateDisplayResolution(t *testing.T) {
	chk := schema.CheckDefinition{
		ID:      "resolution",
		Name:    "Resolution",
		Kind:    schema.KindDisplayResolution,
		Enabled: true,
	}

	t.Run("default expectation passes at 1080p", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Evaluate(fakes.Set(), chk)

		assert.True(t, r.Passed)
		assert.Equal(t, "1920x1080", r.Current)
	})

	t.Run("fails on other mode", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Display.Width, fakes.Display.Height = 2560, 1440

		r := Evaluate(fakes.Set(), chk)

		assert.False(t, r.Passed)
		assert.Equal(t, "Resolution: expected '1920x1080', got '2560x1440'", r.Message)
	})

	t.Run("probe error becomes error result", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Display.Err = errors.New("no display")

		r := Evaluate(fakes.Set(), chk)

		assert.True(t, r.Errored())
		assert.Equal(t, "Resolution: no display", r.Message)
	})
}

// TestEvaluateDisplayRefreshRate checks the at-least comparison and the
// expected-value grammar.
func TestEvaluateDisplayRefreshRate(t *testing.T) {
	refreshCheck := func(expected string) schema.CheckDefinition {
		return schema.CheckDefinition{
			ID:            "refresh",
			Name:          "Refresh Rate",
			Kind:          schema.KindDisplayRefreshRate,
			Enabled:       true,
			ExpectedValue: expected,
		}
	}

	tests := []struct {
		name        string
		expected    string
		hz          int
		wantPass    bool
		wantCurrent string
	}{
		{name: "meets default minimum", expected: "", hz: 60, wantPass: true, wantCurrent: "60Hz"},
		{name: "exceeds expectation", expected: "120", hz: 144, wantPass: true, wantCurrent: "144Hz"},
		{name: "exact rate passes", expected: "144", hz: 144, wantPass: true, wantCurrent: "144Hz"},
		{name: "below expectation fails", expected: "144", hz: 60, wantPass: false, wantCurrent: "60Hz"},
		{name: "hz suffix accepted", expected: "144Hz", hz: 165, wantPass: true, wantCurrent: "165Hz"},
		{name: "plus suffix accepted", expected: "144Hz+", hz: 144, wantPass: true, wantCurrent: "144Hz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakes := osprobe.NewFakeProbeSet()
			fakes.Display.RefreshHz = tt.hz

			r := Evaluate(fakes.Set(), refreshCheck(tt.expected))

			assert.Equal(t, tt.wantPass, r.Passed)
			assert.Equal(t, tt.wantCurrent, r.Current)
		})
	}

	t.Run("failure renders the floor with a plus", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Evaluate(fakes.Set(), refreshCheck("144"))

		require.False(t, r.Passed)
		assert.Equal(t, "144Hz+", r.Expected)
		assert.Equal(t, "Refresh Rate: expected '144Hz+', got '60Hz'", r.Message)
	})

	t.Run("garbage expected is a config error", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Evaluate(fakes.Set(), refreshCheck("fast"))

		assert.True(t, r.Errored())
		assert.Contains(t, r.Message, "invalid refresh rate")
	})
}

// TestEvaluateHDR checks both polarities and the boolean grammar.
func TestEvaluateHDR(t *testing.T) {
	hdrCheck := func(expected string) schema.CheckDefinition {
		return schema.CheckDefinition{
			ID:            "hdr",
			Name:          "HDR",
			Kind:          schema.KindHDREnabled,
			Enabled:       true,
			ExpectedValue: expected,
		}
	}

	t.Run("default expects enabled", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Evaluate(fakes.Set(), hdrCheck(""))

		assert.False(t, r.Passed)
		assert.Equal(t, "Disabled", r.Current)
		assert.Equal(t, "Enabled", r.Expected)
		assert.Equal(t, "HDR: expected 'Enabled', got 'Disabled'", r.Message)
	})

	t.Run("pass when enabled", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Display.HDR = true

		r := Evaluate(fakes.Set(), hdrCheck("1"))

		assert.True(t, r.Passed)
		assert.Equal(t, "Enabled", r.Current)
	})

	t.Run("expecting disabled passes on default", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Evaluate(fakes.Set(), hdrCheck("0"))

		assert.True(t, r.Passed)
		assert.Equal(t, "Disabled", r.Expected)
	})

	t.Run("garbage expected is a config error", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()

		r := Evaluate(fakes.Set(), hdrCheck("maybe"))

		assert.True(t, r.Errored())
		assert.Contains(t, r.Message, "invalid boolean string")
	})

	t.Run("probe error becomes error result", func(t *testing.T) {
		fakes := osprobe.NewFakeProbeSet()
		fakes.Display.Err = errors.New("video settings unreadable")

		r := Evaluate(fakes.Set(), hdrCheck("1"))

		assert.True(t, r.Errored())
		assert.Equal(t, "HDR: video settings unreadable", r.Message)
	})
}

// TestEvaluateUnsupportedKind checks the dispatcher's closed-enum guard.
func TestEvaluateUnsupportedKind(t *testing.T) {
	fakes := osprobe.NewFakeProbeSet()
	chk := schema.CheckDefinition{
		ID:      "voltage",
		Name:    "CPU Voltage",
		Kind:    "cpu_voltage",
		Enabled: true,
	}

	r := Evaluate(fakes.Set(), chk)

	assert.True(t, r.Errored())
	assert.Equal(t, `CPU Voltage: unsupported check kind "cpu_voltage"`, r.Message)
}

// TestEvaluateAll checks ordering, the enabled filter and failure isolation.
func TestEvaluateAll(t *testing.T) {
	fakes := osprobe.NewFakeProbeSet()
	fakes.Power.Scheme = schema.SchemeHighPerformance

	checks := []schema.CheckDefinition{
		schemeCheck("high_performance"),
		{ID: "disabled", Name: "Disabled", Kind: schema.KindPowerScheme, Enabled: false},
		dwordCheck(`HKCU\Software\Missing`, "Value", "1"),
		{ID: "no_chrome", Name: "No Chrome", Kind: schema.KindProcessAbsent, Enabled: true, ProcessName: "chrome.exe"},
	}

	results := EvaluateAll(fakes.Set(), checks)

	require.Len(t, results, 3)
	assert.Equal(t, []string{"power_plan", "game_mode", "no_chrome"},
		[]string{results[0].ID, results[1].ID, results[2].ID})

	assert.True(t, results[0].Passed)
	assert.True(t, results[1].Errored())
	assert.True(t, results[2].Passed)
}
