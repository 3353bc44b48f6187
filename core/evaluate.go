package core

import (
	"fmt"
	"strconv"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

// Fallback expected values applied when a check leaves expected_value empty.
const (
	defaultExpectedScheme     = "high_performance"
	defaultExpectedMode       = "best_performance"
	defaultExpectedDword      = "0"
	defaultExpectedResolution = "1920x1080"
	defaultExpectedRefresh    = "60"
	defaultExpectedHDR        = "1"
)

// Evaluate runs a single check against live OS state through the probe set.
// Probe failures never escape as errors; they become Error-shaped results
// with an empty expected value and the cause in the message.
func Evaluate(probes *contract.ProbeSet, chk schema.CheckDefinition) schema.CheckResult {
	switch chk.Kind {
	case schema.KindPowerScheme:
		return evaluatePowerScheme(probes, chk)
	case schema.KindPowerMode:
		return evaluatePowerMode(probes, chk)
	case schema.KindRegistryDword:
		return evaluateRegistryDword(probes, chk)
	case schema.KindRegistryString:
		return evaluateRegistryString(probes, chk)
	case schema.KindProcessAbsent:
		return evaluateProcessAbsent(probes, chk)
	case schema.KindProcessPresent:
		return evaluateProcessPresent(probes, chk)
	case schema.KindDisplayResolution:
		return evaluateDisplayResolution(probes, chk)
	case schema.KindDisplayRefreshRate:
		return evaluateDisplayRefreshRate(probes, chk)
	case schema.KindHDREnabled:
		return evaluateHDR(probes, chk)
	default:
		return errorResult(chk, fmt.Sprintf("unsupported check kind %q", chk.Kind))
	}
}

// EvaluateAll evaluates the enabled checks sequentially in declared order.
// One result per enabled check; a probe failure for one check never aborts
// evaluation of the others.
func EvaluateAll(probes *contract.ProbeSet, checks []schema.CheckDefinition) []schema.CheckResult {
	results := make([]schema.CheckResult, 0, len(checks))
	for _, chk := range checks {
		if !chk.Enabled {
			continue
		}
		results = append(results, Evaluate(probes, chk))
	}
	return results
}

func passResult(chk schema.CheckDefinition, current, expected string) schema.CheckResult {
	return schema.CheckResult{
		ID:       chk.ID,
		Name:     chk.Name,
		Passed:   true,
		Current:  current,
		Expected: expected,
		Message:  fmt.Sprintf("%s is correctly set", chk.Name),
	}
}

func failResult(chk schema.CheckDefinition, current, expected string) schema.CheckResult {
	return schema.CheckResult{
		ID:       chk.ID,
		Name:     chk.Name,
		Passed:   false,
		Current:  current,
		Expected: expected,
		Message:  fmt.Sprintf("%s: expected '%s', got '%s'", chk.Name, expected, current),
	}
}

func errorResult(chk schema.CheckDefinition, cause string) schema.CheckResult {
	return schema.CheckResult{
		ID:      chk.ID,
		Name:    chk.Name,
		Passed:  false,
		Current: schema.ErrorCurrent,
		Message: fmt.Sprintf("%s: %s", chk.Name, cause),
	}
}

func verdict(chk schema.CheckDefinition, passed bool, current, expected string) schema.CheckResult {
	if passed {
		return passResult(chk, current, expected)
	}
	return failResult(chk, current, expected)
}

func expectedOrDefault(chk schema.CheckDefinition, fallback string) string {
	if chk.ExpectedValue == "" {
		return fallback
	}
	return chk.ExpectedValue
}

func evaluatePowerScheme(probes *contract.ProbeSet, chk schema.CheckDefinition) schema.CheckResult {
	expected := expectedOrDefault(chk, defaultExpectedScheme)

	scheme, err := probes.Power.ActiveScheme()
	if err != nil {
		return errorResult(chk, fmt.Sprintf("failed to get active power scheme: %v", err))
	}
	return verdict(chk, schema.SchemeSatisfies(expected, scheme), string(scheme), expected)
}

func evaluatePowerMode(probes *contract.ProbeSet, chk schema.CheckDefinition) schema.CheckResult {
	expected := expectedOrDefault(chk, defaultExpectedMode)

	mode, err := probes.Power.ActiveMode()
	if err != nil {
		return errorResult(chk, fmt.Sprintf("failed to get power mode: %v", err))
	}
	return verdict(chk, schema.ModeSatisfies(expected, mode), string(mode), expected)
}

func evaluateRegistryDword(probes *contract.ProbeSet, chk schema.CheckDefinition) schema.CheckResult {
	if chk.RegistryPath == "" {
		return errorResult(chk, "Missing registry_path in config")
	}
	if chk.RegistryKey == "" {
		return errorResult(chk, "Missing registry_key in config")
	}
	expected := expectedOrDefault(chk, defaultExpectedDword)

	want, err := strconv.ParseUint(expected, 10, 32)
	if err != nil {
		return errorResult(chk, fmt.Sprintf("Invalid DWORD value: %s", expected))
	}

	value, err := probes.Registry.ReadDword(chk.RegistryPath, chk.RegistryKey)
	if err != nil {
		return errorResult(chk, err.Error())
	}
	current := strconv.FormatUint(uint64(value), 10)
	return verdict(chk, value == uint32(want), current, expected)
}

func evaluateRegistryString(probes *contract.ProbeSet, chk schema.CheckDefinition) schema.CheckResult {
	if chk.RegistryPath == "" {
		return errorResult(chk, "Missing registry_path in config")
	}
	if chk.RegistryKey == "" {
		return errorResult(chk, "Missing registry_key in config")
	}
	expected := chk.ExpectedValue

	value, err := probes.Registry.ReadString(chk.RegistryPath, chk.RegistryKey)
	if err != nil {
		return errorResult(chk, err.Error())
	}
	return verdict(chk, value == expected, value, expected)
}

func evaluateProcessAbsent(probes *contract.ProbeSet, chk schema.CheckDefinition) schema.CheckResult {
	if chk.ProcessName == "" {
		return errorResult(chk, "Missing process_name in config")
	}

	count, err := probes.Process.CountInstances(chk.ProcessName)
	if err != nil {
		return errorResult(chk, err.Error())
	}
	return verdict(chk, count == 0, processCurrent(count), "not running")
}

func evaluateProcessPresent(probes *contract.ProbeSet, chk schema.CheckDefinition) schema.CheckResult {
	if chk.ProcessName == "" {
		return errorResult(chk, "Missing process_name in config")
	}

	count, err := probes.Process.CountInstances(chk.ProcessName)
	if err != nil {
		return errorResult(chk, err.Error())
	}
	return verdict(chk, count > 0, processCurrent(count), "running")
}

// processCurrent renders an instance count as the canonical current value.
func processCurrent(count int) string {
	if count > 0 {
		return fmt.Sprintf("running (%d)", count)
	}
	return "not running"
}

func evaluateDisplayResolution(probes *contract.ProbeSet, chk schema.CheckDefinition) schema.CheckResult {
	expected := expectedOrDefault(chk, defaultExpectedResolution)

	width, height, _, err := probes.Display.CurrentMode()
	if err != nil {
		return errorResult(chk, err.Error())
	}
	current := schema.FormatResolution(width, height)
	return verdict(chk, current == expected, current, expected)
}

func evaluateDisplayRefreshRate(probes *contract.ProbeSet, chk schema.CheckDefinition) schema.CheckResult {
	expected := expectedOrDefault(chk, defaultExpectedRefresh)

	want, err := schema.ParseRefreshRate(expected)
	if err != nil {
		return errorResult(chk, err.Error())
	}

	_, _, hz, err := probes.Display.CurrentMode()
	if err != nil {
		return errorResult(chk, err.Error())
	}
	return verdict(chk, hz >= want, schema.FormatRefreshRate(hz), fmt.Sprintf("%dHz+", want))
}

func evaluateHDR(probes *contract.ProbeSet, chk schema.CheckDefinition) schema.CheckResult {
	expected := expectedOrDefault(chk, defaultExpectedHDR)

	want, err := contract.ParseBoolString(expected)
	if err != nil {
		return errorResult(chk, err.Error())
	}

	enabled, err := probes.Display.HDREnabled()
	if err != nil {
		return errorResult(chk, err.Error())
	}
	return verdict(chk, enabled == want, hdrLabel(enabled), hdrLabel(want))
}

// hdrLabel renders an HDR state the way Windows display settings label it.
func hdrLabel(enabled bool) string {
	if enabled {
		return "Enabled"
	}
	return "Disabled"
}
