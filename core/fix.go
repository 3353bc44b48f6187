package core

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

// Fix failure messages for misconfigured checks. These surface verbatim in
// FixResult messages, so they are capitalized like the other remediation text.
var (
	errNoRegistryKey = errors.New("No registry key configured")
	errNoProcessName = errors.New("No process name configured")
)

// Classify determines how a failing check can be remediated. Power and
// process-absent checks are directly fixable; registry checks depend on the
// hive; process-present and display checks always need the operator.
func Classify(chk schema.CheckDefinition) schema.FixCapability {
	switch chk.Kind {
	case schema.KindPowerScheme, schema.KindPowerMode:
		return schema.Direct()

	case schema.KindRegistryDword, schema.KindRegistryString:
		if chk.RegistryPath == "" {
			return schema.Manual("No registry path configured")
		}
		if root, _, err := schema.SplitRegistryPath(chk.RegistryPath); err == nil && root == schema.RootLocalMachine {
			return schema.RequiresElevation()
		}
		return schema.Direct()

	case schema.KindProcessAbsent:
		return schema.Direct()

	case schema.KindProcessPresent:
		return schema.Manual("Cannot auto-start applications")

	default: // display resolution, refresh rate, HDR
		return schema.Manual("Display settings must be changed in Windows Settings")
	}
}

// Fix attempts to remediate a single check. Manual capability short-circuits
// to an unsuccessful result carrying the reason; Direct and RequiresElevation
// both attempt the write under current privileges, so an unprivileged HKLM
// write surfaces the probe's access-denied message.
func Fix(probes *contract.ProbeSet, chk schema.CheckDefinition) schema.FixResult {
	capability := Classify(chk)
	if capability.Kind == schema.CapabilityManual {
		return fixOutcome(chk, false, fmt.Sprintf("Cannot auto-fix: %s", capability.Reason))
	}

	msg, err := applyFix(probes, chk)
	if err != nil {
		return fixOutcome(chk, false, err.Error())
	}
	return fixOutcome(chk, true, msg)
}

// FixAll remediates every enabled check whose id appears in failingIDs,
// independently and in the declared check order. One FixResult per attempt;
// a failure never blocks the remaining fixes.
func FixAll(probes *contract.ProbeSet, checks []schema.CheckDefinition, failingIDs []string) []schema.FixResult {
	failing := idSet(failingIDs)

	var results []schema.FixResult
	for _, chk := range checks {
		if !chk.Enabled {
			continue
		}
		if _, ok := failing[chk.ID]; !ok {
			continue
		}
		results = append(results, Fix(probes, chk))
	}
	return results
}

// FixCounts buckets the enabled failing checks by fix capability.
func FixCounts(checks []schema.CheckDefinition, failingIDs []string) (direct, elevation, manual int) {
	failing := idSet(failingIDs)

	for _, chk := range checks {
		if !chk.Enabled {
			continue
		}
		if _, ok := failing[chk.ID]; !ok {
			continue
		}
		switch Classify(chk).Kind {
		case schema.CapabilityDirect:
			direct++
		case schema.CapabilityRequiresElevation:
			elevation++
		default:
			manual++
		}
	}
	return direct, elevation, manual
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func fixOutcome(chk schema.CheckDefinition, success bool, message string) schema.FixResult {
	return schema.FixResult{
		ID:      chk.ID,
		Name:    chk.Name,
		Success: success,
		Message: message,
	}
}

// applyFix performs the kind-specific write and returns a success message.
func applyFix(probes *contract.ProbeSet, chk schema.CheckDefinition) (string, error) {
	switch chk.Kind {
	case schema.KindPowerScheme:
		return fixPowerScheme(probes, chk)
	case schema.KindPowerMode:
		return fixPowerMode(probes, chk)
	case schema.KindRegistryDword:
		return fixRegistryDword(probes, chk)
	case schema.KindRegistryString:
		return fixRegistryString(probes, chk)
	case schema.KindProcessAbsent:
		return fixProcessAbsent(probes, chk)
	default:
		return "", fmt.Errorf("cannot auto-fix check kind %q", chk.Kind)
	}
}

func fixPowerScheme(probes *contract.ProbeSet, chk schema.CheckDefinition) (string, error) {
	expected := expectedOrDefault(chk, defaultExpectedScheme)

	target, ok := schema.SchemeFixTarget(expected)
	if !ok {
		return "", fmt.Errorf("Unknown power scheme: %s", expected)
	}
	if err := probes.Power.SetActiveScheme(target); err != nil {
		return "", err
	}
	return fmt.Sprintf("Set power plan to %s", expected), nil
}

func fixPowerMode(probes *contract.ProbeSet, chk schema.CheckDefinition) (string, error) {
	expected := expectedOrDefault(chk, defaultExpectedMode)

	target, ok := schema.ModeFixTarget(expected)
	if !ok {
		return "", fmt.Errorf("Unknown power mode: %s", expected)
	}
	if err := probes.Power.SetActiveMode(target); err != nil {
		return "", err
	}
	return fmt.Sprintf("Set power mode to %s", expected), nil
}

func fixRegistryDword(probes *contract.ProbeSet, chk schema.CheckDefinition) (string, error) {
	if chk.RegistryKey == "" {
		return "", errNoRegistryKey
	}
	expected := expectedOrDefault(chk, defaultExpectedDword)

	value, err := strconv.ParseUint(expected, 10, 32)
	if err != nil {
		return "", fmt.Errorf("Invalid DWORD value: %s", expected)
	}
	if err := probes.Registry.WriteDword(chk.RegistryPath, chk.RegistryKey, uint32(value)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Set %s to %d", chk.RegistryKey, value), nil
}

func fixRegistryString(probes *contract.ProbeSet, chk schema.CheckDefinition) (string, error) {
	if chk.RegistryKey == "" {
		return "", errNoRegistryKey
	}
	expected := chk.ExpectedValue

	if err := probes.Registry.WriteString(chk.RegistryPath, chk.RegistryKey, expected); err != nil {
		return "", err
	}
	return fmt.Sprintf("Set %s to '%s'", chk.RegistryKey, expected), nil
}

func fixProcessAbsent(probes *contract.ProbeSet, chk schema.CheckDefinition) (string, error) {
	if chk.ProcessName == "" {
		return "", errNoProcessName
	}

	count, err := probes.Process.TerminateAll(chk.ProcessName)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return fmt.Sprintf("Terminated %d instance(s) of %s", count, chk.ProcessName), nil
	}
	return fmt.Sprintf("%s is not running", chk.ProcessName), nil
}
