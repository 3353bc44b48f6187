package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/benchwatch/benchwatch/schema"
)

// Result label constants.
const (
	PassValue  = "PASS"  // Check matched its expectation
	FailValue  = "FAIL"  // Check value drifted from its expectation
	ErrorValue = "ERROR" // Check could not be evaluated
)

// Color variables for console output.
var (
	PassColor  = color.New(color.FgGreen)               // passColor marks checks in their expected state.
	FailColor  = color.New(color.FgRed, color.Bold)     // failColor marks drifted checks.
	ErrorColor = color.New(color.FgMagenta, color.Bold) // errorColor marks probe failures, distinct from drift.
	WarnColor  = color.New(color.FgYellow)              // warnColor represents partial degradation.
	InfoColor  = color.New(color.FgCyan)                // infoColor represents neutral status output.
)

// GetPlainResultLabel returns a plain text label for one check result.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainResultLabel(r schema.CheckResult) string {
	switch {
	case r.Passed:
		return PassValue
	case r.Errored():
		return ErrorValue
	default:
		return FailValue
	}
}

// GetColorResultLabel returns a colored text label for console output (table).
// It uses GetPlainResultLabel to determine the string, and then applies the
// appropriate color.
func GetColorResultLabel(r schema.CheckResult) string {
	text := GetPlainResultLabel(r)

	switch text {
	case PassValue:
		return PassColor.Sprint(text)
	case ErrorValue:
		return ErrorColor.Sprint(text)
	default: // "FAIL"
		return FailColor.Sprint(text)
	}
}

// GetColorStatusLabel returns the colored aggregate status label for console output.
func GetColorStatusLabel(status schema.OverallStatus) string {
	text := schema.StatusLabel(status)

	switch status {
	case schema.AllPassed:
		return PassColor.Sprint(text)
	case schema.SomeFailed:
		return WarnColor.Sprint(text)
	default: // AllFailed
		return FailColor.Sprint(text)
	}
}

// GetCapabilityLabel returns a short text label for a fix capability.
func GetCapabilityLabel(capability schema.FixCapability) string {
	switch capability.Kind {
	case schema.CapabilityDirect:
		return "auto"
	case schema.CapabilityRequiresElevation:
		return "admin"
	default:
		return "manual"
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncatePath truncates a registry path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and at
// least one character of content. Without this check, small maxWidth values could
// cause slice bounds errors in the truncation calculation.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
