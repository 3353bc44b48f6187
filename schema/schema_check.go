package schema

// ErrorCurrent is the Current value of a result whose probe failed outright.
// Such results count as failing everywhere and carry an empty Expected.
const ErrorCurrent = "ERROR"

// CheckResult holds the outcome of evaluating one check against live OS state.
// Results are rebuilt wholesale every cycle and never partially updated.
type CheckResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Current  string `json:"current"`
	Expected string `json:"expected"`
	Message  string `json:"message"`
}

// Errored reports whether the result came from a probe failure rather than
// a value comparison.
func (r CheckResult) Errored() bool {
	return !r.Passed && r.Current == ErrorCurrent
}

// FixCapability classifies whether a failing check can be auto-remediated.
// Reason is set only for CapabilityManual.
type FixCapability struct {
	Kind   CapabilityKind `json:"kind"`
	Reason string         `json:"reason,omitempty"`
}

// FixResult holds the outcome of one remediation attempt.
type FixResult struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Direct returns the capability for checks fixable without elevation.
func Direct() FixCapability {
	return FixCapability{Kind: CapabilityDirect}
}

// RequiresElevation returns the capability for checks whose fix needs admin rights.
func RequiresElevation() FixCapability {
	return FixCapability{Kind: CapabilityRequiresElevation}
}

// Manual returns the capability for checks that cannot be auto-fixed.
func Manual(reason string) FixCapability {
	return FixCapability{Kind: CapabilityManual, Reason: reason}
}
