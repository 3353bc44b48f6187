package core

import "github.com/benchwatch/benchwatch/schema"

// DriftDetector tracks per-check pass/fail across cycles and selects the
// checks that newly transitioned from passing to failing. A check absent
// from the baseline counts as previously passing, so a first-ever failure
// is drift. The detector only selects; formatting and delivery belong to
// the notification collaborator.
type DriftDetector struct {
	baseline map[string]bool
}

// NewDriftDetector returns a detector with an empty baseline.
func NewDriftDetector() *DriftDetector {
	return &DriftDetector{baseline: make(map[string]bool)}
}

// Observe compares results against the baseline and returns the drifted
// subset in result order. The baseline is updated for every result, so a
// check that keeps failing drifts exactly once, on the transition.
func (d *DriftDetector) Observe(results []schema.CheckResult) []schema.CheckResult {
	if d.baseline == nil {
		d.baseline = make(map[string]bool)
	}

	var drifted []schema.CheckResult
	for _, r := range results {
		prior, seen := d.baseline[r.ID]
		if !seen {
			prior = true
		}
		if prior && !r.Passed {
			drifted = append(drifted, r)
		}
		d.baseline[r.ID] = r.Passed
	}
	return drifted
}

// Reset empties the baseline, as on a scenario switch.
func (d *DriftDetector) Reset() {
	d.baseline = make(map[string]bool)
}
