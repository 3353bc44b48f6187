package schema

// StatusFromResults reduces a result set to its aggregate status.
// An empty set counts as all-passed.
func StatusFromResults(results []CheckResult) OverallStatus {
	if len(results) == 0 {
		return AllPassed
	}
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	switch passed {
	case len(results):
		return AllPassed
	case 0:
		return AllFailed
	default:
		return SomeFailed
	}
}

// CountPassed returns how many results passed.
func CountPassed(results []CheckResult) int {
	n := 0
	for _, r := range results {
		if r.Passed {
			n++
		}
	}
	return n
}
