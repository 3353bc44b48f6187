package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromResults(t *testing.T) {
	pass := CheckResult{ID: "p", Passed: true}
	fail := CheckResult{ID: "f", Passed: false}

	tests := []struct {
		name    string
		results []CheckResult
		want    OverallStatus
	}{
		{"empty is all passed", nil, AllPassed},
		{"single pass", []CheckResult{pass}, AllPassed},
		{"all pass", []CheckResult{pass, pass, pass}, AllPassed},
		{"single fail", []CheckResult{fail}, AllFailed},
		{"all fail", []CheckResult{fail, fail}, AllFailed},
		{"mixed", []CheckResult{pass, fail}, SomeFailed},
		{"mostly failing is still some", []CheckResult{fail, fail, pass}, SomeFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromResults(tt.results))
		})
	}
}

func TestCountPassed(t *testing.T) {
	results := []CheckResult{
		{ID: "a", Passed: true},
		{ID: "b", Passed: false},
		{ID: "c", Passed: true},
	}
	assert.Equal(t, 2, CountPassed(results))
	assert.Equal(t, 0, CountPassed(nil))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "All OK", StatusLabel(AllPassed))
	assert.Equal(t, "Some Issues", StatusLabel(SomeFailed))
	assert.Equal(t, "Action Needed", StatusLabel(AllFailed))
}
