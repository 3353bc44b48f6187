// Package main provides a performance benchmarking tool for the benchwatch engine.
// It measures check-cycle and fix-cycle latency across scenario sizes,
// running each phase multiple times, treating the first run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// The harness drives the same coordinator the CLI uses, but over in-memory
// probes, so the numbers isolate engine overhead (dispatch, locking, drift
// bookkeeping) from OS calls. No Windows subsystem is touched.
//
// Usage: go run benchmark/main.go
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/benchwatch/benchwatch/core"
	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/internal/notify"
	"github.com/benchwatch/benchwatch/internal/osprobe"
	"github.com/benchwatch/benchwatch/schema"
)

// benchRegistryPath is the fake hive path every generated check reads.
const benchRegistryPath = `HKCU\Software\BenchWatch\Bench`

// BenchmarkResult holds the result of one phase (cold run and average of warm runs).
type BenchmarkResult struct {
	Checks    int
	Operation string
	ColdTime  string
	WarmTime  string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Runs  int
	Sizes []int
}

func main() {
	config := BenchmarkConfig{
		Runs:  5,
		Sizes: []int{10, 100, 500, 2000},
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks executes all benchmark phases across configured scenario sizes.
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d scenario sizes, %d runs per phase\n",
		len(config.Sizes), config.Runs)

	dir, err := os.MkdirTemp("", "benchwatch_benchmark")
	if err != nil {
		return nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			fmt.Printf("Warning: failed to remove %s: %v\n", dir, rmErr)
		}
	}()

	for _, size := range config.Sizes {
		fmt.Printf("Benchmarking %d checks\n", size)
		suite, err := runBenchmarkSuite(config, dir, size)
		if err != nil {
			return nil, err
		}
		results = append(results, suite...)
	}

	return results, nil
}

// runBenchmarkSuite runs the passing, drifted and fix phases for one size.
func runBenchmarkSuite(config BenchmarkConfig, dir string, size int) ([]BenchmarkResult, error) {
	path := filepath.Join(dir, fmt.Sprintf("checklist_%d.json", size))
	if err := buildChecklist(path, size); err != nil {
		return nil, err
	}

	cfg := &contract.Config{ChecklistPath: path, Output: schema.TextOut}
	fakes := osprobe.NewFakeProbeSet()
	fakes.Registry.AddKey(benchRegistryPath)
	seedValues(fakes, size, 0)

	coord, err := core.NewCoordinator(cfg, fakes.Set(), notify.NewConsoleNotifierTo(io.Discard))
	if err != nil {
		return nil, err
	}

	// Helper to time one phase; prepare resets probe state before each run.
	runPhase := func(operation string, prepare func(), work func() error) (BenchmarkResult, error) {
		fmt.Printf("  %s phase (%d runs)\n", operation, config.Runs)

		var times []float64
		for run := 1; run <= config.Runs; run++ {
			prepare()
			start := time.Now()
			if err := work(); err != nil {
				return BenchmarkResult{}, fmt.Errorf("%s run %d: %w", operation, run, err)
			}
			times = append(times, float64(time.Since(start).Microseconds())/1000.0)
		}

		var sum float64
		for _, t := range times[1:] {
			sum += t
		}
		result := BenchmarkResult{
			Checks:    size,
			Operation: operation,
			ColdTime:  fmt.Sprintf("%.3fms", times[0]),
			WarmTime:  fmt.Sprintf("%.3fms", sum/float64(len(times)-1)),
		}
		fmt.Printf("  Cold time: %s, Warm average: %s\n", result.ColdTime, result.WarmTime)
		return result, nil
	}

	runChecks := func() error {
		_, _, err := coord.RunChecks()
		return err
	}

	var results []BenchmarkResult

	// Phase 1: every check passes.
	result, err := runPhase("check-pass",
		func() { seedValues(fakes, size, 0) },
		runChecks)
	if err != nil {
		return nil, err
	}
	results = append(results, result)

	// Phase 2: half the checks drifted.
	result, err = runPhase("check-drift",
		func() { seedValues(fakes, size, size/2) },
		runChecks)
	if err != nil {
		return nil, err
	}
	results = append(results, result)

	// Phase 3: fix the drifted half. Each run re-drifts and re-evaluates
	// outside the timed section, so only the fix pass is measured.
	result, err = runPhase("fix",
		func() {
			seedValues(fakes, size, size/2)
			if _, _, err := coord.RunChecks(); err != nil {
				fmt.Printf("Warning: drift evaluation failed: %v\n", err)
			}
		},
		func() error {
			coord.FixFailing()
			return nil
		})
	if err != nil {
		return nil, err
	}
	results = append(results, result)

	return results, nil
}

// buildChecklist writes a checklist whose single scenario holds size
// registry checks against the fake hive.
func buildChecklist(path string, size int) error {
	checks := make([]schema.CheckDefinition, 0, size)
	for i := 0; i < size; i++ {
		checks = append(checks, schema.CheckDefinition{
			ID:            fmt.Sprintf("slot_%04d", i),
			Name:          fmt.Sprintf("Slot %04d", i),
			Kind:          schema.KindRegistryDword,
			Enabled:       true,
			RegistryPath:  benchRegistryPath,
			RegistryKey:   fmt.Sprintf("Value%04d", i),
			ExpectedValue: "1",
		})
	}

	root := &schema.ConfigRoot{
		Version:         schema.CurrentConfigVersion,
		DefaultScenario: "bench",
		Scenarios: map[string]schema.Scenario{
			"bench": {
				Name:                "Benchmark",
				Description:         "Generated load scenario",
				PollIntervalSeconds: 3600,
				NotifyOnDrift:       false,
				Checks:              checks,
			},
		},
	}
	return root.Save(path)
}

// seedValues seeds every fake registry value with its expected state,
// setting the first drifted values wrong.
func seedValues(fakes *osprobe.FakeProbeSet, size, drifted int) {
	for i := 0; i < size; i++ {
		value := uint32(1)
		if i < drifted {
			value = 0
		}
		fakes.Registry.SeedDword(benchRegistryPath, fmt.Sprintf("Value%04d", i), value)
	}
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/benchwatch_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"checks", "operation", "cold_ms", "warm_avg_ms"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		row := []string{fmt.Sprintf("%d", result.Checks), result.Operation, result.ColdTime, result.WarmTime}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printOperationSummary(results, "check-pass", "Passing cycles:")
	printOperationSummary(results, "check-drift", "Drifted cycles:")
	printOperationSummary(results, "fix", "Fix cycles:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printOperationSummary displays results for a specific phase.
func printOperationSummary(results []BenchmarkResult, operation, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Operation == operation {
			fmt.Printf("  %6d checks: Cold: %s, Warm: %s\n", result.Checks, result.ColdTime, result.WarmTime)
		}
	}
}
