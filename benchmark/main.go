// Package main provides a performance benchmarking tool for the gitreport CLI.
// It measures how long a full report takes across repositories of different
// history sizes, running each variant several times and recording the first
// run as cold and the average of the rest as warm. Results go to a CSV file
// and a summary table.
//
// Prerequisites:
// - gitreport binary installed and available in PATH
// - Test repositories cloned to the specified base directory
// - Git repositories: csv-parser, fd, git, kubernetes
//
// Usage: go run benchmark/main.go [repo-base-dir]
//
//	repo-base-dir: Directory containing test repositories
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

// BenchmarkResult holds the result of one report variant on one repository.
type BenchmarkResult struct {
	Repository string
	Variant    string
	ColdTime   string
	WarmTime   string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RepoBase  string
	Timeout   time.Duration
	Runs      int
	TestRepos []string
	Variants  map[string][]string // Variant name -> extra CLI args
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [repo-base-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		RepoBase:  os.Args[1],
		Timeout:   5 * time.Minute,
		Runs:      4,
		TestRepos: []string{"csv-parser", "fd", "git", "kubernetes"},
		Variants: map[string][]string{
			"plain": {"--color=no"},
			"bars":  {"--color=no", "--bars", "--width=100"},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	if err := printSummary(results); err != nil {
		fmt.Printf("Failed to print summary: %v\n", err)
		os.Exit(1)
	}
}

// checkPrerequisites verifies that the gitreport binary and test repositories exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("gitreport"); err != nil {
		return fmt.Errorf("gitreport binary not found in PATH")
	}

	for _, repo := range config.TestRepos {
		repoPath := filepath.Join(config.RepoBase, repo)
		if _, err := os.Stat(repoPath); os.IsNotExist(err) {
			return fmt.Errorf("repository %s not found at %s", repo, repoPath)
		}
	}

	return nil
}

// runBenchmarks executes every variant across configured repositories
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d repos, %v timeout, %d runs per variant\n",
		len(config.TestRepos), config.Timeout, config.Runs)

	for _, repo := range config.TestRepos {
		repoPath := filepath.Join(config.RepoBase, repo)
		for _, variant := range []string{"plain", "bars"} {
			fmt.Printf("Running %s report on %s\n", variant, repo)
			cold, warm := runBenchmark(config, repoPath, config.Variants[variant])
			result := BenchmarkResult{
				Repository: repo,
				Variant:    variant,
				ColdTime:   formatSeconds(cold),
				WarmTime:   formatAverage(warm),
			}
			fmt.Printf("  Cold time: %s, Warm average: %s\n", result.ColdTime, result.WarmTime)
			results = append(results, result)
		}
	}

	return results
}

// runBenchmark runs gitreport numRuns times and returns the cold time and warm times
func runBenchmark(config BenchmarkConfig, repoPath string, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("gitreport", args...)
		cmd.Dir = repoPath

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.Output()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
			<-done
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks that the output holds every report section
func isSuccess(output []byte) bool {
	out := string(output)
	return strings.Contains(out, "=== COMMITS PER MONTH ===") &&
		strings.Contains(out, "=== FILES TOUCHED PER COMMIT ===") &&
		strings.Contains(out, "Distribution (commits touching N files):")
}

func formatSeconds(s float64) string {
	if s <= 0 {
		return "TIMEOUT"
	}
	return fmt.Sprintf("%.3fs", s)
}

func formatAverage(times []float64) string {
	if len(times) == 0 {
		return "TIMEOUT"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("gitreport_benchmark_%s.csv", timestamp))

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

	if err := writer.Write([]string{"repo", "variant", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Repository, result.Variant, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results as a table
func printSummary(results []BenchmarkResult) error {
	fmt.Printf("Benchmark complete\n")

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Repository", "Variant", "Cold", "Warm"})
	var data [][]string
	for _, r := range results {
		data = append(data, []string{r.Repository, r.Variant, r.ColdTime, r.WarmTime})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
