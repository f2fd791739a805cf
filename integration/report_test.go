//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/huangsam/gitreport/internal/repotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runBinary runs gitreport with args and returns stdout, stderr and the exit code.
func runBinary(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	return runBinaryWithEnv(t, dir, nil, args...)
}

// runBinaryWithEnv is runBinary with extra KEY=VALUE environment entries.
func runBinaryWithEnv(t *testing.T, dir string, env []string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(getBinary(), args...)
	cmd.Dir = dir
	cmd.Env = append(append(os.Environ(), "LC_ALL=C"), env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}
	return stdout.String(), stderr.String(), code
}

func TestReportOnSampleHistory(t *testing.T) {
	repo := repotest.NewRepo(t, repotest.SampleHistory()...)

	stdout, stderr, code := runBinary(t, repo, "--color=no")
	require.Equal(t, 0, code, stderr)

	expected := `=== COMMITS PER MONTH ===
2024-01: 2
2024-02: 1

=== COMMITS PER WEEKDAY ===
Tue: 1
Thu: 1
Fri: 1

=== FILES TOUCHED PER COMMIT ===
Commits with changes: 2
Total files changed: 4
Average files per commit: 2.00
Max files in a commit: 3

Distribution (commits touching N files):
1 files: 1 commits
3 files: 1 commits
`
	assert.Equal(t, expected, stdout)
}

func TestReportPositionalPath(t *testing.T) {
	repo := repotest.NewRepo(t, repotest.SampleHistory()...)

	stdout, stderr, code := runBinary(t, t.TempDir(), "--color=no", repo)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "2024-02: 1\n")
}

func TestReportOutputFile(t *testing.T) {
	repo := repotest.NewRepo(t, repotest.SampleHistory()...)
	outPath := filepath.Join(t.TempDir(), "report.txt")

	stdout, stderr, code := runBinary(t, repo, "--output-file", outPath)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Wrote report to "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\x1b[", "Report files never carry escape codes")
	assert.Contains(t, string(data), "Max files in a commit: 3\n")
}

func TestReportOutsideRepository(t *testing.T) {
	repotest.SkipIfGitNotAvailable(t)
	dir := t.TempDir()

	cmd := exec.Command(getBinary(), "--color=no")
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_CEILING_DIRECTORIES="+filepath.Dir(dir))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.NotZero(t, exitErr.ExitCode())
	assert.Empty(t, stdout.String(), "No partial report on failure")
	assert.Contains(t, stderr.String(), "git log")
}

// TestReportVerification checks the month totals against git rev-list.
func TestReportVerification(t *testing.T) {
	repo := repotest.NewRepo(t, repotest.SampleHistory()...)

	stdout, stderr, code := runBinary(t, repo, "--color=no")
	require.Equal(t, 0, code, stderr)

	total := 0
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "=") || !strings.HasPrefix(line, "20") {
			continue
		}
		_, countStr, ok := strings.Cut(line, ": ")
		require.True(t, ok, line)
		n, err := strconv.Atoi(countStr)
		require.NoError(t, err)
		total += n
	}

	out, err := exec.Command("git", "-C", repo, "rev-list", "--count", "HEAD").Output()
	require.NoError(t, err)
	expected, err := strconv.Atoi(strings.TrimSpace(string(out)))
	require.NoError(t, err)
	assert.Equal(t, expected, total)
}

func TestQueriesCommand(t *testing.T) {
	stdout, stderr, code := runBinary(t, t.TempDir(), "queries")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "git log --shortstat --pretty=%h")
}

// barLine is the sample January month line with a ten-cell bar.
var barLine = "2024-01: 2 " + strings.Repeat("█", 10) + "\n"

func TestReportBarsFromEnvironment(t *testing.T) {
	repo := repotest.NewRepo(t, repotest.SampleHistory()...)

	stdout, stderr, code := runBinaryWithEnv(t, repo, []string{"GITREPORT_BARS=true"}, "--color=no", "--width=34")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, barLine)

	stdout, stderr, code = runBinaryWithEnv(t, repo, []string{"GITREPORT_BARS=false"}, "--color=no", "--width=34")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "2024-01: 2\n", "Bars stay off when the environment says so")
}

func TestReportBarsFromConfigFile(t *testing.T) {
	repo := repotest.NewRepo(t, repotest.SampleHistory()...)
	workDir := t.TempDir()
	config := "bars: true\nwidth: 34\ncolor: \"no\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ".gitreport.yaml"), []byte(config), 0o644))

	stdout, stderr, code := runBinary(t, workDir, repo)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, barLine)
	assert.NotContains(t, stdout, "\x1b[")
}

func TestReportInvalidEnvironmentValue(t *testing.T) {
	repo := repotest.NewRepo(t, repotest.SampleHistory()...)

	stdout, stderr, code := runBinaryWithEnv(t, repo, []string{"GITREPORT_COLOR=sometimes"})
	assert.NotZero(t, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid --color value")
}

func TestReportTimingOnStderr(t *testing.T) {
	repo := repotest.NewRepo(t, repotest.SampleHistory()...)

	stdout, stderr, code := runBinary(t, repo, "--color=no")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "Report completed in")
	assert.NotContains(t, stdout, "completed")
}
