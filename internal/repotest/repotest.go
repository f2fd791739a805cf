// Package repotest builds throwaway git repositories for tests.
package repotest

import (
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"
)

// Commit describes one commit of a fixture repository. A commit with no
// files is created with --allow-empty and gets no shortstat line.
type Commit struct {
	Date    string            // Author and committer date, e.g. "2024-01-05T12:00:00+00:00"
	Files   map[string]string // Path -> content written before committing
	Message string
}

// SampleHistory is a three-commit history used across packages:
//
//	2024-01-05 Fri  3 files
//	2024-01-09 Tue  empty
//	2024-02-01 Thu  1 file
func SampleHistory() []Commit {
	return []Commit{
		{
			Date:    "2024-01-05T12:00:00+00:00",
			Files:   map[string]string{"a.txt": "a\n", "b.txt": "b\n", "c.txt": "c\n"},
			Message: "Add three files",
		},
		{
			Date:    "2024-01-09T12:00:00+00:00",
			Message: "Empty commit where no files changed",
		},
		{
			Date:    "2024-02-01T12:00:00+00:00",
			Files:   map[string]string{"a.txt": "a2\n"},
			Message: "Update a",
		},
	}
}

// SkipIfGitNotAvailable skips the test if git binary is not found in PATH.
func SkipIfGitNotAvailable(tb testing.TB) {
	tb.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		tb.Skipf("git binary not found in PATH: %v", err)
	}
}

// NewRepo initializes a repository in a temp dir and records the commits in
// order. It also pins LC_ALL=C so weekday names come out in English.
func NewRepo(tb testing.TB, commits ...Commit) string {
	tb.Helper()
	SkipIfGitNotAvailable(tb)
	tb.Setenv("LC_ALL", "C")

	dir := tb.TempDir()
	run(tb, dir, "", "init", "-q")

	for _, c := range commits {
		if len(c.Files) == 0 {
			run(tb, dir, c.Date, "commit", "-q", "--allow-empty", "-m", c.Message)
			continue
		}
		paths := make([]string, 0, len(c.Files))
		for path, content := range c.Files {
			full := filepath.Join(dir, path)
			if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
				tb.Fatalf("mkdir %s: %v", path, err)
			}
			if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
				tb.Fatalf("write %s: %v", path, err)
			}
			paths = append(paths, path)
		}
		slices.Sort(paths)
		run(tb, dir, "", append([]string{"add", "--"}, paths...)...)
		run(tb, dir, c.Date, "commit", "-q", "-m", c.Message)
	}
	return dir
}

// run executes git in dir with a fixed identity, failing the test on error.
func run(tb testing.TB, dir, date string, args ...string) {
	tb.Helper()
	fullArgs := append([]string{
		"-C", dir,
		"-c", "user.name=gitreport",
		"-c", "user.email=gitreport@example.com",
		"-c", "commit.gpgsign=false",
	}, args...)
	cmd := exec.Command("git", fullArgs...)
	cmd.Env = os.Environ()
	if date != "" {
		cmd.Env = append(cmd.Env, "GIT_AUTHOR_DATE="+date, "GIT_COMMITTER_DATE="+date)
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		tb.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}
