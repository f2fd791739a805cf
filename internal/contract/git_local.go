package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode"

	"github.com/huangsam/gitreport/schema"
)

// ToolInvocationError is returned when git cannot be started or exits with
// a non-zero status.
type ToolInvocationError struct {
	Args     []string // Arguments after "-C <repo>"
	ExitCode int      // Exit status, or -1 when git never ran
	Stderr   string   // Trimmed standard error of the subprocess
	Err      error    // Underlying exec error
}

func (e *ToolInvocationError) Error() string {
	cmdline := "git " + strings.Join(e.Args, " ")
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s could not run: %v. Ensure Git is installed and available on your PATH", cmdline, e.Err)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", cmdline, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s exited with code %d", cmdline, e.ExitCode)
}

func (e *ToolInvocationError) Unwrap() error {
	return e.Err
}

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout split into lines.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]string, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, &ToolInvocationError{
			Args:     args,
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(string(exitErr.Stderr)),
			Err:      err,
		}
	} else if err != nil {
		return nil, &ToolInvocationError{Args: args, ExitCode: -1, Err: err}
	}
	return splitLines(out), nil
}

// GetMonthLog implements the GitClient interface.
func (c *LocalGitClient) GetMonthLog(ctx context.Context, repoPath string) ([]string, error) {
	return c.Run(ctx, repoPath, schema.MonthQuery.Args...)
}

// GetWeekdayLog implements the GitClient interface.
func (c *LocalGitClient) GetWeekdayLog(ctx context.Context, repoPath string) ([]string, error) {
	return c.Run(ctx, repoPath, schema.WeekdayQuery.Args...)
}

// GetShortstatLog implements the GitClient interface.
func (c *LocalGitClient) GetShortstatLog(ctx context.Context, repoPath string) ([]string, error) {
	return c.Run(ctx, repoPath, schema.ShortstatQuery.Args...)
}

// splitLines strips trailing whitespace from out and splits it on newlines.
// Empty output yields an empty slice, never a slice holding one empty string.
func splitLines(out []byte) []string {
	text := strings.TrimRightFunc(string(out), unicode.IsSpace)
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
