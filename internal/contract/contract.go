// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "context"

// GitClient defines the git operations needed to build a report.
// This allows the core logic to be tested without needing a real git executable.
type GitClient interface {
	// Run executes a git command against repoPath and returns stdout as lines.
	// Trailing whitespace is stripped first, so empty output yields no lines.
	Run(ctx context.Context, repoPath string, args ...string) ([]string, error)

	// GetMonthLog returns one YYYY-MM-DD date per commit.
	GetMonthLog(ctx context.Context, repoPath string) ([]string, error)

	// GetWeekdayLog returns one abbreviated weekday name per commit.
	GetWeekdayLog(ctx context.Context, repoPath string) ([]string, error)

	// GetShortstatLog returns abbreviated commit hashes, each followed by a
	// shortstat summary line when the commit changed at least one file.
	GetShortstatLog(ctx context.Context, repoPath string) ([]string, error)
}
