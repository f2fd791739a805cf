// Package agg has aggregation logic for git history output.
package agg

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/huangsam/gitreport/schema"
)

// shortstatPattern matches the summary line git prints after a commit with
// --shortstat, e.g. "3 files changed, 10 insertions(+), 2 deletions(-)".
// Insertions and deletions are each omitted when zero.
var shortstatPattern = regexp.MustCompile(
	`^(\d+) files? changed(?:, \d+ insertions?\(\+\))?(?:, \d+ deletions?\(-\))?$`,
)

// CountMonths tallies commits per YYYY-MM key. The key is the first seven
// characters of each date line. Lines are not validated, so a malformed
// line produces a malformed key rather than an error.
func CountMonths(dates []string) *schema.FrequencyTable[string] {
	months := schema.NewFrequencyTable[string]()
	for _, d := range dates {
		months.Add(monthKey(d))
	}
	return months
}

// monthKey truncates a date line to its YYYY-MM prefix.
func monthKey(date string) string {
	if len(date) <= schema.MonthKeyLength {
		return date
	}
	return date[:schema.MonthKeyLength]
}

// CountWeekdays tallies commits per weekday. Each line already is the
// abbreviated weekday name and is used as the key unchanged.
func CountWeekdays(weekdays []string) *schema.FrequencyTable[string] {
	days := schema.NewFrequencyTable[string]()
	for _, d := range weekdays {
		days.Add(d)
	}
	return days
}

// ParseShortstatLine extracts the changed-file count from a shortstat
// summary line. Commit hashes, blank lines and any other text return false.
func ParseShortstatLine(line string) (int, bool) {
	m := shortstatPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseFilesPerCommit scans `git log --shortstat` output and returns one
// file count per commit that has a summary line. Commits without one (empty
// commits, most merges) contribute nothing.
func ParseFilesPerCommit(lines []string) []int {
	counts := make([]int, 0, len(lines)/2)
	for _, l := range lines {
		if n, ok := ParseShortstatLine(l); ok {
			counts = append(counts, n)
		}
	}
	return counts
}

// Summarize computes count, sum, average, maximum and distribution over
// per-commit file counts. Every value is 0 for an empty input.
func Summarize(filesPerCommit []int) schema.ChangeSummary {
	summary := schema.ChangeSummary{
		TotalCommits: len(filesPerCommit),
		Distribution: schema.NewFrequencyTable[int](),
	}
	for _, n := range filesPerCommit {
		summary.TotalFiles += n
		summary.MaxFiles = max(summary.MaxFiles, n)
		summary.Distribution.Add(n)
	}
	if summary.TotalCommits > 0 {
		summary.AverageFiles = float64(summary.TotalFiles) / float64(summary.TotalCommits)
	}
	return summary
}

// BuildReport turns the raw output of the three history queries into a report.
func BuildReport(repoPath string, dates, weekdays, shortstat []string) *schema.Report {
	return &schema.Report{
		RepoPath: repoPath,
		Months:   CountMonths(dates),
		Weekdays: CountWeekdays(weekdays),
		Changes:  Summarize(ParseFilesPerCommit(shortstat)),
	}
}
