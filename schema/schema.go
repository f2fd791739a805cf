// Package schema has the models and constants shared by all parts of gitreport.
package schema

import (
	"cmp"
	"slices"
	"time"
)

// KeyCount is a single row of a frequency table.
type KeyCount[K cmp.Ordered] struct {
	Key   K
	Count int
}

// FrequencyTable maps a discrete key to the number of times it was observed.
// Keys are remembered in order of first occurrence; display code asks for
// the sorted view instead.
type FrequencyTable[K cmp.Ordered] struct {
	counts map[K]int
	order  []K
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable[K cmp.Ordered]() *FrequencyTable[K] {
	return &FrequencyTable[K]{counts: make(map[K]int)}
}

// Add records one occurrence of key.
func (t *FrequencyTable[K]) Add(key K) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// Count returns the number of occurrences of key (0 if never seen).
func (t *FrequencyTable[K]) Count(key K) int {
	return t.counts[key]
}

// Has reports whether key was observed at least once.
func (t *FrequencyTable[K]) Has(key K) bool {
	_, ok := t.counts[key]
	return ok
}

// Len returns the number of distinct keys.
func (t *FrequencyTable[K]) Len() int {
	return len(t.order)
}

// Total returns the sum of all counts.
func (t *FrequencyTable[K]) Total() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Keys returns the keys in order of first occurrence.
func (t *FrequencyTable[K]) Keys() []K {
	return slices.Clone(t.order)
}

// Sorted returns every row in ascending key order.
func (t *FrequencyTable[K]) Sorted() []KeyCount[K] {
	keys := slices.Sorted(slices.Values(t.order))
	rows := make([]KeyCount[K], 0, len(keys))
	for _, k := range keys {
		rows = append(rows, KeyCount[K]{Key: k, Count: t.counts[k]})
	}
	return rows
}

// InOrder returns rows for the given keys only, in the given order.
// Keys that were never observed are skipped, as are observed keys missing
// from the list.
func (t *FrequencyTable[K]) InOrder(keys []K) []KeyCount[K] {
	rows := make([]KeyCount[K], 0, len(keys))
	for _, k := range keys {
		if c, ok := t.counts[k]; ok {
			rows = append(rows, KeyCount[K]{Key: k, Count: c})
		}
	}
	return rows
}

// ChangeSummary holds the file-count statistics over commits that have a
// shortstat line. Empty and merge commits are not part of it.
type ChangeSummary struct {
	TotalCommits int                  // Commits with at least one changed file
	TotalFiles   int                  // Sum of changed files over those commits
	AverageFiles float64              // TotalFiles / TotalCommits, 0 when there are no commits
	MaxFiles     int                  // Largest per-commit file count, 0 when there are no commits
	Distribution *FrequencyTable[int] // Number of commits per file count
}

// Report is everything the report printer needs for one run.
type Report struct {
	RepoPath string                  // Repository the queries ran against
	Months   *FrequencyTable[string] // Commits per YYYY-MM key
	Weekdays *FrequencyTable[string] // Commits per weekday abbreviation
	Changes  ChangeSummary           // Files touched per commit
	Duration time.Duration           // Wall time of the three history queries
}

// OrderedWeekdays returns the weekday rows in Mon..Sun order. Days with no
// commits and keys that are not canonical weekday codes are left out.
func (r *Report) OrderedWeekdays() []KeyCount[string] {
	return r.Weekdays.InOrder(WeekdayOrder)
}
