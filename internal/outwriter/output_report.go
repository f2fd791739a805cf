package outwriter

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/gitreport/internal/contract"
	"github.com/huangsam/gitreport/schema"
)

// barRune draws the --bars histogram.
const barRune = "█"

// reportStyle carries the per-run decoration settings.
type reportStyle struct {
	colors   bool
	barWidth int // 0 disables bars
}

// writeReportText writes the four report sections in their fixed layout.
func writeReportText(w io.Writer, report *schema.Report, cfg *contract.Config) error {
	style := reportStyle{colors: cfg.UseColors}
	if cfg.Bars {
		style.barWidth = GetMaxBarWidth(cfg)
	}

	// 1. Commits per month, ascending YYYY-MM
	if err := writeHeader(w, schema.MonthsHeader, false, style); err != nil {
		return err
	}
	if err := writeKeyCounts(w, report.Months.Sorted(), "%s: %d", style); err != nil {
		return err
	}

	// 2. Commits per weekday, Mon..Sun
	if err := writeHeader(w, schema.WeekdaysHeader, true, style); err != nil {
		return err
	}
	if err := writeKeyCounts(w, report.OrderedWeekdays(), "%s: %d", style); err != nil {
		return err
	}

	// 3. Files touched per commit
	if err := writeHeader(w, schema.ChangesHeader, true, style); err != nil {
		return err
	}
	changes := report.Changes
	if _, err := fmt.Fprintf(w, "Commits with changes: %d\n", changes.TotalCommits); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total files changed: %d\n", changes.TotalFiles); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Average files per commit: %.2f\n", changes.AverageFiles); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Max files in a commit: %d\n", changes.MaxFiles); err != nil {
		return err
	}

	// 4. Distribution, ascending file count
	if err := writeHeader(w, schema.DistributionHeader, true, style); err != nil {
		return err
	}
	var rows []schema.KeyCount[int]
	if changes.Distribution != nil {
		rows = changes.Distribution.Sorted()
	}
	return writeKeyCounts(w, rows, "%d files: %d commits", style)
}

// writeHeader writes a section header, optionally preceded by a blank line.
func writeHeader(w io.Writer, title string, blankBefore bool, style reportStyle) error {
	if blankBefore {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if style.colors {
		_, err := contract.HeaderColor.Fprintln(w, title)
		return err
	}
	_, err := fmt.Fprintln(w, title)
	return err
}

// writeKeyCounts writes one line per row using layout, which must take the
// key and the count in that order.
func writeKeyCounts[K cmp.Ordered](w io.Writer, rows []schema.KeyCount[K], layout string, style reportStyle) error {
	peak := 0
	for _, r := range rows {
		peak = max(peak, r.Count)
	}
	for _, r := range rows {
		line := fmt.Sprintf(layout, r.Key, r.Count)
		if bar := renderBar(r.Count, peak, style); bar != "" {
			line += " " + bar
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// renderBar returns a bar proportional to count/peak, at least one cell
// long for any non-zero count. It returns "" when bars are disabled.
func renderBar(count, peak int, style reportStyle) string {
	if style.barWidth <= 0 || peak <= 0 || count <= 0 {
		return ""
	}
	cells := (count*style.barWidth + peak - 1) / peak
	bar := strings.Repeat(barRune, cells)
	if style.colors {
		return contract.BarColor.Sprint(bar)
	}
	return bar
}
