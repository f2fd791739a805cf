package outwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/huangsam/gitreport/core/agg"
	"github.com/huangsam/gitreport/internal/contract"
	"github.com/huangsam/gitreport/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleReport mirrors a three-commit history: two commits in January (one
// of them empty) and one in February.
func sampleReport() *schema.Report {
	return agg.BuildReport(
		"/repo",
		[]string{"2024-02-01", "2024-01-09", "2024-01-05"},
		[]string{"Thu", "Tue", "Fri"},
		[]string{
			"c3c3c3c", "", " 1 file changed, 1 insertion(+)",
			"b2b2b2b",
			"a1a1a1a", "", " 3 files changed, 3 insertions(+)",
		},
	)
}

func TestWriteReportText_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReportText(&buf, sampleReport(), &contract.Config{}))

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
	if diff := cmp.Diff(expected, buf.String()); diff != "" {
		t.Errorf("report layout mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteReportText_SingleCommit(t *testing.T) {
	report := agg.BuildReport(
		"/repo",
		[]string{"2024-01-05"},
		[]string{"Fri"},
		[]string{"abc123", "3 files changed, 10 insertions(+), 2 deletions(-)"},
	)

	var buf bytes.Buffer
	require.NoError(t, writeReportText(&buf, report, &contract.Config{}))
	out := buf.String()

	assert.Contains(t, out, "2024-01: 1\n")
	assert.Contains(t, out, "Fri: 1\n")
	assert.Contains(t, out, "Commits with changes: 1\n")
	assert.Contains(t, out, "Total files changed: 3\n")
	assert.Contains(t, out, "Average files per commit: 3.00\n")
	assert.Contains(t, out, "Max files in a commit: 3\n")
	assert.True(t, strings.HasSuffix(out, "3 files: 1 commits\n"))
}

func TestWriteReportText_EmptyHistory(t *testing.T) {
	report := agg.BuildReport("/repo", nil, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, writeReportText(&buf, report, &contract.Config{}))

	expected := `=== COMMITS PER MONTH ===

=== COMMITS PER WEEKDAY ===

=== FILES TOUCHED PER COMMIT ===
Commits with changes: 0
Total files changed: 0
Average files per commit: 0.00
Max files in a commit: 0

Distribution (commits touching N files):
`
	assert.Equal(t, expected, buf.String())
}

func TestWriteReportText_AverageRounding(t *testing.T) {
	report := agg.BuildReport("/repo", nil, nil, []string{
		"a", "1 file changed", "b", "1 file changed", "c", "2 files changed",
	})

	var buf bytes.Buffer
	require.NoError(t, writeReportText(&buf, report, &contract.Config{}))
	assert.Contains(t, buf.String(), "Average files per commit: 1.33\n")
}

func TestWriteReportText_NonCanonicalWeekdayDropped(t *testing.T) {
	report := agg.BuildReport("/repo", []string{"2024-01-01", "2024-01-02"}, []string{"Mon", "lun."}, nil)

	var buf bytes.Buffer
	require.NoError(t, writeReportText(&buf, report, &contract.Config{}))
	assert.Contains(t, buf.String(), "Mon: 1\n")
	assert.NotContains(t, buf.String(), "lun.")
}

func TestWriteReportText_Bars(t *testing.T) {
	cfg := &contract.Config{Bars: true, Width: labelReserve + minBarWidth}

	var buf bytes.Buffer
	require.NoError(t, writeReportText(&buf, sampleReport(), cfg))
	out := buf.String()

	assert.Contains(t, out, "2024-01: 2 "+strings.Repeat(barRune, 10)+"\n")
	assert.Contains(t, out, "2024-02: 1 "+strings.Repeat(barRune, 5)+"\n")
	assert.Contains(t, out, "Commits with changes: 2\n", "Summary lines never get bars")
}

func TestWriteReportText_Colors(t *testing.T) {
	previous := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = previous })

	var buf bytes.Buffer
	require.NoError(t, writeReportText(&buf, sampleReport(), &contract.Config{UseColors: true}))
	out := buf.String()

	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, schema.MonthsHeader)
	assert.Contains(t, out, "2024-01: 2\n", "Count lines stay plain")
}

func TestRenderBar(t *testing.T) {
	style := reportStyle{barWidth: 10}

	tests := []struct {
		name        string
		count, peak int
		cells       int
	}{
		{"peak fills the width", 7, 7, 10},
		{"half", 5, 10, 5},
		{"rounds up", 1, 3, 4},
		{"tiny count still visible", 1, 1000, 1},
		{"zero count", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderBar(tt.count, tt.peak, style)
			assert.Equal(t, strings.Repeat(barRune, tt.cells), bar)
		})
	}

	t.Run("disabled", func(t *testing.T) {
		assert.Empty(t, renderBar(5, 10, reportStyle{}))
	})
}
