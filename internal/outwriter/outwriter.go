// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/gitreport/internal/contract"
	"github.com/huangsam/gitreport/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the text layout and provides a clean API for the core logic.
type OutWriter struct {
	status io.Writer // Receives status lines, never the report itself
}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{status: os.Stderr}
}

// WriteReport prints the report to stdout or to cfg.OutputFile, then a
// timing line on the status writer.
func (ow *OutWriter) WriteReport(report *schema.Report, cfg *contract.Config) error {
	err := writeWithFile(ow.status, cfg.OutputFile, func(w io.Writer) error {
		return writeReportText(w, report, cfg)
	}, "Wrote report")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ow.status, "Report completed in %v with %d git queries\n", report.Duration, len(schema.ReportQueries))
	return nil
}

// RenderReport returns the report text as a string.
func (ow *OutWriter) RenderReport(report *schema.Report, cfg *contract.Config) (string, error) {
	var sb strings.Builder
	if err := writeReportText(&sb, report, cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteQueries prints the table of git queries a report runs.
func (ow *OutWriter) WriteQueries(w io.Writer, queries []schema.Query) error {
	return writeQueriesTable(w, queries)
}
