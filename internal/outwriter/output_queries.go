package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/gitreport/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeQueriesTable renders the git queries behind each report section.
func writeQueriesTable(w io.Writer, queries []schema.Query) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	table.Header([]string{"Order", "Query", "Command", "Section"})

	// 2. Configure alignment for the command column to read naturally
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	// 3. Populate Rows
	var data [][]string
	for i, q := range queries {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			q.Name,
			"git " + strings.Join(q.Args, " "),
			strings.Trim(q.Section, "= "),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Each query walks the full history; %d git invocations per report\n", len(queries))
	return err
}
