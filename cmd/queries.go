package cmd

import (
	"github.com/huangsam/gitreport/internal/outwriter"
	"github.com/huangsam/gitreport/schema"
	"github.com/spf13/cobra"
)

// queriesCmd lists the git queries behind each report section.
var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Show the git queries used to build the report",
	Long: `List every git invocation the report makes and the section it feeds.

No Git analysis is performed - this is purely informational.

Examples:
  # Show the queries
  gitreport queries`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return outwriter.NewOutWriter().WriteQueries(cmd.OutOrStdout(), schema.ReportQueries)
	},
}
