package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newReportCmd(a *app) *cobra.Command {
	var asTable bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the versions of this build and its dependencies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printReport(cmd, asTable)
		},
	}
	cmd.Flags().BoolVar(&asTable, "table", false, "Render the report as a table")
	return cmd
}

func (a *app) printReport(cmd *cobra.Command, asTable bool) error {
	resolved, err := a.resolve(cmd.Context())
	if err != nil {
		return err
	}
	uc := a.c.reportUseCase(resolved)
	out := cmd.OutOrStdout()
	if !asTable {
		for line := range uc.Report(cmd.Context()) {
			fmt.Fprintln(out, line)
		}
		return nil
	}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Component", "Version"})
	for _, e := range uc.Entries(cmd.Context()) {
		t.AppendRow(table.Row{e.Label, e.Value})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
