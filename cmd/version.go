package cmd

import (
	"fmt"
	"strings"

	"github.com/compozy/versioninfo/pkg/version"
	"github.com/spf13/cobra"
)

// newVersionCmd prints the resolved version next to the values stamped at
// link time.
func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the resolved version and build metadata",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := a.resolve(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version:\t%s\n", resolved)
			fmt.Fprintf(out, "Baseline:\t%s\n", version.Baseline)
			fmt.Fprintf(out, "Repository:\t%s\n", safeValue(a.c.resolveUC.RepoDir, "."))
			fmt.Fprintf(out, "Commit:\t%s\n", safeValue(version.CommitHash, "unknown"))
			fmt.Fprintf(out, "Built:\t%s\n", safeValue(version.BuildDate, "unknown"))
			return nil
		},
	}
}

func safeValue(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
