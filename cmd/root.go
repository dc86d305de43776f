package cmd

import (
	"context"
	"fmt"

	"github.com/compozy/versioninfo/pkg/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app is the state shared by the command tree.
type app struct {
	fs        afero.Fs
	overrides flagOverrides
	c         *container
}

// setup builds the container once flags are parsed.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	c, err := newContainer(a.fs, a.overrides, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.c = c
	return nil
}

// resolve runs version resolution bounded by the configured describe timeout.
func (a *app) resolve(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.c.cfg.DescribeTimeout)
	defer cancel()
	v, err := version.Resolve(ctx, a.c.resolveUC)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}
	var showReport bool
	cmd := &cobra.Command{
		Use:   "versioninfo",
		Short: "Print the effective version of this build",
		Long: `versioninfo prints the effective version: the declared baseline,
enriched with the commit count and hash from 'git describe --tags' when the
tag agrees with the baseline.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showReport {
				return a.printReport(cmd, false)
			}
			resolved, err := a.resolve(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.overrides.repoDir, "repo-dir", "", "Repository directory to describe (default: the source checkout of this build)")
	flags.StringVar(&a.overrides.backend, "backend", "", "Describe backend: exec or go-git")
	flags.StringVar(&a.overrides.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&showReport, "version", false, "Print the versions report and exit")

	cmd.AddCommand(newReportCmd(a))
	cmd.AddCommand(newVersionCmd(a))
	return cmd
}

var rootCmd *cobra.Command

// InitCommands builds the command tree on the host filesystem.
func InitCommands() error {
	rootCmd = newRootCmd(afero.NewOsFs())
	return nil
}

func Execute() error {
	if rootCmd == nil {
		if err := InitCommands(); err != nil {
			return err
		}
	}
	return rootCmd.Execute()
}
