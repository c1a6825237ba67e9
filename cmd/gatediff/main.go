// Package main provides the entry point for the gatediff CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gatemetrics/gatediff/cmd/gatediff/commands"
	"github.com/gatemetrics/gatediff/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gatediff",
		Short: "Gatediff - smart-contract benchmark comparison",
		Long: `Gatediff benchmarks smart-contract function calls and reports how gate
counts and gas change between a baseline run and a current run.

Commands:
  compare   Compare baseline and current benchmark results
  run       Execute benchmark calls and persist a result file
  render    Render comparison charts as HTML`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.RegisterVerbosityFlags(rootCmd)

	// Add commands.
	rootCmd.AddCommand(commands.NewCompareCommand())
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "gatediff %s (commit: %s, built: %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
