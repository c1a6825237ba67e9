// Package commands implements CLI command handlers for gatediff.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

// RegisterVerbosityFlags attaches the shared verbosity flags to the root
// command.
func RegisterVerbosityFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")
}

// newLogger builds the command logger honoring the verbosity flags.
func newLogger() *slog.Logger {
	level := slog.LevelInfo

	if verbose {
		level = slog.LevelDebug
	}

	if quiet {
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
