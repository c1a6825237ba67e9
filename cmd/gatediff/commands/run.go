package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gatemetrics/gatediff/internal/config"
	"github.com/gatemetrics/gatediff/internal/discover"
	"github.com/gatemetrics/gatediff/internal/harness"
	"github.com/gatemetrics/gatediff/internal/metrics"
)

const (
	runCmdUse   = "run <unit>"
	runCmdShort = "Execute benchmark calls for a unit and persist a result file"

	labelFlag     = "label"
	fixtureFlag   = "fixture"
	runArgCount   = 1
	resultDirPerm = 0o755
)

// NewRunCommand creates the run subcommand. It drives the file-backed
// fixture harness; chain-backed harnesses plug in through the same
// interfaces.
func NewRunCommand() *cobra.Command {
	var (
		manifestPath string
		label        string
		fixturePath  string
		resultsDir   string
	)

	cmd := &cobra.Command{
		Use:   runCmdUse,
		Short: runCmdShort,
		Args:  cobra.ExactArgs(runArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(manifestPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed(resultsDirFlag) {
				cfg.Compare.ResultsDir = resultsDir
			}

			unit := args[0]

			if fixturePath == "" {
				fixturePath = filepath.Join(cfg.Harness.TargetsDir, unit+".json")
			}

			return runBenchmarks(cmd, cfg, unit, label, fixturePath)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, manifestFlag, "c", "", "path to the gatediff manifest")
	cmd.Flags().StringVarP(&label, labelFlag, "l", discover.CurrentLabel,
		"run label: baseline or current")
	cmd.Flags().StringVar(&fixturePath, fixtureFlag, "",
		"path to the unit's call target fixture (defaults to <targets_dir>/<unit>.json)")
	cmd.Flags().StringVar(&resultsDir, resultsDirFlag, config.DefaultCompareResultsDir,
		"directory to write result files into")

	return cmd
}

func runBenchmarks(cmd *cobra.Command, cfg *config.Config, unit, label, fixturePath string) error {
	if label != discover.BaselineLabel && label != discover.CurrentLabel {
		return fmt.Errorf("invalid run label %q: want %q or %q",
			label, discover.BaselineLabel, discover.CurrentLabel)
	}

	logger := newLogger()

	fixture := &harness.FixtureHarness{Path: fixturePath}

	set, err := harness.Run(cmd.Context(), unit, fixture, fixture, logger)
	if err != nil {
		return err
	}

	unitDir := filepath.Join(cfg.Compare.ResultsDir, unit)

	mkdirErr := os.MkdirAll(unitDir, resultDirPerm)
	if mkdirErr != nil {
		return fmt.Errorf("create results dir %s: %w", unitDir, mkdirErr)
	}

	resultPath := filepath.Join(unitDir, label+".json")

	writeErr := metrics.WriteResultSet(resultPath, set)
	if writeErr != nil {
		return writeErr
	}

	if !quiet {
		fmt.Fprintf(os.Stdout, "Measured %d function(s) for %s; results written to %s\n",
			len(set.Records), unit, resultPath)
	}

	return nil
}
