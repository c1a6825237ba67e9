package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gatemetrics/gatediff/internal/config"
	"github.com/gatemetrics/gatediff/internal/discover"
	"github.com/gatemetrics/gatediff/internal/gha"
	"github.com/gatemetrics/gatediff/internal/orchestrate"
)

const (
	compareCmdUse   = "compare"
	compareCmdShort = "Compare baseline and current benchmark results"

	manifestFlag   = "config"
	thresholdFlag  = "threshold"
	outputFlag     = "output"
	resultsDirFlag = "results-dir"
	failFlag       = "fail-on-regression"
	noColorFlag    = "no-color"

	comparedOutput    = "compared_count"
	regressionsOutput = "regressions"
)

// ErrRegressionsDetected is returned when --fail-on-regression is set and
// at least one function regressed.
var ErrRegressionsDetected = errors.New("performance regressions detected")

// NewCompareCommand creates the compare subcommand.
func NewCompareCommand() *cobra.Command {
	var (
		manifestPath string
		threshold    float64
		output       string
		resultsDir   string
		failOnRegr   bool
		noColor      bool
	)

	cmd := &cobra.Command{
		Use:   compareCmdUse,
		Short: compareCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(manifestPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed(thresholdFlag) {
				cfg.Compare.Threshold = threshold
			}

			if cmd.Flags().Changed(outputFlag) {
				cfg.Compare.Output = output
			}

			if cmd.Flags().Changed(resultsDirFlag) {
				cfg.Compare.ResultsDir = resultsDir
			}

			if cmd.Flags().Changed(failFlag) {
				cfg.Compare.FailOnRegression = failOnRegr
			}

			validateErr := cfg.Validate()
			if validateErr != nil {
				return validateErr
			}

			if noColor {
				color.NoColor = true //nolint:reassign // intentional override of library global
			}

			return runCompare(cfg)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, manifestFlag, "c", "", "path to the gatediff manifest")
	cmd.Flags().Float64VarP(&threshold, thresholdFlag, "t", config.DefaultCompareThreshold,
		"regression threshold as a fraction (0.025 = 2.5%)")
	cmd.Flags().StringVarP(&output, outputFlag, "o", config.DefaultCompareOutput,
		"report output path")
	cmd.Flags().StringVar(&resultsDir, resultsDirFlag, config.DefaultCompareResultsDir,
		"directory holding per-unit result files")
	cmd.Flags().BoolVar(&failOnRegr, failFlag, config.DefaultCompareFailOnRegression,
		"exit non-zero when regressions are detected")
	cmd.Flags().BoolVar(&noColor, noColorFlag, false, "disable colored output")

	return cmd
}

func runCompare(cfg *config.Config) error {
	logger := newLogger()

	units, err := discover.Units(cfg)
	if err != nil {
		return err
	}

	outcome := orchestrate.Run(units, cfg.Compare.Threshold, logger)

	deliverErr := orchestrate.Deliver(outcome.Document, cfg.Compare.Output)
	if deliverErr != nil {
		return deliverErr
	}

	ghaErr := publishActionsOutputs(outcome)
	if ghaErr != nil {
		return ghaErr
	}

	if !quiet {
		printSummary(outcome, cfg.Compare.Output)
	}

	if cfg.Compare.FailOnRegression && outcome.Totals.Regressions > 0 {
		return fmt.Errorf("%w: %d function(s)", ErrRegressionsDetected, outcome.Totals.Regressions)
	}

	return nil
}

func publishActionsOutputs(outcome orchestrate.Outcome) error {
	setErr := gha.SetOutput(comparedOutput, strconv.Itoa(outcome.Compared))
	if setErr != nil {
		return setErr
	}

	setErr = gha.SetOutput(regressionsOutput, strconv.Itoa(outcome.Totals.Regressions))
	if setErr != nil {
		return setErr
	}

	return gha.AppendSummary(outcome.Document)
}

func printSummary(outcome orchestrate.Outcome, outputPath string) {
	fmt.Fprintf(os.Stdout, "Compared %d of %d unit(s); report written to %s\n",
		outcome.Compared, outcome.Discovered, outputPath)

	totals := outcome.Totals

	if totals.Regressions > 0 {
		color.New(color.FgRed).Fprintf(os.Stdout, "  regressions:  %d\n", totals.Regressions)
	}

	if totals.Improvements > 0 {
		color.New(color.FgGreen).Fprintf(os.Stdout, "  improvements: %d\n", totals.Improvements)
	}

	if totals.New > 0 || totals.Removed > 0 {
		color.New(color.FgYellow).Fprintf(os.Stdout, "  new: %d, removed: %d\n", totals.New, totals.Removed)
	}

	fmt.Fprintf(os.Stdout, "  unchanged:    %d\n", totals.Unchanged)
}
