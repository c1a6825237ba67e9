package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gatemetrics/gatediff/internal/config"
	"github.com/gatemetrics/gatediff/internal/discover"
	"github.com/gatemetrics/gatediff/internal/orchestrate"
	"github.com/gatemetrics/gatediff/internal/plot"
)

const (
	renderCmdUse    = "render"
	renderCmdShort  = "Render baseline/current comparison charts as HTML"
	htmlOutputFlag  = "output"
	htmlOutputShort = "o"
)

// ErrNoHTMLOutput is returned when the --output flag is not set.
var ErrNoHTMLOutput = errors.New("output path is required (use --output)")

// NewRenderCommand creates the render subcommand.
func NewRenderCommand() *cobra.Command {
	var (
		manifestPath string
		htmlOutput   string
	)

	cmd := &cobra.Command{
		Use:   renderCmdUse,
		Short: renderCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if htmlOutput == "" {
				return ErrNoHTMLOutput
			}

			cfg, err := config.Load(manifestPath)
			if err != nil {
				return err
			}

			return runRender(cfg, htmlOutput)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, manifestFlag, "c", "", "path to the gatediff manifest")
	cmd.Flags().StringVarP(&htmlOutput, htmlOutputFlag, htmlOutputShort, "", "output path for the HTML page")

	return cmd
}

func runRender(cfg *config.Config, htmlOutput string) error {
	logger := newLogger()

	units, err := discover.Units(cfg)
	if err != nil {
		return err
	}

	sections := orchestrate.Sections(units, cfg.Compare.Threshold, logger)

	file, err := os.Create(htmlOutput)
	if err != nil {
		return fmt.Errorf("create %s: %w", htmlOutput, err)
	}

	renderErr := plot.WritePage(file, sections)

	closeErr := file.Close()
	if renderErr != nil {
		return renderErr
	}

	if closeErr != nil {
		return fmt.Errorf("close %s: %w", htmlOutput, closeErr)
	}

	return nil
}
