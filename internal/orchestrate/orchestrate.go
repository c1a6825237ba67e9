// Package orchestrate drives the comparison across all discovered units and
// delivers the final document.
package orchestrate

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gatemetrics/gatediff/internal/compare"
	"github.com/gatemetrics/gatediff/internal/discover"
	"github.com/gatemetrics/gatediff/internal/metrics"
	"github.com/gatemetrics/gatediff/internal/report"
)

// documentPerm is the permission mode for the written comparison document.
const documentPerm = 0o644

// Outcome is the result of a full comparison run.
type Outcome struct {
	// Document is the assembled comparison report.
	Document string
	// Compared counts the units whose result pairs loaded and compared.
	Compared int
	// Discovered counts all units the run attempted.
	Discovered int
	// Totals aggregates entry statuses across compared units.
	Totals report.Totals
}

// Run compares every discovered unit sequentially, in discovery order.
// Per-unit load failures become error sections in the document; the run
// continues to the next unit. Only malformed run-level configuration and
// final delivery can fail a run.
func Run(units []discover.Unit, threshold float64, logger *slog.Logger) Outcome {
	sections := Sections(units, threshold, logger)

	outcome := Outcome{
		Document:   report.Assemble(sections, threshold),
		Compared:   report.Compared(sections),
		Discovered: len(units),
		Totals:     report.Tally(sections),
	}

	if outcome.Discovered > 0 && outcome.Compared == 0 {
		logger.Warn("no unit produced a comparable result", "discovered", outcome.Discovered)
	}

	return outcome
}

// Sections compares every discovered unit and returns one report section
// per unit, in discovery order.
func Sections(units []discover.Unit, threshold float64, logger *slog.Logger) []report.Section {
	sections := make([]report.Section, 0, len(units))

	for _, unit := range units {
		sections = append(sections, compareUnit(unit, threshold, logger))
	}

	return sections
}

// Deliver writes the document to its destination. Unlike per-unit failures
// this is fatal: a comparison that cannot be delivered has no value.
func Deliver(document, path string) error {
	writeErr := os.WriteFile(path, []byte(document), documentPerm)
	if writeErr != nil {
		return fmt.Errorf("deliver report to %s: %w", path, writeErr)
	}

	return nil
}

func compareUnit(unit discover.Unit, threshold float64, logger *slog.Logger) report.Section {
	baseline, err := metrics.ReadResultSet(unit.BaselinePath, unit.Name)
	if err != nil {
		logger.Error("baseline load failed", "unit", unit.Name, "error", err)

		return report.Section{Unit: unit.Name, Err: fmt.Errorf("baseline: %w", err)}
	}

	current, err := metrics.ReadResultSet(unit.CurrentPath, unit.Name)
	if err != nil {
		logger.Error("current load failed", "unit", unit.Name, "error", err)

		return report.Section{Unit: unit.Name, Err: fmt.Errorf("current: %w", err)}
	}

	return report.Section{
		Unit:    unit.Name,
		Entries: compare.Compare(baseline, current, threshold, logger),
	}
}
