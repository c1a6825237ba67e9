// Package report assembles classified comparison entries into a
// deterministic, Markdown-compatible document.
package report

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/gatemetrics/gatediff/internal/compare"
	"github.com/gatemetrics/gatediff/internal/metrics"
)

const (
	documentTitle    = "# Contract benchmark comparison"
	noticeNothing    = "Nothing to compare."
	noticeNoUnits    = "No benchmark units were discovered."
	noticeDegraded   = "No unit produced a comparable result."
	skippedInvalid   = "skipped: invalid input"
	comparisonFailed = "comparison failed"
)

// Section holds one benchmarked unit's comparison outcome. A non-nil Err
// replaces the entry table with an explicit notice; a discovered unit is
// never omitted silently.
type Section struct {
	Unit    string
	Entries []compare.Entry
	Err     error
}

// Assemble renders the full comparison document: a header/legend, one
// section per unit in discovery order, and a run-level summary. Output is
// byte-identical across runs for identical inputs.
func Assemble(sections []Section, threshold float64) string {
	var doc strings.Builder

	doc.WriteString(documentTitle)
	doc.WriteString("\n\n")
	doc.WriteString(legend(threshold))
	doc.WriteString("\n")

	if len(sections) == 0 {
		doc.WriteString("\n")
		doc.WriteString(noticeNoUnits)
		doc.WriteString(" ")
		doc.WriteString(noticeNothing)
		doc.WriteString("\n")

		return doc.String()
	}

	compared := 0

	for _, section := range sections {
		doc.WriteString("\n## ")
		doc.WriteString(section.Unit)
		doc.WriteString("\n\n")
		doc.WriteString(renderSection(section))
		doc.WriteString("\n")

		if section.Err == nil {
			compared++
		}
	}

	doc.WriteString("\n")
	doc.WriteString(summaryLine(compared, len(sections)))
	doc.WriteString("\n")

	return doc.String()
}

// Compared counts the sections that produced a comparison.
func Compared(sections []Section) int {
	compared := 0

	for _, section := range sections {
		if section.Err == nil {
			compared++
		}
	}

	return compared
}

func legend(threshold float64) string {
	return fmt.Sprintf(
		"Regression threshold: ±%.2f%%. Legend: %s regression · %s improvement · %s new · %s removed · %s unchanged · `~` change below %.2f%%.",
		threshold*percentScale,
		compare.StatusRegression.Indicator(),
		compare.StatusImprovement.Indicator(),
		compare.StatusNew.Indicator(),
		compare.StatusRemoved.Indicator(),
		compare.StatusUnchanged.Indicator(),
		compare.NoiseFloorPercent,
	)
}

func renderSection(section Section) string {
	switch {
	case errors.Is(section.Err, metrics.ErrInvalidDocument):
		return fmt.Sprintf("⚠️ %s (%v)", skippedInvalid, section.Err)
	case section.Err != nil:
		return fmt.Sprintf("⚠️ %s: %v", comparisonFailed, section.Err)
	case len(section.Entries) == 0:
		return noticeNothing
	}

	return renderTable(section.Entries)
}

func renderTable(entries []compare.Entry) string {
	// The assembler owns row ordering: name ascending, byte order, so the
	// rendered document is identical regardless of input discovery order.
	entries = slices.Clone(entries)
	slices.SortFunc(entries, func(a, b compare.Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	writer := table.NewWriter()
	writer.AppendHeader(table.Row{
		" ", "Function", metrics.MetricNames[0], metrics.MetricNames[1], metrics.MetricNames[2],
	})

	for _, entry := range entries {
		base := entry.Baseline.Values()
		cur := entry.Current.Values()

		writer.AppendRow(table.Row{
			entry.Status.Indicator(),
			entry.Name,
			formatMetric(base[0], cur[0], entry.Deltas[0]),
			formatMetric(base[1], cur[1], entry.Deltas[1]),
			formatMetric(base[2], cur[2], entry.Deltas[2]),
		})
	}

	return writer.RenderMarkdown()
}

func summaryLine(compared, discovered int) string {
	if compared == 0 {
		return fmt.Sprintf("%s Units compared: 0 of %d (skipped: %d).",
			noticeDegraded, discovered, discovered)
	}

	return fmt.Sprintf("Units compared: %d of %d (skipped: %d).",
		compared, discovered, discovered-compared)
}
