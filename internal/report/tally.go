package report

import "github.com/gatemetrics/gatediff/internal/compare"

// Totals aggregates entry statuses across all compared sections.
type Totals struct {
	New          int
	Removed      int
	Regressions  int
	Improvements int
	Unchanged    int
}

// Tally counts entry statuses across the compared sections; errored
// sections contribute nothing.
func Tally(sections []Section) Totals {
	var totals Totals

	for _, section := range sections {
		if section.Err != nil {
			continue
		}

		for _, entry := range section.Entries {
			switch entry.Status {
			case compare.StatusNew:
				totals.New++
			case compare.StatusRemoved:
				totals.Removed++
			case compare.StatusRegression:
				totals.Regressions++
			case compare.StatusImprovement:
				totals.Improvements++
			case compare.StatusUnchanged:
				totals.Unchanged++
			}
		}
	}

	return totals
}
