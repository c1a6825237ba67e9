package compare

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/gatemetrics/gatediff/internal/metrics"
)

// Compare runs the full reconcile/delta/classify pipeline for one unit and
// returns its entries sorted by function name, ascending byte order.
func Compare(baseline, current metrics.ResultSet, threshold float64, logger *slog.Logger) []Entry {
	entries := Reconcile(baseline, current, logger)

	for i := range entries {
		ComputeDeltas(&entries[i])
		entries[i].Status = Classify(&entries[i], threshold)
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return entries
}
