package compare

import "math"

// Classify assigns the entry's status against a threshold fraction
// (0.025 means 2.5%). Precedence, first match wins: New and Removed are
// structural events independent of the threshold; Regression beats
// Improvement when metrics move in opposite directions, so risk is flagged
// first. An infinite increase is always a regression regardless of the
// threshold.
func Classify(entry *Entry, threshold float64) Status {
	switch {
	case entry.Baseline.IsZero() && !entry.Current.IsZero():
		return StatusNew
	case entry.Current.IsZero() && !entry.Baseline.IsZero():
		return StatusRemoved
	}

	limit := threshold * percentScale

	for _, delta := range entry.Deltas {
		if delta.InfiniteIncrease() || (isFinite(delta.Percent) && delta.Percent > limit) {
			return StatusRegression
		}
	}

	for _, delta := range entry.Deltas {
		if isFinite(delta.Percent) && delta.Percent < -limit {
			return StatusImprovement
		}
	}

	return StatusUnchanged
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
