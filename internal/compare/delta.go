package compare

import "math"

// NoiseFloorPercent is the display-noise floor: finite percent changes with
// a smaller magnitude render as a neutral placeholder. Classification always
// uses the true computed percent, never the rounded display value.
const NoiseFloorPercent = 0.01

// percentScale converts a fraction to percent.
const percentScale = 100.0

// ComputeDeltas fills the entry's per-metric deltas from its baseline and
// current values.
func ComputeDeltas(entry *Entry) {
	base := entry.Baseline.Values()
	cur := entry.Current.Values()

	for i := range entry.Deltas {
		entry.Deltas[i] = metricDelta(base[i], cur[i])
	}
}

// metricDelta computes the movement of one metric dimension. The zero
// branches keep the arithmetic total: a zero/zero pair is no change, and a
// metric appearing against a zero baseline is an infinite increase, not a
// division by zero.
func metricDelta(base, cur uint64) Delta {
	delta := Delta{Absolute: int64(cur) - int64(base)}

	switch {
	case base == 0 && cur == 0:
		delta.Percent = 0
	case base == 0:
		delta.Percent = math.Inf(1)
	default:
		delta.Percent = percentScale * (float64(cur) - float64(base)) / float64(base)
	}

	return delta
}

// BelowNoiseFloor reports whether the delta's percent is finite and too
// small to display.
func (d Delta) BelowNoiseFloor() bool {
	return !math.IsInf(d.Percent, 0) && math.Abs(d.Percent) < NoiseFloorPercent
}

// InfiniteIncrease reports whether the metric appeared against a zero
// baseline.
func (d Delta) InfiniteIncrease() bool {
	return math.IsInf(d.Percent, 1)
}
