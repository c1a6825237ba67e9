package compare

import "github.com/gatemetrics/gatediff/internal/metrics"

// Delta is the movement of a single metric dimension between runs.
type Delta struct {
	// Absolute is current minus baseline; negative when the metric shrank.
	Absolute int64
	// Percent is the relative change in percent. It is +Inf when a metric
	// appears against a zero baseline, and exactly -100 when a non-zero
	// baseline dropped to zero.
	Percent float64
}

// Entry is one reconciled function across both runs. It is built by
// Reconcile, enriched in place by ComputeDeltas and Classify, and consumed
// read-only by the report assembler.
type Entry struct {
	Name     string
	Baseline metrics.Record
	Current  metrics.Record
	Deltas   [metrics.MetricCount]Delta
	Status   Status
}
