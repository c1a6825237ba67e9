// Package compare implements the metrics comparison engine: reconciling
// function identities across two benchmark runs, computing per-metric
// deltas, and classifying each function against a regression threshold.
package compare

// Status classifies how a function's cost moved between runs.
type Status int

// Classification outcomes, in report legend order.
const (
	StatusUnchanged Status = iota
	StatusNew
	StatusRemoved
	StatusRegression
	StatusImprovement
)

// statusNames maps each status to its report label.
var statusNames = map[Status]string{
	StatusUnchanged:   "unchanged",
	StatusNew:         "new",
	StatusRemoved:     "removed",
	StatusRegression:  "regression",
	StatusImprovement: "improvement",
}

// statusIndicators maps each status to its report table marker.
var statusIndicators = map[Status]string{
	StatusUnchanged:   "➖",
	StatusNew:         "🆕",
	StatusRemoved:     "🗑️",
	StatusRegression:  "⚠️",
	StatusImprovement: "🎉",
}

// String returns the report label for the status.
func (s Status) String() string {
	name, ok := statusNames[s]
	if !ok {
		return "unknown"
	}

	return name
}

// Indicator returns the report table marker for the status.
func (s Status) Indicator() string {
	indicator, ok := statusIndicators[s]
	if !ok {
		return "?"
	}

	return indicator
}
