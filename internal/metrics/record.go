// Package metrics defines the measurement model for benchmarked contract
// functions and reads/writes persisted benchmark result files.
package metrics

import "strings"

// MetricCount is the number of compared metric dimensions per function.
const MetricCount = 3

// MetricNames lists the compared dimensions in report column order:
// gate count, data-availability gas, L2 execution gas.
var MetricNames = [MetricCount]string{"Gate count", "DA gas", "L2 gas"}

// failedSuffix marks a record whose measurement call failed.
const failedSuffix = " (FAILED)"

// placeholderPrefixes match auto-generated labels emitted when a function
// selector cannot be resolved to a real name.
var placeholderPrefixes = []string{"unknown_function", "unknown function"}

// GasUsed splits a gas measurement into its execution and teardown parts.
type GasUsed struct {
	Execution uint64 `json:"execution"`
	Teardown  uint64 `json:"teardown"`
}

// Total returns the summed gas across both sub-components.
func (g GasUsed) Total() uint64 {
	return g.Execution + g.Teardown
}

// Record is the measured output for one benchmarked function in one run.
// A missing metric is zero, never absent, so downstream arithmetic never
// branches on presence.
type Record struct {
	Name      string  `json:"name"`
	GateCount uint64  `json:"gate_count"`
	DAGas     GasUsed `json:"da_gas"`
	L2Gas     GasUsed `json:"l2_gas"`
}

// Values returns the three compared dimensions in MetricNames order.
func (r Record) Values() [MetricCount]uint64 {
	return [MetricCount]uint64{r.GateCount, r.DAGas.Total(), r.L2Gas.Total()}
}

// IsZero reports whether all compared dimensions are zero.
func (r Record) IsZero() bool {
	return r.GateCount == 0 && r.DAGas.Total() == 0 && r.L2Gas.Total() == 0
}

// ResultSet is the ordered record collection for one benchmarked unit in one
// run. Name uniqueness is not guaranteed by producers; the reconciler is the
// single point where duplicates are folded.
type ResultSet struct {
	Unit    string
	Records []Record
}

// MarkFailed annotates a function name as a failed measurement so it is
// excluded from comparison instead of masquerading as a zero-cost call.
func MarkFailed(name string) string {
	return name + failedSuffix
}

// Comparable reports whether a record name denotes a real measurement.
// Empty names, auto-generated placeholder labels, and failed measurements
// are not comparable.
func Comparable(name string) bool {
	if name == "" || strings.HasSuffix(name, failedSuffix) {
		return false
	}

	for _, prefix := range placeholderPrefixes {
		if strings.HasPrefix(name, prefix) {
			return false
		}
	}

	return true
}
