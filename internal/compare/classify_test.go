package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gatemetrics/gatediff/internal/metrics"
)

func classified(t *testing.T, base, cur metrics.Record, threshold float64) Status {
	t.Helper()

	entry := Entry{Name: base.Name, Baseline: base, Current: cur}
	ComputeDeltas(&entry)

	return Classify(&entry, threshold)
}

func TestClassify_NewBeatsThreshold(t *testing.T) {
	t.Parallel()

	// New is structural: it wins even with a zero threshold.
	status := classified(t,
		record("burn", 0, 0, 0),
		record("burn", 500, 0, 0),
		0,
	)

	assert.Equal(t, StatusNew, status)
}

func TestClassify_Removed(t *testing.T) {
	t.Parallel()

	status := classified(t,
		record("burn", 500, 50, 50),
		record("burn", 0, 0, 0),
		0.025,
	)

	assert.Equal(t, StatusRemoved, status)
}

func TestClassify_ThresholdBoundary(t *testing.T) {
	t.Parallel()

	const threshold = 0.025

	tests := []struct {
		name string
		cur  uint64
		want Status
	}{
		{name: "above threshold regresses", cur: 1026, want: StatusRegression},
		{name: "below threshold unchanged", cur: 1024, want: StatusUnchanged},
		{name: "exactly unchanged", cur: 1000, want: StatusUnchanged},
		{name: "improvement past threshold", cur: 974, want: StatusImprovement},
		{name: "improvement within threshold", cur: 976, want: StatusUnchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status := classified(t,
				record("mint", 1000, 100, 100),
				record("mint", tt.cur, 100, 100),
				threshold,
			)

			assert.Equal(t, tt.want, status)
		})
	}
}

func TestClassify_InfiniteIncreaseAlwaysRegresses(t *testing.T) {
	t.Parallel()

	// gasPrimary appears against a zero baseline: regression even with a
	// huge threshold, and the entry is not New because other baseline
	// metrics are non-zero.
	status := classified(t,
		record("mint", 1000, 0, 100),
		record("mint", 1000, 50, 100),
		0.99,
	)

	assert.Equal(t, StatusRegression, status)
}

func TestClassify_RegressionBeatsImprovement(t *testing.T) {
	t.Parallel()

	// Gates regress while L2 gas improves: flag risk first.
	status := classified(t,
		record("mint", 1000, 100, 1000),
		record("mint", 1100, 100, 500),
		0.05,
	)

	assert.Equal(t, StatusRegression, status)
}

func TestClassify_SingleMetricRemovalIsNotForcedRegression(t *testing.T) {
	t.Parallel()

	// One metric dropping to zero is a -100% finite move; with other
	// metrics flat it classifies as an improvement, not a regression.
	status := classified(t,
		record("mint", 1000, 100, 100),
		record("mint", 1000, 0, 100),
		0.05,
	)

	assert.Equal(t, StatusImprovement, status)
}

func TestClassify_ZeroZeroMetricsStayUnchanged(t *testing.T) {
	t.Parallel()

	status := classified(t,
		record("mint", 1000, 0, 0),
		record("mint", 1000, 0, 0),
		0,
	)

	assert.Equal(t, StatusUnchanged, status)
}
