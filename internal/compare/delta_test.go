package compare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricDelta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		base, cur   uint64
		wantAbs     int64
		wantPercent float64
	}{
		{name: "both zero", base: 0, cur: 0, wantAbs: 0, wantPercent: 0},
		{name: "growth", base: 1000, cur: 1100, wantAbs: 100, wantPercent: 10},
		{name: "shrink", base: 1000, cur: 900, wantAbs: -100, wantPercent: -10},
		{name: "unchanged", base: 1000, cur: 1000, wantAbs: 0, wantPercent: 0},
		{name: "full removal", base: 1000, cur: 0, wantAbs: -1000, wantPercent: -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := metricDelta(tt.base, tt.cur)

			assert.Equal(t, tt.wantAbs, got.Absolute)
			assert.InDelta(t, tt.wantPercent, got.Percent, 1e-9)
		})
	}
}

func TestMetricDelta_ZeroBaselineIsInfiniteIncrease(t *testing.T) {
	t.Parallel()

	got := metricDelta(0, 50)

	assert.Equal(t, int64(50), got.Absolute)
	assert.True(t, math.IsInf(got.Percent, 1))
	assert.True(t, got.InfiniteIncrease())
}

func TestComputeDeltas_AllDimensions(t *testing.T) {
	t.Parallel()

	entry := Entry{
		Name:     "mint",
		Baseline: record("mint", 1000, 200, 300),
		Current:  record("mint", 1100, 200, 0),
	}

	ComputeDeltas(&entry)

	assert.Equal(t, int64(100), entry.Deltas[0].Absolute)
	assert.InDelta(t, 10.0, entry.Deltas[0].Percent, 1e-9)
	assert.Equal(t, int64(0), entry.Deltas[1].Absolute)
	assert.InDelta(t, 0.0, entry.Deltas[1].Percent, 1e-9)
	assert.Equal(t, int64(-300), entry.Deltas[2].Absolute)
	assert.InDelta(t, -100.0, entry.Deltas[2].Percent, 1e-9)
}

func TestDelta_BelowNoiseFloor(t *testing.T) {
	t.Parallel()

	assert.True(t, Delta{Percent: 0}.BelowNoiseFloor())
	assert.True(t, Delta{Percent: 0.009}.BelowNoiseFloor())
	assert.True(t, Delta{Percent: -0.009}.BelowNoiseFloor())
	assert.False(t, Delta{Percent: 0.011}.BelowNoiseFloor())
	assert.False(t, Delta{Percent: math.Inf(1)}.BelowNoiseFloor())
}

func TestNoiseFloor_DoesNotAffectClassification(t *testing.T) {
	t.Parallel()

	// A change below the display floor still classifies on its true value
	// when the threshold is even smaller.
	entry := Entry{
		Name:     "mint",
		Baseline: record("mint", 1_000_000, 100, 100),
		Current:  record("mint", 1_000_050, 100, 100),
	}

	ComputeDeltas(&entry)
	assert.True(t, entry.Deltas[0].BelowNoiseFloor())

	status := Classify(&entry, 0.0000001)
	assert.Equal(t, StatusRegression, status)
}
