package config

// Default values applied before the manifest and environment are read.
const (
	// DefaultCompareThreshold is the regression threshold fraction (2.5%).
	DefaultCompareThreshold = 0.025
	// DefaultCompareResultsDir is where per-unit result files live.
	DefaultCompareResultsDir = "bench-results"
	// DefaultCompareOutput is the comparison document destination.
	DefaultCompareOutput = "bench-diff.md"
	// DefaultCompareFailOnRegression keeps regressions advisory by default.
	DefaultCompareFailOnRegression = false
	// DefaultHarnessTargetsDir is where per-unit call target files live.
	DefaultHarnessTargetsDir = "bench-targets"
)
