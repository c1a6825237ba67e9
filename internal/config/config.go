// Package config loads the gatediff project manifest.
package config

import (
	"errors"
	"fmt"
)

// Config is the top-level configuration struct for gatediff.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Units   []string      `mapstructure:"units"`
	Compare CompareConfig `mapstructure:"compare"`
	Harness HarnessConfig `mapstructure:"harness"`
}

// CompareConfig holds comparison run settings.
type CompareConfig struct {
	// Threshold is the regression threshold as a fraction (0.025 = 2.5%).
	Threshold        float64 `mapstructure:"threshold"`
	ResultsDir       string  `mapstructure:"results_dir"`
	Output           string  `mapstructure:"output"`
	FailOnRegression bool    `mapstructure:"fail_on_regression"`
}

// HarnessConfig holds benchmark execution settings.
type HarnessConfig struct {
	// TargetsDir holds per-unit call target definitions consumed by the
	// file-backed harness.
	TargetsDir string `mapstructure:"targets_dir"`
}

// Sentinel errors for configuration validation.
var (
	// ErrInvalidThreshold indicates a negative regression threshold.
	ErrInvalidThreshold = errors.New("compare.threshold must be >= 0")
	// ErrEmptyResultsDir indicates a missing results directory setting.
	ErrEmptyResultsDir = errors.New("compare.results_dir must not be empty")
	// ErrEmptyOutput indicates a missing report output path.
	ErrEmptyOutput = errors.New("compare.output must not be empty")
)

// Validate checks run-level configuration. A malformed configuration aborts
// the whole run; there is no per-unit recovery from it.
func (c *Config) Validate() error {
	if c.Compare.Threshold < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, c.Compare.Threshold)
	}

	if c.Compare.ResultsDir == "" {
		return ErrEmptyResultsDir
	}

	if c.Compare.Output == "" {
		return ErrEmptyOutput
	}

	return nil
}
