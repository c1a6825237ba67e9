// Package harness drives benchmark execution through a narrow plugin
// contract. User benchmark definitions stay behind a stable interface
// instead of free-form code loading: a Harness exposes the calls to
// measure, a Caller executes them one blocking request/response at a time.
package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gatemetrics/gatediff/internal/metrics"
)

// CallTarget identifies one contract function invocation to measure.
type CallTarget struct {
	// Function is the contract function name; it becomes the metric
	// record's identity label.
	Function string `json:"function"`
	// Args are the call arguments, encoded by the benchmark definition.
	Args []string `json:"args,omitempty"`
}

// Session carries harness state from Setup to Targets.
type Session any

// Harness exposes user-supplied benchmark definitions.
type Harness interface {
	// Setup prepares the benchmark environment and returns the session
	// handle Targets consumes.
	Setup(ctx context.Context) (Session, error)
	// Targets lists the calls to measure, in execution order.
	Targets(session Session) ([]CallTarget, error)
}

// Caller executes one measured call and returns its metrics.
type Caller interface {
	Call(ctx context.Context, target CallTarget) (metrics.Record, error)
}

// Run measures every target sequentially with one blocking call each.
// A failed call is recorded under the failed-name marker instead of a
// zero-cost record, so it is excluded from comparison rather than
// masquerading as an improvement.
func Run(ctx context.Context, unit string, h Harness, caller Caller, logger *slog.Logger) (metrics.ResultSet, error) {
	session, err := h.Setup(ctx)
	if err != nil {
		return metrics.ResultSet{}, fmt.Errorf("harness setup for %s: %w", unit, err)
	}

	targets, err := h.Targets(session)
	if err != nil {
		return metrics.ResultSet{}, fmt.Errorf("harness targets for %s: %w", unit, err)
	}

	set := metrics.ResultSet{Unit: unit, Records: make([]metrics.Record, 0, len(targets))}

	for _, target := range targets {
		rec, callErr := caller.Call(ctx, target)
		if callErr != nil {
			logger.Warn("measurement call failed",
				"unit", unit, "function", target.Function, "error", callErr)

			rec = metrics.Record{Name: metrics.MarkFailed(target.Function)}
		}

		set.Records = append(set.Records, rec)
	}

	return set, nil
}
