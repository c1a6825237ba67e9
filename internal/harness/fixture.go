package harness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gatemetrics/gatediff/internal/metrics"
)

// ErrNoMeasurement indicates a call target with no recorded measurement in
// the fixture file.
var ErrNoMeasurement = errors.New("no measurement for target")

// fixtureDocument is the on-disk shape of a fixture file: the call targets
// plus the pre-recorded measurement for each function.
type fixtureDocument struct {
	Targets      []CallTarget              `json:"targets"`
	Measurements map[string]metrics.Record `json:"measurements"`
}

// FixtureHarness is the file-backed reference implementation of Harness and
// Caller: targets and their measurements come from a JSON fixture instead
// of a live chain. Chain-backed callers implement the same interfaces.
type FixtureHarness struct {
	Path string

	measurements map[string]metrics.Record
}

// Setup loads the fixture file; the parsed document is the session.
func (f *FixtureHarness) Setup(_ context.Context) (Session, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", f.Path, err)
	}

	var doc fixtureDocument

	decodeErr := json.Unmarshal(raw, &doc)
	if decodeErr != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", f.Path, decodeErr)
	}

	f.measurements = doc.Measurements

	return doc, nil
}

// Targets returns the fixture's call targets in file order.
func (f *FixtureHarness) Targets(session Session) ([]CallTarget, error) {
	doc, ok := session.(fixtureDocument)
	if !ok {
		return nil, fmt.Errorf("unexpected session type %T", session)
	}

	return doc.Targets, nil
}

// Call replays the recorded measurement for the target.
func (f *FixtureHarness) Call(_ context.Context, target CallTarget) (metrics.Record, error) {
	rec, ok := f.measurements[target.Function]
	if !ok {
		return metrics.Record{}, fmt.Errorf("%w: %s", ErrNoMeasurement, target.Function)
	}

	rec.Name = target.Function

	return rec, nil
}
