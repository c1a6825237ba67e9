// Package discover locates benchmark units and their baseline/current
// result file pairs. It only resolves locations; missing or malformed files
// surface later, per unit, at load time.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/samber/lo"

	"github.com/gatemetrics/gatediff/internal/config"
)

// Run labels used in result file names.
const (
	BaselineLabel = "baseline"
	CurrentLabel  = "current"
)

// resultExts are the recognized result file extensions, in preference order.
var resultExts = []string{".json", ".json.lz4"}

// Unit pairs a benchmarked contract with its two result file locations.
type Unit struct {
	Name         string
	BaselinePath string
	CurrentPath  string
}

// Units resolves the manifest's benchmark units to result-file pairs under
// the results directory, preserving manifest order. When the manifest lists
// no units, the results directory is scanned for unit subdirectories in
// sorted order.
func Units(cfg *config.Config) ([]Unit, error) {
	names := cfg.Units

	if len(names) == 0 {
		scanned, err := scanUnits(cfg.Compare.ResultsDir)
		if err != nil {
			return nil, err
		}

		names = scanned
	}

	return lo.Map(names, func(name string, _ int) Unit {
		dir := filepath.Join(cfg.Compare.ResultsDir, name)

		return Unit{
			Name:         name,
			BaselinePath: resultPath(dir, BaselineLabel),
			CurrentPath:  resultPath(dir, CurrentLabel),
		}
	}), nil
}

// resultPath picks the first existing recognized file for a run label.
// When none exists it falls back to the plain JSON path so the missing file
// is reported per unit at load time.
func resultPath(dir, label string) string {
	for _, ext := range resultExts {
		candidate := filepath.Join(dir, label+ext)

		_, err := os.Stat(candidate)
		if err == nil {
			return candidate
		}
	}

	return filepath.Join(dir, label+resultExts[0])
}

// scanUnits lists subdirectories of the results directory.
func scanUnits(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan results dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(dirEntries))

	for _, entry := range dirEntries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	slices.Sort(names)

	return names, nil
}
