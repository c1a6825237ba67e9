package compare

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/gatemetrics/gatediff/internal/metrics"
)

// Reconcile merges the baseline and current result sets into one entry per
// function name. Records with placeholder or failed-measurement names are
// excluded and logged, never compared. A function absent on one side is
// zero-filled there so downstream arithmetic never branches on presence.
// The returned slice is unordered; the report assembler owns ordering.
func Reconcile(baseline, current metrics.ResultSet, logger *slog.Logger) []Entry {
	baseRecords := foldByName(baseline, "baseline", logger)
	curRecords := foldByName(current, "current", logger)

	names := lo.Uniq(append(lo.Keys(baseRecords), lo.Keys(curRecords)...))

	entries := make([]Entry, 0, len(names))

	for _, name := range names {
		base, inBase := baseRecords[name]
		if !inBase {
			base = metrics.Record{Name: name}
		}

		cur, inCur := curRecords[name]
		if !inCur {
			cur = metrics.Record{Name: name}
		}

		entries = append(entries, Entry{Name: name, Baseline: base, Current: cur})
	}

	return entries
}

// foldByName builds the name→record mapping for one run, dropping
// non-comparable records and folding duplicates last-write-wins.
func foldByName(set metrics.ResultSet, run string, logger *slog.Logger) map[string]metrics.Record {
	records := make(map[string]metrics.Record, len(set.Records))

	for _, rec := range set.Records {
		if !metrics.Comparable(rec.Name) {
			logger.Info("skipping non-comparable record",
				"unit", set.Unit, "run", run, "name", rec.Name)

			continue
		}

		if _, seen := records[rec.Name]; seen {
			logger.Warn("duplicate function name in run, keeping last measurement",
				"unit", set.Unit, "run", run, "name", rec.Name)
		}

		records[rec.Name] = rec
	}

	return records
}
