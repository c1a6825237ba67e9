package report

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/gatemetrics/gatediff/internal/compare"
)

// percentScale converts a threshold fraction to percent for display.
const percentScale = 100.0

// Structural display sentinels for a metric appearing against, or dropping
// to, a zero counterpart.
const (
	appearedSentinel = "+100%"
	removedSentinel  = "-100%"
	noisePlaceholder = "~"
	fullRemovalPct   = -100.0
)

// formatMetric renders one metric cell: baseline → current plus the
// formatted delta.
func formatMetric(base, cur uint64, delta compare.Delta) string {
	return fmt.Sprintf("%s → %s (%s)",
		humanize.Comma(int64(base)),
		humanize.Comma(int64(cur)),
		formatDelta(delta),
	)
}

// formatDelta renders a delta as a signed absolute with thousands
// separators plus a signed percentage. A metric appearing from zero renders
// the "+100%" sentinel, a metric dropping to zero the "-100%" sentinel, and
// a finite change below the display-noise floor a neutral placeholder.
func formatDelta(delta compare.Delta) string {
	switch {
	case delta.InfiniteIncrease():
		return fmt.Sprintf("%s, %s", signedComma(delta.Absolute), appearedSentinel)
	case delta.BelowNoiseFloor():
		return noisePlaceholder
	case delta.Percent == fullRemovalPct:
		return fmt.Sprintf("%s, %s", signedComma(delta.Absolute), removedSentinel)
	}

	return fmt.Sprintf("%s, %+.2f%%", signedComma(delta.Absolute), delta.Percent)
}

// signedComma formats an integer with thousands separators and an explicit
// leading sign.
func signedComma(n int64) string {
	if n >= 0 {
		return "+" + humanize.Comma(n)
	}

	return humanize.Comma(n)
}
