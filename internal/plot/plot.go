// Package plot renders benchmark comparisons as an HTML page of grouped
// bar charts, one chart per metric dimension per unit.
package plot

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/gatemetrics/gatediff/internal/compare"
	"github.com/gatemetrics/gatediff/internal/metrics"
	"github.com/gatemetrics/gatediff/internal/report"
)

const (
	chartWidth  = "900px"
	chartHeight = "450px"
	xAxisRotate = 45

	baselineSeries = "baseline"
	currentSeries  = "current"

	pageTitle = "Contract benchmark comparison"
)

// ErrNothingToPlot indicates no unit produced comparable entries.
var ErrNothingToPlot = errors.New("nothing to plot")

// WritePage renders comparison charts for every compared unit to w.
// Errored units contribute no charts; the report document is where their
// failure notices live.
func WritePage(w io.Writer, sections []report.Section) error {
	page := components.NewPage()
	page.PageTitle = pageTitle

	plotted := 0

	for _, section := range sections {
		if section.Err != nil || len(section.Entries) == 0 {
			continue
		}

		for metric := range metrics.MetricCount {
			page.AddCharts(metricChart(section.Unit, metric, section.Entries))
		}

		plotted++
	}

	if plotted == 0 {
		return ErrNothingToPlot
	}

	renderErr := page.Render(w)
	if renderErr != nil {
		return fmt.Errorf("render charts: %w", renderErr)
	}

	return nil
}

// metricChart builds one grouped bar chart: baseline and current values of
// a single metric dimension across the unit's functions.
func metricChart(unit string, metric int, entries []compare.Entry) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s: %s", unit, metrics.MetricNames[metric]),
			Subtitle: "baseline vs current",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0"},
		}),
	)

	names := make([]string, len(entries))
	baseData := make([]opts.BarData, len(entries))
	curData := make([]opts.BarData, len(entries))

	for i, entry := range entries {
		names[i] = entry.Name
		baseData[i] = opts.BarData{Value: entry.Baseline.Values()[metric]}
		curData[i] = opts.BarData{Value: entry.Current.Values()[metric]}
	}

	bar.SetXAxis(names)
	bar.AddSeries(baselineSeries, baseData)
	bar.AddSeries(currentSeries, curData)

	return bar
}
