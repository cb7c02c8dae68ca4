package pipeline

import (
	"fmt"

	"github.com/couchcryptid/aircooler-perf/internal/domain"
)

// Chart output filenames, kept from the report format this tool replaces
// so downstream consumers keep working.
const (
	PerformanceChartFile = "Air_Cooler_Performance_Curve_UA_Duty.png"
	FanPowerChartFile    = "Air_Cooler_Performance_Curve_Fan_Power.png"
)

// LineKind selects the stroke pattern of a series.
type LineKind string

const (
	LineSolid  LineKind = "solid"
	LineDashed LineKind = "dashed"
	LineDotted LineKind = "dotted"
)

// Style describes how a series is drawn. Color is a hex RGB string
// without the leading '#'. Secondary places the series on the right
// y-axis.
type Style struct {
	Kind      LineKind
	Color     string
	Secondary bool
}

// Series is one finished, renderer-agnostic line: parallel x/y slices.
type Series struct {
	Label string
	X     []float64
	Y     []float64
	Style Style
}

// Band is one exceedance shading instruction: the curve trace (X, Y)
// inside a region, shaded against the threshold it exceeds.
type Band struct {
	X         []float64
	Y         []float64
	Threshold float64
	Secondary bool
}

// ThresholdLine is a horizontal design-limit annotation.
type ThresholdLine struct {
	Value     float64
	Label     string
	Color     string
	Secondary bool
}

// ChartSpec is the complete input contract of a chart renderer.
type ChartSpec struct {
	Title      string
	XLabel     string
	YLabel     string
	Y2Label    string
	Filename   string
	Series     []Series
	Bands      []Band
	Thresholds []ThresholdLine
}

// inletTempColors is the fixed per-condition palette. Unknown inlet
// temperatures fall back to black.
var inletTempColors = map[float64]string{
	50: "1f77b4", // blue
	55: "ff7f0e", // orange
	60: "2ca02c", // green
	65: "d62728", // red
	70: "9467bd", // purple
	75: "8c564b", // brown
}

func colorFor(inletTemp float64) string {
	if c, ok := inletTempColors[inletTemp]; ok {
		return c
	}
	return "000000"
}

// curveSeries converts non-empty curves into styled series, appending
// their exceedance bands against the threshold.
func curveSeries(curves []domain.Curve, labelFmt string, kind LineKind, secondary bool, threshold float64, series []Series, bands []Band) ([]Series, []Band) {
	for _, c := range curves {
		if len(c.Points) == 0 {
			continue
		}
		x := make([]float64, len(c.Points))
		y := make([]float64, len(c.Points))
		for i, pt := range c.Points {
			x[i] = pt.X
			y[i] = pt.Y
		}
		series = append(series, Series{
			Label: fmt.Sprintf(labelFmt, c.InletTemp),
			X:     x,
			Y:     y,
			Style: Style{Kind: kind, Color: colorFor(c.InletTemp), Secondary: secondary},
		})
		for _, r := range domain.ExceedanceRegions(c.Points, threshold) {
			bands = append(bands, Band{X: r.X, Y: r.Y, Threshold: threshold, Secondary: secondary})
		}
	}
	return series, bands
}

// performanceChart assembles UA (primary axis) and duty (secondary axis)
// versus mass flow, with exceedance shading against the design limits.
func performanceChart(records []domain.CanonicalRecord, th domain.ThresholdSet) ChartSpec {
	var series []Series
	var bands []Band

	uaCurves := domain.GroupCurves(records, domain.MetricUA)
	series, bands = curveSeries(uaCurves, "UA @ %g°C", LineSolid, false, th.DesignUA, series, bands)

	dutyCurves := domain.GroupCurves(records, domain.MetricDuty)
	series, bands = curveSeries(dutyCurves, "Duty @ %g°C", LineDotted, true, th.DesignDuty, series, bands)

	return ChartSpec{
		Title:    "Air Cooler Performance Curve: UA and Heat Duty vs. Mass Flow Rate",
		XLabel:   "Mass Flow Rate (kg/hr)",
		YLabel:   "Service Overall Heat Transfer Coefficient (UA) (kcal/hr.m².°C)",
		Y2Label:  "Heat Exchanger Duty (kcal/hr)",
		Filename: PerformanceChartFile,
		Series:   series,
		Bands:    bands,
		Thresholds: []ThresholdLine{
			{Value: th.DesignUA, Label: fmt.Sprintf("Design UA (%g kcal/hr.m².°C)", th.DesignUA), Color: "ff8c00"},
			{Value: th.DesignDuty, Label: fmt.Sprintf("Design Duty (%g kcal/hr)", th.DesignDuty), Color: "800080", Secondary: true},
		},
	}
}

// fanPowerChart assembles seasonal fan power versus mass flow with the
// rated-power annotation. No shading: the rated line alone flags risk.
func fanPowerChart(records []domain.CanonicalRecord, th domain.ThresholdSet) ChartSpec {
	var series []Series

	for _, c := range domain.GroupCurves(records, domain.MetricFanPowerSummer) {
		if len(c.Points) == 0 {
			continue
		}
		series = append(series, seasonSeries(c, "Summer Power @ %g°C", LineSolid))
	}
	for _, c := range domain.GroupCurves(records, domain.MetricFanPowerWinter) {
		if len(c.Points) == 0 {
			continue
		}
		series = append(series, seasonSeries(c, "Winter Power @ %g°C", LineDashed))
	}

	return ChartSpec{
		Title:    "Air Cooler Performance Curve: Fan Power vs. Mass Flow Rate",
		XLabel:   "Mass Flow Rate (kg/hr)",
		YLabel:   "Brake Power/Fan (kW)",
		Filename: FanPowerChartFile,
		Series:   series,
		Thresholds: []ThresholdLine{
			{Value: th.RatedPower, Label: fmt.Sprintf("Rated Power (%g kW)", th.RatedPower), Color: "000000"},
		},
	}
}

func seasonSeries(c domain.Curve, labelFmt string, kind LineKind) Series {
	x := make([]float64, len(c.Points))
	y := make([]float64, len(c.Points))
	for i, pt := range c.Points {
		x[i] = pt.X
		y[i] = pt.Y
	}
	return Series{
		Label: fmt.Sprintf(labelFmt, c.InletTemp),
		X:     x,
		Y:     y,
		Style: Style{Kind: kind, Color: colorFor(c.InletTemp)},
	}
}
