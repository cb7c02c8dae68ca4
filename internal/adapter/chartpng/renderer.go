// Package chartpng renders finished chart specs to PNG files with
// go-chart. It draws exactly what the pipeline assembled: curve series,
// exceedance shading, and horizontal threshold annotations.
package chartpng

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/aircooler-perf/internal/pipeline"
)

const (
	chartWidth  = 1400
	chartHeight = 800
)

// exceedFill is the shading for out-of-spec regions: red at ~30% alpha.
var exceedFill = drawing.Color{R: 255, G: 0, B: 0, A: 76}

// Renderer writes chart PNGs into a target directory.
type Renderer struct {
	outDir string
	logger *slog.Logger
}

// New creates a Renderer. The directory is created on first render.
func New(outDir string, logger *slog.Logger) *Renderer {
	return &Renderer{outDir: outDir, logger: logger}
}

// Render implements pipeline.ChartRenderer.
func (r *Renderer) Render(_ context.Context, spec pipeline.ChartSpec) error {
	var series []chart.Series

	// Bands go first so curves and threshold lines draw on top of the
	// shading. Unnamed series stay out of the legend.
	for _, b := range spec.Bands {
		series = append(series, chart.ContinuousSeries{
			XValues: b.X,
			YValues: b.Y,
			YAxis:   axisOf(b.Secondary),
			Style: chart.Style{
				StrokeWidth: 1,
				StrokeColor: exceedFill,
				FillColor:   exceedFill,
			},
		})
	}

	xMin, xMax := domainOf(spec.Series)
	for _, s := range spec.Series {
		x, y := s.X, s.Y
		// go-chart cannot size an axis from a single abscissa; repeat
		// the lone point with a nudged x so the series still draws.
		if len(x) == 1 {
			x = []float64{x[0], nudge(x[0])}
			y = []float64{y[0], y[0]}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: x,
			YValues: y,
			YAxis:   axisOf(s.Style.Secondary),
			Style:   strokeStyle(s.Style),
		})
	}

	for _, tl := range spec.Thresholds {
		series = append(series, chart.ContinuousSeries{
			Name:    tl.Label,
			XValues: []float64{xMin, xMax},
			YValues: []float64{tl.Value, tl.Value},
			YAxis:   axisOf(tl.Secondary),
			Style: chart.Style{
				StrokeColor:     drawing.ColorFromHex(tl.Color),
				StrokeWidth:     2.5,
				StrokeDashArray: []float64{8, 4, 2, 4},
			},
		})
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: spec.XLabel},
		YAxis:      chart.YAxis{Name: spec.YLabel},
		Series:     series,
	}
	if spec.Y2Label != "" {
		ch.YAxisSecondary = chart.YAxis{Name: spec.Y2Label}
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(r.outDir, spec.Filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := ch.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render %s: %w", spec.Filename, err)
	}
	r.logger.Info("chart written", "path", path, "series", len(spec.Series), "bands", len(spec.Bands))
	return nil
}

func axisOf(secondary bool) chart.YAxisType {
	if secondary {
		return chart.YAxisSecondary
	}
	return chart.YAxisPrimary
}

func strokeStyle(s pipeline.Style) chart.Style {
	style := chart.Style{
		StrokeColor: drawing.ColorFromHex(s.Color),
		StrokeWidth: 2,
	}
	switch s.Kind {
	case pipeline.LineDashed:
		style.StrokeDashArray = []float64{6, 4}
	case pipeline.LineDotted:
		style.StrokeDashArray = []float64{2, 3}
	}
	return style
}

// domainOf spans the x extent of all plotted series so threshold lines
// cover the whole chart.
func domainOf(series []pipeline.Series) (float64, float64) {
	first := true
	var xMin, xMax float64
	for _, s := range series {
		for _, x := range s.X {
			if first || x < xMin {
				xMin = x
			}
			if first || x > xMax {
				xMax = x
			}
			first = false
		}
	}
	if first {
		return 0, 1
	}
	if xMin == xMax {
		xMax = nudge(xMax)
	}
	return xMin, xMax
}

// nudge returns an x slightly right of the input, used to give
// degenerate single-point domains a non-zero width.
func nudge(x float64) float64 {
	if x == 0 {
		return 1
	}
	return x * 1.001
}
