// Package pipeline orchestrates one chart-generation run: load a raw
// table, reconcile and normalize it, derive per-condition curves and
// their exceedance regions, and hand finished chart specs to a renderer.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/aircooler-perf/internal/domain"
)

// TableSource yields a generic row/column table from wherever the data
// lives. The pipeline never touches file formats itself.
type TableSource interface {
	Load(ctx context.Context) (domain.Table, error)
}

// ChartRenderer draws and exports one finished chart spec.
type ChartRenderer interface {
	Render(ctx context.Context, spec ChartSpec) error
}

// Pipeline wires the stages of a single synchronous run. All state is
// read-only after New, so independent runs can execute in parallel.
type Pipeline struct {
	source     TableSource
	renderer   ChartRenderer
	aliases    domain.AliasTable
	thresholds domain.ThresholdSet
	logger     *slog.Logger
}

// New creates a Pipeline with the given stages and configuration.
func New(source TableSource, renderer ChartRenderer, aliases domain.AliasTable, thresholds domain.ThresholdSet, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		source:     source,
		renderer:   renderer,
		aliases:    aliases,
		thresholds: thresholds,
		logger:     logger,
	}
}

// Run executes one load-normalize-chart cycle and returns the aggregated
// report. Per-cell and per-row problems are recovered and counted; only
// source or renderer failures abort the run.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	table, err := p.source.Load(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load table: %w", err)
	}
	p.logger.Debug("table loaded", "columns", len(table.Headers), "rows", len(table.Rows))

	res := p.aliases.Resolve(table.Headers)
	for _, amb := range res.Ambiguous {
		p.logger.Warn("ambiguous column labels, keeping earliest alias",
			"field", string(amb.Field), "chosen", amb.Chosen, "ignored", amb.Ignored)
	}

	records, stats := domain.NormalizeRecords(table, res)

	report := Report{
		RowsRead:       stats.RowsRead,
		RowsDropped:    stats.RowsDropped,
		MalformedCells: stats.Malformed,
		Unresolved:     res.Unresolved,
		Ambiguous:      res.Ambiguous,
		GeneratedAt:    clock.Now(),
	}

	for _, spec := range []ChartSpec{
		performanceChart(records, p.thresholds),
		fanPowerChart(records, p.thresholds),
	} {
		if len(spec.Series) == 0 {
			p.logger.Warn("no plottable series, skipping chart", "chart", spec.Filename)
			continue
		}
		if err := p.renderer.Render(ctx, spec); err != nil {
			return report, fmt.Errorf("render %s: %w", spec.Filename, err)
		}
		report.CurvesRendered += len(spec.Series)
		report.ChartsWritten = append(report.ChartsWritten, spec.Filename)
	}

	report.log(p.logger)
	return report, nil
}
