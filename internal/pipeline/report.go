package pipeline

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/couchcryptid/aircooler-perf/internal/domain"
)

// Report aggregates every recovered problem and output of one run. It is
// logged once at the end instead of producing per-row noise.
type Report struct {
	RowsRead       int
	RowsDropped    int
	MalformedCells map[domain.Field]int
	Unresolved     []domain.Field
	Ambiguous      []domain.Ambiguity
	CurvesRendered int
	ChartsWritten  []string
	GeneratedAt    time.Time
}

// malformedSummary flattens the per-field counts into deterministic
// "field=count" strings sorted by field name.
func (r Report) malformedSummary() []string {
	fields := make([]string, 0, len(r.MalformedCells))
	for f := range r.MalformedCells {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, fmt.Sprintf("%s=%d", f, r.MalformedCells[domain.Field(f)]))
	}
	return out
}

func (r Report) unresolvedNames() []string {
	out := make([]string, 0, len(r.Unresolved))
	for _, f := range r.Unresolved {
		out = append(out, string(f))
	}
	return out
}

// log emits the aggregated end-of-run summary. Recovered problems go to
// warn so clean runs stay at info.
func (r Report) log(logger *slog.Logger) {
	logger.Info("run complete",
		"rows_read", r.RowsRead,
		"rows_dropped", r.RowsDropped,
		"curves_rendered", r.CurvesRendered,
		"charts_written", r.ChartsWritten,
		"generated_at", r.GeneratedAt.Format(time.RFC3339),
	)

	if len(r.Unresolved) > 0 {
		logger.Warn("unresolved columns treated as entirely missing", "fields", r.unresolvedNames())
	}
	if len(r.MalformedCells) > 0 {
		logger.Warn("malformed cells recorded as missing", "cells", r.malformedSummary())
	}
	if r.RowsDropped > 0 {
		logger.Warn("rows without usable axis values were dropped", "count", r.RowsDropped)
	}
}
