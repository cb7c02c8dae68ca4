// Package excel loads test-bench workbooks into the generic table shape
// the pipeline consumes. It is the only package that knows about xlsx.
package excel

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/aircooler-perf/internal/domain"
)

// Loader reads one worksheet of an xlsx workbook. When no explicit sheet
// is configured it scans for the first sheet whose header row resolves
// an axis column, since vendor workbooks often lead with notes or cover
// sheets.
type Loader struct {
	path    string
	sheet   string
	aliases domain.AliasTable
	logger  *slog.Logger
}

// NewLoader creates a Loader for the given workbook path. sheet may be
// empty to enable header-based sheet discovery.
func NewLoader(path, sheet string, aliases domain.AliasTable, logger *slog.Logger) *Loader {
	return &Loader{path: path, sheet: sheet, aliases: aliases, logger: logger}
}

// Load implements pipeline.TableSource. The first non-empty row of the
// chosen sheet becomes the header row; subsequent non-empty rows become
// data rows with raw string cells.
func (l *Loader) Load(_ context.Context) (domain.Table, error) {
	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("open workbook %s: %w", l.path, err)
	}
	defer f.Close()

	sheet, rows, err := l.pickSheet(f)
	if err != nil {
		return domain.Table{}, err
	}

	headerIdx := firstNonEmptyRow(rows)
	if headerIdx < 0 {
		return domain.Table{}, fmt.Errorf("sheet %q has no data", sheet)
	}

	table := domain.Table{Headers: rows[headerIdx]}
	for _, row := range rows[headerIdx+1:] {
		if rowHasData(row) {
			table.Rows = append(table.Rows, row)
		}
	}

	l.logger.Debug("worksheet loaded", "sheet", sheet, "columns", len(table.Headers), "rows", len(table.Rows))
	return table, nil
}

// pickSheet returns the configured sheet, or discovers the first sheet
// whose header row contains a recognizable axis column. When nothing
// matches, the first sheet with any data is used and downstream
// reconciliation reports the columns as unresolved.
func (l *Loader) pickSheet(f *excelize.File) (string, [][]string, error) {
	if l.sheet != "" {
		rows, err := f.GetRows(l.sheet)
		if err != nil {
			return "", nil, fmt.Errorf("read sheet %q: %w", l.sheet, err)
		}
		return l.sheet, rows, nil
	}

	var fallbackName string
	var fallbackRows [][]string
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		headerIdx := firstNonEmptyRow(rows)
		if headerIdx < 0 {
			continue
		}
		if fallbackRows == nil {
			fallbackName, fallbackRows = name, rows
		}
		res := l.aliases.Resolve(rows[headerIdx])
		_, hasFlow := res.Columns[domain.FieldMassFlow]
		_, hasTemp := res.Columns[domain.FieldInletTemp]
		if hasFlow || hasTemp {
			return name, rows, nil
		}
	}

	if fallbackRows == nil {
		return "", nil, fmt.Errorf("workbook %s has no sheet with data", l.path)
	}
	l.logger.Warn("no sheet with a recognizable header row, using first non-empty sheet", "sheet", fallbackName)
	return fallbackName, fallbackRows, nil
}

func firstNonEmptyRow(rows [][]string) int {
	for i, row := range rows {
		if rowHasData(row) {
			return i
		}
	}
	return -1
}

func rowHasData(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}
