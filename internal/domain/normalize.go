package domain

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeStats aggregates per-cell and per-row recoveries for the
// end-of-run report. Malformed counts non-empty cells that failed
// numeric parsing, keyed by canonical field.
type NormalizeStats struct {
	RowsRead    int
	RowsDropped int
	Malformed   map[Field]int
}

// NormalizeRecords converts raw table rows into canonical records using
// the resolved column mapping. Fields without a resolved column are
// missing on every record. Rows whose mass flow or inlet temperature
// cannot be parsed are dropped; any other malformed cell only leaves
// that field missing. Duty is forced to a non-negative magnitude.
func NormalizeRecords(table Table, res Resolution) ([]CanonicalRecord, NormalizeStats) {
	stats := NormalizeStats{Malformed: make(map[Field]int)}

	records := make([]CanonicalRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		stats.RowsRead++

		massFlow := parseCell(row, res, FieldMassFlow, &stats)
		inletTemp := parseCell(row, res, FieldInletTemp, &stats)
		if massFlow == nil || inletTemp == nil {
			stats.RowsDropped++
			continue
		}

		records = append(records, CanonicalRecord{
			MassFlow:       *massFlow,
			InletTemp:      *inletTemp,
			OutletTemp:     parseCell(row, res, FieldOutletTemp, &stats),
			AirMassFlow:    parseCell(row, res, FieldAirMassFlow, &stats),
			UA:             parseCell(row, res, FieldUA, &stats),
			Duty:           absValue(parseCell(row, res, FieldDuty, &stats)),
			FanPowerSummer: parseCell(row, res, FieldFanPowerSummer, &stats),
			FanPowerWinter: parseCell(row, res, FieldFanPowerWinter, &stats),
		})
	}
	return records, stats
}

// parseCell parses one cell as float64, returning nil when the field's
// column is unresolved, the row is short, the cell is empty, or the
// value is not numeric. Only the last case counts as malformed.
// strconv.ParseFloat accepts integers, decimals, signs, and scientific
// notation.
func parseCell(row []string, res Resolution, f Field, stats *NormalizeStats) *float64 {
	col, ok := res.Columns[f]
	if !ok || col >= len(row) {
		return nil
	}
	raw := strings.TrimSpace(row[col])
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		stats.Malformed[f]++
		return nil
	}
	return &v
}

// absValue maps a parsed duty to its magnitude. Nil passes through.
func absValue(v *float64) *float64 {
	if v == nil {
		return nil
	}
	abs := math.Abs(*v)
	return &abs
}
