// Package domain models air-cooled heat exchanger test-bench data.
//
// # Data Source
//
// Input rows come from vendor test-bench workbooks: one row per operating
// point, with thermal-side gas mass flow, inlet/outlet temperatures, air
// mass flow, the service heat-transfer coefficient (UA), the exchanger
// duty, and brake power per fan for summer and winter air conditions.
// The same quantities appear under drifting column labels from sheet to
// sheet ("TS Gas Mass Flow (kg/h)" vs "Mass Flow Rate (kg/hr)",
// "Brake Power/Fan, Summer (kW)" vs the misspelled "Break Power/Fan
// Summer (kW)", and so on). [AliasTable] maps observed labels to
// canonical fields; matching is case-sensitive after trimming
// leading/trailing whitespace.
//
// # Units
//
//	Mass flow:   kg/hr (thermal side and air side)
//	Temperature: °C
//	UA:          kcal/hr.m².°C
//	Duty:        kcal/hr
//	Fan power:   kW
//
// # Value Conventions
//
// Cells that fail numeric parsing (free text, placeholder symbols) become
// missing values rather than failing the row; empty cells are missing
// without being counted as malformed. Optional fields are pointers; nil
// means missing. A row missing either plotting axis (mass flow or inlet
// temperature) cannot be charted and is dropped entirely.
//
// Duty is always carried as a non-negative magnitude: some instruments
// report heat removed as a negative rate, so [NormalizeRecords] applies
// an unconditional absolute value. See [CanonicalRecord].
//
// # Grouping
//
// Curves are keyed by exact float64 equality of inlet temperature. Test
// benches sweep a small set of discrete design temperatures (50, 55, 60,
// 65, 70, 75 °C), so no tolerance bucketing is applied. Known limitation:
// near-equal but not bit-identical inlet temperatures form distinct
// curves.
//
// # Exceedance
//
// [ExceedanceRegions] computes the sub-domain of a curve lying at or
// above a fixed threshold, interpolating the exact crossing abscissa on
// segments that straddle it. A segment running exactly along the
// threshold is included whole (inclusive boundary). The renderer shades
// these regions to flag off-design operation.
package domain
