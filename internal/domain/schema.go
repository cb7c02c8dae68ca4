package domain

import (
	"fmt"
	"strings"
)

// AliasEntry maps one canonical field to the raw column labels it may
// appear under. Alias order is significant: when several observed labels
// match, the earliest alias wins.
type AliasEntry struct {
	Field   Field    `yaml:"field"`
	Aliases []string `yaml:"aliases"`
}

// AliasTable is the declarative header-reconciliation mapping, in schema
// order. Labels are matched case-sensitively after trimming whitespace
// on both sides.
type AliasTable []AliasEntry

// DefaultAliasTable covers the label drift observed across vendor
// test-bench workbooks, including the comma and misspelling variants of
// the fan-power columns.
func DefaultAliasTable() AliasTable {
	return AliasTable{
		{Field: FieldMassFlow, Aliases: []string{
			"TS Gas Mass Flow (kg/h)",
			"TS Gas Mass Flow (kg/hr)",
			"Mass Flow Rate (kg/hr)",
		}},
		{Field: FieldInletTemp, Aliases: []string{
			"TS Inlet Temperature (Deg C)",
			"TS Inlet Temp (Deg C)",
		}},
		{Field: FieldOutletTemp, Aliases: []string{
			"TS Outlet Temperature (Deg C)",
			"TS Outlet Temp (Deg C)",
		}},
		{Field: FieldAirMassFlow, Aliases: []string{
			"Air Mass Flow (kg/h)",
			"Air Mass Flow (kg/hr)",
		}},
		{Field: FieldUA, Aliases: []string{
			"UA (kcal/hr.m².°C)",
			"UA (kJ/C-h)",
			"Overall Heat Transfer Co-efficient (UA) (kcal/hr.m².°C)",
		}},
		{Field: FieldDuty, Aliases: []string{
			"HE Duty (kcal/h)",
			"Heat Exchanger Duty (kcal/hr)",
		}},
		{Field: FieldFanPowerSummer, Aliases: []string{
			"Brake Power/Fan, Summer (kW)",
			"Brake Power/Fan Summer (kW)",
			"Break Power/Fan Summer (kW)",
		}},
		{Field: FieldFanPowerWinter, Aliases: []string{
			"Brake Power/Fan, Winter (kW)",
			"Brake Power/Fan Winter (kW)",
			"Break Power/Fan Winter (kW)",
		}},
	}
}

// Validate checks a table loaded from an override file: every entry must
// name a known canonical field with at least one alias, no field may
// appear twice, and no alias may repeat within a field.
func (t AliasTable) Validate() error {
	known := make(map[Field]bool, len(Fields()))
	for _, f := range Fields() {
		known[f] = true
	}

	seenField := make(map[Field]bool, len(t))
	for _, entry := range t {
		if !known[entry.Field] {
			return fmt.Errorf("alias table: unknown field %q", entry.Field)
		}
		if seenField[entry.Field] {
			return fmt.Errorf("alias table: duplicate entry for field %q", entry.Field)
		}
		seenField[entry.Field] = true

		if len(entry.Aliases) == 0 {
			return fmt.Errorf("alias table: field %q has no aliases", entry.Field)
		}
		seenAlias := make(map[string]bool, len(entry.Aliases))
		for _, alias := range entry.Aliases {
			trimmed := strings.TrimSpace(alias)
			if trimmed == "" {
				return fmt.Errorf("alias table: field %q has an empty alias", entry.Field)
			}
			if seenAlias[trimmed] {
				return fmt.Errorf("alias table: field %q repeats alias %q", entry.Field, trimmed)
			}
			seenAlias[trimmed] = true
		}
	}
	return nil
}

// Ambiguity records that more than one observed label matched aliases of
// the same canonical field. The earliest alias-table entry was chosen.
type Ambiguity struct {
	Field   Field
	Chosen  string
	Ignored []string
}

// Resolution maps canonical fields to column indexes of the observed
// header row. Fields absent from Columns were not matched by any alias.
type Resolution struct {
	Columns    map[Field]int
	Unresolved []Field
	Ambiguous  []Ambiguity
}

// Resolve matches observed column labels against the alias table.
// Headers and aliases are compared after TrimSpace, case-sensitively.
// When several headers match one field, the match earliest in alias
// order wins and the rest are reported in Ambiguous; ties on the same
// alias fall to the leftmost column. Input is not mutated.
func (t AliasTable) Resolve(headers []string) Resolution {
	trimmed := make([]string, len(headers))
	for i, h := range headers {
		trimmed[i] = strings.TrimSpace(h)
	}

	res := Resolution{Columns: make(map[Field]int, len(t))}
	for _, entry := range t {
		var matches []int
		matched := make(map[int]bool)
		for _, alias := range entry.Aliases {
			alias = strings.TrimSpace(alias)
			for col, h := range trimmed {
				if h == alias && !matched[col] {
					matches = append(matches, col)
					matched[col] = true
				}
			}
		}

		switch len(matches) {
		case 0:
			res.Unresolved = append(res.Unresolved, entry.Field)
		case 1:
			res.Columns[entry.Field] = matches[0]
		default:
			res.Columns[entry.Field] = matches[0]
			ignored := make([]string, 0, len(matches)-1)
			for _, col := range matches[1:] {
				ignored = append(ignored, trimmed[col])
			}
			res.Ambiguous = append(res.Ambiguous, Ambiguity{
				Field:   entry.Field,
				Chosen:  trimmed[matches[0]],
				Ignored: ignored,
			})
		}
	}
	return res
}
