package domain

// Table is a generic row-major, column-labeled dataset as produced by a
// table-loading adapter. Cells are raw strings; all numeric coercion
// happens in NormalizeRecords.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Field identifies a canonical column of the test-bench schema.
type Field string

const (
	FieldMassFlow       Field = "mass_flow"
	FieldInletTemp      Field = "inlet_temp"
	FieldOutletTemp     Field = "outlet_temp"
	FieldAirMassFlow    Field = "air_mass_flow"
	FieldUA             Field = "ua"
	FieldDuty           Field = "duty"
	FieldFanPowerSummer Field = "fan_power_summer"
	FieldFanPowerWinter Field = "fan_power_winter"
)

// Fields lists every canonical field in schema order.
func Fields() []Field {
	return []Field{
		FieldMassFlow,
		FieldInletTemp,
		FieldOutletTemp,
		FieldAirMassFlow,
		FieldUA,
		FieldDuty,
		FieldFanPowerSummer,
		FieldFanPowerWinter,
	}
}

// CanonicalRecord is one normalized operating point. MassFlow and
// InletTemp are the plotting/grouping axes and always present; a source
// row without them is dropped before a record is created. The remaining
// fields are nil when the source cell was absent or malformed.
// Duty, when present, is always >= 0.
type CanonicalRecord struct {
	MassFlow       float64
	InletTemp      float64
	OutletTemp     *float64
	AirMassFlow    *float64
	UA             *float64
	Duty           *float64
	FanPowerSummer *float64
	FanPowerWinter *float64
}

// Metric selects which optional field of a CanonicalRecord a curve plots.
type Metric string

const (
	MetricUA             Metric = "ua"
	MetricDuty           Metric = "duty"
	MetricFanPowerSummer Metric = "fan_power_summer"
	MetricFanPowerWinter Metric = "fan_power_winter"
)

// value returns the record's value for the metric, nil when missing.
func (m Metric) value(rec CanonicalRecord) *float64 {
	switch m {
	case MetricUA:
		return rec.UA
	case MetricDuty:
		return rec.Duty
	case MetricFanPowerSummer:
		return rec.FanPowerSummer
	case MetricFanPowerWinter:
		return rec.FanPowerWinter
	default:
		return nil
	}
}

// ThresholdSet holds the three design constants every curve is compared
// against. Immutable after configuration load.
type ThresholdSet struct {
	RatedPower float64 // kW
	DesignDuty float64 // kcal/hr
	DesignUA   float64 // kcal/hr.m².°C
}
