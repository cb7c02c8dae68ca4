package domain

import "sort"

// Point is one (mass flow, metric value) sample of a curve.
type Point struct {
	X float64
	Y float64
}

// Curve is one metric's samples across mass flow for a single inlet
// temperature, ordered by non-decreasing X.
type Curve struct {
	InletTemp float64
	Metric    Metric
	Points    []Point
}

// GroupCurves partitions records by exact inlet-temperature equality and
// builds one curve per group for the given metric. Groups are emitted in
// ascending inlet temperature; within a group, records are ordered by
// ascending mass flow with ties keeping input order. Records missing the
// metric are omitted from that curve, which may leave it empty.
func GroupCurves(records []CanonicalRecord, metric Metric) []Curve {
	groups := make(map[float64][]CanonicalRecord)
	var temps []float64
	for _, rec := range records {
		if _, ok := groups[rec.InletTemp]; !ok {
			temps = append(temps, rec.InletTemp)
		}
		groups[rec.InletTemp] = append(groups[rec.InletTemp], rec)
	}
	sort.Float64s(temps)

	curves := make([]Curve, 0, len(temps))
	for _, temp := range temps {
		recs := groups[temp]
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].MassFlow < recs[j].MassFlow
		})

		curve := Curve{InletTemp: temp, Metric: metric}
		for _, rec := range recs {
			if v := metric.value(rec); v != nil {
				curve.Points = append(curve.Points, Point{X: rec.MassFlow, Y: *v})
			}
		}
		curves = append(curves, curve)
	}
	return curves
}
