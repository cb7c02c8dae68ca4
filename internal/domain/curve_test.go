package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestGroupCurves(t *testing.T) {
	t.Run("partitions by exact inlet temperature", func(t *testing.T) {
		records := []CanonicalRecord{
			{MassFlow: 2000, InletTemp: 50, UA: fptr(250)},
			{MassFlow: 1000, InletTemp: 55, UA: fptr(310)},
			{MassFlow: 1000, InletTemp: 50, UA: fptr(300)},
			{MassFlow: 2000, InletTemp: 55, UA: fptr(260)},
		}
		curves := GroupCurves(records, MetricUA)

		require.Len(t, curves, 2)
		assert.Equal(t, 50.0, curves[0].InletTemp)
		assert.Equal(t, 55.0, curves[1].InletTemp)

		// Every record lands in exactly one group.
		total := 0
		for _, c := range curves {
			total += len(c.Points)
		}
		assert.Equal(t, len(records), total)
	})

	t.Run("points ordered by ascending mass flow", func(t *testing.T) {
		records := []CanonicalRecord{
			{MassFlow: 3000, InletTemp: 60, UA: fptr(200)},
			{MassFlow: 1000, InletTemp: 60, UA: fptr(320)},
			{MassFlow: 2000, InletTemp: 60, UA: fptr(260)},
		}
		curves := GroupCurves(records, MetricUA)

		require.Len(t, curves, 1)
		require.Len(t, curves[0].Points, 3)
		for i := 1; i < len(curves[0].Points); i++ {
			assert.LessOrEqual(t, curves[0].Points[i-1].X, curves[0].Points[i].X)
		}
	})

	t.Run("equal mass flows keep input order", func(t *testing.T) {
		records := []CanonicalRecord{
			{MassFlow: 1000, InletTemp: 60, UA: fptr(1)},
			{MassFlow: 1000, InletTemp: 60, UA: fptr(2)},
			{MassFlow: 1000, InletTemp: 60, UA: fptr(3)},
		}
		curves := GroupCurves(records, MetricUA)

		require.Len(t, curves, 1)
		require.Len(t, curves[0].Points, 3)
		assert.Equal(t, []Point{{1000, 1}, {1000, 2}, {1000, 3}}, curves[0].Points)
	})

	t.Run("near-equal temperatures form distinct groups", func(t *testing.T) {
		records := []CanonicalRecord{
			{MassFlow: 1000, InletTemp: 50, UA: fptr(300)},
			{MassFlow: 2000, InletTemp: 50.0000001, UA: fptr(250)},
		}
		curves := GroupCurves(records, MetricUA)

		assert.Len(t, curves, 2)
	})

	t.Run("records missing the metric are omitted", func(t *testing.T) {
		records := []CanonicalRecord{
			{MassFlow: 1000, InletTemp: 50, UA: fptr(300), Duty: nil},
			{MassFlow: 2000, InletTemp: 50, UA: nil, Duty: fptr(3400000)},
		}

		ua := GroupCurves(records, MetricUA)
		require.Len(t, ua, 1)
		assert.Equal(t, []Point{{1000, 300}}, ua[0].Points)

		duty := GroupCurves(records, MetricDuty)
		require.Len(t, duty, 1)
		assert.Equal(t, []Point{{2000, 3400000}}, duty[0].Points)
	})

	t.Run("group with no metric values yields an empty curve", func(t *testing.T) {
		records := []CanonicalRecord{
			{MassFlow: 1000, InletTemp: 50},
			{MassFlow: 2000, InletTemp: 50},
		}
		curves := GroupCurves(records, MetricFanPowerSummer)

		require.Len(t, curves, 1)
		assert.Empty(t, curves[0].Points)
	})

	t.Run("no records yields no curves", func(t *testing.T) {
		assert.Empty(t, GroupCurves(nil, MetricUA))
	})
}
