package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExceedanceRegions(t *testing.T) {
	t.Run("upward crossing interpolates the boundary", func(t *testing.T) {
		regions := ExceedanceRegions([]Point{{0, 5}, {10, 15}}, 10)

		require.Len(t, regions, 1)
		assert.Equal(t, 5.0, regions[0].X0)
		assert.Equal(t, 10.0, regions[0].X1)
		assert.Equal(t, []float64{5, 10}, regions[0].X)
		assert.Equal(t, []float64{10, 15}, regions[0].Y)
	})

	t.Run("downward crossing interpolates the boundary", func(t *testing.T) {
		regions := ExceedanceRegions([]Point{{1000, 300}, {2000, 250}}, 280)

		require.Len(t, regions, 1)
		assert.Equal(t, 1000.0, regions[0].X0)
		assert.InDelta(t, 1400.0, regions[0].X1, 1e-9)
		assert.Equal(t, 280.0, regions[0].Y[len(regions[0].Y)-1])
	})

	t.Run("entirely below threshold", func(t *testing.T) {
		assert.Empty(t, ExceedanceRegions([]Point{{0, 1}, {5, 2}, {10, 3}}, 10))
	})

	t.Run("entirely above threshold spans the full domain", func(t *testing.T) {
		regions := ExceedanceRegions([]Point{{0, 12}, {5, 15}, {10, 11}}, 10)

		require.Len(t, regions, 1)
		assert.Equal(t, 0.0, regions[0].X0)
		assert.Equal(t, 10.0, regions[0].X1)
		assert.Equal(t, []float64{0, 5, 10}, regions[0].X)
		assert.Equal(t, []float64{12, 15, 11}, regions[0].Y)
	})

	t.Run("colinear segment at threshold is included", func(t *testing.T) {
		regions := ExceedanceRegions([]Point{{0, 10}, {5, 10}}, 10)

		require.Len(t, regions, 1)
		assert.Equal(t, 0.0, regions[0].X0)
		assert.Equal(t, 5.0, regions[0].X1)
	})

	t.Run("touching point inside an exceeding run does not split it", func(t *testing.T) {
		regions := ExceedanceRegions([]Point{{0, 15}, {5, 10}, {10, 15}}, 10)

		require.Len(t, regions, 1)
		assert.Equal(t, 0.0, regions[0].X0)
		assert.Equal(t, 10.0, regions[0].X1)
		assert.Equal(t, []float64{0, 5, 10}, regions[0].X)
	})

	t.Run("isolated touch from below has zero width and no region", func(t *testing.T) {
		assert.Empty(t, ExceedanceRegions([]Point{{0, 5}, {5, 10}, {10, 5}}, 10))
	})

	t.Run("dip below threshold yields two regions", func(t *testing.T) {
		regions := ExceedanceRegions([]Point{{0, 15}, {5, 5}, {10, 15}}, 10)

		require.Len(t, regions, 2)
		assert.Equal(t, 0.0, regions[0].X0)
		assert.InDelta(t, 2.5, regions[0].X1, 1e-9)
		assert.InDelta(t, 7.5, regions[1].X0, 1e-9)
		assert.Equal(t, 10.0, regions[1].X1)
		assert.Less(t, regions[0].X1, regions[1].X0)
	})

	t.Run("regions stay inside the sample domain", func(t *testing.T) {
		regions := ExceedanceRegions([]Point{{2, 20}, {4, 20}}, 10)

		require.Len(t, regions, 1)
		assert.Equal(t, 2.0, regions[0].X0)
		assert.Equal(t, 4.0, regions[0].X1)
	})

	t.Run("fewer than two samples", func(t *testing.T) {
		assert.Empty(t, ExceedanceRegions(nil, 10))
		assert.Empty(t, ExceedanceRegions([]Point{{1, 100}}, 10))
	})
}

// TestExceedanceScenario mirrors a rated two-point bench sweep: the UA
// curve falls through its design value while duty rises through its own.
func TestExceedanceScenario(t *testing.T) {
	ua := []Point{{1000, 300}, {2000, 250}}
	duty := []Point{{1000, 3000000}, {2000, 3400000}}

	uaRegions := ExceedanceRegions(ua, 280)
	require.Len(t, uaRegions, 1)
	assert.Equal(t, 1000.0, uaRegions[0].X0)
	assert.InDelta(t, 1400.0, uaRegions[0].X1, 1e-9)

	dutyRegions := ExceedanceRegions(duty, 3350000)
	require.Len(t, dutyRegions, 1)
	assert.InDelta(t, 1875.0, dutyRegions[0].X0, 1e-9)
	assert.Equal(t, 2000.0, dutyRegions[0].X1)
}
