package domain

// Region is one maximal closed x-interval of a curve where the linearly
// interpolated value sits at or above a threshold. X and Y trace the
// curve inside the interval, including interpolated endpoints whose Y
// equals the threshold exactly. Regions never extend past the curve's
// sample domain.
type Region struct {
	X0 float64
	X1 float64
	X  []float64
	Y  []float64
}

// ExceedanceRegions walks consecutive sample pairs of an ordered curve
// and returns the regions where y >= threshold, in increasing x, non
// overlapping. Segment rules:
//
//   - both samples >= threshold: the whole sub-interval is exceeding,
//     including a segment running exactly along the threshold (inclusive
//     boundary, no interpolation needed);
//   - both below: no exceedance;
//   - straddling: the crossing abscissa is linearly interpolated and
//     bounds the exceeding half.
//
// Regions that would touch at a single point merge; an isolated touch of
// the threshold (zero width) produces no region. Curves with fewer than
// two samples have no regions.
func ExceedanceRegions(points []Point, threshold float64) []Region {
	if len(points) < 2 {
		return nil
	}

	var regions []Region
	open := false

	begin := func(x, y float64) {
		// Reopen the previous region when it ends exactly where this
		// one starts, so a single threshold-touching point does not
		// split the shading in two.
		if n := len(regions); n > 0 && regions[n-1].X1 == x {
			open = true
			return
		}
		regions = append(regions, Region{X0: x, X1: x, X: []float64{x}, Y: []float64{y}})
		open = true
	}
	extend := func(x, y float64) {
		r := &regions[len(regions)-1]
		n := len(r.X)
		if n > 0 && r.X[n-1] == x && r.Y[n-1] == y {
			return
		}
		r.X = append(r.X, x)
		r.Y = append(r.Y, y)
		r.X1 = x
	}
	closeAt := func(x, y float64) {
		extend(x, y)
		if r := regions[len(regions)-1]; r.X1 <= r.X0 {
			regions = regions[:len(regions)-1]
		}
		open = false
	}

	for i := 0; i < len(points)-1; i++ {
		p, q := points[i], points[i+1]
		pAbove := p.Y >= threshold
		qAbove := q.Y >= threshold

		switch {
		case pAbove && qAbove:
			if !open {
				begin(p.X, p.Y)
			}
			extend(q.X, q.Y)
		case pAbove && !qAbove:
			if !open {
				begin(p.X, p.Y)
			}
			closeAt(crossing(p, q, threshold), threshold)
		case !pAbove && qAbove:
			begin(crossing(p, q, threshold), threshold)
			extend(q.X, q.Y)
		default:
			if open {
				closeAt(p.X, threshold)
			}
		}
	}
	return regions
}

// crossing interpolates the abscissa where the segment p->q meets the
// threshold. Callers guarantee the segment straddles it, so p.Y != q.Y.
func crossing(p, q Point, threshold float64) float64 {
	return p.X + (threshold-p.Y)*(q.X-p.X)/(q.Y-p.Y)
}
