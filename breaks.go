package scales

import (
	"math"
	"sort"
)

// ----------------------------------------------------------------------------
// Breaker

// A Breaker computes break positions for the data-space interval [min, max].
// Implementations return breaks in ascending order; positions outside the
// scale's expanded range are dropped during resolution, not here.
type Breaker interface {
	Breaks(min, max float64) []float64
}

// lattice returns the m multiples of step starting at index i0, i.e.
// (i0+j)*step for j = 0 … m-1. Multiplying the integer index keeps long
// lattices free of accumulated rounding error.
func lattice(i0, step float64, m int) []float64 {
	bs := make([]float64, m)
	for j := range bs {
		bs[j] = (i0 + float64(j)) * step
	}
	return bs
}

const latticeEps = 1e-9 // index slack for bounds sitting on a lattice point

func badRange(min, max float64) bool {
	return math.IsNaN(min) || math.IsNaN(max) ||
		math.IsInf(min, 0) || math.IsInf(max, 0)
}

// ----------------------------------------------------------------------------
// ExtendedBreaks

// ExtendedBreaks chooses approximately N break positions at human friendly
// values: multiples of 1, 2, 2.5 or 5 times a power of ten. N is a
// suggestion only; the candidate step whose break count lands closest to N
// wins, with ties broken towards rounder steps. This is the default breaker
// of all non-logarithmic scales.
type ExtendedBreaks struct {
	N int // suggested number of breaks, 0 means 5
}

// The candidate mantissas in order of niceness.
var extendedQs = []struct {
	q       float64
	penalty float64
}{
	{1, 0}, {5, 0.25}, {2, 0.3}, {2.5, 0.5},
}

// Breaks computes the breaks for [min, max].
func (e ExtendedBreaks) Breaks(min, max float64) []float64 {
	n := e.N
	if n <= 0 {
		n = 5
	}
	if badRange(min, max) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return []float64{min}
	}

	raw := (max - min) / float64(n)
	if n > 1 {
		raw = (max - min) / float64(n-1)
	}
	mag := math.Floor(math.Log10(raw))

	var best []float64
	bestScore := math.Inf(1)
	for _, k := range []float64{mag - 1, mag, mag + 1} {
		for _, c := range extendedQs {
			step := c.q * math.Pow(10, k)
			i0 := math.Ceil(min/step - latticeEps)
			i1 := math.Floor(max/step + latticeEps)
			if i1 < i0 {
				continue
			}
			m := int(i1-i0) + 1
			if m > 10*n+10 {
				continue // way beyond the suggestion, not worth scoring
			}
			score := math.Abs(float64(m-n)) + c.penalty
			if m == 1 {
				score++ // a single break is a last resort
			}
			if score < bestScore {
				bestScore = score
				best = lattice(i0, step, m)
			}
		}
	}
	return best
}

// ----------------------------------------------------------------------------
// WidthBreaks

// WidthBreaks places breaks at Offset + k*Width for integer k, restricted
// to the scale's range. The offset shifts the whole lattice: width 800 with
// offset 200 yields …, 200, 1000, 1800, … instead of …, 0, 800, 1600, ….
type WidthBreaks struct {
	Width  float64
	Offset float64
}

// maxWidthBreaks bounds runaway configurations such as a hairline width
// over a planet-sized range.
const maxWidthBreaks = 10000

// Breaks computes the lattice points inside [min, max].
func (w WidthBreaks) Breaks(min, max float64) []float64 {
	if w.Width <= 0 || badRange(min, max) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	if (max-min)/w.Width > maxWidthBreaks {
		return nil
	}
	i0 := math.Ceil((min-w.Offset)/w.Width - latticeEps)
	i1 := math.Floor((max-w.Offset)/w.Width + latticeEps)
	if i1 < i0 {
		return nil
	}
	bs := lattice(i0, w.Width, int(i1-i0)+1)
	for i := range bs {
		bs[i] += w.Offset
	}
	return bs
}

// ----------------------------------------------------------------------------
// LogBreaks

// LogBreaks places breaks at powers of Base. Wide ranges are thinned to
// every few decades, narrow base-10 ranges are filled with the classic
// 1-2-5 mantissas, and ranges inside a single decade fall back to
// ExtendedBreaks.
type LogBreaks struct {
	Base float64 // 0 means 10
	N    int     // suggested number of breaks, 0 means 5
}

// Breaks computes the breaks for the data-space interval [min, max].
// Both bounds must be positive.
func (l LogBreaks) Breaks(min, max float64) []float64 {
	base := l.Base
	if base <= 1 {
		base = 10
	}
	n := l.N
	if n <= 0 {
		n = 5
	}
	if badRange(min, max) || !(min > 0) || !(max > 0) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return []float64{min}
	}

	logB := func(x float64) float64 { return math.Log(x) / math.Log(base) }
	k0 := math.Ceil(logB(min) - latticeEps)
	k1 := math.Floor(logB(max) + latticeEps)
	nd := int(k1 - k0 + 1) // full decades inside the range
	if k1 < k0 {
		nd = 0
	}

	switch {
	case nd > 2*n:
		// Thin to roughly n decades.
		step := math.Round(float64(nd-1) / float64(n-1))
		if step < 1 {
			step = 1
		}
		var bs []float64
		for k := k0; k <= k1+latticeEps; k += step {
			bs = append(bs, math.Pow(base, k))
		}
		return bs
	case nd >= 3:
		bs := make([]float64, 0, nd)
		for k := k0; k <= k1+latticeEps; k++ {
			bs = append(bs, math.Pow(base, k))
		}
		return bs
	case base == 10:
		// Sub-decade fill with 1, 2 and 5 mantissas.
		var bs []float64
		for k := math.Floor(logB(min)); k <= math.Ceil(logB(max))+latticeEps; k++ {
			for _, m := range []float64{1, 2, 5} {
				if v := m * math.Pow(10, k); v >= min*(1-latticeEps) && v <= max*(1+latticeEps) {
					bs = append(bs, v)
				}
			}
		}
		if len(bs) >= 3 {
			return bs
		}
		fallthrough
	default:
		return ExtendedBreaks{N: n}.Breaks(min, max)
	}
}

// ----------------------------------------------------------------------------
// FixedBreaks

// FixedBreaks is an explicit sequence of break positions, used as given
// up to ordering: breaks are unique, so duplicates collapse. An empty
// FixedBreaks suppresses breaks entirely while leaving the range and
// labels of the scale untouched.
type FixedBreaks []float64

// Breaks returns the fixed positions sorted with duplicates dropped; it
// ignores min and max, filtering to the expanded range happens during
// resolution.
func (f FixedBreaks) Breaks(min, max float64) []float64 {
	if len(f) == 0 {
		return nil
	}
	bs := make([]float64, len(f))
	copy(bs, f)
	return dropDuplicates(bs, 0)
}

// ----------------------------------------------------------------------------
// Minor breaks

// midpoints returns the default minor break positions for the given major
// break positions: the midpoint between each consecutive pair plus one half
// step beyond the first and last major, clipped to view.
func midpoints(major []float64, view Interval) []float64 {
	if len(major) < 2 {
		return nil
	}
	ms := make([]float64, 0, len(major)+1)
	first := major[0] - (major[1]-major[0])/2
	if view.Contains(first) {
		ms = append(ms, first)
	}
	for i := 0; i+1 < len(major); i++ {
		if m := (major[i] + major[i+1]) / 2; view.Contains(m) {
			ms = append(ms, m)
		}
	}
	last := major[len(major)-1] + (major[len(major)-1]-major[len(major)-2])/2
	if view.Contains(last) {
		ms = append(ms, last)
	}
	return ms
}

// dropDuplicates sorts xs and removes elements closer than tol to their
// predecessor.
func dropDuplicates(xs []float64, tol float64) []float64 {
	if len(xs) < 2 {
		return xs
	}
	sort.Float64s(xs)
	out := xs[:1]
	for _, x := range xs[1:] {
		if x-out[len(out)-1] > tol {
			out = append(out, x)
		}
	}
	return out
}
