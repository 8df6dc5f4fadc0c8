package scales

import "math"

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined yet.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval with both edges undetermined.
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include the values x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j agree on both edges. Two unset edges
// are considered equal.
func (i Interval) Equal(j Interval) bool {
	eq := func(a, b float64) bool {
		if math.IsNaN(a) || math.IsNaN(b) {
			return math.IsNaN(a) && math.IsNaN(b)
		}
		return a == b
	}
	return eq(i.Min, j.Min) && eq(i.Max, j.Max)
}

// Width returns Max - Min. The width of a partially unset interval is NaN.
func (i Interval) Width() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies in i, edges included.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}

// Undefined reports whether any edge of i is unset.
func (i Interval) Undefined() bool {
	return math.IsNaN(i.Min) || math.IsNaN(i.Max)
}

// Degenerate reports whether i has collapsed to a single point.
func (i Interval) Degenerate() bool {
	return i.Min == i.Max
}

// Canon returns i with its edges ordered so that Min <= Max.
func (i Interval) Canon() Interval {
	if i.Max < i.Min {
		i.Min, i.Max = i.Max, i.Min
	}
	return i
}
