package scales

import (
	"fmt"
	"math"
	"sort"
)

// ----------------------------------------------------------------------------
// Binned scales

// defaultBinCount is the suggested number of bins when WithBins is not
// given.
const defaultBinCount = 10

// BinPolicy selects where a binned scale puts its breaks.
type BinPolicy int

const (
	// BinCenters ticks the middle of every bin with the center value.
	BinCenters BinPolicy = iota

	// BinEdges ticks the bin boundaries.
	BinEdges

	// BinRanges ticks the middle of every bin with the bin's interval,
	// e.g. "[10, 20)".
	BinRanges
)

// String returns the policy's name.
func (p BinPolicy) String() string {
	names := []string{"centers", "edges", "ranges"}
	if p < BinCenters || p > BinRanges {
		return "binpolicy(" + fmt.Sprint(int(p)) + ")"
	}
	return names[p]
}

// A Bin is one half-open interval [Lo, Hi) of a binned scale in data
// space. The last bin of a scale additionally contains its upper edge.
type Bin struct {
	Lo, Hi float64
}

// Center returns the middle of b.
func (b Bin) Center() float64 { return (b.Lo + b.Hi) / 2 }

// Width returns the width of b.
func (b Bin) Width() float64 { return b.Hi - b.Lo }

// resolveBins cuts the resolved range into bins and places the breaks
// according to the bin policy. The bin edges come from the break
// algorithm, so they sit on round values; the outermost bins close at
// the range edges.
func (s *Scale) resolveBins(r *Resolved) error {
	win := Interval{
		Min: s.trans.Inverse(r.Range.Min),
		Max: s.trans.Inverse(r.Range.Max),
	}.Canon()

	breaker := s.breaker
	if breaker == nil {
		n := s.bins
		if n == 0 {
			n = defaultBinCount
		}
		switch b := s.trans.Breaker.(type) {
		case LogBreaks:
			b.N = n + 1
			breaker = b
		case ExtendedBreaks:
			b.N = n + 1
			breaker = b
		default:
			breaker = ExtendedBreaks{N: n + 1}
		}
	}

	tol := (win.Max - win.Min) * 1e-9
	edges := breaker.Breaks(win.Min, win.Max)
	if len(edges) == 0 || edges[0] > win.Min+tol {
		edges = append([]float64{win.Min}, edges...)
	}
	if edges[len(edges)-1] < win.Max-tol {
		edges = append(edges, win.Max)
	}
	edges = dropDuplicates(edges, tol)
	if len(edges) < 2 {
		return fmt.Errorf("scales: %q: cannot bin degenerate range [%g, %g]",
			s.title, win.Min, win.Max)
	}

	bins := make([]Bin, len(edges)-1)
	for i := range bins {
		bins[i] = Bin{Lo: edges[i], Hi: edges[i+1]}
	}
	r.Bins = bins

	if s.noBreaks {
		return nil
	}

	var vals []float64
	switch s.binPolicy {
	case BinEdges:
		vals = edges
	default:
		vals = make([]float64, len(bins))
		for i, b := range bins {
			vals[i] = b.Center()
		}
	}

	var bs []Break
	kept := make([]int, 0, len(vals)) // bin index per kept break, for range labels
	for i, v := range vals {
		pos := s.trans.Apply(v)
		if math.IsNaN(pos) || !r.View.Contains(pos) {
			continue
		}
		bs = append(bs, Break{Value: v, Pos: pos})
		kept = append(kept, i)
	}
	// A decreasing transformation reverses the positions. Reverse breaks
	// and bin indices together to keep them aligned.
	if len(bs) > 1 && bs[0].Pos > bs[len(bs)-1].Pos {
		for i, j := 0, len(bs)-1; i < j; i, j = i+1, j-1 {
			bs[i], bs[j] = bs[j], bs[i]
			kept[i], kept[j] = kept[j], kept[i]
		}
	}

	if err := s.labelBins(bs, kept, bins); err != nil {
		return err
	}
	r.Breaks = bs
	r.Minor = s.minorsFor(bs, win, r.View)
	return nil
}

// labelBins fills in the break labels of a binned scale: the user's
// labeler if given, the interval text under BinRanges, plain numbers
// otherwise.
func (s *Scale) labelBins(bs []Break, kept []int, bins []Bin) error {
	switch {
	case s.noLabels || len(bs) == 0:
		return nil

	case s.labeler != nil:
		vals := make([]float64, len(bs))
		for i, b := range bs {
			vals[i] = b.Value
		}
		labels := s.labeler(vals)
		if len(labels) != len(bs) {
			return fmt.Errorf("scales: %d labels for %d breaks: %w",
				len(labels), len(bs), ErrLabelCount)
		}
		for i := range bs {
			bs[i].Label = labels[i]
		}

	case s.binPolicy == BinRanges:
		for i := range bs {
			bin := bins[kept[i]]
			if kept[i] == len(bins)-1 {
				bs[i].Label = fmt.Sprintf("[%g, %g]", bin.Lo, bin.Hi)
			} else {
				bs[i].Label = fmt.Sprintf("[%g, %g)", bin.Lo, bin.Hi)
			}
		}

	default:
		vals := make([]float64, len(bs))
		for i, b := range bs {
			vals[i] = b.Value
		}
		for i, l := range LabelNumber()(vals) {
			bs[i].Label = l
		}
	}
	return nil
}

// BinIndex returns the 1-based bin containing x, 0 if x is censored or
// the scale has no bins. Bins are half-open, only the last one contains
// its upper edge.
func (r *Resolved) BinIndex(x float64) int {
	if len(r.Bins) == 0 {
		return 0
	}
	pos := r.scale.trans.Apply(x)
	if math.IsNaN(pos) || !r.Range.Contains(pos) {
		return 0
	}
	return r.binFor(x)
}

// binFor looks up the bin of an uncensored data value.
func (r *Resolved) binFor(x float64) int {
	n := len(r.Bins)
	if x == r.Bins[n-1].Hi {
		return n
	}
	i := sort.Search(n, func(i int) bool { return x < r.Bins[i].Hi })
	if i == n || x < r.Bins[i].Lo {
		return 0
	}
	return i + 1
}

// binPos returns the position standing in for x on a binned scale: the
// position of x's bin center, or of the bin's lower edge under BinEdges.
func (r *Resolved) binPos(x float64) float64 {
	i := r.binFor(x)
	if i == 0 {
		return math.NaN()
	}
	b := r.Bins[i-1]
	rep := b.Center()
	if r.scale.binPolicy == BinEdges {
		rep = b.Lo
	}
	return r.scale.trans.Apply(rep)
}
