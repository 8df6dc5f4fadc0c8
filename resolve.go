package scales

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// ----------------------------------------------------------------------------
// Resolved

// A Break is one tick of a resolved scale. Value is the break in data
// space, e.g. 100 on a log scale or Unix seconds on a date-time scale.
// Pos is its position on the transformed axis.
type Break struct {
	Value float64
	Pos   float64
	Label string
}

// Drops counts data values a Resolve had to discard. Dropped values are
// never an error, NaN input is not counted at all.
type Drops struct {
	Domain int // outside the transformation's domain
	Bounds int // outside fixed limits, or an unknown category
}

// Total returns the number of dropped values.
func (d Drops) Total() int { return d.Domain + d.Bounds }

// Resolved is the outcome of feeding data through a Scale. It is
// immutable, all methods are safe for concurrent use.
//
// Range is the extent the scale resolved to, View the range plus
// expansion. Both live in transformed space: on a Log10Trans scale over
// the data 1..1000 the Range is [0, 3]. A degenerate range is widened by
// 0.5 on both sides, a range with no data and no limits becomes [0, 1].
type Resolved struct {
	Kind  Kind
	Title string

	Range Interval
	View  Interval

	Breaks []Break
	Minor  []float64 // minor break positions, transformed space

	Categories []string // discrete scales only
	Bins       []Bin    // binned scales only

	Drops Drops

	scale *Scale
	cats  map[string]int
}

func (r *Resolved) String() string {
	if r == nil {
		return "<nil>"
	}
	return fmt.Sprintf("resolved %s scale %q range [%.4g:%.4g] view [%.4g:%.4g], %d breaks",
		r.Kind, r.Title, r.Range.Min, r.Range.Max, r.View.Min, r.View.Max, len(r.Breaks))
}

// ----------------------------------------------------------------------------
// Resolving

// Resolve feeds data through the scale: it resolves the range against
// the fixed limits, transforms, expands and generates breaks and labels.
// Offending data values are dropped and counted in Drops, only
// impossible label configurations return an error.
func (s *Scale) Resolve(values ...float64) (*Resolved, error) {
	if s.kind == Discrete {
		return nil, fmt.Errorf("scales: Resolve on discrete scale %q, use ResolveDiscrete", s.title)
	}

	rang, view, drops := s.resolveRange(values)
	r := &Resolved{
		Kind:  s.kind,
		Title: s.title,
		Range: rang,
		View:  view,
		Drops: drops,
		scale: s,
	}

	if s.kind == Binned {
		if err := s.resolveBins(r); err != nil {
			return nil, err
		}
		return r, nil
	}

	breaks, minor, err := s.breaksFor(rang, view)
	if err != nil {
		return nil, err
	}
	r.Breaks, r.Minor = breaks, minor
	return r, nil
}

// ResolveDiscrete feeds categorical data through a discrete scale. The
// categories end up on the positions 1..n, ordered as fixed by
// WithCategories or else sorted. Values outside a fixed category set are
// dropped and counted.
func (s *Scale) ResolveDiscrete(values ...string) (*Resolved, error) {
	if s.kind != Discrete {
		return nil, fmt.Errorf("scales: ResolveDiscrete on %s scale %q", s.kind, s.title)
	}

	cats := s.categories
	drops := Drops{}
	if len(cats) == 0 {
		seen := make(map[string]bool)
		for _, v := range values {
			if !seen[v] {
				seen[v] = true
				cats = append(cats, v)
			}
		}
		sort.Strings(cats)
	} else {
		fixed := make(map[string]bool, len(cats))
		for _, c := range cats {
			fixed[c] = true
		}
		for _, v := range values {
			if !fixed[v] {
				drops.Bounds++
			}
		}
	}

	catPos := make(map[string]int, len(cats))
	for i, c := range cats {
		catPos[c] = i + 1
	}

	rang := Interval{Min: 1, Max: float64(len(cats))}
	switch len(cats) {
	case 0:
		rang = Interval{Min: 0, Max: 1}
	case 1:
		rang = Interval{Min: 0.5, Max: 1.5}
	}

	exp := discreteExpand
	if s.expand != nil {
		exp = *s.expand
	}

	r := &Resolved{
		Kind:       Discrete,
		Title:      s.title,
		Range:      rang,
		View:       exp.apply(rang),
		Categories: cats,
		Drops:      drops,
		scale:      s,
		cats:       catPos,
	}

	breaks, err := s.discreteBreaks(r)
	if err != nil {
		return nil, err
	}
	r.Breaks = breaks
	r.Minor = s.minorsFor(breaks, rang, r.View)
	return r, nil
}

// discreteBreaks ticks every category, or just the ones named with
// WithCategoryBreaks.
func (s *Scale) discreteBreaks(r *Resolved) ([]Break, error) {
	if s.noBreaks {
		return nil, nil
	}
	ticked := r.Categories
	if s.catBreaks != nil {
		ticked = s.catBreaks
	}

	var bs []Break
	for _, c := range ticked {
		i, ok := r.cats[c]
		if !ok {
			continue
		}
		bs = append(bs, Break{Value: float64(i), Pos: float64(i), Label: c})
	}
	sort.Slice(bs, func(i, j int) bool { return bs[i].Pos < bs[j].Pos })

	switch {
	case s.noLabels:
		for i := range bs {
			bs[i].Label = ""
		}
	case s.labeler != nil:
		vals := make([]float64, len(bs))
		for i, b := range bs {
			vals[i] = b.Value
		}
		labels := s.labeler(vals)
		if len(labels) != len(bs) {
			return nil, fmt.Errorf("scales: %d labels for %d breaks: %w",
				len(labels), len(bs), ErrLabelCount)
		}
		for i := range bs {
			bs[i].Label = labels[i]
		}
	case s.labelMap != nil:
		for i := range bs {
			if mapped, ok := s.labelMap[bs[i].Label]; ok {
				bs[i].Label = mapped
			}
		}
	}
	return bs, nil
}

// resolveRange turns raw data and fixed limits into the transformed
// Range and View. Values outside the transformation's domain or beyond
// the limits are counted, never reported as errors.
func (s *Scale) resolveRange(values []float64) (rang, view Interval, drops Drops) {
	data := UnsetInterval()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !s.trans.Domain(v) {
			drops.Domain++
			continue
		}
		if v < s.limits.Min || v > s.limits.Max {
			// Comparing against a NaN limit is false, so unset limits
			// censor nothing.
			drops.Bounds++
			continue
		}
		data.Update(v)
	}

	lo, hi := s.limits.Min, s.limits.Max
	if math.IsNaN(lo) {
		lo = data.Min
	}
	if math.IsNaN(hi) {
		hi = data.Max
	}
	switch {
	case math.IsNaN(lo) && math.IsNaN(hi):
		rang = Interval{Min: 0, Max: 1}
	case math.IsNaN(lo):
		rang = Interval{Min: hi, Max: hi}
	case math.IsNaN(hi):
		rang = Interval{Min: lo, Max: lo}
	default:
		rang = Interval{Min: lo, Max: hi}
	}

	rang = Interval{
		Min: s.trans.Apply(rang.Min),
		Max: s.trans.Apply(rang.Max),
	}.Canon()
	if rang.Degenerate() {
		rang.Min -= 0.5
		rang.Max += 0.5
	}

	exp := continuousExpand
	if s.expand != nil {
		exp = *s.expand
	}
	return rang, exp.apply(rang), drops
}

// defaultBreaker returns the configured breaker, or the kind's default
// with the suggested break count pushed in.
func (s *Scale) defaultBreaker() Breaker {
	if s.breaker != nil {
		return s.breaker
	}
	n := s.breakN
	if n == 0 {
		n = DefaultBreakCount
	}
	if s.kind == DateTime {
		return autoTimeBreaks{n: n, loc: s.loc}
	}
	switch b := s.trans.Breaker.(type) {
	case LogBreaks:
		b.N = n
		return b
	case ExtendedBreaks:
		b.N = n
		return b
	}
	return ExtendedBreaks{N: n}
}

func (s *Scale) defaultLabeler() Labeler {
	if s.labeler != nil {
		return s.labeler
	}
	if s.kind == DateTime {
		return LabelDateShort(s.loc)
	}
	return LabelNumber()
}

// breaksFor generates the breaks for the transformed interval gen and
// keeps those inside view. Breakers run in data space, so gen is pulled
// back through the inverse transformation first.
func (s *Scale) breaksFor(gen, view Interval) ([]Break, []float64, error) {
	if s.noBreaks {
		return nil, nil, nil
	}
	win := Interval{
		Min: s.trans.Inverse(gen.Min),
		Max: s.trans.Inverse(gen.Max),
	}.Canon()

	var bs []Break
	for _, v := range s.defaultBreaker().Breaks(win.Min, win.Max) {
		pos := s.trans.Apply(v)
		if math.IsNaN(pos) || !view.Contains(pos) {
			continue
		}
		bs = append(bs, Break{Value: v, Pos: pos})
	}
	sort.Slice(bs, func(i, j int) bool { return bs[i].Pos < bs[j].Pos })

	if !s.noLabels && len(bs) > 0 {
		vals := make([]float64, len(bs))
		for i, b := range bs {
			vals[i] = b.Value
		}
		labels := s.defaultLabeler()(vals)
		if len(labels) != len(bs) {
			return nil, nil, fmt.Errorf("scales: %d labels for %d breaks: %w",
				len(labels), len(bs), ErrLabelCount)
		}
		for i := range bs {
			bs[i].Label = labels[i]
		}
	}

	return bs, s.minorsFor(bs, win, view), nil
}

// minorsFor places the minor breaks: by default on the midpoints between
// adjacent majors, extended half a step into the view on both ends, or
// wherever an explicitly configured minor breaker puts them.
func (s *Scale) minorsFor(major []Break, win, view Interval) []float64 {
	if s.noMinor || len(major) == 0 {
		return nil
	}
	if s.minor != nil {
		var ms []float64
		for _, v := range s.minor.Breaks(win.Min, win.Max) {
			pos := s.trans.Apply(v)
			if math.IsNaN(pos) || !view.Contains(pos) {
				continue
			}
			ms = append(ms, pos)
		}
		sort.Float64s(ms)
		return ms
	}
	if s.kind != Continuous && s.kind != DateTime {
		return nil
	}
	pos := make([]float64, len(major))
	for i, b := range major {
		pos[i] = b.Pos
	}
	return midpoints(pos, view)
}

// ----------------------------------------------------------------------------
// Using a resolved scale

// Pos maps a data value to its position on the transformed axis. Values
// outside the transformation's domain or outside the resolved range
// return NaN, exactly like Resolve censors them. On a binned scale the
// value's bin stands in for the value: Pos returns the position of the
// bin's representative, not of x itself.
func (r *Resolved) Pos(x float64) float64 {
	pos := r.scale.trans.Apply(x)
	if math.IsNaN(pos) || !r.Range.Contains(pos) {
		return math.NaN()
	}
	if r.Kind == Binned && len(r.Bins) > 0 {
		return r.binPos(x)
	}
	return pos
}

// Map maps a data value into the unit interval: 0 is the view's lower
// edge, 1 its upper one. Censored values map to NaN.
func (r *Resolved) Map(x float64) float64 {
	pos := r.Pos(x)
	if math.IsNaN(pos) || r.View.Undefined() || r.View.Degenerate() {
		return math.NaN()
	}
	return (pos - r.View.Min) / r.View.Width()
}

// MapAll maps a whole data column at once.
func (r *Resolved) MapAll(xs []float64) []float64 {
	us := make([]float64, len(xs))
	for i, x := range xs {
		us[i] = r.Map(x)
	}
	return us
}

// MapTime maps an instant on a date-time scale.
func (r *Resolved) MapTime(t time.Time) float64 {
	return r.Map(TimeValue(t))
}

// CatPos returns the position of a category on a discrete scale, NaN for
// unknown categories and on other scale kinds.
func (r *Resolved) CatPos(name string) float64 {
	if i, ok := r.cats[name]; ok {
		return float64(i)
	}
	return math.NaN()
}

// MapCat maps a category into the unit interval.
func (r *Resolved) MapCat(name string) float64 {
	return r.Map(r.CatPos(name))
}

// InRange reports whether x survives censoring.
func (r *Resolved) InRange(x float64) bool {
	return !math.IsNaN(r.Pos(x))
}

// Positions returns the break positions in transformed space.
func (r *Resolved) Positions() []float64 {
	ps := make([]float64, len(r.Breaks))
	for i, b := range r.Breaks {
		ps[i] = b.Pos
	}
	return ps
}

// Labels returns the break labels.
func (r *Resolved) Labels() []string {
	ls := make([]string, len(r.Breaks))
	for i, b := range r.Breaks {
		ls[i] = b.Label
	}
	return ls
}

// Zoom returns a window [lo, hi] (data space) onto r: a copy whose view
// covers exactly the window, with breaks regenerated inside it. Zooming
// moves the viewport only. The range, the censoring and the drop counts
// of r stay as they are, so zooming never loses data.
func (r *Resolved) Zoom(lo, hi float64) (*Resolved, error) {
	plo, phi := r.scale.trans.Apply(lo), r.scale.trans.Apply(hi)
	if math.IsNaN(plo) || math.IsNaN(phi) {
		return nil, fmt.Errorf("scales: zoom window [%g, %g] outside %s domain",
			lo, hi, r.scale.trans.Name)
	}
	win := Interval{Min: plo, Max: phi}.Canon()
	if win.Degenerate() {
		return nil, fmt.Errorf("scales: empty zoom window [%g, %g]", lo, hi)
	}

	z := *r
	z.View = win
	switch r.Kind {
	case Continuous, DateTime:
		breaks, minor, err := r.scale.breaksFor(win, win)
		if err != nil {
			return nil, err
		}
		z.Breaks, z.Minor = breaks, minor
	default:
		// Discrete and binned breaks are fixed by their categories and
		// bins, the window just clips them.
		var bs []Break
		for _, b := range r.Breaks {
			if win.Contains(b.Pos) {
				bs = append(bs, b)
			}
		}
		var ms []float64
		for _, m := range r.Minor {
			if win.Contains(m) {
				ms = append(ms, m)
			}
		}
		z.Breaks, z.Minor = bs, ms
	}
	return &z, nil
}

// ZoomTime is Zoom with a window given as instants.
func (r *Resolved) ZoomTime(lo, hi time.Time) (*Resolved, error) {
	return r.Zoom(TimeValue(lo), TimeValue(hi))
}
