package scales

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ----------------------------------------------------------------------------
// Kind

// Kind selects one of the handful of known scale kinds.
type Kind int

const (
	// Continuous maps an interval of real numbers, optionally through a
	// monotone transformation like Log10Trans.
	Continuous Kind = iota

	// DateTime is a continuous scale over instants, measured in seconds
	// since the Unix epoch. Breaks follow the calendar.
	DateTime

	// Discrete maps a fixed set of categories onto the positions
	// 1, 2, ..., n.
	Discrete

	// Binned cuts a continuous range into intervals and maps every value
	// to the bin containing it.
	Binned
)

// String returns the kind's name.
func (k Kind) String() string {
	names := []string{"continuous", "datetime", "discrete", "binned"}
	if k < Continuous || k > Binned {
		return "kind(" + fmt.Sprint(int(k)) + ")"
	}
	return names[k]
}

// ----------------------------------------------------------------------------
// Expansion

// Expansion widens the resolved range, so that data drawn at the range
// edges does not touch the axes. Each side grows by its relative part of
// the range width plus its absolute part.
type Expansion struct {
	MulLo, AddLo float64
	MulHi, AddHi float64
}

// ExpandMul expands both sides by the m-fold of the range width.
func ExpandMul(m float64) Expansion {
	return Expansion{MulLo: m, MulHi: m}
}

// ExpandAdd expands both sides by a in scale units.
func ExpandAdd(a float64) Expansion {
	return Expansion{AddLo: a, AddHi: a}
}

// ExpandNone keeps the view exactly at the resolved range.
func ExpandNone() Expansion {
	return Expansion{}
}

// apply widens iv by e.
func (e Expansion) apply(iv Interval) Interval {
	w := iv.Max - iv.Min
	return Interval{
		Min: iv.Min - (e.MulLo*w + e.AddLo),
		Max: iv.Max + (e.MulHi*w + e.AddHi),
	}
}

// Default expansions per kind, following what readers of statistical
// graphics expect: a sliver of air around continuous data, more than half
// a position around discrete ones.
var (
	continuousExpand = ExpandMul(0.05)
	discreteExpand   = ExpandAdd(0.6)
)

// ----------------------------------------------------------------------------
// Scale

// DefaultBreakCount is the suggested number of breaks when no explicit
// count or breaker is configured.
const DefaultBreakCount = 5

// Errors reported by New and Resolve. Problems in the configuration fail
// early, problems in the data never fail: offending values are dropped
// and counted instead.
var (
	// ErrKind is returned by New when an option does not apply to the
	// scale kind, e.g. a transformation on a discrete scale.
	ErrKind = errors.New("option does not apply to scale kind")

	// ErrBadLimits is returned when a fixed limit lies outside the
	// domain of the scale's transformation, e.g. a zero limit on a log
	// scale.
	ErrBadLimits = errors.New("limit outside transformation domain")

	// ErrLabelCount is returned when explicitly given labels do not
	// match the breaks one to one: by New when the breaks are explicit
	// too, by Resolve otherwise.
	ErrLabelCount = errors.New("label count does not match break count")

	// ErrBadTrans is returned by New for incomplete transformations.
	ErrBadTrans = errors.New("transformation needs Forward and Inverse")
)

// Scale describes one position scale of a plot: how raw values become
// positions, where the axis puts its breaks and what the tick labels say.
// A Scale is pure configuration. Feeding data through it with Resolve
// does not modify it, so a single Scale may resolve several panels
// concurrently.
type Scale struct {
	kind  Kind
	title string

	trans  Trans
	limits Interval // data space, NaN edges autoscale

	breaker  Breaker
	noBreaks bool
	breakN   int
	minor    Breaker
	noMinor  bool

	labeler   Labeler
	labelText []string
	noLabels  bool
	labelMap  map[string]string
	loc       *time.Location

	categories []string
	catBreaks  []string

	expand *Expansion

	bins      int
	binPolicy BinPolicy
}

// An Option configures a scale. Options are validated when New applies
// them.
type Option func(*Scale) error

// New returns a scale of the given kind. Option errors and inconsistent
// combinations are reported here, before any data is seen.
func New(kind Kind, opts ...Option) (*Scale, error) {
	if kind < Continuous || kind > Binned {
		return nil, fmt.Errorf("scales: unknown kind %d", int(kind))
	}
	s := &Scale{
		kind:   kind,
		limits: UnsetInterval(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scale) validate() error {
	if s.trans.Forward == nil {
		s.trans = IdentityTrans
	} else if s.trans.Inverse == nil {
		return fmt.Errorf("scales: %q: %w", s.trans.Name, ErrBadTrans)
	}
	if s.trans.Domain == nil {
		s.trans.Domain = anyFloat
	}

	if s.limits.Min > s.limits.Max {
		s.limits.Min, s.limits.Max = s.limits.Max, s.limits.Min
	}
	for _, lim := range []float64{s.limits.Min, s.limits.Max} {
		if !math.IsNaN(lim) && !s.trans.Domain(lim) {
			return fmt.Errorf("scales: limit %g on %s scale: %w",
				lim, s.trans.Name, ErrBadLimits)
		}
	}

	if s.kind == Discrete && len(s.categories) > 0 {
		seen := make(map[string]bool, len(s.categories))
		for _, c := range s.categories {
			if seen[c] {
				return fmt.Errorf("scales: duplicate category %q", c)
			}
			seen[c] = true
		}
		for _, c := range s.catBreaks {
			if !seen[c] {
				return fmt.Errorf("scales: break category %q not among categories", c)
			}
		}
	}

	// Explicit labels against explicit breaks can be checked right here.
	// Generated break counts are only known at resolve time, binned
	// breaks depend on the bin policy.
	if s.labelText != nil && !s.noBreaks && !s.noLabels {
		want := -1
		switch {
		case s.kind == Discrete && len(s.catBreaks) > 0:
			want = len(s.catBreaks)
		case s.kind == Discrete && len(s.categories) > 0:
			want = len(s.categories)
		case s.kind != Binned:
			if fb, ok := s.breaker.(FixedBreaks); ok {
				want = len(fb.Breaks(0, 0))
			}
		}
		if want >= 0 && want != len(s.labelText) {
			return fmt.Errorf("scales: %d labels for %d breaks: %w",
				len(s.labelText), want, ErrLabelCount)
		}
	}

	if s.bins < 0 {
		return fmt.Errorf("scales: negative bin count %d", s.bins)
	}
	if s.breakN < 0 {
		return fmt.Errorf("scales: negative break count %d", s.breakN)
	}
	return nil
}

// Kind returns the scale's kind.
func (s *Scale) Kind() Kind { return s.kind }

// Title returns the scale's title.
func (s *Scale) Title() string { return s.title }

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s scale %q", s.kind, s.title)
}

// requireKind builds the ErrKind error for option opt on scale s.
func (s *Scale) requireKind(opt string, kinds ...Kind) error {
	for _, k := range kinds {
		if s.kind == k {
			return nil
		}
	}
	return fmt.Errorf("scales: %s on %s scale: %w", opt, s.kind, ErrKind)
}

// ----------------------------------------------------------------------------
// Options

// WithTitle sets the scale's title.
func WithTitle(t string) Option {
	return func(s *Scale) error {
		s.title = t
		return nil
	}
}

// WithLimits fixes both range edges in data space, overriding the data.
// Values beyond the limits are censored by Resolve.
func WithLimits(lo, hi float64) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithLimits", Continuous, DateTime, Binned); err != nil {
			return err
		}
		s.limits = Interval{Min: lo, Max: hi}
		return nil
	}
}

// WithMin fixes the lower range edge and leaves the upper one to the data.
func WithMin(lo float64) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithMin", Continuous, DateTime, Binned); err != nil {
			return err
		}
		s.limits.Min = lo
		return nil
	}
}

// WithMax fixes the upper range edge and leaves the lower one to the data.
func WithMax(hi float64) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithMax", Continuous, DateTime, Binned); err != nil {
			return err
		}
		s.limits.Max = hi
		return nil
	}
}

// WithTimeLimits fixes the range of a date-time scale.
func WithTimeLimits(lo, hi time.Time) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithTimeLimits", DateTime); err != nil {
			return err
		}
		s.limits = Interval{Min: TimeValue(lo), Max: TimeValue(hi)}
		return nil
	}
}

// WithTrans applies a monotone transformation such as Log10Trans or
// SqrtTrans. Data outside the transformation's domain is dropped by
// Resolve, fixed limits outside it fail New.
func WithTrans(t Trans) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithTrans", Continuous, Binned); err != nil {
			return err
		}
		s.trans = t
		return nil
	}
}

// WithCategories fixes the set and order of a discrete scale's
// categories. Without it the categories are the sorted distinct values
// seen by ResolveDiscrete. Data values outside the fixed set are dropped.
func WithCategories(cats ...string) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithCategories", Discrete); err != nil {
			return err
		}
		s.categories = cats
		return nil
	}
}

// WithBreaks sets the algorithm generating the axis breaks. Breakers
// work in data space: on a log scale they see 1, 10, 100, not the
// exponents.
func WithBreaks(b Breaker) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithBreaks", Continuous, DateTime, Binned); err != nil {
			return err
		}
		s.breaker = b
		return nil
	}
}

// WithBreaksAt places breaks exactly at the given data-space values.
// Values outside the resolved view are dropped silently.
func WithBreaksAt(xs ...float64) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithBreaksAt", Continuous, DateTime, Binned); err != nil {
			return err
		}
		s.breaker = FixedBreaks(xs)
		return nil
	}
}

// WithoutBreaks removes all breaks. Labels and minor breaks disappear
// with them.
func WithoutBreaks() Option {
	return func(s *Scale) error {
		s.noBreaks = true
		return nil
	}
}

// WithBreakCount suggests how many breaks the default break algorithms
// should aim for. It is a suggestion: the algorithms favour round values
// over an exact count.
func WithBreakCount(n int) Option {
	return func(s *Scale) error {
		s.breakN = n
		return nil
	}
}

// WithDateBreaks places calendar-aligned breaks from a step description
// such as "2 weeks", "1 month" or "15 years".
func WithDateBreaks(step string) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithDateBreaks", DateTime); err != nil {
			return err
		}
		every, unit, err := parseTimeStep(step)
		if err != nil {
			return err
		}
		s.breaker = TimeBreaks{Every: every, Unit: unit, Loc: s.loc}
		return nil
	}
}

// WithCategoryBreaks ticks only the named categories of a discrete
// scale. The names must be among the scale's categories if those are
// fixed with WithCategories.
func WithCategoryBreaks(cats ...string) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithCategoryBreaks", Discrete); err != nil {
			return err
		}
		s.catBreaks = cats
		return nil
	}
}

// WithMinorBreaks sets the algorithm generating minor breaks, replacing
// the default midpoints between adjacent majors.
func WithMinorBreaks(b Breaker) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithMinorBreaks", Continuous, DateTime, Binned); err != nil {
			return err
		}
		s.minor = b
		return nil
	}
}

// WithMinorBreaksAt places minor breaks exactly at the given data-space
// values.
func WithMinorBreaksAt(xs ...float64) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithMinorBreaksAt", Continuous, DateTime, Binned); err != nil {
			return err
		}
		s.minor = FixedBreaks(xs)
		return nil
	}
}

// WithDateMinorBreaks places calendar-aligned minor breaks from a step
// description such as "1 week".
func WithDateMinorBreaks(step string) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithDateMinorBreaks", DateTime); err != nil {
			return err
		}
		every, unit, err := parseTimeStep(step)
		if err != nil {
			return err
		}
		s.minor = TimeBreaks{Every: every, Unit: unit, Loc: s.loc}
		return nil
	}
}

// WithoutMinorBreaks removes minor breaks.
func WithoutMinorBreaks() Option {
	return func(s *Scale) error {
		s.noMinor = true
		return nil
	}
}

// WithLabels sets the labeler formatting the break values.
func WithLabels(l Labeler) Option {
	return func(s *Scale) error {
		s.labeler = l
		return nil
	}
}

// WithLabelText uses the given labels verbatim. A count not matching the
// breaks fails with ErrLabelCount: from New when the breaks are explicit
// too, from Resolve otherwise.
func WithLabelText(labels ...string) Option {
	return func(s *Scale) error {
		s.labelText = labels
		s.labeler = LabelList(labels...)
		return nil
	}
}

// WithLabelMap renames the labels of single categories of a discrete
// scale. Categories missing from the map keep their name, map keys never
// seen in the data are ignored.
func WithLabelMap(m map[string]string) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithLabelMap", Discrete); err != nil {
			return err
		}
		s.labelMap = m
		return nil
	}
}

// WithDateLabels formats date-time breaks with a strftime layout such as
// "%Y-%m-%d". The layout is validated here.
func WithDateLabels(layout string) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithDateLabels", DateTime); err != nil {
			return err
		}
		l, err := LabelDate(layout, s.loc)
		if err != nil {
			return err
		}
		s.labeler = l
		return nil
	}
}

// WithoutLabels keeps the breaks but drops all label text.
func WithoutLabels() Option {
	return func(s *Scale) error {
		s.noLabels = true
		return nil
	}
}

// WithExpansion overrides the kind's default expansion of the view
// beyond the data. WithExpansion(ExpandNone()) puts the view edges
// exactly on the range.
func WithExpansion(e Expansion) Option {
	return func(s *Scale) error {
		s.expand = &e
		return nil
	}
}

// WithLocation sets the time zone calendar breaks and date labels are
// computed in. The default is UTC. Set the location before date break or
// label options.
func WithLocation(loc *time.Location) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithLocation", DateTime); err != nil {
			return err
		}
		s.loc = loc
		return nil
	}
}

// WithBins suggests the number of bins of a binned scale. Like break
// counts it is a suggestion, bin edges stay on round values.
func WithBins(n int) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithBins", Binned); err != nil {
			return err
		}
		s.bins = n
		return nil
	}
}

// WithBinPolicy selects where a binned scale puts its breaks, on the bin
// centers or on the bin edges.
func WithBinPolicy(p BinPolicy) Option {
	return func(s *Scale) error {
		if err := s.requireKind("WithBinPolicy", Binned); err != nil {
			return err
		}
		s.binPolicy = p
		return nil
	}
}
