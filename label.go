package scales

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lestrrat-go/strftime"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// A Labeler turns the full sequence of break values into the tick labels
// shown on an axis. Values are in data space, so a log scale's breaks
// arrive as 1, 10, 100 and not as their logarithms. Labelers that return
// a fixed list fail Resolve with ErrLabelCount when the lengths differ,
// all others produce one label per value.
type Labeler func(values []float64) []string

// sharedPrecision finds the smallest number of fraction digits that
// renders every value exactly. All labels of an axis share it, so 0.25
// steps come out as 0.00, 0.25, 0.50 instead of a ragged 0, 0.25, 0.5.
func sharedPrecision(vs []float64) int {
	for p := 0; p < 12; p++ {
		ok := true
		for _, v := range vs {
			r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', p, 64), 64)
			if math.Abs(r-v) > math.Abs(v)*1e-10+1e-12 {
				ok = false
				break
			}
		}
		if ok {
			return p
		}
	}
	return 12
}

// LabelNumber renders plain decimal numbers. It is the default for
// continuous scales.
func LabelNumber() Labeler {
	return func(vs []float64) []string {
		prec := sharedPrecision(vs)
		ls := make([]string, len(vs))
		for i, v := range vs {
			ls[i] = strconv.FormatFloat(v, 'f', prec, 64)
		}
		return ls
	}
}

// LabelComma renders decimal numbers with thousands separators,
// 1234567 becoming "1,234,567".
func LabelComma() Labeler {
	p := message.NewPrinter(language.English)
	return func(vs []float64) []string {
		prec := sharedPrecision(vs)
		ls := make([]string, len(vs))
		for i, v := range vs {
			ls[i] = p.Sprint(number.Decimal(v, number.Scale(prec)))
		}
		return ls
	}
}

// LabelPercent renders fractions as percentages, 0.25 becoming "25%".
func LabelPercent() Labeler {
	p := message.NewPrinter(language.English)
	return func(vs []float64) []string {
		scaled := make([]float64, len(vs))
		for i, v := range vs {
			scaled[i] = 100 * v
		}
		prec := sharedPrecision(scaled)
		ls := make([]string, len(vs))
		for i, v := range vs {
			ls[i] = p.Sprint(number.Percent(v, number.Scale(prec)))
		}
		return ls
	}
}

// LabelScientific renders numbers in scientific notation with the given
// number of mantissa fraction digits.
func LabelScientific(digits int) Labeler {
	p := message.NewPrinter(language.English)
	return func(vs []float64) []string {
		ls := make([]string, len(vs))
		for i, v := range vs {
			ls[i] = p.Sprint(number.Scientific(v, number.Scale(digits)))
		}
		return ls
	}
}

// LabelCurrency renders amounts of money: LabelCurrency("$") turns
// 1234.5 into "$1,234.50". Whole amounts drop the cents, fractional ones
// show exactly two digits. Negative amounts put the sign before the
// symbol.
func LabelCurrency(symbol string) Labeler {
	p := message.NewPrinter(language.English)
	return func(vs []float64) []string {
		prec := sharedPrecision(vs)
		if prec > 0 {
			prec = 2
		}
		ls := make([]string, len(vs))
		for i, v := range vs {
			sym := symbol
			if v < 0 {
				sym = "-" + sym
				v = -v
			}
			ls[i] = sym + p.Sprint(number.Decimal(v, number.Scale(prec)))
		}
		return ls
	}
}

// LabelBytes renders byte counts in SI units: 1500000 becomes "1.5 MB".
// Negative values are clamped to zero.
func LabelBytes() Labeler {
	return byteLabels(humanize.Bytes)
}

// LabelIBytes renders byte counts in IEC units: 1572864 becomes "1.5 MiB".
func LabelIBytes() Labeler {
	return byteLabels(humanize.IBytes)
}

func byteLabels(f func(uint64) string) Labeler {
	return func(vs []float64) []string {
		ls := make([]string, len(vs))
		for i, v := range vs {
			ls[i] = f(uint64(math.Max(v, 0) + 0.5))
		}
		return ls
	}
}

// LabelSI renders numbers with metric prefixes, LabelSI(1, "g") turning
// 2200000 into "2.2 Mg".
func LabelSI(digits int, unit string) Labeler {
	return func(vs []float64) []string {
		ls := make([]string, len(vs))
		for i, v := range vs {
			val, prefix := humanize.ComputeSI(v)
			ls[i] = strconv.FormatFloat(val, 'f', digits, 64) + " " + prefix + unit
		}
		return ls
	}
}

// LabelOrdinal renders counting numbers as "1st", "2nd", "3rd".
func LabelOrdinal() Labeler {
	return func(vs []float64) []string {
		ls := make([]string, len(vs))
		for i, v := range vs {
			ls[i] = humanize.Ordinal(int(math.Round(v)))
		}
		return ls
	}
}

// LabelList uses the given labels verbatim. Resolve fails with
// ErrLabelCount if their number does not match the number of breaks.
func LabelList(labels ...string) Labeler {
	return func([]float64) []string {
		ls := make([]string, len(labels))
		copy(ls, labels)
		return ls
	}
}

// NoLabels keeps the tick marks but drops all text.
func NoLabels() Labeler {
	return func(vs []float64) []string {
		return make([]string, len(vs))
	}
}

// ----------------------------------------------------------------------------
// Date labels

// LabelDate renders date-time breaks with a strftime layout such as
// "%Y-%m-%d" or "%b %e". The layout is validated here. A nil location
// means UTC.
func LabelDate(layout string, loc *time.Location) (Labeler, error) {
	f, err := strftime.New(layout)
	if err != nil {
		return nil, fmt.Errorf("scales: bad date layout %q: %w", layout, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return func(vs []float64) []string {
		ls := make([]string, len(vs))
		for i, v := range vs {
			ls[i] = f.FormatString(TimeOf(v, loc))
		}
		return ls
	}, nil
}

// LabelDateShort renders date-time breaks with as little text as
// possible: each label repeats only the parts that changed since the
// break before it, stacked finest first. Monthly breaks over one year
// come out as "Jan\n2021", "Feb", ..., "Dec" and the year shows up
// again only when it changes. It is the default for date-time scales.
func LabelDateShort(loc *time.Location) Labeler {
	if loc == nil {
		loc = time.UTC
	}
	return func(vs []float64) []string {
		ts := make([]time.Time, len(vs))
		for i, v := range vs {
			ts[i] = TimeOf(v, loc)
		}
		return shortDateLabels(ts)
	}
}

// Levels of a short date label, finest first.
const (
	levelTime = iota
	levelDay
	levelMonth
	levelYear
)

func shortDateLabels(ts []time.Time) []string {
	if len(ts) == 0 {
		return nil
	}

	// The finest level is the finest calendar component any break
	// actually uses: midnight-only breaks need no time of day, breaks
	// on firsts no day number.
	finest := levelYear
	withSeconds := false
	for _, t := range ts {
		switch {
		case t.Second() != 0 || t.Nanosecond() != 0:
			finest, withSeconds = levelTime, true
		case t.Hour() != 0 || t.Minute() != 0:
			if finest > levelTime {
				finest = levelTime
			}
		case t.Day() != 1:
			if finest > levelDay {
				finest = levelDay
			}
		case t.Month() != time.January:
			if finest > levelMonth {
				finest = levelMonth
			}
		}
	}

	ls := make([]string, len(ts))
	for i, t := range ts {
		// The first label spells out everything, later ones stop at
		// the coarsest level that changed.
		top := levelYear
		if i > 0 {
			prev := ts[i-1]
			switch {
			case t.Year() != prev.Year():
				top = levelYear
			case t.Month() != prev.Month():
				top = levelMonth
			case t.Day() != prev.Day():
				top = levelDay
			default:
				top = levelTime
			}
			if top < finest {
				top = finest
			}
		}

		label := ""
		for lvl := finest; lvl <= top; lvl++ {
			seg := ""
			switch lvl {
			case levelTime:
				if withSeconds {
					seg = fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
				} else {
					seg = fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
				}
			case levelDay:
				seg = strconv.Itoa(t.Day())
			case levelMonth:
				seg = t.Month().String()[:3]
			case levelYear:
				seg = strconv.Itoa(t.Year())
			}
			if label == "" {
				label = seg
			} else {
				label += "\n" + seg
			}
		}
		ls[i] = label
	}
	return ls
}
