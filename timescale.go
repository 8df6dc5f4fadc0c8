package scales

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Date-time scales measure positions in seconds since the Unix epoch, the
// same convention gonum/plot's time tickers use. TimeValue and TimeOf
// convert between the two views.

// TimeValue returns the position of t on a date-time scale.
func TimeValue(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// TimeValues converts ts to date-time scale positions.
func TimeValues(ts ...time.Time) []float64 {
	vs := make([]float64, len(ts))
	for i, t := range ts {
		vs[i] = TimeValue(t)
	}
	return vs
}

// TimeOf is the inverse of TimeValue. A nil location means UTC.
func TimeOf(v float64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*1e9)).In(loc)
}

// ----------------------------------------------------------------------------
// TimeUnit

// A TimeUnit is a calendar unit used to place date-time breaks.
type TimeUnit int

const (
	Second TimeUnit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

// String returns the name of u.
func (u TimeUnit) String() string {
	names := []string{"second", "minute", "hour", "day", "week", "month", "year"}
	if u < Second || u > Year {
		return "timeunit(" + strconv.Itoa(int(u)) + ")"
	}
	return names[u]
}

// approx returns the typical length of u in seconds. Months and years are
// irregular; the value is good enough for sizing, never for arithmetic.
func (u TimeUnit) approx() float64 {
	switch u {
	case Second:
		return 1
	case Minute:
		return 60
	case Hour:
		return 3600
	case Day:
		return 86400
	case Week:
		return 7 * 86400
	case Month:
		return 30.44 * 86400
	case Year:
		return 365.25 * 86400
	}
	return 1
}

// parseTimeStep parses break steps like "2 weeks", "15 years" or
// a bare "month".
func parseTimeStep(s string) (int, TimeUnit, error) {
	fields := strings.Fields(strings.ToLower(s))
	every := 1
	unit := ""
	switch len(fields) {
	case 1:
		unit = fields[0]
	case 2:
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("scales: bad step count in %q", s)
		}
		every, unit = n, fields[1]
	default:
		return 0, 0, fmt.Errorf("scales: cannot parse time step %q", s)
	}

	switch strings.TrimSuffix(unit, "s") {
	case "sec", "second":
		return every, Second, nil
	case "min", "minute":
		return every, Minute, nil
	case "hour":
		return every, Hour, nil
	case "day":
		return every, Day, nil
	case "week":
		return every, Week, nil
	case "month":
		return every, Month, nil
	case "year":
		return every, Year, nil
	}
	return 0, 0, fmt.Errorf("scales: unknown time unit %q", unit)
}

// floorTime returns the latest u boundary not after t. Weeks start on
// Monday, all boundaries are taken in t's location.
func floorTime(t time.Time, u TimeUnit) time.Time {
	y, mo, d := t.Date()
	loc := t.Location()
	switch u {
	case Second:
		return time.Date(y, mo, d, t.Hour(), t.Minute(), t.Second(), 0, loc)
	case Minute:
		return time.Date(y, mo, d, t.Hour(), t.Minute(), 0, 0, loc)
	case Hour:
		return time.Date(y, mo, d, t.Hour(), 0, 0, 0, loc)
	case Day:
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case Week:
		back := (int(t.Weekday()) + 6) % 7
		return time.Date(y, mo, d-back, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, mo, 1, 0, 0, 0, 0, loc)
	case Year:
		return time.Date(y, 1, 1, 0, 0, 0, 0, loc)
	}
	return t
}

// addUnits advances t by n calendar units. The starting points produced by
// floorTime keep month and year steps on firsts even though AddDate
// normalizes overflowing dates.
func addUnits(t time.Time, u TimeUnit, n int) time.Time {
	switch u {
	case Second:
		return t.Add(time.Duration(n) * time.Second)
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return t.AddDate(0, n, 0)
	case Year:
		return t.AddDate(n, 0, 0)
	}
	return t
}

// ----------------------------------------------------------------------------
// TimeBreaks

// TimeBreaks places breaks every Every calendar units, aligned to the
// unit's boundary: month breaks land on firsts, week breaks on Mondays,
// year breaks on January 1st. Offset shifts the whole lattice, e.g. 14 days
// to move month breaks to mid-month. The uneven spacing of month and year
// breaks on the axis is the nature of the calendar, not a defect.
type TimeBreaks struct {
	Every  int            // 0 means 1
	Unit   TimeUnit
	Offset time.Duration
	Loc    *time.Location // nil means UTC
}

// maxTimeBreaks bounds runaway configurations such as second breaks over
// a century.
const maxTimeBreaks = 10000

// Breaks computes the calendar-aligned positions inside [min, max].
func (tb TimeBreaks) Breaks(min, max float64) []float64 {
	every := tb.Every
	if every < 1 {
		every = 1
	}
	if badRange(min, max) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	loc := tb.Loc
	if loc == nil {
		loc = time.UTC
	}
	step := float64(every) * tb.Unit.approx()
	if (max-min)/step > maxTimeBreaks {
		return nil
	}

	anchor := floorTime(TimeOf(min, loc), tb.Unit)
	// A large offset can pull boundaries from before the anchor into the
	// range; start early enough to catch them.
	first := 0
	if off := tb.Offset.Seconds(); off > 0 {
		first = -1 - int(off/step)
	}

	var bs []float64
	for i := first; ; i++ {
		boundary := addUnits(anchor, tb.Unit, i*every)
		b := TimeValue(boundary.Add(tb.Offset))
		if TimeValue(boundary) > max && b > max {
			break
		}
		if b < min || b > max {
			continue
		}
		bs = append(bs, b)
		if len(bs) > maxTimeBreaks {
			return nil
		}
	}
	return bs
}

// ----------------------------------------------------------------------------
// Automatic date-time breaks

// autoTimeBreaks picks a calendar step whose break count lands close to n,
// walking a ladder from seconds to decades and falling back to nice year
// numbers for spans beyond it.
type autoTimeBreaks struct {
	n   int
	loc *time.Location
}

var timeLadder = []struct {
	every int
	unit  TimeUnit
}{
	{1, Second}, {5, Second}, {15, Second}, {30, Second},
	{1, Minute}, {5, Minute}, {15, Minute}, {30, Minute},
	{1, Hour}, {3, Hour}, {6, Hour}, {12, Hour},
	{1, Day}, {2, Day},
	{1, Week}, {2, Week},
	{1, Month}, {3, Month}, {6, Month},
	{1, Year}, {2, Year}, {5, Year}, {10, Year},
}

func (a autoTimeBreaks) Breaks(min, max float64) []float64 {
	n := a.n
	if n <= 0 {
		n = 5
	}
	if badRange(min, max) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	span := max - min

	last := timeLadder[len(timeLadder)-1]
	if span/(float64(last.every)*last.unit.approx()) > 2*float64(n) {
		return a.yearBreaks(min, max, n)
	}

	bestIdx, bestScore := 0, math.Inf(1)
	for i, step := range timeLadder {
		count := span / (float64(step.every) * step.unit.approx())
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestIdx, bestScore = i, score
		}
	}
	step := timeLadder[bestIdx]
	return TimeBreaks{Every: step.every, Unit: step.unit, Loc: a.loc}.Breaks(min, max)
}

// yearBreaks handles spans of centuries and more: nice year numbers,
// snapped to January 1st.
func (a autoTimeBreaks) yearBreaks(min, max float64, n int) []float64 {
	loc := a.loc
	if loc == nil {
		loc = time.UTC
	}
	y0 := float64(TimeOf(min, loc).Year())
	y1 := float64(TimeOf(max, loc).Year())
	var bs []float64
	for _, y := range (ExtendedBreaks{N: n}).Breaks(y0, y1) {
		b := TimeValue(time.Date(int(y), 1, 1, 0, 0, 0, 0, loc))
		if b >= min && b <= max {
			bs = append(bs, b)
		}
	}
	return bs
}
