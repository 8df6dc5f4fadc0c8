package scales

import (
	"strconv"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTimeValueRoundTrip(t *testing.T) {
	for _, tc := range []time.Time{
		date(2021, time.June, 10),
		time.Date(2021, time.June, 10, 12, 34, 56, 5e8, time.UTC),
		time.Date(1969, time.December, 31, 23, 59, 58, 5e8, time.UTC),
	} {
		got := TimeOf(TimeValue(tc), time.UTC)
		if !got.Equal(tc) {
			t.Errorf("TimeOf(TimeValue(%v)) = %v", tc, got)
		}
	}
}

var parseTimeStepTests = []struct {
	in    string
	every int
	unit  TimeUnit
	ok    bool
}{
	{"2 weeks", 2, Week, true},
	{"1 month", 1, Month, true},
	{"month", 1, Month, true},
	{"15 years", 15, Year, true},
	{"30 secs", 30, Second, true},
	{"5 min", 5, Minute, true},
	{"6 Hours", 6, Hour, true},
	{"day", 1, Day, true},
	{"0 weeks", 0, 0, false},
	{"-2 days", 0, 0, false},
	{"fortnight", 0, 0, false},
	{"1 2 3", 0, 0, false},
	{"", 0, 0, false},
}

func TestParseTimeStep(t *testing.T) {
	for i, tc := range parseTimeStepTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			every, unit, err := parseTimeStep(tc.in)
			if tc.ok != (err == nil) {
				t.Fatalf("parseTimeStep(%q) err = %v, want ok=%t", tc.in, err, tc.ok)
			}
			if tc.ok && (every != tc.every || unit != tc.unit) {
				t.Errorf("parseTimeStep(%q) = %d %s, want %d %s",
					tc.in, every, unit, tc.every, tc.unit)
			}
		})
	}
}

var floorTimeTests = []struct {
	in   time.Time
	unit TimeUnit
	want time.Time
}{
	{time.Date(2021, 6, 10, 14, 45, 33, 123, time.UTC), Hour,
		time.Date(2021, 6, 10, 14, 0, 0, 0, time.UTC)},
	{time.Date(2021, 6, 10, 14, 45, 33, 123, time.UTC), Day,
		date(2021, 6, 10)},
	{date(2021, 6, 10), Week, date(2021, 6, 7)}, // Thursday -> Monday
	{date(2021, 6, 7), Week, date(2021, 6, 7)},  // Monday stays
	{date(2021, 6, 6), Week, date(2021, 5, 31)}, // Sunday -> previous Monday
	{date(2021, 6, 10), Month, date(2021, 6, 1)},
	{date(2021, 6, 10), Year, date(2021, 1, 1)},
}

func TestFloorTime(t *testing.T) {
	for i, tc := range floorTimeTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := floorTime(tc.in, tc.unit); !got.Equal(tc.want) {
				t.Errorf("floorTime(%v, %s) = %v, want %v",
					tc.in, tc.unit, got, tc.want)
			}
		})
	}
}

// Monthly breaks over one year land on the twelve first-of-month
// midnights.
func TestTimeBreaksMonthly(t *testing.T) {
	tb := TimeBreaks{Every: 1, Unit: Month}
	bs := tb.Breaks(TimeValue(date(2021, 1, 1)), TimeValue(date(2021, 12, 31)))
	if len(bs) != 12 {
		t.Fatalf("got %d breaks, want 12: %v", len(bs), bs)
	}
	for i, b := range bs {
		tm := TimeOf(b, time.UTC)
		want := date(2021, time.Month(i+1), 1)
		if !tm.Equal(want) {
			t.Errorf("break %d = %v, want %v", i, tm, want)
		}
	}
}

func TestTimeBreaksBiweekly(t *testing.T) {
	tb := TimeBreaks{Every: 2, Unit: Week}
	bs := tb.Breaks(TimeValue(date(2021, 6, 1)), TimeValue(date(2021, 7, 15)))
	want := []time.Time{date(2021, 6, 14), date(2021, 6, 28), date(2021, 7, 12)}
	if len(bs) != len(want) {
		t.Fatalf("got %d breaks %v, want %d", len(bs), bs, len(want))
	}
	for i, b := range bs {
		if tm := TimeOf(b, time.UTC); !tm.Equal(want[i]) {
			t.Errorf("break %d = %v, want %v", i, tm, want[i])
		}
	}
}

// An offset shifts the whole lattice, e.g. onto mid-month.
func TestTimeBreaksOffset(t *testing.T) {
	tb := TimeBreaks{Unit: Month, Offset: 14 * 24 * time.Hour}
	bs := tb.Breaks(TimeValue(date(2021, 1, 1)), TimeValue(date(2021, 3, 31)))
	want := []time.Time{date(2021, 1, 15), date(2021, 2, 15), date(2021, 3, 15)}
	if len(bs) != len(want) {
		t.Fatalf("got %d breaks %v, want %d", len(bs), bs, len(want))
	}
	for i, b := range bs {
		if tm := TimeOf(b, time.UTC); !tm.Equal(want[i]) {
			t.Errorf("break %d = %v, want %v", i, tm, want[i])
		}
	}
}

// Calendar boundaries are taken in the scale's location.
func TestTimeBreaksLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	tb := TimeBreaks{Unit: Day, Loc: loc}
	lo := time.Date(2021, 6, 10, 1, 0, 0, 0, loc)
	hi := time.Date(2021, 6, 12, 23, 0, 0, 0, loc)
	bs := tb.Breaks(TimeValue(lo), TimeValue(hi))
	want := []time.Time{
		time.Date(2021, 6, 11, 0, 0, 0, 0, loc),
		time.Date(2021, 6, 12, 0, 0, 0, 0, loc),
	}
	if len(bs) != len(want) {
		t.Fatalf("got %d breaks, want %d", len(bs), len(want))
	}
	for i, b := range bs {
		if tm := TimeOf(b, loc); !tm.Equal(want[i]) {
			t.Errorf("break %d = %v, want %v", i, tm, want[i])
		}
	}
}

func TestTimeBreaksRunawayRange(t *testing.T) {
	tb := TimeBreaks{Unit: Second}
	bs := tb.Breaks(TimeValue(date(1900, 1, 1)), TimeValue(date(2100, 1, 1)))
	if bs != nil {
		t.Errorf("second breaks over two centuries: got %d breaks, want none", len(bs))
	}
}

func TestAutoTimeBreaksYear(t *testing.T) {
	a := autoTimeBreaks{n: 5}
	bs := a.Breaks(TimeValue(date(2021, 1, 1)), TimeValue(date(2021, 12, 31)))
	want := []time.Time{
		date(2021, 1, 1), date(2021, 4, 1), date(2021, 7, 1), date(2021, 10, 1),
	}
	if len(bs) != len(want) {
		t.Fatalf("got %d breaks %v, want %d", len(bs), bs, len(want))
	}
	for i, b := range bs {
		if tm := TimeOf(b, time.UTC); !tm.Equal(want[i]) {
			t.Errorf("break %d = %v, want %v", i, tm, want[i])
		}
	}
}

func TestAutoTimeBreaksCenturies(t *testing.T) {
	a := autoTimeBreaks{n: 5}
	bs := a.Breaks(TimeValue(date(1600, 1, 1)), TimeValue(date(2100, 1, 1)))
	if len(bs) < 3 {
		t.Fatalf("got %d breaks, want at least 3", len(bs))
	}
	for i, b := range bs {
		tm := TimeOf(b, time.UTC)
		if tm.Month() != time.January || tm.Day() != 1 {
			t.Errorf("break %d = %v, not a January 1st", i, tm)
		}
		if tm.Year()%100 != 0 {
			t.Errorf("break %d = %v, not a round century", i, tm)
		}
	}
}
