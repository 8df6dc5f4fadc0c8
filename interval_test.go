package scales

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var intervalCanonTests = []struct {
	in, want Interval
}{
	{Interval{3, 6}, Interval{3, 6}},
	{Interval{6, 3}, Interval{3, 6}},
	{Interval{5, 5}, Interval{5, 5}},
	{Interval{nan, nan}, Interval{nan, nan}},
}

func TestIntervalCanon(t *testing.T) {
	for i, tc := range intervalCanonTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.in.Canon(); !got.Equal(tc.want) {
				t.Errorf("%v.Canon() = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIntervalPredicates(t *testing.T) {
	unset := UnsetInterval()
	if !unset.Undefined() {
		t.Errorf("UnsetInterval not undefined")
	}
	if unset.Contains(3) {
		t.Errorf("unset interval contains 3")
	}

	iv := Interval{2, 8}
	if iv.Undefined() || iv.Degenerate() {
		t.Errorf("[2,8] reported undefined or degenerate")
	}
	if w := iv.Width(); w != 6 {
		t.Errorf("[2,8].Width() = %g, want 6", w)
	}
	for _, x := range []float64{2, 5, 8} {
		if !iv.Contains(x) {
			t.Errorf("[2,8] does not contain %g", x)
		}
	}
	for _, x := range []float64{1.99, 8.01, nan} {
		if iv.Contains(x) {
			t.Errorf("[2,8] contains %g", x)
		}
	}

	if deg := (Interval{4, 4}); !deg.Degenerate() {
		t.Errorf("[4,4] not degenerate")
	}
}
