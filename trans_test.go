package scales

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func equal64(a, b float64) bool {
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 0.006
}

var allTrans = []Trans{
	IdentityTrans, LogTrans, Log2Trans, Log10Trans, SqrtTrans,
	ReciprocalTrans, NegateTrans, LogitTrans, ProbitTrans,
	ExpTrans, AtanhTrans,
}

var transApplyTests = []struct {
	trans Trans
	x     float64
	want  float64 // NaN means the value is outside the domain
}{
	{IdentityTrans, 7, 7},
	{IdentityTrans, -3.5, -3.5},

	{LogTrans, math.E, 1},
	{LogTrans, 1, 0},
	{LogTrans, 0, nan},
	{LogTrans, -3, nan},

	{Log2Trans, 8, 3},
	{Log2Trans, 0.5, -1},

	{Log10Trans, 1000, 3},
	{Log10Trans, 0.01, -2},
	{Log10Trans, 0, nan},

	{SqrtTrans, 9, 3},
	{SqrtTrans, 0, 0},
	{SqrtTrans, -4, nan},

	{ReciprocalTrans, 4, 0.25},
	{ReciprocalTrans, -2, -0.5},
	{ReciprocalTrans, 0, nan},

	{NegateTrans, 3, -3},
	{NegateTrans, -7, 7},

	{LogitTrans, 0.5, 0},
	{LogitTrans, 0, nan},
	{LogitTrans, 1, nan},
	{LogitTrans, 1.5, nan},

	{ProbitTrans, 0.5, 0},
	{ProbitTrans, 0.975, 1.96},
	{ProbitTrans, 0, nan},
	{ProbitTrans, 1.2, nan},

	{ExpTrans, 0, 1},
	{ExpTrans, 1, math.E},

	{AtanhTrans, 0, 0},
	{AtanhTrans, 1, nan},
	{AtanhTrans, -1, nan},
	{AtanhTrans, 2, nan},
}

func TestTransApply(t *testing.T) {
	for i, tc := range transApplyTests {
		t.Run(fmt.Sprintf("%s/%d", tc.trans.Name, i), func(t *testing.T) {
			got := tc.trans.Apply(tc.x)
			if math.IsNaN(tc.want) {
				if !math.IsNaN(got) {
					t.Errorf("%s.Apply(%g) = %g, want NaN",
						tc.trans.Name, tc.x, got)
				}
				return
			}
			if !equal64(got, tc.want) {
				t.Errorf("%s.Apply(%g) = %g, want %g",
					tc.trans.Name, tc.x, got, tc.want)
			}
		})
	}
}

var transRoundTripTests = []struct {
	trans Trans
	xs    []float64
}{
	{IdentityTrans, []float64{-5, 0, 12.5}},
	{LogTrans, []float64{0.01, 1, 7, 1e6}},
	{Log2Trans, []float64{0.25, 1, 1024}},
	{Log10Trans, []float64{0.001, 1, 3, 1e9}},
	{SqrtTrans, []float64{0, 2, 49}},
	{ReciprocalTrans, []float64{-4, 0.5, 3}},
	{NegateTrans, []float64{-2, 0, 11}},
	{LogitTrans, []float64{0.01, 0.1, 0.5, 0.99}},
	{ProbitTrans, []float64{0.01, 0.1, 0.5, 0.99}},
	{ExpTrans, []float64{-2, 0, 3}},
	{AtanhTrans, []float64{-0.9, 0, 0.5}},
}

func TestTransRoundTrip(t *testing.T) {
	for _, tc := range transRoundTripTests {
		t.Run(tc.trans.Name, func(t *testing.T) {
			for _, x := range tc.xs {
				y := tc.trans.Apply(x)
				if math.IsNaN(y) {
					t.Fatalf("%s.Apply(%g) = NaN", tc.trans.Name, x)
				}
				back := tc.trans.Inverse(y)
				if !scalar.EqualWithinAbsOrRel(back, x, 1e-9, 1e-9) {
					t.Errorf("%s: Inverse(Apply(%g)) = %g",
						tc.trans.Name, x, back)
				}
			}
		})
	}
}

func TestTransNaNPropagation(t *testing.T) {
	for _, tr := range allTrans {
		if got := tr.Apply(nan); !math.IsNaN(got) {
			t.Errorf("%s.Apply(NaN) = %g, want NaN", tr.Name, got)
		}
	}
}

func TestTransInverseGuards(t *testing.T) {
	if got := SqrtTrans.Inverse(-1); !math.IsNaN(got) {
		t.Errorf("SqrtTrans.Inverse(-1) = %g, want NaN", got)
	}
	for _, y := range []float64{0, -2} {
		if got := ExpTrans.Inverse(y); !math.IsNaN(got) {
			t.Errorf("ExpTrans.Inverse(%g) = %g, want NaN", y, got)
		}
	}
}
