package scales

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// A Trans bundles a monotonic forward function with its exact inverse and
// the break strategy appropriate for the transformed space. Values outside
// Domain transform to NaN, they are never an error.
type Trans struct {
	Name    string
	Forward func(x float64) float64
	Inverse func(y float64) float64
	Domain  func(x float64) bool

	// Breaker generates breaks in data space for scales using this
	// transformation unless the scale sets its own.
	Breaker Breaker
}

// Apply transforms x, yielding NaN for NaN input and for values outside
// the domain of t.
func (t Trans) Apply(x float64) float64 {
	if math.IsNaN(x) || !t.Domain(x) {
		return math.NaN()
	}
	return t.Forward(x)
}

func anyFloat(float64) bool      { return true }
func positive(x float64) bool    { return x > 0 }
func unitOpen(x float64) bool    { return x > 0 && x < 1 }
func nonZero(x float64) bool     { return x != 0 }
func nonNegative(x float64) bool { return x >= 0 }

// IdentityTrans does not transform at all.
var IdentityTrans = Trans{
	Name:    "identity",
	Forward: func(x float64) float64 { return x },
	Inverse: func(y float64) float64 { return y },
	Domain:  anyFloat,
	Breaker: ExtendedBreaks{},
}

// LogTrans transforms to natural logarithms.
var LogTrans = Trans{
	Name:    "log",
	Forward: math.Log,
	Inverse: math.Exp,
	Domain:  positive,
	Breaker: LogBreaks{Base: math.E},
}

// Log2Trans transforms to base 2 logarithms.
var Log2Trans = Trans{
	Name:    "log2",
	Forward: math.Log2,
	Inverse: math.Exp2,
	Domain:  positive,
	Breaker: LogBreaks{Base: 2},
}

// Log10Trans transforms to base 10 logarithms.
var Log10Trans = Trans{
	Name:    "log10",
	Forward: math.Log10,
	Inverse: func(y float64) float64 { return math.Pow(10, y) },
	Domain:  positive,
	Breaker: LogBreaks{Base: 10},
}

// SqrtTrans transforms to square roots.
var SqrtTrans = Trans{
	Name:    "sqrt",
	Forward: math.Sqrt,
	Inverse: func(y float64) float64 {
		if y < 0 {
			return math.NaN()
		}
		return y * y
	},
	Domain:  nonNegative,
	Breaker: ExtendedBreaks{},
}

// ReciprocalTrans transforms to reciprocals. It is monotonic on each side
// of zero only; scales mixing positive and negative data should not use it.
var ReciprocalTrans = Trans{
	Name:    "reciprocal",
	Forward: func(x float64) float64 { return 1 / x },
	Inverse: func(y float64) float64 {
		if y == 0 {
			return math.NaN()
		}
		return 1 / y
	},
	Domain:  nonZero,
	Breaker: ExtendedBreaks{},
}

// NegateTrans mirrors the axis. Use it for reversed scales.
var NegateTrans = Trans{
	Name:    "negate",
	Forward: func(x float64) float64 { return -x },
	Inverse: func(y float64) float64 { return -y },
	Domain:  anyFloat,
	Breaker: ExtendedBreaks{},
}

// LogitTrans transforms proportions through log(p/(1-p)).
var LogitTrans = Trans{
	Name:    "logit",
	Forward: func(p float64) float64 { return math.Log(p / (1 - p)) },
	Inverse: func(y float64) float64 { return 1 / (1 + math.Exp(-y)) },
	Domain:  unitOpen,
	Breaker: ExtendedBreaks{},
}

// ProbitTrans transforms proportions through the quantiles of the standard
// normal distribution.
var ProbitTrans = Trans{
	Name:    "probit",
	Forward: distuv.UnitNormal.Quantile,
	Inverse: distuv.UnitNormal.CDF,
	Domain:  unitOpen,
	Breaker: ExtendedBreaks{},
}

// ExpTrans transforms through e^x, the inverse of LogTrans.
var ExpTrans = Trans{
	Name:    "exp",
	Forward: math.Exp,
	Inverse: func(y float64) float64 {
		if y <= 0 {
			return math.NaN()
		}
		return math.Log(y)
	},
	Domain:  anyFloat,
	Breaker: ExtendedBreaks{},
}

// AtanhTrans transforms through the inverse hyperbolic tangent.
var AtanhTrans = Trans{
	Name: "atanh",
	Forward: func(x float64) float64 {
		if x <= -1 || x >= 1 {
			return math.NaN()
		}
		return math.Atanh(x)
	},
	Inverse: math.Tanh,
	Domain:  func(x float64) bool { return x > -1 && x < 1 },
	Breaker: ExtendedBreaks{},
}
