package semiring

import (
	"math"
	"strconv"
)

// LogWeight is the log semiring: Plus(a,b) = -log(e^-a + e^-b),
// Times = +, Zero = +Inf, One = 0. Commutative but not idempotent and
// not k-closed in general, so shortest distance over LogWeight must use
// the delta-convergence path in shortestdistance rather than exact
// termination.
type LogWeight float64

var LogZero = LogWeight(math.Inf(1))

const LogOne = LogWeight(0)

func (LogWeight) Zero() Weight { return LogZero }
func (LogWeight) One() Weight  { return LogOne }

func (w LogWeight) IsZero() bool { return math.IsInf(float64(w), 1) }
func (w LogWeight) IsOne() bool  { return float64(w) == 0 }

func (w LogWeight) Plus(other Weight) Weight {
	o := other.(LogWeight)
	if w.IsZero() {
		return o
	}
	if o.IsZero() {
		return w
	}
	// -log(e^-a + e^-b), computed numerically stably around the smaller
	// of the two exponents.
	a, b := float64(w), float64(o)
	if a > b {
		a, b = b, a
	}
	return LogWeight(a - math.Log1p(math.Exp(a-b)))
}

func (w LogWeight) Times(other Weight) Weight {
	o := other.(LogWeight)
	if w.IsZero() || o.IsZero() {
		return LogZero
	}
	return w + o
}

func (w LogWeight) Divide(other Weight) (Weight, error) {
	o := other.(LogWeight)
	if o.IsZero() {
		return nil, &ErrDivideByZero{Semiring: "log"}
	}
	return w - o, nil
}

func (w LogWeight) ApproxEqual(other Weight, delta float64) bool {
	o := other.(LogWeight)
	return approxEqualFloat64(float64(w), float64(o), delta)
}

func (w LogWeight) Quantize(delta float64) Weight {
	return LogWeight(quantizeFloat64(float64(w), delta))
}

func (w LogWeight) Hash() uint64 { return hashFloat64(float64(w)) }

func (LogWeight) Properties() Properties { return Commutative }

func (w LogWeight) String() string {
	if w.IsZero() {
		return "Infinity"
	}
	return strconv.FormatFloat(float64(w), 'g', -1, 64)
}
