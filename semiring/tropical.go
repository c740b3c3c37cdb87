package semiring

import (
	"math"
	"strconv"
)

// TropicalWeight is the min-plus semiring: Plus = min, Times = +,
// Zero = +Inf, One = 0. Idempotent, path-inducing (the Plus order is a
// genuine shortest-path order), and commutative. This is the default
// weight for the "standard" arc type in the script dispatch table.
type TropicalWeight float64

// TropicalZero and TropicalOne are exported so callers can avoid an
// interface round-trip in hot loops.
var TropicalZero = TropicalWeight(math.Inf(1))

const TropicalOne = TropicalWeight(0)

func (TropicalWeight) Zero() Weight { return TropicalZero }
func (TropicalWeight) One() Weight  { return TropicalOne }

func (w TropicalWeight) IsZero() bool { return math.IsInf(float64(w), 1) }
func (w TropicalWeight) IsOne() bool  { return float64(w) == 0 }

func (w TropicalWeight) Plus(other Weight) Weight {
	o := other.(TropicalWeight)
	if w < o {
		return w
	}
	return o
}

func (w TropicalWeight) Times(other Weight) Weight {
	o := other.(TropicalWeight)
	if w.IsZero() || o.IsZero() {
		return TropicalZero
	}
	return w + o
}

// Divide implements DivisibleWeight: a ⊘ b = a - b in min-plus.
func (w TropicalWeight) Divide(other Weight) (Weight, error) {
	o := other.(TropicalWeight)
	if o.IsZero() {
		return nil, &ErrDivideByZero{Semiring: "tropical"}
	}
	return w - o, nil
}

func (w TropicalWeight) ApproxEqual(other Weight, delta float64) bool {
	o := other.(TropicalWeight)
	return approxEqualFloat64(float64(w), float64(o), delta)
}

func (w TropicalWeight) Quantize(delta float64) Weight {
	return TropicalWeight(quantizeFloat64(float64(w), delta))
}

func (w TropicalWeight) Hash() uint64 { return hashFloat64(float64(w)) }

func (TropicalWeight) Properties() Properties {
	return Idempotent | Commutative | Path | KClosed
}

func (w TropicalWeight) String() string {
	if w.IsZero() {
		return "Infinity"
	}
	return strconv.FormatFloat(float64(w), 'g', -1, 64)
}
