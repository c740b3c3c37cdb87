package semiring

import "strconv"

// ProbabilityWeight is the ordinary real (+, x) semiring: Plus = +,
// Times = *, Zero = 0, One = 1. Commutative, not idempotent, not
// k-closed, so shortest distance over it relies on acyclicity or delta
// convergence exactly like LogWeight. Used for HMM/grammar-style
// probabilities.
type ProbabilityWeight float64

const (
	ProbabilityZero = ProbabilityWeight(0)
	ProbabilityOne  = ProbabilityWeight(1)
)

func (ProbabilityWeight) Zero() Weight { return ProbabilityZero }
func (ProbabilityWeight) One() Weight  { return ProbabilityOne }

func (w ProbabilityWeight) IsZero() bool { return float64(w) == 0 }
func (w ProbabilityWeight) IsOne() bool  { return float64(w) == 1 }

func (w ProbabilityWeight) Plus(other Weight) Weight {
	return w + other.(ProbabilityWeight)
}

func (w ProbabilityWeight) Times(other Weight) Weight {
	return w * other.(ProbabilityWeight)
}

func (w ProbabilityWeight) Divide(other Weight) (Weight, error) {
	o := other.(ProbabilityWeight)
	if o.IsZero() {
		return nil, &ErrDivideByZero{Semiring: "probability"}
	}
	return w / o, nil
}

func (w ProbabilityWeight) ApproxEqual(other Weight, delta float64) bool {
	return approxEqualFloat64(float64(w), float64(other.(ProbabilityWeight)), delta)
}

func (w ProbabilityWeight) Quantize(delta float64) Weight {
	return ProbabilityWeight(quantizeFloat64(float64(w), delta))
}

func (w ProbabilityWeight) Hash() uint64 { return hashFloat64(float64(w)) }

func (ProbabilityWeight) Properties() Properties { return Commutative }

func (w ProbabilityWeight) String() string {
	return strconv.FormatFloat(float64(w), 'g', -1, 64)
}
