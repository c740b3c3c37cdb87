package semiring_test

import (
	"testing"

	"github.com/katalvlaran/wfst/semiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// semiringCase exercises the universal semiring laws (Zero/One identity,
// Plus/Times closure) against one representative weight per semiring.
type semiringCase struct {
	name string
	a, b semiring.Weight
}

func cases() []semiringCase {
	return []semiringCase{
		{"tropical", semiring.TropicalWeight(0.5), semiring.TropicalWeight(1.25)},
		{"log", semiring.LogWeight(0.5), semiring.LogWeight(1.25)},
		{"boolean", semiring.BooleanWeight(true), semiring.BooleanWeight(false)},
		{"probability", semiring.ProbabilityWeight(0.5), semiring.ProbabilityWeight(0.25)},
	}
}

func TestIdentities(t *testing.T) {
	for _, c := range cases() {
		t.Run(c.name, func(t *testing.T) {
			zero := c.a.Zero()
			one := c.a.One()

			require.True(t, zero.IsZero())
			require.True(t, one.IsOne())

			assert.True(t, c.a.Plus(zero).ApproxEqual(c.a, 1e-9), "x ⊕ Zero == x")
			assert.True(t, c.a.Times(one).ApproxEqual(c.a, 1e-9), "x ⊗ One == x")
			assert.True(t, c.a.Times(zero).ApproxEqual(zero, 1e-9), "x ⊗ Zero == Zero")
		})
	}
}

func TestPlusCommutative(t *testing.T) {
	for _, c := range cases() {
		t.Run(c.name, func(t *testing.T) {
			lhs := c.a.Plus(c.b)
			rhs := c.b.Plus(c.a)
			assert.True(t, lhs.ApproxEqual(rhs, 1e-9))
		})
	}
}

func TestTropicalIsShortestPath(t *testing.T) {
	small := semiring.TropicalWeight(1.0)
	large := semiring.TropicalWeight(5.0)
	assert.Equal(t, small, small.Plus(large), "tropical Plus picks the minimum")
}

func TestLogPlusMatchesTropicalInTheLimit(t *testing.T) {
	// For widely separated costs, -log(e^-a + e^-b) ≈ min(a,b).
	a := semiring.LogWeight(1.0)
	b := semiring.LogWeight(50.0)
	got := a.Plus(b).(semiring.LogWeight)
	assert.InDelta(t, 1.0, float64(got), 1e-6)
}

func TestDivideByZero(t *testing.T) {
	_, err := semiring.TropicalWeight(1).Divide(semiring.TropicalZero)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tropical")
}

func TestQuantizeCollapsesHash(t *testing.T) {
	a := semiring.ProbabilityWeight(0.100001)
	b := semiring.ProbabilityWeight(0.100002)
	qa := a.Quantize(1e-3)
	qb := b.Quantize(1e-3)
	assert.Equal(t, qa.Hash(), qb.Hash())
}

func TestProperties(t *testing.T) {
	assert.True(t, semiring.TropicalWeight(0).Properties().Has(semiring.Idempotent|semiring.Path))
	assert.False(t, semiring.LogWeight(0).Properties().Has(semiring.Idempotent))
	assert.True(t, semiring.BooleanWeight(true).Properties().Has(semiring.KClosed))
}
