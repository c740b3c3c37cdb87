package ops_test

import (
	"testing"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/ops"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTriangle() *fst.VectorFst {
	f := fst.New(semiring.TropicalZero)
	s0, s1, s2 := f.AddState(), f.AddState(), f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalWeight(1), NextState: s1})
	f.AddArc(s1, fst.Arc{ILabel: 2, OLabel: 2, Weight: semiring.TropicalWeight(2), NextState: s2})
	f.SetFinal(s2, semiring.TropicalWeight(0))
	return f
}

// TestIsomorphicSelf and TestIsomorphicRelabelledStates check that a transducer
// is isomorphic to itself, and to a copy with its state ids permuted.
func TestIsomorphicSelf(t *testing.T) {
	f := buildTriangle()
	ok, err := ops.Isomorphic(f, f, 1e-6)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsomorphicRelabelledStates(t *testing.T) {
	a := buildTriangle()

	// Build a' with the same shape but states permuted (2,0,1) so state
	// ids differ but the relation is identical.
	perm := map[fst.StateId]fst.StateId{0: 2, 1: 0, 2: 1}
	b := fst.New(semiring.TropicalZero)
	for i := 0; i < 3; i++ {
		b.AddState()
	}
	b.SetStart(perm[0])
	b.AddArc(perm[0], fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalWeight(1), NextState: perm[1]})
	b.AddArc(perm[1], fst.Arc{ILabel: 2, OLabel: 2, Weight: semiring.TropicalWeight(2), NextState: perm[2]})
	b.SetFinal(perm[2], semiring.TropicalWeight(0))

	ok, err := ops.Isomorphic(a, b, 1e-6)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsomorphicDiffersOnWeightChange(t *testing.T) {
	a := buildTriangle()
	b := buildTriangle()
	b.SetFinal(2, semiring.TropicalWeight(99))

	ok, err := ops.Isomorphic(a, b, 1e-6)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsomorphicDetectsNonDeterminism(t *testing.T) {
	a := fst.New(semiring.TropicalZero)
	s0, s1, s2 := a.AddState(), a.AddState(), a.AddState()
	a.SetStart(s0)
	a.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalWeight(0), NextState: s1})
	a.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalWeight(0), NextState: s2})
	a.SetFinal(s1, semiring.TropicalWeight(0))
	a.SetFinal(s2, semiring.TropicalWeight(0))

	_, err := ops.Isomorphic(a, a, 1e-6)
	assert.ErrorIs(t, err, ops.ErrNonDeterministicInput)
}
