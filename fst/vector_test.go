package fst_test

import (
	"testing"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildAB builds a two-state, one-arc transducer: 0 --a/x/0.5--> 1,
// final(1) = 1.0. Used across several tests in this package.
func buildAB(t *testing.T) *fst.VectorFst {
	t.Helper()
	f := fst.New(semiring.TropicalZero)
	s0 := f.AddState()
	s1 := f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 2, Weight: semiring.TropicalWeight(0.5), NextState: s1})
	f.SetFinal(s1, semiring.TropicalWeight(1.0))
	return f
}

func TestVectorFstBasics(t *testing.T) {
	f := buildAB(t)

	require.Equal(t, fst.StateId(0), f.Start())
	require.EqualValues(t, 2, f.NumStates())

	arcs := fst.Arcs(f, 0)
	require.Len(t, arcs, 1)
	assert.Equal(t, fst.Label(1), arcs[0].ILabel)
	assert.Equal(t, fst.StateId(1), arcs[0].NextState)

	assert.True(t, f.Final(1).ApproxEqual(semiring.TropicalWeight(1.0), 1e-9))
	assert.True(t, f.Final(0).IsZero())
}

func TestVectorFstEmpty(t *testing.T) {
	f := fst.New(semiring.TropicalZero)
	assert.Equal(t, fst.NoStateId, f.Start())
	assert.EqualValues(t, 0, f.NumStates())
}

func TestVectorFstDeleteArcs(t *testing.T) {
	f := buildAB(t)
	f.DeleteArcs(0)
	assert.Empty(t, fst.Arcs(f, 0))
}

func TestVectorFstEpsilonCounts(t *testing.T) {
	f := fst.New(semiring.TropicalZero)
	s0 := f.AddState()
	s1 := f.AddState()
	f.AddArc(s0, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: semiring.TropicalWeight(0), NextState: s1})
	f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: fst.Epsilon, Weight: semiring.TropicalWeight(0), NextState: s1})

	assert.Equal(t, 2, f.NumArcs(s0))
	assert.Equal(t, 1, f.NumInputEpsilons(s0))
	assert.Equal(t, 2, f.NumOutputEpsilons(s0))
}

func TestPropertiesKnownTrueFalseUnknown(t *testing.T) {
	var p fst.Properties
	assert.True(t, p.Unknown(fst.Acyclic))

	p = p.SetKnown(fst.Acyclic, true)
	assert.True(t, p.KnownTrue(fst.Acyclic))
	assert.False(t, p.KnownFalse(fst.Acyclic))

	p = p.SetKnown(fst.Acyclic, false)
	assert.True(t, p.KnownFalse(fst.Acyclic))
	assert.False(t, p.KnownTrue(fst.Acyclic))
}

func TestPropertiesErrorIsSticky(t *testing.T) {
	var p fst.Properties
	p = p.WithError()
	assert.True(t, p.HasError())
	p = p.SetKnown(fst.Acyclic, true)
	assert.True(t, p.HasError(), "Error must survive unrelated SetKnown calls")
}
