package rmepsilon_test

import (
	"testing"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/ops"
	"github.com/katalvlaran/wfst/rmepsilon"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRmSingleEpsilonHopCollapses checks that a single ε-hop 0→1→2
// collapses to a direct 0→2 arc carrying the product weight, and that
// Connect drops the now-dangling intermediate state 1.
func TestRmSingleEpsilonHopCollapses(t *testing.T) {
	f := fst.New(semiring.ProbabilityZero)
	s0, s1, s2 := f.AddState(), f.AddState(), f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: semiring.ProbabilityWeight(0.4), NextState: s1})
	f.AddArc(s1, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.ProbabilityWeight(0.6), NextState: s2})
	f.SetFinal(s2, semiring.ProbabilityWeight(1))

	out, err := rmepsilon.Rm(f, semiring.ProbabilityZero, semiring.ProbabilityOne, rmepsilon.Options{Connect: true})
	require.NoError(t, err)

	assert.EqualValues(t, 2, out.NumStates())
	got := ops.AcceptedWeight(out, []fst.Label{1}, []fst.Label{1}, semiring.ProbabilityZero, semiring.ProbabilityOne)
	assert.InDelta(t, 0.4*0.6, float64(got.(semiring.ProbabilityWeight)), 1e-9)
}

// TestRmParallelEpsilonPathsMerge checks that two ε-paths into distinct
// states that both reach the same final state through an identically
// labelled arc merge into one arc at weight 0.3*1 + 0.5*1 = 0.8.
func TestRmParallelEpsilonPathsMerge(t *testing.T) {
	f := fst.New(semiring.ProbabilityZero)
	s0, s1, s2, s3 := f.AddState(), f.AddState(), f.AddState(), f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: semiring.ProbabilityWeight(0.3), NextState: s1})
	f.AddArc(s0, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: semiring.ProbabilityWeight(0.5), NextState: s2})
	f.AddArc(s1, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.ProbabilityWeight(1), NextState: s3})
	f.AddArc(s2, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.ProbabilityWeight(1), NextState: s3})
	f.SetFinal(s3, semiring.ProbabilityWeight(1))

	out, err := rmepsilon.Rm(f, semiring.ProbabilityZero, semiring.ProbabilityOne, rmepsilon.Options{})
	require.NoError(t, err)

	arcs := fst.Arcs(out, s0)
	require.Len(t, arcs, 1, "the two ε-paths to s3 must merge into a single arc")
	assert.InDelta(t, 0.8, float64(arcs[0].Weight.(semiring.ProbabilityWeight)), 1e-9)
	assert.Equal(t, s3, arcs[0].NextState)

	got := ops.AcceptedWeight(out, []fst.Label{1}, []fst.Label{1}, semiring.ProbabilityZero, semiring.ProbabilityOne)
	assert.InDelta(t, 0.8, float64(got.(semiring.ProbabilityWeight)), 1e-9)
}

// TestRmNoncoupledKeepsDeadStates verifies the Open Question decision
// recorded in DESIGN.md: without Connect or a threshold, states with
// noneps_in == false keep their slot (dense ids preserved) even though
// they no longer have any incoming arc.
func TestRmNoncoupledKeepsDeadStates(t *testing.T) {
	f := fst.New(semiring.ProbabilityZero)
	s0, s1, s2 := f.AddState(), f.AddState(), f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: semiring.ProbabilityWeight(0.4), NextState: s1})
	f.AddArc(s1, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.ProbabilityWeight(0.6), NextState: s2})
	f.SetFinal(s2, semiring.ProbabilityWeight(1))

	out, err := rmepsilon.Rm(f, semiring.ProbabilityZero, semiring.ProbabilityOne, rmepsilon.Options{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, out.NumStates())
}

// TestRmEpsilonCycleConverges checks that an ε/ε self-loop (0→0
// ε/ε/1) does not diverge: the tropical semiring is k-closed, so the
// closure's shortest-distance relaxation must terminate.
func TestRmEpsilonCycleConverges(t *testing.T) {
	f := fst.New(semiring.TropicalZero)
	s0, s1 := f.AddState(), f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: semiring.TropicalWeight(1), NextState: s0})
	f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalWeight(2), NextState: s1})
	f.SetFinal(s1, semiring.TropicalWeight(0))

	out, err := rmepsilon.Rm(f, semiring.TropicalZero, semiring.TropicalOne, rmepsilon.Options{Connect: true})
	require.NoError(t, err)
	arcs := fst.Arcs(out, out.Start())
	require.Len(t, arcs, 1)
	assert.Equal(t, semiring.TropicalWeight(2), arcs[0].Weight)
}

func TestRmLazyMatchesEager(t *testing.T) {
	f := fst.New(semiring.ProbabilityZero)
	s0, s1, s2 := f.AddState(), f.AddState(), f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: semiring.ProbabilityWeight(0.4), NextState: s1})
	f.AddArc(s1, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.ProbabilityWeight(0.6), NextState: s2})
	f.SetFinal(s2, semiring.ProbabilityWeight(1))

	lazy := rmepsilon.RmLazy(f, semiring.ProbabilityZero, semiring.ProbabilityOne, 0)
	got := ops.AcceptedWeight(lazy, []fst.Label{1}, []fst.Label{1}, semiring.ProbabilityZero, semiring.ProbabilityOne)
	assert.InDelta(t, 0.4*0.6, float64(got.(semiring.ProbabilityWeight)), 1e-9)
}
