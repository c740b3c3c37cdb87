package ops_test

import (
	"testing"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/ops"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcatChainsTwoSingleArcTransducers checks that concatenating a
// single a/x/0.5 arc to a final(1.0) state with a single b/y/0.25 arc
// to a final(2.0) state accepts "ab -> xy" with weight 0.5⊗1.0⊗0.25⊗2.0.
func TestConcatChainsTwoSingleArcTransducers(t *testing.T) {
	a := fst.New(semiring.ProbabilityZero)
	a0, a1 := a.AddState(), a.AddState()
	a.SetStart(a0)
	a.AddArc(a0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.ProbabilityWeight(0.5), NextState: a1})
	a.SetFinal(a1, semiring.ProbabilityWeight(1.0))

	b := fst.New(semiring.ProbabilityZero)
	b0, b1 := b.AddState(), b.AddState()
	b.SetStart(b0)
	b.AddArc(b0, fst.Arc{ILabel: 2, OLabel: 2, Weight: semiring.ProbabilityWeight(0.25), NextState: b1})
	b.SetFinal(b1, semiring.ProbabilityWeight(2.0))

	ops.Concat(a, b)

	require.EqualValues(t, 4, a.NumStates())
	got := ops.AcceptedWeight(a, []fst.Label{1, 2}, []fst.Label{1, 2}, semiring.ProbabilityZero, semiring.ProbabilityOne)
	assert.InDelta(t, 0.5*1.0*0.25*2.0, float64(got.(semiring.ProbabilityWeight)), 1e-9)
}

// TestConcatPrependBuildsSameLanguageAsConcat checks that prepending A
// into a copy of B yields a transducer accepting the same string and
// weight as appending B onto a copy of A.
func TestConcatPrependBuildsSameLanguageAsConcat(t *testing.T) {
	newA := func() *fst.VectorFst {
		a := fst.New(semiring.ProbabilityZero)
		a0, a1 := a.AddState(), a.AddState()
		a.SetStart(a0)
		a.AddArc(a0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.ProbabilityWeight(0.5), NextState: a1})
		a.SetFinal(a1, semiring.ProbabilityWeight(1.0))
		return a
	}
	newB := func() *fst.VectorFst {
		b := fst.New(semiring.ProbabilityZero)
		b0, b1 := b.AddState(), b.AddState()
		b.SetStart(b0)
		b.AddArc(b0, fst.Arc{ILabel: 2, OLabel: 2, Weight: semiring.ProbabilityWeight(0.25), NextState: b1})
		b.SetFinal(b1, semiring.ProbabilityWeight(2.0))
		return b
	}

	appended := newA()
	ops.Concat(appended, newB())
	wantWeight := ops.AcceptedWeight(appended, []fst.Label{1, 2}, []fst.Label{1, 2}, semiring.ProbabilityZero, semiring.ProbabilityOne)

	prepended := newB()
	ops.ConcatPrepend(prepended, newA())
	require.EqualValues(t, 4, prepended.NumStates())
	gotWeight := ops.AcceptedWeight(prepended, []fst.Label{1, 2}, []fst.Label{1, 2}, semiring.ProbabilityZero, semiring.ProbabilityOne)

	assert.InDelta(t, float64(wantWeight.(semiring.ProbabilityWeight)), float64(gotWeight.(semiring.ProbabilityWeight)), 1e-9)
}

func TestConcatLeftRightIdentity(t *testing.T) {
	empty := func() *fst.VectorFst {
		f := fst.New(semiring.ProbabilityZero)
		s := f.AddState()
		f.SetStart(s)
		f.SetFinal(s, semiring.ProbabilityOne)
		return f
	}

	a := fst.New(semiring.ProbabilityZero)
	s0, s1 := a.AddState(), a.AddState()
	a.SetStart(s0)
	a.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.ProbabilityWeight(0.5), NextState: s1})
	a.SetFinal(s1, semiring.ProbabilityWeight(1.0))

	rightWeight := ops.AcceptedWeight(a, []fst.Label{1}, []fst.Label{1}, semiring.ProbabilityZero, semiring.ProbabilityOne)

	withEmpty := fst.New(semiring.ProbabilityZero)
	s0b, s1b := withEmpty.AddState(), withEmpty.AddState()
	withEmpty.SetStart(s0b)
	withEmpty.AddArc(s0b, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.ProbabilityWeight(0.5), NextState: s1b})
	withEmpty.SetFinal(s1b, semiring.ProbabilityWeight(1.0))
	ops.Concat(withEmpty, empty())

	gotWeight := ops.AcceptedWeight(withEmpty, []fst.Label{1}, []fst.Label{1}, semiring.ProbabilityZero, semiring.ProbabilityOne)
	assert.InDelta(t, float64(rightWeight.(semiring.ProbabilityWeight)), float64(gotWeight.(semiring.ProbabilityWeight)), 1e-9)

	emptyThenA := empty()
	ops.Concat(emptyThenA, a)
	leftWeight := ops.AcceptedWeight(emptyThenA, []fst.Label{1}, []fst.Label{1}, semiring.ProbabilityZero, semiring.ProbabilityOne)
	assert.InDelta(t, float64(rightWeight.(semiring.ProbabilityWeight)), float64(leftWeight.(semiring.ProbabilityWeight)), 1e-9)
}
