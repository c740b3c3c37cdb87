package delay_test

import (
	"testing"

	"github.com/katalvlaran/wfst/delay"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainExpander lazily expands an N-state chain 0->1->...->N-1, final
// only at the last state. expandCount records how many times each
// state was actually expanded, to assert the cache prevents re-expansion.
type chainExpander struct {
	n           int
	expandCount map[fst.StateId]int
}

func (c *chainExpander) Start() fst.StateId { return 0 }
func (c *chainExpander) Zero() semiring.Weight { return semiring.TropicalZero }
func (c *chainExpander) Properties() fst.Properties { return fst.Acyclic }

func (c *chainExpander) Expand(s fst.StateId) (semiring.Weight, []fst.Arc) {
	c.expandCount[s]++
	if int(s) == c.n-1 {
		return semiring.TropicalWeight(0), nil
	}
	return semiring.TropicalZero, []fst.Arc{{ILabel: 1, OLabel: 1, Weight: semiring.TropicalWeight(1), NextState: s + 1}}
}

func newChain(n int) *chainExpander {
	return &chainExpander{n: n, expandCount: map[fst.StateId]int{}}
}

func TestDelayExpandsOnce(t *testing.T) {
	exp := newChain(4)
	view := delay.New(exp)

	for i := 0; i < 3; i++ {
		require.NotNil(t, fst.Arcs(view, fst.StateId(0)))
	}
	assert.Equal(t, 1, exp.expandCount[0], "repeated Arcs() calls must not re-expand a ready state")
}

func TestDelayFinalTriggersExpansion(t *testing.T) {
	exp := newChain(2)
	view := delay.New(exp)
	w := view.Final(1)
	assert.True(t, w.IsOne())
	assert.Equal(t, 1, exp.expandCount[1])
}

func TestDelayRecursionSetsError(t *testing.T) {
	// reentrantExpander's Expand(0) would need to re-enter state 0's own
	// expansion; ensure() must detect this without deadlocking.
	re := &reentrantExpander{}
	view := delay.New(re)
	re.view = view
	_ = view.Final(0)
	assert.True(t, view.Err())
}

type reentrantExpander struct{ view *delay.Fst }

func (r *reentrantExpander) Start() fst.StateId      { return 0 }
func (r *reentrantExpander) Zero() semiring.Weight   { return semiring.TropicalZero }
func (r *reentrantExpander) Properties() fst.Properties { return 0 }
func (r *reentrantExpander) Expand(s fst.StateId) (semiring.Weight, []fst.Arc) {
	if r.view != nil {
		r.view.Final(s) // re-enters the same state mid-expansion
	}
	return semiring.TropicalWeight(0), nil
}

func TestMaterializeCopiesLazyIntoVector(t *testing.T) {
	exp := newChain(3)
	view := delay.New(exp)
	vec := delay.Materialize(view, semiring.TropicalZero)

	require.EqualValues(t, 3, vec.NumStates())
	assert.Equal(t, fst.StateId(0), vec.Start())
	assert.True(t, vec.Final(2).IsOne())
}

func TestCopySafeIsIndependent(t *testing.T) {
	exp := newChain(3)
	view := delay.New(exp)
	fst.Arcs(view, 0) // populate state 0 in the shared cache

	safeCopy := view.Copy(false)
	fst.Arcs(safeCopy, 1) // only touches the copy's cache

	assert.Equal(t, 1, exp.expandCount[1], "safe copy must expand independently")
}
