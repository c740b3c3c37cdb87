package fst

import (
	"sync"

	"github.com/katalvlaran/wfst/semiring"
)

// vectorState holds one state's final weight and outgoing arcs.
type vectorState struct {
	final semiring.Weight
	arcs  []Arc
}

// VectorFst is the dense, state-indexed mutable transducer store used as
// the working buffer by every eager operation. It is adapted from the
// teacher's core.Graph: the same
// RWMutex-guarded-mutation discipline, generalized from a string-keyed
// adjacency list to an integer-indexed state vector, since transducer
// states are dense in [0, N) rather than user-named.
//
// A zero-value VectorFst is not ready for use; construct one with New.
type VectorFst struct {
	mu     sync.RWMutex
	zero   semiring.Weight
	start  StateId
	states []vectorState
	props  Properties
}

// New returns an empty VectorFst over the semiring identified by zero
// (any weight of the desired type works — only its type is used, via
// zero.Zero()).
func New(zero semiring.Weight) *VectorFst {
	return &VectorFst{
		zero:  zero.Zero(),
		start: NoStateId,
	}
}

func (f *VectorFst) Start() StateId {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.start
}

func (f *VectorFst) SetStart(s StateId) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.start = s
}

func (f *VectorFst) Final(s StateId) semiring.Weight {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if s < 0 || int(s) >= len(f.states) {
		return f.zero
	}
	return f.states[s].final
}

func (f *VectorFst) SetFinal(s StateId, w semiring.Weight) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[s].final = w
}

func (f *VectorFst) AddState() StateId {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states = append(f.states, vectorState{final: f.zero})
	return StateId(len(f.states) - 1)
}

func (f *VectorFst) AddArc(s StateId, a Arc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[s].arcs = append(f.states[s].arcs, a)
}

func (f *VectorFst) DeleteArcs(s StateId) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[s].arcs = nil
}

func (f *VectorFst) DeleteStates() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states = nil
	f.start = NoStateId
	f.props &= Error
}

func (f *VectorFst) NumStates() int64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return int64(len(f.states))
}

func (f *VectorFst) NumArcs(s StateId) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.states[s].arcs)
}

func (f *VectorFst) NumInputEpsilons(s StateId) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := 0
	for _, a := range f.states[s].arcs {
		if a.ILabel == Epsilon {
			n++
		}
	}
	return n
}

func (f *VectorFst) NumOutputEpsilons(s StateId) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := 0
	for _, a := range f.states[s].arcs {
		if a.OLabel == Epsilon {
			n++
		}
	}
	return n
}

func (f *VectorFst) Properties() Properties {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.props
}

func (f *VectorFst) SetProperties(bits, mask Properties) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range pairs {
		if mask&(p[0]|p[1]) != 0 {
			mask |= p[0] | p[1]
		}
	}
	f.props = (f.props &^ mask) | (bits & mask) | (f.props & Error)
	if bits&Error != 0 {
		f.props |= Error
	}
}

// Arcs returns an iterator over s's outgoing arcs. VectorFst arcs are
// always already materialised, so the iterator is a plain slice walk
// with no locking beyond the snapshot copy below (arcs are copied out
// under the read lock so a concurrent mutation cannot race the walk).
func (f *VectorFst) Arcs(s StateId) ArcIterator {
	f.mu.RLock()
	arcs := f.states[s].arcs
	snapshot := make([]Arc, len(arcs))
	copy(snapshot, arcs)
	f.mu.RUnlock()
	return &sliceArcIterator{arcs: snapshot, index: -1}
}

// sliceArcIterator implements ArcIterator over an in-memory slice.
type sliceArcIterator struct {
	arcs  []Arc
	index int
}

func (it *sliceArcIterator) Next() bool {
	it.index++
	return it.index < len(it.arcs)
}

func (it *sliceArcIterator) Arc() Arc { return it.arcs[it.index] }
func (it *sliceArcIterator) Close()   {}

var (
	_ MutableFst = (*VectorFst)(nil)
)
