package reachability

import (
	"sort"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Side selects which arc label the index tracks.
type Side int

const (
	Input Side = iota
	Output
)

// finalSentinel is the reserved compact index standing in for "this
// state is final", modeled here as the lowest compact index rather
// than a synthetic sink arc, since every other index is assigned
// starting at 1.
const finalSentinel = 0

// Interval is an inclusive range of compact label indices.
type Interval struct{ Lo, Hi int }

func (iv Interval) contains(x int) bool { return x >= iv.Lo && x <= iv.Hi }

func containsAny(ivs []Interval, x int) bool {
	i := sort.Search(len(ivs), func(i int) bool { return ivs[i].Hi >= x })
	return i < len(ivs) && ivs[i].contains(x)
}

// Index is a built reachability structure for one side of one
// transducer. Construct with New; query via SetState/Reach.
//
// Construction here computes each state's reachable-index set directly
// by memoized DFS over ε-on-that-side arcs, rather than building an
// auxiliary per-label-sink acyclic graph — an accepted simplification
// (see DESIGN.md) that preserves the query surface's observable
// behaviour while trading the sink construction's asymptotics for a
// simpler implementation.
type Index struct {
	f        fst.Fst
	side     Side
	labelIdx map[fst.Label]int
	next     int
	reach    map[fst.StateId][]Interval
	cur      fst.StateId
}

// New builds a reachability index over every state of f for the given
// side.
func New(f fst.ExpandedFst, side Side) *Index {
	idx := &Index{f: f, side: side, labelIdx: map[fst.Label]int{}, reach: map[fst.StateId][]Interval{}}
	memo := map[fst.StateId]map[int]bool{}
	n := f.NumStates()
	for s := fst.StateId(0); s < fst.StateId(n); s++ {
		idx.reach[s] = idx.toIntervals(idx.computeReach(s, memo, map[fst.StateId]bool{}))
	}
	return idx
}

func (idx *Index) labelOf(a fst.Arc) fst.Label {
	if idx.side == Input {
		return a.ILabel
	}
	return a.OLabel
}

func (idx *Index) isEpsilonSide(a fst.Arc) bool { return idx.labelOf(a) == fst.Epsilon }

// Relabel returns l's compact index, assigning a fresh one in
// encounter order if l was never seen during construction or a prior
// Relabel call. A label assigned only here (never during New) cannot
// appear in any state's interval set, so Reach on it correctly
// reports false — this is what lets callers relabel a label that
// belongs to the *other* side of a composition.
func (idx *Index) Relabel(l fst.Label) int {
	if id, ok := idx.labelIdx[l]; ok {
		return id
	}
	idx.next++
	idx.labelIdx[l] = idx.next
	return idx.next
}

func (idx *Index) computeReach(s fst.StateId, memo map[fst.StateId]map[int]bool, onStack map[fst.StateId]bool) map[int]bool {
	if set, ok := memo[s]; ok {
		return set
	}
	if onStack[s] {
		return map[int]bool{}
	}
	onStack[s] = true
	defer delete(onStack, s)

	set := map[int]bool{}
	if !idx.f.Final(s).IsZero() {
		set[finalSentinel] = true
	}
	for _, a := range fst.Arcs(idx.f, s) {
		if idx.isEpsilonSide(a) {
			for x := range idx.computeReach(a.NextState, memo, onStack) {
				set[x] = true
			}
			continue
		}
		set[idx.Relabel(idx.labelOf(a))] = true
	}
	memo[s] = set
	return set
}

func (idx *Index) toIntervals(set map[int]bool) []Interval {
	if len(set) == 0 {
		return nil
	}
	vals := make([]int, 0, len(set))
	for x := range set {
		vals = append(vals, x)
	}
	sort.Ints(vals)
	var out []Interval
	for _, x := range vals {
		if n := len(out); n > 0 && out[n-1].Hi == x-1 {
			out[n-1].Hi = x
			continue
		}
		out = append(out, Interval{Lo: x, Hi: x})
	}
	return out
}

// SetState positions the query cursor at s.
func (idx *Index) SetState(s fst.StateId) { idx.cur = s }

// Reach reports whether l can appear as the first non-ε symbol (on
// this index's side) of some path from the current cursor state.
func (idx *Index) Reach(l fst.Label) bool {
	return containsAny(idx.reach[idx.cur], idx.Relabel(l))
}

// ReachFinal reports whether the cursor state can accept with no
// further non-ε symbol on this side — i.e. whether a path reaching a
// final state exists using only ε arcs on this side.
func (idx *Index) ReachFinal() bool {
	return containsAny(idx.reach[idx.cur], finalSentinel)
}

// WeightAccumulator combines two arc weights when ReachRange is asked
// to compute a total; the default is the semiring's Plus.
type WeightAccumulator func(a, b semiring.Weight) semiring.Weight

// ReachRange scans arcs[begin:end] and reports whether any arc in that
// range carries a label reachable from the cursor state on this
// index's side. If computeWeight is true, the weights of every matching
// arc are folded together with acc (Plus when acc is nil), starting
// from zero, and returned as the second result. If computeWeight is
// false, the scan stops at the first match and the second result is
// zero.
func (idx *Index) ReachRange(arcs []fst.Arc, begin, end int, computeWeight bool, acc WeightAccumulator, zero semiring.Weight) (bool, semiring.Weight) {
	matched := false
	total := zero
	for i := begin; i < end; i++ {
		a := arcs[i]
		if !containsAny(idx.reach[idx.cur], idx.Relabel(idx.labelOf(a))) {
			continue
		}
		matched = true
		if computeWeight {
			if acc != nil {
				total = acc(total, a.Weight)
			} else {
				total = total.Plus(a.Weight)
			}
		} else {
			return true, zero
		}
	}
	return matched, total
}
