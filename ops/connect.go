package ops

import (
	"sort"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// accessible returns every state reachable from start.
func accessible(f fst.Fst, start fst.StateId) map[fst.StateId]bool {
	seen := map[fst.StateId]bool{}
	if start == fst.NoStateId {
		return seen
	}
	stack := []fst.StateId{start}
	seen[start] = true
	for len(stack) > 0 {
		n := len(stack) - 1
		s := stack[n]
		stack = stack[:n]
		for _, a := range fst.Arcs(f, s) {
			if !seen[a.NextState] {
				seen[a.NextState] = true
				stack = append(stack, a.NextState)
			}
		}
	}
	return seen
}

// coAccessible returns every state in states with a path to some final
// state, computed by walking the reverse graph restricted to states.
func coAccessible(f fst.Fst, states map[fst.StateId]bool) map[fst.StateId]bool {
	rev := map[fst.StateId][]fst.StateId{}
	for s := range states {
		for _, a := range fst.Arcs(f, s) {
			if states[a.NextState] {
				rev[a.NextState] = append(rev[a.NextState], s)
			}
		}
	}
	co := map[fst.StateId]bool{}
	var stack []fst.StateId
	for s := range states {
		if !f.Final(s).IsZero() {
			co[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		n := len(stack) - 1
		s := stack[n]
		stack = stack[:n]
		for _, p := range rev[s] {
			if !co[p] {
				co[p] = true
				stack = append(stack, p)
			}
		}
	}
	return co
}

// LiveStates returns the set of states that are both accessible from
// f's start state and co-accessible to some final state — the set
// Connect keeps.
func LiveStates(f fst.Fst) map[fst.StateId]bool {
	acc := accessible(f, f.Start())
	co := coAccessible(f, acc)
	live := map[fst.StateId]bool{}
	for s := range acc {
		if co[s] {
			live[s] = true
		}
	}
	return live
}

// Connect returns a copy of f containing only states that are both
// accessible from the start state and co-accessible to some final
// state, with a fresh dense id assignment. zero is the Zero weight of
// f's semiring, used to build the output VectorFst.
func Connect(f fst.Fst, zero semiring.Weight) *fst.VectorFst {
	live := LiveStates(f)
	out := fst.New(zero)

	ordered := make([]fst.StateId, 0, len(live))
	for s := range live {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	newID := map[fst.StateId]fst.StateId{}
	for _, s := range ordered {
		newID[s] = out.AddState()
	}
	if start := f.Start(); live[start] {
		out.SetStart(newID[start])
	}
	for _, s := range ordered {
		id := newID[s]
		out.SetFinal(id, f.Final(s))
		for _, a := range fst.Arcs(f, s) {
			if !live[a.NextState] {
				continue
			}
			out.AddArc(id, fst.Arc{ILabel: a.ILabel, OLabel: a.OLabel, Weight: a.Weight, NextState: newID[a.NextState]})
		}
	}
	return out
}
