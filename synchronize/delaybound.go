package synchronize

import "github.com/katalvlaran/wfst/fst"

// arcDelay is an arc's contribution to the path delay: the count of
// non-ε outputs minus the count of non-ε inputs.
func arcDelay(a fst.Arc) int64 {
	d := int64(0)
	if a.OLabel != fst.Epsilon {
		d++
	}
	if a.ILabel != fst.Epsilon {
		d--
	}
	return d
}

// BoundedDelay reports whether every cycle in f has total delay zero,
// the precondition for Synchronize's termination. Callers
// are expected to run this before New, since New itself does not
// attempt to detect unboundedness.
//
// Implemented as two Bellman-Ford relaxation passes over the integer
// delay graph: one detecting a cycle that can still be improved after
// |states|-1 rounds (a negative-delay cycle), the other detecting the
// symmetric case for positive-delay cycles. Unreachable states
// contribute no constraint.
func BoundedDelay(f fst.ExpandedFst) bool {
	start := f.Start()
	if start == fst.NoStateId {
		return true
	}
	n := int(f.NumStates())
	return !hasImprovableCycle(f, start, n, false) && !hasImprovableCycle(f, start, n, true)
}

func hasImprovableCycle(f fst.Fst, start fst.StateId, n int, maximize bool) bool {
	const unset = int64(1) << 62
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = unset
	}
	dist[start] = 0

	relax := func() bool {
		changed := false
		for s := 0; s < n; s++ {
			if dist[s] == unset {
				continue
			}
			for _, a := range fst.Arcs(f, fst.StateId(s)) {
				nd := dist[s] + arcDelay(a)
				cur := dist[a.NextState]
				better := (cur == unset) || (maximize && nd > cur) || (!maximize && nd < cur)
				if better {
					dist[a.NextState] = nd
					changed = true
				}
			}
		}
		return changed
	}

	for i := 0; i < n-1; i++ {
		if !relax() {
			return false
		}
	}
	return relax()
}
