package ops

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// AcceptedWeight computes ⊕{ weight(π) : π is a path from the start
// state consuming exactly input on the input side and exactly output
// on the output side }, taking ε-arcs freely on either side. This is
// the quantity a transformation should preserve for every input/output
// string pair — grounded in original_source/src/script/randequivalent.cc's
// role (comparing acceptance weight across many sampled strings) but
// implemented here as an exact small-scale oracle rather than a
// sampler, since this repository's tests use hand-built transducers
// small enough to enumerate.
func AcceptedWeight(f fst.Fst, input, output []fst.Label, zero, one semiring.Weight) semiring.Weight {
	type key struct {
		s       fst.StateId
		i, o    int
	}
	memo := map[key]semiring.Weight{}

	var visit func(s fst.StateId, i, o int, onStack map[key]bool) semiring.Weight
	visit = func(s fst.StateId, i, o int, onStack map[key]bool) semiring.Weight {
		k := key{s, i, o}
		if w, ok := memo[k]; ok {
			return w
		}
		if onStack[k] {
			// An ε-cycle contributing no progress; treat as Zero rather
			// than diverging. Transducers under test are expected to be
			// ε-cycle-free on the paths exercised by these helpers.
			return zero
		}
		onStack[k] = true
		defer delete(onStack, k)

		total := zero
		if i == len(input) && o == len(output) {
			total = total.Plus(f.Final(s))
		}
		for _, a := range fst.Arcs(f, s) {
			ni, no := i, o
			matched := true
			if a.ILabel == fst.Epsilon {
				// stays
			} else if i < len(input) && a.ILabel == input[i] {
				ni = i + 1
			} else {
				matched = false
			}
			if !matched {
				continue
			}
			if a.OLabel == fst.Epsilon {
				// stays
			} else if o < len(output) && a.OLabel == output[o] {
				no = o + 1
			} else {
				continue
			}
			rest := visit(a.NextState, ni, no, onStack)
			total = total.Plus(a.Weight.Times(rest))
		}
		memo[k] = total
		return total
	}

	start := f.Start()
	if start == fst.NoStateId {
		return zero
	}
	return visit(start, 0, 0, map[key]bool{})
}
