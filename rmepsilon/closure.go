package rmepsilon

import (
	"sort"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
	sd "github.com/katalvlaran/wfst/shortestdistance"
)

// expand computes state s's post-removal final weight and outgoing
// arcs: run shortest distance from s restricted to ε/ε arcs, producing
// D[t] for every t reachable through ε alone
// (D[s] = one, since the empty path counts); then for every such t,
// fold D[t]⊗final(t) into the result's final weight, and for every
// non-ε arc a leaving t, emit an arc with weight D[t]⊗weight(a),
// merging duplicates that share (ILabel, OLabel, NextState) by ⊕. The
// ε/ε arcs of t are not re-emitted — they are already accounted for by
// having reached t at all.
//
// m is the caller-owned merger reused across expansions; this function
// calls m.begin() before accumulating.
func expand(f fst.Fst, s fst.StateId, zero, one semiring.Weight, delta float64, m *merger) (semiring.Weight, []fst.Arc, error) {
	dist, err := sd.ShortestDistance(f, s, epsFilter, zero, one, sd.Options{Delta: delta})
	if err != nil {
		return zero, nil, err
	}

	reached := make([]fst.StateId, 0, len(dist))
	for t := range dist {
		reached = append(reached, t)
	}
	sort.Slice(reached, func(i, j int) bool { return reached[i] < reached[j] })

	m.begin()
	final := zero
	for _, t := range reached {
		dt := dist[t]
		final = final.Plus(dt.Times(f.Final(t)))
		for _, a := range fst.Arcs(f, t) {
			if a.IsEpsilon() {
				continue
			}
			m.add(fst.KeyOf(a), dt.Times(a.Weight))
		}
	}
	return final, m.arcs(), nil
}
