package shortestdistance

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// ArcFilter selects the subset of arcs shortest distance is allowed to
// relax across (e.g. "ILabel == Epsilon && OLabel == Epsilon" for
// epsilon removal's ε-closure).
type ArcFilter func(fst.Arc) bool

// TopOrderRank maps a state to its position in a topological order;
// required when Discipline is TopOrder, and used by Auto when supplied
// for a semiring without the Path property.
type TopOrderRank map[fst.StateId]int

// Options configures a ShortestDistance call.
type Options struct {
	// Discipline selects the queue; defaults to Auto.
	Discipline Discipline
	// Rank is required for TopOrder and optional for Auto (if present,
	// Auto prefers TopOrder over FIFO on an acyclic graph).
	Rank TopOrderRank
	// Delta bounds the convergence test for non-k-closed semirings.
	// Zero means an exact (no-tolerance) comparison.
	Delta float64
}

// ShortestDistance computes, for every state t reachable from source
// through filter-admitted arcs, D[t] = ⊕{ weight(π) : π a filtered path
// source→t }, per Mohri's generic single-source shortest distance
// algorithm.
//
// zero and one must be the Zero and One elements of the semiring in
// use — required because an empty map has no value to infer them from.
func ShortestDistance(f fst.Fst, source fst.StateId, filter ArcFilter, zero, one semiring.Weight, opts Options) (map[fst.StateId]semiring.Weight, error) {
	d := map[fst.StateId]semiring.Weight{source: one}
	r := map[fst.StateId]semiring.Weight{source: one}

	get := func(m map[fst.StateId]semiring.Weight, s fst.StateId) semiring.Weight {
		if w, ok := m[s]; ok {
			return w
		}
		return zero
	}

	discipline := opts.Discipline
	if discipline == Auto {
		switch {
		case zero.Properties().Has(semiring.Path):
			discipline = ShortestFirst
		case len(opts.Rank) > 0:
			discipline = TopOrder
		default:
			discipline = FIFO
		}
	}

	var q queue
	switch discipline {
	case FIFO:
		q = &fifoQueue{}
	case LIFO:
		q = &lifoQueue{}
	case TopOrder:
		if len(opts.Rank) == 0 {
			return nil, ErrSemiringUnsupported
		}
		q = newRankQueue(func(a, b fst.StateId) bool { return opts.Rank[a] < opts.Rank[b] })
	case ShortestFirst:
		if !zero.Properties().Has(semiring.Path) {
			return nil, ErrSemiringUnsupported
		}
		q = newRankQueue(func(a, b fst.StateId) bool {
			da, db := get(d, a), get(d, b)
			return da.Plus(db).ApproxEqual(da, opts.Delta) && !da.ApproxEqual(db, opts.Delta)
		})
	default:
		return nil, ErrSemiringUnsupported
	}

	enqueued := map[fst.StateId]bool{source: true}
	q.push(source)

	for !q.empty() {
		s := q.pop()
		enqueued[s] = false
		rs := get(r, s)
		r[s] = zero

		for _, a := range fst.Arcs(f, s) {
			if !filter(a) {
				continue
			}
			nd := get(d, a.NextState)
			delta := rs.Times(a.Weight)
			cand := nd.Plus(delta)
			if !cand.ApproxEqual(nd, opts.Delta) {
				d[a.NextState] = cand
				r[a.NextState] = get(r, a.NextState).Plus(delta)
				if !enqueued[a.NextState] {
					enqueued[a.NextState] = true
					q.push(a.NextState)
				}
			}
		}
	}

	return d, nil
}
