package ops

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
	sd "github.com/katalvlaran/wfst/shortestdistance"
)

// PruneOptions bounds a prune pass. A zero Weight threshold (the
// semiring's actual Zero field left nil) or a zero StateThreshold
// disables that bound.
type PruneOptions struct {
	// WeightThreshold keeps only states whose forward shortest distance
	// from the start state is within threshold of the best: states s
	// with d(s) strictly worse than threshold are dropped. Requires a
	// Path semiring (the same requirement shortestdistance's
	// ShortestFirst discipline has); nil disables this bound.
	WeightThreshold semiring.Weight
	// StateThreshold caps the number of surviving states to the
	// StateThreshold closest to the start (by forward distance); 0
	// disables this bound.
	StateThreshold int64
}

// Prune returns a copy of f with states outside the given weight/state
// thresholds removed. This is a forward-distance-only approximation of
// OpenFST's prune.h, which also accounts for the best completion to a
// final state.
func Prune(f fst.Fst, zero, one semiring.Weight, opts PruneOptions) (*fst.VectorFst, error) {
	start := f.Start()
	if start == fst.NoStateId {
		return fst.New(zero), nil
	}

	dist, err := sd.ShortestDistance(f, start, func(fst.Arc) bool { return true }, zero, one, sd.Options{})
	if err != nil {
		return nil, err
	}

	keep := map[fst.StateId]bool{}
	if opts.WeightThreshold != nil {
		for s, d := range dist {
			if d.Plus(opts.WeightThreshold).ApproxEqual(d, 0) {
				keep[s] = true
			}
		}
	} else {
		for s := range dist {
			keep[s] = true
		}
	}

	if opts.StateThreshold > 0 && int64(len(keep)) > opts.StateThreshold {
		type sd2 struct {
			s fst.StateId
			d semiring.Weight
		}
		var ranked []sd2
		for s := range keep {
			ranked = append(ranked, sd2{s, dist[s]})
		}
		// simple selection of the StateThreshold smallest distances;
		// fine at the scale this library targets.
		for i := 0; i < len(ranked); i++ {
			for j := i + 1; j < len(ranked); j++ {
				if ranked[j].d.Plus(ranked[i].d).ApproxEqual(ranked[j].d, 0) && !ranked[j].d.ApproxEqual(ranked[i].d, 0) {
					ranked[i], ranked[j] = ranked[j], ranked[i]
				}
			}
		}
		keep = map[fst.StateId]bool{}
		for i := 0; i < int(opts.StateThreshold) && i < len(ranked); i++ {
			keep[ranked[i].s] = true
		}
	}
	keep[start] = true

	wrapped := &keepFilterFst{Fst: f, keep: keep, zero: zero}
	return Connect(wrapped, zero), nil
}

// keepFilterFst presents only the kept states and their arcs into other
// kept states, so Connect's accessible/co-accessible pass naturally
// drops anything Prune excluded.
type keepFilterFst struct {
	fst.Fst
	keep map[fst.StateId]bool
	zero semiring.Weight
}

func (k *keepFilterFst) Final(s fst.StateId) semiring.Weight {
	if !k.keep[s] {
		return k.zero
	}
	return k.Fst.Final(s)
}

func (k *keepFilterFst) Arcs(s fst.StateId) fst.ArcIterator {
	if !k.keep[s] {
		return &emptyIterator{}
	}
	var out []fst.Arc
	for _, a := range fst.Arcs(k.Fst, s) {
		if k.keep[a.NextState] {
			out = append(out, a)
		}
	}
	return &sliceIterator{arcs: out, index: -1}
}

type emptyIterator struct{}

func (*emptyIterator) Next() bool    { return false }
func (*emptyIterator) Arc() fst.Arc  { return fst.Arc{} }
func (*emptyIterator) Close()        {}

type sliceIterator struct {
	arcs  []fst.Arc
	index int
}

func (it *sliceIterator) Next() bool {
	it.index++
	return it.index < len(it.arcs)
}
func (it *sliceIterator) Arc() fst.Arc { return it.arcs[it.index] }
func (it *sliceIterator) Close()       {}
