package ops

import "github.com/katalvlaran/wfst/fst"

// ArcFilter selects a subset of arcs to walk; nil means "every arc".
type ArcFilter func(fst.Arc) bool

func admit(filter ArcFilter, a fst.Arc) bool {
	return filter == nil || filter(a)
}

// topoWalker performs a post-order DFS to produce a topological order:
// a small struct carrying the shared state of one recursive walk
// instead of passing five slices through every call.
type topoWalker struct {
	f        fst.Fst
	filter   ArcFilter
	visited  map[fst.StateId]int8 // 0=unvisited, 1=on stack, 2=done
	order    []fst.StateId
	acyclic  bool
}

const (
	unvisited int8 = 0
	onStack   int8 = 1
	done      int8 = 2
)

func (w *topoWalker) visit(s fst.StateId) {
	w.visited[s] = onStack
	for _, a := range fst.Arcs(w.f, s) {
		if !admit(w.filter, a) {
			continue
		}
		switch w.visited[a.NextState] {
		case unvisited:
			w.visit(a.NextState)
		case onStack:
			w.acyclic = false
		}
	}
	w.visited[s] = done
	w.order = append(w.order, s)
}

// TopSort returns a topological rank (0 = earliest) for every state
// reachable from start through filter-admitted arcs, and whether the
// filtered subgraph is acyclic. Unreachable states are absent from the
// returned rank map. The rank map has the shape shortestdistance's
// TopOrder discipline takes as its Options.Rank.
func TopSort(f fst.Fst, start fst.StateId, filter ArcFilter) (rank map[fst.StateId]int, acyclic bool) {
	if start == fst.NoStateId {
		return map[fst.StateId]int{}, true
	}
	w := &topoWalker{f: f, filter: filter, visited: map[fst.StateId]int8{}, acyclic: true}
	w.visit(start)

	// order is post-order (dependencies before dependents' finish), so
	// reverse it to get increasing topological rank.
	rank = make(map[fst.StateId]int, len(w.order))
	n := len(w.order)
	for i, s := range w.order {
		rank[s] = n - 1 - i
	}
	return rank, w.acyclic
}
