package rmepsilon

import "github.com/katalvlaran/wfst/fst"

// epsFilter admits only ε/ε arcs — the subgraph epsilon removal's
// shortest-distance closure and processing order are both computed
// over: an arc only counts as epsilon here when both labels are.
func epsFilter(a fst.Arc) bool { return a.IsEpsilon() }

// order walker performs the same post-order DFS as ops.topoWalker, but
// rooted at every state 0..n-1 in turn rather than a single start, so
// it covers states unreachable from the transducer's start state too —
// epsilon removal must process every state, not just the live ones
// (liveness filtering, if requested, happens after the fact via
// ops.Connect). Adapted from ops/toposort.go's post-order DFS shape.
type orderWalker struct {
	f       fst.Fst
	visited []int8 // 0=unvisited, 1=on stack, 2=done
	out     []fst.StateId
	acyclic bool
}

const (
	owUnvisited int8 = 0
	owOnStack   int8 = 1
	owDone      int8 = 2
)

func (w *orderWalker) visit(s fst.StateId) {
	w.visited[s] = owOnStack
	for _, a := range fst.Arcs(w.f, s) {
		if !epsFilter(a) {
			continue
		}
		switch w.visited[a.NextState] {
		case owUnvisited:
			w.visit(a.NextState)
		case owOnStack:
			w.acyclic = false
		}
	}
	w.visited[s] = owDone
	w.out = append(w.out, s)
}

// processingOrder returns every state 0..n-1 in reverse post-order of
// a DFS over ε/ε arcs, so that, whenever the ε-subgraph is acyclic, a
// state's ε-predecessors are processed before it. States on an ε-cycle
// are not grouped by strongly connected component; they keep the order
// the DFS gives them. Each state's shortest-distance pass reads only
// from the original, unmodified source transducer, so this order does
// not affect the result.
func processingOrder(f fst.Fst, n int64) []fst.StateId {
	w := &orderWalker{f: f, visited: make([]int8, n), acyclic: true}
	for s := fst.StateId(0); s < fst.StateId(n); s++ {
		if w.visited[s] == owUnvisited {
			w.visit(s)
		}
	}
	// w.out is a post-order forest; reverse it so each state's
	// ε-predecessors (when acyclic) come first.
	order := make([]fst.StateId, len(w.out))
	for i, s := range w.out {
		order[len(w.out)-1-i] = s
	}
	return order
}
