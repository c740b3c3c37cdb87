package ops

import "github.com/katalvlaran/wfst/fst"

// sccWalker runs Tarjan's algorithm over filter-admitted arcs reachable
// from the root passed to SCC.
type sccWalker struct {
	f       fst.Fst
	filter  ArcFilter
	index   map[fst.StateId]int
	low     map[fst.StateId]int
	onStack map[fst.StateId]bool
	stack   []fst.StateId
	counter int
	comp    map[fst.StateId]int
	numComp int
}

func (w *sccWalker) visit(s fst.StateId) {
	w.index[s] = w.counter
	w.low[s] = w.counter
	w.counter++
	w.stack = append(w.stack, s)
	w.onStack[s] = true

	for _, a := range fst.Arcs(w.f, s) {
		if !admit(w.filter, a) {
			continue
		}
		t := a.NextState
		if _, seen := w.index[t]; !seen {
			w.visit(t)
			if w.low[t] < w.low[s] {
				w.low[s] = w.low[t]
			}
		} else if w.onStack[t] {
			if w.index[t] < w.low[s] {
				w.low[s] = w.index[t]
			}
		}
	}

	if w.low[s] == w.index[s] {
		for {
			n := len(w.stack) - 1
			t := w.stack[n]
			w.stack = w.stack[:n]
			w.onStack[t] = false
			w.comp[t] = w.numComp
			if t == s {
				break
			}
		}
		w.numComp++
	}
}

// SCC partitions every state reachable from start through
// filter-admitted arcs into strongly connected components, numbered in
// reverse topological order of the component DAG (component 0 has no
// filtered arc leaving it to any other component).
func SCC(f fst.Fst, start fst.StateId, filter ArcFilter) (comp map[fst.StateId]int, numComp int) {
	w := &sccWalker{
		f: f, filter: filter,
		index: map[fst.StateId]int{}, low: map[fst.StateId]int{},
		onStack: map[fst.StateId]bool{}, comp: map[fst.StateId]int{},
	}
	if start != fst.NoStateId {
		w.visit(start)
	}
	return w.comp, w.numComp
}
