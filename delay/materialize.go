package delay

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Materialize copies any fst.Fst — lazy or already expanded — into a
// fresh fst.VectorFst by breadth-first exploration from its start state.
// This is how an eager wrapper over a delayed view is built; it is the
// only way to obtain an ExpandedFst from a synchronize result, since
// synchronize itself is exclusively lazy.
func Materialize(src fst.Fst, zero semiring.Weight) *fst.VectorFst {
	out := fst.New(zero)
	if src.Start() == fst.NoStateId {
		return out
	}

	idOf := map[fst.StateId]fst.StateId{}
	var order []fst.StateId

	newID := func(old fst.StateId) fst.StateId {
		if id, ok := idOf[old]; ok {
			return id
		}
		id := out.AddState()
		idOf[old] = id
		order = append(order, old)
		return id
	}

	start := newID(src.Start())
	out.SetStart(start)

	for i := 0; i < len(order); i++ {
		old := order[i]
		cur := idOf[old]
		out.SetFinal(cur, src.Final(old))
		for _, a := range fst.Arcs(src, old) {
			next := newID(a.NextState)
			out.AddArc(cur, fst.Arc{ILabel: a.ILabel, OLabel: a.OLabel, Weight: a.Weight, NextState: next})
		}
	}

	out.SetProperties(src.Properties(), ^fst.Properties(0))
	return out
}
