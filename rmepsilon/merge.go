package rmepsilon

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// mergeEntry is one (ILabel, OLabel, NextState) bucket's accumulated
// weight for the state currently being expanded, stamped with the
// expand-id it was last written under.
type mergeEntry struct {
	weight   semiring.Weight
	expandID int64
}

// merger accumulates the duplicate-arc merge for
// one state expansion at a time, reused across every state a Rm pass
// or lazy Expander processes. Reuse avoids reallocating the map per
// state (the "expand-id merging" design note): entries from a previous
// expansion are not deleted, only shadowed — a stale entry's
// expandID no longer matches current, so it is treated as absent
// and silently overwritten the next time that key is touched.
//
// touched records, in first-seen order, every key written under the
// current expand-id, so the merged arcs can be emitted deterministically
// and then the bookkeeping reset in O(touched) rather than O(|elemMap|)
// (the "visited-state reset trick" applied to the merge map itself).
type merger struct {
	elem     map[fst.Key]*mergeEntry
	touched  []fst.Key
	expandID int64
}

func newMerger() *merger {
	return &merger{elem: map[fst.Key]*mergeEntry{}}
}

// begin starts a fresh expansion, invalidating every entry from the
// previous one without walking or reallocating the map.
func (m *merger) begin() {
	m.expandID++
	m.touched = m.touched[:0]
}

// add folds weight w into key's bucket for the current expansion.
func (m *merger) add(key fst.Key, w semiring.Weight) {
	if e, ok := m.elem[key]; ok && e.expandID == m.expandID {
		e.weight = e.weight.Plus(w)
		return
	}
	m.elem[key] = &mergeEntry{weight: w, expandID: m.expandID}
	m.touched = append(m.touched, key)
}

// arcs returns the merged arcs for the current expansion, in the order
// their keys were first touched.
func (m *merger) arcs() []fst.Arc {
	out := make([]fst.Arc, 0, len(m.touched))
	for _, key := range m.touched {
		e := m.elem[key]
		out = append(out, fst.Arc{ILabel: key.ILabel, OLabel: key.OLabel, Weight: e.weight, NextState: key.NextState})
	}
	return out
}
