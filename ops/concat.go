package ops

import "github.com/katalvlaran/wfst/fst"

// Concat modifies a in place so it recognises "xw -> yv" with weight
// a⊗b for every (x/y/w_a) accepted by the original a and (w/v/w_b)
// accepted by b. b is left untouched; its states are copied (with ids
// offset by a's original state count) and appended to a.
//
// Algorithm:
//  1. Offset b's states by |Q_a| and append them to a.
//  2. For each pre-existing final state s in a with final weight f != Zero,
//     clear its final weight and add an ε/ε arc weighted f from s to
//     the offset copy of b's start state.
func Concat(a fst.MutableFst, b fst.ExpandedFst) {
	offset := fst.StateId(a.NumStates())
	n := b.NumStates()

	for i := fst.StateId(0); i < fst.StateId(n); i++ {
		a.AddState()
	}
	for i := fst.StateId(0); i < fst.StateId(n); i++ {
		dst := offset + i
		a.SetFinal(dst, b.Final(i))
		for _, arc := range fst.Arcs(b, i) {
			a.AddArc(dst, fst.Arc{
				ILabel: arc.ILabel, OLabel: arc.OLabel, Weight: arc.Weight,
				NextState: offset + arc.NextState,
			})
		}
	}

	bStart := b.Start()
	if bStart == fst.NoStateId {
		return
	}
	target := offset + bStart

	for s := fst.StateId(0); s < offset; s++ {
		f := a.Final(s)
		if f.IsZero() {
			continue
		}
		a.SetFinal(s, f.Zero())
		a.AddArc(s, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: f, NextState: target})
	}
}

// ConcatPrepend modifies b in place so it recognises "xw -> yv" for every
// (x/y/w_a) accepted by a and (w/v/w_b) originally accepted by b — the
// same relation Concat(a, b) builds, but built by growing b instead of a.
// a is left untouched; its states are copied (with ids offset by b's
// original state count) and appended to b, exactly as Concat appends b's
// states onto a.
//
// Algorithm:
//  1. Offset a's states by |Q_b| and append them to b.
//  2. The new start is the offset copy of a's start; b's original start
//     is no longer reachable as a start state but keeps its identity as
//     an ordinary state.
//  3. For each final state s in the appended copy of a with final weight
//     f != Zero, clear its final weight and add an ε/ε arc weighted f
//     from s to b's original start state.
func ConcatPrepend(b fst.MutableFst, a fst.ExpandedFst) {
	offset := fst.StateId(b.NumStates())
	n := a.NumStates()

	for i := fst.StateId(0); i < fst.StateId(n); i++ {
		b.AddState()
	}
	for i := fst.StateId(0); i < fst.StateId(n); i++ {
		dst := offset + i
		for _, arc := range fst.Arcs(a, i) {
			b.AddArc(dst, fst.Arc{
				ILabel: arc.ILabel, OLabel: arc.OLabel, Weight: arc.Weight,
				NextState: offset + arc.NextState,
			})
		}
	}

	aStart := a.Start()
	if aStart == fst.NoStateId {
		return
	}
	origStart := b.Start()
	b.SetStart(offset + aStart)
	if origStart == fst.NoStateId {
		return
	}

	for i := fst.StateId(0); i < fst.StateId(n); i++ {
		f := a.Final(i)
		if f.IsZero() {
			continue
		}
		dst := offset + i
		b.AddArc(dst, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: f, NextState: origStart})
	}
}
