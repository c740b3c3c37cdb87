package synchronize

import (
	"github.com/katalvlaran/wfst/delay"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// expander implements delay.Expander by walking the triple-transition
// rules. Triple ids are interned lazily as Expand
// discovers them — the interner is unbounded in principle (hence the
// construction being "exclusively lazy"), but in practice bounded by
// how many distinct residuals a bounded-delay source actually visits.
type expander struct {
	src  fst.Fst
	zero semiring.Weight
	one  semiring.Weight
	tr   *interner
}

// New returns a delayed view of src with input/output labels
// rebalanced: an arc carries two non-ε labels once both residuals have
// a token to emit, ε/ε while only one side has a residual queued, and,
// on the drain chain after a final source state, one residual token
// paired with ε. one must be
// the One weight of src's semiring (used for drain-chain arcs, which
// carry no additional weight beyond what the original final-state
// transition already paid).
func New(src fst.Fst, zero, one semiring.Weight, opts ...delay.Option) *delay.Fst {
	e := &expander{src: src, zero: zero, one: one, tr: newInterner()}
	return delay.New(e, opts...)
}

func (e *expander) Zero() semiring.Weight { return e.zero }

func (e *expander) Properties() fst.Properties {
	return e.src.Properties().SetKnown(fst.EpsilonFree, false)
}

func (e *expander) Start() fst.StateId {
	start := e.src.Start()
	if start == fst.NoStateId {
		return fst.NoStateId
	}
	return e.tr.intern(start, nil, nil)
}

// Expand computes triple id's outgoing arcs and final weight: each
// source arc appends its labels to the residuals and emits their heads
// once both are non-empty, and a final source state with a non-empty
// residual starts the drain chain.
func (e *expander) Expand(id fst.StateId) (semiring.Weight, []fst.Arc) {
	t := e.tr.lookup(id)
	var arcs []fst.Arc

	if t.s != fst.NoStateId {
		for _, a := range fst.Arcs(e.src, t.s) {
			ua := concat(t.u, a.ILabel)
			vb := concat(t.v, a.OLabel)
			if len(ua) > 0 && len(vb) > 0 {
				i, ut := headTail(ua)
				o, vt := headTail(vb)
				arcs = append(arcs, fst.Arc{ILabel: i, OLabel: o, Weight: a.Weight, NextState: e.tr.intern(a.NextState, ut, vt)})
			} else {
				arcs = append(arcs, fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: a.Weight, NextState: e.tr.intern(a.NextState, ua, vb)})
			}
		}

		if final := e.src.Final(t.s); !final.IsZero() && (len(t.u) > 0 || len(t.v) > 0) {
			i, ut := headTail(t.u)
			o, vt := headTail(t.v)
			arcs = append(arcs, fst.Arc{ILabel: i, OLabel: o, Weight: final, NextState: e.tr.intern(fst.NoStateId, ut, vt)})
		}
	} else if len(t.u) > 0 || len(t.v) > 0 {
		// Draining state: no source arcs left to take, but the residual
		// has not fully emptied yet. One token per side drains per arc,
		// at weight One, until both residuals are exhausted.
		i, ut := headTail(t.u)
		o, vt := headTail(t.v)
		arcs = append(arcs, fst.Arc{ILabel: i, OLabel: o, Weight: e.one, NextState: e.tr.intern(fst.NoStateId, ut, vt)})
	}

	final := e.zero
	if len(t.u) == 0 && len(t.v) == 0 {
		if t.s != fst.NoStateId {
			final = e.src.Final(t.s)
		} else {
			final = e.one
		}
	}
	return final, arcs
}

var _ delay.Expander = (*expander)(nil)
