package rmepsilon

import (
	"github.com/katalvlaran/wfst/delay"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// lazyExpander implements delay.Expander by running the same per-state
// closure (expand) on demand, reading from src directly. Connect,
// pruning and unreachable-state deletion are not performed here — the
// lazy variant is the per-state computation alone; liveness filtering
// requires the whole graph and so only exists in Rm.
type lazyExpander struct {
	src   fst.Fst
	zero  semiring.Weight
	one   semiring.Weight
	delta float64
	m     *merger
}

func (e *lazyExpander) Start() fst.StateId { return e.src.Start() }
func (e *lazyExpander) Zero() semiring.Weight { return e.zero }
func (e *lazyExpander) Properties() fst.Properties {
	return e.src.Properties().SetKnown(fst.EpsilonFree, true)
}

func (e *lazyExpander) Expand(s fst.StateId) (semiring.Weight, []fst.Arc) {
	final, arcs, err := expand(e.src, s, e.zero, e.one, e.delta, e.m)
	if err != nil {
		return e.zero, nil
	}
	return final, arcs
}

// RmLazy returns a delayed view of src with every ε/ε arc removed,
// expanding each state's closure only when first visited.
func RmLazy(src fst.Fst, zero, one semiring.Weight, delta float64, opts ...delay.Option) *delay.Fst {
	e := &lazyExpander{src: src, zero: zero, one: one, delta: delta, m: newMerger()}
	return delay.New(e, opts...)
}
