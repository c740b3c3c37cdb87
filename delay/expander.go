package delay

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Expander computes one state's final weight and outgoing arcs on
// demand. Implementations (rmepsilon's per-state ε-closure, synchronize's
// residual-triple transition rule) must refer to other states strictly
// by id — Expand must not call back into the same delay.Fst for another
// state's expansion, since that would recurse into the cache it is
// itself populating.
type Expander interface {
	// Start returns the delayed transducer's start state.
	Start() fst.StateId
	// Expand computes s's final weight and outgoing arcs.
	Expand(s fst.StateId) (final semiring.Weight, arcs []fst.Arc)
	// Zero returns the Zero weight of the underlying semiring, used to
	// answer Final for states an Expander never visits.
	Zero() semiring.Weight
	// Properties returns the known property bits at construction time
	// (before any state is expanded).
	Properties() fst.Properties
}
