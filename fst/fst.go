package fst

import "github.com/katalvlaran/wfst/semiring"

// ArcIterator walks the arcs leaving one state. Implementations backed
// by a delayed view (see package delay) pin the state in its cache for
// the iterator's lifetime; Close releases that pin. Callers must call
// Close when done, typically via defer.
type ArcIterator interface {
	// Next advances to the next arc, returning false when exhausted.
	Next() bool
	// Arc returns the current arc. Valid only after a true Next.
	Arc() Arc
	// Close releases any resources (e.g. a delayed-view cache pin).
	Close()
}

// Fst is the read-only transducer interface. A value satisfying Fst
// may be eagerly expanded (VectorFst) or lazily materialised (package
// delay); callers that only read never need to
// know which.
type Fst interface {
	// Start returns the start state, or NoStateId if the transducer is
	// empty.
	Start() StateId
	// Final returns s's final weight (Zero means "not final").
	Final(s StateId) semiring.Weight
	// Arcs returns an iterator over s's outgoing arcs. For a delayed
	// view this triggers expansion of s if it is not already cached.
	Arcs(s StateId) ArcIterator
	// NumArcs returns the number of arcs leaving s. Implies expansion
	// for a delayed view.
	NumArcs(s StateId) int
	// NumInputEpsilons returns the number of arcs leaving s whose
	// ILabel is Epsilon. Implies expansion.
	NumInputEpsilons(s StateId) int
	// NumOutputEpsilons returns the number of arcs leaving s whose
	// OLabel is Epsilon. Implies expansion.
	NumOutputEpsilons(s StateId) int
	// Properties returns the known property bits.
	Properties() Properties
}

// ExpandedFst is an Fst whose full state count is known without
// enumerating every state — the expanded side of the expanded-vs-lazy
// distinction.
type ExpandedFst interface {
	Fst
	// NumStates returns the number of states.
	NumStates() int64
}

// MutableFst extends Fst with the in-place edits eager operations need.
type MutableFst interface {
	ExpandedFst

	// AddState appends a new state with Zero final weight and no arcs,
	// returning its id.
	AddState() StateId
	// SetStart sets the start state. s must be a valid state id or
	// NoStateId.
	SetStart(s StateId)
	// SetFinal sets s's final weight.
	SetFinal(s StateId, w semiring.Weight)
	// AddArc appends a to s's outgoing arc list.
	AddArc(s StateId, a Arc)
	// DeleteArcs removes every arc leaving s.
	DeleteArcs(s StateId)
	// DeleteStates removes every state, resetting the transducer to
	// empty (Start becomes NoStateId).
	DeleteStates()
	// SetProperties merges known bits: for every bit set in mask, p's
	// corresponding known-true/known-false pair is overwritten from
	// bits' corresponding pair.
	SetProperties(bits, mask Properties)
	// SetInputSymbols/SetOutputSymbols are intentionally omitted here:
	// symbol-table association is modelled at the operation boundary
	// (see package symtab) rather than stored on every Fst
	// implementation, since delayed views would otherwise need to
	// plumb it through their cache too.
}
