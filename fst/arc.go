package fst

import (
	"fmt"

	"github.com/katalvlaran/wfst/semiring"
)

// Arc is a directed labelled transition: consume ILabel on the input
// side, emit OLabel on the output side, pay Weight, move to NextState.
//
// An arc is an epsilon arc iff both ILabel and OLabel are Epsilon — an
// arc with only one side epsilon is not an epsilon arc for the
// purposes of removal.
type Arc struct {
	ILabel    Label
	OLabel    Label
	Weight    semiring.Weight
	NextState StateId
}

// IsEpsilon reports whether a is an ε/ε arc.
func (a Arc) IsEpsilon() bool { return a.ILabel == Epsilon && a.OLabel == Epsilon }

func (a Arc) String() string {
	return fmt.Sprintf("%d/%d/%s->%d", a.ILabel, a.OLabel, a.Weight, a.NextState)
}

// Key is the (ILabel, OLabel, NextState) triple epsilon removal merges
// duplicate arcs on.
type Key struct {
	ILabel    Label
	OLabel    Label
	NextState StateId
}

// KeyOf extracts a's merge key.
func KeyOf(a Arc) Key { return Key{a.ILabel, a.OLabel, a.NextState} }
