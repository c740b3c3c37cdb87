package fst

// Label identifies an input or output symbol on an arc. Labels are
// non-negative; label 0 is reserved for epsilon.
type Label int64

// Epsilon is the label denoting "no symbol consumed/emitted".
const Epsilon Label = 0

// NoLabel is the sentinel for "no such label".
const NoLabel Label = -1

// StateId identifies a state. State ids are dense in [0, N) for an
// expanded transducer.
type StateId int64

// NoStateId is the sentinel for "no such state" (an empty transducer's
// start state, or a synchronize-drain state's source component).
const NoStateId StateId = -1
