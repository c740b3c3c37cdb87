// Package shortestdistance implements the generic single-source
// shortest-distance closure: given a source state and an arc filter, it
// computes D[t] = the semiring-sum over
// every filtered path from the source to t, via relaxation under a
// pluggable queue discipline.
//
// This is the machinery epsilon removal (package rmepsilon) builds its
// per-state ε-closure on top of, instantiated with a filter that admits
// only ε/ε arcs.
package shortestdistance
