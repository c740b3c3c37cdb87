// Package reachability answers, for a fixed side (input or output) of
// a transducer, "from state s, can label ℓ appear as the first non-ε
// symbol on some path from s?" Reachable label sets are compressed
// into sorted interval lists over a compact,
// encounter-order relabeling of the side's alphabet.
package reachability
