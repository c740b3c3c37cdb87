// Package wfst is the root of a weighted finite-state transducer library:
// semiring-parametrised transducers, epsilon removal, delay
// synchronization, label reachability, and the usual rational helpers
// (concatenation, isomorphism, connect, prune).
//
// The library is organised under focused subpackages rather than a single
// flat package:
//
//	semiring/        weight algebra: Tropical, Log, Boolean, Probability
//	fst/             Arc, Properties, the Fst/MutableFst interfaces, VectorFst
//	delay/           cache-backed lazy (delayed) Fst views
//	shortestdistance/ generic single-source shortest distance
//	rmepsilon/       epsilon removal, eager and lazy
//	synchronize/     delay-bounded I/O resynchronisation
//	reachability/    label-reachability index for composition pruning
//	ops/             concat, isomorphism, connect, prune, toposort, scc
//	symtab/          bidirectional label<->string symbol tables
//	fstfile/         persistent FST header and binary codec
//	archive/         ordered key->FST archive containers (sttable/stlist/fst)
//	script/          arc-type-string dispatch table
//	cmd/wfst/        command-line driver
//
// This package itself holds no executable code; it exists for the
// package-level documentation and as an anchor for `go doc`.
package wfst
