// Package delay implements a cache-backed lazy transducer framework: a
// read-only fst.Fst view whose states materialise on first access via
// a caller-supplied Expander, with a
// per-state unknown→expanding→ready cache, optional byte-budgeted LRU
// eviction, and safe (cache-cloning) vs. unsafe (cache-sharing) copies.
//
// rmepsilon's lazy variant and the whole of synchronize are built as an
// Expander plus a delay.Fst wrapper; this package owns none of their
// per-state computation, only the caching and expand-once discipline
// around it.
package delay
