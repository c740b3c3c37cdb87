// Package synchronize rebalances a bounded-delay transducer's
// input/output label alignment via residual-string powerset
// construction. The construction is exclusively lazy:
// each output state is a triple (source state, pending input residual,
// pending output residual), interned so equal triples share an id, and
// expanded on demand through package delay.
package synchronize
