// Package fst defines the transducer data model: labels and states,
// the Arc record and the 64-bit Properties bitset, the
// read-only Fst interface and its Mutable/Expanded extensions (the
// expanded-vs-lazy distinction), and VectorFst, the dense
// state-indexed mutable store every eager operation in this repository
// uses as its working buffer.
//
// Lazily materialised (delayed) views are not implemented here — see
// package delay — but they satisfy the same Fst interface, so any
// function that accepts an fst.Fst works unmodified over both an
// in-memory VectorFst and a delayed epsilon-removal or synchronize view.
package fst
