// Package fstfile implements a persistent on-disk FST format: a header
// (magic, arc-type string, FST-type string, version, properties, state
// count) followed by a binary encoding of every state's final weight
// and arcs, via fxamacker/cbor/v2.
package fstfile
