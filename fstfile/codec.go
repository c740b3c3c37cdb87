package fstfile

import "github.com/katalvlaran/wfst/semiring"

// WeightCodec converts between a semiring's Weight values and a
// CBOR-representable value. Each concrete semiring's codec lives in
// package script, which is the layer that actually knows which
// concrete Weight type an arc-type string names.
type WeightCodec interface {
	Encode(w semiring.Weight) (interface{}, error)
	Decode(v interface{}) (semiring.Weight, error)
}
