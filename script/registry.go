package script

import (
	"fmt"

	"github.com/katalvlaran/wfst/fstfile"
	"github.com/katalvlaran/wfst/semiring"
)

// ArcType names one of the four built-in semirings by the same strings
// OpenFST's own script layer uses.
const (
	Standard    = "standard" // tropical
	Log         = "log"
	Boolean     = "boolean"
	Probability = "probability"
)

// Entry bundles a semiring's identity elements with its wire codec.
type Entry struct {
	Zero, One semiring.Weight
	Codec     fstfile.WeightCodec
}

var registry = map[string]Entry{
	Standard:    {Zero: semiring.TropicalZero, One: semiring.TropicalOne, Codec: float64Codec{decode: func(f float64) semiring.Weight { return semiring.TropicalWeight(f) }}},
	Log:         {Zero: semiring.LogZero, One: semiring.LogOne, Codec: float64Codec{decode: func(f float64) semiring.Weight { return semiring.LogWeight(f) }}},
	Boolean:     {Zero: semiring.BooleanZero, One: semiring.BooleanOne, Codec: boolCodec{}},
	Probability: {Zero: semiring.ProbabilityZero, One: semiring.ProbabilityOne, Codec: float64Codec{decode: func(f float64) semiring.Weight { return semiring.ProbabilityWeight(f) }}},
}

// ErrUnknownArcType names an arc-type string with no registered
// semiring, caught at the script boundary rather than inside an
// algorithm.
var ErrUnknownArcType = fmt.Errorf("script: unknown arc type")

// Lookup resolves arcType to its Entry.
func Lookup(arcType string) (Entry, error) {
	e, ok := registry[arcType]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownArcType, arcType)
	}
	return e, nil
}

type float64Codec struct {
	decode func(float64) semiring.Weight
}

func (c float64Codec) Encode(w semiring.Weight) (interface{}, error) {
	switch v := w.(type) {
	case semiring.TropicalWeight:
		return float64(v), nil
	case semiring.LogWeight:
		return float64(v), nil
	case semiring.ProbabilityWeight:
		return float64(v), nil
	default:
		return nil, fmt.Errorf("script: weight %T is not float64-backed", w)
	}
}

func (c float64Codec) Decode(v interface{}) (semiring.Weight, error) {
	f, ok := v.(float64)
	if !ok {
		return nil, fmt.Errorf("script: expected float64, got %T", v)
	}
	return c.decode(f), nil
}

type boolCodec struct{}

func (boolCodec) Encode(w semiring.Weight) (interface{}, error) {
	b, ok := w.(semiring.BooleanWeight)
	if !ok {
		return nil, fmt.Errorf("script: weight %T is not BooleanWeight", w)
	}
	return bool(b), nil
}

func (boolCodec) Decode(v interface{}) (semiring.Weight, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("script: expected bool, got %T", v)
	}
	return semiring.BooleanWeight(b), nil
}
