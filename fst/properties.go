package fst

// Properties is a 64-bit bitset of structural claims about a transducer.
// Every claim except Error occupies a pair of adjacent bits: the lower
// bit is "known true", the bit immediately above it is "known false", and
// having neither set means "unknown". Error is a lone sticky bit: once
// set it is never cleared by any operation.
type Properties uint64

// Bit pairs. Each Xxx/NotXxx pair is mutually exclusive; use Known/SetKnown
// rather than raw bit manipulation to preserve that invariant.
const (
	Error Properties = 1 << 63

	Acyclic Properties = 1 << iota
	Cyclic

	Accessible
	NotAccessible

	CoAccessible
	NotCoAccessible

	IEpsilons
	NoIEpsilons

	OEpsilons
	NoOEpsilons

	ILabelSorted
	NotILabelSorted

	OLabelSorted
	NotOLabelSorted

	Weighted
	Unweighted

	Deterministic
	NotDeterministic

	TopSorted
	NotTopSorted

	EpsilonFree
	NotEpsilonFree
)

// pairs enumerates every known-true bit alongside its known-false
// counterpart, for the mutual-exclusion helpers below.
var pairs = [][2]Properties{
	{Acyclic, Cyclic},
	{Accessible, NotAccessible},
	{CoAccessible, NotCoAccessible},
	{IEpsilons, NoIEpsilons},
	{OEpsilons, NoOEpsilons},
	{ILabelSorted, NotILabelSorted},
	{OLabelSorted, NotOLabelSorted},
	{Weighted, Unweighted},
	{Deterministic, NotDeterministic},
	{TopSorted, NotTopSorted},
	{EpsilonFree, NotEpsilonFree},
}

// counterpart returns the other bit of the pair bit belongs to, or 0 if
// bit is not a recognised pair member (e.g. Error, or an unset bit).
func counterpart(bit Properties) Properties {
	for _, p := range pairs {
		if p[0] == bit {
			return p[1]
		}
		if p[1] == bit {
			return p[0]
		}
	}
	return 0
}

// Has reports whether every bit in want is set in p (raw test, no
// pairing semantics — used for combining several known-true bits at
// once, e.g. p.Has(Acyclic|Deterministic)).
func (p Properties) Has(want Properties) bool { return p&want == want }

// HasError reports whether the sticky error bit is set.
func (p Properties) HasError() bool { return p&Error != 0 }

// KnownTrue reports whether bit is known-true in p.
func (p Properties) KnownTrue(bit Properties) bool { return p&bit == bit }

// KnownFalse reports whether bit's pair counterpart is known-true in p
// (i.e. bit itself is known to be false).
func (p Properties) KnownFalse(bit Properties) bool {
	c := counterpart(bit)
	return c != 0 && p&c == c
}

// Unknown reports whether neither bit nor its counterpart is set.
func (p Properties) Unknown(bit Properties) bool {
	return !p.KnownTrue(bit) && !p.KnownFalse(bit)
}

// SetKnown returns p with bit's pair resolved to value: the true side
// set and the false side cleared, or vice versa. Setting Error is
// idempotent-additive (it can only ever be added, never used to clear
// the bit via value=false — callers should not attempt to "unset" it).
func (p Properties) SetKnown(bit Properties, value bool) Properties {
	if bit == Error {
		if value {
			return p | Error
		}
		return p
	}
	c := counterpart(bit)
	if value {
		return (p &^ c) | bit
	}
	return (p &^ bit) | c
}

// WithError returns p with the sticky error bit set.
func (p Properties) WithError() Properties { return p | Error }
