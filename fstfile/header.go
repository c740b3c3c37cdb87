package fstfile

import "github.com/katalvlaran/wfst/fst"

// magic identifies a wfst binary file. Stored as a plain string field
// rather than a raw byte array so it round-trips cleanly through CBOR.
const magic = "WFST"

// formatVersion is bumped whenever the wire encoding changes
// incompatibly.
const formatVersion = 1

// Header describes a persisted transducer without requiring the body
// to be decoded first: magic, arc-type string, FST-type string,
// version, properties, and state count.
type Header struct {
	Magic      string        `cbor:"magic"`
	ArcType    string        `cbor:"arc_type"`
	FstType    string        `cbor:"fst_type"`
	Version    uint32        `cbor:"version"`
	Properties fst.Properties `cbor:"properties"`
	NumStates  int64         `cbor:"num_states"`
}

// NewHeader returns a Header with Magic and Version filled in.
func NewHeader(arcType, fstType string, props fst.Properties, numStates int64) Header {
	return Header{Magic: magic, ArcType: arcType, FstType: fstType, Version: formatVersion, Properties: props, NumStates: numStates}
}

func (h Header) valid() bool {
	return h.Magic == magic && h.Version == formatVersion
}
