package fstfile

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

type arcWire struct {
	ILabel    fst.Label   `cbor:"i"`
	OLabel    fst.Label   `cbor:"o"`
	Weight    interface{} `cbor:"w"`
	NextState fst.StateId `cbor:"n"`
}

type stateWire struct {
	Final interface{} `cbor:"f"`
	Arcs  []arcWire   `cbor:"a"`
}

type fileWire struct {
	Header Header      `cbor:"header"`
	Start  fst.StateId `cbor:"start"`
	States []stateWire `cbor:"states"`
}

// Write encodes f's full structure (start state, every state's final
// weight and arcs) as a single CBOR document, preceded logically by
// hdr — hdr.NumStates should equal f.NumStates(); callers build it via
// NewHeader.
func Write(w io.Writer, f fst.ExpandedFst, hdr Header, codec WeightCodec) error {
	n := f.NumStates()
	fw := fileWire{Header: hdr, Start: f.Start(), States: make([]stateWire, n)}
	for s := fst.StateId(0); s < fst.StateId(n); s++ {
		final, err := codec.Encode(f.Final(s))
		if err != nil {
			return err
		}
		arcs := fst.Arcs(f, s)
		wireArcs := make([]arcWire, len(arcs))
		for i, a := range arcs {
			wv, err := codec.Encode(a.Weight)
			if err != nil {
				return err
			}
			wireArcs[i] = arcWire{ILabel: a.ILabel, OLabel: a.OLabel, Weight: wv, NextState: a.NextState}
		}
		fw.States[s] = stateWire{Final: final, Arcs: wireArcs}
	}

	enc := cbor.NewEncoder(w)
	return enc.Encode(fw)
}

// Read decodes a file written by Write into a fresh VectorFst, along
// with its Header. zero is the Zero weight of the target semiring,
// used to construct the output store.
func Read(r io.Reader, codec WeightCodec, zero semiring.Weight) (*fst.VectorFst, Header, error) {
	var fw fileWire
	dec := cbor.NewDecoder(r)
	if err := dec.Decode(&fw); err != nil {
		return nil, Header{}, fmt.Errorf("%w: %v", ErrIOCorrupt, err)
	}
	if !fw.Header.valid() {
		return nil, Header{}, ErrIOCorrupt
	}

	out := fst.New(zero)
	for i := 0; i < len(fw.States); i++ {
		out.AddState()
	}
	out.SetStart(fw.Start)
	for s, sw := range fw.States {
		final, err := codec.Decode(sw.Final)
		if err != nil {
			return nil, Header{}, fmt.Errorf("%w: %v", ErrIOCorrupt, err)
		}
		out.SetFinal(fst.StateId(s), final)
		for _, a := range sw.Arcs {
			w, err := codec.Decode(a.Weight)
			if err != nil {
				return nil, Header{}, fmt.Errorf("%w: %v", ErrIOCorrupt, err)
			}
			out.AddArc(fst.StateId(s), fst.Arc{ILabel: a.ILabel, OLabel: a.OLabel, Weight: w, NextState: a.NextState})
		}
	}
	out.SetProperties(fw.Header.Properties, ^fst.Properties(0))
	return out, fw.Header, nil
}
