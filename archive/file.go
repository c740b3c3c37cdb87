package archive

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/katalvlaran/wfst/script"
)

// Save encodes the accumulated entries as a single CBOR envelope.
func (w *Writer) Save(dst io.Writer) error {
	wa := wireArchive{Kind: w.kind, ArcType: w.arcType, Entries: w.entries}
	return cbor.NewEncoder(dst).Encode(wa)
}

// Open decodes an archive envelope and returns a Reader positioned
// before the first entry (call Next to advance onto it), mirroring
// original_source's FarReader::Reset semantics at construction time.
//
// Kind is read directly from the envelope rather than sniffed from raw
// magic bytes the way original_source's IsSTTable/IsSTList/IsFst probe
// a filename; CBOR already self-describes the envelope, so a second
// byte-sniffing layer would be redundant.
func Open(src io.Reader) (*Reader, error) {
	var wa wireArchive
	if err := cbor.NewDecoder(src).Decode(&wa); err != nil {
		return nil, fmt.Errorf("archive: decoding envelope: %w", err)
	}
	switch wa.Kind {
	case KindSTTable, KindSTList, KindSingle:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, wa.Kind)
	}

	e, err := script.Lookup(wa.ArcType)
	if err != nil {
		return nil, err
	}

	return &Reader{kind: wa.Kind, arcType: wa.ArcType, entry: e, entries: wa.Entries, pos: -1}, nil
}
