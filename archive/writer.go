package archive

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/fstfile"
	"github.com/katalvlaran/wfst/script"
)

// Writer accumulates (key, transducer) entries in memory for a single
// Kind and arc type, ready to be flushed with Save.
//
// original_source's STTableFarWriter buffers each entry to a sorted
// on-disk table as it arrives; this package defers all I/O to Save so
// the archive can also be built purely in memory (e.g. for tests).
type Writer struct {
	kind     Kind
	arcType  string
	entry    script.Entry
	compress bool
	lastKey  string
	entries  []wireEntry
}

// NewWriter returns a Writer for the given container kind and arc
// type. compress enables zstd compression of each entry's fstfile blob.
func NewWriter(kind Kind, arcType string, compress bool) (*Writer, error) {
	e, err := script.Lookup(arcType)
	if err != nil {
		return nil, err
	}
	return &Writer{kind: kind, arcType: arcType, entry: e, compress: compress}, nil
}

// Add appends f under key. For KindSTTable, key must sort strictly
// after every previously added key. For KindSingle, only one Add is
// permitted.
func (w *Writer) Add(key string, f fst.ExpandedFst) error {
	if key == "" {
		return ErrEmptyKey
	}
	if w.kind == KindSTTable && len(w.entries) > 0 && key <= w.lastKey {
		return fmt.Errorf("%w: %q after %q", ErrKeyOrder, key, w.lastKey)
	}
	if w.kind == KindSingle && len(w.entries) > 0 {
		return ErrSingleFull
	}

	var buf bytes.Buffer
	hdr := fstfile.NewHeader(w.arcType, "vector", f.Properties(), f.NumStates())
	if err := fstfile.Write(&buf, f, hdr, w.entry.Codec); err != nil {
		return fmt.Errorf("archive: encoding entry %q: %w", key, err)
	}

	blob := buf.Bytes()
	compressed := false
	if w.compress {
		packed, err := zstdCompress(blob)
		if err == nil {
			blob = packed
			compressed = true
		}
	}

	w.entries = append(w.entries, wireEntry{Key: key, Blob: blob, Compressed: compressed})
	w.lastKey = key
	return nil
}

// Len reports the number of entries added so far.
func (w *Writer) Len() int { return len(w.entries) }
