package archive

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/fstfile"
	"github.com/katalvlaran/wfst/script"
)

// Reader iterates an archive's entries, mirroring original_source's
// FarReader cursor (Reset/Find/Done/Next/GetKey/GetFst).
type Reader struct {
	kind    Kind
	arcType string
	entry   script.Entry
	entries []wireEntry
	pos     int // -1 before the first Next; len(entries) once exhausted
}

// Kind reports the container layout this archive was opened with.
func (r *Reader) Kind() Kind { return r.kind }

// ArcType reports the arc-type string every entry was encoded with.
func (r *Reader) ArcType() string { return r.arcType }

// Reset repositions the cursor before the first entry.
func (r *Reader) Reset() { r.pos = -1 }

// Done reports whether the cursor has advanced past the last entry.
func (r *Reader) Done() bool { return r.pos >= len(r.entries) }

// Next advances the cursor by one entry.
func (r *Reader) Next() { r.pos++ }

// GetKey returns the current entry's key.
func (r *Reader) GetKey() (string, error) {
	if r.pos < 0 || r.Done() {
		return "", ErrNoCurrent
	}
	return r.entries[r.pos].Key, nil
}

// GetFst decodes and returns the current entry's transducer.
func (r *Reader) GetFst() (*fst.VectorFst, error) {
	if r.pos < 0 || r.Done() {
		return nil, ErrNoCurrent
	}
	we := r.entries[r.pos]
	blob := we.Blob
	if we.Compressed {
		var err error
		blob, err = zstdDecompress(blob)
		if err != nil {
			return nil, fmt.Errorf("archive: decompressing entry %q: %w", we.Key, err)
		}
	}
	f, _, err := fstfile.Read(bytes.NewReader(blob), r.entry.Codec, r.entry.Zero)
	if err != nil {
		return nil, fmt.Errorf("archive: decoding entry %q: %w", we.Key, err)
	}
	return f, nil
}

// Find positions the cursor on key and reports whether it exists.
//
// KindSTTable binary-searches, since Writer.Add enforced sorted
// insertion. KindSTList scans linearly from the start, since entries
// carry no ordering guarantee. KindSingle ignores key entirely and
// resets the cursor to its one entry (if any) — per original_source's
// FarReader for a lone Fst file, where Find has no index to search and
// simply reports whether the (single) entry is present.
func (r *Reader) Find(key string) bool {
	switch r.kind {
	case KindSTTable:
		i := sort.Search(len(r.entries), func(i int) bool { return r.entries[i].Key >= key })
		if i < len(r.entries) && r.entries[i].Key == key {
			r.pos = i
			return true
		}
		r.pos = len(r.entries)
		return false
	case KindSingle:
		r.pos = 0
		return len(r.entries) > 0
	default: // KindSTList
		for i, we := range r.entries {
			if we.Key == key {
				r.pos = i
				return true
			}
		}
		r.pos = len(r.entries)
		return false
	}
}
