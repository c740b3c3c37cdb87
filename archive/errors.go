package archive

import "errors"

// ErrKeyOrder is returned by Writer.Add when a KindSTTable archive is
// given a key not strictly greater than the previous one.
var ErrKeyOrder = errors.New("archive: sttable keys must be added in strictly increasing order")

// ErrSingleFull is returned by Writer.Add when a KindSingle archive
// already holds an entry.
var ErrSingleFull = errors.New("archive: single-fst archive already has an entry")

// ErrEmptyKey is returned by Writer.Add for a zero-length key.
var ErrEmptyKey = errors.New("archive: key must be non-empty")

// ErrNoCurrent is returned by Reader.GetKey/GetFst when called before
// the first Next or after Done.
var ErrNoCurrent = errors.New("archive: no current entry")

// ErrUnknownKind is returned by Open when the decoded envelope names a
// Kind this package does not recognize.
var ErrUnknownKind = errors.New("archive: unknown container kind")
