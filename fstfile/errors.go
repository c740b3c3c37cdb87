package fstfile

import "errors"

// ErrIOCorrupt is returned when a file fails the magic/version check
// or its body cannot be decoded.
var ErrIOCorrupt = errors.New("fstfile: corrupt or unsupported file")
