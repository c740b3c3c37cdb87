package cli

import (
	"fmt"
	"os"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/fstfile"
	"github.com/katalvlaran/wfst/script"
)

// readFst decodes the fstfile at path, resolving its codec from
// arcType (the caller's --arc-type flag, not whatever the file's own
// header claims — a mismatch surfaces as a decode error).
func readFst(path, arcType string) (*fst.VectorFst, error) {
	e, err := script.Lookup(arcType)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: opening %s: %w", path, err)
	}
	defer f.Close()

	out, _, err := fstfile.Read(f, e.Codec, e.Zero)
	if err != nil {
		return nil, fmt.Errorf("cli: decoding %s: %w", path, err)
	}
	return out, nil
}

// writeFst encodes result to path under arcType.
func writeFst(path, arcType string, result fst.ExpandedFst) error {
	e, err := script.Lookup(arcType)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cli: creating %s: %w", path, err)
	}
	defer out.Close()

	hdr := fstfile.NewHeader(arcType, "vector", result.Properties(), result.NumStates())
	if err := fstfile.Write(out, result, hdr, e.Codec); err != nil {
		return fmt.Errorf("cli: encoding %s: %w", path, err)
	}
	return nil
}
