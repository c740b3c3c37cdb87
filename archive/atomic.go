package archive

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// SaveFile writes the archive to path atomically: the envelope is
// encoded to a sibling temp file (suffixed with a fresh uuid so
// concurrent writers never collide) and then renamed into place, so a
// reader can never observe a partially written archive.
func (w *Writer) SaveFile(path string) error {
	tmp := path + "." + uuid.NewString() + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("archive: creating temp file: %w", err)
	}

	if err := w.Save(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("archive: closing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("archive: renaming temp file: %w", err)
	}
	return nil
}

// OpenFile opens and decodes the archive at path.
func OpenFile(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("archive: opening %s: %w", path, err)
	}
	defer f.Close()
	return Open(f)
}
