package pathlib

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomically lets writer fill a temporary sibling of filename and then
// renames it into place, so readers never observe a partial file.
func WriteAtomically(filename string, mode os.FileMode, writer func(io.Writer) error) (err error) {
	directory := filepath.Dir(filename)
	sink, err := os.CreateTemp(directory, "."+filepath.Base(filename)+".*.tmp")
	if err != nil {
		return err
	}
	temporary := sink.Name()
	defer func() {
		if err != nil {
			os.Remove(temporary)
		}
	}()

	err = writer(sink)
	if err != nil {
		sink.Close()
		return err
	}
	err = sink.Sync()
	if err != nil {
		sink.Close()
		return err
	}
	err = sink.Close()
	if err != nil {
		return err
	}
	err = os.Chmod(temporary, mode)
	if err != nil {
		return err
	}
	err = os.Rename(temporary, filename)
	if err != nil {
		return fmt.Errorf("rename %q -> %q failed: %w", temporary, filename, err)
	}
	return nil
}
