package operations

import (
	"fmt"
)

// ExtractionError names the package file whose metadata or checksum could
// not be obtained.
type ExtractionError struct {
	Path string
	Err  error
}

func (it *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %q failed: %v", it.Path, it.Err)
}

func (it *ExtractionError) Unwrap() error {
	return it.Err
}

// WriteError names the output file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (it *WriteError) Error() string {
	return fmt.Sprintf("writing sbom %q failed: %v", it.Path, it.Err)
}

func (it *WriteError) Unwrap() error {
	return it.Err
}
