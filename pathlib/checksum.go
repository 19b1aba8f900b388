package pathlib

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
)

// Sha1File returns the lowercase hex SHA-1 digest of the raw file content.
func Sha1File(filename string) (string, error) {
	source, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer source.Close()

	digester := sha1.New()
	_, err = io.Copy(digester, source)
	if err != nil {
		return "", fmt.Errorf("reading %q failed: %w", filename, err)
	}
	return fmt.Sprintf("%x", digester.Sum(nil)), nil
}
