package rpm_test

import (
	"os"
	"testing"

	"github.com/joshyorko/rpms2sbom/hamlet"
	"github.com/joshyorko/rpms2sbom/rpm"
)

func writeFile(filename, content string) error {
	return os.WriteFile(filename, []byte(content), 0o644)
}

func TestNewReaderSelectsImplementation(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	reader, err := rpm.NewReader("", "rpm", 0)
	must_be.Nil(err)
	_, ok := reader.(*rpm.CommandReader)
	must_be.True(ok)

	reader, err = rpm.NewReader("Native", "rpm", 0)
	must_be.Nil(err)
	_, ok = reader.(*rpm.NativeReader)
	must_be.True(ok)

	_, err = rpm.NewReader("dpkg", "rpm", 0)
	wont_be.Nil(err)
}
