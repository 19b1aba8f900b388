package operations_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joshyorko/rpms2sbom/hamlet"
	"github.com/joshyorko/rpms2sbom/operations"
	"github.com/joshyorko/rpms2sbom/progresscore"
	"github.com/joshyorko/rpms2sbom/rpm"
	"github.com/joshyorko/rpms2sbom/rpm/rpmtest"
	"github.com/joshyorko/rpms2sbom/sbom"
)

func fixedClock() time.Time {
	return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
}

func runConfig() sbom.RunConfig {
	return sbom.RunConfig{Supplier: "tester", Now: fixedClock}
}

// packageTree creates root/a.rpm, root/nested/b.rpm and a non package file.
func packageTree(t *testing.T) string {
	root := filepath.Join(t.TempDir(), "pkgs")
	rpmtest.Write(t, filepath.Join(root, "a.rpm"), rpmtest.Fixture{
		Name: "alpha", Version: "1.0", Summary: "Alpha", Description: "First",
		URL: "https://example.com/alpha", BuildHost: "host-a", BuildTime: 1700000000,
	})
	rpmtest.Write(t, filepath.Join(root, "nested", "b.rpm"), rpmtest.Fixture{
		Name: "beta", Version: "2.0", Summary: "Beta", Description: "Second",
		URL: "https://example.com/beta", BuildHost: "host-b", BuildTime: 1700000100,
	})
	if err := os.WriteFile(filepath.Join(root, "readme.txt"), []byte("not a package"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func inventory(root, output string) *operations.Inventory {
	return &operations.Inventory{
		Root:   root,
		Output: output,
		Reader: rpm.NewNativeReader(),
		Config: runConfig(),
	}
}

func TestInventoryDescribesEveryPackage(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	root := packageTree(t)
	output := filepath.Join(t.TempDir(), "sbom.json")
	result, err := inventory(root, output).Run(context.Background())
	must_be.Nil(err)
	must_be.Equal(output, result.Output)
	must_be.Equal(2, result.Packages)
	must_be.Length(result.Skipped, 0)
	must_be.Length(result.Fingerprint, 32)

	loaded, err := sbom.Read(output)
	must_be.Nil(err)
	must_be.Length(loaded.Packages, 2)
	must_be.Length(loaded.Relationships, 2)
	must_be.Equal("alpha", loaded.Packages[0].PackageName)
	must_be.Equal("a.rpm", loaded.Packages[0].PackageFileName)
	must_be.Equal("host-a", loaded.Packages[0].PackageDownloadLocation)
	must_be.Equal("beta", loaded.Packages[1].PackageName)
	must_be.Equal("b.rpm", loaded.Packages[1].PackageFileName)
	must_be.Equal("Package-beta", string(loaded.Relationships[1].RefB.ElementRefID))
	must_be.Empty(sbom.Validate(loaded))

	for _, stage := range result.Stages {
		must_be.Equal(progresscore.StepComplete, stage.Status)
	}
}

func TestEmptyDirectoryGivesValidEmptyDocument(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	output := filepath.Join(t.TempDir(), "sbom.spdx")
	result, err := inventory(t.TempDir(), output).Run(context.Background())
	must_be.Nil(err)
	must_be.Equal(0, result.Packages)

	loaded, err := sbom.Read(output)
	must_be.Nil(err)
	must_be.Length(loaded.Packages, 0)
	must_be.Empty(sbom.Validate(loaded))
}

func TestBrokenPackageAbortsByDefault(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	root := packageTree(t)
	broken := filepath.Join(root, "nested", "broken.rpm")
	must_be.Nil(os.WriteFile(broken, []byte("garbage"), 0o644))
	output := filepath.Join(t.TempDir(), "sbom.json")

	sut := inventory(root, output)
	_, err := sut.Run(context.Background())
	var extraction *operations.ExtractionError
	must_be.True(errors.As(err, &extraction))
	must_be.Equal(broken, extraction.Path)
	must_be.True(sut.Tracker.HasFailed())

	_, err = os.Stat(output)
	must_be.True(os.IsNotExist(err))
}

func TestBrokenPackageIsSkippedOnRequest(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	root := packageTree(t)
	broken := filepath.Join(root, "nested", "broken.rpm")
	must_be.Nil(os.WriteFile(broken, []byte("garbage"), 0o644))

	sut := inventory(root, filepath.Join(t.TempDir(), "sbom.yaml"))
	sut.SkipOnError = true
	result, err := sut.Run(context.Background())
	must_be.Nil(err)
	must_be.Equal(2, result.Packages)
	must_be.Equal([]string{broken}, result.Skipped)
}

func TestParallelRunMatchesSequentialRun(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	root := packageTree(t)
	for index := 0; index < 6; index++ {
		name := string(rune('c' + index))
		rpmtest.Write(t, filepath.Join(root, "more", name+".rpm"), rpmtest.Fixture{
			Name: "pkg-" + name, Version: "1", BuildHost: "host", BuildTime: 1700000000 + int64(index),
		})
	}

	sequential := inventory(root, "")
	builder, _, err := sequential.Build(context.Background())
	must_be.Nil(err)

	parallel := inventory(root, "")
	parallel.Workers = 4
	other, _, err := parallel.Build(context.Background())
	must_be.Nil(err)

	var left, right bytes.Buffer
	must_be.Nil(sbom.Encode(builder.Document(), sbom.FormatJSON, &left))
	must_be.Nil(sbom.Encode(other.Document(), sbom.FormatJSON, &right))
	must_be.Equal(8, builder.Len())
	must_be.Equal(left.String(), right.String())
}

type badHomepageReader struct{}

func (badHomepageReader) Read(ctx context.Context, filename string) (*rpm.Metadata, error) {
	return &rpm.Metadata{Name: "odd", Version: "1", URL: "ftp//broken", BuildTime: 1, BuildHost: "h"}, nil
}

func TestInvalidDocumentIsNeverWritten(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	output := filepath.Join(t.TempDir(), "sbom.json")
	sut := inventory(packageTree(t), output)
	sut.Reader = badHomepageReader{}
	_, err := sut.Run(context.Background())

	var invalid *sbom.InvalidDocumentError
	must_be.True(errors.As(err, &invalid))
	must_be.True(len(invalid.Messages) > 0)
	_, err = os.Stat(output)
	must_be.True(os.IsNotExist(err))

	steps := sut.Tracker.Steps()
	must_be.Equal(progresscore.StepFailed, steps[operations.StageValidate].Status)
	must_be.Equal(progresscore.StepSkipped, steps[operations.StageWrite].Status)
}

func TestUnsupportedOutputIsWriteError(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	_, err := inventory(t.TempDir(), filepath.Join(t.TempDir(), "sbom.rdf")).Run(context.Background())
	var failure *operations.WriteError
	must_be.True(errors.As(err, &failure))
	must_be.ErrorIs(err, sbom.ErrUnsupportedFormat)
}

func TestFtpAndBareHomepagesPassThroughCommandReader(t *testing.T) {
	for _, homepage := range []string{"ftp://ftp.gnu.org/gnu/tar", "www.gnu.org/software/tar"} {
		t.Run(homepage, func(t *testing.T) {
			must_be, _ := hamlet.Specifications(t)

			root := filepath.Join(t.TempDir(), "pkgs")
			rpmtest.Write(t, filepath.Join(root, "tar.rpm"), rpmtest.Fixture{Name: "tar", Version: "1.34"})
			tool := rpmtest.FakeTool(t, t.TempDir(), "GNU tar||Archiver||"+homepage+"||1.34||tar||1700000000||buildhw-x86-01.example.org", 0)
			reader, err := rpm.NewCommandReader("'"+tool+"'", 0)
			must_be.Nil(err)

			output := filepath.Join(t.TempDir(), "sbom.json")
			sut := inventory(root, output)
			sut.Reader = reader
			result, err := sut.Run(context.Background())
			must_be.Nil(err)
			must_be.Equal(1, result.Packages)

			loaded, err := sbom.Read(output)
			must_be.Nil(err)
			must_be.Equal(homepage, loaded.Packages[0].PackageHomePage)
			must_be.Equal("buildhw-x86-01.example.org", loaded.Packages[0].PackageDownloadLocation)
		})
	}
}
