package rpm_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshyorko/rpms2sbom/hamlet"
	"github.com/joshyorko/rpms2sbom/rpm"
	"github.com/joshyorko/rpms2sbom/rpm/rpmtest"
)

func TestQueryFormatHasSevenFieldsInOrder(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	must_be.Equal("%{DESCRIPTION}||%{SUMMARY}||%{URL}||%{VERSION}||%{NAME}||%{BUILDTIME}||%{BUILDHOST}", rpm.QueryFormat)
}

func TestParseQueryOutput(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	output := "First line\nsecond line||An app||https://example.com/app||1.0||app||1700000000||builder01.internal"
	meta, err := rpm.ParseQueryOutput("app-1.0.rpm", output)
	must_be.Nil(err)
	must_be.Equal("First line second line", meta.Description)
	must_be.Equal("An app", meta.Summary)
	must_be.Equal("https://example.com/app", meta.URL)
	must_be.Equal("1.0", meta.Version)
	must_be.Equal("app", meta.Name)
	must_be.Equal(int64(1700000000), meta.BuildTime)
	must_be.Equal("builder01.internal", meta.BuildHost)
	must_be.Equal("2023-11-14T22:13:20Z", meta.Built().Format("2006-01-02T15:04:05Z"))
}

func TestParseQueryOutputMapsNoneToEmpty(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	meta, err := rpm.ParseQueryOutput("x.rpm", "(none)||s||(none)||2||x||1||(none)")
	must_be.Nil(err)
	must_be.Equal("", meta.Description)
	must_be.Equal("", meta.URL)
	must_be.Equal("", meta.BuildHost)
}

func TestParseQueryOutputRejectsWrongFieldCount(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	_, err := rpm.ParseQueryOutput("bad.rpm", "error: bad.rpm: not an rpm package")
	wont_be.Nil(err)
	var fields *rpm.FieldCountError
	must_be.True(errors.As(err, &fields))
	must_be.Equal(1, fields.Got)
	must_be.Equal(7, fields.Want)
	must_be.True(strings.Contains(err.Error(), "bad.rpm"))

	_, err = rpm.ParseQueryOutput("pipes.rpm", "a||b||c||d||e||1||f||extra")
	must_be.True(errors.As(err, &fields))
	must_be.Equal(8, fields.Got)
}

func TestParseQueryOutputRejectsBadBuildTime(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	_, err := rpm.ParseQueryOutput("x.rpm", "d||s||u||1||x||yesterday||h")
	var buildtime *rpm.BuildTimeError
	must_be.True(errors.As(err, &buildtime))
	must_be.Equal("yesterday", buildtime.Value)
}

func TestCommandReaderRunsTool(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	directory := t.TempDir()
	tool := rpmtest.FakeTool(t, directory, "Some\ndescription||sum||(none)||2.3||lib||1700000001||host-b", 0)

	reader, err := rpm.NewCommandReader("'"+tool+"' --nosignature", 0)
	must_be.Nil(err)
	meta, err := reader.Read(context.Background(), "/pkgs/nested/lib-2.3.rpm")
	must_be.Nil(err)
	must_be.Equal("lib", meta.Name)
	must_be.Equal("2.3", meta.Version)
	must_be.Equal("Some description", meta.Description)
	must_be.Equal("host-b", meta.BuildHost)

	arguments, err := os.ReadFile(filepath.Join(directory, "fake-rpm.out.args"))
	must_be.Nil(err)
	must_be.Equal("--nosignature -qp --queryformat "+rpm.QueryFormat+" /pkgs/nested/lib-2.3.rpm\n", string(arguments))
}

func TestCommandReaderSurfacesToolFailure(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	tool := rpmtest.FakeTool(t, t.TempDir(), "", 1)
	reader, err := rpm.NewCommandReader(tool, 0)
	must_be.Nil(err)

	_, err = reader.Read(context.Background(), "broken.rpm")
	var query *rpm.QueryError
	must_be.True(errors.As(err, &query))
	must_be.Equal("broken.rpm", query.Path)
	must_be.Equal("fake-rpm: stderr noise", query.Stderr)
}

func TestCommandReaderWithoutTool(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	reader, err := rpm.NewCommandReader(filepath.Join(t.TempDir(), "no-such-rpm"), 0)
	must_be.Nil(err)
	_, err = reader.Read(context.Background(), "x.rpm")
	must_be.ErrorIs(err, rpm.ErrToolMissing)
}

func TestEmptyCommandIsRejected(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	_, err := rpm.NewCommandReader("   ", 0)
	must_be.ErrorIs(err, rpm.ErrToolMissing)
}
