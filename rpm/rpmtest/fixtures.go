// Package rpmtest builds small but real RPM files for tests.
package rpmtest

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/google/rpmpack"
)

type Fixture struct {
	Name        string
	Version     string
	Release     string
	Summary     string
	Description string
	URL         string
	BuildHost   string
	BuildTime   int64
}

// Write creates filename (and its parent directories) containing an RPM
// with the fixture metadata.
func Write(t testing.TB, filename string, fixture Fixture) string {
	t.Helper()

	release := fixture.Release
	if len(release) == 0 {
		release = "1"
	}
	builder, err := rpmpack.NewRPM(rpmpack.RPMMetaData{
		Name:        fixture.Name,
		Version:     fixture.Version,
		Release:     release,
		Summary:     fixture.Summary,
		Description: fixture.Description,
		URL:         fixture.URL,
		BuildHost:   fixture.BuildHost,
		BuildTime:   time.Unix(fixture.BuildTime, 0),
		Arch:        "noarch",
		Licence:     "MIT",
	})
	if err != nil {
		t.Fatalf("rpmpack: %v", err)
	}
	builder.AddFile(rpmpack.RPMFile{
		Name: "/usr/share/" + fixture.Name + "/README",
		Body: []byte(fixture.Name + " " + fixture.Version + "\n"),
		Mode: 0o644,
	})

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	sink, err := os.Create(filename)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer sink.Close()
	if err := builder.Write(sink); err != nil {
		t.Fatalf("writing rpm: %v", err)
	}
	return filename
}

// FakeTool writes an executable shell script that prints output, standing in
// for the rpm utility. It skips the test where sh scripts cannot run.
func FakeTool(t testing.TB, directory, output string, exitCode int) string {
	t.Helper()

	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("needs /bin/sh")
	}
	script := filepath.Join(directory, "fake-rpm")
	payload := filepath.Join(directory, "fake-rpm.out")
	if err := os.WriteFile(payload, []byte(output), 0o644); err != nil {
		t.Fatalf("payload: %v", err)
	}
	body := "#!/bin/sh\n" +
		"echo \"$@\" > \"" + payload + ".args\"\n" +
		"cat \"" + payload + "\"\n" +
		"echo 'fake-rpm: stderr noise' >&2\n" +
		"exit " + strconv.Itoa(exitCode) + "\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("script: %v", err)
	}
	return script
}
