package rpm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// NoneValue is what rpm prints for an unset tag.
const NoneValue = "(none)"

var (
	ErrToolMissing = errors.New("rpm query tool is not available")
)

// Metadata is the subset of the RPM header that goes into a package entry.
type Metadata struct {
	Description string `json:"description" yaml:"description"`
	Summary     string `json:"summary" yaml:"summary"`
	URL         string `json:"url" yaml:"url"`
	Version     string `json:"version" yaml:"version"`
	Name        string `json:"name" yaml:"name"`
	BuildTime   int64  `json:"buildtime" yaml:"buildtime"`
	BuildHost   string `json:"buildhost" yaml:"buildhost"`
}

// Built returns the build time as a UTC timestamp.
func (it *Metadata) Built() time.Time {
	return time.Unix(it.BuildTime, 0).UTC()
}

// Reader extracts Metadata from one package file.
type Reader interface {
	Read(ctx context.Context, filename string) (*Metadata, error)
}

type QueryError struct {
	Path   string
	Stderr string
	Err    error
}

func (it *QueryError) Error() string {
	if len(it.Stderr) > 0 {
		return fmt.Sprintf("querying %q failed: %v: %s", it.Path, it.Err, it.Stderr)
	}
	return fmt.Sprintf("querying %q failed: %v", it.Path, it.Err)
}

func (it *QueryError) Unwrap() error {
	return it.Err
}

type FieldCountError struct {
	Path string
	Got  int
	Want int
}

func (it *FieldCountError) Error() string {
	return fmt.Sprintf("metadata of %q has %d fields, expected %d", it.Path, it.Got, it.Want)
}

type BuildTimeError struct {
	Path  string
	Value string
	Err   error
}

func (it *BuildTimeError) Error() string {
	return fmt.Sprintf("build time %q of %q is not a unix epoch: %v", it.Value, it.Path, it.Err)
}

func (it *BuildTimeError) Unwrap() error {
	return it.Err
}

func unset(value string) string {
	if value == NoneValue {
		return ""
	}
	return value
}
