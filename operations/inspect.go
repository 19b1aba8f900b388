package operations

import (
	"context"

	"github.com/joshyorko/rpms2sbom/rpm"
	"github.com/joshyorko/rpms2sbom/sbom"
)

type PackageReport struct {
	Path     string        `json:"path"`
	Metadata *rpm.Metadata `json:"metadata"`
	Sha1     string        `json:"sha1"`
}

// Inspect extracts one package the same way an inventory run does.
func Inspect(ctx context.Context, reader rpm.Reader, path string) (*PackageReport, error) {
	result := extract(ctx, reader, path)
	if result.err != nil {
		return nil, &ExtractionError{Path: path, Err: result.err}
	}
	return &PackageReport{
		Path:     path,
		Metadata: result.meta,
		Sha1:     result.sha1,
	}, nil
}

// ValidateFile parses an existing document and validates it. Parse problems
// are returned as error, rule violations as messages.
func ValidateFile(filename string) ([]sbom.ValidationMessage, error) {
	document, err := sbom.Read(filename)
	if err != nil {
		return nil, err
	}
	return sbom.Validate(document), nil
}
