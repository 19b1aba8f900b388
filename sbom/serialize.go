package sbom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/clbanning/mxj"
	"github.com/joshyorko/rpms2sbom/common"
	"github.com/joshyorko/rpms2sbom/pathlib"
	spdxjson "github.com/spdx/tools-golang/json"
	"github.com/spdx/tools-golang/spdx/v2/v2_3"
	"github.com/spdx/tools-golang/tagvalue"
	spdxyaml "github.com/spdx/tools-golang/yaml"
)

// Format names one serialization of a document.
type Format string

const (
	FormatTagValue Format = "tag-value"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatXML      Format = "xml"
	FormatRDF      Format = "rdf"

	xmlRoot = "Document"
)

var ErrUnsupportedFormat = errors.New("unsupported sbom format")

// FormatOf picks the serialization from the file extension.
func FormatOf(filename string) (Format, error) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".rdf.xml"), strings.HasSuffix(lower, ".rdf"):
		return FormatRDF, fmt.Errorf("%w: %q (RDF output is not available)", ErrUnsupportedFormat, filename)
	case strings.HasSuffix(lower, ".spdx"):
		return FormatTagValue, nil
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON, nil
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML, nil
	case strings.HasSuffix(lower, ".xml"):
		return FormatXML, nil
	default:
		return "", fmt.Errorf("%w: %q (expected .spdx, .json, .xml, .yaml or .yml)", ErrUnsupportedFormat, filename)
	}
}

// Encode writes doc to sink in the given format.
func Encode(doc *v2_3.Document, format Format, sink io.Writer) error {
	switch format {
	case FormatTagValue:
		return tagvalue.Write(doc, sink)
	case FormatJSON:
		return spdxjson.Write(doc, sink, spdxjson.Indent("  "))
	case FormatYAML:
		return spdxyaml.Write(doc, sink)
	case FormatXML:
		return encodeXML(doc, sink)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func encodeXML(doc *v2_3.Document, sink io.Writer) error {
	var buffer bytes.Buffer
	err := spdxjson.Write(doc, &buffer)
	if err != nil {
		return err
	}
	tree, err := mxj.NewMapJson(buffer.Bytes())
	if err != nil {
		return err
	}
	blob, err := tree.XmlIndent("", "  ", xmlRoot)
	if err != nil {
		return err
	}
	_, err = sink.Write(append(blob, '\n'))
	return err
}

// Write serializes doc to filename, choosing the format from its extension.
func Write(doc *v2_3.Document, filename string) error {
	format, err := FormatOf(filename)
	if err != nil {
		return err
	}
	err = pathlib.WriteAtomically(filename, 0o644, func(sink io.Writer) error {
		return Encode(doc, format, sink)
	})
	if err != nil {
		return fmt.Errorf("writing %s sbom %q failed: %w", format, filename, err)
	}
	common.Debug("wrote %d packages as %s to %q", len(doc.Packages), format, filename)
	return nil
}

// Read parses a JSON, tag-value or YAML document back.
func Read(filename string) (*v2_3.Document, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	source, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	var doc *v2_3.Document
	switch format {
	case FormatTagValue:
		doc, err = tagvalue.Read(source)
	case FormatJSON:
		doc, err = spdxjson.Read(source)
	case FormatYAML:
		doc, err = spdxyaml.Read(source)
	default:
		return nil, fmt.Errorf("%w: cannot read %s from %q", ErrUnsupportedFormat, format, filepath.Base(filename))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s sbom %q failed: %w", format, filename, err)
	}
	return doc, nil
}
