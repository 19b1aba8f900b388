package sbom

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joshyorko/rpms2sbom/common"
	"github.com/joshyorko/rpms2sbom/rpm"
	spdxcommon "github.com/spdx/tools-golang/spdx/v2/common"
	"github.com/spdx/tools-golang/spdx/v2/v2_3"
)

// DownloadLocationFromBuildHost maps an rpm build host to a package download
// location. Internal environments use the host to trace a package back to
// the machine that built it. Values that cannot be a location become
// NOASSERTION.
func DownloadLocationFromBuildHost(host string) string {
	host = strings.TrimSpace(host)
	if len(host) == 0 {
		return NoAssertion
	}
	if !ValidDownloadLocation(host) {
		common.Debug("build host %q is not usable as download location", host)
		return NoAssertion
	}
	return host
}

type Builder struct {
	document *v2_3.Document
	supplier Actor
	taken    map[spdxcommon.ElementID]bool
}

// NewBuilder creates the document and freezes its creation metadata.
func NewBuilder(config RunConfig) *Builder {
	config = config.withDefaults()
	creator := Actor{Kind: ActorTool, Name: config.CreatorTool}
	document := &v2_3.Document{
		SPDXVersion:       SPDXVersion,
		DataLicense:       DataLicense,
		SPDXIdentifier:    DocumentID,
		DocumentName:      config.DocumentName,
		DocumentNamespace: config.Namespace,
		CreationInfo: &v2_3.CreationInfo{
			Creators: []spdxcommon.Creator{creator.creator()},
			Created:  config.Now().UTC().Format(TimeFormat),
		},
		Packages:      []*v2_3.Package{},
		Relationships: []*v2_3.Relationship{},
	}
	return &Builder{
		document: document,
		supplier: Actor{Kind: ActorPerson, Name: config.Supplier},
		taken:    make(map[spdxcommon.ElementID]bool),
	}
}

func (it *Builder) Document() *v2_3.Document {
	return it.document
}

func (it *Builder) Len() int {
	return len(it.document.Packages)
}

// Add appends one package and its DESCRIBES relationship.
func (it *Builder) Add(filename string, meta *rpm.Metadata, sha1 string) *v2_3.Package {
	id := it.identify(meta)
	pkg := &v2_3.Package{
		PackageName:               meta.Name,
		PackageSPDXIdentifier:     id,
		PackageVersion:            meta.Version,
		PackageFileName:           filepath.Base(filename),
		PackageSummary:            meta.Summary,
		PackageDescription:        meta.Description,
		PackageHomePage:           meta.URL,
		PackageDownloadLocation:   DownloadLocationFromBuildHost(meta.BuildHost),
		BuiltDate:                 meta.Built().Format(TimeFormat),
		PackageSupplier:           it.supplier.supplier(),
		FilesAnalyzed:             false,
		IsFilesAnalyzedTagPresent: true,
		PackageChecksums: []spdxcommon.Checksum{
			{Algorithm: spdxcommon.SHA1, Value: strings.ToLower(sha1)},
		},
	}
	it.document.Packages = append(it.document.Packages, pkg)
	it.document.Relationships = append(it.document.Relationships, &v2_3.Relationship{
		RefA:         spdxcommon.MakeDocElementID("", DocumentID),
		RefB:         spdxcommon.MakeDocElementID("", string(id)),
		Relationship: Describes,
	})
	common.Trace("added %s%s from %q", spdxRefPrefix, id, filename)
	return pkg
}

func (it *Builder) identify(meta *rpm.Metadata) spdxcommon.ElementID {
	base := spdxcommon.ElementID(PackagePrefix + SanitizeID(meta.Name))
	candidate := base
	if it.taken[candidate] && len(meta.Version) > 0 {
		candidate = spdxcommon.ElementID(fmt.Sprintf("%s-%s", base, SanitizeID(meta.Version)))
	}
	versioned := candidate
	for counter := 2; it.taken[candidate]; counter++ {
		candidate = spdxcommon.ElementID(fmt.Sprintf("%s-%d", versioned, counter))
	}
	if candidate != base {
		common.Warning("Package %q %s already present as %s%s, using %s%s.", meta.Name, meta.Version, spdxRefPrefix, base, spdxRefPrefix, candidate)
	}
	it.taken[candidate] = true
	return candidate
}

// SanitizeID replaces characters SPDX identifiers cannot carry with '-'.
func SanitizeID(text string) string {
	if len(text) == 0 {
		return NoAssertion
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return '-'
		}
	}, text)
}
