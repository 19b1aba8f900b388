package sbom

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	spdxcommon "github.com/spdx/tools-golang/spdx/v2/common"
	"github.com/spdx/tools-golang/spdx/v2/v2_3"
)

var (
	validID  = regexp.MustCompile(`^SPDXRef-[A-Za-z0-9.\-]+$`)
	lowerHex = regexp.MustCompile(`^[0-9a-f]+$`)

	// digest lengths in hex digits, zero means variable
	checksumLengths = map[spdxcommon.ChecksumAlgorithm]int{
		spdxcommon.SHA1:        40,
		spdxcommon.SHA224:      56,
		spdxcommon.SHA256:      64,
		spdxcommon.SHA384:      96,
		spdxcommon.SHA512:      128,
		spdxcommon.SHA3_256:    64,
		spdxcommon.SHA3_384:    96,
		spdxcommon.SHA3_512:    128,
		spdxcommon.BLAKE2b_256: 64,
		spdxcommon.BLAKE2b_384: 96,
		spdxcommon.BLAKE2b_512: 128,
		spdxcommon.BLAKE3:      0,
		spdxcommon.MD2:         32,
		spdxcommon.MD4:         32,
		spdxcommon.MD5:         32,
		spdxcommon.MD6:         0,
		spdxcommon.ADLER32:     8,
	}

	relationshipTypes = toSet(
		"AMENDS", "ANCESTOR_OF", "BUILD_DEPENDENCY_OF", "BUILD_TOOL_OF",
		"CONTAINED_BY", "CONTAINS", "COPY_OF", "DATA_FILE_OF",
		"DEPENDENCY_MANIFEST_OF", "DEPENDENCY_OF", "DEPENDS_ON",
		"DESCENDANT_OF", "DESCRIBED_BY", "DESCRIBES", "DEV_DEPENDENCY_OF",
		"DEV_TOOL_OF", "DISTRIBUTION_ARTIFACT", "DOCUMENTATION_OF",
		"DYNAMIC_LINK", "EXAMPLE_OF", "EXPANDED_FROM_ARCHIVE", "FILE_ADDED",
		"FILE_DELETED", "FILE_MODIFIED", "GENERATED_FROM", "GENERATES",
		"HAS_PREREQUISITE", "METAFILE_OF", "OPTIONAL_COMPONENT_OF",
		"OPTIONAL_DEPENDENCY_OF", "OTHER", "PACKAGE_OF", "PATCH_APPLIED",
		"PATCH_FOR", "PREREQUISITE_FOR", "PROVIDED_DEPENDENCY_OF",
		"REQUIREMENT_DESCRIPTION_FOR", "RUNTIME_DEPENDENCY_OF",
		"SPECIFICATION_FOR", "STATIC_LINK", "TEST_CASE_OF",
		"TEST_DEPENDENCY_OF", "TEST_OF", "TEST_TOOL_OF", "VARIANT_OF",
	)
)

func toSet(names ...string) map[string]bool {
	result := make(map[string]bool, len(names))
	for _, name := range names {
		result[name] = true
	}
	return result
}

type validator struct {
	messages []ValidationMessage
	document string
}

func (it *validator) report(context ValidationContext, format string, details ...interface{}) {
	it.messages = append(it.messages, ValidationMessage{
		Message: fmt.Sprintf(format, details...),
		Context: context,
	})
}

// Validate checks doc against the SPDX 2.3 rules this tool relies on and
// returns every violation found. An empty result means the document is valid.
func Validate(doc *v2_3.Document) []ValidationMessage {
	it := &validator{document: spdxRefPrefix + DocumentID}
	if doc == nil {
		it.report(ValidationContext{Element: "Document"}, "document is missing")
		return it.messages
	}
	it.checkDocument(doc)
	known := it.checkPackages(doc)
	for _, file := range doc.Files {
		if file != nil {
			known[spdxRefPrefix+string(file.FileSPDXIdentifier)] = true
		}
	}
	it.checkRelationships(doc, known)
	return it.messages
}

// Check runs Validate and folds the outcome into an error.
func Check(doc *v2_3.Document) error {
	messages := Validate(doc)
	if len(messages) > 0 {
		return &InvalidDocumentError{Messages: messages}
	}
	return nil
}

func (it *validator) checkDocument(doc *v2_3.Document) {
	context := ValidationContext{SPDXID: it.document, Element: "Document"}
	if doc.SPDXVersion != SPDXVersion {
		it.report(context, "spdx version must be %s, but is: %q", SPDXVersion, doc.SPDXVersion)
	}
	if doc.DataLicense != DataLicense {
		it.report(context, "data license must be %s, but is: %q", DataLicense, doc.DataLicense)
	}
	if string(doc.SPDXIdentifier) != DocumentID {
		it.report(context, "document identifier must be %s, but is: %q", it.document, spdxRefPrefix+string(doc.SPDXIdentifier))
	}
	if len(strings.TrimSpace(doc.DocumentName)) == 0 {
		it.report(context, "document name must not be empty")
	}
	it.checkNamespace(context, doc.DocumentNamespace)

	info := doc.CreationInfo
	if info == nil {
		it.report(context, "creation info is missing")
		return
	}
	creation := ValidationContext{ParentID: it.document, Element: "CreationInfo"}
	if len(info.Creators) == 0 {
		it.report(creation, "at least one creator is required")
	}
	for _, creator := range info.Creators {
		switch ActorKind(creator.CreatorType) {
		case ActorTool, ActorPerson, ActorOrganization:
		default:
			it.report(creation, "creator type must be Tool, Person or Organization, but is: %q", creator.CreatorType)
		}
		if len(strings.TrimSpace(creator.Creator)) == 0 {
			it.report(creation, "creator name must not be empty")
		}
	}
	if _, err := time.Parse(TimeFormat, info.Created); err != nil {
		it.report(creation, "created must be formatted as %s, but is: %q", TimeFormat, info.Created)
	}
}

func (it *validator) checkNamespace(context ValidationContext, namespace string) {
	parsed, err := url.Parse(namespace)
	if err != nil || !parsed.IsAbs() || len(parsed.Host) == 0 {
		it.report(context, "document namespace must be an absolute URI, but is: %q", namespace)
		return
	}
	if strings.Contains(namespace, "#") {
		it.report(context, "document namespace must not contain '#', but is: %q", namespace)
	}
}

func (it *validator) checkPackages(doc *v2_3.Document) map[string]bool {
	seen := make(map[string]bool, len(doc.Packages)+1)
	seen[it.document] = true
	for index, pkg := range doc.Packages {
		if pkg == nil {
			it.report(ValidationContext{ParentID: it.document, Element: fmt.Sprintf("Package[%d]", index)}, "package is missing")
			continue
		}
		id := spdxRefPrefix + string(pkg.PackageSPDXIdentifier)
		context := ValidationContext{
			SPDXID:   id,
			ParentID: it.document,
			Element:  fmt.Sprintf("Package(name=%q, version=%q)", pkg.PackageName, pkg.PackageVersion),
		}
		if !validID.MatchString(id) {
			it.report(context, "spdx id must only contain letters, numbers, \".\" and \"-\" and must begin with \"SPDXRef-\", but is: %q", id)
		}
		if seen[id] {
			it.report(context, "spdx id %q is used more than once", id)
		}
		seen[id] = true
		if len(strings.TrimSpace(pkg.PackageName)) == 0 {
			it.report(context, "package name must not be empty")
		}
		if len(strings.TrimSpace(pkg.PackageDownloadLocation)) == 0 {
			it.report(context, "package download location must not be empty")
		} else if !ValidDownloadLocation(pkg.PackageDownloadLocation) {
			it.report(context, "package download location must be a URL, VCS locator, host name, NONE or NOASSERTION, but is: %q", pkg.PackageDownloadLocation)
		}
		it.checkHomepage(context, pkg.PackageHomePage)
		it.checkSupplier(context, pkg.PackageSupplier)
		if len(pkg.BuiltDate) > 0 {
			if _, err := time.Parse(TimeFormat, pkg.BuiltDate); err != nil {
				it.report(context, "built date must be formatted as %s, but is: %q", TimeFormat, pkg.BuiltDate)
			}
		}
		for _, checksum := range pkg.PackageChecksums {
			it.checkChecksum(context, checksum)
		}
	}
	return seen
}

func (it *validator) checkHomepage(context ValidationContext, homepage string) {
	if len(homepage) == 0 || homepage == None || homepage == NoAssertion {
		return
	}
	if !ValidURL(homepage) {
		it.report(context, "homepage must be a valid URL, NONE or NOASSERTION, but is: %q", homepage)
	}
}

func (it *validator) checkSupplier(context ValidationContext, supplier *spdxcommon.Supplier) {
	if supplier == nil || supplier.Supplier == NoAssertion {
		return
	}
	switch ActorKind(supplier.SupplierType) {
	case ActorPerson, ActorOrganization:
	default:
		it.report(context, "supplier type must be Person or Organization, but is: %q", supplier.SupplierType)
	}
	if len(strings.TrimSpace(supplier.Supplier)) == 0 {
		it.report(context, "supplier name must not be empty")
	}
}

func (it *validator) checkChecksum(context ValidationContext, checksum spdxcommon.Checksum) {
	length, ok := checksumLengths[checksum.Algorithm]
	if !ok {
		it.report(context, "unknown checksum algorithm: %q", checksum.Algorithm)
		return
	}
	if !lowerHex.MatchString(checksum.Value) || (length > 0 && len(checksum.Value) != length) {
		it.report(context, "value of %s must consist of %d lowercase hexadecimal digits, but is: %q (length: %d digits)", checksum.Algorithm, length, checksum.Value, len(checksum.Value))
	}
}

func (it *validator) checkRelationships(doc *v2_3.Document, known map[string]bool) {
	external := make(map[string]bool, len(doc.ExternalDocumentReferences))
	for _, reference := range doc.ExternalDocumentReferences {
		external[reference.DocumentRefID] = true
	}
	for index, relationship := range doc.Relationships {
		if relationship == nil {
			it.report(ValidationContext{ParentID: it.document, Element: fmt.Sprintf("Relationship[%d]", index)}, "relationship is missing")
			continue
		}
		context := ValidationContext{
			ParentID: it.document,
			Element:  fmt.Sprintf("Relationship(%s %s %s)", relationship.RefA, relationship.Relationship, relationship.RefB),
		}
		if !relationshipTypes[relationship.Relationship] {
			it.report(context, "unknown relationship type: %q", relationship.Relationship)
		}
		it.checkEnd(context, relationship.RefA, known, external, false)
		it.checkEnd(context, relationship.RefB, known, external, true)
	}
}

func (it *validator) checkEnd(context ValidationContext, end spdxcommon.DocElementID, known, external map[string]bool, special bool) {
	if len(end.SpecialID) > 0 {
		if !special || (end.SpecialID != None && end.SpecialID != NoAssertion) {
			it.report(context, "relationship end %q is not allowed here", end.SpecialID)
		}
		return
	}
	if len(end.DocumentRefID) > 0 {
		if !external[end.DocumentRefID] {
			it.report(context, "external document %q is not referenced by the document", "DocumentRef-"+end.DocumentRefID)
		}
		return
	}
	id := spdxRefPrefix + string(end.ElementRefID)
	if !known[id] {
		it.report(context, "did not find the referenced spdx_id %s in the SPDX document", id)
	}
}
