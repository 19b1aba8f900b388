package sbom

import (
	"fmt"
	"strings"
	"time"

	spdxcommon "github.com/spdx/tools-golang/spdx/v2/common"
)

const (
	SPDXVersion     = "SPDX-2.3"
	DataLicense     = "CC0-1.0"
	DocumentID      = "DOCUMENT"
	PackagePrefix   = "Package-"
	NoAssertion     = "NOASSERTION"
	None            = "NONE"
	Describes       = "DESCRIBES"
	TimeFormat      = "2006-01-02T15:04:05Z"
	spdxRefPrefix   = "SPDXRef-"
	defaultTool     = "RPM SBOM Generator"
	defaultName     = "RPM SBOM Manifest"
	defaultDomain   = "https://rpm.sbom.example.com"
	defaultSupplier = "unknown"
)

type ActorKind string

const (
	ActorTool         ActorKind = "Tool"
	ActorPerson       ActorKind = "Person"
	ActorOrganization ActorKind = "Organization"
)

type Actor struct {
	Kind ActorKind
	Name string
}

func (it Actor) String() string {
	return fmt.Sprintf("%s: %s", it.Kind, it.Name)
}

func (it Actor) creator() spdxcommon.Creator {
	return spdxcommon.Creator{
		Creator:     it.Name,
		CreatorType: string(it.Kind),
	}
}

func (it Actor) supplier() *spdxcommon.Supplier {
	return &spdxcommon.Supplier{
		Supplier:     it.Name,
		SupplierType: string(it.Kind),
	}
}

// RunConfig holds everything fixed for one document at creation time.
type RunConfig struct {
	Namespace    string
	DocumentName string
	CreatorTool  string
	Supplier     string
	Now          func() time.Time
}

func (it RunConfig) withDefaults() RunConfig {
	if len(strings.TrimSpace(it.Namespace)) == 0 {
		it.Namespace = defaultDomain
	}
	if len(strings.TrimSpace(it.DocumentName)) == 0 {
		it.DocumentName = defaultName
	}
	if len(strings.TrimSpace(it.CreatorTool)) == 0 {
		it.CreatorTool = defaultTool
	}
	if len(strings.TrimSpace(it.Supplier)) == 0 {
		it.Supplier = defaultSupplier
	}
	if it.Now == nil {
		it.Now = time.Now
	}
	return it
}

// ValidationContext points at the element a message is about.
type ValidationContext struct {
	SPDXID   string
	ParentID string
	Element  string
}

type ValidationMessage struct {
	Message string
	Context ValidationContext
}

func (it ValidationMessage) String() string {
	return fmt.Sprintf("%s [spdx_id: %q, parent_id: %q, element: %s]", it.Message, it.Context.SPDXID, it.Context.ParentID, it.Context.Element)
}

// InvalidDocumentError is returned by Check when validation finds problems.
type InvalidDocumentError struct {
	Messages []ValidationMessage
}

func (it *InvalidDocumentError) Error() string {
	return fmt.Sprintf("document invalid, %d violations", len(it.Messages))
}
