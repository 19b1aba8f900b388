package sbom

import (
	"bytes"
	"fmt"

	"github.com/joshyorko/rpms2sbom/common"
	"github.com/spdx/tools-golang/spdx/v2/v2_3"
)

const (
	fingerprintLeft  = 0x72706d7332736264
	fingerprintRight = 0x6f6d2d696e76656e
)

// Fingerprint digests package identifiers and checksums in document order.
// Two runs over the same files give the same fingerprint regardless of the
// creation timestamp.
func Fingerprint(doc *v2_3.Document) string {
	var body bytes.Buffer
	for _, pkg := range doc.Packages {
		fmt.Fprintf(&body, "%s\x00", pkg.PackageSPDXIdentifier)
		for _, checksum := range pkg.PackageChecksums {
			fmt.Fprintf(&body, "%s:%s\x00", checksum.Algorithm, checksum.Value)
		}
	}
	return common.Digest128(fingerprintLeft, fingerprintRight, body.Bytes())
}
