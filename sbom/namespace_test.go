package sbom_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/joshyorko/rpms2sbom/hamlet"
	"github.com/joshyorko/rpms2sbom/sbom"
)

func TestUniqueNamespace(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	identity := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	must_be.Equal("https://rpm.sbom.example.com/RPM-SBOM-Manifest-6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		sbom.UniqueNamespaceWith("https://rpm.sbom.example.com/", "RPM SBOM Manifest", identity))

	first := sbom.UniqueNamespace("https://rpm.sbom.example.com", "inventory")
	second := sbom.UniqueNamespace("https://rpm.sbom.example.com", "inventory")
	wont_be.Equal(first, second)
	must_be.True(strings.HasPrefix(first, "https://rpm.sbom.example.com/inventory-"))

	config := testConfig()
	config.Namespace = first
	must_be.Empty(sbom.Validate(sbom.NewBuilder(config).Document()))
}
