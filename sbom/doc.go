// Package sbom assembles, validates and serializes SPDX 2.3 documents
// describing RPM packages.
package sbom
