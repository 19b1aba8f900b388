package sbom

import (
	"strings"

	"github.com/google/uuid"
)

// UniqueNamespace appends a document specific path to base, giving every
// generated document its own namespace URI.
func UniqueNamespace(base, documentName string) string {
	return UniqueNamespaceWith(base, documentName, uuid.New())
}

func UniqueNamespaceWith(base, documentName string, identity uuid.UUID) string {
	return strings.TrimRight(base, "/") + "/" + SanitizeID(documentName) + "-" + identity.String()
}
