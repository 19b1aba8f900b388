// Package rpm reads the package metadata needed for an SBOM entry from RPM
// files, either by asking the rpm utility or by parsing the header natively.
package rpm
