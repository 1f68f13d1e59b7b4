package wis1

import "strings"

// CitationAuthority extracts the citation authority from a WIS 1.0 file
// identifier of the form urn:<authority>:<type>:<citation-authority>:...
//
// This is a heuristic split, not URN validation: identifiers with three or
// fewer colon-delimited segments yield the empty string and callers must
// treat that as "authority unknown". Not interchangeable with the WCMP2
// identifier parsing in pkg/wis2.
func CitationAuthority(fileIdentifier string) string {
	components := strings.Split(fileIdentifier, ":")
	if len(components) > 3 {
		return components[3]
	}
	return ""
}
