package wis1

import (
	"fmt"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Record is a parsed WIS 1.0 (ISO 19139) metadata document. It is created
// per file for the duration of one search or grouping pass and never cached.
//
// XPath lookups match the prefixes as written in the document (gmd:, gco:),
// which is how WIS 1.0 records are published.
type Record struct {
	path string
	doc  *xmlquery.Node
}

// ParseRecord reads and parses the metadata document at path. Parsing is
// strict: malformed XML is an error and the caller decides whether to skip
// or abort (see ParsePolicy).
func ParseRecord(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &Record{path: path, doc: doc}, nil
}

// Path returns the file the record was parsed from.
func (r *Record) Path() string {
	return r.path
}

// AnyText returns the flattened full text of the document: every text node
// trimmed and joined with single spaces, document order preserved.
func (r *Record) AnyText() string {
	nodes, err := xmlquery.QueryAll(r.doc, "//text()")
	if err != nil {
		return ""
	}

	values := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if v := strings.TrimSpace(n.Data); v != "" {
			values = append(values, v)
		}
	}
	return strings.Join(values, " ")
}

// FileIdentifier returns the record's gmd:fileIdentifier, or the empty
// string when absent.
func (r *Record) FileIdentifier() string {
	n, err := xmlquery.Query(r.doc, "//gmd:fileIdentifier/gco:CharacterString")
	if err != nil || n == nil {
		return ""
	}
	return strings.TrimSpace(n.InnerText())
}

// PointOfContactOrg returns the organisation name of the first
// CI_ResponsibleParty block carrying the pointOfContact role code and a
// non-empty organisation name. Contact blocks without a name are skipped;
// processing stops at the first match.
func (r *Record) PointOfContactOrg() (string, bool) {
	contacts, err := xmlquery.QueryAll(r.doc, "//gmd:CI_ResponsibleParty")
	if err != nil {
		return "", false
	}

	for _, contact := range contacts {
		role, err := xmlquery.Query(contact,
			"gmd:role/gmd:CI_RoleCode[@codeListValue='pointOfContact']")
		if err != nil || role == nil {
			continue
		}

		name, err := xmlquery.Query(contact, "gmd:organisationName/gco:CharacterString")
		if err != nil || name == nil {
			continue
		}
		if org := strings.TrimSpace(name.InnerText()); org != "" {
			return org, true
		}
	}

	return "", false
}

// First returns the trimmed text of the first node matching expr, or the
// empty string when nothing matches.
func (r *Record) First(expr string) string {
	n, err := xmlquery.Query(r.doc, expr)
	if err != nil || n == nil {
		return ""
	}
	return strings.TrimSpace(n.InnerText())
}

// Count returns the number of nodes matching expr.
func (r *Record) Count(expr string) int {
	nodes, err := xmlquery.QueryAll(r.doc, expr)
	if err != nil {
		return 0
	}
	return len(nodes)
}
