// Package wis1 implements the local WIS 1.0 catalogue pipeline: walking a
// directory of ISO 19139 XML records, flattening their text, matching
// search terms and grouping matches by originating organization.
package wis1

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/wmo-im/wiscat/pkg/archive"
	"github.com/wmo-im/wiscat/pkg/log"
)

var logger = log.ForService("wis1")

// ParsePolicy controls what happens when a metadata document fails to
// parse during a multi-file pass.
type ParsePolicy int

const (
	// PolicyAbort stops the whole run on the first parse failure.
	PolicyAbort ParsePolicy = iota
	// PolicySkip logs the failure and continues with the remaining files.
	PolicySkip
)

// CreateFileList walks the directory tree and returns the paths of all
// files ending in .xml, in walk order. Directories and other files are
// skipped silently; a missing or unreadable root is an error.
func CreateFileList(directory string) ([]string, error) {
	var fileList []string

	logger.Debugf("walking directory %s", directory)
	err := filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".xml") {
			fileList = append(fileList, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", directory, err)
	}

	return fileList, nil
}

// MatchesTerms reports whether every term occurs as a case-folded
// substring of the case-folded text. An empty term set matches anything.
func MatchesTerms(text string, terms []string) bool {
	folded := cases.Fold().String(text)
	for _, term := range terms {
		if !strings.Contains(folded, cases.Fold().String(term)) {
			return false
		}
	}
	return true
}

// SearchFilesByTerm searches the directory tree for records whose
// flattened text contains every term. Results preserve walk order. The
// policy decides whether a parse failure aborts the search or skips the
// offending file.
func SearchFilesByTerm(directory string, terms []string, policy ParsePolicy) ([]string, error) {
	fileList, err := CreateFileList(directory)
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, filename := range fileList {
		logger.Debugf("searching %s", filename)

		record, err := ParseRecord(filename)
		if err != nil {
			if policy == PolicySkip {
				logger.Errorf("skipping %s: %v", filename, err)
				continue
			}
			return nil, err
		}

		if MatchesTerms(record.AnyText(), terms) {
			logger.Debugf("found match #%d", len(matches)+1)
			matches = append(matches, filename)
		}
	}

	logger.Debugf("found %d matching metadata records", len(matches))
	return matches, nil
}

// CacheCatalogue downloads the WIS 1.0 catalogue archive (a gzipped tar)
// from url and extracts it under directory, creating it if needed. The
// timeout bounds the whole download, like the GDC client's HTTP timeout.
func CacheCatalogue(url, directory string, timeout time.Duration) error {
	logger.Debugf("downloading WIS 1.0 catalogue from %s", url)

	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", directory, err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("downloading catalogue: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading catalogue: unexpected status %s", resp.Status)
	}

	if err := archive.ExtractTarGz(resp.Body, directory); err != nil {
		return fmt.Errorf("extracting catalogue: %w", err)
	}

	return nil
}
