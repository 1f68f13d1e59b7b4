package wis1

// Tally counts matching documents per organization name, as extracted
// (case-sensitive). Counts are commutative; treat the map as unordered.
type Tally map[string]int

// Total returns the sum of all counts.
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// GroupByOriginator tallies the point-of-contact organization of each
// record in fileList. Records that fail to parse or have no usable
// point-of-contact organisation name are logged and skipped; the batch
// never fails as a whole. Each record increments at most one count.
func GroupByOriginator(fileList []string) Tally {
	results := Tally{}

	for _, path := range fileList {
		org, _, ok := extractOriginator(path)
		if !ok {
			continue
		}
		results[org]++
	}

	return results
}

// GroupByAuthority tallies like GroupByOriginator but nests organizations
// under the citation authority derived from each record's file identifier.
// Records whose identifier yields no authority land under the empty key.
func GroupByAuthority(fileList []string) map[string]Tally {
	results := map[string]Tally{}

	for _, path := range fileList {
		org, authority, ok := extractOriginator(path)
		if !ok {
			continue
		}
		if results[authority] == nil {
			results[authority] = Tally{}
		}
		results[authority][org]++
	}

	return results
}

// extractOriginator parses one record and returns its point-of-contact
// organization and citation authority. ok is false when the record cannot
// be parsed or carries no usable organization name.
func extractOriginator(path string) (org, authority string, ok bool) {
	logger.Debugf("analyzing %s", path)

	record, err := ParseRecord(path)
	if err != nil {
		logger.Errorf("error analyzing %s: %v", path, err)
		return "", "", false
	}

	org, found := record.PointOfContactOrg()
	if !found {
		logger.Infof("no pointOfContact organisation found in %s", path)
		return "", "", false
	}

	return org, CitationAuthority(record.FileIdentifier()), true
}
