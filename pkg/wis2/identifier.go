package wis2

import "strings"

// CountryAndCentre derives the country and centre id from a WCMP2
// identifier (urn:wmo:md:<centre-id>:<local-id>, where centre-id is a
// compound <country>-<suffix>). Non-conformant identifiers fall back to
// dot-delimited splitting or to the first two colon segments.
//
// This heuristic is distinct from wis1.CitationAuthority and the two must
// not be unified: they target different catalogue generations with
// different identifier shapes. Never errors; unknown shapes degrade to
// best-effort tokens.
func CountryAndCentre(identifier string) (country, centre string) {
	if !strings.Contains(identifier, ":") {
		tokens := strings.Split(identifier, ".")
		if len(tokens) >= 2 {
			return tokens[0], tokens[1]
		}
		return identifier, identifier
	}

	tokens := strings.Split(identifier, ":")
	if len(tokens) < 5 {
		if len(tokens) >= 2 {
			return tokens[0], tokens[1]
		}
		return identifier, identifier
	}

	centre = tokens[3]
	if c, _, found := strings.Cut(centre, "-"); found {
		return c, centre
	}

	// older generation: country and centre as separate segments
	return tokens[3], tokens[4]
}

// CentreID returns the centre identifier segment of a WCMP2 identifier,
// or the empty string when the identifier has too few segments.
func CentreID(identifier string) string {
	tokens := strings.Split(identifier, ":")
	if len(tokens) > 3 {
		return tokens[3]
	}
	return ""
}
