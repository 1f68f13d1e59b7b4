package wis2

import "testing"

func TestCountryAndCentre(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		country    string
		centre     string
	}{
		{
			name:       "compound centre id",
			identifier: "urn:wmo:md:zm-zmd:core.surface-based-observations.synop",
			country:    "zm",
			centre:     "zm-zmd",
		},
		{
			name:       "multi-part compound centre id",
			identifier: "urn:wmo:md:ca-eccc-msc:weather.observations",
			country:    "ca",
			centre:     "ca-eccc-msc",
		},
		{
			name:       "separate country and centre segments",
			identifier: "urn:wmo:md:canada:eccc:observations",
			country:    "canada",
			centre:     "eccc",
		},
		{
			name:       "dot-delimited fallback",
			identifier: "de.dwd.mss.surface",
			country:    "de",
			centre:     "dwd",
		},
		{
			name:       "short colon-delimited fallback",
			identifier: "urn:wmo:md",
			country:    "urn",
			centre:     "wmo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			country, centre := CountryAndCentre(tt.identifier)
			if country != tt.country || centre != tt.centre {
				t.Errorf("CountryAndCentre(%q) = (%q, %q), want (%q, %q)",
					tt.identifier, country, centre, tt.country, tt.centre)
			}
		})
	}
}

func TestCentreID(t *testing.T) {
	tests := []struct {
		identifier string
		expected   string
	}{
		{"urn:wmo:md:zm-zmd:core.surface-based-observations.synop", "zm-zmd"},
		{"urn:wmo:md:ca-eccc-msc:x", "ca-eccc-msc"},
		{"urn:wmo:md", ""},
		{"no-colons-at-all", ""},
	}

	for _, tt := range tests {
		if got := CentreID(tt.identifier); got != tt.expected {
			t.Errorf("CentreID(%q) = %q, want %q", tt.identifier, got, tt.expected)
		}
	}
}
