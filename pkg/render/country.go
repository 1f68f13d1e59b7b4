// Package render turns catalogue query results into terminal output:
// styled tables for listings and prettified country labels for the
// record detail view.
package render

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Country expands an ISO 3166 alpha-2 code into "<name> <flag emoji>".
// Unknown or non-country codes yield the empty string.
func Country(code string) string {
	if len(code) != 2 {
		return ""
	}

	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() {
		return ""
	}

	name := display.English.Regions().Name(region)
	if name == "" {
		return ""
	}

	return name + " " + flagEmoji(region.String())
}

// flagEmoji maps an uppercase alpha-2 code onto regional indicator runes.
func flagEmoji(alpha2 string) string {
	var b strings.Builder
	for _, r := range alpha2 {
		if r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + r - 'A')
	}
	return b.String()
}
