package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wmo-im/wiscat/pkg/render"
	"github.com/wmo-im/wiscat/pkg/wis2"
)

var descriptionStyle = lipgloss.NewStyle().
	Width(72).
	MarginLeft(8)

// skipRels are navigation links not worth showing in the detail view.
var skipRels = map[string]bool{
	"root":       true,
	"self":       true,
	"alternate":  true,
	"collection": true,
}

// echoJSON prints v as indented JSON.
func echoJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// renderRecordDetail lays out one catalogue record for `gdc get`.
func renderRecordDetail(rec *wis2.FullRecord) string {
	var b strings.Builder

	country, centre := wis2.CountryAndCentre(rec.ID)

	fmt.Fprintf(&b, "Record: %s\n\n", rec.Title)
	fmt.Fprintf(&b, "\tID: %s\n\n", rec.ID)
	if pretty := render.Country(country); pretty != "" {
		fmt.Fprintf(&b, "\tCountry: %s\n\n", pretty)
	}
	fmt.Fprintf(&b, "\tCentre: %s\n\n", centre)
	fmt.Fprintf(&b, "\tData policy: %s\n\n", rec.DataPolicy)

	if rec.Description != "" {
		b.WriteString("\tDescription:\n")
		b.WriteString(descriptionStyle.Render(rec.Description))
		b.WriteString("\n\n")
	}

	b.WriteString("\tLinks:\n")
	for _, link := range rec.Links {
		if !skipRels[link.Rel] {
			fmt.Fprintf(&b, "\t\t%s\n", link.Href)
		}
	}

	fmt.Fprintf(&b, "\n\tURL to full metadata: %s\n", rec.URL)

	return b.String()
}
