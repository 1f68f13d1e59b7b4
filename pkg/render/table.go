package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wmo-im/wiscat/pkg/wis2"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214")).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// ResultsTable renders catalogue search results as a bordered table. The
// topic column only appears when at least one record carries a topic.
func ResultsTable(results *wis2.SearchResults) string {
	withTopic := false
	for _, r := range results.Records {
		if r.Topic != "" {
			withTopic = true
			break
		}
	}

	headers := []string{"id", "centre", "title", "data policy"}
	if withTopic {
		headers = []string{"id", "centre", "title", "topic", "data policy"}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	for _, r := range results.Records {
		if withTopic {
			t.Row(r.ID, r.Centre, r.Title, r.Topic, r.DataPolicy)
		} else {
			t.Row(r.ID, r.Centre, r.Title, r.DataPolicy)
		}
	}

	return t.Render()
}
