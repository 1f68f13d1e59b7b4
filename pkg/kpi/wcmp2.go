package kpi

import (
	"encoding/json"
	"fmt"
	"strings"
)

const disciplineScheme = "https://codes.wmo.int/wis/topic-hierarchy/earth-system-discipline"

type wcmp2Record struct {
	ID         string `json:"id"`
	Time       any    `json:"time"`
	Properties struct {
		Title       string          `json:"title"`
		Description string          `json:"description"`
		DataPolicy  json.RawMessage `json:"wmo:dataPolicy"`
		Themes      []struct {
			Scheme string `json:"scheme"`
		} `json:"themes"`
		Contacts []json.RawMessage `json:"contacts"`
	} `json:"properties"`
	Links []struct {
		Href string `json:"href"`
		Rel  string `json:"rel"`
	} `json:"links"`
}

// EvaluateWCMP2 scores one WCMP2 (GeoJSON feature) document.
func EvaluateWCMP2(data []byte) (*Results, error) {
	var rec wcmp2Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding WCMP2 record: %w", err)
	}

	var scores []Score

	title := strings.TrimSpace(rec.Properties.Title)
	scores = append(scores, Score{
		ID:    "title",
		Name:  "descriptive title",
		Total: 2,
		Score: boolScore(title != "") + boolScore(len(strings.Fields(title)) >= 3),
	})

	description := strings.TrimSpace(rec.Properties.Description)
	scores = append(scores, Score{
		ID:    "description",
		Name:  "descriptive abstract",
		Total: 2,
		Score: boolScore(description != "") + boolScore(len(description) >= 50),
	})

	scores = append(scores, Score{
		ID:    "identifier",
		Name:  "conformant identifier",
		Total: 3,
		Score: boolScore(rec.ID != "") +
			boolScore(strings.HasPrefix(rec.ID, "urn:wmo:md:")) +
			boolScore(len(strings.Split(rec.ID, ":")) >= 5),
	})

	policy := dataPolicyString(rec.Properties.DataPolicy)
	scores = append(scores, Score{
		ID:    "data-policy",
		Name:  "data policy",
		Total: 2,
		Score: boolScore(policy != "") +
			boolScore(policy == "core" || policy == "recommended"),
	})

	hasDiscipline := false
	for _, theme := range rec.Properties.Themes {
		if theme.Scheme == disciplineScheme {
			hasDiscipline = true
			break
		}
	}
	scores = append(scores, Score{
		ID:    "themes",
		Name:  "themes and disciplines",
		Total: 2,
		Score: boolScore(len(rec.Properties.Themes) > 0) + boolScore(hasDiscipline),
	})

	hasUsableLink := false
	for _, link := range rec.Links {
		if link.Rel != "self" && strings.HasPrefix(link.Href, "http") {
			hasUsableLink = true
			break
		}
	}
	scores = append(scores, Score{
		ID:    "links",
		Name:  "actionable links",
		Total: 2,
		Score: boolScore(len(rec.Links) > 0) + boolScore(hasUsableLink),
	})

	scores = append(scores, Score{
		ID:    "contacts",
		Name:  "contacts",
		Total: 1,
		Score: boolScore(len(rec.Properties.Contacts) > 0),
	})

	scores = append(scores, Score{
		ID:    "temporal-extent",
		Name:  "temporal extent",
		Total: 1,
		Score: boolScore(rec.Time != nil),
	})

	return summarize(rec.ID, scores), nil
}

func dataPolicyString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Name
	}
	return ""
}

func boolScore(ok bool) int {
	if ok {
		return 1
	}
	return 0
}
