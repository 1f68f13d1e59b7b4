package kpi

import (
	"github.com/wmo-im/wiscat/pkg/wis1"
)

// EvaluateWIS1 scores one WIS 1.0 (ISO 19139) metadata record.
func EvaluateWIS1(rec *wis1.Record) *Results {
	var scores []Score

	identifier := rec.FileIdentifier()
	scores = append(scores, Score{
		ID:    "identifier",
		Name:  "file identifier",
		Total: 2,
		Score: boolScore(identifier != "") +
			boolScore(wis1.CitationAuthority(identifier) != ""),
	})

	_, hasContact := rec.PointOfContactOrg()
	scores = append(scores, Score{
		ID:    "point-of-contact",
		Name:  "point of contact organisation",
		Total: 1,
		Score: boolScore(hasContact),
	})

	abstract := rec.First("//gmd:abstract/gco:CharacterString")
	scores = append(scores, Score{
		ID:    "abstract",
		Name:  "descriptive abstract",
		Total: 2,
		Score: boolScore(abstract != "") + boolScore(len(abstract) >= 50),
	})

	keywords := rec.Count("//gmd:MD_Keywords/gmd:keyword")
	scores = append(scores, Score{
		ID:    "keywords",
		Name:  "keywords",
		Total: 2,
		Score: boolScore(keywords >= 1) + boolScore(keywords >= 3),
	})

	scores = append(scores, Score{
		ID:    "geographic-extent",
		Name:  "geographic bounding box",
		Total: 1,
		Score: boolScore(rec.Count("//gmd:EX_GeographicBoundingBox") > 0),
	})

	scores = append(scores, Score{
		ID:    "graphic-overview",
		Name:  "graphic overview",
		Total: 1,
		Score: boolScore(rec.Count("//gmd:graphicOverview") > 0),
	})

	return summarize(identifier, scores)
}
