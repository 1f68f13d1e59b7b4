package kpi

import (
	"testing"
)

const completeRecord = `{
	"id": "urn:wmo:md:zm-zmd:core.surface-based-observations.synop",
	"time": {"interval": ["2020-01-01", ".."]},
	"properties": {
		"title": "Surface observations from Zambia",
		"description": "Hourly surface-based SYNOP observations collected by the Zambia Meteorological Department.",
		"wmo:dataPolicy": "core",
		"themes": [{"scheme": "https://codes.wmo.int/wis/topic-hierarchy/earth-system-discipline"}],
		"contacts": [{"name": "ZMD"}]
	},
	"links": [
		{"rel": "self", "href": "https://example.org/self"},
		{"rel": "data", "href": "https://example.org/data"}
	]
}`

func TestEvaluateWCMP2CompleteRecord(t *testing.T) {
	results, err := EvaluateWCMP2([]byte(completeRecord))
	if err != nil {
		t.Fatalf("EvaluateWCMP2: %v", err)
	}

	if results.Identifier != "urn:wmo:md:zm-zmd:core.surface-based-observations.synop" {
		t.Errorf("Identifier = %q", results.Identifier)
	}
	if results.Summary.Percentage != 100 {
		t.Errorf("Percentage = %f, want 100", results.Summary.Percentage)
	}
	if results.Summary.Grade != "A" {
		t.Errorf("Grade = %q, want A", results.Summary.Grade)
	}
}

func TestEvaluateWCMP2SparseRecord(t *testing.T) {
	results, err := EvaluateWCMP2([]byte(`{"id": "x", "properties": {"title": "t"}}`))
	if err != nil {
		t.Fatalf("EvaluateWCMP2: %v", err)
	}

	if results.Summary.Percentage >= 50 {
		t.Errorf("sparse record scored %f, expected under 50", results.Summary.Percentage)
	}
	if results.Summary.Grade == "A" {
		t.Error("sparse record should not grade A")
	}
}

func TestEvaluateWCMP2Malformed(t *testing.T) {
	if _, err := EvaluateWCMP2([]byte(`{"id":`)); err == nil {
		t.Error("expected error for malformed record")
	}
}

func TestSummaryConsistency(t *testing.T) {
	results, err := EvaluateWCMP2([]byte(completeRecord))
	if err != nil {
		t.Fatal(err)
	}

	total, score := 0, 0
	for _, s := range results.Scores {
		total += s.Total
		score += s.Score
	}
	if total != results.Summary.Total || score != results.Summary.Score {
		t.Errorf("summary (%d/%d) does not match scores (%d/%d)",
			results.Summary.Score, results.Summary.Total, score, total)
	}
}

func TestResultsSelect(t *testing.T) {
	results, err := EvaluateWCMP2([]byte(completeRecord))
	if err != nil {
		t.Fatal(err)
	}

	score, err := results.Select(1)
	if err != nil {
		t.Fatalf("Select(1): %v", err)
	}
	if score.ID != "title" {
		t.Errorf("Select(1).ID = %q, want title", score.ID)
	}

	if _, err := results.Select(0); err == nil {
		t.Error("Select(0) should fail")
	}
	if _, err := results.Select(len(results.Scores) + 1); err == nil {
		t.Error("Select out of range should fail")
	}
}

func TestGradeBands(t *testing.T) {
	tests := []struct {
		percentage float64
		expected   string
	}{
		{100, "A"},
		{90, "A"},
		{80, "B"},
		{65, "C"},
		{50, "D"},
		{35, "E"},
		{10, "F"},
	}

	for _, tt := range tests {
		if got := grade(tt.percentage); got != tt.expected {
			t.Errorf("grade(%f) = %q, want %q", tt.percentage, got, tt.expected)
		}
	}
}
