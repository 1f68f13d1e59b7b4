// Package kpi grades the completeness of a metadata record against a set
// of key performance indicators. The scoring rubric is intentionally
// self-contained: callers treat the evaluators as opaque graders and only
// consume the resulting percentages and grades.
package kpi

import "fmt"

// Score is the outcome of one indicator.
type Score struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Total      int     `json:"total"`
	Score      int     `json:"score"`
	Percentage float64 `json:"percentage"`
}

// Summary aggregates all indicator scores of one record.
type Summary struct {
	Total      int     `json:"total"`
	Score      int     `json:"score"`
	Percentage float64 `json:"percentage"`
	Grade      string  `json:"grade"`
}

// Results carries the per-indicator scores and summary for one record.
type Results struct {
	Identifier string  `json:"identifier"`
	Scores     []Score `json:"scores"`
	Summary    Summary `json:"summary"`
}

// Select returns the n-th indicator (1-based), for runs that evaluate a
// single KPI.
func (r *Results) Select(n int) (*Score, error) {
	if n < 1 || n > len(r.Scores) {
		return nil, fmt.Errorf("invalid KPI %d: must be between 1 and %d", n, len(r.Scores))
	}
	return &r.Scores[n-1], nil
}

// grade maps a percentage onto a letter grade.
func grade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 75:
		return "B"
	case percentage >= 60:
		return "C"
	case percentage >= 45:
		return "D"
	case percentage >= 30:
		return "E"
	default:
		return "F"
	}
}

// summarize fills in percentages and the summary from raw scores.
func summarize(identifier string, scores []Score) *Results {
	summary := Summary{}
	for i := range scores {
		if scores[i].Total > 0 {
			scores[i].Percentage = float64(scores[i].Score) / float64(scores[i].Total) * 100
		}
		summary.Total += scores[i].Total
		summary.Score += scores[i].Score
	}
	if summary.Total > 0 {
		summary.Percentage = float64(summary.Score) / float64(summary.Total) * 100
	}
	summary.Grade = grade(summary.Percentage)

	return &Results{
		Identifier: identifier,
		Scores:     scores,
		Summary:    summary,
	}
}
