package wis2

import (
	"os"
	"path/filepath"
	"testing"
)

func writeWCMP2(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing WCMP2 fixture: %v", err)
	}
}

func newArchiveDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeWCMP2(t, dir, "urn-wmo-md-zm-zmd-synop.json", `{
		"id": "urn:wmo:md:zm-zmd:synop",
		"properties": {
			"title": "Surface observations from Zambia",
			"description": "Hourly surface-based SYNOP observations from the Zambia Meteorological Department.",
			"wmo:dataPolicy": "core",
			"themes": [{
				"scheme": "https://codes.wmo.int/wis/topic-hierarchy/earth-system-discipline",
				"concepts": [{"id": "weather"}]
			}],
			"contacts": [{"name": "ZMD"}]
		},
		"time": {"interval": ["2020-01-01", ".."]},
		"links": [{"rel": "data", "href": "https://example.org/data"}]
	}`)

	writeWCMP2(t, dir, "urn-wmo-md-zm-zmd-climate.json", `{
		"id": "urn:wmo:md:zm-zmd:climate",
		"properties": {
			"title": "Climate summaries",
			"wmo:dataPolicy": "recommended",
			"themes": [{
				"scheme": "https://codes.wmo.int/wis/topic-hierarchy/earth-system-discipline",
				"concepts": [{"id": "climate"}, {"id": "weather"}]
			}]
		}
	}`)

	writeWCMP2(t, dir, "urn-wmo-md-de-dwd-forecast.json", `{
		"id": "urn:wmo:md:de-dwd:forecast",
		"properties": {
			"title": "Forecast fields",
			"wmo:dataPolicy": "core",
			"themes": []
		}
	}`)

	// malformed record, skipped by every analysis
	writeWCMP2(t, dir, "broken.json", `{"id": "urn:wmo:md:xx-yyy:z",`)

	return dir
}

func TestAnalyzeDataPolicy(t *testing.T) {
	dir := newArchiveDir(t)

	core, err := AnalyzeDataPolicy(dir, "core")
	if err != nil {
		t.Fatalf("AnalyzeDataPolicy: %v", err)
	}
	if core["zm-zmd"] != 1 || core["de-dwd"] != 1 {
		t.Errorf("core counts = %v, want zm-zmd:1 de-dwd:1", core)
	}

	recommended, err := AnalyzeDataPolicy(dir, "recommended")
	if err != nil {
		t.Fatal(err)
	}
	if recommended["zm-zmd"] != 1 || len(recommended) != 1 {
		t.Errorf("recommended counts = %v, want zm-zmd:1 only", recommended)
	}
}

func TestAnalyzeDataPolicyEmptyDir(t *testing.T) {
	if _, err := AnalyzeDataPolicy(t.TempDir(), "core"); err == nil {
		t.Error("expected error for directory without records")
	}
}

func TestAnalyzeEarthSystemDiscipline(t *testing.T) {
	dir := newArchiveDir(t)

	report, err := AnalyzeEarthSystemDiscipline(dir)
	if err != nil {
		t.Fatalf("AnalyzeEarthSystemDiscipline: %v", err)
	}

	if report["zm-zmd"]["weather"] != 2 {
		t.Errorf("zm-zmd/weather = %d, want 2", report["zm-zmd"]["weather"])
	}
	if report["zm-zmd"]["climate"] != 1 {
		t.Errorf("zm-zmd/climate = %d, want 1", report["zm-zmd"]["climate"])
	}
	if _, ok := report["de-dwd"]; ok {
		t.Error("de-dwd has no discipline themes, should be absent")
	}
}

func TestAnalyzeKPI(t *testing.T) {
	dir := newArchiveDir(t)

	report, err := AnalyzeKPI(dir, "zm-zmd")
	if err != nil {
		t.Fatalf("AnalyzeKPI: %v", err)
	}

	if len(report.Scoring) != 2 {
		t.Fatalf("Scoring has %d entries, want 2: %v", len(report.Scoring), report.Scoring)
	}

	full := report.Scoring["urn:wmo:md:zm-zmd:synop"]
	sparse := report.Scoring["urn:wmo:md:zm-zmd:climate"]
	if full <= sparse {
		t.Errorf("complete record (%0.1f) should outscore sparse record (%0.1f)", full, sparse)
	}

	sum := 0.0
	for _, p := range report.Scoring {
		sum += p
	}
	if avg := sum / 2; report.AverageScore != avg {
		t.Errorf("AverageScore = %f, want %f", report.AverageScore, avg)
	}
}

func TestAnalyzeKPIUnknownCentre(t *testing.T) {
	dir := newArchiveDir(t)
	if _, err := AnalyzeKPI(dir, "xx-none"); err == nil {
		t.Error("expected error for centre without records")
	}
}
