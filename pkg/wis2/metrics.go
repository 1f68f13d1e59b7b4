package wis2

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wmo-im/wiscat/pkg/kpi"
)

// EarthSystemDisciplineScheme is the WIS topic hierarchy scheme the
// discipline analysis counts concepts for.
const EarthSystemDisciplineScheme = "https://codes.wmo.int/wis/topic-hierarchy/earth-system-discipline"

// wcmp2Summary is the subset of a WCMP2 document the analyses read.
type wcmp2Summary struct {
	ID         string `json:"id"`
	Properties struct {
		DataPolicy json.RawMessage `json:"wmo:dataPolicy"`
		Themes     []struct {
			Scheme   string `json:"scheme"`
			Concepts []struct {
				ID string `json:"id"`
			} `json:"concepts"`
		} `json:"themes"`
	} `json:"properties"`
}

// forEachRecord reads every *.json WCMP2 document under archiveDir.
// Unreadable or malformed documents are logged and skipped so one bad
// record does not sink the analysis.
func forEachRecord(archiveDir string, fn func(path string, rec *wcmp2Summary)) error {
	files, err := filepath.Glob(filepath.Join(archiveDir, "*.json"))
	if err != nil {
		return fmt.Errorf("listing %s: %w", archiveDir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no WCMP2 records found in %s", archiveDir)
	}

	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			logger.Errorf("skipping %s: %v", f, err)
			continue
		}

		var rec wcmp2Summary
		if err := json.Unmarshal(data, &rec); err != nil {
			logger.Errorf("skipping %s: %v", f, err)
			continue
		}

		fn(f, &rec)
	}

	return nil
}

// AnalyzeDataPolicy counts records carrying the given data policy, keyed
// by centre identifier.
func AnalyzeDataPolicy(archiveDir, dataPolicy string) (map[string]int, error) {
	logger.Debugf("analyzing %s for %s records", archiveDir, dataPolicy)

	report := map[string]int{}
	err := forEachRecord(archiveDir, func(_ string, rec *wcmp2Summary) {
		if dataPolicyLabel(rec.Properties.DataPolicy) == dataPolicy {
			report[CentreID(rec.ID)]++
		}
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// AnalyzeEarthSystemDiscipline counts earth-system-discipline concepts per
// centre identifier.
func AnalyzeEarthSystemDiscipline(archiveDir string) (map[string]map[string]int, error) {
	logger.Debugf("analyzing %s for Earth system disciplines", archiveDir)

	report := map[string]map[string]int{}
	err := forEachRecord(archiveDir, func(_ string, rec *wcmp2Summary) {
		centreID := CentreID(rec.ID)
		for _, theme := range rec.Properties.Themes {
			if theme.Scheme != EarthSystemDisciplineScheme {
				continue
			}
			for _, concept := range theme.Concepts {
				logger.Debugf("concept: %s", concept.ID)
				if report[centreID] == nil {
					report[centreID] = map[string]int{}
				}
				report[centreID][concept.ID]++
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// KPIReport aggregates quality scores for one centre.
type KPIReport struct {
	AverageScore float64            `json:"kpi_percentage_average"`
	Over80       int                `json:"kpi_percentage_over80_total"`
	Scoring      map[string]float64 `json:"scoring"`
}

// AnalyzeKPI scores every record of the given centre (matched by file
// name) and aggregates the average percentage and the number of records
// scoring over 80.
func AnalyzeKPI(archiveDir, centreID string) (*KPIReport, error) {
	logger.Debugf("analyzing KPIs for %s", centreID)

	report := &KPIReport{Scoring: map[string]float64{}}

	files, err := filepath.Glob(filepath.Join(archiveDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", archiveDir, err)
	}

	for _, f := range files {
		if !strings.Contains(filepath.Base(f), centreID) {
			continue
		}

		data, err := os.ReadFile(f)
		if err != nil {
			logger.Errorf("skipping %s: %v", f, err)
			continue
		}

		results, err := kpi.EvaluateWCMP2(data)
		if err != nil {
			logger.Errorf("skipping %s: %v", f, err)
			continue
		}

		report.Scoring[results.Identifier] = results.Summary.Percentage
	}

	if len(report.Scoring) == 0 {
		return nil, fmt.Errorf("no records found for centre %s in %s", centreID, archiveDir)
	}

	total := 0.0
	for _, percentage := range report.Scoring {
		total += percentage
		if percentage > 80 {
			report.Over80++
		}
	}
	report.AverageScore = total / float64(len(report.Scoring))

	return report, nil
}
