// Package export flattens the journal document into downloadable CSV and JSON.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"gutlog-api/internal/model"
	"gutlog-api/internal/stats"
)

// Columns is the fixed CSV column order, date first.
var Columns = []string{
	"date",
	"symptom_severity",
	"symptom_severity_label",
	"symptom_description",
	"sleep_hours",
	"sleep_quality",
	"sleep_quality_label",
	"meals",
	"stress_level",
	"stress_level_label",
	"stress_type",
	"exercise",
	"exercise_minutes",
	"bowel_frequency",
	"stool_consistency",
	"water_intake",
	"notes",
}

// CSV renders the document as a header row plus one row per date, dates
// ascending. encoding/csv quotes embedded commas, quotes, and newlines, so
// free-text fields survive a round trip through spreadsheet tools.
func CSV(doc model.Document) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns); err != nil {
		return "", fmt.Errorf("export: write csv header: %w", err)
	}
	for _, date := range stats.SortedDates(doc) {
		if err := w.Write(row(date, doc[date])); err != nil {
			return "", fmt.Errorf("export: write csv row %s: %w", date, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("export: flush csv: %w", err)
	}
	return buf.String(), nil
}

// JSON renders the full document in the same indented form the store writes,
// so an exported file can be dropped back in as the backing file.
func JSON(doc model.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode document: %w", err)
	}
	return data, nil
}

func row(date string, e model.DailyEntry) []string {
	return []string{
		date,
		intCol(e.SymptomSeverity),
		e.SymptomSeverityLabel,
		e.SymptomDescription,
		floatCol(e.SleepHours),
		intCol(e.SleepQuality),
		e.SleepQualityLabel,
		e.Meals,
		intCol(e.StressLevel),
		e.StressLevelLabel,
		e.StressType,
		e.Exercise,
		intCol(e.ExerciseMinutes),
		intCol(e.BowelFrequency),
		e.StoolConsistency,
		floatCol(e.WaterIntake),
		e.Notes,
	}
}

func intCol(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatCol(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
