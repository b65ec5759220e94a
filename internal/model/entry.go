package model

import (
	"errors"
	"fmt"
	"time"
)

// DateKey is the calendar-date format used as the document key.
const DateKey = "2006-01-02"

// DailyEntry is one date's full set of tracked health fields. Numeric fields
// are pointers so that "never recorded" survives a round trip and stays out of
// the averages; zero is a legal recorded value only where the domain allows it.
type DailyEntry struct {
	SymptomSeverity      *int     `json:"symptom_severity,omitempty"`
	SymptomSeverityLabel string   `json:"symptom_severity_label,omitempty"`
	SymptomDescription   string   `json:"symptom_description,omitempty"`
	Symptoms             []string `json:"symptoms,omitempty"`

	SleepHours        *float64 `json:"sleep_hours,omitempty"`
	SleepQuality      *int     `json:"sleep_quality,omitempty"`
	SleepQualityLabel string   `json:"sleep_quality_label,omitempty"`

	Meals       string   `json:"meals,omitempty"`
	MealSpeed   string   `json:"meal_speed,omitempty"`
	WaterIntake *float64 `json:"water_intake,omitempty"`

	StressLevel      *int   `json:"stress_level,omitempty"`
	StressLevelLabel string `json:"stress_level_label,omitempty"`
	StressType       string `json:"stress_type,omitempty"`

	Exercise        string `json:"exercise,omitempty"`
	ExerciseMinutes *int   `json:"exercise_minutes,omitempty"`

	BowelFrequency   *int   `json:"bowel_frequency,omitempty"`
	StoolType        *int   `json:"stool_type,omitempty"`
	StoolConsistency string `json:"stool_consistency,omitempty"`

	Notes      string `json:"notes,omitempty"`
	RecordedAt string `json:"recorded_at,omitempty"`
}

// Document is the complete date→entry mapping, the unit of persistence.
type Document map[string]DailyEntry

// Clone returns a deep-enough copy for callers that mutate entries.
func (d Document) Clone() Document {
	cp := make(Document, len(d))
	for k, v := range d {
		cp[k] = v
	}
	return cp
}

// ValidateDate reports whether key is a well-formed YYYY-MM-DD date.
func ValidateDate(key string) error {
	if _, err := time.Parse(DateKey, key); err != nil {
		return fmt.Errorf("invalid date key %q: want YYYY-MM-DD", key)
	}
	return nil
}

// Validate checks every set field against its declared domain. It belongs to
// the input layer; the store persists whatever it is given.
func (e *DailyEntry) Validate() error {
	if e.SymptomDescription == "" {
		return errors.New("symptom_description is required")
	}
	if err := inRange("symptom_severity", e.SymptomSeverity, 1, 10); err != nil {
		return err
	}
	if err := inRange("sleep_quality", e.SleepQuality, 1, 10); err != nil {
		return err
	}
	if err := inRange("stress_level", e.StressLevel, 1, 10); err != nil {
		return err
	}
	if err := inRange("stool_type", e.StoolType, 1, 7); err != nil {
		return err
	}
	if err := inRange("bowel_frequency", e.BowelFrequency, 0, 10); err != nil {
		return err
	}
	if err := inRange("exercise_minutes", e.ExerciseMinutes, 0, 180); err != nil {
		return err
	}
	if e.SleepHours != nil && (*e.SleepHours < 0.5 || *e.SleepHours > 12) {
		return fmt.Errorf("sleep_hours %.1f out of range [0.5, 12]", *e.SleepHours)
	}
	if e.WaterIntake != nil && (*e.WaterIntake < 0 || *e.WaterIntake > 5) {
		return fmt.Errorf("water_intake %.1f out of range [0, 5]", *e.WaterIntake)
	}
	return nil
}

// ApplyLabels derives the display-label fields from their numeric sources.
// Existing labels are overwritten so they can never drift from the numbers.
func (e *DailyEntry) ApplyLabels() {
	if e.SymptomSeverity != nil {
		e.SymptomSeverityLabel = SeverityLabels[*e.SymptomSeverity]
	}
	if e.SleepQuality != nil {
		e.SleepQualityLabel = SleepQualityLabels[*e.SleepQuality]
	}
	if e.StressLevel != nil {
		e.StressLevelLabel = StressLevelLabels[*e.StressLevel]
	}
	if e.StoolType != nil {
		e.StoolConsistency = BristolScale[*e.StoolType]
	}
	e.Exercise = ExerciseLabel(e.ExerciseMinutes)
}

func inRange(name string, v *int, lo, hi int) error {
	if v == nil {
		return nil
	}
	if *v < lo || *v > hi {
		return fmt.Errorf("%s %d out of range [%d, %d]", name, *v, lo, hi)
	}
	return nil
}

// Int and Float build pointers for literal field values.
func Int(v int) *int { return &v }

func Float(v float64) *float64 { return &v }
