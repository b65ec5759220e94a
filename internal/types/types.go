package types

import (
	"gutlog-api/internal/analysis"
	"gutlog-api/internal/model"
	"gutlog-api/internal/stats"
)

// EntryBody is the writable subset of a daily entry. The label fields are
// absent on purpose: they are derived server-side from their numeric sources.
// Tags use go-zero's ",optional" so a partial body parses; model.DailyEntry
// keeps ",omitempty" for storage serialization.
type EntryBody struct {
	SymptomSeverity    *int     `json:"symptom_severity,optional"`
	SymptomDescription string   `json:"symptom_description,optional"`
	Symptoms           []string `json:"symptoms,optional"`
	SleepHours         *float64 `json:"sleep_hours,optional"`
	SleepQuality       *int     `json:"sleep_quality,optional"`
	Meals              string   `json:"meals,optional"`
	MealSpeed          string   `json:"meal_speed,optional"`
	WaterIntake        *float64 `json:"water_intake,optional"`
	StressLevel        *int     `json:"stress_level,optional"`
	StressType         string   `json:"stress_type,optional"`
	ExerciseMinutes    *int     `json:"exercise_minutes,optional"`
	BowelFrequency     *int     `json:"bowel_frequency,optional"`
	StoolType          *int     `json:"stool_type,optional"`
	Notes              string   `json:"notes,optional"`
	RecordedAt         string   `json:"recorded_at,optional"`
}

// Entry maps the request body onto the storage model.
func (b *EntryBody) Entry() model.DailyEntry {
	return model.DailyEntry{
		SymptomSeverity:    b.SymptomSeverity,
		SymptomDescription: b.SymptomDescription,
		Symptoms:           b.Symptoms,
		SleepHours:         b.SleepHours,
		SleepQuality:       b.SleepQuality,
		Meals:              b.Meals,
		MealSpeed:          b.MealSpeed,
		WaterIntake:        b.WaterIntake,
		StressLevel:        b.StressLevel,
		StressType:         b.StressType,
		ExerciseMinutes:    b.ExerciseMinutes,
		BowelFrequency:     b.BowelFrequency,
		StoolType:          b.StoolType,
		Notes:              b.Notes,
		RecordedAt:         b.RecordedAt,
	}
}

type SaveEntryReq struct {
	Date string `path:"date"`
	EntryBody
}

type SaveEntryResp struct {
	Date  string           `json:"date"`
	Entry model.DailyEntry `json:"entry"`
}

type GetEntryReq struct {
	Date string `path:"date"`
}

type GetEntryResp struct {
	Date  string            `json:"date"`
	Found bool              `json:"found"`
	Entry *model.DailyEntry `json:"entry,omitempty"`
}

type DeleteEntryReq struct {
	Date string `path:"date"`
}

type DeleteEntryResp struct {
	Date    string `json:"date"`
	Deleted bool   `json:"deleted"`
}

type DateRangeReq struct {
	// Zero falls back to the configured RangeDays.
	Days int `form:"days,optional"`
}

type DateRangeResp struct {
	Days    int            `json:"days"`
	Entries model.Document `json:"entries"`
}

type StatisticsResp struct {
	stats.Summary
}

type TriggerFoodsReq struct {
	// Zero values fall back to the configured RangeDays and TriggerThreshold.
	Days      int `form:"days,optional"`
	Threshold int `form:"threshold,optional"`
}

type TriggerFoodsResp struct {
	Threshold int               `json:"threshold"`
	Triggers  map[string]string `json:"triggers"`
}

type TrendsReq struct {
	Window int `form:"window,default=7"`
}

type TrendsResp struct {
	Window       int                 `json:"window"`
	Points       []stats.TrendPoint  `json:"points"`
	Correlations []stats.Correlation `json:"correlations"`
}

type DailyAnalysisReq struct {
	Date string `json:"date,optional"`
}

type DailyAnalysisResp struct {
	Date   string               `json:"date"`
	Report analysis.DailyReport `json:"report"`
}

type WeeklyAnalysisReq struct {
	Days int `json:"days,optional"`
}

type WeeklyAnalysisResp struct {
	Days   int                   `json:"days"`
	Report analysis.WeeklyReport `json:"report"`
}
