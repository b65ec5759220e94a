package analysis

// DailyReport is the structured verdict for a single day's log.
type DailyReport struct {
	WellnessScore   int      `json:"wellness_score" description:"Overall wellness 1-100"`
	Summary         string   `json:"summary" description:"Concise summary of the day"`
	Triggers        []string `json:"triggers" description:"Potential symptom triggers"`
	Recommendations []string `json:"recommendations" description:"Actionable tips"`
}

// TriggerFinding names a suspected trigger with the model's confidence.
type TriggerFinding struct {
	Trigger    string `json:"trigger"`
	Confidence string `json:"confidence" description:"High, Medium, or Low"`
}

// WeeklyReport is the structured verdict over a week of logs.
type WeeklyReport struct {
	WellnessScore      int              `json:"wellness_score" description:"Average wellness 1-100"`
	TrendAnalysis      string           `json:"trend_analysis" description:"Symptom and lifestyle trends"`
	IdentifiedTriggers []TriggerFinding `json:"identified_triggers"`
	Recommendations    []string         `json:"recommendations" description:"Strategic recommendations"`
}
