package model

// Display labels for the 1-10 slider scales.
var SeverityLabels = map[int]string{
	1: "Minimal", 2: "Very Mild", 3: "Mild", 4: "Low-Moderate",
	5: "Moderate", 6: "Noticeable", 7: "Uncomfortable", 8: "Severe",
	9: "Very Severe", 10: "Unbearable",
}

var SleepQualityLabels = map[int]string{
	1: "Terrible", 2: "Very Poor", 3: "Poor", 4: "Below Average",
	5: "Average", 6: "Decent", 7: "Good", 8: "Very Good",
	9: "Excellent", 10: "Perfect",
}

var StressLevelLabels = map[int]string{
	1: "Zen", 2: "Calm", 3: "Relaxed", 4: "Manageable",
	5: "Neutral", 6: "Busy", 7: "Stressed", 8: "High Stress",
	9: "Very High", 10: "Overwhelming",
}

// BristolScale maps stool types 1-7 to their clinical descriptions.
var BristolScale = map[int]string{
	1: "Type 1: Separate hard lumps (Severe Constipation)",
	2: "Type 2: Lumpy sausage (Mild Constipation)",
	3: "Type 3: Sausage with cracks (Normal)",
	4: "Type 4: Smooth sausage/snake (Ideal)",
	5: "Type 5: Soft blobs, clear-cut edges (Mild Diarrhea)",
	6: "Type 6: Mushy pieces, ragged edges (Moderate Diarrhea)",
	7: "Type 7: Watery, no solid pieces (Severe Diarrhea)",
}

var MealSpeedOptions = []string{
	"Slow / Mindful (20+ min)",
	"Average (10-20 min)",
	"Fast / Rushed (<10 min)",
	"Distracted (TV/Phone)",
}

var StressTypeOptions = []string{
	"None",
	"Acute (Sudden Event)",
	"Chronic (Background Anxiety)",
	"Social/Work",
	"Physical/Fatigue",
}

// SymptomOptions are the selectable symptom tags.
var SymptomOptions = []string{
	"Bloating", "Abdominal Pain", "Gas", "Constipation", "Diarrhea",
	"Nausea", "Heartburn", "Incomplete Evacuation", "Urgency",
}

// ExerciseLabel classifies exercise minutes into a categorical label.
func ExerciseLabel(minutes *int) string {
	switch {
	case minutes == nil || *minutes <= 0:
		return "None"
	case *minutes < 30:
		return "Light"
	case *minutes < 60:
		return "Moderate"
	default:
		return "Intense"
	}
}
