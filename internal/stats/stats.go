// Package stats derives aggregate metrics from the journal document: overall
// averages, trigger-food candidates, rolling trends, and symptom/lifestyle
// correlations. Everything here is a pure function of the document passed in.
package stats

import (
	"math"
	"sort"

	"gutlog-api/internal/model"
)

// DefaultTriggerThreshold is the severity at or above which a day is treated
// as a trigger day.
const DefaultTriggerThreshold = 6

// TrendWindow is the rolling-average window used for trend series.
const TrendWindow = 7

// Summary carries the per-metric means. A nil mean signals that no entry set
// the field, which is distinct from a recorded zero.
type Summary struct {
	Entries     int      `json:"entries"`
	AvgSeverity *float64 `json:"avg_severity,omitempty"`
	AvgSleep    *float64 `json:"avg_sleep,omitempty"`
	AvgStress   *float64 `json:"avg_stress,omitempty"`
}

// Summarize computes the average severity, sleep hours, and stress level.
// Each mean's denominator counts only the entries that set that field, so
// different means over the same document may rest on different sample counts.
func Summarize(doc model.Document) Summary {
	sum := Summary{Entries: len(doc)}

	var sevSum, sleepSum, stressSum float64
	var sevN, sleepN, stressN int
	for _, e := range doc {
		if e.SymptomSeverity != nil {
			sevSum += float64(*e.SymptomSeverity)
			sevN++
		}
		if e.SleepHours != nil {
			sleepSum += *e.SleepHours
			sleepN++
		}
		if e.StressLevel != nil {
			stressSum += float64(*e.StressLevel)
			stressN++
		}
	}
	if sevN > 0 {
		sum.AvgSeverity = model.Float(round1(sevSum / float64(sevN)))
	}
	if sleepN > 0 {
		sum.AvgSleep = model.Float(round1(sleepSum / float64(sleepN)))
	}
	if stressN > 0 {
		sum.AvgStress = model.Float(round1(stressSum / float64(stressN)))
	}
	return sum
}

// TriggerFoods maps each trigger day to its recorded meals. The filter is
// purely on severity: days at or above the threshold are included even when
// no meals were recorded, with an empty meals string.
func TriggerFoods(doc model.Document, threshold int) map[string]string {
	triggers := make(map[string]string)
	for date, e := range doc {
		if e.SymptomSeverity != nil && *e.SymptomSeverity >= threshold {
			triggers[date] = e.Meals
		}
	}
	return triggers
}

// TrendPoint is one date's smoothed and lagged view for charting.
type TrendPoint struct {
	Date         string   `json:"date"`
	Severity     *int     `json:"severity,omitempty"`
	Stress       *int     `json:"stress,omitempty"`
	SleepHours   *float64 `json:"sleep_hours,omitempty"`
	SeverityAvg  *float64 `json:"severity_avg,omitempty"`
	StressAvg    *float64 `json:"stress_avg,omitempty"`
	SeverityLag1 *int     `json:"severity_lag1,omitempty"`
	StressLag1   *int     `json:"stress_lag1,omitempty"`
	SleepLag1    *float64 `json:"sleep_lag1,omitempty"`
}

// Trends returns a date-ascending series with rolling means of severity and
// stress over the given window (at least one sample) and lag-1 values for
// next-day effect analysis.
func Trends(doc model.Document, window int) []TrendPoint {
	if window <= 0 {
		window = TrendWindow
	}
	dates := SortedDates(doc)
	points := make([]TrendPoint, 0, len(dates))

	for i, date := range dates {
		e := doc[date]
		p := TrendPoint{
			Date:       date,
			Severity:   e.SymptomSeverity,
			Stress:     e.StressLevel,
			SleepHours: e.SleepHours,
		}
		p.SeverityAvg = rollingMean(doc, dates, i, window, func(e model.DailyEntry) *float64 {
			return intAsFloat(e.SymptomSeverity)
		})
		p.StressAvg = rollingMean(doc, dates, i, window, func(e model.DailyEntry) *float64 {
			return intAsFloat(e.StressLevel)
		})
		if i > 0 {
			prev := doc[dates[i-1]]
			p.SeverityLag1 = prev.SymptomSeverity
			p.StressLag1 = prev.StressLevel
			p.SleepLag1 = prev.SleepHours
		}
		points = append(points, p)
	}
	return points
}

// Correlation pairs a factor with its Pearson coefficient against symptom
// severity. Samples counts the paired observations the coefficient rests on.
type Correlation struct {
	Factor      string  `json:"factor"`
	Coefficient float64 `json:"coefficient"`
	Samples     int     `json:"samples"`
}

// Correlations measures how same-day stress, sleep, and exercise, plus
// yesterday's stress and sleep, track symptom severity. Factors with fewer
// than three paired samples are omitted.
func Correlations(doc model.Document) []Correlation {
	dates := SortedDates(doc)

	severity := func(e model.DailyEntry) *float64 { return intAsFloat(e.SymptomSeverity) }
	stress := func(e model.DailyEntry) *float64 { return intAsFloat(e.StressLevel) }
	sleep := func(e model.DailyEntry) *float64 { return e.SleepHours }
	exercise := func(e model.DailyEntry) *float64 { return intAsFloat(e.ExerciseMinutes) }

	var out []Correlation
	add := func(factor string, xs, ys []float64) {
		if len(xs) < 3 {
			return
		}
		r, ok := pearson(xs, ys)
		if !ok {
			return
		}
		out = append(out, Correlation{Factor: factor, Coefficient: round2(r), Samples: len(xs)})
	}

	xs, ys := pairSameDay(doc, dates, stress, severity)
	add("stress_level", xs, ys)
	xs, ys = pairSameDay(doc, dates, sleep, severity)
	add("sleep_hours", xs, ys)
	xs, ys = pairSameDay(doc, dates, exercise, severity)
	add("exercise_minutes", xs, ys)
	xs, ys = pairLagged(doc, dates, stress, severity)
	add("stress_level_lag1", xs, ys)
	xs, ys = pairLagged(doc, dates, sleep, severity)
	add("sleep_hours_lag1", xs, ys)
	return out
}

// SeverityBand buckets a severity score for display: green below 4, yellow
// below 7, red otherwise.
func SeverityBand(severity int) string {
	switch {
	case severity < 4:
		return "green"
	case severity < 7:
		return "yellow"
	default:
		return "red"
	}
}

// SortedDates returns the document's date keys in ascending order.
func SortedDates(doc model.Document) []string {
	dates := make([]string, 0, len(doc))
	for date := range doc {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

func rollingMean(doc model.Document, dates []string, i, window int, get func(model.DailyEntry) *float64) *float64 {
	var sum float64
	var n int
	lo := i - window + 1
	if lo < 0 {
		lo = 0
	}
	for j := lo; j <= i; j++ {
		if v := get(doc[dates[j]]); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return model.Float(round1(sum / float64(n)))
}

func pairSameDay(doc model.Document, dates []string, getX, getY func(model.DailyEntry) *float64) (xs, ys []float64) {
	for _, date := range dates {
		e := doc[date]
		x, y := getX(e), getY(e)
		if x != nil && y != nil {
			xs = append(xs, *x)
			ys = append(ys, *y)
		}
	}
	return xs, ys
}

// pairLagged pairs yesterday's x with today's y, skipping gaps in the diary.
func pairLagged(doc model.Document, dates []string, getX, getY func(model.DailyEntry) *float64) (xs, ys []float64) {
	for i := 1; i < len(dates); i++ {
		x, y := getX(doc[dates[i-1]]), getY(doc[dates[i]])
		if x != nil && y != nil {
			xs = append(xs, *x)
			ys = append(ys, *y)
		}
	}
	return xs, ys
}

func pearson(xs, ys []float64) (float64, bool) {
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}

func intAsFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	return model.Float(float64(*v))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
