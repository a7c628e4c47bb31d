package reports

import (
	"time"

	"onboardhub/internal/domain/onboarding"
)

type CategoryScore struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	Band     string  `json:"band"`
}

type TrendPoint struct {
	SubmittedAt time.Time `json:"submittedAt"`
	Average     float64   `json:"average"`
}

type SurveyAnalytics struct {
	Count      int             `json:"count"`
	Overall    float64         `json:"overall"`
	Band       string          `json:"band"`
	Categories []CategoryScore `json:"categories"`
	Sentiment  []Point         `json:"sentiment"`
	Trend      []TrendPoint    `json:"trend"`
}

// ScoreBand buckets an average rating for display: good from 8, fair from 6.
func ScoreBand(score float64) string {
	switch {
	case score >= 8:
		return "good"
	case score >= 6:
		return "fair"
	}
	return "poor"
}

func BuildSurveyAnalytics(surveys []onboarding.Survey) SurveyAnalytics {
	out := SurveyAnalytics{
		Count:      len(surveys),
		Categories: []CategoryScore{},
		Sentiment:  []Point{},
		Trend:      []TrendPoint{},
	}
	if len(surveys) == 0 {
		return out
	}

	var sums [6]int
	var overall float64
	sentiments := map[onboarding.Sentiment]int{}
	for _, sv := range surveys {
		r := sv.Ratings
		for i, v := range []int{r.Satisfaction, r.Clarity, r.Support, r.Resources, r.Workload, r.CultureFit} {
			sums[i] += v
		}
		overall += sv.AverageScore
		sentiments[sv.Sentiment]++
		out.Trend = append(out.Trend, TrendPoint{SubmittedAt: sv.SubmittedAt, Average: sv.AverageScore})
	}

	n := float64(len(surveys))
	labels := []string{"Satisfaction", "Clarity", "Support", "Resources", "Workload", "Culture Fit"}
	for i, label := range labels {
		avg := float64(sums[i]) / n
		out.Categories = append(out.Categories, CategoryScore{Category: label, Average: avg, Band: ScoreBand(avg)})
	}
	out.Overall = overall / n
	out.Band = ScoreBand(out.Overall)
	for _, s := range onboarding.Sentiments {
		out.Sentiment = append(out.Sentiment, Point{Label: string(s), Value: sentiments[s]})
	}
	return out
}
