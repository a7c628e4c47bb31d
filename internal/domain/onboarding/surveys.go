package onboarding

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (r SurveyRatings) values() []int {
	return []int{r.Satisfaction, r.Clarity, r.Support, r.Resources, r.Workload, r.CultureFit}
}

func (r SurveyRatings) Validate() error {
	names := []string{"satisfaction", "clarity", "support", "resources", "workload", "cultureFit"}
	for i, v := range r.values() {
		if v < MinRating || v > MaxRating {
			return fmt.Errorf("rating %s=%d outside %d..%d: %w", names[i], v, MinRating, MaxRating, ErrInvalidInput)
		}
	}
	return nil
}

func (r SurveyRatings) Average() float64 {
	vals := r.values()
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return float64(sum) / float64(len(vals))
}

func ClassifySentiment(avg float64) Sentiment {
	switch {
	case avg >= PositiveThreshold:
		return SentimentPositive
	case avg >= NeutralThreshold:
		return SentimentNeutral
	}
	return SentimentNegative
}

func newSurvey(ratings SurveyRatings, feedback SurveyFeedback, now time.Time) (Survey, error) {
	if err := ratings.Validate(); err != nil {
		return Survey{}, err
	}
	avg := ratings.Average()
	return Survey{
		ID:           uuid.NewString(),
		SubmittedAt:  now,
		Ratings:      ratings,
		AverageScore: avg,
		Sentiment:    ClassifySentiment(avg),
		Feedback:     feedback,
	}, nil
}
