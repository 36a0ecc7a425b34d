package service

import (
	"context"
	"time"

	"cheongyak-calculator/domain"
	"cheongyak-calculator/logger"
	"cheongyak-calculator/metrics"
)

// Clock returns the evaluation instant for a calculation.
type Clock func() time.Time

type ScoreService struct {
	now    Clock
	logger logger.Logger
}

// NewScoreService creates a ScoreService. A nil clock uses time.Now.
func NewScoreService(now Clock, log logger.Logger) *ScoreService {
	if now == nil {
		now = time.Now
	}
	return &ScoreService{
		now:    now,
		logger: log.WithFields(map[string]interface{}{"component": "score"}),
	}
}

// Calculate validates the form and scores it. Validation failures come back
// as *ValidationError and the calculator is not run.
func (s *ScoreService) Calculate(_ context.Context, form domain.ScoreForm) (domain.ScoreResult, error) {
	input, err := ParseForm(form)
	if err != nil {
		if ve, ok := AsValidationError(err); ok {
			metrics.ScoreValidationFailures.WithLabelValues(string(ve.Code)).Inc()
			s.logger.Debug("score form rejected", map[string]interface{}{
				"code":   ve.Code,
				"fields": ve.Fields,
			})
		}
		return domain.ScoreResult{}, err
	}

	result := CalculateScore(input, s.now())

	metrics.ScoreCalculations.WithLabelValues(string(result.Tier)).Inc()
	metrics.ScoreTotals.Observe(float64(result.TotalScore))

	s.logger.Info("score calculated", map[string]interface{}{
		"homelessScore":     result.HomelessScore,
		"dependentsScore":   result.DependentsScore,
		"subscriptionScore": result.SubscriptionScore,
		"totalScore":        result.TotalScore,
		"tier":              result.Tier,
	})

	return result, nil
}
