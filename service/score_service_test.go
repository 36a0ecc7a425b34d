package service

import (
	"context"
	"testing"
	"time"

	"cheongyak-calculator/domain"
	"cheongyak-calculator/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingClock struct {
	now   time.Time
	calls int
}

func (c *countingClock) Now() time.Time {
	c.calls++
	return c.now
}

func TestScoreService_Calculate(t *testing.T) {
	clock := &countingClock{now: time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)}
	svc := NewScoreService(clock.Now, logger.NewTestLogger(t))

	result, err := svc.Calculate(context.Background(), domain.ScoreForm{
		BirthDate:        "1988-03-01",
		HomelessYears:    "5",
		Dependents:       "3",
		SubscriptionDate: "2016-09-14",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, clock.calls)
	assert.Equal(t, domain.ScoreResult{
		HomelessScore:     10,
		DependentsScore:   20,
		SubscriptionScore: 11,
		TotalScore:        41,
		Tier:              domain.TierMedium,
	}, result)
}

func TestScoreService_Calculate_RejectsBeforeScoring(t *testing.T) {
	clock := &countingClock{now: time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)}
	svc := NewScoreService(clock.Now, logger.NewTestLogger(t))

	_, err := svc.Calculate(context.Background(), domain.ScoreForm{
		BirthDate:        "1990-01-01",
		HomelessYears:    "1",
		Dependents:       "1",
		SubscriptionDate: "1990-01-01",
	})

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeDateOrderViolation, ve.Code)
	assert.Zero(t, clock.calls, "calculator must not run on invalid input")
}

func TestNewScoreService_DefaultClock(t *testing.T) {
	svc := NewScoreService(nil, logger.NewNoOpLogger())

	result, err := svc.Calculate(context.Background(), domain.ScoreForm{
		BirthDate:        "1950-01-01",
		HomelessYears:    "0",
		Dependents:       "0",
		SubscriptionDate: "1960-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 17, result.SubscriptionScore)
}
