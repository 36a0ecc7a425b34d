package service

import (
	"math"
	"sort"
	"time"

	"cheongyak-calculator/domain"
)

// CalculateScore scores a validated input as of now. It never fails.
func CalculateScore(input domain.CalculatorInput, now time.Time) domain.ScoreResult {
	homeless := HomelessScore(input.HomelessYears)
	dependents := DependentsScore(input.Dependents)
	subscription := SubscriptionScore(YearsBetween(input.SubscriptionDate, now))
	total := homeless + dependents + subscription

	return domain.ScoreResult{
		HomelessScore:     homeless,
		DependentsScore:   dependents,
		SubscriptionScore: subscription,
		TotalScore:        total,
		Tier:              TierFor(total),
	}
}

// HomelessScore caps years before multiplying so any non-negative count
// stays within 0..MaxHomelessScore.
func HomelessScore(years int) int {
	return min(max(years, 0), MaxHomelessYears) * HomelessPointsPerYear
}

func DependentsScore(count int) int {
	return BaseDependentsScore + min(max(count, 0), MaxDependentsCount)*DependentsPointsPerCount
}

// YearsBetween returns the absolute distance between two instants in
// fractional 365.25-day years.
func YearsBetween(start, end time.Time) float64 {
	ms := math.Abs(float64(end.Sub(start).Milliseconds()))
	return ms / MillisecondsPerYear
}

func SubscriptionScore(years float64) int {
	i := sort.Search(len(subscriptionSteps), func(i int) bool {
		return years < subscriptionSteps[i].belowYears
	})
	if i == len(subscriptionSteps) {
		return MaxSubscriptionScore
	}
	return subscriptionSteps[i].score
}

func TierFor(total int) domain.Tier {
	switch {
	case total >= HighTierMinScore:
		return domain.TierHigh
	case total >= MediumTierMinScore:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}
