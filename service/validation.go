package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cheongyak-calculator/domain"
)

// ParseForm validates a raw form and builds the typed calculator input.
// Presence is checked before anything is parsed, then field formats, then
// the birth/subscription date order.
func ParseForm(form domain.ScoreForm) (domain.CalculatorInput, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"birthDate", form.BirthDate},
		{"homelessYears", form.HomelessYears},
		{"dependents", form.Dependents},
		{"subscriptionDate", form.SubscriptionDate},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return domain.CalculatorInput{}, newMissingFieldError(missing)
	}

	birth, err := parseDate("birthDate", form.BirthDate)
	if err != nil {
		return domain.CalculatorInput{}, err
	}
	subscription, err := parseDate("subscriptionDate", form.SubscriptionDate)
	if err != nil {
		return domain.CalculatorInput{}, err
	}
	homelessYears, err := parseCount("homelessYears", form.HomelessYears)
	if err != nil {
		return domain.CalculatorInput{}, err
	}
	dependents, err := parseCount("dependents", form.Dependents)
	if err != nil {
		return domain.CalculatorInput{}, err
	}

	if !birth.Before(subscription) {
		return domain.CalculatorInput{}, newDateOrderError()
	}

	return domain.CalculatorInput{
		BirthDate:        birth,
		HomelessYears:    homelessYears,
		Dependents:       dependents,
		SubscriptionDate: subscription,
	}, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, newInvalidFieldError(field, fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
	}
	return t, nil
}

func parseCount(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0, newInvalidFieldError(field, fmt.Sprintf("%s must be a non-negative integer", field))
	}
	return n, nil
}
