package domain

import "time"

// ScoreForm is the calculator form as submitted. Every field is raw text;
// dates use the YYYY-MM-DD layout of an HTML date input.
type ScoreForm struct {
	BirthDate        string `json:"birthDate"`
	HomelessYears    string `json:"homelessYears"`
	Dependents       string `json:"dependents"`
	SubscriptionDate string `json:"subscriptionDate"`
}

// CalculatorInput is built only from a ScoreForm that passed validation.
type CalculatorInput struct {
	BirthDate        time.Time
	HomelessYears    int
	Dependents       int
	SubscriptionDate time.Time
}

type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Label is the Korean grade shown next to the total.
func (t Tier) Label() string {
	switch t {
	case TierHigh:
		return "높음"
	case TierMedium:
		return "보통"
	default:
		return "낮음"
	}
}

func (t Tier) Message() string {
	switch t {
	case TierHigh:
		return "청약 당첨 가능성이 높은 점수예요!"
	case TierMedium:
		return "꾸준히 관리하면 좋은 점수예요!"
	default:
		return "시간이 지날수록 점수가 올라가요!"
	}
}

type ScoreResult struct {
	HomelessScore     int  `json:"homelessScore"`
	DependentsScore   int  `json:"dependentsScore"`
	SubscriptionScore int  `json:"subscriptionScore"`
	TotalScore        int  `json:"totalScore"`
	Tier              Tier `json:"tier"`
}
