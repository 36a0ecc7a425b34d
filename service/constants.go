package service

const (
	HomelessPointsPerYear = 2
	MaxHomelessYears      = 16
	MaxHomelessScore      = MaxHomelessYears * HomelessPointsPerYear // 32

	BaseDependentsScore      = 5 // zero dependents
	DependentsPointsPerCount = 5
	MaxDependentsCount       = 6
	MaxDependentsScore       = BaseDependentsScore + MaxDependentsCount*DependentsPointsPerCount // 35

	MaxSubscriptionScore = 17
	MaxTotalScore        = MaxHomelessScore + MaxDependentsScore + MaxSubscriptionScore // 84

	HighTierMinScore   = 60
	MediumTierMinScore = 40

	// Average Gregorian year in milliseconds.
	MillisecondsPerYear = 365.25 * 24 * 3600 * 1000

	DateLayout = "2006-01-02"

	DefaultPostsPerPage = 6

	ShareTitle       = "내 청약가점 결과"
	ShareButtonTitle = "내 점수도 계산하기"
)

type subscriptionStep struct {
	belowYears float64
	score      int
}

// subscriptionSteps maps account tenure to points. A tenure scores the entry
// with the first threshold it is below; 15 years or more scores
// MaxSubscriptionScore. The table has no 16-point step.
var subscriptionSteps = []subscriptionStep{
	{1, 0},
	{2, 3},
	{3, 4},
	{4, 5},
	{5, 6},
	{6, 7},
	{7, 8},
	{8, 9},
	{9, 9},
	{10, 10},
	{11, 11},
	{12, 12},
	{13, 13},
	{14, 14},
	{15, 15},
}
