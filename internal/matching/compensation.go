package matching

import (
	"fmt"
	"math"

	"github.com/gigmatch/match-engine/internal/domain/models"
	"github.com/pkg/errors"
)

type MarketPosition string

const (
	AboveMarket MarketPosition = "Above market"
	BelowMarket MarketPosition = "Below market"
	AtMarket    MarketPosition = "At market"
)

const defaultWeeklyHours = 40

// ScoreCompensation rates how well the listing's pay overlaps the
// candidate's preferred range, measured as the overlapping fraction of
// the candidate's range. A nil preference scores 0 so the sub-score
// never silently inflates the aggregate; details say so instead.
func ScoreCompensation(jobSalary models.SalaryRange, userSalary *models.SalaryRange,
	category string, weeklyHours float64, rates RateTable) (MatchResult, error) {

	if !jobSalary.Valid() {
		return MatchResult{}, errors.Wrapf(ErrInvalidInput,
			"listing salary range %v-%v is inverted", jobSalary.Min, jobSalary.Max)
	}
	if userSalary != nil && !userSalary.Valid() {
		return MatchResult{}, errors.Wrapf(ErrInvalidInput,
			"salary preference %v-%v is inverted", userSalary.Min, userSalary.Max)
	}

	band := rates.Lookup(category)
	position := marketPosition(jobSalary, band)

	var score float64
	if userSalary != nil {
		overlapStart := math.Max(userSalary.Min, jobSalary.Min)
		overlapEnd := math.Min(userSalary.Max, jobSalary.Max)
		if overlapStart <= overlapEnd {
			if userRange := userSalary.Max - userSalary.Min; userRange > 0 {
				score = clamp((overlapEnd-overlapStart)/userRange, 0, 1)
			} else {
				// Zero-width preference inside the listing's range is a
				// perfect answer to an exact ask.
				score = 1
			}
		}
	}

	if weeklyHours <= 0 {
		weeklyHours = defaultWeeklyHours
	}

	details := []string{
		fmt.Sprintf("Salary range: $%.0f-$%.0f/hr", jobSalary.Min, jobSalary.Max),
		fmt.Sprintf("Market position: %s", position),
		fmt.Sprintf("Weekly hours: %.0f", weeklyHours),
	}
	if userSalary == nil {
		details = append(details, "No salary preference provided")
	}
	details = append(details, fmt.Sprintf("Potential weekly earnings: $%.0f-$%.0f",
		jobSalary.Min*weeklyHours, jobSalary.Max*weeklyHours))
	if position == AboveMarket {
		details = append(details, "Above average pay for this role")
	}

	return MatchResult{Score: score, Details: details}, nil
}

func marketPosition(salary models.SalaryRange, band RateBand) MarketPosition {
	switch {
	case salary.Max > band.High:
		return AboveMarket
	case salary.Min < band.Low:
		return BelowMarket
	default:
		return AtMarket
	}
}
