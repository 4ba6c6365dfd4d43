package matching

import "strings"

// Aggregate combines the four sub-scores into one weighted fit with a
// qualitative summary and improvement suggestions. No recommendation
// is derived from compensation.
func Aggregate(weights Weights, skills, schedule, location, compensation MatchResult) OverallFit {
	score := weights.Skills*skills.Score +
		weights.Schedule*schedule.Score +
		weights.Location*location.Score +
		weights.Compensation*compensation.Score

	fit := OverallFit{Score: clamp(score, 0, 1)}

	switch {
	case fit.Score >= 0.8:
		fit.Summary = append(fit.Summary, "Excellent match! This job aligns well with your profile.")
	case fit.Score >= 0.6:
		fit.Summary = append(fit.Summary, "Good match with some areas for consideration.")
	default:
		fit.Summary = append(fit.Summary, "This job may require some compromises.")
	}

	if len(skills.MissingSkills) > 0 {
		fit.Recommendations = append(fit.Recommendations,
			"Consider developing skills in: "+strings.Join(skills.MissingSkills, ", "))
	}
	if schedule.Score < 0.5 {
		fit.Recommendations = append(fit.Recommendations, "Schedule flexibility might be needed")
	}
	if location.Score < 0.5 {
		fit.Recommendations = append(fit.Recommendations,
			"Consider transportation options or remote work possibilities")
	}

	return fit
}
