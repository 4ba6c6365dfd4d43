package matching

// MatchResult is the outcome of a single matcher: a score in [0, 1]
// and display-ready detail lines, most important first. Detail order
// is shown to users verbatim and must stay stable.
type MatchResult struct {
	Score   float64
	Details []string

	// MissingSkills is populated by the skills matcher only, so the
	// aggregator can suggest what to develop without re-deriving the
	// required set.
	MissingSkills []string
}

// OverallFit is the aggregator's weighted combination of the four
// sub-scores.
type OverallFit struct {
	Score           float64
	Summary         []string
	Recommendations []string
}

func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
