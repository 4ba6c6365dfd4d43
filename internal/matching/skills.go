package matching

import (
	"strings"

	"github.com/samber/lo"
)

// ScoreSkills rates how many of the listing's required skills the
// candidate possesses. Comparison is exact string equality after
// trimming whitespace; there is no fuzzy or case-insensitive matching,
// which is a known limitation. Duplicates collapse and order of the
// required list drives the order of the details.
func ScoreSkills(required, possessed []string) MatchResult {
	required = normalizeSkills(required)
	if len(required) == 0 {
		return MatchResult{
			Score:   1,
			Details: []string{"No specific skills required"},
		}
	}

	have := lo.SliceToMap(normalizeSkills(possessed), func(s string) (string, struct{}) {
		return s, struct{}{}
	})

	var matched, missing []string
	for _, skill := range required {
		if _, ok := have[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	result := MatchResult{
		Score:         float64(len(matched)) / float64(len(required)),
		Details:       matched,
		MissingSkills: missing,
	}
	if len(matched) == 0 {
		result.Details = []string{"None of the required skills matched"}
	}
	return result
}

func normalizeSkills(skills []string) []string {
	trimmed := lo.FilterMap(skills, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
	return lo.Uniq(trimmed)
}
