package services

import "strings"

// Scoring tiers. Primary tiers are mutually exclusive; the secondary
// bonus stacks on top of whichever primary tier matched.
const (
	scoreExactMatch     = 100
	scorePrefixMatch    = 80
	scoreContainsMatch  = 60
	scoreSecondaryMatch = 30
)

// RelevanceScore ranks a candidate against the query, case-insensitively.
// Absent fields contribute nothing, so a candidate with no primary field
// can score at most the secondary bonus.
func RelevanceScore(query string, primary, secondary *string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	score := 0

	if primary != nil {
		p := strings.ToLower(*primary)
		switch {
		case p == q:
			score += scoreExactMatch
		case strings.HasPrefix(p, q):
			score += scorePrefixMatch
		case strings.Contains(p, q):
			score += scoreContainsMatch
		}
	}

	if secondary != nil && strings.Contains(strings.ToLower(*secondary), q) {
		score += scoreSecondaryMatch
	}

	return score
}
