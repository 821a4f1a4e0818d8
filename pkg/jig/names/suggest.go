package names

import "github.com/agext/levenshtein"

// DefaultMaxDistance is the edit distance used for "did you mean" suggestions.
const DefaultMaxDistance = 2

// ClosestMatches returns the candidates whose Levenshtein distance to input is
// at most maxDistance. The comparison is case-sensitive and works on runes.
// Results keep the order of candidates.
func ClosestMatches(input string, candidates []string, maxDistance int) []string {
	if maxDistance < 0 {
		return nil
	}

	params := levenshtein.NewParams().MaxCost(maxDistance)

	var matches []string
	for _, candidate := range candidates {
		if levenshtein.Distance(input, candidate, params) <= maxDistance {
			matches = append(matches, candidate)
		}
	}

	return matches
}
