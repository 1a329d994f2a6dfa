package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const nameSimilarityThreshold = 0.8

// normalizeName folds case, accents and inner whitespace.
func normalizeName(s string) string {
	s = strings.ToLower(unidecode.Unidecode(strings.TrimSpace(s)))
	return strings.Join(strings.Fields(s), " ")
}

// similarity is 1 minus the edit distance scaled by the longer string.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1
	}
	distance := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	return 1 - float64(distance)/float64(maxLen)
}

// suggestName returns the candidate closest to query when it is similar
// enough without being the same name. Both the query and the candidates must
// already be normalized.
func suggestName(query string, candidates []string) (string, bool) {
	if query == "" || len(candidates) == 0 {
		return "", false
	}

	best := closestmatch.New(candidates, []int{2, 3}).Closest(query)
	if best == "" || best == query {
		return "", false
	}
	if similarity(query, best) < nameSimilarityThreshold {
		return "", false
	}
	return best, true
}
