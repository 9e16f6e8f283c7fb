package service

import "strings"

const (
	// maxCompareRunes caps the edit-distance computation so pathological
	// inputs cannot blow up the quadratic DP.
	maxCompareRunes = 256

	overallSimilarityThreshold     = 0.7
	closeLengthSimilarityThreshold = 0.6
	closeLengthDelta               = 2
)

type similarityGuard struct{}

// NewSimilarityGuard returns the standard SimilarityGuard. A candidate is
// rejected when it matches the old password exactly, matches ignoring case,
// sits above the edit-distance similarity thresholds, or contains or is
// contained by the old password.
func NewSimilarityGuard() SimilarityGuard {
	return &similarityGuard{}
}

func (g *similarityGuard) IsTooSimilar(newPassword, oldPassword string) bool {
	if newPassword == oldPassword {
		return true
	}
	if strings.EqualFold(newPassword, oldPassword) {
		return true
	}

	ratio := similarityRatio(newPassword, oldPassword)
	if ratio > overallSimilarityThreshold {
		return true
	}

	lengthDelta := len([]rune(newPassword)) - len([]rune(oldPassword))
	if lengthDelta < 0 {
		lengthDelta = -lengthDelta
	}
	if lengthDelta <= closeLengthDelta && ratio > closeLengthSimilarityThreshold {
		return true
	}

	if strings.Contains(newPassword, oldPassword) || strings.Contains(oldPassword, newPassword) {
		return true
	}
	return false
}

// similarityRatio is (longerLen - editDistance) / longerLen over runes. When
// the longer string is empty both are, and the ratio is 1.
func similarityRatio(a, b string) float64 {
	ar := truncateRunes(a, maxCompareRunes)
	br := truncateRunes(b, maxCompareRunes)
	longer, shorter := ar, br
	if len(br) > len(ar) {
		longer, shorter = br, ar
	}
	if len(longer) == 0 {
		return 1.0
	}
	distance := levenshtein(longer, shorter)
	return float64(len(longer)-distance) / float64(len(longer))
}

func truncateRunes(s string, limit int) []rune {
	runes := []rune(s)
	if len(runes) > limit {
		runes = runes[:limit]
	}
	return runes
}

// levenshtein computes the edit distance with a two-row dynamic program.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)
	for j := range previous {
		previous[j] = j
	}

	for i := 1; i <= len(a); i++ {
		current[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			current[j] = min3(previous[j]+1, current[j-1]+1, previous[j-1]+cost)
		}
		previous, current = current, previous
	}
	return previous[len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
