// Package fuzzy provides edit-distance matching for optreg error
// suggestions. Unknown-option errors carry the closest registered alias
// so callers can render "did you mean" hints.
package fuzzy

import "strings"

// Matcher finds near-miss candidates within a maximum edit distance.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // one-character typos produce noise, not hints
	}
}

// FindBest returns the candidate closest to input, or "" when nothing is
// within the distance bound. Ties resolve to the candidate sharing the
// longest prefix with the input, then to the earlier candidate.
func (m *Matcher) FindBest(input string, candidates []string) string {
	if len(input) < m.minLength {
		return ""
	}

	input = strings.ToLower(input)
	best := ""
	bestDist := m.maxDistance + 1
	bestPrefix := -1

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue // exact matches are not suggestions
		}
		dist := m.distance(input, lower)
		if dist > m.maxDistance {
			continue
		}
		prefix := commonPrefixLength(input, lower)
		if dist < bestDist || (dist == bestDist && prefix > bestPrefix) {
			best = candidate
			bestDist = dist
			bestPrefix = prefix
		}
	}

	return best
}

// FindBestAlias is the package-level convenience used by the matcher's
// unknown-option path.
func FindBestAlias(input string, aliases []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, aliases)
}

// distance computes Levenshtein distance with two rows and early
// termination once every entry in a row exceeds the bound.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			cur[j] = minThree(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}

	return prev[len(a)]
}

func commonPrefixLength(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func minThree(a, b, c int) int {
	return min(a, min(b, c))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
