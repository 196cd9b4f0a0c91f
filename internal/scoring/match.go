// Package scoring implements the rule-based heuristic scoring engine. It
// turns raw manuscript text into dimension-level scores and explanations
// using lexical pattern matching, section-keyword coverage, citation
// detection and approximate readability metrics. Every function in this
// package is pure: no state is retained between invocations and identical
// input always produces identical output.
package scoring

import "strings"

// Matcher decides whether a keyword hint occurs in a body of text. The
// engine ships with case-insensitive substring containment; a token-based
// implementation can be swapped in without touching scorer logic.
type Matcher interface {
	// Contains reports whether keyword occurs in lowerText. lowerText is
	// already lowercased; keywords are stored lowercase.
	Contains(lowerText, keyword string) bool
}

type substringMatcher struct{}

func (substringMatcher) Contains(lowerText, keyword string) bool {
	return strings.Contains(lowerText, keyword)
}

// DefaultMatcher is the process-wide matching strategy.
var DefaultMatcher Matcher = substringMatcher{}

// countDistinct returns how many distinct keywords from the set occur in
// lowerText. Repeating a keyword in the text does not increase the count.
func countDistinct(m Matcher, lowerText string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if m.Contains(lowerText, kw) {
			hits++
		}
	}
	return hits
}

// anyOf reports whether at least one keyword from the set occurs in lowerText.
func anyOf(m Matcher, lowerText string, keywords []string) bool {
	for _, kw := range keywords {
		if m.Contains(lowerText, kw) {
			return true
		}
	}
	return false
}
