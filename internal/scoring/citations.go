package scoring

import "regexp"

// Citation patterns tuned to Portuguese-language academic citation styles.
// Compiled once at startup and never mutated.
var citationPatterns = []*regexp.Regexp{
	// Parenthetical author-year groups: (Souza, 2019), (Souza & Lima, 2019).
	regexp.MustCompile(`\(\p{Lu}\p{L}+(?:\s*[,&]\s*\p{Lu}\p{L}+)*\s*,\s*(?:19|20)\d{2}\)`),

	// Bracketed numeric citation lists: [1], [1, 2], [1-3].
	regexp.MustCompile(`\[\d{1,3}(?:\s*[,\-–]\s*\d{1,3})*\]`),

	// Inline author-year: Silva (2020).
	regexp.MustCompile(`\p{Lu}\p{L}+\s*\(\s*(?:19|20)\d{2}\s*\)`),
}

// CountCitations counts citation-like substrings in text. Counts are
// additive across all patterns with no deduplication: a citation matching
// two patterns is counted twice. That overlap is intentional and callers
// must not rely on the count being a number of distinct citations.
func CountCitations(text string) int {
	total := 0
	for _, pat := range citationPatterns {
		total += len(pat.FindAllStringIndex(text, -1))
	}
	return total
}
