package scoring

import "strings"

// Canonical manuscript sections. The keys are the section names exposed in
// Signals.SectionCoverage.
const (
	SectionIntroduction = "introdução"
	SectionMethodology  = "metodologia"
	SectionResults      = "resultados"
	SectionDiscussion   = "discussão"
	SectionConclusions  = "conclusões"
)

// sectionHints maps each canonical section to its lowercase keyword hints.
// Built once at startup; read-only afterwards.
var sectionHints = map[string][]string{
	SectionIntroduction: {"introdução", "contexto", "motivação", "objetivo"},
	SectionMethodology:  {"método", "metodologia", "procedimentos", "amostra", "amostragem", "instrumento"},
	SectionResults:      {"resultados", "achados", "achado", "experimentos", "análise"},
	SectionDiscussion:   {"discussão", "implicações", "interpretação", "limitações"},
	SectionConclusions:  {"conclusão", "conclusões", "trabalhos futuros", "futuros"},
}

// SectionCoverage counts, per canonical section, how many distinct keyword
// hints appear in the text. The count is hint presence, not occurrence
// frequency: a hint repeated many times still contributes 1. This is a
// coarse, order-independent coverage signal, not a structural parse.
func SectionCoverage(text string) map[string]int {
	return sectionCoverage(strings.ToLower(text), DefaultMatcher)
}

func sectionCoverage(lowerText string, m Matcher) map[string]int {
	cov := make(map[string]int, len(sectionHints))
	for sec, hints := range sectionHints {
		cov[sec] = countDistinct(m, lowerText, hints)
	}
	return cov
}
