package scoring

import (
	"fmt"
	"math"
	"regexp"

	"github.com/jonathan/manuscript-reviewer/internal/types"
)

// Keyword sets and patterns consulted by the dimension scorers. All are
// built once at startup and never mutated.
var (
	noveltyKeywords = []string{"propomos", "apresentamos", "neste trabalho", "contribuição"}
	gapKeywords     = []string{"lacuna", "gap"}
	limitKeywords   = []string{"limitações", "limitação"}

	sampleRe = regexp.MustCompile(`\b(amostra|amostragem|dataset|base de dados)\b`)
	// Open-ended on the right so inflections like "reprodutibilidade" match.
	reproducibilityRe = regexp.MustCompile(`\b(reprodutibil|protocolo|pré-registro|pré registro)`)
	quantQualRe       = regexp.MustCompile(`\b(quantitativ|qualitativ|estatístic)`)
	literatureRe      = regexp.MustCompile(`\b(literatura|referências|revisão de literatura|estado da arte)`)
)

// Score bounds and base values per dimension.
const (
	minScore = 1.0
	maxScore = 10.0

	relevanceBase = 5.0
	rigorBase     = 4.0
	writingBase   = 7.0
	theoryBase    = 3.0
	resultsBase   = 3.0

	// Writing Quality thresholds.
	minWordCount        = 150
	maxSentenceWords    = 35.0
	readabilityBandLow  = 10.0
	readabilityBandHigh = 70.0

	// Theoretical Grounding caps citation contribution at 10 citations.
	citationCap    = 10
	citationWeight = 0.6
)

// clamp constrains x to [minScore, maxScore], saturating at the bounds.
func clamp(x float64) float64 {
	return math.Max(minScore, math.Min(maxScore, x))
}

// round1 rounds to one decimal, half away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// scoreRelevance rates relevance and originality from novelty keywords and
// research-gap mentions.
func scoreRelevance(lowerText string, m Matcher) (float64, []string) {
	novelty := countDistinct(m, lowerText, noveltyKeywords)
	score := relevanceBase + 2.0*float64(novelty)

	frags := []string{fmt.Sprintf("sinais de novidade=%d", novelty)}
	if anyOf(m, lowerText, gapKeywords) {
		score++
		frags = append(frags, "menciona lacuna")
	} else {
		frags = append(frags, "sem menção explícita a lacuna")
	}

	return clamp(score), frags
}

// scoreRigor rates methodological rigor from methodology-section coverage
// and sample, reproducibility and quantitative/qualitative mentions.
func scoreRigor(lowerText string, signals *types.Signals) (float64, []string) {
	methHits := signals.SectionCoverage[SectionMethodology]
	score := rigorBase + 2.0*float64(methHits)
	frags := []string{fmt.Sprintf("sinais de metodologia=%d", methHits)}

	if sampleRe.MatchString(lowerText) {
		score += 2.0
		frags = append(frags, "menciona amostra/dataset")
	} else {
		frags = append(frags, "sem amostra/dataset")
	}

	if reproducibilityRe.MatchString(lowerText) {
		score++
		frags = append(frags, "menciona reprodutibilidade/protocolo")
	} else {
		frags = append(frags, "sem menção a reprodutibilidade")
	}

	if quantQualRe.MatchString(lowerText) {
		score += 1.5
		frags = append(frags, "abordagem quantitativa/qualitativa explícita")
	}

	return clamp(score), frags
}

// scoreWriting rates writing quality from the readability signals alone.
// Penalties apply when the approximate index leaves the acceptable band,
// when the text is too short, or when sentences run too long.
func scoreWriting(signals *types.Signals) (float64, []string) {
	read := signals.Readability
	score := writingBase

	if read.ReadabilityIndex < readabilityBandLow || read.ReadabilityIndex > readabilityBandHigh {
		score -= 1.0
	}
	if read.WordCount < minWordCount {
		score -= 1.5
	}
	if read.AvgSentenceWords > maxSentenceWords {
		score -= 1.5
	}

	frags := []string{
		fmt.Sprintf("média de palavras por sentença=%.1f", read.AvgSentenceWords),
		fmt.Sprintf("tamanho do texto=%d palavras", read.WordCount),
		fmt.Sprintf("índice de legibilidade=%.1f", read.ReadabilityIndex),
	}

	return clamp(score), frags
}

// scoreTheory rates theoretical grounding from citation density,
// introduction coverage and literature-review mentions.
func scoreTheory(lowerText string, signals *types.Signals) (float64, []string) {
	cites := signals.Citations
	if cites > citationCap {
		cites = citationCap
	}
	score := theoryBase + float64(cites)*citationWeight
	frags := []string{fmt.Sprintf("citações detectadas=%d", signals.Citations)}

	if signals.SectionCoverage[SectionIntroduction] > 0 {
		score++
		frags = append(frags, "há sinais de introdução")
	} else {
		frags = append(frags, "sem sinais de introdução")
	}

	if literatureRe.MatchString(lowerText) {
		score += 1.0
		frags = append(frags, "menciona revisão de literatura")
	}

	return clamp(score), frags
}

// scoreResults rates the results and discussion dimension from section
// coverage, limitations and conclusions mentions.
func scoreResults(lowerText string, m Matcher, signals *types.Signals) (float64, []string) {
	resHits := signals.SectionCoverage[SectionResults]
	discHits := signals.SectionCoverage[SectionDiscussion]
	score := resultsBase + 1.5*float64(resHits) + 1.5*float64(discHits)

	frags := []string{
		fmt.Sprintf("sinais de resultados=%d", resHits),
		fmt.Sprintf("sinais de discussão=%d", discHits),
	}

	if anyOf(m, lowerText, limitKeywords) {
		score += 1.5
		frags = append(frags, "menciona limitações")
	} else {
		frags = append(frags, "sem menção a limitações")
	}

	if signals.SectionCoverage[SectionConclusions] > 0 {
		score += 1.0
		frags = append(frags, "há sinais de conclusões")
	}

	return clamp(score), frags
}
