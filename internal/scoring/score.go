package scoring

import (
	"strings"

	"github.com/jonathan/manuscript-reviewer/internal/types"
)

// Score runs the full heuristic pipeline over text and returns the composite
// result. It never fails: every input string maps to a fully populated
// result. Empty or whitespace-only input short-circuits to the fixed
// all-ones result with no signals computed. Score is safe for concurrent
// use; it holds no state and performs no I/O.
func Score(text string) types.AnalysisResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return emptyResult()
	}

	lower := strings.ToLower(trimmed)
	m := DefaultMatcher

	signals := &types.Signals{
		SectionCoverage: sectionCoverage(lower, m),
		Citations:       CountCitations(trimmed),
		Readability:     AnalyzeReadability(trimmed),
	}

	scores := make(map[string]float64, len(types.Dimensions))
	explanations := make(map[string]string, len(types.Dimensions))

	record := func(dim string, score float64, frags []string) {
		scores[dim] = round1(score)
		explanations[dim] = buildExplanation("Base", frags)
	}

	relScore, relFrags := scoreRelevance(lower, m)
	record(types.DimRelevance, relScore, relFrags)

	rigorScore, rigorFrags := scoreRigor(lower, signals)
	record(types.DimRigor, rigorScore, rigorFrags)

	writingScore, writingFrags := scoreWriting(signals)
	record(types.DimWriting, writingScore, writingFrags)

	theoryScore, theoryFrags := scoreTheory(lower, signals)
	record(types.DimTheory, theoryScore, theoryFrags)

	resScore, resFrags := scoreResults(lower, m, signals)
	record(types.DimResults, resScore, resFrags)

	return types.AnalysisResult{
		Scores:         scores,
		Explainability: explanations,
		Signals:        signals,
	}
}

// emptyResult is the fixed result for empty input: every score is exactly
// the minimum and every explanation is the empty-text message.
func emptyResult() types.AnalysisResult {
	scores := make(map[string]float64, len(types.Dimensions))
	explanations := make(map[string]string, len(types.Dimensions))
	for _, dim := range types.Dimensions {
		scores[dim] = minScore
		explanations[dim] = EmptyTextExplanation
	}
	return types.AnalysisResult{
		Scores:         scores,
		Explainability: explanations,
	}
}
