// Package types defines the shared data types exchanged between the scoring
// engine, the LLM reviewer, the HTTP server and the CLI.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Dimension labels for the five evaluative categories.
const (
	DimRelevance = "Relevance & Originality"
	DimRigor     = "Methodological Rigor"
	DimWriting   = "Writing Quality"
	DimTheory    = "Theoretical Grounding"
	DimResults   = "Results & Discussion"
)

// Dimensions lists the five labels in display order. The set is fixed; both
// scoring engines key their output maps on exactly these strings.
var Dimensions = []string{
	DimRelevance,
	DimRigor,
	DimWriting,
	DimTheory,
	DimResults,
}

// Readability holds the approximate readability signals for a text.
// ReadabilityIndex is a linear approximation over average sentence length and
// average word length, not a calibrated Flesch-Kincaid score; it may be
// negative or exceed conventional bounds and is only compared to thresholds.
type Readability struct {
	WordCount        int     `json:"word_count"`
	SentenceCount    int     `json:"sentence_count"`
	AvgWordLen       float64 `json:"avg_word_len"`
	AvgSentenceWords float64 `json:"avg_sentence_words"`
	ReadabilityIndex float64 `json:"readability_index"`
}

// Signals bundles the derived observations consumed by the dimension scorers.
type Signals struct {
	// SectionCoverage maps each canonical manuscript section to the number
	// of distinct keyword hints found, not occurrence frequency.
	SectionCoverage map[string]int `json:"section_coverage"`
	// Citations is the additive match count across all citation patterns.
	// A citation matching two patterns is counted twice.
	Citations   int         `json:"citations"`
	Readability Readability `json:"readability"`
}

// AnalysisResult is the output of the heuristic scoring engine. Scores are
// on a 1-10 scale, rounded to one decimal. Signals is nil when the
// empty-text short circuit applied.
type AnalysisResult struct {
	Scores         map[string]float64 `json:"scores"`
	Explainability map[string]string  `json:"explainability"`
	Signals        *Signals           `json:"signals,omitempty"`
}

// LLMReview is the output of the LLM-backed reviewer. Scores are on a
// 1-100 scale; this is a deliberately different contract from
// AnalysisResult and the two are not interchangeable without explicit
// normalization.
type LLMReview struct {
	Scores          map[string]float64 `json:"scores"`
	Explainability  map[string]string  `json:"explainability"`
	Recommendations []string           `json:"recommendations"`
}

// Engine names accepted by the analyze endpoints and the CLI.
const (
	EngineHeuristic = "heuristic"
	EngineLLM       = "llm"
)

// AnalyzeRequest is the request body for POST /analyze. Text may be empty;
// the heuristic engine maps empty input to the fixed all-ones result.
type AnalyzeRequest struct {
	Text   string `json:"text"`
	Engine string `json:"engine,omitempty" validate:"omitempty,oneof=heuristic llm"`
}

// BatchAnalyzeRequest is the request body for POST /analyze/batch.
type BatchAnalyzeRequest struct {
	Texts []string `json:"texts" validate:"required,min=1,max=100"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchAnalyzeRequest using the validator.
func (r *BatchAnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
