package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/manuscript-reviewer/internal/types"
)

var (
	// wordRe matches runs of Unicode word characters. No stopword
	// filtering, no stemming.
	wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

	// sentenceEndRe splits on sentence-terminal punctuation followed by
	// whitespace. Text with no terminal punctuation is one sentence.
	sentenceEndRe = regexp.MustCompile(`[.!?]\s+`)
)

// Coefficients for the approximate readability index. The index is a linear
// combination of average sentence length and average word length, using
// word length / 3 as a syllable proxy. It is NOT a calibrated
// Flesch-Kincaid score and is only ever compared against thresholds.
const (
	readabilityBase   = 206.835
	sentenceLenWeight = 1.015
	wordLenWeight     = 28.2
)

// AnalyzeReadability derives word/sentence counts, average lengths and the
// approximate readability index for text. All fields are zero for
// whitespace-only input.
func AnalyzeReadability(text string) types.Readability {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.Readability{}
	}

	words := wordRe.FindAllString(trimmed, -1)
	sentences := sentenceEndRe.Split(trimmed, -1)

	var read types.Readability
	read.WordCount = len(words)
	read.SentenceCount = len(sentences)

	if len(words) > 0 {
		totalLen := 0
		for _, w := range words {
			totalLen += len([]rune(w))
		}
		read.AvgWordLen = float64(totalLen) / float64(len(words))
	}

	if len(sentences) > 0 {
		totalWords := 0
		for _, s := range sentences {
			totalWords += len(strings.Fields(s))
		}
		read.AvgSentenceWords = float64(totalWords) / float64(len(sentences))
	}

	read.ReadabilityIndex = readabilityBase -
		sentenceLenWeight*read.AvgSentenceWords -
		wordLenWeight*read.AvgWordLen

	return read
}
