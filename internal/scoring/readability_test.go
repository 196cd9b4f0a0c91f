package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeReadability_SingleSentence(t *testing.T) {
	// 150 words, no terminal punctuation: the whole text is one sentence.
	text := strings.TrimSpace(strings.Repeat("palavra ", 150))

	read := AnalyzeReadability(text)

	assert.Equal(t, 150, read.WordCount)
	assert.Equal(t, 1, read.SentenceCount)
	assert.InDelta(t, 150.0, read.AvgSentenceWords, 0.001)
}

func TestAnalyzeReadability_MultipleSentences(t *testing.T) {
	read := AnalyzeReadability("Um dois. Três quatro.")

	assert.Equal(t, 4, read.WordCount)
	assert.Equal(t, 2, read.SentenceCount)
	assert.InDelta(t, 2.0, read.AvgSentenceWords, 0.001)
}

func TestAnalyzeReadability_AvgWordLen(t *testing.T) {
	read := AnalyzeReadability("ab abcd")

	assert.InDelta(t, 3.0, read.AvgWordLen, 0.001)
}

func TestAnalyzeReadability_AccentedWordLength(t *testing.T) {
	// Rune length, not byte length.
	read := AnalyzeReadability("ação")

	assert.Equal(t, 1, read.WordCount)
	assert.InDelta(t, 4.0, read.AvgWordLen, 0.001)
}

func TestAnalyzeReadability_Empty(t *testing.T) {
	read := AnalyzeReadability("   \n\t ")

	assert.Equal(t, 0, read.WordCount)
	assert.Equal(t, 0, read.SentenceCount)
	assert.Zero(t, read.AvgWordLen)
	assert.Zero(t, read.AvgSentenceWords)
}

func TestAnalyzeReadability_IndexIsLinearCombination(t *testing.T) {
	read := AnalyzeReadability("Um dois. Três quatro.")

	want := readabilityBase - sentenceLenWeight*read.AvgSentenceWords - wordLenWeight*read.AvgWordLen
	assert.InDelta(t, want, read.ReadabilityIndex, 0.001)
}
