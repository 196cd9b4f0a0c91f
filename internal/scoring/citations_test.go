package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountCitations_MixedStyles(t *testing.T) {
	text := "Silva (2020) encontrou... [1, 2] e também (Souza & Lima, 2019)."

	count := CountCitations(text)

	// One inline author-year, one bracketed pair, one parenthetical
	// multi-author group.
	assert.GreaterOrEqual(t, count, 3)
}

func TestCountCitations_BracketedLists(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"single", "como visto em [1].", 1},
		{"pair", "estudos anteriores [1, 2] mostram", 1},
		{"range", "trabalhos relacionados [1-3] indicam", 1},
		{"separate", "em [1] e [2]", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountCitations(tt.text))
		})
	}
}

func TestCountCitations_ParentheticalAuthorYear(t *testing.T) {
	assert.Equal(t, 1, CountCitations("conforme (Souza, 2019)."))
	assert.Equal(t, 1, CountCitations("conforme (Souza & Lima, 2019)."))
	assert.Equal(t, 1, CountCitations("conforme (Souza, Lima & Alves, 2019)."))
}

func TestCountCitations_InlineAuthorYear(t *testing.T) {
	assert.Equal(t, 1, CountCitations("Silva (2020) demonstrou o efeito."))
}

func TestCountCitations_NoCitations(t *testing.T) {
	assert.Equal(t, 0, CountCitations("um parágrafo comum sem referências."))
	assert.Equal(t, 0, CountCitations(""))
}

func TestCountCitations_AdditiveAcrossPatterns(t *testing.T) {
	// Counts are summed per pattern with no deduplication.
	text := "Silva (2020) e (Souza, 2019) e [3]"
	assert.Equal(t, 3, CountCitations(text))
}
