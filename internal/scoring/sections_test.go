package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionCoverage_DistinctHints(t *testing.T) {
	cov := SectionCoverage("A metodologia descreve a amostra utilizada.")

	assert.Equal(t, 2, cov[SectionMethodology])
}

func TestSectionCoverage_RepetitionDoesNotAccumulate(t *testing.T) {
	cov := SectionCoverage("metodologia metodologia metodologia")

	assert.Equal(t, 1, cov[SectionMethodology])
}

func TestSectionCoverage_AbsentSection(t *testing.T) {
	cov := SectionCoverage("um texto sem nenhuma pista de estrutura")

	hits, ok := cov[SectionMethodology]
	assert.True(t, ok, "every canonical section must be present in the map")
	assert.Equal(t, 0, hits)
}

func TestSectionCoverage_CaseInsensitive(t *testing.T) {
	cov := SectionCoverage("METODOLOGIA e Amostra")

	assert.Equal(t, 2, cov[SectionMethodology])
}

func TestSectionCoverage_AllSectionsPresent(t *testing.T) {
	cov := SectionCoverage("qualquer texto")

	expected := []string{
		SectionIntroduction,
		SectionMethodology,
		SectionResults,
		SectionDiscussion,
		SectionConclusions,
	}
	assert.Len(t, cov, len(expected))
	for _, sec := range expected {
		assert.Contains(t, cov, sec)
	}
}
