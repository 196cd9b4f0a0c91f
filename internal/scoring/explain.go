package scoring

import (
	"fmt"
	"strings"
)

// Fixed explanation sentences.
const (
	// EmptyTextExplanation is attached to every dimension when the input
	// is empty or whitespace-only.
	EmptyTextExplanation = "Texto vazio, atribuído mínimo 1."

	noEvidence = "sem evidências claras"
)

// buildExplanation renders the evidence fragments a scorer consulted into a
// single prose sentence: fragments joined with "; " and terminated with a
// period. Fragment order is the order the scorer evaluated its rules, for
// reproducibility. With no fragments, the fixed fallback sentence is used.
func buildExplanation(label string, fragments []string) string {
	if len(fragments) == 0 {
		return fmt.Sprintf("%s: %s.", label, noEvidence)
	}
	return fmt.Sprintf("%s: %s.", label, strings.Join(fragments, "; "))
}
