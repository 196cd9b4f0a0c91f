// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/manuscript-reviewer/internal/types"
)

// boxWidth is the default width for formatted output boxes.
const boxWidth = 60

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of a heuristic analysis.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	for _, dim := range types.Dimensions {
		sb.WriteString(fmt.Sprintf("%-26s %4.1f\n", dim, result.Scores[dim]))
	}

	if sig := result.Signals; sig != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Citations:  %d\n", sig.Citations))
		sb.WriteString(fmt.Sprintf("Words:      %d\n", sig.Readability.WordCount))
		sb.WriteString(fmt.Sprintf("Sentences:  %d\n", sig.Readability.SentenceCount))

		sections := make([]string, 0, len(sig.SectionCoverage))
		for sec := range sig.SectionCoverage {
			sections = append(sections, sec)
		}
		sort.Strings(sections)
		for _, sec := range sections {
			sb.WriteString(fmt.Sprintf("  %-14s %d\n", sec, sig.SectionCoverage[sec]))
		}
	}

	p.printBox("ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReview outputs a human-readable summary of an LLM review.
func (p *Printer) PrintReview(rev *types.LLMReview) {
	if rev == nil {
		return
	}

	var sb strings.Builder
	for _, dim := range types.Dimensions {
		if score, ok := rev.Scores[dim]; ok {
			sb.WriteString(fmt.Sprintf("%-26s %5.1f\n", dim, score))
		}
	}

	if len(rev.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range rev.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("LLM REVIEW (1-100)", strings.TrimSuffix(sb.String(), "\n"))
}
