// Package review implements the LLM-backed alternative to the heuristic
// scoring engine. It produces scores on a 1-100 scale with free-form
// justifications and recommendations, a deliberately different contract from
// the heuristic engine's AnalysisResult. Every foreseeable failure is
// returned as a typed error value; nothing escapes as a panic.
package review

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/manuscript-reviewer/internal/llm"
	"github.com/jonathan/manuscript-reviewer/internal/prompts"
	"github.com/jonathan/manuscript-reviewer/internal/types"
)

// Reviewer evaluates manuscript text through a hosted LLM. It performs
// exactly one blocking round-trip per Review call, with no retry and no
// concurrency control of its own; concurrent callers own their backpressure.
type Reviewer struct {
	client llm.Client
}

// NewReviewer creates a Reviewer backed by the given client.
func NewReviewer(client llm.Client) *Reviewer {
	return &Reviewer{client: client}
}

// Review scores text on the five dimensions using the LLM. The returned
// error is always one of the typed values in errors.go.
func (r *Reviewer) Review(ctx context.Context, text string) (*types.LLMReview, error) {
	prompt := buildReviewPrompt(text)

	raw, err := r.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	raw = llm.CleanJSONBlock(raw)

	if err := validatePayload(raw); err != nil {
		return nil, err
	}

	var rev types.LLMReview
	if err := json.Unmarshal([]byte(raw), &rev); err != nil {
		return nil, &ContractError{Reason: err.Error(), Content: raw}
	}

	return &rev, nil
}

// Close releases the underlying client.
func (r *Reviewer) Close() error {
	return r.client.Close()
}

// buildReviewPrompt renders the embedded review template with the dimension
// list and the manuscript text.
func buildReviewPrompt(text string) string {
	template := prompts.MustGet("review.json", "manuscript-review")
	return prompts.Format(template, map[string]string{
		"Dimensions": strings.Join(types.Dimensions, ", "),
		"Text":       text,
	})
}
