package review

import "fmt"

// ErrMissingAPIKey indicates the upstream credential was never configured.
// The reviewer cannot run without it; the heuristic engine is unaffected.
type ErrMissingAPIKey struct{}

func (e *ErrMissingAPIKey) Error() string {
	return "LLM review unavailable: GEMINI_API_KEY is not configured"
}

// UpstreamError indicates the network call to the LLM service failed:
// connection failure, timeout, or a non-2xx response. The upstream message
// is preserved for diagnosis.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream LLM request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ContractError indicates the upstream response did not contain a payload
// matching the review contract. The offending content is included so the
// failure can be diagnosed from the error text alone.
type ContractError struct {
	Reason  string
	Content string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("LLM response violates review contract: %s (content: %s)", e.Reason, e.Content)
}
