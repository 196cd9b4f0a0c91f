// Package llm provides the LLM client abstraction and configuration used by
// the manuscript reviewer. Only Gemini is implemented today; the provider
// indirection keeps the reviewer code independent of the vendor SDK.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for cheap, latency-sensitive calls.
	TierLite ModelTier = "lite"
	// TierStandard is for structured reviewing output.
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider.
type Provider string

// ProviderGemini is the Google Gemini provider.
const ProviderGemini Provider = "gemini"

// Config holds the model configuration for the application.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to the lite tier
// when the requested tier is not configured. Returns "" when nothing is
// configured at all.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
