// Package llm provides the client abstraction over the external generative-AI
// provider, plus a deterministic mock for offline runs and tests.
package llm

import "time"

// ModelTier represents the capability level requested for a generation call
type ModelTier string

const (
	// TierLite is for short, formulaic generations (canned rewrites, chat)
	TierLite ModelTier = "lite"
	// TierStandard is for structured output such as the ATS analysis JSON
	TierStandard ModelTier = "standard"
	// TierAdvanced is for long-form generation such as cover letters
	TierAdvanced ModelTier = "advanced"
)

// Provider represents a generative-text provider
type Provider string

// Supported providers
const (
	ProviderGemini Provider = "gemini"
	ProviderMock   Provider = "mock"
)

// DefaultRequestTimeout bounds a single provider call. The upstream service
// offers no streaming or retry, so a request either completes within this
// window or fails.
const DefaultRequestTimeout = 30 * time.Second

// Config holds the provider and model selection for the application
type Config struct {
	Provider       Provider
	Models         map[ModelTier]string
	RequestTimeout time.Duration
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		RequestTimeout: DefaultRequestTimeout,
	}
}

// Model returns the model name for a tier, falling back from the requested
// tier to standard and then lite when unset
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return c.Models[TierLite]
}

// Timeout returns the configured request timeout, or the default when unset
func (c *Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return c.RequestTimeout
}
