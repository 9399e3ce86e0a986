package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if c.RateLimit.GeneratePerMinute <= 0 {
		return fmt.Errorf("rate_limit.generate_per_minute must be > 0 (got %d)", c.RateLimit.GeneratePerMinute)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	switch l.Provider {
	case ProviderGemini, ProviderAnthropic, ProviderOpenAI:
	default:
		return fmt.Errorf("provider must be one of gemini, anthropic, openai (got %q)", l.Provider)
	}
	if strings.TrimSpace(l.APIKey) == "" {
		return fmt.Errorf("api_key is required")
	}
	l.Model = strings.TrimSpace(l.Model)
	if l.Model == "" {
		l.Model = defaultModels[l.Provider]
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if l.MaxOutputTokens <= 0 {
		return fmt.Errorf("max_output_tokens must be > 0 (got %d)", l.MaxOutputTokens)
	}
	return nil
}

func (g *GenerationConfig) validate() error {
	if g.MaxRetries < 0 || g.MaxRetries > 5 {
		return fmt.Errorf("max_retries must be in [0, 5] (got %d)", g.MaxRetries)
	}
	if g.MaxRetries > 0 {
		if g.RetryInitialInterval <= 0 {
			return fmt.Errorf("retry_initial_interval must be > 0 (got %v)", g.RetryInitialInterval)
		}
		if g.RetryMaxInterval < g.RetryInitialInterval {
			return fmt.Errorf("retry_max_interval must be >= retry_initial_interval (got %v < %v)",
				g.RetryMaxInterval, g.RetryInitialInterval)
		}
	}
	if g.LockTTL <= 0 {
		return fmt.Errorf("lock_ttl must be > 0 (got %v)", g.LockTTL)
	}
	return nil
}
