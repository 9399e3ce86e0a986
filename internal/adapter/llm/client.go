// Package llm is the model client: it sends a built prompt to the configured
// generative-text provider and returns the raw reply text.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/studynotes-backend/internal/config"
	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

// generator is one provider's single-shot text completion.
type generator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

// Client calls the configured provider. It never retries; callers own
// retry policy.
type Client struct {
	provider string
	model    string
	timeout  time.Duration
	gen      generator
}

// New builds a Client for cfg.Provider. cfg must already be validated.
func New(ctx context.Context, cfg config.LLMConfig) (*Client, error) {
	var (
		gen generator
		err error
	)
	switch cfg.Provider {
	case config.ProviderGemini:
		gen, err = newGemini(ctx, cfg)
	case config.ProviderAnthropic:
		gen = newAnthropic(cfg)
	case config.ProviderOpenAI:
		gen = newOpenAI(cfg)
	default:
		return nil, fmt.Errorf("llm: unsupported provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("llm: %s client: %w", cfg.Provider, err)
	}

	return &Client{
		provider: cfg.Provider,
		model:    cfg.Model,
		timeout:  cfg.Timeout,
		gen:      gen,
	}, nil
}

// Model returns the model name recorded on notes and call log entries.
func (c *Client) Model() string {
	return c.model
}

// Complete sends prompt and returns the reply text.
//
// Transport, auth, quota and timeout failures are returned as
// *domain.UpstreamError (errors.Is ErrUpstream). A successful call with no
// text returns domain.ErrEmptyResponse.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	text, err := c.gen.generate(ctx, prompt)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		return "", &domain.UpstreamError{Provider: c.provider, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", c.provider, domain.ErrEmptyResponse)
	}
	return text, nil
}
