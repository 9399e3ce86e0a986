package llm

import (
	"context"

	"google.golang.org/genai"

	"github.com/heartmarshall/studynotes-backend/internal/config"
)

type geminiGenerator struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

func newGemini(ctx context.Context, cfg config.LLMConfig) (*geminiGenerator, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &geminiGenerator{
		client:    client,
		model:     cfg.Model,
		maxTokens: int32(cfg.MaxOutputTokens),
	}, nil
}

func (g *geminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: g.maxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
