package generator

import (
	"context"
	"errors"

	"go.uber.org/zap"
	genai "google.golang.org/genai"
)

// GeminiGenerator is a thin wrapper around the official genai client.
type GeminiGenerator struct {
	cli    *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiGenerator, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = "gemini-pro"
	}

	return &GeminiGenerator{cli: cli, model: model, logger: logger}, nil
}

// Generate submits the prompt and returns the first candidate's text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		nil,
	)
	if err != nil {
		return "", &Error{Cause: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &Error{Cause: errors.New("empty candidate from model")}
	}

	g.logger.Info("generated content",
		zap.String("model", "gemini:"+g.model),
		zap.Int("prompt_chars", len(prompt)),
	)

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
